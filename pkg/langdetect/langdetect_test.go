package langdetect_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tkruer/jfmt/pkg/langdetect"
)

func TestIsJava(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  string
		want     bool
	}{
		{
			name:     "java file with java content",
			filename: "Main.java",
			content:  "package com.example;\n\npublic class Main {\n\tpublic static void main(String[] args) {}\n}\n",
			want:     true,
		},
		{
			name:     "java extension with empty content",
			filename: "Main.java",
			content:  "",
			want:     true,
		},
		{
			name:     "go file",
			filename: "main.go",
			content:  "package main\n\nfunc main() {}\n",
			want:     false,
		},
		{
			name:     "yaml file",
			filename: "config.yaml",
			content:  "key: value\nlist:\n  - a\n  - b\n",
			want:     false,
		},
		{
			name:     "yaml content mislabeled as java",
			filename: "Fake.java",
			content:  "key: value\nlist:\n  - item one\n  - item two\nnested:\n  inner: true\n",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := langdetect.IsJava(tt.filename, []byte(tt.content)); got != tt.want {
				t.Errorf("IsJava(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	javaPath := filepath.Join(dir, "Main.java")
	if err := os.WriteFile(javaPath, []byte("public class Main {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	isJava, err := langdetect.DetectFile(context.Background(), javaPath)
	if err != nil {
		t.Fatalf("DetectFile error: %v", err)
	}
	if !isJava {
		t.Error("expected Java detection")
	}

	goPath := filepath.Join(dir, "main.go")
	if err := os.WriteFile(goPath, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	isJava, err = langdetect.DetectFile(context.Background(), goPath)
	if err != nil {
		t.Fatalf("DetectFile error: %v", err)
	}
	if isJava {
		t.Error("Go file should not detect as Java")
	}
}

func TestDetectFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := langdetect.DetectFile(context.Background(), filepath.Join(t.TempDir(), "missing.java"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDetectFile_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := langdetect.DetectFile(ctx, "Main.java")
	if err == nil {
		t.Error("expected cancellation error")
	}
}
