package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tkruer/jfmt/pkg/config"
	_ "github.com/tkruer/jfmt/pkg/lint/rules" // Register rules
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func baseOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	cfg := result.Config
	if cfg.Style.IndentStyle != config.IndentSpaces {
		t.Errorf("expected indent style %q, got %q", config.IndentSpaces, cfg.Style.IndentStyle)
	}
	if cfg.Style.IndentWidth != config.DefaultIndentWidth {
		t.Errorf("expected indent width %d, got %d", config.DefaultIndentWidth, cfg.Style.IndentWidth)
	}
	if cfg.Style.MaxLineLength != config.DefaultMaxLineLength {
		t.Errorf("expected max line length %d, got %d", config.DefaultMaxLineLength, cfg.Style.MaxLineLength)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `
indent_style = "tabs"
indent_width = 8
max_line_length = 120

[rules.no-wildcard-imports]
enabled = false

[rules.JF003]
severity = "error"
`)

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Style.IndentStyle != config.IndentTabs {
		t.Errorf("expected tabs, got %q", cfg.Style.IndentStyle)
	}
	if cfg.Style.IndentWidth != 8 {
		t.Errorf("expected indent width 8, got %d", cfg.Style.IndentWidth)
	}
	if cfg.Style.MaxLineLength != 120 {
		t.Errorf("expected max line length 120, got %d", cfg.Style.MaxLineLength)
	}

	// Rule keys are normalized to canonical IDs.
	jf001, ok := cfg.Rules["JF001"]
	if !ok {
		t.Fatalf("expected rules keyed by canonical ID, got %v", cfg.Rules)
	}
	if jf001.Enabled == nil || *jf001.Enabled {
		t.Error("expected JF001 disabled")
	}

	jf003, ok := cfg.Rules["JF003"]
	if !ok || jf003.Severity == nil || *jf003.Severity != "error" {
		t.Errorf("expected JF003 severity error, got %+v", jf003)
	}

	if len(result.LoadedFrom) != 1 || !strings.HasSuffix(result.LoadedFrom[0], "jfmt.toml") {
		t.Errorf("expected jfmt.toml in LoadedFrom, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".jfmt.yml"), `
style:
  max_line_length: 80
severity_default: error
`)

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Style.MaxLineLength != 80 {
		t.Errorf("expected max line length 80, got %d", result.Config.Style.MaxLineLength)
	}
	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected severity default error, got %q", result.Config.SeverityDefault)
	}
	// Unset keys keep defaults.
	if result.Config.Style.IndentWidth != config.DefaultIndentWidth {
		t.Errorf("expected default indent width, got %d", result.Config.Style.IndentWidth)
	}
}

func TestLoad_TOMLPreferredOverYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `max_line_length = 120`)
	writeFile(t, filepath.Join(tmpDir, ".jfmt.yml"), "style:\n  max_line_length: 80\n")

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Style.MaxLineLength != 120 {
		t.Errorf("expected jfmt.toml to win, got max line length %d", result.Config.Style.MaxLineLength)
	}
}

func TestLoad_UpwardSearchStopsAtVCSRoot(t *testing.T) {
	tmpDir := t.TempDir()

	// Config above the repo root must not be picked up.
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `max_line_length = 60`)

	repoDir := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repoDir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	srcDir := filepath.Join(repoDir, "src", "main", "java")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), baseOptions(srcDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Style.MaxLineLength != config.DefaultMaxLineLength {
		t.Errorf("expected default (search bounded by VCS root), got %d", result.Config.Style.MaxLineLength)
	}

	// A config inside the repo is found from a nested directory.
	writeFile(t, filepath.Join(repoDir, "jfmt.toml"), `max_line_length = 90`)

	result, err = Load(context.Background(), baseOptions(srcDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Style.MaxLineLength != 90 {
		t.Errorf("expected repo config found upward, got %d", result.Config.Style.MaxLineLength)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `max_line_length = 120`)

	explicit := filepath.Join(tmpDir, "custom.toml")
	writeFile(t, explicit, `max_line_length = 70`)

	opts := baseOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Style.MaxLineLength != 70 {
		t.Errorf("expected explicit config to win, got %d", result.Config.Style.MaxLineLength)
	}
	if result.Paths.Explicit != explicit {
		t.Errorf("expected explicit path recorded, got %q", result.Paths.Explicit)
	}
}

func TestLoad_CLIHighestPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `
indent_style = "tabs"
max_line_length = 120
`)

	opts := baseOptions(tmpDir)
	opts.CLIConfig = &config.Config{
		Style: config.StyleConfig{MaxLineLength: 200},
		Fix:   true,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Style.MaxLineLength != 200 {
		t.Errorf("expected CLI max line length 200, got %d", result.Config.Style.MaxLineLength)
	}
	if result.Config.Style.IndentStyle != config.IndentTabs {
		t.Errorf("expected project indent style preserved, got %q", result.Config.Style.IndentStyle)
	}
	if !result.Config.Fix {
		t.Error("expected Fix from CLI config")
	}
}

func TestLoad_EnvOverridesProject(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `max_line_length = 120`)

	t.Setenv("JFMT_MAX_LINE_LENGTH", "88")
	t.Setenv("JFMT_INDENT_STYLE", "tabs")

	opts := baseOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Style.MaxLineLength != 88 {
		t.Errorf("expected env max line length 88, got %d", result.Config.Style.MaxLineLength)
	}
	if result.Config.Style.IndentStyle != config.IndentTabs {
		t.Errorf("expected env indent style tabs, got %q", result.Config.Style.IndentStyle)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("JFMT_JOBS", "lots")

	opts := baseOptions(tmpDir)
	opts.IgnoreEnv = false

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("expected error for invalid JFMT_JOBS")
	}
}

func TestLoad_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `indent_style = "elastic"`)

	_, err := Load(context.Background(), baseOptions(tmpDir))
	if err == nil {
		t.Fatal("expected validation error for bad indent style")
	}
	if !strings.Contains(err.Error(), "indent_style") {
		t.Errorf("expected indent_style in error, got %v", err)
	}
}

func TestLoad_UnknownRuleWarns(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `
[rules.JF999]
enabled = false
`)

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "JF999") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected warning about JF999, got %v", result.Warnings)
	}
}

func TestLoad_DuplicateRuleKeysWarn(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "jfmt.toml"), `
[rules.JF001]
enabled = false

[rules.no-wildcard-imports]
severity = "info"
`)

	result, err := Load(context.Background(), baseOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate rule configuration") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected duplicate-key warning, got %v", result.Warnings)
	}

	if _, ok := result.Config.Rules["JF001"]; !ok {
		t.Error("expected normalized JF001 entry")
	}
	if _, ok := result.Config.Rules["no-wildcard-imports"]; ok {
		t.Error("expected name key normalized away")
	}
}

func TestLoad_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, baseOptions(t.TempDir())); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
