// Package langdetect identifies Java source files before they are linted.
//
// Extension matching alone accepts mislabeled files (a YAML file renamed to
// .java) and rejects extensionless input. This package classifies by
// filename and cross-checks the content with enry's Bayesian classifier.
package langdetect

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/go-enry/go-enry/v2"
)

// sampleSize is the number of bytes read from a file for classification.
// enry's classifiers work on a prefix; reading whole files would be waste.
const sampleSize = 16 * 1024

// javaLanguage is enry's canonical name for Java.
const javaLanguage = "Java"

// classifierCandidates restricts the content classifier to Java and the
// formats most often found mislabeled in Java trees. An open candidate set
// makes the classifier unstable on short files.
var classifierCandidates = []string{ //nolint:gochecknoglobals // Fixed candidate set for the classifier
	javaLanguage,
	"YAML",
	"JSON",
	"XML",
	"Markdown",
	"INI",
	"Shell",
}

// Language returns the language enry detects for the given filename and
// content sample. Returns enry's OtherLanguage constant when undetected.
func Language(filename string, content []byte) string {
	return enry.GetLanguage(filename, content)
}

// IsJava reports whether the given filename and content sample classify
// as Java source.
//
// The filename decides first; for .java files the content is then
// cross-checked with the classifier so a YAML file renamed to .java is
// still rejected. Empty content falls back to filename-based detection.
func IsJava(filename string, content []byte) bool {
	if Language(filename, content) != javaLanguage {
		return false
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return true
	}

	detected, safe := enry.GetLanguageByClassifier(content, classifierCandidates)
	if !safe {
		// Ambiguous content: trust the extension.
		return true
	}
	return detected == javaLanguage
}

// DetectFile reads a sample of the file at path and reports whether it
// classifies as Java source.
func DetectFile(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	sample := make([]byte, sampleSize)
	n, err := f.Read(sample)
	if err != nil && err != io.EOF {
		return false, err
	}

	return IsJava(path, sample[:n]), nil
}
