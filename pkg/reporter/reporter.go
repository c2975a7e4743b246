// Package reporter provides diagnostic and diff reporting functionality.
package reporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tkruer/jfmt/pkg/runner"
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return NewTextReporter(opts), nil
	}
}

// displayPath converts an absolute path to one relative to base for display.
// If the relative path would require too many "../" traversals, the
// basename is used instead.
func displayPath(path, base string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return filepath.Base(path)
		}
		base = cwd
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.Base(path)
	}
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}
