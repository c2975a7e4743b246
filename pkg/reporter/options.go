package reporter

import (
	"io"
	"os"

	"github.com/tkruer/jfmt/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext includes source line context in diagnostics.
	// Only applies to grouped text output.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// GroupByFile groups diagnostics under a per-file header instead of
	// emitting one grep-style line per diagnostic.
	GroupByFile bool

	// Compact uses compact/minified output where applicable.
	Compact bool

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat config.RuleFormat

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: false,
		ShowSummary: true,
		GroupByFile: false,
		Compact:     false,
		RuleFormat:  config.RuleFormatName,
	}
}

// OptionsFromConfig builds Options from resolved configuration.
// Writer, Color, and the grouping knobs stay at their defaults; the CLI
// layer overrides those from flags.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}

	if cfg.Format != "" {
		opts.Format = Format(cfg.Format)
	}
	if cfg.RuleFormat != "" {
		opts.RuleFormat = cfg.RuleFormat
	}
	return opts
}
