// Package config defines core configuration types for jfmt.
// These types are pure data structures with no dependency on any
// particular config file format or loader.
package config

import "runtime"

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// IndentStyle specifies the accepted leading-whitespace style.
type IndentStyle string

const (
	IndentSpaces IndentStyle = "spaces"
	IndentTabs   IndentStyle = "tabs"
)

// IsValid returns true if the indent style is a known style.
func (s IndentStyle) IsValid() bool {
	switch s {
	case IndentSpaces, IndentTabs:
		return true
	default:
		return false
	}
}

// StyleConfig holds the formatting style knobs shared by the style rules.
// The field names match the jfmt.toml keys.
type StyleConfig struct {
	// IndentStyle selects "spaces" or "tabs" indentation.
	IndentStyle IndentStyle `mapstructure:"indent_style" yaml:"indent_style" toml:"indent_style"`

	// IndentWidth is the number of spaces per indent level.
	// Used for tab-to-space conversion and alignment checks.
	IndentWidth int `mapstructure:"indent_width" yaml:"indent_width" toml:"indent_width"`

	// MaxLineLength is the line length budget in characters.
	MaxLineLength int `mapstructure:"max_line_length" yaml:"max_line_length" toml:"max_line_length"`
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Severity *string        `mapstructure:"severity" yaml:"severity" toml:"severity"`
	AutoFix  *bool          `mapstructure:"auto_fix" yaml:"auto_fix" toml:"auto_fix"`
	Options  map[string]any `mapstructure:"options" yaml:"options" toml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode" toml:"mode"` // "sidecar"
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "no-wildcard-imports"
	RuleFormatID       RuleFormat = "id"       // "JF001"
	RuleFormatCombined RuleFormat = "combined" // "JF001/no-wildcard-imports"
)

// Config is the root configuration structure for jfmt.
type Config struct {
	// Style holds the formatting style knobs.
	Style StyleConfig `mapstructure:"style" yaml:"style"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `mapstructure:"severity_default" yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `mapstructure:"rules" yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `mapstructure:"-" yaml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// Strict makes skipped files and aborted fixes fail the run.
	Strict bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `mapstructure:"-" yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `mapstructure:"-" yaml:"-"`

	// FixRules limits auto-fixing to specific rule IDs.
	FixRules []string `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `mapstructure:"-" yaml:"-"`
}

// Default style values, matching the jfmt.toml defaults.
const (
	DefaultIndentWidth   = 4
	DefaultMaxLineLength = 100
)

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Style: StyleConfig{
			IndentStyle:   IndentSpaces,
			IndentWidth:   DefaultIndentWidth,
			MaxLineLength: DefaultMaxLineLength,
		},
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use NumCPU
	}
}

// EffectiveJobs resolves the worker count, treating 0 as NumCPU.
func (c *Config) EffectiveJobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.NumCPU()
}
