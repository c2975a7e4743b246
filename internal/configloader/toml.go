package configloader

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tkruer/jfmt/pkg/config"
)

// tomlFile mirrors the flat jfmt.toml layout. Style keys live at the top
// level rather than under a [style] table, matching the file `jfmt init`
// writes.
type tomlFile struct {
	IndentStyle     string                       `toml:"indent_style"`
	IndentWidth     int                          `toml:"indent_width"`
	MaxLineLength   int                          `toml:"max_line_length"`
	SeverityDefault string                       `toml:"severity_default"`
	Ignore          []string                     `toml:"ignore"`
	Rules           map[string]config.RuleConfig `toml:"rules"`
	Backups         *config.BackupsConfig        `toml:"backups"`
}

// parseTOML parses a jfmt.toml document into a sparse Config. Unset keys
// stay at their zero values so merging preserves lower-precedence sources.
func parseTOML(content []byte) (*config.Config, error) {
	var file tomlFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	cfg := &config.Config{
		Style: config.StyleConfig{
			IndentStyle:   config.IndentStyle(file.IndentStyle),
			IndentWidth:   file.IndentWidth,
			MaxLineLength: file.MaxLineLength,
		},
		SeverityDefault: file.SeverityDefault,
		Ignore:          file.Ignore,
		Rules:           file.Rules,
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleConfig)
	}

	if file.Backups != nil {
		cfg.Backups = *file.Backups
	}

	return cfg, nil
}
