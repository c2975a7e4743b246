package rules

import "github.com/tkruer/jfmt/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Import rules
	registry.Register(NewNoWildcardImportsRule()) // JF001

	// Statement rules
	registry.Register(NewNoEmptyStatementRule()) // JF002

	// Layout rules
	registry.Register(NewMaxLineLengthRule()) // JF003
	registry.Register(NewIndentStyleRule())   // JF004
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
