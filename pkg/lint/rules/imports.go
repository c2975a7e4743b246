package rules

import (
	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/lint"
)

// NoWildcardImportsRule flags import declarations ending in a wildcard segment.
type NoWildcardImportsRule struct {
	lint.BaseRule
}

// NewNoWildcardImportsRule creates a new wildcard import rule.
func NewNoWildcardImportsRule() *NoWildcardImportsRule {
	return &NoWildcardImportsRule{
		BaseRule: lint.NewBaseRule(lint.RuleMeta{
			ID:          "JF001",
			Name:        "no-wildcard-imports",
			Description: "Import declarations should name explicit classes rather than wildcards",
			Tags:        []string{"imports"},
			// Choosing replacement classes needs semantic knowledge, so
			// this rule has no fix.
		}),
	}
}

// Apply flags every wildcard import, static imports included.
func (r *NoWildcardImportsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, node := range lint.Imports(ctx.Root) {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		if node.Import == nil || !node.Import.Wildcard {
			continue
		}

		diags = append(diags, lint.NewDiagnostic(r.ID(), node,
			"Avoid wildcard imports (use explicit classes)").
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Import the specific classes this file uses").
			Build())
	}

	return diags, nil
}
