package rules

import (
	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/fix"
	"github.com/tkruer/jfmt/pkg/lint"
)

// NoEmptyStatementRule flags stray semicolons in statement position.
type NoEmptyStatementRule struct {
	lint.BaseRule
}

// NewNoEmptyStatementRule creates a new empty statement rule.
func NewNoEmptyStatementRule() *NoEmptyStatementRule {
	return &NoEmptyStatementRule{
		BaseRule: lint.NewBaseRule(lint.RuleMeta{
			ID:          "JF002",
			Name:        "no-empty-statement",
			Description: "Stray empty statements should be removed",
			Tags:        []string{"statements"},
			Fixable:     true, // Deleting the statement span is always safe.
		}),
	}
}

// Apply flags every empty statement node. Semicolons inside for-headers,
// literals, and comments never surface as empty statement nodes, so no
// re-checking is needed here.
func (r *NoEmptyStatementRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, node := range lint.EmptyStatements(ctx.Root) {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		span := node.SourceRange()

		builder := fix.NewEditBuilder(r.ID())
		builder.Delete(span.StartOffset, span.EndOffset)

		diags = append(diags, lint.NewDiagnostic(r.ID(), node,
			"Remove unnecessary empty statement").
			WithSeverity(config.SeverityWarning).
			WithFix(builder).
			Build())
	}

	return diags, nil
}
