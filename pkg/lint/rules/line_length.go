package rules

import (
	"fmt"

	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/lint"
)

// MaxLineLengthRule checks that lines do not exceed a maximum length.
type MaxLineLengthRule struct {
	lint.BaseRule
}

// NewMaxLineLengthRule creates a new max line length rule.
func NewMaxLineLengthRule() *MaxLineLengthRule {
	return &MaxLineLengthRule{
		BaseRule: lint.NewBaseRule(lint.RuleMeta{
			ID:          "JF003",
			Name:        "max-line-length",
			Description: "Line length should not exceed the configured maximum",
			Tags:        []string{"layout"},
			// Wrapping Java safely needs more than text surgery, so this
			// rule has no fix.
		}),
	}
}

// Apply flags every line whose length in characters exceeds the limit.
// The span covers the excess portion, from the character after the limit
// to the end of the line.
func (r *MaxLineLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || len(ctx.File.Lines) == 0 {
		return nil, nil
	}

	maxLength := ctx.OptionInt("max", ctx.Style().MaxLineLength)
	if maxLength <= 0 {
		maxLength = config.DefaultMaxLineLength
	}

	var diags []lint.Diagnostic

	for lineNum := 1; lineNum <= len(ctx.File.Lines); lineNum++ {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		length := lint.LineLengthRunes(ctx.File, lineNum)
		if length <= maxLength {
			continue
		}

		startOffset := lint.OffsetForColumn(ctx.File, lineNum, maxLength+1)
		endOffset := ctx.File.Lines[lineNum-1].NewlineStart

		diags = append(diags, lint.NewDiagnosticAt(r.ID(), ctx.File, startOffset, endOffset,
			fmt.Sprintf("Line exceeds %d characters (was %d)", maxLength, length)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion(fmt.Sprintf("Shorten the line to at most %d characters", maxLength)).
			Build())
	}

	return diags, nil
}
