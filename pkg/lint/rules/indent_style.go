package rules

import (
	"bytes"
	"strings"

	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/fix"
	"github.com/tkruer/jfmt/pkg/lint"
)

// IndentStyleRule checks that leading whitespace uses the configured
// indentation style.
type IndentStyleRule struct {
	lint.BaseRule
}

// NewIndentStyleRule creates a new indentation style rule.
func NewIndentStyleRule() *IndentStyleRule {
	return &IndentStyleRule{
		BaseRule: lint.NewBaseRule(lint.RuleMeta{
			ID:          "JF004",
			Name:        "indent-style",
			Description: "Indentation should use the configured style (tabs or spaces)",
			Tags:        []string{"layout"},
			Fixable:     true,
		}),
	}
}

// Apply checks each line's leading whitespace against the configured style.
//
// In spaces mode, a line with any leading tab is flagged at the first tab
// and fixed by rewriting the whole run, each tab becoming indent_width
// spaces. In tabs mode, a run of plain spaces is flagged only when its
// length divides evenly by indent_width; mixed or unaligned runs are left
// alone. Either way a line yields at most one edit, so edits from
// different lines never overlap.
func (r *IndentStyleRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || len(ctx.File.Lines) == 0 {
		return nil, nil
	}

	style := ctx.Style()
	indentStyle := config.IndentStyle(ctx.OptionString("style", string(style.IndentStyle)))
	if !indentStyle.IsValid() {
		indentStyle = config.IndentSpaces
	}
	indentWidth := ctx.OptionInt("width", style.IndentWidth)
	if indentWidth <= 0 {
		indentWidth = config.DefaultIndentWidth
	}

	var diags []lint.Diagnostic

	for lineNum := 1; lineNum <= len(ctx.File.Lines); lineNum++ {
		if ctx.Cancelled() {
			return diags, ctx.Ctx.Err()
		}

		if lint.IsBlankLine(ctx.File, lineNum) {
			continue
		}

		leading, startOffset := lint.LeadingWhitespace(ctx.File, lineNum)
		if len(leading) == 0 {
			continue
		}

		var diag *lint.DiagnosticBuilder
		switch indentStyle {
		case config.IndentSpaces:
			diag = r.checkSpacesMode(ctx, leading, startOffset, indentWidth)
		case config.IndentTabs:
			diag = r.checkTabsMode(ctx, leading, startOffset, indentWidth)
		}

		if diag != nil {
			diags = append(diags, diag.WithSeverity(config.SeverityWarning).Build())
		}
	}

	return diags, nil
}

// checkSpacesMode flags leading tabs and rewrites the whole run with each
// tab expanded to indentWidth spaces.
func (r *IndentStyleRule) checkSpacesMode(
	ctx *lint.RuleContext,
	leading []byte,
	startOffset int,
	indentWidth int,
) *lint.DiagnosticBuilder {
	firstTab := bytes.IndexByte(leading, '\t')
	if firstTab < 0 {
		return nil
	}

	var replacement strings.Builder
	for _, c := range leading {
		if c == '\t' {
			replacement.WriteString(strings.Repeat(" ", indentWidth))
		} else {
			replacement.WriteByte(c)
		}
	}

	builder := fix.NewEditBuilder(r.ID())
	builder.ReplaceRange(startOffset, startOffset+len(leading), replacement.String())

	return lint.NewDiagnosticAt(r.ID(), ctx.File,
		startOffset+firstTab, startOffset+len(leading),
		"Use spaces for indentation").
		WithFix(builder)
}

// checkTabsMode flags runs of plain spaces that divide evenly by
// indentWidth. Mixed runs and unaligned runs are skipped: converting them
// would have to guess the author's intent.
func (r *IndentStyleRule) checkTabsMode(
	ctx *lint.RuleContext,
	leading []byte,
	startOffset int,
	indentWidth int,
) *lint.DiagnosticBuilder {
	if bytes.IndexByte(leading, ' ') < 0 {
		return nil
	}
	if bytes.IndexByte(leading, '\t') >= 0 {
		return nil
	}
	if len(leading)%indentWidth != 0 {
		return nil
	}

	builder := fix.NewEditBuilder(r.ID())
	builder.ReplaceRange(startOffset, startOffset+len(leading),
		strings.Repeat("\t", len(leading)/indentWidth))

	return lint.NewDiagnosticAt(r.ID(), ctx.File,
		startOffset, startOffset+len(leading),
		"Use tabs for indentation").
		WithFix(builder)
}
