package lint

import (
	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/fix"
	"github.com/tkruer/jfmt/pkg/jast"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for the given rule and node.
// The span and position are taken from the node.
func NewDiagnostic(ruleID string, node *jast.Node, message string) *DiagnosticBuilder {
	var filePath string
	var pos jast.SourcePosition
	var span jast.SourceRange

	if node != nil {
		pos = node.SourcePosition()
		span = node.SourceRange()
		if node.File != nil {
			filePath = node.File.Path
		}
	}

	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:      ruleID,
			Message:     message,
			FilePath:    filePath,
			StartOffset: span.StartOffset,
			EndOffset:   span.EndOffset,
			StartLine:   pos.StartLine,
			StartColumn: pos.StartColumn,
			EndLine:     pos.EndLine,
			EndColumn:   pos.EndColumn,
		},
	}
}

// NewDiagnosticAt starts building a diagnostic for a byte span of the file.
// Line and column positions are derived from the file's line index.
func NewDiagnosticAt(ruleID string, file *jast.FileSnapshot, startOffset, endOffset int, message string) *DiagnosticBuilder {
	diag := Diagnostic{
		RuleID:      ruleID,
		Message:     message,
		StartOffset: startOffset,
		EndOffset:   endOffset,
	}

	if file != nil {
		diag.FilePath = file.Path
		diag.StartLine, diag.StartColumn = file.LineAt(startOffset)
		diag.EndLine, diag.EndColumn = file.LineAt(endOffset)
	}

	return &DiagnosticBuilder{diag: diag}
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// WithFix adds fix edits from an EditBuilder.
func (b *DiagnosticBuilder) WithFix(builder *fix.EditBuilder) *DiagnosticBuilder {
	if builder != nil {
		b.diag.FixEdits = append(b.diag.FixEdits, builder.Edits...)
	}
	return b
}

// WithEdit adds a single fix edit.
func (b *DiagnosticBuilder) WithEdit(edit fix.TextEdit) *DiagnosticBuilder {
	b.diag.FixEdits = append(b.diag.FixEdits, edit)
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
