package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/lint"
)

// FormatDiagnosticLine formats a diagnostic as a single grep-style line:
// "path:line:column: rule: message", with severity coloring on the rule
// identifier. Used for flat (ungrouped) text output.
func (s *Styles) FormatDiagnosticLine(diag *lint.Diagnostic, ruleFormat config.RuleFormat) string {
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(diag.FilePath),
		diag.StartLine,
		diag.StartColumn,
	)

	ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)

	return fmt.Sprintf("%s: %s: %s\n",
		location,
		s.severityStyle(diag.Severity).Render(ruleIdentifier),
		s.Message.Render(diag.Message),
	)
}

// FormatDiagnostic formats a diagnostic for grouped output beneath a file
// header. The file path is omitted from the location since the header
// already names it.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, showContext bool, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	location := fmt.Sprintf("%d:%d", diag.StartLine, diag.StartColumn)

	severity := s.FormatSeverity(diag.Severity)

	ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)
	ruleDisplay := s.RuleID.Render("(" + ruleIdentifier + ")")

	// Main line: location  severity  message  (rule)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		s.Location.Render(location),
		severity,
		s.Message.Render(diag.Message),
		ruleDisplay,
	))

	// Source context
	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.StartColumn))
	}

	// Suggestion
	if diag.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(diag.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

func (s *Styles) severityStyle(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityError:
		return s.Error
	case config.SeverityInfo:
		return s.Info
	default:
		return s.Warning
	}
}

// FormatSourceContext formats the source line with a caret marker.
// Tabs in the source line are kept as-is, so the caret aligns only for
// space-indented lines; that matches how most terminals render a tab stop.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
