package lint

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/tkruer/jfmt/internal/logging"
	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/fix"
	"github.com/tkruer/jfmt/pkg/jast"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *jast.FileSnapshot

	// Diagnostics contains all issues found, sorted by (start offset, rule ID).
	Diagnostics []Diagnostic

	// Edits contains validated, sorted, conflict-free edits for auto-fix.
	// Empty if no fixes are available, --fix was not requested, or the
	// edits conflicted.
	Edits []fix.TextEdit

	// EditConflicts is true if overlapping edits were detected. When set,
	// no edits are applied for this file and ConflictError holds the detail.
	EditConflicts bool

	// ConflictError names the conflicting rules and spans (nil if none).
	ConflictError error

	// RuleErrors contains any internal errors from rule execution, keyed by
	// rule ID. Each also appears as a diagnostic for that rule.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses Java files into FileSnapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file.
//
// Each enabled rule runs independently: an internal rule failure becomes a
// diagnostic for that rule and never aborts the others. Diagnostics are
// sorted by (start offset, rule ID). Edits from fix-capable rules are
// validated and checked for overlap; a conflict aborts the whole file's fix
// with no partial application.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	var allEdits []fix.TextEdit

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)
		ruleCtx.Registry = e.Registry

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			result.Diagnostics = append(result.Diagnostics, ruleErrorDiagnostic(rr.Rule, path, err))
			continue
		}

		for diagIdx := range diags {
			diags[diagIdx].Severity = rr.Severity

			if diags[diagIdx].FilePath == "" {
				diags[diagIdx].FilePath = path
			}

			if diags[diagIdx].RuleName == "" {
				diags[diagIdx].RuleName = rr.Rule.Name()
			}

			// Collect edits if auto-fix is enabled for this rule. Edits with
			// out-of-range spans are an internal defect: drop the edit, log
			// it, and keep linting.
			if rr.AutoFix && len(diags[diagIdx].FixEdits) > 0 {
				for _, edit := range diags[diagIdx].FixEdits {
					if checkErr := fix.CheckEdit(edit, len(content)); checkErr != nil {
						logging.FromContext(ctx).Warn("dropping out-of-range edit",
							logging.FieldRule, edit.RuleID,
							logging.FieldPath, path,
							logging.FieldStartOffset, edit.StartOffset,
							logging.FieldEndOffset, edit.EndOffset,
							logging.FieldContentLen, len(content),
						)
						continue
					}
					allEdits = append(allEdits, edit)
				}
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	slices.SortStableFunc(result.Diagnostics, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.StartOffset, b.StartOffset); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})

	if len(allEdits) > 0 {
		prepared, prepErr := fix.PrepareEdits(allEdits, len(content))
		if prepErr != nil {
			var conflict *fix.ConflictError
			if errors.As(prepErr, &conflict) {
				result.EditConflicts = true
				result.ConflictError = prepErr
				logging.FromContext(ctx).Warn("conflicting edits, fix aborted for file",
					logging.FieldPath, path,
					logging.FieldError, prepErr,
				)
			} else {
				return nil, fmt.Errorf("prepare edits: %w", prepErr)
			}
		} else {
			result.Edits = prepared
		}
	}

	return result, nil
}

// ruleErrorDiagnostic converts an internal rule failure into a diagnostic
// attributed to that rule at the start of the file.
func ruleErrorDiagnostic(rule Rule, path string, err error) Diagnostic {
	return Diagnostic{
		RuleID:      rule.ID(),
		RuleName:    rule.Name(),
		Message:     fmt.Sprintf("rule failed: %v", err),
		Severity:    config.SeverityError,
		FilePath:    path,
		StartOffset: 0,
		EndOffset:   0,
		StartLine:   1,
		StartColumn: 1,
		EndLine:     1,
		EndColumn:   1,
	}
}
