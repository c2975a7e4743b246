// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldIndentStyle = "indent_style"
	FieldFix         = "fix"
	FieldDryRun      = "dry_run"
	FieldJobs        = "jobs"

	// Rule fields.
	FieldRule        = "rule"
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldFixable     = "fixable"
	FieldDescription = "description"

	// Fix engine fields.
	FieldEdits       = "edits"
	FieldStartOffset = "start_offset"
	FieldEndOffset   = "end_offset"
	FieldContentLen  = "content_len"
	FieldPass        = "pass"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFilesModified    = "files_modified"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
