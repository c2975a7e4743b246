package cli

import "github.com/tkruer/jfmt/pkg/runner"

// Exit codes for jfmt.
const (
	// ExitSuccess indicates a clean run with no reportable issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates lint completed and issues remain, or a
	// file could not be processed.
	ExitIssuesFound = 1

	// ExitUsageError indicates invalid command-line usage or a
	// configuration error.
	ExitUsageError = 2
)

// ExitCodeFromResult determines the exit code for a completed lint run.
// Any remaining diagnostic fails the run regardless of severity, as does
// a file that errored during processing. With strict, files that were
// skipped or whose fix was aborted by conflicting edits also fail.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasIssues() || result.Stats.FilesErrored > 0 {
		return ExitIssuesFound
	}

	if strict && (result.Stats.FilesSkipped > 0 || result.Stats.FilesWithConflicts > 0) {
		return ExitIssuesFound
	}

	return ExitSuccess
}
