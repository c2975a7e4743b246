package cli_test

import (
	"testing"

	"github.com/tkruer/jfmt/internal/cli"
	"github.com/tkruer/jfmt/pkg/runner"
)

func TestExitCodeFromResult(t *testing.T) {
	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{
			name:   "nil result",
			result: nil,
			want:   cli.ExitSuccess,
		},
		{
			name: "clean run",
			result: &runner.Result{
				Stats: runner.Stats{FilesProcessed: 3},
			},
			want: cli.ExitSuccess,
		},
		{
			name: "warnings only",
			result: &runner.Result{
				Stats: runner.Stats{
					DiagnosticsTotal:      3,
					DiagnosticsBySeverity: map[string]int{"warning": 3},
				},
			},
			want: cli.ExitIssuesFound,
		},
		{
			name: "errors",
			result: &runner.Result{
				Stats: runner.Stats{
					DiagnosticsTotal:      2,
					DiagnosticsBySeverity: map[string]int{"error": 2},
				},
			},
			want: cli.ExitIssuesFound,
		},
		{
			name: "file errored",
			result: &runner.Result{
				Stats: runner.Stats{FilesErrored: 1},
			},
			want: cli.ExitIssuesFound,
		},
		{
			name: "skipped file without strict",
			result: &runner.Result{
				Stats: runner.Stats{FilesSkipped: 1},
			},
			want: cli.ExitSuccess,
		},
		{
			name: "skipped file with strict",
			result: &runner.Result{
				Stats: runner.Stats{FilesSkipped: 1},
			},
			strict: true,
			want:   cli.ExitIssuesFound,
		},
		{
			name: "fix conflict with strict",
			result: &runner.Result{
				Stats: runner.Stats{FilesWithConflicts: 1},
			},
			strict: true,
			want:   cli.ExitIssuesFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cli.ExitCodeFromResult(tt.result, tt.strict)
			if got != tt.want {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tt.want)
			}
		})
	}
}
