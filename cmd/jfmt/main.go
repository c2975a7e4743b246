// Package main is the entry point for the jfmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/tkruer/jfmt/internal/cli"
	"github.com/tkruer/jfmt/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/tkruer/jfmt/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrLintIssuesFound is only a signal for the exit code.
		if errors.Is(err, cli.ErrLintIssuesFound) {
			return cli.ExitIssuesFound
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitUsageError
	}

	return cli.ExitSuccess
}
