// Package runner provides multi-file linting orchestration.
package runner

import "github.com/tkruer/jfmt/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Java source. Defaults to [".java"] via DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// DetectLanguage verifies file content classifies as Java before
	// linting, guarding against mislabeled .java files.
	DetectLanguage bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Java file extensions.
func DefaultExtensions() []string {
	return []string{".java"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// OptionsFromConfig builds runner options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string, workDir string) Options {
	opts := Options{
		Paths:          paths,
		WorkingDir:     workDir,
		DetectLanguage: true,
		Config:         cfg,
	}
	if cfg != nil {
		opts.ExcludeGlobs = cfg.Ignore
		opts.Jobs = cfg.EffectiveJobs()
	}
	return opts
}
