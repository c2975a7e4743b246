package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tkruer/jfmt/internal/configloader"
	"github.com/tkruer/jfmt/internal/logging"
	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/lint"
	_ "github.com/tkruer/jfmt/pkg/lint/rules" // Register built-in rules
	"github.com/tkruer/jfmt/pkg/parser/javaparse"
	"github.com/tkruer/jfmt/pkg/reporter"
	"github.com/tkruer/jfmt/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format        string
	ignore        []string
	enable        []string
	disable       []string
	fixRules      []string
	strict        bool
	showContext   bool
	groupByFile   bool
	compact       bool
	ruleFormat    string
	indentStyle   string
	indentWidth   int
	maxLineLength int
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Java source files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint Java source files for style issues.

By default, lints all .java files in the current directory and
subdirectories. Specify paths to lint specific files or directories.

Examples:
  jfmt lint                      # Lint current directory
  jfmt lint src/main/java        # Lint a source tree
  jfmt lint Main.java            # Lint a single file
  jfmt lint --fix                # Lint and auto-fix issues
  jfmt lint --fix --dry-run      # Show fixes without applying
  jfmt lint --format json        # Output as JSON for CI
  jfmt lint --format diff --fix --dry-run   # Preview fixes as a diff
  jfmt lint --strict             # Fail on skipped files and aborted fixes`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values. Only set values that were
	// explicitly provided, so config files and JFMT_* env vars are not
	// clobbered by flag defaults.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if cmd.Flags().Changed("indent-style") {
		cfg.Style.IndentStyle = config.IndentStyle(flags.indentStyle)
	}
	cfg.Style.IndentWidth = flags.indentWidth
	cfg.Style.MaxLineLength = flags.maxLineLength
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.FixRules = flags.fixRules
	cfg.Strict = flags.strict

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Explicit config path comes from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldIndentStyle, finalCfg.Style.IndentStyle,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	engine := lint.NewEngine(javaparse.New(), lint.DefaultRegistry)
	pipeline := lint.NewPipeline(engine)
	lintRunner := runner.New(pipeline)

	runOpts := runner.OptionsFromConfig(finalCfg, args, workDir)

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	repOpts := reporter.OptionsFromConfig(finalCfg)
	repOpts.Writer = cmd.OutOrStdout()
	repOpts.ErrorWriter = cmd.ErrOrStderr()
	repOpts.Format = format
	repOpts.Color = colorMode
	repOpts.ShowContext = flags.showContext
	repOpts.GroupByFile = flags.groupByFile
	repOpts.Compact = flags.compact
	repOpts.WorkingDir = workDir

	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, finalCfg.Strict) != ExitSuccess {
		return ErrLintIssuesFound
	}

	return nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().StringSliceVar(&flags.fixRules, "fix-rules", nil, "limit auto-fix to specific rule IDs")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on skipped files and aborted fixes")
	cmd.Flags().BoolVar(&flags.showContext, "context", false, "show source line context (grouped output)")
	cmd.Flags().BoolVar(&flags.groupByFile, "group", false, "group diagnostics under per-file headers")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.indentStyle, "indent-style", "",
		"indentation style: spaces or tabs")
	cmd.Flags().IntVar(&flags.indentWidth, "indent-width", 0,
		"spaces per indent level (0 = from config)")
	cmd.Flags().IntVar(&flags.maxLineLength, "max-line-length", 0,
		"maximum line length (0 = from config)")
}
