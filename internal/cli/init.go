package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tkruer/jfmt/internal/logging"
	"github.com/tkruer/jfmt/pkg/config"
	"github.com/tkruer/jfmt/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// defaultConfigFileName is the canonical project configuration file.
const defaultConfigFileName = "jfmt.toml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new jfmt configuration file",
		Long: `Create a new jfmt.toml configuration file in the current directory
with sensible defaults. The file can be customized to enable/disable rules,
change severities, and adjust style settings.

Examples:
  jfmt init                       Create jfmt.toml with defaults
  jfmt init --output custom.toml  Write to a custom file path
  jfmt init --force               Overwrite an existing file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: jfmt.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFileName
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			if !confirmOverwrite(cmd, outputPath) {
				return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
			}
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	content := []byte(config.StarterTOML)

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'jfmt rules' to see all available rules")

	return nil
}

// confirmOverwrite prompts for overwrite confirmation when attached to a
// terminal. Non-interactive runs never overwrite without --force.
func confirmOverwrite(cmd *cobra.Command, path string) bool {
	stdin, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(stdin.Fd())) {
		return false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s already exists. Overwrite? [y/N] ", path)

	reader := bufio.NewReader(stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
