package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tkruer/jfmt/internal/configloader"
)

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Long: `List the JFMT_* environment variables that override configuration
file settings. Environment variables take precedence over config files
but are overridden by command-line flags.`,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := configloader.ListEnvVars()

			names := make([]string, 0, len(vars))
			width := 0
			for name := range vars {
				names = append(names, name)
				if len(name) > width {
					width = len(name)
				}
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", width, name, vars[name])
			}
		},
	}
}
