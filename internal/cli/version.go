package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(c.out, "%s %s\n", appName, version)
			if commit != "" {
				fmt.Fprintf(c.out, "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(c.out, "built: %s\n", date)
			}
			fmt.Fprintf(c.out, "go: %s\n", runtime.Version())

			return nil
		},
	}
}
