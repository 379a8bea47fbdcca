// Package cli implements the layoutembed command-line interface.
//
// Commands:
//   - solve: run the greedy router and branch and bound on a problem file
//   - version: print build information
//
// All commands accept --verbose (-v) for debug logging, which also enables the
// periodic search progress lines.
package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const appName = "layoutembed"

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the build information printed by the version command.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	out io.Writer
	log zerolog.Logger
}

// New creates a CLI writing results to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{
		out: out,
		log: newLogger(errOut, zerolog.InfoLevel),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "layoutembed routes a layout graph through a target mesh",
		Long:          `layoutembed embeds the edges of a layout graph as pairwise non-crossing paths on a triangle mesh, minimising total path length with a best-first branch and bound.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.log = c.log.Level(zerolog.DebugLevel)
			}
		},
	}
	root.SetOut(c.out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.versionCommand())

	return root
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.00"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// elapsed formats a duration for the result table.
func elapsed(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
