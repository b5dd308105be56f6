package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/reckon/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The --verbose flag switches the CLI logger to debug level before any
// subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Reckon finds every arithmetic expression that reaches a target",
		Long: `Reckon combines a handful of numbers with + - * / until one value is left,
trying every ordering, pairing and operator, and prints the expressions that
reach the target. It also exposes the ranked sequence generators the search is
built on.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.enumCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.unrankCommand())
	root.AddCommand(c.completionCommand())

	return root
}
