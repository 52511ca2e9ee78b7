package cli

import (
	"github.com/spf13/cobra"

	"github.com/wqcharts/bizchart/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// Every command receives the CLI logger through its context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "bizchart draws scrollable row-based charts",
		Long:         `bizchart lays out chart description files as rows of bars and draws the visible part to SVG, PNG, PDF, a terminal viewer, or over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
