package commands

import (
	"github.com/spf13/cobra"
)

var buildInfoColumns = []column[BuildInfo]{
	{"Version", func(b BuildInfo) string { return b.Version }},
	{"Commit", func(b BuildInfo) string { return b.Commit }},
	{"Built", func(b BuildInfo) string { return b.Built }},
}

// NewVersionCommand creates the version command.
func NewVersionCommand(app *App, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the idg CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderItem(cmd, app, &info, buildInfoColumns)
		},
	}
}
