package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

var accessProfileColumns = []column[governance.AccessProfile]{
	{"ID", func(p governance.AccessProfile) string { return p.ID }},
	{"Name", func(p governance.AccessProfile) string { return p.Name }},
	{"Source", func(p governance.AccessProfile) string { return refName(p.Source) }},
	{"Entitlements", func(p governance.AccessProfile) string { return countText(len(p.Entitlements)) }},
	{"Enabled", func(p governance.AccessProfile) string { return yesNo(p.Enabled) }},
}

// NewAccessProfilesCommand creates the access-profiles command group.
func NewAccessProfilesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "access-profiles",
		Aliases: []string{"access-profile", "ap"},
		Short:   "Manage access profiles",
		Long:    "List, inspect and delete access profiles",
	}

	cmd.AddCommand(newAccessProfilesListCommand(app))
	cmd.AddCommand(newAccessProfilesGetCommand(app))
	cmd.AddCommand(newAccessProfilesDeleteCommand(app))

	return cmd
}

func newAccessProfilesListCommand(app *App) *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List access profiles",
		Long:  "List access profiles, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			profiles, err := listPage(cmd, opts, client.AccessProfiles().List)
			if err != nil {
				return err
			}

			return renderList(cmd, app, profiles, accessProfileColumns)
		},
	}

	opts.register(cmd)

	return cmd
}

func newAccessProfilesGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCESS_PROFILE_ID",
		Short: "Get access profile details",
		Long:  "Display detailed information about a specific access profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			profile, err := client.AccessProfiles().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderItem(cmd, app, profile, accessProfileColumns)
		},
	}
}

func newAccessProfilesDeleteCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ACCESS_PROFILE_ID...",
		Short: "Delete access profiles",
		Long:  "Delete one access profile, or several at once through a bulk delete task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			profiles := client.AccessProfiles()

			return deleteWithBulk(cmd, app, "access profile", args, force, profiles.Delete, profiles.BulkDelete)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
