package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

var roleColumns = []column[governance.Role]{
	{"ID", func(r governance.Role) string { return r.ID }},
	{"Name", func(r governance.Role) string { return r.Name }},
	{"Owner", func(r governance.Role) string { return refName(r.Owner) }},
	{"Access Profiles", func(r governance.Role) string { return countText(len(r.AccessProfiles)) }},
	{"Enabled", func(r governance.Role) string { return yesNo(r.Enabled) }},
	{"Requestable", func(r governance.Role) string { return yesNo(r.Requestable) }},
}

// NewRolesCommand creates the roles command group.
func NewRolesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Manage roles",
		Long:    "List, inspect and delete business roles",
	}

	cmd.AddCommand(newRolesListCommand(app))
	cmd.AddCommand(newRolesGetCommand(app))
	cmd.AddCommand(newRolesDeleteCommand(app))

	return cmd
}

func newRolesListCommand(app *App) *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roles",
		Long:  "List roles, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			roles, err := listPage(cmd, opts, client.Roles().List)
			if err != nil {
				return err
			}

			return renderList(cmd, app, roles, roleColumns)
		},
	}

	opts.register(cmd)

	return cmd
}

func newRolesGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ROLE_ID",
		Short: "Get role details",
		Long:  "Display detailed information about a specific role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			role, err := client.Roles().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderItem(cmd, app, role, roleColumns)
		},
	}
}

func newRolesDeleteCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ROLE_ID...",
		Short: "Delete roles",
		Long:  "Delete one role, or several at once through a bulk delete task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			roles := client.Roles()

			return deleteWithBulk(cmd, app, "role", args, force, roles.Delete, roles.BulkDelete)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
