package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

var identityColumns = []column[governance.Identity]{
	{"ID", func(i governance.Identity) string { return i.ID }},
	{"Name", func(i governance.Identity) string { return i.Name }},
	{"Email", func(i governance.Identity) string { return orNA(i.Email) }},
	{"Status", func(i governance.Identity) string { return statusText(i.Status) }},
	{"Manager", func(i governance.Identity) string { return refName(i.ManagerRef) }},
}

var accessItemColumns = []column[governance.AccessItem]{
	{"ID", func(a governance.AccessItem) string { return a.ID }},
	{"Type", func(a governance.AccessItem) string { return statusText(a.Type) }},
	{"Name", func(a governance.AccessItem) string { return a.Name }},
	{"Source", func(a governance.AccessItem) string { return refName(a.Source) }},
}

// NewIdentitiesCommand creates the identities command group.
func NewIdentitiesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identities",
		Aliases: []string{"identity", "id"},
		Short:   "Manage identities",
		Long:    "List and inspect identities and the access they hold",
	}

	cmd.AddCommand(newIdentitiesListCommand(app))
	cmd.AddCommand(newIdentitiesGetCommand(app))
	cmd.AddCommand(newIdentitiesAccessCommand(app))
	cmd.AddCommand(newIdentitiesSyncCommand(app))

	return cmd
}

func newIdentitiesListCommand(app *App) *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List identities",
		Long:  "List identities, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			identities, err := listPage(cmd, opts, client.Identities().List)
			if err != nil {
				return err
			}

			return renderList(cmd, app, identities, identityColumns)
		},
	}

	opts.register(cmd)

	return cmd
}

func newIdentitiesGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get IDENTITY_ID",
		Short: "Get identity details",
		Long:  "Display detailed information about a specific identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			identity, err := client.Identities().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderItem(cmd, app, identity, identityColumns)
		},
	}
}

func newIdentitiesAccessCommand(app *App) *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "access IDENTITY_ID",
		Short: "List access held by an identity",
		Long:  "List the roles, access profiles and entitlements held by an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			access, err := listPage(cmd, opts, func(ctx context.Context, params *governance.QueryParams) (*governance.ListResponse[governance.AccessItem], error) {
				return client.Identities().ListAccess(ctx, args[0], params)
			})
			if err != nil {
				return err
			}

			return renderList(cmd, app, access, accessItemColumns)
		},
	}

	opts.register(cmd)

	return cmd
}

func newIdentitiesSyncCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync IDENTITY_ID",
		Short: "Synchronize identity attributes",
		Long:  "Start a task that refreshes an identity's attributes from its sources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			task, err := client.Identities().SyncAttributes(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderItem(cmd, app, task, taskColumns)
		},
	}
}
