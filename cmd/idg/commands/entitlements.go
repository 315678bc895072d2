package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

var entitlementColumns = []column[governance.Entitlement]{
	{"ID", func(e governance.Entitlement) string { return e.ID }},
	{"Name", func(e governance.Entitlement) string { return e.Name }},
	{"Attribute", func(e governance.Entitlement) string { return e.Attribute }},
	{"Source", func(e governance.Entitlement) string { return refName(e.Source) }},
	{"Privileged", func(e governance.Entitlement) string { return yesNo(e.Privileged) }},
	{"Requestable", func(e governance.Entitlement) string { return yesNo(e.Requestable) }},
}

// NewEntitlementsCommand creates the entitlements command group.
func NewEntitlementsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entitlements",
		Aliases: []string{"entitlement", "ent"},
		Short:   "Manage entitlements",
		Long:    "List and inspect entitlements aggregated from sources",
	}

	cmd.AddCommand(newEntitlementsListCommand(app))
	cmd.AddCommand(newEntitlementsGetCommand(app))
	cmd.AddCommand(newEntitlementsUpdateCommand(app))

	return cmd
}

func newEntitlementsListCommand(app *App) *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entitlements",
		Long:  "List entitlements, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			entitlements, err := listPage(cmd, opts, client.Entitlements().List)
			if err != nil {
				return err
			}

			return renderList(cmd, app, entitlements, entitlementColumns)
		},
	}

	opts.register(cmd)

	return cmd
}

func newEntitlementsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ENTITLEMENT_ID",
		Short: "Get entitlement details",
		Long:  "Display detailed information about a specific entitlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			entitlement, err := client.Entitlements().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderItem(cmd, app, entitlement, entitlementColumns)
		},
	}
}

func newEntitlementsUpdateCommand(app *App) *cobra.Command {
	var (
		description string
		privileged  bool
		requestable bool
	)

	cmd := &cobra.Command{
		Use:   "update ENTITLEMENT_ID",
		Short: "Update an entitlement",
		Long:  "Update the description, privileged or requestable flag of an entitlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &governance.EntitlementUpdateRequest{}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			if cmd.Flags().Changed("privileged") {
				request.Privileged = &privileged
			}

			if cmd.Flags().Changed("requestable") {
				request.Requestable = &requestable
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			entitlement, err := client.Entitlements().Update(cmd.Context(), args[0], request)
			if err != nil {
				return err
			}

			return renderItem(cmd, app, entitlement, entitlementColumns)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().BoolVar(&privileged, "privileged", false, "mark the entitlement privileged")
	cmd.Flags().BoolVar(&requestable, "requestable", false, "allow the entitlement to be requested")

	return cmd
}
