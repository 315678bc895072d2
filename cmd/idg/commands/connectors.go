package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/governance-client/internal/constants"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

var connectorColumns = []column[governance.Connector]{
	{"ID", func(c governance.Connector) string { return c.ID }},
	{"Name", func(c governance.Connector) string { return c.Name }},
	{"Type", func(c governance.Connector) string { return c.Type }},
	{"Status", func(c governance.Connector) string { return statusText(c.Status) }},
	{"Authoritative", func(c governance.Connector) string { return yesNo(c.Authoritative) }},
}

var connectionTestColumns = []column[governance.ConnectionTestResult]{
	{"ID", func(r governance.ConnectionTestResult) string { return r.ID }},
	{"Status", func(r governance.ConnectionTestResult) string { return statusText(r.Status) }},
	{"Successful", func(r governance.ConnectionTestResult) string { return yesNo(r.Successful) }},
	{"Elapsed (ms)", func(r governance.ConnectionTestResult) string { return countText(r.ElapsedMS) }},
	{"Details", func(r governance.ConnectionTestResult) string { return orNA(r.Details) }},
}

// NewConnectorsCommand creates the connectors command group.
func NewConnectorsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connectors",
		Aliases: []string{"connector", "sources"},
		Short:   "Manage source connectors",
		Long:    "List, inspect, test and delete connections to source systems",
	}

	cmd.AddCommand(newConnectorsListCommand(app))
	cmd.AddCommand(newConnectorsGetCommand(app))
	cmd.AddCommand(newConnectorsTestCommand(app))
	cmd.AddCommand(newConnectorsPeekCommand(app))
	cmd.AddCommand(newConnectorsDeleteCommand(app))

	return cmd
}

func newConnectorsListCommand(app *App) *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connectors",
		Long:  "List source connectors, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			connectors, err := listPage(cmd, opts, client.Connectors().List)
			if err != nil {
				return err
			}

			return renderList(cmd, app, connectors, connectorColumns)
		},
	}

	opts.register(cmd)

	return cmd
}

func newConnectorsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get CONNECTOR_ID",
		Short: "Get connector details",
		Long:  "Display detailed information about a specific connector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			connector, err := client.Connectors().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderItem(cmd, app, connector, connectorColumns)
		},
	}
}

func newConnectorsTestCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "test CONNECTOR_ID",
		Short: "Test a connector",
		Long:  "Ask the server to test the connection to the connector's source system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			result, err := client.Connectors().TestConnection(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderItem(cmd, app, result, connectionTestColumns)
		},
	}
}

func newConnectorsPeekCommand(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "peek CONNECTOR_ID",
		Short: "Preview source accounts",
		Long:  "Fetch a few raw accounts from the connector's source system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			accounts, err := client.Connectors().PeekAccounts(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			return renderAccounts(cmd, app, accounts)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.PeekPageSize, "number of accounts to fetch")

	return cmd
}

// renderAccounts prints raw accounts as attribute rows, since their
// attributes differ per source.
func renderAccounts(cmd *cobra.Command, app *App, accounts *governance.ListResponse[map[string]interface{}]) error {
	if app.outputFormat() != constants.FormatTable {
		return renderList(cmd, app, accounts, nil)
	}

	out := cmd.OutOrStdout()

	if accounts == nil || len(accounts.Items) == 0 {
		_, _ = fmt.Fprintln(out, "No results found")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("Account", "Attribute", "Value")

	for index, account := range accounts.Items {
		for _, key := range sortedKeys(account) {
			err := table.Append(countText(index+1), key, fmt.Sprint(account[key]))
			if err != nil {
				return fmt.Errorf("failed to append table row: %w", err)
			}
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newConnectorsDeleteCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CONNECTOR_ID...",
		Short: "Delete connectors",
		Long:  "Delete one or more source connectors. Each id is deleted with its own request.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			return deleteEach(cmd, "connector", args, force, client.Connectors().Delete)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
