package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

var campaignColumns = []column[governance.Campaign]{
	{"ID", func(c governance.Campaign) string { return c.ID }},
	{"Name", func(c governance.Campaign) string { return c.Name }},
	{"Type", func(c governance.Campaign) string { return statusText(c.Type) }},
	{"Status", func(c governance.Campaign) string { return statusText(c.Status) }},
	{"Deadline", func(c governance.Campaign) string { return timeText(c.Deadline) }},
}

// NewCampaignsCommand creates the campaigns command group.
func NewCampaignsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign"},
		Short:   "Manage certification campaigns",
		Long:    "List, inspect, activate, complete and delete access certification campaigns",
	}

	cmd.AddCommand(newCampaignsListCommand(app))
	cmd.AddCommand(newCampaignsGetCommand(app))
	cmd.AddCommand(newCampaignsActivateCommand(app))
	cmd.AddCommand(newCampaignsCompleteCommand(app))
	cmd.AddCommand(newCampaignsDeleteCommand(app))

	return cmd
}

func newCampaignsListCommand(app *App) *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		Long:  "List certification campaigns, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			campaigns, err := listPage(cmd, opts, client.Campaigns().List)
			if err != nil {
				return err
			}

			return renderList(cmd, app, campaigns, campaignColumns)
		},
	}

	opts.register(cmd)

	return cmd
}

func newCampaignsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get CAMPAIGN_ID",
		Short: "Get campaign details",
		Long:  "Display detailed information about a specific campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			campaign, err := client.Campaigns().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderItem(cmd, app, campaign, campaignColumns)
		},
	}
}

func newCampaignsActivateCommand(app *App) *cobra.Command {
	var timeZone string

	cmd := &cobra.Command{
		Use:   "activate CAMPAIGN_ID",
		Short: "Activate a campaign",
		Long:  "Activate a staged campaign so reviewers can start certifying access",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var request *governance.CampaignActivateRequest
			if timeZone != "" {
				request = &governance.CampaignActivateRequest{TimeZone: timeZone}
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			task, err := client.Campaigns().Activate(cmd.Context(), args[0], request)
			if err != nil {
				return err
			}

			return renderItem(cmd, app, task, taskColumns)
		},
	}

	cmd.Flags().StringVar(&timeZone, "timezone", "", "IANA time zone for the campaign deadline")

	return cmd
}

func newCampaignsCompleteCommand(app *App) *cobra.Command {
	var autoCompleteAction string

	cmd := &cobra.Command{
		Use:   "complete CAMPAIGN_ID",
		Short: "Complete a campaign",
		Long:  "Complete an active campaign, optionally deciding undecided items automatically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var request *governance.CampaignCompleteRequest
			if autoCompleteAction != "" {
				request = &governance.CampaignCompleteRequest{AutoCompleteAction: autoCompleteAction}
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			task, err := client.Campaigns().Complete(cmd.Context(), args[0], request)
			if err != nil {
				return err
			}

			return renderItem(cmd, app, task, taskColumns)
		},
	}

	cmd.Flags().StringVar(&autoCompleteAction, "auto-complete-action", "", "decision for undecided items (APPROVE or REVOKE)")

	return cmd
}

func newCampaignsDeleteCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CAMPAIGN_ID...",
		Short: "Delete campaigns",
		Long:  "Delete one or more certification campaigns. Each id is deleted with its own request.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			return deleteEach(cmd, "campaign", args, force, client.Campaigns().Delete)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
