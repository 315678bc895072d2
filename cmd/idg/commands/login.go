package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/fivetwenty-io/governance-client/internal/constants"
	"github.com/fivetwenty-io/governance-client/internal/session"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(app *App) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for a profile",
		Long: `Store the base URL, bearer token and tenant of a governance API for later use.

The token is read from --token, or prompted for when not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.config

			if cfg.BaseURL == "" {
				return fmt.Errorf("%w, use --base-url", governance.ErrBaseURLRequired)
			}

			token := cfg.Token
			if token == "" {
				var err error

				token, err = readToken(cmd)
				if err != nil {
					return err
				}
			}

			if token == "" {
				return ErrTokenRequired
			}

			cfg.Token = token

			if verify {
				client, err := app.clientFor(*cfg)
				if err != nil {
					return err
				}

				_, err = client.Identities().List(cmd.Context(), &governance.QueryParams{Limit: 1})
				if err != nil {
					return fmt.Errorf("failed to verify credentials: %w", err)
				}
			}

			store, err := session.Open(cfg.SessionDB)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			defer func() { _ = store.Close() }()

			err = store.Save(&session.Session{
				Profile:  cfg.Profile,
				BaseURL:  cfg.BaseURL,
				Token:    token,
				TenantID: cfg.TenantID,
			})
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			app.logger.Debug("Session saved", zap.String("profile", cfg.Profile), zap.String("path", cfg.SessionDB))

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as profile %s\n", cfg.BaseURL, cfg.Profile)

			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check the credentials against the API before saving")

	return cmd
}

// readToken prompts for the token, hiding input on a terminal.
func readToken(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Token: ")

	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		_, _ = fmt.Fprintln(cmd.OutOrStdout())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(tokenBytes)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", ErrTokenRequired
	}

	return strings.TrimSpace(line), nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credentials of a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.Open(app.config.SessionDB)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			defer func() { _ = store.Close() }()

			err = store.Delete(app.config.Profile)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged out of profile %s\n", app.config.Profile)

			return nil
		},
	}
}

var sessionColumns = []column[session.Session]{
	{"Profile", func(s session.Session) string { return s.Profile }},
	{"Base URL", func(s session.Session) string { return orNA(s.BaseURL) }},
	{"Tenant", func(s session.Session) string { return orNA(s.TenantID) }},
	{"Token", func(s session.Session) string { return maskToken(s.Token) }},
	{"Saved", func(s session.Session) string { return timeText(&s.SavedAt) }},
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session of a profile",
		Long:  "Show the stored session of the active profile. The token is masked in every output format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.Open(app.config.SessionDB)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			defer func() { _ = store.Close() }()

			stored, err := store.Load(app.config.Profile)
			if errors.Is(err, constants.ErrSessionNotFound) {
				return fmt.Errorf("%w as profile %s, run 'idg login'", governance.ErrNotLoggedIn, app.config.Profile)
			}

			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			stored.Token = maskToken(stored.Token)

			return renderItem(cmd, app, stored, sessionColumns)
		},
	}
}

// NewProfilesCommand creates the profiles command.
func NewProfilesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List profiles with a stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.Open(app.config.SessionDB)
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			defer func() { _ = store.Close() }()

			profiles, err := store.Profiles()
			if err != nil {
				return err //nolint:wrapcheck // already descriptive
			}

			out := cmd.OutOrStdout()

			switch app.outputFormat() {
			case constants.FormatJSON:
				return writeJSON(out, profiles)
			case constants.FormatYAML:
				return writeYAML(out, profiles)
			}

			if len(profiles) == 0 {
				_, _ = fmt.Fprintln(out, "No results found")

				return nil
			}

			for _, profile := range profiles {
				marker := " "
				if profile == app.config.Profile {
					marker = "*"
				}

				_, _ = fmt.Fprintf(out, "%s %s\n", marker, profile)
			}

			return nil
		},
	}
}
