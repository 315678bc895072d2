package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fivetwenty-io/governance-client/internal/config"
	"github.com/fivetwenty-io/governance-client/internal/constants"
	"github.com/fivetwenty-io/governance-client/internal/logger"
	"github.com/fivetwenty-io/governance-client/internal/session"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
	"github.com/fivetwenty-io/governance-client/pkg/govclient"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// App holds the state shared by all commands of one invocation.
type App struct {
	viper *viper.Viper
	// HomeDir overrides the user's home directory; empty means os.UserHomeDir.
	HomeDir string

	configFile  string
	metricsFile string

	config   *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
}

// Execute builds the idg command tree and runs it with ctx. Logs are synced
// and the metrics file is written whether or not the command succeeds.
func Execute(ctx context.Context, info BuildInfo) error {
	app := &App{viper: viper.New()}

	return executeRoot(ctx, app, newRootCommand(app, info))
}

func executeRoot(ctx context.Context, app *App, root *cobra.Command) (err error) {
	defer func() {
		finishErr := app.finish()
		if err == nil {
			err = finishErr
		}
	}()

	return root.ExecuteContext(ctx)
}

func newRootCommand(app *App, info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "idg",
		Short: "Identity governance API CLI",
		Long: `A command-line interface for the identity governance REST API.

It manages identities, entitlements, roles, access profiles, source connectors
and certification campaigns of a governance tenant.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initialize(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.configFile, "config", "c", "", "config file (default is $HOME/.idg/config.yml)")
	flags.String("base-url", "", "governance API base URL")
	flags.StringP("token", "t", "", "bearer token")
	flags.String("tenant", "", "tenant ID sent as X-Tenant-Id")
	flags.StringP("profile", "p", "", "stored session profile (default \"default\")")
	flags.StringP("output", "o", "", "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log HTTP requests to stderr")
	flags.StringVar(&app.metricsFile, "metrics-file", "", "write Prometheus request metrics to this file on exit")

	_ = app.viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = app.viper.BindPFlag("token", flags.Lookup("token"))
	_ = app.viper.BindPFlag("tenant_id", flags.Lookup("tenant"))
	_ = app.viper.BindPFlag("profile", flags.Lookup("profile"))
	_ = app.viper.BindPFlag("output", flags.Lookup("output"))
	_ = app.viper.BindPFlag("verbose", flags.Lookup("verbose"))

	rootCmd.AddCommand(NewVersionCommand(app, info))
	rootCmd.AddCommand(NewLoginCommand(app))
	rootCmd.AddCommand(NewLogoutCommand(app))
	rootCmd.AddCommand(NewWhoamiCommand(app))
	rootCmd.AddCommand(NewProfilesCommand(app))
	rootCmd.AddCommand(NewIdentitiesCommand(app))
	rootCmd.AddCommand(NewEntitlementsCommand(app))
	rootCmd.AddCommand(NewRolesCommand(app))
	rootCmd.AddCommand(NewAccessProfilesCommand(app))
	rootCmd.AddCommand(NewConnectorsCommand(app))
	rootCmd.AddCommand(NewCampaignsCommand(app))

	return rootCmd
}

// initialize loads configuration and builds the logger.
func (a *App) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(a.viper, config.Options{ConfigFile: a.configFile, HomeDir: a.HomeDir})
	if err != nil {
		return err
	}

	a.config = cfg

	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}

	a.logger = logger.NewWithWriter(level, cmd.ErrOrStderr())

	if a.metricsFile != "" {
		a.registry = prometheus.NewRegistry()
	}

	if cfg.Verbose && a.viper.ConfigFileUsed() != "" {
		a.logger.Debug("Using config file", zap.String("path", a.viper.ConfigFileUsed()))
	}

	return nil
}

func (a *App) finish() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}

	if a.registry == nil {
		return nil
	}

	err := prometheus.WriteToTextfile(a.metricsFile, a.registry)
	if err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}

	return nil
}

// Client builds a governance client from the loaded configuration. Base URL,
// token and tenant not given by flags, environment or config file are taken
// from the stored session of the active profile, as long as the base URL is
// unset or names the stored host.
func (a *App) Client() (governance.Client, error) {
	cfg := *a.config

	if cfg.BaseURL == "" || cfg.Token == "" || cfg.TenantID == "" {
		stored, err := a.storedSession(cfg.Profile)
		if err != nil {
			return nil, err
		}

		if stored != nil {
			applySession(&cfg, stored)
		}
	}

	return a.clientFor(cfg)
}

// clientFor builds a governance client from cfg exactly as given.
func (a *App) clientFor(cfg config.Config) (governance.Client, error) {
	clientConfig, err := cfg.ClientConfig(logger.NewAdapter(a.logger), a.registerer())
	if err != nil {
		if errors.Is(err, governance.ErrBaseURLRequired) {
			return nil, fmt.Errorf("%w, use --base-url or 'idg login'", err)
		}

		return nil, err
	}

	client, err := govclient.New(clientConfig)
	if err != nil {
		return nil, err //nolint:wrapcheck // already descriptive
	}

	return client, nil
}

func (a *App) registerer() prometheus.Registerer {
	if a.registry == nil {
		return nil
	}

	return a.registry
}

// storedSession returns the session for profile, or nil when none is stored.
// The session file is not created just to look.
func (a *App) storedSession(profile string) (*session.Session, error) {
	_, err := os.Stat(a.config.SessionDB)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	store, err := session.Open(a.config.SessionDB)
	if err != nil {
		return nil, err //nolint:wrapcheck // already descriptive
	}

	defer func() { _ = store.Close() }()

	stored, err := store.Load(profile)
	if errors.Is(err, constants.ErrSessionNotFound) {
		return nil, nil
	}

	return stored, err //nolint:wrapcheck // already descriptive
}

// applySession fills the unset connection settings of cfg from stored. A base
// URL that names another host keeps the stored credentials away from it.
func applySession(cfg *config.Config, stored *session.Session) {
	if cfg.BaseURL != "" && !sameBaseURL(cfg.BaseURL, stored.BaseURL) {
		return
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = stored.BaseURL
	}

	if cfg.Token == "" {
		cfg.Token = stored.Token
	}

	if cfg.TenantID == "" {
		cfg.TenantID = stored.TenantID
	}
}

func sameBaseURL(a, b string) bool {
	return strings.TrimRight(a, "/") == strings.TrimRight(b, "/")
}

// FormatError renders err for the terminal. API errors include the HTTP
// status and, when present, the error kind.
func FormatError(err error) string {
	apiErr, ok := governance.AsAPIError(err)
	if !ok {
		return "Error: " + err.Error()
	}

	if apiErr.Kind != "" {
		return fmt.Sprintf("Error: %s (status %d, kind %s)", apiErr.Message, apiErr.Status, apiErr.Kind)
	}

	return fmt.Sprintf("Error: %s (status %d)", apiErr.Message, apiErr.Status)
}
