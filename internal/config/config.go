// Package config loads CLI settings from flags, environment, .env files and
// the YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/governance-client/internal/constants"
	"github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// Config holds the CLI configuration.
type Config struct {
	BaseURL  string `mapstructure:"base_url"  yaml:"base_url"`
	Token    string `mapstructure:"token"     yaml:"token"`
	TenantID string `mapstructure:"tenant_id" yaml:"tenant_id"`
	Profile  string `mapstructure:"profile"   yaml:"profile"`

	Output   string `mapstructure:"output"    yaml:"output"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Verbose  bool   `mapstructure:"verbose"   yaml:"verbose"`

	Transport          string        `mapstructure:"transport"    yaml:"transport"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout" yaml:"http_timeout"`
	HTTPTimeout        time.Duration `mapstructure:"-"            yaml:"-"`
	SessionDB          string        `mapstructure:"session_db"   yaml:"session_db"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile overrides the default $HOME/.idg/config.yml.
	ConfigFile string
	// EnvFile is loaded into the process environment first. Variables that
	// are already set win.
	EnvFile string
	// HomeDir overrides the user's home directory.
	HomeDir string
}

// SetDefaults registers every key with its default value so environment
// variables are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "")
	v.SetDefault("token", "")
	v.SetDefault("tenant_id", "")
	v.SetDefault("profile", constants.DefaultProfile)
	v.SetDefault("output", constants.FormatTable)
	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("transport", constants.TransportStandard)
	v.SetDefault("http_timeout", int64(constants.DefaultHTTPTimeout/time.Second))
	v.SetDefault("session_db", "")
}

// Load reads the configuration into v and returns the validated result.
// Precedence, highest first: flags bound to v, IDG_* environment variables,
// the config file, defaults. A missing default config file is not an error;
// a missing explicit one is.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = constants.DefaultEnvFile
	}

	_ = godotenv.Load(envFile)

	home := opts.HomeDir
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}

		home = dir
	}

	configDir := filepath.Join(home, constants.ConfigDirName)

	SetDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.AddConfigPath(configDir)
		v.SetConfigType("yml")
		v.SetConfigName(constants.ConfigFileName)
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.SessionDB == "" {
		cfg.SessionDB = filepath.Join(configDir, constants.SessionFileName)
	}

	if cfg.Profile == "" {
		cfg.Profile = constants.DefaultProfile
	}

	cfg.Output = strings.ToLower(cfg.Output)
	cfg.Transport = strings.ToLower(cfg.Transport)

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}

// Validate checks the settings that have a closed set of values.
func (c *Config) Validate() error {
	switch c.Output {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, c.Output)
	}

	switch c.Transport {
	case constants.TransportStandard, constants.TransportResty:
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidTransport, c.Transport)
	}

	if c.HTTPTimeoutSeconds < 0 {
		return constants.ErrInvalidHTTPTimeout
	}

	return nil
}

// ClientConfig builds the governance client configuration. Debug logging is
// enabled when verbose is set and a logger is given; reg, when non-nil,
// instruments the standard transport.
func (c *Config) ClientConfig(logger governance.Logger, reg prometheus.Registerer) (*governance.Config, error) {
	if c.BaseURL == "" {
		return nil, governance.ErrBaseURLRequired
	}

	config := &governance.Config{
		BaseURL:           c.BaseURL,
		Token:             c.Token,
		TenantID:          c.TenantID,
		HTTPTimeout:       c.HTTPTimeout,
		MetricsRegisterer: reg,
		Debug:             c.Verbose,
		Logger:            logger,
	}

	if c.Transport == constants.TransportResty {
		config.Transport = http.NewRestyTransport(c.HTTPTimeout)
	}

	return config, nil
}
