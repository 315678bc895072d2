package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for the configuration directory.
	ConfigDirPerm = 0o750

	// ConfigFilePerm is the permission for configuration and session files.
	ConfigFilePerm = 0o600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding CLI state.
	ConfigDirName = ".idg"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// SessionFileName is the bbolt file storing login sessions.
	SessionFileName = "sessions.db"

	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "IDG"

	// DefaultEnvFile is loaded into the environment before configuration is read.
	DefaultEnvFile = ".env"

	// DefaultProfile names the session used when no profile is given.
	DefaultProfile = "default"
)

// HTTP and storage timeouts.
const (
	// DefaultHTTPTimeout bounds a single round trip of the CLI's transport.
	DefaultHTTPTimeout = 30 * time.Second

	// SessionLockTimeout bounds how long opening the session file waits for its lock.
	SessionLockTimeout = time.Second
)

// Transport names accepted by the transport setting.
const (
	// TransportStandard is the pooled net/http client.
	TransportStandard = "std"

	// TransportResty is the go-resty client.
	TransportResty = "resty"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the number of items requested per list call.
	DefaultPageSize = 50

	// PeekPageSize is the number of accounts fetched by connector peeks.
	PeekPageSize = 10

	// DeleteConcurrency is how many single deletes run at once for resources
	// without a bulk endpoint.
	DeleteConcurrency = 4

	// TokenVisibleChars is how many leading token characters stay visible when masked.
	TokenVisibleChars = 4
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the indentation used by JSON and YAML output.
	JSONIndentSize = 2
)
