//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	BaseURL    string
	Token      string
	TenantID   string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:    os.Getenv("IDG_IT_BASE_URL"),
		Token:      os.Getenv("IDG_IT_TOKEN"),
		TenantID:   os.Getenv("IDG_IT_TENANT_ID"),
		BinaryPath: binaryPath(),
		Verbose:    os.Getenv("IDG_IT_VERBOSE") == "true",
	}
}

// binaryPath determines the path to the idg binary.
func binaryPath() string {
	if path := os.Getenv("IDG_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../idg", "./idg", "../idg"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "idg"
}

// SkipIfMissingAPI skips the test when no API is configured.
func (config *TestConfig) SkipIfMissingAPI(t *testing.T) {
	t.Helper()

	if config.BaseURL == "" || config.Token == "" {
		t.Skip("IDG_IT_BASE_URL or IDG_IT_TOKEN not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the idg binary cannot be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("idg binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the idg binary against the configured API with an
// isolated home directory.
type CommandRunner struct {
	config *TestConfig
	home   string
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		home:   t.TempDir(),
		t:      t,
	}
}

// Run executes an idg command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes an idg command with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+runner.home)
	cmd.Stdin = strings.NewReader(input)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
