//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
	"github.com/fivetwenty-io/governance-client/pkg/govclient"
)

// GovernanceIntegrationTestSuite runs read-only checks against a live API.
type GovernanceIntegrationTestSuite struct {
	suite.Suite

	config *TestConfig
	client governance.Client
}

func (s *GovernanceIntegrationTestSuite) SetupSuite() {
	s.config = LoadTestConfig()
	s.config.SkipIfMissingAPI(s.T())

	client, err := govclient.NewWithToken(s.config.BaseURL, s.config.Token, s.config.TenantID)
	s.Require().NoError(err)

	s.client = client
}

func (s *GovernanceIntegrationTestSuite) context() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s.T().Cleanup(cancel)

	return ctx
}

func (s *GovernanceIntegrationTestSuite) TestListIdentities() {
	params := governance.NewQueryParams()
	params.Limit = 5

	identities, err := s.client.Identities().List(s.context(), params)
	s.Require().NoError(err)
	s.Require().NotNil(identities)
	s.LessOrEqual(len(identities.Items), 5)
}

func (s *GovernanceIntegrationTestSuite) TestGetRoleRoundTrip() {
	params := governance.NewQueryParams()
	params.Limit = 1

	roles, err := s.client.Roles().List(s.context(), params)
	s.Require().NoError(err)

	if roles == nil || len(roles.Items) == 0 {
		s.T().Skip("tenant has no roles")
	}

	role, err := s.client.Roles().Get(s.context(), roles.Items[0].ID)
	s.Require().NoError(err)
	s.Equal(roles.Items[0].ID, role.ID)
}

func (s *GovernanceIntegrationTestSuite) TestMissingResourceIsNotFound() {
	_, err := s.client.Campaigns().Get(s.context(), "does-not-exist-"+time.Now().Format("150405"))
	s.Require().Error(err)

	apiErr, ok := governance.AsAPIError(err)
	s.Require().True(ok, "expected an API error, got %v", err)
	s.Equal(http.StatusNotFound, apiErr.Status)
	s.NotEmpty(apiErr.Message)
}

func TestGovernanceIntegrationSuite(t *testing.T) {
	suite.Run(t, new(GovernanceIntegrationTestSuite))
}

func TestCLIWorkflow_LoginListLogout(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingAPI(t)
	config.SkipIfMissingBinary(t)

	runner := NewCommandRunner(config, t)

	args := []string{"login", "--base-url", config.BaseURL, "--verify"}
	if config.TenantID != "" {
		args = append(args, "--tenant", config.TenantID)
	}

	_, stderr, err := runner.RunWithInput(config.Token+"\n", args...)
	require.NoError(t, err, stderr)

	stdout, stderr, err := runner.Run("roles", "list", "--limit", "3", "-o", "json")
	require.NoError(t, err, stderr)

	var roles governance.ListResponse[governance.Role]
	require.NoError(t, json.Unmarshal([]byte(stdout), &roles))

	_, stderr, err = runner.Run("logout")
	require.NoError(t, err, stderr)

	_, _, err = runner.Run("whoami")
	require.Error(t, err)
}
