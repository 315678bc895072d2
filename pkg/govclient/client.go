package govclient

import (
	"fmt"

	"github.com/fivetwenty-io/governance-client/internal/client"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// New creates a governance API client from config.
func New(config *governance.Config) (governance.Client, error) {
	if config == nil {
		return nil, governance.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithEndpoint creates an unauthenticated client for baseURL.
func NewWithEndpoint(baseURL string) (governance.Client, error) {
	return New(&governance.Config{BaseURL: baseURL})
}

// NewWithToken creates a client that authenticates with a bearer token and,
// when tenantID is non-empty, scopes every request to that tenant.
func NewWithToken(baseURL, token, tenantID string) (governance.Client, error) {
	return New(&governance.Config{
		BaseURL:  baseURL,
		Token:    token,
		TenantID: tenantID,
	})
}
