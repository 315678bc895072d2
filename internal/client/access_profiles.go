package client

import (
	"context"

	"github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// AccessProfilesClient implements governance.AccessProfilesClient.
type AccessProfilesClient struct {
	*ResourceClient[governance.AccessProfile, governance.AccessProfileCreateRequest, governance.AccessProfileUpdateRequest]
}

// NewAccessProfilesClient creates a new access profiles client.
func NewAccessProfilesClient(httpClient *http.Client, credentials Credentials) *AccessProfilesClient {
	r := requester{httpClient: httpClient, credentials: credentials}

	return &AccessProfilesClient{
		ResourceClient: newResourceClient[
			governance.AccessProfile,
			governance.AccessProfileCreateRequest,
			governance.AccessProfileUpdateRequest,
		](r, "/v1/access-profiles"),
	}
}

// BulkDelete implements governance.AccessProfilesClient.BulkDelete.
func (c *AccessProfilesClient) BulkDelete(ctx context.Context, ids []string) (*governance.Task, error) {
	return c.bulkDelete(ctx, ids)
}
