package client

import (
	"context"

	"github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// RolesClient implements governance.RolesClient.
type RolesClient struct {
	*ResourceClient[governance.Role, governance.RoleCreateRequest, governance.RoleUpdateRequest]
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *http.Client, credentials Credentials) *RolesClient {
	r := requester{httpClient: httpClient, credentials: credentials}

	return &RolesClient{
		ResourceClient: newResourceClient[governance.Role, governance.RoleCreateRequest, governance.RoleUpdateRequest](r, "/v1/roles"),
	}
}

// BulkDelete implements governance.RolesClient.BulkDelete.
func (c *RolesClient) BulkDelete(ctx context.Context, ids []string) (*governance.Task, error) {
	return c.bulkDelete(ctx, ids)
}
