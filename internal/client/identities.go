package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

const identitiesPath = "/v1/identities"

// IdentitiesClient implements governance.IdentitiesClient.
type IdentitiesClient struct {
	requester
}

// NewIdentitiesClient creates a new identities client.
func NewIdentitiesClient(httpClient *http.Client, credentials Credentials) *IdentitiesClient {
	return &IdentitiesClient{
		requester: requester{httpClient: httpClient, credentials: credentials},
	}
}

// List implements governance.IdentitiesClient.List.
func (c *IdentitiesClient) List(ctx context.Context, params *governance.QueryParams) (*governance.ListResponse[governance.Identity], error) {
	return get[governance.ListResponse[governance.Identity]](ctx, c.requester, governance.WithQuery(identitiesPath, params))
}

// Get implements governance.IdentitiesClient.Get.
func (c *IdentitiesClient) Get(ctx context.Context, id string) (*governance.Identity, error) {
	return get[governance.Identity](ctx, c.requester, resourcePath(identitiesPath, id))
}

// ListAccess implements governance.IdentitiesClient.ListAccess.
func (c *IdentitiesClient) ListAccess(ctx context.Context, id string, params *governance.QueryParams) (*governance.ListResponse[governance.AccessItem], error) {
	path := governance.WithQuery(resourcePath(identitiesPath, id, "access"), params)

	return get[governance.ListResponse[governance.AccessItem]](ctx, c.requester, path)
}

// SyncAttributes implements governance.IdentitiesClient.SyncAttributes.
// The server expects an empty object rather than no body.
func (c *IdentitiesClient) SyncAttributes(ctx context.Context, id string) (*governance.Task, error) {
	path := resourcePath(identitiesPath, id, "synchronize-attributes")

	return send[governance.Task](ctx, c.requester, nethttp.MethodPost, path, struct{}{})
}
