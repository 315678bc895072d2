package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

const entitlementsPath = "/v1/entitlements"

// EntitlementsClient implements governance.EntitlementsClient.
type EntitlementsClient struct {
	requester
}

// NewEntitlementsClient creates a new entitlements client.
func NewEntitlementsClient(httpClient *http.Client, credentials Credentials) *EntitlementsClient {
	return &EntitlementsClient{
		requester: requester{httpClient: httpClient, credentials: credentials},
	}
}

// List implements governance.EntitlementsClient.List.
func (c *EntitlementsClient) List(ctx context.Context, params *governance.QueryParams) (*governance.ListResponse[governance.Entitlement], error) {
	return get[governance.ListResponse[governance.Entitlement]](ctx, c.requester, governance.WithQuery(entitlementsPath, params))
}

// Get implements governance.EntitlementsClient.Get.
func (c *EntitlementsClient) Get(ctx context.Context, id string) (*governance.Entitlement, error) {
	return get[governance.Entitlement](ctx, c.requester, resourcePath(entitlementsPath, id))
}

// Update implements governance.EntitlementsClient.Update.
func (c *EntitlementsClient) Update(ctx context.Context, id string, request *governance.EntitlementUpdateRequest) (*governance.Entitlement, error) {
	return send[governance.Entitlement](ctx, c.requester, nethttp.MethodPatch, resourcePath(entitlementsPath, id), bodyOf(request))
}
