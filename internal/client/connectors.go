package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// ConnectorsClient implements governance.ConnectorsClient.
type ConnectorsClient struct {
	*ResourceClient[governance.Connector, governance.ConnectorCreateRequest, governance.ConnectorUpdateRequest]
}

// NewConnectorsClient creates a new connectors client.
func NewConnectorsClient(httpClient *http.Client, credentials Credentials) *ConnectorsClient {
	r := requester{httpClient: httpClient, credentials: credentials}

	return &ConnectorsClient{
		ResourceClient: newResourceClient[
			governance.Connector,
			governance.ConnectorCreateRequest,
			governance.ConnectorUpdateRequest,
		](r, "/v1/connectors"),
	}
}

// TestConnection implements governance.ConnectorsClient.TestConnection.
func (c *ConnectorsClient) TestConnection(ctx context.Context, id string) (*governance.ConnectionTestResult, error) {
	return send[governance.ConnectionTestResult](ctx, c.requester, nethttp.MethodPost, c.path(id, "test-connection"), struct{}{})
}

// PeekAccounts implements governance.ConnectorsClient.PeekAccounts. A
// non-positive limit leaves the page size to the server.
func (c *ConnectorsClient) PeekAccounts(ctx context.Context, id string, limit int) (*governance.ListResponse[map[string]interface{}], error) {
	path := governance.WithQuery(c.path(id, "peek-accounts"), &governance.QueryParams{Limit: limit})

	return get[governance.ListResponse[map[string]interface{}]](ctx, c.requester, path)
}
