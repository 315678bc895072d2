package client

import (
	"context"
	nethttp "net/http"

	"github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// CampaignsClient implements governance.CampaignsClient.
type CampaignsClient struct {
	*ResourceClient[governance.Campaign, governance.CampaignCreateRequest, governance.CampaignUpdateRequest]
}

// NewCampaignsClient creates a new campaigns client.
func NewCampaignsClient(httpClient *http.Client, credentials Credentials) *CampaignsClient {
	r := requester{httpClient: httpClient, credentials: credentials}

	return &CampaignsClient{
		ResourceClient: newResourceClient[
			governance.Campaign,
			governance.CampaignCreateRequest,
			governance.CampaignUpdateRequest,
		](r, "/v1/campaigns"),
	}
}

// Activate implements governance.CampaignsClient.Activate. A nil request
// activates with server defaults and is sent as an empty object.
func (c *CampaignsClient) Activate(ctx context.Context, id string, request *governance.CampaignActivateRequest) (*governance.Task, error) {
	var body interface{} = struct{}{}
	if request != nil {
		body = request
	}

	return send[governance.Task](ctx, c.requester, nethttp.MethodPost, c.path(id, "activate"), body)
}

// Complete implements governance.CampaignsClient.Complete. A nil request
// sends no body.
func (c *CampaignsClient) Complete(ctx context.Context, id string, request *governance.CampaignCompleteRequest) (*governance.Task, error) {
	return send[governance.Task](ctx, c.requester, nethttp.MethodPost, c.path(id, "complete"), bodyOf(request))
}

// Reassign implements governance.CampaignsClient.Reassign.
func (c *CampaignsClient) Reassign(ctx context.Context, id string, request *governance.CampaignReassignRequest) (*governance.Task, error) {
	return send[governance.Task](ctx, c.requester, nethttp.MethodPost, c.path(id, "reassign"), bodyOf(request))
}
