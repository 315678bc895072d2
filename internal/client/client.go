package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// Credentials are attached to every request a Client makes. Empty fields
// are omitted from the request headers.
type Credentials struct {
	Token    string
	TenantID string
}

// Client implements the governance.Client interface.
type Client struct {
	httpClient  *http.Client
	credentials Credentials

	// Resource clients
	identities     *IdentitiesClient
	entitlements   *EntitlementsClient
	roles          *RolesClient
	accessProfiles *AccessProfilesClient
	connectors     *ConnectorsClient
	campaigns      *CampaignsClient
}

// New creates a governance API client from config.
func New(config *governance.Config) (*Client, error) {
	if config == nil {
		return nil, governance.ErrConfigRequired
	}

	transport, err := buildTransport(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.BaseURL, http.WithTransport(transport))

	return NewWithHTTPClient(httpClient, Credentials{
		Token:    config.Token,
		TenantID: config.TenantID,
	}), nil
}

// NewWithHTTPClient creates a client around an existing request core.
func NewWithHTTPClient(httpClient *http.Client, credentials Credentials) *Client {
	client := &Client{
		httpClient:  httpClient,
		credentials: credentials,
	}

	client.initializeResourceClients()

	return client
}

// buildTransport picks the transport for config: an explicit transport wins,
// then the instrumented client when a registerer is set, then the plain
// pooled client. Debug logging wraps whichever was chosen.
func buildTransport(config *governance.Config) (governance.Transport, error) {
	var transport governance.Transport

	switch {
	case config.Transport != nil:
		transport = config.Transport
	case config.MetricsRegisterer != nil:
		instrumented, err := http.NewInstrumentedTransport(config.MetricsRegisterer, config.HTTPTimeout)
		if err != nil {
			return nil, fmt.Errorf("registering transport metrics: %w", err)
		}

		transport = instrumented
	default:
		transport = http.NewDefaultTransport(config.HTTPTimeout)
	}

	if config.Debug && config.Logger != nil {
		transport = http.NewLoggingTransport(transport, config.Logger)
	}

	return transport, nil
}

func (c *Client) initializeResourceClients() {
	c.identities = NewIdentitiesClient(c.httpClient, c.credentials)
	c.entitlements = NewEntitlementsClient(c.httpClient, c.credentials)
	c.roles = NewRolesClient(c.httpClient, c.credentials)
	c.accessProfiles = NewAccessProfilesClient(c.httpClient, c.credentials)
	c.connectors = NewConnectorsClient(c.httpClient, c.credentials)
	c.campaigns = NewCampaignsClient(c.httpClient, c.credentials)
}

// BaseURL returns the base URL every endpoint is appended to.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// Credentials returns the credentials attached to each request.
func (c *Client) Credentials() Credentials {
	return c.credentials
}

// WithTenant implements governance.Client.WithTenant.
func (c *Client) WithTenant(tenantID string) governance.Client {
	credentials := c.credentials
	credentials.TenantID = tenantID

	return NewWithHTTPClient(c.httpClient, credentials)
}

// WithToken implements governance.Client.WithToken.
func (c *Client) WithToken(token string) governance.Client {
	credentials := c.credentials
	credentials.Token = token

	return NewWithHTTPClient(c.httpClient, credentials)
}

// Resource client accessors

// Identities implements governance.Client.Identities.
func (c *Client) Identities() governance.IdentitiesClient {
	return c.identities
}

// Entitlements implements governance.Client.Entitlements.
func (c *Client) Entitlements() governance.EntitlementsClient {
	return c.entitlements
}

// Roles implements governance.Client.Roles.
func (c *Client) Roles() governance.RolesClient {
	return c.roles
}

// AccessProfiles implements governance.Client.AccessProfiles.
func (c *Client) AccessProfiles() governance.AccessProfilesClient {
	return c.accessProfiles
}

// Connectors implements governance.Client.Connectors.
func (c *Client) Connectors() governance.ConnectorsClient {
	return c.connectors
}

// Campaigns implements governance.Client.Campaigns.
func (c *Client) Campaigns() governance.CampaignsClient {
	return c.campaigns
}

// requester binds the request core to a set of credentials.
type requester struct {
	httpClient  *http.Client
	credentials Credentials
}

func (r requester) newRequest(method, endpoint string, body interface{}) *http.Request {
	return &http.Request{
		Method:   method,
		Endpoint: endpoint,
		Body:     body,
		Token:    r.credentials.Token,
		TenantID: r.credentials.TenantID,
	}
}

// exec performs a request whose response body is not needed.
func (r requester) exec(ctx context.Context, method, endpoint string, body interface{}) error {
	_, err := r.httpClient.Do(ctx, r.newRequest(method, endpoint, body))

	return err //nolint:wrapcheck // core errors are the public contract
}

func get[T any](ctx context.Context, r requester, endpoint string) (*T, error) {
	return http.Call[T](ctx, r.httpClient, r.newRequest(nethttp.MethodGet, endpoint, nil))
}

func send[T any](ctx context.Context, r requester, method, endpoint string, body interface{}) (*T, error) {
	return http.Call[T](ctx, r.httpClient, r.newRequest(method, endpoint, body))
}

// bodyOf turns a nil request pointer into an absent body instead of "null".
func bodyOf[T any](request *T) interface{} {
	if request == nil {
		return nil
	}

	return request
}
