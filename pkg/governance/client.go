package governance

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IdentityClients provides access to identity and access resource clients.
type IdentityClients interface {
	Identities() IdentitiesClient
	Entitlements() EntitlementsClient
	Roles() RolesClient
	AccessProfiles() AccessProfilesClient
}

// AdministrationClients provides access to source and certification resource clients.
type AdministrationClients interface {
	Connectors() ConnectorsClient
	Campaigns() CampaignsClient
}

// Client is the governance API client.
type Client interface {
	IdentityClients
	AdministrationClients

	// WithTenant returns a copy of the client scoped to tenantID.
	WithTenant(tenantID string) Client
	// WithToken returns a copy of the client authenticating with token.
	WithToken(token string) Client
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a governance.Client.
//
// BaseURL is joined with each endpoint by plain string concatenation. It is
// not validated, normalized or defaulted; a wrong value surfaces as a
// transport error on the first request.
//
// Token and TenantID are optional. When empty, the Authorization and
// X-Tenant-Id headers are omitted entirely.
//
// Transport is the single network seam. When nil, a fresh pooled client from
// go-cleanhttp is used, instrumented with Prometheus collectors if
// MetricsRegisterer is set. Timeouts and cancellation belong to the transport
// and to the context passed to each call.
type Config struct {
	// BaseURL of the governance API (e.g., "https://tenant.example.com/api").
	BaseURL string

	// Token: bearer token sent as "Authorization: Bearer <token>".
	Token string
	// TenantID: sent as "X-Tenant-Id" to scope every request.
	TenantID string

	// Transport overrides the HTTP transport.
	Transport Transport
	// MetricsRegisterer registers request counters and latency histograms for the default transport.
	MetricsRegisterer prometheus.Registerer
	// HTTPTimeout bounds each round trip of the default transport. Zero means
	// requests are bounded only by their context.
	HTTPTimeout time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the transport layer.
	Logger Logger
}

// IdentitiesClient defines operations on identities.
type IdentitiesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Identity], error)
	Get(ctx context.Context, id string) (*Identity, error)
	ListAccess(ctx context.Context, id string, params *QueryParams) (*ListResponse[AccessItem], error)
	SyncAttributes(ctx context.Context, id string) (*Task, error)
}

// EntitlementsClient defines operations on entitlements.
type EntitlementsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Entitlement], error)
	Get(ctx context.Context, id string) (*Entitlement, error)
	Update(ctx context.Context, id string, request *EntitlementUpdateRequest) (*Entitlement, error)
}

// RolesClient defines operations on roles.
type RolesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Role], error)
	Get(ctx context.Context, id string) (*Role, error)
	Create(ctx context.Context, request *RoleCreateRequest) (*Role, error)
	Update(ctx context.Context, id string, request *RoleUpdateRequest) (*Role, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (*Task, error)
}

// AccessProfilesClient defines operations on access profiles.
type AccessProfilesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[AccessProfile], error)
	Get(ctx context.Context, id string) (*AccessProfile, error)
	Create(ctx context.Context, request *AccessProfileCreateRequest) (*AccessProfile, error)
	Update(ctx context.Context, id string, request *AccessProfileUpdateRequest) (*AccessProfile, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (*Task, error)
}

// ConnectorsClient defines operations on connectors.
type ConnectorsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Connector], error)
	Get(ctx context.Context, id string) (*Connector, error)
	Create(ctx context.Context, request *ConnectorCreateRequest) (*Connector, error)
	Update(ctx context.Context, id string, request *ConnectorUpdateRequest) (*Connector, error)
	Delete(ctx context.Context, id string) error
	TestConnection(ctx context.Context, id string) (*ConnectionTestResult, error)
	PeekAccounts(ctx context.Context, id string, limit int) (*ListResponse[map[string]interface{}], error)
}

// CampaignsClient defines operations on certification campaigns.
type CampaignsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Campaign], error)
	Get(ctx context.Context, id string) (*Campaign, error)
	Create(ctx context.Context, request *CampaignCreateRequest) (*Campaign, error)
	Update(ctx context.Context, id string, request *CampaignUpdateRequest) (*Campaign, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string, request *CampaignActivateRequest) (*Task, error)
	Complete(ctx context.Context, id string, request *CampaignCompleteRequest) (*Task, error)
	Reassign(ctx context.Context, id string, request *CampaignReassignRequest) (*Task, error)
}
