package governance

import "time"

// Identity represents a person or service account under governance.
type Identity struct {
	Resource `yaml:",inline"`

	Alias           string                 `json:"alias,omitempty"           yaml:"alias,omitempty"`
	Email           string                 `json:"email,omitempty"           yaml:"email,omitempty"`
	Status          string                 `json:"status"                    yaml:"status"`
	LifecycleState  string                 `json:"lifecycleState,omitempty"  yaml:"lifecycleState,omitempty"`
	ManagerRef      *Reference             `json:"managerRef,omitempty"      yaml:"managerRef,omitempty"`
	Attributes      map[string]interface{} `json:"attributes,omitempty"      yaml:"attributes,omitempty"`
	IsManager       bool                   `json:"isManager"                 yaml:"isManager"`
	ProcessingState string                 `json:"processingState,omitempty" yaml:"processingState,omitempty"`
}

// AccessItem is one piece of access (role, access profile or entitlement) held by an identity.
type AccessItem struct {
	ID          string     `json:"id"                    yaml:"id"`
	Type        string     `json:"type"                  yaml:"type"`
	Name        string     `json:"name"                  yaml:"name"`
	Source      *Reference `json:"source,omitempty"      yaml:"source,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// Entitlement represents a permission on a source system.
type Entitlement struct {
	Resource `yaml:",inline"`

	Attribute   string     `json:"attribute"             yaml:"attribute"`
	Value       string     `json:"value"                 yaml:"value"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Privileged  bool       `json:"privileged"            yaml:"privileged"`
	Requestable bool       `json:"requestable"           yaml:"requestable"`
	Source      *Reference `json:"source,omitempty"      yaml:"source,omitempty"`
	Owner       *Reference `json:"owner,omitempty"       yaml:"owner,omitempty"`
}

// EntitlementUpdateRequest updates the governable properties of an entitlement.
type EntitlementUpdateRequest struct {
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Privileged  *bool      `json:"privileged,omitempty"  yaml:"privileged,omitempty"`
	Requestable *bool      `json:"requestable,omitempty" yaml:"requestable,omitempty"`
	Owner       *Reference `json:"owner,omitempty"       yaml:"owner,omitempty"`
}

// Role represents a business role bundling access profiles and entitlements.
type Role struct {
	Resource `yaml:",inline"`

	Description    string      `json:"description,omitempty"    yaml:"description,omitempty"`
	Owner          *Reference  `json:"owner,omitempty"          yaml:"owner,omitempty"`
	AccessProfiles []Reference `json:"accessProfiles,omitempty" yaml:"accessProfiles,omitempty"`
	Entitlements   []Reference `json:"entitlements,omitempty"   yaml:"entitlements,omitempty"`
	Enabled        bool        `json:"enabled"                  yaml:"enabled"`
	Requestable    bool        `json:"requestable"              yaml:"requestable"`
}

// RoleCreateRequest is the payload for creating a role.
type RoleCreateRequest struct {
	Name           string      `json:"name"                     yaml:"name"`
	Description    string      `json:"description,omitempty"    yaml:"description,omitempty"`
	Owner          *Reference  `json:"owner"                    yaml:"owner"`
	AccessProfiles []Reference `json:"accessProfiles,omitempty" yaml:"accessProfiles,omitempty"`
	Entitlements   []Reference `json:"entitlements,omitempty"   yaml:"entitlements,omitempty"`
	Enabled        bool        `json:"enabled"                  yaml:"enabled"`
	Requestable    bool        `json:"requestable"              yaml:"requestable"`
}

// RoleUpdateRequest is the payload for updating a role.
type RoleUpdateRequest struct {
	Name           *string     `json:"name,omitempty"           yaml:"name,omitempty"`
	Description    *string     `json:"description,omitempty"    yaml:"description,omitempty"`
	Owner          *Reference  `json:"owner,omitempty"          yaml:"owner,omitempty"`
	AccessProfiles []Reference `json:"accessProfiles,omitempty" yaml:"accessProfiles,omitempty"`
	Entitlements   []Reference `json:"entitlements,omitempty"   yaml:"entitlements,omitempty"`
	Enabled        *bool       `json:"enabled,omitempty"        yaml:"enabled,omitempty"`
	Requestable    *bool       `json:"requestable,omitempty"    yaml:"requestable,omitempty"`
}

// AccessProfile groups entitlements from a single source.
type AccessProfile struct {
	Resource `yaml:",inline"`

	Description  string      `json:"description,omitempty"  yaml:"description,omitempty"`
	Owner        *Reference  `json:"owner,omitempty"        yaml:"owner,omitempty"`
	Source       *Reference  `json:"source,omitempty"       yaml:"source,omitempty"`
	Entitlements []Reference `json:"entitlements,omitempty" yaml:"entitlements,omitempty"`
	Enabled      bool        `json:"enabled"                yaml:"enabled"`
	Requestable  bool        `json:"requestable"            yaml:"requestable"`
}

// AccessProfileCreateRequest is the payload for creating an access profile.
type AccessProfileCreateRequest struct {
	Name         string      `json:"name"                   yaml:"name"`
	Description  string      `json:"description,omitempty"  yaml:"description,omitempty"`
	Owner        *Reference  `json:"owner"                  yaml:"owner"`
	Source       *Reference  `json:"source"                 yaml:"source"`
	Entitlements []Reference `json:"entitlements,omitempty" yaml:"entitlements,omitempty"`
	Enabled      bool        `json:"enabled"                yaml:"enabled"`
	Requestable  bool        `json:"requestable"            yaml:"requestable"`
}

// AccessProfileUpdateRequest is the payload for updating an access profile.
type AccessProfileUpdateRequest struct {
	Name         *string     `json:"name,omitempty"         yaml:"name,omitempty"`
	Description  *string     `json:"description,omitempty"  yaml:"description,omitempty"`
	Owner        *Reference  `json:"owner,omitempty"        yaml:"owner,omitempty"`
	Entitlements []Reference `json:"entitlements,omitempty" yaml:"entitlements,omitempty"`
	Enabled      *bool       `json:"enabled,omitempty"      yaml:"enabled,omitempty"`
	Requestable  *bool       `json:"requestable,omitempty"  yaml:"requestable,omitempty"`
}

// Connector represents a source system connection.
type Connector struct {
	Resource `yaml:",inline"`

	Type          string                 `json:"type"                    yaml:"type"`
	Description   string                 `json:"description,omitempty"   yaml:"description,omitempty"`
	Owner         *Reference             `json:"owner,omitempty"         yaml:"owner,omitempty"`
	Status        string                 `json:"status,omitempty"        yaml:"status,omitempty"`
	Authoritative bool                   `json:"authoritative"           yaml:"authoritative"`
	Configuration map[string]interface{} `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// ConnectorCreateRequest is the payload for creating a connector.
type ConnectorCreateRequest struct {
	Name          string                 `json:"name"                    yaml:"name"`
	Type          string                 `json:"type"                    yaml:"type"`
	Description   string                 `json:"description,omitempty"   yaml:"description,omitempty"`
	Owner         *Reference             `json:"owner"                   yaml:"owner"`
	Authoritative bool                   `json:"authoritative"           yaml:"authoritative"`
	Configuration map[string]interface{} `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// ConnectorUpdateRequest is the payload for updating a connector.
type ConnectorUpdateRequest struct {
	Name          *string                `json:"name,omitempty"          yaml:"name,omitempty"`
	Description   *string                `json:"description,omitempty"   yaml:"description,omitempty"`
	Owner         *Reference             `json:"owner,omitempty"         yaml:"owner,omitempty"`
	Configuration map[string]interface{} `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// ConnectionTestResult is the outcome of a connector connection test.
type ConnectionTestResult struct {
	ID         string `json:"id"                yaml:"id"`
	Name       string `json:"name"              yaml:"name"`
	Status     string `json:"status"            yaml:"status"`
	ElapsedMS  int    `json:"elapsedMillis"     yaml:"elapsedMillis"`
	Details    string `json:"details,omitempty" yaml:"details,omitempty"`
	Successful bool   `json:"successful"        yaml:"successful"`
}

// Campaign represents an access certification campaign.
type Campaign struct {
	Resource `yaml:",inline"`

	Description string     `json:"description,omitempty"    yaml:"description,omitempty"`
	Type        string     `json:"type"                     yaml:"type"`
	Status      string     `json:"status"                   yaml:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"       yaml:"deadline,omitempty"`
	EmailNotify bool       `json:"emailNotificationEnabled" yaml:"emailNotificationEnabled"`
	AutoRevoke  bool       `json:"autoRevokeAllowed"        yaml:"autoRevokeAllowed"`
}

// CampaignCreateRequest is the payload for creating a campaign.
type CampaignCreateRequest struct {
	Name        string     `json:"name"                     yaml:"name"`
	Description string     `json:"description"              yaml:"description"`
	Type        string     `json:"type"                     yaml:"type"`
	Deadline    *time.Time `json:"deadline,omitempty"       yaml:"deadline,omitempty"`
	EmailNotify bool       `json:"emailNotificationEnabled" yaml:"emailNotificationEnabled"`
	AutoRevoke  bool       `json:"autoRevokeAllowed"        yaml:"autoRevokeAllowed"`
}

// CampaignUpdateRequest is the payload for updating a campaign.
type CampaignUpdateRequest struct {
	Name        *string    `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"    yaml:"deadline,omitempty"`
}

// CampaignActivateRequest carries optional activation parameters.
type CampaignActivateRequest struct {
	TimeZone string `json:"timeZone,omitempty" yaml:"timeZone,omitempty"`
}

// CampaignCompleteRequest carries optional completion parameters.
type CampaignCompleteRequest struct {
	AutoCompleteAction string `json:"autoCompleteAction,omitempty" yaml:"autoCompleteAction,omitempty"`
}

// CampaignReassignRequest moves certifications to another reviewer.
type CampaignReassignRequest struct {
	CertificationIDs []string   `json:"certificationIds" yaml:"certificationIds"`
	ReassignTo       *Reference `json:"reassignTo"       yaml:"reassignTo"`
	Reason           string     `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// BulkDeleteRequest is the payload for bulk deletions.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" yaml:"ids"`
}
