// Package governance defines the types, resource client interfaces and error
// helpers of the identity governance API client.
//
// A concrete implementation is provided by the govclient package. The
// resource interfaces (IdentitiesClient, RolesClient, CampaignsClient, ...)
// are small so they can be faked in tests.
//
// # Queries
//
// List endpoints accept QueryParams, which encode limit, offset, count,
// sorters and filters:
//
//	params := governance.NewQueryParams().
//	  WithFilter("type", "eq", "ROLE").
//	  WithSorter("-created")
//	params.Limit = 50
//
// # Errors
//
// Every non-2xx response surfaces as *APIError. Message, Status and Kind are
// taken from the response body; when the body carries no usable message the
// message is DefaultErrorMessage.
package governance
