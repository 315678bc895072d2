package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestIdentitiesClient(t *testing.T) {
	t.Parallel()

	identity := governance.Identity{
		Resource: governance.Resource{ID: "id-1", Name: "jdoe"},
		Email:    "jdoe@example.com",
		Status:   "ACTIVE",
	}

	tests := []TestOperation{
		{
			Name: "list",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				params := governance.NewQueryParams().WithFilter("email", "eq", "jdoe@example.com")
				params.Count = true

				return c.Identities().List(ctx, params)
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/identities",
			ExpectedQuery:  "count=true&filters=email+eq+%22jdoe%40example.com%22",
			Response:       governance.ListResponse[governance.Identity]{Items: []governance.Identity{identity}, Total: 1},
		},
		{
			Name: "get",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Identities().Get(ctx, "id-1")
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/identities/id-1",
			Response:       identity,
		},
		{
			Name: "get unauthorized",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Identities().Get(ctx, "id-1")
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/identities/id-1",
			StatusCode:     http.StatusUnauthorized,
			Response:       map[string]interface{}{"error": "Invalid credentials"},
			WantErr:        true,
			ErrMessage:     "Invalid credentials (status: 401)",
		},
		{
			Name: "list access",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Identities().ListAccess(ctx, "id-1", &governance.QueryParams{Limit: 10})
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/v1/identities/id-1/access",
			ExpectedQuery:  "limit=10",
			Response: governance.ListResponse[governance.AccessItem]{
				Items: []governance.AccessItem{{ID: "role-1", Type: "ROLE", Name: "Admins"}},
				Total: 1,
			},
		},
		{
			Name: "sync attributes sends an empty object",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Identities().SyncAttributes(ctx, "id-1")
			},
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/v1/identities/id-1/synchronize-attributes",
			ExpectedBody:   `{}`,
			StatusCode:     http.StatusAccepted,
			Response:       governance.Task{ID: "task-1", Status: "QUEUED"},
		},
		{
			Name: "sync attributes with no content",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Identities().SyncAttributes(ctx, "id-1")
			},
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/v1/identities/id-1/synchronize-attributes",
			ExpectedBody:   `{}`,
			StatusCode:     http.StatusNoContent,
			WantNil:        true,
		},
	}

	RunOperationTests(t, tests)
}
