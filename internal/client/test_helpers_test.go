package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

const (
	testToken    = "test-token"
	testTenantID = "test-tenant"
)

// NewTestClient creates a client for baseURL carrying the test credentials.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&governance.Config{
		BaseURL:  baseURL,
		Token:    testToken,
		TenantID: testTenantID,
	})
	require.NoError(t, err)

	return client
}

// TestOperation represents a single resource operation and the request it
// must produce.
type TestOperation struct {
	Name string
	Call func(context.Context, *Client) (interface{}, error)

	ExpectedMethod string
	ExpectedPath   string
	ExpectedQuery  string
	// ExpectedBody is compared as JSON; empty means no body was sent.
	ExpectedBody string

	StatusCode int
	Response   interface{}
	WantErr    bool
	ErrMessage string
	// WantNil expects a nil result without an error.
	WantNil bool
}

// RunOperationTests runs each operation against a test server that checks
// the request and replies with the canned response.
func RunOperationTests(t *testing.T, tests []TestOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				calls.Add(1)

				assert.Equal(t, testCase.ExpectedMethod, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)
				assert.Equal(t, "Bearer "+testToken, request.Header.Get("Authorization"))
				assert.Equal(t, testTenantID, request.Header.Get("X-Tenant-Id"))
				assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

				body, err := io.ReadAll(request.Body)
				assert.NoError(t, err)

				if testCase.ExpectedBody == "" {
					assert.Empty(t, body)
				} else {
					assert.JSONEq(t, testCase.ExpectedBody, string(body))
				}

				writer.Header().Set("Content-Type", "application/json")

				statusCode := testCase.StatusCode
				if statusCode == 0 {
					statusCode = http.StatusOK
				}

				writer.WriteHeader(statusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			result, err := testCase.Call(context.Background(), client)

			assert.Equal(t, int32(1), calls.Load(), "exactly one request")

			switch {
			case testCase.WantErr:
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			case testCase.WantNil:
				require.NoError(t, err)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// notFound is the error body the API returns for a missing resource.
func notFound(message string) map[string]interface{} {
	return map[string]interface{}{
		"message": message,
		"type":    "NOT_FOUND",
	}
}

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
