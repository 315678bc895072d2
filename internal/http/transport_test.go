package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	govhttp "github.com/fivetwenty-io/governance-client/internal/http"
	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.record("debug", msg, fields)
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.record("info", msg, fields)
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.record("warn", msg, fields)
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.record("error", msg, fields)
}

func TestLoggingTransport(t *testing.T) {
	t.Parallel()

	t.Run("logs request and response", func(t *testing.T) {
		t.Parallel()

		logger := &MockLogger{}
		stub := newStub(respondWith(http.StatusOK, `{"id":"1"}`))
		client := govhttp.NewClient(testBaseURL, govhttp.WithTransport(govhttp.NewLoggingTransport(stub, logger)))

		_, err := client.Do(context.Background(), &govhttp.Request{
			Method:   http.MethodGet,
			Endpoint: "/v1/identities/1",
			Token:    "super-secret",
			TenantID: "acme",
		})
		require.NoError(t, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		requestFields, ok := logger.logs[0]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, requestFields["authenticated"])
		assert.Equal(t, true, requestFields["tenant_scoped"])

		responseFields, ok := logger.logs[1]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, http.StatusOK, responseFields["status_code"])

		for _, entry := range logger.logs {
			fields, _ := entry["fields"].(map[string]interface{})
			for _, value := range fields {
				assert.NotContains(t, fmt.Sprint(value), "super-secret")
			}
		}
	})

	t.Run("transport error passes through unchanged", func(t *testing.T) {
		t.Parallel()

		logger := &MockLogger{}
		stub := newStub(func(req *http.Request) (*http.Response, error) {
			return nil, errConnectionRefused
		})
		client := govhttp.NewClient(testBaseURL, govhttp.WithTransport(govhttp.NewLoggingTransport(stub, logger)))

		_, err := client.Do(context.Background(), &govhttp.Request{Method: http.MethodGet, Endpoint: "/v1/roles"})
		assert.Same(t, errConnectionRefused, err)

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request Failed", logger.logs[1]["msg"])
		assert.Equal(t, "error", logger.logs[1]["level"])
	})
}

func TestInstrumentedTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/v1/missing" {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()

	transport, err := govhttp.NewInstrumentedTransport(registry, 5*time.Second)
	require.NoError(t, err)

	client := govhttp.NewClient(server.URL, govhttp.WithTransport(transport))

	_, err = client.Do(context.Background(), &govhttp.Request{Method: http.MethodDelete, Endpoint: "/v1/roles/r1"})
	require.NoError(t, err)

	_, err = client.Do(context.Background(), &govhttp.Request{Method: http.MethodGet, Endpoint: "/v1/missing"})
	assert.True(t, governance.IsNotFound(err))

	count, err := testutil.GatherAndCount(registry, "governance_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per code/method pair")

	_, err = govhttp.NewInstrumentedTransport(registry, time.Second)
	require.Error(t, err, "collectors cannot be registered twice")
}

func TestDefaultTransport(t *testing.T) {
	t.Parallel()

	transport := govhttp.NewDefaultTransport(3 * time.Second)
	assert.Equal(t, 3*time.Second, transport.Timeout)
	assert.NotSame(t, http.DefaultClient, transport)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRestyTransport(t *testing.T) {
	t.Parallel()

	t.Run("sends headers and body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "/v1/campaigns/c1/activate", request.URL.Path)
			assert.Equal(t, "Bearer tok", request.Header.Get("Authorization"))
			assert.Equal(t, "tid", request.Header.Get("X-Tenant-Id"))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.Equal(t, `{}`, string(body))

			writer.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(writer).Encode(governance.Task{ID: "t1", Status: "QUEUED"})
		}))
		defer server.Close()

		client := govhttp.NewClient(server.URL, govhttp.WithTransport(govhttp.NewRestyTransport(5*time.Second)))

		task, err := govhttp.Call[governance.Task](context.Background(), client, &govhttp.Request{
			Method:   http.MethodPost,
			Endpoint: "/v1/campaigns/c1/activate",
			Body:     struct{}{},
			Token:    "tok",
			TenantID: "tid",
		})
		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, "t1", task.ID)
	})

	t.Run("omits body and credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			body, _ := io.ReadAll(request.Body)
			assert.Empty(t, body)
			assert.Empty(t, request.Header.Values("Authorization"))
			assert.Empty(t, request.Header.Values("X-Tenant-Id"))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := govhttp.NewClient(server.URL, govhttp.WithTransport(govhttp.NewRestyTransport(5*time.Second)))

		raw, err := client.Do(context.Background(), &govhttp.Request{Method: http.MethodGet, Endpoint: "/v1/roles"})
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("error body reaches the core", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error":"Invalid credentials"}`))
		}))
		defer server.Close()

		client := govhttp.NewClient(server.URL, govhttp.WithTransport(govhttp.NewRestyTransport(5*time.Second)))

		_, err := client.Do(context.Background(), &govhttp.Request{Method: http.MethodGet, Endpoint: "/v1/roles"})
		assert.True(t, governance.IsUnauthorized(err))

		apiErr, ok := governance.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid credentials", apiErr.Message)
	})
}
