package govclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
	"github.com/fivetwenty-io/governance-client/pkg/govclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := govclient.New(&governance.Config{BaseURL: "https://api.example.com"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := govclient.New(nil)
		require.ErrorIs(t, err, governance.ErrConfigRequired)
		assert.Nil(t, client)
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Values("Authorization"))
		assert.Empty(t, r.Header.Values("X-Tenant-Id"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(governance.ListResponse[governance.Role]{})
	}))
	defer server.Close()

	client, err := govclient.NewWithEndpoint(server.URL)
	require.NoError(t, err)

	roles, err := client.Roles().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, roles.Items)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/identities/id-1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "acme", r.Header.Get("X-Tenant-Id"))

		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Identity id-1 not found","type":"NOT_FOUND"}`))
	}))
	defer server.Close()

	client, err := govclient.NewWithToken(server.URL, "test-token", "acme")
	require.NoError(t, err)

	identity, err := client.Identities().Get(context.Background(), "id-1")
	assert.Nil(t, identity)
	assert.True(t, governance.IsNotFound(err))
	assert.Equal(t, "NOT_FOUND", governance.ErrorKind(err))
}
