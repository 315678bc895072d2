package governance_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	params := governance.NewQueryParams()
	params.Limit = 50
	params.Offset = 100
	params.Count = true
	params.
		WithSorter("name").
		WithSorter("-created").
		WithFilter("type", "eq", "ROLE").
		WithFilter("name", "co", `say "hi"`).
		Set("detailed", "false")

	values := params.ToValues()

	assert.Equal(t, "50", values.Get("limit"))
	assert.Equal(t, "100", values.Get("offset"))
	assert.Equal(t, "true", values.Get("count"))
	assert.Equal(t, "name,-created", values.Get("sorters"))
	assert.Equal(t, `type eq "ROLE" and name co "say \"hi\""`, values.Get("filters"))
	assert.Equal(t, "false", values.Get("detailed"))
}

func TestQueryParams_WithFilterEscapesBackslashes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  string
	}{
		{`C:\temp\`, `path eq "C:\\temp\\"`},
		{`a\"b`, `path eq "a\\\"b"`},
		{`plain`, `path eq "plain"`},
	}

	for _, tt := range tests {
		params := governance.NewQueryParams().WithFilter("path", "eq", tt.value)
		assert.Equal(t, tt.want, params.Filters[0], tt.value)
	}
}

func TestQueryParams_ZeroValues(t *testing.T) {
	t.Parallel()

	assert.Empty(t, governance.NewQueryParams().ToValues())
	assert.Empty(t, (&governance.QueryParams{}).ToValues())

	var params *governance.QueryParams
	assert.Equal(t, url.Values{}, params.ToValues())
}

func TestQueryParams_SetWithoutExtra(t *testing.T) {
	t.Parallel()

	params := &governance.QueryParams{}
	params.Set("a", "1")

	assert.Equal(t, "1", params.ToValues().Get("a"))
}

func TestWithQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/v1/roles", governance.WithQuery("/v1/roles", nil))
	assert.Equal(t, "/v1/roles", governance.WithQuery("/v1/roles", governance.NewQueryParams()))
	assert.Equal(t, "/v1/roles?limit=5&offset=10",
		governance.WithQuery("/v1/roles", &governance.QueryParams{Limit: 5, Offset: 10}))
}
