package governance_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

var errPageFailed = errors.New("page failed")

// pagedRoles serves a fixed set of roles by offset and limit and records
// every request.
type pagedRoles struct {
	mu        sync.Mutex
	roles     []governance.Role
	withTotal bool
	failAt    int
	requests  []governance.QueryParams
}

func newPagedRoles(count int) *pagedRoles {
	roles := make([]governance.Role, 0, count)
	for i := range count {
		roles = append(roles, governance.Role{Resource: governance.Resource{ID: string(rune('a' + i))}})
	}

	return &pagedRoles{roles: roles, failAt: -1}
}

func (p *pagedRoles) List(_ context.Context, params *governance.QueryParams) (*governance.ListResponse[governance.Role], error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = append(p.requests, *params)

	if p.failAt >= 0 && len(p.requests)-1 == p.failAt {
		return nil, errPageFailed
	}

	start := min(params.Offset, len(p.roles))
	end := min(start+params.Limit, len(p.roles))

	response := &governance.ListResponse[governance.Role]{
		Items:  p.roles[start:end],
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	if p.withTotal {
		response.Total = len(p.roles)
	}

	return response, nil
}

func (p *pagedRoles) offsets() []int {
	p.mu.Lock()
	defer p.mu.Unlock()

	offsets := make([]int, 0, len(p.requests))
	for _, request := range p.requests {
		offsets = append(offsets, request.Offset)
	}

	return offsets
}

func roleIDs(roles []governance.Role) []string {
	ids := make([]string, 0, len(roles))
	for _, role := range roles {
		ids = append(ids, role.ID)
	}

	return ids
}

func TestPaginationIterator_HasNextNext(t *testing.T) {
	t.Parallel()

	source := newPagedRoles(5)
	iterator := governance.NewPaginationIterator(context.Background(), source.List, &governance.QueryParams{Limit: 2}, nil)

	var ids []string

	for iterator.HasNext() {
		role, err := iterator.Next()
		require.NoError(t, err)

		ids = append(ids, role.ID)
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)
	assert.Equal(t, []int{0, 2, 4}, source.offsets())

	_, err := iterator.Next()
	require.ErrorIs(t, err, governance.ErrNoMoreItems)
}

func TestPaginationIterator_All(t *testing.T) {
	t.Parallel()

	source := newPagedRoles(4)
	params := governance.NewQueryParams().WithFilter("name", "sw", "a")
	params.Limit = 2

	roles, err := governance.NewPaginationIterator(context.Background(), source.List, params, nil).All()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, roleIDs(roles))

	// An exact multiple of the page size costs one empty request at the end.
	assert.Equal(t, []int{0, 2, 4}, source.offsets())

	for _, request := range source.requests {
		assert.Equal(t, []string{`name sw "a"`}, request.Filters)
	}

	assert.Equal(t, 0, params.Offset, "caller params are not modified")
}

func TestPaginationIterator_StopsAtTotal(t *testing.T) {
	t.Parallel()

	source := newPagedRoles(4)
	source.withTotal = true

	roles, err := governance.FetchAllPages(context.Background(), source.List, &governance.QueryParams{Limit: 2}, nil)
	require.NoError(t, err)
	assert.Len(t, roles, 4)
	assert.Equal(t, []int{0, 2}, source.offsets())
}

func TestPaginationIterator_StartsAtOffset(t *testing.T) {
	t.Parallel()

	source := newPagedRoles(5)

	roles, err := governance.FetchAllPages(context.Background(), source.List, &governance.QueryParams{Limit: 2, Offset: 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e"}, roleIDs(roles))
}

func TestPaginationIterator_ForEach(t *testing.T) {
	t.Parallel()

	source := newPagedRoles(3)
	iterator := governance.NewPaginationIterator(context.Background(), source.List, nil, &governance.PaginationOptions{PageSize: 1})

	count := 0
	err := iterator.ForEach(func(*governance.Role) error {
		count++

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	stop := errors.New("stop")
	iterator = governance.NewPaginationIterator(context.Background(), newPagedRoles(3).List, nil, nil)
	err = iterator.ForEach(func(*governance.Role) error { return stop })
	require.ErrorIs(t, err, stop)
}

func TestPaginationIterator_FetchError(t *testing.T) {
	t.Parallel()

	source := newPagedRoles(5)
	source.failAt = 1

	iterator := governance.NewPaginationIterator(context.Background(), source.List, &governance.QueryParams{Limit: 2}, nil)

	roles, err := iterator.All()
	require.ErrorIs(t, err, errPageFailed)
	assert.Nil(t, roles)
	assert.False(t, iterator.HasNext())
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	t.Run("default page size", func(t *testing.T) {
		t.Parallel()

		source := newPagedRoles(3)

		roles, err := governance.FetchAllPages(context.Background(), source.List, nil, nil)
		require.NoError(t, err)
		assert.Len(t, roles, 3)
		require.Len(t, source.requests, 1)
		assert.Equal(t, governance.DefaultPageSize, source.requests[0].Limit)
	})

	t.Run("max pages", func(t *testing.T) {
		t.Parallel()

		source := newPagedRoles(10)

		roles, err := governance.FetchAllPages(context.Background(), source.List, nil,
			&governance.PaginationOptions{PageSize: 2, MaxPages: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d"}, roleIDs(roles))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		source := newPagedRoles(3)

		_, err := governance.FetchAllPages(ctx, source.List, nil, nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, source.requests)
	})
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	source := newPagedRoles(5)

	var (
		pages []int
		ids   []string
	)

	for result := range governance.StreamPages(context.Background(), source.List, &governance.QueryParams{Limit: 2}, nil) {
		require.NoError(t, result.Err)

		pages = append(pages, result.Page)
		ids = append(ids, roleIDs(result.Items)...)
	}

	assert.Equal(t, []int{1, 2, 3}, pages)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)
}

func TestStreamPages_Error(t *testing.T) {
	t.Parallel()

	source := newPagedRoles(5)
	source.failAt = 1

	var results []governance.PageResult[governance.Role]
	for result := range governance.StreamPages(context.Background(), source.List, &governance.QueryParams{Limit: 2}, nil) {
		results = append(results, result)
	}

	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, errPageFailed)
	assert.Equal(t, 2, results[1].Page)
}
