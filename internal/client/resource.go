package client

import (
	"context"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// ResourceClient provides list, get, create, update and delete for a
// collection endpoint. T is the resource, C its create payload and U its
// update payload.
type ResourceClient[T, C, U any] struct {
	requester

	basePath string
}

// newResourceClient creates a generic client rooted at basePath.
func newResourceClient[T, C, U any](r requester, basePath string) *ResourceClient[T, C, U] {
	return &ResourceClient[T, C, U]{
		requester: r,
		basePath:  basePath,
	}
}

// List retrieves a page of resources.
func (c *ResourceClient[T, C, U]) List(ctx context.Context, params *governance.QueryParams) (*governance.ListResponse[T], error) {
	return get[governance.ListResponse[T]](ctx, c.requester, governance.WithQuery(c.basePath, params))
}

// Get retrieves a resource by ID.
func (c *ResourceClient[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	return get[T](ctx, c.requester, c.path(id))
}

// Create creates a resource.
func (c *ResourceClient[T, C, U]) Create(ctx context.Context, request *C) (*T, error) {
	return send[T](ctx, c.requester, nethttp.MethodPost, c.basePath, bodyOf(request))
}

// Update patches a resource.
func (c *ResourceClient[T, C, U]) Update(ctx context.Context, id string, request *U) (*T, error) {
	return send[T](ctx, c.requester, nethttp.MethodPatch, c.path(id), bodyOf(request))
}

// Delete removes a resource.
func (c *ResourceClient[T, C, U]) Delete(ctx context.Context, id string) error {
	return c.exec(ctx, nethttp.MethodDelete, c.path(id), nil)
}

// bulkDelete posts ids to the collection's bulk-delete action.
func (c *ResourceClient[T, C, U]) bulkDelete(ctx context.Context, ids []string) (*governance.Task, error) {
	return send[governance.Task](ctx, c.requester, nethttp.MethodPost, c.basePath+"/bulk-delete", &governance.BulkDeleteRequest{IDs: ids})
}

// path joins the base path, the escaped id and any literal suffix segments.
func (c *ResourceClient[T, C, U]) path(id string, segments ...string) string {
	return resourcePath(c.basePath, id, segments...)
}

func resourcePath(basePath, id string, segments ...string) string {
	var builder strings.Builder

	builder.WriteString(basePath)
	builder.WriteString("/")
	builder.WriteString(url.PathEscape(id))

	for _, segment := range segments {
		builder.WriteString("/")
		builder.WriteString(segment)
	}

	return builder.String()
}
