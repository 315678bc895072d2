package governance

import (
	"context"
)

// DefaultPageSize is the page size used when neither the pagination options
// nor the query parameters set one.
const DefaultPageSize = 50

// PaginationOptions controls multi-page fetches.
type PaginationOptions struct {
	// PageSize overrides the limit of each page request.
	PageSize int
	// MaxPages stops after this many pages; zero means no limit.
	MaxPages int
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Page  int
	Err   error
}

// PaginationIterator walks the items of an offset-paged list endpoint.
// Each page request advances the offset by the number of items received.
// Iteration ends at an empty or short page, once the reported total is
// reached, or after MaxPages pages.
type PaginationIterator[T any] struct {
	ctx      context.Context //nolint:containedctx // bound to the iteration
	fetch    func(context.Context, *QueryParams) (*ListResponse[T], error)
	params   *QueryParams
	pageSize int
	maxPages int

	offset int
	pages  int
	items  []T
	index  int
	done   bool
	err    error
}

// NewPaginationIterator creates an iterator that calls fetch for each page,
// starting at the offset of params.
func NewPaginationIterator[T any](
	ctx context.Context,
	fetch func(context.Context, *QueryParams) (*ListResponse[T], error),
	params *QueryParams,
	options *PaginationOptions,
) *PaginationIterator[T] {
	params = params.Clone()

	pageSize := params.Limit
	maxPages := 0

	if options != nil {
		if options.PageSize > 0 {
			pageSize = options.PageSize
		}

		maxPages = options.MaxPages
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &PaginationIterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		params:   params,
		pageSize: pageSize,
		maxPages: maxPages,
		offset:   params.Offset,
	}
}

// HasNext reports whether Next has an item or an error to return.
func (it *PaginationIterator[T]) HasNext() bool {
	for it.index >= len(it.items) && it.err == nil && !it.done {
		it.items, it.err = it.nextPage()
		it.index = 0
	}

	return it.index < len(it.items) || it.err != nil
}

// Next returns the next item. It returns ErrNoMoreItems once the list is
// exhausted, and the fetch error when a page request fails.
func (it *PaginationIterator[T]) Next() (*T, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return nil, err
	}

	item := &it.items[it.index]
	it.index++

	return item, nil
}

// All collects every remaining item.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, *item)
	}

	return all, nil
}

// ForEach calls fn for every remaining item and stops at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(*T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// nextPage fetches the following page. A nil slice with a nil error means
// the list is exhausted.
func (it *PaginationIterator[T]) nextPage() ([]T, error) {
	if it.done {
		return nil, nil
	}

	if it.maxPages > 0 && it.pages >= it.maxPages {
		it.done = true

		return nil, nil
	}

	err := it.ctx.Err()
	if err != nil {
		it.done = true

		return nil, err //nolint:wrapcheck // context errors are returned as is
	}

	params := it.params.Clone()
	params.Offset = it.offset
	params.Limit = it.pageSize

	page, err := it.fetch(it.ctx, params)
	if err != nil {
		it.done = true

		return nil, err
	}

	it.pages++

	if page == nil || len(page.Items) == 0 {
		it.done = true

		return nil, nil
	}

	it.offset += len(page.Items)

	if len(page.Items) < it.pageSize || (page.Total > 0 && it.offset >= page.Total) {
		it.done = true
	}

	return page.Items, nil
}

// FetchAllPages fetches every page and returns the combined items.
func FetchAllPages[T any](
	ctx context.Context,
	fetch func(context.Context, *QueryParams) (*ListResponse[T], error),
	params *QueryParams,
	options *PaginationOptions,
) ([]T, error) {
	return NewPaginationIterator(ctx, fetch, params, options).All()
}

// StreamPages fetches pages in the background and delivers them on the
// returned channel, which is closed after the last page, the first error,
// or cancellation of ctx.
func StreamPages[T any](
	ctx context.Context,
	fetch func(context.Context, *QueryParams) (*ListResponse[T], error),
	params *QueryParams,
	options *PaginationOptions,
) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		iterator := NewPaginationIterator(ctx, fetch, params, options)

		for {
			items, err := iterator.nextPage()
			if err == nil && items == nil {
				return
			}

			result := PageResult[T]{Items: items, Page: iterator.pages, Err: err}
			if err != nil {
				result.Page = iterator.pages + 1
			}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}
		}
	}()

	return results
}
