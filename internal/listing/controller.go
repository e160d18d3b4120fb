// Package listing owns the state of one paginated, filterable collection
// view: the active filter, the current page, the last-fetched items and
// paging metadata, and the last error. Every successful fetch replaces the
// whole collection; nothing is merged.
package listing

import (
	"context"
	"sync"

	"github.com/pixstash/pixstash/internal/models"
)

// FetchFunc loads one page of a collection. category is "" when no filter is
// active.
type FetchFunc[T any] func(ctx context.Context, category string, page, limit int) ([]T, models.Pagination, error)

// Controller drives a paginated, filterable collection.
type Controller[T any] struct {
	fetch FetchFunc[T]
	limit int

	mu         sync.Mutex
	filter     string
	page       int
	items      []T
	pagination models.Pagination
	loading    bool
	err        error

	// Each fetch is stamped with an increasing sequence number; a response
	// belonging to a superseded fetch is discarded instead of overwriting
	// newer state.
	seq uint64
}

// NewController creates a controller with no filter, page 1, and the given
// page size.
func NewController[T any](fetch FetchFunc[T], limit int) *Controller[T] {
	return &Controller[T]{
		fetch: fetch,
		limit: limit,
		page:  1,
	}
}

// SetFilter switches the active category filter, resets to page 1, and
// fetches. An empty category clears the filter.
func (c *Controller[T]) SetFilter(ctx context.Context, category string) error {
	c.mu.Lock()
	c.filter = category
	c.page = 1
	c.mu.Unlock()

	return c.Fetch(ctx)
}

// SetPage moves to page n and fetches. Out-of-range pages, judged against
// the last known pagination, are ignored without touching any state.
func (c *Controller[T]) SetPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if n < 1 || n > c.pagination.TotalPages {
		c.mu.Unlock()
		return nil
	}
	c.page = n
	c.mu.Unlock()

	return c.Fetch(ctx)
}

// GoToNextPage follows the last response's nextPage pointer, if any.
func (c *Controller[T]) GoToNextPage(ctx context.Context) error {
	c.mu.Lock()
	if !c.pagination.HasNextPage || c.pagination.NextPage == nil {
		c.mu.Unlock()
		return nil
	}
	next := *c.pagination.NextPage
	c.mu.Unlock()

	return c.SetPage(ctx, next)
}

// GoToPrevPage follows the last response's prevPage pointer, if any.
func (c *Controller[T]) GoToPrevPage(ctx context.Context) error {
	c.mu.Lock()
	if !c.pagination.HasPrevPage || c.pagination.PrevPage == nil {
		c.mu.Unlock()
		return nil
	}
	prev := *c.pagination.PrevPage
	c.mu.Unlock()

	return c.SetPage(ctx, prev)
}

// Fetch loads the current page with the current filter. On success the
// collection and pagination are fully replaced; on failure both are cleared
// and the error recorded, so a refresh never shows stale data next to an
// error.
func (c *Controller[T]) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	filter, page, limit := c.filter, c.page, c.limit
	c.loading = true
	c.mu.Unlock()

	items, pagination, err := c.fetch(ctx, filter, page, limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		// A newer fetch was issued while this one was in flight.
		return nil
	}
	c.loading = false

	if err != nil {
		c.items = nil
		c.pagination = models.Pagination{}
		c.err = err
		return err
	}

	c.items = items
	c.pagination = pagination
	c.err = nil
	return nil
}

// Items returns a copy of the last-fetched collection.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Pagination returns the last-fetched paging metadata.
func (c *Controller[T]) Pagination() models.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// Filter returns the active category filter, "" when none.
func (c *Controller[T]) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Page returns the current page number.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Loading reports whether a fetch is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error from the last completed fetch, nil after a success.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
