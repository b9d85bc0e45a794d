package listview

import (
	"context"
	"strings"
	"sync"

	logrus "github.com/sirupsen/logrus"

	"orgconsole/internal/apiclient"
	"orgconsole/internal/authtoken"
)

// FetchFunc loads one page of records for the controller. It receives the
// already-assembled raw params (page, pageSize, organization_id, filters);
// normalization happens inside the resource client.
type FetchFunc[T any] func(ctx context.Context, params apiclient.Params) ([]T, apiclient.Pagination, error)

// SearchFieldsFunc returns the display fields a record is matched against by
// the page-local search.
type SearchFieldsFunc[T any] func(record T) []string

// Controller owns the table state of one resource screen: current page,
// page size, totals, active filters and the search term. Any page or filter
// change triggers a refetch; the search term only filters the page already
// fetched.
type Controller[T any] struct {
	mu sync.Mutex

	fetch        FetchFunc[T]
	searchFields SearchFieldsFunc[T]

	orgID    int
	scopeErr error

	page       int
	pageSize   int
	totalItems int
	totalPages int

	filters    map[string]string
	searchTerm string

	items   []T
	loading bool
	errMsg  string

	// Monotonic fetch tag. Responses carrying a stale tag are discarded so a
	// slow page-1 reply can never overwrite page-2 data.
	seq uint64
}

// New builds a controller scoped to the organization in claims. When the
// token carries no valid organization id the controller enters a terminal
// scoping-error state: Refresh never calls the backend and CanMutate
// reports false.
func New[T any](claims authtoken.Claims, pageSize int, fetch FetchFunc[T], searchFields SearchFieldsFunc[T]) *Controller[T] {
	ctrl := &Controller[T]{
		fetch:        fetch,
		searchFields: searchFields,
		page:         1,
		pageSize:     pageSize,
		filters:      map[string]string{},
	}

	orgID, err := claims.OrgID()
	if err != nil {
		ctrl.scopeErr = err
		ctrl.errMsg = err.Error()
		return ctrl
	}
	ctrl.orgID = orgID
	return ctrl
}

// CanMutate reports whether create/update/delete actions are enabled. They
// are disabled for the lifetime of the controller on a scoping error.
func (c *Controller[T]) CanMutate() bool {
	return c.scopeErr == nil
}

// OrgID returns the tenant id every fetch is scoped to.
func (c *Controller[T]) OrgID() int { return c.orgID }

// Page returns the current 1-based page.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// TotalItems returns the server-reported total across all pages.
func (c *Controller[T]) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalItems
}

// TotalPages returns the server-reported page count.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// Loading reports whether a fetch is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// ErrMsg returns the last displayable failure, empty when the last fetch
// succeeded.
func (c *Controller[T]) ErrMsg() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Filter returns the active value for one dimension, defaulting to the
// "all" sentinel.
func (c *Controller[T]) Filter(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.filters[key]; ok {
		return v
	}
	return "all"
}

// SetFilter records a new filter value, resets the page to 1 and refetches.
// Resetting first prevents landing on an out-of-range page of the narrowed
// result set.
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) error {
	c.mu.Lock()
	c.filters[key] = value
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetPage moves to another page and refetches.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetSearchTerm updates the page-local search. It never triggers a refetch:
// search only narrows the page already on screen.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
}

// Refresh fetches the current page with the active filters. On a scoping
// error it short-circuits without touching the network. A failed fetch
// clears the items so no stale rows stay on screen.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	if c.scopeErr != nil {
		return c.scopeErr
	}

	c.mu.Lock()
	c.seq++
	tag := c.seq
	c.loading = true
	params := apiclient.Params{
		"page":            c.page,
		"pageSize":        c.pageSize,
		"organization_id": c.orgID,
	}
	for k, v := range c.filters {
		params[k] = v
	}
	c.mu.Unlock()

	items, pg, err := c.fetch(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if tag != c.seq {
		// A newer fetch was issued while this one was in flight.
		logrus.WithField("tag", tag).Debug("discarding stale list response")
		return nil
	}
	c.loading = false

	if err != nil {
		c.items = nil
		c.errMsg = apiclient.FormatError(err)
		return err
	}

	c.items = items
	c.errMsg = ""
	c.totalItems = pg.TotalItems
	c.totalPages = pg.TotalPages
	return nil
}

// VisibleItems returns the fetched page narrowed by the search term: a
// case-insensitive substring match across the declared display fields.
// Search is page-local on purpose; it never reaches beyond the current page.
func (c *Controller[T]) VisibleItems() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(c.searchTerm))
	if term == "" || c.searchFields == nil {
		out := make([]T, len(c.items))
		copy(out, c.items)
		return out
	}

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		for _, field := range c.searchFields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// DeleteAndRefresh runs a delete and, only after the server confirms,
// refetches the current page. Deletes are pessimistic by contract.
func (c *Controller[T]) DeleteAndRefresh(ctx context.Context, del func(ctx context.Context) error) error {
	if c.scopeErr != nil {
		return c.scopeErr
	}
	if err := del(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}
