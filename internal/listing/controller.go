package listing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/koard/DukeFarm-Admin-sub000/internal/client"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain"
)

// Notifier receives the transient user-facing notifications a list screen
// emits (the toast analog).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// FetchFunc loads one page of items for the given query.
type FetchFunc[T any] func(ctx context.Context, q domain.ListQuery) (domain.Paginated[T], error)

// Controller owns the collection state of one list screen: query, current
// page, modal sub-state, and the client-side filter fallback. It is
// headless; rendering is the caller's concern.
//
// Every fetch is tagged with a monotonic generation. A fetch that resolves
// after a newer one has been issued is discarded, so rapid filter changes
// can never let a stale response overwrite fresher state.
type Controller[T any] struct {
	fetch  FetchFunc[T]
	notify Notifier

	gen atomic.Uint64

	mu          sync.Mutex
	query       domain.ListQuery
	all         []T
	page        domain.Paginated[T]
	localFilter func(T) bool
	loading     bool
	lastErr     error

	modal        ModalState[T]
	onModalOpen  func()
	onModalClose func()
	modalOpen    bool
	shutdown     bool
}

func NewController[T any](fetch FetchFunc[T], notify Notifier) *Controller[T] {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Controller[T]{
		fetch:  fetch,
		notify: notify,
		query:  domain.ListQuery{Page: 1, Limit: 10},
		modal:  ModalClosed[T]{},
	}
}

// OnModalOpen and OnModalClose register the side-effect hooks that bracket
// any modal (the scroll-lock analog). The close hook is guaranteed to run
// exactly once per open, including when the controller shuts down with a
// modal still up.
func (c *Controller[T]) OnModalOpen(fn func()) *Controller[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onModalOpen = fn
	return c
}

func (c *Controller[T]) OnModalClose(fn func()) *Controller[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onModalClose = fn
	return c
}

// Query returns a copy of the current query.
func (c *Controller[T]) Query() domain.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Page returns the currently displayed page.
func (c *Controller[T]) Page() domain.Paginated[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller[T]) LastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Reload fetches the current query. Stale resolutions (a newer Reload was
// issued while this one was in flight) are dropped silently.
func (c *Controller[T]) Reload(ctx context.Context) {
	gen := c.gen.Add(1)

	c.mu.Lock()
	c.loading = true
	q := c.query
	c.mu.Unlock()

	result, err := c.fetch(ctx, q)

	c.mu.Lock()
	if gen != c.gen.Load() {
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		// Degrade to an empty set; the screen stays interactive.
		c.all = nil
		c.page = domain.Paginated[T]{
			Items:      []T{},
			Pagination: domain.NewPagination(q.Page, q.Limit, 0),
		}
		c.lastErr = err
		c.mu.Unlock()
		c.notify.Error(errMessage(err))
		return
	}
	c.lastErr = nil
	c.all = result.Items
	c.applyLocked(result)
	c.mu.Unlock()
}

// applyLocked recomputes the displayed page. With a local filter active the
// server's pagination metadata is ignored and totals are re-derived from
// the filtered set; otherwise the server result is displayed verbatim.
func (c *Controller[T]) applyLocked(server domain.Paginated[T]) {
	if c.localFilter == nil {
		c.page = server
		return
	}
	c.page = PaginateAndFilter(c.all, c.localFilter, c.query.Page, c.query.Limit)
}

// SetSearch changes the search term and resets to page 1.
func (c *Controller[T]) SetSearch(ctx context.Context, term string) {
	c.mu.Lock()
	c.query.Search = term
	c.query.Page = 1
	c.mu.Unlock()
	c.Reload(ctx)
}

// SetFilter changes one server-side filter dimension and resets to page 1.
// An empty value removes the filter (it is never sent as empty).
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) {
	c.mu.Lock()
	if c.query.Filters == nil {
		c.query.Filters = map[string]string{}
	}
	if value == "" {
		delete(c.query.Filters, key)
	} else {
		c.query.Filters[key] = value
	}
	c.query.Page = 1
	c.mu.Unlock()
	c.Reload(ctx)
}

// SetLocalFilter installs (or clears) the client-side predicate for filter
// dimensions the server endpoint does not support. Resets to page 1 and
// re-derives the page from the already-fetched set without a refetch.
func (c *Controller[T]) SetLocalFilter(pred func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.localFilter = pred
	c.query.Page = 1
	if c.localFilter == nil {
		c.page = Paginate(c.all, c.query.Page, c.query.Limit)
		return
	}
	c.page = PaginateAndFilter(c.all, c.localFilter, c.query.Page, c.query.Limit)
}

// SetPage moves to another page of the current result.
func (c *Controller[T]) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.query.Page = page
	local := c.localFilter != nil
	if local {
		c.page = PaginateAndFilter(c.all, c.localFilter, c.query.Page, c.query.Limit)
	}
	c.mu.Unlock()
	if !local {
		c.Reload(ctx)
	}
}

// SetPageSize changes the page size and resets to page 1.
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) {
	if size < 1 {
		size = 1
	}
	c.mu.Lock()
	c.query.Limit = size
	c.query.Page = 1
	c.mu.Unlock()
	c.Reload(ctx)
}

// Modal returns the current modal state.
func (c *Controller[T]) Modal() ModalState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

func (c *Controller[T]) OpenCreate()      { c.openModal(ModalCreate[T]{}) }
func (c *Controller[T]) OpenEdit(rec T)   { c.openModal(ModalEdit[T]{Record: rec}) }
func (c *Controller[T]) OpenDelete(rec T) { c.openModal(ModalDelete[T]{Record: rec}) }
func (c *Controller[T]) OpenView(rec T)   { c.openModal(ModalView[T]{Record: rec}) }

func (c *Controller[T]) openModal(m ModalState[T]) {
	c.mu.Lock()
	if c.shutdown {
		c.mu.Unlock()
		return
	}
	wasOpen := c.modalOpen
	c.modal = m
	c.modalOpen = true
	hook := c.onModalOpen
	c.mu.Unlock()
	if !wasOpen && hook != nil {
		hook()
	}
}

// CloseModal returns the modal machine to Closed and runs the close hook.
func (c *Controller[T]) CloseModal() {
	c.mu.Lock()
	wasOpen := c.modalOpen
	c.modal = ModalClosed[T]{}
	c.modalOpen = false
	hook := c.onModalClose
	c.mu.Unlock()
	if wasOpen && hook != nil {
		hook()
	}
}

// Shutdown tears the controller down. A modal still open at this point is
// closed so its close hook cannot be skipped on the exit path.
func (c *Controller[T]) Shutdown() {
	c.mu.Lock()
	c.shutdown = true
	c.mu.Unlock()
	c.CloseModal()
}

// MutateAndReload runs a mutation and, on success, closes the modal and
// refetches so the screen converges on server truth. On failure the modal
// stays open and only a notification is emitted.
func (c *Controller[T]) MutateAndReload(ctx context.Context, mutate func(ctx context.Context) error, successMsg string) error {
	if err := mutate(ctx); err != nil {
		c.notify.Error(errMessage(err))
		return err
	}
	c.CloseModal()
	if successMsg != "" {
		c.notify.Success(successMsg)
	}
	c.Reload(ctx)
	return nil
}

// errMessage prefers the server-supplied message over the wrapped form.
func errMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *client.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
