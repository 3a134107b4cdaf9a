package admin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

// PageSizes are the page sizes the dashboard offers.
var PageSizes = []int{5, 10, 20, 50}

func allowedPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// ListController keeps a paginated, searchable view of one entity collection
// synchronized with the server. Ordering is delegated entirely to the server;
// the controller never re-sorts.
//
// Each fetch carries a sequence number; responses to superseded fetches are
// discarded so rapid parameter changes cannot overwrite newer state with an
// older response.
type ListController[T any] struct {
	client   *Client
	session  *SessionStore
	notifier Notifier
	path     string

	seq atomic.Uint64

	mu       sync.Mutex
	items    []T
	total    int
	page     int
	pageSize int
	search   string
}

// NewListController constructs a controller for the collection at the given
// API path (e.g. "/api/projects").
func NewListController[T any](client *Client, session *SessionStore, path string) *ListController[T] {
	return &ListController[T]{
		client:   client,
		session:  session,
		notifier: discardNotifier{},
		path:     path,
		page:     1,
		pageSize: model.DefaultPageSize,
	}
}

// SetNotifier routes surfaced fetch errors to the given notifier.
func (c *ListController[T]) SetNotifier(n Notifier) {
	if n != nil {
		c.notifier = n
	}
}

// Items returns the current page of items.
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Total returns the server-side total count.
func (c *ListController[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Page returns the current page number.
func (c *ListController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the current page size.
func (c *ListController[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageSize
}

// Search returns the current search text.
func (c *ListController[T]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// HasNext reports whether a further page exists.
func (c *ListController[T]) HasNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page*c.pageSize < c.total
}

// HasPrev reports whether a previous page exists.
func (c *ListController[T]) HasPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page > 1
}

// SetPage moves to the given page (minimum 1) and re-fetches.
func (c *ListController[T]) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	c.Refresh(ctx)
}

// SetPageSize changes the page size and resets to page 1, so a shrunk result
// set cannot leave the view on an out-of-range page. Sizes outside the
// offered set are ignored.
func (c *ListController[T]) SetPageSize(ctx context.Context, size int) {
	if !allowedPageSize(size) {
		return
	}
	c.mu.Lock()
	c.pageSize = size
	c.page = 1
	c.mu.Unlock()
	c.Refresh(ctx)
}

// SetSearch changes the search text and resets to page 1.
func (c *ListController[T]) SetSearch(ctx context.Context, search string) {
	c.mu.Lock()
	c.search = search
	c.page = 1
	c.mu.Unlock()
	c.Refresh(ctx)
}

// Refresh re-fetches with the current page, page size, and search. Mutating
// actions call this without resetting the page; deleting the last item on a
// page legitimately yields an empty page.
func (c *ListController[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	q := url.Values{}
	q.Set("page", strconv.Itoa(c.page))
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	if c.search != "" {
		q.Set("search", c.search)
	}
	c.mu.Unlock()

	seq := c.seq.Add(1)

	page, err := DoJSON[model.Page[T]](ctx, c.client, RequestParams{
		Method: http.MethodGet,
		Path:   c.path + "?" + q.Encode(),
		Token:  c.session.Token(),
	})
	if err != nil {
		if !c.session.HandleError(err) {
			c.notifier.Notify(err.Error())
		}
		return
	}

	// Discard responses to superseded fetches.
	if c.seq.Load() != seq {
		return
	}

	c.mu.Lock()
	c.items = page.Items
	c.total = page.Total
	c.mu.Unlock()
}
