package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

type listFixture struct {
	server   *httptest.Server
	session  *SessionStore
	recorder *noticeRecorder

	mu      sync.Mutex
	queries []url.Values
}

// newListFixture serves /api/projects from the given handler and returns an
// already-authenticated session.
func newListFixture(t *testing.T, handler http.HandlerFunc) *listFixture {
	t.Helper()
	f := &listFixture{recorder: &noticeRecorder{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.queries = append(f.queries, r.URL.Query())
		f.mu.Unlock()
		handler(w, r)
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	f.session = NewSessionStore(NewClient(f.server.URL, nil), NewFileTokenStore(t.TempDir()+"/token"), f.recorder)
	f.session.set(testAdminToken, true)
	return f
}

func (f *listFixture) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return nil
	}
	return f.queries[len(f.queries)-1]
}

func (f *listFixture) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func writePage(w http.ResponseWriter, items []model.Project, total int) {
	_ = json.NewEncoder(w).Encode(model.Page[model.Project]{Items: items, Total: total})
}

func TestListController_Refresh_AppliesServerPage(t *testing.T) {
	t.Parallel()

	f := newListFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		writePage(w, []model.Project{{ID: "p1", Title: "One"}, {ID: "p2", Title: "Two"}}, 12)
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")
	c.SetNotifier(f.recorder)

	c.Refresh(context.Background())

	require.Len(t, c.Items(), 2)
	assert.Equal(t, 12, c.Total())
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, model.DefaultPageSize, c.PageSize())
	assert.True(t, c.HasNext())
	assert.False(t, c.HasPrev())
	assert.Empty(t, f.recorder.all())

	q := f.lastQuery()
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "10", q.Get("pageSize"))
	assert.Empty(t, q.Get("search"))
}

func TestListController_SetPage_SendsRequestedPage(t *testing.T) {
	t.Parallel()

	f := newListFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		writePage(w, nil, 30)
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")

	c.SetPage(context.Background(), 3)

	assert.Equal(t, 3, c.Page())
	assert.Equal(t, "3", f.lastQuery().Get("page"))
	assert.True(t, c.HasPrev())
	assert.False(t, c.HasNext())
}

func TestListController_SetSearch_ResetsToPageOne(t *testing.T) {
	t.Parallel()

	f := newListFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		writePage(w, nil, 100)
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")

	c.SetPage(context.Background(), 4)
	require.Equal(t, 4, c.Page())

	c.SetSearch(context.Background(), "dashboard")

	assert.Equal(t, 1, c.Page())
	q := f.lastQuery()
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "dashboard", q.Get("search"))
}

func TestListController_SetPageSize_ResetsToPageOne(t *testing.T) {
	t.Parallel()

	f := newListFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		writePage(w, nil, 100)
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")

	c.SetPage(context.Background(), 4)
	c.SetPageSize(context.Background(), 50)

	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 50, c.PageSize())
	q := f.lastQuery()
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "50", q.Get("pageSize"))
}

func TestListController_SetPageSize_IgnoresUnsupportedSizes(t *testing.T) {
	t.Parallel()

	f := newListFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		writePage(w, nil, 0)
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")

	c.SetPageSize(context.Background(), 15)

	assert.Equal(t, model.DefaultPageSize, c.PageSize())
	assert.Zero(t, f.requestCount())
}

func TestListController_Refresh_KeepsCurrentPage(t *testing.T) {
	t.Parallel()

	f := newListFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		writePage(w, nil, 100)
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")

	c.SetPage(context.Background(), 2)
	c.Refresh(context.Background())

	assert.Equal(t, 2, c.Page())
	assert.Equal(t, "2", f.lastQuery().Get("page"))
}

func TestListController_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})

	f := newListFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			close(firstArrived)
			<-releaseFirst
			writePage(w, []model.Project{{ID: "old", Title: "Old"}}, 1)
			return
		}
		writePage(w, []model.Project{{ID: "new", Title: "New"}}, 1)
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Refresh(context.Background())
	}()

	<-firstArrived
	c.SetPage(context.Background(), 2)
	close(releaseFirst)
	<-done

	// The delayed page-1 response must not overwrite the page-2 state.
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "new", c.Items()[0].ID)
	assert.Equal(t, 2, c.Page())
}

func TestListController_AuthFailureInvalidatesSession(t *testing.T) {
	t.Parallel()

	f := newListFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized","message":"Invalid or expired token"}`))
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")
	c.SetNotifier(f.recorder)

	c.Refresh(context.Background())

	assert.False(t, f.session.Authenticated())
	assert.Equal(t, []string{"Session expired or invalid. Please sign in again."}, f.recorder.all())
}

func TestListController_FetchErrorSurfacedAsNotice(t *testing.T) {
	t.Parallel()

	f := newListFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal_error","message":"Internal server error"}`))
	})
	c := NewListController[model.Project](NewClient(f.server.URL, nil), f.session, "/api/projects")
	c.SetNotifier(f.recorder)

	c.Refresh(context.Background())

	assert.True(t, f.session.Authenticated())
	assert.Equal(t, []string{"Internal server error"}, f.recorder.all())
	assert.Empty(t, c.Items())
}
