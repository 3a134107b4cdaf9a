package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

func TestDashboard_LoginTriggersFullRefresh(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	hits := map[string]int{}
	count := func(path string) {
		mu.Lock()
		hits[path]++
		mu.Unlock()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.LoginResponse{Token: testAdminToken})
	})
	for _, path := range []string{"/api/projects", "/api/certificates", "/api/media", "/api/resumes"} {
		p := path
		mux.HandleFunc("GET "+p, func(w http.ResponseWriter, _ *http.Request) {
			count(p)
			_, _ = w.Write([]byte(`{"items":[],"total":0}`))
		})
	}
	mux.HandleFunc("GET /api/profile", func(w http.ResponseWriter, _ *http.Request) {
		count("/api/profile")
		_ = json.NewEncoder(w).Encode(model.Profile{FullName: "Henry M. Ugochukwu"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	d := NewDashboard(DashboardOptions{
		Client: NewClient(server.URL, nil),
		Tokens: NewFileTokenStore(filepath.Join(t.TempDir(), "token")),
	})

	require.NoError(t, d.Session.Login(context.Background(), "admin@example.com", "hunter2"))

	mu.Lock()
	defer mu.Unlock()
	for _, path := range []string{"/api/projects", "/api/certificates", "/api/media", "/api/resumes", "/api/profile"} {
		assert.Equal(t, 1, hits[path], "expected one refresh of %s", path)
	}
	assert.Equal(t, "Henry M. Ugochukwu", d.Profile.Draft().FullName)
}

func TestDashboard_Upload_SendsFileWithSessionToken(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var gotAuth, gotFileName string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.LoginResponse{Token: testAdminToken})
	})
	for _, path := range []string{"/api/projects", "/api/certificates", "/api/media", "/api/resumes"} {
		mux.HandleFunc("GET "+path, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"items":[],"total":0}`))
		})
	}
	mux.HandleFunc("GET /api/profile", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Profile{})
	})
	mux.HandleFunc("POST /api/upload", func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		gotAuth = r.Header.Get("Authorization")
		gotFileName = header.Filename
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"fileName":"stored.png","fileUrl":"http://localhost:5000/uploads/stored.png"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	d := NewDashboard(DashboardOptions{
		Client: NewClient(server.URL, nil),
		Tokens: NewFileTokenStore(filepath.Join(t.TempDir(), "token")),
	})
	require.NoError(t, d.Session.Login(context.Background(), "admin@example.com", "hunter2"))

	result, ok := d.Upload(context.Background(), "photo.png", strings.NewReader("png-bytes"))
	require.True(t, ok)
	assert.Equal(t, "stored.png", result.FileName)
	assert.Equal(t, "http://localhost:5000/uploads/stored.png", result.FileURL)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "Bearer "+testAdminToken, gotAuth)
	assert.Equal(t, "photo.png", gotFileName)
}

func TestDashboard_Upload_RequiresActiveSession(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	notices := &noticeRecorder{}
	d := NewDashboard(DashboardOptions{
		Client:   NewClient(server.URL, nil),
		Tokens:   NewFileTokenStore(filepath.Join(t.TempDir(), "token")),
		Notifier: notices,
	})

	result, ok := d.Upload(context.Background(), "photo.png", strings.NewReader("png-bytes"))
	assert.False(t, ok)
	assert.Nil(t, result)
	assert.Equal(t, []string{"Your admin session is not active. Please sign in again."}, notices.all())

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, hits, "no request should leave the client without a session")
}

func TestDashboard_ResumeFormCarriesRetryPolicy(t *testing.T) {
	t.Parallel()

	d := NewDashboard(DashboardOptions{
		Client: NewClient("http://localhost:0", nil),
		Tokens: NewFileTokenStore(filepath.Join(t.TempDir(), "token")),
	})

	assert.NotNil(t, d.ResumeForm.retry)
	assert.Nil(t, d.ProjectForm.retry)
	assert.Nil(t, d.CertificateForm.retry)
	assert.Nil(t, d.MediaForm.retry)
}
