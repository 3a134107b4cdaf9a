package admin

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

// User-facing session notices.
const (
	noticeSessionExpired = "Session expired or invalid. Please sign in again."
	noticeLoggedOut      = "You have been logged out."
	noticeSessionMissing = "Your admin session is not active. Please sign in again."
)

// authErrorSignature classifies session-invalidating failures. Any API call
// matching it ends the session, not just login or verify: a token can expire
// mid-session during a later mutation.
var authErrorSignature = regexp.MustCompile(`(?i)unauthorized|invalid or expired token|invalid credentials`)

// IsAuthError reports whether an error should invalidate the session.
func IsAuthError(err error) bool {
	return err != nil && authErrorSignature.MatchString(err.Error())
}

// TokenStore persists the admin token across runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file with owner-only
// permissions.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a FileTokenStore at the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load reads the persisted token. A missing file is not an error; it returns
// an empty token.
func (s *FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Save writes the token, creating parent directories as needed.
func (s *FileTokenStore) Save(token string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the persisted token. A missing file is not an error.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SessionStore owns the admin credential: it is the only writer of the token,
// while every outgoing request reads it. A cleared session is visible to the
// very next request because clears happen synchronously under the lock.
type SessionStore struct {
	client   *Client
	tokens   TokenStore
	notifier Notifier

	// OnAuthenticated runs after a successful login, before Login returns.
	// The dashboard uses it to trigger a full data refresh.
	OnAuthenticated func(ctx context.Context)

	mu            sync.Mutex
	token         string
	authenticated bool
}

// NewSessionStore constructs a SessionStore.
func NewSessionStore(client *Client, tokens TokenStore, notifier Notifier) *SessionStore {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &SessionStore{client: client, tokens: tokens, notifier: notifier}
}

// Token returns the current token, empty when unauthenticated.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether the session holds a verified token.
func (s *SessionStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Restore loads the persisted token at startup and verifies it against the
// API. Any verification failure clears the session and surfaces a notice.
func (s *SessionStore) Restore(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		s.set("", false)
		return nil
	}

	_, err = DoJSON[model.VerifyResponse](ctx, s.client, RequestParams{
		Method: http.MethodGet,
		Path:   "/api/auth/verify",
		Token:  token,
	})
	if err != nil {
		s.invalidate()
		return nil
	}

	s.set(token, true)
	return nil
}

// Login exchanges credentials for a token, persists it, and triggers the
// authenticated hook. Auth failures leave the session unauthenticated.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	resp, err := DoJSON[model.LoginResponse](ctx, s.client, RequestParams{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   model.LoginRequest{Email: email, Password: password},
	})
	if err != nil {
		s.notifier.Notify(err.Error())
		return err
	}

	if err := s.tokens.Save(resp.Token); err != nil {
		return err
	}
	s.set(resp.Token, true)

	if s.OnAuthenticated != nil {
		s.OnAuthenticated(ctx)
	}
	return nil
}

// Logout clears the persisted token and in-memory session unconditionally.
func (s *SessionStore) Logout() {
	if err := s.tokens.Clear(); err != nil {
		// The in-memory session still clears; a stale file only means the
		// next Restore runs one doomed verification.
		_ = err
	}
	s.set("", false)
	s.notifier.Notify(noticeLoggedOut)
}

// RequireToken is the local fast-fail guard before every mutating action. It
// never performs a server round trip.
func (s *SessionStore) RequireToken() bool {
	if s.Authenticated() {
		return true
	}
	s.notifier.Notify(noticeSessionMissing)
	return false
}

// HandleError applies the cross-cutting auth classification: when the error
// is session-invalidating, the session is cleared and the expiry notice is
// surfaced. Returns true when the error was consumed this way.
func (s *SessionStore) HandleError(err error) bool {
	if !IsAuthError(err) {
		return false
	}
	s.invalidate()
	return true
}

func (s *SessionStore) invalidate() {
	if err := s.tokens.Clear(); err != nil {
		_ = err
	}
	s.set("", false)
	s.notifier.Notify(noticeSessionExpired)
}

func (s *SessionStore) set(token string, authenticated bool) {
	s.mu.Lock()
	s.token = token
	s.authenticated = authenticated
	s.mu.Unlock()
}
