package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// ErrNoRefresh is returned when a refresh is requested but the session has
// no refresh function wired in.
var ErrNoRefresh = errors.New("session has no refresh function")

var errEmptyToken = errors.New("refresh returned no token")

// RefreshFunc exchanges the backend's HttpOnly refresh cookie for a new
// access token. It returns the raw token string; any failure - transport
// error, non-2xx status or malformed body - means "no new token".
type RefreshFunc func(ctx context.Context) (string, error)

// Session owns the in-memory access token and the shared refresh state.
// At most one refresh HTTP call is in flight at any time: callers that
// observe a 401 while a refresh is already pending await the same call
// instead of issuing their own.
//
// The token lifecycle is: unauthenticated (no token) -> authenticated
// (token held) -> refreshing (401 observed) -> authenticated or back to
// unauthenticated when the refresh fails and the caller must log in again.
type Session struct {
	mu      sync.Mutex
	token   *oauth2.Token
	refresh RefreshFunc
	pending *refreshCall
}

type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

func (c *refreshCall) wait(ctx context.Context) (string, error) {
	select {
	case <-c.done:
		return c.token, c.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// NewSession creates an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// SetRefreshFunc wires the refresh operation; the client sets this once at
// construction time.
func (s *Session) SetRefreshFunc(refresh RefreshFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = refresh
}

// SetToken replaces the in-memory access token. An empty value clears it.
// When the token is a JWT its exp claim is recorded so Authenticated can
// report expiry without a round trip.
func (s *Session) SetToken(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTokenLocked(raw)
}

func (s *Session) setTokenLocked(raw string) {
	if raw == "" {
		s.token = nil
		return
	}
	s.token = &oauth2.Token{
		AccessToken: raw,
		TokenType:   "Bearer",
		Expiry:      tokenExpiry(raw),
	}
}

// Token returns the current access token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return ""
	}
	return s.token.AccessToken
}

// Clear drops the in-memory token. It never touches the refresh cookie,
// which is owned by the backend.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
}

// Authenticated reports whether a usable (held and unexpired) token exists.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token.Valid()
}

// Refresh obtains a new access token, storing it on success. Concurrent
// callers share a single in-flight refresh call and receive its result;
// once the call settles the pending reference is cleared so a later 401
// can trigger a fresh attempt.
func (s *Session) Refresh(ctx context.Context) (string, error) {
	s.mu.Lock()
	if call := s.pending; call != nil {
		s.mu.Unlock()
		return call.wait(ctx)
	}
	refresh := s.refresh
	if refresh == nil {
		s.mu.Unlock()
		return "", ErrNoRefresh
	}
	call := &refreshCall{done: make(chan struct{})}
	s.pending = call
	s.mu.Unlock()

	// The refresh outlives the first caller's context so one cancelled
	// request cannot poison the shared result for the other waiters.
	go s.run(context.WithoutCancel(ctx), call, refresh)

	return call.wait(ctx)
}

func (s *Session) run(ctx context.Context, call *refreshCall, refresh RefreshFunc) {
	token, err := refresh(ctx)
	if err == nil && token == "" {
		err = errEmptyToken
	}
	s.mu.Lock()
	if err == nil {
		s.setTokenLocked(token)
	}
	s.pending = nil
	s.mu.Unlock()

	call.token, call.err = token, err
	close(call.done)
}

// tokenExpiry reads the exp claim of a JWT without verifying its signature;
// the backend remains the authority, this is only a local hint.
func tokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
