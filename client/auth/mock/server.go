package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/plieapp/plie/schema"
)

// RefreshCookieName is the HttpOnly cookie the mock backend uses to carry
// the long-lived refresh credential, mirroring the real API.
const RefreshCookieName = "plie_refresh"

type account struct {
	password string
	user     schema.User
}

// Server is an httptest-backed stand-in for the Plié backend. It implements
// the /api/auth endpoints with real signed JWTs and lets tests register
// bearer-protected data endpoints, force refresh failures and count how
// many refresh calls actually hit the wire.
type Server struct {
	Secret    []byte
	AccessTTL time.Duration

	mu            sync.Mutex
	accounts      map[string]account
	refreshCalls  int
	requests      []string
	refreshStatus int           // non-zero forces the refresh endpoint to fail with it
	refreshDelay  time.Duration // artificial latency on the refresh endpoint

	mux  *http.ServeMux
	http *httptest.Server
}

// NewAcademyServer starts a mock backend with auth endpoints registered.
func NewAcademyServer() *Server {
	s := &Server{
		Secret:    []byte("mock-academy-secret"),
		AccessTTL: time.Hour,
		accounts:  map[string]account{},
		mux:       http.NewServeMux(),
	}
	s.mux.HandleFunc("/api/auth/login", s.handleLogin)
	s.mux.HandleFunc("/api/auth/refresh", s.handleRefresh)
	s.mux.HandleFunc("/api/auth/logout", s.handleLogout)
	s.http = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		s.mux.ServeHTTP(w, r)
	}))
	return s
}

// URL returns the base URL of the mock backend.
func (s *Server) URL() string { return s.http.URL }

// Close shuts the underlying httptest server down.
func (s *Server) Close() { s.http.Close() }

// AddUser registers a login account.
func (s *Server) AddUser(email, password string, user schema.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[email] = account{password: password, user: user}
}

// RefreshCalls reports how many requests reached the refresh endpoint.
func (s *Server) RefreshCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshCalls
}

// FailRefreshWith makes the refresh endpoint answer with the given status.
func (s *Server) FailRefreshWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshStatus = status
}

// DelayRefresh adds artificial latency to the refresh endpoint so concurrency
// tests can hold the shared refresh in flight.
func (s *Server) DelayRefresh(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshDelay = d
}

// Requests returns "METHOD path" entries in arrival order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.Method+" "+r.URL.Path)
}

// Handle registers a raw handler at path (the /api prefix included).
func (s *Server) Handle(path string, handler http.HandlerFunc) {
	s.mux.HandleFunc(path, handler)
}

// HandleProtected registers a handler that requires a valid bearer token.
func (s *Server) HandleProtected(path string, handler http.HandlerFunc) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || s.verify(raw) != nil {
			http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
			return
		}
		handler(w, r)
	})
}

// ProtectJSON registers a bearer-protected endpoint answering with a fixed
// JSON body.
func (s *Server) ProtectJSON(path string, status int, body any) {
	s.HandleProtected(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req schema.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"detail":"invalid payload"}`, http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	acct, ok := s.accounts[req.Email]
	s.mu.Unlock()
	if !ok || acct.password != req.Password {
		http.Error(w, `{"detail":"Invalid email or password"}`, http.StatusUnauthorized)
		return
	}
	token, err := s.IssueToken(acct.user.ID, acct.user.Role, s.AccessTTL)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "refresh-" + req.Email,
		Path:     "/api/auth",
		HttpOnly: true,
	})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(schema.LoginResult{Token: token, User: acct.user})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	s.refreshCalls++
	forced := s.refreshStatus
	delay := s.refreshDelay
	s.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if forced != 0 {
		http.Error(w, `{"detail":"Refresh token invalid"}`, forced)
		return
	}
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		http.Error(w, `{"detail":"Refresh token missing"}`, http.StatusUnauthorized)
		return
	}
	email := strings.TrimPrefix(cookie.Value, "refresh-")
	s.mu.Lock()
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		http.Error(w, `{"detail":"Unknown session"}`, http.StatusUnauthorized)
		return
	}
	token, err := s.IssueToken(acct.user.ID, acct.user.Role, s.AccessTTL)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(schema.RefreshResult{AccessToken: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(schema.Message{Message: "Logged out"})
}
