package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plieapp/plie/client/auth"
)

// newBackend returns a server that accepts only the given bearer token and
// records every Authorization header it sees.
func newBackend(accept string, seen *[]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = append(*seen, r.Header.Get("Authorization"))
		if r.Header.Get("Authorization") != "Bearer "+accept {
			http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
			return
		}
		_, _ = io.Copy(io.Discard, r.Body)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
}

func TestRoundTripper_AttachesBearer(t *testing.T) {
	var seen []string
	backend := newBackend("T1", &seen)
	defer backend.Close()

	session := auth.NewSession()
	session.SetToken("T1")
	client := &http.Client{Transport: New(session)}

	resp, err := client.Get(backend.URL + "/groups")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, seen, 1)
	assert.Equal(t, "Bearer T1", seen[0])
}

func TestRoundTripper_RefreshAndReplay(t *testing.T) {
	var seen []string
	backend := newBackend("T2", &seen)
	defer backend.Close()

	var refreshes int32
	session := auth.NewSession()
	session.SetToken("T1")
	session.SetRefreshFunc(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&refreshes, 1)
		return "T2", nil
	})
	client := &http.Client{Transport: New(session)}

	resp, err := client.Get(backend.URL + "/groups")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
	require.Len(t, seen, 2)
	assert.Equal(t, "Bearer T1", seen[0])
	assert.Equal(t, "Bearer T2", seen[1])
	assert.Equal(t, "T2", session.Token())
}

func TestRoundTripper_ReplaysBody(t *testing.T) {
	var bodies []string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(data))
		if r.Header.Get("Authorization") != "Bearer T2" {
			http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	session := auth.NewSession()
	session.SetToken("T1")
	session.SetRefreshFunc(func(ctx context.Context) (string, error) {
		return "T2", nil
	})
	client := &http.Client{Transport: New(session)}

	resp, err := client.Post(backend.URL+"/groups", "application/json", bytes.NewReader([]byte(`{"name":"Ballet"}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, bodies, 2)
	assert.Equal(t, `{"name":"Ballet"}`, bodies[0])
	assert.Equal(t, `{"name":"Ballet"}`, bodies[1])
}

func TestRoundTripper_RetriesExactlyOnce(t *testing.T) {
	var hits int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
	}))
	defer backend.Close()

	var refreshes int32
	session := auth.NewSession()
	session.SetRefreshFunc(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&refreshes, 1)
		return "T2", nil
	})
	client := &http.Client{Transport: New(session)}

	resp, err := client.Get(backend.URL + "/groups")
	require.NoError(t, err)
	defer resp.Body.Close()

	// one original attempt, one replay, no further cycles
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
}

func TestRoundTripper_RefreshFailureSurfacesOriginal401(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Token expired"}`, http.StatusUnauthorized)
	}))
	defer backend.Close()

	session := auth.NewSession()
	session.SetRefreshFunc(func(ctx context.Context) (string, error) {
		return "", assert.AnError
	})
	client := &http.Client{Transport: New(session)}

	resp, err := client.Get(backend.URL + "/groups")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Token expired")
	assert.Equal(t, "", session.Token())
}

func TestRoundTripper_WithoutRetry(t *testing.T) {
	var hits int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
	}))
	defer backend.Close()

	var refreshes int32
	session := auth.NewSession()
	session.SetRefreshFunc(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&refreshes, 1)
		return "T2", nil
	})
	client := &http.Client{Transport: New(session)}

	req, err := http.NewRequestWithContext(WithoutRetry(context.Background()), http.MethodGet, backend.URL+"/auth/refresh", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, int32(0), atomic.LoadInt32(&refreshes))
}
