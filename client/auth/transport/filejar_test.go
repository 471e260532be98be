package transport

import (
	"net/http"
	neturl "net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileJar_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	u, err := neturl.Parse("http://127.0.0.1:8000/api/auth/login")
	require.NoError(t, err)

	jar, err := NewFileJar(path)
	require.NoError(t, err)
	jar.SetCookies(u, []*http.Cookie{{
		Name:     "plie_refresh",
		Value:    "refresh-anna",
		Path:     "/api/auth",
		HttpOnly: true,
	}})

	// a fresh jar, as a new CLI invocation would create
	reloaded, err := NewFileJar(path)
	require.NoError(t, err)
	refreshURL, err := neturl.Parse("http://127.0.0.1:8000/api/auth/refresh")
	require.NoError(t, err)
	cookies := reloaded.Cookies(refreshURL)
	require.Len(t, cookies, 1)
	assert.Equal(t, "plie_refresh", cookies[0].Name)
	assert.Equal(t, "refresh-anna", cookies[0].Value)

	// cookies scoped to /api/auth stay off other endpoints
	otherURL, err := neturl.Parse("http://127.0.0.1:8000/api/groups/schedule")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Cookies(otherURL))
}

func TestFileJar_DropsExpiredCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	u, err := neturl.Parse("http://127.0.0.1:8000/api/auth/login")
	require.NoError(t, err)

	jar, err := NewFileJar(path)
	require.NoError(t, err)
	jar.SetCookies(u, []*http.Cookie{{
		Name:    "plie_refresh",
		Value:   "stale",
		Path:    "/api/auth",
		Expires: time.Now().Add(-time.Hour),
	}})

	reloaded, err := NewFileJar(path)
	require.NoError(t, err)
	refreshURL, err := neturl.Parse("http://127.0.0.1:8000/api/auth/refresh")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Cookies(refreshURL))
}

func TestFileJar_DeletionByMaxAge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	u, err := neturl.Parse("http://127.0.0.1:8000/api/auth/logout")
	require.NoError(t, err)

	jar, err := NewFileJar(path)
	require.NoError(t, err)
	jar.SetCookies(u, []*http.Cookie{{Name: "plie_refresh", Value: "refresh-anna", Path: "/api/auth"}})
	jar.SetCookies(u, []*http.Cookie{{Name: "plie_refresh", Value: "", Path: "/api/auth", MaxAge: -1}})

	reloaded, err := NewFileJar(path)
	require.NoError(t, err)
	authURL, err := neturl.Parse("http://127.0.0.1:8000/api/auth/refresh")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Cookies(authURL))
}
