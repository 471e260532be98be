package cli

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plieapp/plie/client/auth/mock"
	"github.com/plieapp/plie/schema"
)

func newServer(t *testing.T) *mock.Server {
	t.Helper()
	server := mock.NewAcademyServer()
	t.Cleanup(server.Close)
	server.AddUser("anna@example.com", "secret", schema.User{
		ID:    1,
		Name:  "Anna",
		Email: "anna@example.com",
		Role:  "student",
	})
	return server
}

func TestRun_Login(t *testing.T) {
	server := newServer(t)
	err := Run([]string{"-u", server.URL(), "login", "anna@example.com", "secret"})
	assert.NoError(t, err)
}

func TestRun_LoginBadCredentials(t *testing.T) {
	server := newServer(t)
	err := Run([]string{"-u", server.URL(), "login", "anna@example.com", "wrong"})
	require.Error(t, err)
	apiErr, ok := schema.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestRun_SessionFileKeepsRefreshCookie(t *testing.T) {
	server := newServer(t)
	sessionFile := filepath.Join(t.TempDir(), "session.json")

	err := Run([]string{"-u", server.URL(), "-s", sessionFile, "login", "anna@example.com", "secret"})
	require.NoError(t, err)
	assert.FileExists(t, sessionFile)

	// a second invocation recovers via the persisted refresh cookie
	server.ProtectJSON("/api/users/me", http.StatusOK, schema.UserResult{
		User: schema.User{ID: 1, Name: "Anna", Email: "anna@example.com", Role: "student"},
	})
	err = Run([]string{"-u", server.URL(), "-s", sessionFile, "whoami"})
	assert.NoError(t, err)
	assert.Equal(t, 1, server.RefreshCalls())
}

func TestRun_UnknownCommand(t *testing.T) {
	server := newServer(t)
	err := Run([]string{"-u", server.URL(), "frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRun_RequiresCommand(t *testing.T) {
	server := newServer(t)
	err := Run([]string{"-u", server.URL()})
	assert.Error(t, err)
}
