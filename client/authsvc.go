package client

import (
	"context"
	"net/http"

	"github.com/plieapp/plie/client/auth/transport"
	"github.com/plieapp/plie/schema"
)

// AuthService owns login, registration and logout.
type AuthService struct {
	client *Client
}

// Login authenticates with email and password, stores the returned access
// token in the session and returns the profile carried in the response.
// The refresh cookie arrives alongside and lands in the cookie jar.
func (s *AuthService) Login(ctx context.Context, email, password string) (*schema.LoginResult, error) {
	payload := schema.LoginRequest{Email: email, Password: password}
	res, err := do[schema.LoginResult](transport.WithoutRetry(ctx), s.client, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return nil, err
	}
	s.client.session.SetToken(res.Token)
	return res, nil
}

// Register creates a new student account.
func (s *AuthService) Register(ctx context.Context, req schema.RegisterRequest) error {
	_, err := do[schema.Message](transport.WithoutRetry(ctx), s.client, http.MethodPost, "/auth/register", req)
	return err
}

// Logout clears the in-memory token synchronously, then notifies the backend
// best-effort: a failed notification never fails the logout.
func (s *AuthService) Logout(ctx context.Context) {
	s.client.session.Clear()
	if _, err := do[schema.Message](transport.WithoutRetry(ctx), s.client, http.MethodPost, "/auth/logout", nil); err != nil {
		s.client.logger.WithError(err).Debug("logout notification failed")
	}
}
