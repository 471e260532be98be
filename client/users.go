package client

import (
	"context"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// UsersService reads the authenticated user's account.
type UsersService struct {
	client *Client
}

// Me returns the current user's profile.
func (s *UsersService) Me(ctx context.Context) (*schema.User, error) {
	res, err := do[schema.UserResult](ctx, s.client, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}
	return &res.User, nil
}
