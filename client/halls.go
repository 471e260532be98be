package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// HallsService manages rehearsal halls (administrator scope).
type HallsService struct {
	client *Client
}

// List returns all halls.
func (s *HallsService) List(ctx context.Context) (*schema.HallList, error) {
	return do[schema.HallList](ctx, s.client, http.MethodGet, "/admin/halls", nil)
}

// Details returns a hall with its hosted groups, today's lessons and stats.
func (s *HallsService) Details(ctx context.Context, hallID int) (*schema.HallDetails, error) {
	return do[schema.HallDetails](ctx, s.client, http.MethodGet, fmt.Sprintf("/admin/halls/%d/details", hallID), nil)
}

// Create adds a hall and returns its identifier.
func (s *HallsService) Create(ctx context.Context, req schema.CreateHallRequest) (*schema.CreateHallResult, error) {
	return do[schema.CreateHallResult](ctx, s.client, http.MethodPost, "/admin/halls", req)
}

// Update changes a hall's name and/or capacity.
func (s *HallsService) Update(ctx context.Context, hallID int, req schema.UpdateHallRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPut, fmt.Sprintf("/admin/halls/%d", hallID), req)
	return err
}

// Delete removes a hall; the backend refuses while groups are assigned.
func (s *HallsService) Delete(ctx context.Context, hallID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/admin/halls/%d", hallID), nil)
	return err
}
