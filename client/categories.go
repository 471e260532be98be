package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// CategoriesService manages dance style categories.
type CategoriesService struct {
	client *Client
}

// List returns all categories ordered by name.
func (s *CategoriesService) List(ctx context.Context) ([]schema.Category, error) {
	res, err := do[[]schema.Category](ctx, s.client, http.MethodGet, "/categories/", nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// Create adds a category (administrator scope).
func (s *CategoriesService) Create(ctx context.Context, req schema.CreateCategoryRequest) (*schema.Category, error) {
	return do[schema.Category](ctx, s.client, http.MethodPost, "/categories/", req)
}

// Update changes a category.
func (s *CategoriesService) Update(ctx context.Context, categoryID int, req schema.UpdateCategoryRequest) (*schema.Category, error) {
	return do[schema.Category](ctx, s.client, http.MethodPut, fmt.Sprintf("/categories/%d", categoryID), req)
}

// Delete removes a category.
func (s *CategoriesService) Delete(ctx context.Context, categoryID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/categories/%d", categoryID), nil)
	return err
}
