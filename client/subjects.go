package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// SubjectsService manages taught disciplines.
type SubjectsService struct {
	client *Client
}

// List returns all subjects.
func (s *SubjectsService) List(ctx context.Context) ([]schema.Subject, error) {
	res, err := do[[]schema.Subject](ctx, s.client, http.MethodGet, "/subjects/", nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// Create adds a subject (administrator scope).
func (s *SubjectsService) Create(ctx context.Context, req schema.CreateSubjectRequest) (*schema.Subject, error) {
	return do[schema.Subject](ctx, s.client, http.MethodPost, "/subjects/", req)
}

// Update changes a subject.
func (s *SubjectsService) Update(ctx context.Context, subjectID int, req schema.UpdateSubjectRequest) (*schema.Subject, error) {
	return do[schema.Subject](ctx, s.client, http.MethodPut, fmt.Sprintf("/subjects/%d", subjectID), req)
}

// Delete removes a subject.
func (s *SubjectsService) Delete(ctx context.Context, subjectID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/subjects/%d", subjectID), nil)
	return err
}
