package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// GroupsService covers the public group endpoints: browsing the schedule and
// enrolling (regular, trial or additional lessons).
type GroupsService struct {
	client *Client
}

// Schedule returns every group's weekly slots and exceptions; hallID narrows
// the result to one hall.
func (s *GroupsService) Schedule(ctx context.Context, hallID *int) ([]schema.GroupSchedule, error) {
	path := "/groups/schedule"
	if hallID != nil {
		path = fmt.Sprintf("%s?hallId=%d", path, *hallID)
	}
	res, err := do[[]schema.GroupSchedule](ctx, s.client, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// Filters returns the filter dimensions for group browsing.
func (s *GroupsService) Filters(ctx context.Context) (*schema.GroupFilters, error) {
	return do[schema.GroupFilters](ctx, s.client, http.MethodGet, "/groups/filters", nil)
}

// Available lists groups currently open for enrolment.
func (s *GroupsService) Available(ctx context.Context) ([]schema.AvailableGroup, error) {
	res, err := do[[]schema.AvailableGroup](ctx, s.client, http.MethodGet, "/groups/available", nil)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// Join enrols the current student into the group. Full or closed groups
// surface as *schema.APIError with status 409.
func (s *GroupsService) Join(ctx context.Context, groupID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/groups/%d/join", groupID), nil)
	return err
}

// Trial books a trial lesson in the group, consuming one of the student's
// allowed trials.
func (s *GroupsService) Trial(ctx context.Context, groupID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/groups/%d/trial", groupID), nil)
	return err
}

// RequestAdditionalLesson asks for an extra lesson slot for the group.
func (s *GroupsService) RequestAdditionalLesson(ctx context.Context, groupID int, reason string) error {
	payload := schema.AdditionalLessonRequest{Reason: reason}
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/groups/%d/additional-request", groupID), payload)
	return err
}
