package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// TranscriptService covers the published grade transcript: the student's own
// view plus the administrator's per-group view and publication.
type TranscriptService struct {
	client *Client
}

// My returns the current student's published transcript records.
func (s *TranscriptService) My(ctx context.Context) (*schema.StudentTranscript, error) {
	return do[schema.StudentTranscript](ctx, s.client, http.MethodGet, "/transcript/me", nil)
}

// Group returns a group's transcript view with administrator scope; a non-nil
// subjectID narrows the records to one subject.
func (s *TranscriptService) Group(ctx context.Context, groupID int, subjectID *int) (*schema.GroupTranscript, error) {
	path := fmt.Sprintf("/admin/transcript/group/%d", groupID)
	if subjectID != nil {
		path = fmt.Sprintf("%s?subject_id=%d", path, *subjectID)
	}
	return do[schema.GroupTranscript](ctx, s.client, http.MethodGet, path, nil)
}

// Publish freezes a group's current grades into transcript records for one
// subject. The backend refuses while completeness is required and students
// still lack grades; that surfaces as *schema.APIError with status 400.
func (s *TranscriptService) Publish(ctx context.Context, groupID int, req schema.PublishTranscriptRequest) (*schema.TranscriptPublishResult, error) {
	return do[schema.TranscriptPublishResult](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/transcript/group/%d/publish", groupID), req)
}

// PublishAll publishes every subject taught to the group.
func (s *TranscriptService) PublishAll(ctx context.Context, groupID int) (*schema.TranscriptPublishAllResult, error) {
	return do[schema.TranscriptPublishAllResult](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/transcript/group/%d/publish-all", groupID), nil)
}
