package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// LessonsService covers the shared lesson endpoints available to teachers
// and students.
type LessonsService struct {
	client *Client
}

// Create schedules a lesson.
func (s *LessonsService) Create(ctx context.Context, req schema.CreateLessonRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, "/lessons", req)
	return err
}

// TeacherLessons lists lessons from the current teacher's perspective.
func (s *LessonsService) TeacherLessons(ctx context.Context) (*schema.LessonList, error) {
	return do[schema.LessonList](ctx, s.client, http.MethodGet, "/lessons/teacher", nil)
}

// StudentLessons lists lessons from the current student's perspective.
func (s *LessonsService) StudentLessons(ctx context.Context) (*schema.LessonList, error) {
	return do[schema.LessonList](ctx, s.client, http.MethodGet, "/lessons/student", nil)
}

// RequestReschedule asks to move the lesson to a new slot.
func (s *LessonsService) RequestReschedule(ctx context.Context, lessonID int, req schema.RescheduleRequestPayload) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/lessons/%d/reschedule", lessonID), req)
	return err
}

// RescheduleRequests lists the caller's pending reschedule requests.
func (s *LessonsService) RescheduleRequests(ctx context.Context) (*schema.RescheduleRequestList, error) {
	return do[schema.RescheduleRequestList](ctx, s.client, http.MethodGet, "/lessons/reschedule-requests", nil)
}

// Halls lists the halls available when scheduling a lesson.
func (s *LessonsService) Halls(ctx context.Context) (*schema.HallList, error) {
	return do[schema.HallList](ctx, s.client, http.MethodGet, "/lessons/halls", nil)
}

// Groups lists the groups available when scheduling a lesson.
func (s *LessonsService) Groups(ctx context.Context) (*schema.GroupList, error) {
	return do[schema.GroupList](ctx, s.client, http.MethodGet, "/lessons/groups", nil)
}
