package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// TeachersService covers the teacher-facing endpoints: own groups, weekly
// schedule, attendance marking and reschedule requests.
type TeachersService struct {
	client *Client
}

// Groups lists the groups assigned to the current teacher.
func (s *TeachersService) Groups(ctx context.Context) (*schema.GroupList, error) {
	return do[schema.GroupList](ctx, s.client, http.MethodGet, "/teachers/groups", nil)
}

// Group returns one of the teacher's groups.
func (s *TeachersService) Group(ctx context.Context, groupID int) (*schema.Group, error) {
	return do[schema.Group](ctx, s.client, http.MethodGet, fmt.Sprintf("/teachers/groups/%d", groupID), nil)
}

// GroupStudents lists the students enrolled in one of the teacher's groups.
func (s *TeachersService) GroupStudents(ctx context.Context, groupID int) (*schema.StudentList, error) {
	return do[schema.StudentList](ctx, s.client, http.MethodGet, fmt.Sprintf("/teachers/groups/%d/students", groupID), nil)
}

// WeeklySchedule returns the teacher's weekly grid.
func (s *TeachersService) WeeklySchedule(ctx context.Context) (*schema.WeeklySchedule, error) {
	return do[schema.WeeklySchedule](ctx, s.client, http.MethodGet, "/teachers/schedule/weekly", nil)
}

// ScheduledLessons lists the teacher's upcoming lesson instances.
func (s *TeachersService) ScheduledLessons(ctx context.Context) (*schema.LessonList, error) {
	return do[schema.LessonList](ctx, s.client, http.MethodGet, "/teachers/scheduled-lessons", nil)
}

// MarkAttendance records attendance for one lesson of a group.
func (s *TeachersService) MarkAttendance(ctx context.Context, groupID, lessonID int, req schema.MarkAttendanceRequest) error {
	path := fmt.Sprintf("/teachers/groups/%d/lessons/%d/attendance", groupID, lessonID)
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, path, req)
	return err
}

// LessonAttendance returns the recorded attendance of a lesson.
func (s *TeachersService) LessonAttendance(ctx context.Context, groupID, lessonID int) (*schema.LessonAttendance, error) {
	path := fmt.Sprintf("/teachers/groups/%d/lessons/%d/attendance", groupID, lessonID)
	return do[schema.LessonAttendance](ctx, s.client, http.MethodGet, path, nil)
}

// CreateLesson adds an ad-hoc lesson for one of the teacher's groups.
func (s *TeachersService) CreateLesson(ctx context.Context, groupID int, req schema.CreateLessonRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/teachers/groups/%d/lessons", groupID), req)
	return err
}

// UpdateNotes replaces the teacher's notes on a group.
func (s *TeachersService) UpdateNotes(ctx context.Context, groupID int, notes string) error {
	payload := schema.GroupNote{Notes: notes}
	_, err := do[schema.Message](ctx, s.client, http.MethodPut, fmt.Sprintf("/teachers/groups/%d/notes", groupID), payload)
	return err
}

// RequestReschedule files a reschedule request for an administrator to
// approve or reject.
func (s *TeachersService) RequestReschedule(ctx context.Context, req schema.RescheduleRequestPayload) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, "/teachers/reschedule-request", req)
	return err
}
