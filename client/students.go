package client

import (
	"context"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// StudentsService covers the student-facing endpoints.
type StudentsService struct {
	client *Client
}

// Me returns the current student's enrolment profile, including remaining
// trial lessons.
func (s *StudentsService) Me(ctx context.Context) (*schema.Student, error) {
	return do[schema.Student](ctx, s.client, http.MethodGet, "/students/me", nil)
}

// UpdateMe changes the student's own profile fields.
func (s *StudentsService) UpdateMe(ctx context.Context, req schema.UpdateStudentProfileRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, "/students/me", req)
	return err
}

// MyGroups lists the groups the student is enrolled in, trials included.
func (s *StudentsService) MyGroups(ctx context.Context) (*schema.StudentGroupList, error) {
	return do[schema.StudentGroupList](ctx, s.client, http.MethodGet, "/students/my-groups", nil)
}

// MyAttendance returns the student's attendance history.
func (s *StudentsService) MyAttendance(ctx context.Context) (*schema.AttendanceHistory, error) {
	return do[schema.AttendanceHistory](ctx, s.client, http.MethodGet, "/students/my-attendance", nil)
}
