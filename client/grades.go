package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// GradesService manages grades for teachers, students and administrators.
type GradesService struct {
	client *Client
}

// Submit records a batch of grades for a group.
func (s *GradesService) Submit(ctx context.Context, req schema.SubmitGradesRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, "/grades", req)
	return err
}

// Delete removes previously submitted grades.
func (s *GradesService) Delete(ctx context.Context, req schema.DeleteGradesRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, "/grades", req)
	return err
}

// TeacherGroup returns the grade sheet of a group the teacher leads.
func (s *GradesService) TeacherGroup(ctx context.Context, groupID int) (*schema.GradeSheet, error) {
	return do[schema.GradeSheet](ctx, s.client, http.MethodGet, fmt.Sprintf("/grades/teacher/group/%d", groupID), nil)
}

// MyGrades returns the current student's grades.
func (s *GradesService) MyGrades(ctx context.Context) (*schema.StudentGrades, error) {
	return do[schema.StudentGrades](ctx, s.client, http.MethodGet, "/grades/student/me", nil)
}

// AdminGroup returns a group's grade sheet with administrator scope.
func (s *GradesService) AdminGroup(ctx context.Context, groupID int) (*schema.GradeSheet, error) {
	return do[schema.GradeSheet](ctx, s.client, http.MethodGet, fmt.Sprintf("/grades/admin/group/%d", groupID), nil)
}
