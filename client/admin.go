package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// AdminService covers the administrator surface: analytics, account and
// group management, attendance summaries, settings and audit logs.
type AdminService struct {
	client *Client
}

// Analytics returns the headline dashboard counters.
func (s *AdminService) Analytics(ctx context.Context) (*schema.Analytics, error) {
	return do[schema.Analytics](ctx, s.client, http.MethodGet, "/admin/analytics", nil)
}

// HallAnalytics breaks hall utilisation down per weekday.
func (s *AdminService) HallAnalytics(ctx context.Context) (*schema.HallAnalytics, error) {
	return do[schema.HallAnalytics](ctx, s.client, http.MethodGet, "/admin/analytics/halls", nil)
}

// TeacherAnalytics reports each teacher's weekly workload.
func (s *AdminService) TeacherAnalytics(ctx context.Context) (*schema.TeacherAnalytics, error) {
	return do[schema.TeacherAnalytics](ctx, s.client, http.MethodGet, "/admin/analytics/teachers", nil)
}

// GroupAnalytics reports utilisation per open group.
func (s *AdminService) GroupAnalytics(ctx context.Context) (*schema.GroupAnalytics, error) {
	return do[schema.GroupAnalytics](ctx, s.client, http.MethodGet, "/admin/analytics/groups", nil)
}

// StudentAnalytics reports per-student enrolment and attendance standing.
func (s *AdminService) StudentAnalytics(ctx context.Context) (*schema.StudentAnalytics, error) {
	return do[schema.StudentAnalytics](ctx, s.client, http.MethodGet, "/admin/analytics/students", nil)
}

// Users lists every account.
func (s *AdminService) Users(ctx context.Context) (*schema.UserList, error) {
	return do[schema.UserList](ctx, s.client, http.MethodGet, "/admin/users", nil)
}

// User returns one account.
func (s *AdminService) User(ctx context.Context, userID int) (*schema.User, error) {
	return do[schema.User](ctx, s.client, http.MethodGet, fmt.Sprintf("/admin/users/%d", userID), nil)
}

// UpdateUser changes an account's profile or role.
func (s *AdminService) UpdateUser(ctx context.Context, userID int, req schema.UpdateUserRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPut, fmt.Sprintf("/admin/users/%d", userID), req)
	return err
}

// DeleteUser removes an account.
func (s *AdminService) DeleteUser(ctx context.Context, userID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/admin/users/%d", userID), nil)
	return err
}

// Groups lists every group.
func (s *AdminService) Groups(ctx context.Context) (*schema.GroupList, error) {
	return do[schema.GroupList](ctx, s.client, http.MethodGet, "/admin/groups", nil)
}

// Group returns one group.
func (s *AdminService) Group(ctx context.Context, groupID int) (*schema.Group, error) {
	return do[schema.Group](ctx, s.client, http.MethodGet, fmt.Sprintf("/admin/groups/%d", groupID), nil)
}

// CreateGroup adds a group and returns its identifier.
func (s *AdminService) CreateGroup(ctx context.Context, req schema.CreateGroupRequest) (*schema.CreateGroupResult, error) {
	return do[schema.CreateGroupResult](ctx, s.client, http.MethodPost, "/admin/groups", req)
}

// UpdateGroup changes a group.
func (s *AdminService) UpdateGroup(ctx context.Context, groupID int, req schema.UpdateGroupRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPut, fmt.Sprintf("/admin/groups/%d", groupID), req)
	return err
}

// DeleteGroup removes a group.
func (s *AdminService) DeleteGroup(ctx context.Context, groupID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/admin/groups/%d", groupID), nil)
	return err
}

// CloseGroup closes a group for enrolment; OpenGroup reverts it.
func (s *AdminService) CloseGroup(ctx context.Context, groupID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/groups/%d/close", groupID), nil)
	return err
}

func (s *AdminService) OpenGroup(ctx context.Context, groupID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/groups/%d/open", groupID), nil)
	return err
}

// GroupStudents lists the students of a group.
func (s *AdminService) GroupStudents(ctx context.Context, groupID int) (*schema.StudentList, error) {
	return do[schema.StudentList](ctx, s.client, http.MethodGet, fmt.Sprintf("/admin/groups/%d/students", groupID), nil)
}

// AddGroupStudent enrols a student into a group.
func (s *AdminService) AddGroupStudent(ctx context.Context, groupID, studentID int) error {
	payload := map[string]int{"student_id": studentID}
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/groups/%d/students", groupID), payload)
	return err
}

// RemoveGroupStudent removes a student from a group.
func (s *AdminService) RemoveGroupStudent(ctx context.Context, groupID, studentID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/admin/groups/%d/students/%d", groupID, studentID), nil)
	return err
}

// Teachers lists all teachers.
func (s *AdminService) Teachers(ctx context.Context) (*schema.TeacherList, error) {
	return do[schema.TeacherList](ctx, s.client, http.MethodGet, "/admin/teachers", nil)
}

// CreateTeacher adds a teacher account.
func (s *AdminService) CreateTeacher(ctx context.Context, req schema.CreateTeacherRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, "/admin/teachers", req)
	return err
}

// UpdateTeacher changes a teacher's record.
func (s *AdminService) UpdateTeacher(ctx context.Context, teacherID int, req schema.UpdateTeacherRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPut, fmt.Sprintf("/admin/teachers/%d", teacherID), req)
	return err
}

// DeleteTeacher removes a teacher.
func (s *AdminService) DeleteTeacher(ctx context.Context, teacherID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/admin/teachers/%d", teacherID), nil)
	return err
}

// AssignTeacher attaches a teacher to a group.
func (s *AdminService) AssignTeacher(ctx context.Context, groupID, teacherID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/groups/%d/teachers/%d", groupID, teacherID), nil)
	return err
}

// UnassignTeacher detaches a teacher from a group.
func (s *AdminService) UnassignTeacher(ctx context.Context, groupID, teacherID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/admin/groups/%d/teachers/%d", groupID, teacherID), nil)
	return err
}

// Students lists all students.
func (s *AdminService) Students(ctx context.Context) (*schema.StudentList, error) {
	return do[schema.StudentList](ctx, s.client, http.MethodGet, "/admin/students", nil)
}

// CreateStudent adds a student account.
func (s *AdminService) CreateStudent(ctx context.Context, req schema.CreateStudentRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, "/admin/students", req)
	return err
}

// UpdateStudent changes a student's record.
func (s *AdminService) UpdateStudent(ctx context.Context, studentID int, req schema.UpdateStudentRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPut, fmt.Sprintf("/admin/students/%d", studentID), req)
	return err
}

// DeleteStudent removes a student.
func (s *AdminService) DeleteStudent(ctx context.Context, studentID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/admin/students/%d", studentID), nil)
	return err
}

// AttendanceSummary aggregates a group's attendance.
func (s *AdminService) AttendanceSummary(ctx context.Context, groupID int) (*schema.AttendanceSummary, error) {
	return do[schema.AttendanceSummary](ctx, s.client, http.MethodGet, fmt.Sprintf("/admin/groups/%d/attendance-summary", groupID), nil)
}

// Settings returns the system settings.
func (s *AdminService) Settings(ctx context.Context) (*schema.Settings, error) {
	return do[schema.Settings](ctx, s.client, http.MethodGet, "/admin/settings", nil)
}

// UpdateSettings patches the system settings and returns the result.
func (s *AdminService) UpdateSettings(ctx context.Context, req schema.UpdateSettingsRequest) (*schema.Settings, error) {
	return do[schema.Settings](ctx, s.client, http.MethodPatch, "/admin/settings", req)
}

// AuditLogs returns the audit trail.
func (s *AdminService) AuditLogs(ctx context.Context) (*schema.AuditLogList, error) {
	return do[schema.AuditLogList](ctx, s.client, http.MethodGet, "/admin/audit-logs", nil)
}

// Lessons lists every lesson instance, newest first.
func (s *AdminService) Lessons(ctx context.Context) (*schema.LessonList, error) {
	return do[schema.LessonList](ctx, s.client, http.MethodGet, "/admin/lessons", nil)
}

// CreateLesson schedules a lesson and returns its identifier.
func (s *AdminService) CreateLesson(ctx context.Context, req schema.CreateLessonRequest) (*schema.CreateLessonResult, error) {
	return do[schema.CreateLessonResult](ctx, s.client, http.MethodPost, "/admin/lessons", req)
}

// UpdateLesson changes a lesson's slot, teacher, hall or cancellation flag.
func (s *AdminService) UpdateLesson(ctx context.Context, lessonID int, req schema.UpdateLessonRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPut, fmt.Sprintf("/admin/lessons/%d", lessonID), req)
	return err
}

// DeleteLesson removes a lesson; the backend notifies the affected teacher
// and students.
func (s *AdminService) DeleteLesson(ctx context.Context, lessonID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodDelete, fmt.Sprintf("/admin/lessons/%d", lessonID), nil)
	return err
}

// CancelLesson marks a lesson cancelled without removing it.
func (s *AdminService) CancelLesson(ctx context.Context, lessonID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/lessons/%d/cancel", lessonID), nil)
	return err
}

// RescheduleLesson moves a lesson to a new slot; slot conflicts surface as
// *schema.APIError from the backend.
func (s *AdminService) RescheduleLesson(ctx context.Context, lessonID int, req schema.RescheduleLessonRequest) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/lessons/%d/reschedule", lessonID), req)
	return err
}

// SubstituteTeacher assigns a stand-in teacher for one lesson.
func (s *AdminService) SubstituteTeacher(ctx context.Context, lessonID, teacherID int) error {
	payload := schema.SubstituteTeacherRequest{SubstituteTeacherID: teacherID}
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/lessons/%d/substitute", lessonID), payload)
	return err
}

// RescheduleRequests lists pending reschedule requests.
func (s *AdminService) RescheduleRequests(ctx context.Context) (*schema.RescheduleRequestList, error) {
	return do[schema.RescheduleRequestList](ctx, s.client, http.MethodGet, "/admin/reschedule-requests", nil)
}

// ApproveReschedule approves a reschedule request.
func (s *AdminService) ApproveReschedule(ctx context.Context, requestID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/reschedule-requests/%d/approve", requestID), nil)
	return err
}

// RejectReschedule rejects a reschedule request.
func (s *AdminService) RejectReschedule(ctx context.Context, requestID int) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, fmt.Sprintf("/admin/reschedule-requests/%d/reject", requestID), nil)
	return err
}

// GenerateLessonInstances materialises lesson rows from the weekly schedule.
func (s *AdminService) GenerateLessonInstances(ctx context.Context) error {
	_, err := do[schema.Message](ctx, s.client, http.MethodPost, "/admin/generate-lesson-instances", nil)
	return err
}
