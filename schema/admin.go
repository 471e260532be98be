package schema

// Analytics is the headline dashboard payload from /admin/analytics.
type Analytics struct {
	TotalStudents   int     `json:"total_students"`
	TotalTeachers   int     `json:"total_teachers"`
	TotalGroups     int     `json:"total_groups"`
	ActiveGroups    int     `json:"active_groups"`
	LessonsThisWeek int     `json:"lessons_this_week"`
	AttendanceRate  float64 `json:"attendance_rate"`
}

// HallLoad is one hall's scheduled hours per weekday over the next month,
// from /admin/analytics/halls. The backend emits camelCase here.
type HallLoad struct {
	HallID    int    `json:"hallId"`
	HallName  string `json:"hallName"`
	Monday    int    `json:"monday"`
	Tuesday   int    `json:"tuesday"`
	Wednesday int    `json:"wednesday"`
	Thursday  int    `json:"thursday"`
	Friday    int    `json:"friday"`
	Saturday  int    `json:"saturday"`
	Sunday    int    `json:"sunday"`
	Total     int    `json:"total"`
}

// HallAnalytics wraps /admin/analytics/halls.
type HallAnalytics struct {
	Halls []HallLoad `json:"halls"`
}

// TeacherLoad is one teacher's weekly workload, from /admin/analytics/teachers.
type TeacherLoad struct {
	TeacherID    int    `json:"teacherId"`
	TeacherName  string `json:"teacherName"`
	TotalHours   int    `json:"totalHours"`
	StudentCount int    `json:"studentCount"`
	GroupCount   int    `json:"groupCount"`
}

// TeacherAnalytics wraps /admin/analytics/teachers.
type TeacherAnalytics struct {
	Teachers []TeacherLoad `json:"teachers"`
}

// GroupLoad is one open group's utilisation, from /admin/analytics/groups.
type GroupLoad struct {
	GroupID       int     `json:"groupId"`
	GroupName     string  `json:"groupName"`
	HallName      string  `json:"hallName"`
	TeacherName   string  `json:"teacherName"`
	StudentCount  int     `json:"studentCount"`
	Capacity      int     `json:"capacity"`
	ScheduleCount int     `json:"scheduleCount"`
	HoursPerWeek  float64 `json:"hoursPerWeek"`
	AvgAttendance float64 `json:"avgAttendance"`
	IsClosed      bool    `json:"isClosed"`
}

// GroupAnalytics wraps /admin/analytics/groups.
type GroupAnalytics struct {
	Groups []GroupLoad `json:"groups"`
}

// StudentGroupStanding is one group row inside a student's analytics record.
type StudentGroupStanding struct {
	GroupName  string  `json:"groupName"`
	Teacher    string  `json:"teacher"`
	Schedule   string  `json:"schedule"`
	Attendance float64 `json:"attendance"`
	Hall       string  `json:"hall"`
}

// StudentStanding is one student's enrolment and attendance picture, from
// /admin/analytics/students.
type StudentStanding struct {
	ID                int                    `json:"id"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	Phone             string                 `json:"phone"`
	Groups            []StudentGroupStanding `json:"groups"`
	SubscriptionUntil *string                `json:"subscriptionUntil"`
	IsActive          bool                   `json:"isActive"`
	RegisteredAt      *string                `json:"registeredAt"`
}

// StudentAnalyticsStats are the headline counters of the student analytics.
type StudentAnalyticsStats struct {
	TotalStudents  int     `json:"totalStudents"`
	ActiveStudents int     `json:"activeStudents"`
	NewThisMonth   int     `json:"newThisMonth"`
	AvgAttendance  float64 `json:"avgAttendance"`
}

// StudentAnalytics wraps /admin/analytics/students.
type StudentAnalytics struct {
	Students []StudentStanding     `json:"students"`
	Stats    StudentAnalyticsStats `json:"stats"`
}

// AttendanceSummary aggregates a group's attendance over a period, from
// /admin/groups/{id}/attendance-summary.
type AttendanceSummary struct {
	GroupID      int                       `json:"group_id"`
	LessonsHeld  int                       `json:"lessons_held"`
	AverageRate  float64                   `json:"average_rate"`
	PerStudent   []StudentAttendanceTotals `json:"per_student"`
}

// StudentAttendanceTotals counts one student's presence across a period.
type StudentAttendanceTotals struct {
	StudentID   int    `json:"student_id"`
	StudentName string `json:"student_name"`
	Present     int    `json:"present"`
	Absent      int    `json:"absent"`
	Excused     int    `json:"excused"`
}

// Settings is the admin-editable system configuration from /admin/settings.
type Settings struct {
	AcademyName        string `json:"academy_name"`
	TrialsAllowed      int    `json:"trials_allowed"`
	RegistrationOpen   bool   `json:"registration_open"`
	NotificationsEmail string `json:"notifications_email,omitempty"`
}

// UpdateSettingsRequest is the PATCH /admin/settings payload; nil fields are
// left unchanged.
type UpdateSettingsRequest struct {
	AcademyName        *string `json:"academy_name,omitempty"`
	TrialsAllowed      *int    `json:"trials_allowed,omitempty"`
	RegistrationOpen   *bool   `json:"registration_open,omitempty"`
	NotificationsEmail *string `json:"notifications_email,omitempty"`
}

// AuditLog is one /admin/audit-logs entry.
type AuditLog struct {
	ID        int     `json:"id"`
	UserID    *int    `json:"user_id"`
	UserName  string  `json:"user_name,omitempty"`
	Action    string  `json:"action"`
	Entity    string  `json:"entity,omitempty"`
	EntityID  *int    `json:"entity_id,omitempty"`
	Details   *string `json:"details,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// AuditLogList wraps /admin/audit-logs.
type AuditLogList struct {
	Logs  []AuditLog `json:"logs"`
	Total int        `json:"total,omitempty"`
}

// UserList wraps /admin/users.
type UserList struct {
	Users []User `json:"users"`
}

// UpdateUserRequest is the admin payload for PUT /admin/users/{id}.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}
