package schema

// Teacher is the staff record joined with its user account.
type Teacher struct {
	ID         int      `json:"id"`
	UserID     int      `json:"user_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	HourlyRate *float64 `json:"hourly_rate"`
	Bio        *string  `json:"bio"`
}

// TeacherList wraps the /admin/teachers response.
type TeacherList struct {
	Teachers []Teacher `json:"teachers"`
}

// CreateTeacherRequest is the admin payload for POST /admin/teachers.
type CreateTeacherRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
}

// UpdateTeacherRequest is the admin payload for PUT /admin/teachers/{id}.
type UpdateTeacherRequest struct {
	Name       *string  `json:"name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
}

// GroupNote is a teacher's free-form note attached to a group.
type GroupNote struct {
	Notes string `json:"notes"`
}

// AttendanceMark records one student's presence for a lesson.
type AttendanceMark struct {
	StudentID int    `json:"student_id"`
	Status    string `json:"status"` // present, absent, excused
	Comment   string `json:"comment,omitempty"`
}

// MarkAttendanceRequest is the payload for
// /teachers/groups/{gid}/lessons/{lid}/attendance.
type MarkAttendanceRequest struct {
	Marks []AttendanceMark `json:"marks"`
}

// LessonAttendance is the recorded attendance of one lesson.
type LessonAttendance struct {
	LessonID int              `json:"lesson_id"`
	Marks    []AttendanceMark `json:"marks"`
}

// RescheduleRequestPayload asks to move a lesson to a new slot.
type RescheduleRequestPayload struct {
	LessonID  int    `json:"lesson_id"`
	StartTime string `json:"start_time"`
	HallID    *int   `json:"hall_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
