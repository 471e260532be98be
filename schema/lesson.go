package schema

// Lesson is a single scheduled class instance.
type Lesson struct {
	ID              int     `json:"id"`
	GroupID         int     `json:"group_id"`
	GroupName       string  `json:"group_name,omitempty"`
	TeacherID       *int    `json:"teacher_id"`
	TeacherName     string  `json:"teacher_name,omitempty"`
	HallID          *int    `json:"hall_id"`
	HallName        string  `json:"hall_name,omitempty"`
	StartTime       string  `json:"start_time"`
	DurationMinutes int     `json:"duration_minutes"`
	ClassName       string  `json:"class_name,omitempty"`
	IsCancelled     bool    `json:"is_cancelled"`
	IsRescheduled   bool    `json:"is_rescheduled,omitempty"`
	CancelReason    *string `json:"cancel_reason,omitempty"`
}

// LessonList wraps lesson collection responses.
type LessonList struct {
	Lessons []Lesson `json:"lessons"`
}

// CreateLessonRequest is the payload for POST /lessons and the teacher and
// admin group-scoped variants.
type CreateLessonRequest struct {
	GroupID         int    `json:"group_id,omitempty"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	HallID          *int   `json:"hall_id,omitempty"`
	ClassName       string `json:"class_name,omitempty"`
}

// CreateLessonResult carries the identifier of a newly created lesson.
type CreateLessonResult struct {
	LessonID int `json:"lesson_id"`
}

// UpdateLessonRequest is the admin payload for PUT /admin/lessons/{id}; nil
// fields are left unchanged.
type UpdateLessonRequest struct {
	ClassName       *string `json:"class_name,omitempty"`
	TeacherID       *int    `json:"teacher_id,omitempty"`
	HallID          *int    `json:"hall_id,omitempty"`
	StartTime       *string `json:"start_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	IsCancelled     *bool   `json:"is_cancelled,omitempty"`
}

// RescheduleLessonRequest moves a lesson to a new slot with administrator
// scope, optionally into another hall.
type RescheduleLessonRequest struct {
	LessonDate   string `json:"lesson_date"`
	NewStartTime string `json:"new_start_time"`
	NewHallID    *int   `json:"new_hall_id,omitempty"`
}

// SubstituteTeacherRequest assigns a stand-in teacher for one lesson.
type SubstituteTeacherRequest struct {
	SubstituteTeacherID int `json:"substitute_teacher_id"`
}

// RescheduleRequest is a pending request to move or add a lesson, awaiting
// an administrator's decision.
type RescheduleRequest struct {
	ID                 int     `json:"id"`
	LessonID           *int    `json:"lesson_id"`
	GroupID            int     `json:"group_id"`
	GroupName          string  `json:"group_name,omitempty"`
	RequestedStart     string  `json:"requested_start"`
	HallID             *int    `json:"hall_id"`
	Reason             *string `json:"reason"`
	RequestedByStudent bool    `json:"requested_by_student"`
	Status             string  `json:"status"`
}

// RescheduleRequestList wraps /lessons/reschedule-requests.
type RescheduleRequestList struct {
	Requests []RescheduleRequest `json:"requests"`
}
