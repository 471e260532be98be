package schema

// Group is the common group shape used across admin and teacher views.
type Group struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	ClassName       string  `json:"class_name,omitempty"`
	Capacity        int     `json:"capacity"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	HallID          *int    `json:"hall_id,omitempty"`
	IsAdditional    bool    `json:"is_additional,omitempty"`
	IsClosed        bool    `json:"is_closed,omitempty"`
	StudentCount    int     `json:"student_count,omitempty"`
	TeacherName     *string `json:"teacher_name,omitempty"`
}

// GroupList wraps list responses such as /admin/groups.
type GroupList struct {
	Groups []Group `json:"groups"`
}

// ScheduleException is a one-off deviation from a group's regular slot
// (extra lesson, trial slot, approved reschedule).
type ScheduleException struct {
	ID                 int      `json:"id"`
	StartTime          *string  `json:"start_time"`
	DurationMinutes    int      `json:"duration_minutes"`
	IsAdditional       bool     `json:"is_additional"`
	Approved           bool     `json:"approved"`
	RequestedByStudent bool     `json:"requested_by_student"`
	Reason             *string  `json:"reason"`
	Hall               *HallRef `json:"hall"`
}

// GroupSchedule is one entry of the public /groups/schedule response: a
// group's regular weekly slots plus its exceptions.
type GroupSchedule struct {
	GroupID         int                 `json:"group_id"`
	GroupName       string              `json:"group_name"`
	Schedule        string              `json:"schedule"`
	DurationMinutes int                 `json:"duration_minutes"`
	IsAdditional    bool                `json:"is_additional"`
	Hall            *HallRef            `json:"hall"`
	Exceptions      []ScheduleException `json:"exceptions"`
}

// GroupFilters enumerates the filter dimensions offered by /groups/filters.
type GroupFilters struct {
	Categories []Category `json:"categories"`
	Subjects   []Subject  `json:"subjects"`
	Halls      []HallRef  `json:"halls"`
}

// AvailableGroup is a group open for enrolment, from /groups/available.
type AvailableGroup struct {
	Group
	Enrolled  int    `json:"enrolled"`
	Schedule  string `json:"schedule"`
	SpotsLeft int    `json:"spots_left"`
}

// AdditionalLessonRequest is the payload for /groups/{id}/additional-request.
type AdditionalLessonRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CreateGroupRequest is the admin payload for POST /admin/groups.
type CreateGroupRequest struct {
	Name            string `json:"name"`
	ClassName       string `json:"class_name,omitempty"`
	Capacity        int    `json:"capacity"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	HallID          *int   `json:"hall_id,omitempty"`
	CategoryID      *int   `json:"category_id,omitempty"`
	SubjectID       *int   `json:"subject_id,omitempty"`
}

// UpdateGroupRequest is the admin payload for PUT /admin/groups/{id}.
type UpdateGroupRequest struct {
	Name            *string `json:"name,omitempty"`
	ClassName       *string `json:"class_name,omitempty"`
	Capacity        *int    `json:"capacity,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	HallID          *int    `json:"hall_id,omitempty"`
}

// CreateGroupResult carries the identifier of a newly created group.
type CreateGroupResult struct {
	GroupID int `json:"group_id"`
}
