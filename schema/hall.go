package schema

// Hall is a rehearsal hall as listed by /admin/halls.
type Hall struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// HallList wraps the /admin/halls response.
type HallList struct {
	Halls []Hall `json:"halls"`
}

// HallRef is the minimal hall reference embedded in schedule entries.
type HallRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// HallGroup describes a group hosted in a hall, as returned by
// /admin/halls/{id}/details.
type HallGroup struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	ClassName       string `json:"className"`
	Capacity        int    `json:"capacity"`
	StudentCount    int    `json:"studentCount"`
	DurationMinutes int    `json:"durationMinutes"`
	TeacherID       *int   `json:"teacherId"`
	TeacherName     string `json:"teacherName"`
	Schedule        string `json:"schedule"`
}

// HallLesson is a lesson held in a hall today.
type HallLesson struct {
	ID          int     `json:"id"`
	StartTime   *string `json:"startTime"`
	Duration    int     `json:"duration"`
	ClassName   string  `json:"className"`
	GroupName   string  `json:"groupName"`
	TeacherName string  `json:"teacherName"`
}

// HallStats aggregates hall utilisation counters.
type HallStats struct {
	TotalGroups    int `json:"totalGroups"`
	TotalStudents  int `json:"totalStudents"`
	UniqueTeachers int `json:"uniqueTeachers"`
}

// HallDetails is the /admin/halls/{id}/details response.
type HallDetails struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Capacity     int          `json:"capacity"`
	Groups       []HallGroup  `json:"groups"`
	TodayLessons []HallLesson `json:"todayLessons"`
	Stats        HallStats    `json:"stats"`
}

// CreateHallRequest is the payload for POST /admin/halls.
type CreateHallRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// UpdateHallRequest is the payload for PUT /admin/halls/{id}; nil fields are
// left untouched by the backend.
type UpdateHallRequest struct {
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

// CreateHallResult carries the identifier of a newly created hall.
type CreateHallResult struct {
	HallID int `json:"hall_id"`
}
