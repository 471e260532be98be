package schema

// ScheduleSlot is one cell of the weekly schedule grid.
type ScheduleSlot struct {
	GroupID         int    `json:"group_id"`
	GroupName       string `json:"group_name"`
	Weekday         int    `json:"weekday"` // 0=Monday .. 6=Sunday
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	HallID          *int   `json:"hall_id"`
	HallName        string `json:"hall_name,omitempty"`
	TeacherName     string `json:"teacher_name,omitempty"`
}

// WeeklySchedule is the /admin/schedule/weekly and /teachers/schedule/weekly
// response: a week of slots keyed client-side by weekday.
type WeeklySchedule struct {
	WeekStart string         `json:"week_start"`
	Slots     []ScheduleSlot `json:"slots"`
}

// HallOccupancy reports how busy each hall is over a week.
type HallOccupancy struct {
	Hall          HallRef `json:"hall"`
	OccupiedSlots int     `json:"occupied_slots"`
	TotalSlots    int     `json:"total_slots"`
}

// HallOccupancyList wraps /teachers/halls/occupancy/weekly.
type HallOccupancyList struct {
	Occupancy []HallOccupancy `json:"occupancy"`
}
