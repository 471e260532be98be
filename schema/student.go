package schema

// Student is the enrolment profile behind a student user account.
type Student struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	TrialsAllowed int    `json:"trials_allowed"`
	TrialsUsed    int    `json:"trials_used"`
	TrialUsed     bool   `json:"trial_used"`
}

// StudentList wraps the /admin/students response.
type StudentList struct {
	Students []Student `json:"students"`
}

// UpdateStudentProfileRequest is the payload for POST /students/me.
type UpdateStudentProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// StudentGroup is a group the student is enrolled in, from /students/my-groups.
type StudentGroup struct {
	Group
	IsTrial  bool   `json:"is_trial"`
	Schedule string `json:"schedule"`
}

// StudentGroupList wraps /students/my-groups.
type StudentGroupList struct {
	Groups []StudentGroup `json:"groups"`
}

// AttendanceRecord is one row of a student's attendance history.
type AttendanceRecord struct {
	LessonID  int     `json:"lesson_id"`
	GroupID   int     `json:"group_id"`
	GroupName string  `json:"group_name"`
	StartTime string  `json:"start_time"`
	Status    string  `json:"status"`
	Comment   *string `json:"comment,omitempty"`
}

// AttendanceHistory wraps /students/my-attendance.
type AttendanceHistory struct {
	Records []AttendanceRecord `json:"records"`
}

// CreateStudentRequest is the admin payload for POST /admin/students.
type CreateStudentRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UpdateStudentRequest is the admin payload for PUT /admin/students/{id}.
type UpdateStudentRequest struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	TrialsAllowed *int    `json:"trials_allowed,omitempty"`
}
