package schema

// Grade is a single mark given to a student for a subject on a date.
type Grade struct {
	ID        int     `json:"id,omitempty"`
	StudentID int     `json:"student_id"`
	GroupID   int     `json:"group_id"`
	SubjectID *int    `json:"subject_id,omitempty"`
	LessonID  *int    `json:"lesson_id,omitempty"`
	Value     string  `json:"value"`
	Comment   *string `json:"comment,omitempty"`
	GradedAt  string  `json:"graded_at,omitempty"`
}

// SubmitGradesRequest is the payload for POST /grades.
type SubmitGradesRequest struct {
	GroupID int     `json:"group_id"`
	Grades  []Grade `json:"grades"`
}

// DeleteGradesRequest identifies grades to remove via DELETE /grades.
type DeleteGradesRequest struct {
	GradeIDs []int `json:"grade_ids"`
}

// GradeSheet is a group's grade table as seen by teachers and admins.
type GradeSheet struct {
	GroupID  int     `json:"group_id"`
	Students []Student `json:"students"`
	Grades   []Grade `json:"grades"`
}

// StudentGrades is the /grades/student/me response.
type StudentGrades struct {
	Grades []Grade `json:"grades"`
}
