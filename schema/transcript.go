package schema

// TranscriptGrade is one grade snapshot frozen into a transcript record at
// publication time.
type TranscriptGrade struct {
	LessonID    *int    `json:"lesson_id"`
	Value       float64 `json:"value"`
	Comment     *string `json:"comment,omitempty"`
	GradeDate   *string `json:"grade_date,omitempty"`
	RecordedAt  *string `json:"recorded_at,omitempty"`
	LessonStart *string `json:"lesson_start,omitempty"`
	TeacherName string  `json:"teacher_name,omitempty"`
}

// TranscriptEntry is one student's published transcript row for a group and
// subject.
type TranscriptEntry struct {
	ID           int               `json:"id,omitempty"`
	StudentID    int               `json:"student_id"`
	StudentName  string            `json:"student_name"`
	AverageValue float64           `json:"average_value"`
	GradeCount   int               `json:"grade_count"`
	Grades       []TranscriptGrade `json:"grades"`
	PublishedAt  *string           `json:"published_at,omitempty"`
	UpdatedAt    *string           `json:"updated_at,omitempty"`
	GroupName    string            `json:"group_name,omitempty"`
	SubjectName  string            `json:"subject_name,omitempty"`
	SubjectColor string            `json:"subject_color,omitempty"`
}

// TranscriptSubject identifies a subject taught to a group, as offered on the
// admin transcript view.
type TranscriptSubject struct {
	SubjectID    int    `json:"subject_id"`
	SubjectName  string `json:"subject_name"`
	SubjectColor string `json:"subject_color,omitempty"`
}

// MissingTranscriptStudent is a student lacking grades for some lessons,
// blocking publication when completeness is required.
type MissingTranscriptStudent struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	MissingLessons int    `json:"missing_lessons"`
}

// TranscriptStatus reports whether a group's transcript can be published and
// what is still missing.
type TranscriptStatus struct {
	CanPublish          bool                       `json:"can_publish"`
	MissingStudents     []MissingTranscriptStudent `json:"missing_students"`
	TotalLessons        int                        `json:"total_lessons"`
	TotalStudents       int                        `json:"total_students"`
	MissingLessonsTotal int                        `json:"missing_lessons_total"`
	RequireComplete     bool                       `json:"require_complete"`
}

// TranscriptPublication is one entry of a group's publication history.
type TranscriptPublication struct {
	ID            int     `json:"id"`
	SubjectID     *int    `json:"subject_id"`
	SubjectName   string  `json:"subject_name,omitempty"`
	TotalStudents int     `json:"total_students"`
	TotalLessons  int     `json:"total_lessons"`
	PublishedAt   *string `json:"published_at"`
	ActorName     string  `json:"actor_name,omitempty"`
}

// GroupTranscript is the admin view of a group's transcript: published rows
// for the selected subject plus publication readiness and history.
type GroupTranscript struct {
	Subjects  []TranscriptSubject     `json:"subjects"`
	SubjectID *int                    `json:"subject_id"`
	Records   []TranscriptEntry       `json:"records"`
	Status    TranscriptStatus        `json:"status"`
	History   []TranscriptPublication `json:"history"`
}

// TranscriptItem is one published record in a student's own transcript.
type TranscriptItem struct {
	ID           int               `json:"id"`
	GroupID      *int              `json:"group_id"`
	GroupName    string            `json:"group_name,omitempty"`
	SubjectID    *int              `json:"subject_id"`
	SubjectName  string            `json:"subject_name,omitempty"`
	SubjectColor string            `json:"subject_color,omitempty"`
	AverageValue float64           `json:"average_value"`
	GradeCount   int               `json:"grade_count"`
	Grades       []TranscriptGrade `json:"grades"`
	PublishedAt  *string           `json:"published_at,omitempty"`
	UpdatedAt    *string           `json:"updated_at,omitempty"`
}

// StudentTranscript wraps /transcript/me.
type StudentTranscript struct {
	Items []TranscriptItem `json:"items"`
}

// PublishTranscriptRequest selects the subject to publish; nil means the
// group's single subject.
type PublishTranscriptRequest struct {
	SubjectID *int `json:"subject_id,omitempty"`
}

// TranscriptPublishResult is the response of a single-subject publication.
type TranscriptPublishResult struct {
	Subject TranscriptSubject `json:"subject"`
	Records []TranscriptEntry `json:"records"`
}

// TranscriptPublishAllResult is the response of publishing every subject of
// a group.
type TranscriptPublishAllResult struct {
	Subjects []TranscriptSubject       `json:"subjects"`
	Results  []TranscriptPublishResult `json:"results"`
}
