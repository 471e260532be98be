package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/plieapp/plie/schema"
)

// Service writes CSV exports to URL-addressed destinations (file://, mem://,
// s3://...) through the abstract file storage layer.
type Service struct {
	fs afs.Service
}

// New creates an export service.
func New() *Service {
	return &Service{fs: afs.New()}
}

// NewWith creates an export service over the given storage service.
func NewWith(fs afs.Service) *Service {
	return &Service{fs: fs}
}

// Attendance writes a student attendance history as CSV to destURL.
func (s *Service) Attendance(ctx context.Context, records []schema.AttendanceRecord, destURL string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"lesson_id", "group", "start_time", "status", "comment"}); err != nil {
		return err
	}
	for _, r := range records {
		comment := ""
		if r.Comment != nil {
			comment = *r.Comment
		}
		row := []string{
			strconv.Itoa(r.LessonID),
			r.GroupName,
			r.StartTime,
			r.Status,
			comment,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return s.upload(ctx, destURL, buf.Bytes())
}

// Grades writes a group grade sheet as CSV to destURL.
func (s *Service) Grades(ctx context.Context, sheet *schema.GradeSheet, destURL string) error {
	names := map[int]string{}
	for _, st := range sheet.Students {
		names[st.ID] = st.Name
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"student", "value", "comment", "graded_at"}); err != nil {
		return err
	}
	for _, g := range sheet.Grades {
		comment := ""
		if g.Comment != nil {
			comment = *g.Comment
		}
		row := []string{names[g.StudentID], g.Value, comment, g.GradedAt}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return s.upload(ctx, destURL, buf.Bytes())
}

func (s *Service) upload(ctx context.Context, destURL string, data []byte) error {
	if destURL == "" {
		return fmt.Errorf("destination URL is required")
	}
	return s.fs.Upload(ctx, destURL, file.DefaultFileOsMode, bytes.NewReader(data))
}
