package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plieapp/plie/schema"
)

func TestTranscript_My(t *testing.T) {
	cli, server := newTestClient(t)
	login(t, cli)

	groupID, subjectID := 4, 2
	published := "2026-06-01T10:00:00"
	server.ProtectJSON("/api/transcript/me", http.StatusOK, schema.StudentTranscript{
		Items: []schema.TranscriptItem{{
			ID:           1,
			GroupID:      &groupID,
			GroupName:    "Ballet Beginners",
			SubjectID:    &subjectID,
			SubjectName:  "Classical",
			AverageValue: 4.5,
			GradeCount:   8,
			PublishedAt:  &published,
		}},
	})

	res, err := cli.Transcript.My(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Ballet Beginners", res.Items[0].GroupName)
	assert.Equal(t, 4.5, res.Items[0].AverageValue)
	assert.Contains(t, server.Requests(), "GET /api/transcript/me")
}

func TestTranscript_GroupWithSubjectFilter(t *testing.T) {
	cli, server := newTestClient(t)
	login(t, cli)

	var query string
	server.HandleProtected("/api/admin/transcript/group/4", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"subjects":[{"subject_id":2,"subject_name":"Classical"}],
			"subject_id":2,
			"records":[{"student_id":1,"student_name":"Anna","average_value":4.5,"grade_count":8,"grades":[]}],
			"status":{"can_publish":false,"missing_students":[{"id":2,"name":"Boris","missing_lessons":3}],
				"total_lessons":10,"total_students":2,"missing_lessons_total":3,"require_complete":true},
			"history":[]
		}`))
	})

	subjectID := 2
	res, err := cli.Transcript.Group(context.Background(), 4, &subjectID)
	require.NoError(t, err)
	assert.Equal(t, "subject_id=2", query)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Anna", res.Records[0].StudentName)
	assert.False(t, res.Status.CanPublish)
	require.Len(t, res.Status.MissingStudents, 1)
	assert.Equal(t, 3, res.Status.MissingStudents[0].MissingLessons)
}

func TestTranscript_Publish(t *testing.T) {
	cli, server := newTestClient(t)
	login(t, cli)

	server.ProtectJSON("/api/admin/transcript/group/4/publish", http.StatusOK, schema.TranscriptPublishResult{
		Subject: schema.TranscriptSubject{SubjectID: 2, SubjectName: "Classical"},
		Records: []schema.TranscriptEntry{{StudentID: 1, StudentName: "Anna", AverageValue: 4.5, GradeCount: 8}},
	})
	server.ProtectJSON("/api/admin/transcript/group/4/publish-all", http.StatusOK, schema.TranscriptPublishAllResult{
		Subjects: []schema.TranscriptSubject{{SubjectID: 2, SubjectName: "Classical"}},
	})

	subjectID := 2
	res, err := cli.Transcript.Publish(context.Background(), 4, schema.PublishTranscriptRequest{SubjectID: &subjectID})
	require.NoError(t, err)
	assert.Equal(t, "Classical", res.Subject.SubjectName)
	require.Len(t, res.Records, 1)

	all, err := cli.Transcript.PublishAll(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, all.Subjects, 1)

	requests := server.Requests()
	assert.Contains(t, requests, "POST /api/admin/transcript/group/4/publish")
	assert.Contains(t, requests, "POST /api/admin/transcript/group/4/publish-all")
}

func TestTranscript_PublishIncomplete(t *testing.T) {
	cli, server := newTestClient(t)
	login(t, cli)

	server.HandleProtected("/api/admin/transcript/group/4/publish", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Not every student has grades"}`, http.StatusBadRequest)
	})

	_, err := cli.Transcript.Publish(context.Background(), 4, schema.PublishTranscriptRequest{})
	require.Error(t, err)
	apiErr, ok := schema.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Body, "Not every student has grades")
}
