package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plieapp/plie/schema"
)

func TestAdminLessons_List(t *testing.T) {
	cli, server := newTestClient(t)
	login(t, cli)

	server.ProtectJSON("/api/admin/lessons", http.StatusOK, schema.LessonList{
		Lessons: []schema.Lesson{{
			ID:              12,
			GroupID:         4,
			GroupName:       "Ballet Beginners",
			StartTime:       "2026-08-24T18:00:00",
			DurationMinutes: 90,
			IsRescheduled:   true,
		}},
	})

	res, err := cli.Admin.Lessons(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Lessons, 1)
	assert.Equal(t, 12, res.Lessons[0].ID)
	assert.True(t, res.Lessons[0].IsRescheduled)
	assert.Contains(t, server.Requests(), "GET /api/admin/lessons")
}

func TestAdminLessons_Mutations(t *testing.T) {
	cli, server := newTestClient(t)
	login(t, cli)
	ctx := context.Background()

	var methods []string
	ack := func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}
	server.ProtectJSON("/api/admin/lessons", http.StatusOK, schema.CreateLessonResult{LessonID: 12})
	server.HandleProtected("/api/admin/lessons/12", ack)
	server.HandleProtected("/api/admin/lessons/12/cancel", ack)
	server.HandleProtected("/api/admin/lessons/12/reschedule", ack)
	server.HandleProtected("/api/admin/lessons/12/substitute", ack)

	created, err := cli.Admin.CreateLesson(ctx, schema.CreateLessonRequest{
		GroupID:   4,
		StartTime: "2026-08-24 18:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, created.LessonID)

	minutes := 60
	require.NoError(t, cli.Admin.UpdateLesson(ctx, 12, schema.UpdateLessonRequest{DurationMinutes: &minutes}))
	require.NoError(t, cli.Admin.CancelLesson(ctx, 12))
	require.NoError(t, cli.Admin.RescheduleLesson(ctx, 12, schema.RescheduleLessonRequest{
		LessonDate:   "2026-08-24 18:00:00",
		NewStartTime: "2026-08-26 18:00:00",
	}))
	require.NoError(t, cli.Admin.SubstituteTeacher(ctx, 12, 7))
	require.NoError(t, cli.Admin.DeleteLesson(ctx, 12))

	assert.Equal(t, []string{
		"PUT /api/admin/lessons/12",
		"POST /api/admin/lessons/12/cancel",
		"POST /api/admin/lessons/12/reschedule",
		"POST /api/admin/lessons/12/substitute",
		"DELETE /api/admin/lessons/12",
	}, methods)
}

func TestAdminAnalyticsBreakdowns(t *testing.T) {
	cli, server := newTestClient(t)
	login(t, cli)
	ctx := context.Background()

	server.ProtectJSON("/api/admin/analytics/halls", http.StatusOK, schema.HallAnalytics{
		Halls: []schema.HallLoad{{HallID: 1, HallName: "Main Hall", Monday: 4, Total: 18}},
	})
	server.ProtectJSON("/api/admin/analytics/teachers", http.StatusOK, schema.TeacherAnalytics{
		Teachers: []schema.TeacherLoad{{TeacherID: 7, TeacherName: "Olga", TotalHours: 12, GroupCount: 3}},
	})
	server.ProtectJSON("/api/admin/analytics/groups", http.StatusOK, schema.GroupAnalytics{
		Groups: []schema.GroupLoad{{GroupID: 4, GroupName: "Ballet Beginners", AvgAttendance: 87}},
	})
	server.ProtectJSON("/api/admin/analytics/students", http.StatusOK, schema.StudentAnalytics{
		Stats: schema.StudentAnalyticsStats{TotalStudents: 40, ActiveStudents: 35},
	})

	halls, err := cli.Admin.HallAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, halls.Halls, 1)
	assert.Equal(t, 18, halls.Halls[0].Total)

	teachers, err := cli.Admin.TeacherAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, teachers.Teachers, 1)
	assert.Equal(t, 12, teachers.Teachers[0].TotalHours)

	groups, err := cli.Admin.GroupAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, groups.Groups, 1)
	assert.Equal(t, float64(87), groups.Groups[0].AvgAttendance)

	students, err := cli.Admin.StudentAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, students.Stats.TotalStudents)

	requests := server.Requests()
	assert.Contains(t, requests, "GET /api/admin/analytics/halls")
	assert.Contains(t, requests, "GET /api/admin/analytics/teachers")
	assert.Contains(t, requests, "GET /api/admin/analytics/groups")
	assert.Contains(t, requests, "GET /api/admin/analytics/students")
}
