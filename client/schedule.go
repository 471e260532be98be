package client

import (
	"context"
	"net/http"

	"github.com/plieapp/plie/schema"
)

// ScheduleService exposes the academy-wide schedule views.
type ScheduleService struct {
	client *Client
}

// Weekly returns the full academy weekly grid (administrator scope).
func (s *ScheduleService) Weekly(ctx context.Context) (*schema.WeeklySchedule, error) {
	return do[schema.WeeklySchedule](ctx, s.client, http.MethodGet, "/admin/schedule/weekly", nil)
}

// HallOccupancy reports per-hall utilisation for the current week.
func (s *ScheduleService) HallOccupancy(ctx context.Context) (*schema.HallOccupancyList, error) {
	return do[schema.HallOccupancyList](ctx, s.client, http.MethodGet, "/teachers/halls/occupancy/weekly", nil)
}
