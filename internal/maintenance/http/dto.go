package http

import (
	"time"

	"github.com/facilitydesk/facility-booking-backend/internal/maintenance"
)

const dateLayout = "2006-01-02"

type CreateMaintenanceBody struct {
	MaintenanceType string `json:"maintenance_type" binding:"required"`
	ScheduledDate   string `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	ResourceID      int64  `json:"resource_id" binding:"required,min=1"`
}

type UpdateMaintenanceStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type MaintenanceResponse struct {
	ID              int64  `json:"id"`
	MaintenanceType string `json:"maintenance_type"`
	ScheduledDate   string `json:"scheduled_date"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
	ResourceID      int64  `json:"resource_id"`
}

func NewMaintenanceResponse(m *maintenance.Maintenance) MaintenanceResponse {
	return MaintenanceResponse{
		ID:              m.ID,
		MaintenanceType: m.MaintenanceType,
		ScheduledDate:   m.ScheduledDate.Format(dateLayout),
		Status:          m.Status,
		Notes:           m.Notes,
		ResourceID:      m.ResourceID,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
