package http

import "github.com/facilitydesk/facility-booking-backend/internal/facility"

type CreateFacilityBody struct {
	ResourceID int64  `json:"resource_id" binding:"required,min=1"`
	Name       string `json:"name" binding:"required"`
	Details    string `json:"details"`
}

type UpdateFacilityBody struct {
	Name    *string `json:"name"`
	Details *string `json:"details"`
}

type FacilityResponse struct {
	ID         int64  `json:"id"`
	ResourceID int64  `json:"resource_id"`
	Name       string `json:"name"`
	Details    string `json:"details"`
}

func NewFacilityResponse(f *facility.Facility) FacilityResponse {
	return FacilityResponse{
		ID:         f.ID,
		ResourceID: f.ResourceID,
		Name:       f.Name,
		Details:    f.Details,
	}
}
