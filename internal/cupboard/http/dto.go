package http

import "github.com/facilitydesk/facility-booking-backend/internal/cupboard"

type CreateCupboardBody struct {
	Name         string `json:"name" binding:"required"`
	TotalShelves int    `json:"total_shelves" binding:"omitempty,min=1"`
	ResourceID   int64  `json:"resource_id" binding:"required,min=1"`
}

type UpdateCupboardBody struct {
	Name         *string `json:"name"`
	TotalShelves *int    `json:"total_shelves" binding:"omitempty,min=1"`
}

type CupboardResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TotalShelves int    `json:"total_shelves"`
	ResourceID   int64  `json:"resource_id"`
}

func NewCupboardResponse(cb *cupboard.Cupboard) CupboardResponse {
	return CupboardResponse{
		ID:           cb.ID,
		Name:         cb.Name,
		TotalShelves: cb.TotalShelves,
		ResourceID:   cb.ResourceID,
	}
}
