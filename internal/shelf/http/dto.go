package http

import "github.com/facilitydesk/facility-booking-backend/internal/shelf"

type CreateShelfBody struct {
	ShelfNumber int    `json:"shelf_number" binding:"required,min=1"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1"`
	Description string `json:"description"`
	CupboardID  int64  `json:"cupboard_id" binding:"required,min=1"`
}

type UpdateShelfBody struct {
	ShelfNumber *int    `json:"shelf_number" binding:"omitempty,min=1"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	Description *string `json:"description"`
}

type ShelfResponse struct {
	ID          int64  `json:"id"`
	ShelfNumber int    `json:"shelf_number"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
	CupboardID  int64  `json:"cupboard_id"`
}

func NewShelfResponse(sh *shelf.Shelf) ShelfResponse {
	return ShelfResponse{
		ID:          sh.ID,
		ShelfNumber: sh.ShelfNumber,
		Capacity:    sh.Capacity,
		Description: sh.Description,
		CupboardID:  sh.CupboardID,
	}
}
