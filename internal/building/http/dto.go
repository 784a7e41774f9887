package http

import "github.com/facilitydesk/facility-booking-backend/internal/building"

type CreateBuildingBody struct {
	Name        string `json:"name" binding:"required"`
	Number      string `json:"number"`
	TotalFloors int    `json:"total_floors" binding:"omitempty,min=1"`
}

type UpdateBuildingBody struct {
	Name        *string `json:"name"`
	Number      *string `json:"number"`
	TotalFloors *int    `json:"total_floors" binding:"omitempty,min=1"`
}

type BuildingResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Number      string `json:"number"`
	TotalFloors int    `json:"total_floors"`
}

func NewBuildingResponse(b *building.Building) BuildingResponse {
	return BuildingResponse{
		ID:          b.ID,
		Name:        b.Name,
		Number:      b.Number,
		TotalFloors: b.TotalFloors,
	}
}
