package http

import "github.com/facilitydesk/facility-booking-backend/internal/resource"

type CreateResourceBody struct {
	Name           string `json:"name" binding:"required"`
	ResourceTypeID int64  `json:"resource_type_id" binding:"required,min=1"`
	BuildingID     int64  `json:"building_id" binding:"required,min=1"`
	FloorNumber    int    `json:"floor_number"`
	Description    string `json:"description"`
}

type UpdateResourceBody struct {
	Name        *string `json:"name"`
	FloorNumber *int    `json:"floor_number"`
	Description *string `json:"description"`
}

type ResourceResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ResourceTypeID int64  `json:"resource_type_id"`
	BuildingID     int64  `json:"building_id"`
	FloorNumber    int    `json:"floor_number"`
	Description    string `json:"description"`
}

func NewResourceResponse(res *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:             res.ID,
		Name:           res.Name,
		ResourceTypeID: res.ResourceTypeID,
		BuildingID:     res.BuildingID,
		FloorNumber:    res.FloorNumber,
		Description:    res.Description,
	}
}
