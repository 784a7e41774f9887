package http

import "github.com/facilitydesk/facility-booking-backend/internal/resourcetype"

type CreateResourceTypeBody struct {
	TypeName string `json:"type_name" binding:"required"`
}

type UpdateResourceTypeBody struct {
	TypeName string `json:"type_name" binding:"required"`
}

type ResourceTypeResponse struct {
	ID       int64  `json:"id"`
	TypeName string `json:"type_name"`
}

func NewResourceTypeResponse(rt *resourcetype.ResourceType) ResourceTypeResponse {
	return ResourceTypeResponse{
		ID:       rt.ID,
		TypeName: rt.TypeName,
	}
}
