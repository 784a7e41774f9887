package resource

import (
	"net/http"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "resource not found")
	ErrEmptyName           = apperror.New(http.StatusBadRequest, "resource name cannot be empty")
	ErrInvalidBuilding     = apperror.New(http.StatusBadRequest, "invalid building_id")
	ErrInvalidResourceType = apperror.New(http.StatusBadRequest, "invalid resource_type_id")
)

// Resource is a bookable unit inside a building (e.g. Room 101, Lab B).
type Resource struct {
	ID             int64
	Name           string
	ResourceTypeID int64
	BuildingID     int64
	FloorNumber    int
	Description    string
}
