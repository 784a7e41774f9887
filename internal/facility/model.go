package facility

import (
	"net/http"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "facility not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "facility name cannot be empty")
	ErrInvalidResource = apperror.New(http.StatusBadRequest, "invalid resource_id")
)

// Facility is an amenity attached to a resource (e.g. projector, whiteboard).
type Facility struct {
	ID         int64
	ResourceID int64
	Name       string
	Details    string
}
