package cupboard

import (
	"net/http"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "cupboard not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "cupboard name cannot be empty")
	ErrInvalidResource = apperror.New(http.StatusBadRequest, "invalid resource_id")
)

// Cupboard is a storage unit placed inside a resource, subdivided into shelves.
type Cupboard struct {
	ID           int64
	Name         string
	TotalShelves int
	ResourceID   int64
}
