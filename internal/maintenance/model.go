package maintenance

import (
	"net/http"
	"time"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "maintenance record not found")
	ErrEmptyType       = apperror.New(http.StatusBadRequest, "maintenance type cannot be empty")
	ErrEmptyStatus     = apperror.New(http.StatusBadRequest, "status cannot be empty")
	ErrInvalidResource = apperror.New(http.StatusBadRequest, "invalid resource_id")
)

// StatusPending is the default status for new maintenance records.
const StatusPending = "PENDING"

// Maintenance is a scheduled maintenance job for a resource.
type Maintenance struct {
	ID              int64
	MaintenanceType string
	ScheduledDate   time.Time // date only
	Status          string
	Notes           string
	ResourceID      int64
}
