package building

import (
	"net/http"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "building not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "building name cannot be empty")
)

// Building is a physical building holding bookable resources.
type Building struct {
	ID          int64
	Name        string
	Number      string
	TotalFloors int
}
