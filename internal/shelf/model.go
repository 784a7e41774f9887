package shelf

import (
	"net/http"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "shelf not found")
	ErrInvalidCupboard = apperror.New(http.StatusBadRequest, "invalid cupboard_id")
)

// Shelf is a bookable slot inside a cupboard.
type Shelf struct {
	ID          int64
	ShelfNumber int
	Capacity    int
	Description string
	CupboardID  int64
}
