package booking

import (
	"net/http"
	"time"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotConflict     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid status, use APPROVED or REJECTED")
	ErrResourceNotFound = apperror.New(http.StatusNotFound, "resource not found")
	ErrShelfNotFound    = apperror.New(http.StatusNotFound, "shelf not found")
	ErrUserNotFound     = apperror.New(http.StatusNotFound, "user not found")
	ErrApproverNotFound = apperror.New(http.StatusNotFound, "approver not found")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking reserves a resource, or a single shelf inside a resource's
// cupboard, for the half-open interval [StartTime, EndTime).
// A shelf booking also carries the owning resource for query convenience.
type Booking struct {
	ID         int64
	ResourceID *int64
	ShelfID    *int64
	UserID     int64
	StartTime  time.Time
	EndTime    time.Time
	Status     Status
	ApproverID *int64
	CreatedAt  time.Time
}

// IsShelfBooking reports whether the conflict scope of the booking is a
// shelf rather than the whole resource.
func (b *Booking) IsShelfBooking() bool {
	return b.ShelfID != nil
}
