package http

import (
	"time"

	"github.com/facilitydesk/facility-booking-backend/internal/booking"
)

type CreateBookingBody struct {
	UserID     int64     `json:"user_id" binding:"required,min=1"`
	ResourceID int64     `json:"resource_id" binding:"required,min=1"`
	ShelfID    *int64    `json:"shelf_id" binding:"omitempty,min=1"`
	StartTime  time.Time `json:"start_datetime" binding:"required"`
	EndTime    time.Time `json:"end_datetime" binding:"required"`
}

type UpdateStatusBody struct {
	Status     string `json:"status" binding:"required"`
	ApproverID int64  `json:"approverId" binding:"required,min=1"`
}

type BookingResponse struct {
	ID         int64     `json:"id"`
	ResourceID *int64    `json:"resource_id"`
	ShelfID    *int64    `json:"shelf_id,omitempty"`
	UserID     int64     `json:"user_id"`
	StartTime  time.Time `json:"start_datetime"`
	EndTime    time.Time `json:"end_datetime"`
	Status     string    `json:"status"`
	ApproverID *int64    `json:"approver_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		ShelfID:    b.ShelfID,
		UserID:     b.UserID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     string(b.Status),
		ApproverID: b.ApproverID,
		CreatedAt:  b.CreatedAt,
	}
}

func NewBookingListResponse(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}
