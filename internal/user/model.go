package user

import (
	"net/http"
	"time"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already registered")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
)

// DefaultRole is assigned when registration does not specify a role.
const DefaultRole = "STUDENT"

// User represents an account that can request and approve bookings.
type User struct {
	ID           int64
	Name         string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}
