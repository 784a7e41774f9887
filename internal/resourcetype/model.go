package resourcetype

import (
	"net/http"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "resource type not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "type name cannot be empty")
)

// ResourceType categorizes resources (e.g. meeting room, lab, storage room).
type ResourceType struct {
	ID       int64
	TypeName string
}
