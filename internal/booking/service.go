package booking

import (
	"context"
	"errors"
	"time"

	"github.com/facilitydesk/facility-booking-backend/internal/resource"
	"github.com/facilitydesk/facility-booking-backend/internal/shelf"
	"github.com/facilitydesk/facility-booking-backend/internal/user"
)

type CreateRequest struct {
	UserID     int64
	ResourceID int64
	ShelfID    *int64
	StartTime  time.Time
	EndTime    time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
	GetByUser(ctx context.Context, userID int64) ([]*Booking, error)
	GetPending(ctx context.Context) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id int64, newStatus string, approverID int64) (*Booking, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type service struct {
	repo         Repository
	resService   resource.Service
	shelfService shelf.Service
	userService  user.Service
}

func NewService(repo Repository, resService resource.Service, shelfService shelf.Service, userService user.Service) Service {
	return &service{
		repo:         repo,
		resService:   resService,
		shelfService: shelfService,
		userService:  userService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate time range
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	// Strict check: StartTime cannot be in the past
	if req.StartTime.Before(time.Now()) {
		return nil, ErrStartTimePast
	}

	// 2. Resolve references. A shelf booking keeps the resource link as
	// well, so both scopes can be queried later.
	if req.ShelfID != nil {
		if _, err := s.shelfService.GetByID(ctx, *req.ShelfID); err != nil {
			if errors.Is(err, shelf.ErrNotFound) {
				return nil, ErrShelfNotFound
			}
			return nil, err
		}
	}

	if _, err := s.resService.GetByID(ctx, req.ResourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	if _, err := s.userService.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 3. Conflict check + insert, serialized per target inside the repo.
	resourceID := req.ResourceID
	b := &Booking{
		ResourceID: &resourceID,
		ShelfID:    req.ShelfID,
		UserID:     req.UserID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     StatusPending,
	}

	if err := s.repo.CreateIfFree(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]*Booking, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByUser(ctx context.Context, userID int64) ([]*Booking, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) GetPending(ctx context.Context) ([]*Booking, error) {
	return s.repo.GetByStatus(ctx, StatusPending)
}

// UpdateStatus approves or rejects a booking and records who decided.
// Re-deciding an already-decided booking is allowed.
func (s *service) UpdateStatus(ctx context.Context, id int64, newStatus string, approverID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	st := Status(newStatus)
	if st != StatusApproved && st != StatusRejected {
		return nil, ErrInvalidStatus
	}

	if _, err := s.userService.GetByID(ctx, approverID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrApproverNotFound
		}
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, st, approverID); err != nil {
		return nil, err
	}

	b.Status = st
	b.ApproverID = &approverID
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
