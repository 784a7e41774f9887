package maintenance

import (
	"context"
	"strings"
	"time"

	"github.com/facilitydesk/facility-booking-backend/internal/resource"
)

type CreateRequest struct {
	MaintenanceType string
	ScheduledDate   time.Time
	Status          string
	Notes           string
	ResourceID      int64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Maintenance, error)
	GetAll(ctx context.Context) ([]*Maintenance, error)
	GetByBuilding(ctx context.Context, buildingID int64) ([]*Maintenance, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Maintenance, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type service struct {
	repo       Repository
	resService resource.Service
}

func NewService(repo Repository, resService resource.Service) Service {
	return &service{
		repo:       repo,
		resService: resService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Maintenance, error) {
	if strings.TrimSpace(req.MaintenanceType) == "" {
		return nil, ErrEmptyType
	}
	if _, err := s.resService.GetByID(ctx, req.ResourceID); err != nil {
		return nil, ErrInvalidResource
	}

	// Default status when the caller did not send one
	status := req.Status
	if strings.TrimSpace(status) == "" {
		status = StatusPending
	}

	m := &Maintenance{
		MaintenanceType: req.MaintenanceType,
		ScheduledDate:   req.ScheduledDate,
		Status:          status,
		Notes:           req.Notes,
		ResourceID:      req.ResourceID,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetAll(ctx context.Context) ([]*Maintenance, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByBuilding(ctx context.Context, buildingID int64) ([]*Maintenance, error) {
	return s.repo.GetByBuilding(ctx, buildingID)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (*Maintenance, error) {
	if strings.TrimSpace(status) == "" {
		return nil, ErrEmptyStatus
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	m.Status = status
	return m, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
