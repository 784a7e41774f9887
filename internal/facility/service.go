package facility

import (
	"context"
	"strings"

	"github.com/facilitydesk/facility-booking-backend/internal/resource"
)

type CreateRequest struct {
	ResourceID int64
	Name       string
	Details    string
}

type UpdateRequest struct {
	Name    *string
	Details *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id int64) (*Facility, error)
	GetAll(ctx context.Context) ([]*Facility, error)
	GetByResource(ctx context.Context, resourceID int64) ([]*Facility, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Facility, error)
	Delete(ctx context.Context, id int64) error
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

func (s *service) Create(ctx context.Context, req CreateRequest) (*Facility, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if _, err := s.resService.GetByID(ctx, req.ResourceID); err != nil {
		return nil, ErrInvalidResource
	}

	f := &Facility{
		ResourceID: req.ResourceID,
		Name:       req.Name,
		Details:    req.Details,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]*Facility, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByResource(ctx context.Context, resourceID int64) ([]*Facility, error) {
	return s.repo.GetByResource(ctx, resourceID)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		f.Name = *req.Name
	}
	if req.Details != nil {
		f.Details = *req.Details
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
