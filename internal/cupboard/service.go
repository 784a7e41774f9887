package cupboard

import (
	"context"
	"strings"

	"github.com/facilitydesk/facility-booking-backend/internal/resource"
)

type CreateRequest struct {
	Name         string
	TotalShelves int
	ResourceID   int64
}

type UpdateRequest struct {
	Name         *string
	TotalShelves *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Cupboard, error)
	GetByID(ctx context.Context, id int64) (*Cupboard, error)
	GetAll(ctx context.Context) ([]*Cupboard, error)
	GetByResource(ctx context.Context, resourceID int64) ([]*Cupboard, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Cupboard, error)
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

func (s *service) Create(ctx context.Context, req CreateRequest) (*Cupboard, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if _, err := s.resService.GetByID(ctx, req.ResourceID); err != nil {
		return nil, ErrInvalidResource
	}

	cb := &Cupboard{
		Name:         req.Name,
		TotalShelves: req.TotalShelves,
		ResourceID:   req.ResourceID,
	}
	if err := s.repo.Create(ctx, cb); err != nil {
		return nil, err
	}
	return cb, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Cupboard, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]*Cupboard, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByResource(ctx context.Context, resourceID int64) ([]*Cupboard, error) {
	return s.repo.GetByResource(ctx, resourceID)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Cupboard, error) {
	cb, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		cb.Name = *req.Name
	}
	if req.TotalShelves != nil {
		cb.TotalShelves = *req.TotalShelves
	}

	if err := s.repo.Update(ctx, cb); err != nil {
		return nil, err
	}
	return cb, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
