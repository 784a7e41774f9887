package shelf

import (
	"context"

	"github.com/facilitydesk/facility-booking-backend/internal/cupboard"
)

type CreateRequest struct {
	ShelfNumber int
	Capacity    int
	Description string
	CupboardID  int64
}

type UpdateRequest struct {
	ShelfNumber *int
	Capacity    *int
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Shelf, error)
	GetByID(ctx context.Context, id int64) (*Shelf, error)
	GetAll(ctx context.Context) ([]*Shelf, error)
	GetByCupboard(ctx context.Context, cupboardID int64) ([]*Shelf, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Shelf, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo      Repository
	cbService cupboard.Service
}

func NewService(repo Repository, cbService cupboard.Service) Service {
	return &service{
		repo:      repo,
		cbService: cbService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Shelf, error) {
	if _, err := s.cbService.GetByID(ctx, req.CupboardID); err != nil {
		return nil, ErrInvalidCupboard
	}

	sh := &Shelf{
		ShelfNumber: req.ShelfNumber,
		Capacity:    req.Capacity,
		Description: req.Description,
		CupboardID:  req.CupboardID,
	}
	if err := s.repo.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Shelf, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]*Shelf, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByCupboard(ctx context.Context, cupboardID int64) ([]*Shelf, error) {
	return s.repo.GetByCupboard(ctx, cupboardID)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Shelf, error) {
	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ShelfNumber != nil {
		sh.ShelfNumber = *req.ShelfNumber
	}
	if req.Capacity != nil {
		sh.Capacity = *req.Capacity
	}
	if req.Description != nil {
		sh.Description = *req.Description
	}

	if err := s.repo.Update(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
