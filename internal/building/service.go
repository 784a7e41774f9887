package building

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Number      string
	TotalFloors int
}

type UpdateRequest struct {
	Name        *string
	Number      *string
	TotalFloors *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Building, error)
	GetByID(ctx context.Context, id int64) (*Building, error)
	GetAll(ctx context.Context) ([]*Building, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Building, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Building, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	b := &Building{
		Name:        req.Name,
		Number:      req.Number,
		TotalFloors: req.TotalFloors,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Building, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]*Building, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Building, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		b.Name = *req.Name
	}
	if req.Number != nil {
		b.Number = *req.Number
	}
	if req.TotalFloors != nil {
		b.TotalFloors = *req.TotalFloors
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
