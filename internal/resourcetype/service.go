package resourcetype

import (
	"context"
	"strings"
)

type Service interface {
	Create(ctx context.Context, typeName string) (*ResourceType, error)
	GetByID(ctx context.Context, id int64) (*ResourceType, error)
	GetAll(ctx context.Context) ([]*ResourceType, error)
	Update(ctx context.Context, id int64, typeName string) (*ResourceType, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, typeName string) (*ResourceType, error) {
	if strings.TrimSpace(typeName) == "" {
		return nil, ErrEmptyName
	}

	rt := &ResourceType{TypeName: typeName}
	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*ResourceType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]*ResourceType, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Update(ctx context.Context, id int64, typeName string) (*ResourceType, error) {
	if strings.TrimSpace(typeName) == "" {
		return nil, ErrEmptyName
	}

	rt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rt.TypeName = typeName
	if err := s.repo.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
