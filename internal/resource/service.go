package resource

import (
	"context"
	"strings"

	"github.com/facilitydesk/facility-booking-backend/internal/building"
	"github.com/facilitydesk/facility-booking-backend/internal/resourcetype"
)

type CreateRequest struct {
	Name           string
	ResourceTypeID int64
	BuildingID     int64
	FloorNumber    int
	Description    string
}

type UpdateRequest struct {
	Name        *string
	FloorNumber *int
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id int64) (*Resource, error)
	GetAll(ctx context.Context) ([]*Resource, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Resource, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo            Repository
	buildingService building.Service
	rtService       resourcetype.Service
}

func NewService(repo Repository, buildingService building.Service, rtService resourcetype.Service) Service {
	return &service{
		repo:            repo,
		buildingService: buildingService,
		rtService:       rtService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	if _, err := s.rtService.GetByID(ctx, req.ResourceTypeID); err != nil {
		return nil, ErrInvalidResourceType
	}
	if _, err := s.buildingService.GetByID(ctx, req.BuildingID); err != nil {
		return nil, ErrInvalidBuilding
	}

	res := &Resource{
		Name:           req.Name,
		ResourceTypeID: req.ResourceTypeID,
		BuildingID:     req.BuildingID,
		FloorNumber:    req.FloorNumber,
		Description:    req.Description,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]*Resource, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		res.Name = *req.Name
	}
	if req.FloorNumber != nil {
		res.FloorNumber = *req.FloorNumber
	}
	if req.Description != nil {
		res.Description = *req.Description
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
