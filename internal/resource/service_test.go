package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/facility-booking-backend/internal/building"
	"github.com/facilitydesk/facility-booking-backend/internal/resourcetype"
)

type fakeRepository struct {
	resources map[int64]*Resource
	nextID    int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{resources: make(map[int64]*Resource), nextID: 1}
}

func (r *fakeRepository) Create(_ context.Context, res *Resource) error {
	res.ID = r.nextID
	r.nextID++
	stored := *res
	r.resources[res.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id int64) (*Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeRepository) GetAll(_ context.Context) ([]*Resource, error) {
	out := make([]*Resource, 0, len(r.resources))
	for _, res := range r.resources {
		copied := *res
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeRepository) Update(_ context.Context, res *Resource) error {
	if _, ok := r.resources[res.ID]; !ok {
		return ErrNotFound
	}
	stored := *res
	r.resources[res.ID] = &stored
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.resources[id]; !ok {
		return ErrNotFound
	}
	delete(r.resources, id)
	return nil
}

const missingID int64 = 9999

type fakeBuildingService struct {
	building.Service
}

func (fakeBuildingService) GetByID(_ context.Context, id int64) (*building.Building, error) {
	if id == missingID {
		return nil, building.ErrNotFound
	}
	return &building.Building{ID: id}, nil
}

type fakeResourceTypeService struct {
	resourcetype.Service
}

func (fakeResourceTypeService) GetByID(_ context.Context, id int64) (*resourcetype.ResourceType, error) {
	if id == missingID {
		return nil, resourcetype.ErrNotFound
	}
	return &resourcetype.ResourceType{ID: id}, nil
}

func newTestService() Service {
	return NewService(newFakeRepository(), fakeBuildingService{}, fakeResourceTypeService{})
}

func TestCreateResource(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Create(ctx, CreateRequest{
			Name:           "Room 101",
			ResourceTypeID: 1,
			BuildingID:     2,
			FloorNumber:    1,
		})
		require.NoError(t, err)
		assert.NotZero(t, res.ID)
		assert.Equal(t, "Room 101", res.Name)
	})

	t.Run("Empty name", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Create(ctx, CreateRequest{
			Name:           "  ",
			ResourceTypeID: 1,
			BuildingID:     2,
		})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("Unknown resource type", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Create(ctx, CreateRequest{
			Name:           "Room 101",
			ResourceTypeID: missingID,
			BuildingID:     2,
		})
		assert.ErrorIs(t, err, ErrInvalidResourceType)
	})

	t.Run("Unknown building", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Create(ctx, CreateRequest{
			Name:           "Room 101",
			ResourceTypeID: 1,
			BuildingID:     missingID,
		})
		assert.ErrorIs(t, err, ErrInvalidBuilding)
	})
}

func TestUpdateResource(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial update", func(t *testing.T) {
		svc := newTestService()
		res, err := svc.Create(ctx, CreateRequest{
			Name:           "Room 101",
			ResourceTypeID: 1,
			BuildingID:     2,
			FloorNumber:    1,
		})
		require.NoError(t, err)

		floor := 3
		updated, err := svc.Update(ctx, res.ID, UpdateRequest{FloorNumber: &floor})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.FloorNumber)
		assert.Equal(t, "Room 101", updated.Name, "untouched fields keep their value")
	})

	t.Run("Empty name rejected", func(t *testing.T) {
		svc := newTestService()
		res, err := svc.Create(ctx, CreateRequest{
			Name:           "Room 101",
			ResourceTypeID: 1,
			BuildingID:     2,
		})
		require.NoError(t, err)

		empty := " "
		_, err = svc.Update(ctx, res.ID, UpdateRequest{Name: &empty})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("Unknown resource", func(t *testing.T) {
		svc := newTestService()

		name := "Room 202"
		_, err := svc.Update(ctx, 42, UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
