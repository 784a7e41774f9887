package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/facility-booking-backend/internal/resource"
)

type fakeRepository struct {
	records map[int64]*Maintenance
	nextID  int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: make(map[int64]*Maintenance), nextID: 1}
}

func (r *fakeRepository) Create(_ context.Context, m *Maintenance) error {
	m.ID = r.nextID
	r.nextID++
	stored := *m
	r.records[m.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id int64) (*Maintenance, error) {
	m, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeRepository) GetAll(_ context.Context) ([]*Maintenance, error) {
	out := make([]*Maintenance, 0, len(r.records))
	for _, m := range r.records {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

// GetByBuilding joins through resources in the real repository; the
// fake has no building data, so it returns nothing.
func (r *fakeRepository) GetByBuilding(_ context.Context, _ int64) ([]*Maintenance, error) {
	return nil, nil
}

func (r *fakeRepository) UpdateStatus(_ context.Context, id int64, status string) error {
	m, ok := r.records[id]
	if !ok {
		return ErrNotFound
	}
	m.Status = status
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

const missingResourceID int64 = 9999

type fakeResourceService struct {
	resource.Service
}

func (fakeResourceService) GetByID(_ context.Context, id int64) (*resource.Resource, error) {
	if id == missingResourceID {
		return nil, resource.ErrNotFound
	}
	return &resource.Resource{ID: id}, nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, fakeResourceService{}), repo
}

func TestCreateMaintenance(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Defaults to pending status", func(t *testing.T) {
		svc, _ := newTestService()

		m, err := svc.Create(ctx, CreateRequest{
			MaintenanceType: "ELECTRICAL",
			ScheduledDate:   date,
			ResourceID:      10,
		})
		require.NoError(t, err)

		assert.Equal(t, StatusPending, m.Status)
		assert.NotZero(t, m.ID)
	})

	t.Run("Keeps explicit status", func(t *testing.T) {
		svc, _ := newTestService()

		m, err := svc.Create(ctx, CreateRequest{
			MaintenanceType: "PLUMBING",
			ScheduledDate:   date,
			Status:          "IN_PROGRESS",
			ResourceID:      10,
		})
		require.NoError(t, err)
		assert.Equal(t, "IN_PROGRESS", m.Status)
	})

	t.Run("Empty type", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx, CreateRequest{
			MaintenanceType: "  ",
			ScheduledDate:   date,
			ResourceID:      10,
		})
		assert.ErrorIs(t, err, ErrEmptyType)
	})

	t.Run("Unknown resource", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx, CreateRequest{
			MaintenanceType: "ELECTRICAL",
			ScheduledDate:   date,
			ResourceID:      missingResourceID,
		})
		assert.ErrorIs(t, err, ErrInvalidResource)
	})
}

func TestUpdateMaintenanceStatus(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		svc, repo := newTestService()
		m, err := svc.Create(ctx, CreateRequest{
			MaintenanceType: "ELECTRICAL",
			ScheduledDate:   date,
			ResourceID:      10,
		})
		require.NoError(t, err)

		updated, err := svc.UpdateStatus(ctx, m.ID, "COMPLETED")
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", updated.Status)

		stored, err := repo.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", stored.Status)
	})

	t.Run("Empty status", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.UpdateStatus(ctx, 1, " ")
		assert.ErrorIs(t, err, ErrEmptyStatus)
	})

	t.Run("Unknown record", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.UpdateStatus(ctx, 42, "COMPLETED")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteMaintenance(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestService()
	m, err := svc.Create(ctx, CreateRequest{
		MaintenanceType: "ELECTRICAL",
		ScheduledDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ResourceID:      10,
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
