package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/facilitydesk/facility-booking-backend/internal/auth"
)

type fakeRepository struct {
	users  map[int64]*User
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[int64]*User), nextID: 1}
}

func (r *fakeRepository) Create(_ context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id int64) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) GetAll(_ context.Context) ([]*User, error) {
	out := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeRepository) Update(_ context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeRepository) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestService() Service {
	// bcrypt.MinCost keeps the hashing fast in tests.
	return NewService(newFakeRepository(), auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with default role", func(t *testing.T) {
		svc := newTestService()

		u, err := svc.Register(ctx, "Alice", "Alice@Example.com", "password123", "")
		require.NoError(t, err)

		assert.NotZero(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email, "email must be normalized")
		assert.Equal(t, DefaultRole, u.Role)
		assert.NotEqual(t, "password123", u.PasswordHash)
	})

	t.Run("Role is uppercased", func(t *testing.T) {
		svc := newTestService()

		u, err := svc.Register(ctx, "Bob", "bob@example.com", "password123", "admin")
		require.NoError(t, err)
		assert.Equal(t, "ADMIN", u.Role)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123", "")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Other", "ALICE@example.com", "password456", "")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("Password too short", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "short", "")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("Empty email", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(ctx, "Alice", "   ", "password123", "")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := newTestService()
		registered, err := svc.Register(ctx, "Alice", "alice@example.com", "password123", "")
		require.NoError(t, err)

		u, err := svc.Login(ctx, "ALICE@example.com ", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123", "")
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alice@example.com", "wrongpass99")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success and old password stops working", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "Alice", "alice@example.com", "password123", "")
		require.NoError(t, err)

		err = svc.ChangePassword(ctx, u.ID, "password123", "newpassword456")
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alice@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Login(ctx, "alice@example.com", "newpassword456")
		assert.NoError(t, err)
	})

	t.Run("Wrong old password", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "Alice", "alice@example.com", "password123", "")
		require.NoError(t, err)

		err = svc.ChangePassword(ctx, u.ID, "wrongpass99", "newpassword456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("New password too short", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "Alice", "alice@example.com", "password123", "")
		require.NoError(t, err)

		err = svc.ChangePassword(ctx, u.ID, "password123", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Update normalizes fields", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "Alice", "alice@example.com", "password123", "")
		require.NoError(t, err)

		name := "  Alice Smith "
		email := "Alice.Smith@Example.com"
		role := "librarian"
		updated, err := svc.Update(ctx, u.ID, UpdateRequest{Name: &name, Email: &email, Role: &role})
		require.NoError(t, err)

		assert.Equal(t, "Alice Smith", updated.Name)
		assert.Equal(t, "alice.smith@example.com", updated.Email)
		assert.Equal(t, "LIBRARIAN", updated.Role)
	})

	t.Run("Delete unknown user", func(t *testing.T) {
		svc := newTestService()

		err := svc.Delete(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
