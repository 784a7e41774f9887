package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateIfFree persists the booking unless an APPROVED booking on the
	// same target overlaps its interval, in which case it returns
	// ErrSlotConflict. The conflict check and the insert run in a single
	// transaction serialized per target, so two concurrent requests for
	// the same slot cannot both pass the check.
	CreateIfFree(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id int64) (*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
	GetByUser(ctx context.Context, userID int64) ([]*Booking, error)
	GetByStatus(ctx context.Context, status Status) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id int64, status Status, approverID int64) error

	// Delete reports whether a row existed and was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "id, resource_id, shelf_id, user_id, start_time, end_time, status, approver_id, created_at"

// lockKey derives the advisory-lock key for the booking's conflict target.
// The low bit tags the scope so a shelf and a resource with the same id
// never contend with each other.
func lockKey(b *Booking) int64 {
	if b.IsShelfBooking() {
		return *b.ShelfID<<1 | 1
	}
	return *b.ResourceID << 1
}

func (r *pgxRepository) CreateIfFree(ctx context.Context, b *Booking) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		// Serialize check+insert for this target. The lock is released at
		// commit/rollback, covering the window between the overlap check
		// and the insert.
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey(b)); err != nil {
			return fmt.Errorf("acquire booking lock failed: %w", err)
		}

		// Overlap: existing [s,e) conflicts with requested [S,E) iff
		// s < E AND e > S. Touching endpoints are allowed. Only APPROVED
		// bookings block a new request.
		psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		subQuery := psql.Select("1").
			From("public.bookings").
			Where(squirrel.Eq{"status": StatusApproved}).
			Where(squirrel.Lt{"start_time": b.EndTime}).
			Where(squirrel.Gt{"end_time": b.StartTime})

		if b.IsShelfBooking() {
			subQuery = subQuery.Where(squirrel.Eq{"shelf_id": *b.ShelfID})
		} else {
			subQuery = subQuery.Where(squirrel.Eq{"resource_id": *b.ResourceID})
		}

		sql, args, err := subQuery.ToSql()
		if err != nil {
			return fmt.Errorf("build check overlap query failed: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
			return fmt.Errorf("check overlap failed: %w", err)
		}
		if exists {
			return ErrSlotConflict
		}

		query, args, err := psql.Insert("public.bookings").
			Columns("resource_id", "shelf_id", "user_id", "start_time", "end_time", "status").
			Values(b.ResourceID, b.ShelfID, b.UserID, b.StartTime, b.EndTime, b.Status).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build create booking query failed: %w", err)
		}

		if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
			return fmt.Errorf("create booking failed: %w", err)
		}
		return nil
	})
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM public.bookings WHERE id = $1", bookingColumns)
	row := r.pool.QueryRow(ctx, query, id)

	var b Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetAll(ctx context.Context) ([]*Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM public.bookings ORDER BY id", bookingColumns)
	return r.queryBookings(ctx, query)
}

func (r *pgxRepository) GetByUser(ctx context.Context, userID int64) ([]*Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM public.bookings WHERE user_id = $1 ORDER BY id", bookingColumns)
	return r.queryBookings(ctx, query, userID)
}

func (r *pgxRepository) GetByStatus(ctx context.Context, status Status) ([]*Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM public.bookings WHERE status = $1 ORDER BY id", bookingColumns)
	return r.queryBookings(ctx, query, status)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status, approverID int64) error {
	const query = `
		UPDATE public.bookings
		SET status = $1, approver_id = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, status, approverID, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM public.bookings WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete booking failed: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row, b *Booking) error {
	return row.Scan(
		&b.ID, &b.ResourceID, &b.ShelfID, &b.UserID,
		&b.StartTime, &b.EndTime, &b.Status, &b.ApproverID, &b.CreatedAt,
	)
}
