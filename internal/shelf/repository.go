package shelf

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, sh *Shelf) error
	GetByID(ctx context.Context, id int64) (*Shelf, error)
	GetAll(ctx context.Context) ([]*Shelf, error)
	GetByCupboard(ctx context.Context, cupboardID int64) ([]*Shelf, error)
	Update(ctx context.Context, sh *Shelf) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, sh *Shelf) error {
	const query = `
		INSERT INTO public.shelves (shelf_number, capacity, description, cupboard_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query, sh.ShelfNumber, sh.Capacity, sh.Description, sh.CupboardID).Scan(&sh.ID)
	if err != nil {
		return fmt.Errorf("create shelf failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Shelf, error) {
	const query = `
		SELECT id, shelf_number, capacity, description, cupboard_id
		FROM public.shelves
		WHERE id = $1
	`
	var sh Shelf
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.ShelfNumber, &sh.Capacity, &sh.Description, &sh.CupboardID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get shelf failed: %w", err)
	}
	return &sh, nil
}

func (r *pgxRepository) GetAll(ctx context.Context) ([]*Shelf, error) {
	const query = `
		SELECT id, shelf_number, capacity, description, cupboard_id
		FROM public.shelves
		ORDER BY id
	`
	return r.queryShelves(ctx, query)
}

func (r *pgxRepository) GetByCupboard(ctx context.Context, cupboardID int64) ([]*Shelf, error) {
	const query = `
		SELECT id, shelf_number, capacity, description, cupboard_id
		FROM public.shelves
		WHERE cupboard_id = $1
		ORDER BY shelf_number
	`
	return r.queryShelves(ctx, query, cupboardID)
}

func (r *pgxRepository) Update(ctx context.Context, sh *Shelf) error {
	const query = `
		UPDATE public.shelves
		SET shelf_number = $1, capacity = $2, description = $3
		WHERE id = $4
	`
	ct, err := r.pool.Exec(ctx, query, sh.ShelfNumber, sh.Capacity, sh.Description, sh.ID)
	if err != nil {
		return fmt.Errorf("update shelf failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.shelves WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete shelf failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) queryShelves(ctx context.Context, query string, args ...any) ([]*Shelf, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shelves failed: %w", err)
	}
	defer rows.Close()

	var shelves []*Shelf
	for rows.Next() {
		var sh Shelf
		if err := rows.Scan(&sh.ID, &sh.ShelfNumber, &sh.Capacity, &sh.Description, &sh.CupboardID); err != nil {
			return nil, fmt.Errorf("scan shelf failed: %w", err)
		}
		shelves = append(shelves, &sh)
	}
	return shelves, rows.Err()
}
