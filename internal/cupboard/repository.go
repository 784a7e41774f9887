package cupboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, cb *Cupboard) error
	GetByID(ctx context.Context, id int64) (*Cupboard, error)
	GetAll(ctx context.Context) ([]*Cupboard, error)
	GetByResource(ctx context.Context, resourceID int64) ([]*Cupboard, error)
	Update(ctx context.Context, cb *Cupboard) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, cb *Cupboard) error {
	const query = `
		INSERT INTO public.cupboards (name, total_shelves, resource_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, cb.Name, cb.TotalShelves, cb.ResourceID).Scan(&cb.ID); err != nil {
		return fmt.Errorf("create cupboard failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Cupboard, error) {
	const query = `
		SELECT id, name, total_shelves, resource_id
		FROM public.cupboards
		WHERE id = $1
	`
	var cb Cupboard
	if err := r.pool.QueryRow(ctx, query, id).Scan(&cb.ID, &cb.Name, &cb.TotalShelves, &cb.ResourceID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cupboard failed: %w", err)
	}
	return &cb, nil
}

func (r *pgxRepository) GetAll(ctx context.Context) ([]*Cupboard, error) {
	const query = `
		SELECT id, name, total_shelves, resource_id
		FROM public.cupboards
		ORDER BY id
	`
	return r.queryCupboards(ctx, query)
}

func (r *pgxRepository) GetByResource(ctx context.Context, resourceID int64) ([]*Cupboard, error) {
	const query = `
		SELECT id, name, total_shelves, resource_id
		FROM public.cupboards
		WHERE resource_id = $1
		ORDER BY id
	`
	return r.queryCupboards(ctx, query, resourceID)
}

func (r *pgxRepository) Update(ctx context.Context, cb *Cupboard) error {
	const query = `
		UPDATE public.cupboards
		SET name = $1, total_shelves = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, cb.Name, cb.TotalShelves, cb.ID)
	if err != nil {
		return fmt.Errorf("update cupboard failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.cupboards WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete cupboard failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) queryCupboards(ctx context.Context, query string, args ...any) ([]*Cupboard, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cupboards failed: %w", err)
	}
	defer rows.Close()

	var cupboards []*Cupboard
	for rows.Next() {
		var cb Cupboard
		if err := rows.Scan(&cb.ID, &cb.Name, &cb.TotalShelves, &cb.ResourceID); err != nil {
			return nil, fmt.Errorf("scan cupboard failed: %w", err)
		}
		cupboards = append(cupboards, &cb)
	}
	return cupboards, rows.Err()
}
