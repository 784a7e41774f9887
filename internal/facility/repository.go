package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id int64) (*Facility, error)
	GetAll(ctx context.Context) ([]*Facility, error)
	GetByResource(ctx context.Context, resourceID int64) ([]*Facility, error)
	Update(ctx context.Context, f *Facility) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Facility) error {
	const query = `
		INSERT INTO public.facilities (resource_id, name, details)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, f.ResourceID, f.Name, f.Details).Scan(&f.ID); err != nil {
		return fmt.Errorf("create facility failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Facility, error) {
	const query = `
		SELECT id, resource_id, name, details
		FROM public.facilities
		WHERE id = $1
	`
	var f Facility
	if err := r.pool.QueryRow(ctx, query, id).Scan(&f.ID, &f.ResourceID, &f.Name, &f.Details); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) GetAll(ctx context.Context) ([]*Facility, error) {
	const query = `
		SELECT id, resource_id, name, details
		FROM public.facilities
		ORDER BY id
	`
	return r.queryFacilities(ctx, query)
}

func (r *pgxRepository) GetByResource(ctx context.Context, resourceID int64) ([]*Facility, error) {
	const query = `
		SELECT id, resource_id, name, details
		FROM public.facilities
		WHERE resource_id = $1
		ORDER BY id
	`
	return r.queryFacilities(ctx, query, resourceID)
}

func (r *pgxRepository) Update(ctx context.Context, f *Facility) error {
	const query = `
		UPDATE public.facilities
		SET name = $1, details = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, f.Name, f.Details, f.ID)
	if err != nil {
		return fmt.Errorf("update facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.facilities WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) queryFacilities(ctx context.Context, query string, args ...any) ([]*Facility, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facilities failed: %w", err)
	}
	defer rows.Close()

	var facilities []*Facility
	for rows.Next() {
		var f Facility
		if err := rows.Scan(&f.ID, &f.ResourceID, &f.Name, &f.Details); err != nil {
			return nil, fmt.Errorf("scan facility failed: %w", err)
		}
		facilities = append(facilities, &f)
	}
	return facilities, rows.Err()
}
