package building

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Building) error
	GetByID(ctx context.Context, id int64) (*Building, error)
	GetAll(ctx context.Context) ([]*Building, error)
	Update(ctx context.Context, b *Building) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Building) error {
	const query = `
		INSERT INTO public.buildings (name, number, total_floors)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, b.Name, b.Number, b.TotalFloors).Scan(&b.ID); err != nil {
		return fmt.Errorf("create building failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Building, error) {
	const query = `
		SELECT id, name, number, total_floors
		FROM public.buildings
		WHERE id = $1
	`
	var b Building
	if err := r.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Number, &b.TotalFloors); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get building failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetAll(ctx context.Context) ([]*Building, error) {
	const query = `
		SELECT id, name, number, total_floors
		FROM public.buildings
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list buildings failed: %w", err)
	}
	defer rows.Close()

	var buildings []*Building
	for rows.Next() {
		var b Building
		if err := rows.Scan(&b.ID, &b.Name, &b.Number, &b.TotalFloors); err != nil {
			return nil, fmt.Errorf("scan building failed: %w", err)
		}
		buildings = append(buildings, &b)
	}
	return buildings, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, b *Building) error {
	const query = `
		UPDATE public.buildings
		SET name = $1, number = $2, total_floors = $3
		WHERE id = $4
	`
	ct, err := r.pool.Exec(ctx, query, b.Name, b.Number, b.TotalFloors, b.ID)
	if err != nil {
		return fmt.Errorf("update building failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.buildings WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete building failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
