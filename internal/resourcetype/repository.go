package resourcetype

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rt *ResourceType) error
	GetByID(ctx context.Context, id int64) (*ResourceType, error)
	GetAll(ctx context.Context) ([]*ResourceType, error)
	Update(ctx context.Context, rt *ResourceType) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rt *ResourceType) error {
	const query = `
		INSERT INTO public.resource_types (type_name)
		VALUES ($1)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, rt.TypeName).Scan(&rt.ID); err != nil {
		return fmt.Errorf("create resource type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*ResourceType, error) {
	const query = `SELECT id, type_name FROM public.resource_types WHERE id = $1`
	var rt ResourceType
	if err := r.pool.QueryRow(ctx, query, id).Scan(&rt.ID, &rt.TypeName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource type failed: %w", err)
	}
	return &rt, nil
}

func (r *pgxRepository) GetAll(ctx context.Context) ([]*ResourceType, error) {
	const query = `SELECT id, type_name FROM public.resource_types ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list resource types failed: %w", err)
	}
	defer rows.Close()

	var types []*ResourceType
	for rows.Next() {
		var rt ResourceType
		if err := rows.Scan(&rt.ID, &rt.TypeName); err != nil {
			return nil, fmt.Errorf("scan resource type failed: %w", err)
		}
		types = append(types, &rt)
	}
	return types, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, rt *ResourceType) error {
	const query = `UPDATE public.resource_types SET type_name = $1 WHERE id = $2`
	ct, err := r.pool.Exec(ctx, query, rt.TypeName, rt.ID)
	if err != nil {
		return fmt.Errorf("update resource type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.resource_types WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete resource type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
