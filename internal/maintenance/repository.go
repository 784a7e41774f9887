package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, m *Maintenance) error
	GetByID(ctx context.Context, id int64) (*Maintenance, error)
	GetAll(ctx context.Context) ([]*Maintenance, error)
	GetByBuilding(ctx context.Context, buildingID int64) ([]*Maintenance, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const maintenanceColumns = "id, maintenance_type, scheduled_date, status, notes, resource_id"

func (r *pgxRepository) Create(ctx context.Context, m *Maintenance) error {
	const query = `
		INSERT INTO public.maintenance (maintenance_type, scheduled_date, status, notes, resource_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		m.MaintenanceType, m.ScheduledDate, m.Status, m.Notes, m.ResourceID,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create maintenance failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Maintenance, error) {
	query := fmt.Sprintf("SELECT %s FROM public.maintenance WHERE id = $1", maintenanceColumns)
	var m Maintenance
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.MaintenanceType, &m.ScheduledDate, &m.Status, &m.Notes, &m.ResourceID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get maintenance failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) GetAll(ctx context.Context) ([]*Maintenance, error) {
	query := fmt.Sprintf("SELECT %s FROM public.maintenance ORDER BY id", maintenanceColumns)
	return r.queryMaintenance(ctx, query)
}

func (r *pgxRepository) GetByBuilding(ctx context.Context, buildingID int64) ([]*Maintenance, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"m.id", "m.maintenance_type", "m.scheduled_date", "m.status", "m.notes", "m.resource_id",
	).
		From("public.maintenance m").
		Join("public.resources r ON m.resource_id = r.id").
		Where(squirrel.Eq{"r.building_id": buildingID}).
		OrderBy("m.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build maintenance by building query failed: %w", err)
	}
	return r.queryMaintenance(ctx, sql, args...)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	const query = `UPDATE public.maintenance SET status = $1 WHERE id = $2`
	ct, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update maintenance status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM public.maintenance WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete maintenance failed: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *pgxRepository) queryMaintenance(ctx context.Context, query string, args ...any) ([]*Maintenance, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance failed: %w", err)
	}
	defer rows.Close()

	var records []*Maintenance
	for rows.Next() {
		var m Maintenance
		if err := rows.Scan(
			&m.ID, &m.MaintenanceType, &m.ScheduledDate, &m.Status, &m.Notes, &m.ResourceID,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance failed: %w", err)
		}
		records = append(records, &m)
	}
	return records, rows.Err()
}
