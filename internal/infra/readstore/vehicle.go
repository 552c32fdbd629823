package readstore

import (
	"context"
	"time"

	"rentigo/internal/infra"
	"rentigo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleReadStore struct {
	pool *pgxpool.Pool
}

func NewVehicleReadStore(pool *pgxpool.Pool) *VehicleReadStore {
	return &VehicleReadStore{pool: pool}
}

const vehicleViewColumns = `id, model, plate_number, status, daily_price, deposit_amount, created_at, updated_at`

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+vehicleViewColumns+` FROM vehicles WHERE id = $1`, id)

	var v queries.VehicleView
	err := row.Scan(&v.ID, &v.Model, &v.PlateNumber, &v.Status, &v.DailyPrice, &v.DepositAmount, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if infra.KindFromPgError(err) == infra.KindNotFound {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return &v, nil
}

func (r *VehicleReadStore) FindAll(ctx context.Context, status string) ([]*queries.VehicleView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != "" {
		rows, err = r.pool.Query(ctx,
			`SELECT `+vehicleViewColumns+` FROM vehicles WHERE status = $1 ORDER BY created_at DESC`, status)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT `+vehicleViewColumns+` FROM vehicles ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()
	return collectVehicleViews(rows)
}

// FindAvailableBetween keeps a vehicle only when no open, unreturned rental
// overlaps the half-open window [start, end).
func (r *VehicleReadStore) FindAvailableBetween(ctx context.Context, start, end time.Time) ([]*queries.VehicleView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+vehicleViewColumns+`
		FROM vehicles v
		WHERE v.status <> 'MAINTENANCE'
		  AND NOT EXISTS (
			SELECT 1 FROM rentals r
			WHERE r.vehicle_id = v.id
			  AND r.status IN ('PENDING_PAYMENT', 'PENDING_RENTAL_PAYMENT', 'PAID', 'ACTIVE')
			  AND r.actual_return_time IS NULL
			  AND r.end_time > $1
			  AND r.start_time < $2
		  )
		ORDER BY v.created_at DESC`, start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available vehicles", err)
	}
	defer rows.Close()
	return collectVehicleViews(rows)
}

func collectVehicleViews(rows pgx.Rows) ([]*queries.VehicleView, error) {
	var views []*queries.VehicleView
	for rows.Next() {
		var v queries.VehicleView
		err := rows.Scan(&v.ID, &v.Model, &v.PlateNumber, &v.Status, &v.DailyPrice, &v.DepositAmount, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}
	return views, nil
}
