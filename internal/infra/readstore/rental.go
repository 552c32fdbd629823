package readstore

import (
	"context"

	"rentigo/internal/infra"
	"rentigo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RentalReadStore struct {
	pool *pgxpool.Pool
}

func NewRentalReadStore(pool *pgxpool.Pool) *RentalReadStore {
	return &RentalReadStore{pool: pool}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	var v queries.RentalView
	err := r.pool.QueryRow(ctx, `
		SELECT r.id, r.user_id, r.vehicle_id, v.model, v.plate_number,
		       r.start_time, r.end_time, r.actual_return_time, r.status,
		       r.total_amount, r.deposit_amount, r.deposit_status,
		       r.overtime_amount, r.version, r.created_at, r.updated_at
		FROM rentals r
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.id = $1`, id,
	).Scan(
		&v.ID, &v.UserID, &v.VehicleID, &v.VehicleModel, &v.VehiclePlate,
		&v.StartTime, &v.EndTime, &v.ActualReturnTime, &v.Status,
		&v.TotalAmount, &v.DepositAmount, &v.DepositStatus,
		&v.OvertimeAmount, &v.Version, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.KindFromPgError(err) == infra.KindNotFound {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}
	return &v, nil
}

func (r *RentalReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.RentalListItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.vehicle_id, v.model, r.start_time, r.end_time,
		       r.status, r.total_amount, r.created_at
		FROM rentals r
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`, userID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals by user", err)
	}
	defer rows.Close()
	return collectRentalListItems(rows)
}

func (r *RentalReadStore) FindAll(ctx context.Context, limit int32) ([]*queries.RentalListItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.vehicle_id, v.model, r.start_time, r.end_time,
		       r.status, r.total_amount, r.created_at
		FROM rentals r
		JOIN vehicles v ON v.id = r.vehicle_id
		ORDER BY r.created_at DESC
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	defer rows.Close()
	return collectRentalListItems(rows)
}

func collectRentalListItems(rows pgx.Rows) ([]*queries.RentalListItem, error) {
	var items []*queries.RentalListItem
	for rows.Next() {
		var item queries.RentalListItem
		err := rows.Scan(
			&item.ID, &item.VehicleID, &item.VehicleModel,
			&item.StartTime, &item.EndTime, &item.Status,
			&item.TotalAmount, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rental rows", err)
	}
	return items, nil
}
