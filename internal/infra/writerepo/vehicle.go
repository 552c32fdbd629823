package writerepo

import (
	"context"
	"time"

	"rentigo/internal/domain/vehicle"
	"rentigo/internal/infra"
	"rentigo/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleRepository struct{}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{}
}

func (r *VehicleRepository) Create(ctx context.Context, tx db.DBTX, v *vehicle.Vehicle) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO vehicles (
			id, model, plate_number, status, daily_price, deposit_amount,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		v.ID(), v.Model(), v.PlateNumber(), v.Status().String(),
		v.DailyPrice(), v.DepositAmount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*vehicle.Vehicle, error) {
	var (
		model, plateNumber        string
		status                    string
		dailyPrice, depositAmount decimal.Decimal
		createdAt, updatedAt      time.Time
	)
	err := tx.QueryRow(ctx, `
		SELECT model, plate_number, status, daily_price, deposit_amount, created_at, updated_at
		FROM vehicles WHERE id = $1`, id,
	).Scan(&model, &plateNumber, &status, &dailyPrice, &depositAmount, &createdAt, &updatedAt)
	if err != nil {
		if infra.KindFromPgError(err) == infra.KindNotFound {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	return vehicle.Reconstruct(
		id, model, plateNumber, vehicle.Status(status),
		dailyPrice, depositAmount, createdAt, updatedAt,
	), nil
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status vehicle.Status) error {
	tag, err := tx.Exec(ctx, `
		UPDATE vehicles SET status = $1, updated_at = now() WHERE id = $2`,
		status.String(), id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle status", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, tx db.DBTX, v *vehicle.Vehicle) error {
	tag, err := tx.Exec(ctx, `
		UPDATE vehicles SET
			model = $1,
			plate_number = $2,
			status = $3,
			daily_price = $4,
			deposit_amount = $5,
			updated_at = now()
		WHERE id = $6`,
		v.Model(), v.PlateNumber(), v.Status().String(),
		v.DailyPrice(), v.DepositAmount(), v.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete vehicle", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
