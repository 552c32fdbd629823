package writerepo

import (
	"context"
	"time"

	"rentigo/internal/domain/rental"
	"rentigo/internal/infra"
	"rentigo/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type RentalRepository struct{}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{}
}

const rentalColumns = `
	id, user_id, vehicle_id, start_time, end_time, actual_return_time,
	status, total_amount, deposit_amount, deposit_status, deposit_paid_at,
	overtime_amount, version, created_at, updated_at`

func (r *RentalRepository) Create(ctx context.Context, tx db.DBTX, rent *rental.Rental) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO rentals (
			id, user_id, vehicle_id, start_time, end_time,
			status, total_amount, deposit_amount, deposit_status,
			overtime_amount, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`,
		rent.ID(), rent.UserID(), rent.VehicleID(),
		rent.Period().Start(), rent.Period().End(),
		rent.Status().String(), rent.TotalAmount(), rent.DepositAmount(),
		string(rent.DepositStatus()), rent.OvertimeAmount(), rent.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rental", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*rental.Rental, error) {
	row := tx.QueryRow(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id)

	rent, err := scanRental(row)
	if err != nil {
		if infra.KindFromPgError(err) == infra.KindNotFound {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}
	return rent, nil
}

// Update persists the aggregate guarded by the version it was loaded at;
// losing the guard surfaces as a CONFLICT.
func (r *RentalRepository) Update(ctx context.Context, tx db.DBTX, rent *rental.Rental) error {
	tag, err := tx.Exec(ctx, `
		UPDATE rentals SET
			actual_return_time = $1,
			status = $2,
			total_amount = $3,
			deposit_status = $4,
			deposit_paid_at = $5,
			overtime_amount = $6,
			version = version + 1,
			updated_at = now()
		WHERE id = $7 AND version = $8`,
		rent.ActualReturnTime(), rent.Status().String(), rent.TotalAmount(),
		string(rent.DepositStatus()), rent.DepositPaidAt(), rent.OvertimeAmount(),
		rent.ID(), rent.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update rental", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

// LockVehicleForBooking takes a transaction-scoped advisory lock keyed on the
// vehicle id. It blocks until any concurrent booking of the same vehicle
// commits or rolls back.
func (r *RentalRepository) LockVehicleForBooking(ctx context.Context, tx db.DBTX, vehicleID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, vehicleID)
	if err != nil {
		return infra.WrapRepoErr("failed to lock vehicle for booking", err)
	}
	return nil
}

func (r *RentalRepository) FindOpenByVehicleID(ctx context.Context, tx db.DBTX, vehicleID uuid.UUID) ([]rental.Booking, error) {
	rows, err := tx.Query(ctx, `
		SELECT start_time, end_time, status, actual_return_time
		FROM rentals
		WHERE vehicle_id = $1
		  AND status IN ('PENDING_PAYMENT', 'PENDING_RENTAL_PAYMENT', 'PAID', 'ACTIVE')`,
		vehicleID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find open rentals", err)
	}
	defer rows.Close()

	var bookings []rental.Booking
	for rows.Next() {
		var (
			start, end time.Time
			status     string
			returnedAt *time.Time
		)
		if err := rows.Scan(&start, &end, &status, &returnedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan open rental", err)
		}
		period, err := rental.NewPeriod(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt rental period", err)
		}
		bookings = append(bookings, rental.Booking{
			Period:   period,
			Status:   rental.Status(status),
			Returned: returnedAt != nil,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate open rentals", err)
	}
	return bookings, nil
}

func (r *RentalRepository) FindStalePendingPayment(ctx context.Context, tx db.DBTX, cutoff time.Time) ([]*rental.Rental, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+rentalColumns+`
		FROM rentals
		WHERE status = 'PENDING_PAYMENT' AND created_at < $1`,
		cutoff,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stale rentals", err)
	}
	defer rows.Close()

	var rentals []*rental.Rental
	for rows.Next() {
		rent, err := scanRental(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan stale rental", err)
		}
		rentals = append(rentals, rent)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stale rentals", err)
	}
	return rentals, nil
}

func scanRental(row pgx.Row) (*rental.Rental, error) {
	var (
		id, userID, vehicleID      uuid.UUID
		start, end                 time.Time
		actualReturnTime           *time.Time
		status, depositStatus      string
		totalAmount, depositAmount decimal.Decimal
		depositPaidAt              *time.Time
		overtimeAmount             decimal.Decimal
		version                    int32
		createdAt, updatedAt       time.Time
	)
	err := row.Scan(
		&id, &userID, &vehicleID, &start, &end, &actualReturnTime,
		&status, &totalAmount, &depositAmount, &depositStatus, &depositPaidAt,
		&overtimeAmount, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	period, err := rental.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	return rental.Reconstruct(
		id, userID, vehicleID, period, actualReturnTime,
		rental.Status(status), totalAmount, depositAmount,
		rental.DepositStatus(depositStatus), depositPaidAt,
		overtimeAmount, version, createdAt, updatedAt,
	), nil
}
