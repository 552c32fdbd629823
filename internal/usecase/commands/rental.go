package commands

import (
	"context"
	"log/slog"
	"time"

	"rentigo/internal/domain/payment"
	"rentigo/internal/domain/rental"
	"rentigo/internal/domain/vehicle"
	"rentigo/internal/infra"
	"rentigo/internal/infra/db"
	"rentigo/internal/pkg/clock"
	"rentigo/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrVehicleNotFound         = errs.New("vehicle not found")
	ErrVehicleUnderMaintenance = errs.New("vehicle is under maintenance")
	ErrVehicleUnavailable      = errs.New("vehicle is not available")
	ErrRentalNotFound          = errs.New("rental not found")
	ErrRentalConflict          = errs.New("vehicle is already booked for this period")
	ErrInvalidRentalPeriod     = errs.New("invalid rental period")
	ErrStartTimeInPast         = errs.New("start time is in the past")
	ErrNotRentalOwner          = errs.New("rental does not belong to this user")
	ErrInvalidRentalStatus     = errs.New("rental status does not allow this operation")
	ErrActivationTooEarly      = errs.New("cannot activate this early before the start time")
	ErrStaleRental             = errs.New("rental was modified concurrently")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateRentalInput struct {
	VehicleID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type CreateRentalResult struct {
	Rental      *rental.Rental
	CheckoutURL string
}

type RentalCommands interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateRentalInput) (*CreateRentalResult, error)
	Activate(ctx context.Context, rentalID, userID uuid.UUID) (*rental.Rental, error)
	Return(ctx context.Context, rentalID, userID uuid.UUID) (*rental.Rental, error)
	Cancel(ctx context.Context, rentalID, userID uuid.UUID) (*rental.Rental, error)
	ForceFinish(ctx context.Context, rentalID uuid.UUID) (*rental.Rental, error)
	ExpireStalePendingPayments(ctx context.Context, olderThan time.Duration) (int, error)
}

// RentalSettlements are the transitions the payment reconciler applies once
// a payment settles; they run inside the reconciler's transaction.
type RentalSettlements interface {
	ApplyDepositPaid(ctx context.Context, tx db.DBTX, rentalID uuid.UUID) error
	ApplyRentalFeePaid(ctx context.Context, tx db.DBTX, rentalID uuid.UUID) error
	ApplyOvertimeFeePaid(ctx context.Context, tx db.DBTX, rentalID uuid.UUID) error
}

type rentalUseCaseImpl struct {
	rentalRepo  RentalRepository
	vehicleRepo VehicleRepository
	payments    PaymentCommands
	pool        *pgxpool.Pool
	runTx       txRunner
	clock       clock.Clock
}

func NewRentalCommands(
	rentalRepo RentalRepository,
	vehicleRepo VehicleRepository,
	payments PaymentCommands,
	pool *pgxpool.Pool,
	clock clock.Clock,
) RentalCommands {
	return &rentalUseCaseImpl{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		payments:    payments,
		pool:        pool,
		runTx:       poolTxRunner(pool),
		clock:       clock,
	}
}

// NewRentalSettlements exposes the reconciler-facing transitions over the
// same repositories.
func NewRentalSettlements(
	rentalRepo RentalRepository,
	vehicleRepo VehicleRepository,
	clock clock.Clock,
) RentalSettlements {
	return &rentalUseCaseImpl{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		clock:       clock,
	}
}

func (u *rentalUseCaseImpl) Create(ctx context.Context, userID uuid.UUID, in CreateRentalInput) (*CreateRentalResult, error) {
	veh, err := u.vehicleRepo.FindByID(ctx, u.pool, in.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if veh.IsUnderMaintenance() {
		return nil, ErrVehicleUnderMaintenance
	}

	period, err := rental.NewBookingPeriod(in.StartTime, in.EndTime, u.clock.Now())
	if err != nil {
		switch err {
		case rental.ErrStartInPast:
			return nil, ErrStartTimeInPast
		default:
			return nil, ErrInvalidRentalPeriod
		}
	}

	var created *rental.Rental
	err = u.runTx(ctx, func(tx db.DBTX) error {
		// The per-vehicle lock holds until commit; without it two concurrent
		// creates under READ COMMITTED can both pass the overlap check.
		if err := u.rentalRepo.LockVehicleForBooking(ctx, tx, veh.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := u.rentalRepo.FindOpenByVehicleID(ctx, tx, veh.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rental.Conflicts(period, existing) {
			return ErrRentalConflict
		}

		r := rental.NewRental(userID, veh.ID(), period, veh.DailyPrice(), veh.DepositAmount())
		if err := u.rentalRepo.Create(ctx, tx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The deposit checkout opens outside the booking transaction: a gateway
	// failure must leave the rental in PENDING_PAYMENT, retriable.
	session, err := u.payments.OpenSession(ctx, userID, OpenSessionInput{
		RentalID:    created.ID(),
		PaymentType: payment.TypeDeposit,
		Description: "Vehicle rental deposit - " + veh.Model(),
	})
	if err != nil {
		slog.Warn("booking created but deposit session failed",
			"rental_id", created.ID(), "error", err.Error())
		return nil, err
	}

	return &CreateRentalResult{
		Rental:      created,
		CheckoutURL: session.CheckoutURL,
	}, nil
}

func (u *rentalUseCaseImpl) Activate(ctx context.Context, rentalID, userID uuid.UUID) (*rental.Rental, error) {
	var activated *rental.Rental
	err := u.runTx(ctx, func(tx db.DBTX) error {
		r, err := u.findRental(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		if !r.IsOwnedBy(userID) {
			return ErrNotRentalOwner
		}
		if r.Status() != rental.StatusPaid {
			return ErrInvalidRentalStatus
		}
		if err := r.Period().ValidateActivationAt(u.clock.Now()); err != nil {
			return ErrActivationTooEarly
		}

		veh, err := u.vehicleRepo.FindByID(ctx, tx, r.VehicleID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !veh.IsAvailable() {
			return ErrVehicleUnavailable
		}

		if err := r.Activate(); err != nil {
			return ErrInvalidRentalStatus
		}
		if err := u.updateRental(ctx, tx, r); err != nil {
			return err
		}
		if err := u.vehicleRepo.UpdateStatus(ctx, tx, veh.ID(), vehicle.StatusRented); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		activated = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return activated, nil
}

func (u *rentalUseCaseImpl) Return(ctx context.Context, rentalID, userID uuid.UUID) (*rental.Rental, error) {
	var returned *rental.Rental
	err := u.runTx(ctx, func(tx db.DBTX) error {
		r, err := u.findRental(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		if !r.IsOwnedBy(userID) {
			return ErrNotRentalOwner
		}

		veh, err := u.vehicleRepo.FindByID(ctx, tx, r.VehicleID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		fee, err := r.Return(u.clock.Now(), veh.DailyPrice())
		if err != nil {
			return ErrInvalidRentalStatus
		}
		if fee.IsPositive() {
			slog.Info("rental returned overdue",
				"rental_id", r.ID(), "overtime_fee", fee.String())
		}

		if err := u.updateRental(ctx, tx, r); err != nil {
			return err
		}
		// The vehicle is back regardless of any outstanding overtime.
		if err := u.vehicleRepo.UpdateStatus(ctx, tx, veh.ID(), vehicle.StatusAvailable); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		returned = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return returned, nil
}

// Cancel abandons a booking the vehicle was never handed over for. Once the
// rental is active the only ways out are Return or an admin ForceFinish.
func (u *rentalUseCaseImpl) Cancel(ctx context.Context, rentalID, userID uuid.UUID) (*rental.Rental, error) {
	var cancelled *rental.Rental
	err := u.runTx(ctx, func(tx db.DBTX) error {
		r, err := u.findRental(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		if !r.IsOwnedBy(userID) {
			return ErrNotRentalOwner
		}
		switch r.Status() {
		case rental.StatusActive, rental.StatusPendingOvertimePayment:
			return ErrInvalidRentalStatus
		}
		if err := r.Cancel(); err != nil {
			return ErrInvalidRentalStatus
		}
		cancelled = r
		return u.updateRental(ctx, tx, r)
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (u *rentalUseCaseImpl) ForceFinish(ctx context.Context, rentalID uuid.UUID) (*rental.Rental, error) {
	var finished *rental.Rental
	err := u.runTx(ctx, func(tx db.DBTX) error {
		r, err := u.findRental(ctx, tx, rentalID)
		if err != nil {
			return err
		}

		if err := r.ForceFinish(u.clock.Now()); err != nil {
			return ErrInvalidRentalStatus
		}
		if err := u.updateRental(ctx, tx, r); err != nil {
			return err
		}
		if err := u.vehicleRepo.UpdateStatus(ctx, tx, r.VehicleID(), vehicle.StatusAvailable); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		finished = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return finished, nil
}

// ExpireStalePendingPayments cancels bookings whose deposit checkout never
// completed. Each rental is cancelled in its own transaction so one stale
// row cannot wedge the whole sweep.
func (u *rentalUseCaseImpl) ExpireStalePendingPayments(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := u.clock.Now().Add(-olderThan)

	stale, err := u.rentalRepo.FindStalePendingPayment(ctx, u.pool, cutoff)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cancelled := 0
	for _, r := range stale {
		err := u.runTx(ctx, func(tx db.DBTX) error {
			if err := r.Cancel(); err != nil {
				return err
			}
			return u.updateRental(ctx, tx, r)
		})
		if err != nil {
			slog.Warn("failed to expire stale rental", "rental_id", r.ID(), "error", err.Error())
			continue
		}
		cancelled++
	}
	return cancelled, nil
}

func (u *rentalUseCaseImpl) ApplyDepositPaid(ctx context.Context, tx db.DBTX, rentalID uuid.UUID) error {
	r, err := u.findRental(ctx, tx, rentalID)
	if err != nil {
		return err
	}
	if err := r.MarkDepositPaid(u.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidRentalStatus)
	}
	return u.updateRental(ctx, tx, r)
}

func (u *rentalUseCaseImpl) ApplyRentalFeePaid(ctx context.Context, tx db.DBTX, rentalID uuid.UUID) error {
	r, err := u.findRental(ctx, tx, rentalID)
	if err != nil {
		return err
	}
	if err := r.MarkRentalFeePaid(); err != nil {
		return errs.Mark(err, ErrInvalidRentalStatus)
	}
	return u.updateRental(ctx, tx, r)
}

func (u *rentalUseCaseImpl) ApplyOvertimeFeePaid(ctx context.Context, tx db.DBTX, rentalID uuid.UUID) error {
	r, err := u.findRental(ctx, tx, rentalID)
	if err != nil {
		return err
	}
	if err := r.MarkOvertimeSettled(); err != nil {
		return errs.Mark(err, ErrInvalidRentalStatus)
	}
	return u.updateRental(ctx, tx, r)
}

func (u *rentalUseCaseImpl) findRental(ctx context.Context, tx db.DBTX, rentalID uuid.UUID) (*rental.Rental, error) {
	r, err := u.rentalRepo.FindByID(ctx, tx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return r, nil
}

func (u *rentalUseCaseImpl) updateRental(ctx context.Context, tx db.DBTX, r *rental.Rental) error {
	if err := u.rentalRepo.Update(ctx, tx, r); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, ErrStaleRental)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
