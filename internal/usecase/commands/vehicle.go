package commands

import (
	"context"

	"rentigo/internal/domain/vehicle"
	"rentigo/internal/infra"
	"rentigo/internal/infra/db"
	"rentigo/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrPlateAlreadyRegistered = errs.New("plate number is already registered")
	ErrVehicleHasOpenRentals  = errs.New("vehicle still has open rentals")
	ErrVehicleInUse           = errs.New("vehicle is referenced by existing rentals")
)

type CreateVehicleInput struct {
	Model         string
	PlateNumber   string
	DailyPrice    decimal.Decimal
	DepositAmount decimal.Decimal
}

type UpdateVehicleInput struct {
	Model         string
	PlateNumber   string
	DailyPrice    decimal.Decimal
	DepositAmount decimal.Decimal
	Status        vehicle.Status
}

type VehicleCommands interface {
	Create(ctx context.Context, in CreateVehicleInput) (*vehicle.Vehicle, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateVehicleInput) (*vehicle.Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleUseCaseImpl struct {
	vehicleRepo VehicleRepository
	rentalRepo  RentalRepository
	pool        *pgxpool.Pool
	runTx       txRunner
}

func NewVehicleCommands(vehicleRepo VehicleRepository, rentalRepo RentalRepository, pool *pgxpool.Pool) VehicleCommands {
	return &vehicleUseCaseImpl{
		vehicleRepo: vehicleRepo,
		rentalRepo:  rentalRepo,
		pool:        pool,
		runTx:       poolTxRunner(pool),
	}
}

func (u *vehicleUseCaseImpl) Create(ctx context.Context, in CreateVehicleInput) (*vehicle.Vehicle, error) {
	v, err := vehicle.NewVehicle(in.Model, in.PlateNumber, in.DailyPrice, in.DepositAmount)
	if err != nil {
		return nil, err
	}
	if err := u.vehicleRepo.Create(ctx, u.pool, v); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrPlateAlreadyRegistered
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return v, nil
}

func (u *vehicleUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in UpdateVehicleInput) (*vehicle.Vehicle, error) {
	var updated *vehicle.Vehicle
	err := u.runTx(ctx, func(tx db.DBTX) error {
		v, err := u.vehicleRepo.FindByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := v.ApplyUpdate(in.Model, in.PlateNumber, in.DailyPrice, in.DepositAmount, in.Status); err != nil {
			return err
		}
		if err := u.vehicleRepo.Update(ctx, tx, v); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPlateAlreadyRegistered
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete refuses while any rental could still touch the vehicle.
func (u *vehicleUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return u.runTx(ctx, func(tx db.DBTX) error {
		if _, err := u.vehicleRepo.FindByID(ctx, tx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		open, err := u.rentalRepo.FindOpenByVehicleID(ctx, tx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(open) > 0 {
			return ErrVehicleHasOpenRentals
		}

		if err := u.vehicleRepo.Delete(ctx, tx, id); err != nil {
			// Closed rentals keep their vehicle reference for history, so
			// the row can be undeletable even with nothing open.
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrVehicleInUse
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
