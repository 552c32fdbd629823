//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"rentigo/internal/domain/rental"
	"rentigo/internal/domain/vehicle"
	"rentigo/internal/infra"
	"rentigo/internal/infra/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVehicleRepo struct {
	VehicleRepository
	vehicle   *vehicle.Vehicle
	findErr   error
	deleteErr error
	deleted   []uuid.UUID
}

func (f *stubVehicleRepo) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*vehicle.Vehicle, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.vehicle, nil
}

func (f *stubVehicleRepo) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newVehicleCommands(vehicleRepo *stubVehicleRepo, rentalRepo *recordingRentalRepo) VehicleCommands {
	return &vehicleUseCaseImpl{
		vehicleRepo: vehicleRepo,
		rentalRepo:  rentalRepo,
		runTx: func(ctx context.Context, fn func(tx db.DBTX) error) error {
			return fn(nil)
		},
	}
}

func TestDeleteVehicle(t *testing.T) {
	vehicleRepo := &stubVehicleRepo{vehicle: testVehicle(t, vehicle.StatusAvailable)}
	uc := newVehicleCommands(vehicleRepo, &recordingRentalRepo{})

	id := vehicleRepo.vehicle.ID()
	require.NoError(t, uc.Delete(context.Background(), id))
	assert.Equal(t, []uuid.UUID{id}, vehicleRepo.deleted)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	vehicleRepo := &stubVehicleRepo{findErr: infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)}
	uc := newVehicleCommands(vehicleRepo, &recordingRentalRepo{})

	err := uc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestDeleteVehicleWithOpenRentals(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	held, err := rental.NewPeriod(start, start.Add(48*time.Hour))
	require.NoError(t, err)

	vehicleRepo := &stubVehicleRepo{vehicle: testVehicle(t, vehicle.StatusRented)}
	rentalRepo := &recordingRentalRepo{open: []rental.Booking{
		{Period: held, Status: rental.StatusActive, Returned: false},
	}}
	uc := newVehicleCommands(vehicleRepo, rentalRepo)

	err = uc.Delete(context.Background(), vehicleRepo.vehicle.ID())
	assert.ErrorIs(t, err, ErrVehicleHasOpenRentals)
	assert.Empty(t, vehicleRepo.deleted)
}

func TestDeleteVehicleWithRentalHistory(t *testing.T) {
	// Nothing open, but finished rentals still reference the vehicle and the
	// database refuses the delete.
	vehicleRepo := &stubVehicleRepo{
		vehicle:   testVehicle(t, vehicle.StatusAvailable),
		deleteErr: infra.WrapRepoErr("failed to delete vehicle", nil, infra.KindForeignKeyViolated),
	}
	uc := newVehicleCommands(vehicleRepo, &recordingRentalRepo{})

	err := uc.Delete(context.Background(), vehicleRepo.vehicle.ID())
	assert.ErrorIs(t, err, ErrVehicleInUse)
}
