package queries

import (
	"context"
	"time"

	"rentigo/internal/infra"
	"rentigo/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVehicleNotFound = errs.New("vehicle not found")

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	List(ctx context.Context, status string) ([]*VehicleView, error)
	// ListAvailable returns vehicles free of maintenance and of any open
	// booking overlapping the half-open window [start, end).
	ListAvailable(ctx context.Context, start, end time.Time) ([]*VehicleView, error)
}

type VehicleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	FindAll(ctx context.Context, status string) ([]*VehicleView, error)
	FindAvailableBetween(ctx context.Context, start, end time.Time) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	readStore VehicleReadStore
}

func NewVehicleQueries(readStore VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{readStore: readStore}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *vehicleQueriesImpl) List(ctx context.Context, status string) ([]*VehicleView, error) {
	return q.readStore.FindAll(ctx, status)
}

func (q *vehicleQueriesImpl) ListAvailable(ctx context.Context, start, end time.Time) ([]*VehicleView, error) {
	return q.readStore.FindAvailableBetween(ctx, start, end)
}
