package queries

import (
	"context"

	"rentigo/internal/infra"
	"rentigo/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound = errs.New("rental not found")
	ErrRentalAccess   = errs.New("rental access denied")
)

const defaultListLimit = 50

type RentalQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*RentalView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RentalListItem, error)
	ListAll(ctx context.Context, limit int) ([]*RentalListItem, error)
}

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*RentalListItem, error)
	FindAll(ctx context.Context, limit int32) ([]*RentalListItem, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
}

func NewRentalQueries(readStore RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{readStore: readStore}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*RentalView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	if view.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrRentalAccess
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RentalListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.readStore.FindByUserID(ctx, userID, int32(limit))
}

func (q *rentalQueriesImpl) ListAll(ctx context.Context, limit int) ([]*RentalListItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.readStore.FindAll(ctx, int32(limit))
}
