package queries

import (
	"context"

	"rentigo/internal/infra"
	"rentigo/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound = errs.New("payment not found")
	ErrPaymentAccess   = errs.New("payment access denied")
)

type PaymentQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*PaymentView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*PaymentView, error)
	ListByRental(ctx context.Context, actor Actor, rentalID uuid.UUID) ([]*PaymentView, error)
}

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, uuid.UUID, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*PaymentView, error)
	// FindByRentalID also reports the rental owner so access can be checked
	// without a second round trip.
	FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*PaymentView, uuid.UUID, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*PaymentView, error) {
	view, ownerID, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if ownerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrPaymentAccess
	}
	return view, nil
}

func (q *paymentQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*PaymentView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.readStore.FindByUserID(ctx, userID, int32(limit))
}

func (q *paymentQueriesImpl) ListByRental(ctx context.Context, actor Actor, rentalID uuid.UUID) ([]*PaymentView, error) {
	views, ownerID, err := q.readStore.FindByRentalID(ctx, rentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	if ownerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrPaymentAccess
	}
	return views, nil
}
