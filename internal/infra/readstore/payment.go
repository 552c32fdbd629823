package readstore

import (
	"context"

	"rentigo/internal/infra"
	"rentigo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentReadStore struct {
	pool *pgxpool.Pool
}

func NewPaymentReadStore(pool *pgxpool.Pool) *PaymentReadStore {
	return &PaymentReadStore{pool: pool}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, uuid.UUID, error) {
	var (
		v       queries.PaymentView
		ownerID uuid.UUID
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, rental_id, user_id, amount, payment_type, status,
		       stripe_session_id, transaction_id, paid_at, description, created_at
		FROM payments WHERE id = $1`, id,
	).Scan(
		&v.ID, &v.RentalID, &ownerID, &v.Amount, &v.PaymentType, &v.Status,
		&v.StripeSessionID, &v.TransactionID, &v.PaidAt, &v.Description, &v.CreatedAt,
	)
	if err != nil {
		if infra.KindFromPgError(err) == infra.KindNotFound {
			return nil, uuid.Nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return &v, ownerID, nil
}

func (r *PaymentReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.PaymentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, rental_id, user_id, amount, payment_type, status,
		       stripe_session_id, transaction_id, paid_at, description, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by user", err)
	}
	defer rows.Close()

	var views []*queries.PaymentView
	for rows.Next() {
		var (
			v     queries.PaymentView
			payer uuid.UUID
		)
		err := rows.Scan(
			&v.ID, &v.RentalID, &payer, &v.Amount, &v.PaymentType, &v.Status,
			&v.StripeSessionID, &v.TransactionID, &v.PaidAt, &v.Description, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return views, nil
}

func (r *PaymentReadStore) FindByRentalID(ctx context.Context, rentalID uuid.UUID) ([]*queries.PaymentView, uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, `SELECT user_id FROM rentals WHERE id = $1`, rentalID).Scan(&ownerID)
	if err != nil {
		if infra.KindFromPgError(err) == infra.KindNotFound {
			return nil, uuid.Nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find rental owner", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, rental_id, user_id, amount, payment_type, status,
		       stripe_session_id, transaction_id, paid_at, description, created_at
		FROM payments
		WHERE rental_id = $1
		ORDER BY created_at ASC`, rentalID,
	)
	if err != nil {
		return nil, uuid.Nil, infra.WrapRepoErr("failed to list payments by rental", err)
	}
	defer rows.Close()

	var views []*queries.PaymentView
	for rows.Next() {
		var (
			v      queries.PaymentView
			userID uuid.UUID
		)
		err := rows.Scan(
			&v.ID, &v.RentalID, &userID, &v.Amount, &v.PaymentType, &v.Status,
			&v.StripeSessionID, &v.TransactionID, &v.PaidAt, &v.Description, &v.CreatedAt,
		)
		if err != nil {
			return nil, uuid.Nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, uuid.Nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return views, ownerID, nil
}
