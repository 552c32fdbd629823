package writerepo

import (
	"context"
	"time"

	"rentigo/internal/domain/payment"
	"rentigo/internal/infra"
	"rentigo/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const paymentColumns = `
	id, rental_id, user_id, amount, payment_type, status,
	stripe_session_id, transaction_id, paid_at, description,
	created_at, updated_at`

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO payments (
			id, rental_id, user_id, amount, payment_type, status,
			description, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
		p.ID(), p.RentalID(), p.UserID(), p.Amount(),
		p.PaymentType().String(), p.Status().String(), p.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*payment.Payment, error) {
	row := tx.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	return scanPaymentRow(row, "payment not found")
}

func (r *PaymentRepository) FindBySessionID(ctx context.Context, tx db.DBTX, sessionID string) (*payment.Payment, error) {
	row := tx.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE stripe_session_id = $1`, sessionID)
	return scanPaymentRow(row, "payment not found for session")
}

func (r *PaymentRepository) AttachSession(ctx context.Context, tx db.DBTX, id uuid.UUID, sessionID string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE payments SET stripe_session_id = $1, updated_at = now()
		WHERE id = $2`,
		sessionID, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to attach session", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkSuccess settles the payment only if it is still pending. The guarded
// update is the idempotency boundary for webhook retries: the first delivery
// flips the row, every later one reports false.
func (r *PaymentRepository) MarkSuccess(ctx context.Context, tx db.DBTX, id uuid.UUID, transactionID string, paidAt time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE payments SET
			status = 'SUCCESS',
			transaction_id = $1,
			paid_at = $2,
			updated_at = now()
		WHERE id = $3 AND status = 'PENDING'`,
		transactionID, paidAt, id,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment success", err, infra.KindFromPgError(err))
	}
	return tag.RowsAffected() > 0, nil
}

func scanPaymentRow(row pgx.Row, notFoundMsg string) (*payment.Payment, error) {
	var (
		id, rentalID, userID     uuid.UUID
		amount                   decimal.Decimal
		paymentType, status      string
		sessionID, transactionID *string
		paidAt                   *time.Time
		description              string
		createdAt, updatedAt     time.Time
	)
	err := row.Scan(
		&id, &rentalID, &userID, &amount, &paymentType, &status,
		&sessionID, &transactionID, &paidAt, &description,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if infra.KindFromPgError(err) == infra.KindNotFound {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan payment", err)
	}

	return payment.Reconstruct(
		id, rentalID, userID, amount,
		payment.Type(paymentType), payment.Status(status),
		sessionID, transactionID, paidAt, description,
		createdAt, updatedAt,
	), nil
}
