package commands

import (
	"context"
	"log/slog"

	"rentigo/internal/domain/payment"
	"rentigo/internal/domain/rental"
	"rentigo/internal/infra"
	"rentigo/internal/infra/db"
	"rentigo/internal/pkg/clock"
	"rentigo/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound            = errs.New("payment not found")
	ErrPaymentSessionFailed       = errs.New("failed to open checkout session")
	ErrPaymentNotDue              = errs.New("rental has no payment due of this type")
	ErrWebhookVerificationFailed  = errs.New("webhook verification failed")
	ErrUnresolvableWebhookPayment = errs.New("webhook event does not reference a known payment")
)

const (
	checkoutCurrency = "usd"
	settleMaxRetries = 3
)

type OpenSessionInput struct {
	RentalID    uuid.UUID
	PaymentType payment.Type
	Description string
}

type OpenSessionResult struct {
	Payment     *payment.Payment
	CheckoutURL string
}

type PaymentCommands interface {
	OpenSession(ctx context.Context, userID uuid.UUID, in OpenSessionInput) (*OpenSessionResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentUseCaseImpl struct {
	paymentRepo PaymentRepository
	rentalRepo  RentalRepository
	settlements RentalSettlements
	gateway     PaymentGateway
	pool        *pgxpool.Pool
	runTx       txRunner
	clock       clock.Clock
}

func NewPaymentCommands(
	paymentRepo PaymentRepository,
	rentalRepo RentalRepository,
	settlements RentalSettlements,
	gateway PaymentGateway,
	pool *pgxpool.Pool,
	clock clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		paymentRepo: paymentRepo,
		rentalRepo:  rentalRepo,
		settlements: settlements,
		gateway:     gateway,
		pool:        pool,
		runTx:       poolRetryTxRunner(pool, settleMaxRetries),
		clock:       clock,
	}
}

// OpenSession creates a PENDING payment for the amount the rental currently
// owes and opens a provider checkout for it. The amount is always derived
// server side from the rental, never taken from the request.
func (u *paymentUseCaseImpl) OpenSession(ctx context.Context, userID uuid.UUID, in OpenSessionInput) (*OpenSessionResult, error) {
	r, err := u.rentalRepo.FindByID(ctx, u.pool, in.RentalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !r.IsOwnedBy(userID) {
		return nil, ErrNotRentalOwner
	}

	amount, err := amountDue(r, in.PaymentType)
	if err != nil {
		return nil, err
	}

	description := in.Description
	if description == "" {
		description = string(in.PaymentType) + " payment for rental " + r.ID().String()
	}

	p, err := payment.NewPayment(r.ID(), userID, amount, in.PaymentType, description)
	if err != nil {
		return nil, errs.Wrap(err, "build payment")
	}
	if err := u.paymentRepo.Create(ctx, u.pool, p); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	session, err := u.gateway.CreateSession(ctx, CreateSessionInput{
		PaymentID:   p.ID(),
		RentalID:    r.ID(),
		PaymentType: in.PaymentType,
		Amount:      amount,
		Currency:    checkoutCurrency,
		Description: description,
	})
	if err != nil {
		// The PENDING row stays behind; the client can retry and open a
		// fresh session for the same rental.
		return nil, errs.Mark(err, ErrPaymentSessionFailed)
	}

	p.AttachSession(session.SessionID)
	if err := u.paymentRepo.AttachSession(ctx, u.pool, p.ID(), session.SessionID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &OpenSessionResult{
		Payment:     p,
		CheckoutURL: session.CheckoutURL,
	}, nil
}

// amountDue maps the payment type to what the rental owes at its current
// stage, rejecting types the rental is not waiting on.
func amountDue(r *rental.Rental, t payment.Type) (decimal.Decimal, error) {
	switch t {
	case payment.TypeDeposit:
		if r.Status() != rental.StatusPendingPayment {
			return decimal.Zero, ErrPaymentNotDue
		}
		return r.DepositAmount(), nil
	case payment.TypeRental:
		if r.Status() != rental.StatusPendingRentalPayment {
			return decimal.Zero, ErrPaymentNotDue
		}
		return r.TotalAmount(), nil
	case payment.TypeOvertime:
		if r.Status() != rental.StatusPendingOvertimePayment {
			return decimal.Zero, ErrPaymentNotDue
		}
		return r.OvertimeAmount(), nil
	default:
		return decimal.Zero, payment.ErrInvalidType
	}
}

// HandleWebhook verifies the delivery and reconciles the referenced payment.
// Verification failures are rejected outright; recognized events that cannot
// be matched to a local payment surface as not-found so the provider retries.
func (u *paymentUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := u.gateway.VerifyEvent(payload, signature)
	if err != nil {
		return errs.Mark(err, ErrWebhookVerificationFailed)
	}
	if event == nil {
		// Event kind outside the recognized union.
		return nil
	}

	switch e := event.(type) {
	case payment.CheckoutCompleted:
		return u.settle(ctx, paymentRef{sessionID: e.SessionID}, e.PaymentIntentID)
	case payment.IntentSucceeded:
		return u.settle(ctx, paymentRef{paymentID: e.PaymentID, sessionID: e.SessionID}, e.PaymentIntentID)
	case payment.ChargeSucceeded:
		info, err := u.gateway.ResolveIntent(ctx, e.PaymentIntentID)
		if err != nil {
			return errs.Mark(err, ErrUnresolvableWebhookPayment)
		}
		return u.settle(ctx, paymentRef{paymentID: info.PaymentID, sessionID: info.SessionID}, e.PaymentIntentID)
	default:
		return nil
	}
}

// paymentRef locates a payment by local id when the event carried one,
// falling back to the checkout session id.
type paymentRef struct {
	paymentID string
	sessionID string
}

func (u *paymentUseCaseImpl) settle(ctx context.Context, ref paymentRef, transactionID string) error {
	return u.runTx(ctx, func(tx db.DBTX) error {
		p, err := u.findPayment(ctx, tx, ref)
		if err != nil {
			return err
		}

		settled, err := u.paymentRepo.MarkSuccess(ctx, tx, p.ID(), transactionID, u.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !settled {
			// Another delivery already applied this success; the rental
			// transition went with it, so this one is a no-op.
			slog.Debug("duplicate payment success ignored",
				"payment_id", p.ID(), "transaction_id", transactionID)
			return nil
		}

		return u.applySettlement(ctx, tx, p)
	})
}

func (u *paymentUseCaseImpl) applySettlement(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	switch p.PaymentType() {
	case payment.TypeDeposit:
		return u.settlements.ApplyDepositPaid(ctx, tx, p.RentalID())
	case payment.TypeRental:
		return u.settlements.ApplyRentalFeePaid(ctx, tx, p.RentalID())
	case payment.TypeOvertime:
		return u.settlements.ApplyOvertimeFeePaid(ctx, tx, p.RentalID())
	default:
		return payment.ErrInvalidType
	}
}

func (u *paymentUseCaseImpl) findPayment(ctx context.Context, tx db.DBTX, ref paymentRef) (*payment.Payment, error) {
	if ref.paymentID != "" {
		id, err := uuid.Parse(ref.paymentID)
		if err == nil {
			p, err := u.paymentRepo.FindByID(ctx, tx, id)
			if err == nil {
				return p, nil
			}
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
	}
	if ref.sessionID != "" {
		p, err := u.paymentRepo.FindBySessionID(ctx, tx, ref.sessionID)
		if err == nil {
			return p, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil, ErrPaymentNotFound
}
