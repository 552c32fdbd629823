package commands

import (
	"context"
	"time"

	"rentigo/internal/domain/payment"
	"rentigo/internal/domain/rental"
	"rentigo/internal/domain/user"
	"rentigo/internal/domain/vehicle"
	"rentigo/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side ports. Repositories take an explicit DBTX so the usecase
// decides the transaction boundary.

type RentalRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *rental.Rental) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*rental.Rental, error)
	// Update persists the entity guarded by its version; a stale version
	// yields a CONFLICT repository error.
	Update(ctx context.Context, tx db.DBTX, r *rental.Rental) error
	// LockVehicleForBooking takes a per-vehicle advisory lock held until the
	// current transaction ends, serializing concurrent bookings of that
	// vehicle.
	LockVehicleForBooking(ctx context.Context, tx db.DBTX, vehicleID uuid.UUID) error
	// FindOpenByVehicleID returns the bookings that could still hold the
	// vehicle: status open and not yet returned.
	FindOpenByVehicleID(ctx context.Context, tx db.DBTX, vehicleID uuid.UUID) ([]rental.Booking, error)
	// FindStalePendingPayment lists rentals sitting in PENDING_PAYMENT since
	// before the cutoff, for the expiry job.
	FindStalePendingPayment(ctx context.Context, tx db.DBTX, cutoff time.Time) ([]*rental.Rental, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, tx db.DBTX, v *vehicle.Vehicle) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*vehicle.Vehicle, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status vehicle.Status) error
	Update(ctx context.Context, tx db.DBTX, v *vehicle.Vehicle) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*payment.Payment, error)
	FindBySessionID(ctx context.Context, tx db.DBTX, sessionID string) (*payment.Payment, error)
	AttachSession(ctx context.Context, tx db.DBTX, id uuid.UUID, sessionID string) error
	// MarkSuccess performs the status-guarded check-then-set inside the
	// current transaction; it reports whether this call actually settled
	// the payment (false means the success was already applied).
	MarkSuccess(ctx context.Context, tx db.DBTX, id uuid.UUID, transactionID string, paidAt time.Time) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, tx db.DBTX, email string) (*user.User, error)
}

// PaymentGateway is the external checkout provider boundary.

type CreateSessionInput struct {
	PaymentID   uuid.UUID
	RentalID    uuid.UUID
	PaymentType payment.Type
	Amount      decimal.Decimal
	Currency    string
	Description string
}

type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

type IntentInfo struct {
	PaymentID string
	SessionID string
}

type PaymentGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)
	// VerifyEvent fails closed on a bad signature or malformed payload and
	// returns (nil, nil) for event kinds outside the recognized union.
	VerifyEvent(payload []byte, signature string) (payment.Event, error)
	ResolveIntent(ctx context.Context, paymentIntentID string) (*IntentInfo, error)
}
