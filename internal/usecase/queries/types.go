package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type RentalView struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	VehicleID        uuid.UUID       `json:"vehicle_id"`
	VehicleModel     string          `json:"vehicle_model"`
	VehiclePlate     string          `json:"vehicle_plate"`
	StartTime        time.Time       `json:"start_time"`
	EndTime          time.Time       `json:"end_time"`
	ActualReturnTime *time.Time      `json:"actual_return_time,omitempty"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	DepositStatus    string          `json:"deposit_status"`
	OvertimeAmount   decimal.Decimal `json:"overtime_amount"`
	Version          int32           `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type RentalListItem struct {
	ID           uuid.UUID       `json:"id"`
	VehicleID    uuid.UUID       `json:"vehicle_id"`
	VehicleModel string          `json:"vehicle_model"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

type VehicleView struct {
	ID            uuid.UUID       `json:"id"`
	Model         string          `json:"model"`
	PlateNumber   string          `json:"plate_number"`
	Status        string          `json:"status"`
	DailyPrice    decimal.Decimal `json:"daily_price"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentView struct {
	ID              uuid.UUID       `json:"id"`
	RentalID        uuid.UUID       `json:"rental_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentType     string          `json:"payment_type"`
	Status          string          `json:"status"`
	StripeSessionID *string         `json:"stripe_session_id,omitempty"`
	TransactionID   *string         `json:"transaction_id,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Actor identifies the caller for read-side access checks.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
