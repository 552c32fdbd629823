package vehicle

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDailyPrice    = errors.New("daily price must be positive")
	ErrInvalidDepositAmount = errors.New("deposit amount cannot be negative")
)

// Vehicle is a keyed inventory record. Its status field is shared mutable
// state: outside of admin CRUD it is written only as the side effect of a
// rental transition, under the rental's transaction.
type Vehicle struct {
	id            uuid.UUID
	model         string
	plateNumber   string
	status        Status
	dailyPrice    decimal.Decimal
	depositAmount decimal.Decimal
	createdAt     time.Time
	updatedAt     time.Time
}

func NewVehicle(model, plateNumber string, dailyPrice, depositAmount decimal.Decimal) (*Vehicle, error) {
	if !dailyPrice.IsPositive() {
		return nil, ErrInvalidDailyPrice
	}
	if depositAmount.IsNegative() {
		return nil, ErrInvalidDepositAmount
	}

	return &Vehicle{
		id:            uuid.New(),
		model:         model,
		plateNumber:   plateNumber,
		status:        StatusAvailable,
		dailyPrice:    dailyPrice,
		depositAmount: depositAmount,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	model, plateNumber string,
	status Status,
	dailyPrice, depositAmount decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:            id,
		model:         model,
		plateNumber:   plateNumber,
		status:        status,
		dailyPrice:    dailyPrice,
		depositAmount: depositAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (v *Vehicle) ID() uuid.UUID                  { return v.id }
func (v *Vehicle) Model() string                  { return v.model }
func (v *Vehicle) PlateNumber() string            { return v.plateNumber }
func (v *Vehicle) Status() Status                 { return v.status }
func (v *Vehicle) DailyPrice() decimal.Decimal    { return v.dailyPrice }
func (v *Vehicle) DepositAmount() decimal.Decimal { return v.depositAmount }
func (v *Vehicle) CreatedAt() time.Time           { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time           { return v.updatedAt }

func (v *Vehicle) IsAvailable() bool        { return v.status == StatusAvailable }
func (v *Vehicle) IsUnderMaintenance() bool { return v.status == StatusMaintenance }

// ApplyUpdate replaces the mutable attributes in one admin edit.
func (v *Vehicle) ApplyUpdate(model, plateNumber string, dailyPrice, depositAmount decimal.Decimal, status Status) error {
	if !dailyPrice.IsPositive() {
		return ErrInvalidDailyPrice
	}
	if depositAmount.IsNegative() {
		return ErrInvalidDepositAmount
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	v.model = model
	v.plateNumber = plateNumber
	v.dailyPrice = dailyPrice
	v.depositAmount = depositAmount
	v.status = status
	return nil
}
