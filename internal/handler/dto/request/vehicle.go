package request

import (
	"rentigo/internal/domain/vehicle"
	"rentigo/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateVehicleRequest struct {
	Model         string          `json:"model" binding:"required"`
	PlateNumber   string          `json:"plate_number" binding:"required"`
	DailyPrice    decimal.Decimal `json:"daily_price" binding:"required"`
	DepositAmount decimal.Decimal `json:"deposit_amount" binding:"required"`
}

func (r CreateVehicleRequest) ToInput() commands.CreateVehicleInput {
	return commands.CreateVehicleInput{
		Model:         r.Model,
		PlateNumber:   r.PlateNumber,
		DailyPrice:    r.DailyPrice,
		DepositAmount: r.DepositAmount,
	}
}

type UpdateVehicleRequest struct {
	Model         string          `json:"model" binding:"required"`
	PlateNumber   string          `json:"plate_number" binding:"required"`
	DailyPrice    decimal.Decimal `json:"daily_price" binding:"required"`
	DepositAmount decimal.Decimal `json:"deposit_amount" binding:"required"`
	Status        string          `json:"status" binding:"required,oneof=AVAILABLE RENTED MAINTENANCE"`
}

func (r UpdateVehicleRequest) ToInput() commands.UpdateVehicleInput {
	return commands.UpdateVehicleInput{
		Model:         r.Model,
		PlateNumber:   r.PlateNumber,
		DailyPrice:    r.DailyPrice,
		DepositAmount: r.DepositAmount,
		Status:        vehicle.Status(r.Status),
	}
}
