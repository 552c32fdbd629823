package request

import (
	"time"

	"rentigo/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r CreateRentalRequest) ToInput() commands.CreateRentalInput {
	return commands.CreateRentalInput{
		VehicleID: r.VehicleID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
