package response

import (
	"time"

	"rentigo/internal/domain/vehicle"
	"rentigo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type VehicleResponse struct {
	ID            uuid.UUID       `json:"id"`
	Model         string          `json:"model"`
	PlateNumber   string          `json:"plateNumber"`
	Status        string          `json:"status"`
	DailyPrice    decimal.Decimal `json:"dailyPrice"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromVehicleView(view *queries.VehicleView) *VehicleResponse {
	var resp VehicleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromVehicleViews(views []*queries.VehicleView) []*VehicleResponse {
	resps := make([]*VehicleResponse, len(views))
	for i, view := range views {
		resps[i] = FromVehicleView(view)
	}
	return resps
}

func FromVehicleEntity(v *vehicle.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:            v.ID(),
		Model:         v.Model(),
		PlateNumber:   v.PlateNumber(),
		Status:        v.Status().String(),
		DailyPrice:    v.DailyPrice(),
		DepositAmount: v.DepositAmount(),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
}
