package response

import (
	"time"

	"rentigo/internal/domain/rental"
	"rentigo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RentalResponse struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"userId"`
	VehicleID        uuid.UUID       `json:"vehicleId"`
	VehicleModel     string          `json:"vehicleModel,omitempty"`
	VehiclePlate     string          `json:"vehiclePlate,omitempty"`
	StartTime        time.Time       `json:"startTime"`
	EndTime          time.Time       `json:"endTime"`
	ActualReturnTime *time.Time      `json:"actualReturnTime,omitempty"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	DepositAmount    decimal.Decimal `json:"depositAmount"`
	DepositStatus    string          `json:"depositStatus"`
	OvertimeAmount   decimal.Decimal `json:"overtimeAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type RentalListResponse struct {
	ID           uuid.UUID       `json:"id"`
	VehicleID    uuid.UUID       `json:"vehicleId"`
	VehicleModel string          `json:"vehicleModel"`
	StartTime    time.Time       `json:"startTime"`
	EndTime      time.Time       `json:"endTime"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type CreateRentalResponse struct {
	Rental      RentalResponse `json:"rental"`
	CheckoutURL string         `json:"checkoutUrl"`
}

func FromRentalView(view *queries.RentalView) *RentalResponse {
	var resp RentalResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRentalListItem(item *queries.RentalListItem) *RentalListResponse {
	var resp RentalListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}

func FromRentalListItems(items []*queries.RentalListItem) []*RentalListResponse {
	resps := make([]*RentalListResponse, len(items))
	for i, item := range items {
		resps[i] = FromRentalListItem(item)
	}
	return resps
}

// FromRentalEntity maps a command result straight off the aggregate; vehicle
// denormalization is a read-side concern and stays empty here.
func FromRentalEntity(r *rental.Rental) *RentalResponse {
	return &RentalResponse{
		ID:               r.ID(),
		UserID:           r.UserID(),
		VehicleID:        r.VehicleID(),
		StartTime:        r.Period().Start(),
		EndTime:          r.Period().End(),
		ActualReturnTime: r.ActualReturnTime(),
		Status:           r.Status().String(),
		TotalAmount:      r.TotalAmount(),
		DepositAmount:    r.DepositAmount(),
		DepositStatus:    string(r.DepositStatus()),
		OvertimeAmount:   r.OvertimeAmount(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}
