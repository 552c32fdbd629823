//go:build unit

package response_test

import (
	"testing"
	"time"

	"rentigo/internal/handler/dto/response"
	"rentigo/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
}

func TestFromRentalView(t *testing.T) {
	returned := time.Date(2026, 5, 3, 9, 30, 0, 0, time.UTC)
	view := &queries.RentalView{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		VehicleID:        uuid.New(),
		VehicleModel:     "Toyota Corolla",
		VehiclePlate:     "ABC-1234",
		StartTime:        time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC),
		ActualReturnTime: &returned,
		Status:           "FINISHED",
		TotalAmount:      decimal.RequireFromString("200.00"),
		DepositAmount:    decimal.RequireFromString("50.00"),
		DepositStatus:    "COLLECTED",
		OvertimeAmount:   decimal.Zero,
		Version:          4,
		CreatedAt:        time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 5, 3, 9, 30, 0, 0, time.UTC),
	}

	expected := &response.RentalResponse{
		ID:               view.ID,
		UserID:           view.UserID,
		VehicleID:        view.VehicleID,
		VehicleModel:     view.VehicleModel,
		VehiclePlate:     view.VehiclePlate,
		StartTime:        view.StartTime,
		EndTime:          view.EndTime,
		ActualReturnTime: view.ActualReturnTime,
		Status:           view.Status,
		TotalAmount:      view.TotalAmount,
		DepositAmount:    view.DepositAmount,
		DepositStatus:    view.DepositStatus,
		OvertimeAmount:   view.OvertimeAmount,
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}

	actual := response.FromRentalView(view)
	if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
		t.Errorf("RentalResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRentalListItems(t *testing.T) {
	items := []*queries.RentalListItem{
		{
			ID:           uuid.New(),
			VehicleID:    uuid.New(),
			VehicleModel: "Honda Civic",
			StartTime:    time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC),
			Status:       "ACTIVE",
			TotalAmount:  decimal.RequireFromString("100.00"),
			CreatedAt:    time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			VehicleID:    uuid.New(),
			VehicleModel: "Toyota Corolla",
			StartTime:    time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2026, 6, 4, 10, 0, 0, 0, time.UTC),
			Status:       "PENDING_PAYMENT",
			TotalAmount:  decimal.RequireFromString("300.00"),
			CreatedAt:    time.Date(2026, 5, 30, 12, 0, 0, 0, time.UTC),
		},
	}

	actual := response.FromRentalListItems(items)

	expected := make([]*response.RentalListResponse, len(items))
	for i, item := range items {
		expected[i] = &response.RentalListResponse{
			ID:           item.ID,
			VehicleID:    item.VehicleID,
			VehicleModel: item.VehicleModel,
			StartTime:    item.StartTime,
			EndTime:      item.EndTime,
			Status:       item.Status,
			TotalAmount:  item.TotalAmount,
			CreatedAt:    item.CreatedAt,
		}
	}

	if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
		t.Errorf("RentalListResponse mismatch (-want +got):\n%s", diff)
	}
}
