//go:build unit

package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentigo/internal/domain/vehicle"
	"rentigo/internal/handler/api"
	"rentigo/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeVehicleCommands struct {
	vehicle *vehicle.Vehicle
	err     error
}

func (f *fakeVehicleCommands) Create(ctx context.Context, in commands.CreateVehicleInput) (*vehicle.Vehicle, error) {
	return f.vehicle, f.err
}

func (f *fakeVehicleCommands) Update(ctx context.Context, id uuid.UUID, in commands.UpdateVehicleInput) (*vehicle.Vehicle, error) {
	return f.vehicle, f.err
}

func (f *fakeVehicleCommands) Delete(ctx context.Context, id uuid.UUID) error {
	return f.err
}

func TestVehicleDeleteStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", commands.ErrVehicleNotFound, http.StatusNotFound},
		{"open rentals", commands.ErrVehicleHasOpenRentals, http.StatusConflict},
		{"historical rentals", commands.ErrVehicleInUse, http.StatusConflict},
		{"database failure", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := api.NewVehicleHandler(&fakeVehicleCommands{err: tt.err}, nil)
			router := gin.New()
			router.DELETE("/vehicles/:id", h.Delete)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/vehicles/"+uuid.NewString(), nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
