package api

import (
	"errors"
	"net/http"

	"rentigo/internal/handler/dto/request"
	"rentigo/internal/handler/dto/response"
	"rentigo/internal/handler/middleware"
	"rentigo/internal/usecase/commands"
	"rentigo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
	paymentQueries queries.PaymentQueries
}

func NewRentalHandler(
	rentalCommands commands.RentalCommands,
	rentalQueries queries.RentalQueries,
	paymentQueries queries.PaymentQueries,
) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
		paymentQueries: paymentQueries,
	}
}

// @Summary Book a vehicle
// @Description Create a rental booking and open the deposit checkout
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateRentalRequest true "Booking request"
// @Success 201 {object} response.CreateRentalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req request.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.rentalCommands.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		case errors.Is(err, commands.ErrVehicleUnderMaintenance):
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is under maintenance"})
		case errors.Is(err, commands.ErrRentalConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is already booked for this period"})
		case errors.Is(err, commands.ErrStartTimeInPast):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Start time is in the past"})
		case errors.Is(err, commands.ErrInvalidRentalPeriod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental period"})
		case errors.Is(err, commands.ErrPaymentSessionFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to open checkout session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.CreateRentalResponse{
		Rental:      *response.FromRentalEntity(result.Rental),
		CheckoutURL: result.CheckoutURL,
	})
}

// @Summary Get a rental
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} response.RentalResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	view, err := h.rentalQueries.GetByID(c.Request.Context(), actor, rentalID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		case errors.Is(err, queries.ErrRentalAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, response.FromRentalView(view))
}

// @Summary List own rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.RentalListResponse
// @Router /rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.rentalQueries.ListByUser(c.Request.Context(), userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, response.FromRentalListItems(items))
}

// @Summary List all rentals
// @Description Admin view across every customer
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.RentalListResponse
// @Router /admin/rentals [get]
func (h *RentalHandler) ListAll(c *gin.Context) {
	items, err := h.rentalQueries.ListAll(c.Request.Context(), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, response.FromRentalListItems(items))
}

// @Summary List payments of a rental
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {array} response.PaymentResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id}/payments [get]
func (h *RentalHandler) ListPayments(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	views, err := h.paymentQueries.ListByRental(c.Request.Context(), actor, rentalID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		case errors.Is(err, queries.ErrPaymentAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentViews(views))
}

// @Summary Activate a paid rental
// @Description Hand the vehicle over; allowed on the start day or within the pre-start window
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} response.RentalResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/activate [post]
func (h *RentalHandler) Activate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	rent, err := h.rentalCommands.Activate(c.Request.Context(), rentalID, userID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRentalEntity(rent))
}

// @Summary Return a rented vehicle
// @Description Close out the rental; an overdue return records the overtime fee
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} response.RentalResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/return [post]
func (h *RentalHandler) Return(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	rent, err := h.rentalCommands.Return(c.Request.Context(), rentalID, userID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRentalEntity(rent))
}

// @Summary Cancel a booking
// @Description Abandon a booking before the vehicle handover
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} response.RentalResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	rent, err := h.rentalCommands.Cancel(c.Request.Context(), rentalID, userID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRentalEntity(rent))
}

// @Summary Force-finish a rental
// @Description Admin override that closes the rental without overtime collection
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} response.RentalResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/force-finish [post]
func (h *RentalHandler) ForceFinish(c *gin.Context) {
	rentalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	rent, err := h.rentalCommands.ForceFinish(c.Request.Context(), rentalID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRentalEntity(rent))
}

func (h *RentalHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRentalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
	case errors.Is(err, commands.ErrNotRentalOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, commands.ErrInvalidRentalStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Rental status does not allow this operation"})
	case errors.Is(err, commands.ErrActivationTooEarly):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Too early to activate this rental"})
	case errors.Is(err, commands.ErrVehicleUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Vehicle is not available"})
	case errors.Is(err, commands.ErrStaleRental):
		c.JSON(http.StatusConflict, gin.H{"error": "Rental was modified concurrently, retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
