package api

import (
	"errors"
	"io"
	"net/http"

	"rentigo/internal/handler/dto/request"
	"rentigo/internal/handler/dto/response"
	"rentigo/internal/handler/middleware"
	"rentigo/internal/usecase/commands"
	"rentigo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary List own payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.PaymentResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.paymentQueries.ListByUser(c.Request.Context(), userID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentViews(views))
}

// @Summary Open a checkout session
// @Description Open a provider checkout for whatever the rental currently owes
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.OpenSessionRequest true "Session request"
// @Success 201 {object} response.OpenSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments/session [post]
func (h *PaymentHandler) OpenSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req request.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.paymentCommands.OpenSession(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		case errors.Is(err, commands.ErrNotRentalOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		case errors.Is(err, commands.ErrPaymentNotDue):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Rental has no payment due of this type"})
		case errors.Is(err, commands.ErrPaymentSessionFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to open checkout session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.OpenSessionResponse{
		Payment:     *response.FromPaymentEntity(result.Payment),
		CheckoutURL: result.CheckoutURL,
	})
}

// @Summary Stripe webhook
// @Description Signed provider notifications; settles payments and advances rentals
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot read payload"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.paymentCommands.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		switch {
		case errors.Is(err, commands.ErrWebhookVerificationFailed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		case errors.Is(err, commands.ErrPaymentNotFound),
			errors.Is(err, commands.ErrUnresolvableWebhookPayment):
			// Not matched yet; a non-2xx makes the provider redeliver later.
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
