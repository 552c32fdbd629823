package response

import (
	"time"

	"rentigo/internal/domain/payment"
	"rentigo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	RentalID        uuid.UUID       `json:"rentalId"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentType     string          `json:"paymentType"`
	Status          string          `json:"status"`
	StripeSessionID *string         `json:"stripeSessionId,omitempty"`
	TransactionID   *string         `json:"transactionId,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type OpenSessionResponse struct {
	Payment     PaymentResponse `json:"payment"`
	CheckoutURL string          `json:"checkoutUrl"`
}

func FromPaymentView(view *queries.PaymentView) *PaymentResponse {
	var resp PaymentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	resps := make([]*PaymentResponse, len(views))
	for i, view := range views {
		resps[i] = FromPaymentView(view)
	}
	return resps
}

func FromPaymentEntity(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:              p.ID(),
		RentalID:        p.RentalID(),
		Amount:          p.Amount(),
		PaymentType:     p.PaymentType().String(),
		Status:          p.Status().String(),
		StripeSessionID: p.StripeSessionID(),
		TransactionID:   p.TransactionID(),
		PaidAt:          p.PaidAt(),
		Description:     p.Description(),
		CreatedAt:       p.CreatedAt(),
	}
}
