package request

import (
	"rentigo/internal/domain/payment"
	"rentigo/internal/usecase/commands"

	"github.com/google/uuid"
)

type OpenSessionRequest struct {
	RentalID    uuid.UUID `json:"rental_id" binding:"required"`
	PaymentType string    `json:"payment_type" binding:"required,oneof=RENTAL DEPOSIT OVERTIME"`
}

func (r OpenSessionRequest) ToInput() commands.OpenSessionInput {
	return commands.OpenSessionInput{
		RentalID:    r.RentalID,
		PaymentType: payment.Type(r.PaymentType),
	}
}
