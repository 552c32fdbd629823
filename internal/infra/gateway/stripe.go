package gateway

import (
	"context"
	"encoding/json"

	"rentigo/internal/domain/payment"
	"rentigo/internal/pkg/config"
	"rentigo/internal/pkg/errs"
	"rentigo/internal/usecase/commands"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/webhook"
)

var (
	errSessionCreate    = errs.New("failed to create stripe checkout session")
	errIntentRetrieve   = errs.New("failed to retrieve stripe payment intent")
	errEventUnmarshal   = errs.New("failed to decode stripe event payload")
	ErrInvalidSignature = errs.New("stripe webhook signature verification failed")
)

// Stripe prices everything in the currency's minor unit.
var minorUnits = decimal.NewFromInt(100)

// StripeGateway is the checkout-provider adapter. It is the only place that
// talks the provider's wire format; everything behind it sees the typed
// payment.Event union.
type StripeGateway struct {
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	stripe.Key = cfg.SecretKey
	return &StripeGateway{
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, in commands.CreateSessionInput) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(g.successURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(in.PaymentID.String()),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"payment_id":   in.PaymentID.String(),
				"rental_id":    in.RentalID.String(),
				"payment_type": in.PaymentType.String(),
			},
		},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(in.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.Description),
					},
					UnitAmount: stripe.Int64(in.Amount.Mul(minorUnits).IntPart()),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, errs.Mark(err, errSessionCreate)
	}

	return &commands.CheckoutSession{
		SessionID:   s.ID,
		CheckoutURL: s.URL,
	}, nil
}

// VerifyEvent checks the delivery signature against the shared secret and
// decodes the recognized kinds into the domain event union. Unrecognized
// kinds return (nil, nil) so the reconciler can ignore them.
func (g *StripeGateway) VerifyEvent(payload []byte, signature string) (payment.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignature)
	}

	switch event.Type {
	case "checkout.session.completed":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, errs.Mark(err, errEventUnmarshal)
		}
		ev := payment.CheckoutCompleted{SessionID: s.ID}
		if s.PaymentIntent != nil {
			ev.PaymentIntentID = s.PaymentIntent.ID
		}
		return ev, nil

	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.Mark(err, errEventUnmarshal)
		}
		return payment.IntentSucceeded{
			PaymentID:       pi.Metadata["payment_id"],
			SessionID:       pi.Metadata["session_id"],
			PaymentIntentID: pi.ID,
		}, nil

	case "charge.succeeded":
		var ch stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
			return nil, errs.Mark(err, errEventUnmarshal)
		}
		ev := payment.ChargeSucceeded{}
		if ch.PaymentIntent != nil {
			ev.PaymentIntentID = ch.PaymentIntent.ID
		}
		return ev, nil

	default:
		return nil, nil
	}
}

// ResolveIntent fetches the payment intent so charge events can be
// correlated back to the local payment through the session metadata.
func (g *StripeGateway) ResolveIntent(ctx context.Context, paymentIntentID string) (*commands.IntentInfo, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		return nil, errs.Mark(err, errIntentRetrieve)
	}

	return &commands.IntentInfo{
		PaymentID: pi.Metadata["payment_id"],
		SessionID: pi.Metadata["session_id"],
	}, nil
}
