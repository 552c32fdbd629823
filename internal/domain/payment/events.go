package payment

// Event is the closed set of provider notifications the reconciler acts on.
// The gateway decodes and signature-checks the raw delivery exactly once;
// anything outside this union is dropped at that boundary.
type Event interface {
	isEvent()
}

// CheckoutCompleted carries the session id directly; it is the primary
// correlation path.
type CheckoutCompleted struct {
	SessionID       string
	PaymentIntentID string
}

// IntentSucceeded carries the local payment id the session was created with,
// plus the provider-side intent id used as the transaction reference.
type IntentSucceeded struct {
	PaymentID       string
	SessionID       string
	PaymentIntentID string
}

// ChargeSucceeded only names the intent; the reconciler resolves it to a
// session through the gateway before it can find the local payment.
type ChargeSucceeded struct {
	PaymentIntentID string
}

func (CheckoutCompleted) isEvent() {}
func (IntentSucceeded) isEvent()   {}
func (ChargeSucceeded) isEvent()   {}
