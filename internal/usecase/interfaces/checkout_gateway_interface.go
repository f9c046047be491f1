package interfaces

import "context"

// CheckoutLine is one wire line item sent to the payment processor.
// Amounts are integer minor currency units (pence).
type CheckoutLine struct {
	Title           string
	Quantity        int
	UnitAmountMinor int64
}

// CheckoutRequest describes the session to open with the processor.
type CheckoutRequest struct {
	RequestID        string
	AmountMinorUnits int64
	Currency         string
	Lines            []CheckoutLine
	SuccessURL       string
	CancelURL        string
	Metadata         map[string]any
}

// CheckoutSession is the processor's handle for an opened session. ID maps
// one-to-one to a request record via external_payment_ref.
type CheckoutSession struct {
	ID          string
	RedirectURL string
}

// ICheckoutGateway abstracts the external payment processor (Mercado Pago).
// The outbound call is a fallible network call with no special cancellation
// semantics; retry policy belongs to the caller.

type ICheckoutGateway interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
}
