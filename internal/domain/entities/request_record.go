package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestKind discriminates the three submission types sharing one lifecycle.
//
// Domain notes:
//   - standard_order: catalog-priced, enters the lifecycle at awaiting_payment.
//   - quote: manually priced by an operator before payment.
//   - price_match: a quote variant carrying a competitor price to beat.

type RequestKind string

const (
	KindStandardOrder RequestKind = "standard_order"
	KindQuote         RequestKind = "quote"
	KindPriceMatch    RequestKind = "price_match"
)

// Status is the financial/approval state of a request record.
type Status string

const (
	StatusPending         Status = "pending"
	StatusReviewed        Status = "reviewed"
	StatusPriced          Status = "priced"
	StatusAccepted        Status = "accepted"
	StatusPaymentSent     Status = "payment_sent"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusPaid            Status = "paid"
	StatusRejected        Status = "rejected"
	StatusCancelled       Status = "cancelled"
)

// Terminal reports whether no further lifecycle event may move the record.
func (s Status) Terminal() bool {
	switch s {
	case StatusPaid, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks the financial outcome independently of Status.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ProductionStatus tracks the manufacturing stage of a confirmed order.
// Stages are strictly ordered; see the production package for the ordering.
type ProductionStatus string

const (
	ProductionNotStarted       ProductionStatus = "not_started"
	ProductionDesignInProgress ProductionStatus = "design_in_progress"
	ProductionAwaitingProof    ProductionStatus = "awaiting_proof_approval"
	ProductionApproved         ProductionStatus = "approved_for_production"
	ProductionPrinting         ProductionStatus = "printing"
	ProductionFinishing        ProductionStatus = "finishing"
	ProductionQualityCheck     ProductionStatus = "quality_check"
	ProductionReadyForDispatch ProductionStatus = "ready_for_dispatch"
	ProductionDispatched       ProductionStatus = "dispatched"
)

// LineItem is a priced product row on a request record.
type LineItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Sundry is an ad hoc priced line item (e.g. rush fee) appended during
// quote pricing. Append-only while the record has not been priced.
type Sundry struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	AddedAt     time.Time       `json:"added_at"`
}

// TaxPolicy is frozen at pricing time and never retroactively changed.
type TaxPolicy struct {
	Applicable bool            `json:"applicable"`
	Rate       decimal.Decimal `json:"rate"`
}

// QuoteDetails carries the kind-specific payload of a quote submission.
type QuoteDetails struct {
	Specifications string     `json:"specifications"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

// PriceMatchDetails carries the kind-specific payload of a price-match
// submission.
type PriceMatchDetails struct {
	CompetitorName  string          `json:"competitor_name"`
	CompetitorPrice decimal.Decimal `json:"competitor_price"`
	ProofURL        string          `json:"proof_url,omitempty"`
}

// RequestRecord is the unified entity for an order, quote, or price-match
// submission, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_ref-index): external_payment_ref
//   - GSI2 (status-index): status
//
// Concurrency:
//   - Version is a compare-and-swap token. Every write conditions on the
//     version read; a losing writer observes a version conflict and the
//     usecase surfaces StaleState.
//
// Monetary representation:
//   - Subtotal/Tax/Total are derived from LineItems + Sundries + TaxPolicy
//     and only ever set by a full recompute.

type RequestRecord struct {
	ID     string        `json:"id"`
	Kind   RequestKind   `json:"kind"`
	Status Status        `json:"status"`

	PaymentStatus    PaymentStatus    `json:"payment_status"`
	ProductionStatus ProductionStatus `json:"production_status,omitempty"`

	LineItems []LineItem `json:"line_items"`
	Sundries  []Sundry   `json:"sundries"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	TaxPolicy TaxPolicy       `json:"tax_policy"`

	QuoteDetails      *QuoteDetails      `json:"quote_details,omitempty"`
	PriceMatchDetails *PriceMatchDetails `json:"price_match_details,omitempty"`

	// NoPaymentException marks the audited accept-without-payment path,
	// which bypasses the payment gate.
	NoPaymentException bool `json:"no_payment_exception,omitempty"`

	CustomerRef         string `json:"customer_ref"`
	AssignedOperatorRef string `json:"assigned_operator_ref,omitempty"`

	// ExternalPaymentRef is set at most once, when a checkout session is
	// issued. Re-issuing for an already-referenced record is rejected.
	ExternalPaymentRef string `json:"external_payment_ref,omitempty"`

	RejectReason string     `json:"reject_reason,omitempty"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

// SundriesMutable reports whether the sundry ledger still accepts appends.
func (r RequestRecord) SundriesMutable() bool {
	return r.Status == StatusPending || r.Status == StatusReviewed
}

// ProductionEligible reports whether the production tracker may leave
// not_started.
func (r RequestRecord) ProductionEligible() bool {
	return r.PaymentStatus == PaymentStatusPaid || r.NoPaymentException
}
