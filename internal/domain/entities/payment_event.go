package entities

import (
	"encoding/json"
	"time"
)

// PaymentEventStatus is the outcome recorded for a consumed processor
// notification.

type PaymentEventStatus string

const (
	PaymentEventApplied   PaymentEventStatus = "applied"
	PaymentEventReplayed  PaymentEventStatus = "replayed"
	PaymentEventException PaymentEventStatus = "no_payment_exception"
)

// PaymentEvent is the audit row persisted for every payment-confirmed
// notification the bridge resolves, replays included, and for audited
// no-payment acceptances.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation for querying.

type PaymentEvent struct {
	ID        string             `json:"id"`
	RequestID string             `json:"request_id"`
	Date      time.Time          `json:"date"`
	Status    PaymentEventStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
