package request

import (
	"encoding/json"
	"strings"

	"printworks/internal/usecase"
)

// PaymentNotificationRequest tolerates the two payload shapes the processor
// sends: the Mercado Pago webhook ({"type": "payment", "data": {"id": ...}})
// and the simplified form ({"event_type": ..., "session_id": ...}).
type PaymentNotificationRequest struct {
	Type      string `json:"type"`
	Action    string `json:"action"`
	EventType string `json:"event_type"`
	SessionID string `json:"session_id"`
	Data      struct {
		ID json.Number `json:"id"`
	} `json:"data"`
	ExternalReference string `json:"external_reference"`
}

func (r PaymentNotificationRequest) ToNotification(raw json.RawMessage) usecase.Notification {
	n := usecase.Notification{
		EventType:         strings.TrimSpace(r.EventType),
		SessionID:         strings.TrimSpace(r.SessionID),
		ExternalReference: strings.TrimSpace(r.ExternalReference),
		Raw:               raw,
	}
	if n.EventType == "" {
		if r.Action != "" {
			n.EventType = strings.TrimSpace(r.Action)
		} else {
			n.EventType = strings.TrimSpace(r.Type)
		}
	}
	if n.SessionID == "" {
		n.SessionID = r.Data.ID.String()
	}
	return n
}
