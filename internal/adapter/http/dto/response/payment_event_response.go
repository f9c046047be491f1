package response

import (
	"time"

	"printworks/internal/domain/entities"
	"printworks/internal/usecase"
)

type PaymentEventResponse struct {
	ID        string         `json:"id"`
	RequestID string         `json:"request_id"`
	Date      time.Time      `json:"date"`
	Status    string         `json:"status"`
	Payload   map[string]any `json:"payload,omitempty"`
}

func FromPaymentEvent(ev entities.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		ID:        ev.ID,
		RequestID: ev.RequestID,
		Date:      ev.Date,
		Status:    string(ev.Status),
		Payload:   ev.ProviderPayload,
	}
}

func FromPaymentEvents(events []entities.PaymentEvent) []PaymentEventResponse {
	out := make([]PaymentEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, FromPaymentEvent(ev))
	}
	return out
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{SessionID: r.SessionID, RedirectURL: r.RedirectURL}
}
