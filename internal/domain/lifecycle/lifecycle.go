// Package lifecycle holds the pure transition table governing how a request
// record moves from submission through pricing, approval and payment.
//
// The table is total: any (status, event) pair it does not name is rejected
// with ErrGuardFailed and the status is left unchanged. Guards that depend
// on record contents (roles, totals, sundry presence) are checked by the
// usecase before the transition is persisted.
package lifecycle

import (
	"errors"

	"printworks/internal/domain/entities"
)

var ErrGuardFailed = errors.New("lifecycle transition guard failed")

type Event string

const (
	EventStartReview          Event = "start_review"
	EventApprovePricing       Event = "approve_pricing"
	EventSendPaymentLink      Event = "send_payment_link"
	EventConfirmPayment       Event = "confirm_payment"
	EventReject               Event = "reject"
	EventCancel               Event = "cancel"
	EventAcceptWithoutPayment Event = "accept_without_payment"
)

var transitions = map[entities.Status]map[Event]entities.Status{
	entities.StatusPending: {
		EventStartReview: entities.StatusReviewed,
		EventReject:      entities.StatusRejected,
		EventCancel:      entities.StatusCancelled,
	},
	entities.StatusReviewed: {
		EventApprovePricing: entities.StatusPriced,
		EventReject:         entities.StatusRejected,
		EventCancel:         entities.StatusCancelled,
	},
	entities.StatusPriced: {
		EventSendPaymentLink:      entities.StatusPaymentSent,
		EventConfirmPayment:       entities.StatusPaid,
		EventAcceptWithoutPayment: entities.StatusAccepted,
		EventReject:               entities.StatusRejected,
		EventCancel:               entities.StatusCancelled,
	},
	// Standard orders enter here directly, skipping the quote review path.
	entities.StatusAwaitingPayment: {
		EventSendPaymentLink: entities.StatusPaymentSent,
		EventConfirmPayment:  entities.StatusPaid,
		EventCancel:          entities.StatusCancelled,
	},
	entities.StatusPaymentSent: {
		EventConfirmPayment: entities.StatusPaid,
		EventCancel:         entities.StatusCancelled,
	},
	entities.StatusAccepted: {
		EventCancel: entities.StatusCancelled,
	},
}

// Initial returns the entry status for a freshly submitted record of the
// given kind.
func Initial(kind entities.RequestKind) entities.Status {
	if kind == entities.KindStandardOrder {
		return entities.StatusAwaitingPayment
	}
	return entities.StatusPending
}

// Next resolves the target status for (current, event). Pairs outside the
// table fail with ErrGuardFailed.
func Next(current entities.Status, ev Event) (entities.Status, error) {
	if to, ok := transitions[current][ev]; ok {
		return to, nil
	}
	return current, ErrGuardFailed
}

// IsReplay reports whether the event is a harmless re-delivery rather than
// an illegal transition. Payment confirmations are delivered at least once
// by the processor; a second delivery against a paid record is a no-op.
func IsReplay(current entities.Status, ev Event) bool {
	return ev == EventConfirmPayment && current == entities.StatusPaid
}
