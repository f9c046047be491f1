package lifecycle

import (
	"errors"
	"testing"

	"printworks/internal/domain/entities"
)

func TestInitial(t *testing.T) {
	if got := Initial(entities.KindStandardOrder); got != entities.StatusAwaitingPayment {
		t.Fatalf("expected awaiting_payment, got %s", got)
	}
	if got := Initial(entities.KindQuote); got != entities.StatusPending {
		t.Fatalf("expected pending, got %s", got)
	}
	if got := Initial(entities.KindPriceMatch); got != entities.StatusPending {
		t.Fatalf("expected pending, got %s", got)
	}
}

func TestNext_LegalTransitions(t *testing.T) {
	cases := []struct {
		from entities.Status
		ev   Event
		to   entities.Status
	}{
		{entities.StatusPending, EventStartReview, entities.StatusReviewed},
		{entities.StatusPending, EventReject, entities.StatusRejected},
		{entities.StatusPending, EventCancel, entities.StatusCancelled},
		{entities.StatusReviewed, EventApprovePricing, entities.StatusPriced},
		{entities.StatusReviewed, EventReject, entities.StatusRejected},
		{entities.StatusPriced, EventSendPaymentLink, entities.StatusPaymentSent},
		{entities.StatusPriced, EventConfirmPayment, entities.StatusPaid},
		{entities.StatusPriced, EventAcceptWithoutPayment, entities.StatusAccepted},
		{entities.StatusPriced, EventReject, entities.StatusRejected},
		{entities.StatusAwaitingPayment, EventSendPaymentLink, entities.StatusPaymentSent},
		{entities.StatusAwaitingPayment, EventConfirmPayment, entities.StatusPaid},
		{entities.StatusPaymentSent, EventConfirmPayment, entities.StatusPaid},
		{entities.StatusAccepted, EventCancel, entities.StatusCancelled},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+" "+string(tc.ev), func(t *testing.T) {
			got, err := Next(tc.from, tc.ev)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, got)
			}
		})
	}
}

// Every (status, event) pair outside the table must be rejected with
// ErrGuardFailed and leave the status unchanged.
func TestNext_Totality(t *testing.T) {
	statuses := []entities.Status{
		entities.StatusPending, entities.StatusReviewed, entities.StatusPriced,
		entities.StatusAccepted, entities.StatusPaymentSent, entities.StatusAwaitingPayment,
		entities.StatusPaid, entities.StatusRejected, entities.StatusCancelled,
	}
	events := []Event{
		EventStartReview, EventApprovePricing, EventSendPaymentLink,
		EventConfirmPayment, EventReject, EventCancel, EventAcceptWithoutPayment,
	}

	for _, from := range statuses {
		for _, ev := range events {
			_, legal := transitions[from][ev]
			got, err := Next(from, ev)
			if legal {
				if err != nil {
					t.Fatalf("(%s,%s) expected legal, got %v", from, ev, err)
				}
				continue
			}
			if !errors.Is(err, ErrGuardFailed) {
				t.Fatalf("(%s,%s) expected ErrGuardFailed, got %v", from, ev, err)
			}
			if got != from {
				t.Fatalf("(%s,%s) status changed to %s on rejected event", from, ev, got)
			}
		}
	}
}

func TestNext_TerminalStatesAreFrozen(t *testing.T) {
	for _, from := range []entities.Status{entities.StatusPaid, entities.StatusRejected, entities.StatusCancelled} {
		if len(transitions[from]) != 0 {
			t.Fatalf("expected no transitions out of %s", from)
		}
		if !from.Terminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
	}
}

func TestIsReplay(t *testing.T) {
	if !IsReplay(entities.StatusPaid, EventConfirmPayment) {
		t.Fatalf("confirm_payment on paid must be a replay")
	}
	if IsReplay(entities.StatusPaid, EventCancel) {
		t.Fatalf("cancel on paid is not a replay")
	}
	if IsReplay(entities.StatusPriced, EventConfirmPayment) {
		t.Fatalf("confirm_payment on priced is a real transition")
	}
}
