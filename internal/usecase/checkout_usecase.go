package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"printworks/internal/domain/entities"
	"printworks/internal/domain/lifecycle"
	"printworks/internal/domain/pricing"
	"printworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAlreadyLinked           = errors.New("checkout session already linked")
	ErrNotPriced               = errors.New("request record not priced")
	ErrUnknownPaymentReference = errors.New("unknown payment reference")
)

// Notification is the processor's payment-completed message, normalized by
// the webhook handler. SessionID carries the processor's session/preference
// id; ExternalReference carries our request id when the processor echoes it
// back.
type Notification struct {
	EventType         string
	SessionID         string
	ExternalReference string
	Raw               json.RawMessage
}

// CheckoutResult is what the operator UI needs to hand the customer over to
// the processor.
type CheckoutResult struct {
	SessionID   string
	RedirectURL string
}

// ICheckoutUseCase is the payment bridge: it turns an approved, priced
// record into a checkout session and consumes paid notifications.
type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, caller entities.Caller, requestID string) (CheckoutResult, error)
	HandleNotification(ctx context.Context, n Notification) error
	ListPaymentEvents(ctx context.Context, caller entities.Caller, requestID string) ([]entities.PaymentEvent, error)
}

type CheckoutUseCase struct {
	repo       interfaces.IRequestRepository
	events     interfaces.IPaymentEventRepository
	gateway    interfaces.ICheckoutGateway
	currency   string
	successURL string
	cancelURL  string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	repo interfaces.IRequestRepository,
	events interfaces.IPaymentEventRepository,
	gateway interfaces.ICheckoutGateway,
	currency, successURL, cancelURL string,
) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, events: events, gateway: gateway, currency: currency, successURL: successURL, cancelURL: cancelURL}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, caller entities.Caller, requestID string) (CheckoutResult, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return CheckoutResult{}, ErrInvalidRequestID
	}
	if u.gateway == nil {
		return CheckoutResult{}, errors.New("checkout gateway not configured")
	}
	log.Printf("[checkout][usecase] create start request_id=%s user=%s", requestID, caller.UserID)

	rec, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if rec.ID == "" {
		return CheckoutResult{}, ErrRequestNotFound
	}
	if !caller.Operator() && !caller.Owns(rec) {
		return CheckoutResult{}, ErrForbidden
	}
	if rec.ExternalPaymentRef != "" {
		log.Printf("[checkout][usecase] duplicate session attempt request_id=%s ref=%s", rec.ID, rec.ExternalPaymentRef)
		return CheckoutResult{}, ErrAlreadyLinked
	}
	if rec.Total.Sign() <= 0 {
		return CheckoutResult{}, ErrNotPriced
	}
	next, err := lifecycle.Next(rec.Status, lifecycle.EventSendPaymentLink)
	if err != nil {
		return CheckoutResult{}, err
	}

	session, err := u.gateway.CreateSession(ctx, u.buildCheckoutRequest(rec))
	if err != nil {
		log.Printf("[checkout][usecase] gateway create failed request_id=%s err=%v", rec.ID, err)
		return CheckoutResult{}, err
	}

	rec.Status = next
	rec.ExternalPaymentRef = session.ID
	rec.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Save(ctx, rec, rec.Version); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			// The session was opened but never linked; it expires unused at
			// the processor. The retry after re-read opens a fresh one.
			log.Printf("[checkout][usecase] lost race after session open request_id=%s session_id=%s", rec.ID, session.ID)
			return CheckoutResult{}, ErrStaleState
		}
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] create success request_id=%s session_id=%s", rec.ID, session.ID)
	return CheckoutResult{SessionID: session.ID, RedirectURL: session.RedirectURL}, nil
}

// buildCheckoutRequest maps the record to processor line items: one per line
// item, one per sundry, plus a single aggregate tax line. Stored totals keep
// aggregate rounding; the wire format is reconciled here only.
func (u *CheckoutUseCase) buildCheckoutRequest(rec entities.RequestRecord) interfaces.CheckoutRequest {
	lines := make([]interfaces.CheckoutLine, 0, len(rec.LineItems)+len(rec.Sundries)+1)
	for _, it := range rec.LineItems {
		lines = append(lines, interfaces.CheckoutLine{
			Title:           it.Name,
			Quantity:        it.Quantity,
			UnitAmountMinor: pricing.MinorUnits(it.UnitPrice),
		})
	}
	for _, s := range rec.Sundries {
		lines = append(lines, interfaces.CheckoutLine{
			Title:           s.Description,
			Quantity:        s.Quantity,
			UnitAmountMinor: pricing.MinorUnits(s.UnitPrice),
		})
	}
	if rec.TaxPolicy.Applicable && !rec.Tax.IsZero() {
		lines = append(lines, interfaces.CheckoutLine{
			Title:           "Tax",
			Quantity:        1,
			UnitAmountMinor: pricing.MinorUnits(rec.Tax),
		})
	}
	return interfaces.CheckoutRequest{
		RequestID:        rec.ID,
		AmountMinorUnits: pricing.MinorUnits(rec.Total),
		Currency:         u.currency,
		Lines:            lines,
		SuccessURL:       u.successURL,
		CancelURL:        u.cancelURL,
		Metadata:         map[string]any{"request_id": rec.ID, "kind": string(rec.Kind)},
	}
}

// HandleNotification resolves a processor notification to exactly one record
// and applies the paid transition idempotently. Unknown references are
// logged and dropped; the webhook handler answers the processor with success
// so unrelated traffic is not redelivered forever.
func (u *CheckoutUseCase) HandleNotification(ctx context.Context, n Notification) error {
	log.Printf("[checkout][usecase] notification start event_type=%s session_id=%s external_reference=%s", n.EventType, n.SessionID, n.ExternalReference)

	rec, err := u.resolve(ctx, n)
	if err != nil {
		return err
	}

	if lifecycle.IsReplay(rec.Status, lifecycle.EventConfirmPayment) {
		log.Printf("[checkout][usecase] replayed notification request_id=%s", rec.ID)
		u.audit(ctx, rec.ID, entities.PaymentEventReplayed, n.Raw)
		return nil
	}

	next, err := lifecycle.Next(rec.Status, lifecycle.EventConfirmPayment)
	if err != nil {
		log.Printf("[checkout][usecase] notification rejected request_id=%s status=%s", rec.ID, rec.Status)
		return err
	}

	now := time.Now().UTC()
	rec.Status = next
	rec.PaymentStatus = entities.PaymentStatusPaid
	if rec.PaidAt == nil {
		rec.PaidAt = &now
	}
	rec.ProductionStatus = entities.ProductionNotStarted
	if rec.ExternalPaymentRef == "" {
		rec.ExternalPaymentRef = n.SessionID
	}
	rec.UpdatedAt = now

	if _, err := u.repo.Save(ctx, rec, rec.Version); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			// Redelivery will find the record in its post-race state and
			// either replay or fail the guard cleanly.
			log.Printf("[checkout][usecase] notification lost race request_id=%s", rec.ID)
			return ErrStaleState
		}
		return err
	}
	log.Printf("[checkout][usecase] payment confirmed request_id=%s session_id=%s", rec.ID, rec.ExternalPaymentRef)
	u.audit(ctx, rec.ID, entities.PaymentEventApplied, n.Raw)
	return nil
}

func (u *CheckoutUseCase) resolve(ctx context.Context, n Notification) (entities.RequestRecord, error) {
	if ref := strings.TrimSpace(n.SessionID); ref != "" {
		rec, err := u.repo.GetByPaymentRef(ctx, ref)
		if err != nil {
			return entities.RequestRecord{}, err
		}
		if rec.ID != "" {
			return rec, nil
		}
	}
	if id := strings.TrimSpace(n.ExternalReference); id != "" {
		rec, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.RequestRecord{}, err
		}
		if rec.ID != "" {
			return rec, nil
		}
	}
	log.Printf("[checkout][usecase] unknown payment reference session_id=%s external_reference=%s", n.SessionID, n.ExternalReference)
	return entities.RequestRecord{}, ErrUnknownPaymentReference
}

func (u *CheckoutUseCase) audit(ctx context.Context, requestID string, status entities.PaymentEventStatus, raw json.RawMessage) {
	if u.events == nil {
		return
	}
	var parsed map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			log.Printf("[checkout][usecase] audit payload unmarshal failed request_id=%s err=%v", requestID, err)
		}
	}
	evt := entities.PaymentEvent{
		ID:                 uuid.NewString(),
		RequestID:          requestID,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: raw,
		ProviderPayload:    parsed,
	}
	if _, err := u.events.Create(ctx, evt); err != nil {
		log.Printf("[checkout][usecase] audit event create failed request_id=%s err=%v", requestID, err)
	}
}

func (u *CheckoutUseCase) ListPaymentEvents(ctx context.Context, caller entities.Caller, requestID string) ([]entities.PaymentEvent, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	if !caller.Operator() {
		return nil, ErrForbidden
	}
	return u.events.ListByRequestID(ctx, requestID)
}
