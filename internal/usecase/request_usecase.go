package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"printworks/internal/domain/entities"
	"printworks/internal/domain/lifecycle"
	"printworks/internal/domain/pricing"
	"printworks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound       = errors.New("request record not found")
	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidSubmission     = errors.New("invalid submission")
	ErrUnknownProduct        = errors.New("unknown catalog product")
	ErrUnknownProductOption  = errors.New("unknown catalog product option")
	ErrForbidden             = errors.New("caller role not permitted")
	ErrImmutableAfterPricing = errors.New("sundries immutable after pricing")
	ErrStaleState            = errors.New("request record modified concurrently")
	ErrConfirmationRequired  = errors.New("explicit confirmation required")
)

// SubmitLineItem is one requested product row. For standard orders the unit
// price is resolved from the catalog and any client-supplied price is
// ignored; quotes and price matches carry no line items at submission.
type SubmitLineItem struct {
	ProductName string
	Options     []string
	Quantity    int
}

// SubmitCommand creates a request record in its initial status.
type SubmitCommand struct {
	Kind       entities.RequestKind
	LineItems  []SubmitLineItem
	Quote      *entities.QuoteDetails
	PriceMatch *entities.PriceMatchDetails
}

// ApprovalCommand prices a reviewed quote. The tax policy given here is
// frozen on the record. PriceOverride, when set, is recorded as an explicit
// line item so the monetary invariants stay recomputable.
type ApprovalCommand struct {
	TaxApplicable bool
	TaxRate       decimal.Decimal
	PriceOverride *decimal.Decimal
}

// SundryCommand appends one ad hoc priced line to the sundry ledger.
type SundryCommand struct {
	Description    string
	Quantity       int
	UnitPrice      decimal.Decimal
	SaveAsTemplate bool
}

// IRequestUseCase exposes the request-record lifecycle operations.
type IRequestUseCase interface {
	Submit(ctx context.Context, caller entities.Caller, cmd SubmitCommand) (entities.RequestRecord, error)
	GetByID(ctx context.Context, caller entities.Caller, id string) (entities.RequestRecord, error)
	ListRecords(ctx context.Context, caller entities.Caller, filter interfaces.ListFilter) ([]entities.RequestRecord, error)
	StartReview(ctx context.Context, caller entities.Caller, id string) (entities.RequestRecord, error)
	PriceAndApprove(ctx context.Context, caller entities.Caller, id string, cmd ApprovalCommand) (entities.RequestRecord, error)
	Reject(ctx context.Context, caller entities.Caller, id, reason string) (entities.RequestRecord, error)
	Cancel(ctx context.Context, caller entities.Caller, id string) (entities.RequestRecord, error)
	AcceptWithoutPayment(ctx context.Context, caller entities.Caller, id string, confirmed bool) (entities.RequestRecord, error)
	AddSundry(ctx context.Context, caller entities.Caller, id string, cmd SundryCommand) (entities.RequestRecord, error)
}

type RequestUseCase struct {
	repo        interfaces.IRequestRepository
	catalog     interfaces.IProductCatalog
	templates   interfaces.ISundryTemplateRepository
	events      interfaces.IPaymentEventRepository
	standardTax entities.TaxPolicy
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

// NewRequestUseCase wires the request lifecycle. standardTax is the tax
// policy applied to catalog-priced standard orders at submission; quotes
// receive their policy at approval time.
func NewRequestUseCase(
	repo interfaces.IRequestRepository,
	catalog interfaces.IProductCatalog,
	templates interfaces.ISundryTemplateRepository,
	events interfaces.IPaymentEventRepository,
	standardTax entities.TaxPolicy,
) *RequestUseCase {
	return &RequestUseCase{repo: repo, catalog: catalog, templates: templates, events: events, standardTax: standardTax}
}

func (u *RequestUseCase) Submit(ctx context.Context, caller entities.Caller, cmd SubmitCommand) (entities.RequestRecord, error) {
	log.Printf("[request][usecase] submit start kind=%s user=%s items=%d", cmd.Kind, caller.UserID, len(cmd.LineItems))
	if caller.UserID == "" {
		return entities.RequestRecord{}, ErrForbidden
	}

	now := time.Now().UTC()
	rec := entities.RequestRecord{
		ID:            uuid.NewString(),
		Kind:          cmd.Kind,
		Status:        lifecycle.Initial(cmd.Kind),
		PaymentStatus: entities.PaymentStatusUnpaid,
		Subtotal:      decimal.Zero,
		Tax:           decimal.Zero,
		Total:         decimal.Zero,
		CustomerRef:   caller.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
		Version:       1,
	}

	switch cmd.Kind {
	case entities.KindStandardOrder:
		if len(cmd.LineItems) == 0 {
			return entities.RequestRecord{}, ErrInvalidSubmission
		}
		items, err := u.priceFromCatalog(ctx, cmd.LineItems)
		if err != nil {
			return entities.RequestRecord{}, err
		}
		totals, err := pricing.Compute(items, nil, u.standardTax)
		if err != nil {
			return entities.RequestRecord{}, err
		}
		rec.LineItems = items
		rec.TaxPolicy = u.standardTax
		rec.Subtotal = totals.Subtotal
		rec.Tax = totals.Tax
		rec.Total = totals.Total

	case entities.KindQuote:
		if cmd.Quote == nil || strings.TrimSpace(cmd.Quote.Specifications) == "" {
			return entities.RequestRecord{}, ErrInvalidSubmission
		}
		q := *cmd.Quote
		rec.QuoteDetails = &q

	case entities.KindPriceMatch:
		if cmd.PriceMatch == nil || strings.TrimSpace(cmd.PriceMatch.CompetitorName) == "" || cmd.PriceMatch.CompetitorPrice.IsNegative() {
			return entities.RequestRecord{}, ErrInvalidSubmission
		}
		pm := *cmd.PriceMatch
		rec.PriceMatchDetails = &pm

	default:
		return entities.RequestRecord{}, ErrInvalidSubmission
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		log.Printf("[request][usecase] submit create failed kind=%s err=%v", cmd.Kind, err)
		return entities.RequestRecord{}, err
	}
	log.Printf("[request][usecase] submit success request_id=%s kind=%s status=%s total=%s", created.ID, created.Kind, created.Status, created.Total)
	return created, nil
}

func (u *RequestUseCase) priceFromCatalog(ctx context.Context, items []SubmitLineItem) ([]entities.LineItem, error) {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.ProductName)
		if name == "" || it.Quantity <= 0 {
			return nil, ErrInvalidSubmission
		}
		product, err := u.catalog.GetPrice(ctx, name)
		if err != nil {
			return nil, err
		}
		if product.Name == "" {
			log.Printf("[request][usecase] unknown catalog product name=%q", name)
			return nil, ErrUnknownProduct
		}
		unit := product.BasePrice
		display := name
		for _, opt := range it.Options {
			delta, ok := product.OptionDeltas[opt]
			if !ok {
				log.Printf("[request][usecase] unknown product option product=%q option=%q", name, opt)
				return nil, ErrUnknownProductOption
			}
			unit = unit.Add(delta)
			display += " (" + opt + ")"
		}
		out = append(out, entities.LineItem{Name: display, UnitPrice: unit, Quantity: it.Quantity})
	}
	return out, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, caller entities.Caller, id string) (entities.RequestRecord, error) {
	rec, err := u.get(ctx, id)
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if !caller.Operator() && !caller.Owns(rec) {
		return entities.RequestRecord{}, ErrForbidden
	}
	return rec, nil
}

func (u *RequestUseCase) ListRecords(ctx context.Context, caller entities.Caller, filter interfaces.ListFilter) ([]entities.RequestRecord, error) {
	if !caller.Operator() {
		return nil, ErrForbidden
	}
	return u.repo.ListRecords(ctx, filter)
}

func (u *RequestUseCase) StartReview(ctx context.Context, caller entities.Caller, id string) (entities.RequestRecord, error) {
	if !caller.Operator() {
		return entities.RequestRecord{}, ErrForbidden
	}
	return u.transition(ctx, id, lifecycle.EventStartReview, func(rec *entities.RequestRecord) error {
		rec.AssignedOperatorRef = caller.UserID
		return nil
	})
}

func (u *RequestUseCase) PriceAndApprove(ctx context.Context, caller entities.Caller, id string, cmd ApprovalCommand) (entities.RequestRecord, error) {
	if !caller.Operator() {
		return entities.RequestRecord{}, ErrForbidden
	}
	return u.transition(ctx, id, lifecycle.EventApprovePricing, func(rec *entities.RequestRecord) error {
		// Guard: pricing needs at least one sundry or an explicit override.
		if len(rec.Sundries) == 0 && cmd.PriceOverride == nil {
			return lifecycle.ErrGuardFailed
		}
		if cmd.PriceOverride != nil {
			if cmd.PriceOverride.IsNegative() {
				return pricing.ErrInvalidInput
			}
			rec.LineItems = append(rec.LineItems, entities.LineItem{
				Name:      "Quoted price",
				UnitPrice: *cmd.PriceOverride,
				Quantity:  1,
			})
		}

		policy := entities.TaxPolicy{Applicable: cmd.TaxApplicable, Rate: cmd.TaxRate}
		totals, err := pricing.Compute(rec.LineItems, rec.Sundries, policy)
		if err != nil {
			return err
		}
		rec.TaxPolicy = policy
		rec.Subtotal = totals.Subtotal
		rec.Tax = totals.Tax
		rec.Total = totals.Total
		return nil
	})
}

func (u *RequestUseCase) Reject(ctx context.Context, caller entities.Caller, id, reason string) (entities.RequestRecord, error) {
	if !caller.Operator() {
		return entities.RequestRecord{}, ErrForbidden
	}
	return u.transition(ctx, id, lifecycle.EventReject, func(rec *entities.RequestRecord) error {
		rec.RejectReason = strings.TrimSpace(reason)
		return nil
	})
}

func (u *RequestUseCase) Cancel(ctx context.Context, caller entities.Caller, id string) (entities.RequestRecord, error) {
	rec, err := u.get(ctx, id)
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if !caller.Operator() && !caller.Owns(rec) {
		return entities.RequestRecord{}, ErrForbidden
	}
	return u.apply(ctx, rec, lifecycle.EventCancel, nil)
}

func (u *RequestUseCase) AcceptWithoutPayment(ctx context.Context, caller entities.Caller, id string, confirmed bool) (entities.RequestRecord, error) {
	if !caller.Operator() {
		return entities.RequestRecord{}, ErrForbidden
	}
	if !confirmed {
		return entities.RequestRecord{}, ErrConfirmationRequired
	}
	updated, err := u.transition(ctx, id, lifecycle.EventAcceptWithoutPayment, func(rec *entities.RequestRecord) error {
		rec.NoPaymentException = true
		rec.ProductionStatus = entities.ProductionNotStarted
		return nil
	})
	if err != nil {
		return entities.RequestRecord{}, err
	}

	// Audited exception: bypasses the payment gate, logged distinctly and
	// recorded on the payment audit trail for financial review.
	log.Printf("[request][usecase] AUDIT accept-without-payment request_id=%s operator=%s total=%s", updated.ID, caller.UserID, updated.Total)
	if u.events != nil {
		evt := entities.PaymentEvent{
			ID:        uuid.NewString(),
			RequestID: updated.ID,
			Date:      time.Now().UTC(),
			Status:    entities.PaymentEventException,
		}
		if _, err := u.events.Create(ctx, evt); err != nil {
			log.Printf("[request][usecase] audit event create failed request_id=%s err=%v", updated.ID, err)
		}
	}
	return updated, nil
}

func (u *RequestUseCase) AddSundry(ctx context.Context, caller entities.Caller, id string, cmd SundryCommand) (entities.RequestRecord, error) {
	if !caller.Operator() {
		return entities.RequestRecord{}, ErrForbidden
	}
	rec, err := u.get(ctx, id)
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if !rec.SundriesMutable() {
		return entities.RequestRecord{}, ErrImmutableAfterPricing
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" || cmd.Quantity <= 0 || cmd.UnitPrice.IsNegative() {
		return entities.RequestRecord{}, pricing.ErrInvalidInput
	}

	sundry := entities.Sundry{
		ID:          uuid.NewString(),
		Description: description,
		UnitPrice:   cmd.UnitPrice,
		Quantity:    cmd.Quantity,
		AddedAt:     time.Now().UTC(),
	}
	rec.Sundries = append(rec.Sundries, sundry)
	rec.UpdatedAt = sundry.AddedAt

	saved, err := u.repo.Save(ctx, rec, rec.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.RequestRecord{}, ErrStaleState
		}
		return entities.RequestRecord{}, err
	}
	log.Printf("[request][usecase] sundry added request_id=%s sundry_id=%s description=%q", saved.ID, sundry.ID, description)

	// Template persistence is a side effect; failure never unwinds the
	// append.
	if cmd.SaveAsTemplate && u.templates != nil {
		t := entities.SundryTemplate{
			ID:          uuid.NewString(),
			Description: description,
			UnitPrice:   cmd.UnitPrice,
			CreatedAt:   sundry.AddedAt,
		}
		if _, err := u.templates.Create(ctx, t); err != nil {
			log.Printf("[request][usecase] sundry template create failed description=%q err=%v", description, err)
		}
	}
	return saved, nil
}

func (u *RequestUseCase) get(ctx context.Context, id string) (entities.RequestRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RequestRecord{}, ErrInvalidRequestID
	}
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if rec.ID == "" {
		return entities.RequestRecord{}, ErrRequestNotFound
	}
	return rec, nil
}

func (u *RequestUseCase) transition(ctx context.Context, id string, ev lifecycle.Event, mutate func(*entities.RequestRecord) error) (entities.RequestRecord, error) {
	rec, err := u.get(ctx, id)
	if err != nil {
		return entities.RequestRecord{}, err
	}
	return u.apply(ctx, rec, ev, mutate)
}

// apply runs one atomic read-validate-write transition: the lifecycle table
// resolves the target status, the mutator adjusts record fields, and the
// compare-and-swap write serializes concurrent attempts on the same record.
func (u *RequestUseCase) apply(ctx context.Context, rec entities.RequestRecord, ev lifecycle.Event, mutate func(*entities.RequestRecord) error) (entities.RequestRecord, error) {
	next, err := lifecycle.Next(rec.Status, ev)
	if err != nil {
		log.Printf("[request][usecase] transition rejected request_id=%s status=%s event=%s", rec.ID, rec.Status, ev)
		return entities.RequestRecord{}, err
	}
	from := rec.Status
	rec.Status = next
	if mutate != nil {
		if err := mutate(&rec); err != nil {
			return entities.RequestRecord{}, err
		}
	}
	rec.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, rec, rec.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[request][usecase] transition lost race request_id=%s event=%s", rec.ID, ev)
			return entities.RequestRecord{}, ErrStaleState
		}
		return entities.RequestRecord{}, err
	}
	log.Printf("[request][usecase] transition applied request_id=%s event=%s from=%s to=%s", saved.ID, ev, from, saved.Status)
	return saved, nil
}
