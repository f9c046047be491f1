package usecase

import (
	"context"
	"errors"
	"testing"

	"printworks/internal/domain/entities"
	"printworks/internal/domain/lifecycle"
	"printworks/internal/domain/pricing"
	"printworks/internal/usecase/interfaces"
	mock_interfaces "printworks/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	operator = entities.Caller{UserID: "op-1", Role: entities.RoleOperator}
	customer = entities.Caller{UserID: "cust-1", Role: entities.RoleCustomer}
)

func standardTax() entities.TaxPolicy {
	return entities.TaxPolicy{Applicable: true, Rate: dec("0.20")}
}

func TestRequestUseCase_Submit(t *testing.T) {
	t.Run("anonymous caller", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil, standardTax())
		_, err := uc.Submit(context.Background(), entities.Caller{}, SubmitCommand{Kind: entities.KindQuote})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil, standardTax())
		_, err := uc.Submit(context.Background(), customer, SubmitCommand{Kind: "subscription"})
		if !errors.Is(err, ErrInvalidSubmission) {
			t.Fatalf("expected ErrInvalidSubmission, got %v", err)
		}
	})

	t.Run("standard order priced from catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		uc := NewRequestUseCase(repo, catalog, nil, nil, standardTax())

		catalog.EXPECT().GetPrice(gomock.Any(), "Flyers").Return(entities.CatalogProduct{
			Name:         "Flyers",
			BasePrice:    dec("40.00"),
			OptionDeltas: map[string]decimal.Decimal{"gloss": dec("10.00")},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RequestRecord{})).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord) (entities.RequestRecord, error) {
				if r.Status != entities.StatusAwaitingPayment {
					t.Fatalf("expected awaiting_payment, got %s", r.Status)
				}
				if r.PaymentStatus != entities.PaymentStatusUnpaid {
					t.Fatalf("expected unpaid, got %s", r.PaymentStatus)
				}
				if len(r.LineItems) != 1 || !r.LineItems[0].UnitPrice.Equal(dec("50.00")) {
					t.Fatalf("unexpected line items: %+v", r.LineItems)
				}
				if !r.Subtotal.Equal(dec("50.00")) || !r.Tax.Equal(dec("10.00")) || !r.Total.Equal(dec("60.00")) {
					t.Fatalf("unexpected totals: %s %s %s", r.Subtotal, r.Tax, r.Total)
				}
				if r.Version != 1 || r.CustomerRef != "cust-1" {
					t.Fatalf("unexpected record: %+v", r)
				}
				return r, nil
			},
		)

		res, err := uc.Submit(context.Background(), customer, SubmitCommand{
			Kind:      entities.KindStandardOrder,
			LineItems: []SubmitLineItem{{ProductName: "Flyers", Options: []string{"gloss"}, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("standard order unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		uc := NewRequestUseCase(nil, catalog, nil, nil, standardTax())

		catalog.EXPECT().GetPrice(gomock.Any(), "Banners").Return(entities.CatalogProduct{}, nil)

		_, err := uc.Submit(context.Background(), customer, SubmitCommand{
			Kind:      entities.KindStandardOrder,
			LineItems: []SubmitLineItem{{ProductName: "Banners", Quantity: 2}},
		})
		if !errors.Is(err, ErrUnknownProduct) {
			t.Fatalf("expected ErrUnknownProduct, got %v", err)
		}
	})

	t.Run("standard order unknown option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)
		uc := NewRequestUseCase(nil, catalog, nil, nil, standardTax())

		catalog.EXPECT().GetPrice(gomock.Any(), "Flyers").Return(entities.CatalogProduct{Name: "Flyers", BasePrice: dec("40")}, nil)

		_, err := uc.Submit(context.Background(), customer, SubmitCommand{
			Kind:      entities.KindStandardOrder,
			LineItems: []SubmitLineItem{{ProductName: "Flyers", Options: []string{"holographic"}, Quantity: 1}},
		})
		if !errors.Is(err, ErrUnknownProductOption) {
			t.Fatalf("expected ErrUnknownProductOption, got %v", err)
		}
	})

	t.Run("standard order without items", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil, standardTax())
		_, err := uc.Submit(context.Background(), customer, SubmitCommand{Kind: entities.KindStandardOrder})
		if !errors.Is(err, ErrInvalidSubmission) {
			t.Fatalf("expected ErrInvalidSubmission, got %v", err)
		}
	})

	t.Run("quote enters pending without total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RequestRecord{})).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord) (entities.RequestRecord, error) {
				if r.Status != entities.StatusPending {
					t.Fatalf("expected pending, got %s", r.Status)
				}
				if !r.Total.IsZero() {
					t.Fatalf("quote must not carry a total before pricing, got %s", r.Total)
				}
				if r.QuoteDetails == nil || r.QuoteDetails.Specifications != "500 glossy flyers, A5" {
					t.Fatalf("unexpected quote details: %+v", r.QuoteDetails)
				}
				return r, nil
			},
		)

		_, err := uc.Submit(context.Background(), customer, SubmitCommand{
			Kind:  entities.KindQuote,
			Quote: &entities.QuoteDetails{Specifications: "500 glossy flyers, A5"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("quote without specifications", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil, standardTax())
		_, err := uc.Submit(context.Background(), customer, SubmitCommand{Kind: entities.KindQuote, Quote: &entities.QuoteDetails{Specifications: "  "}})
		if !errors.Is(err, ErrInvalidSubmission) {
			t.Fatalf("expected ErrInvalidSubmission, got %v", err)
		}
	})

	t.Run("price match needs competitor", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil, standardTax())
		_, err := uc.Submit(context.Background(), customer, SubmitCommand{Kind: entities.KindPriceMatch, PriceMatch: &entities.PriceMatchDetails{}})
		if !errors.Is(err, ErrInvalidSubmission) {
			t.Fatalf("expected ErrInvalidSubmission, got %v", err)
		}
	})
}

func TestRequestUseCase_StartReview(t *testing.T) {
	t.Run("customer forbidden", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil, standardTax())
		_, err := uc.StartReview(context.Background(), customer, "req-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("guard failed outside pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPriced, Version: 3}, nil)

		_, err := uc.StartReview(context.Background(), operator, "req-1")
		if !errors.Is(err, lifecycle.ErrGuardFailed) {
			t.Fatalf("expected ErrGuardFailed, got %v", err)
		}
	})

	t.Run("success assigns operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPending, Version: 1}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.RequestRecord{}), int64(1)).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord, _ int64) (entities.RequestRecord, error) {
				if r.Status != entities.StatusReviewed || r.AssignedOperatorRef != "op-1" {
					t.Fatalf("unexpected record: %+v", r)
				}
				r.Version = 2
				return r, nil
			},
		)

		res, err := uc.StartReview(context.Background(), operator, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusReviewed {
			t.Fatalf("expected reviewed, got %s", res.Status)
		}
	})
}

func TestRequestUseCase_PriceAndApprove(t *testing.T) {
	t.Run("no sundries and no override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusReviewed, Version: 2}, nil)

		_, err := uc.PriceAndApprove(context.Background(), operator, "req-1", ApprovalCommand{TaxApplicable: true, TaxRate: dec("0.20")})
		if !errors.Is(err, lifecycle.ErrGuardFailed) {
			t.Fatalf("expected ErrGuardFailed, got %v", err)
		}
	})

	t.Run("sundry quote priced with frozen tax policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		rec := entities.RequestRecord{
			ID:       "req-1",
			Kind:     entities.KindQuote,
			Status:   entities.StatusReviewed,
			Sundries: []entities.Sundry{{ID: "s-1", Description: "Rush Fee", UnitPrice: dec("25.00"), Quantity: 1}},
			Version:  2,
		}
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(rec, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.RequestRecord{}), int64(2)).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord, _ int64) (entities.RequestRecord, error) {
				if r.Status != entities.StatusPriced {
					t.Fatalf("expected priced, got %s", r.Status)
				}
				if !r.Subtotal.Equal(dec("25.00")) || !r.Tax.Equal(dec("5.00")) || !r.Total.Equal(dec("30.00")) {
					t.Fatalf("unexpected totals: %s %s %s", r.Subtotal, r.Tax, r.Total)
				}
				if !r.TaxPolicy.Applicable || !r.TaxPolicy.Rate.Equal(dec("0.20")) {
					t.Fatalf("tax policy not frozen: %+v", r.TaxPolicy)
				}
				r.Version = 3
				return r, nil
			},
		)

		res, err := uc.PriceAndApprove(context.Background(), operator, "req-1", ApprovalCommand{TaxApplicable: true, TaxRate: dec("0.20")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Total.Equal(dec("30.00")) {
			t.Fatalf("expected total 30.00, got %s", res.Total)
		}
	})

	t.Run("price override recorded as line item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusReviewed, Version: 2}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.RequestRecord{}), int64(2)).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord, _ int64) (entities.RequestRecord, error) {
				if len(r.LineItems) != 1 || r.LineItems[0].Name != "Quoted price" || !r.LineItems[0].UnitPrice.Equal(dec("99.50")) {
					t.Fatalf("unexpected line items: %+v", r.LineItems)
				}
				if !r.Total.Equal(dec("99.50")) {
					t.Fatalf("expected total 99.50, got %s", r.Total)
				}
				return r, nil
			},
		)

		override := dec("99.50")
		_, err := uc.PriceAndApprove(context.Background(), operator, "req-1", ApprovalCommand{PriceOverride: &override})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost race maps to stale state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		rec := entities.RequestRecord{
			ID:       "req-1",
			Status:   entities.StatusReviewed,
			Sundries: []entities.Sundry{{ID: "s-1", Description: "Fee", UnitPrice: dec("5"), Quantity: 1}},
			Version:  2,
		}
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(rec, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).Return(entities.RequestRecord{}, interfaces.ErrVersionConflict)

		_, err := uc.PriceAndApprove(context.Background(), operator, "req-1", ApprovalCommand{})
		if !errors.Is(err, ErrStaleState) {
			t.Fatalf("expected ErrStaleState, got %v", err)
		}
	})
}

func TestRequestUseCase_RejectAndCancel(t *testing.T) {
	t.Run("reject records reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPending, Version: 1}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord, _ int64) (entities.RequestRecord, error) {
				if r.Status != entities.StatusRejected || r.RejectReason != "out of scope" {
					t.Fatalf("unexpected record: %+v", r)
				}
				return r, nil
			},
		)

		_, err := uc.Reject(context.Background(), operator, "req-1", " out of scope ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer cancels own record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPending, CustomerRef: "cust-1", Version: 1}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord, _ int64) (entities.RequestRecord, error) {
				return r, nil
			},
		)

		res, err := uc.Cancel(context.Background(), customer, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})

	t.Run("customer cannot cancel another customer's record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPending, CustomerRef: "cust-2", Version: 1}, nil)

		_, err := uc.Cancel(context.Background(), customer, "req-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("cancel rejected on terminal record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPaid, Version: 5}, nil)

		_, err := uc.Cancel(context.Background(), operator, "req-1")
		if !errors.Is(err, lifecycle.ErrGuardFailed) {
			t.Fatalf("expected ErrGuardFailed, got %v", err)
		}
	})
}

func TestRequestUseCase_AcceptWithoutPayment(t *testing.T) {
	t.Run("requires explicit confirmation", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil, standardTax())
		_, err := uc.AcceptWithoutPayment(context.Background(), operator, "req-1", false)
		if !errors.Is(err, ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
	})

	t.Run("flags record and writes audit event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		events := mock_interfaces.NewMockIPaymentEventRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, events, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPriced, Total: dec("30.00"), Version: 3}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord, _ int64) (entities.RequestRecord, error) {
				if r.Status != entities.StatusAccepted || !r.NoPaymentException {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.ProductionStatus != entities.ProductionNotStarted {
					t.Fatalf("expected production tracker initialized, got %q", r.ProductionStatus)
				}
				return r, nil
			},
		)
		events.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentEvent{})).DoAndReturn(
			func(_ context.Context, e entities.PaymentEvent) (entities.PaymentEvent, error) {
				if e.RequestID != "req-1" || e.Status != entities.PaymentEventException {
					t.Fatalf("unexpected audit event: %+v", e)
				}
				return e, nil
			},
		)

		_, err := uc.AcceptWithoutPayment(context.Background(), operator, "req-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRequestUseCase_AddSundry(t *testing.T) {
	t.Run("immutable after pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPriced, Version: 3}, nil)

		_, err := uc.AddSundry(context.Background(), operator, "req-1", SundryCommand{Description: "Rush Fee", Quantity: 1, UnitPrice: dec("25")})
		if !errors.Is(err, ErrImmutableAfterPricing) {
			t.Fatalf("expected ErrImmutableAfterPricing, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusReviewed, Version: 2}, nil).Times(2)

		_, err := uc.AddSundry(context.Background(), operator, "req-1", SundryCommand{Description: "Fee", Quantity: 0, UnitPrice: dec("5")})
		if !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		_, err = uc.AddSundry(context.Background(), operator, "req-1", SundryCommand{Description: "Fee", Quantity: 1, UnitPrice: dec("-5")})
		if !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("append and save template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		templates := mock_interfaces.NewMockISundryTemplateRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, templates, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusReviewed, Version: 2}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord, _ int64) (entities.RequestRecord, error) {
				if len(r.Sundries) != 1 || r.Sundries[0].Description != "Rush Fee" || r.Sundries[0].ID == "" {
					t.Fatalf("unexpected sundries: %+v", r.Sundries)
				}
				if !r.Total.IsZero() {
					t.Fatalf("totals must not change before pricing, got %s", r.Total)
				}
				return r, nil
			},
		)
		templates.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SundryTemplate{})).DoAndReturn(
			func(_ context.Context, tpl entities.SundryTemplate) (entities.SundryTemplate, error) {
				if tpl.Description != "Rush Fee" || !tpl.UnitPrice.Equal(dec("25.00")) {
					t.Fatalf("unexpected template: %+v", tpl)
				}
				return tpl, nil
			},
		)

		_, err := uc.AddSundry(context.Background(), operator, "req-1", SundryCommand{Description: " Rush Fee ", Quantity: 1, UnitPrice: dec("25.00"), SaveAsTemplate: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("template failure does not fail the append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		templates := mock_interfaces.NewMockISundryTemplateRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, templates, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", Status: entities.StatusPending, Version: 1}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(
			func(_ context.Context, r entities.RequestRecord, _ int64) (entities.RequestRecord, error) {
				return r, nil
			},
		)
		templates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SundryTemplate{}, errors.New("db"))

		_, err := uc.AddSundry(context.Background(), operator, "req-1", SundryCommand{Description: "Fee", Quantity: 1, UnitPrice: dec("5"), SaveAsTemplate: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRequestUseCase_GetAndList(t *testing.T) {
	t.Run("customer reads own record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", CustomerRef: "cust-1"}, nil)

		res, err := uc.GetByID(context.Background(), customer, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "req-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("customer cannot read another's record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{ID: "req-1", CustomerRef: "cust-2"}, nil)

		_, err := uc.GetByID(context.Background(), customer, "req-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil, nil, nil, standardTax())

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RequestRecord{}, nil)

		_, err := uc.GetByID(context.Background(), operator, "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("list is operator only", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, nil, standardTax())
		_, err := uc.ListRecords(context.Background(), customer, interfaces.ListFilter{})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
