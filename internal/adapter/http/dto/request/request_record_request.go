package request

import (
	"errors"
	"strings"
	"time"

	"printworks/internal/domain/entities"
	"printworks/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidKind       = errors.New("invalid request kind")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrMissingQuote      = errors.New("quote details required")
	ErrMissingPriceMatch = errors.New("price match details required")
)

type SubmitLineItemRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	Options     []string `json:"options"`
	Quantity    int      `json:"quantity" binding:"required"`
}

type QuoteDetailsRequest struct {
	Specifications string `json:"specifications"`
	Deadline       string `json:"deadline"`
}

type PriceMatchDetailsRequest struct {
	CompetitorName  string `json:"competitor_name"`
	CompetitorPrice string `json:"competitor_price"`
	ProofURL        string `json:"proof_url"`
}

// SubmitRequest covers all three intake shapes: standard orders carry line
// items, quotes carry specifications, price matches carry competitor proof.
type SubmitRequest struct {
	Kind       string                    `json:"kind" binding:"required"`
	LineItems  []SubmitLineItemRequest   `json:"line_items"`
	Quote      *QuoteDetailsRequest      `json:"quote"`
	PriceMatch *PriceMatchDetailsRequest `json:"price_match"`
}

func (r SubmitRequest) ToCommand() (usecase.SubmitCommand, error) {
	kind := entities.RequestKind(strings.TrimSpace(r.Kind))
	switch kind {
	case entities.KindStandardOrder, entities.KindQuote, entities.KindPriceMatch:
	default:
		return usecase.SubmitCommand{}, ErrInvalidKind
	}

	cmd := usecase.SubmitCommand{Kind: kind}
	for _, li := range r.LineItems {
		cmd.LineItems = append(cmd.LineItems, usecase.SubmitLineItem{
			ProductName: strings.TrimSpace(li.ProductName),
			Options:     li.Options,
			Quantity:    li.Quantity,
		})
	}

	if r.Quote != nil {
		q := entities.QuoteDetails{Specifications: strings.TrimSpace(r.Quote.Specifications)}
		if d := strings.TrimSpace(r.Quote.Deadline); d != "" {
			deadline, err := time.Parse(time.RFC3339, d)
			if err != nil {
				return usecase.SubmitCommand{}, ErrMissingQuote
			}
			q.Deadline = &deadline
		}
		cmd.Quote = &q
	}

	if r.PriceMatch != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(r.PriceMatch.CompetitorPrice))
		if err != nil {
			return usecase.SubmitCommand{}, ErrMissingPriceMatch
		}
		cmd.PriceMatch = &entities.PriceMatchDetails{
			CompetitorName:  strings.TrimSpace(r.PriceMatch.CompetitorName),
			CompetitorPrice: price,
			ProofURL:        strings.TrimSpace(r.PriceMatch.ProofURL),
		}
	}

	return cmd, nil
}

// ApprovalRequest prices a reviewed record. Amounts travel as strings so the
// wire format never loses cents to float rounding.
type ApprovalRequest struct {
	TaxApplicable bool   `json:"tax_applicable"`
	TaxRate       string `json:"tax_rate"`
	PriceOverride string `json:"price_override"`
}

func (r ApprovalRequest) ToCommand() (usecase.ApprovalCommand, error) {
	cmd := usecase.ApprovalCommand{TaxApplicable: r.TaxApplicable}

	if rate := strings.TrimSpace(r.TaxRate); rate != "" {
		d, err := decimal.NewFromString(rate)
		if err != nil || d.Sign() < 0 {
			return usecase.ApprovalCommand{}, ErrInvalidAmount
		}
		cmd.TaxRate = d
	}

	if override := strings.TrimSpace(r.PriceOverride); override != "" {
		d, err := decimal.NewFromString(override)
		if err != nil || d.Sign() <= 0 {
			return usecase.ApprovalCommand{}, ErrInvalidAmount
		}
		cmd.PriceOverride = &d
	}

	return cmd, nil
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AcceptWithoutPaymentRequest struct {
	Confirm bool `json:"confirm"`
}

type SundryRequest struct {
	Description    string `json:"description" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	UnitPrice      string `json:"unit_price" binding:"required"`
	SaveAsTemplate bool   `json:"save_as_template"`
}

func (r SundryRequest) ToCommand() (usecase.SundryCommand, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(r.UnitPrice))
	if err != nil {
		return usecase.SundryCommand{}, ErrInvalidAmount
	}
	return usecase.SundryCommand{
		Description:    strings.TrimSpace(r.Description),
		Quantity:       r.Quantity,
		UnitPrice:      price,
		SaveAsTemplate: r.SaveAsTemplate,
	}, nil
}

type ProductionAdvanceRequest struct {
	Target   string `json:"target" binding:"required"`
	Override bool   `json:"override"`
}
