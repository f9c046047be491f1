package pricing

import (
	"errors"

	"printworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid pricing input")

// LineTotal exposes a line's own total for display. It is never an
// independent source of truth; Subtotal is always recomputed from the
// unit prices and quantities.
type LineTotal struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// Totals is the result of one pricing pass.
type Totals struct {
	Lines    []LineTotal     `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Compute derives subtotal/tax/total from line items, sundries and the tax
// policy. It is stateless and side-effect free; identical inputs always
// yield identical output.
//
// Tax is rounded to 2 decimal places, half-up, once on the aggregate.
// Rounding per line would accumulate drift across records.
func Compute(items []entities.LineItem, sundries []entities.Sundry, policy entities.TaxPolicy) (Totals, error) {
	subtotal := decimal.Zero
	lines := make([]LineTotal, 0, len(items)+len(sundries))

	for _, it := range items {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return Totals{}, ErrInvalidInput
		}
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines = append(lines, LineTotal{Name: it.Name, UnitPrice: it.UnitPrice, Quantity: it.Quantity, Total: lineTotal})
		subtotal = subtotal.Add(lineTotal)
	}
	for _, s := range sundries {
		if s.Quantity <= 0 || s.UnitPrice.IsNegative() {
			return Totals{}, ErrInvalidInput
		}
		lineTotal := s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
		lines = append(lines, LineTotal{Name: s.Description, UnitPrice: s.UnitPrice, Quantity: s.Quantity, Total: lineTotal})
		subtotal = subtotal.Add(lineTotal)
	}

	tax := decimal.Zero
	if policy.Applicable {
		if policy.Rate.IsNegative() {
			return Totals{}, ErrInvalidInput
		}
		tax = subtotal.Mul(policy.Rate).Round(2)
	}

	return Totals{
		Lines:    lines,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

// MinorUnits converts a monetary amount to integer minor currency units
// (e.g. pence), rounding consistently with Compute.
func MinorUnits(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}
