package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SundryTemplate is a reusable named sundry kept in a separate catalog.
// Persisting one is a side effect of adding a sundry, never part of
// lifecycle correctness.
type SundryTemplate struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CatalogProduct is the catalog collaborator's view of a stock product:
// an authoritative base price plus per-option price deltas.
type CatalogProduct struct {
	Name         string                     `json:"name"`
	BasePrice    decimal.Decimal            `json:"base_price"`
	OptionDeltas map[string]decimal.Decimal `json:"option_deltas,omitempty"`
}
