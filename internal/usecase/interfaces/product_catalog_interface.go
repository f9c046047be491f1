package interfaces

import (
	"context"

	"printworks/internal/domain/entities"
)

// IProductCatalog supplies the authoritative price of a stock product plus
// its configuration-option price deltas. Consulted only when validating
// standard-order line items; quotes are manually priced.
//
// Unknown products return a zero record and a nil error.

type IProductCatalog interface {
	GetPrice(ctx context.Context, productName string) (entities.CatalogProduct, error)
}
