package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

const (
	DefaultProductLimit = 50
	MaxProductLimit     = 200
)

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	Category    string
	InStockOnly bool
	Limit       int // clamped to [1, MaxProductLimit]; 0 means DefaultProductLimit
}

// NormalizedLimit applies the default and the cap.
func (f ProductFilter) NormalizedLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultProductLimit
	case f.Limit > MaxProductLimit:
		return MaxProductLimit
	default:
		return f.Limit
	}
}

// Catalog is the read-only product source. Pricing never writes to it.
type Catalog interface {
	// ListProducts returns products in catalog order.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)

	// GetProduct returns domain.ErrProductNotFound for unknown IDs.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// GetProducts resolves a set of IDs. Unknown IDs are absent from the map, not an error.
	GetProducts(ctx context.Context, ids []string) (domain.ProductMap, error)
}
