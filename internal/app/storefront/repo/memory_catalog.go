package repo

import (
	"context"

	"github.com/pkg/errors"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// MemoryCatalog is an immutable in-process catalog.
type MemoryCatalog struct {
	products []*domain.Product
	byID     domain.ProductMap
}

// NewMemoryCatalog validates products and indexes them by ID, keeping order.
func NewMemoryCatalog(products []*domain.Product) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		products: make([]*domain.Product, 0, len(products)),
		byID:     make(domain.ProductMap, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, errors.Wrapf(domain.ErrInvalidProduct, "duplicate product id %s", p.ID)
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}

	return c, nil
}

// ListProducts implements contracts.Catalog.
func (c *MemoryCatalog) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*domain.Product, error) {
	limit := filter.NormalizedLimit()
	out := make([]*domain.Product, 0, min(limit, len(c.products)))

	for _, p := range c.products {
		if len(out) == limit {
			break
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.InStockOnly && !p.InStock() {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// GetProduct implements contracts.Catalog.
func (c *MemoryCatalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, errors.Wrapf(domain.ErrProductNotFound, "id %s", id)
	}
	return p, nil
}

// GetProducts implements contracts.Catalog.
func (c *MemoryCatalog) GetProducts(ctx context.Context, ids []string) (domain.ProductMap, error) {
	out := make(domain.ProductMap, len(ids))
	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

// Len returns the number of products.
func (c *MemoryCatalog) Len() int {
	return len(c.products)
}
