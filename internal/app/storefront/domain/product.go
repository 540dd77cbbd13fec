package domain

import "github.com/pkg/errors"

// Product is a read-only catalog record. Pricing never mutates it.
type Product struct {
	ID            string
	Name          string
	Brand         string
	SKU           string
	Category      string
	Description   string
	Price         *Money
	OriginalPrice *Money // nil when the product is not marked down
	Stock         int64
	IsAIGenerated bool
	IsLimited     bool
	Rating        float64
	Reviews       int64
	Sizes         []string
	Colors        []string
	Tags          []string
}

// Validate checks the catalog invariants.
func (p *Product) Validate() error {
	if p.ID == "" {
		return errors.Wrap(ErrInvalidProduct, "id is required")
	}
	if p.Price == nil || p.Price.IsNegative() {
		return errors.Wrapf(ErrInvalidProduct, "product %s: price must be >= 0", p.ID)
	}
	if p.OriginalPrice != nil && !p.OriginalPrice.GreaterThan(p.Price) {
		return errors.Wrapf(ErrInvalidProduct, "product %s: original price must exceed price", p.ID)
	}
	if p.Stock < 0 {
		return errors.Wrapf(ErrInvalidProduct, "product %s: stock cannot be negative", p.ID)
	}
	return nil
}

// InStock returns true if at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// IsOnSale returns true when the product carries a higher original price.
func (p *Product) IsOnSale() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

// ProductLookup resolves product IDs for pricing.
type ProductLookup interface {
	LookupProduct(id string) (*Product, bool)
}

// ProductMap is an in-memory ProductLookup keyed by product ID.
type ProductMap map[string]*Product

// LookupProduct implements ProductLookup.
func (m ProductMap) LookupProduct(id string) (*Product, bool) {
	p, ok := m[id]
	return p, ok && p != nil
}
