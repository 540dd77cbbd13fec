package list_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Request contains filtering parameters for listing products.
type Request struct {
	Category    string
	InStockOnly bool
	Limit       int // default 50, max 200
}

// Query handles the list products query.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new list products query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute lists catalog products in catalog order.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Product, error) {
	return q.catalog.ListProducts(ctx, contracts.ProductFilter{
		Category:    req.Category,
		InStockOnly: req.InStockOnly,
		Limit:       req.Limit,
	})
}
