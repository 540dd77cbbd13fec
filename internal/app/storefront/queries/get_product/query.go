package get_product

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new get product query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{
		catalog: catalog,
	}
}

// Execute retrieves a product by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	if req.ProductID == "" {
		return nil, domain.ErrEmptyProductID
	}
	return q.catalog.GetProduct(ctx, req.ProductID)
}
