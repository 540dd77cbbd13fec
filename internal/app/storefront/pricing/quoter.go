// Package pricing joins a session's cart with the catalog and prices it.
package pricing

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Quoter prices session carts against the catalog.
type Quoter struct {
	catalog    contracts.Catalog
	calculator *domain.PricingCalculator
	logger     *zap.Logger
}

// NewQuoter creates a new Quoter.
func NewQuoter(catalog contracts.Catalog, calculator *domain.PricingCalculator, logger *zap.Logger) *Quoter {
	return &Quoter{
		catalog:    catalog,
		calculator: calculator,
		logger:     logger,
	}
}

// Calculator returns the underlying calculator.
func (q *Quoter) Calculator() *domain.PricingCalculator {
	return q.calculator
}

// Quote prices the session's cart, coupon and shipping choice. Lines whose
// product is missing from the catalog are left out of the totals and logged.
func (q *Quoter) Quote(ctx context.Context, session *domain.Session) (*domain.PricingResult, error) {
	result, _, err := q.QuoteWithProducts(ctx, session)
	return result, err
}

// QuoteWithProducts is Quote that also returns the resolved cart products.
func (q *Quoter) QuoteWithProducts(ctx context.Context, session *domain.Session) (*domain.PricingResult, domain.ProductMap, error) {
	items := session.Items()

	products := domain.ProductMap{}
	if len(items) > 0 {
		var err error
		products, err = q.catalog.GetProducts(ctx, session.CartProductIDs())
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to load cart products")
		}
	}

	result := q.calculator.Calculate(domain.PricingInput{
		Items:      items,
		Products:   products,
		CouponCode: session.CouponCode(),
		Shipping:   session.Shipping(),
	})

	if len(result.UnresolvedProductIDs) > 0 {
		q.logger.Warn("cart references products missing from the catalog",
			zap.String("session_id", session.ID()),
			zap.Strings("product_ids", result.UnresolvedProductIDs),
			zap.Error(domain.ErrUnresolvedProduct),
		)
	}

	return result, products, nil
}
