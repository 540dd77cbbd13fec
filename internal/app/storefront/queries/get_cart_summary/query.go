package get_cart_summary

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/pricing"
)

// Request identifies the session to summarise.
type Request struct {
	SessionID string
}

// Line is a cart line joined with its catalog product. Product is nil when
// the catalog no longer has it; such lines are excluded from the totals.
type Line struct {
	Item    domain.CartLineItem
	Product *domain.Product
}

// Response is the cart page: lines, totals and the shopper's choices.
type Response struct {
	SessionID        string
	Lines            []Line
	Pricing          *domain.PricingResult
	CouponCode       string
	CouponRecognized bool
	Shipping         domain.ShippingOption
	Wishlist         []string
}

// Query handles the cart summary query.
type Query struct {
	sessions contracts.SessionRepository
	quoter   *pricing.Quoter
}

// NewQuery creates a new cart summary query.
func NewQuery(sessions contracts.SessionRepository, quoter *pricing.Quoter) *Query {
	return &Query{
		sessions: sessions,
		quoter:   quoter,
	}
}

// Execute prices the session's cart.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	var resp *Response
	err := q.sessions.View(ctx, req.SessionID, func(s *domain.Session) error {
		result, products, err := q.quoter.QuoteWithProducts(ctx, s)
		if err != nil {
			return err
		}

		items := s.Items()
		lines := make([]Line, 0, len(items))
		for _, item := range items {
			lines = append(lines, Line{Item: item, Product: products[item.ProductID]})
		}

		resp = &Response{
			SessionID:        s.ID(),
			Lines:            lines,
			Pricing:          result,
			CouponCode:       s.CouponCode(),
			CouponRecognized: result.AppliedCoupon != "",
			Shipping:         s.Shipping(),
			Wishlist:         s.Wishlist(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
