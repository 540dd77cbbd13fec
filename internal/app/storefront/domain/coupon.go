package domain

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// Coupon maps a code to a fractional discount on the subtotal.
type Coupon struct {
	Code string
	Rate *big.Rat // 0.20 for 20% off
}

// CouponBook is the lookup table of known coupon codes.
type CouponBook struct {
	coupons map[string]Coupon
}

// DefaultCoupons returns the storefront's built-in codes.
func DefaultCoupons() []Coupon {
	return []Coupon{
		{Code: "SAVE20", Rate: big.NewRat(20, 100)},
	}
}

// NewCouponBook builds a book, rejecting blank codes and rates outside (0, 1].
func NewCouponBook(coupons ...Coupon) (*CouponBook, error) {
	book := &CouponBook{coupons: make(map[string]Coupon, len(coupons))}
	one := big.NewRat(1, 1)

	for _, c := range coupons {
		code := normalizeCode(c.Code)
		if code == "" || c.Rate == nil || c.Rate.Sign() <= 0 || c.Rate.Cmp(one) > 0 {
			return nil, errors.Wrapf(ErrInvalidCoupon, "coupon %q", c.Code)
		}
		book.coupons[code] = Coupon{Code: code, Rate: new(big.Rat).Set(c.Rate)}
	}

	return book, nil
}

// Lookup finds a coupon by code, ignoring case and surrounding whitespace.
func (b *CouponBook) Lookup(code string) (Coupon, bool) {
	if b == nil {
		return Coupon{}, false
	}
	c, ok := b.coupons[normalizeCode(code)]
	return c, ok
}

// Len returns the number of known codes.
func (b *CouponBook) Len() int {
	if b == nil {
		return 0
	}
	return len(b.coupons)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
