package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponBook(t *testing.T) {
	t.Run("lookup ignores case and whitespace", func(t *testing.T) {
		book, err := NewCouponBook(DefaultCoupons()...)
		require.NoError(t, err)

		for _, code := range []string{"SAVE20", "save20", " Save20 "} {
			c, ok := book.Lookup(code)
			require.True(t, ok, code)
			assert.Equal(t, "SAVE20", c.Code)
			assert.Equal(t, 0, c.Rate.Cmp(big.NewRat(1, 5)))
		}
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		book, err := NewCouponBook(DefaultCoupons()...)
		require.NoError(t, err)

		_, ok := book.Lookup("SAVE30")
		assert.False(t, ok)
		_, ok = book.Lookup("")
		assert.False(t, ok)
	})

	t.Run("nil book finds nothing", func(t *testing.T) {
		var book *CouponBook
		_, ok := book.Lookup("SAVE20")
		assert.False(t, ok)
		assert.Equal(t, 0, book.Len())
	})

	t.Run("rejects invalid rates", func(t *testing.T) {
		for _, rate := range []*big.Rat{nil, big.NewRat(0, 1), big.NewRat(-1, 10), big.NewRat(11, 10)} {
			_, err := NewCouponBook(Coupon{Code: "X", Rate: rate})
			assert.ErrorIs(t, err, ErrInvalidCoupon)
		}
	})

	t.Run("rejects blank code", func(t *testing.T) {
		_, err := NewCouponBook(Coupon{Code: "  ", Rate: big.NewRat(1, 10)})
		assert.ErrorIs(t, err, ErrInvalidCoupon)
	})
}

func TestParseShippingOption(t *testing.T) {
	tests := []struct {
		in      string
		want    ShippingOption
		wantErr bool
	}{
		{"", ShippingStandard, false},
		{"standard", ShippingStandard, false},
		{"EXPRESS", ShippingExpress, false},
		{" express ", ShippingExpress, false},
		{"overnight", "", true},
	}

	for _, tt := range tests {
		got, err := ParseShippingOption(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownShippingOption)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestProduct_Validate(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		p := &Product{ID: "1", Price: NewMoneyFromCents(5000), OriginalPrice: NewMoneyFromCents(7500)}
		assert.NoError(t, p.Validate())
		assert.True(t, p.IsOnSale())
		assert.False(t, p.InStock())
	})

	t.Run("original price must exceed price", func(t *testing.T) {
		p := &Product{ID: "1", Price: NewMoneyFromCents(5000), OriginalPrice: NewMoneyFromCents(5000)}
		assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
	})

	t.Run("negative price", func(t *testing.T) {
		p := &Product{ID: "1", Price: NewMoneyFromCents(-1)}
		assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
	})

	t.Run("negative stock", func(t *testing.T) {
		p := &Product{ID: "1", Price: ZeroMoney(), Stock: -1}
		assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
	})

	t.Run("missing id", func(t *testing.T) {
		p := &Product{Price: ZeroMoney()}
		assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
	})
}
