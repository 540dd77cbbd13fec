package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T) *PricingCalculator {
	t.Helper()
	book, err := NewCouponBook(DefaultCoupons()...)
	require.NoError(t, err)
	return NewPricingCalculator(DefaultPricingPolicy(), book)
}

func productAt(id string, cents int64) *Product {
	return &Product{ID: id, Price: NewMoneyFromCents(cents), Stock: 10}
}

func TestPricingCalculator_Calculate(t *testing.T) {
	pc := newTestCalculator(t)

	t.Run("SAVE20 on 200.00", func(t *testing.T) {
		products := ProductMap{"1": productAt("1", 10000)}
		result := pc.Calculate(PricingInput{
			Items:      []CartLineItem{{ProductID: "1", Quantity: 2}},
			Products:   products,
			CouponCode: "SAVE20",
			Shipping:   ShippingStandard,
		})

		assert.Equal(t, "200.00", result.Subtotal.String())
		assert.Equal(t, "40.00", result.Discount.String())
		assert.Equal(t, "12.80", result.Tax.String())
		assert.True(t, result.ShippingCost.IsZero())
		assert.Equal(t, "172.80", result.Total.String())
		assert.Equal(t, int64(200), result.LoyaltyPointsEarned)
		assert.Equal(t, "SAVE20", result.AppliedCoupon)
		assert.Equal(t, int64(2), result.ItemCount)
	})

	t.Run("coupon match is case-insensitive", func(t *testing.T) {
		result := pc.Calculate(PricingInput{
			Items:      []CartLineItem{{ProductID: "1", Quantity: 1}},
			Products:   ProductMap{"1": productAt("1", 5000)},
			CouponCode: "save20",
		})
		assert.Equal(t, "10.00", result.Discount.String())
	})

	t.Run("unknown coupon yields zero discount", func(t *testing.T) {
		result := pc.Calculate(PricingInput{
			Items:      []CartLineItem{{ProductID: "1", Quantity: 1}},
			Products:   ProductMap{"1": productAt("1", 5000)},
			CouponCode: "BOGUS",
		})
		assert.True(t, result.Discount.IsZero())
		assert.Empty(t, result.AppliedCoupon)
	})

	t.Run("empty cart", func(t *testing.T) {
		result := pc.Calculate(PricingInput{Shipping: ShippingStandard})

		assert.True(t, result.Subtotal.IsZero())
		assert.True(t, result.Discount.IsZero())
		assert.True(t, result.Tax.IsZero())
		assert.Equal(t, "15.00", result.ShippingCost.String())
		assert.True(t, result.Total.Equals(result.ShippingCost))
		assert.Equal(t, int64(0), result.LoyaltyPointsEarned)
	})

	t.Run("unresolved products are skipped and reported", func(t *testing.T) {
		result := pc.Calculate(PricingInput{
			Items: []CartLineItem{
				{ProductID: "1", Quantity: 1},
				{ProductID: "ghost", Quantity: 3},
				{ProductID: "ghost", Quantity: 1, Size: "L"},
			},
			Products: ProductMap{"1": productAt("1", 2550)},
		})

		assert.Equal(t, "25.50", result.Subtotal.String())
		assert.Equal(t, []string{"ghost"}, result.UnresolvedProductIDs)
		assert.Len(t, result.Lines, 1)
		assert.Equal(t, int64(1), result.ItemCount)
	})

	t.Run("points floor the subtotal", func(t *testing.T) {
		result := pc.Calculate(PricingInput{
			Items:    []CartLineItem{{ProductID: "1", Quantity: 3}},
			Products: ProductMap{"1": productAt("1", 3333)},
		})
		assert.Equal(t, "99.99", result.Subtotal.String())
		assert.Equal(t, int64(99), result.LoyaltyPointsEarned)
	})

	t.Run("coupon and shipping do not change points", func(t *testing.T) {
		in := PricingInput{
			Items:    []CartLineItem{{ProductID: "1", Quantity: 1}},
			Products: ProductMap{"1": productAt("1", 15075)},
		}
		plain := pc.Calculate(in)

		in.CouponCode = "SAVE20"
		in.Shipping = ShippingExpress
		discounted := pc.Calculate(in)

		assert.Equal(t, plain.LoyaltyPointsEarned, discounted.LoyaltyPointsEarned)
		assert.Equal(t, int64(150), discounted.LoyaltyPointsEarned)
	})
}

func TestPricingCalculator_TotalIdentity(t *testing.T) {
	pc := newTestCalculator(t)
	products := ProductMap{
		"1": productAt("1", 1999),
		"2": productAt("2", 4550),
		"3": productAt("3", 123456),
	}

	carts := [][]CartLineItem{
		nil,
		{{ProductID: "1", Quantity: 1}},
		{{ProductID: "1", Quantity: 3}, {ProductID: "2", Quantity: 1}},
		{{ProductID: "3", Quantity: 2}, {ProductID: "2", Quantity: 7}},
	}

	for _, items := range carts {
		for _, coupon := range []string{"", "SAVE20", "NOPE"} {
			for _, shipping := range []ShippingOption{ShippingStandard, ShippingExpress} {
				r := pc.Calculate(PricingInput{Items: items, Products: products, CouponCode: coupon, Shipping: shipping})

				want := r.Subtotal.Subtract(r.Discount).Add(r.ShippingCost).Add(r.Tax)
				assert.True(t, r.Total.Equals(want), "total identity for %v/%s/%s", items, coupon, shipping)

				wantTax := r.Subtotal.Subtract(r.Discount).MultiplyByRat(big.NewRat(8, 100))
				assert.True(t, r.Tax.Equals(wantTax))
			}
		}
	}
}

func TestPricingCalculator_ShippingCost(t *testing.T) {
	pc := newTestCalculator(t)

	tests := []struct {
		name     string
		subtotal *Money
		option   ShippingOption
		want     string
	}{
		{"standard above threshold is free", NewMoneyFromCents(10001), ShippingStandard, "0.00"},
		{"standard at threshold pays fee", NewMoneyFromCents(10000), ShippingStandard, "15.00"},
		{"standard below threshold pays fee", NewMoneyFromCents(5000), ShippingStandard, "15.00"},
		{"express below threshold", NewMoneyFromCents(5000), ShippingExpress, "15.00"},
		{"express above threshold", NewMoneyFromCents(500000), ShippingExpress, "15.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pc.ShippingCost(tt.subtotal, tt.option).String())
		})
	}
}

func TestPricingCalculator_AmountToFreeShipping(t *testing.T) {
	pc := newTestCalculator(t)

	assert.Equal(t, "40.01", pc.AmountToFreeShipping(NewMoneyFromCents(6000)).String())
	assert.True(t, pc.AmountToFreeShipping(NewMoneyFromCents(10050)).IsZero())

	t.Run("agrees with shipping cost", func(t *testing.T) {
		for _, cents := range []int64{0, 9999, 10000, 10001, 25000} {
			subtotal := NewMoneyFromCents(cents)
			gap := pc.AmountToFreeShipping(subtotal)
			charged := pc.ShippingCost(subtotal, ShippingStandard).IsPositive()

			assert.Equal(t, charged, gap.IsPositive(), "subtotal %s", subtotal)
			if charged {
				assert.True(t, pc.ShippingCost(subtotal.Add(gap), ShippingStandard).IsZero(), "subtotal %s", subtotal)
			}
		}
	})

	t.Run("at threshold still needs a cent", func(t *testing.T) {
		assert.Equal(t, "0.01", pc.AmountToFreeShipping(NewMoneyFromCents(10000)).String())
	})
}

func TestPricingCalculator_CustomPolicy(t *testing.T) {
	book, err := NewCouponBook(Coupon{Code: "half", Rate: big.NewRat(1, 2)})
	require.NoError(t, err)

	policy := PricingPolicy{
		TaxRate:               big.NewRat(1, 10),
		FreeShippingThreshold: NewMoneyFromCents(5000),
		StandardFee:           NewMoneyFromCents(500),
		ExpressFee:            NewMoneyFromCents(2500),
	}
	pc := NewPricingCalculator(policy, book)

	r := pc.Calculate(PricingInput{
		Items:      []CartLineItem{{ProductID: "1", Quantity: 1}},
		Products:   ProductMap{"1": productAt("1", 4000)},
		CouponCode: "HALF",
		Shipping:   ShippingExpress,
	})

	assert.Equal(t, "20.00", r.Discount.String())
	assert.Equal(t, "2.00", r.Tax.String())
	assert.Equal(t, "25.00", r.ShippingCost.String())
	assert.Equal(t, "47.00", r.Total.String())
}
