package domain

import (
	"math/big"
)

// PricingPolicy holds the storefront's pricing constants.
type PricingPolicy struct {
	TaxRate               *big.Rat
	FreeShippingThreshold *Money // standard shipping is free strictly above this subtotal
	StandardFee           *Money
	ExpressFee            *Money
}

// DefaultPricingPolicy returns 8% tax, free standard shipping over 100.00 and 15.00 flat fees.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		TaxRate:               big.NewRat(8, 100),
		FreeShippingThreshold: NewMoneyFromCents(10000),
		StandardFee:           NewMoneyFromCents(1500),
		ExpressFee:            NewMoneyFromCents(1500),
	}
}

// LineTotal is the extended price of one resolved line item.
type LineTotal struct {
	Item      CartLineItem
	UnitPrice *Money
	Total     *Money
}

// PricingResult is derived on every call and never cached.
type PricingResult struct {
	Subtotal            *Money
	Discount            *Money
	ShippingCost        *Money
	Tax                 *Money
	Total               *Money
	LoyaltyPointsEarned int64

	AppliedCoupon        string // canonical code, "" when none matched
	AmountToFreeShipping *Money // zero once standard shipping is free
	ItemCount            int64
	Lines                []LineTotal
	UnresolvedProductIDs []string
}

// PricingInput is everything the calculator needs for one quote.
type PricingInput struct {
	Items      []CartLineItem
	Products   ProductLookup
	CouponCode string
	Shipping   ShippingOption
}

// PricingCalculator is a domain service computing order totals.
// It has no side effects; callers apply loyalty points from the result.
type PricingCalculator struct {
	policy  PricingPolicy
	coupons *CouponBook
}

// NewPricingCalculator creates a calculator for the given policy and coupon book.
func NewPricingCalculator(policy PricingPolicy, coupons *CouponBook) *PricingCalculator {
	return &PricingCalculator{policy: policy, coupons: coupons}
}

// Policy returns the calculator's pricing constants.
func (pc *PricingCalculator) Policy() PricingPolicy {
	return pc.policy
}

// Coupons returns the coupon book used for lookups.
func (pc *PricingCalculator) Coupons() *CouponBook {
	return pc.coupons
}

// Calculate prices a cart.
// Formula: total = subtotal - discount + shipping + (subtotal - discount) * taxRate
func (pc *PricingCalculator) Calculate(in PricingInput) *PricingResult {
	result := &PricingResult{
		Lines: make([]LineTotal, 0, len(in.Items)),
	}

	subtotal := ZeroMoney()
	for _, item := range in.Items {
		var product *Product
		var ok bool
		if in.Products != nil {
			product, ok = in.Products.LookupProduct(item.ProductID)
		}
		if !ok {
			result.UnresolvedProductIDs = appendUnique(result.UnresolvedProductIDs, item.ProductID)
			continue
		}

		lineTotal := product.Price.MultiplyByInt(item.Quantity)
		subtotal = subtotal.Add(lineTotal)
		result.ItemCount += item.Quantity
		result.Lines = append(result.Lines, LineTotal{
			Item:      item,
			UnitPrice: product.Price.Copy(),
			Total:     lineTotal,
		})
	}

	discount := ZeroMoney()
	if coupon, ok := pc.coupons.Lookup(in.CouponCode); ok {
		discount = pc.CalculateDiscountAmount(subtotal, coupon.Rate)
		result.AppliedCoupon = coupon.Code
	}

	shipping := pc.ShippingCost(subtotal, in.Shipping)
	taxable := subtotal.Subtract(discount)
	tax := taxable.MultiplyByRat(pc.policy.TaxRate)

	result.Subtotal = subtotal
	result.Discount = discount
	result.ShippingCost = shipping
	result.Tax = tax
	result.Total = taxable.Add(shipping).Add(tax)
	result.LoyaltyPointsEarned = subtotal.Floor()
	result.AmountToFreeShipping = pc.AmountToFreeShipping(subtotal)

	return result
}

// CalculateDiscountAmount returns subtotal * rate.
func (pc *PricingCalculator) CalculateDiscountAmount(subtotal *Money, rate *big.Rat) *Money {
	return subtotal.MultiplyByRat(rate)
}

// ShippingCost returns the express fee for express shipping. Standard shipping
// is free when subtotal exceeds the threshold and costs the flat fee otherwise.
func (pc *PricingCalculator) ShippingCost(subtotal *Money, option ShippingOption) *Money {
	if option == ShippingExpress {
		return pc.policy.ExpressFee.Copy()
	}
	if subtotal.GreaterThan(pc.policy.FreeShippingThreshold) {
		return ZeroMoney()
	}
	return pc.policy.StandardFee.Copy()
}

// AmountToFreeShipping is the smallest extra spend that makes standard
// shipping free: the gap to the threshold plus one cent, since the threshold
// itself still pays the fee. Zero once shipping is free.
func (pc *PricingCalculator) AmountToFreeShipping(subtotal *Money) *Money {
	if subtotal.GreaterThan(pc.policy.FreeShippingThreshold) {
		return ZeroMoney()
	}
	return pc.policy.FreeShippingThreshold.Subtract(subtotal).Add(NewMoneyFromCents(1))
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
