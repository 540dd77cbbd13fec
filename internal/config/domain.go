package config

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Policy parses the pricing constants.
func (p PricingConfig) Policy() (domain.PricingPolicy, error) {
	taxRate, ok := new(big.Rat).SetString(strings.TrimSpace(p.TaxRate))
	if !ok || taxRate.Sign() < 0 {
		return domain.PricingPolicy{}, errors.Errorf("taxRate %q is not a non-negative decimal", p.TaxRate)
	}

	threshold, err := parseAmount("freeShippingThreshold", p.FreeShippingThreshold)
	if err != nil {
		return domain.PricingPolicy{}, err
	}
	standard, err := parseAmount("standardFee", p.StandardFee)
	if err != nil {
		return domain.PricingPolicy{}, err
	}
	express, err := parseAmount("expressFee", p.ExpressFee)
	if err != nil {
		return domain.PricingPolicy{}, err
	}

	return domain.PricingPolicy{
		TaxRate:               taxRate,
		FreeShippingThreshold: threshold,
		StandardFee:           standard,
		ExpressFee:            express,
	}, nil
}

// CouponBook builds the coupon table from code -> decimal rate.
func (p PricingConfig) CouponBook() (*domain.CouponBook, error) {
	coupons := make([]domain.Coupon, 0, len(p.Coupons))
	for code, rate := range p.Coupons {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(rate))
		if !ok {
			return nil, errors.Wrapf(domain.ErrInvalidCoupon, "coupon %q rate %q", code, rate)
		}
		coupons = append(coupons, domain.Coupon{Code: code, Rate: r})
	}
	return domain.NewCouponBook(coupons...)
}

// TierTable builds the loyalty tier table.
func (l LoyaltyConfig) TierTable() (*domain.TierTable, error) {
	tiers := make([]domain.MembershipTier, 0, len(l.Tiers))
	for _, t := range l.Tiers {
		tiers = append(tiers, domain.MembershipTier{Name: t.Name, MinPoints: t.MinPoints, Perks: t.Perks})
	}
	return domain.NewTierTable(tiers)
}

// Wheel builds the spin wheel.
func (s SpinWheelConfig) Wheel() (*domain.SpinWheel, error) {
	segments := make([]domain.WheelSegment, 0, len(s.Segments))
	for _, seg := range s.Segments {
		segments = append(segments, domain.WheelSegment{
			Label: seg.Label,
			Kind:  domain.PrizeKind(strings.ToLower(seg.Kind)),
			Value: seg.Value,
			Color: seg.Color,
		})
	}
	return domain.NewSpinWheel(segments)
}

func parseAmount(name, value string) (*domain.Money, error) {
	m, err := domain.MoneyFromDecimalString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	if m.IsNegative() {
		return nil, errors.Wrapf(domain.ErrInvalidAmount, "%s is negative", name)
	}
	return m, nil
}

func defaultPricing() PricingConfig {
	policy := domain.DefaultPricingPolicy()
	coupons := make(map[string]string)
	for _, c := range domain.DefaultCoupons() {
		coupons[c.Code] = c.Rate.FloatString(2)
	}
	return PricingConfig{
		TaxRate:               policy.TaxRate.FloatString(2),
		FreeShippingThreshold: policy.FreeShippingThreshold.String(),
		StandardFee:           policy.StandardFee.String(),
		ExpressFee:            policy.ExpressFee.String(),
		Coupons:               coupons,
	}
}

func defaultTiers() []TierConfig {
	tiers := domain.DefaultTiers()
	out := make([]TierConfig, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, TierConfig{Name: t.Name, MinPoints: t.MinPoints, Perks: t.Perks})
	}
	return out
}

func defaultSegments() []SegmentConfig {
	segments := domain.DefaultWheelSegments()
	out := make([]SegmentConfig, 0, len(segments))
	for _, s := range segments {
		out = append(out, SegmentConfig{Label: s.Label, Kind: string(s.Kind), Value: s.Value, Color: s.Color})
	}
	return out
}
