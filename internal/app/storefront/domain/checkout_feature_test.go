package domain

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

type checkoutFeatureContext struct {
	products   ProductMap
	book       *CouponBook
	calculator *PricingCalculator
	session    *Session
	result     *PricingResult
}

func (c *checkoutFeatureContext) reset() error {
	book, err := NewCouponBook(DefaultCoupons()...)
	if err != nil {
		return err
	}
	tiers, err := NewTierTable(DefaultTiers())
	if err != nil {
		return err
	}
	session, err := NewSession("feature-session", tiers, clock.NewMockClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		return err
	}

	c.products = ProductMap{}
	c.book = book
	c.calculator = NewPricingCalculator(DefaultPricingPolicy(), book)
	c.session = session
	c.result = nil
	return nil
}

func (c *checkoutFeatureContext) theCatalogContains(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		price, err := MoneyFromDecimalString(row.Cells[1].Value)
		if err != nil {
			return err
		}
		id := row.Cells[0].Value
		c.products[id] = &Product{ID: id, Price: price, Stock: 10}
	}
	return nil
}

func (c *checkoutFeatureContext) theCartHoldsOfProduct(quantity int, productID string) error {
	return c.session.AddItem(LineKey{ProductID: productID}, int64(quantity))
}

func (c *checkoutFeatureContext) theCouponIsApplied(code string) error {
	c.session.ApplyCoupon(code, c.book)
	return nil
}

func (c *checkoutFeatureContext) quote() *PricingResult {
	return c.calculator.Calculate(PricingInput{
		Items:      c.session.Items(),
		Products:   c.products,
		CouponCode: c.session.CouponCode(),
		Shipping:   c.session.Shipping(),
	})
}

func (c *checkoutFeatureContext) theCartIsPricedWithShipping(option string) error {
	shipping, err := ParseShippingOption(option)
	if err != nil {
		return err
	}
	if err := c.session.SelectShipping(shipping); err != nil {
		return err
	}
	c.result = c.quote()
	return nil
}

func (c *checkoutFeatureContext) theShopperChecksOut() error {
	_, err := c.session.PlaceOrder("order-feature", c.quote())
	return err
}

func (c *checkoutFeatureContext) theShopperHasBeenAwardedPoints(points int) error {
	return c.session.AwardPoints(int64(points), "feature")
}

func expectMoney(field string, got *Money, want string) error {
	if got.String() != want {
		return fmt.Errorf("expected %s %s, got %s", field, want, got.String())
	}
	return nil
}

func (c *checkoutFeatureContext) theSubtotalIs(want string) error {
	return expectMoney("subtotal", c.result.Subtotal, want)
}

func (c *checkoutFeatureContext) theDiscountIs(want string) error {
	return expectMoney("discount", c.result.Discount, want)
}

func (c *checkoutFeatureContext) theTaxIs(want string) error {
	return expectMoney("tax", c.result.Tax, want)
}

func (c *checkoutFeatureContext) theShippingCostIs(want string) error {
	return expectMoney("shipping cost", c.result.ShippingCost, want)
}

func (c *checkoutFeatureContext) theTotalIs(want string) error {
	return expectMoney("total", c.result.Total, want)
}

func (c *checkoutFeatureContext) loyaltyPointsAreEarned(points int) error {
	if c.result.LoyaltyPointsEarned != int64(points) {
		return fmt.Errorf("expected %d points earned, got %d", points, c.result.LoyaltyPointsEarned)
	}
	return nil
}

func (c *checkoutFeatureContext) theShopperHasPoints(points int) error {
	if c.session.Points() != int64(points) {
		return fmt.Errorf("expected balance %d, got %d", points, c.session.Points())
	}
	return nil
}

func (c *checkoutFeatureContext) theShoppersTierIs(name string) error {
	tier, err := c.session.CurrentTier()
	if err != nil {
		return err
	}
	if tier.Name != name {
		return fmt.Errorf("expected tier %q, got %q", name, tier.Name)
	}
	return nil
}

func (c *checkoutFeatureContext) progressToTheNextTierIsPercent(want string) error {
	progress, err := c.session.TierProgress()
	if err != nil {
		return err
	}
	if got := fmt.Sprintf("%.2f", progress.Percentage); got != want {
		return fmt.Errorf("expected progress %s%%, got %s%%", want, got)
	}
	return nil
}

func InitializeCheckoutScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutFeatureContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Given steps
	ctx.Step(`^the catalog contains$`, tc.theCatalogContains)
	ctx.Step(`^the cart holds (\d+) of product "([^"]*)"$`, tc.theCartHoldsOfProduct)
	ctx.Step(`^the coupon "([^"]*)" is applied$`, tc.theCouponIsApplied)
	ctx.Step(`^the shopper has been awarded (\d+) points$`, tc.theShopperHasBeenAwardedPoints)

	// When steps
	ctx.Step(`^the cart is priced with "([^"]*)" shipping$`, tc.theCartIsPricedWithShipping)
	ctx.Step(`^the shopper checks out$`, tc.theShopperChecksOut)

	// Then steps
	ctx.Step(`^the subtotal is "([^"]*)"$`, tc.theSubtotalIs)
	ctx.Step(`^the discount is "([^"]*)"$`, tc.theDiscountIs)
	ctx.Step(`^the tax is "([^"]*)"$`, tc.theTaxIs)
	ctx.Step(`^the shipping cost is "([^"]*)"$`, tc.theShippingCostIs)
	ctx.Step(`^the total is "([^"]*)"$`, tc.theTotalIs)
	ctx.Step(`^(\d+) loyalty points are earned$`, tc.loyaltyPointsAreEarned)
	ctx.Step(`^the shopper has (\d+) points$`, tc.theShopperHasPoints)
	ctx.Step(`^the shopper's tier is "([^"]*)"$`, tc.theShoppersTierIs)
	ctx.Step(`^progress to the next tier is ([0-9.]+) percent$`, tc.progressToTheNextTierIsPercent)
}

func TestCheckoutFeature(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeCheckoutScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/checkout.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
