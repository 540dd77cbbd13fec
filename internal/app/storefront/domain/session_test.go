package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

func newTestSession(t *testing.T) (*Session, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	s, err := NewSession("sess-1", defaultTable(t), clk)
	require.NoError(t, err)
	return s, clk
}

func eventTypes(events []DomainEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.EventType()
	}
	return out
}

func TestNewSession(t *testing.T) {
	t.Run("starts empty at the lowest tier", func(t *testing.T) {
		s, _ := newTestSession(t)

		assert.Empty(t, s.Items())
		assert.Equal(t, ShippingStandard, s.Shipping())
		assert.Equal(t, int64(0), s.Points())

		tier, err := s.CurrentTier()
		require.NoError(t, err)
		assert.Equal(t, "Bronze", tier.Name)
		assert.Empty(t, s.DomainEvents())
		assert.False(t, s.Changes().HasChanges())
	})

	t.Run("requires an id", func(t *testing.T) {
		_, err := NewSession("", defaultTable(t), clock.NewRealClock())
		assert.ErrorIs(t, err, ErrEmptySessionID)
	})

	t.Run("requires a tier table", func(t *testing.T) {
		_, err := NewSession("s", nil, clock.NewRealClock())
		assert.ErrorIs(t, err, ErrNoTiersConfigured)
	})
}

func TestSession_CartEvents(t *testing.T) {
	s, clk := newTestSession(t)
	key := LineKey{ProductID: "1", Size: "M"}

	clk.Advance(time.Minute)
	require.NoError(t, s.AddItem(key, 2))
	s.SetQuantity(key, 5)
	s.SetQuantity(key, 5) // unchanged, no event
	s.RemoveItem(key)
	s.RemoveItem(key) // absent, no event

	assert.Equal(t, []string{"cart.item_added", "cart.quantity_changed", "cart.item_removed"}, eventTypes(s.DomainEvents()))
	assert.Equal(t, clk.Now(), s.UpdatedAt())
	assert.True(t, s.Changes().Dirty(FieldCart))

	added := s.DomainEvents()[0].(*CartItemAddedEvent)
	assert.Equal(t, "sess-1", added.AggregateID())
	assert.Equal(t, int64(2), added.LineTotal)
}

func TestSession_AddItemInvalidQuantity(t *testing.T) {
	s, _ := newTestSession(t)
	err := s.AddItem(LineKey{ProductID: "1"}, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, s.DomainEvents())
}

func TestSession_ApplyCoupon(t *testing.T) {
	book, err := NewCouponBook(DefaultCoupons()...)
	require.NoError(t, err)

	t.Run("recognised code", func(t *testing.T) {
		s, _ := newTestSession(t)
		assert.True(t, s.ApplyCoupon("save20", book))
		assert.Equal(t, "save20", s.CouponCode())
	})

	t.Run("unknown code is stored without error", func(t *testing.T) {
		s, _ := newTestSession(t)
		assert.False(t, s.ApplyCoupon("WHATEVER", book))
		assert.Equal(t, "WHATEVER", s.CouponCode())

		ev := s.DomainEvents()[0].(*CouponAppliedEvent)
		assert.False(t, ev.Recognized)
	})
}

func TestSession_SelectShipping(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.SelectShipping(ShippingExpress))
	require.NoError(t, s.SelectShipping(ShippingExpress))
	assert.Equal(t, ShippingExpress, s.Shipping())
	assert.Len(t, s.DomainEvents(), 1)

	assert.ErrorIs(t, s.SelectShipping("drone"), ErrUnknownShippingOption)
}

func TestSession_AwardPoints(t *testing.T) {
	t.Run("crossing a threshold records a tier change", func(t *testing.T) {
		s, _ := newTestSession(t)

		require.NoError(t, s.AwardPoints(900, "spin"))
		require.NoError(t, s.AwardPoints(200, "spin"))

		assert.Equal(t, int64(1100), s.Points())
		assert.Equal(t, []string{"loyalty.points_awarded", "loyalty.points_awarded", "loyalty.tier_changed"},
			eventTypes(s.DomainEvents()))

		changed := s.DomainEvents()[2].(*TierChangedEvent)
		assert.Equal(t, "Bronze", changed.FromTier)
		assert.Equal(t, "Silver", changed.ToTier)
	})

	t.Run("negative amount fails without side effects", func(t *testing.T) {
		s, _ := newTestSession(t)
		assert.ErrorIs(t, s.AwardPoints(-1, "bad"), ErrInvalidAmount)
		assert.Empty(t, s.DomainEvents())
	})

	t.Run("zero records nothing", func(t *testing.T) {
		s, _ := newTestSession(t)
		require.NoError(t, s.AwardPoints(0, "try again"))
		assert.Empty(t, s.DomainEvents())
	})

	t.Run("empty tier table", func(t *testing.T) {
		empty, err := NewTierTable(nil)
		require.NoError(t, err)
		s, err := NewSession("s", empty, clock.NewRealClock())
		require.NoError(t, err)

		assert.ErrorIs(t, s.AwardPoints(10, "x"), ErrNoTiersConfigured)
	})
}

func TestSession_ToggleWishlist(t *testing.T) {
	s, _ := newTestSession(t)

	added, err := s.ToggleWishlist("7")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"7"}, s.Wishlist())

	added, err = s.ToggleWishlist("7")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, s.Wishlist())

	_, err = s.ToggleWishlist("")
	assert.ErrorIs(t, err, ErrEmptyProductID)
}

func TestSession_PlaceOrder(t *testing.T) {
	book, err := NewCouponBook(DefaultCoupons()...)
	require.NoError(t, err)
	pc := NewPricingCalculator(DefaultPricingPolicy(), book)
	products := ProductMap{"1": productAt("1", 60000)}

	t.Run("awards points and clears the cart", func(t *testing.T) {
		s, _ := newTestSession(t)
		require.NoError(t, s.AddItem(LineKey{ProductID: "1"}, 2))
		s.ApplyCoupon("SAVE20", book)
		s.ClearEvents()

		quote := pc.Calculate(PricingInput{Items: s.Items(), Products: products, CouponCode: s.CouponCode(), Shipping: s.Shipping()})
		order, err := s.PlaceOrder("order-1", quote)
		require.NoError(t, err)

		assert.Equal(t, "order-1", order.ID)
		assert.Equal(t, "SAVE20", order.Coupon)
		assert.Len(t, order.Items, 1)
		assert.Equal(t, int64(1200), s.Points())
		assert.Empty(t, s.Items())
		assert.Empty(t, s.CouponCode())
		assert.Len(t, s.Orders(), 1)
		assert.Equal(t,
			[]string{"loyalty.points_awarded", "loyalty.tier_changed", "order.placed"},
			eventTypes(s.DomainEvents()))
	})

	t.Run("empty cart fails", func(t *testing.T) {
		s, _ := newTestSession(t)
		quote := pc.Calculate(PricingInput{})
		_, err := s.PlaceOrder("order-2", quote)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})
}

func TestSession_PullEvents(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.AddItem(LineKey{ProductID: "1"}, 1))

	events := s.PullEvents()
	assert.Len(t, events, 1)
	assert.Empty(t, s.DomainEvents())
}
