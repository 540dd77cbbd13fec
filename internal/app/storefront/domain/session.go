package domain

import (
	"time"

	"github.com/pkg/errors"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Order is the record of a mock checkout. No payment is taken.
type Order struct {
	ID       string
	Items    []CartLineItem
	Pricing  *PricingResult
	Coupon   string
	Shipping ShippingOption
	PlacedAt time.Time
}

// Session is the aggregate root for one shopper: cart, coupon, shipping choice,
// loyalty account and wishlist. It is an explicit state container; one instance
// per shopper, mutated under the session repository's per-session lock.
type Session struct {
	id         string
	cart       *Cart
	couponCode string
	shipping   ShippingOption
	loyalty    *LoyaltyAccount
	wishlist   []string
	orders     []*Order
	tiers      *TierTable
	createdAt  time.Time
	updatedAt  time.Time

	// Clock for time operations (injected for testability)
	clock clock.Clock

	changes *ChangeTracker
	events  []DomainEvent
}

// NewSession creates an empty session.
func NewSession(id string, tiers *TierTable, clk clock.Clock) (*Session, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}
	if tiers == nil {
		return nil, ErrNoTiersConfigured
	}

	now := clk.Now()
	return &Session{
		id:        id,
		cart:      NewCart(),
		shipping:  ShippingStandard,
		loyalty:   NewLoyaltyAccount(),
		wishlist:  make([]string, 0),
		orders:    make([]*Order, 0),
		tiers:     tiers,
		createdAt: now,
		updatedAt: now,
		clock:     clk,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}, nil
}

func (s *Session) ID() string                     { return s.id }
func (s *Session) CouponCode() string             { return s.couponCode }
func (s *Session) Shipping() ShippingOption       { return s.shipping }
func (s *Session) Points() int64                  { return s.loyalty.Points() }
func (s *Session) Tiers() *TierTable              { return s.tiers }
func (s *Session) CreatedAt() time.Time           { return s.createdAt }
func (s *Session) UpdatedAt() time.Time           { return s.updatedAt }
func (s *Session) Changes() *ChangeTracker        { return s.changes }
func (s *Session) DomainEvents() []DomainEvent    { return s.events }
func (s *Session) Items() []CartLineItem          { return s.cart.Items() }
func (s *Session) CartProductIDs() []string       { return s.cart.ProductIDs() }
func (s *Session) CartQuantity(key LineKey) int64 { return s.cart.Quantity(key) }

// Wishlist returns the wishlisted product IDs in the order they were added.
func (s *Session) Wishlist() []string {
	out := make([]string, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// Orders returns past mock orders, oldest first.
func (s *Session) Orders() []*Order {
	out := make([]*Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// CurrentTier derives the membership tier from the point total.
func (s *Session) CurrentTier() (MembershipTier, error) {
	return s.tiers.CurrentTier(s.loyalty.Points())
}

// TierProgress derives progress toward the next tier.
func (s *Session) TierProgress() (TierProgress, error) {
	return s.tiers.ProgressToNextTier(s.loyalty.Points())
}

// AddItem merges quantity into the matching cart line.
func (s *Session) AddItem(key LineKey, quantity int64) error {
	if err := s.cart.AddItem(key, quantity); err != nil {
		return err
	}

	s.touch(FieldCart)
	s.recordEvent(&CartItemAddedEvent{
		SessionID: s.id,
		ProductID: key.ProductID,
		Size:      key.Size,
		Color:     key.Color,
		Quantity:  quantity,
		LineTotal: s.cart.Quantity(key),
		Timestamp: s.updatedAt,
	})
	return nil
}

// RemoveItem drops the matching line. Absent keys are a no-op and record nothing.
func (s *Session) RemoveItem(key LineKey) {
	if !s.cart.RemoveItem(key) {
		return
	}

	s.touch(FieldCart)
	s.recordEvent(&CartItemRemovedEvent{
		SessionID: s.id,
		ProductID: key.ProductID,
		Size:      key.Size,
		Color:     key.Color,
		Timestamp: s.updatedAt,
	})
}

// SetQuantity overwrites a line's quantity; quantity <= 0 removes the line.
func (s *Session) SetQuantity(key LineKey, quantity int64) {
	if quantity <= 0 {
		s.RemoveItem(key)
		return
	}

	old := s.cart.Quantity(key)
	if !s.cart.SetQuantity(key, quantity) || old == quantity {
		return
	}

	s.touch(FieldCart)
	s.recordEvent(&CartQuantityChangedEvent{
		SessionID:   s.id,
		ProductID:   key.ProductID,
		Size:        key.Size,
		Color:       key.Color,
		OldQuantity: old,
		NewQuantity: quantity,
		Timestamp:   s.updatedAt,
	})
}

// ApplyCoupon stores the entered code and reports whether book recognises it.
// Unknown codes are kept and simply price to a zero discount.
func (s *Session) ApplyCoupon(code string, book *CouponBook) bool {
	_, recognized := book.Lookup(code)
	s.couponCode = code

	s.touch(FieldCoupon)
	s.recordEvent(&CouponAppliedEvent{
		SessionID:  s.id,
		Code:       code,
		Recognized: recognized,
		Timestamp:  s.updatedAt,
	})
	return recognized
}

// SelectShipping changes the shipping option.
func (s *Session) SelectShipping(option ShippingOption) error {
	if option != ShippingStandard && option != ShippingExpress {
		return errors.Wrapf(ErrUnknownShippingOption, "%q", option)
	}
	if option == s.shipping {
		return nil
	}

	s.shipping = option
	s.touch(FieldShipping)
	s.recordEvent(&ShippingSelectedEvent{
		SessionID: s.id,
		Option:    option,
		Timestamp: s.updatedAt,
	})
	return nil
}

// AwardPoints credits the loyalty account and records a tier change when a
// threshold is crossed. Tiers never demote.
func (s *Session) AwardPoints(amount int64, reason string) error {
	before, err := s.CurrentTier()
	if err != nil {
		return err
	}
	if err := s.loyalty.AddPoints(amount); err != nil {
		return err
	}
	if amount == 0 {
		return nil
	}

	s.touch(FieldLoyalty)
	s.recordEvent(&PointsAwardedEvent{
		SessionID: s.id,
		Amount:    amount,
		Balance:   s.loyalty.Points(),
		Reason:    reason,
		Timestamp: s.updatedAt,
	})

	after, err := s.CurrentTier()
	if err != nil {
		return err
	}
	if after.Name != before.Name {
		s.recordEvent(&TierChangedEvent{
			SessionID: s.id,
			FromTier:  before.Name,
			ToTier:    after.Name,
			Points:    s.loyalty.Points(),
			Timestamp: s.updatedAt,
		})
	}
	return nil
}

// ToggleWishlist adds or removes productID and reports whether it is now wishlisted.
func (s *Session) ToggleWishlist(productID string) (bool, error) {
	if productID == "" {
		return false, ErrEmptyProductID
	}

	added := true
	for i, id := range s.wishlist {
		if id == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			added = false
			break
		}
	}
	if added {
		s.wishlist = append(s.wishlist, productID)
	}

	s.touch(FieldWishlist)
	s.recordEvent(&WishlistToggledEvent{
		SessionID: s.id,
		ProductID: productID,
		Added:     added,
		Timestamp: s.updatedAt,
	})
	return added, nil
}

// PlaceOrder completes a mock checkout from a quote computed on the current cart.
// It awards the quote's points, then clears the cart and coupon.
func (s *Session) PlaceOrder(orderID string, quote *PricingResult) (*Order, error) {
	if s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if quote == nil {
		return nil, errors.New("checkout requires a pricing quote")
	}

	order := &Order{
		ID:       orderID,
		Items:    s.cart.Items(),
		Pricing:  quote,
		Coupon:   quote.AppliedCoupon,
		Shipping: s.shipping,
		PlacedAt: s.clock.Now(),
	}

	if err := s.AwardPoints(quote.LoyaltyPointsEarned, "order "+orderID); err != nil {
		return nil, errors.Wrap(err, "failed to award order points")
	}

	s.orders = append(s.orders, order)
	s.cart.Clear()
	s.couponCode = ""

	s.touch(FieldOrders)
	s.changes.MarkDirty(FieldCart)
	s.changes.MarkDirty(FieldCoupon)
	s.recordEvent(&OrderPlacedEvent{
		SessionID:    s.id,
		OrderID:      orderID,
		Total:        quote.Total.Copy(),
		PointsEarned: quote.LoyaltyPointsEarned,
		Timestamp:    order.PlacedAt,
	})
	return order, nil
}

// ClearEvents drops recorded events once they have been handed to a publisher.
func (s *Session) ClearEvents() {
	s.events = make([]DomainEvent, 0)
}

// PullEvents returns the recorded events and clears them.
func (s *Session) PullEvents() []DomainEvent {
	events := s.events
	s.ClearEvents()
	return events
}

func (s *Session) touch(field string) {
	s.changes.MarkDirty(field)
	s.updatedAt = s.clock.Now()
}

func (s *Session) recordEvent(event DomainEvent) {
	s.events = append(s.events, event)
}
