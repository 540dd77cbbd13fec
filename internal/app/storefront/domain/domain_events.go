package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// CartItemAddedEvent is emitted when quantity is added to a cart line.
type CartItemAddedEvent struct {
	SessionID string
	ProductID string
	Size      string
	Color     string
	Quantity  int64
	LineTotal int64 // resulting quantity on the line
	Timestamp time.Time
}

func (e *CartItemAddedEvent) EventType() string     { return "cart.item_added" }
func (e *CartItemAddedEvent) AggregateID() string   { return e.SessionID }
func (e *CartItemAddedEvent) OccurredAt() time.Time { return e.Timestamp }

// CartItemRemovedEvent is emitted when a line leaves the cart.
type CartItemRemovedEvent struct {
	SessionID string
	ProductID string
	Size      string
	Color     string
	Timestamp time.Time
}

func (e *CartItemRemovedEvent) EventType() string     { return "cart.item_removed" }
func (e *CartItemRemovedEvent) AggregateID() string   { return e.SessionID }
func (e *CartItemRemovedEvent) OccurredAt() time.Time { return e.Timestamp }

// CartQuantityChangedEvent is emitted when a line's quantity is overwritten.
type CartQuantityChangedEvent struct {
	SessionID   string
	ProductID   string
	Size        string
	Color       string
	OldQuantity int64
	NewQuantity int64
	Timestamp   time.Time
}

func (e *CartQuantityChangedEvent) EventType() string     { return "cart.quantity_changed" }
func (e *CartQuantityChangedEvent) AggregateID() string   { return e.SessionID }
func (e *CartQuantityChangedEvent) OccurredAt() time.Time { return e.Timestamp }

// CouponAppliedEvent is emitted whenever a coupon code is entered.
type CouponAppliedEvent struct {
	SessionID  string
	Code       string
	Recognized bool
	Timestamp  time.Time
}

func (e *CouponAppliedEvent) EventType() string     { return "cart.coupon_applied" }
func (e *CouponAppliedEvent) AggregateID() string   { return e.SessionID }
func (e *CouponAppliedEvent) OccurredAt() time.Time { return e.Timestamp }

// ShippingSelectedEvent is emitted when the shipping option changes.
type ShippingSelectedEvent struct {
	SessionID string
	Option    ShippingOption
	Timestamp time.Time
}

func (e *ShippingSelectedEvent) EventType() string     { return "cart.shipping_selected" }
func (e *ShippingSelectedEvent) AggregateID() string   { return e.SessionID }
func (e *ShippingSelectedEvent) OccurredAt() time.Time { return e.Timestamp }

// PointsAwardedEvent is emitted when loyalty points are credited.
type PointsAwardedEvent struct {
	SessionID string
	Amount    int64
	Balance   int64
	Reason    string
	Timestamp time.Time
}

func (e *PointsAwardedEvent) EventType() string     { return "loyalty.points_awarded" }
func (e *PointsAwardedEvent) AggregateID() string   { return e.SessionID }
func (e *PointsAwardedEvent) OccurredAt() time.Time { return e.Timestamp }

// TierChangedEvent is emitted when a point award crosses a tier threshold.
type TierChangedEvent struct {
	SessionID string
	FromTier  string
	ToTier    string
	Points    int64
	Timestamp time.Time
}

func (e *TierChangedEvent) EventType() string     { return "loyalty.tier_changed" }
func (e *TierChangedEvent) AggregateID() string   { return e.SessionID }
func (e *TierChangedEvent) OccurredAt() time.Time { return e.Timestamp }

// OrderPlacedEvent is emitted by a successful checkout.
type OrderPlacedEvent struct {
	SessionID    string
	OrderID      string
	Total        *Money
	PointsEarned int64
	Timestamp    time.Time
}

func (e *OrderPlacedEvent) EventType() string     { return "order.placed" }
func (e *OrderPlacedEvent) AggregateID() string   { return e.SessionID }
func (e *OrderPlacedEvent) OccurredAt() time.Time { return e.Timestamp }

// WishlistToggledEvent is emitted when a product is added to or removed from the wishlist.
type WishlistToggledEvent struct {
	SessionID string
	ProductID string
	Added     bool
	Timestamp time.Time
}

func (e *WishlistToggledEvent) EventType() string     { return "wishlist.toggled" }
func (e *WishlistToggledEvent) AggregateID() string   { return e.SessionID }
func (e *WishlistToggledEvent) OccurredAt() time.Time { return e.Timestamp }
