package domain

// LineKey identifies a cart line. Two additions with the same key merge.
type LineKey struct {
	ProductID string
	Size      string
	Color     string
}

// CartLineItem is one (product, size, color) selection with a quantity.
type CartLineItem struct {
	ProductID string
	Quantity  int64
	Size      string
	Color     string
}

// Key returns the merge key of the line.
func (li CartLineItem) Key() LineKey {
	return LineKey{ProductID: li.ProductID, Size: li.Size, Color: li.Color}
}

// Cart is the ordered set of line items for one session.
// It is not safe for concurrent use; callers serialise access per session.
type Cart struct {
	items []*CartLineItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{items: make([]*CartLineItem, 0)}
}

// AddItem merges quantity into the line with the same key or appends a new line.
func (c *Cart) AddItem(key LineKey, quantity int64) error {
	if key.ProductID == "" {
		return ErrEmptyProductID
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if li := c.find(key); li != nil {
		li.Quantity += quantity
		return nil
	}

	c.items = append(c.items, &CartLineItem{
		ProductID: key.ProductID,
		Quantity:  quantity,
		Size:      key.Size,
		Color:     key.Color,
	})
	return nil
}

// RemoveItem deletes the matching line. Removing an absent key is a no-op.
func (c *Cart) RemoveItem(key LineKey) bool {
	for i, li := range c.items {
		if li.Key() == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity overwrites the quantity of an existing line.
// A quantity <= 0 removes the line; an absent key is left alone.
func (c *Cart) SetQuantity(key LineKey, quantity int64) bool {
	if quantity <= 0 {
		return c.RemoveItem(key)
	}

	li := c.find(key)
	if li == nil {
		return false
	}
	li.Quantity = quantity
	return true
}

// Quantity returns the quantity held for key, or 0.
func (c *Cart) Quantity(key LineKey) int64 {
	if li := c.find(key); li != nil {
		return li.Quantity
	}
	return 0
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []CartLineItem {
	out := make([]CartLineItem, len(c.items))
	for i, li := range c.items {
		out[i] = *li
	}
	return out
}

// ProductIDs returns the distinct product IDs in the cart, in first-seen order.
func (c *Cart) ProductIDs() []string {
	seen := make(map[string]bool, len(c.items))
	ids := make([]string, 0, len(c.items))
	for _, li := range c.items {
		if !seen[li.ProductID] {
			seen[li.ProductID] = true
			ids = append(ids, li.ProductID)
		}
	}
	return ids
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// TotalQuantity returns the sum of quantities over all lines.
func (c *Cart) TotalQuantity() int64 {
	var total int64
	for _, li := range c.items {
		total += li.Quantity
	}
	return total
}

// IsEmpty returns true if the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.items = make([]*CartLineItem, 0)
}

func (c *Cart) find(key LineKey) *CartLineItem {
	for _, li := range c.items {
		if li.Key() == key {
			return li
		}
	}
	return nil
}
