package domain

import "sort"

// Session parts tracked for change detection
const (
	FieldCart     = "cart"
	FieldCoupon   = "coupon"
	FieldShipping = "shipping"
	FieldLoyalty  = "loyalty"
	FieldWishlist = "wishlist"
	FieldOrders   = "orders"
)

// ChangeTracker records which parts of a session a mutation touched.
// The session repository uses it to decide whether a write bumps the version.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

// NewChangeTracker creates a new ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtyFields: make(map[string]bool),
	}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirtyFields[field] = true
}

// Dirty checks if a field has been modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirtyFields[field]
}

// Clear resets the tracker.
func (ct *ChangeTracker) Clear() {
	clear(ct.dirtyFields)
}

// HasChanges returns true if any field has been modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}

// DirtyFields returns the modified field names, sorted.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirtyFields))
	for field := range ct.dirtyFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
