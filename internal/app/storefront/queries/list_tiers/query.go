package list_tiers

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Query lists the membership tiers.
type Query struct {
	tiers *domain.TierTable
}

// NewQuery creates a new list tiers query.
func NewQuery(tiers *domain.TierTable) *Query {
	return &Query{
		tiers: tiers,
	}
}

// Execute returns the tiers in ascending threshold order.
func (q *Query) Execute(ctx context.Context) ([]domain.MembershipTier, error) {
	if q.tiers.Len() == 0 {
		return nil, domain.ErrNoTiersConfigured
	}
	return q.tiers.Tiers(), nil
}
