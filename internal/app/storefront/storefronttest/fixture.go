// Package storefronttest wires in-memory storefront dependencies for tests.
package storefronttest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/pricing"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Epoch is the mock clock's starting time.
var Epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// Fixture bundles the in-memory collaborators of the use cases.
type Fixture struct {
	Clock    *clock.MockClock
	Logger   *zap.Logger
	Sessions *repo.MemorySessionRepo
	Catalog  *repo.MemoryCatalog
	Events   *repo.EventLog
	Tiers    *domain.TierTable
	Coupons  *domain.CouponBook
	Quoter   *pricing.Quoter
	Wheel    *domain.SpinWheel
}

// Products is a small fixed catalog: a 100.00 coat, a 50.00 tote, an
// out-of-stock 25.50 scarf and a 1000.00 limited jacket.
func Products() []*domain.Product {
	return []*domain.Product{
		{ID: "1", Name: "Wool Coat", Brand: "Aurelia", Category: "Outerwear", Price: domain.NewMoneyFromCents(10000),
			OriginalPrice: domain.NewMoneyFromCents(15000), Stock: 5, Sizes: []string{"S", "M"}, Colors: []string{"Black"}},
		{ID: "2", Name: "Canvas Tote", Brand: "Nomad", Category: "Accessories", Price: domain.NewMoneyFromCents(5000), Stock: 12},
		{ID: "3", Name: "Silk Scarf", Brand: "Aurelia", Category: "Accessories", Price: domain.NewMoneyFromCents(2550), Stock: 0},
		{ID: "4", Name: "Neon Jacket", Brand: "Vanta", Category: "Outerwear", Price: domain.NewMoneyFromCents(100000),
			Stock: 2, IsLimited: true, IsAIGenerated: true},
	}
}

// New builds a fixture with the default pricing, loyalty and wheel configuration.
func New(t testing.TB) *Fixture {
	t.Helper()

	catalog, err := repo.NewMemoryCatalog(Products())
	require.NoError(t, err)
	tiers, err := domain.NewTierTable(domain.DefaultTiers())
	require.NoError(t, err)
	coupons, err := domain.NewCouponBook(domain.DefaultCoupons()...)
	require.NoError(t, err)
	wheel, err := domain.NewSpinWheel(domain.DefaultWheelSegments())
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	calc := domain.NewPricingCalculator(domain.DefaultPricingPolicy(), coupons)

	return &Fixture{
		Clock:    clock.NewMockClock(Epoch),
		Logger:   logger,
		Sessions: repo.NewMemorySessionRepo(),
		Catalog:  catalog,
		Events:   repo.NewEventLog(0),
		Tiers:    tiers,
		Coupons:  coupons,
		Quoter:   pricing.NewQuoter(catalog, calc, logger),
		Wheel:    wheel,
	}
}

// NewSession stores an empty session under id.
func (f *Fixture) NewSession(t testing.TB, id string) {
	t.Helper()
	s, err := domain.NewSession(id, f.Tiers, f.Clock)
	require.NoError(t, err)
	require.NoError(t, f.Sessions.Create(context.Background(), s))
}

// Session returns a live session for assertions. Callers must not mutate it.
func (f *Fixture) Session(t testing.TB, id string) *domain.Session {
	t.Helper()
	var out *domain.Session
	require.NoError(t, f.Sessions.View(context.Background(), id, func(s *domain.Session) error {
		out = s
		return nil
	}))
	return out
}

// EventTypes lists the types recorded in the event log, oldest first.
func (f *Fixture) EventTypes(t testing.TB) []string {
	t.Helper()
	records, _, err := f.Events.ListEvents(context.Background(), contracts.EventFilter{Limit: repo.MaxEventLimit})
	require.NoError(t, err)

	types := make([]string, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		types = append(types, records[i].EventType)
	}
	return types
}
