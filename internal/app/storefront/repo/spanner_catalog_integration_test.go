//go:build integration

package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/testutil"
)

func TestSpannerCatalog(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()

	plan := committer.NewPlan()
	model := m_product.NewModel()
	for i, p := range testProducts() {
		data, err := ProductToData(p, int64(i+1))
		require.NoError(t, err)
		plan.Add(model.InsertMut(data))
	}
	require.NoError(t, committer.NewCommitter(client).Apply(ctx, plan))

	catalog := NewSpannerCatalog(client)

	t.Run("lists in seq order", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, contracts.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, "1", products[0].ID)
		assert.Equal(t, "250.00", products[0].Price.String())
	})

	t.Run("filters by category and stock", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, contracts.ProductFilter{Category: "Coats", InStockOnly: true})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Wool Coat", products[0].Name)
	})

	t.Run("get product", func(t *testing.T) {
		p, err := catalog.GetProduct(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, "Tote", p.Name)

		_, err = catalog.GetProduct(ctx, "404")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("batch lookup", func(t *testing.T) {
		products, err := catalog.GetProducts(ctx, []string{"1", "3", "404"})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})
}
