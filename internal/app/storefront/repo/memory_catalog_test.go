package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/mockdata"
)

func testProducts() []*domain.Product {
	return []*domain.Product{
		{ID: "1", Name: "Wool Coat", Category: "Coats", Price: domain.NewMoneyFromCents(25000), Stock: 3},
		{ID: "2", Name: "Silk Scarf", Category: "Accessories", Price: domain.NewMoneyFromCents(8900), Stock: 0},
		{ID: "3", Name: "Trench Coat", Category: "Coats", Price: domain.NewMoneyFromCents(41000), Stock: 0},
		{ID: "4", Name: "Tote", Category: "Bags", Price: domain.NewMoneyFromCents(12000), Stock: 9},
	}
}

func TestMemoryCatalog_ListProducts(t *testing.T) {
	ctx := context.Background()
	catalog, err := NewMemoryCatalog(testProducts())
	require.NoError(t, err)

	t.Run("keeps catalog order", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, contracts.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, "1", products[0].ID)
		assert.Equal(t, "4", products[3].ID)
	})

	t.Run("filters by category", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, contracts.ProductFilter{Category: "Coats"})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "3", products[1].ID)
	})

	t.Run("in stock only", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, contracts.ProductFilter{InStockOnly: true})
		require.NoError(t, err)
		require.Len(t, products, 2)
	})

	t.Run("respects limit", func(t *testing.T) {
		products, err := catalog.ListProducts(ctx, contracts.ProductFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})
}

func TestMemoryCatalog_Get(t *testing.T) {
	ctx := context.Background()
	catalog, err := NewMemoryCatalog(testProducts())
	require.NoError(t, err)

	t.Run("known product", func(t *testing.T) {
		p, err := catalog.GetProduct(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "Silk Scarf", p.Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := catalog.GetProduct(ctx, "99")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("batch lookup skips unknown ids", func(t *testing.T) {
		products, err := catalog.GetProducts(ctx, []string{"1", "99", "4"})
		require.NoError(t, err)
		assert.Len(t, products, 2)
		_, ok := products.LookupProduct("99")
		assert.False(t, ok)
	})
}

func TestNewMemoryCatalog_Validation(t *testing.T) {
	t.Run("duplicate ids", func(t *testing.T) {
		products := testProducts()
		products[1].ID = "1"
		_, err := NewMemoryCatalog(products)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("invalid product", func(t *testing.T) {
		_, err := NewMemoryCatalog([]*domain.Product{{ID: "1"}})
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("accepts generated catalog", func(t *testing.T) {
		catalog, err := NewMemoryCatalog(mockdata.NewGenerator(1).Products(100))
		require.NoError(t, err)
		assert.Equal(t, 100, catalog.Len())
	})
}

func TestProductFilter_NormalizedLimit(t *testing.T) {
	assert.Equal(t, contracts.DefaultProductLimit, contracts.ProductFilter{}.NormalizedLimit())
	assert.Equal(t, contracts.MaxProductLimit, contracts.ProductFilter{Limit: 10_000}.NormalizedLimit())
	assert.Equal(t, 7, contracts.ProductFilter{Limit: 7}.NormalizedLimit())
}
