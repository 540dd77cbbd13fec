package repo

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
)

func TestProductToData(t *testing.T) {
	t.Run("round trips through the row form", func(t *testing.T) {
		p := &domain.Product{
			ID:            "5",
			Name:          "Velvet Clutch",
			Category:      "Bags",
			Price:         domain.NewMoneyFromCents(12999),
			OriginalPrice: domain.NewMoneyFromCents(19999),
			Stock:         4,
			Sizes:         []string{"S", "M"},
		}

		data, err := ProductToData(p, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), data.Seq)
		assert.Equal(t, int64(12999), data.PriceNumerator)
		assert.Equal(t, int64(100), data.PriceDenominator)
		assert.True(t, data.OriginalPriceNumerator.Valid)

		back, err := DataToProduct(data)
		require.NoError(t, err)
		assert.True(t, back.Price.Equals(p.Price))
		assert.True(t, back.OriginalPrice.Equals(p.OriginalPrice))
		assert.Equal(t, p.Sizes, back.Sizes)
	})

	t.Run("no original price stays null", func(t *testing.T) {
		data, err := ProductToData(&domain.Product{ID: "1", Price: domain.NewMoneyFromCents(100)}, 1)
		require.NoError(t, err)
		assert.False(t, data.OriginalPriceNumerator.Valid)

		back, err := DataToProduct(data)
		require.NoError(t, err)
		assert.Nil(t, back.OriginalPrice)
	})

	t.Run("rejects invalid products", func(t *testing.T) {
		_, err := ProductToData(&domain.Product{ID: "1", Price: domain.NewMoneyFromCents(-5)}, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})
}

func TestDataToProduct_BadDenominator(t *testing.T) {
	_, err := DataToProduct(&m_product.Data{ProductID: "1", PriceNumerator: 10, PriceDenominator: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidMoney)

	_, err = DataToProduct(&m_product.Data{
		ProductID:                "1",
		PriceNumerator:           10,
		PriceDenominator:         1,
		OriginalPriceNumerator:   spanner.NullInt64{Int64: 20, Valid: true},
		OriginalPriceDenominator: spanner.NullInt64{Int64: 0, Valid: true},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMoney)
}

func TestListStatement(t *testing.T) {
	stmt := ListStatement(contracts.ProductFilter{Category: "Shoes", InStockOnly: true, Limit: 12})

	assert.Contains(t, stmt.SQL, "FROM products WHERE category = @p0 AND stock > @p1 ORDER BY seq ASC LIMIT @limit")
	assert.Equal(t, "Shoes", stmt.Params["p0"])
	assert.Equal(t, int64(12), stmt.Params["limit"])
}
