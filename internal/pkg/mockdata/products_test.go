package mockdata

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

func TestGenerator_Products(t *testing.T) {
	products := NewGenerator(42).Products(200)
	require.Len(t, products, 200)

	minPrice := domain.NewMoneyFromCents(5000)
	maxPrice := domain.NewMoneyFromCents(200000)

	for i, p := range products {
		assert.Equal(t, strconv.Itoa(i+1), p.ID)
		require.NoError(t, p.Validate(), p.ID)

		assert.False(t, p.Price.LessThan(minPrice), p.ID)
		assert.False(t, p.Price.GreaterThan(maxPrice), p.ID)
		assert.True(t, p.Price.Equals(p.Price.Round2()), "price has at most two decimals")

		if p.OriginalPrice != nil {
			assert.True(t, p.OriginalPrice.GreaterThan(p.Price))
		}

		assert.True(t, strings.HasPrefix(p.SKU, "GHFT"))
		assert.Len(t, p.SKU, 12)
		assert.Contains(t, Categories, p.Category)
		assert.Contains(t, Brands, p.Brand)
		assert.GreaterOrEqual(t, p.Stock, int64(0))
		assert.LessOrEqual(t, p.Stock, int64(50))
		assert.GreaterOrEqual(t, p.Rating, 3.5)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, len(p.Sizes), 4)
		assert.GreaterOrEqual(t, len(p.Colors), 2)
		assert.NotEmpty(t, p.Name)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(7).Products(20)
	b := NewGenerator(7).Products(20)

	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].SKU, b[i].SKU)
		assert.True(t, a[i].Price.Equals(b[i].Price))
	}
}

func TestGenerator_ZeroCount(t *testing.T) {
	assert.Empty(t, NewGenerator(1).Products(0))
	assert.Empty(t, NewGenerator(1).Products(-3))
}
