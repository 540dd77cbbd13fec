package get_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/storefronttest"
)

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	q := NewQuery(storefronttest.New(t).Catalog)

	p, err := q.Execute(ctx, &Request{ProductID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Wool Coat", p.Name)
	assert.True(t, p.IsOnSale())

	_, err = q.Execute(ctx, &Request{ProductID: "404"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = q.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, domain.ErrEmptyProductID)
}
