package toggle_wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/storefronttest"
)

func TestToggleWishlist(t *testing.T) {
	ctx := context.Background()
	f := storefronttest.New(t)
	f.NewSession(t, "s-1")
	uc := NewInteractor(f.Sessions, f.Events, f.Logger)

	added, err := uc.Execute(ctx, &Request{SessionID: "s-1", ProductID: "2"})
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"2"}, f.Session(t, "s-1").Wishlist())

	added, err = uc.Execute(ctx, &Request{SessionID: "s-1", ProductID: "2"})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, f.Session(t, "s-1").Wishlist())

	_, err = uc.Execute(ctx, &Request{SessionID: "s-1"})
	assert.ErrorIs(t, err, domain.ErrEmptyProductID)

	assert.Equal(t, []string{"wishlist.toggled", "wishlist.toggled"}, f.EventTypes(t))
}
