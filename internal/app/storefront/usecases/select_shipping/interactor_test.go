package select_shipping

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/storefronttest"
)

func TestSelectShipping(t *testing.T) {
	ctx := context.Background()
	f := storefronttest.New(t)
	f.NewSession(t, "s-1")
	uc := NewInteractor(f.Sessions, f.Events, f.Logger)

	t.Run("defaults to standard", func(t *testing.T) {
		assert.Equal(t, domain.ShippingStandard, f.Session(t, "s-1").Shipping())
	})

	t.Run("switches to express", func(t *testing.T) {
		require.NoError(t, uc.Execute(ctx, &Request{SessionID: "s-1", Option: "Express"}))
		assert.Equal(t, domain.ShippingExpress, f.Session(t, "s-1").Shipping())
	})

	t.Run("unchanged option records nothing", func(t *testing.T) {
		require.NoError(t, uc.Execute(ctx, &Request{SessionID: "s-1", Option: "express"}))
		assert.Equal(t, []string{"cart.shipping_selected"}, f.EventTypes(t))
	})

	t.Run("unknown option", func(t *testing.T) {
		err := uc.Execute(ctx, &Request{SessionID: "s-1", Option: "drone"})
		assert.ErrorIs(t, err, domain.ErrUnknownShippingOption)
	})
}
