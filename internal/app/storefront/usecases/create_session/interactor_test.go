package create_session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/app/storefront/storefronttest"
)

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	f := storefronttest.New(t)
	uc := NewInteractor(f.Sessions, f.Tiers, f.Clock, f.Logger)

	t.Run("generates an id", func(t *testing.T) {
		id, err := uc.Execute(ctx, &Request{})
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		s := f.Session(t, id)
		assert.Empty(t, s.Items())
		assert.Equal(t, int64(0), s.Points())
		assert.Equal(t, storefronttest.Epoch, s.CreatedAt())
	})

	t.Run("uses the requested id", func(t *testing.T) {
		id, err := uc.Execute(ctx, &Request{SessionID: "shopper-1"})
		require.NoError(t, err)
		assert.Equal(t, "shopper-1", id)
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{SessionID: "shopper-1"})
		assert.ErrorIs(t, err, repo.ErrSessionExists)
	})

	assert.Equal(t, 2, f.Sessions.Count())
}
