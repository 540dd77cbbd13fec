package get_loyalty_status

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/storefronttest"
)

func TestGetLoyaltyStatus(t *testing.T) {
	ctx := context.Background()
	f := storefronttest.New(t)
	q := NewQuery(f.Sessions)

	tests := []struct {
		name       string
		points     int64
		tier       string
		next       string
		toNext     int64
		percentage float64
	}{
		{"new shopper", 0, "Bronze", "Silver", 1000, 0},
		{"silver progress", 1200, "Silver", "Gold", 1300, 200.0 / 1500.0 * 100},
		{"top tier", 8000, "Platinum", "", 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.NewSession(t, tt.name)
			require.NoError(t, f.Sessions.Update(ctx, tt.name, func(s *domain.Session) error {
				return s.AwardPoints(tt.points, "seed")
			}))

			resp, err := q.Execute(ctx, &Request{SessionID: tt.name})
			require.NoError(t, err)

			assert.Equal(t, tt.points, resp.Points)
			assert.Equal(t, tt.tier, resp.Progress.Current.Name)
			if tt.next == "" {
				assert.True(t, resp.Progress.IsTopTier())
			} else {
				require.NotNil(t, resp.Progress.Next)
				assert.Equal(t, tt.next, resp.Progress.Next.Name)
			}
			assert.Equal(t, tt.toNext, resp.Progress.PointsToNextTier)
			assert.InDelta(t, tt.percentage, resp.Progress.Percentage, 0.001)
		})
	}
}
