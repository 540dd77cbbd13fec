// Package testutil holds helpers for tests that run against the Spanner emulator.
package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/models/m_event"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
)

// SetupSpannerTest opens a client on the test database and empties it.
// The returned cleanup empties it again and closes the client.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, TestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}
	return client, cleanup
}

// TestSpannerDB returns the database path integration tests use.
func TestSpannerDB() string {
	if db := os.Getenv("STOREFRONT_TEST_SPANNER_DB"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/storefront-test"
}

// CleanDatabase deletes every catalog and event row.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		m_product.NewModel().DeleteAllMut(),
		m_event.NewModel().DeleteAllMut(),
	})
	require.NoError(t, err, "failed to clean database")
}
