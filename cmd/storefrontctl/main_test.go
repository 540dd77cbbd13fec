package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart_summary"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_loyalty_status"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_tiers"
	"github.com/light-bringer/storefront-service/internal/app/storefront/storefronttest"
	"github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
)

func startStorefront(t *testing.T) (string, *storefronttest.Fixture) {
	t.Helper()

	f := storefronttest.New(t)
	srv := storefront.NewServer(storefront.NewHandler(
		get_cart_summary.NewQuery(f.Sessions, f.Quoter),
		get_loyalty_status.NewQuery(f.Sessions),
		list_tiers.NewQuery(f.Tiers),
	), f.Logger, false)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return lis.Addr().String(), f
}

func execute(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return nil, err
	}

	var m map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &m))
	return m, nil
}

func TestStorefrontctl(t *testing.T) {
	addr, f := startStorefront(t)

	f.NewSession(t, "s-1")
	require.NoError(t, f.Sessions.Update(context.Background(), "s-1", func(s *domain.Session) error {
		return s.AddItem(domain.LineKey{ProductID: "2"}, 1)
	}))

	t.Run("quote", func(t *testing.T) {
		m, err := execute(t, "quote", "--addr", addr, "--session", "s-1")
		require.NoError(t, err)
		assert.Equal(t, "50.00", m["subtotal"])
		assert.Equal(t, "15.00", m["shipping_cost"])
		assert.Equal(t, "69.00", m["total"])
	})

	t.Run("loyalty", func(t *testing.T) {
		m, err := execute(t, "loyalty", "--addr", addr, "--session", "s-1")
		require.NoError(t, err)
		assert.Equal(t, float64(0), m["points"])
	})

	t.Run("tiers", func(t *testing.T) {
		m, err := execute(t, "tiers", "--addr", addr)
		require.NoError(t, err)
		assert.Len(t, m["tiers"], 4)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := execute(t, "quote", "--addr", addr, "--session", "nope")
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
