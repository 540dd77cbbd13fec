// Command storefrontctl queries a running storefront over gRPC and prints JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
)

var (
	addr      string
	timeout   time.Duration
	sessionID string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:           "storefrontctl",
	Short:         "Inspect carts and loyalty state of a running storefront",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a session's cart",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c *storefront.Client) (*structpb.Struct, error) {
			return c.QuoteCart(ctx, sessionID)
		})
	},
}

var loyaltyCmd = &cobra.Command{
	Use:   "loyalty",
	Short: "Show a session's points, tier and progress",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c *storefront.Client) (*structpb.Struct, error) {
			return c.GetLoyaltyStatus(ctx, sessionID)
		})
	},
}

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List membership tiers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c *storefront.Client) (*structpb.Struct, error) {
			return c.ListTiers(ctx)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "localhost:9090", "storefront gRPC address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per-call timeout")

	for _, cmd := range []*cobra.Command{quoteCmd, loyaltyCmd} {
		cmd.Flags().StringVar(&sessionID, "session", "", "session ID")
		_ = cmd.MarkFlagRequired("session")
	}

	rootCmd.AddCommand(quoteCmd, loyaltyCmd, tiersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// call dials addr, runs fn and prints the reply as indented JSON.
func call(cmd *cobra.Command, fn func(context.Context, *storefront.Client) (*structpb.Struct, error)) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return errors.Wrapf(err, "failed to connect to %s", addr)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	out, err := fn(ctx, storefront.NewClient(conn))
	if err != nil {
		return err
	}

	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "failed to encode reply")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
