package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/logger"
)

type options struct {
	database      string
	retentionDays int
	dryRun        bool
}

// pruner is the part of the Spanner event store this job drives.
type pruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time, dryRun bool) (int64, error)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "prune_events: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	if loaded, err := config.New(); err == nil {
		cfg = loaded
	}

	opts := &options{}
	cmd := &cobra.Command{
		Use:           "prune_events",
		Short:         "Delete domain events older than the retention window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.retentionDays <= 0 {
				return errors.New("--retention-days must be positive")
			}
			if opts.database == "" {
				return errors.New("--database is required")
			}

			log, err := logger.New("info", true)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			client, err := spanner.NewClient(cmd.Context(), opts.database)
			if err != nil {
				return errors.Wrap(err, "failed to create Spanner client")
			}
			defer client.Close()

			_, err = run(cmd.Context(), opts, repo.NewSpannerEventStore(client), clock.NewRealClock(), log)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.database, "database", cfg.Catalog.Spanner.Database(),
		"Spanner database (projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	f.IntVar(&opts.retentionDays, "retention-days", cfg.Events.RetentionDays, "keep events newer than this many days")
	f.BoolVar(&opts.dryRun, "dry-run", false, "count what would be deleted without deleting")

	return cmd
}

// cutoff returns the instant before which events are pruned.
func cutoff(now time.Time, retentionDays int) time.Time {
	return now.UTC().AddDate(0, 0, -retentionDays)
}

func run(ctx context.Context, opts *options, store pruner, clk clock.Clock, log *zap.Logger) (int64, error) {
	before := cutoff(clk.Now(), opts.retentionDays)
	log.Info("pruning domain events",
		zap.Time("cutoff", before),
		zap.Int("retention_days", opts.retentionDays),
		zap.Bool("dry_run", opts.dryRun),
	)

	count, err := store.PruneBefore(ctx, before, opts.dryRun)
	if err != nil {
		return 0, errors.Wrap(err, "prune failed")
	}

	if opts.dryRun {
		log.Info("dry run: events would be deleted", zap.Int64("count", count))
	} else {
		log.Info("events deleted", zap.Int64("count", count))
	}
	return count, nil
}
