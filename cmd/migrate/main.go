package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/logger"
)

type options struct {
	projectID  string
	instanceID string
	databaseID string
	migrateDir string
	seed       int
	seedValue  uint64
	batchSize  int
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Default().Catalog
	if cfg, err := config.New(); err == nil {
		defaults = cfg.Catalog
	}

	opts := &options{}
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Create the Spanner catalog database, apply DDL and optionally seed products",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.New("info", true)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return run(cmd.Context(), opts, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.projectID, "project", defaults.Spanner.ProjectID, "GCP project ID")
	f.StringVar(&opts.instanceID, "instance", defaults.Spanner.InstanceID, "Spanner instance ID")
	f.StringVar(&opts.databaseID, "database", defaults.Spanner.DatabaseID, "Spanner database ID")
	f.StringVar(&opts.migrateDir, "migrations", "migrations", "directory containing migration SQL files")
	f.IntVar(&opts.seed, "seed", 0, "insert this many generated products after migrating")
	f.Uint64Var(&opts.seedValue, "seed-value", defaults.Seed, "random seed for generated products")
	f.IntVar(&opts.batchSize, "batch-size", 0, "mutations per commit when seeding (0 uses the default)")

	return cmd
}

func run(ctx context.Context, opts *options, log *zap.Logger) error {
	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Info("using Spanner emulator", zap.String("host", host))
	}

	if err := ensureInstance(ctx, opts, log); err != nil {
		return errors.Wrap(err, "failed to ensure instance")
	}
	if err := ensureDatabase(ctx, opts, log); err != nil {
		return errors.Wrap(err, "failed to ensure database")
	}
	if err := applyMigrations(ctx, opts, log); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}
	if opts.seed > 0 {
		if err := seedCatalog(ctx, opts, log); err != nil {
			return errors.Wrap(err, "failed to seed catalog")
		}
	}

	log.Info("migrations completed successfully")
	return nil
}

func (o *options) instancePath() string {
	return fmt.Sprintf("projects/%s/instances/%s", o.projectID, o.instanceID)
}

func (o *options) databasePath() string {
	return config.SpannerConfig{ProjectID: o.projectID, InstanceID: o.instanceID, DatabaseID: o.databaseID}.Database()
}
