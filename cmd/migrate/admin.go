package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func ensureInstance(ctx context.Context, opts *options, log *zap.Logger) error {
	log = log.With(zap.String("instance", opts.instanceID))

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create instance admin client")
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: opts.instancePath()})
	if err == nil {
		log.Info("instance already exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		log.Warn("unexpected error checking instance", zap.Error(err))
		return nil
	}

	log.Info("creating instance")
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + opts.projectID,
		InstanceId: opts.instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", opts.projectID),
			DisplayName: "Storefront Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return errors.Wrap(err, "failed to create instance")
		}
		log.Info("instance already exists")
		return nil
	}

	// The emulator can finish before Wait is called.
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		log.Warn("instance creation did not report success", zap.Error(err))
	}

	log.Info("instance created")
	return nil
}

func ensureDatabase(ctx context.Context, opts *options, log *zap.Logger) error {
	log = log.With(zap.String("database", opts.databaseID))

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create admin client")
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: opts.databasePath()})
	if err == nil {
		log.Info("database already exists")
		return nil
	}

	if status.Code(err) == codes.NotFound {
		log.Info("creating database")
		op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
			Parent:          opts.instancePath(),
			CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", opts.databaseID),
		})
		if err != nil {
			if status.Code(err) != codes.AlreadyExists {
				return errors.Wrap(err, "failed to create database")
			}
			log.Info("database already exists")
			return nil
		}
		if _, err := op.Wait(ctx); err != nil {
			return errors.Wrap(err, "failed to wait for database creation")
		}
		log.Info("database created")
		return nil
	}

	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		log.Warn("proceeding with database in emulator mode", zap.Error(err))
		return nil
	}
	return errors.Wrap(err, "failed to check database")
}

func applyMigrations(ctx context.Context, opts *options, log *zap.Logger) error {
	files, err := filepath.Glob(filepath.Join(opts.migrateDir, "*.sql"))
	if err != nil {
		return errors.Wrap(err, "failed to list migration files")
	}
	if len(files) == 0 {
		log.Info("no migration files found", zap.String("dir", opts.migrateDir))
		return nil
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create admin client")
	}
	defer adminClient.Close()

	for _, file := range files {
		name := filepath.Base(file)

		content, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration file %s", file)
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   opts.databasePath(),
			Statements: splitDDLStatements(string(content)),
		})
		if err != nil {
			if status.Code(err) == codes.FailedPrecondition && strings.Contains(err.Error(), "Duplicate name") {
				log.Info("migration already applied", zap.String("file", name))
				continue
			}
			return errors.Wrapf(err, "failed to start DDL update for %s", name)
		}
		if err := op.Wait(ctx); err != nil {
			return errors.Wrapf(err, "failed to apply DDL for %s", name)
		}

		log.Info("applied migration", zap.String("file", name))
	}
	return nil
}

// splitDDLStatements drops comment lines and splits on semicolons.
func splitDDLStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}
