package main

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/mockdata"
)

func seedCatalog(ctx context.Context, opts *options, log *zap.Logger) error {
	plan, err := seedPlan(mockdata.NewGenerator(opts.seedValue).Products(opts.seed))
	if err != nil {
		return err
	}

	client, err := spanner.NewClient(ctx, opts.databasePath())
	if err != nil {
		return errors.Wrap(err, "failed to create Spanner client")
	}
	defer client.Close()

	applied, err := committer.NewCommitter(client).ApplyInBatches(ctx, plan, opts.batchSize)
	if err != nil {
		return err
	}

	log.Info("seeded catalog", zap.Int("products", applied))
	return nil
}

// seedPlan builds insert-or-update mutations; seq follows generation order.
func seedPlan(products []*domain.Product) (*committer.CommitPlan, error) {
	model := m_product.NewModel()
	plan := committer.NewPlan()
	for i, p := range products {
		data, err := repo.ProductToData(p, int64(i+1))
		if err != nil {
			return nil, errors.Wrapf(err, "product %s", p.ID)
		}
		plan.Add(model.InsertMut(data))
	}
	return plan, nil
}
