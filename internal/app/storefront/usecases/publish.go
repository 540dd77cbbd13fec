// Package usecases holds the storefront's write-side interactors, one package
// per use case.
package usecases

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// PublishEvents hands events drained from a session to the publisher. The
// session change is already applied, so a publish failure is logged rather
// than returned to the caller.
func PublishEvents(ctx context.Context, publisher contracts.EventPublisher, logger *zap.Logger, events []domain.DomainEvent) {
	if len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events); err != nil {
		logger.Error("failed to publish domain events",
			zap.String("aggregate_id", events[0].AggregateID()),
			zap.Int("count", len(events)),
			zap.Error(err),
		)
	}
}
