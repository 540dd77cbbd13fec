package repo

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// FanoutPublisher delivers each batch to every target in order. A failing
// target is logged and does not stop later targets; the first error is returned.
type FanoutPublisher struct {
	targets []contracts.EventPublisher
	logger  *zap.Logger
}

// NewFanoutPublisher creates a publisher over targets. Nil targets are skipped.
func NewFanoutPublisher(logger *zap.Logger, targets ...contracts.EventPublisher) *FanoutPublisher {
	live := make([]contracts.EventPublisher, 0, len(targets))
	for _, t := range targets {
		if t != nil {
			live = append(live, t)
		}
	}
	return &FanoutPublisher{targets: live, logger: logger}
}

// Publish implements contracts.EventPublisher.
func (f *FanoutPublisher) Publish(ctx context.Context, events []domain.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	var first error
	for i, target := range f.targets {
		if err := target.Publish(ctx, events); err != nil {
			f.logger.Error("event publish failed",
				zap.Int("target", i),
				zap.Int("events", len(events)),
				zap.Error(err),
			)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
