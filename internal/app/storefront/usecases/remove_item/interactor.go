package remove_item

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request identifies the line to remove.
type Request struct {
	SessionID string
	ProductID string
	Size      string
	Color     string
}

// Interactor handles the remove from cart use case.
type Interactor struct {
	sessions  contracts.SessionRepository
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(sessions contracts.SessionRepository, publisher contracts.EventPublisher, logger *zap.Logger) *Interactor {
	return &Interactor{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute drops the line. Removing a line that is not in the cart succeeds.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return domain.ErrEmptyProductID
	}

	key := domain.LineKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}

	var events []domain.DomainEvent
	err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		s.RemoveItem(key)
		events = s.PullEvents()
		return nil
	})
	if err != nil {
		return err
	}

	usecases.PublishEvents(ctx, i.publisher, i.logger, events)
	return nil
}
