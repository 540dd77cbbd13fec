package toggle_wishlist

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request identifies the product to toggle.
type Request struct {
	SessionID string
	ProductID string
}

// Interactor handles the wishlist toggle use case.
type Interactor struct {
	sessions  contracts.SessionRepository
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new toggle wishlist interactor.
func NewInteractor(sessions contracts.SessionRepository, publisher contracts.EventPublisher, logger *zap.Logger) *Interactor {
	return &Interactor{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute adds the product to the wishlist, or removes it if already there.
// It returns true when the product is now wishlisted.
func (i *Interactor) Execute(ctx context.Context, req *Request) (bool, error) {
	var (
		added  bool
		events []domain.DomainEvent
	)
	err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		var err error
		added, err = s.ToggleWishlist(req.ProductID)
		if err != nil {
			return err
		}
		events = s.PullEvents()
		return nil
	})
	if err != nil {
		return false, err
	}

	usecases.PublishEvents(ctx, i.publisher, i.logger, events)
	return added, nil
}
