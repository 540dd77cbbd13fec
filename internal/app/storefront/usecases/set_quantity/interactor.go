package set_quantity

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request sets a line's quantity. Quantity <= 0 removes the line.
type Request struct {
	SessionID string
	ProductID string
	Size      string
	Color     string
	Quantity  int64
}

// Interactor handles the set quantity use case.
type Interactor struct {
	sessions  contracts.SessionRepository
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new set quantity interactor.
func NewInteractor(sessions contracts.SessionRepository, publisher contracts.EventPublisher, logger *zap.Logger) *Interactor {
	return &Interactor{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute overwrites the line's quantity. Lines not in the cart are left alone.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return domain.ErrEmptyProductID
	}

	key := domain.LineKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}

	var events []domain.DomainEvent
	err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		s.SetQuantity(key, req.Quantity)
		events = s.PullEvents()
		return nil
	})
	if err != nil {
		return err
	}

	usecases.PublishEvents(ctx, i.publisher, i.logger, events)
	return nil
}
