package add_item

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request contains the line to add. Size and color are optional.
type Request struct {
	SessionID string
	ProductID string
	Size      string
	Color     string
	Quantity  int64
}

// Interactor handles the add to cart use case.
type Interactor struct {
	sessions  contracts.SessionRepository
	catalog   contracts.Catalog
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new add item interactor.
func NewInteractor(
	sessions contracts.SessionRepository,
	catalog contracts.Catalog,
	publisher contracts.EventPublisher,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		sessions:  sessions,
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute merges the quantity into the matching cart line and returns the
// line's new quantity.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	if req.ProductID == "" {
		return 0, domain.ErrEmptyProductID
	}
	if req.Quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if _, err := i.catalog.GetProduct(ctx, req.ProductID); err != nil {
		return 0, err
	}

	key := domain.LineKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}

	var (
		quantity int64
		events   []domain.DomainEvent
	)
	err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		if err := s.AddItem(key, req.Quantity); err != nil {
			return err
		}
		quantity = s.CartQuantity(key)
		events = s.PullEvents()
		return nil
	})
	if err != nil {
		return 0, err
	}

	usecases.PublishEvents(ctx, i.publisher, i.logger, events)
	return quantity, nil
}
