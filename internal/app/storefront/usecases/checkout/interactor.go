package checkout

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/pricing"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request identifies the session checking out.
type Request struct {
	SessionID string
}

// Interactor handles the mock checkout use case. No payment is taken.
type Interactor struct {
	sessions  contracts.SessionRepository
	quoter    *pricing.Quoter
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new checkout interactor.
func NewInteractor(
	sessions contracts.SessionRepository,
	quoter *pricing.Quoter,
	publisher contracts.EventPublisher,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		sessions:  sessions,
		quoter:    quoter,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute prices the cart, places the order, credits the order's loyalty
// points and empties the cart.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	var (
		order  *domain.Order
		events []domain.DomainEvent
	)
	err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		if len(s.Items()) == 0 {
			return domain.ErrEmptyCart
		}

		quote, err := i.quoter.Quote(ctx, s)
		if err != nil {
			return err
		}

		order, err = s.PlaceOrder(uuid.New().String(), quote)
		if err != nil {
			return err
		}
		events = s.PullEvents()
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.logger.Info("order placed",
		zap.String("session_id", req.SessionID),
		zap.String("order_id", order.ID),
		zap.String("total", order.Pricing.Total.String()),
		zap.Int64("points_earned", order.Pricing.LoyaltyPointsEarned),
	)
	usecases.PublishEvents(ctx, i.publisher, i.logger, events)
	return order, nil
}
