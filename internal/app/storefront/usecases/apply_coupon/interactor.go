package apply_coupon

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request carries the code the shopper entered.
type Request struct {
	SessionID string
	Code      string
}

// Interactor handles the apply coupon use case.
type Interactor struct {
	sessions  contracts.SessionRepository
	coupons   *domain.CouponBook
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new apply coupon interactor.
func NewInteractor(
	sessions contracts.SessionRepository,
	coupons *domain.CouponBook,
	publisher contracts.EventPublisher,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		sessions:  sessions,
		coupons:   coupons,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute stores the code and reports whether it is a known coupon. Unknown
// codes are not an error; they price to a zero discount. A blank code clears
// the coupon.
func (i *Interactor) Execute(ctx context.Context, req *Request) (bool, error) {
	var (
		recognized bool
		events     []domain.DomainEvent
	)
	err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		recognized = s.ApplyCoupon(req.Code, i.coupons)
		events = s.PullEvents()
		return nil
	})
	if err != nil {
		return false, err
	}

	usecases.PublishEvents(ctx, i.publisher, i.logger, events)
	return recognized, nil
}
