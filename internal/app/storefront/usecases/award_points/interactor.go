package award_points

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request credits Amount points to a session.
type Request struct {
	SessionID string
	Amount    int64
	Reason    string
}

// Response is the account state after the award.
type Response struct {
	Balance     int64
	Tier        domain.MembershipTier
	TierChanged bool
}

// Interactor handles the award points use case.
type Interactor struct {
	sessions  contracts.SessionRepository
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new award points interactor.
func NewInteractor(sessions contracts.SessionRepository, publisher contracts.EventPublisher, logger *zap.Logger) *Interactor {
	return &Interactor{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute credits the points. Negative amounts fail with domain.ErrInvalidAmount.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Amount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	var (
		resp   Response
		events []domain.DomainEvent
	)
	err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		before, err := s.CurrentTier()
		if err != nil {
			return err
		}
		if err := s.AwardPoints(req.Amount, req.Reason); err != nil {
			return err
		}
		resp.Tier, err = s.CurrentTier()
		if err != nil {
			return err
		}
		resp.TierChanged = resp.Tier.Name != before.Name
		resp.Balance = s.Points()
		events = s.PullEvents()
		return nil
	})
	if err != nil {
		return nil, err
	}

	usecases.PublishEvents(ctx, i.publisher, i.logger, events)
	return &resp, nil
}
