package spin_wheel

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request identifies the spinning session.
type Request struct {
	SessionID string
}

// Response reports where the wheel stopped.
type Response struct {
	Index         int
	Segment       domain.WheelSegment
	PointsAwarded int64
	Balance       int64
}

// Interactor handles the spin-to-win use case.
type Interactor struct {
	sessions  contracts.SessionRepository
	wheel     *domain.SpinWheel
	rng       domain.RandomSource
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new spin wheel interactor. A nil rng uses the
// process-wide generator from math/rand/v2.
func NewInteractor(
	sessions contracts.SessionRepository,
	wheel *domain.SpinWheel,
	rng domain.RandomSource,
	publisher contracts.EventPublisher,
	logger *zap.Logger,
) *Interactor {
	if rng == nil {
		rng = globalRandom{}
	}
	return &Interactor{
		sessions:  sessions,
		wheel:     wheel,
		rng:       rng,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute spins once. Point segments credit the session's loyalty account;
// other prizes are only reported.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	var (
		resp   Response
		events []domain.DomainEvent
	)
	err := i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		resp.Index, resp.Segment = i.wheel.Spin(i.rng)
		if resp.Segment.AwardsPoints() {
			if err := s.AwardPoints(resp.Segment.Value, "spin wheel: "+resp.Segment.Label); err != nil {
				return err
			}
			resp.PointsAwarded = resp.Segment.Value
		}
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

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }
