package create_session

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Request contains the data needed to open a session.
type Request struct {
	// SessionID is optional; a UUID is generated when blank.
	SessionID string
}

// Interactor handles the create session use case.
type Interactor struct {
	sessions contracts.SessionRepository
	tiers    *domain.TierTable
	clock    clock.Clock
	logger   *zap.Logger
}

// NewInteractor creates a new create session interactor.
func NewInteractor(
	sessions contracts.SessionRepository,
	tiers *domain.TierTable,
	clock clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		sessions: sessions,
		tiers:    tiers,
		clock:    clock,
		logger:   logger,
	}
}

// Execute opens an empty session and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	id := req.SessionID
	if id == "" {
		id = uuid.New().String()
	}

	session, err := domain.NewSession(id, i.tiers, i.clock)
	if err != nil {
		return "", errors.Wrap(err, "failed to create session")
	}
	if err := i.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	i.logger.Debug("session created", zap.String("session_id", id))
	return id, nil
}
