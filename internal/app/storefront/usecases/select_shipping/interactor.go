package select_shipping

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases"
)

// Request carries the shipping option name ("standard" or "express").
type Request struct {
	SessionID string
	Option    string
}

// Interactor handles the select shipping use case.
type Interactor struct {
	sessions  contracts.SessionRepository
	publisher contracts.EventPublisher
	logger    *zap.Logger
}

// NewInteractor creates a new select shipping interactor.
func NewInteractor(sessions contracts.SessionRepository, publisher contracts.EventPublisher, logger *zap.Logger) *Interactor {
	return &Interactor{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute switches the session's shipping option.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	option, err := domain.ParseShippingOption(req.Option)
	if err != nil {
		return err
	}

	var events []domain.DomainEvent
	err = i.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		if err := s.SelectShipping(option); err != nil {
			return err
		}
		events = s.PullEvents()
		return nil
	})
	if err != nil {
		return err
	}

	usecases.PublishEvents(ctx, i.publisher, i.logger, events)
	return nil
}
