package get_loyalty_status

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Request identifies the session.
type Request struct {
	SessionID string
}

// Response is the shopper's loyalty standing.
type Response struct {
	SessionID    string
	Points       int64
	Progress     domain.TierProgress
	OrdersPlaced int
}

// Query handles the loyalty status query.
type Query struct {
	sessions contracts.SessionRepository
}

// NewQuery creates a new loyalty status query.
func NewQuery(sessions contracts.SessionRepository) *Query {
	return &Query{
		sessions: sessions,
	}
}

// Execute reads the points balance and derives tier progress.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	var resp *Response
	err := q.sessions.View(ctx, req.SessionID, func(s *domain.Session) error {
		progress, err := s.TierProgress()
		if err != nil {
			return err
		}
		resp = &Response{
			SessionID:    s.ID(),
			Points:       s.Points(),
			Progress:     progress,
			OrdersPlaced: len(s.Orders()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
