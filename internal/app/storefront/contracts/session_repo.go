package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// SessionRepository holds shopper sessions for the life of the process.
// Update and View run fn while holding that session's lock, so mutations on
// one session are applied one at a time.
type SessionRepository interface {
	// Create stores a new session. The session ID must be unused.
	Create(ctx context.Context, session *domain.Session) error

	// View runs fn against a session without recording changes.
	View(ctx context.Context, id string, fn func(*domain.Session) error) error

	// Update runs fn against a session. If fn returns an error, the error is
	// returned unchanged; changes fn made before failing are kept.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) error

	// Count returns the number of live sessions.
	Count() int
}
