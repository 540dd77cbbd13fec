package repo

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// ErrSessionExists is returned when Create reuses an ID.
var ErrSessionExists = errors.New("session already exists")

type sessionEntry struct {
	mu      sync.Mutex
	session *domain.Session
	version int64
}

// MemorySessionRepo keeps sessions in process memory. Each session has its own
// lock so unrelated shoppers never wait on each other.
type MemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewMemorySessionRepo creates an empty repository.
func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{sessions: make(map[string]*sessionEntry)}
}

// Create implements contracts.SessionRepository.
func (r *MemorySessionRepo) Create(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID() == "" {
		return domain.ErrEmptySessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID()]; ok {
		return errors.Wrapf(ErrSessionExists, "id %s", session.ID())
	}
	session.Changes().Clear()
	r.sessions[session.ID()] = &sessionEntry{session: session, version: 1}
	return nil
}

// View implements contracts.SessionRepository.
func (r *MemorySessionRepo) View(ctx context.Context, id string, fn func(*domain.Session) error) error {
	entry, err := r.lookup(id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

// Update implements contracts.SessionRepository. The version advances only
// when fn marked part of the session dirty.
func (r *MemorySessionRepo) Update(ctx context.Context, id string, fn func(*domain.Session) error) error {
	entry, err := r.lookup(id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	err = fn(entry.session)
	if entry.session.Changes().HasChanges() {
		entry.version++
		entry.session.Changes().Clear()
	}
	return err
}

// Version returns the session's write counter, starting at 1.
func (r *MemorySessionRepo) Version(id string) (int64, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return 0, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.version, nil
}

// Count implements contracts.SessionRepository.
func (r *MemorySessionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *MemorySessionRepo) lookup(id string) (*sessionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, errors.Wrapf(domain.ErrSessionNotFound, "id %s", id)
	}
	return entry, nil
}
