package repo

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

const (
	DefaultEventLimit    = 100
	MaxEventLimit        = 1000
	DefaultEventCapacity = 10000
)

// EnrichEvent converts a domain event to a record with a fresh ID and JSON payload.
func EnrichEvent(event domain.DomainEvent) (*contracts.EventRecord, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to serialize %s event", event.EventType())
	}

	return &contracts.EventRecord{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     string(data),
		OccurredAt:  event.OccurredAt(),
	}, nil
}

// EventLog is a bounded in-memory event store. It is both a publisher and
// the read model behind the events listing; the oldest records are dropped
// once capacity is reached.
type EventLog struct {
	mu       sync.RWMutex
	records  []*contracts.EventRecord
	capacity int
}

// NewEventLog creates a log holding at most capacity records.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultEventCapacity
	}
	return &EventLog{records: make([]*contracts.EventRecord, 0), capacity: capacity}
}

// Publish implements contracts.EventPublisher.
func (l *EventLog) Publish(ctx context.Context, events []domain.DomainEvent) error {
	enriched := make([]*contracts.EventRecord, 0, len(events))
	for _, event := range events {
		rec, err := EnrichEvent(event)
		if err != nil {
			return err
		}
		enriched = append(enriched, rec)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, enriched...)
	if overflow := len(l.records) - l.capacity; overflow > 0 {
		l.records = append(l.records[:0:0], l.records[overflow:]...)
	}
	return nil
}

// ListEvents implements contracts.EventReader. The returned total counts
// every matching record, not just the page.
func (l *EventLog) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]*contracts.EventRecord, int64, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	if limit > MaxEventLimit {
		limit = MaxEventLimit
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*contracts.EventRecord, 0, min(limit, len(l.records)))
	var total int64
	for i := len(l.records) - 1; i >= 0; i-- {
		rec := l.records[i]
		if filter.EventType != "" && rec.EventType != filter.EventType {
			continue
		}
		if filter.AggregateID != "" && rec.AggregateID != filter.AggregateID {
			continue
		}
		total++
		if len(out) < limit {
			out = append(out, rec)
		}
	}
	return out, total, nil
}

// Len returns the number of stored records.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
