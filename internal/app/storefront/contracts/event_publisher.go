package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// EventRecord is a domain event enriched with an ID and a JSON payload.
type EventRecord struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string // JSON
	OccurredAt  time.Time
}

// EventPublisher delivers domain events after the mutation that produced them.
type EventPublisher interface {
	Publish(ctx context.Context, events []domain.DomainEvent) error
}

// EventFilter selects records from the event log.
type EventFilter struct {
	EventType   string
	AggregateID string
	Limit       int
}

// EventReader lists recorded events, newest first.
type EventReader interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*EventRecord, int64, error)
}
