package m_event

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the domain_events table.
type Data struct {
	EventID     string           `spanner:"event_id"`
	EventType   string           `spanner:"event_type"`
	AggregateID string           `spanner:"aggregate_id"`
	Payload     spanner.NullJSON `spanner:"payload"`
	OccurredAt  time.Time        `spanner:"occurred_at"`
	RecordedAt  time.Time        `spanner:"recorded_at"`
}
