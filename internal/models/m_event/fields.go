package m_event

// Field name constants for the domain_events table.
const (
	TableName = "domain_events"

	EventID     = "event_id"
	EventType   = "event_type"
	AggregateID = "aggregate_id"
	Payload     = "payload"
	OccurredAt  = "occurred_at"
	RecordedAt  = "recorded_at"
)

// Columns lists every column in Data field order.
var Columns = []string{
	EventID,
	EventType,
	AggregateID,
	Payload,
	OccurredAt,
	RecordedAt,
}
