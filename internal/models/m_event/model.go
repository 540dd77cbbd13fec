package m_event

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the domain_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation appending one event. recorded_at is the
// commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.EventID,
		data.EventType,
		data.AggregateID,
		data.Payload,
		data.OccurredAt,
		spanner.CommitTimestamp,
	})
}

// DeleteMut creates a mutation deleting one event.
func (m *Model) DeleteMut(eventID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{eventID})
}

// DeleteAllMut creates a mutation deleting every event.
func (m *Model) DeleteAllMut() *spanner.Mutation {
	return spanner.Delete(TableName, spanner.AllKeys())
}
