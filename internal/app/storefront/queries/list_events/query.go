package list_events

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
)

// Request contains filtering parameters for listing events.
type Request struct {
	EventType   string // e.g. "cart.item_added"
	AggregateID string // session ID
	Limit       int    // default 100, max 1000
}

// Query handles the list events query.
type Query struct {
	reader contracts.EventReader
}

// NewQuery creates a new list events query.
func NewQuery(reader contracts.EventReader) *Query {
	return &Query{
		reader: reader,
	}
}

// Execute retrieves recorded events, newest first, and the total match count.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.EventRecord, int64, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	return q.reader.ListEvents(ctx, contracts.EventFilter{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Limit:       limit,
	})
}
