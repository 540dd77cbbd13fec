package repo

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_event"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// SpannerEventStore appends domain events to the domain_events table and
// serves the events listing from it.
type SpannerEventStore struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_event.Model
}

// NewSpannerEventStore creates an event store over an open Spanner client.
func NewSpannerEventStore(client *spanner.Client) *SpannerEventStore {
	return &SpannerEventStore{
		client:    client,
		committer: committer.NewCommitter(client),
		model:     m_event.NewModel(),
	}
}

// RecordToData converts an enriched record to its row.
func RecordToData(rec *contracts.EventRecord) *m_event.Data {
	return &m_event.Data{
		EventID:     rec.EventID,
		EventType:   rec.EventType,
		AggregateID: rec.AggregateID,
		Payload:     spanner.NullJSON{Value: json.RawMessage(rec.Payload), Valid: true},
		OccurredAt:  rec.OccurredAt,
	}
}

// DataToRecord converts a row back to a record.
func DataToRecord(data *m_event.Data) *contracts.EventRecord {
	payload := "{}"
	if data.Payload.Valid {
		payload = data.Payload.String()
	}
	return &contracts.EventRecord{
		EventID:     data.EventID,
		EventType:   data.EventType,
		AggregateID: data.AggregateID,
		Payload:     payload,
		OccurredAt:  data.OccurredAt,
	}
}

// Publish implements contracts.EventPublisher. All events of one call commit
// together.
func (s *SpannerEventStore) Publish(ctx context.Context, events []domain.DomainEvent) error {
	plan := committer.NewPlan()
	for _, event := range events {
		rec, err := EnrichEvent(event)
		if err != nil {
			return err
		}
		plan.Add(s.model.InsertMut(RecordToData(rec)))
	}

	if err := s.committer.Apply(ctx, plan); err != nil {
		return errors.Wrap(err, "failed to store events")
	}
	return nil
}

func eventFilterBase(filter contracts.EventFilter) *query.Builder {
	return query.From(m_event.TableName).
		WhereIf(filter.EventType != "", query.Eq(m_event.EventType, filter.EventType)).
		WhereIf(filter.AggregateID != "", query.Eq(m_event.AggregateID, filter.AggregateID))
}

// EventsStatement builds the page query for filter, newest first.
func EventsStatement(filter contracts.EventFilter) spanner.Statement {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	if limit > MaxEventLimit {
		limit = MaxEventLimit
	}

	return eventFilterBase(filter).
		Select(m_event.Columns...).
		OrderBy(m_event.OccurredAt, query.Desc).
		Limit(int64(limit)).
		Build()
}

// CountStatement builds the total-match query for filter.
func CountStatement(filter contracts.EventFilter) spanner.Statement {
	return eventFilterBase(filter).Select("COUNT(*)").Build()
}

// ListEvents implements contracts.EventReader. Page and count are read at
// the same timestamp.
func (s *SpannerEventStore) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]*contracts.EventRecord, int64, error) {
	txn := s.client.ReadOnlyTransaction()
	defer txn.Close()

	iter := txn.Query(ctx, EventsStatement(filter))
	defer iter.Stop()

	records := make([]*contracts.EventRecord, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to iterate events")
		}

		var data m_event.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, 0, errors.Wrap(err, "failed to parse event")
		}
		records = append(records, DataToRecord(&data))
	}

	total, err := countRows(txn.Query(ctx, CountStatement(filter)))
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// PruneBefore deletes events that occurred before cutoff and returns how
// many rows it removed. With dryRun it only counts them.
func (s *SpannerEventStore) PruneBefore(ctx context.Context, cutoff time.Time, dryRun bool) (int64, error) {
	if dryRun {
		stmt := query.From(m_event.TableName).
			Select("COUNT(*)").
			Where(query.Lt(m_event.OccurredAt, cutoff)).
			Build()
		return countRows(s.client.Single().Query(ctx, stmt))
	}

	stmt := spanner.Statement{
		SQL:    "DELETE FROM " + m_event.TableName + " WHERE " + m_event.OccurredAt + " < @cutoff",
		Params: map[string]interface{}{"cutoff": cutoff},
	}
	deleted, err := s.client.PartitionedUpdate(ctx, stmt)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune events")
	}
	return deleted, nil
}

func countRows(iter *spanner.RowIterator) (int64, error) {
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count events")
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, errors.Wrap(err, "failed to parse count")
	}
	return count, nil
}
