package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// PubSubPublisher forwards domain events to a Cloud Pub/Sub topic as JSON.
type PubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *zap.Logger
}

// NewPubSubPublisher connects to projectID and verifies topicID exists.
func NewPubSubPublisher(ctx context.Context, projectID, topicID string, logger *zap.Logger, opts ...option.ClientOption) (*PubSubPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("pub/sub event publisher initialized",
		zap.String("project_id", projectID),
		zap.String("topic_id", topicID),
	)

	return &PubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Publish implements contracts.EventPublisher. Messages are sent concurrently
// and the call waits for every server acknowledgement.
func (p *PubSubPublisher) Publish(ctx context.Context, events []domain.DomainEvent) error {
	results := make([]*pubsub.PublishResult, 0, len(events))

	for _, event := range events {
		rec, err := EnrichEvent(event)
		if err != nil {
			return err
		}

		results = append(results, p.publisher.Publish(ctx, &pubsub.Message{
			Data: []byte(rec.Payload),
			Attributes: map[string]string{
				"event_id":     rec.EventID,
				"event_type":   rec.EventType,
				"aggregate_id": rec.AggregateID,
			},
		}))
	}

	for i, result := range results {
		serverID, err := result.Get(ctx)
		if err != nil {
			return errors.Wrapf(err, "failed to publish %s", events[i].EventType())
		}
		p.logger.Debug("event published",
			zap.String("event_type", events[i].EventType()),
			zap.String("aggregate_id", events[i].AggregateID()),
			zap.String("server_id", serverID),
		)
	}

	return nil
}

// Close flushes pending messages and releases the client.
func (p *PubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}
	return nil
}
