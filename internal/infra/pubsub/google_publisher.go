package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"nexus/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Jobs are enqueued one at a time from request paths; holding them for batching only adds latency.
const googlePublishDelay = 10 * time.Millisecond

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist, so a typo surfaces at start-up
// rather than on the first enqueue.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.JobPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = googlePublishDelay

	return &googlePublisher{client: client, publisher: publisher, logger: logger}, nil
}

func (p *googlePublisher) PublishJob(ctx context.Context, msg *service.JobMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: jobAttributes(msg),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish job %s", msg.JobID)
	}

	p.logger.DebugContext(ctx, "job published",
		slog.String("job_id", msg.JobID),
		slog.String("job_name", msg.Name),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages before releasing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
