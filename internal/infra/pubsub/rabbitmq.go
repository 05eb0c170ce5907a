package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"nexus/config"
	"nexus/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ holds a broker connection and channel with the job topology declared.
type RabbitMQ struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Cfg     *config.RabbitMQConfig
}

// NewRabbitMQ dials the broker and declares the job topology.
func NewRabbitMQ(cfg *config.RabbitMQConfig) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	r := &RabbitMQ{
		Conn:    conn,
		Channel: ch,
		Cfg:     cfg,
	}
	if err := r.SetupQueues(); err != nil {
		r.Close()

		return nil, err
	}

	return r, nil
}

// SetupQueues declares the job exchange, the durable job queue and its dead letter queue.
func (r *RabbitMQ) SetupQueues() error {
	deadLetterExchange := r.Cfg.DeadLetter + "_exchange"

	if err := r.Channel.ExchangeDeclare(deadLetterExchange, "direct", true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "failed to declare dead letter exchange")
	}

	if _, err := r.Channel.QueueDeclare(r.Cfg.DeadLetter, true, false, false, false, amqp.Table{
		"x-queue-type": "classic",
	}); err != nil {
		return errors.Wrap(err, "failed to declare dead letter queue")
	}

	if err := r.Channel.QueueBind(r.Cfg.DeadLetter, r.Cfg.DeadLetter, deadLetterExchange, false, nil); err != nil {
		return errors.Wrap(err, "failed to bind dead letter queue")
	}

	if err := r.Channel.ExchangeDeclare(r.Cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return errors.Wrap(err, "failed to declare job exchange")
	}

	if _, err := r.Channel.QueueDeclare(r.Cfg.Queue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    deadLetterExchange,
		"x-dead-letter-routing-key": r.Cfg.DeadLetter,
	}); err != nil {
		return errors.Wrap(err, "failed to declare job queue")
	}

	if err := r.Channel.QueueBind(r.Cfg.Queue, r.Cfg.Queue, r.Cfg.Exchange, false, nil); err != nil {
		return errors.Wrap(err, "failed to bind job queue")
	}

	return nil
}

// Close closes the channel and the connection.
func (r *RabbitMQ) Close() {
	if r.Channel != nil {
		_ = r.Channel.Close()
	}
	if r.Conn != nil {
		_ = r.Conn.Close()
	}
}

// rabbitMQPublisher implements JobPublisher with persistent broker messages.
type rabbitMQPublisher struct {
	mu     sync.Mutex
	broker *RabbitMQ
	logger *slog.Logger
}

// NewRabbitMQPublisher connects to the broker and returns a publisher.
func NewRabbitMQPublisher(cfg *config.RabbitMQConfig, logger *slog.Logger) (service.JobPublisher, error) {
	broker, err := NewRabbitMQ(cfg)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{broker: broker, logger: logger}, nil
}

// PublishJob publishes the job message to the job exchange.
func (p *rabbitMQPublisher) PublishJob(ctx context.Context, msg *service.JobMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	publishing := amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now(),
		ContentType:   "application/json",
		MessageId:     msg.JobID,
		CorrelationId: msg.RequestID,
		Type:          msg.Name,
		Body:          body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.broker.Channel.PublishWithContext(ctx, p.broker.Cfg.Exchange, p.broker.Cfg.Queue, false, false, publishing); err != nil {
		return errors.Wrap(err, "failed to publish job to rabbitmq")
	}

	p.logger.DebugContext(ctx, "[RabbitMQ] Job published",
		slog.String("job_id", msg.JobID),
		slog.String("job_name", msg.Name),
	)

	return nil
}

// Close closes the broker connection.
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.broker.Close()

	return nil
}
