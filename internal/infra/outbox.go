package infra

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/capturely/platform/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxPoller polls the event_outbox table and publishes events to Kafka.
// Delivered rows are deleted, so a crash between publish and delete can
// replay an event. Consumers must treat events as at-least-once.
type OutboxPoller struct {
	pool      *pgxpool.Pool
	events    repository.OutboxRepository
	producer  *KafkaProducer
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
}

// NewOutboxPoller creates a new outbox poller.
func NewOutboxPoller(pool *pgxpool.Pool, producer *KafkaProducer, logger *slog.Logger) *OutboxPoller {
	return &OutboxPoller{
		pool:      pool,
		events:    repository.NewOutboxRepository(),
		producer:  producer,
		logger:    logger,
		interval:  500 * time.Millisecond,
		batchSize: 100,
	}
}

// Start begins polling in a goroutine. Stops when ctx is cancelled.
func (p *OutboxPoller) Start(ctx context.Context) {
	p.logger.Info("outbox poller started", "interval", p.interval, "batch_size", p.batchSize)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info("outbox poller stopped")
				return
			case <-ticker.C:
				if err := p.poll(ctx); err != nil {
					p.logger.Error("outbox poll error", "error", err)
				}
			}
		}
	}()
}

func (p *OutboxPoller) poll(ctx context.Context) error {
	pending, err := p.events.FetchUnpublished(ctx, p.pool, p.batchSize)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	published := make([]int64, 0, len(pending))
	for _, e := range pending {
		msg, _ := json.Marshal(e.Draft)

		// Event types already carry the full topic name, e.g.
		// capturely.booking.assigned.
		if err := p.producer.Publish(ctx, string(e.Draft.EventType), []byte(e.Draft.PartitionKey), msg); err != nil {
			p.logger.Error("kafka publish failed", "event_id", e.Draft.EventID, "error", err)
			continue
		}
		published = append(published, e.SeqID)
	}

	if err := p.events.MarkPublished(ctx, p.pool, published); err != nil {
		return err
	}

	p.logger.Debug("outbox poll complete", "published", len(published))
	return nil
}
