package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds how many pending messages one relay tick drains.
const relayBatchSize = 100

// messageProducer sends one keyed payload to the message bus.
type messageProducer interface {
	Produce(ctx context.Context, key string, payload []byte) error
}

// OutboxRelayJob drains pending outbox messages to the message bus.
// Runs every second; each tick reads a batch of unsent rows in insertion
// order, produces them, and marks them sent. A produce failure stops the
// tick so messages keep their order; the next tick retries from the same
// row, which is why delivery is at-least-once.
type OutboxRelayJob struct {
	outboxRepo ports.OutboxRepository
	producer   messageProducer
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOutboxRelayJob creates a relay job over the given outbox and producer.
func NewOutboxRelayJob(outboxRepo ports.OutboxRepository, producer messageProducer, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		outboxRepo: outboxRepo,
		producer:   producer,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) relayPending(ctx context.Context) error {
	messages, err := j.outboxRepo.GetPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err = j.producer.Produce(ctx, message.Key, message.Payload); err != nil {
			return err
		}

		if err = j.outboxRepo.MarkSent(ctx, message.ID); err != nil {
			return err
		}
	}

	return nil
}
