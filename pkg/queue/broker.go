package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/config"
)

// Message is the broker wire format. Producers enqueue it at submit time;
// workers consume it and claim the referenced run. TaskID ties log lines on
// both sides of the queue together.
type Message struct {
	ScenarioRunID int64  `json:"scenario_run_id"`
	TaskID        string `json:"task_id"`
}

// Broker is a reliable redis list queue. Dequeue moves a message from the
// queue list to a processing list; Ack removes it from the processing list
// only after the run is finalized, so a crash between the two leaves the
// message recoverable.
type Broker struct {
	rdb        *redis.Client
	queueKey   string
	processing string
}

// NewBroker creates a Broker on an existing redis client.
func NewBroker(rdb *redis.Client, cfg *config.RedisConfig) *Broker {
	return &Broker{
		rdb:        rdb,
		queueKey:   cfg.QueueKey,
		processing: cfg.ProcessingKey,
	}
}

// Enqueue pushes a scenario-run message onto the queue and returns the
// generated task id.
func (b *Broker) Enqueue(ctx context.Context, scenarioRunID int64) (string, error) {
	taskID := uuid.New().String()
	payload, err := json.Marshal(Message{ScenarioRunID: scenarioRunID, TaskID: taskID})
	if err != nil {
		return "", fmt.Errorf("encode queue message: %w", err)
	}
	if err := b.rdb.LPush(ctx, b.queueKey, payload).Err(); err != nil {
		return "", fmt.Errorf("enqueue scenario run %d: %w", scenarioRunID, err)
	}
	return taskID, nil
}

// Dequeue blocks up to timeout for the next message, moving it to the
// processing list. The returned raw payload is the acknowledgement token.
func (b *Broker) Dequeue(ctx context.Context, timeout time.Duration) (Message, string, error) {
	raw, err := b.rdb.BLMove(ctx, b.queueKey, b.processing, "RIGHT", "LEFT", timeout).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Message{}, "", ErrNoMessages
		}
		return Message{}, "", fmt.Errorf("dequeue: %w", err)
	}

	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return Message{}, raw, fmt.Errorf("decode queue message %q: %w", raw, err)
	}
	return msg, raw, nil
}

// Ack removes a processed message from the processing list.
func (b *Broker) Ack(ctx context.Context, raw string) error {
	if err := b.rdb.LRem(ctx, b.processing, 1, raw).Err(); err != nil {
		return fmt.Errorf("ack message: %w", err)
	}
	return nil
}

// Requeue moves an in-flight message back to the queue, used when a worker
// cannot process it yet (for example at the concurrency limit).
func (b *Broker) Requeue(ctx context.Context, raw string) error {
	pipe := b.rdb.TxPipeline()
	pipe.LRem(ctx, b.processing, 1, raw)
	pipe.LPush(ctx, b.queueKey, raw)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("requeue message: %w", err)
	}
	return nil
}

// Recover requeues every message left on the processing list by a previous
// crashed consumer. Called once at startup before workers begin; the claim
// step makes redelivered messages idempotent.
func (b *Broker) Recover(ctx context.Context) (int, error) {
	recovered := 0
	for {
		raw, err := b.rdb.LMove(ctx, b.processing, b.queueKey, "RIGHT", "LEFT").Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				break
			}
			return recovered, fmt.Errorf("recover processing list: %w", err)
		}
		recovered++
		slog.Info("Requeued in-flight message from previous run", "payload", raw)
	}
	return recovered, nil
}

// QueueDepth returns the number of queued messages.
func (b *Broker) QueueDepth(ctx context.Context) (int, error) {
	n, err := b.rdb.LLen(ctx, b.queueKey).Result()
	if err != nil {
		return 0, fmt.Errorf("queue depth: %w", err)
	}
	return int(n), nil
}

// Ping verifies broker connectivity.
func (b *Broker) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}
