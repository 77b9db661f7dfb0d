package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/config"
)

func newTestBroker(t *testing.T) (*Broker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.DefaultRedisConfig()
	cfg.Addr = mr.Addr()
	return NewBroker(rdb, cfg), mr
}

func TestBrokerEnqueueDequeueAck(t *testing.T) {
	broker, _ := newTestBroker(t)
	ctx := context.Background()

	taskID, err := broker.Enqueue(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, taskID)

	depth, err := broker.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	msg, raw, err := broker.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(42), msg.ScenarioRunID)
	assert.Equal(t, taskID, msg.TaskID)
	assert.NotEmpty(t, raw)

	// Dequeued but unacknowledged: gone from the queue, on processing.
	depth, err = broker.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)

	require.NoError(t, broker.Ack(ctx, raw))

	recovered, err := broker.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, recovered)
}

func TestBrokerDequeueFIFO(t *testing.T) {
	broker, _ := newTestBroker(t)
	ctx := context.Background()

	_, err := broker.Enqueue(ctx, 1)
	require.NoError(t, err)
	_, err = broker.Enqueue(ctx, 2)
	require.NoError(t, err)

	msg, _, err := broker.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.ScenarioRunID)

	msg, _, err = broker.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(2), msg.ScenarioRunID)
}

func TestBrokerDequeueEmpty(t *testing.T) {
	broker, _ := newTestBroker(t)

	_, _, err := broker.Dequeue(context.Background(), 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestBrokerDequeueMalformedPayload(t *testing.T) {
	broker, mr := newTestBroker(t)
	ctx := context.Background()

	_, err := mr.Lpush(config.DefaultRedisConfig().QueueKey, "not-json")
	require.NoError(t, err)

	_, raw, err := broker.Dequeue(ctx, time.Second)
	require.Error(t, err)
	assert.Equal(t, "not-json", raw)

	// The caller can still acknowledge the poison message by token.
	require.NoError(t, broker.Ack(ctx, raw))
}

func TestBrokerRequeue(t *testing.T) {
	broker, _ := newTestBroker(t)
	ctx := context.Background()

	_, err := broker.Enqueue(ctx, 7)
	require.NoError(t, err)

	_, raw, err := broker.Dequeue(ctx, time.Second)
	require.NoError(t, err)

	require.NoError(t, broker.Requeue(ctx, raw))

	depth, err := broker.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	msg, _, err := broker.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(7), msg.ScenarioRunID)
}

func TestBrokerRecoverRequeuesInFlight(t *testing.T) {
	broker, _ := newTestBroker(t)
	ctx := context.Background()

	_, err := broker.Enqueue(ctx, 1)
	require.NoError(t, err)
	_, err = broker.Enqueue(ctx, 2)
	require.NoError(t, err)

	// Simulate a crash after dequeue, before ack.
	_, _, err = broker.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	_, _, err = broker.Dequeue(ctx, time.Second)
	require.NoError(t, err)

	recovered, err := broker.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, recovered)

	depth, err := broker.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	// Recovery preserves FIFO order.
	msg, _, err := broker.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), msg.ScenarioRunID)
}
