package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQueueConfig(t *testing.T) {
	cfg := DefaultQueueConfig()

	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 5, cfg.MaxConcurrentRuns)
	assert.Equal(t, 5*time.Second, cfg.DequeueTimeout)
	assert.Equal(t, 1*time.Second, cfg.BackoffInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.BackoffJitter)
	assert.Equal(t, 5*time.Minute, cfg.GracefulShutdownTimeout)
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		queue   *QueueConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			queue:   DefaultQueueConfig(),
			wantErr: false,
		},
		{
			name:    "nil queue",
			queue:   nil,
			wantErr: true,
			errMsg:  "queue configuration is nil",
		},
		{
			name: "worker count too low",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.WorkerCount = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "worker_count must be between 1 and 50",
		},
		{
			name: "worker count too high",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.WorkerCount = 51
				return q
			}(),
			wantErr: true,
			errMsg:  "worker_count must be between 1 and 50",
		},
		{
			name: "max concurrent runs zero",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.MaxConcurrentRuns = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "max_concurrent_runs must be at least 1",
		},
		{
			name: "dequeue timeout zero",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.DequeueTimeout = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "dequeue_timeout must be positive",
		},
		{
			name: "negative jitter",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.BackoffJitter = -1 * time.Second
				return q
			}(),
			wantErr: true,
			errMsg:  "backoff_jitter must be non-negative",
		},
		{
			name: "zero jitter is valid",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.BackoffJitter = 0
				return q
			}(),
			wantErr: false,
		},
		{
			name: "jitter equal to backoff interval",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.BackoffInterval = 1 * time.Second
				q.BackoffJitter = 1 * time.Second
				return q
			}(),
			wantErr: true,
			errMsg:  "backoff_jitter must be less than backoff_interval",
		},
		{
			name: "graceful shutdown timeout zero",
			queue: func() *QueueConfig {
				q := DefaultQueueConfig()
				q.GracefulShutdownTimeout = 0
				return q
			}(),
			wantErr: true,
			errMsg:  "graceful_shutdown_timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Queue: tt.queue}
			v := NewValidator(cfg)
			err := v.validateQueue()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRedis(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RedisConfig)
		wantErr string
	}{
		{name: "valid defaults", mutate: func(r *RedisConfig) {}},
		{name: "missing addr", mutate: func(r *RedisConfig) { r.Addr = "" }, wantErr: "addr must be set"},
		{name: "missing queue key", mutate: func(r *RedisConfig) { r.QueueKey = "" }, wantErr: "queue_key must be set"},
		{name: "missing processing key", mutate: func(r *RedisConfig) { r.ProcessingKey = "" }, wantErr: "processing_key must be set"},
		{
			name:    "same queue and processing key",
			mutate:  func(r *RedisConfig) { r.ProcessingKey = r.QueueKey },
			wantErr: "queue_key and processing_key must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redis := DefaultRedisConfig()
			tt.mutate(redis)
			v := NewValidator(&Config{Redis: redis})
			err := v.validateRedis()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
