package config

import (
	"errors"
	"fmt"
)

// Validator checks a loaded Config for internal consistency.
type Validator struct {
	cfg *Config
}

// NewValidator creates a Validator for the given config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation and returns the first failure.
func (v *Validator) ValidateAll() error {
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue: %w", err)
	}
	if err := v.validateRedis(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention: %w", err)
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return errors.New("queue configuration is nil")
	}
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return fmt.Errorf("worker_count must be between 1 and 50, got %d", q.WorkerCount)
	}
	if q.MaxConcurrentRuns < 1 {
		return fmt.Errorf("max_concurrent_runs must be at least 1, got %d", q.MaxConcurrentRuns)
	}
	if q.DequeueTimeout <= 0 {
		return errors.New("dequeue_timeout must be positive")
	}
	if q.BackoffInterval <= 0 {
		return errors.New("backoff_interval must be positive")
	}
	if q.BackoffJitter < 0 {
		return errors.New("backoff_jitter must be non-negative")
	}
	if q.BackoffJitter >= q.BackoffInterval {
		return errors.New("backoff_jitter must be less than backoff_interval")
	}
	if q.GracefulShutdownTimeout <= 0 {
		return errors.New("graceful_shutdown_timeout must be positive")
	}
	return nil
}

func (v *Validator) validateRedis() error {
	r := v.cfg.Redis
	if r == nil {
		return errors.New("redis configuration is nil")
	}
	if r.Addr == "" {
		return errors.New("addr must be set")
	}
	if r.QueueKey == "" {
		return errors.New("queue_key must be set")
	}
	if r.ProcessingKey == "" {
		return errors.New("processing_key must be set")
	}
	if r.QueueKey == r.ProcessingKey {
		return errors.New("queue_key and processing_key must differ")
	}
	return nil
}

func (v *Validator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return errors.New("retention configuration is nil")
	}
	if r.RunRetentionDays < 1 {
		return fmt.Errorf("run_retention_days must be at least 1, got %d", r.RunRetentionDays)
	}
	if r.CleanupInterval <= 0 {
		return errors.New("cleanup_interval must be positive")
	}
	return nil
}
