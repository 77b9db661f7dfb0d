package config

import "time"

// QueueConfig contains broker and worker pool configuration.
// These values control how scenario runs are dequeued, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently dequeues and processes scenario runs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global limit of scenario runs being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check; a worker
	// at the limit requeues its message and backs off.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// DequeueTimeout is how long a worker blocks on the broker waiting for
	// a message before re-checking its shutdown signal.
	DequeueTimeout time.Duration `yaml:"dequeue_timeout"`

	// BackoffInterval is the base wait after a dequeue error or when the
	// concurrency limit is reached.
	BackoffInterval time.Duration `yaml:"backoff_interval"`

	// BackoffJitter is the random jitter added to BackoffInterval.
	// Actual wait: BackoffInterval ± BackoffJitter.
	BackoffJitter time.Duration `yaml:"backoff_jitter"`

	// GracefulShutdownTimeout is the max time to wait for in-flight scenario
	// runs to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       5,
		DequeueTimeout:          5 * time.Second,
		BackoffInterval:         1 * time.Second,
		BackoffJitter:           500 * time.Millisecond,
		GracefulShutdownTimeout: 5 * time.Minute,
	}
}
