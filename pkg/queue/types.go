// Package queue provides the scenario-run broker and worker pool.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoMessages indicates the broker queue was empty for the whole
	// dequeue timeout.
	ErrNoMessages = errors.New("no messages available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor drives one claimed scenario run to a terminal state.
//
// The executor owns the ENTIRE run lifecycle after the claim:
//   - iterates steps and datasets sequentially
//   - persists request runs and variables progressively
//   - finalizes counters and terminal status itself
//
// The worker only handles: message parsing, pre-claim checks, the atomic
// claim, a failure fallback, and the late acknowledgement.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.ScenarioRun) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	BrokerReachable bool           `json:"broker_reachable"`
	BrokerError     string         `json:"broker_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveRuns      int            `json:"active_runs"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  int64     `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
