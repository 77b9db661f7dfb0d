package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/config"
)

// WorkerPool manages a pool of queue workers sharing one broker.
type WorkerPool struct {
	podID       string
	client      *ent.Client
	broker      *Broker
	config      *config.QueueConfig
	runExecutor RunExecutor
	workers     []*Worker

	// Run cancel registry: scenario_run_id -> cancel function
	activeRuns map[int64]context.CancelFunc
	mu         sync.RWMutex
	started    bool
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, broker *Broker, cfg *config.QueueConfig, executor RunExecutor) *WorkerPool {
	return &WorkerPool{
		podID:       podID,
		client:      client,
		broker:      broker,
		config:      cfg,
		runExecutor: executor,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		activeRuns:  make(map[int64]context.CancelFunc),
	}
}

// Start recovers in-flight messages from a previous crash and spawns the
// worker goroutines. It is safe to call multiple times; subsequent calls
// are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	recovered, err := p.broker.Recover(ctx)
	if err != nil {
		return fmt.Errorf("recovering processing list: %w", err)
	}
	if recovered > 0 {
		slog.Info("Recovered in-flight messages", "count", recovered)
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.broker, p.config, p.runExecutor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current runs before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveRunIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active runs to complete",
			"count", len(active),
			"run_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	slog.Info("Worker pool stopped gracefully")
}

// RegisterRun stores a cancel function for API-triggered cancellation.
func (p *WorkerPool) RegisterRun(runID int64, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRuns[runID] = cancel
}

// UnregisterRun removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterRun(runID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, runID)
}

// CancelRun triggers context cancellation for a run on this pod. The
// orchestrator also polls cancel_requested at every step boundary, so runs
// owned by other pods converge without this fast path.
func (p *WorkerPool) CancelRun(runID int64) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeRuns[runID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.broker.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeRuns, errA := p.client.ScenarioRun.Query().
		Where(
			scenariorun.RunStatusEQ(scenariorun.RunStatusRunning),
			scenariorun.IsDeletedEQ(0),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active runs for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	brokerHealthy := errQ == nil
	dbHealthy := errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy && brokerHealthy

	var dbError string
	if errA != nil {
		dbError = fmt.Sprintf("active runs query failed: %v", errA)
	}
	var brokerError string
	if errQ != nil {
		brokerError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		BrokerReachable: brokerHealthy,
		BrokerError:     brokerError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ActiveRuns:      activeRuns,
		MaxConcurrent:   p.config.MaxConcurrentRuns,
		QueueDepth:      queueDepth,
		WorkerStats:     workerStats,
	}
}

// getActiveRunIDs returns IDs of currently processing runs (for logging).
func (p *WorkerPool) getActiveRunIDs() []int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	runs := make([]int64, 0, len(p.activeRuns))
	for id := range p.activeRuns {
		runs = append(runs, id)
	}
	return runs
}
