package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenario"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Cancellation and failure texts surfaced on terminal runs.
const (
	CancelReason          = "场景执行已取消"
	scenarioMissingFormat = "测试场景 %d 不存在"
)

// Worker is a single queue worker that dequeues and processes scenario runs.
type Worker struct {
	id          string
	podID       string
	client      *ent.Client
	broker      *Broker
	config      *config.QueueConfig
	runExecutor RunExecutor
	pool        RunRegistry
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  int64
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(runID int64, cancel context.CancelFunc)
	UnregisterRun(runID int64)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, broker *Broker, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		broker:       broker,
		config:       cfg,
		runExecutor:  executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker consume loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.consumeOne(ctx); err != nil {
				if errors.Is(err, ErrNoMessages) {
					continue
				}
				if errors.Is(err, ErrAtCapacity) {
					w.sleep(w.backoffInterval())
					continue
				}
				log.Error("Error processing message", "error", err)
				w.sleep(w.backoffInterval())
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// consumeOne dequeues one message and drives it to acknowledgement.
//
// The message is acknowledged only after the run is finalized or proven
// un-runnable; an infrastructure error leaves it on the processing list for
// startup recovery, and the idempotent claim makes redelivery safe.
func (w *Worker) consumeOne(ctx context.Context) error {
	msg, raw, err := w.broker.Dequeue(ctx, w.config.DequeueTimeout)
	if err != nil {
		if errors.Is(err, ErrNoMessages) {
			return ErrNoMessages
		}
		if raw != "" {
			// Malformed payload: drop it, redelivery cannot help.
			slog.Warn("Discarding malformed queue message", "payload", raw, "error", err)
			return w.broker.Ack(ctx, raw)
		}
		return err
	}

	log := slog.With("scenario_run_id", msg.ScenarioRunID, "worker_id", w.id)

	// 1. Load the run; absent or tombstoned means acknowledge and discard.
	run, err := w.client.ScenarioRun.Query().
		Where(
			scenariorun.IDEQ(msg.ScenarioRunID),
			scenariorun.IsDeletedEQ(0),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Warn("Scenario run not found, discarding message")
			return w.broker.Ack(ctx, raw)
		}
		return fmt.Errorf("loading scenario run: %w", err)
	}

	// 2/3. Terminal or already running: another worker owns it.
	switch run.RunStatus {
	case scenariorun.RunStatusSuccess, scenariorun.RunStatusFailed, scenariorun.RunStatusCanceled:
		return w.broker.Ack(ctx, raw)
	case scenariorun.RunStatusRunning:
		return w.broker.Ack(ctx, raw)
	}

	// 4. Cancel requested before execution: short-circuit queued -> canceled.
	if run.CancelRequested {
		n, err := w.client.ScenarioRun.Update().
			Where(
				scenariorun.IDEQ(run.ID),
				scenariorun.RunStatusEQ(scenariorun.RunStatusQueued),
			).
			SetRunStatus(scenariorun.RunStatusCanceled).
			SetErrorMessage(CancelReason).
			SetFinishedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("canceling queued run: %w", err)
		}
		if n > 0 {
			log.Info("Scenario run canceled before execution")
		}
		return w.broker.Ack(ctx, raw)
	}

	// 5. Global capacity check (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by backoff jitter).
	activeCount, err := w.client.ScenarioRun.Query().
		Where(scenariorun.RunStatusEQ(scenariorun.RunStatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		if err := w.broker.Requeue(ctx, raw); err != nil {
			return err
		}
		return ErrAtCapacity
	}

	// 6. Atomic claim: queued -> running. Zero rows means someone else won.
	claimed, err := w.client.ScenarioRun.Update().
		Where(
			scenariorun.IDEQ(run.ID),
			scenariorun.RunStatusEQ(scenariorun.RunStatusQueued),
		).
		SetRunStatus(scenariorun.RunStatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("claiming run: %w", err)
	}
	if claimed == 0 {
		return w.broker.Ack(ctx, raw)
	}

	log.Info("Scenario run claimed")

	// 7. The scenario must still exist and be live.
	exists, err := w.client.Scenario.Query().
		Where(
			scenario.IDEQ(run.ScenarioID),
			scenario.IsDeletedEQ(0),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("checking scenario: %w", err)
	}
	if !exists {
		if err := w.failRun(ctx, run.ID, fmt.Sprintf(scenarioMissingFormat, run.ScenarioID)); err != nil {
			return err
		}
		return w.broker.Ack(ctx, raw)
	}

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, 0)

	// 8. Register cancel function for API-triggered cancellation, execute.
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	run, err = w.client.ScenarioRun.Get(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("reloading claimed run: %w", err)
	}

	if err := w.runExecutor.Execute(runCtx, run); err != nil {
		// The orchestrator finalizes its own failures; this catches what
		// escaped it. Use a background context, runCtx may be cancelled.
		log.Error("Run execution failed", "error", err)
		if ferr := w.failRun(context.Background(), run.ID, err.Error()); ferr != nil {
			return ferr
		}
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Scenario run processing complete")
	return w.broker.Ack(context.Background(), raw)
}

// failRun marks a non-terminal run failed with the given message.
func (w *Worker) failRun(ctx context.Context, runID int64, message string) error {
	_, err := w.client.ScenarioRun.Update().
		Where(
			scenariorun.IDEQ(runID),
			scenariorun.RunStatusIn(scenariorun.RunStatusQueued, scenariorun.RunStatusRunning),
		).
		SetRunStatus(scenariorun.RunStatusFailed).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("marking run failed: %w", err)
	}
	return nil
}

// backoffInterval returns the backoff duration with jitter.
func (w *Worker) backoffInterval() time.Duration {
	base := w.config.BackoffInterval
	jitter := w.config.BackoffJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
