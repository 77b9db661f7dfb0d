package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/config"
	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

// recordingExecutor finalizes claimed runs as success and counts calls.
type recordingExecutor struct {
	client *ent.Client

	mu       sync.Mutex
	executed []int64
}

func (e *recordingExecutor) Execute(ctx context.Context, run *ent.ScenarioRun) error {
	e.mu.Lock()
	e.executed = append(e.executed, run.ID)
	e.mu.Unlock()

	return e.client.ScenarioRun.UpdateOneID(run.ID).
		SetRunStatus(scenariorun.RunStatusSuccess).
		SetIsSuccess(true).
		SetFinishedAt(time.Now()).
		Exec(ctx)
}

func (e *recordingExecutor) calls() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int64(nil), e.executed...)
}

type noopRegistry struct{}

func (noopRegistry) RegisterRun(int64, context.CancelFunc) {}
func (noopRegistry) UnregisterRun(int64)                   {}

func newTestWorker(t *testing.T) (*ent.Client, *Worker, *Broker, *recordingExecutor) {
	t.Helper()

	client := testdb.NewTestClient(t).Client
	broker, _ := newTestBroker(t)

	cfg := config.DefaultQueueConfig()
	cfg.DequeueTimeout = 100 * time.Millisecond

	exec := &recordingExecutor{client: client}
	worker := NewWorker("test-worker-0", "test-pod", client, broker, cfg, exec, noopRegistry{})
	return client, worker, broker, exec
}

func seedRun(t *testing.T, client *ent.Client, status scenariorun.RunStatus) *ent.ScenarioRun {
	t.Helper()
	ctx := context.Background()
	scn := client.Scenario.Create().SetName("scn").SaveX(ctx)
	return client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(status).
		SaveX(ctx)
}

// acked asserts the processing list is empty, i.e. nothing would be
// redelivered by startup recovery.
func acked(t *testing.T, broker *Broker) {
	t.Helper()
	recovered, err := broker.Recover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, recovered)
}

func TestWorkerClaimsAndRedeliveryIsIdempotent(t *testing.T) {
	client, worker, broker, exec := newTestWorker(t)
	ctx := context.Background()

	run := seedRun(t, client, scenariorun.RunStatusQueued)

	// Duplicate delivery of the same run.
	_, err := broker.Enqueue(ctx, run.ID)
	require.NoError(t, err)
	_, err = broker.Enqueue(ctx, run.ID)
	require.NoError(t, err)

	require.NoError(t, worker.consumeOne(ctx))
	assert.Equal(t, []int64{run.ID}, exec.calls())
	assert.Equal(t, scenariorun.RunStatusSuccess, client.ScenarioRun.GetX(ctx, run.ID).RunStatus)

	// The redelivered message finds a terminal run: acked, not re-executed.
	require.NoError(t, worker.consumeOne(ctx))
	assert.Equal(t, []int64{run.ID}, exec.calls())
	acked(t, broker)
}

func TestWorkerAcksTerminalRunWithoutExecution(t *testing.T) {
	client, worker, broker, exec := newTestWorker(t)
	ctx := context.Background()

	run := seedRun(t, client, scenariorun.RunStatusFailed)
	_, err := broker.Enqueue(ctx, run.ID)
	require.NoError(t, err)

	require.NoError(t, worker.consumeOne(ctx))

	assert.Empty(t, exec.calls())
	assert.Equal(t, scenariorun.RunStatusFailed, client.ScenarioRun.GetX(ctx, run.ID).RunStatus)
	assert.Zero(t, client.RequestRun.Query().
		Where(requestrun.ScenarioRunIDEQ(run.ID)).
		CountX(ctx))
	acked(t, broker)
}

func TestWorkerCancelsQueuedRunBeforeExecution(t *testing.T) {
	client, worker, broker, exec := newTestWorker(t)
	ctx := context.Background()

	run := seedRun(t, client, scenariorun.RunStatusQueued)
	client.ScenarioRun.UpdateOneID(run.ID).SetCancelRequested(true).ExecX(ctx)

	_, err := broker.Enqueue(ctx, run.ID)
	require.NoError(t, err)

	require.NoError(t, worker.consumeOne(ctx))

	assert.Empty(t, exec.calls())
	got := client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, scenariorun.RunStatusCanceled, got.RunStatus)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, CancelReason, *got.ErrorMessage)
	require.NotNil(t, got.FinishedAt)
	assert.Zero(t, client.RequestRun.Query().
		Where(requestrun.ScenarioRunIDEQ(run.ID)).
		CountX(ctx))
	acked(t, broker)
}

func TestWorkerLostClaimAcksCleanly(t *testing.T) {
	client, worker, broker, exec := newTestWorker(t)
	ctx := context.Background()

	// Another pod already holds the run in running.
	run := seedRun(t, client, scenariorun.RunStatusRunning)
	_, err := broker.Enqueue(ctx, run.ID)
	require.NoError(t, err)

	require.NoError(t, worker.consumeOne(ctx))

	assert.Empty(t, exec.calls())
	assert.Equal(t, scenariorun.RunStatusRunning, client.ScenarioRun.GetX(ctx, run.ID).RunStatus)
	acked(t, broker)
}

func TestWorkerFailsRunWhenScenarioDeleted(t *testing.T) {
	client, worker, broker, exec := newTestWorker(t)
	ctx := context.Background()

	run := seedRun(t, client, scenariorun.RunStatusQueued)
	client.Scenario.UpdateOneID(run.ScenarioID).SetIsDeleted(1).ExecX(ctx)

	_, err := broker.Enqueue(ctx, run.ID)
	require.NoError(t, err)

	require.NoError(t, worker.consumeOne(ctx))

	assert.Empty(t, exec.calls())
	got := client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, scenariorun.RunStatusFailed, got.RunStatus)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "不存在")
	acked(t, broker)
}
