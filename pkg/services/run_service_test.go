package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/runner"
	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

// fakeDispatcher records enqueued run ids instead of touching redis.
type fakeDispatcher struct {
	enqueued []int64
	fail     error
}

func (d *fakeDispatcher) Enqueue(_ context.Context, scenarioRunID int64) (string, error) {
	if d.fail != nil {
		return "", d.fail
	}
	d.enqueued = append(d.enqueued, scenarioRunID)
	return "task-1", nil
}

type fakeCanceler struct {
	cancelled []int64
}

func (c *fakeCanceler) CancelRun(runID int64) bool {
	c.cancelled = append(c.cancelled, runID)
	return true
}

func newTestRunService(t *testing.T) (*ent.Client, *RunService, *fakeDispatcher, *fakeCanceler) {
	client := testdb.NewTestClient(t).Client
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := &fakeDispatcher{}
	canceler := &fakeCanceler{}
	caseRunner := runner.NewCaseRunner(client, executor.New(logger), logger)
	return client, NewRunService(client, dispatcher, canceler, caseRunner), dispatcher, canceler
}

func TestRunServiceSubmit(t *testing.T) {
	client, svc, dispatcher, _ := newTestRunService(t)
	ctx := context.Background()

	env := client.Environment.Create().SetName("env").SaveX(ctx)
	scn := client.Scenario.Create().SetName("scn").SetEnvID(env.ID).SaveX(ctx)

	res, err := svc.Submit(ctx, SubmitRunInput{
		ScenarioID:       scn.ID,
		InitialVariables: map[string]any{"uid": "u1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "queued", res.RunStatus)
	assert.Equal(t, "task-1", res.TaskID)
	assert.Equal(t, []int64{res.ScenarioRunID}, dispatcher.enqueued)

	run := client.ScenarioRun.GetX(ctx, res.ScenarioRunID)
	assert.Equal(t, scenariorun.RunStatusQueued, run.RunStatus)
	require.NotNil(t, run.EnvID)
	assert.Equal(t, env.ID, *run.EnvID) // scenario default pinned at submit
	assert.Equal(t, "u1", run.RuntimeVariables["uid"])
}

func TestRunServiceSubmitEnvOverride(t *testing.T) {
	client, svc, _, _ := newTestRunService(t)
	ctx := context.Background()

	envA := client.Environment.Create().SetName("a").SaveX(ctx)
	envB := client.Environment.Create().SetName("b").SaveX(ctx)
	scn := client.Scenario.Create().SetName("scn").SetEnvID(envA.ID).SaveX(ctx)

	res, err := svc.Submit(ctx, SubmitRunInput{ScenarioID: scn.ID, EnvID: &envB.ID})
	require.NoError(t, err)

	run := client.ScenarioRun.GetX(ctx, res.ScenarioRunID)
	require.NotNil(t, run.EnvID)
	assert.Equal(t, envB.ID, *run.EnvID)
}

func TestRunServiceSubmitMissingScenario(t *testing.T) {
	_, svc, _, _ := newTestRunService(t)

	_, err := svc.Submit(context.Background(), SubmitRunInput{ScenarioID: 424242})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRunServiceSubmitDispatchFailure(t *testing.T) {
	client, svc, dispatcher, _ := newTestRunService(t)
	ctx := context.Background()

	scn := client.Scenario.Create().SetName("scn").SaveX(ctx)
	dispatcher.fail = context.DeadlineExceeded

	_, err := svc.Submit(ctx, SubmitRunInput{ScenarioID: scn.ID})
	require.ErrorIs(t, err, ErrDispatchFailed)
}

func TestRunServiceCancel(t *testing.T) {
	client, svc, _, canceler := newTestRunService(t)
	ctx := context.Background()

	scn := client.Scenario.Create().SetName("scn").SaveX(ctx)
	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, svc.Cancel(ctx, run.ID))
	assert.True(t, client.ScenarioRun.GetX(ctx, run.ID).CancelRequested)
	assert.Equal(t, []int64{run.ID}, canceler.cancelled)
}

func TestRunServiceCancelTerminalRun(t *testing.T) {
	client, svc, _, _ := newTestRunService(t)
	ctx := context.Background()

	scn := client.Scenario.Create().SetName("scn").SaveX(ctx)
	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusSuccess).
		SaveX(ctx)

	err := svc.Cancel(ctx, run.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRunServiceRunCaseMapsErrors(t *testing.T) {
	_, svc, _, _ := newTestRunService(t)

	_, err := svc.RunCase(context.Background(), runner.CaseRunInput{RequestID: 424242})
	require.ErrorIs(t, err, ErrNotFound)
}
