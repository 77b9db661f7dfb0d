package cleanup

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/runner"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

type noopDispatcher struct{}

func (noopDispatcher) Enqueue(context.Context, int64) (string, error) { return "task", nil }

func setupRunService(t *testing.T) (*ent.Client, *services.RunService) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	caseRunner := runner.NewCaseRunner(client, executor.New(logger), logger)
	return client, services.NewRunService(client, noopDispatcher{}, nil, caseRunner)
}

func TestPurgeOldRuns(t *testing.T) {
	client, svc := setupRunService(t)
	ctx := context.Background()

	scn := client.Scenario.Create().SetName("scn").SaveX(ctx)
	old := time.Now().AddDate(0, 0, -40)

	expired := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusSuccess).
		SetCreateTime(old).
		SaveX(ctx)
	recent := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusFailed).
		SaveX(ctx)
	// Old but still running: never purged.
	active := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SetCreateTime(old).
		SaveX(ctx)

	req := client.ApiRequest.Create().SetName("case").SetURL("http://example.test").SaveX(ctx)
	rr := client.RequestRun.Create().
		SetRequestID(req.ID).
		SetScenarioRunID(expired.ID).
		SaveX(ctx)
	rv := client.RunVariable.Create().
		SetScenarioRunID(expired.ID).
		SetRequestRunID(rr.ID).
		SetRequestID(req.ID).
		SetVarName("token").
		SetSourceType("response_json").
		SaveX(ctx)

	count, err := svc.PurgeOldRuns(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.NotZero(t, client.ScenarioRun.GetX(ctx, expired.ID).IsDeleted)
	assert.NotZero(t, client.RequestRun.GetX(ctx, rr.ID).IsDeleted)
	assert.NotZero(t, client.RunVariable.GetX(ctx, rv.ID).IsDeleted)

	assert.Zero(t, client.ScenarioRun.GetX(ctx, recent.ID).IsDeleted)
	assert.Zero(t, client.ScenarioRun.GetX(ctx, active.ID).IsDeleted)

	// A second pass finds nothing.
	count, err = svc.PurgeOldRuns(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
