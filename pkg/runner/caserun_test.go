package runner

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

func newTestCaseRunner(t *testing.T) (*ent.Client, *CaseRunner) {
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return client.Client, NewCaseRunner(client.Client, executor.New(logger), logger)
}

func TestCaseRunnerDirectRun(t *testing.T) {
	client, runner := newTestCaseRunner(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("login").
		SetURL(srv.URL + "/login").
		SaveX(ctx)
	client.ExtractRule.Create().
		SetRequestID(req.ID).
		SetVarName("token").
		SetSourceType("response_json").
		SetSourceExpr("$.token").
		SaveX(ctx)

	out, err := runner.Run(ctx, CaseRunInput{RequestID: req.ID})
	require.NoError(t, err)
	assert.True(t, out.IsSuccess)
	require.Len(t, out.RequestRuns, 1)
	require.Len(t, out.Variables, 1)
	assert.Equal(t, "token", out.Variables[0].VarName)
	assert.Equal(t, "tk-123", out.Variables[0].Value)

	// Persisted outside any scenario run.
	rr := client.RequestRun.GetX(ctx, out.RequestRuns[0].ID)
	assert.Nil(t, rr.ScenarioRunID)
	assert.Nil(t, rr.ScenarioCaseID)
	assert.True(t, rr.IsSuccess)

	assert.Equal(t, 1, client.ApiRequest.GetX(ctx, req.ID).ExecuteCount)
}

func TestCaseRunnerRunsAllDatasetsByDefault(t *testing.T) {
	client, runner := newTestCaseRunner(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("login").
		SetURL(srv.URL + "/login").
		SaveX(ctx)
	client.Dataset.Create().SetRequestID(req.ID).SetName("a").SetSort(1).SaveX(ctx)
	client.Dataset.Create().SetRequestID(req.ID).SetName("b").SetSort(2).SaveX(ctx)

	out, err := runner.Run(ctx, CaseRunInput{RequestID: req.ID})
	require.NoError(t, err)
	require.Len(t, out.RequestRuns, 2)
	assert.Equal(t, 2, client.ApiRequest.GetX(ctx, req.ID).ExecuteCount)
}

func TestCaseRunnerExplicitDatasetOverride(t *testing.T) {
	client, runner := newTestCaseRunner(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("login").
		SetURL(srv.URL + "/login").
		SaveX(ctx)
	ds := client.Dataset.Create().SetRequestID(req.ID).SetName("a").SaveX(ctx)
	client.Dataset.Create().SetRequestID(req.ID).SetName("b").SaveX(ctx)

	out, err := runner.Run(ctx, CaseRunInput{RequestID: req.ID, DatasetID: &ds.ID})
	require.NoError(t, err)
	require.Len(t, out.RequestRuns, 1)
	require.NotNil(t, out.RequestRuns[0].DatasetID)
	assert.Equal(t, ds.ID, *out.RequestRuns[0].DatasetID)
}

func TestCaseRunnerSingleModeRequiresDefaultDataset(t *testing.T) {
	client, runner := newTestCaseRunner(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("login").
		SetURL(srv.URL + "/login").
		SetDatasetRunMode("single").
		SaveX(ctx)

	_, err := runner.Run(ctx, CaseRunInput{RequestID: req.ID})
	require.ErrorIs(t, err, ErrDatasetRequired)
}

func TestCaseRunnerMissingRequest(t *testing.T) {
	_, runner := newTestCaseRunner(t)

	_, err := runner.Run(context.Background(), CaseRunInput{RequestID: 424242})
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestCaseRunnerDisabledDatasetRejected(t *testing.T) {
	client, runner := newTestCaseRunner(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("login").
		SetURL(srv.URL + "/login").
		SaveX(ctx)
	ds := client.Dataset.Create().
		SetRequestID(req.ID).
		SetName("off").
		SetIsEnabled(false).
		SaveX(ctx)

	_, err := runner.Run(ctx, CaseRunInput{RequestID: req.ID, DatasetID: &ds.ID})
	require.ErrorIs(t, err, ErrDatasetDisabled)
}
