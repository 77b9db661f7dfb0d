package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/masking"
	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

func newTestOrchestrator(t *testing.T) (*ent.Client, *Orchestrator) {
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return client.Client, NewOrchestrator(client.Client, executor.New(logger), logger)
}

// testAPI serves a login endpoint issuing a token and a profile endpoint
// requiring it back.
func testAPI(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tk-123","user":{"id":7}}`))
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tk-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	mux.HandleFunc("/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOrchestratorRunsScenarioWithExtractionChain(t *testing.T) {
	client, orch := newTestOrchestrator(t)
	srv := testAPI(t)
	ctx := context.Background()

	env := client.Environment.Create().
		SetName("test").
		SetVariables(map[string]any{"base_url": srv.URL}).
		SaveX(ctx)

	login := client.ApiRequest.Create().
		SetName("login").
		SetMethod("POST").
		SetURL("{{base_url}}/login").
		SaveX(ctx)
	client.ExtractRule.Create().
		SetRequestID(login.ID).
		SetVarName("token").
		SetSourceType("response_json").
		SetSourceExpr("$.token").
		SetRequired(true).
		SaveX(ctx)
	client.AssertRule.Create().
		SetRequestID(login.ID).
		SetAssertType("status_code").
		SetExpectedValue(json.RawMessage("200")).
		SaveX(ctx)

	profile := client.ApiRequest.Create().
		SetName("profile").
		SetURL("{{base_url}}/profile").
		SetBaseHeaders(map[string]any{"Authorization": "Bearer {{token}}"}).
		SaveX(ctx)
	client.AssertRule.Create().
		SetRequestID(profile.ID).
		SetAssertType("status_code").
		SetExpectedValue(json.RawMessage("200")).
		SaveX(ctx)

	scn := client.Scenario.Create().
		SetName("login then profile").
		SetEnvID(env.ID).
		SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(login.ID).
		SetStepNo(1).
		SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(profile.ID).
		SetStepNo(2).
		SaveX(ctx)

	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetEnvID(env.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	run = client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, scenariorun.RunStatusSuccess, run.RunStatus)
	assert.True(t, run.IsSuccess)
	assert.Equal(t, 2, run.TotalRequestRuns)
	assert.Equal(t, 2, run.SuccessRequestRuns)
	assert.Equal(t, 0, run.FailedRequestRuns)
	assert.Nil(t, run.ErrorMessage)
	require.NotNil(t, run.FinishedAt)
	assert.Equal(t, "tk-123", run.RuntimeVariables["token"])

	runs := client.RequestRun.Query().
		Where(requestrun.ScenarioRunIDEQ(run.ID)).
		Order(ent.Asc(requestrun.FieldID)).
		AllX(ctx)
	require.Len(t, runs, 2)
	for _, rr := range runs {
		assert.True(t, rr.IsSuccess)
		require.NotNil(t, rr.ResponseStatusCode)
		assert.Equal(t, 200, *rr.ResponseStatusCode)
	}
	// Rendered header is captured in the snapshot as sent.
	headers, ok := runs[1].RequestSnapshot["headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bearer tk-123", headers["Authorization"])

	variables := client.RunVariable.Query().
		Where(runvariable.ScenarioRunIDEQ(run.ID)).
		AllX(ctx)
	require.Len(t, variables, 1)
	assert.Equal(t, "token", variables[0].VarName)
	assert.Equal(t, json.RawMessage(`"tk-123"`), variables[0].VarValue)

	assert.Equal(t, 1, client.ApiRequest.GetX(ctx, login.ID).ExecuteCount)

	report, err := BuildReport(ctx, client, run)
	require.NoError(t, err)
	assert.Equal(t, "success", report.RunStatus)
	require.Len(t, report.Steps, 2)
	require.Len(t, report.Steps[0].RequestRuns, 1)
	require.NotNil(t, report.Steps[0].StepNo)
	assert.Equal(t, 1, *report.Steps[0].StepNo)
	require.Len(t, report.Variables, 1)
	assert.Equal(t, "tk-123", report.Variables[0].Value)
}

func TestOrchestratorStopsOnFailedStep(t *testing.T) {
	client, orch := newTestOrchestrator(t)
	srv := testAPI(t)
	ctx := context.Background()

	failing := client.ApiRequest.Create().
		SetName("failing").
		SetURL(srv.URL + "/fail").
		SaveX(ctx)
	client.AssertRule.Create().
		SetRequestID(failing.ID).
		SetAssertType("status_code").
		SetExpectedValue(json.RawMessage("200")).
		SaveX(ctx)
	never := client.ApiRequest.Create().
		SetName("never reached").
		SetURL(srv.URL + "/login").
		SaveX(ctx)

	scn := client.Scenario.Create().SetName("stop on fail").SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(failing.ID).
		SetStepNo(1).
		SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(never.ID).
		SetStepNo(2).
		SaveX(ctx)

	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	run = client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, scenariorun.RunStatusFailed, run.RunStatus)
	assert.False(t, run.IsSuccess)
	assert.Equal(t, 1, run.TotalRequestRuns)
	assert.Equal(t, 1, run.FailedRequestRuns)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "步骤 1 执行失败")

	rr := client.RequestRun.Query().
		Where(requestrun.ScenarioRunIDEQ(run.ID)).
		OnlyX(ctx)
	assert.False(t, rr.IsSuccess)
	require.NotNil(t, rr.ErrorMessage)
	assert.Contains(t, *rr.ErrorMessage, "断言失败")

	assert.Equal(t, 0, client.ApiRequest.GetX(ctx, never.ID).ExecuteCount)
}

func TestOrchestratorNonFatalFailureContinues(t *testing.T) {
	client, orch := newTestOrchestrator(t)
	srv := testAPI(t)
	ctx := context.Background()

	failing := client.ApiRequest.Create().
		SetName("failing but tolerated").
		SetURL(srv.URL + "/fail").
		SaveX(ctx)
	next := client.ApiRequest.Create().
		SetName("still runs").
		SetURL(srv.URL + "/login").
		SaveX(ctx)

	scn := client.Scenario.Create().
		SetName("tolerant").
		SetStopOnFail(false).
		SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(failing.ID).
		SetStepNo(1).
		SetStopOnFail(false).
		SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(next.ID).
		SetStepNo(2).
		SaveX(ctx)

	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	run = client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, scenariorun.RunStatusFailed, run.RunStatus)
	assert.Equal(t, 2, run.TotalRequestRuns)
	assert.Equal(t, 1, run.SuccessRequestRuns)
	assert.Equal(t, 1, run.FailedRequestRuns)
	// No stop message because no stop-on-fail fired.
	assert.Nil(t, run.ErrorMessage)
}

func TestOrchestratorHonorsCancelBeforeStep(t *testing.T) {
	client, orch := newTestOrchestrator(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("login").
		SetURL(srv.URL + "/login").
		SaveX(ctx)
	scn := client.Scenario.Create().SetName("canceled").SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(req.ID).
		SaveX(ctx)

	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SetCancelRequested(true).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	run = client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, scenariorun.RunStatusCanceled, run.RunStatus)
	assert.False(t, run.IsSuccess)
	assert.Equal(t, 0, run.TotalRequestRuns)
	require.NotNil(t, run.ErrorMessage)
	assert.Equal(t, "场景执行已取消", *run.ErrorMessage)
	assert.Equal(t, 0, client.RequestRun.Query().CountX(ctx))
}

func TestOrchestratorRunsEveryDataset(t *testing.T) {
	client, orch := newTestOrchestrator(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("login").
		SetURL(srv.URL + "/login").
		SaveX(ctx)
	dsA := client.Dataset.Create().
		SetRequestID(req.ID).
		SetName("a").
		SetVariables(map[string]any{"who": "a"}).
		SetSort(1).
		SaveX(ctx)
	dsB := client.Dataset.Create().
		SetRequestID(req.ID).
		SetName("b").
		SetVariables(map[string]any{"who": "b"}).
		SetSort(2).
		SaveX(ctx)
	client.Dataset.Create().
		SetRequestID(req.ID).
		SetName("disabled").
		SetIsEnabled(false).
		SaveX(ctx)

	scn := client.Scenario.Create().SetName("datasets").SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(req.ID).
		SetDatasetRunMode("all").
		SaveX(ctx)

	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	run = client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, 2, run.TotalRequestRuns)

	runs := client.RequestRun.Query().
		Where(requestrun.ScenarioRunIDEQ(run.ID)).
		Order(ent.Asc(requestrun.FieldID)).
		AllX(ctx)
	require.Len(t, runs, 2)
	require.NotNil(t, runs[0].DatasetID)
	require.NotNil(t, runs[1].DatasetID)
	assert.Equal(t, dsA.ID, *runs[0].DatasetID)
	assert.Equal(t, dsB.ID, *runs[1].DatasetID)
}

func TestOrchestratorStopOnFailBreaksDatasetLoop(t *testing.T) {
	client, orch := newTestOrchestrator(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("parameterized").
		SetURL(srv.URL + "{{path}}").
		SaveX(ctx)
	client.AssertRule.Create().
		SetRequestID(req.ID).
		SetAssertType("status_code").
		SetExpectedValue(json.RawMessage("200")).
		SaveX(ctx)
	dsBad := client.Dataset.Create().
		SetRequestID(req.ID).
		SetName("bad").
		SetVariables(map[string]any{"path": "/fail"}).
		SetSort(1).
		SaveX(ctx)
	client.Dataset.Create().
		SetRequestID(req.ID).
		SetName("good but never reached").
		SetVariables(map[string]any{"path": "/login"}).
		SetSort(2).
		SaveX(ctx)

	scn := client.Scenario.Create().SetName("stop inside step").SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(req.ID).
		SetDatasetRunMode("all").
		SaveX(ctx)

	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	// The first failing dataset stops the step; later datasets never run.
	run = client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, scenariorun.RunStatusFailed, run.RunStatus)
	assert.Equal(t, 1, run.TotalRequestRuns)
	assert.Equal(t, 1, run.FailedRequestRuns)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, fmt.Sprintf("dataset_id=%d", dsBad.ID))

	rr := client.RequestRun.Query().
		Where(requestrun.ScenarioRunIDEQ(run.ID)).
		OnlyX(ctx)
	require.NotNil(t, rr.DatasetID)
	assert.Equal(t, dsBad.ID, *rr.DatasetID)
	assert.Equal(t, 1, client.ApiRequest.GetX(ctx, req.ID).ExecuteCount)
}

func TestOrchestratorRequiredExtractionFailsRequestRun(t *testing.T) {
	client, orch := newTestOrchestrator(t)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("login").
		SetURL(srv.URL + "/login").
		SaveX(ctx)
	client.ExtractRule.Create().
		SetRequestID(req.ID).
		SetVarName("missing").
		SetSourceType("response_json").
		SetSourceExpr("$.nope").
		SetRequired(true).
		SaveX(ctx)

	scn := client.Scenario.Create().SetName("required extraction").SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(req.ID).
		SaveX(ctx)

	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	rr := client.RequestRun.Query().
		Where(requestrun.ScenarioRunIDEQ(run.ID)).
		OnlyX(ctx)
	assert.False(t, rr.IsSuccess)
	require.NotNil(t, rr.ErrorMessage)
	assert.Contains(t, *rr.ErrorMessage, "变量提取失败: missing")

	// No variables persisted when a required extraction misses.
	assert.Equal(t, 0, client.RunVariable.Query().CountX(ctx))
}

func TestOrchestratorMissingScenarioFailsRun(t *testing.T) {
	client, orch := newTestOrchestrator(t)
	ctx := context.Background()

	run := client.ScenarioRun.Create().
		SetScenarioID(424242).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	run = client.ScenarioRun.GetX(ctx, run.ID)
	assert.Equal(t, scenariorun.RunStatusFailed, run.RunStatus)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "测试场景 424242 不存在")
}

func TestOrchestratorMasksCredentialHeadersInLogs(t *testing.T) {
	client := testdb.NewTestClient(t)
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	orch := NewOrchestrator(client.Client, executor.New(logger), logger)
	srv := testAPI(t)
	ctx := context.Background()

	req := client.ApiRequest.Create().
		SetName("authed").
		SetURL(srv.URL + "/login").
		SetBaseHeaders(map[string]any{
			"Authorization": "Bearer super-secret-token",
			"X-Trace-Id":    "trace-1",
		}).
		SaveX(ctx)

	scn := client.Scenario.Create().SetName("masked logging").SaveX(ctx)
	client.ScenarioCase.Create().
		SetScenarioID(scn.ID).
		SetRequestID(req.ID).
		SaveX(ctx)

	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus(scenariorun.RunStatusRunning).
		SaveX(ctx)

	require.NoError(t, orch.Execute(ctx, run))

	logged := logBuf.String()
	assert.NotContains(t, logged, "super-secret-token")
	assert.Contains(t, logged, masking.Mask)
	assert.Contains(t, logged, "trace-1")
}
