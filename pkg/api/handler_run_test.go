package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/runner"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/services"
	testdb "github.com/ExileLine/exile-ai-test-platform-server/test/database"
)

type fakeDispatcher struct{}

func (fakeDispatcher) Enqueue(context.Context, int64) (string, error) {
	return "task-abc", nil
}

func newTestServer(t *testing.T) (*Server, *ent.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	caseRunner := runner.NewCaseRunner(dbClient.Client, executor.New(logger), logger)
	runSvc := services.NewRunService(dbClient.Client, fakeDispatcher{}, nil, caseRunner)
	return NewServer(nil, dbClient, runSvc, nil), dbClient.Client
}

func newJSONRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func record(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func doJSON(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	rec := record(srv, newJSONRequest(method, path, body))

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func TestCaseRunEndpoint(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tk-1"}`))
	}))
	defer target.Close()

	req := client.ApiRequest.Create().
		SetName("login").
		SetMethod("POST").
		SetURL(target.URL + "/login").
		SaveX(ctx)
	client.ExtractRule.Create().
		SetRequestID(req.ID).
		SetVarName("token").
		SetSourceType("response_json").
		SetSourceExpr("$.token").
		SaveX(ctx)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/case/run",
		`{"request_id": `+jsonInt(req.ID)+`}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, codeCreated, env.Code)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok, "data: %#v", env.Data)
	assert.Equal(t, true, data["is_success"])
	runs, ok := data["request_runs"].([]any)
	require.True(t, ok)
	require.Len(t, runs, 1)

	vars, ok := data["variables"].([]any)
	require.True(t, ok)
	require.Len(t, vars, 1)
	variable := vars[0].(map[string]any)
	assert.Equal(t, "token", variable["var_name"])
	assert.Equal(t, "tk-1", variable["var_value"])
}

func TestCaseRunEndpointValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/case/run", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, codeBadRequest, env.Code)
	assert.Contains(t, env.Message, "request_id")
}

func TestScenarioRunLifecycleEndpoints(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	scn := client.Scenario.Create().SetName("smoke").SaveX(ctx)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/scenario/run",
		`{"scenario_id": `+jsonInt(scn.ID)+`, "trigger_type": "manual"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, codeAccepted, env.Code)

	data := env.Data.(map[string]any)
	assert.Equal(t, "queued", data["run_status"])
	assert.Equal(t, "task-abc", data["task_id"])
	runID := int64(data["scenario_run_id"].(float64))
	require.NotZero(t, runID)

	rec, env = doJSON(t, srv, http.MethodGet, "/api/scenario/run/"+jsonInt(runID), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, codeOK, env.Code)

	rec, env = doJSON(t, srv, http.MethodGet, "/api/scenario/run/"+jsonInt(runID)+"/report", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, codeOK, env.Code)

	rec, env = doJSON(t, srv, http.MethodPost, "/api/scenario/run/cancel",
		`{"scenario_run_id": `+jsonInt(runID)+`}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, codeCreated, env.Code)

	run := client.ScenarioRun.GetX(ctx, runID)
	assert.True(t, run.CancelRequested)
}

func TestCancelTerminalRunEnvelope(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	scn := client.Scenario.Create().SetName("smoke").SaveX(ctx)
	run := client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetRunStatus("success").
		SaveX(ctx)

	rec, env := doJSON(t, srv, http.MethodPost, "/api/scenario/run/cancel",
		`{"scenario_run_id": `+jsonInt(run.ID)+`}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, codeInvalidState, env.Code)
	assert.Contains(t, env.Message, "already success")
}

func TestRunNotFoundEnvelope(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, env := doJSON(t, srv, http.MethodGet, "/api/scenario/run/424242", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, codeNotFound, env.Code)
}

func jsonInt(id int64) string {
	return strconv.FormatInt(id, 10)
}
