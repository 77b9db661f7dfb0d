package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentEndpoints(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	rec, env := doJSON(t, srv, http.MethodPost, "/api/environment",
		`{"name": "staging", "variables": {"base_url": "http://stage.example.test"}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, codeCreated, env.Code)
	envID := int64(env.Data.(map[string]any)["id"].(float64))

	rec, env = doJSON(t, srv, http.MethodGet, "/api/environment/"+jsonInt(envID), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "staging", env.Data.(map[string]any)["name"])

	rec, env = doJSON(t, srv, http.MethodPut, "/api/environment",
		`{"id": `+jsonInt(envID)+`, "name": "staging-2"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "staging-2", env.Data.(map[string]any)["name"])

	rec, env = doJSON(t, srv, http.MethodDelete, "/api/environment",
		`{"id": `+jsonInt(envID)+`}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, codeDeleted, env.Code)

	_, env = doJSON(t, srv, http.MethodGet, "/api/environment/"+jsonInt(envID), "")
	assert.Equal(t, codeNotFound, env.Code)

	row := client.Environment.GetX(ctx, envID)
	assert.NotZero(t, row.IsDeleted)
}

func TestDeleteUsesOperatorHeader(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	created := client.Environment.Create().SetName("tmp").SaveX(ctx)

	req := newJSONRequest(http.MethodDelete, "/api/environment",
		`{"id": `+jsonInt(created.ID)+`}`)
	req.Header.Set("X-Operator-Id", "42")
	rec := record(srv, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(42), client.Environment.GetX(ctx, created.ID).IsDeleted)
}

func TestDatasetDefaultEndpoint(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	caseRow := client.ApiRequest.Create().
		SetName("case").
		SetURL("http://example.test").
		SaveX(ctx)

	_, env := doJSON(t, srv, http.MethodPost, "/api/case/dataset",
		`{"request_id": `+jsonInt(caseRow.ID)+`, "name": "primary"}`)
	require.Equal(t, codeCreated, env.Code)
	dsID := int64(env.Data.(map[string]any)["id"].(float64))

	rec, env := doJSON(t, srv, http.MethodPut, "/api/case/dataset/default",
		`{"id": `+jsonInt(dsID)+`}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, codeCreated, env.Code)

	updated := client.ApiRequest.GetX(ctx, caseRow.ID)
	require.NotNil(t, updated.DefaultDatasetID)
	assert.Equal(t, dsID, *updated.DefaultDatasetID)
}

func TestStepStrategyValidationEnvelope(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	scn := client.Scenario.Create().SetName("scn").SaveX(ctx)
	caseRow := client.ApiRequest.Create().
		SetName("case").
		SetURL("http://example.test").
		SaveX(ctx)

	_, env := doJSON(t, srv, http.MethodPost, "/api/scenario/case",
		`{"scenario_id": `+jsonInt(scn.ID)+`, "request_id": `+jsonInt(caseRow.ID)+`}`)
	require.Equal(t, codeCreated, env.Code)
	stepID := int64(env.Data.(map[string]any)["id"].(float64))

	// single without a dataset is a request-shape error
	rec, env := doJSON(t, srv, http.MethodPut, "/api/scenario/case/dataset-strategy",
		`{"id": `+jsonInt(stepID)+`, "dataset_run_mode": "single"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, codeBadRequest, env.Code)

	// a dataset belonging to another case is a relation mismatch
	other := client.ApiRequest.Create().SetName("other").SetURL("http://example.test").SaveX(ctx)
	foreign := client.Dataset.Create().SetRequestID(other.ID).SetName("foreign").SaveX(ctx)

	_, env = doJSON(t, srv, http.MethodPut, "/api/scenario/case/dataset-strategy",
		`{"id": `+jsonInt(stepID)+`, "dataset_run_mode": "single", "dataset_id": `+jsonInt(foreign.ID)+`}`)
	assert.Equal(t, codeInvalidState, env.Code)
}
