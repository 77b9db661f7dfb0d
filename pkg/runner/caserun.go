package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/assertion"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/extract"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/vars"
)

// CaseRunner executes one stored request on demand, outside any scenario
// run. Request runs are persisted with no scenario run id.
type CaseRunner struct {
	client   *ent.Client
	executor *executor.Executor
	logger   *slog.Logger
}

// NewCaseRunner creates a CaseRunner.
func NewCaseRunner(client *ent.Client, exec *executor.Executor, logger *slog.Logger) *CaseRunner {
	return &CaseRunner{
		client:   client,
		executor: exec,
		logger:   logger.With("component", "case_runner"),
	}
}

// CaseRunInput selects what to execute. DatasetID overrides the request's
// dataset policy, EnvID overrides its default environment, and Variables
// seed the runtime layer for this execution only.
type CaseRunInput struct {
	RequestID int64
	DatasetID *int64
	EnvID     *int64
	Variables map[string]any
}

// CaseRunOutput is the synchronous outcome of a direct case run.
type CaseRunOutput struct {
	RequestID   int64              `json:"request_id"`
	IsSuccess   bool               `json:"is_success"`
	RequestRuns []RequestRunReport `json:"request_runs"`
	Variables   []VariableReport   `json:"variables"`
}

// Run executes the request once per resolved dataset and reports every
// persisted request run. Scenario and global scoped extractions are
// carried across iterations within this call only.
func (c *CaseRunner) Run(ctx context.Context, input CaseRunInput) (*CaseRunOutput, error) {
	req, err := c.client.ApiRequest.Query().
		Where(apirequest.IDEQ(input.RequestID), apirequest.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: request_id=%d", ErrRequestNotFound, input.RequestID)
		}
		return nil, fmt.Errorf("loading request %d: %w", input.RequestID, err)
	}

	envID := req.EnvID
	if input.EnvID != nil {
		envID = input.EnvID
	}
	env, err := loadEnvironment(ctx, c.client, envID)
	if err != nil {
		return nil, err
	}

	datasets, err := ResolveCaseDatasets(ctx, c.client, req, input.DatasetID)
	if err != nil {
		return nil, err
	}

	runtime := vars.Merge(nil, input.Variables)
	output := &CaseRunOutput{RequestID: req.ID, IsSuccess: true}

	for _, ds := range datasets {
		ok, err := c.runOnce(ctx, req, ds, env, runtime, output)
		if err != nil {
			return nil, err
		}
		if !ok {
			output.IsSuccess = false
		}
	}
	return output, nil
}

func (c *CaseRunner) runOnce(ctx context.Context, req *ent.ApiRequest, ds *ent.Dataset, env *executor.Environment, runtime map[string]any, output *CaseRunOutput) (bool, error) {
	result, err := c.executor.Execute(ctx, toTemplate(req), toDataset(ds), env, runtime)
	if err != nil {
		return false, fmt.Errorf("executing request %d: %w", req.ID, err)
	}

	var datasetID *int64
	if ds != nil {
		datasetID = &ds.ID
	}

	assertRules, err := loadAssertRules(ctx, c.client, req.ID, datasetID)
	if err != nil {
		return false, err
	}
	extractRules, err := loadExtractRules(ctx, c.client, req.ID, datasetID)
	if err != nil {
		return false, err
	}

	passed, assertRecords := assertion.Evaluate(assertRules, result)
	records, extractErr := extract.Apply(extractRules, result, runtime)

	isSuccess := result.IsSuccess && passed && extractErr == nil
	errorMessage := iterationErrorMessage(result, assertRecords, extractErr)

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}

	create := tx.RequestRun.Create().
		SetRequestID(req.ID).
		SetNillableDatasetID(datasetID).
		SetRequestSnapshot(result.RequestSnapshot).
		SetIsSuccess(isSuccess).
		SetNillableResponseStatusCode(result.StatusCode).
		SetResponseHeaders(result.Headers).
		SetResponseBody(result.Body).
		SetResponseTimeMs(result.ElapsedMs).
		SetAssertionResults(assertionResultMaps(assertRecords))
	if result.DatasetSnapshot != nil {
		create.SetDatasetSnapshot(result.DatasetSnapshot)
	}
	if errorMessage != nil {
		create.SetErrorMessage(*errorMessage)
	}

	requestRun, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("persisting request run: %w", err)
	}

	for _, record := range records {
		value, err := json.Marshal(record.Value)
		if err != nil {
			tx.Rollback()
			return false, fmt.Errorf("encoding variable %q: %w", record.VarName, err)
		}
		_, err = tx.RunVariable.Create().
			SetRequestRunID(requestRun.ID).
			SetRequestID(req.ID).
			SetNillableDatasetID(datasetID).
			SetVarName(record.VarName).
			SetVarValue(value).
			SetValueType(record.ValueType).
			SetSourceType(runvariable.SourceType(record.SourceType)).
			SetSourceExpr(record.SourceExpr).
			SetScope(runvariable.Scope(record.Scope)).
			SetIsSecret(record.IsSecret).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return false, fmt.Errorf("persisting variable %q: %w", record.VarName, err)
		}
	}

	if err := tx.ApiRequest.UpdateOneID(req.ID).AddExecuteCount(1).Exec(ctx); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("incrementing execute count for request %d: %w", req.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing request run: %w", err)
	}

	for _, record := range records {
		if record.Promotable() {
			runtime[record.VarName] = record.Value
		}
	}

	persisted, err := c.client.RequestRun.Get(ctx, requestRun.ID)
	if err != nil {
		return false, fmt.Errorf("reloading request run %d: %w", requestRun.ID, err)
	}
	output.RequestRuns = append(output.RequestRuns, toRequestRunReport(persisted))
	for _, record := range records {
		output.Variables = append(output.Variables, VariableReport{
			RequestRunID: requestRun.ID,
			VarName:      record.VarName,
			Value:        record.Value,
			ValueType:    record.ValueType,
			SourceType:   record.SourceType,
			SourceExpr:   record.SourceExpr,
			Scope:        record.Scope,
			IsSecret:     record.IsSecret,
		})
	}

	c.logger.Info("case run finished",
		"request_id", req.ID,
		"request_run_id", requestRun.ID,
		"is_success", isSuccess,
		"status_code", result.StatusCode)

	return isSuccess, nil
}
