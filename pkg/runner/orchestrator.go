// Package runner drives scenario runs end to end: it resolves datasets,
// executes each step through the HTTP executor, applies assertion and
// extraction rules, persists request runs and finalizes the scenario run.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/environment"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenario"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/assertion"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/extract"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/masking"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/vars"
)

// cancelReason is recorded as the run's error message when a cancel
// request is honored mid-run.
const cancelReason = "场景执行已取消"

// Orchestrator executes one claimed scenario run to a terminal state.
// It satisfies the queue's RunExecutor contract.
type Orchestrator struct {
	client   *ent.Client
	executor *executor.Executor
	logger   *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(client *ent.Client, exec *executor.Executor, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		client:   client,
		executor: exec,
		logger:   logger.With("component", "orchestrator"),
	}
}

// runState accumulates the mutable outcome of a run across steps.
type runState struct {
	runtime     map[string]any
	total       int
	success     int
	failed      int
	canceled    bool
	stopMessage string
}

// Execute drives the run through every enabled step and always commits a
// terminal status. Only a failure to persist the terminal state is
// returned to the caller; anything else ends the run as failed.
func (o *Orchestrator) Execute(ctx context.Context, run *ent.ScenarioRun) error {
	// Persistence must survive a canceled run context so that the
	// terminal state and already-produced request runs are committed.
	dbCtx := context.WithoutCancel(ctx)

	state := &runState{runtime: vars.Merge(nil, run.RuntimeVariables)}

	runErr := o.runScenario(ctx, dbCtx, run, state)
	if runErr != nil {
		o.logger.Error("scenario run aborted",
			"scenario_run_id", run.ID,
			"error", runErr)
	}
	return o.finalize(dbCtx, run, state, runErr)
}

// runScenario iterates the scenario's enabled steps in (step_no, id) order.
// A returned error means the run could not proceed and must end failed.
func (o *Orchestrator) runScenario(ctx, dbCtx context.Context, run *ent.ScenarioRun, state *runState) error {
	scn, err := o.client.Scenario.Query().
		Where(scenario.IDEQ(run.ScenarioID), scenario.IsDeletedEQ(0)).
		Only(dbCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("测试场景 %d 不存在", run.ScenarioID)
		}
		return fmt.Errorf("loading scenario %d: %w", run.ScenarioID, err)
	}

	env, err := loadEnvironment(dbCtx, o.client, run.EnvID)
	if err != nil {
		return err
	}

	steps, err := o.client.ScenarioCase.Query().
		Where(
			scenariocase.ScenarioIDEQ(scn.ID),
			scenariocase.IsDeletedEQ(0),
			scenariocase.IsEnabledEQ(true),
		).
		Order(ent.Asc(scenariocase.FieldStepNo), ent.Asc(scenariocase.FieldID)).
		All(dbCtx)
	if err != nil {
		return fmt.Errorf("listing steps for scenario %d: %w", scn.ID, err)
	}

	for _, step := range steps {
		canceled, err := o.cancelRequested(ctx, dbCtx, run.ID)
		if err != nil {
			return err
		}
		if canceled {
			state.canceled = true
			o.logger.Info("cancel observed, stopping run",
				"scenario_run_id", run.ID,
				"step_no", step.StepNo)
			return nil
		}

		req, err := o.client.ApiRequest.Query().
			Where(apirequest.IDEQ(step.RequestID), apirequest.IsDeletedEQ(0)).
			Only(dbCtx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("接口用例 %d 不存在", step.RequestID)
			}
			return fmt.Errorf("loading request %d: %w", step.RequestID, err)
		}

		datasets, err := ResolveStepDatasets(dbCtx, o.client, step, req)
		if err != nil {
			return fmt.Errorf("resolving datasets for step %d: %w", step.StepNo, err)
		}

		for _, ds := range datasets {
			ok, err := o.runIteration(ctx, dbCtx, run, step, req, ds, env, state)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
			// First failing iteration stops the step's remaining datasets
			// and the rest of the run.
			if step.StopOnFail || scn.StopOnFail {
				state.stopMessage = fmt.Sprintf("步骤 %d 执行失败: request_id=%d, dataset_id=%s",
					step.StepNo, req.ID, datasetLabel(ds))
				o.logger.Info("stop on fail triggered",
					"scenario_run_id", run.ID,
					"step_no", step.StepNo,
					"request_id", req.ID,
					"dataset_id", datasetLabel(ds))
				return nil
			}
		}
	}
	return nil
}

// runIteration executes one (step, dataset) pair, persists the request run
// with its variables inside one transaction, and promotes scenario and
// global scoped variables into the runtime mapping.
func (o *Orchestrator) runIteration(ctx, dbCtx context.Context, run *ent.ScenarioRun, step *ent.ScenarioCase, req *ent.ApiRequest, ds *ent.Dataset, env *executor.Environment, state *runState) (bool, error) {
	result, err := o.executor.Execute(ctx, toTemplate(req), toDataset(ds), env, state.runtime)
	if err != nil {
		return false, fmt.Errorf("executing request %d: %w", req.ID, err)
	}

	// The rendered snapshot can hold resolved credentials; log it masked.
	if headers, ok := result.RequestSnapshot["headers"].(map[string]any); ok {
		o.logger.Debug("request executed",
			"scenario_run_id", run.ID,
			"request_id", req.ID,
			"method", result.RequestSnapshot["method"],
			"url", result.RequestSnapshot["url"],
			"headers", masking.Headers(headers))
	}

	var datasetID *int64
	if ds != nil {
		datasetID = &ds.ID
	}

	assertRules, err := loadAssertRules(dbCtx, o.client, req.ID, datasetID)
	if err != nil {
		return false, err
	}
	extractRules, err := loadExtractRules(dbCtx, o.client, req.ID, datasetID)
	if err != nil {
		return false, err
	}

	passed, assertRecords := assertion.Evaluate(assertRules, result)
	records, extractErr := extract.Apply(extractRules, result, state.runtime)

	isSuccess := result.IsSuccess && passed && extractErr == nil
	errorMessage := iterationErrorMessage(result, assertRecords, extractErr)

	tx, err := o.client.Tx(dbCtx)
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}

	create := tx.RequestRun.Create().
		SetRequestID(req.ID).
		SetScenarioRunID(run.ID).
		SetScenarioCaseID(step.ID).
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

	requestRun, err := create.Save(dbCtx)
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
			SetScenarioRunID(run.ID).
			SetRequestRunID(requestRun.ID).
			SetScenarioCaseID(step.ID).
			SetRequestID(req.ID).
			SetNillableDatasetID(datasetID).
			SetVarName(record.VarName).
			SetVarValue(value).
			SetValueType(record.ValueType).
			SetSourceType(runvariable.SourceType(record.SourceType)).
			SetSourceExpr(record.SourceExpr).
			SetScope(runvariable.Scope(record.Scope)).
			SetIsSecret(record.IsSecret).
			Save(dbCtx)
		if err != nil {
			tx.Rollback()
			return false, fmt.Errorf("persisting variable %q: %w", record.VarName, err)
		}
	}

	if err := tx.ApiRequest.UpdateOneID(req.ID).AddExecuteCount(1).Exec(dbCtx); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("incrementing execute count for request %d: %w", req.ID, err)
	}

	runUpdate := tx.ScenarioRun.UpdateOneID(run.ID).AddTotalRequestRuns(1)
	if isSuccess {
		runUpdate.AddSuccessRequestRuns(1)
	} else {
		runUpdate.AddFailedRequestRuns(1)
	}
	if err := runUpdate.Exec(dbCtx); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("updating run counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing request run: %w", err)
	}

	state.total++
	if isSuccess {
		state.success++
	} else {
		state.failed++
	}

	for _, record := range records {
		if record.Promotable() {
			state.runtime[record.VarName] = record.Value
		}
	}

	o.logger.Info("request run finished",
		"scenario_run_id", run.ID,
		"request_run_id", requestRun.ID,
		"request_id", req.ID,
		"step_no", step.StepNo,
		"is_success", isSuccess,
		"status_code", result.StatusCode,
		"elapsed_ms", result.ElapsedMs,
		"variables", masking.Records(records))

	return isSuccess, nil
}

// finalize commits the run's terminal state exactly once. A runErr forces
// a failed status with the error text.
func (o *Orchestrator) finalize(dbCtx context.Context, run *ent.ScenarioRun, state *runState, runErr error) error {
	isSuccess := state.failed == 0 && !state.canceled && runErr == nil

	status := scenariorun.RunStatusSuccess
	var errorMessage *string
	switch {
	case runErr != nil:
		status = scenariorun.RunStatusFailed
		msg := runErr.Error()
		errorMessage = &msg
	case state.canceled:
		status = scenariorun.RunStatusCanceled
		msg := cancelReason
		errorMessage = &msg
	case state.failed > 0:
		status = scenariorun.RunStatusFailed
		if state.stopMessage != "" {
			errorMessage = &state.stopMessage
		}
	}

	update := o.client.ScenarioRun.UpdateOneID(run.ID).
		SetRunStatus(status).
		SetIsSuccess(isSuccess).
		SetRuntimeVariables(state.runtime).
		SetFinishedAt(time.Now())
	if errorMessage != nil {
		update.SetErrorMessage(*errorMessage)
	}
	if err := update.Exec(dbCtx); err != nil {
		return fmt.Errorf("finalizing run %d: %w", run.ID, err)
	}

	o.logger.Info("scenario run finished",
		"scenario_run_id", run.ID,
		"run_status", status,
		"is_success", isSuccess,
		"total", state.total,
		"success", state.success,
		"failed", state.failed)
	return nil
}

// cancelRequested checks the run context first, then re-reads the cancel
// flag so an API-side cancel is honored at the next step boundary.
func (o *Orchestrator) cancelRequested(ctx, dbCtx context.Context, runID int64) (bool, error) {
	if ctx.Err() != nil {
		return true, nil
	}
	requested, err := o.client.ScenarioRun.Query().
		Where(scenariorun.IDEQ(runID)).
		Select(scenariorun.FieldCancelRequested).
		Bool(dbCtx)
	if err != nil {
		return false, fmt.Errorf("reading cancel flag for run %d: %w", runID, err)
	}
	return requested, nil
}

// loadEnvironment resolves the environment variable layer. No env id means
// no environment variables.
func loadEnvironment(ctx context.Context, client *ent.Client, envID *int64) (*executor.Environment, error) {
	if envID == nil {
		return nil, nil
	}
	env, err := client.Environment.Query().
		Where(environment.IDEQ(*envID), environment.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("运行环境 %d 不存在", *envID)
		}
		return nil, fmt.Errorf("loading environment %d: %w", *envID, err)
	}
	return toEnvironment(env), nil
}

// iterationErrorMessage merges assertion failures, the transport error and
// a required-extraction failure into one message, assertion details first.
func iterationErrorMessage(result *executor.Result, assertRecords []assertion.Record, extractErr error) *string {
	var parts []string
	for _, r := range assertRecords {
		if !r.Passed {
			parts = append(parts, r.FailureText())
		}
	}
	if result.ErrorMessage != nil {
		parts = append(parts, *result.ErrorMessage)
	}
	if extractErr != nil {
		parts = append(parts, extractErr.Error())
	}
	if len(parts) == 0 {
		return nil
	}
	msg := strings.Join(parts, "; ")
	return &msg
}

func assertionResultMaps(records []assertion.Record) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, map[string]any{
			"assert_type": r.AssertType,
			"source_expr": r.SourceExpr,
			"comparator":  r.Comparator,
			"actual":      r.Actual,
			"expected":    r.Expected,
			"passed":      r.Passed,
			"detail":      r.Detail,
			"message":     r.Message,
		})
	}
	return out
}

func datasetLabel(ds *ent.Dataset) string {
	if ds == nil {
		return "none"
	}
	return fmt.Sprintf("%d", ds.ID)
}
