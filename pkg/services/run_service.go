package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/runner"
)

// retentionTombstone marks rows removed by the retention purge rather than
// an operator.
const retentionTombstone int64 = 1

// RunDispatcher hands a persisted run to the broker and returns a task id.
type RunDispatcher interface {
	Enqueue(ctx context.Context, scenarioRunID int64) (string, error)
}

// RunCanceler is the worker pool's fast path for cancelling a run active on
// this pod. Runs owned elsewhere converge through the cancel flag alone.
type RunCanceler interface {
	CancelRun(runID int64) bool
}

// SubmitRunInput carries a scenario run submission.
type SubmitRunInput struct {
	ScenarioID       int64
	EnvID            *int64
	TriggerType      string
	InitialVariables map[string]any
}

// SubmitRunResult reports the queued run back to the caller.
type SubmitRunResult struct {
	ScenarioRunID int64  `json:"scenario_run_id"`
	RunStatus     string `json:"run_status"`
	TaskID        string `json:"task_id,omitempty"`
}

// RunService owns the scenario-run lifecycle on the API side: submission,
// cancellation, retrieval, reporting and direct case runs.
type RunService struct {
	client     *ent.Client
	dispatcher RunDispatcher
	canceler   RunCanceler
	caseRunner *runner.CaseRunner
	scenarios  *ScenarioService
}

// NewRunService creates a new RunService. The canceler is optional.
func NewRunService(client *ent.Client, dispatcher RunDispatcher, canceler RunCanceler, caseRunner *runner.CaseRunner) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	if dispatcher == nil {
		panic("NewRunService: dispatcher must not be nil")
	}
	if caseRunner == nil {
		panic("NewRunService: caseRunner must not be nil")
	}
	return &RunService{
		client:     client,
		dispatcher: dispatcher,
		canceler:   canceler,
		caseRunner: caseRunner,
		scenarios:  NewScenarioService(client),
	}
}

// Submit creates a queued run and enqueues it. The environment is pinned at
// submit time: the explicit override wins over the scenario's default.
func (s *RunService) Submit(ctx context.Context, input SubmitRunInput) (*SubmitRunResult, error) {
	if input.TriggerType != "" && input.TriggerType != "manual" && input.TriggerType != "schedule" {
		return nil, NewValidationError("trigger_type", fmt.Sprintf("unsupported trigger type %q", input.TriggerType))
	}

	scn, err := s.scenarios.Get(ctx, input.ScenarioID)
	if err != nil {
		return nil, err
	}

	envID := scn.EnvID
	if input.EnvID != nil {
		envID = input.EnvID
	}

	builder := s.client.ScenarioRun.Create().
		SetScenarioID(scn.ID).
		SetNillableEnvID(envID).
		SetRunStatus(scenariorun.RunStatusQueued)
	if input.TriggerType != "" {
		builder.SetTriggerType(scenariorun.TriggerType(input.TriggerType))
	}
	if input.InitialVariables != nil {
		builder.SetRuntimeVariables(input.InitialVariables)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating scenario run: %w", err)
	}

	taskID, err := s.dispatcher.Enqueue(ctx, run.ID)
	if err != nil {
		// The run stays queued; a later submit or manual requeue can pick
		// it up. Surfaced as dispatch-failed to the caller.
		slog.Error("Failed to enqueue scenario run",
			"scenario_run_id", run.ID,
			"error", err)
		return nil, fmt.Errorf("%w: scenario run %d: %v", ErrDispatchFailed, run.ID, err)
	}

	slog.Info("Scenario run submitted",
		"scenario_run_id", run.ID,
		"scenario_id", scn.ID,
		"task_id", taskID)

	return &SubmitRunResult{
		ScenarioRunID: run.ID,
		RunStatus:     string(scenariorun.RunStatusQueued),
		TaskID:        taskID,
	}, nil
}

// Cancel requests cooperative cancellation of a non-terminal run. Terminal
// runs are rejected as invalid state.
func (s *RunService) Cancel(ctx context.Context, runID int64) error {
	run, err := s.Get(ctx, runID)
	if err != nil {
		return err
	}

	switch run.RunStatus {
	case scenariorun.RunStatusQueued, scenariorun.RunStatusRunning:
	default:
		return fmt.Errorf("%w: run %d is already %s", ErrInvalidState, runID, run.RunStatus)
	}

	err = s.client.ScenarioRun.UpdateOneID(runID).
		SetCancelRequested(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("requesting cancel for run %d: %w", runID, err)
	}

	if s.canceler != nil && s.canceler.CancelRun(runID) {
		slog.Info("Cancelled active run on this pod", "scenario_run_id", runID)
	}
	return nil
}

// Get loads a live scenario run.
func (s *RunService) Get(ctx context.Context, runID int64) (*ent.ScenarioRun, error) {
	run, err := s.client.ScenarioRun.Query().
		Where(scenariorun.IDEQ(runID), scenariorun.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: scenario run %d", ErrNotFound, runID)
		}
		return nil, fmt.Errorf("loading scenario run %d: %w", runID, err)
	}
	return run, nil
}

// Report builds the on-demand report for a run.
func (s *RunService) Report(ctx context.Context, runID int64) (*runner.Report, error) {
	run, err := s.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	report, err := runner.BuildReport(ctx, s.client, run)
	if err != nil {
		return nil, fmt.Errorf("building report for run %d: %w", runID, err)
	}
	return report, nil
}

// PurgeOldRuns tombstones terminal runs older than the retention window,
// together with their request runs and variables. Returns the number of
// scenario runs purged. Idempotent and safe to run from multiple pods.
func (s *RunService) PurgeOldRuns(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	runs, err := s.client.ScenarioRun.Query().
		Where(
			scenariorun.RunStatusIn(
				scenariorun.RunStatusSuccess,
				scenariorun.RunStatusFailed,
				scenariorun.RunStatusCanceled,
			),
			scenariorun.IsDeletedEQ(0),
			scenariorun.CreateTimeLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing expired runs: %w", err)
	}
	if len(runs) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(runs))
	for _, run := range runs {
		ids = append(ids, run.ID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}

	_, err = tx.ScenarioRun.Update().
		Where(scenariorun.IDIn(ids...)).
		SetIsDeleted(retentionTombstone).
		Save(ctx)
	if err == nil {
		_, err = tx.RequestRun.Update().
			Where(requestrun.ScenarioRunIDIn(ids...), requestrun.IsDeletedEQ(0)).
			SetIsDeleted(retentionTombstone).
			Save(ctx)
	}
	if err == nil {
		_, err = tx.RunVariable.Update().
			Where(runvariable.ScenarioRunIDIn(ids...), runvariable.IsDeletedEQ(0)).
			SetIsDeleted(retentionTombstone).
			Save(ctx)
	}
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("purging expired runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing purge: %w", err)
	}
	return len(ids), nil
}

// RunCase executes one stored request synchronously, outside any scenario.
func (s *RunService) RunCase(ctx context.Context, input runner.CaseRunInput) (*runner.CaseRunOutput, error) {
	out, err := s.caseRunner.Run(ctx, input)
	if err != nil {
		return nil, mapRunnerError(err)
	}
	return out, nil
}
