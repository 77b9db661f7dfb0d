package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
)

// Report is the on-demand aggregation of one scenario run: the run row's
// terminal fields plus every request run grouped by step and every
// captured variable. Nothing is precomputed at run time beyond counters.
type Report struct {
	ScenarioRunID    int64            `json:"scenario_run_id"`
	ScenarioID       int64            `json:"scenario_id"`
	EnvID            *int64           `json:"env_id"`
	RunStatus        string           `json:"run_status"`
	TriggerType      string           `json:"trigger_type"`
	IsSuccess        bool             `json:"is_success"`
	StartedAt        *time.Time       `json:"started_at"`
	FinishedAt       *time.Time       `json:"finished_at"`
	TotalRequestRuns int              `json:"total_request_runs"`
	SuccessRuns      int              `json:"success_request_runs"`
	FailedRuns       int              `json:"failed_request_runs"`
	ErrorMessage     *string          `json:"error_message"`
	RuntimeVariables map[string]any   `json:"runtime_variables"`
	Steps            []StepReport     `json:"steps"`
	Variables        []VariableReport `json:"variables"`
}

// StepReport groups the request runs produced by one scenario step. Runs
// whose step was since deleted keep a nil step number.
type StepReport struct {
	ScenarioCaseID *int64             `json:"scenario_case_id"`
	StepNo         *int               `json:"step_no"`
	RequestRuns    []RequestRunReport `json:"request_runs"`
}

// RequestRunReport is one executed request inside the report.
type RequestRunReport struct {
	ID               int64               `json:"id"`
	RequestID        int64               `json:"request_id"`
	DatasetID        *int64              `json:"dataset_id"`
	DatasetSnapshot  map[string]any      `json:"dataset_snapshot"`
	RequestSnapshot  map[string]any      `json:"request_snapshot"`
	IsSuccess        bool                `json:"is_success"`
	StatusCode       *int                `json:"response_status_code"`
	ResponseHeaders  map[string][]string `json:"response_headers"`
	ResponseBody     *string             `json:"response_body"`
	ResponseTimeMs   int64               `json:"response_time_ms"`
	ErrorMessage     *string             `json:"error_message"`
	AssertionResults []map[string]any    `json:"assertion_results"`
}

// VariableReport is one captured variable inside the report.
type VariableReport struct {
	RequestRunID int64  `json:"request_run_id"`
	VarName      string `json:"var_name"`
	Value        any    `json:"var_value"`
	ValueType    string `json:"value_type"`
	SourceType   string `json:"source_type"`
	SourceExpr   string `json:"source_expr"`
	Scope        string `json:"scope"`
	IsSecret     bool   `json:"is_secret"`
}

// BuildReport assembles the report for one scenario run from its persisted
// request runs and variables, in execution order.
func BuildReport(ctx context.Context, client *ent.Client, run *ent.ScenarioRun) (*Report, error) {
	runs, err := client.RequestRun.Query().
		Where(
			requestrun.ScenarioRunIDEQ(run.ID),
			requestrun.IsDeletedEQ(0),
		).
		Order(ent.Asc(requestrun.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing request runs for run %d: %w", run.ID, err)
	}

	variables, err := client.RunVariable.Query().
		Where(
			runvariable.ScenarioRunIDEQ(run.ID),
			runvariable.IsDeletedEQ(0),
		).
		Order(ent.Asc(runvariable.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing variables for run %d: %w", run.ID, err)
	}

	stepNos, err := stepNumbers(ctx, client, runs)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ScenarioRunID:    run.ID,
		ScenarioID:       run.ScenarioID,
		EnvID:            run.EnvID,
		RunStatus:        string(run.RunStatus),
		TriggerType:      string(run.TriggerType),
		IsSuccess:        run.IsSuccess,
		StartedAt:        run.StartedAt,
		FinishedAt:       run.FinishedAt,
		TotalRequestRuns: run.TotalRequestRuns,
		SuccessRuns:      run.SuccessRequestRuns,
		FailedRuns:       run.FailedRequestRuns,
		ErrorMessage:     run.ErrorMessage,
		RuntimeVariables: run.RuntimeVariables,
		Steps:            groupSteps(runs, stepNos),
		Variables:        toVariableReports(variables),
	}
	return report, nil
}

// groupSteps folds request runs into per-step groups, preserving the order
// in which steps first produced a run.
func groupSteps(runs []*ent.RequestRun, stepNos map[int64]int) []StepReport {
	steps := make([]StepReport, 0)
	index := make(map[int64]int)

	for _, rr := range runs {
		key := int64(0)
		if rr.ScenarioCaseID != nil {
			key = *rr.ScenarioCaseID
		}
		i, ok := index[key]
		if !ok {
			step := StepReport{ScenarioCaseID: rr.ScenarioCaseID}
			if rr.ScenarioCaseID != nil {
				if no, found := stepNos[*rr.ScenarioCaseID]; found {
					step.StepNo = &no
				}
			}
			steps = append(steps, step)
			i = len(steps) - 1
			index[key] = i
		}
		steps[i].RequestRuns = append(steps[i].RequestRuns, toRequestRunReport(rr))
	}
	return steps
}

// stepNumbers resolves step numbers for the cases referenced by the runs.
// Deleted cases are simply absent from the result.
func stepNumbers(ctx context.Context, client *ent.Client, runs []*ent.RequestRun) (map[int64]int, error) {
	ids := make([]int64, 0, len(runs))
	seen := make(map[int64]bool)
	for _, rr := range runs {
		if rr.ScenarioCaseID != nil && !seen[*rr.ScenarioCaseID] {
			seen[*rr.ScenarioCaseID] = true
			ids = append(ids, *rr.ScenarioCaseID)
		}
	}
	if len(ids) == 0 {
		return map[int64]int{}, nil
	}

	cases, err := client.ScenarioCase.Query().
		Where(scenariocase.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scenario cases: %w", err)
	}

	out := make(map[int64]int, len(cases))
	for _, c := range cases {
		out[c.ID] = c.StepNo
	}
	return out, nil
}

func toRequestRunReport(rr *ent.RequestRun) RequestRunReport {
	return RequestRunReport{
		ID:               rr.ID,
		RequestID:        rr.RequestID,
		DatasetID:        rr.DatasetID,
		DatasetSnapshot:  rr.DatasetSnapshot,
		RequestSnapshot:  rr.RequestSnapshot,
		IsSuccess:        rr.IsSuccess,
		StatusCode:       rr.ResponseStatusCode,
		ResponseHeaders:  rr.ResponseHeaders,
		ResponseBody:     rr.ResponseBody,
		ResponseTimeMs:   rr.ResponseTimeMs,
		ErrorMessage:     rr.ErrorMessage,
		AssertionResults: rr.AssertionResults,
	}
}

func toVariableReports(variables []*ent.RunVariable) []VariableReport {
	out := make([]VariableReport, 0, len(variables))
	for _, v := range variables {
		var value any
		if v.VarValue != nil {
			_ = json.Unmarshal(v.VarValue, &value)
		}
		out = append(out, VariableReport{
			RequestRunID: v.RequestRunID,
			VarName:      v.VarName,
			Value:        value,
			ValueType:    v.ValueType,
			SourceType:   string(v.SourceType),
			SourceExpr:   v.SourceExpr,
			Scope:        string(v.Scope),
			IsSecret:     v.IsSecret,
		})
	}
	return out
}
