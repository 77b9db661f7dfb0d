package services

import (
	"context"
	"fmt"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
)

// StepInput carries the writable fields of a scenario step.
type StepInput struct {
	ScenarioID     int64
	RequestID      int64
	StepNo         int
	DatasetID      *int64
	DatasetRunMode string
	IsEnabled      *bool
	StopOnFail     *bool
}

// StepService manages scenario steps. Live steps of a scenario always form
// a contiguous 1..N sequence.
type StepService struct {
	client    *ent.Client
	scenarios *ScenarioService
	cases     *CaseService
}

// NewStepService creates a new StepService.
func NewStepService(client *ent.Client) *StepService {
	if client == nil {
		panic("NewStepService: client must not be nil")
	}
	return &StepService{
		client:    client,
		scenarios: NewScenarioService(client),
		cases:     NewCaseService(client),
	}
}

// Create inserts a step at the requested position, clamped into [1, N+1].
// Later steps shift down by one.
func (s *StepService) Create(ctx context.Context, input StepInput) (*ent.ScenarioCase, error) {
	if _, err := s.scenarios.Get(ctx, input.ScenarioID); err != nil {
		return nil, err
	}
	if _, err := s.cases.Get(ctx, input.RequestID); err != nil {
		return nil, err
	}
	if err := s.validateStrategy(ctx, input.RequestID, input.DatasetRunMode, input.DatasetID); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	count, err := tx.ScenarioCase.Query().
		Where(scenariocase.ScenarioIDEQ(input.ScenarioID), scenariocase.IsDeletedEQ(0)).
		Count(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("counting steps: %w", err)
	}

	pos := clampStepNo(input.StepNo, count+1)

	// Make room for the new position.
	_, err = tx.ScenarioCase.Update().
		Where(
			scenariocase.ScenarioIDEQ(input.ScenarioID),
			scenariocase.IsDeletedEQ(0),
			scenariocase.StepNoGTE(pos),
		).
		AddStepNo(1).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("shifting steps: %w", err)
	}

	builder := tx.ScenarioCase.Create().
		SetScenarioID(input.ScenarioID).
		SetRequestID(input.RequestID).
		SetStepNo(pos).
		SetNillableDatasetID(input.DatasetID).
		SetNillableIsEnabled(input.IsEnabled).
		SetNillableStopOnFail(input.StopOnFail)
	if input.DatasetRunMode != "" {
		builder.SetDatasetRunMode(scenariocase.DatasetRunMode(input.DatasetRunMode))
	}

	step, err := builder.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("creating step: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing step: %w", err)
	}
	return step, nil
}

// Update rewrites a step's flags. Position changes go through Reorder and
// dataset policy changes through SetDatasetStrategy.
func (s *StepService) Update(ctx context.Context, id int64, isEnabled, stopOnFail *bool) (*ent.ScenarioCase, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	step, err := s.client.ScenarioCase.UpdateOneID(id).
		SetNillableIsEnabled(isEnabled).
		SetNillableStopOnFail(stopOnFail).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating step %d: %w", id, err)
	}
	return step, nil
}

// Delete tombstones a step and renormalizes the survivors to 1..N.
func (s *StepService) Delete(ctx context.Context, id, operatorID int64) error {
	step, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	err = tx.ScenarioCase.UpdateOneID(id).
		SetIsDeleted(tombstone(operatorID)).
		Exec(ctx)
	if err == nil {
		err = renumberSteps(ctx, tx, step.ScenarioID)
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("deleting step %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing step delete: %w", err)
	}
	return nil
}

// Get loads a live step.
func (s *StepService) Get(ctx context.Context, id int64) (*ent.ScenarioCase, error) {
	step, err := s.client.ScenarioCase.Query().
		Where(scenariocase.IDEQ(id), scenariocase.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: step %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("loading step %d: %w", id, err)
	}
	return step, nil
}

// Reorder moves a step to the target position, clamped into [1, N], and
// renumbers the whole scenario.
func (s *StepService) Reorder(ctx context.Context, id int64, targetPos int) error {
	step, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	steps, err := tx.ScenarioCase.Query().
		Where(scenariocase.ScenarioIDEQ(step.ScenarioID), scenariocase.IsDeletedEQ(0)).
		Order(ent.Asc(scenariocase.FieldStepNo), ent.Asc(scenariocase.FieldID)).
		All(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("listing steps: %w", err)
	}

	pos := clampStepNo(targetPos, len(steps))

	// Rebuild the order with the moved step at its target slot.
	reordered := make([]*ent.ScenarioCase, 0, len(steps))
	for _, st := range steps {
		if st.ID != id {
			reordered = append(reordered, st)
		}
	}
	reordered = append(reordered[:pos-1], append([]*ent.ScenarioCase{step}, reordered[pos-1:]...)...)

	for i, st := range reordered {
		if st.StepNo == i+1 {
			continue
		}
		if err := tx.ScenarioCase.UpdateOneID(st.ID).SetStepNo(i + 1).Exec(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("renumbering step %d: %w", st.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}
	return nil
}

// SetDatasetStrategy updates a step's dataset policy.
func (s *StepService) SetDatasetStrategy(ctx context.Context, id int64, mode string, datasetID *int64) (*ent.ScenarioCase, error) {
	step, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateStrategy(ctx, step.RequestID, mode, datasetID); err != nil {
		return nil, err
	}

	builder := s.client.ScenarioCase.UpdateOneID(id).
		SetDatasetRunMode(scenariocase.DatasetRunMode(mode))
	if datasetID != nil {
		builder.SetDatasetID(*datasetID)
	} else {
		builder.ClearDatasetID()
	}

	step, err = builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating step %d strategy: %w", id, err)
	}
	return step, nil
}

// validateStrategy enforces the dataset policy constraints: single requires
// a dataset, and any bound dataset must belong to the step's case.
func (s *StepService) validateStrategy(ctx context.Context, requestID int64, mode string, datasetID *int64) error {
	switch mode {
	case "", "request_default", "all":
	case "single":
		if datasetID == nil {
			return NewValidationError("dataset_id", "dataset_id is required for single dataset run mode")
		}
	default:
		return NewValidationError("dataset_run_mode", fmt.Sprintf("unsupported dataset run mode %q", mode))
	}

	if datasetID == nil {
		return nil
	}
	ds, err := s.client.Dataset.Query().
		Where(dataset.IDEQ(*datasetID), dataset.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: dataset %d", ErrNotFound, *datasetID)
		}
		return fmt.Errorf("loading dataset %d: %w", *datasetID, err)
	}
	if ds.RequestID != requestID {
		return fmt.Errorf("%w: dataset %d does not belong to case %d", ErrInvalidState, *datasetID, requestID)
	}
	return nil
}

// renumberSteps rewrites live step numbers to a contiguous 1..N in the
// current (step_no, id) order.
func renumberSteps(ctx context.Context, tx *ent.Tx, scenarioID int64) error {
	steps, err := tx.ScenarioCase.Query().
		Where(scenariocase.ScenarioIDEQ(scenarioID), scenariocase.IsDeletedEQ(0)).
		Order(ent.Asc(scenariocase.FieldStepNo), ent.Asc(scenariocase.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("listing steps: %w", err)
	}
	for i, st := range steps {
		if st.StepNo == i+1 {
			continue
		}
		if err := tx.ScenarioCase.UpdateOneID(st.ID).SetStepNo(i + 1).Exec(ctx); err != nil {
			return fmt.Errorf("renumbering step %d: %w", st.ID, err)
		}
	}
	return nil
}

// clampStepNo clamps a requested position into [1, max].
func clampStepNo(pos, max int) int {
	if pos < 1 {
		return 1
	}
	if pos > max {
		return max
	}
	return pos
}
