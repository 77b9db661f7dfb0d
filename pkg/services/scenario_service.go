package services

import (
	"context"
	"fmt"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenario"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
)

// ScenarioInput carries the writable fields of a scenario.
type ScenarioInput struct {
	EnvID       *int64
	Name        string
	Description *string
	RunMode     string
	StopOnFail  *bool
	Sort        *int
}

// ScenarioService manages scenarios and their lifecycle.
type ScenarioService struct {
	client *ent.Client
}

// NewScenarioService creates a new ScenarioService.
func NewScenarioService(client *ent.Client) *ScenarioService {
	if client == nil {
		panic("NewScenarioService: client must not be nil")
	}
	return &ScenarioService{client: client}
}

// Create stores a new scenario.
func (s *ScenarioService) Create(ctx context.Context, input ScenarioInput) (*ent.Scenario, error) {
	if err := validateScenarioInput(input); err != nil {
		return nil, err
	}

	builder := s.client.Scenario.Create().
		SetName(input.Name).
		SetNillableEnvID(input.EnvID).
		SetNillableDescription(input.Description).
		SetNillableStopOnFail(input.StopOnFail).
		SetNillableSort(input.Sort)
	if input.RunMode != "" {
		builder.SetRunMode(scenario.RunMode(input.RunMode))
	}

	scn, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating scenario: %w", err)
	}
	return scn, nil
}

// Update rewrites a scenario's fields.
func (s *ScenarioService) Update(ctx context.Context, id int64, input ScenarioInput) (*ent.Scenario, error) {
	if err := validateScenarioInput(input); err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	builder := s.client.Scenario.UpdateOneID(id).
		SetName(input.Name).
		SetNillableEnvID(input.EnvID).
		SetNillableDescription(input.Description).
		SetNillableStopOnFail(input.StopOnFail).
		SetNillableSort(input.Sort)
	if input.RunMode != "" {
		builder.SetRunMode(scenario.RunMode(input.RunMode))
	}

	scn, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating scenario %d: %w", id, err)
	}
	return scn, nil
}

// Delete tombstones a scenario and its steps. Past runs stay queryable.
func (s *ScenarioService) Delete(ctx context.Context, id, operatorID int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	marker := tombstone(operatorID)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	err = tx.Scenario.UpdateOneID(id).
		SetIsDeleted(marker).
		Exec(ctx)
	if err == nil {
		_, err = tx.ScenarioCase.Update().
			Where(scenariocase.ScenarioIDEQ(id), scenariocase.IsDeletedEQ(0)).
			SetIsDeleted(marker).
			Save(ctx)
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("deleting scenario %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing scenario delete: %w", err)
	}
	return nil
}

// Get loads a live scenario.
func (s *ScenarioService) Get(ctx context.Context, id int64) (*ent.Scenario, error) {
	scn, err := s.client.Scenario.Query().
		Where(scenario.IDEQ(id), scenario.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: scenario %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("loading scenario %d: %w", id, err)
	}
	return scn, nil
}

func validateScenarioInput(input ScenarioInput) error {
	if input.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if input.RunMode != "" && input.RunMode != "sequence" && input.RunMode != "parallel" {
		return NewValidationError("run_mode", fmt.Sprintf("unsupported run mode %q", input.RunMode))
	}
	return nil
}
