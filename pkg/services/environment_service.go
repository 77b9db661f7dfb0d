package services

import (
	"context"
	"fmt"

	"github.com/ExileLine/exile-ai-test-platform-server/ent"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/environment"
)

// EnvironmentInput carries the writable fields of an environment.
type EnvironmentInput struct {
	Name      string
	Variables map[string]any
	IsDefault bool
}

// EnvironmentService manages environments. At most one live environment is
// the default at any time.
type EnvironmentService struct {
	client *ent.Client
}

// NewEnvironmentService creates a new EnvironmentService.
func NewEnvironmentService(client *ent.Client) *EnvironmentService {
	if client == nil {
		panic("NewEnvironmentService: client must not be nil")
	}
	return &EnvironmentService{client: client}
}

// Create stores a new environment. Marking it default demotes the previous
// default in the same transaction.
func (s *EnvironmentService) Create(ctx context.Context, input EnvironmentInput) (*ent.Environment, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	if input.IsDefault {
		if err := demoteDefaultEnvironments(ctx, tx, 0); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	builder := tx.Environment.Create().
		SetName(input.Name).
		SetIsDefault(input.IsDefault)
	if input.Variables != nil {
		builder.SetVariables(input.Variables)
	}

	env, err := builder.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("creating environment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing environment: %w", err)
	}
	return env, nil
}

// Update rewrites an environment's fields.
func (s *EnvironmentService) Update(ctx context.Context, id int64, input EnvironmentInput) (*ent.Environment, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	if input.IsDefault {
		if err := demoteDefaultEnvironments(ctx, tx, id); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	builder := tx.Environment.UpdateOneID(id).
		SetName(input.Name).
		SetIsDefault(input.IsDefault)
	if input.Variables != nil {
		builder.SetVariables(input.Variables)
	}

	env, err := builder.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("updating environment %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing environment: %w", err)
	}
	return env, nil
}

// Delete tombstones an environment. Requests keep their env_id; execution
// treats a tombstoned environment as missing.
func (s *EnvironmentService) Delete(ctx context.Context, id, operatorID int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	err := s.client.Environment.UpdateOneID(id).
		SetIsDeleted(tombstone(operatorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting environment %d: %w", id, err)
	}
	return nil
}

// Get loads a live environment.
func (s *EnvironmentService) Get(ctx context.Context, id int64) (*ent.Environment, error) {
	env, err := s.client.Environment.Query().
		Where(environment.IDEQ(id), environment.IsDeletedEQ(0)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: environment %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("loading environment %d: %w", id, err)
	}
	return env, nil
}

// List returns the live environments ordered by id.
func (s *EnvironmentService) List(ctx context.Context) ([]*ent.Environment, error) {
	envs, err := s.client.Environment.Query().
		Where(environment.IsDeletedEQ(0)).
		Order(ent.Asc(environment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing environments: %w", err)
	}
	return envs, nil
}

func demoteDefaultEnvironments(ctx context.Context, tx *ent.Tx, keepID int64) error {
	q := tx.Environment.Update().
		Where(environment.IsDefaultEQ(true), environment.IsDeletedEQ(0))
	if keepID != 0 {
		q = q.Where(environment.IDNEQ(keepID))
	}
	if _, err := q.SetIsDefault(false).Save(ctx); err != nil {
		return fmt.Errorf("demoting default environment: %w", err)
	}
	return nil
}

// tombstone produces the nonzero is_deleted marker, attributing the delete
// to the operator when known.
func tombstone(operatorID int64) int64 {
	if operatorID > 0 {
		return operatorID
	}
	return 1
}
