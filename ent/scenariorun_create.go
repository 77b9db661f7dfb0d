// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
)

// ScenarioRunCreate is the builder for creating a ScenarioRun entity.
type ScenarioRunCreate struct {
	config
	mutation *ScenarioRunMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *ScenarioRunCreate) SetCreateTime(v time.Time) *ScenarioRunCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableCreateTime(v *time.Time) *ScenarioRunCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *ScenarioRunCreate) SetUpdateTime(v time.Time) *ScenarioRunCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableUpdateTime(v *time.Time) *ScenarioRunCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *ScenarioRunCreate) SetIsDeleted(v int64) *ScenarioRunCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableIsDeleted(v *int64) *ScenarioRunCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScenarioRunCreate) SetStatus(v int) *ScenarioRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableStatus(v *int) *ScenarioRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *ScenarioRunCreate) SetScenarioID(v int64) *ScenarioRunCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetEnvID sets the "env_id" field.
func (_c *ScenarioRunCreate) SetEnvID(v int64) *ScenarioRunCreate {
	_c.mutation.SetEnvID(v)
	return _c
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableEnvID(v *int64) *ScenarioRunCreate {
	if v != nil {
		_c.SetEnvID(*v)
	}
	return _c
}

// SetRunStatus sets the "run_status" field.
func (_c *ScenarioRunCreate) SetRunStatus(v scenariorun.RunStatus) *ScenarioRunCreate {
	_c.mutation.SetRunStatus(v)
	return _c
}

// SetNillableRunStatus sets the "run_status" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableRunStatus(v *scenariorun.RunStatus) *ScenarioRunCreate {
	if v != nil {
		_c.SetRunStatus(*v)
	}
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *ScenarioRunCreate) SetTriggerType(v scenariorun.TriggerType) *ScenarioRunCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableTriggerType(v *scenariorun.TriggerType) *ScenarioRunCreate {
	if v != nil {
		_c.SetTriggerType(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *ScenarioRunCreate) SetCancelRequested(v bool) *ScenarioRunCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableCancelRequested(v *bool) *ScenarioRunCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ScenarioRunCreate) SetStartedAt(v time.Time) *ScenarioRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableStartedAt(v *time.Time) *ScenarioRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ScenarioRunCreate) SetFinishedAt(v time.Time) *ScenarioRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableFinishedAt(v *time.Time) *ScenarioRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetTotalRequestRuns sets the "total_request_runs" field.
func (_c *ScenarioRunCreate) SetTotalRequestRuns(v int) *ScenarioRunCreate {
	_c.mutation.SetTotalRequestRuns(v)
	return _c
}

// SetNillableTotalRequestRuns sets the "total_request_runs" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableTotalRequestRuns(v *int) *ScenarioRunCreate {
	if v != nil {
		_c.SetTotalRequestRuns(*v)
	}
	return _c
}

// SetSuccessRequestRuns sets the "success_request_runs" field.
func (_c *ScenarioRunCreate) SetSuccessRequestRuns(v int) *ScenarioRunCreate {
	_c.mutation.SetSuccessRequestRuns(v)
	return _c
}

// SetNillableSuccessRequestRuns sets the "success_request_runs" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableSuccessRequestRuns(v *int) *ScenarioRunCreate {
	if v != nil {
		_c.SetSuccessRequestRuns(*v)
	}
	return _c
}

// SetFailedRequestRuns sets the "failed_request_runs" field.
func (_c *ScenarioRunCreate) SetFailedRequestRuns(v int) *ScenarioRunCreate {
	_c.mutation.SetFailedRequestRuns(v)
	return _c
}

// SetNillableFailedRequestRuns sets the "failed_request_runs" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableFailedRequestRuns(v *int) *ScenarioRunCreate {
	if v != nil {
		_c.SetFailedRequestRuns(*v)
	}
	return _c
}

// SetIsSuccess sets the "is_success" field.
func (_c *ScenarioRunCreate) SetIsSuccess(v bool) *ScenarioRunCreate {
	_c.mutation.SetIsSuccess(v)
	return _c
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableIsSuccess(v *bool) *ScenarioRunCreate {
	if v != nil {
		_c.SetIsSuccess(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScenarioRunCreate) SetErrorMessage(v string) *ScenarioRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScenarioRunCreate) SetNillableErrorMessage(v *string) *ScenarioRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRuntimeVariables sets the "runtime_variables" field.
func (_c *ScenarioRunCreate) SetRuntimeVariables(v map[string]interface{}) *ScenarioRunCreate {
	_c.mutation.SetRuntimeVariables(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScenarioRunCreate) SetID(v int64) *ScenarioRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScenarioRunMutation object of the builder.
func (_c *ScenarioRunCreate) Mutation() *ScenarioRunMutation {
	return _c.mutation
}

// Save creates the ScenarioRun in the database.
func (_c *ScenarioRunCreate) Save(ctx context.Context) (*ScenarioRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioRunCreate) SaveX(ctx context.Context) *ScenarioRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioRunCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := scenariorun.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := scenariorun.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := scenariorun.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scenariorun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RunStatus(); !ok {
		v := scenariorun.DefaultRunStatus
		_c.mutation.SetRunStatus(v)
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		v := scenariorun.DefaultTriggerType
		_c.mutation.SetTriggerType(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := scenariorun.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.TotalRequestRuns(); !ok {
		v := scenariorun.DefaultTotalRequestRuns
		_c.mutation.SetTotalRequestRuns(v)
	}
	if _, ok := _c.mutation.SuccessRequestRuns(); !ok {
		v := scenariorun.DefaultSuccessRequestRuns
		_c.mutation.SetSuccessRequestRuns(v)
	}
	if _, ok := _c.mutation.FailedRequestRuns(); !ok {
		v := scenariorun.DefaultFailedRequestRuns
		_c.mutation.SetFailedRequestRuns(v)
	}
	if _, ok := _c.mutation.IsSuccess(); !ok {
		v := scenariorun.DefaultIsSuccess
		_c.mutation.SetIsSuccess(v)
	}
	if _, ok := _c.mutation.RuntimeVariables(); !ok {
		v := scenariorun.DefaultRuntimeVariables
		_c.mutation.SetRuntimeVariables(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioRunCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "ScenarioRun.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "ScenarioRun.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "ScenarioRun.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScenarioRun.status"`)}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "ScenarioRun.scenario_id"`)}
	}
	if _, ok := _c.mutation.RunStatus(); !ok {
		return &ValidationError{Name: "run_status", err: errors.New(`ent: missing required field "ScenarioRun.run_status"`)}
	}
	if v, ok := _c.mutation.RunStatus(); ok {
		if err := scenariorun.RunStatusValidator(v); err != nil {
			return &ValidationError{Name: "run_status", err: fmt.Errorf(`ent: validator failed for field "ScenarioRun.run_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "ScenarioRun.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := scenariorun.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "ScenarioRun.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "ScenarioRun.cancel_requested"`)}
	}
	if _, ok := _c.mutation.TotalRequestRuns(); !ok {
		return &ValidationError{Name: "total_request_runs", err: errors.New(`ent: missing required field "ScenarioRun.total_request_runs"`)}
	}
	if _, ok := _c.mutation.SuccessRequestRuns(); !ok {
		return &ValidationError{Name: "success_request_runs", err: errors.New(`ent: missing required field "ScenarioRun.success_request_runs"`)}
	}
	if _, ok := _c.mutation.FailedRequestRuns(); !ok {
		return &ValidationError{Name: "failed_request_runs", err: errors.New(`ent: missing required field "ScenarioRun.failed_request_runs"`)}
	}
	if _, ok := _c.mutation.IsSuccess(); !ok {
		return &ValidationError{Name: "is_success", err: errors.New(`ent: missing required field "ScenarioRun.is_success"`)}
	}
	if _, ok := _c.mutation.RuntimeVariables(); !ok {
		return &ValidationError{Name: "runtime_variables", err: errors.New(`ent: missing required field "ScenarioRun.runtime_variables"`)}
	}
	return nil
}

func (_c *ScenarioRunCreate) sqlSave(ctx context.Context) (*ScenarioRun, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScenarioRunCreate) createSpec() (*ScenarioRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ScenarioRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenariorun.Table, sqlgraph.NewFieldSpec(scenariorun.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(scenariorun.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(scenariorun.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(scenariorun.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scenariorun.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(scenariorun.FieldScenarioID, field.TypeInt64, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.EnvID(); ok {
		_spec.SetField(scenariorun.FieldEnvID, field.TypeInt64, value)
		_node.EnvID = &value
	}
	if value, ok := _c.mutation.RunStatus(); ok {
		_spec.SetField(scenariorun.FieldRunStatus, field.TypeEnum, value)
		_node.RunStatus = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(scenariorun.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(scenariorun.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(scenariorun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(scenariorun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.TotalRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldTotalRequestRuns, field.TypeInt, value)
		_node.TotalRequestRuns = value
	}
	if value, ok := _c.mutation.SuccessRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldSuccessRequestRuns, field.TypeInt, value)
		_node.SuccessRequestRuns = value
	}
	if value, ok := _c.mutation.FailedRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldFailedRequestRuns, field.TypeInt, value)
		_node.FailedRequestRuns = value
	}
	if value, ok := _c.mutation.IsSuccess(); ok {
		_spec.SetField(scenariorun.FieldIsSuccess, field.TypeBool, value)
		_node.IsSuccess = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scenariorun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RuntimeVariables(); ok {
		_spec.SetField(scenariorun.FieldRuntimeVariables, field.TypeJSON, value)
		_node.RuntimeVariables = value
	}
	return _node, _spec
}

// ScenarioRunCreateBulk is the builder for creating many ScenarioRun entities in bulk.
type ScenarioRunCreateBulk struct {
	config
	err      error
	builders []*ScenarioRunCreate
}

// Save creates the ScenarioRun entities in the database.
func (_c *ScenarioRunCreateBulk) Save(ctx context.Context) ([]*ScenarioRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScenarioRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioRunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScenarioRunCreateBulk) SaveX(ctx context.Context) []*ScenarioRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
