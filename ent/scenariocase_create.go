// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
)

// ScenarioCaseCreate is the builder for creating a ScenarioCase entity.
type ScenarioCaseCreate struct {
	config
	mutation *ScenarioCaseMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *ScenarioCaseCreate) SetCreateTime(v time.Time) *ScenarioCaseCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableCreateTime(v *time.Time) *ScenarioCaseCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *ScenarioCaseCreate) SetUpdateTime(v time.Time) *ScenarioCaseCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableUpdateTime(v *time.Time) *ScenarioCaseCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *ScenarioCaseCreate) SetIsDeleted(v int64) *ScenarioCaseCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableIsDeleted(v *int64) *ScenarioCaseCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScenarioCaseCreate) SetStatus(v int) *ScenarioCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableStatus(v *int) *ScenarioCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *ScenarioCaseCreate) SetScenarioID(v int64) *ScenarioCaseCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *ScenarioCaseCreate) SetRequestID(v int64) *ScenarioCaseCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetStepNo sets the "step_no" field.
func (_c *ScenarioCaseCreate) SetStepNo(v int) *ScenarioCaseCreate {
	_c.mutation.SetStepNo(v)
	return _c
}

// SetNillableStepNo sets the "step_no" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableStepNo(v *int) *ScenarioCaseCreate {
	if v != nil {
		_c.SetStepNo(*v)
	}
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *ScenarioCaseCreate) SetDatasetID(v int64) *ScenarioCaseCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableDatasetID(v *int64) *ScenarioCaseCreate {
	if v != nil {
		_c.SetDatasetID(*v)
	}
	return _c
}

// SetDatasetRunMode sets the "dataset_run_mode" field.
func (_c *ScenarioCaseCreate) SetDatasetRunMode(v scenariocase.DatasetRunMode) *ScenarioCaseCreate {
	_c.mutation.SetDatasetRunMode(v)
	return _c
}

// SetNillableDatasetRunMode sets the "dataset_run_mode" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableDatasetRunMode(v *scenariocase.DatasetRunMode) *ScenarioCaseCreate {
	if v != nil {
		_c.SetDatasetRunMode(*v)
	}
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *ScenarioCaseCreate) SetIsEnabled(v bool) *ScenarioCaseCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableIsEnabled(v *bool) *ScenarioCaseCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetStopOnFail sets the "stop_on_fail" field.
func (_c *ScenarioCaseCreate) SetStopOnFail(v bool) *ScenarioCaseCreate {
	_c.mutation.SetStopOnFail(v)
	return _c
}

// SetNillableStopOnFail sets the "stop_on_fail" field if the given value is not nil.
func (_c *ScenarioCaseCreate) SetNillableStopOnFail(v *bool) *ScenarioCaseCreate {
	if v != nil {
		_c.SetStopOnFail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScenarioCaseCreate) SetID(v int64) *ScenarioCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScenarioCaseMutation object of the builder.
func (_c *ScenarioCaseCreate) Mutation() *ScenarioCaseMutation {
	return _c.mutation
}

// Save creates the ScenarioCase in the database.
func (_c *ScenarioCaseCreate) Save(ctx context.Context) (*ScenarioCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioCaseCreate) SaveX(ctx context.Context) *ScenarioCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioCaseCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := scenariocase.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := scenariocase.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := scenariocase.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scenariocase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StepNo(); !ok {
		v := scenariocase.DefaultStepNo
		_c.mutation.SetStepNo(v)
	}
	if _, ok := _c.mutation.DatasetRunMode(); !ok {
		v := scenariocase.DefaultDatasetRunMode
		_c.mutation.SetDatasetRunMode(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := scenariocase.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.StopOnFail(); !ok {
		v := scenariocase.DefaultStopOnFail
		_c.mutation.SetStopOnFail(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioCaseCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "ScenarioCase.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "ScenarioCase.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "ScenarioCase.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScenarioCase.status"`)}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "ScenarioCase.scenario_id"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ScenarioCase.request_id"`)}
	}
	if _, ok := _c.mutation.StepNo(); !ok {
		return &ValidationError{Name: "step_no", err: errors.New(`ent: missing required field "ScenarioCase.step_no"`)}
	}
	if _, ok := _c.mutation.DatasetRunMode(); !ok {
		return &ValidationError{Name: "dataset_run_mode", err: errors.New(`ent: missing required field "ScenarioCase.dataset_run_mode"`)}
	}
	if v, ok := _c.mutation.DatasetRunMode(); ok {
		if err := scenariocase.DatasetRunModeValidator(v); err != nil {
			return &ValidationError{Name: "dataset_run_mode", err: fmt.Errorf(`ent: validator failed for field "ScenarioCase.dataset_run_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "ScenarioCase.is_enabled"`)}
	}
	if _, ok := _c.mutation.StopOnFail(); !ok {
		return &ValidationError{Name: "stop_on_fail", err: errors.New(`ent: missing required field "ScenarioCase.stop_on_fail"`)}
	}
	return nil
}

func (_c *ScenarioCaseCreate) sqlSave(ctx context.Context) (*ScenarioCase, error) {
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

func (_c *ScenarioCaseCreate) createSpec() (*ScenarioCase, *sqlgraph.CreateSpec) {
	var (
		_node = &ScenarioCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenariocase.Table, sqlgraph.NewFieldSpec(scenariocase.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(scenariocase.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(scenariocase.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(scenariocase.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scenariocase.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(scenariocase.FieldScenarioID, field.TypeInt64, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(scenariocase.FieldRequestID, field.TypeInt64, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.StepNo(); ok {
		_spec.SetField(scenariocase.FieldStepNo, field.TypeInt, value)
		_node.StepNo = value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(scenariocase.FieldDatasetID, field.TypeInt64, value)
		_node.DatasetID = &value
	}
	if value, ok := _c.mutation.DatasetRunMode(); ok {
		_spec.SetField(scenariocase.FieldDatasetRunMode, field.TypeEnum, value)
		_node.DatasetRunMode = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(scenariocase.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.StopOnFail(); ok {
		_spec.SetField(scenariocase.FieldStopOnFail, field.TypeBool, value)
		_node.StopOnFail = value
	}
	return _node, _spec
}

// ScenarioCaseCreateBulk is the builder for creating many ScenarioCase entities in bulk.
type ScenarioCaseCreateBulk struct {
	config
	err      error
	builders []*ScenarioCaseCreate
}

// Save creates the ScenarioCase entities in the database.
func (_c *ScenarioCaseCreateBulk) Save(ctx context.Context) ([]*ScenarioCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScenarioCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioCaseMutation)
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
func (_c *ScenarioCaseCreateBulk) SaveX(ctx context.Context) []*ScenarioCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
