// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenario"
)

// ScenarioCreate is the builder for creating a Scenario entity.
type ScenarioCreate struct {
	config
	mutation *ScenarioMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *ScenarioCreate) SetCreateTime(v time.Time) *ScenarioCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableCreateTime(v *time.Time) *ScenarioCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *ScenarioCreate) SetUpdateTime(v time.Time) *ScenarioCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableUpdateTime(v *time.Time) *ScenarioCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *ScenarioCreate) SetIsDeleted(v int64) *ScenarioCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableIsDeleted(v *int64) *ScenarioCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScenarioCreate) SetStatus(v int) *ScenarioCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableStatus(v *int) *ScenarioCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEnvID sets the "env_id" field.
func (_c *ScenarioCreate) SetEnvID(v int64) *ScenarioCreate {
	_c.mutation.SetEnvID(v)
	return _c
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableEnvID(v *int64) *ScenarioCreate {
	if v != nil {
		_c.SetEnvID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ScenarioCreate) SetName(v string) *ScenarioCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ScenarioCreate) SetDescription(v string) *ScenarioCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableDescription(v *string) *ScenarioCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRunMode sets the "run_mode" field.
func (_c *ScenarioCreate) SetRunMode(v scenario.RunMode) *ScenarioCreate {
	_c.mutation.SetRunMode(v)
	return _c
}

// SetNillableRunMode sets the "run_mode" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableRunMode(v *scenario.RunMode) *ScenarioCreate {
	if v != nil {
		_c.SetRunMode(*v)
	}
	return _c
}

// SetStopOnFail sets the "stop_on_fail" field.
func (_c *ScenarioCreate) SetStopOnFail(v bool) *ScenarioCreate {
	_c.mutation.SetStopOnFail(v)
	return _c
}

// SetNillableStopOnFail sets the "stop_on_fail" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableStopOnFail(v *bool) *ScenarioCreate {
	if v != nil {
		_c.SetStopOnFail(*v)
	}
	return _c
}

// SetSort sets the "sort" field.
func (_c *ScenarioCreate) SetSort(v int) *ScenarioCreate {
	_c.mutation.SetSort(v)
	return _c
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_c *ScenarioCreate) SetNillableSort(v *int) *ScenarioCreate {
	if v != nil {
		_c.SetSort(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScenarioCreate) SetID(v int64) *ScenarioCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScenarioMutation object of the builder.
func (_c *ScenarioCreate) Mutation() *ScenarioMutation {
	return _c.mutation
}

// Save creates the Scenario in the database.
func (_c *ScenarioCreate) Save(ctx context.Context) (*Scenario, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioCreate) SaveX(ctx context.Context) *Scenario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := scenario.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := scenario.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := scenario.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scenario.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RunMode(); !ok {
		v := scenario.DefaultRunMode
		_c.mutation.SetRunMode(v)
	}
	if _, ok := _c.mutation.StopOnFail(); !ok {
		v := scenario.DefaultStopOnFail
		_c.mutation.SetStopOnFail(v)
	}
	if _, ok := _c.mutation.Sort(); !ok {
		v := scenario.DefaultSort
		_c.mutation.SetSort(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Scenario.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Scenario.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Scenario.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Scenario.status"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Scenario.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := scenario.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Scenario.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunMode(); !ok {
		return &ValidationError{Name: "run_mode", err: errors.New(`ent: missing required field "Scenario.run_mode"`)}
	}
	if v, ok := _c.mutation.RunMode(); ok {
		if err := scenario.RunModeValidator(v); err != nil {
			return &ValidationError{Name: "run_mode", err: fmt.Errorf(`ent: validator failed for field "Scenario.run_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StopOnFail(); !ok {
		return &ValidationError{Name: "stop_on_fail", err: errors.New(`ent: missing required field "Scenario.stop_on_fail"`)}
	}
	if _, ok := _c.mutation.Sort(); !ok {
		return &ValidationError{Name: "sort", err: errors.New(`ent: missing required field "Scenario.sort"`)}
	}
	return nil
}

func (_c *ScenarioCreate) sqlSave(ctx context.Context) (*Scenario, error) {
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

func (_c *ScenarioCreate) createSpec() (*Scenario, *sqlgraph.CreateSpec) {
	var (
		_node = &Scenario{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenario.Table, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(scenario.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(scenario.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(scenario.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scenario.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EnvID(); ok {
		_spec.SetField(scenario.FieldEnvID, field.TypeInt64, value)
		_node.EnvID = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scenario.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.RunMode(); ok {
		_spec.SetField(scenario.FieldRunMode, field.TypeEnum, value)
		_node.RunMode = value
	}
	if value, ok := _c.mutation.StopOnFail(); ok {
		_spec.SetField(scenario.FieldStopOnFail, field.TypeBool, value)
		_node.StopOnFail = value
	}
	if value, ok := _c.mutation.Sort(); ok {
		_spec.SetField(scenario.FieldSort, field.TypeInt, value)
		_node.Sort = value
	}
	return _node, _spec
}

// ScenarioCreateBulk is the builder for creating many Scenario entities in bulk.
type ScenarioCreateBulk struct {
	config
	err      error
	builders []*ScenarioCreate
}

// Save creates the Scenario entities in the database.
func (_c *ScenarioCreateBulk) Save(ctx context.Context) ([]*Scenario, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Scenario, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioMutation)
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
func (_c *ScenarioCreateBulk) SaveX(ctx context.Context) []*Scenario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
