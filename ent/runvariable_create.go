// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
)

// RunVariableCreate is the builder for creating a RunVariable entity.
type RunVariableCreate struct {
	config
	mutation *RunVariableMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *RunVariableCreate) SetCreateTime(v time.Time) *RunVariableCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableCreateTime(v *time.Time) *RunVariableCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *RunVariableCreate) SetUpdateTime(v time.Time) *RunVariableCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableUpdateTime(v *time.Time) *RunVariableCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *RunVariableCreate) SetIsDeleted(v int64) *RunVariableCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableIsDeleted(v *int64) *RunVariableCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunVariableCreate) SetStatus(v int) *RunVariableCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableStatus(v *int) *RunVariableCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScenarioRunID sets the "scenario_run_id" field.
func (_c *RunVariableCreate) SetScenarioRunID(v int64) *RunVariableCreate {
	_c.mutation.SetScenarioRunID(v)
	return _c
}

// SetNillableScenarioRunID sets the "scenario_run_id" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableScenarioRunID(v *int64) *RunVariableCreate {
	if v != nil {
		_c.SetScenarioRunID(*v)
	}
	return _c
}

// SetRequestRunID sets the "request_run_id" field.
func (_c *RunVariableCreate) SetRequestRunID(v int64) *RunVariableCreate {
	_c.mutation.SetRequestRunID(v)
	return _c
}

// SetScenarioCaseID sets the "scenario_case_id" field.
func (_c *RunVariableCreate) SetScenarioCaseID(v int64) *RunVariableCreate {
	_c.mutation.SetScenarioCaseID(v)
	return _c
}

// SetNillableScenarioCaseID sets the "scenario_case_id" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableScenarioCaseID(v *int64) *RunVariableCreate {
	if v != nil {
		_c.SetScenarioCaseID(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *RunVariableCreate) SetRequestID(v int64) *RunVariableCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *RunVariableCreate) SetDatasetID(v int64) *RunVariableCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableDatasetID(v *int64) *RunVariableCreate {
	if v != nil {
		_c.SetDatasetID(*v)
	}
	return _c
}

// SetVarName sets the "var_name" field.
func (_c *RunVariableCreate) SetVarName(v string) *RunVariableCreate {
	_c.mutation.SetVarName(v)
	return _c
}

// SetVarValue sets the "var_value" field.
func (_c *RunVariableCreate) SetVarValue(v json.RawMessage) *RunVariableCreate {
	_c.mutation.SetVarValue(v)
	return _c
}

// SetValueType sets the "value_type" field.
func (_c *RunVariableCreate) SetValueType(v string) *RunVariableCreate {
	_c.mutation.SetValueType(v)
	return _c
}

// SetNillableValueType sets the "value_type" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableValueType(v *string) *RunVariableCreate {
	if v != nil {
		_c.SetValueType(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *RunVariableCreate) SetSourceType(v runvariable.SourceType) *RunVariableCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetSourceExpr sets the "source_expr" field.
func (_c *RunVariableCreate) SetSourceExpr(v string) *RunVariableCreate {
	_c.mutation.SetSourceExpr(v)
	return _c
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableSourceExpr(v *string) *RunVariableCreate {
	if v != nil {
		_c.SetSourceExpr(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *RunVariableCreate) SetScope(v runvariable.Scope) *RunVariableCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableScope(v *runvariable.Scope) *RunVariableCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetIsSecret sets the "is_secret" field.
func (_c *RunVariableCreate) SetIsSecret(v bool) *RunVariableCreate {
	_c.mutation.SetIsSecret(v)
	return _c
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_c *RunVariableCreate) SetNillableIsSecret(v *bool) *RunVariableCreate {
	if v != nil {
		_c.SetIsSecret(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunVariableCreate) SetID(v int64) *RunVariableCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RunVariableMutation object of the builder.
func (_c *RunVariableCreate) Mutation() *RunVariableMutation {
	return _c.mutation
}

// Save creates the RunVariable in the database.
func (_c *RunVariableCreate) Save(ctx context.Context) (*RunVariable, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunVariableCreate) SaveX(ctx context.Context) *RunVariable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunVariableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunVariableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunVariableCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := runvariable.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := runvariable.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := runvariable.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := runvariable.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ValueType(); !ok {
		v := runvariable.DefaultValueType
		_c.mutation.SetValueType(v)
	}
	if _, ok := _c.mutation.Scope(); !ok {
		v := runvariable.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.IsSecret(); !ok {
		v := runvariable.DefaultIsSecret
		_c.mutation.SetIsSecret(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunVariableCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "RunVariable.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "RunVariable.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "RunVariable.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RunVariable.status"`)}
	}
	if _, ok := _c.mutation.RequestRunID(); !ok {
		return &ValidationError{Name: "request_run_id", err: errors.New(`ent: missing required field "RunVariable.request_run_id"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RunVariable.request_id"`)}
	}
	if _, ok := _c.mutation.VarName(); !ok {
		return &ValidationError{Name: "var_name", err: errors.New(`ent: missing required field "RunVariable.var_name"`)}
	}
	if v, ok := _c.mutation.VarName(); ok {
		if err := runvariable.VarNameValidator(v); err != nil {
			return &ValidationError{Name: "var_name", err: fmt.Errorf(`ent: validator failed for field "RunVariable.var_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValueType(); !ok {
		return &ValidationError{Name: "value_type", err: errors.New(`ent: missing required field "RunVariable.value_type"`)}
	}
	if v, ok := _c.mutation.ValueType(); ok {
		if err := runvariable.ValueTypeValidator(v); err != nil {
			return &ValidationError{Name: "value_type", err: fmt.Errorf(`ent: validator failed for field "RunVariable.value_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "RunVariable.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := runvariable.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "RunVariable.source_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SourceExpr(); ok {
		if err := runvariable.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "RunVariable.source_expr": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "RunVariable.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := runvariable.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "RunVariable.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsSecret(); !ok {
		return &ValidationError{Name: "is_secret", err: errors.New(`ent: missing required field "RunVariable.is_secret"`)}
	}
	return nil
}

func (_c *RunVariableCreate) sqlSave(ctx context.Context) (*RunVariable, error) {
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

func (_c *RunVariableCreate) createSpec() (*RunVariable, *sqlgraph.CreateSpec) {
	var (
		_node = &RunVariable{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runvariable.Table, sqlgraph.NewFieldSpec(runvariable.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(runvariable.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(runvariable.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(runvariable.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(runvariable.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScenarioRunID(); ok {
		_spec.SetField(runvariable.FieldScenarioRunID, field.TypeInt64, value)
		_node.ScenarioRunID = &value
	}
	if value, ok := _c.mutation.RequestRunID(); ok {
		_spec.SetField(runvariable.FieldRequestRunID, field.TypeInt64, value)
		_node.RequestRunID = value
	}
	if value, ok := _c.mutation.ScenarioCaseID(); ok {
		_spec.SetField(runvariable.FieldScenarioCaseID, field.TypeInt64, value)
		_node.ScenarioCaseID = &value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(runvariable.FieldRequestID, field.TypeInt64, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(runvariable.FieldDatasetID, field.TypeInt64, value)
		_node.DatasetID = &value
	}
	if value, ok := _c.mutation.VarName(); ok {
		_spec.SetField(runvariable.FieldVarName, field.TypeString, value)
		_node.VarName = value
	}
	if value, ok := _c.mutation.VarValue(); ok {
		_spec.SetField(runvariable.FieldVarValue, field.TypeJSON, value)
		_node.VarValue = value
	}
	if value, ok := _c.mutation.ValueType(); ok {
		_spec.SetField(runvariable.FieldValueType, field.TypeString, value)
		_node.ValueType = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(runvariable.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceExpr(); ok {
		_spec.SetField(runvariable.FieldSourceExpr, field.TypeString, value)
		_node.SourceExpr = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(runvariable.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.IsSecret(); ok {
		_spec.SetField(runvariable.FieldIsSecret, field.TypeBool, value)
		_node.IsSecret = value
	}
	return _node, _spec
}

// RunVariableCreateBulk is the builder for creating many RunVariable entities in bulk.
type RunVariableCreateBulk struct {
	config
	err      error
	builders []*RunVariableCreate
}

// Save creates the RunVariable entities in the database.
func (_c *RunVariableCreateBulk) Save(ctx context.Context) ([]*RunVariable, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunVariable, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunVariableMutation)
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
func (_c *RunVariableCreateBulk) SaveX(ctx context.Context) []*RunVariable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunVariableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunVariableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
