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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
)

// ExtractRuleCreate is the builder for creating a ExtractRule entity.
type ExtractRuleCreate struct {
	config
	mutation *ExtractRuleMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *ExtractRuleCreate) SetCreateTime(v time.Time) *ExtractRuleCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableCreateTime(v *time.Time) *ExtractRuleCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *ExtractRuleCreate) SetUpdateTime(v time.Time) *ExtractRuleCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableUpdateTime(v *time.Time) *ExtractRuleCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *ExtractRuleCreate) SetIsDeleted(v int64) *ExtractRuleCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableIsDeleted(v *int64) *ExtractRuleCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractRuleCreate) SetStatus(v int) *ExtractRuleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableStatus(v *int) *ExtractRuleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *ExtractRuleCreate) SetRequestID(v int64) *ExtractRuleCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *ExtractRuleCreate) SetDatasetID(v int64) *ExtractRuleCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableDatasetID(v *int64) *ExtractRuleCreate {
	if v != nil {
		_c.SetDatasetID(*v)
	}
	return _c
}

// SetVarName sets the "var_name" field.
func (_c *ExtractRuleCreate) SetVarName(v string) *ExtractRuleCreate {
	_c.mutation.SetVarName(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *ExtractRuleCreate) SetSourceType(v extractrule.SourceType) *ExtractRuleCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetSourceExpr sets the "source_expr" field.
func (_c *ExtractRuleCreate) SetSourceExpr(v string) *ExtractRuleCreate {
	_c.mutation.SetSourceExpr(v)
	return _c
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableSourceExpr(v *string) *ExtractRuleCreate {
	if v != nil {
		_c.SetSourceExpr(*v)
	}
	return _c
}

// SetDefaultValue sets the "default_value" field.
func (_c *ExtractRuleCreate) SetDefaultValue(v json.RawMessage) *ExtractRuleCreate {
	_c.mutation.SetDefaultValue(v)
	return _c
}

// SetRequired sets the "required" field.
func (_c *ExtractRuleCreate) SetRequired(v bool) *ExtractRuleCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableRequired(v *bool) *ExtractRuleCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *ExtractRuleCreate) SetScope(v extractrule.Scope) *ExtractRuleCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableScope(v *extractrule.Scope) *ExtractRuleCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetIsSecret sets the "is_secret" field.
func (_c *ExtractRuleCreate) SetIsSecret(v bool) *ExtractRuleCreate {
	_c.mutation.SetIsSecret(v)
	return _c
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableIsSecret(v *bool) *ExtractRuleCreate {
	if v != nil {
		_c.SetIsSecret(*v)
	}
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *ExtractRuleCreate) SetIsEnabled(v bool) *ExtractRuleCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableIsEnabled(v *bool) *ExtractRuleCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetSort sets the "sort" field.
func (_c *ExtractRuleCreate) SetSort(v int) *ExtractRuleCreate {
	_c.mutation.SetSort(v)
	return _c
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_c *ExtractRuleCreate) SetNillableSort(v *int) *ExtractRuleCreate {
	if v != nil {
		_c.SetSort(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractRuleCreate) SetID(v int64) *ExtractRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractRuleMutation object of the builder.
func (_c *ExtractRuleCreate) Mutation() *ExtractRuleMutation {
	return _c.mutation
}

// Save creates the ExtractRule in the database.
func (_c *ExtractRuleCreate) Save(ctx context.Context) (*ExtractRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractRuleCreate) SaveX(ctx context.Context) *ExtractRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractRuleCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := extractrule.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := extractrule.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := extractrule.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := extractrule.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Required(); !ok {
		v := extractrule.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.Scope(); !ok {
		v := extractrule.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.IsSecret(); !ok {
		v := extractrule.DefaultIsSecret
		_c.mutation.SetIsSecret(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := extractrule.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.Sort(); !ok {
		v := extractrule.DefaultSort
		_c.mutation.SetSort(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractRuleCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "ExtractRule.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "ExtractRule.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "ExtractRule.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractRule.status"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ExtractRule.request_id"`)}
	}
	if _, ok := _c.mutation.VarName(); !ok {
		return &ValidationError{Name: "var_name", err: errors.New(`ent: missing required field "ExtractRule.var_name"`)}
	}
	if v, ok := _c.mutation.VarName(); ok {
		if err := extractrule.VarNameValidator(v); err != nil {
			return &ValidationError{Name: "var_name", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.var_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "ExtractRule.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := extractrule.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.source_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SourceExpr(); ok {
		if err := extractrule.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.source_expr": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "ExtractRule.required"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "ExtractRule.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := extractrule.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsSecret(); !ok {
		return &ValidationError{Name: "is_secret", err: errors.New(`ent: missing required field "ExtractRule.is_secret"`)}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "ExtractRule.is_enabled"`)}
	}
	if _, ok := _c.mutation.Sort(); !ok {
		return &ValidationError{Name: "sort", err: errors.New(`ent: missing required field "ExtractRule.sort"`)}
	}
	return nil
}

func (_c *ExtractRuleCreate) sqlSave(ctx context.Context) (*ExtractRule, error) {
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

func (_c *ExtractRuleCreate) createSpec() (*ExtractRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractrule.Table, sqlgraph.NewFieldSpec(extractrule.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(extractrule.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(extractrule.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(extractrule.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractrule.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(extractrule.FieldRequestID, field.TypeInt64, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(extractrule.FieldDatasetID, field.TypeInt64, value)
		_node.DatasetID = &value
	}
	if value, ok := _c.mutation.VarName(); ok {
		_spec.SetField(extractrule.FieldVarName, field.TypeString, value)
		_node.VarName = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(extractrule.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceExpr(); ok {
		_spec.SetField(extractrule.FieldSourceExpr, field.TypeString, value)
		_node.SourceExpr = value
	}
	if value, ok := _c.mutation.DefaultValue(); ok {
		_spec.SetField(extractrule.FieldDefaultValue, field.TypeJSON, value)
		_node.DefaultValue = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(extractrule.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(extractrule.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.IsSecret(); ok {
		_spec.SetField(extractrule.FieldIsSecret, field.TypeBool, value)
		_node.IsSecret = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(extractrule.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.Sort(); ok {
		_spec.SetField(extractrule.FieldSort, field.TypeInt, value)
		_node.Sort = value
	}
	return _node, _spec
}

// ExtractRuleCreateBulk is the builder for creating many ExtractRule entities in bulk.
type ExtractRuleCreateBulk struct {
	config
	err      error
	builders []*ExtractRuleCreate
}

// Save creates the ExtractRule entities in the database.
func (_c *ExtractRuleCreateBulk) Save(ctx context.Context) ([]*ExtractRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractRuleMutation)
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
func (_c *ExtractRuleCreateBulk) SaveX(ctx context.Context) []*ExtractRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
