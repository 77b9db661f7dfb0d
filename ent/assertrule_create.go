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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
)

// AssertRuleCreate is the builder for creating a AssertRule entity.
type AssertRuleCreate struct {
	config
	mutation *AssertRuleMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *AssertRuleCreate) SetCreateTime(v time.Time) *AssertRuleCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableCreateTime(v *time.Time) *AssertRuleCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *AssertRuleCreate) SetUpdateTime(v time.Time) *AssertRuleCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableUpdateTime(v *time.Time) *AssertRuleCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *AssertRuleCreate) SetIsDeleted(v int64) *AssertRuleCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableIsDeleted(v *int64) *AssertRuleCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssertRuleCreate) SetStatus(v int) *AssertRuleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableStatus(v *int) *AssertRuleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *AssertRuleCreate) SetRequestID(v int64) *AssertRuleCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *AssertRuleCreate) SetDatasetID(v int64) *AssertRuleCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableDatasetID(v *int64) *AssertRuleCreate {
	if v != nil {
		_c.SetDatasetID(*v)
	}
	return _c
}

// SetAssertType sets the "assert_type" field.
func (_c *AssertRuleCreate) SetAssertType(v assertrule.AssertType) *AssertRuleCreate {
	_c.mutation.SetAssertType(v)
	return _c
}

// SetSourceExpr sets the "source_expr" field.
func (_c *AssertRuleCreate) SetSourceExpr(v string) *AssertRuleCreate {
	_c.mutation.SetSourceExpr(v)
	return _c
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableSourceExpr(v *string) *AssertRuleCreate {
	if v != nil {
		_c.SetSourceExpr(*v)
	}
	return _c
}

// SetComparator sets the "comparator" field.
func (_c *AssertRuleCreate) SetComparator(v assertrule.Comparator) *AssertRuleCreate {
	_c.mutation.SetComparator(v)
	return _c
}

// SetNillableComparator sets the "comparator" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableComparator(v *assertrule.Comparator) *AssertRuleCreate {
	if v != nil {
		_c.SetComparator(*v)
	}
	return _c
}

// SetExpectedValue sets the "expected_value" field.
func (_c *AssertRuleCreate) SetExpectedValue(v json.RawMessage) *AssertRuleCreate {
	_c.mutation.SetExpectedValue(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *AssertRuleCreate) SetMessage(v string) *AssertRuleCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableMessage(v *string) *AssertRuleCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *AssertRuleCreate) SetIsEnabled(v bool) *AssertRuleCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableIsEnabled(v *bool) *AssertRuleCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetSort sets the "sort" field.
func (_c *AssertRuleCreate) SetSort(v int) *AssertRuleCreate {
	_c.mutation.SetSort(v)
	return _c
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_c *AssertRuleCreate) SetNillableSort(v *int) *AssertRuleCreate {
	if v != nil {
		_c.SetSort(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssertRuleCreate) SetID(v int64) *AssertRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AssertRuleMutation object of the builder.
func (_c *AssertRuleCreate) Mutation() *AssertRuleMutation {
	return _c.mutation
}

// Save creates the AssertRule in the database.
func (_c *AssertRuleCreate) Save(ctx context.Context) (*AssertRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssertRuleCreate) SaveX(ctx context.Context) *AssertRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssertRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssertRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssertRuleCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := assertrule.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := assertrule.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := assertrule.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := assertrule.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Comparator(); !ok {
		v := assertrule.DefaultComparator
		_c.mutation.SetComparator(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := assertrule.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.Sort(); !ok {
		v := assertrule.DefaultSort
		_c.mutation.SetSort(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssertRuleCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "AssertRule.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "AssertRule.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "AssertRule.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AssertRule.status"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "AssertRule.request_id"`)}
	}
	if _, ok := _c.mutation.AssertType(); !ok {
		return &ValidationError{Name: "assert_type", err: errors.New(`ent: missing required field "AssertRule.assert_type"`)}
	}
	if v, ok := _c.mutation.AssertType(); ok {
		if err := assertrule.AssertTypeValidator(v); err != nil {
			return &ValidationError{Name: "assert_type", err: fmt.Errorf(`ent: validator failed for field "AssertRule.assert_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SourceExpr(); ok {
		if err := assertrule.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "AssertRule.source_expr": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Comparator(); !ok {
		return &ValidationError{Name: "comparator", err: errors.New(`ent: missing required field "AssertRule.comparator"`)}
	}
	if v, ok := _c.mutation.Comparator(); ok {
		if err := assertrule.ComparatorValidator(v); err != nil {
			return &ValidationError{Name: "comparator", err: fmt.Errorf(`ent: validator failed for field "AssertRule.comparator": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := assertrule.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "AssertRule.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "AssertRule.is_enabled"`)}
	}
	if _, ok := _c.mutation.Sort(); !ok {
		return &ValidationError{Name: "sort", err: errors.New(`ent: missing required field "AssertRule.sort"`)}
	}
	return nil
}

func (_c *AssertRuleCreate) sqlSave(ctx context.Context) (*AssertRule, error) {
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

func (_c *AssertRuleCreate) createSpec() (*AssertRule, *sqlgraph.CreateSpec) {
	var (
		_node = &AssertRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assertrule.Table, sqlgraph.NewFieldSpec(assertrule.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(assertrule.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(assertrule.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(assertrule.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assertrule.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(assertrule.FieldRequestID, field.TypeInt64, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(assertrule.FieldDatasetID, field.TypeInt64, value)
		_node.DatasetID = &value
	}
	if value, ok := _c.mutation.AssertType(); ok {
		_spec.SetField(assertrule.FieldAssertType, field.TypeEnum, value)
		_node.AssertType = value
	}
	if value, ok := _c.mutation.SourceExpr(); ok {
		_spec.SetField(assertrule.FieldSourceExpr, field.TypeString, value)
		_node.SourceExpr = value
	}
	if value, ok := _c.mutation.Comparator(); ok {
		_spec.SetField(assertrule.FieldComparator, field.TypeEnum, value)
		_node.Comparator = value
	}
	if value, ok := _c.mutation.ExpectedValue(); ok {
		_spec.SetField(assertrule.FieldExpectedValue, field.TypeJSON, value)
		_node.ExpectedValue = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(assertrule.FieldMessage, field.TypeString, value)
		_node.Message = &value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(assertrule.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.Sort(); ok {
		_spec.SetField(assertrule.FieldSort, field.TypeInt, value)
		_node.Sort = value
	}
	return _node, _spec
}

// AssertRuleCreateBulk is the builder for creating many AssertRule entities in bulk.
type AssertRuleCreateBulk struct {
	config
	err      error
	builders []*AssertRuleCreate
}

// Save creates the AssertRule entities in the database.
func (_c *AssertRuleCreateBulk) Save(ctx context.Context) ([]*AssertRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssertRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssertRuleMutation)
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
func (_c *AssertRuleCreateBulk) SaveX(ctx context.Context) []*AssertRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssertRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssertRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
