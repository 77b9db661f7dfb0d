// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/environment"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// EnvironmentUpdate is the builder for updating Environment entities.
type EnvironmentUpdate struct {
	config
	hooks    []Hook
	mutation *EnvironmentMutation
}

// Where appends a list predicates to the EnvironmentUpdate builder.
func (_u *EnvironmentUpdate) Where(ps ...predicate.Environment) *EnvironmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *EnvironmentUpdate) SetUpdateTime(v time.Time) *EnvironmentUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *EnvironmentUpdate) SetIsDeleted(v int64) *EnvironmentUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *EnvironmentUpdate) SetNillableIsDeleted(v *int64) *EnvironmentUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *EnvironmentUpdate) AddIsDeleted(v int64) *EnvironmentUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnvironmentUpdate) SetStatus(v int) *EnvironmentUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnvironmentUpdate) SetNillableStatus(v *int) *EnvironmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *EnvironmentUpdate) AddStatus(v int) *EnvironmentUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetName sets the "name" field.
func (_u *EnvironmentUpdate) SetName(v string) *EnvironmentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnvironmentUpdate) SetNillableName(v *string) *EnvironmentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariables sets the "variables" field.
func (_u *EnvironmentUpdate) SetVariables(v map[string]interface{}) *EnvironmentUpdate {
	_u.mutation.SetVariables(v)
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *EnvironmentUpdate) SetIsDefault(v bool) *EnvironmentUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *EnvironmentUpdate) SetNillableIsDefault(v *bool) *EnvironmentUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the EnvironmentMutation object of the builder.
func (_u *EnvironmentUpdate) Mutation() *EnvironmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnvironmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvironmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnvironmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvironmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnvironmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := environment.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvironmentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := environment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Environment.name": %w`, err)}
		}
	}
	return nil
}

func (_u *EnvironmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(environment.Table, environment.Columns, sqlgraph.NewFieldSpec(environment.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(environment.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(environment.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(environment.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(environment.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(environment.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(environment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(environment.FieldVariables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(environment.FieldIsDefault, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{environment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnvironmentUpdateOne is the builder for updating a single Environment entity.
type EnvironmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnvironmentMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *EnvironmentUpdateOne) SetUpdateTime(v time.Time) *EnvironmentUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *EnvironmentUpdateOne) SetIsDeleted(v int64) *EnvironmentUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *EnvironmentUpdateOne) SetNillableIsDeleted(v *int64) *EnvironmentUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *EnvironmentUpdateOne) AddIsDeleted(v int64) *EnvironmentUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnvironmentUpdateOne) SetStatus(v int) *EnvironmentUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnvironmentUpdateOne) SetNillableStatus(v *int) *EnvironmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *EnvironmentUpdateOne) AddStatus(v int) *EnvironmentUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetName sets the "name" field.
func (_u *EnvironmentUpdateOne) SetName(v string) *EnvironmentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnvironmentUpdateOne) SetNillableName(v *string) *EnvironmentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariables sets the "variables" field.
func (_u *EnvironmentUpdateOne) SetVariables(v map[string]interface{}) *EnvironmentUpdateOne {
	_u.mutation.SetVariables(v)
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *EnvironmentUpdateOne) SetIsDefault(v bool) *EnvironmentUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *EnvironmentUpdateOne) SetNillableIsDefault(v *bool) *EnvironmentUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the EnvironmentMutation object of the builder.
func (_u *EnvironmentUpdateOne) Mutation() *EnvironmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnvironmentUpdate builder.
func (_u *EnvironmentUpdateOne) Where(ps ...predicate.Environment) *EnvironmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnvironmentUpdateOne) Select(field string, fields ...string) *EnvironmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Environment entity.
func (_u *EnvironmentUpdateOne) Save(ctx context.Context) (*Environment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnvironmentUpdateOne) SaveX(ctx context.Context) *Environment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnvironmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnvironmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnvironmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := environment.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnvironmentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := environment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Environment.name": %w`, err)}
		}
	}
	return nil
}

func (_u *EnvironmentUpdateOne) sqlSave(ctx context.Context) (_node *Environment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(environment.Table, environment.Columns, sqlgraph.NewFieldSpec(environment.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Environment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, environment.FieldID)
		for _, f := range fields {
			if !environment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != environment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(environment.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(environment.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(environment.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(environment.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(environment.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(environment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(environment.FieldVariables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(environment.FieldIsDefault, field.TypeBool, value)
	}
	_node = &Environment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{environment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
