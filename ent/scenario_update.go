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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenario"
)

// ScenarioUpdate is the builder for updating Scenario entities.
type ScenarioUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioMutation
}

// Where appends a list predicates to the ScenarioUpdate builder.
func (_u *ScenarioUpdate) Where(ps ...predicate.Scenario) *ScenarioUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ScenarioUpdate) SetUpdateTime(v time.Time) *ScenarioUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ScenarioUpdate) SetIsDeleted(v int64) *ScenarioUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableIsDeleted(v *int64) *ScenarioUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ScenarioUpdate) AddIsDeleted(v int64) *ScenarioUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScenarioUpdate) SetStatus(v int) *ScenarioUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableStatus(v *int) *ScenarioUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ScenarioUpdate) AddStatus(v int) *ScenarioUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetEnvID sets the "env_id" field.
func (_u *ScenarioUpdate) SetEnvID(v int64) *ScenarioUpdate {
	_u.mutation.ResetEnvID()
	_u.mutation.SetEnvID(v)
	return _u
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableEnvID(v *int64) *ScenarioUpdate {
	if v != nil {
		_u.SetEnvID(*v)
	}
	return _u
}

// AddEnvID adds value to the "env_id" field.
func (_u *ScenarioUpdate) AddEnvID(v int64) *ScenarioUpdate {
	_u.mutation.AddEnvID(v)
	return _u
}

// ClearEnvID clears the value of the "env_id" field.
func (_u *ScenarioUpdate) ClearEnvID() *ScenarioUpdate {
	_u.mutation.ClearEnvID()
	return _u
}

// SetName sets the "name" field.
func (_u *ScenarioUpdate) SetName(v string) *ScenarioUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableName(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScenarioUpdate) SetDescription(v string) *ScenarioUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableDescription(v *string) *ScenarioUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScenarioUpdate) ClearDescription() *ScenarioUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRunMode sets the "run_mode" field.
func (_u *ScenarioUpdate) SetRunMode(v scenario.RunMode) *ScenarioUpdate {
	_u.mutation.SetRunMode(v)
	return _u
}

// SetNillableRunMode sets the "run_mode" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableRunMode(v *scenario.RunMode) *ScenarioUpdate {
	if v != nil {
		_u.SetRunMode(*v)
	}
	return _u
}

// SetStopOnFail sets the "stop_on_fail" field.
func (_u *ScenarioUpdate) SetStopOnFail(v bool) *ScenarioUpdate {
	_u.mutation.SetStopOnFail(v)
	return _u
}

// SetNillableStopOnFail sets the "stop_on_fail" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableStopOnFail(v *bool) *ScenarioUpdate {
	if v != nil {
		_u.SetStopOnFail(*v)
	}
	return _u
}

// SetSort sets the "sort" field.
func (_u *ScenarioUpdate) SetSort(v int) *ScenarioUpdate {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *ScenarioUpdate) SetNillableSort(v *int) *ScenarioUpdate {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *ScenarioUpdate) AddSort(v int) *ScenarioUpdate {
	_u.mutation.AddSort(v)
	return _u
}

// Mutation returns the ScenarioMutation object of the builder.
func (_u *ScenarioUpdate) Mutation() *ScenarioMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := scenario.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scenario.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Scenario.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RunMode(); ok {
		if err := scenario.RunModeValidator(v); err != nil {
			return &ValidationError{Name: "run_mode", err: fmt.Errorf(`ent: validator failed for field "Scenario.run_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenario.Table, scenario.Columns, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(scenario.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(scenario.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(scenario.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scenario.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(scenario.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnvID(); ok {
		_spec.SetField(scenario.FieldEnvID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEnvID(); ok {
		_spec.AddField(scenario.FieldEnvID, field.TypeInt64, value)
	}
	if _u.mutation.EnvIDCleared() {
		_spec.ClearField(scenario.FieldEnvID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scenario.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scenario.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RunMode(); ok {
		_spec.SetField(scenario.FieldRunMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StopOnFail(); ok {
		_spec.SetField(scenario.FieldStopOnFail, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(scenario.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(scenario.FieldSort, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioUpdateOne is the builder for updating a single Scenario entity.
type ScenarioUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *ScenarioUpdateOne) SetUpdateTime(v time.Time) *ScenarioUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ScenarioUpdateOne) SetIsDeleted(v int64) *ScenarioUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableIsDeleted(v *int64) *ScenarioUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ScenarioUpdateOne) AddIsDeleted(v int64) *ScenarioUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScenarioUpdateOne) SetStatus(v int) *ScenarioUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableStatus(v *int) *ScenarioUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ScenarioUpdateOne) AddStatus(v int) *ScenarioUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetEnvID sets the "env_id" field.
func (_u *ScenarioUpdateOne) SetEnvID(v int64) *ScenarioUpdateOne {
	_u.mutation.ResetEnvID()
	_u.mutation.SetEnvID(v)
	return _u
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableEnvID(v *int64) *ScenarioUpdateOne {
	if v != nil {
		_u.SetEnvID(*v)
	}
	return _u
}

// AddEnvID adds value to the "env_id" field.
func (_u *ScenarioUpdateOne) AddEnvID(v int64) *ScenarioUpdateOne {
	_u.mutation.AddEnvID(v)
	return _u
}

// ClearEnvID clears the value of the "env_id" field.
func (_u *ScenarioUpdateOne) ClearEnvID() *ScenarioUpdateOne {
	_u.mutation.ClearEnvID()
	return _u
}

// SetName sets the "name" field.
func (_u *ScenarioUpdateOne) SetName(v string) *ScenarioUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableName(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ScenarioUpdateOne) SetDescription(v string) *ScenarioUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableDescription(v *string) *ScenarioUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ScenarioUpdateOne) ClearDescription() *ScenarioUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRunMode sets the "run_mode" field.
func (_u *ScenarioUpdateOne) SetRunMode(v scenario.RunMode) *ScenarioUpdateOne {
	_u.mutation.SetRunMode(v)
	return _u
}

// SetNillableRunMode sets the "run_mode" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableRunMode(v *scenario.RunMode) *ScenarioUpdateOne {
	if v != nil {
		_u.SetRunMode(*v)
	}
	return _u
}

// SetStopOnFail sets the "stop_on_fail" field.
func (_u *ScenarioUpdateOne) SetStopOnFail(v bool) *ScenarioUpdateOne {
	_u.mutation.SetStopOnFail(v)
	return _u
}

// SetNillableStopOnFail sets the "stop_on_fail" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableStopOnFail(v *bool) *ScenarioUpdateOne {
	if v != nil {
		_u.SetStopOnFail(*v)
	}
	return _u
}

// SetSort sets the "sort" field.
func (_u *ScenarioUpdateOne) SetSort(v int) *ScenarioUpdateOne {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *ScenarioUpdateOne) SetNillableSort(v *int) *ScenarioUpdateOne {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *ScenarioUpdateOne) AddSort(v int) *ScenarioUpdateOne {
	_u.mutation.AddSort(v)
	return _u
}

// Mutation returns the ScenarioMutation object of the builder.
func (_u *ScenarioUpdateOne) Mutation() *ScenarioMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScenarioUpdate builder.
func (_u *ScenarioUpdateOne) Where(ps ...predicate.Scenario) *ScenarioUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioUpdateOne) Select(field string, fields ...string) *ScenarioUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Scenario entity.
func (_u *ScenarioUpdateOne) Save(ctx context.Context) (*Scenario, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioUpdateOne) SaveX(ctx context.Context) *Scenario {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := scenario.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scenario.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Scenario.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RunMode(); ok {
		if err := scenario.RunModeValidator(v); err != nil {
			return &ValidationError{Name: "run_mode", err: fmt.Errorf(`ent: validator failed for field "Scenario.run_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioUpdateOne) sqlSave(ctx context.Context) (_node *Scenario, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenario.Table, scenario.Columns, sqlgraph.NewFieldSpec(scenario.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Scenario.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenario.FieldID)
		for _, f := range fields {
			if !scenario.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenario.FieldID {
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
		_spec.SetField(scenario.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(scenario.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(scenario.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scenario.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(scenario.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnvID(); ok {
		_spec.SetField(scenario.FieldEnvID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEnvID(); ok {
		_spec.AddField(scenario.FieldEnvID, field.TypeInt64, value)
	}
	if _u.mutation.EnvIDCleared() {
		_spec.ClearField(scenario.FieldEnvID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scenario.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(scenario.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(scenario.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RunMode(); ok {
		_spec.SetField(scenario.FieldRunMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StopOnFail(); ok {
		_spec.SetField(scenario.FieldStopOnFail, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(scenario.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(scenario.FieldSort, field.TypeInt, value)
	}
	_node = &Scenario{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
