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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
)

// ScenarioCaseUpdate is the builder for updating ScenarioCase entities.
type ScenarioCaseUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioCaseMutation
}

// Where appends a list predicates to the ScenarioCaseUpdate builder.
func (_u *ScenarioCaseUpdate) Where(ps ...predicate.ScenarioCase) *ScenarioCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ScenarioCaseUpdate) SetUpdateTime(v time.Time) *ScenarioCaseUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ScenarioCaseUpdate) SetIsDeleted(v int64) *ScenarioCaseUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableIsDeleted(v *int64) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ScenarioCaseUpdate) AddIsDeleted(v int64) *ScenarioCaseUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScenarioCaseUpdate) SetStatus(v int) *ScenarioCaseUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableStatus(v *int) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ScenarioCaseUpdate) AddStatus(v int) *ScenarioCaseUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ScenarioCaseUpdate) SetScenarioID(v int64) *ScenarioCaseUpdate {
	_u.mutation.ResetScenarioID()
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableScenarioID(v *int64) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// AddScenarioID adds value to the "scenario_id" field.
func (_u *ScenarioCaseUpdate) AddScenarioID(v int64) *ScenarioCaseUpdate {
	_u.mutation.AddScenarioID(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ScenarioCaseUpdate) SetRequestID(v int64) *ScenarioCaseUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableRequestID(v *int64) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *ScenarioCaseUpdate) AddRequestID(v int64) *ScenarioCaseUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetStepNo sets the "step_no" field.
func (_u *ScenarioCaseUpdate) SetStepNo(v int) *ScenarioCaseUpdate {
	_u.mutation.ResetStepNo()
	_u.mutation.SetStepNo(v)
	return _u
}

// SetNillableStepNo sets the "step_no" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableStepNo(v *int) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetStepNo(*v)
	}
	return _u
}

// AddStepNo adds value to the "step_no" field.
func (_u *ScenarioCaseUpdate) AddStepNo(v int) *ScenarioCaseUpdate {
	_u.mutation.AddStepNo(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *ScenarioCaseUpdate) SetDatasetID(v int64) *ScenarioCaseUpdate {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableDatasetID(v *int64) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *ScenarioCaseUpdate) AddDatasetID(v int64) *ScenarioCaseUpdate {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *ScenarioCaseUpdate) ClearDatasetID() *ScenarioCaseUpdate {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetDatasetRunMode sets the "dataset_run_mode" field.
func (_u *ScenarioCaseUpdate) SetDatasetRunMode(v scenariocase.DatasetRunMode) *ScenarioCaseUpdate {
	_u.mutation.SetDatasetRunMode(v)
	return _u
}

// SetNillableDatasetRunMode sets the "dataset_run_mode" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableDatasetRunMode(v *scenariocase.DatasetRunMode) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetDatasetRunMode(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *ScenarioCaseUpdate) SetIsEnabled(v bool) *ScenarioCaseUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableIsEnabled(v *bool) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetStopOnFail sets the "stop_on_fail" field.
func (_u *ScenarioCaseUpdate) SetStopOnFail(v bool) *ScenarioCaseUpdate {
	_u.mutation.SetStopOnFail(v)
	return _u
}

// SetNillableStopOnFail sets the "stop_on_fail" field if the given value is not nil.
func (_u *ScenarioCaseUpdate) SetNillableStopOnFail(v *bool) *ScenarioCaseUpdate {
	if v != nil {
		_u.SetStopOnFail(*v)
	}
	return _u
}

// Mutation returns the ScenarioCaseMutation object of the builder.
func (_u *ScenarioCaseUpdate) Mutation() *ScenarioCaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioCaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioCaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := scenariocase.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioCaseUpdate) check() error {
	if v, ok := _u.mutation.DatasetRunMode(); ok {
		if err := scenariocase.DatasetRunModeValidator(v); err != nil {
			return &ValidationError{Name: "dataset_run_mode", err: fmt.Errorf(`ent: validator failed for field "ScenarioCase.dataset_run_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenariocase.Table, scenariocase.Columns, sqlgraph.NewFieldSpec(scenariocase.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(scenariocase.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(scenariocase.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(scenariocase.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scenariocase.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(scenariocase.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(scenariocase.FieldScenarioID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioID(); ok {
		_spec.AddField(scenariocase.FieldScenarioID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(scenariocase.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(scenariocase.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StepNo(); ok {
		_spec.SetField(scenariocase.FieldStepNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNo(); ok {
		_spec.AddField(scenariocase.FieldStepNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(scenariocase.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(scenariocase.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(scenariocase.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DatasetRunMode(); ok {
		_spec.SetField(scenariocase.FieldDatasetRunMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(scenariocase.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StopOnFail(); ok {
		_spec.SetField(scenariocase.FieldStopOnFail, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenariocase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioCaseUpdateOne is the builder for updating a single ScenarioCase entity.
type ScenarioCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioCaseMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *ScenarioCaseUpdateOne) SetUpdateTime(v time.Time) *ScenarioCaseUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ScenarioCaseUpdateOne) SetIsDeleted(v int64) *ScenarioCaseUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableIsDeleted(v *int64) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ScenarioCaseUpdateOne) AddIsDeleted(v int64) *ScenarioCaseUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScenarioCaseUpdateOne) SetStatus(v int) *ScenarioCaseUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableStatus(v *int) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ScenarioCaseUpdateOne) AddStatus(v int) *ScenarioCaseUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ScenarioCaseUpdateOne) SetScenarioID(v int64) *ScenarioCaseUpdateOne {
	_u.mutation.ResetScenarioID()
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableScenarioID(v *int64) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// AddScenarioID adds value to the "scenario_id" field.
func (_u *ScenarioCaseUpdateOne) AddScenarioID(v int64) *ScenarioCaseUpdateOne {
	_u.mutation.AddScenarioID(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ScenarioCaseUpdateOne) SetRequestID(v int64) *ScenarioCaseUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableRequestID(v *int64) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *ScenarioCaseUpdateOne) AddRequestID(v int64) *ScenarioCaseUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetStepNo sets the "step_no" field.
func (_u *ScenarioCaseUpdateOne) SetStepNo(v int) *ScenarioCaseUpdateOne {
	_u.mutation.ResetStepNo()
	_u.mutation.SetStepNo(v)
	return _u
}

// SetNillableStepNo sets the "step_no" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableStepNo(v *int) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetStepNo(*v)
	}
	return _u
}

// AddStepNo adds value to the "step_no" field.
func (_u *ScenarioCaseUpdateOne) AddStepNo(v int) *ScenarioCaseUpdateOne {
	_u.mutation.AddStepNo(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *ScenarioCaseUpdateOne) SetDatasetID(v int64) *ScenarioCaseUpdateOne {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableDatasetID(v *int64) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *ScenarioCaseUpdateOne) AddDatasetID(v int64) *ScenarioCaseUpdateOne {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *ScenarioCaseUpdateOne) ClearDatasetID() *ScenarioCaseUpdateOne {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetDatasetRunMode sets the "dataset_run_mode" field.
func (_u *ScenarioCaseUpdateOne) SetDatasetRunMode(v scenariocase.DatasetRunMode) *ScenarioCaseUpdateOne {
	_u.mutation.SetDatasetRunMode(v)
	return _u
}

// SetNillableDatasetRunMode sets the "dataset_run_mode" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableDatasetRunMode(v *scenariocase.DatasetRunMode) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetDatasetRunMode(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *ScenarioCaseUpdateOne) SetIsEnabled(v bool) *ScenarioCaseUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableIsEnabled(v *bool) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetStopOnFail sets the "stop_on_fail" field.
func (_u *ScenarioCaseUpdateOne) SetStopOnFail(v bool) *ScenarioCaseUpdateOne {
	_u.mutation.SetStopOnFail(v)
	return _u
}

// SetNillableStopOnFail sets the "stop_on_fail" field if the given value is not nil.
func (_u *ScenarioCaseUpdateOne) SetNillableStopOnFail(v *bool) *ScenarioCaseUpdateOne {
	if v != nil {
		_u.SetStopOnFail(*v)
	}
	return _u
}

// Mutation returns the ScenarioCaseMutation object of the builder.
func (_u *ScenarioCaseUpdateOne) Mutation() *ScenarioCaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScenarioCaseUpdate builder.
func (_u *ScenarioCaseUpdateOne) Where(ps ...predicate.ScenarioCase) *ScenarioCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioCaseUpdateOne) Select(field string, fields ...string) *ScenarioCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScenarioCase entity.
func (_u *ScenarioCaseUpdateOne) Save(ctx context.Context) (*ScenarioCase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioCaseUpdateOne) SaveX(ctx context.Context) *ScenarioCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioCaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := scenariocase.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioCaseUpdateOne) check() error {
	if v, ok := _u.mutation.DatasetRunMode(); ok {
		if err := scenariocase.DatasetRunModeValidator(v); err != nil {
			return &ValidationError{Name: "dataset_run_mode", err: fmt.Errorf(`ent: validator failed for field "ScenarioCase.dataset_run_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioCaseUpdateOne) sqlSave(ctx context.Context) (_node *ScenarioCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenariocase.Table, scenariocase.Columns, sqlgraph.NewFieldSpec(scenariocase.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScenarioCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenariocase.FieldID)
		for _, f := range fields {
			if !scenariocase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenariocase.FieldID {
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
		_spec.SetField(scenariocase.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(scenariocase.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(scenariocase.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scenariocase.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(scenariocase.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(scenariocase.FieldScenarioID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioID(); ok {
		_spec.AddField(scenariocase.FieldScenarioID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(scenariocase.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(scenariocase.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StepNo(); ok {
		_spec.SetField(scenariocase.FieldStepNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepNo(); ok {
		_spec.AddField(scenariocase.FieldStepNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(scenariocase.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(scenariocase.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(scenariocase.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DatasetRunMode(); ok {
		_spec.SetField(scenariocase.FieldDatasetRunMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(scenariocase.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StopOnFail(); ok {
		_spec.SetField(scenariocase.FieldStopOnFail, field.TypeBool, value)
	}
	_node = &ScenarioCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenariocase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
