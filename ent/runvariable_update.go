// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
)

// RunVariableUpdate is the builder for updating RunVariable entities.
type RunVariableUpdate struct {
	config
	hooks    []Hook
	mutation *RunVariableMutation
}

// Where appends a list predicates to the RunVariableUpdate builder.
func (_u *RunVariableUpdate) Where(ps ...predicate.RunVariable) *RunVariableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *RunVariableUpdate) SetUpdateTime(v time.Time) *RunVariableUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *RunVariableUpdate) SetIsDeleted(v int64) *RunVariableUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableIsDeleted(v *int64) *RunVariableUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *RunVariableUpdate) AddIsDeleted(v int64) *RunVariableUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunVariableUpdate) SetStatus(v int) *RunVariableUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableStatus(v *int) *RunVariableUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *RunVariableUpdate) AddStatus(v int) *RunVariableUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetScenarioRunID sets the "scenario_run_id" field.
func (_u *RunVariableUpdate) SetScenarioRunID(v int64) *RunVariableUpdate {
	_u.mutation.ResetScenarioRunID()
	_u.mutation.SetScenarioRunID(v)
	return _u
}

// SetNillableScenarioRunID sets the "scenario_run_id" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableScenarioRunID(v *int64) *RunVariableUpdate {
	if v != nil {
		_u.SetScenarioRunID(*v)
	}
	return _u
}

// AddScenarioRunID adds value to the "scenario_run_id" field.
func (_u *RunVariableUpdate) AddScenarioRunID(v int64) *RunVariableUpdate {
	_u.mutation.AddScenarioRunID(v)
	return _u
}

// ClearScenarioRunID clears the value of the "scenario_run_id" field.
func (_u *RunVariableUpdate) ClearScenarioRunID() *RunVariableUpdate {
	_u.mutation.ClearScenarioRunID()
	return _u
}

// SetRequestRunID sets the "request_run_id" field.
func (_u *RunVariableUpdate) SetRequestRunID(v int64) *RunVariableUpdate {
	_u.mutation.ResetRequestRunID()
	_u.mutation.SetRequestRunID(v)
	return _u
}

// SetNillableRequestRunID sets the "request_run_id" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableRequestRunID(v *int64) *RunVariableUpdate {
	if v != nil {
		_u.SetRequestRunID(*v)
	}
	return _u
}

// AddRequestRunID adds value to the "request_run_id" field.
func (_u *RunVariableUpdate) AddRequestRunID(v int64) *RunVariableUpdate {
	_u.mutation.AddRequestRunID(v)
	return _u
}

// SetScenarioCaseID sets the "scenario_case_id" field.
func (_u *RunVariableUpdate) SetScenarioCaseID(v int64) *RunVariableUpdate {
	_u.mutation.ResetScenarioCaseID()
	_u.mutation.SetScenarioCaseID(v)
	return _u
}

// SetNillableScenarioCaseID sets the "scenario_case_id" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableScenarioCaseID(v *int64) *RunVariableUpdate {
	if v != nil {
		_u.SetScenarioCaseID(*v)
	}
	return _u
}

// AddScenarioCaseID adds value to the "scenario_case_id" field.
func (_u *RunVariableUpdate) AddScenarioCaseID(v int64) *RunVariableUpdate {
	_u.mutation.AddScenarioCaseID(v)
	return _u
}

// ClearScenarioCaseID clears the value of the "scenario_case_id" field.
func (_u *RunVariableUpdate) ClearScenarioCaseID() *RunVariableUpdate {
	_u.mutation.ClearScenarioCaseID()
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RunVariableUpdate) SetRequestID(v int64) *RunVariableUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableRequestID(v *int64) *RunVariableUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *RunVariableUpdate) AddRequestID(v int64) *RunVariableUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *RunVariableUpdate) SetDatasetID(v int64) *RunVariableUpdate {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableDatasetID(v *int64) *RunVariableUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *RunVariableUpdate) AddDatasetID(v int64) *RunVariableUpdate {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *RunVariableUpdate) ClearDatasetID() *RunVariableUpdate {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetVarName sets the "var_name" field.
func (_u *RunVariableUpdate) SetVarName(v string) *RunVariableUpdate {
	_u.mutation.SetVarName(v)
	return _u
}

// SetNillableVarName sets the "var_name" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableVarName(v *string) *RunVariableUpdate {
	if v != nil {
		_u.SetVarName(*v)
	}
	return _u
}

// SetVarValue sets the "var_value" field.
func (_u *RunVariableUpdate) SetVarValue(v json.RawMessage) *RunVariableUpdate {
	_u.mutation.SetVarValue(v)
	return _u
}

// AppendVarValue appends value to the "var_value" field.
func (_u *RunVariableUpdate) AppendVarValue(v json.RawMessage) *RunVariableUpdate {
	_u.mutation.AppendVarValue(v)
	return _u
}

// ClearVarValue clears the value of the "var_value" field.
func (_u *RunVariableUpdate) ClearVarValue() *RunVariableUpdate {
	_u.mutation.ClearVarValue()
	return _u
}

// SetValueType sets the "value_type" field.
func (_u *RunVariableUpdate) SetValueType(v string) *RunVariableUpdate {
	_u.mutation.SetValueType(v)
	return _u
}

// SetNillableValueType sets the "value_type" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableValueType(v *string) *RunVariableUpdate {
	if v != nil {
		_u.SetValueType(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *RunVariableUpdate) SetSourceType(v runvariable.SourceType) *RunVariableUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableSourceType(v *runvariable.SourceType) *RunVariableUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceExpr sets the "source_expr" field.
func (_u *RunVariableUpdate) SetSourceExpr(v string) *RunVariableUpdate {
	_u.mutation.SetSourceExpr(v)
	return _u
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableSourceExpr(v *string) *RunVariableUpdate {
	if v != nil {
		_u.SetSourceExpr(*v)
	}
	return _u
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (_u *RunVariableUpdate) ClearSourceExpr() *RunVariableUpdate {
	_u.mutation.ClearSourceExpr()
	return _u
}

// SetScope sets the "scope" field.
func (_u *RunVariableUpdate) SetScope(v runvariable.Scope) *RunVariableUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableScope(v *runvariable.Scope) *RunVariableUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetIsSecret sets the "is_secret" field.
func (_u *RunVariableUpdate) SetIsSecret(v bool) *RunVariableUpdate {
	_u.mutation.SetIsSecret(v)
	return _u
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_u *RunVariableUpdate) SetNillableIsSecret(v *bool) *RunVariableUpdate {
	if v != nil {
		_u.SetIsSecret(*v)
	}
	return _u
}

// Mutation returns the RunVariableMutation object of the builder.
func (_u *RunVariableUpdate) Mutation() *RunVariableMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunVariableUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunVariableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunVariableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunVariableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunVariableUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := runvariable.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunVariableUpdate) check() error {
	if v, ok := _u.mutation.VarName(); ok {
		if err := runvariable.VarNameValidator(v); err != nil {
			return &ValidationError{Name: "var_name", err: fmt.Errorf(`ent: validator failed for field "RunVariable.var_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValueType(); ok {
		if err := runvariable.ValueTypeValidator(v); err != nil {
			return &ValidationError{Name: "value_type", err: fmt.Errorf(`ent: validator failed for field "RunVariable.value_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := runvariable.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "RunVariable.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceExpr(); ok {
		if err := runvariable.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "RunVariable.source_expr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := runvariable.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "RunVariable.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *RunVariableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runvariable.Table, runvariable.Columns, sqlgraph.NewFieldSpec(runvariable.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(runvariable.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(runvariable.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(runvariable.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runvariable.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(runvariable.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenarioRunID(); ok {
		_spec.SetField(runvariable.FieldScenarioRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioRunID(); ok {
		_spec.AddField(runvariable.FieldScenarioRunID, field.TypeInt64, value)
	}
	if _u.mutation.ScenarioRunIDCleared() {
		_spec.ClearField(runvariable.FieldScenarioRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.RequestRunID(); ok {
		_spec.SetField(runvariable.FieldRequestRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestRunID(); ok {
		_spec.AddField(runvariable.FieldRequestRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScenarioCaseID(); ok {
		_spec.SetField(runvariable.FieldScenarioCaseID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioCaseID(); ok {
		_spec.AddField(runvariable.FieldScenarioCaseID, field.TypeInt64, value)
	}
	if _u.mutation.ScenarioCaseIDCleared() {
		_spec.ClearField(runvariable.FieldScenarioCaseID, field.TypeInt64)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(runvariable.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(runvariable.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(runvariable.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(runvariable.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(runvariable.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.VarName(); ok {
		_spec.SetField(runvariable.FieldVarName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VarValue(); ok {
		_spec.SetField(runvariable.FieldVarValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVarValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runvariable.FieldVarValue, value)
		})
	}
	if _u.mutation.VarValueCleared() {
		_spec.ClearField(runvariable.FieldVarValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValueType(); ok {
		_spec.SetField(runvariable.FieldValueType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(runvariable.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceExpr(); ok {
		_spec.SetField(runvariable.FieldSourceExpr, field.TypeString, value)
	}
	if _u.mutation.SourceExprCleared() {
		_spec.ClearField(runvariable.FieldSourceExpr, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(runvariable.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsSecret(); ok {
		_spec.SetField(runvariable.FieldIsSecret, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runvariable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunVariableUpdateOne is the builder for updating a single RunVariable entity.
type RunVariableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunVariableMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *RunVariableUpdateOne) SetUpdateTime(v time.Time) *RunVariableUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *RunVariableUpdateOne) SetIsDeleted(v int64) *RunVariableUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableIsDeleted(v *int64) *RunVariableUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *RunVariableUpdateOne) AddIsDeleted(v int64) *RunVariableUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunVariableUpdateOne) SetStatus(v int) *RunVariableUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableStatus(v *int) *RunVariableUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *RunVariableUpdateOne) AddStatus(v int) *RunVariableUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetScenarioRunID sets the "scenario_run_id" field.
func (_u *RunVariableUpdateOne) SetScenarioRunID(v int64) *RunVariableUpdateOne {
	_u.mutation.ResetScenarioRunID()
	_u.mutation.SetScenarioRunID(v)
	return _u
}

// SetNillableScenarioRunID sets the "scenario_run_id" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableScenarioRunID(v *int64) *RunVariableUpdateOne {
	if v != nil {
		_u.SetScenarioRunID(*v)
	}
	return _u
}

// AddScenarioRunID adds value to the "scenario_run_id" field.
func (_u *RunVariableUpdateOne) AddScenarioRunID(v int64) *RunVariableUpdateOne {
	_u.mutation.AddScenarioRunID(v)
	return _u
}

// ClearScenarioRunID clears the value of the "scenario_run_id" field.
func (_u *RunVariableUpdateOne) ClearScenarioRunID() *RunVariableUpdateOne {
	_u.mutation.ClearScenarioRunID()
	return _u
}

// SetRequestRunID sets the "request_run_id" field.
func (_u *RunVariableUpdateOne) SetRequestRunID(v int64) *RunVariableUpdateOne {
	_u.mutation.ResetRequestRunID()
	_u.mutation.SetRequestRunID(v)
	return _u
}

// SetNillableRequestRunID sets the "request_run_id" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableRequestRunID(v *int64) *RunVariableUpdateOne {
	if v != nil {
		_u.SetRequestRunID(*v)
	}
	return _u
}

// AddRequestRunID adds value to the "request_run_id" field.
func (_u *RunVariableUpdateOne) AddRequestRunID(v int64) *RunVariableUpdateOne {
	_u.mutation.AddRequestRunID(v)
	return _u
}

// SetScenarioCaseID sets the "scenario_case_id" field.
func (_u *RunVariableUpdateOne) SetScenarioCaseID(v int64) *RunVariableUpdateOne {
	_u.mutation.ResetScenarioCaseID()
	_u.mutation.SetScenarioCaseID(v)
	return _u
}

// SetNillableScenarioCaseID sets the "scenario_case_id" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableScenarioCaseID(v *int64) *RunVariableUpdateOne {
	if v != nil {
		_u.SetScenarioCaseID(*v)
	}
	return _u
}

// AddScenarioCaseID adds value to the "scenario_case_id" field.
func (_u *RunVariableUpdateOne) AddScenarioCaseID(v int64) *RunVariableUpdateOne {
	_u.mutation.AddScenarioCaseID(v)
	return _u
}

// ClearScenarioCaseID clears the value of the "scenario_case_id" field.
func (_u *RunVariableUpdateOne) ClearScenarioCaseID() *RunVariableUpdateOne {
	_u.mutation.ClearScenarioCaseID()
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RunVariableUpdateOne) SetRequestID(v int64) *RunVariableUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableRequestID(v *int64) *RunVariableUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *RunVariableUpdateOne) AddRequestID(v int64) *RunVariableUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *RunVariableUpdateOne) SetDatasetID(v int64) *RunVariableUpdateOne {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableDatasetID(v *int64) *RunVariableUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *RunVariableUpdateOne) AddDatasetID(v int64) *RunVariableUpdateOne {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *RunVariableUpdateOne) ClearDatasetID() *RunVariableUpdateOne {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetVarName sets the "var_name" field.
func (_u *RunVariableUpdateOne) SetVarName(v string) *RunVariableUpdateOne {
	_u.mutation.SetVarName(v)
	return _u
}

// SetNillableVarName sets the "var_name" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableVarName(v *string) *RunVariableUpdateOne {
	if v != nil {
		_u.SetVarName(*v)
	}
	return _u
}

// SetVarValue sets the "var_value" field.
func (_u *RunVariableUpdateOne) SetVarValue(v json.RawMessage) *RunVariableUpdateOne {
	_u.mutation.SetVarValue(v)
	return _u
}

// AppendVarValue appends value to the "var_value" field.
func (_u *RunVariableUpdateOne) AppendVarValue(v json.RawMessage) *RunVariableUpdateOne {
	_u.mutation.AppendVarValue(v)
	return _u
}

// ClearVarValue clears the value of the "var_value" field.
func (_u *RunVariableUpdateOne) ClearVarValue() *RunVariableUpdateOne {
	_u.mutation.ClearVarValue()
	return _u
}

// SetValueType sets the "value_type" field.
func (_u *RunVariableUpdateOne) SetValueType(v string) *RunVariableUpdateOne {
	_u.mutation.SetValueType(v)
	return _u
}

// SetNillableValueType sets the "value_type" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableValueType(v *string) *RunVariableUpdateOne {
	if v != nil {
		_u.SetValueType(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *RunVariableUpdateOne) SetSourceType(v runvariable.SourceType) *RunVariableUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableSourceType(v *runvariable.SourceType) *RunVariableUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceExpr sets the "source_expr" field.
func (_u *RunVariableUpdateOne) SetSourceExpr(v string) *RunVariableUpdateOne {
	_u.mutation.SetSourceExpr(v)
	return _u
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableSourceExpr(v *string) *RunVariableUpdateOne {
	if v != nil {
		_u.SetSourceExpr(*v)
	}
	return _u
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (_u *RunVariableUpdateOne) ClearSourceExpr() *RunVariableUpdateOne {
	_u.mutation.ClearSourceExpr()
	return _u
}

// SetScope sets the "scope" field.
func (_u *RunVariableUpdateOne) SetScope(v runvariable.Scope) *RunVariableUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableScope(v *runvariable.Scope) *RunVariableUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetIsSecret sets the "is_secret" field.
func (_u *RunVariableUpdateOne) SetIsSecret(v bool) *RunVariableUpdateOne {
	_u.mutation.SetIsSecret(v)
	return _u
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_u *RunVariableUpdateOne) SetNillableIsSecret(v *bool) *RunVariableUpdateOne {
	if v != nil {
		_u.SetIsSecret(*v)
	}
	return _u
}

// Mutation returns the RunVariableMutation object of the builder.
func (_u *RunVariableUpdateOne) Mutation() *RunVariableMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunVariableUpdate builder.
func (_u *RunVariableUpdateOne) Where(ps ...predicate.RunVariable) *RunVariableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunVariableUpdateOne) Select(field string, fields ...string) *RunVariableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunVariable entity.
func (_u *RunVariableUpdateOne) Save(ctx context.Context) (*RunVariable, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunVariableUpdateOne) SaveX(ctx context.Context) *RunVariable {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunVariableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunVariableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunVariableUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := runvariable.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunVariableUpdateOne) check() error {
	if v, ok := _u.mutation.VarName(); ok {
		if err := runvariable.VarNameValidator(v); err != nil {
			return &ValidationError{Name: "var_name", err: fmt.Errorf(`ent: validator failed for field "RunVariable.var_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValueType(); ok {
		if err := runvariable.ValueTypeValidator(v); err != nil {
			return &ValidationError{Name: "value_type", err: fmt.Errorf(`ent: validator failed for field "RunVariable.value_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := runvariable.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "RunVariable.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceExpr(); ok {
		if err := runvariable.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "RunVariable.source_expr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := runvariable.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "RunVariable.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *RunVariableUpdateOne) sqlSave(ctx context.Context) (_node *RunVariable, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runvariable.Table, runvariable.Columns, sqlgraph.NewFieldSpec(runvariable.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunVariable.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runvariable.FieldID)
		for _, f := range fields {
			if !runvariable.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runvariable.FieldID {
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
		_spec.SetField(runvariable.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(runvariable.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(runvariable.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runvariable.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(runvariable.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenarioRunID(); ok {
		_spec.SetField(runvariable.FieldScenarioRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioRunID(); ok {
		_spec.AddField(runvariable.FieldScenarioRunID, field.TypeInt64, value)
	}
	if _u.mutation.ScenarioRunIDCleared() {
		_spec.ClearField(runvariable.FieldScenarioRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.RequestRunID(); ok {
		_spec.SetField(runvariable.FieldRequestRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestRunID(); ok {
		_spec.AddField(runvariable.FieldRequestRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScenarioCaseID(); ok {
		_spec.SetField(runvariable.FieldScenarioCaseID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioCaseID(); ok {
		_spec.AddField(runvariable.FieldScenarioCaseID, field.TypeInt64, value)
	}
	if _u.mutation.ScenarioCaseIDCleared() {
		_spec.ClearField(runvariable.FieldScenarioCaseID, field.TypeInt64)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(runvariable.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(runvariable.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(runvariable.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(runvariable.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(runvariable.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.VarName(); ok {
		_spec.SetField(runvariable.FieldVarName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VarValue(); ok {
		_spec.SetField(runvariable.FieldVarValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVarValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runvariable.FieldVarValue, value)
		})
	}
	if _u.mutation.VarValueCleared() {
		_spec.ClearField(runvariable.FieldVarValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValueType(); ok {
		_spec.SetField(runvariable.FieldValueType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(runvariable.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceExpr(); ok {
		_spec.SetField(runvariable.FieldSourceExpr, field.TypeString, value)
	}
	if _u.mutation.SourceExprCleared() {
		_spec.ClearField(runvariable.FieldSourceExpr, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(runvariable.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsSecret(); ok {
		_spec.SetField(runvariable.FieldIsSecret, field.TypeBool, value)
	}
	_node = &RunVariable{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runvariable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
