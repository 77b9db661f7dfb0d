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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
)

// ScenarioRunUpdate is the builder for updating ScenarioRun entities.
type ScenarioRunUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioRunMutation
}

// Where appends a list predicates to the ScenarioRunUpdate builder.
func (_u *ScenarioRunUpdate) Where(ps ...predicate.ScenarioRun) *ScenarioRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ScenarioRunUpdate) SetUpdateTime(v time.Time) *ScenarioRunUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ScenarioRunUpdate) SetIsDeleted(v int64) *ScenarioRunUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableIsDeleted(v *int64) *ScenarioRunUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ScenarioRunUpdate) AddIsDeleted(v int64) *ScenarioRunUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScenarioRunUpdate) SetStatus(v int) *ScenarioRunUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableStatus(v *int) *ScenarioRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ScenarioRunUpdate) AddStatus(v int) *ScenarioRunUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ScenarioRunUpdate) SetScenarioID(v int64) *ScenarioRunUpdate {
	_u.mutation.ResetScenarioID()
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableScenarioID(v *int64) *ScenarioRunUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// AddScenarioID adds value to the "scenario_id" field.
func (_u *ScenarioRunUpdate) AddScenarioID(v int64) *ScenarioRunUpdate {
	_u.mutation.AddScenarioID(v)
	return _u
}

// SetEnvID sets the "env_id" field.
func (_u *ScenarioRunUpdate) SetEnvID(v int64) *ScenarioRunUpdate {
	_u.mutation.ResetEnvID()
	_u.mutation.SetEnvID(v)
	return _u
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableEnvID(v *int64) *ScenarioRunUpdate {
	if v != nil {
		_u.SetEnvID(*v)
	}
	return _u
}

// AddEnvID adds value to the "env_id" field.
func (_u *ScenarioRunUpdate) AddEnvID(v int64) *ScenarioRunUpdate {
	_u.mutation.AddEnvID(v)
	return _u
}

// ClearEnvID clears the value of the "env_id" field.
func (_u *ScenarioRunUpdate) ClearEnvID() *ScenarioRunUpdate {
	_u.mutation.ClearEnvID()
	return _u
}

// SetRunStatus sets the "run_status" field.
func (_u *ScenarioRunUpdate) SetRunStatus(v scenariorun.RunStatus) *ScenarioRunUpdate {
	_u.mutation.SetRunStatus(v)
	return _u
}

// SetNillableRunStatus sets the "run_status" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableRunStatus(v *scenariorun.RunStatus) *ScenarioRunUpdate {
	if v != nil {
		_u.SetRunStatus(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *ScenarioRunUpdate) SetTriggerType(v scenariorun.TriggerType) *ScenarioRunUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableTriggerType(v *scenariorun.TriggerType) *ScenarioRunUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *ScenarioRunUpdate) SetCancelRequested(v bool) *ScenarioRunUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableCancelRequested(v *bool) *ScenarioRunUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScenarioRunUpdate) SetStartedAt(v time.Time) *ScenarioRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableStartedAt(v *time.Time) *ScenarioRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ScenarioRunUpdate) ClearStartedAt() *ScenarioRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScenarioRunUpdate) SetFinishedAt(v time.Time) *ScenarioRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableFinishedAt(v *time.Time) *ScenarioRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScenarioRunUpdate) ClearFinishedAt() *ScenarioRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetTotalRequestRuns sets the "total_request_runs" field.
func (_u *ScenarioRunUpdate) SetTotalRequestRuns(v int) *ScenarioRunUpdate {
	_u.mutation.ResetTotalRequestRuns()
	_u.mutation.SetTotalRequestRuns(v)
	return _u
}

// SetNillableTotalRequestRuns sets the "total_request_runs" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableTotalRequestRuns(v *int) *ScenarioRunUpdate {
	if v != nil {
		_u.SetTotalRequestRuns(*v)
	}
	return _u
}

// AddTotalRequestRuns adds value to the "total_request_runs" field.
func (_u *ScenarioRunUpdate) AddTotalRequestRuns(v int) *ScenarioRunUpdate {
	_u.mutation.AddTotalRequestRuns(v)
	return _u
}

// SetSuccessRequestRuns sets the "success_request_runs" field.
func (_u *ScenarioRunUpdate) SetSuccessRequestRuns(v int) *ScenarioRunUpdate {
	_u.mutation.ResetSuccessRequestRuns()
	_u.mutation.SetSuccessRequestRuns(v)
	return _u
}

// SetNillableSuccessRequestRuns sets the "success_request_runs" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableSuccessRequestRuns(v *int) *ScenarioRunUpdate {
	if v != nil {
		_u.SetSuccessRequestRuns(*v)
	}
	return _u
}

// AddSuccessRequestRuns adds value to the "success_request_runs" field.
func (_u *ScenarioRunUpdate) AddSuccessRequestRuns(v int) *ScenarioRunUpdate {
	_u.mutation.AddSuccessRequestRuns(v)
	return _u
}

// SetFailedRequestRuns sets the "failed_request_runs" field.
func (_u *ScenarioRunUpdate) SetFailedRequestRuns(v int) *ScenarioRunUpdate {
	_u.mutation.ResetFailedRequestRuns()
	_u.mutation.SetFailedRequestRuns(v)
	return _u
}

// SetNillableFailedRequestRuns sets the "failed_request_runs" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableFailedRequestRuns(v *int) *ScenarioRunUpdate {
	if v != nil {
		_u.SetFailedRequestRuns(*v)
	}
	return _u
}

// AddFailedRequestRuns adds value to the "failed_request_runs" field.
func (_u *ScenarioRunUpdate) AddFailedRequestRuns(v int) *ScenarioRunUpdate {
	_u.mutation.AddFailedRequestRuns(v)
	return _u
}

// SetIsSuccess sets the "is_success" field.
func (_u *ScenarioRunUpdate) SetIsSuccess(v bool) *ScenarioRunUpdate {
	_u.mutation.SetIsSuccess(v)
	return _u
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableIsSuccess(v *bool) *ScenarioRunUpdate {
	if v != nil {
		_u.SetIsSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScenarioRunUpdate) SetErrorMessage(v string) *ScenarioRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScenarioRunUpdate) SetNillableErrorMessage(v *string) *ScenarioRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScenarioRunUpdate) ClearErrorMessage() *ScenarioRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRuntimeVariables sets the "runtime_variables" field.
func (_u *ScenarioRunUpdate) SetRuntimeVariables(v map[string]interface{}) *ScenarioRunUpdate {
	_u.mutation.SetRuntimeVariables(v)
	return _u
}

// Mutation returns the ScenarioRunMutation object of the builder.
func (_u *ScenarioRunUpdate) Mutation() *ScenarioRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := scenariorun.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioRunUpdate) check() error {
	if v, ok := _u.mutation.RunStatus(); ok {
		if err := scenariorun.RunStatusValidator(v); err != nil {
			return &ValidationError{Name: "run_status", err: fmt.Errorf(`ent: validator failed for field "ScenarioRun.run_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := scenariorun.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "ScenarioRun.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenariorun.Table, scenariorun.Columns, sqlgraph.NewFieldSpec(scenariorun.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(scenariorun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(scenariorun.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(scenariorun.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scenariorun.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(scenariorun.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(scenariorun.FieldScenarioID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioID(); ok {
		_spec.AddField(scenariorun.FieldScenarioID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EnvID(); ok {
		_spec.SetField(scenariorun.FieldEnvID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEnvID(); ok {
		_spec.AddField(scenariorun.FieldEnvID, field.TypeInt64, value)
	}
	if _u.mutation.EnvIDCleared() {
		_spec.ClearField(scenariorun.FieldEnvID, field.TypeInt64)
	}
	if value, ok := _u.mutation.RunStatus(); ok {
		_spec.SetField(scenariorun.FieldRunStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(scenariorun.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(scenariorun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scenariorun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(scenariorun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scenariorun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scenariorun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldTotalRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRequestRuns(); ok {
		_spec.AddField(scenariorun.FieldTotalRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldSuccessRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessRequestRuns(); ok {
		_spec.AddField(scenariorun.FieldSuccessRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldFailedRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRequestRuns(); ok {
		_spec.AddField(scenariorun.FieldFailedRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsSuccess(); ok {
		_spec.SetField(scenariorun.FieldIsSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scenariorun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scenariorun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RuntimeVariables(); ok {
		_spec.SetField(scenariorun.FieldRuntimeVariables, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenariorun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioRunUpdateOne is the builder for updating a single ScenarioRun entity.
type ScenarioRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioRunMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *ScenarioRunUpdateOne) SetUpdateTime(v time.Time) *ScenarioRunUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ScenarioRunUpdateOne) SetIsDeleted(v int64) *ScenarioRunUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableIsDeleted(v *int64) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ScenarioRunUpdateOne) AddIsDeleted(v int64) *ScenarioRunUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScenarioRunUpdateOne) SetStatus(v int) *ScenarioRunUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableStatus(v *int) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ScenarioRunUpdateOne) AddStatus(v int) *ScenarioRunUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *ScenarioRunUpdateOne) SetScenarioID(v int64) *ScenarioRunUpdateOne {
	_u.mutation.ResetScenarioID()
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableScenarioID(v *int64) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// AddScenarioID adds value to the "scenario_id" field.
func (_u *ScenarioRunUpdateOne) AddScenarioID(v int64) *ScenarioRunUpdateOne {
	_u.mutation.AddScenarioID(v)
	return _u
}

// SetEnvID sets the "env_id" field.
func (_u *ScenarioRunUpdateOne) SetEnvID(v int64) *ScenarioRunUpdateOne {
	_u.mutation.ResetEnvID()
	_u.mutation.SetEnvID(v)
	return _u
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableEnvID(v *int64) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetEnvID(*v)
	}
	return _u
}

// AddEnvID adds value to the "env_id" field.
func (_u *ScenarioRunUpdateOne) AddEnvID(v int64) *ScenarioRunUpdateOne {
	_u.mutation.AddEnvID(v)
	return _u
}

// ClearEnvID clears the value of the "env_id" field.
func (_u *ScenarioRunUpdateOne) ClearEnvID() *ScenarioRunUpdateOne {
	_u.mutation.ClearEnvID()
	return _u
}

// SetRunStatus sets the "run_status" field.
func (_u *ScenarioRunUpdateOne) SetRunStatus(v scenariorun.RunStatus) *ScenarioRunUpdateOne {
	_u.mutation.SetRunStatus(v)
	return _u
}

// SetNillableRunStatus sets the "run_status" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableRunStatus(v *scenariorun.RunStatus) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetRunStatus(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *ScenarioRunUpdateOne) SetTriggerType(v scenariorun.TriggerType) *ScenarioRunUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableTriggerType(v *scenariorun.TriggerType) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *ScenarioRunUpdateOne) SetCancelRequested(v bool) *ScenarioRunUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableCancelRequested(v *bool) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScenarioRunUpdateOne) SetStartedAt(v time.Time) *ScenarioRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableStartedAt(v *time.Time) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ScenarioRunUpdateOne) ClearStartedAt() *ScenarioRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScenarioRunUpdateOne) SetFinishedAt(v time.Time) *ScenarioRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableFinishedAt(v *time.Time) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScenarioRunUpdateOne) ClearFinishedAt() *ScenarioRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetTotalRequestRuns sets the "total_request_runs" field.
func (_u *ScenarioRunUpdateOne) SetTotalRequestRuns(v int) *ScenarioRunUpdateOne {
	_u.mutation.ResetTotalRequestRuns()
	_u.mutation.SetTotalRequestRuns(v)
	return _u
}

// SetNillableTotalRequestRuns sets the "total_request_runs" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableTotalRequestRuns(v *int) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetTotalRequestRuns(*v)
	}
	return _u
}

// AddTotalRequestRuns adds value to the "total_request_runs" field.
func (_u *ScenarioRunUpdateOne) AddTotalRequestRuns(v int) *ScenarioRunUpdateOne {
	_u.mutation.AddTotalRequestRuns(v)
	return _u
}

// SetSuccessRequestRuns sets the "success_request_runs" field.
func (_u *ScenarioRunUpdateOne) SetSuccessRequestRuns(v int) *ScenarioRunUpdateOne {
	_u.mutation.ResetSuccessRequestRuns()
	_u.mutation.SetSuccessRequestRuns(v)
	return _u
}

// SetNillableSuccessRequestRuns sets the "success_request_runs" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableSuccessRequestRuns(v *int) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetSuccessRequestRuns(*v)
	}
	return _u
}

// AddSuccessRequestRuns adds value to the "success_request_runs" field.
func (_u *ScenarioRunUpdateOne) AddSuccessRequestRuns(v int) *ScenarioRunUpdateOne {
	_u.mutation.AddSuccessRequestRuns(v)
	return _u
}

// SetFailedRequestRuns sets the "failed_request_runs" field.
func (_u *ScenarioRunUpdateOne) SetFailedRequestRuns(v int) *ScenarioRunUpdateOne {
	_u.mutation.ResetFailedRequestRuns()
	_u.mutation.SetFailedRequestRuns(v)
	return _u
}

// SetNillableFailedRequestRuns sets the "failed_request_runs" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableFailedRequestRuns(v *int) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetFailedRequestRuns(*v)
	}
	return _u
}

// AddFailedRequestRuns adds value to the "failed_request_runs" field.
func (_u *ScenarioRunUpdateOne) AddFailedRequestRuns(v int) *ScenarioRunUpdateOne {
	_u.mutation.AddFailedRequestRuns(v)
	return _u
}

// SetIsSuccess sets the "is_success" field.
func (_u *ScenarioRunUpdateOne) SetIsSuccess(v bool) *ScenarioRunUpdateOne {
	_u.mutation.SetIsSuccess(v)
	return _u
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableIsSuccess(v *bool) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetIsSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScenarioRunUpdateOne) SetErrorMessage(v string) *ScenarioRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScenarioRunUpdateOne) SetNillableErrorMessage(v *string) *ScenarioRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScenarioRunUpdateOne) ClearErrorMessage() *ScenarioRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRuntimeVariables sets the "runtime_variables" field.
func (_u *ScenarioRunUpdateOne) SetRuntimeVariables(v map[string]interface{}) *ScenarioRunUpdateOne {
	_u.mutation.SetRuntimeVariables(v)
	return _u
}

// Mutation returns the ScenarioRunMutation object of the builder.
func (_u *ScenarioRunUpdateOne) Mutation() *ScenarioRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScenarioRunUpdate builder.
func (_u *ScenarioRunUpdateOne) Where(ps ...predicate.ScenarioRun) *ScenarioRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioRunUpdateOne) Select(field string, fields ...string) *ScenarioRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScenarioRun entity.
func (_u *ScenarioRunUpdateOne) Save(ctx context.Context) (*ScenarioRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioRunUpdateOne) SaveX(ctx context.Context) *ScenarioRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScenarioRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := scenariorun.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioRunUpdateOne) check() error {
	if v, ok := _u.mutation.RunStatus(); ok {
		if err := scenariorun.RunStatusValidator(v); err != nil {
			return &ValidationError{Name: "run_status", err: fmt.Errorf(`ent: validator failed for field "ScenarioRun.run_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := scenariorun.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "ScenarioRun.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioRunUpdateOne) sqlSave(ctx context.Context) (_node *ScenarioRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenariorun.Table, scenariorun.Columns, sqlgraph.NewFieldSpec(scenariorun.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScenarioRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenariorun.FieldID)
		for _, f := range fields {
			if !scenariorun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenariorun.FieldID {
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
		_spec.SetField(scenariorun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(scenariorun.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(scenariorun.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scenariorun.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(scenariorun.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(scenariorun.FieldScenarioID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioID(); ok {
		_spec.AddField(scenariorun.FieldScenarioID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EnvID(); ok {
		_spec.SetField(scenariorun.FieldEnvID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEnvID(); ok {
		_spec.AddField(scenariorun.FieldEnvID, field.TypeInt64, value)
	}
	if _u.mutation.EnvIDCleared() {
		_spec.ClearField(scenariorun.FieldEnvID, field.TypeInt64)
	}
	if value, ok := _u.mutation.RunStatus(); ok {
		_spec.SetField(scenariorun.FieldRunStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(scenariorun.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(scenariorun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scenariorun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(scenariorun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scenariorun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scenariorun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldTotalRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRequestRuns(); ok {
		_spec.AddField(scenariorun.FieldTotalRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldSuccessRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessRequestRuns(); ok {
		_spec.AddField(scenariorun.FieldSuccessRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRequestRuns(); ok {
		_spec.SetField(scenariorun.FieldFailedRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRequestRuns(); ok {
		_spec.AddField(scenariorun.FieldFailedRequestRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsSuccess(); ok {
		_spec.SetField(scenariorun.FieldIsSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scenariorun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scenariorun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RuntimeVariables(); ok {
		_spec.SetField(scenariorun.FieldRuntimeVariables, field.TypeJSON, value)
	}
	_node = &ScenarioRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenariorun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
