// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
)

// RequestRunUpdate is the builder for updating RequestRun entities.
type RequestRunUpdate struct {
	config
	hooks    []Hook
	mutation *RequestRunMutation
}

// Where appends a list predicates to the RequestRunUpdate builder.
func (_u *RequestRunUpdate) Where(ps ...predicate.RequestRun) *RequestRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *RequestRunUpdate) SetUpdateTime(v time.Time) *RequestRunUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *RequestRunUpdate) SetIsDeleted(v int64) *RequestRunUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableIsDeleted(v *int64) *RequestRunUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *RequestRunUpdate) AddIsDeleted(v int64) *RequestRunUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestRunUpdate) SetStatus(v int) *RequestRunUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableStatus(v *int) *RequestRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *RequestRunUpdate) AddStatus(v int) *RequestRunUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestRunUpdate) SetRequestID(v int64) *RequestRunUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableRequestID(v *int64) *RequestRunUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *RequestRunUpdate) AddRequestID(v int64) *RequestRunUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetScenarioRunID sets the "scenario_run_id" field.
func (_u *RequestRunUpdate) SetScenarioRunID(v int64) *RequestRunUpdate {
	_u.mutation.ResetScenarioRunID()
	_u.mutation.SetScenarioRunID(v)
	return _u
}

// SetNillableScenarioRunID sets the "scenario_run_id" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableScenarioRunID(v *int64) *RequestRunUpdate {
	if v != nil {
		_u.SetScenarioRunID(*v)
	}
	return _u
}

// AddScenarioRunID adds value to the "scenario_run_id" field.
func (_u *RequestRunUpdate) AddScenarioRunID(v int64) *RequestRunUpdate {
	_u.mutation.AddScenarioRunID(v)
	return _u
}

// ClearScenarioRunID clears the value of the "scenario_run_id" field.
func (_u *RequestRunUpdate) ClearScenarioRunID() *RequestRunUpdate {
	_u.mutation.ClearScenarioRunID()
	return _u
}

// SetScenarioCaseID sets the "scenario_case_id" field.
func (_u *RequestRunUpdate) SetScenarioCaseID(v int64) *RequestRunUpdate {
	_u.mutation.ResetScenarioCaseID()
	_u.mutation.SetScenarioCaseID(v)
	return _u
}

// SetNillableScenarioCaseID sets the "scenario_case_id" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableScenarioCaseID(v *int64) *RequestRunUpdate {
	if v != nil {
		_u.SetScenarioCaseID(*v)
	}
	return _u
}

// AddScenarioCaseID adds value to the "scenario_case_id" field.
func (_u *RequestRunUpdate) AddScenarioCaseID(v int64) *RequestRunUpdate {
	_u.mutation.AddScenarioCaseID(v)
	return _u
}

// ClearScenarioCaseID clears the value of the "scenario_case_id" field.
func (_u *RequestRunUpdate) ClearScenarioCaseID() *RequestRunUpdate {
	_u.mutation.ClearScenarioCaseID()
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *RequestRunUpdate) SetDatasetID(v int64) *RequestRunUpdate {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableDatasetID(v *int64) *RequestRunUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *RequestRunUpdate) AddDatasetID(v int64) *RequestRunUpdate {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *RequestRunUpdate) ClearDatasetID() *RequestRunUpdate {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetDatasetSnapshot sets the "dataset_snapshot" field.
func (_u *RequestRunUpdate) SetDatasetSnapshot(v map[string]interface{}) *RequestRunUpdate {
	_u.mutation.SetDatasetSnapshot(v)
	return _u
}

// ClearDatasetSnapshot clears the value of the "dataset_snapshot" field.
func (_u *RequestRunUpdate) ClearDatasetSnapshot() *RequestRunUpdate {
	_u.mutation.ClearDatasetSnapshot()
	return _u
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_u *RequestRunUpdate) SetRequestSnapshot(v map[string]interface{}) *RequestRunUpdate {
	_u.mutation.SetRequestSnapshot(v)
	return _u
}

// SetIsSuccess sets the "is_success" field.
func (_u *RequestRunUpdate) SetIsSuccess(v bool) *RequestRunUpdate {
	_u.mutation.SetIsSuccess(v)
	return _u
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableIsSuccess(v *bool) *RequestRunUpdate {
	if v != nil {
		_u.SetIsSuccess(*v)
	}
	return _u
}

// SetResponseStatusCode sets the "response_status_code" field.
func (_u *RequestRunUpdate) SetResponseStatusCode(v int) *RequestRunUpdate {
	_u.mutation.ResetResponseStatusCode()
	_u.mutation.SetResponseStatusCode(v)
	return _u
}

// SetNillableResponseStatusCode sets the "response_status_code" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableResponseStatusCode(v *int) *RequestRunUpdate {
	if v != nil {
		_u.SetResponseStatusCode(*v)
	}
	return _u
}

// AddResponseStatusCode adds value to the "response_status_code" field.
func (_u *RequestRunUpdate) AddResponseStatusCode(v int) *RequestRunUpdate {
	_u.mutation.AddResponseStatusCode(v)
	return _u
}

// ClearResponseStatusCode clears the value of the "response_status_code" field.
func (_u *RequestRunUpdate) ClearResponseStatusCode() *RequestRunUpdate {
	_u.mutation.ClearResponseStatusCode()
	return _u
}

// SetResponseHeaders sets the "response_headers" field.
func (_u *RequestRunUpdate) SetResponseHeaders(v map[string][]string) *RequestRunUpdate {
	_u.mutation.SetResponseHeaders(v)
	return _u
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (_u *RequestRunUpdate) ClearResponseHeaders() *RequestRunUpdate {
	_u.mutation.ClearResponseHeaders()
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *RequestRunUpdate) SetResponseBody(v string) *RequestRunUpdate {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableResponseBody(v *string) *RequestRunUpdate {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// ClearResponseBody clears the value of the "response_body" field.
func (_u *RequestRunUpdate) ClearResponseBody() *RequestRunUpdate {
	_u.mutation.ClearResponseBody()
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *RequestRunUpdate) SetResponseTimeMs(v int64) *RequestRunUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableResponseTimeMs(v *int64) *RequestRunUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *RequestRunUpdate) AddResponseTimeMs(v int64) *RequestRunUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestRunUpdate) SetErrorMessage(v string) *RequestRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestRunUpdate) SetNillableErrorMessage(v *string) *RequestRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RequestRunUpdate) ClearErrorMessage() *RequestRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAssertionResults sets the "assertion_results" field.
func (_u *RequestRunUpdate) SetAssertionResults(v []map[string]interface{}) *RequestRunUpdate {
	_u.mutation.SetAssertionResults(v)
	return _u
}

// AppendAssertionResults appends value to the "assertion_results" field.
func (_u *RequestRunUpdate) AppendAssertionResults(v []map[string]interface{}) *RequestRunUpdate {
	_u.mutation.AppendAssertionResults(v)
	return _u
}

// ClearAssertionResults clears the value of the "assertion_results" field.
func (_u *RequestRunUpdate) ClearAssertionResults() *RequestRunUpdate {
	_u.mutation.ClearAssertionResults()
	return _u
}

// Mutation returns the RequestRunMutation object of the builder.
func (_u *RequestRunUpdate) Mutation() *RequestRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := requestrun.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *RequestRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(requestrun.Table, requestrun.Columns, sqlgraph.NewFieldSpec(requestrun.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(requestrun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(requestrun.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(requestrun.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requestrun.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(requestrun.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(requestrun.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(requestrun.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScenarioRunID(); ok {
		_spec.SetField(requestrun.FieldScenarioRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioRunID(); ok {
		_spec.AddField(requestrun.FieldScenarioRunID, field.TypeInt64, value)
	}
	if _u.mutation.ScenarioRunIDCleared() {
		_spec.ClearField(requestrun.FieldScenarioRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ScenarioCaseID(); ok {
		_spec.SetField(requestrun.FieldScenarioCaseID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioCaseID(); ok {
		_spec.AddField(requestrun.FieldScenarioCaseID, field.TypeInt64, value)
	}
	if _u.mutation.ScenarioCaseIDCleared() {
		_spec.ClearField(requestrun.FieldScenarioCaseID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(requestrun.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(requestrun.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(requestrun.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DatasetSnapshot(); ok {
		_spec.SetField(requestrun.FieldDatasetSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.DatasetSnapshotCleared() {
		_spec.ClearField(requestrun.FieldDatasetSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestSnapshot(); ok {
		_spec.SetField(requestrun.FieldRequestSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsSuccess(); ok {
		_spec.SetField(requestrun.FieldIsSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseStatusCode(); ok {
		_spec.SetField(requestrun.FieldResponseStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseStatusCode(); ok {
		_spec.AddField(requestrun.FieldResponseStatusCode, field.TypeInt, value)
	}
	if _u.mutation.ResponseStatusCodeCleared() {
		_spec.ClearField(requestrun.FieldResponseStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ResponseHeaders(); ok {
		_spec.SetField(requestrun.FieldResponseHeaders, field.TypeJSON, value)
	}
	if _u.mutation.ResponseHeadersCleared() {
		_spec.ClearField(requestrun.FieldResponseHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(requestrun.FieldResponseBody, field.TypeString, value)
	}
	if _u.mutation.ResponseBodyCleared() {
		_spec.ClearField(requestrun.FieldResponseBody, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(requestrun.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(requestrun.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(requestrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(requestrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AssertionResults(); ok {
		_spec.SetField(requestrun.FieldAssertionResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssertionResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, requestrun.FieldAssertionResults, value)
		})
	}
	if _u.mutation.AssertionResultsCleared() {
		_spec.ClearField(requestrun.FieldAssertionResults, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestRunUpdateOne is the builder for updating a single RequestRun entity.
type RequestRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestRunMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *RequestRunUpdateOne) SetUpdateTime(v time.Time) *RequestRunUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *RequestRunUpdateOne) SetIsDeleted(v int64) *RequestRunUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableIsDeleted(v *int64) *RequestRunUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *RequestRunUpdateOne) AddIsDeleted(v int64) *RequestRunUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RequestRunUpdateOne) SetStatus(v int) *RequestRunUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableStatus(v *int) *RequestRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *RequestRunUpdateOne) AddStatus(v int) *RequestRunUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestRunUpdateOne) SetRequestID(v int64) *RequestRunUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableRequestID(v *int64) *RequestRunUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *RequestRunUpdateOne) AddRequestID(v int64) *RequestRunUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetScenarioRunID sets the "scenario_run_id" field.
func (_u *RequestRunUpdateOne) SetScenarioRunID(v int64) *RequestRunUpdateOne {
	_u.mutation.ResetScenarioRunID()
	_u.mutation.SetScenarioRunID(v)
	return _u
}

// SetNillableScenarioRunID sets the "scenario_run_id" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableScenarioRunID(v *int64) *RequestRunUpdateOne {
	if v != nil {
		_u.SetScenarioRunID(*v)
	}
	return _u
}

// AddScenarioRunID adds value to the "scenario_run_id" field.
func (_u *RequestRunUpdateOne) AddScenarioRunID(v int64) *RequestRunUpdateOne {
	_u.mutation.AddScenarioRunID(v)
	return _u
}

// ClearScenarioRunID clears the value of the "scenario_run_id" field.
func (_u *RequestRunUpdateOne) ClearScenarioRunID() *RequestRunUpdateOne {
	_u.mutation.ClearScenarioRunID()
	return _u
}

// SetScenarioCaseID sets the "scenario_case_id" field.
func (_u *RequestRunUpdateOne) SetScenarioCaseID(v int64) *RequestRunUpdateOne {
	_u.mutation.ResetScenarioCaseID()
	_u.mutation.SetScenarioCaseID(v)
	return _u
}

// SetNillableScenarioCaseID sets the "scenario_case_id" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableScenarioCaseID(v *int64) *RequestRunUpdateOne {
	if v != nil {
		_u.SetScenarioCaseID(*v)
	}
	return _u
}

// AddScenarioCaseID adds value to the "scenario_case_id" field.
func (_u *RequestRunUpdateOne) AddScenarioCaseID(v int64) *RequestRunUpdateOne {
	_u.mutation.AddScenarioCaseID(v)
	return _u
}

// ClearScenarioCaseID clears the value of the "scenario_case_id" field.
func (_u *RequestRunUpdateOne) ClearScenarioCaseID() *RequestRunUpdateOne {
	_u.mutation.ClearScenarioCaseID()
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *RequestRunUpdateOne) SetDatasetID(v int64) *RequestRunUpdateOne {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableDatasetID(v *int64) *RequestRunUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *RequestRunUpdateOne) AddDatasetID(v int64) *RequestRunUpdateOne {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *RequestRunUpdateOne) ClearDatasetID() *RequestRunUpdateOne {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetDatasetSnapshot sets the "dataset_snapshot" field.
func (_u *RequestRunUpdateOne) SetDatasetSnapshot(v map[string]interface{}) *RequestRunUpdateOne {
	_u.mutation.SetDatasetSnapshot(v)
	return _u
}

// ClearDatasetSnapshot clears the value of the "dataset_snapshot" field.
func (_u *RequestRunUpdateOne) ClearDatasetSnapshot() *RequestRunUpdateOne {
	_u.mutation.ClearDatasetSnapshot()
	return _u
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_u *RequestRunUpdateOne) SetRequestSnapshot(v map[string]interface{}) *RequestRunUpdateOne {
	_u.mutation.SetRequestSnapshot(v)
	return _u
}

// SetIsSuccess sets the "is_success" field.
func (_u *RequestRunUpdateOne) SetIsSuccess(v bool) *RequestRunUpdateOne {
	_u.mutation.SetIsSuccess(v)
	return _u
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableIsSuccess(v *bool) *RequestRunUpdateOne {
	if v != nil {
		_u.SetIsSuccess(*v)
	}
	return _u
}

// SetResponseStatusCode sets the "response_status_code" field.
func (_u *RequestRunUpdateOne) SetResponseStatusCode(v int) *RequestRunUpdateOne {
	_u.mutation.ResetResponseStatusCode()
	_u.mutation.SetResponseStatusCode(v)
	return _u
}

// SetNillableResponseStatusCode sets the "response_status_code" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableResponseStatusCode(v *int) *RequestRunUpdateOne {
	if v != nil {
		_u.SetResponseStatusCode(*v)
	}
	return _u
}

// AddResponseStatusCode adds value to the "response_status_code" field.
func (_u *RequestRunUpdateOne) AddResponseStatusCode(v int) *RequestRunUpdateOne {
	_u.mutation.AddResponseStatusCode(v)
	return _u
}

// ClearResponseStatusCode clears the value of the "response_status_code" field.
func (_u *RequestRunUpdateOne) ClearResponseStatusCode() *RequestRunUpdateOne {
	_u.mutation.ClearResponseStatusCode()
	return _u
}

// SetResponseHeaders sets the "response_headers" field.
func (_u *RequestRunUpdateOne) SetResponseHeaders(v map[string][]string) *RequestRunUpdateOne {
	_u.mutation.SetResponseHeaders(v)
	return _u
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (_u *RequestRunUpdateOne) ClearResponseHeaders() *RequestRunUpdateOne {
	_u.mutation.ClearResponseHeaders()
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *RequestRunUpdateOne) SetResponseBody(v string) *RequestRunUpdateOne {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableResponseBody(v *string) *RequestRunUpdateOne {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// ClearResponseBody clears the value of the "response_body" field.
func (_u *RequestRunUpdateOne) ClearResponseBody() *RequestRunUpdateOne {
	_u.mutation.ClearResponseBody()
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *RequestRunUpdateOne) SetResponseTimeMs(v int64) *RequestRunUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableResponseTimeMs(v *int64) *RequestRunUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *RequestRunUpdateOne) AddResponseTimeMs(v int64) *RequestRunUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestRunUpdateOne) SetErrorMessage(v string) *RequestRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestRunUpdateOne) SetNillableErrorMessage(v *string) *RequestRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RequestRunUpdateOne) ClearErrorMessage() *RequestRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAssertionResults sets the "assertion_results" field.
func (_u *RequestRunUpdateOne) SetAssertionResults(v []map[string]interface{}) *RequestRunUpdateOne {
	_u.mutation.SetAssertionResults(v)
	return _u
}

// AppendAssertionResults appends value to the "assertion_results" field.
func (_u *RequestRunUpdateOne) AppendAssertionResults(v []map[string]interface{}) *RequestRunUpdateOne {
	_u.mutation.AppendAssertionResults(v)
	return _u
}

// ClearAssertionResults clears the value of the "assertion_results" field.
func (_u *RequestRunUpdateOne) ClearAssertionResults() *RequestRunUpdateOne {
	_u.mutation.ClearAssertionResults()
	return _u
}

// Mutation returns the RequestRunMutation object of the builder.
func (_u *RequestRunUpdateOne) Mutation() *RequestRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestRunUpdate builder.
func (_u *RequestRunUpdateOne) Where(ps ...predicate.RequestRun) *RequestRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestRunUpdateOne) Select(field string, fields ...string) *RequestRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestRun entity.
func (_u *RequestRunUpdateOne) Save(ctx context.Context) (*RequestRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestRunUpdateOne) SaveX(ctx context.Context) *RequestRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := requestrun.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *RequestRunUpdateOne) sqlSave(ctx context.Context) (_node *RequestRun, err error) {
	_spec := sqlgraph.NewUpdateSpec(requestrun.Table, requestrun.Columns, sqlgraph.NewFieldSpec(requestrun.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestrun.FieldID)
		for _, f := range fields {
			if !requestrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestrun.FieldID {
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
		_spec.SetField(requestrun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(requestrun.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(requestrun.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(requestrun.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(requestrun.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(requestrun.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(requestrun.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ScenarioRunID(); ok {
		_spec.SetField(requestrun.FieldScenarioRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioRunID(); ok {
		_spec.AddField(requestrun.FieldScenarioRunID, field.TypeInt64, value)
	}
	if _u.mutation.ScenarioRunIDCleared() {
		_spec.ClearField(requestrun.FieldScenarioRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ScenarioCaseID(); ok {
		_spec.SetField(requestrun.FieldScenarioCaseID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScenarioCaseID(); ok {
		_spec.AddField(requestrun.FieldScenarioCaseID, field.TypeInt64, value)
	}
	if _u.mutation.ScenarioCaseIDCleared() {
		_spec.ClearField(requestrun.FieldScenarioCaseID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(requestrun.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(requestrun.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(requestrun.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DatasetSnapshot(); ok {
		_spec.SetField(requestrun.FieldDatasetSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.DatasetSnapshotCleared() {
		_spec.ClearField(requestrun.FieldDatasetSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestSnapshot(); ok {
		_spec.SetField(requestrun.FieldRequestSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsSuccess(); ok {
		_spec.SetField(requestrun.FieldIsSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseStatusCode(); ok {
		_spec.SetField(requestrun.FieldResponseStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseStatusCode(); ok {
		_spec.AddField(requestrun.FieldResponseStatusCode, field.TypeInt, value)
	}
	if _u.mutation.ResponseStatusCodeCleared() {
		_spec.ClearField(requestrun.FieldResponseStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ResponseHeaders(); ok {
		_spec.SetField(requestrun.FieldResponseHeaders, field.TypeJSON, value)
	}
	if _u.mutation.ResponseHeadersCleared() {
		_spec.ClearField(requestrun.FieldResponseHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(requestrun.FieldResponseBody, field.TypeString, value)
	}
	if _u.mutation.ResponseBodyCleared() {
		_spec.ClearField(requestrun.FieldResponseBody, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(requestrun.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(requestrun.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(requestrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(requestrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AssertionResults(); ok {
		_spec.SetField(requestrun.FieldAssertionResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssertionResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, requestrun.FieldAssertionResults, value)
		})
	}
	if _u.mutation.AssertionResultsCleared() {
		_spec.ClearField(requestrun.FieldAssertionResults, field.TypeJSON)
	}
	_node = &RequestRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
