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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ApiRequestUpdate is the builder for updating ApiRequest entities.
type ApiRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ApiRequestMutation
}

// Where appends a list predicates to the ApiRequestUpdate builder.
func (_u *ApiRequestUpdate) Where(ps ...predicate.ApiRequest) *ApiRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ApiRequestUpdate) SetUpdateTime(v time.Time) *ApiRequestUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ApiRequestUpdate) SetIsDeleted(v int64) *ApiRequestUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableIsDeleted(v *int64) *ApiRequestUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ApiRequestUpdate) AddIsDeleted(v int64) *ApiRequestUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApiRequestUpdate) SetStatus(v int) *ApiRequestUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableStatus(v *int) *ApiRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ApiRequestUpdate) AddStatus(v int) *ApiRequestUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetEnvID sets the "env_id" field.
func (_u *ApiRequestUpdate) SetEnvID(v int64) *ApiRequestUpdate {
	_u.mutation.ResetEnvID()
	_u.mutation.SetEnvID(v)
	return _u
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableEnvID(v *int64) *ApiRequestUpdate {
	if v != nil {
		_u.SetEnvID(*v)
	}
	return _u
}

// AddEnvID adds value to the "env_id" field.
func (_u *ApiRequestUpdate) AddEnvID(v int64) *ApiRequestUpdate {
	_u.mutation.AddEnvID(v)
	return _u
}

// ClearEnvID clears the value of the "env_id" field.
func (_u *ApiRequestUpdate) ClearEnvID() *ApiRequestUpdate {
	_u.mutation.ClearEnvID()
	return _u
}

// SetName sets the "name" field.
func (_u *ApiRequestUpdate) SetName(v string) *ApiRequestUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableName(v *string) *ApiRequestUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *ApiRequestUpdate) SetMethod(v string) *ApiRequestUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableMethod(v *string) *ApiRequestUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ApiRequestUpdate) SetURL(v string) *ApiRequestUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableURL(v *string) *ApiRequestUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetRemark sets the "remark" field.
func (_u *ApiRequestUpdate) SetRemark(v string) *ApiRequestUpdate {
	_u.mutation.SetRemark(v)
	return _u
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableRemark(v *string) *ApiRequestUpdate {
	if v != nil {
		_u.SetRemark(*v)
	}
	return _u
}

// ClearRemark clears the value of the "remark" field.
func (_u *ApiRequestUpdate) ClearRemark() *ApiRequestUpdate {
	_u.mutation.ClearRemark()
	return _u
}

// SetBaseQueryParams sets the "base_query_params" field.
func (_u *ApiRequestUpdate) SetBaseQueryParams(v map[string]interface{}) *ApiRequestUpdate {
	_u.mutation.SetBaseQueryParams(v)
	return _u
}

// SetBaseHeaders sets the "base_headers" field.
func (_u *ApiRequestUpdate) SetBaseHeaders(v map[string]interface{}) *ApiRequestUpdate {
	_u.mutation.SetBaseHeaders(v)
	return _u
}

// SetBaseCookies sets the "base_cookies" field.
func (_u *ApiRequestUpdate) SetBaseCookies(v map[string]interface{}) *ApiRequestUpdate {
	_u.mutation.SetBaseCookies(v)
	return _u
}

// SetBodyType sets the "body_type" field.
func (_u *ApiRequestUpdate) SetBodyType(v string) *ApiRequestUpdate {
	_u.mutation.SetBodyType(v)
	return _u
}

// SetNillableBodyType sets the "body_type" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableBodyType(v *string) *ApiRequestUpdate {
	if v != nil {
		_u.SetBodyType(*v)
	}
	return _u
}

// SetBaseBodyData sets the "base_body_data" field.
func (_u *ApiRequestUpdate) SetBaseBodyData(v map[string]interface{}) *ApiRequestUpdate {
	_u.mutation.SetBaseBodyData(v)
	return _u
}

// SetBaseBodyRaw sets the "base_body_raw" field.
func (_u *ApiRequestUpdate) SetBaseBodyRaw(v string) *ApiRequestUpdate {
	_u.mutation.SetBaseBodyRaw(v)
	return _u
}

// SetNillableBaseBodyRaw sets the "base_body_raw" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableBaseBodyRaw(v *string) *ApiRequestUpdate {
	if v != nil {
		_u.SetBaseBodyRaw(*v)
	}
	return _u
}

// ClearBaseBodyRaw clears the value of the "base_body_raw" field.
func (_u *ApiRequestUpdate) ClearBaseBodyRaw() *ApiRequestUpdate {
	_u.mutation.ClearBaseBodyRaw()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *ApiRequestUpdate) SetTimeoutMs(v int) *ApiRequestUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableTimeoutMs(v *int) *ApiRequestUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *ApiRequestUpdate) AddTimeoutMs(v int) *ApiRequestUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetFollowRedirects sets the "follow_redirects" field.
func (_u *ApiRequestUpdate) SetFollowRedirects(v bool) *ApiRequestUpdate {
	_u.mutation.SetFollowRedirects(v)
	return _u
}

// SetNillableFollowRedirects sets the "follow_redirects" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableFollowRedirects(v *bool) *ApiRequestUpdate {
	if v != nil {
		_u.SetFollowRedirects(*v)
	}
	return _u
}

// SetVerifySsl sets the "verify_ssl" field.
func (_u *ApiRequestUpdate) SetVerifySsl(v bool) *ApiRequestUpdate {
	_u.mutation.SetVerifySsl(v)
	return _u
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableVerifySsl(v *bool) *ApiRequestUpdate {
	if v != nil {
		_u.SetVerifySsl(*v)
	}
	return _u
}

// SetProxyURL sets the "proxy_url" field.
func (_u *ApiRequestUpdate) SetProxyURL(v string) *ApiRequestUpdate {
	_u.mutation.SetProxyURL(v)
	return _u
}

// SetNillableProxyURL sets the "proxy_url" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableProxyURL(v *string) *ApiRequestUpdate {
	if v != nil {
		_u.SetProxyURL(*v)
	}
	return _u
}

// ClearProxyURL clears the value of the "proxy_url" field.
func (_u *ApiRequestUpdate) ClearProxyURL() *ApiRequestUpdate {
	_u.mutation.ClearProxyURL()
	return _u
}

// SetSort sets the "sort" field.
func (_u *ApiRequestUpdate) SetSort(v int) *ApiRequestUpdate {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableSort(v *int) *ApiRequestUpdate {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *ApiRequestUpdate) AddSort(v int) *ApiRequestUpdate {
	_u.mutation.AddSort(v)
	return _u
}

// SetExecuteCount sets the "execute_count" field.
func (_u *ApiRequestUpdate) SetExecuteCount(v int) *ApiRequestUpdate {
	_u.mutation.ResetExecuteCount()
	_u.mutation.SetExecuteCount(v)
	return _u
}

// SetNillableExecuteCount sets the "execute_count" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableExecuteCount(v *int) *ApiRequestUpdate {
	if v != nil {
		_u.SetExecuteCount(*v)
	}
	return _u
}

// AddExecuteCount adds value to the "execute_count" field.
func (_u *ApiRequestUpdate) AddExecuteCount(v int) *ApiRequestUpdate {
	_u.mutation.AddExecuteCount(v)
	return _u
}

// SetDatasetRunMode sets the "dataset_run_mode" field.
func (_u *ApiRequestUpdate) SetDatasetRunMode(v apirequest.DatasetRunMode) *ApiRequestUpdate {
	_u.mutation.SetDatasetRunMode(v)
	return _u
}

// SetNillableDatasetRunMode sets the "dataset_run_mode" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableDatasetRunMode(v *apirequest.DatasetRunMode) *ApiRequestUpdate {
	if v != nil {
		_u.SetDatasetRunMode(*v)
	}
	return _u
}

// SetDefaultDatasetID sets the "default_dataset_id" field.
func (_u *ApiRequestUpdate) SetDefaultDatasetID(v int64) *ApiRequestUpdate {
	_u.mutation.ResetDefaultDatasetID()
	_u.mutation.SetDefaultDatasetID(v)
	return _u
}

// SetNillableDefaultDatasetID sets the "default_dataset_id" field if the given value is not nil.
func (_u *ApiRequestUpdate) SetNillableDefaultDatasetID(v *int64) *ApiRequestUpdate {
	if v != nil {
		_u.SetDefaultDatasetID(*v)
	}
	return _u
}

// AddDefaultDatasetID adds value to the "default_dataset_id" field.
func (_u *ApiRequestUpdate) AddDefaultDatasetID(v int64) *ApiRequestUpdate {
	_u.mutation.AddDefaultDatasetID(v)
	return _u
}

// ClearDefaultDatasetID clears the value of the "default_dataset_id" field.
func (_u *ApiRequestUpdate) ClearDefaultDatasetID() *ApiRequestUpdate {
	_u.mutation.ClearDefaultDatasetID()
	return _u
}

// Mutation returns the ApiRequestMutation object of the builder.
func (_u *ApiRequestUpdate) Mutation() *ApiRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApiRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApiRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApiRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := apirequest.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApiRequestUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := apirequest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := apirequest.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := apirequest.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Remark(); ok {
		if err := apirequest.RemarkValidator(v); err != nil {
			return &ValidationError{Name: "remark", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.remark": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyType(); ok {
		if err := apirequest.BodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "body_type", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.body_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProxyURL(); ok {
		if err := apirequest.ProxyURLValidator(v); err != nil {
			return &ValidationError{Name: "proxy_url", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.proxy_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetRunMode(); ok {
		if err := apirequest.DatasetRunModeValidator(v); err != nil {
			return &ValidationError{Name: "dataset_run_mode", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.dataset_run_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ApiRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apirequest.Table, apirequest.Columns, sqlgraph.NewFieldSpec(apirequest.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(apirequest.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(apirequest.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(apirequest.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(apirequest.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(apirequest.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnvID(); ok {
		_spec.SetField(apirequest.FieldEnvID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEnvID(); ok {
		_spec.AddField(apirequest.FieldEnvID, field.TypeInt64, value)
	}
	if _u.mutation.EnvIDCleared() {
		_spec.ClearField(apirequest.FieldEnvID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(apirequest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(apirequest.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(apirequest.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remark(); ok {
		_spec.SetField(apirequest.FieldRemark, field.TypeString, value)
	}
	if _u.mutation.RemarkCleared() {
		_spec.ClearField(apirequest.FieldRemark, field.TypeString)
	}
	if value, ok := _u.mutation.BaseQueryParams(); ok {
		_spec.SetField(apirequest.FieldBaseQueryParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BaseHeaders(); ok {
		_spec.SetField(apirequest.FieldBaseHeaders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BaseCookies(); ok {
		_spec.SetField(apirequest.FieldBaseCookies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BodyType(); ok {
		_spec.SetField(apirequest.FieldBodyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseBodyData(); ok {
		_spec.SetField(apirequest.FieldBaseBodyData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BaseBodyRaw(); ok {
		_spec.SetField(apirequest.FieldBaseBodyRaw, field.TypeString, value)
	}
	if _u.mutation.BaseBodyRawCleared() {
		_spec.ClearField(apirequest.FieldBaseBodyRaw, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(apirequest.FieldTimeoutMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(apirequest.FieldTimeoutMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FollowRedirects(); ok {
		_spec.SetField(apirequest.FieldFollowRedirects, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifySsl(); ok {
		_spec.SetField(apirequest.FieldVerifySsl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProxyURL(); ok {
		_spec.SetField(apirequest.FieldProxyURL, field.TypeString, value)
	}
	if _u.mutation.ProxyURLCleared() {
		_spec.ClearField(apirequest.FieldProxyURL, field.TypeString)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(apirequest.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(apirequest.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecuteCount(); ok {
		_spec.SetField(apirequest.FieldExecuteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecuteCount(); ok {
		_spec.AddField(apirequest.FieldExecuteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DatasetRunMode(); ok {
		_spec.SetField(apirequest.FieldDatasetRunMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DefaultDatasetID(); ok {
		_spec.SetField(apirequest.FieldDefaultDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultDatasetID(); ok {
		_spec.AddField(apirequest.FieldDefaultDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DefaultDatasetIDCleared() {
		_spec.ClearField(apirequest.FieldDefaultDatasetID, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apirequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApiRequestUpdateOne is the builder for updating a single ApiRequest entity.
type ApiRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApiRequestMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *ApiRequestUpdateOne) SetUpdateTime(v time.Time) *ApiRequestUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ApiRequestUpdateOne) SetIsDeleted(v int64) *ApiRequestUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableIsDeleted(v *int64) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ApiRequestUpdateOne) AddIsDeleted(v int64) *ApiRequestUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApiRequestUpdateOne) SetStatus(v int) *ApiRequestUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableStatus(v *int) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ApiRequestUpdateOne) AddStatus(v int) *ApiRequestUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetEnvID sets the "env_id" field.
func (_u *ApiRequestUpdateOne) SetEnvID(v int64) *ApiRequestUpdateOne {
	_u.mutation.ResetEnvID()
	_u.mutation.SetEnvID(v)
	return _u
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableEnvID(v *int64) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetEnvID(*v)
	}
	return _u
}

// AddEnvID adds value to the "env_id" field.
func (_u *ApiRequestUpdateOne) AddEnvID(v int64) *ApiRequestUpdateOne {
	_u.mutation.AddEnvID(v)
	return _u
}

// ClearEnvID clears the value of the "env_id" field.
func (_u *ApiRequestUpdateOne) ClearEnvID() *ApiRequestUpdateOne {
	_u.mutation.ClearEnvID()
	return _u
}

// SetName sets the "name" field.
func (_u *ApiRequestUpdateOne) SetName(v string) *ApiRequestUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableName(v *string) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *ApiRequestUpdateOne) SetMethod(v string) *ApiRequestUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableMethod(v *string) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ApiRequestUpdateOne) SetURL(v string) *ApiRequestUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableURL(v *string) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetRemark sets the "remark" field.
func (_u *ApiRequestUpdateOne) SetRemark(v string) *ApiRequestUpdateOne {
	_u.mutation.SetRemark(v)
	return _u
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableRemark(v *string) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetRemark(*v)
	}
	return _u
}

// ClearRemark clears the value of the "remark" field.
func (_u *ApiRequestUpdateOne) ClearRemark() *ApiRequestUpdateOne {
	_u.mutation.ClearRemark()
	return _u
}

// SetBaseQueryParams sets the "base_query_params" field.
func (_u *ApiRequestUpdateOne) SetBaseQueryParams(v map[string]interface{}) *ApiRequestUpdateOne {
	_u.mutation.SetBaseQueryParams(v)
	return _u
}

// SetBaseHeaders sets the "base_headers" field.
func (_u *ApiRequestUpdateOne) SetBaseHeaders(v map[string]interface{}) *ApiRequestUpdateOne {
	_u.mutation.SetBaseHeaders(v)
	return _u
}

// SetBaseCookies sets the "base_cookies" field.
func (_u *ApiRequestUpdateOne) SetBaseCookies(v map[string]interface{}) *ApiRequestUpdateOne {
	_u.mutation.SetBaseCookies(v)
	return _u
}

// SetBodyType sets the "body_type" field.
func (_u *ApiRequestUpdateOne) SetBodyType(v string) *ApiRequestUpdateOne {
	_u.mutation.SetBodyType(v)
	return _u
}

// SetNillableBodyType sets the "body_type" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableBodyType(v *string) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetBodyType(*v)
	}
	return _u
}

// SetBaseBodyData sets the "base_body_data" field.
func (_u *ApiRequestUpdateOne) SetBaseBodyData(v map[string]interface{}) *ApiRequestUpdateOne {
	_u.mutation.SetBaseBodyData(v)
	return _u
}

// SetBaseBodyRaw sets the "base_body_raw" field.
func (_u *ApiRequestUpdateOne) SetBaseBodyRaw(v string) *ApiRequestUpdateOne {
	_u.mutation.SetBaseBodyRaw(v)
	return _u
}

// SetNillableBaseBodyRaw sets the "base_body_raw" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableBaseBodyRaw(v *string) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetBaseBodyRaw(*v)
	}
	return _u
}

// ClearBaseBodyRaw clears the value of the "base_body_raw" field.
func (_u *ApiRequestUpdateOne) ClearBaseBodyRaw() *ApiRequestUpdateOne {
	_u.mutation.ClearBaseBodyRaw()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *ApiRequestUpdateOne) SetTimeoutMs(v int) *ApiRequestUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableTimeoutMs(v *int) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *ApiRequestUpdateOne) AddTimeoutMs(v int) *ApiRequestUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetFollowRedirects sets the "follow_redirects" field.
func (_u *ApiRequestUpdateOne) SetFollowRedirects(v bool) *ApiRequestUpdateOne {
	_u.mutation.SetFollowRedirects(v)
	return _u
}

// SetNillableFollowRedirects sets the "follow_redirects" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableFollowRedirects(v *bool) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetFollowRedirects(*v)
	}
	return _u
}

// SetVerifySsl sets the "verify_ssl" field.
func (_u *ApiRequestUpdateOne) SetVerifySsl(v bool) *ApiRequestUpdateOne {
	_u.mutation.SetVerifySsl(v)
	return _u
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableVerifySsl(v *bool) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetVerifySsl(*v)
	}
	return _u
}

// SetProxyURL sets the "proxy_url" field.
func (_u *ApiRequestUpdateOne) SetProxyURL(v string) *ApiRequestUpdateOne {
	_u.mutation.SetProxyURL(v)
	return _u
}

// SetNillableProxyURL sets the "proxy_url" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableProxyURL(v *string) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetProxyURL(*v)
	}
	return _u
}

// ClearProxyURL clears the value of the "proxy_url" field.
func (_u *ApiRequestUpdateOne) ClearProxyURL() *ApiRequestUpdateOne {
	_u.mutation.ClearProxyURL()
	return _u
}

// SetSort sets the "sort" field.
func (_u *ApiRequestUpdateOne) SetSort(v int) *ApiRequestUpdateOne {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableSort(v *int) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *ApiRequestUpdateOne) AddSort(v int) *ApiRequestUpdateOne {
	_u.mutation.AddSort(v)
	return _u
}

// SetExecuteCount sets the "execute_count" field.
func (_u *ApiRequestUpdateOne) SetExecuteCount(v int) *ApiRequestUpdateOne {
	_u.mutation.ResetExecuteCount()
	_u.mutation.SetExecuteCount(v)
	return _u
}

// SetNillableExecuteCount sets the "execute_count" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableExecuteCount(v *int) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetExecuteCount(*v)
	}
	return _u
}

// AddExecuteCount adds value to the "execute_count" field.
func (_u *ApiRequestUpdateOne) AddExecuteCount(v int) *ApiRequestUpdateOne {
	_u.mutation.AddExecuteCount(v)
	return _u
}

// SetDatasetRunMode sets the "dataset_run_mode" field.
func (_u *ApiRequestUpdateOne) SetDatasetRunMode(v apirequest.DatasetRunMode) *ApiRequestUpdateOne {
	_u.mutation.SetDatasetRunMode(v)
	return _u
}

// SetNillableDatasetRunMode sets the "dataset_run_mode" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableDatasetRunMode(v *apirequest.DatasetRunMode) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetDatasetRunMode(*v)
	}
	return _u
}

// SetDefaultDatasetID sets the "default_dataset_id" field.
func (_u *ApiRequestUpdateOne) SetDefaultDatasetID(v int64) *ApiRequestUpdateOne {
	_u.mutation.ResetDefaultDatasetID()
	_u.mutation.SetDefaultDatasetID(v)
	return _u
}

// SetNillableDefaultDatasetID sets the "default_dataset_id" field if the given value is not nil.
func (_u *ApiRequestUpdateOne) SetNillableDefaultDatasetID(v *int64) *ApiRequestUpdateOne {
	if v != nil {
		_u.SetDefaultDatasetID(*v)
	}
	return _u
}

// AddDefaultDatasetID adds value to the "default_dataset_id" field.
func (_u *ApiRequestUpdateOne) AddDefaultDatasetID(v int64) *ApiRequestUpdateOne {
	_u.mutation.AddDefaultDatasetID(v)
	return _u
}

// ClearDefaultDatasetID clears the value of the "default_dataset_id" field.
func (_u *ApiRequestUpdateOne) ClearDefaultDatasetID() *ApiRequestUpdateOne {
	_u.mutation.ClearDefaultDatasetID()
	return _u
}

// Mutation returns the ApiRequestMutation object of the builder.
func (_u *ApiRequestUpdateOne) Mutation() *ApiRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApiRequestUpdate builder.
func (_u *ApiRequestUpdateOne) Where(ps ...predicate.ApiRequest) *ApiRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApiRequestUpdateOne) Select(field string, fields ...string) *ApiRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApiRequest entity.
func (_u *ApiRequestUpdateOne) Save(ctx context.Context) (*ApiRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApiRequestUpdateOne) SaveX(ctx context.Context) *ApiRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApiRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApiRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApiRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := apirequest.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApiRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := apirequest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := apirequest.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := apirequest.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Remark(); ok {
		if err := apirequest.RemarkValidator(v); err != nil {
			return &ValidationError{Name: "remark", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.remark": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyType(); ok {
		if err := apirequest.BodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "body_type", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.body_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProxyURL(); ok {
		if err := apirequest.ProxyURLValidator(v); err != nil {
			return &ValidationError{Name: "proxy_url", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.proxy_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetRunMode(); ok {
		if err := apirequest.DatasetRunModeValidator(v); err != nil {
			return &ValidationError{Name: "dataset_run_mode", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.dataset_run_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ApiRequestUpdateOne) sqlSave(ctx context.Context) (_node *ApiRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apirequest.Table, apirequest.Columns, sqlgraph.NewFieldSpec(apirequest.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApiRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apirequest.FieldID)
		for _, f := range fields {
			if !apirequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apirequest.FieldID {
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
		_spec.SetField(apirequest.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(apirequest.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(apirequest.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(apirequest.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(apirequest.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnvID(); ok {
		_spec.SetField(apirequest.FieldEnvID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEnvID(); ok {
		_spec.AddField(apirequest.FieldEnvID, field.TypeInt64, value)
	}
	if _u.mutation.EnvIDCleared() {
		_spec.ClearField(apirequest.FieldEnvID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(apirequest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(apirequest.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(apirequest.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remark(); ok {
		_spec.SetField(apirequest.FieldRemark, field.TypeString, value)
	}
	if _u.mutation.RemarkCleared() {
		_spec.ClearField(apirequest.FieldRemark, field.TypeString)
	}
	if value, ok := _u.mutation.BaseQueryParams(); ok {
		_spec.SetField(apirequest.FieldBaseQueryParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BaseHeaders(); ok {
		_spec.SetField(apirequest.FieldBaseHeaders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BaseCookies(); ok {
		_spec.SetField(apirequest.FieldBaseCookies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BodyType(); ok {
		_spec.SetField(apirequest.FieldBodyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseBodyData(); ok {
		_spec.SetField(apirequest.FieldBaseBodyData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BaseBodyRaw(); ok {
		_spec.SetField(apirequest.FieldBaseBodyRaw, field.TypeString, value)
	}
	if _u.mutation.BaseBodyRawCleared() {
		_spec.ClearField(apirequest.FieldBaseBodyRaw, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(apirequest.FieldTimeoutMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(apirequest.FieldTimeoutMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FollowRedirects(); ok {
		_spec.SetField(apirequest.FieldFollowRedirects, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VerifySsl(); ok {
		_spec.SetField(apirequest.FieldVerifySsl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProxyURL(); ok {
		_spec.SetField(apirequest.FieldProxyURL, field.TypeString, value)
	}
	if _u.mutation.ProxyURLCleared() {
		_spec.ClearField(apirequest.FieldProxyURL, field.TypeString)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(apirequest.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(apirequest.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecuteCount(); ok {
		_spec.SetField(apirequest.FieldExecuteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecuteCount(); ok {
		_spec.AddField(apirequest.FieldExecuteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DatasetRunMode(); ok {
		_spec.SetField(apirequest.FieldDatasetRunMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DefaultDatasetID(); ok {
		_spec.SetField(apirequest.FieldDefaultDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultDatasetID(); ok {
		_spec.AddField(apirequest.FieldDefaultDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DefaultDatasetIDCleared() {
		_spec.ClearField(apirequest.FieldDefaultDatasetID, field.TypeInt64)
	}
	_node = &ApiRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apirequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
