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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// DatasetUpdate is the builder for updating Dataset entities.
type DatasetUpdate struct {
	config
	hooks    []Hook
	mutation *DatasetMutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdate) Where(ps ...predicate.Dataset) *DatasetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *DatasetUpdate) SetUpdateTime(v time.Time) *DatasetUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *DatasetUpdate) SetIsDeleted(v int64) *DatasetUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableIsDeleted(v *int64) *DatasetUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *DatasetUpdate) AddIsDeleted(v int64) *DatasetUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DatasetUpdate) SetStatus(v int) *DatasetUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableStatus(v *int) *DatasetUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *DatasetUpdate) AddStatus(v int) *DatasetUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *DatasetUpdate) SetRequestID(v int64) *DatasetUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableRequestID(v *int64) *DatasetUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *DatasetUpdate) AddRequestID(v int64) *DatasetUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DatasetUpdate) SetName(v string) *DatasetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableName(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRemark sets the "remark" field.
func (_u *DatasetUpdate) SetRemark(v string) *DatasetUpdate {
	_u.mutation.SetRemark(v)
	return _u
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableRemark(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetRemark(*v)
	}
	return _u
}

// ClearRemark clears the value of the "remark" field.
func (_u *DatasetUpdate) ClearRemark() *DatasetUpdate {
	_u.mutation.ClearRemark()
	return _u
}

// SetVariables sets the "variables" field.
func (_u *DatasetUpdate) SetVariables(v map[string]interface{}) *DatasetUpdate {
	_u.mutation.SetVariables(v)
	return _u
}

// SetQueryParams sets the "query_params" field.
func (_u *DatasetUpdate) SetQueryParams(v map[string]interface{}) *DatasetUpdate {
	_u.mutation.SetQueryParams(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *DatasetUpdate) SetHeaders(v map[string]interface{}) *DatasetUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// SetCookies sets the "cookies" field.
func (_u *DatasetUpdate) SetCookies(v map[string]interface{}) *DatasetUpdate {
	_u.mutation.SetCookies(v)
	return _u
}

// SetBodyType sets the "body_type" field.
func (_u *DatasetUpdate) SetBodyType(v string) *DatasetUpdate {
	_u.mutation.SetBodyType(v)
	return _u
}

// SetNillableBodyType sets the "body_type" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableBodyType(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetBodyType(*v)
	}
	return _u
}

// ClearBodyType clears the value of the "body_type" field.
func (_u *DatasetUpdate) ClearBodyType() *DatasetUpdate {
	_u.mutation.ClearBodyType()
	return _u
}

// SetBodyData sets the "body_data" field.
func (_u *DatasetUpdate) SetBodyData(v map[string]interface{}) *DatasetUpdate {
	_u.mutation.SetBodyData(v)
	return _u
}

// SetBodyRaw sets the "body_raw" field.
func (_u *DatasetUpdate) SetBodyRaw(v string) *DatasetUpdate {
	_u.mutation.SetBodyRaw(v)
	return _u
}

// SetNillableBodyRaw sets the "body_raw" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableBodyRaw(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetBodyRaw(*v)
	}
	return _u
}

// ClearBodyRaw clears the value of the "body_raw" field.
func (_u *DatasetUpdate) ClearBodyRaw() *DatasetUpdate {
	_u.mutation.ClearBodyRaw()
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *DatasetUpdate) SetIsDefault(v bool) *DatasetUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableIsDefault(v *bool) *DatasetUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *DatasetUpdate) SetIsEnabled(v bool) *DatasetUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableIsEnabled(v *bool) *DatasetUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSort sets the "sort" field.
func (_u *DatasetUpdate) SetSort(v int) *DatasetUpdate {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableSort(v *int) *DatasetUpdate {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *DatasetUpdate) AddSort(v int) *DatasetUpdate {
	_u.mutation.AddSort(v)
	return _u
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdate) Mutation() *DatasetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DatasetUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := dataset.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Remark(); ok {
		if err := dataset.RemarkValidator(v); err != nil {
			return &ValidationError{Name: "remark", err: fmt.Errorf(`ent: validator failed for field "Dataset.remark": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyType(); ok {
		if err := dataset.BodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "body_type", err: fmt.Errorf(`ent: validator failed for field "Dataset.body_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(dataset.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(dataset.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(dataset.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(dataset.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(dataset.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(dataset.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remark(); ok {
		_spec.SetField(dataset.FieldRemark, field.TypeString, value)
	}
	if _u.mutation.RemarkCleared() {
		_spec.ClearField(dataset.FieldRemark, field.TypeString)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(dataset.FieldVariables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QueryParams(); ok {
		_spec.SetField(dataset.FieldQueryParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(dataset.FieldHeaders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Cookies(); ok {
		_spec.SetField(dataset.FieldCookies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BodyType(); ok {
		_spec.SetField(dataset.FieldBodyType, field.TypeString, value)
	}
	if _u.mutation.BodyTypeCleared() {
		_spec.ClearField(dataset.FieldBodyType, field.TypeString)
	}
	if value, ok := _u.mutation.BodyData(); ok {
		_spec.SetField(dataset.FieldBodyData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BodyRaw(); ok {
		_spec.SetField(dataset.FieldBodyRaw, field.TypeString, value)
	}
	if _u.mutation.BodyRawCleared() {
		_spec.ClearField(dataset.FieldBodyRaw, field.TypeString)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(dataset.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(dataset.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(dataset.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(dataset.FieldSort, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasetUpdateOne is the builder for updating a single Dataset entity.
type DatasetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasetMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *DatasetUpdateOne) SetUpdateTime(v time.Time) *DatasetUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *DatasetUpdateOne) SetIsDeleted(v int64) *DatasetUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableIsDeleted(v *int64) *DatasetUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *DatasetUpdateOne) AddIsDeleted(v int64) *DatasetUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DatasetUpdateOne) SetStatus(v int) *DatasetUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableStatus(v *int) *DatasetUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *DatasetUpdateOne) AddStatus(v int) *DatasetUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *DatasetUpdateOne) SetRequestID(v int64) *DatasetUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableRequestID(v *int64) *DatasetUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *DatasetUpdateOne) AddRequestID(v int64) *DatasetUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DatasetUpdateOne) SetName(v string) *DatasetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableName(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRemark sets the "remark" field.
func (_u *DatasetUpdateOne) SetRemark(v string) *DatasetUpdateOne {
	_u.mutation.SetRemark(v)
	return _u
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableRemark(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetRemark(*v)
	}
	return _u
}

// ClearRemark clears the value of the "remark" field.
func (_u *DatasetUpdateOne) ClearRemark() *DatasetUpdateOne {
	_u.mutation.ClearRemark()
	return _u
}

// SetVariables sets the "variables" field.
func (_u *DatasetUpdateOne) SetVariables(v map[string]interface{}) *DatasetUpdateOne {
	_u.mutation.SetVariables(v)
	return _u
}

// SetQueryParams sets the "query_params" field.
func (_u *DatasetUpdateOne) SetQueryParams(v map[string]interface{}) *DatasetUpdateOne {
	_u.mutation.SetQueryParams(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *DatasetUpdateOne) SetHeaders(v map[string]interface{}) *DatasetUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// SetCookies sets the "cookies" field.
func (_u *DatasetUpdateOne) SetCookies(v map[string]interface{}) *DatasetUpdateOne {
	_u.mutation.SetCookies(v)
	return _u
}

// SetBodyType sets the "body_type" field.
func (_u *DatasetUpdateOne) SetBodyType(v string) *DatasetUpdateOne {
	_u.mutation.SetBodyType(v)
	return _u
}

// SetNillableBodyType sets the "body_type" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableBodyType(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetBodyType(*v)
	}
	return _u
}

// ClearBodyType clears the value of the "body_type" field.
func (_u *DatasetUpdateOne) ClearBodyType() *DatasetUpdateOne {
	_u.mutation.ClearBodyType()
	return _u
}

// SetBodyData sets the "body_data" field.
func (_u *DatasetUpdateOne) SetBodyData(v map[string]interface{}) *DatasetUpdateOne {
	_u.mutation.SetBodyData(v)
	return _u
}

// SetBodyRaw sets the "body_raw" field.
func (_u *DatasetUpdateOne) SetBodyRaw(v string) *DatasetUpdateOne {
	_u.mutation.SetBodyRaw(v)
	return _u
}

// SetNillableBodyRaw sets the "body_raw" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableBodyRaw(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetBodyRaw(*v)
	}
	return _u
}

// ClearBodyRaw clears the value of the "body_raw" field.
func (_u *DatasetUpdateOne) ClearBodyRaw() *DatasetUpdateOne {
	_u.mutation.ClearBodyRaw()
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *DatasetUpdateOne) SetIsDefault(v bool) *DatasetUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableIsDefault(v *bool) *DatasetUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *DatasetUpdateOne) SetIsEnabled(v bool) *DatasetUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableIsEnabled(v *bool) *DatasetUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSort sets the "sort" field.
func (_u *DatasetUpdateOne) SetSort(v int) *DatasetUpdateOne {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableSort(v *int) *DatasetUpdateOne {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *DatasetUpdateOne) AddSort(v int) *DatasetUpdateOne {
	_u.mutation.AddSort(v)
	return _u
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdateOne) Mutation() *DatasetMutation {
	return _u.mutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdateOne) Where(ps ...predicate.Dataset) *DatasetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasetUpdateOne) Select(field string, fields ...string) *DatasetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dataset entity.
func (_u *DatasetUpdateOne) Save(ctx context.Context) (*Dataset, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdateOne) SaveX(ctx context.Context) *Dataset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DatasetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := dataset.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Remark(); ok {
		if err := dataset.RemarkValidator(v); err != nil {
			return &ValidationError{Name: "remark", err: fmt.Errorf(`ent: validator failed for field "Dataset.remark": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BodyType(); ok {
		if err := dataset.BodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "body_type", err: fmt.Errorf(`ent: validator failed for field "Dataset.body_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdateOne) sqlSave(ctx context.Context) (_node *Dataset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Dataset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataset.FieldID)
		for _, f := range fields {
			if !dataset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataset.FieldID {
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
		_spec.SetField(dataset.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(dataset.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(dataset.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(dataset.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(dataset.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(dataset.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Remark(); ok {
		_spec.SetField(dataset.FieldRemark, field.TypeString, value)
	}
	if _u.mutation.RemarkCleared() {
		_spec.ClearField(dataset.FieldRemark, field.TypeString)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(dataset.FieldVariables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QueryParams(); ok {
		_spec.SetField(dataset.FieldQueryParams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(dataset.FieldHeaders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Cookies(); ok {
		_spec.SetField(dataset.FieldCookies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BodyType(); ok {
		_spec.SetField(dataset.FieldBodyType, field.TypeString, value)
	}
	if _u.mutation.BodyTypeCleared() {
		_spec.ClearField(dataset.FieldBodyType, field.TypeString)
	}
	if value, ok := _u.mutation.BodyData(); ok {
		_spec.SetField(dataset.FieldBodyData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BodyRaw(); ok {
		_spec.SetField(dataset.FieldBodyRaw, field.TypeString, value)
	}
	if _u.mutation.BodyRawCleared() {
		_spec.ClearField(dataset.FieldBodyRaw, field.TypeString)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(dataset.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(dataset.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(dataset.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(dataset.FieldSort, field.TypeInt, value)
	}
	_node = &Dataset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
