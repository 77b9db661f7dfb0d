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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ExtractRuleUpdate is the builder for updating ExtractRule entities.
type ExtractRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractRuleMutation
}

// Where appends a list predicates to the ExtractRuleUpdate builder.
func (_u *ExtractRuleUpdate) Where(ps ...predicate.ExtractRule) *ExtractRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *ExtractRuleUpdate) SetUpdateTime(v time.Time) *ExtractRuleUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ExtractRuleUpdate) SetIsDeleted(v int64) *ExtractRuleUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableIsDeleted(v *int64) *ExtractRuleUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ExtractRuleUpdate) AddIsDeleted(v int64) *ExtractRuleUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractRuleUpdate) SetStatus(v int) *ExtractRuleUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableStatus(v *int) *ExtractRuleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ExtractRuleUpdate) AddStatus(v int) *ExtractRuleUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ExtractRuleUpdate) SetRequestID(v int64) *ExtractRuleUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableRequestID(v *int64) *ExtractRuleUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *ExtractRuleUpdate) AddRequestID(v int64) *ExtractRuleUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *ExtractRuleUpdate) SetDatasetID(v int64) *ExtractRuleUpdate {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableDatasetID(v *int64) *ExtractRuleUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *ExtractRuleUpdate) AddDatasetID(v int64) *ExtractRuleUpdate {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *ExtractRuleUpdate) ClearDatasetID() *ExtractRuleUpdate {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetVarName sets the "var_name" field.
func (_u *ExtractRuleUpdate) SetVarName(v string) *ExtractRuleUpdate {
	_u.mutation.SetVarName(v)
	return _u
}

// SetNillableVarName sets the "var_name" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableVarName(v *string) *ExtractRuleUpdate {
	if v != nil {
		_u.SetVarName(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ExtractRuleUpdate) SetSourceType(v extractrule.SourceType) *ExtractRuleUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableSourceType(v *extractrule.SourceType) *ExtractRuleUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceExpr sets the "source_expr" field.
func (_u *ExtractRuleUpdate) SetSourceExpr(v string) *ExtractRuleUpdate {
	_u.mutation.SetSourceExpr(v)
	return _u
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableSourceExpr(v *string) *ExtractRuleUpdate {
	if v != nil {
		_u.SetSourceExpr(*v)
	}
	return _u
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (_u *ExtractRuleUpdate) ClearSourceExpr() *ExtractRuleUpdate {
	_u.mutation.ClearSourceExpr()
	return _u
}

// SetDefaultValue sets the "default_value" field.
func (_u *ExtractRuleUpdate) SetDefaultValue(v json.RawMessage) *ExtractRuleUpdate {
	_u.mutation.SetDefaultValue(v)
	return _u
}

// AppendDefaultValue appends value to the "default_value" field.
func (_u *ExtractRuleUpdate) AppendDefaultValue(v json.RawMessage) *ExtractRuleUpdate {
	_u.mutation.AppendDefaultValue(v)
	return _u
}

// ClearDefaultValue clears the value of the "default_value" field.
func (_u *ExtractRuleUpdate) ClearDefaultValue() *ExtractRuleUpdate {
	_u.mutation.ClearDefaultValue()
	return _u
}

// SetRequired sets the "required" field.
func (_u *ExtractRuleUpdate) SetRequired(v bool) *ExtractRuleUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableRequired(v *bool) *ExtractRuleUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExtractRuleUpdate) SetScope(v extractrule.Scope) *ExtractRuleUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableScope(v *extractrule.Scope) *ExtractRuleUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetIsSecret sets the "is_secret" field.
func (_u *ExtractRuleUpdate) SetIsSecret(v bool) *ExtractRuleUpdate {
	_u.mutation.SetIsSecret(v)
	return _u
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableIsSecret(v *bool) *ExtractRuleUpdate {
	if v != nil {
		_u.SetIsSecret(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *ExtractRuleUpdate) SetIsEnabled(v bool) *ExtractRuleUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableIsEnabled(v *bool) *ExtractRuleUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSort sets the "sort" field.
func (_u *ExtractRuleUpdate) SetSort(v int) *ExtractRuleUpdate {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *ExtractRuleUpdate) SetNillableSort(v *int) *ExtractRuleUpdate {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *ExtractRuleUpdate) AddSort(v int) *ExtractRuleUpdate {
	_u.mutation.AddSort(v)
	return _u
}

// Mutation returns the ExtractRuleMutation object of the builder.
func (_u *ExtractRuleUpdate) Mutation() *ExtractRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := extractrule.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractRuleUpdate) check() error {
	if v, ok := _u.mutation.VarName(); ok {
		if err := extractrule.VarNameValidator(v); err != nil {
			return &ValidationError{Name: "var_name", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.var_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := extractrule.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceExpr(); ok {
		if err := extractrule.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.source_expr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := extractrule.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractrule.Table, extractrule.Columns, sqlgraph.NewFieldSpec(extractrule.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(extractrule.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(extractrule.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(extractrule.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractrule.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(extractrule.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(extractrule.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(extractrule.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(extractrule.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(extractrule.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(extractrule.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.VarName(); ok {
		_spec.SetField(extractrule.FieldVarName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(extractrule.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceExpr(); ok {
		_spec.SetField(extractrule.FieldSourceExpr, field.TypeString, value)
	}
	if _u.mutation.SourceExprCleared() {
		_spec.ClearField(extractrule.FieldSourceExpr, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultValue(); ok {
		_spec.SetField(extractrule.FieldDefaultValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefaultValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractrule.FieldDefaultValue, value)
		})
	}
	if _u.mutation.DefaultValueCleared() {
		_spec.ClearField(extractrule.FieldDefaultValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(extractrule.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(extractrule.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsSecret(); ok {
		_spec.SetField(extractrule.FieldIsSecret, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(extractrule.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(extractrule.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(extractrule.FieldSort, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractRuleUpdateOne is the builder for updating a single ExtractRule entity.
type ExtractRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractRuleMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *ExtractRuleUpdateOne) SetUpdateTime(v time.Time) *ExtractRuleUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ExtractRuleUpdateOne) SetIsDeleted(v int64) *ExtractRuleUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableIsDeleted(v *int64) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *ExtractRuleUpdateOne) AddIsDeleted(v int64) *ExtractRuleUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractRuleUpdateOne) SetStatus(v int) *ExtractRuleUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableStatus(v *int) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *ExtractRuleUpdateOne) AddStatus(v int) *ExtractRuleUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *ExtractRuleUpdateOne) SetRequestID(v int64) *ExtractRuleUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableRequestID(v *int64) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *ExtractRuleUpdateOne) AddRequestID(v int64) *ExtractRuleUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *ExtractRuleUpdateOne) SetDatasetID(v int64) *ExtractRuleUpdateOne {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableDatasetID(v *int64) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *ExtractRuleUpdateOne) AddDatasetID(v int64) *ExtractRuleUpdateOne {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *ExtractRuleUpdateOne) ClearDatasetID() *ExtractRuleUpdateOne {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetVarName sets the "var_name" field.
func (_u *ExtractRuleUpdateOne) SetVarName(v string) *ExtractRuleUpdateOne {
	_u.mutation.SetVarName(v)
	return _u
}

// SetNillableVarName sets the "var_name" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableVarName(v *string) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetVarName(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ExtractRuleUpdateOne) SetSourceType(v extractrule.SourceType) *ExtractRuleUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableSourceType(v *extractrule.SourceType) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetSourceExpr sets the "source_expr" field.
func (_u *ExtractRuleUpdateOne) SetSourceExpr(v string) *ExtractRuleUpdateOne {
	_u.mutation.SetSourceExpr(v)
	return _u
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableSourceExpr(v *string) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetSourceExpr(*v)
	}
	return _u
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (_u *ExtractRuleUpdateOne) ClearSourceExpr() *ExtractRuleUpdateOne {
	_u.mutation.ClearSourceExpr()
	return _u
}

// SetDefaultValue sets the "default_value" field.
func (_u *ExtractRuleUpdateOne) SetDefaultValue(v json.RawMessage) *ExtractRuleUpdateOne {
	_u.mutation.SetDefaultValue(v)
	return _u
}

// AppendDefaultValue appends value to the "default_value" field.
func (_u *ExtractRuleUpdateOne) AppendDefaultValue(v json.RawMessage) *ExtractRuleUpdateOne {
	_u.mutation.AppendDefaultValue(v)
	return _u
}

// ClearDefaultValue clears the value of the "default_value" field.
func (_u *ExtractRuleUpdateOne) ClearDefaultValue() *ExtractRuleUpdateOne {
	_u.mutation.ClearDefaultValue()
	return _u
}

// SetRequired sets the "required" field.
func (_u *ExtractRuleUpdateOne) SetRequired(v bool) *ExtractRuleUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableRequired(v *bool) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *ExtractRuleUpdateOne) SetScope(v extractrule.Scope) *ExtractRuleUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableScope(v *extractrule.Scope) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetIsSecret sets the "is_secret" field.
func (_u *ExtractRuleUpdateOne) SetIsSecret(v bool) *ExtractRuleUpdateOne {
	_u.mutation.SetIsSecret(v)
	return _u
}

// SetNillableIsSecret sets the "is_secret" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableIsSecret(v *bool) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetIsSecret(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *ExtractRuleUpdateOne) SetIsEnabled(v bool) *ExtractRuleUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableIsEnabled(v *bool) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSort sets the "sort" field.
func (_u *ExtractRuleUpdateOne) SetSort(v int) *ExtractRuleUpdateOne {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *ExtractRuleUpdateOne) SetNillableSort(v *int) *ExtractRuleUpdateOne {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *ExtractRuleUpdateOne) AddSort(v int) *ExtractRuleUpdateOne {
	_u.mutation.AddSort(v)
	return _u
}

// Mutation returns the ExtractRuleMutation object of the builder.
func (_u *ExtractRuleUpdateOne) Mutation() *ExtractRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractRuleUpdate builder.
func (_u *ExtractRuleUpdateOne) Where(ps ...predicate.ExtractRule) *ExtractRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractRuleUpdateOne) Select(field string, fields ...string) *ExtractRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractRule entity.
func (_u *ExtractRuleUpdateOne) Save(ctx context.Context) (*ExtractRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractRuleUpdateOne) SaveX(ctx context.Context) *ExtractRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := extractrule.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractRuleUpdateOne) check() error {
	if v, ok := _u.mutation.VarName(); ok {
		if err := extractrule.VarNameValidator(v); err != nil {
			return &ValidationError{Name: "var_name", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.var_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := extractrule.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceExpr(); ok {
		if err := extractrule.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.source_expr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := extractrule.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ExtractRule.scope": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractRuleUpdateOne) sqlSave(ctx context.Context) (_node *ExtractRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractrule.Table, extractrule.Columns, sqlgraph.NewFieldSpec(extractrule.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractrule.FieldID)
		for _, f := range fields {
			if !extractrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractrule.FieldID {
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
		_spec.SetField(extractrule.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(extractrule.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(extractrule.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractrule.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(extractrule.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(extractrule.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(extractrule.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(extractrule.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(extractrule.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(extractrule.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.VarName(); ok {
		_spec.SetField(extractrule.FieldVarName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(extractrule.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceExpr(); ok {
		_spec.SetField(extractrule.FieldSourceExpr, field.TypeString, value)
	}
	if _u.mutation.SourceExprCleared() {
		_spec.ClearField(extractrule.FieldSourceExpr, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultValue(); ok {
		_spec.SetField(extractrule.FieldDefaultValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefaultValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractrule.FieldDefaultValue, value)
		})
	}
	if _u.mutation.DefaultValueCleared() {
		_spec.ClearField(extractrule.FieldDefaultValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(extractrule.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(extractrule.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsSecret(); ok {
		_spec.SetField(extractrule.FieldIsSecret, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(extractrule.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(extractrule.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(extractrule.FieldSort, field.TypeInt, value)
	}
	_node = &ExtractRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
