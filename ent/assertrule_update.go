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
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// AssertRuleUpdate is the builder for updating AssertRule entities.
type AssertRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AssertRuleMutation
}

// Where appends a list predicates to the AssertRuleUpdate builder.
func (_u *AssertRuleUpdate) Where(ps ...predicate.AssertRule) *AssertRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *AssertRuleUpdate) SetUpdateTime(v time.Time) *AssertRuleUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *AssertRuleUpdate) SetIsDeleted(v int64) *AssertRuleUpdate {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableIsDeleted(v *int64) *AssertRuleUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *AssertRuleUpdate) AddIsDeleted(v int64) *AssertRuleUpdate {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssertRuleUpdate) SetStatus(v int) *AssertRuleUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableStatus(v *int) *AssertRuleUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *AssertRuleUpdate) AddStatus(v int) *AssertRuleUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *AssertRuleUpdate) SetRequestID(v int64) *AssertRuleUpdate {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableRequestID(v *int64) *AssertRuleUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *AssertRuleUpdate) AddRequestID(v int64) *AssertRuleUpdate {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *AssertRuleUpdate) SetDatasetID(v int64) *AssertRuleUpdate {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableDatasetID(v *int64) *AssertRuleUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *AssertRuleUpdate) AddDatasetID(v int64) *AssertRuleUpdate {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *AssertRuleUpdate) ClearDatasetID() *AssertRuleUpdate {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetAssertType sets the "assert_type" field.
func (_u *AssertRuleUpdate) SetAssertType(v assertrule.AssertType) *AssertRuleUpdate {
	_u.mutation.SetAssertType(v)
	return _u
}

// SetNillableAssertType sets the "assert_type" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableAssertType(v *assertrule.AssertType) *AssertRuleUpdate {
	if v != nil {
		_u.SetAssertType(*v)
	}
	return _u
}

// SetSourceExpr sets the "source_expr" field.
func (_u *AssertRuleUpdate) SetSourceExpr(v string) *AssertRuleUpdate {
	_u.mutation.SetSourceExpr(v)
	return _u
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableSourceExpr(v *string) *AssertRuleUpdate {
	if v != nil {
		_u.SetSourceExpr(*v)
	}
	return _u
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (_u *AssertRuleUpdate) ClearSourceExpr() *AssertRuleUpdate {
	_u.mutation.ClearSourceExpr()
	return _u
}

// SetComparator sets the "comparator" field.
func (_u *AssertRuleUpdate) SetComparator(v assertrule.Comparator) *AssertRuleUpdate {
	_u.mutation.SetComparator(v)
	return _u
}

// SetNillableComparator sets the "comparator" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableComparator(v *assertrule.Comparator) *AssertRuleUpdate {
	if v != nil {
		_u.SetComparator(*v)
	}
	return _u
}

// SetExpectedValue sets the "expected_value" field.
func (_u *AssertRuleUpdate) SetExpectedValue(v json.RawMessage) *AssertRuleUpdate {
	_u.mutation.SetExpectedValue(v)
	return _u
}

// AppendExpectedValue appends value to the "expected_value" field.
func (_u *AssertRuleUpdate) AppendExpectedValue(v json.RawMessage) *AssertRuleUpdate {
	_u.mutation.AppendExpectedValue(v)
	return _u
}

// ClearExpectedValue clears the value of the "expected_value" field.
func (_u *AssertRuleUpdate) ClearExpectedValue() *AssertRuleUpdate {
	_u.mutation.ClearExpectedValue()
	return _u
}

// SetMessage sets the "message" field.
func (_u *AssertRuleUpdate) SetMessage(v string) *AssertRuleUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableMessage(v *string) *AssertRuleUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *AssertRuleUpdate) ClearMessage() *AssertRuleUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *AssertRuleUpdate) SetIsEnabled(v bool) *AssertRuleUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableIsEnabled(v *bool) *AssertRuleUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSort sets the "sort" field.
func (_u *AssertRuleUpdate) SetSort(v int) *AssertRuleUpdate {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *AssertRuleUpdate) SetNillableSort(v *int) *AssertRuleUpdate {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *AssertRuleUpdate) AddSort(v int) *AssertRuleUpdate {
	_u.mutation.AddSort(v)
	return _u
}

// Mutation returns the AssertRuleMutation object of the builder.
func (_u *AssertRuleUpdate) Mutation() *AssertRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssertRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssertRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssertRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssertRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssertRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := assertrule.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssertRuleUpdate) check() error {
	if v, ok := _u.mutation.AssertType(); ok {
		if err := assertrule.AssertTypeValidator(v); err != nil {
			return &ValidationError{Name: "assert_type", err: fmt.Errorf(`ent: validator failed for field "AssertRule.assert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceExpr(); ok {
		if err := assertrule.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "AssertRule.source_expr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Comparator(); ok {
		if err := assertrule.ComparatorValidator(v); err != nil {
			return &ValidationError{Name: "comparator", err: fmt.Errorf(`ent: validator failed for field "AssertRule.comparator": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := assertrule.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "AssertRule.message": %w`, err)}
		}
	}
	return nil
}

func (_u *AssertRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assertrule.Table, assertrule.Columns, sqlgraph.NewFieldSpec(assertrule.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(assertrule.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(assertrule.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(assertrule.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assertrule.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(assertrule.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(assertrule.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(assertrule.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(assertrule.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(assertrule.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(assertrule.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.AssertType(); ok {
		_spec.SetField(assertrule.FieldAssertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceExpr(); ok {
		_spec.SetField(assertrule.FieldSourceExpr, field.TypeString, value)
	}
	if _u.mutation.SourceExprCleared() {
		_spec.ClearField(assertrule.FieldSourceExpr, field.TypeString)
	}
	if value, ok := _u.mutation.Comparator(); ok {
		_spec.SetField(assertrule.FieldComparator, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpectedValue(); ok {
		_spec.SetField(assertrule.FieldExpectedValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assertrule.FieldExpectedValue, value)
		})
	}
	if _u.mutation.ExpectedValueCleared() {
		_spec.ClearField(assertrule.FieldExpectedValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(assertrule.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(assertrule.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(assertrule.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(assertrule.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(assertrule.FieldSort, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assertrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssertRuleUpdateOne is the builder for updating a single AssertRule entity.
type AssertRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssertRuleMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *AssertRuleUpdateOne) SetUpdateTime(v time.Time) *AssertRuleUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *AssertRuleUpdateOne) SetIsDeleted(v int64) *AssertRuleUpdateOne {
	_u.mutation.ResetIsDeleted()
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableIsDeleted(v *int64) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// AddIsDeleted adds value to the "is_deleted" field.
func (_u *AssertRuleUpdateOne) AddIsDeleted(v int64) *AssertRuleUpdateOne {
	_u.mutation.AddIsDeleted(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssertRuleUpdateOne) SetStatus(v int) *AssertRuleUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableStatus(v *int) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *AssertRuleUpdateOne) AddStatus(v int) *AssertRuleUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *AssertRuleUpdateOne) SetRequestID(v int64) *AssertRuleUpdateOne {
	_u.mutation.ResetRequestID()
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableRequestID(v *int64) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// AddRequestID adds value to the "request_id" field.
func (_u *AssertRuleUpdateOne) AddRequestID(v int64) *AssertRuleUpdateOne {
	_u.mutation.AddRequestID(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *AssertRuleUpdateOne) SetDatasetID(v int64) *AssertRuleUpdateOne {
	_u.mutation.ResetDatasetID()
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableDatasetID(v *int64) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// AddDatasetID adds value to the "dataset_id" field.
func (_u *AssertRuleUpdateOne) AddDatasetID(v int64) *AssertRuleUpdateOne {
	_u.mutation.AddDatasetID(v)
	return _u
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (_u *AssertRuleUpdateOne) ClearDatasetID() *AssertRuleUpdateOne {
	_u.mutation.ClearDatasetID()
	return _u
}

// SetAssertType sets the "assert_type" field.
func (_u *AssertRuleUpdateOne) SetAssertType(v assertrule.AssertType) *AssertRuleUpdateOne {
	_u.mutation.SetAssertType(v)
	return _u
}

// SetNillableAssertType sets the "assert_type" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableAssertType(v *assertrule.AssertType) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetAssertType(*v)
	}
	return _u
}

// SetSourceExpr sets the "source_expr" field.
func (_u *AssertRuleUpdateOne) SetSourceExpr(v string) *AssertRuleUpdateOne {
	_u.mutation.SetSourceExpr(v)
	return _u
}

// SetNillableSourceExpr sets the "source_expr" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableSourceExpr(v *string) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetSourceExpr(*v)
	}
	return _u
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (_u *AssertRuleUpdateOne) ClearSourceExpr() *AssertRuleUpdateOne {
	_u.mutation.ClearSourceExpr()
	return _u
}

// SetComparator sets the "comparator" field.
func (_u *AssertRuleUpdateOne) SetComparator(v assertrule.Comparator) *AssertRuleUpdateOne {
	_u.mutation.SetComparator(v)
	return _u
}

// SetNillableComparator sets the "comparator" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableComparator(v *assertrule.Comparator) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetComparator(*v)
	}
	return _u
}

// SetExpectedValue sets the "expected_value" field.
func (_u *AssertRuleUpdateOne) SetExpectedValue(v json.RawMessage) *AssertRuleUpdateOne {
	_u.mutation.SetExpectedValue(v)
	return _u
}

// AppendExpectedValue appends value to the "expected_value" field.
func (_u *AssertRuleUpdateOne) AppendExpectedValue(v json.RawMessage) *AssertRuleUpdateOne {
	_u.mutation.AppendExpectedValue(v)
	return _u
}

// ClearExpectedValue clears the value of the "expected_value" field.
func (_u *AssertRuleUpdateOne) ClearExpectedValue() *AssertRuleUpdateOne {
	_u.mutation.ClearExpectedValue()
	return _u
}

// SetMessage sets the "message" field.
func (_u *AssertRuleUpdateOne) SetMessage(v string) *AssertRuleUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableMessage(v *string) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *AssertRuleUpdateOne) ClearMessage() *AssertRuleUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *AssertRuleUpdateOne) SetIsEnabled(v bool) *AssertRuleUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableIsEnabled(v *bool) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSort sets the "sort" field.
func (_u *AssertRuleUpdateOne) SetSort(v int) *AssertRuleUpdateOne {
	_u.mutation.ResetSort()
	_u.mutation.SetSort(v)
	return _u
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_u *AssertRuleUpdateOne) SetNillableSort(v *int) *AssertRuleUpdateOne {
	if v != nil {
		_u.SetSort(*v)
	}
	return _u
}

// AddSort adds value to the "sort" field.
func (_u *AssertRuleUpdateOne) AddSort(v int) *AssertRuleUpdateOne {
	_u.mutation.AddSort(v)
	return _u
}

// Mutation returns the AssertRuleMutation object of the builder.
func (_u *AssertRuleUpdateOne) Mutation() *AssertRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssertRuleUpdate builder.
func (_u *AssertRuleUpdateOne) Where(ps ...predicate.AssertRule) *AssertRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssertRuleUpdateOne) Select(field string, fields ...string) *AssertRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssertRule entity.
func (_u *AssertRuleUpdateOne) Save(ctx context.Context) (*AssertRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssertRuleUpdateOne) SaveX(ctx context.Context) *AssertRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssertRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssertRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssertRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := assertrule.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssertRuleUpdateOne) check() error {
	if v, ok := _u.mutation.AssertType(); ok {
		if err := assertrule.AssertTypeValidator(v); err != nil {
			return &ValidationError{Name: "assert_type", err: fmt.Errorf(`ent: validator failed for field "AssertRule.assert_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceExpr(); ok {
		if err := assertrule.SourceExprValidator(v); err != nil {
			return &ValidationError{Name: "source_expr", err: fmt.Errorf(`ent: validator failed for field "AssertRule.source_expr": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Comparator(); ok {
		if err := assertrule.ComparatorValidator(v); err != nil {
			return &ValidationError{Name: "comparator", err: fmt.Errorf(`ent: validator failed for field "AssertRule.comparator": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := assertrule.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "AssertRule.message": %w`, err)}
		}
	}
	return nil
}

func (_u *AssertRuleUpdateOne) sqlSave(ctx context.Context) (_node *AssertRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assertrule.Table, assertrule.Columns, sqlgraph.NewFieldSpec(assertrule.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssertRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assertrule.FieldID)
		for _, f := range fields {
			if !assertrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assertrule.FieldID {
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
		_spec.SetField(assertrule.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(assertrule.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedIsDeleted(); ok {
		_spec.AddField(assertrule.FieldIsDeleted, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assertrule.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(assertrule.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(assertrule.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRequestID(); ok {
		_spec.AddField(assertrule.FieldRequestID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DatasetID(); ok {
		_spec.SetField(assertrule.FieldDatasetID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDatasetID(); ok {
		_spec.AddField(assertrule.FieldDatasetID, field.TypeInt64, value)
	}
	if _u.mutation.DatasetIDCleared() {
		_spec.ClearField(assertrule.FieldDatasetID, field.TypeInt64)
	}
	if value, ok := _u.mutation.AssertType(); ok {
		_spec.SetField(assertrule.FieldAssertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceExpr(); ok {
		_spec.SetField(assertrule.FieldSourceExpr, field.TypeString, value)
	}
	if _u.mutation.SourceExprCleared() {
		_spec.ClearField(assertrule.FieldSourceExpr, field.TypeString)
	}
	if value, ok := _u.mutation.Comparator(); ok {
		_spec.SetField(assertrule.FieldComparator, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpectedValue(); ok {
		_spec.SetField(assertrule.FieldExpectedValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assertrule.FieldExpectedValue, value)
		})
	}
	if _u.mutation.ExpectedValueCleared() {
		_spec.ClearField(assertrule.FieldExpectedValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(assertrule.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(assertrule.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(assertrule.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Sort(); ok {
		_spec.SetField(assertrule.FieldSort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSort(); ok {
		_spec.AddField(assertrule.FieldSort, field.TypeInt, value)
	}
	_node = &AssertRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assertrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
