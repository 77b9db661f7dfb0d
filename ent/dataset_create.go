// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
)

// DatasetCreate is the builder for creating a Dataset entity.
type DatasetCreate struct {
	config
	mutation *DatasetMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *DatasetCreate) SetCreateTime(v time.Time) *DatasetCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableCreateTime(v *time.Time) *DatasetCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *DatasetCreate) SetUpdateTime(v time.Time) *DatasetCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableUpdateTime(v *time.Time) *DatasetCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *DatasetCreate) SetIsDeleted(v int64) *DatasetCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableIsDeleted(v *int64) *DatasetCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DatasetCreate) SetStatus(v int) *DatasetCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableStatus(v *int) *DatasetCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *DatasetCreate) SetRequestID(v int64) *DatasetCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DatasetCreate) SetName(v string) *DatasetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRemark sets the "remark" field.
func (_c *DatasetCreate) SetRemark(v string) *DatasetCreate {
	_c.mutation.SetRemark(v)
	return _c
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableRemark(v *string) *DatasetCreate {
	if v != nil {
		_c.SetRemark(*v)
	}
	return _c
}

// SetVariables sets the "variables" field.
func (_c *DatasetCreate) SetVariables(v map[string]interface{}) *DatasetCreate {
	_c.mutation.SetVariables(v)
	return _c
}

// SetQueryParams sets the "query_params" field.
func (_c *DatasetCreate) SetQueryParams(v map[string]interface{}) *DatasetCreate {
	_c.mutation.SetQueryParams(v)
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *DatasetCreate) SetHeaders(v map[string]interface{}) *DatasetCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetCookies sets the "cookies" field.
func (_c *DatasetCreate) SetCookies(v map[string]interface{}) *DatasetCreate {
	_c.mutation.SetCookies(v)
	return _c
}

// SetBodyType sets the "body_type" field.
func (_c *DatasetCreate) SetBodyType(v string) *DatasetCreate {
	_c.mutation.SetBodyType(v)
	return _c
}

// SetNillableBodyType sets the "body_type" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableBodyType(v *string) *DatasetCreate {
	if v != nil {
		_c.SetBodyType(*v)
	}
	return _c
}

// SetBodyData sets the "body_data" field.
func (_c *DatasetCreate) SetBodyData(v map[string]interface{}) *DatasetCreate {
	_c.mutation.SetBodyData(v)
	return _c
}

// SetBodyRaw sets the "body_raw" field.
func (_c *DatasetCreate) SetBodyRaw(v string) *DatasetCreate {
	_c.mutation.SetBodyRaw(v)
	return _c
}

// SetNillableBodyRaw sets the "body_raw" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableBodyRaw(v *string) *DatasetCreate {
	if v != nil {
		_c.SetBodyRaw(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *DatasetCreate) SetIsDefault(v bool) *DatasetCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableIsDefault(v *bool) *DatasetCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *DatasetCreate) SetIsEnabled(v bool) *DatasetCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableIsEnabled(v *bool) *DatasetCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetSort sets the "sort" field.
func (_c *DatasetCreate) SetSort(v int) *DatasetCreate {
	_c.mutation.SetSort(v)
	return _c
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableSort(v *int) *DatasetCreate {
	if v != nil {
		_c.SetSort(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DatasetCreate) SetID(v int64) *DatasetCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DatasetMutation object of the builder.
func (_c *DatasetCreate) Mutation() *DatasetMutation {
	return _c.mutation
}

// Save creates the Dataset in the database.
func (_c *DatasetCreate) Save(ctx context.Context) (*Dataset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasetCreate) SaveX(ctx context.Context) *Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasetCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := dataset.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := dataset.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := dataset.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := dataset.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Variables(); !ok {
		v := dataset.DefaultVariables
		_c.mutation.SetVariables(v)
	}
	if _, ok := _c.mutation.QueryParams(); !ok {
		v := dataset.DefaultQueryParams
		_c.mutation.SetQueryParams(v)
	}
	if _, ok := _c.mutation.Headers(); !ok {
		v := dataset.DefaultHeaders
		_c.mutation.SetHeaders(v)
	}
	if _, ok := _c.mutation.Cookies(); !ok {
		v := dataset.DefaultCookies
		_c.mutation.SetCookies(v)
	}
	if _, ok := _c.mutation.BodyData(); !ok {
		v := dataset.DefaultBodyData
		_c.mutation.SetBodyData(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := dataset.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := dataset.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.Sort(); !ok {
		v := dataset.DefaultSort
		_c.mutation.SetSort(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasetCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Dataset.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Dataset.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Dataset.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Dataset.status"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "Dataset.request_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Dataset.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Remark(); ok {
		if err := dataset.RemarkValidator(v); err != nil {
			return &ValidationError{Name: "remark", err: fmt.Errorf(`ent: validator failed for field "Dataset.remark": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Variables(); !ok {
		return &ValidationError{Name: "variables", err: errors.New(`ent: missing required field "Dataset.variables"`)}
	}
	if _, ok := _c.mutation.QueryParams(); !ok {
		return &ValidationError{Name: "query_params", err: errors.New(`ent: missing required field "Dataset.query_params"`)}
	}
	if _, ok := _c.mutation.Headers(); !ok {
		return &ValidationError{Name: "headers", err: errors.New(`ent: missing required field "Dataset.headers"`)}
	}
	if _, ok := _c.mutation.Cookies(); !ok {
		return &ValidationError{Name: "cookies", err: errors.New(`ent: missing required field "Dataset.cookies"`)}
	}
	if v, ok := _c.mutation.BodyType(); ok {
		if err := dataset.BodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "body_type", err: fmt.Errorf(`ent: validator failed for field "Dataset.body_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BodyData(); !ok {
		return &ValidationError{Name: "body_data", err: errors.New(`ent: missing required field "Dataset.body_data"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "Dataset.is_default"`)}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "Dataset.is_enabled"`)}
	}
	if _, ok := _c.mutation.Sort(); !ok {
		return &ValidationError{Name: "sort", err: errors.New(`ent: missing required field "Dataset.sort"`)}
	}
	return nil
}

func (_c *DatasetCreate) sqlSave(ctx context.Context) (*Dataset, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DatasetCreate) createSpec() (*Dataset, *sqlgraph.CreateSpec) {
	var (
		_node = &Dataset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dataset.Table, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(dataset.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(dataset.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(dataset.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dataset.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(dataset.FieldRequestID, field.TypeInt64, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Remark(); ok {
		_spec.SetField(dataset.FieldRemark, field.TypeString, value)
		_node.Remark = &value
	}
	if value, ok := _c.mutation.Variables(); ok {
		_spec.SetField(dataset.FieldVariables, field.TypeJSON, value)
		_node.Variables = value
	}
	if value, ok := _c.mutation.QueryParams(); ok {
		_spec.SetField(dataset.FieldQueryParams, field.TypeJSON, value)
		_node.QueryParams = value
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(dataset.FieldHeaders, field.TypeJSON, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.Cookies(); ok {
		_spec.SetField(dataset.FieldCookies, field.TypeJSON, value)
		_node.Cookies = value
	}
	if value, ok := _c.mutation.BodyType(); ok {
		_spec.SetField(dataset.FieldBodyType, field.TypeString, value)
		_node.BodyType = &value
	}
	if value, ok := _c.mutation.BodyData(); ok {
		_spec.SetField(dataset.FieldBodyData, field.TypeJSON, value)
		_node.BodyData = value
	}
	if value, ok := _c.mutation.BodyRaw(); ok {
		_spec.SetField(dataset.FieldBodyRaw, field.TypeString, value)
		_node.BodyRaw = &value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(dataset.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(dataset.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.Sort(); ok {
		_spec.SetField(dataset.FieldSort, field.TypeInt, value)
		_node.Sort = value
	}
	return _node, _spec
}

// DatasetCreateBulk is the builder for creating many Dataset entities in bulk.
type DatasetCreateBulk struct {
	config
	err      error
	builders []*DatasetCreate
}

// Save creates the Dataset entities in the database.
func (_c *DatasetCreateBulk) Save(ctx context.Context) ([]*Dataset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dataset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DatasetCreateBulk) SaveX(ctx context.Context) []*Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
