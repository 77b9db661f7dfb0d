// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
)

// RequestRunCreate is the builder for creating a RequestRun entity.
type RequestRunCreate struct {
	config
	mutation *RequestRunMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *RequestRunCreate) SetCreateTime(v time.Time) *RequestRunCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableCreateTime(v *time.Time) *RequestRunCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *RequestRunCreate) SetUpdateTime(v time.Time) *RequestRunCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableUpdateTime(v *time.Time) *RequestRunCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *RequestRunCreate) SetIsDeleted(v int64) *RequestRunCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableIsDeleted(v *int64) *RequestRunCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RequestRunCreate) SetStatus(v int) *RequestRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableStatus(v *int) *RequestRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *RequestRunCreate) SetRequestID(v int64) *RequestRunCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetScenarioRunID sets the "scenario_run_id" field.
func (_c *RequestRunCreate) SetScenarioRunID(v int64) *RequestRunCreate {
	_c.mutation.SetScenarioRunID(v)
	return _c
}

// SetNillableScenarioRunID sets the "scenario_run_id" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableScenarioRunID(v *int64) *RequestRunCreate {
	if v != nil {
		_c.SetScenarioRunID(*v)
	}
	return _c
}

// SetScenarioCaseID sets the "scenario_case_id" field.
func (_c *RequestRunCreate) SetScenarioCaseID(v int64) *RequestRunCreate {
	_c.mutation.SetScenarioCaseID(v)
	return _c
}

// SetNillableScenarioCaseID sets the "scenario_case_id" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableScenarioCaseID(v *int64) *RequestRunCreate {
	if v != nil {
		_c.SetScenarioCaseID(*v)
	}
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *RequestRunCreate) SetDatasetID(v int64) *RequestRunCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableDatasetID(v *int64) *RequestRunCreate {
	if v != nil {
		_c.SetDatasetID(*v)
	}
	return _c
}

// SetDatasetSnapshot sets the "dataset_snapshot" field.
func (_c *RequestRunCreate) SetDatasetSnapshot(v map[string]interface{}) *RequestRunCreate {
	_c.mutation.SetDatasetSnapshot(v)
	return _c
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_c *RequestRunCreate) SetRequestSnapshot(v map[string]interface{}) *RequestRunCreate {
	_c.mutation.SetRequestSnapshot(v)
	return _c
}

// SetIsSuccess sets the "is_success" field.
func (_c *RequestRunCreate) SetIsSuccess(v bool) *RequestRunCreate {
	_c.mutation.SetIsSuccess(v)
	return _c
}

// SetNillableIsSuccess sets the "is_success" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableIsSuccess(v *bool) *RequestRunCreate {
	if v != nil {
		_c.SetIsSuccess(*v)
	}
	return _c
}

// SetResponseStatusCode sets the "response_status_code" field.
func (_c *RequestRunCreate) SetResponseStatusCode(v int) *RequestRunCreate {
	_c.mutation.SetResponseStatusCode(v)
	return _c
}

// SetNillableResponseStatusCode sets the "response_status_code" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableResponseStatusCode(v *int) *RequestRunCreate {
	if v != nil {
		_c.SetResponseStatusCode(*v)
	}
	return _c
}

// SetResponseHeaders sets the "response_headers" field.
func (_c *RequestRunCreate) SetResponseHeaders(v map[string][]string) *RequestRunCreate {
	_c.mutation.SetResponseHeaders(v)
	return _c
}

// SetResponseBody sets the "response_body" field.
func (_c *RequestRunCreate) SetResponseBody(v string) *RequestRunCreate {
	_c.mutation.SetResponseBody(v)
	return _c
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableResponseBody(v *string) *RequestRunCreate {
	if v != nil {
		_c.SetResponseBody(*v)
	}
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *RequestRunCreate) SetResponseTimeMs(v int64) *RequestRunCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableResponseTimeMs(v *int64) *RequestRunCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RequestRunCreate) SetErrorMessage(v string) *RequestRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RequestRunCreate) SetNillableErrorMessage(v *string) *RequestRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAssertionResults sets the "assertion_results" field.
func (_c *RequestRunCreate) SetAssertionResults(v []map[string]interface{}) *RequestRunCreate {
	_c.mutation.SetAssertionResults(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RequestRunCreate) SetID(v int64) *RequestRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RequestRunMutation object of the builder.
func (_c *RequestRunCreate) Mutation() *RequestRunMutation {
	return _c.mutation
}

// Save creates the RequestRun in the database.
func (_c *RequestRunCreate) Save(ctx context.Context) (*RequestRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestRunCreate) SaveX(ctx context.Context) *RequestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestRunCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := requestrun.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := requestrun.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := requestrun.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := requestrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequestSnapshot(); !ok {
		v := requestrun.DefaultRequestSnapshot
		_c.mutation.SetRequestSnapshot(v)
	}
	if _, ok := _c.mutation.IsSuccess(); !ok {
		v := requestrun.DefaultIsSuccess
		_c.mutation.SetIsSuccess(v)
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		v := requestrun.DefaultResponseTimeMs
		_c.mutation.SetResponseTimeMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestRunCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "RequestRun.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "RequestRun.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "RequestRun.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RequestRun.status"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RequestRun.request_id"`)}
	}
	if _, ok := _c.mutation.RequestSnapshot(); !ok {
		return &ValidationError{Name: "request_snapshot", err: errors.New(`ent: missing required field "RequestRun.request_snapshot"`)}
	}
	if _, ok := _c.mutation.IsSuccess(); !ok {
		return &ValidationError{Name: "is_success", err: errors.New(`ent: missing required field "RequestRun.is_success"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "RequestRun.response_time_ms"`)}
	}
	return nil
}

func (_c *RequestRunCreate) sqlSave(ctx context.Context) (*RequestRun, error) {
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

func (_c *RequestRunCreate) createSpec() (*RequestRun, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestrun.Table, sqlgraph.NewFieldSpec(requestrun.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(requestrun.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(requestrun.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(requestrun.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(requestrun.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(requestrun.FieldRequestID, field.TypeInt64, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.ScenarioRunID(); ok {
		_spec.SetField(requestrun.FieldScenarioRunID, field.TypeInt64, value)
		_node.ScenarioRunID = &value
	}
	if value, ok := _c.mutation.ScenarioCaseID(); ok {
		_spec.SetField(requestrun.FieldScenarioCaseID, field.TypeInt64, value)
		_node.ScenarioCaseID = &value
	}
	if value, ok := _c.mutation.DatasetID(); ok {
		_spec.SetField(requestrun.FieldDatasetID, field.TypeInt64, value)
		_node.DatasetID = &value
	}
	if value, ok := _c.mutation.DatasetSnapshot(); ok {
		_spec.SetField(requestrun.FieldDatasetSnapshot, field.TypeJSON, value)
		_node.DatasetSnapshot = value
	}
	if value, ok := _c.mutation.RequestSnapshot(); ok {
		_spec.SetField(requestrun.FieldRequestSnapshot, field.TypeJSON, value)
		_node.RequestSnapshot = value
	}
	if value, ok := _c.mutation.IsSuccess(); ok {
		_spec.SetField(requestrun.FieldIsSuccess, field.TypeBool, value)
		_node.IsSuccess = value
	}
	if value, ok := _c.mutation.ResponseStatusCode(); ok {
		_spec.SetField(requestrun.FieldResponseStatusCode, field.TypeInt, value)
		_node.ResponseStatusCode = &value
	}
	if value, ok := _c.mutation.ResponseHeaders(); ok {
		_spec.SetField(requestrun.FieldResponseHeaders, field.TypeJSON, value)
		_node.ResponseHeaders = value
	}
	if value, ok := _c.mutation.ResponseBody(); ok {
		_spec.SetField(requestrun.FieldResponseBody, field.TypeString, value)
		_node.ResponseBody = &value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(requestrun.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(requestrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.AssertionResults(); ok {
		_spec.SetField(requestrun.FieldAssertionResults, field.TypeJSON, value)
		_node.AssertionResults = value
	}
	return _node, _spec
}

// RequestRunCreateBulk is the builder for creating many RequestRun entities in bulk.
type RequestRunCreateBulk struct {
	config
	err      error
	builders []*RequestRunCreate
}

// Save creates the RequestRun entities in the database.
func (_c *RequestRunCreateBulk) Save(ctx context.Context) ([]*RequestRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestRunMutation)
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
func (_c *RequestRunCreateBulk) SaveX(ctx context.Context) []*RequestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
