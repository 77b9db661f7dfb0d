// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
)

// ApiRequestCreate is the builder for creating a ApiRequest entity.
type ApiRequestCreate struct {
	config
	mutation *ApiRequestMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *ApiRequestCreate) SetCreateTime(v time.Time) *ApiRequestCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableCreateTime(v *time.Time) *ApiRequestCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *ApiRequestCreate) SetUpdateTime(v time.Time) *ApiRequestCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableUpdateTime(v *time.Time) *ApiRequestCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *ApiRequestCreate) SetIsDeleted(v int64) *ApiRequestCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableIsDeleted(v *int64) *ApiRequestCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApiRequestCreate) SetStatus(v int) *ApiRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableStatus(v *int) *ApiRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEnvID sets the "env_id" field.
func (_c *ApiRequestCreate) SetEnvID(v int64) *ApiRequestCreate {
	_c.mutation.SetEnvID(v)
	return _c
}

// SetNillableEnvID sets the "env_id" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableEnvID(v *int64) *ApiRequestCreate {
	if v != nil {
		_c.SetEnvID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ApiRequestCreate) SetName(v string) *ApiRequestCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *ApiRequestCreate) SetMethod(v string) *ApiRequestCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableMethod(v *string) *ApiRequestCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *ApiRequestCreate) SetURL(v string) *ApiRequestCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetRemark sets the "remark" field.
func (_c *ApiRequestCreate) SetRemark(v string) *ApiRequestCreate {
	_c.mutation.SetRemark(v)
	return _c
}

// SetNillableRemark sets the "remark" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableRemark(v *string) *ApiRequestCreate {
	if v != nil {
		_c.SetRemark(*v)
	}
	return _c
}

// SetBaseQueryParams sets the "base_query_params" field.
func (_c *ApiRequestCreate) SetBaseQueryParams(v map[string]interface{}) *ApiRequestCreate {
	_c.mutation.SetBaseQueryParams(v)
	return _c
}

// SetBaseHeaders sets the "base_headers" field.
func (_c *ApiRequestCreate) SetBaseHeaders(v map[string]interface{}) *ApiRequestCreate {
	_c.mutation.SetBaseHeaders(v)
	return _c
}

// SetBaseCookies sets the "base_cookies" field.
func (_c *ApiRequestCreate) SetBaseCookies(v map[string]interface{}) *ApiRequestCreate {
	_c.mutation.SetBaseCookies(v)
	return _c
}

// SetBodyType sets the "body_type" field.
func (_c *ApiRequestCreate) SetBodyType(v string) *ApiRequestCreate {
	_c.mutation.SetBodyType(v)
	return _c
}

// SetNillableBodyType sets the "body_type" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableBodyType(v *string) *ApiRequestCreate {
	if v != nil {
		_c.SetBodyType(*v)
	}
	return _c
}

// SetBaseBodyData sets the "base_body_data" field.
func (_c *ApiRequestCreate) SetBaseBodyData(v map[string]interface{}) *ApiRequestCreate {
	_c.mutation.SetBaseBodyData(v)
	return _c
}

// SetBaseBodyRaw sets the "base_body_raw" field.
func (_c *ApiRequestCreate) SetBaseBodyRaw(v string) *ApiRequestCreate {
	_c.mutation.SetBaseBodyRaw(v)
	return _c
}

// SetNillableBaseBodyRaw sets the "base_body_raw" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableBaseBodyRaw(v *string) *ApiRequestCreate {
	if v != nil {
		_c.SetBaseBodyRaw(*v)
	}
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *ApiRequestCreate) SetTimeoutMs(v int) *ApiRequestCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableTimeoutMs(v *int) *ApiRequestCreate {
	if v != nil {
		_c.SetTimeoutMs(*v)
	}
	return _c
}

// SetFollowRedirects sets the "follow_redirects" field.
func (_c *ApiRequestCreate) SetFollowRedirects(v bool) *ApiRequestCreate {
	_c.mutation.SetFollowRedirects(v)
	return _c
}

// SetNillableFollowRedirects sets the "follow_redirects" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableFollowRedirects(v *bool) *ApiRequestCreate {
	if v != nil {
		_c.SetFollowRedirects(*v)
	}
	return _c
}

// SetVerifySsl sets the "verify_ssl" field.
func (_c *ApiRequestCreate) SetVerifySsl(v bool) *ApiRequestCreate {
	_c.mutation.SetVerifySsl(v)
	return _c
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableVerifySsl(v *bool) *ApiRequestCreate {
	if v != nil {
		_c.SetVerifySsl(*v)
	}
	return _c
}

// SetProxyURL sets the "proxy_url" field.
func (_c *ApiRequestCreate) SetProxyURL(v string) *ApiRequestCreate {
	_c.mutation.SetProxyURL(v)
	return _c
}

// SetNillableProxyURL sets the "proxy_url" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableProxyURL(v *string) *ApiRequestCreate {
	if v != nil {
		_c.SetProxyURL(*v)
	}
	return _c
}

// SetSort sets the "sort" field.
func (_c *ApiRequestCreate) SetSort(v int) *ApiRequestCreate {
	_c.mutation.SetSort(v)
	return _c
}

// SetNillableSort sets the "sort" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableSort(v *int) *ApiRequestCreate {
	if v != nil {
		_c.SetSort(*v)
	}
	return _c
}

// SetExecuteCount sets the "execute_count" field.
func (_c *ApiRequestCreate) SetExecuteCount(v int) *ApiRequestCreate {
	_c.mutation.SetExecuteCount(v)
	return _c
}

// SetNillableExecuteCount sets the "execute_count" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableExecuteCount(v *int) *ApiRequestCreate {
	if v != nil {
		_c.SetExecuteCount(*v)
	}
	return _c
}

// SetDatasetRunMode sets the "dataset_run_mode" field.
func (_c *ApiRequestCreate) SetDatasetRunMode(v apirequest.DatasetRunMode) *ApiRequestCreate {
	_c.mutation.SetDatasetRunMode(v)
	return _c
}

// SetNillableDatasetRunMode sets the "dataset_run_mode" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableDatasetRunMode(v *apirequest.DatasetRunMode) *ApiRequestCreate {
	if v != nil {
		_c.SetDatasetRunMode(*v)
	}
	return _c
}

// SetDefaultDatasetID sets the "default_dataset_id" field.
func (_c *ApiRequestCreate) SetDefaultDatasetID(v int64) *ApiRequestCreate {
	_c.mutation.SetDefaultDatasetID(v)
	return _c
}

// SetNillableDefaultDatasetID sets the "default_dataset_id" field if the given value is not nil.
func (_c *ApiRequestCreate) SetNillableDefaultDatasetID(v *int64) *ApiRequestCreate {
	if v != nil {
		_c.SetDefaultDatasetID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApiRequestCreate) SetID(v int64) *ApiRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApiRequestMutation object of the builder.
func (_c *ApiRequestCreate) Mutation() *ApiRequestMutation {
	return _c.mutation
}

// Save creates the ApiRequest in the database.
func (_c *ApiRequestCreate) Save(ctx context.Context) (*ApiRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApiRequestCreate) SaveX(ctx context.Context) *ApiRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApiRequestCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := apirequest.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := apirequest.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := apirequest.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := apirequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Method(); !ok {
		v := apirequest.DefaultMethod
		_c.mutation.SetMethod(v)
	}
	if _, ok := _c.mutation.BaseQueryParams(); !ok {
		v := apirequest.DefaultBaseQueryParams
		_c.mutation.SetBaseQueryParams(v)
	}
	if _, ok := _c.mutation.BaseHeaders(); !ok {
		v := apirequest.DefaultBaseHeaders
		_c.mutation.SetBaseHeaders(v)
	}
	if _, ok := _c.mutation.BaseCookies(); !ok {
		v := apirequest.DefaultBaseCookies
		_c.mutation.SetBaseCookies(v)
	}
	if _, ok := _c.mutation.BodyType(); !ok {
		v := apirequest.DefaultBodyType
		_c.mutation.SetBodyType(v)
	}
	if _, ok := _c.mutation.BaseBodyData(); !ok {
		v := apirequest.DefaultBaseBodyData
		_c.mutation.SetBaseBodyData(v)
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		v := apirequest.DefaultTimeoutMs
		_c.mutation.SetTimeoutMs(v)
	}
	if _, ok := _c.mutation.FollowRedirects(); !ok {
		v := apirequest.DefaultFollowRedirects
		_c.mutation.SetFollowRedirects(v)
	}
	if _, ok := _c.mutation.VerifySsl(); !ok {
		v := apirequest.DefaultVerifySsl
		_c.mutation.SetVerifySsl(v)
	}
	if _, ok := _c.mutation.Sort(); !ok {
		v := apirequest.DefaultSort
		_c.mutation.SetSort(v)
	}
	if _, ok := _c.mutation.ExecuteCount(); !ok {
		v := apirequest.DefaultExecuteCount
		_c.mutation.SetExecuteCount(v)
	}
	if _, ok := _c.mutation.DatasetRunMode(); !ok {
		v := apirequest.DefaultDatasetRunMode
		_c.mutation.SetDatasetRunMode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApiRequestCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "ApiRequest.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "ApiRequest.update_time"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "ApiRequest.is_deleted"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApiRequest.status"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ApiRequest.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := apirequest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "ApiRequest.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := apirequest.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "ApiRequest.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := apirequest.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Remark(); ok {
		if err := apirequest.RemarkValidator(v); err != nil {
			return &ValidationError{Name: "remark", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.remark": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseQueryParams(); !ok {
		return &ValidationError{Name: "base_query_params", err: errors.New(`ent: missing required field "ApiRequest.base_query_params"`)}
	}
	if _, ok := _c.mutation.BaseHeaders(); !ok {
		return &ValidationError{Name: "base_headers", err: errors.New(`ent: missing required field "ApiRequest.base_headers"`)}
	}
	if _, ok := _c.mutation.BaseCookies(); !ok {
		return &ValidationError{Name: "base_cookies", err: errors.New(`ent: missing required field "ApiRequest.base_cookies"`)}
	}
	if _, ok := _c.mutation.BodyType(); !ok {
		return &ValidationError{Name: "body_type", err: errors.New(`ent: missing required field "ApiRequest.body_type"`)}
	}
	if v, ok := _c.mutation.BodyType(); ok {
		if err := apirequest.BodyTypeValidator(v); err != nil {
			return &ValidationError{Name: "body_type", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.body_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseBodyData(); !ok {
		return &ValidationError{Name: "base_body_data", err: errors.New(`ent: missing required field "ApiRequest.base_body_data"`)}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "ApiRequest.timeout_ms"`)}
	}
	if _, ok := _c.mutation.FollowRedirects(); !ok {
		return &ValidationError{Name: "follow_redirects", err: errors.New(`ent: missing required field "ApiRequest.follow_redirects"`)}
	}
	if _, ok := _c.mutation.VerifySsl(); !ok {
		return &ValidationError{Name: "verify_ssl", err: errors.New(`ent: missing required field "ApiRequest.verify_ssl"`)}
	}
	if v, ok := _c.mutation.ProxyURL(); ok {
		if err := apirequest.ProxyURLValidator(v); err != nil {
			return &ValidationError{Name: "proxy_url", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.proxy_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sort(); !ok {
		return &ValidationError{Name: "sort", err: errors.New(`ent: missing required field "ApiRequest.sort"`)}
	}
	if _, ok := _c.mutation.ExecuteCount(); !ok {
		return &ValidationError{Name: "execute_count", err: errors.New(`ent: missing required field "ApiRequest.execute_count"`)}
	}
	if _, ok := _c.mutation.DatasetRunMode(); !ok {
		return &ValidationError{Name: "dataset_run_mode", err: errors.New(`ent: missing required field "ApiRequest.dataset_run_mode"`)}
	}
	if v, ok := _c.mutation.DatasetRunMode(); ok {
		if err := apirequest.DatasetRunModeValidator(v); err != nil {
			return &ValidationError{Name: "dataset_run_mode", err: fmt.Errorf(`ent: validator failed for field "ApiRequest.dataset_run_mode": %w`, err)}
		}
	}
	return nil
}

func (_c *ApiRequestCreate) sqlSave(ctx context.Context) (*ApiRequest, error) {
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

func (_c *ApiRequestCreate) createSpec() (*ApiRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ApiRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apirequest.Table, sqlgraph.NewFieldSpec(apirequest.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(apirequest.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(apirequest.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(apirequest.FieldIsDeleted, field.TypeInt64, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(apirequest.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EnvID(); ok {
		_spec.SetField(apirequest.FieldEnvID, field.TypeInt64, value)
		_node.EnvID = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(apirequest.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(apirequest.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(apirequest.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Remark(); ok {
		_spec.SetField(apirequest.FieldRemark, field.TypeString, value)
		_node.Remark = &value
	}
	if value, ok := _c.mutation.BaseQueryParams(); ok {
		_spec.SetField(apirequest.FieldBaseQueryParams, field.TypeJSON, value)
		_node.BaseQueryParams = value
	}
	if value, ok := _c.mutation.BaseHeaders(); ok {
		_spec.SetField(apirequest.FieldBaseHeaders, field.TypeJSON, value)
		_node.BaseHeaders = value
	}
	if value, ok := _c.mutation.BaseCookies(); ok {
		_spec.SetField(apirequest.FieldBaseCookies, field.TypeJSON, value)
		_node.BaseCookies = value
	}
	if value, ok := _c.mutation.BodyType(); ok {
		_spec.SetField(apirequest.FieldBodyType, field.TypeString, value)
		_node.BodyType = value
	}
	if value, ok := _c.mutation.BaseBodyData(); ok {
		_spec.SetField(apirequest.FieldBaseBodyData, field.TypeJSON, value)
		_node.BaseBodyData = value
	}
	if value, ok := _c.mutation.BaseBodyRaw(); ok {
		_spec.SetField(apirequest.FieldBaseBodyRaw, field.TypeString, value)
		_node.BaseBodyRaw = &value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(apirequest.FieldTimeoutMs, field.TypeInt, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.FollowRedirects(); ok {
		_spec.SetField(apirequest.FieldFollowRedirects, field.TypeBool, value)
		_node.FollowRedirects = value
	}
	if value, ok := _c.mutation.VerifySsl(); ok {
		_spec.SetField(apirequest.FieldVerifySsl, field.TypeBool, value)
		_node.VerifySsl = value
	}
	if value, ok := _c.mutation.ProxyURL(); ok {
		_spec.SetField(apirequest.FieldProxyURL, field.TypeString, value)
		_node.ProxyURL = &value
	}
	if value, ok := _c.mutation.Sort(); ok {
		_spec.SetField(apirequest.FieldSort, field.TypeInt, value)
		_node.Sort = value
	}
	if value, ok := _c.mutation.ExecuteCount(); ok {
		_spec.SetField(apirequest.FieldExecuteCount, field.TypeInt, value)
		_node.ExecuteCount = value
	}
	if value, ok := _c.mutation.DatasetRunMode(); ok {
		_spec.SetField(apirequest.FieldDatasetRunMode, field.TypeEnum, value)
		_node.DatasetRunMode = value
	}
	if value, ok := _c.mutation.DefaultDatasetID(); ok {
		_spec.SetField(apirequest.FieldDefaultDatasetID, field.TypeInt64, value)
		_node.DefaultDatasetID = &value
	}
	return _node, _spec
}

// ApiRequestCreateBulk is the builder for creating many ApiRequest entities in bulk.
type ApiRequestCreateBulk struct {
	config
	err      error
	builders []*ApiRequestCreate
}

// Save creates the ApiRequest entities in the database.
func (_c *ApiRequestCreateBulk) Save(ctx context.Context) ([]*ApiRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApiRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApiRequestMutation)
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
func (_c *ApiRequestCreateBulk) SaveX(ctx context.Context) []*ApiRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApiRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApiRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
