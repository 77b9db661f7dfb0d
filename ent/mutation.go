// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/environment"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenario"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApiRequest   = "ApiRequest"
	TypeAssertRule   = "AssertRule"
	TypeDataset      = "Dataset"
	TypeEnvironment  = "Environment"
	TypeExtractRule  = "ExtractRule"
	TypeRequestRun   = "RequestRun"
	TypeRunVariable  = "RunVariable"
	TypeScenario     = "Scenario"
	TypeScenarioCase = "ScenarioCase"
	TypeScenarioRun  = "ScenarioRun"
)

// ApiRequestMutation represents an operation that mutates the ApiRequest nodes in the graph.
type ApiRequestMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int64
	create_time           *time.Time
	update_time           *time.Time
	is_deleted            *int64
	addis_deleted         *int64
	status                *int
	addstatus             *int
	env_id                *int64
	addenv_id             *int64
	name                  *string
	method                *string
	url                   *string
	remark                *string
	base_query_params     *map[string]interface{}
	base_headers          *map[string]interface{}
	base_cookies          *map[string]interface{}
	body_type             *string
	base_body_data        *map[string]interface{}
	base_body_raw         *string
	timeout_ms            *int
	addtimeout_ms         *int
	follow_redirects      *bool
	verify_ssl            *bool
	proxy_url             *string
	sort                  *int
	addsort               *int
	execute_count         *int
	addexecute_count      *int
	dataset_run_mode      *apirequest.DatasetRunMode
	default_dataset_id    *int64
	adddefault_dataset_id *int64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ApiRequest, error)
	predicates            []predicate.ApiRequest
}

var _ ent.Mutation = (*ApiRequestMutation)(nil)

// apirequestOption allows management of the mutation configuration using functional options.
type apirequestOption func(*ApiRequestMutation)

// newApiRequestMutation creates new mutation for the ApiRequest entity.
func newApiRequestMutation(c config, op Op, opts ...apirequestOption) *ApiRequestMutation {
	m := &ApiRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeApiRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApiRequestID sets the ID field of the mutation.
func withApiRequestID(id int64) apirequestOption {
	return func(m *ApiRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ApiRequest
		)
		m.oldValue = func(ctx context.Context) (*ApiRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApiRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApiRequest sets the old ApiRequest of the mutation.
func withApiRequest(node *ApiRequest) apirequestOption {
	return func(m *ApiRequestMutation) {
		m.oldValue = func(context.Context) (*ApiRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApiRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApiRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApiRequest entities.
func (m *ApiRequestMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApiRequestMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApiRequestMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApiRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ApiRequestMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ApiRequestMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ApiRequestMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ApiRequestMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ApiRequestMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ApiRequestMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ApiRequestMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ApiRequestMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *ApiRequestMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *ApiRequestMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ApiRequestMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *ApiRequestMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *ApiRequestMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *ApiRequestMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *ApiRequestMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *ApiRequestMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetEnvID sets the "env_id" field.
func (m *ApiRequestMutation) SetEnvID(i int64) {
	m.env_id = &i
	m.addenv_id = nil
}

// EnvID returns the value of the "env_id" field in the mutation.
func (m *ApiRequestMutation) EnvID() (r int64, exists bool) {
	v := m.env_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvID returns the old "env_id" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldEnvID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvID: %w", err)
	}
	return oldValue.EnvID, nil
}

// AddEnvID adds i to the "env_id" field.
func (m *ApiRequestMutation) AddEnvID(i int64) {
	if m.addenv_id != nil {
		*m.addenv_id += i
	} else {
		m.addenv_id = &i
	}
}

// AddedEnvID returns the value that was added to the "env_id" field in this mutation.
func (m *ApiRequestMutation) AddedEnvID() (r int64, exists bool) {
	v := m.addenv_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnvID clears the value of the "env_id" field.
func (m *ApiRequestMutation) ClearEnvID() {
	m.env_id = nil
	m.addenv_id = nil
	m.clearedFields[apirequest.FieldEnvID] = struct{}{}
}

// EnvIDCleared returns if the "env_id" field was cleared in this mutation.
func (m *ApiRequestMutation) EnvIDCleared() bool {
	_, ok := m.clearedFields[apirequest.FieldEnvID]
	return ok
}

// ResetEnvID resets all changes to the "env_id" field.
func (m *ApiRequestMutation) ResetEnvID() {
	m.env_id = nil
	m.addenv_id = nil
	delete(m.clearedFields, apirequest.FieldEnvID)
}

// SetName sets the "name" field.
func (m *ApiRequestMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ApiRequestMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ApiRequestMutation) ResetName() {
	m.name = nil
}

// SetMethod sets the "method" field.
func (m *ApiRequestMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ApiRequestMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *ApiRequestMutation) ResetMethod() {
	m.method = nil
}

// SetURL sets the "url" field.
func (m *ApiRequestMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ApiRequestMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ApiRequestMutation) ResetURL() {
	m.url = nil
}

// SetRemark sets the "remark" field.
func (m *ApiRequestMutation) SetRemark(s string) {
	m.remark = &s
}

// Remark returns the value of the "remark" field in the mutation.
func (m *ApiRequestMutation) Remark() (r string, exists bool) {
	v := m.remark
	if v == nil {
		return
	}
	return *v, true
}

// OldRemark returns the old "remark" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldRemark(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemark: %w", err)
	}
	return oldValue.Remark, nil
}

// ClearRemark clears the value of the "remark" field.
func (m *ApiRequestMutation) ClearRemark() {
	m.remark = nil
	m.clearedFields[apirequest.FieldRemark] = struct{}{}
}

// RemarkCleared returns if the "remark" field was cleared in this mutation.
func (m *ApiRequestMutation) RemarkCleared() bool {
	_, ok := m.clearedFields[apirequest.FieldRemark]
	return ok
}

// ResetRemark resets all changes to the "remark" field.
func (m *ApiRequestMutation) ResetRemark() {
	m.remark = nil
	delete(m.clearedFields, apirequest.FieldRemark)
}

// SetBaseQueryParams sets the "base_query_params" field.
func (m *ApiRequestMutation) SetBaseQueryParams(value map[string]interface{}) {
	m.base_query_params = &value
}

// BaseQueryParams returns the value of the "base_query_params" field in the mutation.
func (m *ApiRequestMutation) BaseQueryParams() (r map[string]interface{}, exists bool) {
	v := m.base_query_params
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseQueryParams returns the old "base_query_params" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldBaseQueryParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseQueryParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseQueryParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseQueryParams: %w", err)
	}
	return oldValue.BaseQueryParams, nil
}

// ResetBaseQueryParams resets all changes to the "base_query_params" field.
func (m *ApiRequestMutation) ResetBaseQueryParams() {
	m.base_query_params = nil
}

// SetBaseHeaders sets the "base_headers" field.
func (m *ApiRequestMutation) SetBaseHeaders(value map[string]interface{}) {
	m.base_headers = &value
}

// BaseHeaders returns the value of the "base_headers" field in the mutation.
func (m *ApiRequestMutation) BaseHeaders() (r map[string]interface{}, exists bool) {
	v := m.base_headers
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseHeaders returns the old "base_headers" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldBaseHeaders(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseHeaders: %w", err)
	}
	return oldValue.BaseHeaders, nil
}

// ResetBaseHeaders resets all changes to the "base_headers" field.
func (m *ApiRequestMutation) ResetBaseHeaders() {
	m.base_headers = nil
}

// SetBaseCookies sets the "base_cookies" field.
func (m *ApiRequestMutation) SetBaseCookies(value map[string]interface{}) {
	m.base_cookies = &value
}

// BaseCookies returns the value of the "base_cookies" field in the mutation.
func (m *ApiRequestMutation) BaseCookies() (r map[string]interface{}, exists bool) {
	v := m.base_cookies
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseCookies returns the old "base_cookies" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldBaseCookies(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseCookies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseCookies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseCookies: %w", err)
	}
	return oldValue.BaseCookies, nil
}

// ResetBaseCookies resets all changes to the "base_cookies" field.
func (m *ApiRequestMutation) ResetBaseCookies() {
	m.base_cookies = nil
}

// SetBodyType sets the "body_type" field.
func (m *ApiRequestMutation) SetBodyType(s string) {
	m.body_type = &s
}

// BodyType returns the value of the "body_type" field in the mutation.
func (m *ApiRequestMutation) BodyType() (r string, exists bool) {
	v := m.body_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyType returns the old "body_type" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldBodyType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyType: %w", err)
	}
	return oldValue.BodyType, nil
}

// ResetBodyType resets all changes to the "body_type" field.
func (m *ApiRequestMutation) ResetBodyType() {
	m.body_type = nil
}

// SetBaseBodyData sets the "base_body_data" field.
func (m *ApiRequestMutation) SetBaseBodyData(value map[string]interface{}) {
	m.base_body_data = &value
}

// BaseBodyData returns the value of the "base_body_data" field in the mutation.
func (m *ApiRequestMutation) BaseBodyData() (r map[string]interface{}, exists bool) {
	v := m.base_body_data
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBodyData returns the old "base_body_data" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldBaseBodyData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBodyData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBodyData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBodyData: %w", err)
	}
	return oldValue.BaseBodyData, nil
}

// ResetBaseBodyData resets all changes to the "base_body_data" field.
func (m *ApiRequestMutation) ResetBaseBodyData() {
	m.base_body_data = nil
}

// SetBaseBodyRaw sets the "base_body_raw" field.
func (m *ApiRequestMutation) SetBaseBodyRaw(s string) {
	m.base_body_raw = &s
}

// BaseBodyRaw returns the value of the "base_body_raw" field in the mutation.
func (m *ApiRequestMutation) BaseBodyRaw() (r string, exists bool) {
	v := m.base_body_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBodyRaw returns the old "base_body_raw" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldBaseBodyRaw(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBodyRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBodyRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBodyRaw: %w", err)
	}
	return oldValue.BaseBodyRaw, nil
}

// ClearBaseBodyRaw clears the value of the "base_body_raw" field.
func (m *ApiRequestMutation) ClearBaseBodyRaw() {
	m.base_body_raw = nil
	m.clearedFields[apirequest.FieldBaseBodyRaw] = struct{}{}
}

// BaseBodyRawCleared returns if the "base_body_raw" field was cleared in this mutation.
func (m *ApiRequestMutation) BaseBodyRawCleared() bool {
	_, ok := m.clearedFields[apirequest.FieldBaseBodyRaw]
	return ok
}

// ResetBaseBodyRaw resets all changes to the "base_body_raw" field.
func (m *ApiRequestMutation) ResetBaseBodyRaw() {
	m.base_body_raw = nil
	delete(m.clearedFields, apirequest.FieldBaseBodyRaw)
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *ApiRequestMutation) SetTimeoutMs(i int) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *ApiRequestMutation) TimeoutMs() (r int, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldTimeoutMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *ApiRequestMutation) AddTimeoutMs(i int) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *ApiRequestMutation) AddedTimeoutMs() (r int, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *ApiRequestMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
}

// SetFollowRedirects sets the "follow_redirects" field.
func (m *ApiRequestMutation) SetFollowRedirects(b bool) {
	m.follow_redirects = &b
}

// FollowRedirects returns the value of the "follow_redirects" field in the mutation.
func (m *ApiRequestMutation) FollowRedirects() (r bool, exists bool) {
	v := m.follow_redirects
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowRedirects returns the old "follow_redirects" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldFollowRedirects(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowRedirects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowRedirects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowRedirects: %w", err)
	}
	return oldValue.FollowRedirects, nil
}

// ResetFollowRedirects resets all changes to the "follow_redirects" field.
func (m *ApiRequestMutation) ResetFollowRedirects() {
	m.follow_redirects = nil
}

// SetVerifySsl sets the "verify_ssl" field.
func (m *ApiRequestMutation) SetVerifySsl(b bool) {
	m.verify_ssl = &b
}

// VerifySsl returns the value of the "verify_ssl" field in the mutation.
func (m *ApiRequestMutation) VerifySsl() (r bool, exists bool) {
	v := m.verify_ssl
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifySsl returns the old "verify_ssl" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldVerifySsl(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifySsl is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifySsl requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifySsl: %w", err)
	}
	return oldValue.VerifySsl, nil
}

// ResetVerifySsl resets all changes to the "verify_ssl" field.
func (m *ApiRequestMutation) ResetVerifySsl() {
	m.verify_ssl = nil
}

// SetProxyURL sets the "proxy_url" field.
func (m *ApiRequestMutation) SetProxyURL(s string) {
	m.proxy_url = &s
}

// ProxyURL returns the value of the "proxy_url" field in the mutation.
func (m *ApiRequestMutation) ProxyURL() (r string, exists bool) {
	v := m.proxy_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProxyURL returns the old "proxy_url" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldProxyURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProxyURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProxyURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProxyURL: %w", err)
	}
	return oldValue.ProxyURL, nil
}

// ClearProxyURL clears the value of the "proxy_url" field.
func (m *ApiRequestMutation) ClearProxyURL() {
	m.proxy_url = nil
	m.clearedFields[apirequest.FieldProxyURL] = struct{}{}
}

// ProxyURLCleared returns if the "proxy_url" field was cleared in this mutation.
func (m *ApiRequestMutation) ProxyURLCleared() bool {
	_, ok := m.clearedFields[apirequest.FieldProxyURL]
	return ok
}

// ResetProxyURL resets all changes to the "proxy_url" field.
func (m *ApiRequestMutation) ResetProxyURL() {
	m.proxy_url = nil
	delete(m.clearedFields, apirequest.FieldProxyURL)
}

// SetSort sets the "sort" field.
func (m *ApiRequestMutation) SetSort(i int) {
	m.sort = &i
	m.addsort = nil
}

// Sort returns the value of the "sort" field in the mutation.
func (m *ApiRequestMutation) Sort() (r int, exists bool) {
	v := m.sort
	if v == nil {
		return
	}
	return *v, true
}

// OldSort returns the old "sort" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldSort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSort: %w", err)
	}
	return oldValue.Sort, nil
}

// AddSort adds i to the "sort" field.
func (m *ApiRequestMutation) AddSort(i int) {
	if m.addsort != nil {
		*m.addsort += i
	} else {
		m.addsort = &i
	}
}

// AddedSort returns the value that was added to the "sort" field in this mutation.
func (m *ApiRequestMutation) AddedSort() (r int, exists bool) {
	v := m.addsort
	if v == nil {
		return
	}
	return *v, true
}

// ResetSort resets all changes to the "sort" field.
func (m *ApiRequestMutation) ResetSort() {
	m.sort = nil
	m.addsort = nil
}

// SetExecuteCount sets the "execute_count" field.
func (m *ApiRequestMutation) SetExecuteCount(i int) {
	m.execute_count = &i
	m.addexecute_count = nil
}

// ExecuteCount returns the value of the "execute_count" field in the mutation.
func (m *ApiRequestMutation) ExecuteCount() (r int, exists bool) {
	v := m.execute_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExecuteCount returns the old "execute_count" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldExecuteCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecuteCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecuteCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecuteCount: %w", err)
	}
	return oldValue.ExecuteCount, nil
}

// AddExecuteCount adds i to the "execute_count" field.
func (m *ApiRequestMutation) AddExecuteCount(i int) {
	if m.addexecute_count != nil {
		*m.addexecute_count += i
	} else {
		m.addexecute_count = &i
	}
}

// AddedExecuteCount returns the value that was added to the "execute_count" field in this mutation.
func (m *ApiRequestMutation) AddedExecuteCount() (r int, exists bool) {
	v := m.addexecute_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecuteCount resets all changes to the "execute_count" field.
func (m *ApiRequestMutation) ResetExecuteCount() {
	m.execute_count = nil
	m.addexecute_count = nil
}

// SetDatasetRunMode sets the "dataset_run_mode" field.
func (m *ApiRequestMutation) SetDatasetRunMode(arm apirequest.DatasetRunMode) {
	m.dataset_run_mode = &arm
}

// DatasetRunMode returns the value of the "dataset_run_mode" field in the mutation.
func (m *ApiRequestMutation) DatasetRunMode() (r apirequest.DatasetRunMode, exists bool) {
	v := m.dataset_run_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetRunMode returns the old "dataset_run_mode" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldDatasetRunMode(ctx context.Context) (v apirequest.DatasetRunMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetRunMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetRunMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetRunMode: %w", err)
	}
	return oldValue.DatasetRunMode, nil
}

// ResetDatasetRunMode resets all changes to the "dataset_run_mode" field.
func (m *ApiRequestMutation) ResetDatasetRunMode() {
	m.dataset_run_mode = nil
}

// SetDefaultDatasetID sets the "default_dataset_id" field.
func (m *ApiRequestMutation) SetDefaultDatasetID(i int64) {
	m.default_dataset_id = &i
	m.adddefault_dataset_id = nil
}

// DefaultDatasetID returns the value of the "default_dataset_id" field in the mutation.
func (m *ApiRequestMutation) DefaultDatasetID() (r int64, exists bool) {
	v := m.default_dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultDatasetID returns the old "default_dataset_id" field's value of the ApiRequest entity.
// If the ApiRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiRequestMutation) OldDefaultDatasetID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultDatasetID: %w", err)
	}
	return oldValue.DefaultDatasetID, nil
}

// AddDefaultDatasetID adds i to the "default_dataset_id" field.
func (m *ApiRequestMutation) AddDefaultDatasetID(i int64) {
	if m.adddefault_dataset_id != nil {
		*m.adddefault_dataset_id += i
	} else {
		m.adddefault_dataset_id = &i
	}
}

// AddedDefaultDatasetID returns the value that was added to the "default_dataset_id" field in this mutation.
func (m *ApiRequestMutation) AddedDefaultDatasetID() (r int64, exists bool) {
	v := m.adddefault_dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDefaultDatasetID clears the value of the "default_dataset_id" field.
func (m *ApiRequestMutation) ClearDefaultDatasetID() {
	m.default_dataset_id = nil
	m.adddefault_dataset_id = nil
	m.clearedFields[apirequest.FieldDefaultDatasetID] = struct{}{}
}

// DefaultDatasetIDCleared returns if the "default_dataset_id" field was cleared in this mutation.
func (m *ApiRequestMutation) DefaultDatasetIDCleared() bool {
	_, ok := m.clearedFields[apirequest.FieldDefaultDatasetID]
	return ok
}

// ResetDefaultDatasetID resets all changes to the "default_dataset_id" field.
func (m *ApiRequestMutation) ResetDefaultDatasetID() {
	m.default_dataset_id = nil
	m.adddefault_dataset_id = nil
	delete(m.clearedFields, apirequest.FieldDefaultDatasetID)
}

// Where appends a list predicates to the ApiRequestMutation builder.
func (m *ApiRequestMutation) Where(ps ...predicate.ApiRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApiRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApiRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApiRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApiRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApiRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApiRequest).
func (m *ApiRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApiRequestMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.create_time != nil {
		fields = append(fields, apirequest.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, apirequest.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, apirequest.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, apirequest.FieldStatus)
	}
	if m.env_id != nil {
		fields = append(fields, apirequest.FieldEnvID)
	}
	if m.name != nil {
		fields = append(fields, apirequest.FieldName)
	}
	if m.method != nil {
		fields = append(fields, apirequest.FieldMethod)
	}
	if m.url != nil {
		fields = append(fields, apirequest.FieldURL)
	}
	if m.remark != nil {
		fields = append(fields, apirequest.FieldRemark)
	}
	if m.base_query_params != nil {
		fields = append(fields, apirequest.FieldBaseQueryParams)
	}
	if m.base_headers != nil {
		fields = append(fields, apirequest.FieldBaseHeaders)
	}
	if m.base_cookies != nil {
		fields = append(fields, apirequest.FieldBaseCookies)
	}
	if m.body_type != nil {
		fields = append(fields, apirequest.FieldBodyType)
	}
	if m.base_body_data != nil {
		fields = append(fields, apirequest.FieldBaseBodyData)
	}
	if m.base_body_raw != nil {
		fields = append(fields, apirequest.FieldBaseBodyRaw)
	}
	if m.timeout_ms != nil {
		fields = append(fields, apirequest.FieldTimeoutMs)
	}
	if m.follow_redirects != nil {
		fields = append(fields, apirequest.FieldFollowRedirects)
	}
	if m.verify_ssl != nil {
		fields = append(fields, apirequest.FieldVerifySsl)
	}
	if m.proxy_url != nil {
		fields = append(fields, apirequest.FieldProxyURL)
	}
	if m.sort != nil {
		fields = append(fields, apirequest.FieldSort)
	}
	if m.execute_count != nil {
		fields = append(fields, apirequest.FieldExecuteCount)
	}
	if m.dataset_run_mode != nil {
		fields = append(fields, apirequest.FieldDatasetRunMode)
	}
	if m.default_dataset_id != nil {
		fields = append(fields, apirequest.FieldDefaultDatasetID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApiRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apirequest.FieldCreateTime:
		return m.CreateTime()
	case apirequest.FieldUpdateTime:
		return m.UpdateTime()
	case apirequest.FieldIsDeleted:
		return m.IsDeleted()
	case apirequest.FieldStatus:
		return m.Status()
	case apirequest.FieldEnvID:
		return m.EnvID()
	case apirequest.FieldName:
		return m.Name()
	case apirequest.FieldMethod:
		return m.Method()
	case apirequest.FieldURL:
		return m.URL()
	case apirequest.FieldRemark:
		return m.Remark()
	case apirequest.FieldBaseQueryParams:
		return m.BaseQueryParams()
	case apirequest.FieldBaseHeaders:
		return m.BaseHeaders()
	case apirequest.FieldBaseCookies:
		return m.BaseCookies()
	case apirequest.FieldBodyType:
		return m.BodyType()
	case apirequest.FieldBaseBodyData:
		return m.BaseBodyData()
	case apirequest.FieldBaseBodyRaw:
		return m.BaseBodyRaw()
	case apirequest.FieldTimeoutMs:
		return m.TimeoutMs()
	case apirequest.FieldFollowRedirects:
		return m.FollowRedirects()
	case apirequest.FieldVerifySsl:
		return m.VerifySsl()
	case apirequest.FieldProxyURL:
		return m.ProxyURL()
	case apirequest.FieldSort:
		return m.Sort()
	case apirequest.FieldExecuteCount:
		return m.ExecuteCount()
	case apirequest.FieldDatasetRunMode:
		return m.DatasetRunMode()
	case apirequest.FieldDefaultDatasetID:
		return m.DefaultDatasetID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApiRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apirequest.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case apirequest.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case apirequest.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case apirequest.FieldStatus:
		return m.OldStatus(ctx)
	case apirequest.FieldEnvID:
		return m.OldEnvID(ctx)
	case apirequest.FieldName:
		return m.OldName(ctx)
	case apirequest.FieldMethod:
		return m.OldMethod(ctx)
	case apirequest.FieldURL:
		return m.OldURL(ctx)
	case apirequest.FieldRemark:
		return m.OldRemark(ctx)
	case apirequest.FieldBaseQueryParams:
		return m.OldBaseQueryParams(ctx)
	case apirequest.FieldBaseHeaders:
		return m.OldBaseHeaders(ctx)
	case apirequest.FieldBaseCookies:
		return m.OldBaseCookies(ctx)
	case apirequest.FieldBodyType:
		return m.OldBodyType(ctx)
	case apirequest.FieldBaseBodyData:
		return m.OldBaseBodyData(ctx)
	case apirequest.FieldBaseBodyRaw:
		return m.OldBaseBodyRaw(ctx)
	case apirequest.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case apirequest.FieldFollowRedirects:
		return m.OldFollowRedirects(ctx)
	case apirequest.FieldVerifySsl:
		return m.OldVerifySsl(ctx)
	case apirequest.FieldProxyURL:
		return m.OldProxyURL(ctx)
	case apirequest.FieldSort:
		return m.OldSort(ctx)
	case apirequest.FieldExecuteCount:
		return m.OldExecuteCount(ctx)
	case apirequest.FieldDatasetRunMode:
		return m.OldDatasetRunMode(ctx)
	case apirequest.FieldDefaultDatasetID:
		return m.OldDefaultDatasetID(ctx)
	}
	return nil, fmt.Errorf("unknown ApiRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apirequest.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case apirequest.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case apirequest.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case apirequest.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case apirequest.FieldEnvID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvID(v)
		return nil
	case apirequest.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case apirequest.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case apirequest.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case apirequest.FieldRemark:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemark(v)
		return nil
	case apirequest.FieldBaseQueryParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseQueryParams(v)
		return nil
	case apirequest.FieldBaseHeaders:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseHeaders(v)
		return nil
	case apirequest.FieldBaseCookies:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseCookies(v)
		return nil
	case apirequest.FieldBodyType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyType(v)
		return nil
	case apirequest.FieldBaseBodyData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBodyData(v)
		return nil
	case apirequest.FieldBaseBodyRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBodyRaw(v)
		return nil
	case apirequest.FieldTimeoutMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case apirequest.FieldFollowRedirects:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowRedirects(v)
		return nil
	case apirequest.FieldVerifySsl:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifySsl(v)
		return nil
	case apirequest.FieldProxyURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProxyURL(v)
		return nil
	case apirequest.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSort(v)
		return nil
	case apirequest.FieldExecuteCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecuteCount(v)
		return nil
	case apirequest.FieldDatasetRunMode:
		v, ok := value.(apirequest.DatasetRunMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetRunMode(v)
		return nil
	case apirequest.FieldDefaultDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultDatasetID(v)
		return nil
	}
	return fmt.Errorf("unknown ApiRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApiRequestMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, apirequest.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, apirequest.FieldStatus)
	}
	if m.addenv_id != nil {
		fields = append(fields, apirequest.FieldEnvID)
	}
	if m.addtimeout_ms != nil {
		fields = append(fields, apirequest.FieldTimeoutMs)
	}
	if m.addsort != nil {
		fields = append(fields, apirequest.FieldSort)
	}
	if m.addexecute_count != nil {
		fields = append(fields, apirequest.FieldExecuteCount)
	}
	if m.adddefault_dataset_id != nil {
		fields = append(fields, apirequest.FieldDefaultDatasetID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApiRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apirequest.FieldIsDeleted:
		return m.AddedIsDeleted()
	case apirequest.FieldStatus:
		return m.AddedStatus()
	case apirequest.FieldEnvID:
		return m.AddedEnvID()
	case apirequest.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	case apirequest.FieldSort:
		return m.AddedSort()
	case apirequest.FieldExecuteCount:
		return m.AddedExecuteCount()
	case apirequest.FieldDefaultDatasetID:
		return m.AddedDefaultDatasetID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apirequest.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case apirequest.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case apirequest.FieldEnvID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnvID(v)
		return nil
	case apirequest.FieldTimeoutMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	case apirequest.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSort(v)
		return nil
	case apirequest.FieldExecuteCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecuteCount(v)
		return nil
	case apirequest.FieldDefaultDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultDatasetID(v)
		return nil
	}
	return fmt.Errorf("unknown ApiRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApiRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apirequest.FieldEnvID) {
		fields = append(fields, apirequest.FieldEnvID)
	}
	if m.FieldCleared(apirequest.FieldRemark) {
		fields = append(fields, apirequest.FieldRemark)
	}
	if m.FieldCleared(apirequest.FieldBaseBodyRaw) {
		fields = append(fields, apirequest.FieldBaseBodyRaw)
	}
	if m.FieldCleared(apirequest.FieldProxyURL) {
		fields = append(fields, apirequest.FieldProxyURL)
	}
	if m.FieldCleared(apirequest.FieldDefaultDatasetID) {
		fields = append(fields, apirequest.FieldDefaultDatasetID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApiRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApiRequestMutation) ClearField(name string) error {
	switch name {
	case apirequest.FieldEnvID:
		m.ClearEnvID()
		return nil
	case apirequest.FieldRemark:
		m.ClearRemark()
		return nil
	case apirequest.FieldBaseBodyRaw:
		m.ClearBaseBodyRaw()
		return nil
	case apirequest.FieldProxyURL:
		m.ClearProxyURL()
		return nil
	case apirequest.FieldDefaultDatasetID:
		m.ClearDefaultDatasetID()
		return nil
	}
	return fmt.Errorf("unknown ApiRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApiRequestMutation) ResetField(name string) error {
	switch name {
	case apirequest.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case apirequest.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case apirequest.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case apirequest.FieldStatus:
		m.ResetStatus()
		return nil
	case apirequest.FieldEnvID:
		m.ResetEnvID()
		return nil
	case apirequest.FieldName:
		m.ResetName()
		return nil
	case apirequest.FieldMethod:
		m.ResetMethod()
		return nil
	case apirequest.FieldURL:
		m.ResetURL()
		return nil
	case apirequest.FieldRemark:
		m.ResetRemark()
		return nil
	case apirequest.FieldBaseQueryParams:
		m.ResetBaseQueryParams()
		return nil
	case apirequest.FieldBaseHeaders:
		m.ResetBaseHeaders()
		return nil
	case apirequest.FieldBaseCookies:
		m.ResetBaseCookies()
		return nil
	case apirequest.FieldBodyType:
		m.ResetBodyType()
		return nil
	case apirequest.FieldBaseBodyData:
		m.ResetBaseBodyData()
		return nil
	case apirequest.FieldBaseBodyRaw:
		m.ResetBaseBodyRaw()
		return nil
	case apirequest.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case apirequest.FieldFollowRedirects:
		m.ResetFollowRedirects()
		return nil
	case apirequest.FieldVerifySsl:
		m.ResetVerifySsl()
		return nil
	case apirequest.FieldProxyURL:
		m.ResetProxyURL()
		return nil
	case apirequest.FieldSort:
		m.ResetSort()
		return nil
	case apirequest.FieldExecuteCount:
		m.ResetExecuteCount()
		return nil
	case apirequest.FieldDatasetRunMode:
		m.ResetDatasetRunMode()
		return nil
	case apirequest.FieldDefaultDatasetID:
		m.ResetDefaultDatasetID()
		return nil
	}
	return fmt.Errorf("unknown ApiRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApiRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApiRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApiRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApiRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApiRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApiRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApiRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApiRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApiRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApiRequest edge %s", name)
}

// AssertRuleMutation represents an operation that mutates the AssertRule nodes in the graph.
type AssertRuleMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int64
	create_time          *time.Time
	update_time          *time.Time
	is_deleted           *int64
	addis_deleted        *int64
	status               *int
	addstatus            *int
	request_id           *int64
	addrequest_id        *int64
	dataset_id           *int64
	adddataset_id        *int64
	assert_type          *assertrule.AssertType
	source_expr          *string
	comparator           *assertrule.Comparator
	expected_value       *json.RawMessage
	appendexpected_value json.RawMessage
	message              *string
	is_enabled           *bool
	sort                 *int
	addsort              *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*AssertRule, error)
	predicates           []predicate.AssertRule
}

var _ ent.Mutation = (*AssertRuleMutation)(nil)

// assertruleOption allows management of the mutation configuration using functional options.
type assertruleOption func(*AssertRuleMutation)

// newAssertRuleMutation creates new mutation for the AssertRule entity.
func newAssertRuleMutation(c config, op Op, opts ...assertruleOption) *AssertRuleMutation {
	m := &AssertRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeAssertRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssertRuleID sets the ID field of the mutation.
func withAssertRuleID(id int64) assertruleOption {
	return func(m *AssertRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *AssertRule
		)
		m.oldValue = func(ctx context.Context) (*AssertRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssertRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssertRule sets the old AssertRule of the mutation.
func withAssertRule(node *AssertRule) assertruleOption {
	return func(m *AssertRuleMutation) {
		m.oldValue = func(context.Context) (*AssertRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssertRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssertRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AssertRule entities.
func (m *AssertRuleMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssertRuleMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssertRuleMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssertRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *AssertRuleMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *AssertRuleMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *AssertRuleMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *AssertRuleMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *AssertRuleMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *AssertRuleMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *AssertRuleMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *AssertRuleMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *AssertRuleMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *AssertRuleMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *AssertRuleMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *AssertRuleMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *AssertRuleMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *AssertRuleMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *AssertRuleMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *AssertRuleMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetRequestID sets the "request_id" field.
func (m *AssertRuleMutation) SetRequestID(i int64) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AssertRuleMutation) RequestID() (r int64, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldRequestID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *AssertRuleMutation) AddRequestID(i int64) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *AssertRuleMutation) AddedRequestID() (r int64, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AssertRuleMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *AssertRuleMutation) SetDatasetID(i int64) {
	m.dataset_id = &i
	m.adddataset_id = nil
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *AssertRuleMutation) DatasetID() (r int64, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldDatasetID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// AddDatasetID adds i to the "dataset_id" field.
func (m *AssertRuleMutation) AddDatasetID(i int64) {
	if m.adddataset_id != nil {
		*m.adddataset_id += i
	} else {
		m.adddataset_id = &i
	}
}

// AddedDatasetID returns the value that was added to the "dataset_id" field in this mutation.
func (m *AssertRuleMutation) AddedDatasetID() (r int64, exists bool) {
	v := m.adddataset_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (m *AssertRuleMutation) ClearDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	m.clearedFields[assertrule.FieldDatasetID] = struct{}{}
}

// DatasetIDCleared returns if the "dataset_id" field was cleared in this mutation.
func (m *AssertRuleMutation) DatasetIDCleared() bool {
	_, ok := m.clearedFields[assertrule.FieldDatasetID]
	return ok
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *AssertRuleMutation) ResetDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	delete(m.clearedFields, assertrule.FieldDatasetID)
}

// SetAssertType sets the "assert_type" field.
func (m *AssertRuleMutation) SetAssertType(at assertrule.AssertType) {
	m.assert_type = &at
}

// AssertType returns the value of the "assert_type" field in the mutation.
func (m *AssertRuleMutation) AssertType() (r assertrule.AssertType, exists bool) {
	v := m.assert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAssertType returns the old "assert_type" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldAssertType(ctx context.Context) (v assertrule.AssertType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssertType: %w", err)
	}
	return oldValue.AssertType, nil
}

// ResetAssertType resets all changes to the "assert_type" field.
func (m *AssertRuleMutation) ResetAssertType() {
	m.assert_type = nil
}

// SetSourceExpr sets the "source_expr" field.
func (m *AssertRuleMutation) SetSourceExpr(s string) {
	m.source_expr = &s
}

// SourceExpr returns the value of the "source_expr" field in the mutation.
func (m *AssertRuleMutation) SourceExpr() (r string, exists bool) {
	v := m.source_expr
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceExpr returns the old "source_expr" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldSourceExpr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceExpr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceExpr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceExpr: %w", err)
	}
	return oldValue.SourceExpr, nil
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (m *AssertRuleMutation) ClearSourceExpr() {
	m.source_expr = nil
	m.clearedFields[assertrule.FieldSourceExpr] = struct{}{}
}

// SourceExprCleared returns if the "source_expr" field was cleared in this mutation.
func (m *AssertRuleMutation) SourceExprCleared() bool {
	_, ok := m.clearedFields[assertrule.FieldSourceExpr]
	return ok
}

// ResetSourceExpr resets all changes to the "source_expr" field.
func (m *AssertRuleMutation) ResetSourceExpr() {
	m.source_expr = nil
	delete(m.clearedFields, assertrule.FieldSourceExpr)
}

// SetComparator sets the "comparator" field.
func (m *AssertRuleMutation) SetComparator(a assertrule.Comparator) {
	m.comparator = &a
}

// Comparator returns the value of the "comparator" field in the mutation.
func (m *AssertRuleMutation) Comparator() (r assertrule.Comparator, exists bool) {
	v := m.comparator
	if v == nil {
		return
	}
	return *v, true
}

// OldComparator returns the old "comparator" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldComparator(ctx context.Context) (v assertrule.Comparator, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComparator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComparator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComparator: %w", err)
	}
	return oldValue.Comparator, nil
}

// ResetComparator resets all changes to the "comparator" field.
func (m *AssertRuleMutation) ResetComparator() {
	m.comparator = nil
}

// SetExpectedValue sets the "expected_value" field.
func (m *AssertRuleMutation) SetExpectedValue(jm json.RawMessage) {
	m.expected_value = &jm
	m.appendexpected_value = nil
}

// ExpectedValue returns the value of the "expected_value" field in the mutation.
func (m *AssertRuleMutation) ExpectedValue() (r json.RawMessage, exists bool) {
	v := m.expected_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedValue returns the old "expected_value" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldExpectedValue(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedValue: %w", err)
	}
	return oldValue.ExpectedValue, nil
}

// AppendExpectedValue adds jm to the "expected_value" field.
func (m *AssertRuleMutation) AppendExpectedValue(jm json.RawMessage) {
	m.appendexpected_value = append(m.appendexpected_value, jm...)
}

// AppendedExpectedValue returns the list of values that were appended to the "expected_value" field in this mutation.
func (m *AssertRuleMutation) AppendedExpectedValue() (json.RawMessage, bool) {
	if len(m.appendexpected_value) == 0 {
		return nil, false
	}
	return m.appendexpected_value, true
}

// ClearExpectedValue clears the value of the "expected_value" field.
func (m *AssertRuleMutation) ClearExpectedValue() {
	m.expected_value = nil
	m.appendexpected_value = nil
	m.clearedFields[assertrule.FieldExpectedValue] = struct{}{}
}

// ExpectedValueCleared returns if the "expected_value" field was cleared in this mutation.
func (m *AssertRuleMutation) ExpectedValueCleared() bool {
	_, ok := m.clearedFields[assertrule.FieldExpectedValue]
	return ok
}

// ResetExpectedValue resets all changes to the "expected_value" field.
func (m *AssertRuleMutation) ResetExpectedValue() {
	m.expected_value = nil
	m.appendexpected_value = nil
	delete(m.clearedFields, assertrule.FieldExpectedValue)
}

// SetMessage sets the "message" field.
func (m *AssertRuleMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AssertRuleMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *AssertRuleMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[assertrule.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *AssertRuleMutation) MessageCleared() bool {
	_, ok := m.clearedFields[assertrule.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *AssertRuleMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, assertrule.FieldMessage)
}

// SetIsEnabled sets the "is_enabled" field.
func (m *AssertRuleMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *AssertRuleMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *AssertRuleMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetSort sets the "sort" field.
func (m *AssertRuleMutation) SetSort(i int) {
	m.sort = &i
	m.addsort = nil
}

// Sort returns the value of the "sort" field in the mutation.
func (m *AssertRuleMutation) Sort() (r int, exists bool) {
	v := m.sort
	if v == nil {
		return
	}
	return *v, true
}

// OldSort returns the old "sort" field's value of the AssertRule entity.
// If the AssertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssertRuleMutation) OldSort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSort: %w", err)
	}
	return oldValue.Sort, nil
}

// AddSort adds i to the "sort" field.
func (m *AssertRuleMutation) AddSort(i int) {
	if m.addsort != nil {
		*m.addsort += i
	} else {
		m.addsort = &i
	}
}

// AddedSort returns the value that was added to the "sort" field in this mutation.
func (m *AssertRuleMutation) AddedSort() (r int, exists bool) {
	v := m.addsort
	if v == nil {
		return
	}
	return *v, true
}

// ResetSort resets all changes to the "sort" field.
func (m *AssertRuleMutation) ResetSort() {
	m.sort = nil
	m.addsort = nil
}

// Where appends a list predicates to the AssertRuleMutation builder.
func (m *AssertRuleMutation) Where(ps ...predicate.AssertRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssertRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssertRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssertRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssertRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssertRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssertRule).
func (m *AssertRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssertRuleMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.create_time != nil {
		fields = append(fields, assertrule.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, assertrule.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, assertrule.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, assertrule.FieldStatus)
	}
	if m.request_id != nil {
		fields = append(fields, assertrule.FieldRequestID)
	}
	if m.dataset_id != nil {
		fields = append(fields, assertrule.FieldDatasetID)
	}
	if m.assert_type != nil {
		fields = append(fields, assertrule.FieldAssertType)
	}
	if m.source_expr != nil {
		fields = append(fields, assertrule.FieldSourceExpr)
	}
	if m.comparator != nil {
		fields = append(fields, assertrule.FieldComparator)
	}
	if m.expected_value != nil {
		fields = append(fields, assertrule.FieldExpectedValue)
	}
	if m.message != nil {
		fields = append(fields, assertrule.FieldMessage)
	}
	if m.is_enabled != nil {
		fields = append(fields, assertrule.FieldIsEnabled)
	}
	if m.sort != nil {
		fields = append(fields, assertrule.FieldSort)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssertRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assertrule.FieldCreateTime:
		return m.CreateTime()
	case assertrule.FieldUpdateTime:
		return m.UpdateTime()
	case assertrule.FieldIsDeleted:
		return m.IsDeleted()
	case assertrule.FieldStatus:
		return m.Status()
	case assertrule.FieldRequestID:
		return m.RequestID()
	case assertrule.FieldDatasetID:
		return m.DatasetID()
	case assertrule.FieldAssertType:
		return m.AssertType()
	case assertrule.FieldSourceExpr:
		return m.SourceExpr()
	case assertrule.FieldComparator:
		return m.Comparator()
	case assertrule.FieldExpectedValue:
		return m.ExpectedValue()
	case assertrule.FieldMessage:
		return m.Message()
	case assertrule.FieldIsEnabled:
		return m.IsEnabled()
	case assertrule.FieldSort:
		return m.Sort()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssertRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assertrule.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case assertrule.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case assertrule.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case assertrule.FieldStatus:
		return m.OldStatus(ctx)
	case assertrule.FieldRequestID:
		return m.OldRequestID(ctx)
	case assertrule.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case assertrule.FieldAssertType:
		return m.OldAssertType(ctx)
	case assertrule.FieldSourceExpr:
		return m.OldSourceExpr(ctx)
	case assertrule.FieldComparator:
		return m.OldComparator(ctx)
	case assertrule.FieldExpectedValue:
		return m.OldExpectedValue(ctx)
	case assertrule.FieldMessage:
		return m.OldMessage(ctx)
	case assertrule.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case assertrule.FieldSort:
		return m.OldSort(ctx)
	}
	return nil, fmt.Errorf("unknown AssertRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssertRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assertrule.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case assertrule.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case assertrule.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case assertrule.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case assertrule.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case assertrule.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case assertrule.FieldAssertType:
		v, ok := value.(assertrule.AssertType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssertType(v)
		return nil
	case assertrule.FieldSourceExpr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceExpr(v)
		return nil
	case assertrule.FieldComparator:
		v, ok := value.(assertrule.Comparator)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComparator(v)
		return nil
	case assertrule.FieldExpectedValue:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedValue(v)
		return nil
	case assertrule.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case assertrule.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case assertrule.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSort(v)
		return nil
	}
	return fmt.Errorf("unknown AssertRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssertRuleMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, assertrule.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, assertrule.FieldStatus)
	}
	if m.addrequest_id != nil {
		fields = append(fields, assertrule.FieldRequestID)
	}
	if m.adddataset_id != nil {
		fields = append(fields, assertrule.FieldDatasetID)
	}
	if m.addsort != nil {
		fields = append(fields, assertrule.FieldSort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssertRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assertrule.FieldIsDeleted:
		return m.AddedIsDeleted()
	case assertrule.FieldStatus:
		return m.AddedStatus()
	case assertrule.FieldRequestID:
		return m.AddedRequestID()
	case assertrule.FieldDatasetID:
		return m.AddedDatasetID()
	case assertrule.FieldSort:
		return m.AddedSort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssertRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assertrule.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case assertrule.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case assertrule.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case assertrule.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDatasetID(v)
		return nil
	case assertrule.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSort(v)
		return nil
	}
	return fmt.Errorf("unknown AssertRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssertRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assertrule.FieldDatasetID) {
		fields = append(fields, assertrule.FieldDatasetID)
	}
	if m.FieldCleared(assertrule.FieldSourceExpr) {
		fields = append(fields, assertrule.FieldSourceExpr)
	}
	if m.FieldCleared(assertrule.FieldExpectedValue) {
		fields = append(fields, assertrule.FieldExpectedValue)
	}
	if m.FieldCleared(assertrule.FieldMessage) {
		fields = append(fields, assertrule.FieldMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssertRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssertRuleMutation) ClearField(name string) error {
	switch name {
	case assertrule.FieldDatasetID:
		m.ClearDatasetID()
		return nil
	case assertrule.FieldSourceExpr:
		m.ClearSourceExpr()
		return nil
	case assertrule.FieldExpectedValue:
		m.ClearExpectedValue()
		return nil
	case assertrule.FieldMessage:
		m.ClearMessage()
		return nil
	}
	return fmt.Errorf("unknown AssertRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssertRuleMutation) ResetField(name string) error {
	switch name {
	case assertrule.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case assertrule.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case assertrule.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case assertrule.FieldStatus:
		m.ResetStatus()
		return nil
	case assertrule.FieldRequestID:
		m.ResetRequestID()
		return nil
	case assertrule.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case assertrule.FieldAssertType:
		m.ResetAssertType()
		return nil
	case assertrule.FieldSourceExpr:
		m.ResetSourceExpr()
		return nil
	case assertrule.FieldComparator:
		m.ResetComparator()
		return nil
	case assertrule.FieldExpectedValue:
		m.ResetExpectedValue()
		return nil
	case assertrule.FieldMessage:
		m.ResetMessage()
		return nil
	case assertrule.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case assertrule.FieldSort:
		m.ResetSort()
		return nil
	}
	return fmt.Errorf("unknown AssertRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssertRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssertRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssertRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssertRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssertRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssertRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssertRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssertRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssertRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssertRule edge %s", name)
}

// DatasetMutation represents an operation that mutates the Dataset nodes in the graph.
type DatasetMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	create_time   *time.Time
	update_time   *time.Time
	is_deleted    *int64
	addis_deleted *int64
	status        *int
	addstatus     *int
	request_id    *int64
	addrequest_id *int64
	name          *string
	remark        *string
	variables     *map[string]interface{}
	query_params  *map[string]interface{}
	headers       *map[string]interface{}
	cookies       *map[string]interface{}
	body_type     *string
	body_data     *map[string]interface{}
	body_raw      *string
	is_default    *bool
	is_enabled    *bool
	sort          *int
	addsort       *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Dataset, error)
	predicates    []predicate.Dataset
}

var _ ent.Mutation = (*DatasetMutation)(nil)

// datasetOption allows management of the mutation configuration using functional options.
type datasetOption func(*DatasetMutation)

// newDatasetMutation creates new mutation for the Dataset entity.
func newDatasetMutation(c config, op Op, opts ...datasetOption) *DatasetMutation {
	m := &DatasetMutation{
		config:        c,
		op:            op,
		typ:           TypeDataset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDatasetID sets the ID field of the mutation.
func withDatasetID(id int64) datasetOption {
	return func(m *DatasetMutation) {
		var (
			err   error
			once  sync.Once
			value *Dataset
		)
		m.oldValue = func(ctx context.Context) (*Dataset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Dataset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataset sets the old Dataset of the mutation.
func withDataset(node *Dataset) datasetOption {
	return func(m *DatasetMutation) {
		m.oldValue = func(context.Context) (*Dataset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DatasetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DatasetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Dataset entities.
func (m *DatasetMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DatasetMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DatasetMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Dataset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *DatasetMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *DatasetMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *DatasetMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *DatasetMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *DatasetMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *DatasetMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *DatasetMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *DatasetMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *DatasetMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *DatasetMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *DatasetMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *DatasetMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *DatasetMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *DatasetMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *DatasetMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *DatasetMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetRequestID sets the "request_id" field.
func (m *DatasetMutation) SetRequestID(i int64) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *DatasetMutation) RequestID() (r int64, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldRequestID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *DatasetMutation) AddRequestID(i int64) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *DatasetMutation) AddedRequestID() (r int64, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *DatasetMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetName sets the "name" field.
func (m *DatasetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DatasetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DatasetMutation) ResetName() {
	m.name = nil
}

// SetRemark sets the "remark" field.
func (m *DatasetMutation) SetRemark(s string) {
	m.remark = &s
}

// Remark returns the value of the "remark" field in the mutation.
func (m *DatasetMutation) Remark() (r string, exists bool) {
	v := m.remark
	if v == nil {
		return
	}
	return *v, true
}

// OldRemark returns the old "remark" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldRemark(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemark: %w", err)
	}
	return oldValue.Remark, nil
}

// ClearRemark clears the value of the "remark" field.
func (m *DatasetMutation) ClearRemark() {
	m.remark = nil
	m.clearedFields[dataset.FieldRemark] = struct{}{}
}

// RemarkCleared returns if the "remark" field was cleared in this mutation.
func (m *DatasetMutation) RemarkCleared() bool {
	_, ok := m.clearedFields[dataset.FieldRemark]
	return ok
}

// ResetRemark resets all changes to the "remark" field.
func (m *DatasetMutation) ResetRemark() {
	m.remark = nil
	delete(m.clearedFields, dataset.FieldRemark)
}

// SetVariables sets the "variables" field.
func (m *DatasetMutation) SetVariables(value map[string]interface{}) {
	m.variables = &value
}

// Variables returns the value of the "variables" field in the mutation.
func (m *DatasetMutation) Variables() (r map[string]interface{}, exists bool) {
	v := m.variables
	if v == nil {
		return
	}
	return *v, true
}

// OldVariables returns the old "variables" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldVariables(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariables: %w", err)
	}
	return oldValue.Variables, nil
}

// ResetVariables resets all changes to the "variables" field.
func (m *DatasetMutation) ResetVariables() {
	m.variables = nil
}

// SetQueryParams sets the "query_params" field.
func (m *DatasetMutation) SetQueryParams(value map[string]interface{}) {
	m.query_params = &value
}

// QueryParams returns the value of the "query_params" field in the mutation.
func (m *DatasetMutation) QueryParams() (r map[string]interface{}, exists bool) {
	v := m.query_params
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryParams returns the old "query_params" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldQueryParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryParams: %w", err)
	}
	return oldValue.QueryParams, nil
}

// ResetQueryParams resets all changes to the "query_params" field.
func (m *DatasetMutation) ResetQueryParams() {
	m.query_params = nil
}

// SetHeaders sets the "headers" field.
func (m *DatasetMutation) SetHeaders(value map[string]interface{}) {
	m.headers = &value
}

// Headers returns the value of the "headers" field in the mutation.
func (m *DatasetMutation) Headers() (r map[string]interface{}, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldHeaders(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ResetHeaders resets all changes to the "headers" field.
func (m *DatasetMutation) ResetHeaders() {
	m.headers = nil
}

// SetCookies sets the "cookies" field.
func (m *DatasetMutation) SetCookies(value map[string]interface{}) {
	m.cookies = &value
}

// Cookies returns the value of the "cookies" field in the mutation.
func (m *DatasetMutation) Cookies() (r map[string]interface{}, exists bool) {
	v := m.cookies
	if v == nil {
		return
	}
	return *v, true
}

// OldCookies returns the old "cookies" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldCookies(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCookies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCookies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCookies: %w", err)
	}
	return oldValue.Cookies, nil
}

// ResetCookies resets all changes to the "cookies" field.
func (m *DatasetMutation) ResetCookies() {
	m.cookies = nil
}

// SetBodyType sets the "body_type" field.
func (m *DatasetMutation) SetBodyType(s string) {
	m.body_type = &s
}

// BodyType returns the value of the "body_type" field in the mutation.
func (m *DatasetMutation) BodyType() (r string, exists bool) {
	v := m.body_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyType returns the old "body_type" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldBodyType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyType: %w", err)
	}
	return oldValue.BodyType, nil
}

// ClearBodyType clears the value of the "body_type" field.
func (m *DatasetMutation) ClearBodyType() {
	m.body_type = nil
	m.clearedFields[dataset.FieldBodyType] = struct{}{}
}

// BodyTypeCleared returns if the "body_type" field was cleared in this mutation.
func (m *DatasetMutation) BodyTypeCleared() bool {
	_, ok := m.clearedFields[dataset.FieldBodyType]
	return ok
}

// ResetBodyType resets all changes to the "body_type" field.
func (m *DatasetMutation) ResetBodyType() {
	m.body_type = nil
	delete(m.clearedFields, dataset.FieldBodyType)
}

// SetBodyData sets the "body_data" field.
func (m *DatasetMutation) SetBodyData(value map[string]interface{}) {
	m.body_data = &value
}

// BodyData returns the value of the "body_data" field in the mutation.
func (m *DatasetMutation) BodyData() (r map[string]interface{}, exists bool) {
	v := m.body_data
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyData returns the old "body_data" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldBodyData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyData: %w", err)
	}
	return oldValue.BodyData, nil
}

// ResetBodyData resets all changes to the "body_data" field.
func (m *DatasetMutation) ResetBodyData() {
	m.body_data = nil
}

// SetBodyRaw sets the "body_raw" field.
func (m *DatasetMutation) SetBodyRaw(s string) {
	m.body_raw = &s
}

// BodyRaw returns the value of the "body_raw" field in the mutation.
func (m *DatasetMutation) BodyRaw() (r string, exists bool) {
	v := m.body_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyRaw returns the old "body_raw" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldBodyRaw(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyRaw: %w", err)
	}
	return oldValue.BodyRaw, nil
}

// ClearBodyRaw clears the value of the "body_raw" field.
func (m *DatasetMutation) ClearBodyRaw() {
	m.body_raw = nil
	m.clearedFields[dataset.FieldBodyRaw] = struct{}{}
}

// BodyRawCleared returns if the "body_raw" field was cleared in this mutation.
func (m *DatasetMutation) BodyRawCleared() bool {
	_, ok := m.clearedFields[dataset.FieldBodyRaw]
	return ok
}

// ResetBodyRaw resets all changes to the "body_raw" field.
func (m *DatasetMutation) ResetBodyRaw() {
	m.body_raw = nil
	delete(m.clearedFields, dataset.FieldBodyRaw)
}

// SetIsDefault sets the "is_default" field.
func (m *DatasetMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *DatasetMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *DatasetMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *DatasetMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *DatasetMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *DatasetMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetSort sets the "sort" field.
func (m *DatasetMutation) SetSort(i int) {
	m.sort = &i
	m.addsort = nil
}

// Sort returns the value of the "sort" field in the mutation.
func (m *DatasetMutation) Sort() (r int, exists bool) {
	v := m.sort
	if v == nil {
		return
	}
	return *v, true
}

// OldSort returns the old "sort" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldSort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSort: %w", err)
	}
	return oldValue.Sort, nil
}

// AddSort adds i to the "sort" field.
func (m *DatasetMutation) AddSort(i int) {
	if m.addsort != nil {
		*m.addsort += i
	} else {
		m.addsort = &i
	}
}

// AddedSort returns the value that was added to the "sort" field in this mutation.
func (m *DatasetMutation) AddedSort() (r int, exists bool) {
	v := m.addsort
	if v == nil {
		return
	}
	return *v, true
}

// ResetSort resets all changes to the "sort" field.
func (m *DatasetMutation) ResetSort() {
	m.sort = nil
	m.addsort = nil
}

// Where appends a list predicates to the DatasetMutation builder.
func (m *DatasetMutation) Where(ps ...predicate.Dataset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DatasetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DatasetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Dataset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DatasetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DatasetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Dataset).
func (m *DatasetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DatasetMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.create_time != nil {
		fields = append(fields, dataset.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, dataset.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, dataset.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, dataset.FieldStatus)
	}
	if m.request_id != nil {
		fields = append(fields, dataset.FieldRequestID)
	}
	if m.name != nil {
		fields = append(fields, dataset.FieldName)
	}
	if m.remark != nil {
		fields = append(fields, dataset.FieldRemark)
	}
	if m.variables != nil {
		fields = append(fields, dataset.FieldVariables)
	}
	if m.query_params != nil {
		fields = append(fields, dataset.FieldQueryParams)
	}
	if m.headers != nil {
		fields = append(fields, dataset.FieldHeaders)
	}
	if m.cookies != nil {
		fields = append(fields, dataset.FieldCookies)
	}
	if m.body_type != nil {
		fields = append(fields, dataset.FieldBodyType)
	}
	if m.body_data != nil {
		fields = append(fields, dataset.FieldBodyData)
	}
	if m.body_raw != nil {
		fields = append(fields, dataset.FieldBodyRaw)
	}
	if m.is_default != nil {
		fields = append(fields, dataset.FieldIsDefault)
	}
	if m.is_enabled != nil {
		fields = append(fields, dataset.FieldIsEnabled)
	}
	if m.sort != nil {
		fields = append(fields, dataset.FieldSort)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DatasetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataset.FieldCreateTime:
		return m.CreateTime()
	case dataset.FieldUpdateTime:
		return m.UpdateTime()
	case dataset.FieldIsDeleted:
		return m.IsDeleted()
	case dataset.FieldStatus:
		return m.Status()
	case dataset.FieldRequestID:
		return m.RequestID()
	case dataset.FieldName:
		return m.Name()
	case dataset.FieldRemark:
		return m.Remark()
	case dataset.FieldVariables:
		return m.Variables()
	case dataset.FieldQueryParams:
		return m.QueryParams()
	case dataset.FieldHeaders:
		return m.Headers()
	case dataset.FieldCookies:
		return m.Cookies()
	case dataset.FieldBodyType:
		return m.BodyType()
	case dataset.FieldBodyData:
		return m.BodyData()
	case dataset.FieldBodyRaw:
		return m.BodyRaw()
	case dataset.FieldIsDefault:
		return m.IsDefault()
	case dataset.FieldIsEnabled:
		return m.IsEnabled()
	case dataset.FieldSort:
		return m.Sort()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DatasetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataset.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case dataset.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case dataset.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case dataset.FieldStatus:
		return m.OldStatus(ctx)
	case dataset.FieldRequestID:
		return m.OldRequestID(ctx)
	case dataset.FieldName:
		return m.OldName(ctx)
	case dataset.FieldRemark:
		return m.OldRemark(ctx)
	case dataset.FieldVariables:
		return m.OldVariables(ctx)
	case dataset.FieldQueryParams:
		return m.OldQueryParams(ctx)
	case dataset.FieldHeaders:
		return m.OldHeaders(ctx)
	case dataset.FieldCookies:
		return m.OldCookies(ctx)
	case dataset.FieldBodyType:
		return m.OldBodyType(ctx)
	case dataset.FieldBodyData:
		return m.OldBodyData(ctx)
	case dataset.FieldBodyRaw:
		return m.OldBodyRaw(ctx)
	case dataset.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case dataset.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case dataset.FieldSort:
		return m.OldSort(ctx)
	}
	return nil, fmt.Errorf("unknown Dataset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataset.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case dataset.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case dataset.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case dataset.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dataset.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case dataset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case dataset.FieldRemark:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemark(v)
		return nil
	case dataset.FieldVariables:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariables(v)
		return nil
	case dataset.FieldQueryParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryParams(v)
		return nil
	case dataset.FieldHeaders:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case dataset.FieldCookies:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCookies(v)
		return nil
	case dataset.FieldBodyType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyType(v)
		return nil
	case dataset.FieldBodyData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyData(v)
		return nil
	case dataset.FieldBodyRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyRaw(v)
		return nil
	case dataset.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case dataset.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case dataset.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSort(v)
		return nil
	}
	return fmt.Errorf("unknown Dataset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DatasetMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, dataset.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, dataset.FieldStatus)
	}
	if m.addrequest_id != nil {
		fields = append(fields, dataset.FieldRequestID)
	}
	if m.addsort != nil {
		fields = append(fields, dataset.FieldSort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DatasetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dataset.FieldIsDeleted:
		return m.AddedIsDeleted()
	case dataset.FieldStatus:
		return m.AddedStatus()
	case dataset.FieldRequestID:
		return m.AddedRequestID()
	case dataset.FieldSort:
		return m.AddedSort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dataset.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case dataset.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case dataset.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case dataset.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSort(v)
		return nil
	}
	return fmt.Errorf("unknown Dataset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DatasetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dataset.FieldRemark) {
		fields = append(fields, dataset.FieldRemark)
	}
	if m.FieldCleared(dataset.FieldBodyType) {
		fields = append(fields, dataset.FieldBodyType)
	}
	if m.FieldCleared(dataset.FieldBodyRaw) {
		fields = append(fields, dataset.FieldBodyRaw)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DatasetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DatasetMutation) ClearField(name string) error {
	switch name {
	case dataset.FieldRemark:
		m.ClearRemark()
		return nil
	case dataset.FieldBodyType:
		m.ClearBodyType()
		return nil
	case dataset.FieldBodyRaw:
		m.ClearBodyRaw()
		return nil
	}
	return fmt.Errorf("unknown Dataset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DatasetMutation) ResetField(name string) error {
	switch name {
	case dataset.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case dataset.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case dataset.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case dataset.FieldStatus:
		m.ResetStatus()
		return nil
	case dataset.FieldRequestID:
		m.ResetRequestID()
		return nil
	case dataset.FieldName:
		m.ResetName()
		return nil
	case dataset.FieldRemark:
		m.ResetRemark()
		return nil
	case dataset.FieldVariables:
		m.ResetVariables()
		return nil
	case dataset.FieldQueryParams:
		m.ResetQueryParams()
		return nil
	case dataset.FieldHeaders:
		m.ResetHeaders()
		return nil
	case dataset.FieldCookies:
		m.ResetCookies()
		return nil
	case dataset.FieldBodyType:
		m.ResetBodyType()
		return nil
	case dataset.FieldBodyData:
		m.ResetBodyData()
		return nil
	case dataset.FieldBodyRaw:
		m.ResetBodyRaw()
		return nil
	case dataset.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case dataset.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case dataset.FieldSort:
		m.ResetSort()
		return nil
	}
	return fmt.Errorf("unknown Dataset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DatasetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DatasetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DatasetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DatasetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DatasetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DatasetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DatasetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Dataset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DatasetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Dataset edge %s", name)
}

// EnvironmentMutation represents an operation that mutates the Environment nodes in the graph.
type EnvironmentMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	create_time   *time.Time
	update_time   *time.Time
	is_deleted    *int64
	addis_deleted *int64
	status        *int
	addstatus     *int
	name          *string
	variables     *map[string]interface{}
	is_default    *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Environment, error)
	predicates    []predicate.Environment
}

var _ ent.Mutation = (*EnvironmentMutation)(nil)

// environmentOption allows management of the mutation configuration using functional options.
type environmentOption func(*EnvironmentMutation)

// newEnvironmentMutation creates new mutation for the Environment entity.
func newEnvironmentMutation(c config, op Op, opts ...environmentOption) *EnvironmentMutation {
	m := &EnvironmentMutation{
		config:        c,
		op:            op,
		typ:           TypeEnvironment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnvironmentID sets the ID field of the mutation.
func withEnvironmentID(id int64) environmentOption {
	return func(m *EnvironmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Environment
		)
		m.oldValue = func(ctx context.Context) (*Environment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Environment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnvironment sets the old Environment of the mutation.
func withEnvironment(node *Environment) environmentOption {
	return func(m *EnvironmentMutation) {
		m.oldValue = func(context.Context) (*Environment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnvironmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnvironmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Environment entities.
func (m *EnvironmentMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnvironmentMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnvironmentMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Environment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *EnvironmentMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *EnvironmentMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *EnvironmentMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *EnvironmentMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *EnvironmentMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *EnvironmentMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *EnvironmentMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *EnvironmentMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *EnvironmentMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *EnvironmentMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *EnvironmentMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *EnvironmentMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *EnvironmentMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *EnvironmentMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *EnvironmentMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *EnvironmentMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetName sets the "name" field.
func (m *EnvironmentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EnvironmentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EnvironmentMutation) ResetName() {
	m.name = nil
}

// SetVariables sets the "variables" field.
func (m *EnvironmentMutation) SetVariables(value map[string]interface{}) {
	m.variables = &value
}

// Variables returns the value of the "variables" field in the mutation.
func (m *EnvironmentMutation) Variables() (r map[string]interface{}, exists bool) {
	v := m.variables
	if v == nil {
		return
	}
	return *v, true
}

// OldVariables returns the old "variables" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldVariables(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariables: %w", err)
	}
	return oldValue.Variables, nil
}

// ResetVariables resets all changes to the "variables" field.
func (m *EnvironmentMutation) ResetVariables() {
	m.variables = nil
}

// SetIsDefault sets the "is_default" field.
func (m *EnvironmentMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *EnvironmentMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the Environment entity.
// If the Environment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *EnvironmentMutation) ResetIsDefault() {
	m.is_default = nil
}

// Where appends a list predicates to the EnvironmentMutation builder.
func (m *EnvironmentMutation) Where(ps ...predicate.Environment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnvironmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnvironmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Environment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnvironmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnvironmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Environment).
func (m *EnvironmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnvironmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.create_time != nil {
		fields = append(fields, environment.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, environment.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, environment.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, environment.FieldStatus)
	}
	if m.name != nil {
		fields = append(fields, environment.FieldName)
	}
	if m.variables != nil {
		fields = append(fields, environment.FieldVariables)
	}
	if m.is_default != nil {
		fields = append(fields, environment.FieldIsDefault)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnvironmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case environment.FieldCreateTime:
		return m.CreateTime()
	case environment.FieldUpdateTime:
		return m.UpdateTime()
	case environment.FieldIsDeleted:
		return m.IsDeleted()
	case environment.FieldStatus:
		return m.Status()
	case environment.FieldName:
		return m.Name()
	case environment.FieldVariables:
		return m.Variables()
	case environment.FieldIsDefault:
		return m.IsDefault()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnvironmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case environment.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case environment.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case environment.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case environment.FieldStatus:
		return m.OldStatus(ctx)
	case environment.FieldName:
		return m.OldName(ctx)
	case environment.FieldVariables:
		return m.OldVariables(ctx)
	case environment.FieldIsDefault:
		return m.OldIsDefault(ctx)
	}
	return nil, fmt.Errorf("unknown Environment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvironmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case environment.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case environment.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case environment.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case environment.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case environment.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case environment.FieldVariables:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariables(v)
		return nil
	case environment.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	}
	return fmt.Errorf("unknown Environment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnvironmentMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, environment.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, environment.FieldStatus)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnvironmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case environment.FieldIsDeleted:
		return m.AddedIsDeleted()
	case environment.FieldStatus:
		return m.AddedStatus()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvironmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case environment.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case environment.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Environment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnvironmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnvironmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnvironmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Environment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnvironmentMutation) ResetField(name string) error {
	switch name {
	case environment.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case environment.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case environment.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case environment.FieldStatus:
		m.ResetStatus()
		return nil
	case environment.FieldName:
		m.ResetName()
		return nil
	case environment.FieldVariables:
		m.ResetVariables()
		return nil
	case environment.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	}
	return fmt.Errorf("unknown Environment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnvironmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnvironmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnvironmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnvironmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnvironmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnvironmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnvironmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Environment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnvironmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Environment edge %s", name)
}

// ExtractRuleMutation represents an operation that mutates the ExtractRule nodes in the graph.
type ExtractRuleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int64
	create_time         *time.Time
	update_time         *time.Time
	is_deleted          *int64
	addis_deleted       *int64
	status              *int
	addstatus           *int
	request_id          *int64
	addrequest_id       *int64
	dataset_id          *int64
	adddataset_id       *int64
	var_name            *string
	source_type         *extractrule.SourceType
	source_expr         *string
	default_value       *json.RawMessage
	appenddefault_value json.RawMessage
	required            *bool
	scope               *extractrule.Scope
	is_secret           *bool
	is_enabled          *bool
	sort                *int
	addsort             *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ExtractRule, error)
	predicates          []predicate.ExtractRule
}

var _ ent.Mutation = (*ExtractRuleMutation)(nil)

// extractruleOption allows management of the mutation configuration using functional options.
type extractruleOption func(*ExtractRuleMutation)

// newExtractRuleMutation creates new mutation for the ExtractRule entity.
func newExtractRuleMutation(c config, op Op, opts ...extractruleOption) *ExtractRuleMutation {
	m := &ExtractRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractRuleID sets the ID field of the mutation.
func withExtractRuleID(id int64) extractruleOption {
	return func(m *ExtractRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractRule
		)
		m.oldValue = func(ctx context.Context) (*ExtractRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractRule sets the old ExtractRule of the mutation.
func withExtractRule(node *ExtractRule) extractruleOption {
	return func(m *ExtractRuleMutation) {
		m.oldValue = func(context.Context) (*ExtractRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractRule entities.
func (m *ExtractRuleMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractRuleMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractRuleMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ExtractRuleMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ExtractRuleMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ExtractRuleMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ExtractRuleMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ExtractRuleMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ExtractRuleMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ExtractRuleMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ExtractRuleMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *ExtractRuleMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *ExtractRuleMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ExtractRuleMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *ExtractRuleMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractRuleMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *ExtractRuleMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *ExtractRuleMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractRuleMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetRequestID sets the "request_id" field.
func (m *ExtractRuleMutation) SetRequestID(i int64) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ExtractRuleMutation) RequestID() (r int64, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldRequestID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *ExtractRuleMutation) AddRequestID(i int64) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *ExtractRuleMutation) AddedRequestID() (r int64, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ExtractRuleMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *ExtractRuleMutation) SetDatasetID(i int64) {
	m.dataset_id = &i
	m.adddataset_id = nil
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *ExtractRuleMutation) DatasetID() (r int64, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldDatasetID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// AddDatasetID adds i to the "dataset_id" field.
func (m *ExtractRuleMutation) AddDatasetID(i int64) {
	if m.adddataset_id != nil {
		*m.adddataset_id += i
	} else {
		m.adddataset_id = &i
	}
}

// AddedDatasetID returns the value that was added to the "dataset_id" field in this mutation.
func (m *ExtractRuleMutation) AddedDatasetID() (r int64, exists bool) {
	v := m.adddataset_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (m *ExtractRuleMutation) ClearDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	m.clearedFields[extractrule.FieldDatasetID] = struct{}{}
}

// DatasetIDCleared returns if the "dataset_id" field was cleared in this mutation.
func (m *ExtractRuleMutation) DatasetIDCleared() bool {
	_, ok := m.clearedFields[extractrule.FieldDatasetID]
	return ok
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *ExtractRuleMutation) ResetDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	delete(m.clearedFields, extractrule.FieldDatasetID)
}

// SetVarName sets the "var_name" field.
func (m *ExtractRuleMutation) SetVarName(s string) {
	m.var_name = &s
}

// VarName returns the value of the "var_name" field in the mutation.
func (m *ExtractRuleMutation) VarName() (r string, exists bool) {
	v := m.var_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVarName returns the old "var_name" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldVarName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVarName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVarName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVarName: %w", err)
	}
	return oldValue.VarName, nil
}

// ResetVarName resets all changes to the "var_name" field.
func (m *ExtractRuleMutation) ResetVarName() {
	m.var_name = nil
}

// SetSourceType sets the "source_type" field.
func (m *ExtractRuleMutation) SetSourceType(et extractrule.SourceType) {
	m.source_type = &et
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *ExtractRuleMutation) SourceType() (r extractrule.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldSourceType(ctx context.Context) (v extractrule.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *ExtractRuleMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceExpr sets the "source_expr" field.
func (m *ExtractRuleMutation) SetSourceExpr(s string) {
	m.source_expr = &s
}

// SourceExpr returns the value of the "source_expr" field in the mutation.
func (m *ExtractRuleMutation) SourceExpr() (r string, exists bool) {
	v := m.source_expr
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceExpr returns the old "source_expr" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldSourceExpr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceExpr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceExpr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceExpr: %w", err)
	}
	return oldValue.SourceExpr, nil
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (m *ExtractRuleMutation) ClearSourceExpr() {
	m.source_expr = nil
	m.clearedFields[extractrule.FieldSourceExpr] = struct{}{}
}

// SourceExprCleared returns if the "source_expr" field was cleared in this mutation.
func (m *ExtractRuleMutation) SourceExprCleared() bool {
	_, ok := m.clearedFields[extractrule.FieldSourceExpr]
	return ok
}

// ResetSourceExpr resets all changes to the "source_expr" field.
func (m *ExtractRuleMutation) ResetSourceExpr() {
	m.source_expr = nil
	delete(m.clearedFields, extractrule.FieldSourceExpr)
}

// SetDefaultValue sets the "default_value" field.
func (m *ExtractRuleMutation) SetDefaultValue(jm json.RawMessage) {
	m.default_value = &jm
	m.appenddefault_value = nil
}

// DefaultValue returns the value of the "default_value" field in the mutation.
func (m *ExtractRuleMutation) DefaultValue() (r json.RawMessage, exists bool) {
	v := m.default_value
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultValue returns the old "default_value" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldDefaultValue(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultValue: %w", err)
	}
	return oldValue.DefaultValue, nil
}

// AppendDefaultValue adds jm to the "default_value" field.
func (m *ExtractRuleMutation) AppendDefaultValue(jm json.RawMessage) {
	m.appenddefault_value = append(m.appenddefault_value, jm...)
}

// AppendedDefaultValue returns the list of values that were appended to the "default_value" field in this mutation.
func (m *ExtractRuleMutation) AppendedDefaultValue() (json.RawMessage, bool) {
	if len(m.appenddefault_value) == 0 {
		return nil, false
	}
	return m.appenddefault_value, true
}

// ClearDefaultValue clears the value of the "default_value" field.
func (m *ExtractRuleMutation) ClearDefaultValue() {
	m.default_value = nil
	m.appenddefault_value = nil
	m.clearedFields[extractrule.FieldDefaultValue] = struct{}{}
}

// DefaultValueCleared returns if the "default_value" field was cleared in this mutation.
func (m *ExtractRuleMutation) DefaultValueCleared() bool {
	_, ok := m.clearedFields[extractrule.FieldDefaultValue]
	return ok
}

// ResetDefaultValue resets all changes to the "default_value" field.
func (m *ExtractRuleMutation) ResetDefaultValue() {
	m.default_value = nil
	m.appenddefault_value = nil
	delete(m.clearedFields, extractrule.FieldDefaultValue)
}

// SetRequired sets the "required" field.
func (m *ExtractRuleMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *ExtractRuleMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *ExtractRuleMutation) ResetRequired() {
	m.required = nil
}

// SetScope sets the "scope" field.
func (m *ExtractRuleMutation) SetScope(e extractrule.Scope) {
	m.scope = &e
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ExtractRuleMutation) Scope() (r extractrule.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldScope(ctx context.Context) (v extractrule.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ExtractRuleMutation) ResetScope() {
	m.scope = nil
}

// SetIsSecret sets the "is_secret" field.
func (m *ExtractRuleMutation) SetIsSecret(b bool) {
	m.is_secret = &b
}

// IsSecret returns the value of the "is_secret" field in the mutation.
func (m *ExtractRuleMutation) IsSecret() (r bool, exists bool) {
	v := m.is_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSecret returns the old "is_secret" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldIsSecret(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSecret: %w", err)
	}
	return oldValue.IsSecret, nil
}

// ResetIsSecret resets all changes to the "is_secret" field.
func (m *ExtractRuleMutation) ResetIsSecret() {
	m.is_secret = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *ExtractRuleMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *ExtractRuleMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *ExtractRuleMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetSort sets the "sort" field.
func (m *ExtractRuleMutation) SetSort(i int) {
	m.sort = &i
	m.addsort = nil
}

// Sort returns the value of the "sort" field in the mutation.
func (m *ExtractRuleMutation) Sort() (r int, exists bool) {
	v := m.sort
	if v == nil {
		return
	}
	return *v, true
}

// OldSort returns the old "sort" field's value of the ExtractRule entity.
// If the ExtractRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractRuleMutation) OldSort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSort: %w", err)
	}
	return oldValue.Sort, nil
}

// AddSort adds i to the "sort" field.
func (m *ExtractRuleMutation) AddSort(i int) {
	if m.addsort != nil {
		*m.addsort += i
	} else {
		m.addsort = &i
	}
}

// AddedSort returns the value that was added to the "sort" field in this mutation.
func (m *ExtractRuleMutation) AddedSort() (r int, exists bool) {
	v := m.addsort
	if v == nil {
		return
	}
	return *v, true
}

// ResetSort resets all changes to the "sort" field.
func (m *ExtractRuleMutation) ResetSort() {
	m.sort = nil
	m.addsort = nil
}

// Where appends a list predicates to the ExtractRuleMutation builder.
func (m *ExtractRuleMutation) Where(ps ...predicate.ExtractRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractRule).
func (m *ExtractRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractRuleMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.create_time != nil {
		fields = append(fields, extractrule.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, extractrule.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, extractrule.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, extractrule.FieldStatus)
	}
	if m.request_id != nil {
		fields = append(fields, extractrule.FieldRequestID)
	}
	if m.dataset_id != nil {
		fields = append(fields, extractrule.FieldDatasetID)
	}
	if m.var_name != nil {
		fields = append(fields, extractrule.FieldVarName)
	}
	if m.source_type != nil {
		fields = append(fields, extractrule.FieldSourceType)
	}
	if m.source_expr != nil {
		fields = append(fields, extractrule.FieldSourceExpr)
	}
	if m.default_value != nil {
		fields = append(fields, extractrule.FieldDefaultValue)
	}
	if m.required != nil {
		fields = append(fields, extractrule.FieldRequired)
	}
	if m.scope != nil {
		fields = append(fields, extractrule.FieldScope)
	}
	if m.is_secret != nil {
		fields = append(fields, extractrule.FieldIsSecret)
	}
	if m.is_enabled != nil {
		fields = append(fields, extractrule.FieldIsEnabled)
	}
	if m.sort != nil {
		fields = append(fields, extractrule.FieldSort)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractrule.FieldCreateTime:
		return m.CreateTime()
	case extractrule.FieldUpdateTime:
		return m.UpdateTime()
	case extractrule.FieldIsDeleted:
		return m.IsDeleted()
	case extractrule.FieldStatus:
		return m.Status()
	case extractrule.FieldRequestID:
		return m.RequestID()
	case extractrule.FieldDatasetID:
		return m.DatasetID()
	case extractrule.FieldVarName:
		return m.VarName()
	case extractrule.FieldSourceType:
		return m.SourceType()
	case extractrule.FieldSourceExpr:
		return m.SourceExpr()
	case extractrule.FieldDefaultValue:
		return m.DefaultValue()
	case extractrule.FieldRequired:
		return m.Required()
	case extractrule.FieldScope:
		return m.Scope()
	case extractrule.FieldIsSecret:
		return m.IsSecret()
	case extractrule.FieldIsEnabled:
		return m.IsEnabled()
	case extractrule.FieldSort:
		return m.Sort()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractrule.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case extractrule.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case extractrule.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case extractrule.FieldStatus:
		return m.OldStatus(ctx)
	case extractrule.FieldRequestID:
		return m.OldRequestID(ctx)
	case extractrule.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case extractrule.FieldVarName:
		return m.OldVarName(ctx)
	case extractrule.FieldSourceType:
		return m.OldSourceType(ctx)
	case extractrule.FieldSourceExpr:
		return m.OldSourceExpr(ctx)
	case extractrule.FieldDefaultValue:
		return m.OldDefaultValue(ctx)
	case extractrule.FieldRequired:
		return m.OldRequired(ctx)
	case extractrule.FieldScope:
		return m.OldScope(ctx)
	case extractrule.FieldIsSecret:
		return m.OldIsSecret(ctx)
	case extractrule.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case extractrule.FieldSort:
		return m.OldSort(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractrule.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case extractrule.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case extractrule.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case extractrule.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractrule.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case extractrule.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case extractrule.FieldVarName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVarName(v)
		return nil
	case extractrule.FieldSourceType:
		v, ok := value.(extractrule.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case extractrule.FieldSourceExpr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceExpr(v)
		return nil
	case extractrule.FieldDefaultValue:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultValue(v)
		return nil
	case extractrule.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	case extractrule.FieldScope:
		v, ok := value.(extractrule.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case extractrule.FieldIsSecret:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSecret(v)
		return nil
	case extractrule.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case extractrule.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSort(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractRuleMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, extractrule.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, extractrule.FieldStatus)
	}
	if m.addrequest_id != nil {
		fields = append(fields, extractrule.FieldRequestID)
	}
	if m.adddataset_id != nil {
		fields = append(fields, extractrule.FieldDatasetID)
	}
	if m.addsort != nil {
		fields = append(fields, extractrule.FieldSort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractrule.FieldIsDeleted:
		return m.AddedIsDeleted()
	case extractrule.FieldStatus:
		return m.AddedStatus()
	case extractrule.FieldRequestID:
		return m.AddedRequestID()
	case extractrule.FieldDatasetID:
		return m.AddedDatasetID()
	case extractrule.FieldSort:
		return m.AddedSort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractrule.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case extractrule.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case extractrule.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case extractrule.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDatasetID(v)
		return nil
	case extractrule.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSort(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractrule.FieldDatasetID) {
		fields = append(fields, extractrule.FieldDatasetID)
	}
	if m.FieldCleared(extractrule.FieldSourceExpr) {
		fields = append(fields, extractrule.FieldSourceExpr)
	}
	if m.FieldCleared(extractrule.FieldDefaultValue) {
		fields = append(fields, extractrule.FieldDefaultValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractRuleMutation) ClearField(name string) error {
	switch name {
	case extractrule.FieldDatasetID:
		m.ClearDatasetID()
		return nil
	case extractrule.FieldSourceExpr:
		m.ClearSourceExpr()
		return nil
	case extractrule.FieldDefaultValue:
		m.ClearDefaultValue()
		return nil
	}
	return fmt.Errorf("unknown ExtractRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractRuleMutation) ResetField(name string) error {
	switch name {
	case extractrule.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case extractrule.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case extractrule.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case extractrule.FieldStatus:
		m.ResetStatus()
		return nil
	case extractrule.FieldRequestID:
		m.ResetRequestID()
		return nil
	case extractrule.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case extractrule.FieldVarName:
		m.ResetVarName()
		return nil
	case extractrule.FieldSourceType:
		m.ResetSourceType()
		return nil
	case extractrule.FieldSourceExpr:
		m.ResetSourceExpr()
		return nil
	case extractrule.FieldDefaultValue:
		m.ResetDefaultValue()
		return nil
	case extractrule.FieldRequired:
		m.ResetRequired()
		return nil
	case extractrule.FieldScope:
		m.ResetScope()
		return nil
	case extractrule.FieldIsSecret:
		m.ResetIsSecret()
		return nil
	case extractrule.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case extractrule.FieldSort:
		m.ResetSort()
		return nil
	}
	return fmt.Errorf("unknown ExtractRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractRule edge %s", name)
}

// RequestRunMutation represents an operation that mutates the RequestRun nodes in the graph.
type RequestRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int64
	create_time             *time.Time
	update_time             *time.Time
	is_deleted              *int64
	addis_deleted           *int64
	status                  *int
	addstatus               *int
	request_id              *int64
	addrequest_id           *int64
	scenario_run_id         *int64
	addscenario_run_id      *int64
	scenario_case_id        *int64
	addscenario_case_id     *int64
	dataset_id              *int64
	adddataset_id           *int64
	dataset_snapshot        *map[string]interface{}
	request_snapshot        *map[string]interface{}
	is_success              *bool
	response_status_code    *int
	addresponse_status_code *int
	response_headers        *map[string][]string
	response_body           *string
	response_time_ms        *int64
	addresponse_time_ms     *int64
	error_message           *string
	assertion_results       *[]map[string]interface{}
	appendassertion_results []map[string]interface{}
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*RequestRun, error)
	predicates              []predicate.RequestRun
}

var _ ent.Mutation = (*RequestRunMutation)(nil)

// requestrunOption allows management of the mutation configuration using functional options.
type requestrunOption func(*RequestRunMutation)

// newRequestRunMutation creates new mutation for the RequestRun entity.
func newRequestRunMutation(c config, op Op, opts ...requestrunOption) *RequestRunMutation {
	m := &RequestRunMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestRunID sets the ID field of the mutation.
func withRequestRunID(id int64) requestrunOption {
	return func(m *RequestRunMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestRun
		)
		m.oldValue = func(ctx context.Context) (*RequestRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestRun sets the old RequestRun of the mutation.
func withRequestRun(node *RequestRun) requestrunOption {
	return func(m *RequestRunMutation) {
		m.oldValue = func(context.Context) (*RequestRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RequestRun entities.
func (m *RequestRunMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestRunMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestRunMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *RequestRunMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *RequestRunMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *RequestRunMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *RequestRunMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *RequestRunMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *RequestRunMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *RequestRunMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *RequestRunMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *RequestRunMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *RequestRunMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *RequestRunMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *RequestRunMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *RequestRunMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *RequestRunMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *RequestRunMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *RequestRunMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetRequestID sets the "request_id" field.
func (m *RequestRunMutation) SetRequestID(i int64) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RequestRunMutation) RequestID() (r int64, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldRequestID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *RequestRunMutation) AddRequestID(i int64) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *RequestRunMutation) AddedRequestID() (r int64, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RequestRunMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetScenarioRunID sets the "scenario_run_id" field.
func (m *RequestRunMutation) SetScenarioRunID(i int64) {
	m.scenario_run_id = &i
	m.addscenario_run_id = nil
}

// ScenarioRunID returns the value of the "scenario_run_id" field in the mutation.
func (m *RequestRunMutation) ScenarioRunID() (r int64, exists bool) {
	v := m.scenario_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioRunID returns the old "scenario_run_id" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldScenarioRunID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioRunID: %w", err)
	}
	return oldValue.ScenarioRunID, nil
}

// AddScenarioRunID adds i to the "scenario_run_id" field.
func (m *RequestRunMutation) AddScenarioRunID(i int64) {
	if m.addscenario_run_id != nil {
		*m.addscenario_run_id += i
	} else {
		m.addscenario_run_id = &i
	}
}

// AddedScenarioRunID returns the value that was added to the "scenario_run_id" field in this mutation.
func (m *RequestRunMutation) AddedScenarioRunID() (r int64, exists bool) {
	v := m.addscenario_run_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearScenarioRunID clears the value of the "scenario_run_id" field.
func (m *RequestRunMutation) ClearScenarioRunID() {
	m.scenario_run_id = nil
	m.addscenario_run_id = nil
	m.clearedFields[requestrun.FieldScenarioRunID] = struct{}{}
}

// ScenarioRunIDCleared returns if the "scenario_run_id" field was cleared in this mutation.
func (m *RequestRunMutation) ScenarioRunIDCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldScenarioRunID]
	return ok
}

// ResetScenarioRunID resets all changes to the "scenario_run_id" field.
func (m *RequestRunMutation) ResetScenarioRunID() {
	m.scenario_run_id = nil
	m.addscenario_run_id = nil
	delete(m.clearedFields, requestrun.FieldScenarioRunID)
}

// SetScenarioCaseID sets the "scenario_case_id" field.
func (m *RequestRunMutation) SetScenarioCaseID(i int64) {
	m.scenario_case_id = &i
	m.addscenario_case_id = nil
}

// ScenarioCaseID returns the value of the "scenario_case_id" field in the mutation.
func (m *RequestRunMutation) ScenarioCaseID() (r int64, exists bool) {
	v := m.scenario_case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioCaseID returns the old "scenario_case_id" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldScenarioCaseID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioCaseID: %w", err)
	}
	return oldValue.ScenarioCaseID, nil
}

// AddScenarioCaseID adds i to the "scenario_case_id" field.
func (m *RequestRunMutation) AddScenarioCaseID(i int64) {
	if m.addscenario_case_id != nil {
		*m.addscenario_case_id += i
	} else {
		m.addscenario_case_id = &i
	}
}

// AddedScenarioCaseID returns the value that was added to the "scenario_case_id" field in this mutation.
func (m *RequestRunMutation) AddedScenarioCaseID() (r int64, exists bool) {
	v := m.addscenario_case_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearScenarioCaseID clears the value of the "scenario_case_id" field.
func (m *RequestRunMutation) ClearScenarioCaseID() {
	m.scenario_case_id = nil
	m.addscenario_case_id = nil
	m.clearedFields[requestrun.FieldScenarioCaseID] = struct{}{}
}

// ScenarioCaseIDCleared returns if the "scenario_case_id" field was cleared in this mutation.
func (m *RequestRunMutation) ScenarioCaseIDCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldScenarioCaseID]
	return ok
}

// ResetScenarioCaseID resets all changes to the "scenario_case_id" field.
func (m *RequestRunMutation) ResetScenarioCaseID() {
	m.scenario_case_id = nil
	m.addscenario_case_id = nil
	delete(m.clearedFields, requestrun.FieldScenarioCaseID)
}

// SetDatasetID sets the "dataset_id" field.
func (m *RequestRunMutation) SetDatasetID(i int64) {
	m.dataset_id = &i
	m.adddataset_id = nil
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *RequestRunMutation) DatasetID() (r int64, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldDatasetID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// AddDatasetID adds i to the "dataset_id" field.
func (m *RequestRunMutation) AddDatasetID(i int64) {
	if m.adddataset_id != nil {
		*m.adddataset_id += i
	} else {
		m.adddataset_id = &i
	}
}

// AddedDatasetID returns the value that was added to the "dataset_id" field in this mutation.
func (m *RequestRunMutation) AddedDatasetID() (r int64, exists bool) {
	v := m.adddataset_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (m *RequestRunMutation) ClearDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	m.clearedFields[requestrun.FieldDatasetID] = struct{}{}
}

// DatasetIDCleared returns if the "dataset_id" field was cleared in this mutation.
func (m *RequestRunMutation) DatasetIDCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldDatasetID]
	return ok
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *RequestRunMutation) ResetDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	delete(m.clearedFields, requestrun.FieldDatasetID)
}

// SetDatasetSnapshot sets the "dataset_snapshot" field.
func (m *RequestRunMutation) SetDatasetSnapshot(value map[string]interface{}) {
	m.dataset_snapshot = &value
}

// DatasetSnapshot returns the value of the "dataset_snapshot" field in the mutation.
func (m *RequestRunMutation) DatasetSnapshot() (r map[string]interface{}, exists bool) {
	v := m.dataset_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetSnapshot returns the old "dataset_snapshot" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldDatasetSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetSnapshot: %w", err)
	}
	return oldValue.DatasetSnapshot, nil
}

// ClearDatasetSnapshot clears the value of the "dataset_snapshot" field.
func (m *RequestRunMutation) ClearDatasetSnapshot() {
	m.dataset_snapshot = nil
	m.clearedFields[requestrun.FieldDatasetSnapshot] = struct{}{}
}

// DatasetSnapshotCleared returns if the "dataset_snapshot" field was cleared in this mutation.
func (m *RequestRunMutation) DatasetSnapshotCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldDatasetSnapshot]
	return ok
}

// ResetDatasetSnapshot resets all changes to the "dataset_snapshot" field.
func (m *RequestRunMutation) ResetDatasetSnapshot() {
	m.dataset_snapshot = nil
	delete(m.clearedFields, requestrun.FieldDatasetSnapshot)
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (m *RequestRunMutation) SetRequestSnapshot(value map[string]interface{}) {
	m.request_snapshot = &value
}

// RequestSnapshot returns the value of the "request_snapshot" field in the mutation.
func (m *RequestRunMutation) RequestSnapshot() (r map[string]interface{}, exists bool) {
	v := m.request_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestSnapshot returns the old "request_snapshot" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldRequestSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestSnapshot: %w", err)
	}
	return oldValue.RequestSnapshot, nil
}

// ResetRequestSnapshot resets all changes to the "request_snapshot" field.
func (m *RequestRunMutation) ResetRequestSnapshot() {
	m.request_snapshot = nil
}

// SetIsSuccess sets the "is_success" field.
func (m *RequestRunMutation) SetIsSuccess(b bool) {
	m.is_success = &b
}

// IsSuccess returns the value of the "is_success" field in the mutation.
func (m *RequestRunMutation) IsSuccess() (r bool, exists bool) {
	v := m.is_success
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuccess returns the old "is_success" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldIsSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuccess: %w", err)
	}
	return oldValue.IsSuccess, nil
}

// ResetIsSuccess resets all changes to the "is_success" field.
func (m *RequestRunMutation) ResetIsSuccess() {
	m.is_success = nil
}

// SetResponseStatusCode sets the "response_status_code" field.
func (m *RequestRunMutation) SetResponseStatusCode(i int) {
	m.response_status_code = &i
	m.addresponse_status_code = nil
}

// ResponseStatusCode returns the value of the "response_status_code" field in the mutation.
func (m *RequestRunMutation) ResponseStatusCode() (r int, exists bool) {
	v := m.response_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseStatusCode returns the old "response_status_code" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldResponseStatusCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseStatusCode: %w", err)
	}
	return oldValue.ResponseStatusCode, nil
}

// AddResponseStatusCode adds i to the "response_status_code" field.
func (m *RequestRunMutation) AddResponseStatusCode(i int) {
	if m.addresponse_status_code != nil {
		*m.addresponse_status_code += i
	} else {
		m.addresponse_status_code = &i
	}
}

// AddedResponseStatusCode returns the value that was added to the "response_status_code" field in this mutation.
func (m *RequestRunMutation) AddedResponseStatusCode() (r int, exists bool) {
	v := m.addresponse_status_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseStatusCode clears the value of the "response_status_code" field.
func (m *RequestRunMutation) ClearResponseStatusCode() {
	m.response_status_code = nil
	m.addresponse_status_code = nil
	m.clearedFields[requestrun.FieldResponseStatusCode] = struct{}{}
}

// ResponseStatusCodeCleared returns if the "response_status_code" field was cleared in this mutation.
func (m *RequestRunMutation) ResponseStatusCodeCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldResponseStatusCode]
	return ok
}

// ResetResponseStatusCode resets all changes to the "response_status_code" field.
func (m *RequestRunMutation) ResetResponseStatusCode() {
	m.response_status_code = nil
	m.addresponse_status_code = nil
	delete(m.clearedFields, requestrun.FieldResponseStatusCode)
}

// SetResponseHeaders sets the "response_headers" field.
func (m *RequestRunMutation) SetResponseHeaders(value map[string][]string) {
	m.response_headers = &value
}

// ResponseHeaders returns the value of the "response_headers" field in the mutation.
func (m *RequestRunMutation) ResponseHeaders() (r map[string][]string, exists bool) {
	v := m.response_headers
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseHeaders returns the old "response_headers" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldResponseHeaders(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseHeaders: %w", err)
	}
	return oldValue.ResponseHeaders, nil
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (m *RequestRunMutation) ClearResponseHeaders() {
	m.response_headers = nil
	m.clearedFields[requestrun.FieldResponseHeaders] = struct{}{}
}

// ResponseHeadersCleared returns if the "response_headers" field was cleared in this mutation.
func (m *RequestRunMutation) ResponseHeadersCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldResponseHeaders]
	return ok
}

// ResetResponseHeaders resets all changes to the "response_headers" field.
func (m *RequestRunMutation) ResetResponseHeaders() {
	m.response_headers = nil
	delete(m.clearedFields, requestrun.FieldResponseHeaders)
}

// SetResponseBody sets the "response_body" field.
func (m *RequestRunMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *RequestRunMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldResponseBody(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ClearResponseBody clears the value of the "response_body" field.
func (m *RequestRunMutation) ClearResponseBody() {
	m.response_body = nil
	m.clearedFields[requestrun.FieldResponseBody] = struct{}{}
}

// ResponseBodyCleared returns if the "response_body" field was cleared in this mutation.
func (m *RequestRunMutation) ResponseBodyCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldResponseBody]
	return ok
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *RequestRunMutation) ResetResponseBody() {
	m.response_body = nil
	delete(m.clearedFields, requestrun.FieldResponseBody)
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *RequestRunMutation) SetResponseTimeMs(i int64) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *RequestRunMutation) ResponseTimeMs() (r int64, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldResponseTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *RequestRunMutation) AddResponseTimeMs(i int64) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *RequestRunMutation) AddedResponseTimeMs() (r int64, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *RequestRunMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *RequestRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RequestRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RequestRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[requestrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RequestRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RequestRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, requestrun.FieldErrorMessage)
}

// SetAssertionResults sets the "assertion_results" field.
func (m *RequestRunMutation) SetAssertionResults(value []map[string]interface{}) {
	m.assertion_results = &value
	m.appendassertion_results = nil
}

// AssertionResults returns the value of the "assertion_results" field in the mutation.
func (m *RequestRunMutation) AssertionResults() (r []map[string]interface{}, exists bool) {
	v := m.assertion_results
	if v == nil {
		return
	}
	return *v, true
}

// OldAssertionResults returns the old "assertion_results" field's value of the RequestRun entity.
// If the RequestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestRunMutation) OldAssertionResults(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssertionResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssertionResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssertionResults: %w", err)
	}
	return oldValue.AssertionResults, nil
}

// AppendAssertionResults adds value to the "assertion_results" field.
func (m *RequestRunMutation) AppendAssertionResults(value []map[string]interface{}) {
	m.appendassertion_results = append(m.appendassertion_results, value...)
}

// AppendedAssertionResults returns the list of values that were appended to the "assertion_results" field in this mutation.
func (m *RequestRunMutation) AppendedAssertionResults() ([]map[string]interface{}, bool) {
	if len(m.appendassertion_results) == 0 {
		return nil, false
	}
	return m.appendassertion_results, true
}

// ClearAssertionResults clears the value of the "assertion_results" field.
func (m *RequestRunMutation) ClearAssertionResults() {
	m.assertion_results = nil
	m.appendassertion_results = nil
	m.clearedFields[requestrun.FieldAssertionResults] = struct{}{}
}

// AssertionResultsCleared returns if the "assertion_results" field was cleared in this mutation.
func (m *RequestRunMutation) AssertionResultsCleared() bool {
	_, ok := m.clearedFields[requestrun.FieldAssertionResults]
	return ok
}

// ResetAssertionResults resets all changes to the "assertion_results" field.
func (m *RequestRunMutation) ResetAssertionResults() {
	m.assertion_results = nil
	m.appendassertion_results = nil
	delete(m.clearedFields, requestrun.FieldAssertionResults)
}

// Where appends a list predicates to the RequestRunMutation builder.
func (m *RequestRunMutation) Where(ps ...predicate.RequestRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestRun).
func (m *RequestRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestRunMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.create_time != nil {
		fields = append(fields, requestrun.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, requestrun.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, requestrun.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, requestrun.FieldStatus)
	}
	if m.request_id != nil {
		fields = append(fields, requestrun.FieldRequestID)
	}
	if m.scenario_run_id != nil {
		fields = append(fields, requestrun.FieldScenarioRunID)
	}
	if m.scenario_case_id != nil {
		fields = append(fields, requestrun.FieldScenarioCaseID)
	}
	if m.dataset_id != nil {
		fields = append(fields, requestrun.FieldDatasetID)
	}
	if m.dataset_snapshot != nil {
		fields = append(fields, requestrun.FieldDatasetSnapshot)
	}
	if m.request_snapshot != nil {
		fields = append(fields, requestrun.FieldRequestSnapshot)
	}
	if m.is_success != nil {
		fields = append(fields, requestrun.FieldIsSuccess)
	}
	if m.response_status_code != nil {
		fields = append(fields, requestrun.FieldResponseStatusCode)
	}
	if m.response_headers != nil {
		fields = append(fields, requestrun.FieldResponseHeaders)
	}
	if m.response_body != nil {
		fields = append(fields, requestrun.FieldResponseBody)
	}
	if m.response_time_ms != nil {
		fields = append(fields, requestrun.FieldResponseTimeMs)
	}
	if m.error_message != nil {
		fields = append(fields, requestrun.FieldErrorMessage)
	}
	if m.assertion_results != nil {
		fields = append(fields, requestrun.FieldAssertionResults)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestrun.FieldCreateTime:
		return m.CreateTime()
	case requestrun.FieldUpdateTime:
		return m.UpdateTime()
	case requestrun.FieldIsDeleted:
		return m.IsDeleted()
	case requestrun.FieldStatus:
		return m.Status()
	case requestrun.FieldRequestID:
		return m.RequestID()
	case requestrun.FieldScenarioRunID:
		return m.ScenarioRunID()
	case requestrun.FieldScenarioCaseID:
		return m.ScenarioCaseID()
	case requestrun.FieldDatasetID:
		return m.DatasetID()
	case requestrun.FieldDatasetSnapshot:
		return m.DatasetSnapshot()
	case requestrun.FieldRequestSnapshot:
		return m.RequestSnapshot()
	case requestrun.FieldIsSuccess:
		return m.IsSuccess()
	case requestrun.FieldResponseStatusCode:
		return m.ResponseStatusCode()
	case requestrun.FieldResponseHeaders:
		return m.ResponseHeaders()
	case requestrun.FieldResponseBody:
		return m.ResponseBody()
	case requestrun.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case requestrun.FieldErrorMessage:
		return m.ErrorMessage()
	case requestrun.FieldAssertionResults:
		return m.AssertionResults()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestrun.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case requestrun.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case requestrun.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case requestrun.FieldStatus:
		return m.OldStatus(ctx)
	case requestrun.FieldRequestID:
		return m.OldRequestID(ctx)
	case requestrun.FieldScenarioRunID:
		return m.OldScenarioRunID(ctx)
	case requestrun.FieldScenarioCaseID:
		return m.OldScenarioCaseID(ctx)
	case requestrun.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case requestrun.FieldDatasetSnapshot:
		return m.OldDatasetSnapshot(ctx)
	case requestrun.FieldRequestSnapshot:
		return m.OldRequestSnapshot(ctx)
	case requestrun.FieldIsSuccess:
		return m.OldIsSuccess(ctx)
	case requestrun.FieldResponseStatusCode:
		return m.OldResponseStatusCode(ctx)
	case requestrun.FieldResponseHeaders:
		return m.OldResponseHeaders(ctx)
	case requestrun.FieldResponseBody:
		return m.OldResponseBody(ctx)
	case requestrun.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case requestrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case requestrun.FieldAssertionResults:
		return m.OldAssertionResults(ctx)
	}
	return nil, fmt.Errorf("unknown RequestRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestrun.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case requestrun.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case requestrun.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case requestrun.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case requestrun.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case requestrun.FieldScenarioRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioRunID(v)
		return nil
	case requestrun.FieldScenarioCaseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioCaseID(v)
		return nil
	case requestrun.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case requestrun.FieldDatasetSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetSnapshot(v)
		return nil
	case requestrun.FieldRequestSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestSnapshot(v)
		return nil
	case requestrun.FieldIsSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuccess(v)
		return nil
	case requestrun.FieldResponseStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseStatusCode(v)
		return nil
	case requestrun.FieldResponseHeaders:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseHeaders(v)
		return nil
	case requestrun.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	case requestrun.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case requestrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case requestrun.FieldAssertionResults:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssertionResults(v)
		return nil
	}
	return fmt.Errorf("unknown RequestRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestRunMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, requestrun.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, requestrun.FieldStatus)
	}
	if m.addrequest_id != nil {
		fields = append(fields, requestrun.FieldRequestID)
	}
	if m.addscenario_run_id != nil {
		fields = append(fields, requestrun.FieldScenarioRunID)
	}
	if m.addscenario_case_id != nil {
		fields = append(fields, requestrun.FieldScenarioCaseID)
	}
	if m.adddataset_id != nil {
		fields = append(fields, requestrun.FieldDatasetID)
	}
	if m.addresponse_status_code != nil {
		fields = append(fields, requestrun.FieldResponseStatusCode)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, requestrun.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case requestrun.FieldIsDeleted:
		return m.AddedIsDeleted()
	case requestrun.FieldStatus:
		return m.AddedStatus()
	case requestrun.FieldRequestID:
		return m.AddedRequestID()
	case requestrun.FieldScenarioRunID:
		return m.AddedScenarioRunID()
	case requestrun.FieldScenarioCaseID:
		return m.AddedScenarioCaseID()
	case requestrun.FieldDatasetID:
		return m.AddedDatasetID()
	case requestrun.FieldResponseStatusCode:
		return m.AddedResponseStatusCode()
	case requestrun.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case requestrun.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case requestrun.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case requestrun.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case requestrun.FieldScenarioRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioRunID(v)
		return nil
	case requestrun.FieldScenarioCaseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioCaseID(v)
		return nil
	case requestrun.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDatasetID(v)
		return nil
	case requestrun.FieldResponseStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseStatusCode(v)
		return nil
	case requestrun.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown RequestRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(requestrun.FieldScenarioRunID) {
		fields = append(fields, requestrun.FieldScenarioRunID)
	}
	if m.FieldCleared(requestrun.FieldScenarioCaseID) {
		fields = append(fields, requestrun.FieldScenarioCaseID)
	}
	if m.FieldCleared(requestrun.FieldDatasetID) {
		fields = append(fields, requestrun.FieldDatasetID)
	}
	if m.FieldCleared(requestrun.FieldDatasetSnapshot) {
		fields = append(fields, requestrun.FieldDatasetSnapshot)
	}
	if m.FieldCleared(requestrun.FieldResponseStatusCode) {
		fields = append(fields, requestrun.FieldResponseStatusCode)
	}
	if m.FieldCleared(requestrun.FieldResponseHeaders) {
		fields = append(fields, requestrun.FieldResponseHeaders)
	}
	if m.FieldCleared(requestrun.FieldResponseBody) {
		fields = append(fields, requestrun.FieldResponseBody)
	}
	if m.FieldCleared(requestrun.FieldErrorMessage) {
		fields = append(fields, requestrun.FieldErrorMessage)
	}
	if m.FieldCleared(requestrun.FieldAssertionResults) {
		fields = append(fields, requestrun.FieldAssertionResults)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestRunMutation) ClearField(name string) error {
	switch name {
	case requestrun.FieldScenarioRunID:
		m.ClearScenarioRunID()
		return nil
	case requestrun.FieldScenarioCaseID:
		m.ClearScenarioCaseID()
		return nil
	case requestrun.FieldDatasetID:
		m.ClearDatasetID()
		return nil
	case requestrun.FieldDatasetSnapshot:
		m.ClearDatasetSnapshot()
		return nil
	case requestrun.FieldResponseStatusCode:
		m.ClearResponseStatusCode()
		return nil
	case requestrun.FieldResponseHeaders:
		m.ClearResponseHeaders()
		return nil
	case requestrun.FieldResponseBody:
		m.ClearResponseBody()
		return nil
	case requestrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case requestrun.FieldAssertionResults:
		m.ClearAssertionResults()
		return nil
	}
	return fmt.Errorf("unknown RequestRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestRunMutation) ResetField(name string) error {
	switch name {
	case requestrun.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case requestrun.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case requestrun.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case requestrun.FieldStatus:
		m.ResetStatus()
		return nil
	case requestrun.FieldRequestID:
		m.ResetRequestID()
		return nil
	case requestrun.FieldScenarioRunID:
		m.ResetScenarioRunID()
		return nil
	case requestrun.FieldScenarioCaseID:
		m.ResetScenarioCaseID()
		return nil
	case requestrun.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case requestrun.FieldDatasetSnapshot:
		m.ResetDatasetSnapshot()
		return nil
	case requestrun.FieldRequestSnapshot:
		m.ResetRequestSnapshot()
		return nil
	case requestrun.FieldIsSuccess:
		m.ResetIsSuccess()
		return nil
	case requestrun.FieldResponseStatusCode:
		m.ResetResponseStatusCode()
		return nil
	case requestrun.FieldResponseHeaders:
		m.ResetResponseHeaders()
		return nil
	case requestrun.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	case requestrun.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case requestrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case requestrun.FieldAssertionResults:
		m.ResetAssertionResults()
		return nil
	}
	return fmt.Errorf("unknown RequestRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RequestRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RequestRun edge %s", name)
}

// RunVariableMutation represents an operation that mutates the RunVariable nodes in the graph.
type RunVariableMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int64
	create_time         *time.Time
	update_time         *time.Time
	is_deleted          *int64
	addis_deleted       *int64
	status              *int
	addstatus           *int
	scenario_run_id     *int64
	addscenario_run_id  *int64
	request_run_id      *int64
	addrequest_run_id   *int64
	scenario_case_id    *int64
	addscenario_case_id *int64
	request_id          *int64
	addrequest_id       *int64
	dataset_id          *int64
	adddataset_id       *int64
	var_name            *string
	var_value           *json.RawMessage
	appendvar_value     json.RawMessage
	value_type          *string
	source_type         *runvariable.SourceType
	source_expr         *string
	scope               *runvariable.Scope
	is_secret           *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*RunVariable, error)
	predicates          []predicate.RunVariable
}

var _ ent.Mutation = (*RunVariableMutation)(nil)

// runvariableOption allows management of the mutation configuration using functional options.
type runvariableOption func(*RunVariableMutation)

// newRunVariableMutation creates new mutation for the RunVariable entity.
func newRunVariableMutation(c config, op Op, opts ...runvariableOption) *RunVariableMutation {
	m := &RunVariableMutation{
		config:        c,
		op:            op,
		typ:           TypeRunVariable,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunVariableID sets the ID field of the mutation.
func withRunVariableID(id int64) runvariableOption {
	return func(m *RunVariableMutation) {
		var (
			err   error
			once  sync.Once
			value *RunVariable
		)
		m.oldValue = func(ctx context.Context) (*RunVariable, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunVariable.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunVariable sets the old RunVariable of the mutation.
func withRunVariable(node *RunVariable) runvariableOption {
	return func(m *RunVariableMutation) {
		m.oldValue = func(context.Context) (*RunVariable, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunVariableMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunVariableMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunVariable entities.
func (m *RunVariableMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunVariableMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunVariableMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunVariable.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *RunVariableMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *RunVariableMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *RunVariableMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *RunVariableMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *RunVariableMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *RunVariableMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *RunVariableMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *RunVariableMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *RunVariableMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *RunVariableMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *RunVariableMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *RunVariableMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *RunVariableMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *RunVariableMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *RunVariableMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *RunVariableMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetScenarioRunID sets the "scenario_run_id" field.
func (m *RunVariableMutation) SetScenarioRunID(i int64) {
	m.scenario_run_id = &i
	m.addscenario_run_id = nil
}

// ScenarioRunID returns the value of the "scenario_run_id" field in the mutation.
func (m *RunVariableMutation) ScenarioRunID() (r int64, exists bool) {
	v := m.scenario_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioRunID returns the old "scenario_run_id" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldScenarioRunID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioRunID: %w", err)
	}
	return oldValue.ScenarioRunID, nil
}

// AddScenarioRunID adds i to the "scenario_run_id" field.
func (m *RunVariableMutation) AddScenarioRunID(i int64) {
	if m.addscenario_run_id != nil {
		*m.addscenario_run_id += i
	} else {
		m.addscenario_run_id = &i
	}
}

// AddedScenarioRunID returns the value that was added to the "scenario_run_id" field in this mutation.
func (m *RunVariableMutation) AddedScenarioRunID() (r int64, exists bool) {
	v := m.addscenario_run_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearScenarioRunID clears the value of the "scenario_run_id" field.
func (m *RunVariableMutation) ClearScenarioRunID() {
	m.scenario_run_id = nil
	m.addscenario_run_id = nil
	m.clearedFields[runvariable.FieldScenarioRunID] = struct{}{}
}

// ScenarioRunIDCleared returns if the "scenario_run_id" field was cleared in this mutation.
func (m *RunVariableMutation) ScenarioRunIDCleared() bool {
	_, ok := m.clearedFields[runvariable.FieldScenarioRunID]
	return ok
}

// ResetScenarioRunID resets all changes to the "scenario_run_id" field.
func (m *RunVariableMutation) ResetScenarioRunID() {
	m.scenario_run_id = nil
	m.addscenario_run_id = nil
	delete(m.clearedFields, runvariable.FieldScenarioRunID)
}

// SetRequestRunID sets the "request_run_id" field.
func (m *RunVariableMutation) SetRequestRunID(i int64) {
	m.request_run_id = &i
	m.addrequest_run_id = nil
}

// RequestRunID returns the value of the "request_run_id" field in the mutation.
func (m *RunVariableMutation) RequestRunID() (r int64, exists bool) {
	v := m.request_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestRunID returns the old "request_run_id" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldRequestRunID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestRunID: %w", err)
	}
	return oldValue.RequestRunID, nil
}

// AddRequestRunID adds i to the "request_run_id" field.
func (m *RunVariableMutation) AddRequestRunID(i int64) {
	if m.addrequest_run_id != nil {
		*m.addrequest_run_id += i
	} else {
		m.addrequest_run_id = &i
	}
}

// AddedRequestRunID returns the value that was added to the "request_run_id" field in this mutation.
func (m *RunVariableMutation) AddedRequestRunID() (r int64, exists bool) {
	v := m.addrequest_run_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestRunID resets all changes to the "request_run_id" field.
func (m *RunVariableMutation) ResetRequestRunID() {
	m.request_run_id = nil
	m.addrequest_run_id = nil
}

// SetScenarioCaseID sets the "scenario_case_id" field.
func (m *RunVariableMutation) SetScenarioCaseID(i int64) {
	m.scenario_case_id = &i
	m.addscenario_case_id = nil
}

// ScenarioCaseID returns the value of the "scenario_case_id" field in the mutation.
func (m *RunVariableMutation) ScenarioCaseID() (r int64, exists bool) {
	v := m.scenario_case_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioCaseID returns the old "scenario_case_id" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldScenarioCaseID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioCaseID: %w", err)
	}
	return oldValue.ScenarioCaseID, nil
}

// AddScenarioCaseID adds i to the "scenario_case_id" field.
func (m *RunVariableMutation) AddScenarioCaseID(i int64) {
	if m.addscenario_case_id != nil {
		*m.addscenario_case_id += i
	} else {
		m.addscenario_case_id = &i
	}
}

// AddedScenarioCaseID returns the value that was added to the "scenario_case_id" field in this mutation.
func (m *RunVariableMutation) AddedScenarioCaseID() (r int64, exists bool) {
	v := m.addscenario_case_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearScenarioCaseID clears the value of the "scenario_case_id" field.
func (m *RunVariableMutation) ClearScenarioCaseID() {
	m.scenario_case_id = nil
	m.addscenario_case_id = nil
	m.clearedFields[runvariable.FieldScenarioCaseID] = struct{}{}
}

// ScenarioCaseIDCleared returns if the "scenario_case_id" field was cleared in this mutation.
func (m *RunVariableMutation) ScenarioCaseIDCleared() bool {
	_, ok := m.clearedFields[runvariable.FieldScenarioCaseID]
	return ok
}

// ResetScenarioCaseID resets all changes to the "scenario_case_id" field.
func (m *RunVariableMutation) ResetScenarioCaseID() {
	m.scenario_case_id = nil
	m.addscenario_case_id = nil
	delete(m.clearedFields, runvariable.FieldScenarioCaseID)
}

// SetRequestID sets the "request_id" field.
func (m *RunVariableMutation) SetRequestID(i int64) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RunVariableMutation) RequestID() (r int64, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldRequestID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *RunVariableMutation) AddRequestID(i int64) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *RunVariableMutation) AddedRequestID() (r int64, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RunVariableMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *RunVariableMutation) SetDatasetID(i int64) {
	m.dataset_id = &i
	m.adddataset_id = nil
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *RunVariableMutation) DatasetID() (r int64, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldDatasetID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// AddDatasetID adds i to the "dataset_id" field.
func (m *RunVariableMutation) AddDatasetID(i int64) {
	if m.adddataset_id != nil {
		*m.adddataset_id += i
	} else {
		m.adddataset_id = &i
	}
}

// AddedDatasetID returns the value that was added to the "dataset_id" field in this mutation.
func (m *RunVariableMutation) AddedDatasetID() (r int64, exists bool) {
	v := m.adddataset_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (m *RunVariableMutation) ClearDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	m.clearedFields[runvariable.FieldDatasetID] = struct{}{}
}

// DatasetIDCleared returns if the "dataset_id" field was cleared in this mutation.
func (m *RunVariableMutation) DatasetIDCleared() bool {
	_, ok := m.clearedFields[runvariable.FieldDatasetID]
	return ok
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *RunVariableMutation) ResetDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	delete(m.clearedFields, runvariable.FieldDatasetID)
}

// SetVarName sets the "var_name" field.
func (m *RunVariableMutation) SetVarName(s string) {
	m.var_name = &s
}

// VarName returns the value of the "var_name" field in the mutation.
func (m *RunVariableMutation) VarName() (r string, exists bool) {
	v := m.var_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVarName returns the old "var_name" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldVarName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVarName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVarName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVarName: %w", err)
	}
	return oldValue.VarName, nil
}

// ResetVarName resets all changes to the "var_name" field.
func (m *RunVariableMutation) ResetVarName() {
	m.var_name = nil
}

// SetVarValue sets the "var_value" field.
func (m *RunVariableMutation) SetVarValue(jm json.RawMessage) {
	m.var_value = &jm
	m.appendvar_value = nil
}

// VarValue returns the value of the "var_value" field in the mutation.
func (m *RunVariableMutation) VarValue() (r json.RawMessage, exists bool) {
	v := m.var_value
	if v == nil {
		return
	}
	return *v, true
}

// OldVarValue returns the old "var_value" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldVarValue(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVarValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVarValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVarValue: %w", err)
	}
	return oldValue.VarValue, nil
}

// AppendVarValue adds jm to the "var_value" field.
func (m *RunVariableMutation) AppendVarValue(jm json.RawMessage) {
	m.appendvar_value = append(m.appendvar_value, jm...)
}

// AppendedVarValue returns the list of values that were appended to the "var_value" field in this mutation.
func (m *RunVariableMutation) AppendedVarValue() (json.RawMessage, bool) {
	if len(m.appendvar_value) == 0 {
		return nil, false
	}
	return m.appendvar_value, true
}

// ClearVarValue clears the value of the "var_value" field.
func (m *RunVariableMutation) ClearVarValue() {
	m.var_value = nil
	m.appendvar_value = nil
	m.clearedFields[runvariable.FieldVarValue] = struct{}{}
}

// VarValueCleared returns if the "var_value" field was cleared in this mutation.
func (m *RunVariableMutation) VarValueCleared() bool {
	_, ok := m.clearedFields[runvariable.FieldVarValue]
	return ok
}

// ResetVarValue resets all changes to the "var_value" field.
func (m *RunVariableMutation) ResetVarValue() {
	m.var_value = nil
	m.appendvar_value = nil
	delete(m.clearedFields, runvariable.FieldVarValue)
}

// SetValueType sets the "value_type" field.
func (m *RunVariableMutation) SetValueType(s string) {
	m.value_type = &s
}

// ValueType returns the value of the "value_type" field in the mutation.
func (m *RunVariableMutation) ValueType() (r string, exists bool) {
	v := m.value_type
	if v == nil {
		return
	}
	return *v, true
}

// OldValueType returns the old "value_type" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldValueType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueType: %w", err)
	}
	return oldValue.ValueType, nil
}

// ResetValueType resets all changes to the "value_type" field.
func (m *RunVariableMutation) ResetValueType() {
	m.value_type = nil
}

// SetSourceType sets the "source_type" field.
func (m *RunVariableMutation) SetSourceType(rt runvariable.SourceType) {
	m.source_type = &rt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *RunVariableMutation) SourceType() (r runvariable.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldSourceType(ctx context.Context) (v runvariable.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *RunVariableMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceExpr sets the "source_expr" field.
func (m *RunVariableMutation) SetSourceExpr(s string) {
	m.source_expr = &s
}

// SourceExpr returns the value of the "source_expr" field in the mutation.
func (m *RunVariableMutation) SourceExpr() (r string, exists bool) {
	v := m.source_expr
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceExpr returns the old "source_expr" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldSourceExpr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceExpr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceExpr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceExpr: %w", err)
	}
	return oldValue.SourceExpr, nil
}

// ClearSourceExpr clears the value of the "source_expr" field.
func (m *RunVariableMutation) ClearSourceExpr() {
	m.source_expr = nil
	m.clearedFields[runvariable.FieldSourceExpr] = struct{}{}
}

// SourceExprCleared returns if the "source_expr" field was cleared in this mutation.
func (m *RunVariableMutation) SourceExprCleared() bool {
	_, ok := m.clearedFields[runvariable.FieldSourceExpr]
	return ok
}

// ResetSourceExpr resets all changes to the "source_expr" field.
func (m *RunVariableMutation) ResetSourceExpr() {
	m.source_expr = nil
	delete(m.clearedFields, runvariable.FieldSourceExpr)
}

// SetScope sets the "scope" field.
func (m *RunVariableMutation) SetScope(r runvariable.Scope) {
	m.scope = &r
}

// Scope returns the value of the "scope" field in the mutation.
func (m *RunVariableMutation) Scope() (r runvariable.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldScope(ctx context.Context) (v runvariable.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *RunVariableMutation) ResetScope() {
	m.scope = nil
}

// SetIsSecret sets the "is_secret" field.
func (m *RunVariableMutation) SetIsSecret(b bool) {
	m.is_secret = &b
}

// IsSecret returns the value of the "is_secret" field in the mutation.
func (m *RunVariableMutation) IsSecret() (r bool, exists bool) {
	v := m.is_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSecret returns the old "is_secret" field's value of the RunVariable entity.
// If the RunVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunVariableMutation) OldIsSecret(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSecret: %w", err)
	}
	return oldValue.IsSecret, nil
}

// ResetIsSecret resets all changes to the "is_secret" field.
func (m *RunVariableMutation) ResetIsSecret() {
	m.is_secret = nil
}

// Where appends a list predicates to the RunVariableMutation builder.
func (m *RunVariableMutation) Where(ps ...predicate.RunVariable) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunVariableMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunVariableMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunVariable, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunVariableMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunVariableMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunVariable).
func (m *RunVariableMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunVariableMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.create_time != nil {
		fields = append(fields, runvariable.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, runvariable.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, runvariable.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, runvariable.FieldStatus)
	}
	if m.scenario_run_id != nil {
		fields = append(fields, runvariable.FieldScenarioRunID)
	}
	if m.request_run_id != nil {
		fields = append(fields, runvariable.FieldRequestRunID)
	}
	if m.scenario_case_id != nil {
		fields = append(fields, runvariable.FieldScenarioCaseID)
	}
	if m.request_id != nil {
		fields = append(fields, runvariable.FieldRequestID)
	}
	if m.dataset_id != nil {
		fields = append(fields, runvariable.FieldDatasetID)
	}
	if m.var_name != nil {
		fields = append(fields, runvariable.FieldVarName)
	}
	if m.var_value != nil {
		fields = append(fields, runvariable.FieldVarValue)
	}
	if m.value_type != nil {
		fields = append(fields, runvariable.FieldValueType)
	}
	if m.source_type != nil {
		fields = append(fields, runvariable.FieldSourceType)
	}
	if m.source_expr != nil {
		fields = append(fields, runvariable.FieldSourceExpr)
	}
	if m.scope != nil {
		fields = append(fields, runvariable.FieldScope)
	}
	if m.is_secret != nil {
		fields = append(fields, runvariable.FieldIsSecret)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunVariableMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runvariable.FieldCreateTime:
		return m.CreateTime()
	case runvariable.FieldUpdateTime:
		return m.UpdateTime()
	case runvariable.FieldIsDeleted:
		return m.IsDeleted()
	case runvariable.FieldStatus:
		return m.Status()
	case runvariable.FieldScenarioRunID:
		return m.ScenarioRunID()
	case runvariable.FieldRequestRunID:
		return m.RequestRunID()
	case runvariable.FieldScenarioCaseID:
		return m.ScenarioCaseID()
	case runvariable.FieldRequestID:
		return m.RequestID()
	case runvariable.FieldDatasetID:
		return m.DatasetID()
	case runvariable.FieldVarName:
		return m.VarName()
	case runvariable.FieldVarValue:
		return m.VarValue()
	case runvariable.FieldValueType:
		return m.ValueType()
	case runvariable.FieldSourceType:
		return m.SourceType()
	case runvariable.FieldSourceExpr:
		return m.SourceExpr()
	case runvariable.FieldScope:
		return m.Scope()
	case runvariable.FieldIsSecret:
		return m.IsSecret()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunVariableMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runvariable.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case runvariable.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case runvariable.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case runvariable.FieldStatus:
		return m.OldStatus(ctx)
	case runvariable.FieldScenarioRunID:
		return m.OldScenarioRunID(ctx)
	case runvariable.FieldRequestRunID:
		return m.OldRequestRunID(ctx)
	case runvariable.FieldScenarioCaseID:
		return m.OldScenarioCaseID(ctx)
	case runvariable.FieldRequestID:
		return m.OldRequestID(ctx)
	case runvariable.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case runvariable.FieldVarName:
		return m.OldVarName(ctx)
	case runvariable.FieldVarValue:
		return m.OldVarValue(ctx)
	case runvariable.FieldValueType:
		return m.OldValueType(ctx)
	case runvariable.FieldSourceType:
		return m.OldSourceType(ctx)
	case runvariable.FieldSourceExpr:
		return m.OldSourceExpr(ctx)
	case runvariable.FieldScope:
		return m.OldScope(ctx)
	case runvariable.FieldIsSecret:
		return m.OldIsSecret(ctx)
	}
	return nil, fmt.Errorf("unknown RunVariable field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunVariableMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runvariable.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case runvariable.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case runvariable.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case runvariable.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case runvariable.FieldScenarioRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioRunID(v)
		return nil
	case runvariable.FieldRequestRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestRunID(v)
		return nil
	case runvariable.FieldScenarioCaseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioCaseID(v)
		return nil
	case runvariable.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case runvariable.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case runvariable.FieldVarName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVarName(v)
		return nil
	case runvariable.FieldVarValue:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVarValue(v)
		return nil
	case runvariable.FieldValueType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueType(v)
		return nil
	case runvariable.FieldSourceType:
		v, ok := value.(runvariable.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case runvariable.FieldSourceExpr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceExpr(v)
		return nil
	case runvariable.FieldScope:
		v, ok := value.(runvariable.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case runvariable.FieldIsSecret:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSecret(v)
		return nil
	}
	return fmt.Errorf("unknown RunVariable field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunVariableMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, runvariable.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, runvariable.FieldStatus)
	}
	if m.addscenario_run_id != nil {
		fields = append(fields, runvariable.FieldScenarioRunID)
	}
	if m.addrequest_run_id != nil {
		fields = append(fields, runvariable.FieldRequestRunID)
	}
	if m.addscenario_case_id != nil {
		fields = append(fields, runvariable.FieldScenarioCaseID)
	}
	if m.addrequest_id != nil {
		fields = append(fields, runvariable.FieldRequestID)
	}
	if m.adddataset_id != nil {
		fields = append(fields, runvariable.FieldDatasetID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunVariableMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runvariable.FieldIsDeleted:
		return m.AddedIsDeleted()
	case runvariable.FieldStatus:
		return m.AddedStatus()
	case runvariable.FieldScenarioRunID:
		return m.AddedScenarioRunID()
	case runvariable.FieldRequestRunID:
		return m.AddedRequestRunID()
	case runvariable.FieldScenarioCaseID:
		return m.AddedScenarioCaseID()
	case runvariable.FieldRequestID:
		return m.AddedRequestID()
	case runvariable.FieldDatasetID:
		return m.AddedDatasetID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunVariableMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runvariable.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case runvariable.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case runvariable.FieldScenarioRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioRunID(v)
		return nil
	case runvariable.FieldRequestRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestRunID(v)
		return nil
	case runvariable.FieldScenarioCaseID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioCaseID(v)
		return nil
	case runvariable.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case runvariable.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDatasetID(v)
		return nil
	}
	return fmt.Errorf("unknown RunVariable numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunVariableMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runvariable.FieldScenarioRunID) {
		fields = append(fields, runvariable.FieldScenarioRunID)
	}
	if m.FieldCleared(runvariable.FieldScenarioCaseID) {
		fields = append(fields, runvariable.FieldScenarioCaseID)
	}
	if m.FieldCleared(runvariable.FieldDatasetID) {
		fields = append(fields, runvariable.FieldDatasetID)
	}
	if m.FieldCleared(runvariable.FieldVarValue) {
		fields = append(fields, runvariable.FieldVarValue)
	}
	if m.FieldCleared(runvariable.FieldSourceExpr) {
		fields = append(fields, runvariable.FieldSourceExpr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunVariableMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunVariableMutation) ClearField(name string) error {
	switch name {
	case runvariable.FieldScenarioRunID:
		m.ClearScenarioRunID()
		return nil
	case runvariable.FieldScenarioCaseID:
		m.ClearScenarioCaseID()
		return nil
	case runvariable.FieldDatasetID:
		m.ClearDatasetID()
		return nil
	case runvariable.FieldVarValue:
		m.ClearVarValue()
		return nil
	case runvariable.FieldSourceExpr:
		m.ClearSourceExpr()
		return nil
	}
	return fmt.Errorf("unknown RunVariable nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunVariableMutation) ResetField(name string) error {
	switch name {
	case runvariable.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case runvariable.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case runvariable.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case runvariable.FieldStatus:
		m.ResetStatus()
		return nil
	case runvariable.FieldScenarioRunID:
		m.ResetScenarioRunID()
		return nil
	case runvariable.FieldRequestRunID:
		m.ResetRequestRunID()
		return nil
	case runvariable.FieldScenarioCaseID:
		m.ResetScenarioCaseID()
		return nil
	case runvariable.FieldRequestID:
		m.ResetRequestID()
		return nil
	case runvariable.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case runvariable.FieldVarName:
		m.ResetVarName()
		return nil
	case runvariable.FieldVarValue:
		m.ResetVarValue()
		return nil
	case runvariable.FieldValueType:
		m.ResetValueType()
		return nil
	case runvariable.FieldSourceType:
		m.ResetSourceType()
		return nil
	case runvariable.FieldSourceExpr:
		m.ResetSourceExpr()
		return nil
	case runvariable.FieldScope:
		m.ResetScope()
		return nil
	case runvariable.FieldIsSecret:
		m.ResetIsSecret()
		return nil
	}
	return fmt.Errorf("unknown RunVariable field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunVariableMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunVariableMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunVariableMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunVariableMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunVariableMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunVariableMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunVariableMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RunVariable unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunVariableMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RunVariable edge %s", name)
}

// ScenarioMutation represents an operation that mutates the Scenario nodes in the graph.
type ScenarioMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	create_time   *time.Time
	update_time   *time.Time
	is_deleted    *int64
	addis_deleted *int64
	status        *int
	addstatus     *int
	env_id        *int64
	addenv_id     *int64
	name          *string
	description   *string
	run_mode      *scenario.RunMode
	stop_on_fail  *bool
	sort          *int
	addsort       *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Scenario, error)
	predicates    []predicate.Scenario
}

var _ ent.Mutation = (*ScenarioMutation)(nil)

// scenarioOption allows management of the mutation configuration using functional options.
type scenarioOption func(*ScenarioMutation)

// newScenarioMutation creates new mutation for the Scenario entity.
func newScenarioMutation(c config, op Op, opts ...scenarioOption) *ScenarioMutation {
	m := &ScenarioMutation{
		config:        c,
		op:            op,
		typ:           TypeScenario,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioID sets the ID field of the mutation.
func withScenarioID(id int64) scenarioOption {
	return func(m *ScenarioMutation) {
		var (
			err   error
			once  sync.Once
			value *Scenario
		)
		m.oldValue = func(ctx context.Context) (*Scenario, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Scenario.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenario sets the old Scenario of the mutation.
func withScenario(node *Scenario) scenarioOption {
	return func(m *ScenarioMutation) {
		m.oldValue = func(context.Context) (*Scenario, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Scenario entities.
func (m *ScenarioMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Scenario.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ScenarioMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ScenarioMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ScenarioMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ScenarioMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ScenarioMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ScenarioMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ScenarioMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ScenarioMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *ScenarioMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *ScenarioMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ScenarioMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *ScenarioMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *ScenarioMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *ScenarioMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *ScenarioMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *ScenarioMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetEnvID sets the "env_id" field.
func (m *ScenarioMutation) SetEnvID(i int64) {
	m.env_id = &i
	m.addenv_id = nil
}

// EnvID returns the value of the "env_id" field in the mutation.
func (m *ScenarioMutation) EnvID() (r int64, exists bool) {
	v := m.env_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvID returns the old "env_id" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldEnvID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvID: %w", err)
	}
	return oldValue.EnvID, nil
}

// AddEnvID adds i to the "env_id" field.
func (m *ScenarioMutation) AddEnvID(i int64) {
	if m.addenv_id != nil {
		*m.addenv_id += i
	} else {
		m.addenv_id = &i
	}
}

// AddedEnvID returns the value that was added to the "env_id" field in this mutation.
func (m *ScenarioMutation) AddedEnvID() (r int64, exists bool) {
	v := m.addenv_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnvID clears the value of the "env_id" field.
func (m *ScenarioMutation) ClearEnvID() {
	m.env_id = nil
	m.addenv_id = nil
	m.clearedFields[scenario.FieldEnvID] = struct{}{}
}

// EnvIDCleared returns if the "env_id" field was cleared in this mutation.
func (m *ScenarioMutation) EnvIDCleared() bool {
	_, ok := m.clearedFields[scenario.FieldEnvID]
	return ok
}

// ResetEnvID resets all changes to the "env_id" field.
func (m *ScenarioMutation) ResetEnvID() {
	m.env_id = nil
	m.addenv_id = nil
	delete(m.clearedFields, scenario.FieldEnvID)
}

// SetName sets the "name" field.
func (m *ScenarioMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScenarioMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScenarioMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ScenarioMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ScenarioMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ScenarioMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[scenario.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ScenarioMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[scenario.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ScenarioMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, scenario.FieldDescription)
}

// SetRunMode sets the "run_mode" field.
func (m *ScenarioMutation) SetRunMode(sm scenario.RunMode) {
	m.run_mode = &sm
}

// RunMode returns the value of the "run_mode" field in the mutation.
func (m *ScenarioMutation) RunMode() (r scenario.RunMode, exists bool) {
	v := m.run_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldRunMode returns the old "run_mode" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldRunMode(ctx context.Context) (v scenario.RunMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunMode: %w", err)
	}
	return oldValue.RunMode, nil
}

// ResetRunMode resets all changes to the "run_mode" field.
func (m *ScenarioMutation) ResetRunMode() {
	m.run_mode = nil
}

// SetStopOnFail sets the "stop_on_fail" field.
func (m *ScenarioMutation) SetStopOnFail(b bool) {
	m.stop_on_fail = &b
}

// StopOnFail returns the value of the "stop_on_fail" field in the mutation.
func (m *ScenarioMutation) StopOnFail() (r bool, exists bool) {
	v := m.stop_on_fail
	if v == nil {
		return
	}
	return *v, true
}

// OldStopOnFail returns the old "stop_on_fail" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldStopOnFail(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopOnFail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopOnFail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopOnFail: %w", err)
	}
	return oldValue.StopOnFail, nil
}

// ResetStopOnFail resets all changes to the "stop_on_fail" field.
func (m *ScenarioMutation) ResetStopOnFail() {
	m.stop_on_fail = nil
}

// SetSort sets the "sort" field.
func (m *ScenarioMutation) SetSort(i int) {
	m.sort = &i
	m.addsort = nil
}

// Sort returns the value of the "sort" field in the mutation.
func (m *ScenarioMutation) Sort() (r int, exists bool) {
	v := m.sort
	if v == nil {
		return
	}
	return *v, true
}

// OldSort returns the old "sort" field's value of the Scenario entity.
// If the Scenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioMutation) OldSort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSort: %w", err)
	}
	return oldValue.Sort, nil
}

// AddSort adds i to the "sort" field.
func (m *ScenarioMutation) AddSort(i int) {
	if m.addsort != nil {
		*m.addsort += i
	} else {
		m.addsort = &i
	}
}

// AddedSort returns the value that was added to the "sort" field in this mutation.
func (m *ScenarioMutation) AddedSort() (r int, exists bool) {
	v := m.addsort
	if v == nil {
		return
	}
	return *v, true
}

// ResetSort resets all changes to the "sort" field.
func (m *ScenarioMutation) ResetSort() {
	m.sort = nil
	m.addsort = nil
}

// Where appends a list predicates to the ScenarioMutation builder.
func (m *ScenarioMutation) Where(ps ...predicate.Scenario) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Scenario, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Scenario).
func (m *ScenarioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.create_time != nil {
		fields = append(fields, scenario.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, scenario.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, scenario.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, scenario.FieldStatus)
	}
	if m.env_id != nil {
		fields = append(fields, scenario.FieldEnvID)
	}
	if m.name != nil {
		fields = append(fields, scenario.FieldName)
	}
	if m.description != nil {
		fields = append(fields, scenario.FieldDescription)
	}
	if m.run_mode != nil {
		fields = append(fields, scenario.FieldRunMode)
	}
	if m.stop_on_fail != nil {
		fields = append(fields, scenario.FieldStopOnFail)
	}
	if m.sort != nil {
		fields = append(fields, scenario.FieldSort)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenario.FieldCreateTime:
		return m.CreateTime()
	case scenario.FieldUpdateTime:
		return m.UpdateTime()
	case scenario.FieldIsDeleted:
		return m.IsDeleted()
	case scenario.FieldStatus:
		return m.Status()
	case scenario.FieldEnvID:
		return m.EnvID()
	case scenario.FieldName:
		return m.Name()
	case scenario.FieldDescription:
		return m.Description()
	case scenario.FieldRunMode:
		return m.RunMode()
	case scenario.FieldStopOnFail:
		return m.StopOnFail()
	case scenario.FieldSort:
		return m.Sort()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenario.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case scenario.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case scenario.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case scenario.FieldStatus:
		return m.OldStatus(ctx)
	case scenario.FieldEnvID:
		return m.OldEnvID(ctx)
	case scenario.FieldName:
		return m.OldName(ctx)
	case scenario.FieldDescription:
		return m.OldDescription(ctx)
	case scenario.FieldRunMode:
		return m.OldRunMode(ctx)
	case scenario.FieldStopOnFail:
		return m.OldStopOnFail(ctx)
	case scenario.FieldSort:
		return m.OldSort(ctx)
	}
	return nil, fmt.Errorf("unknown Scenario field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenario.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case scenario.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case scenario.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case scenario.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scenario.FieldEnvID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvID(v)
		return nil
	case scenario.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scenario.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case scenario.FieldRunMode:
		v, ok := value.(scenario.RunMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunMode(v)
		return nil
	case scenario.FieldStopOnFail:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopOnFail(v)
		return nil
	case scenario.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSort(v)
		return nil
	}
	return fmt.Errorf("unknown Scenario field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, scenario.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, scenario.FieldStatus)
	}
	if m.addenv_id != nil {
		fields = append(fields, scenario.FieldEnvID)
	}
	if m.addsort != nil {
		fields = append(fields, scenario.FieldSort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scenario.FieldIsDeleted:
		return m.AddedIsDeleted()
	case scenario.FieldStatus:
		return m.AddedStatus()
	case scenario.FieldEnvID:
		return m.AddedEnvID()
	case scenario.FieldSort:
		return m.AddedSort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scenario.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case scenario.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case scenario.FieldEnvID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnvID(v)
		return nil
	case scenario.FieldSort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSort(v)
		return nil
	}
	return fmt.Errorf("unknown Scenario numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scenario.FieldEnvID) {
		fields = append(fields, scenario.FieldEnvID)
	}
	if m.FieldCleared(scenario.FieldDescription) {
		fields = append(fields, scenario.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioMutation) ClearField(name string) error {
	switch name {
	case scenario.FieldEnvID:
		m.ClearEnvID()
		return nil
	case scenario.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Scenario nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioMutation) ResetField(name string) error {
	switch name {
	case scenario.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case scenario.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case scenario.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case scenario.FieldStatus:
		m.ResetStatus()
		return nil
	case scenario.FieldEnvID:
		m.ResetEnvID()
		return nil
	case scenario.FieldName:
		m.ResetName()
		return nil
	case scenario.FieldDescription:
		m.ResetDescription()
		return nil
	case scenario.FieldRunMode:
		m.ResetRunMode()
		return nil
	case scenario.FieldStopOnFail:
		m.ResetStopOnFail()
		return nil
	case scenario.FieldSort:
		m.ResetSort()
		return nil
	}
	return fmt.Errorf("unknown Scenario field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Scenario unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Scenario edge %s", name)
}

// ScenarioCaseMutation represents an operation that mutates the ScenarioCase nodes in the graph.
type ScenarioCaseMutation struct {
	config
	op               Op
	typ              string
	id               *int64
	create_time      *time.Time
	update_time      *time.Time
	is_deleted       *int64
	addis_deleted    *int64
	status           *int
	addstatus        *int
	scenario_id      *int64
	addscenario_id   *int64
	request_id       *int64
	addrequest_id    *int64
	step_no          *int
	addstep_no       *int
	dataset_id       *int64
	adddataset_id    *int64
	dataset_run_mode *scenariocase.DatasetRunMode
	is_enabled       *bool
	stop_on_fail     *bool
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ScenarioCase, error)
	predicates       []predicate.ScenarioCase
}

var _ ent.Mutation = (*ScenarioCaseMutation)(nil)

// scenariocaseOption allows management of the mutation configuration using functional options.
type scenariocaseOption func(*ScenarioCaseMutation)

// newScenarioCaseMutation creates new mutation for the ScenarioCase entity.
func newScenarioCaseMutation(c config, op Op, opts ...scenariocaseOption) *ScenarioCaseMutation {
	m := &ScenarioCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeScenarioCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioCaseID sets the ID field of the mutation.
func withScenarioCaseID(id int64) scenariocaseOption {
	return func(m *ScenarioCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *ScenarioCase
		)
		m.oldValue = func(ctx context.Context) (*ScenarioCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScenarioCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenarioCase sets the old ScenarioCase of the mutation.
func withScenarioCase(node *ScenarioCase) scenariocaseOption {
	return func(m *ScenarioCaseMutation) {
		m.oldValue = func(context.Context) (*ScenarioCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScenarioCase entities.
func (m *ScenarioCaseMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioCaseMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioCaseMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScenarioCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ScenarioCaseMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ScenarioCaseMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ScenarioCaseMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ScenarioCaseMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ScenarioCaseMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ScenarioCaseMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ScenarioCaseMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ScenarioCaseMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *ScenarioCaseMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *ScenarioCaseMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ScenarioCaseMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *ScenarioCaseMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *ScenarioCaseMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *ScenarioCaseMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *ScenarioCaseMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *ScenarioCaseMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetScenarioID sets the "scenario_id" field.
func (m *ScenarioCaseMutation) SetScenarioID(i int64) {
	m.scenario_id = &i
	m.addscenario_id = nil
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *ScenarioCaseMutation) ScenarioID() (r int64, exists bool) {
	v := m.scenario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldScenarioID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// AddScenarioID adds i to the "scenario_id" field.
func (m *ScenarioCaseMutation) AddScenarioID(i int64) {
	if m.addscenario_id != nil {
		*m.addscenario_id += i
	} else {
		m.addscenario_id = &i
	}
}

// AddedScenarioID returns the value that was added to the "scenario_id" field in this mutation.
func (m *ScenarioCaseMutation) AddedScenarioID() (r int64, exists bool) {
	v := m.addscenario_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *ScenarioCaseMutation) ResetScenarioID() {
	m.scenario_id = nil
	m.addscenario_id = nil
}

// SetRequestID sets the "request_id" field.
func (m *ScenarioCaseMutation) SetRequestID(i int64) {
	m.request_id = &i
	m.addrequest_id = nil
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ScenarioCaseMutation) RequestID() (r int64, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldRequestID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// AddRequestID adds i to the "request_id" field.
func (m *ScenarioCaseMutation) AddRequestID(i int64) {
	if m.addrequest_id != nil {
		*m.addrequest_id += i
	} else {
		m.addrequest_id = &i
	}
}

// AddedRequestID returns the value that was added to the "request_id" field in this mutation.
func (m *ScenarioCaseMutation) AddedRequestID() (r int64, exists bool) {
	v := m.addrequest_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ScenarioCaseMutation) ResetRequestID() {
	m.request_id = nil
	m.addrequest_id = nil
}

// SetStepNo sets the "step_no" field.
func (m *ScenarioCaseMutation) SetStepNo(i int) {
	m.step_no = &i
	m.addstep_no = nil
}

// StepNo returns the value of the "step_no" field in the mutation.
func (m *ScenarioCaseMutation) StepNo() (r int, exists bool) {
	v := m.step_no
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNo returns the old "step_no" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldStepNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNo: %w", err)
	}
	return oldValue.StepNo, nil
}

// AddStepNo adds i to the "step_no" field.
func (m *ScenarioCaseMutation) AddStepNo(i int) {
	if m.addstep_no != nil {
		*m.addstep_no += i
	} else {
		m.addstep_no = &i
	}
}

// AddedStepNo returns the value that was added to the "step_no" field in this mutation.
func (m *ScenarioCaseMutation) AddedStepNo() (r int, exists bool) {
	v := m.addstep_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNo resets all changes to the "step_no" field.
func (m *ScenarioCaseMutation) ResetStepNo() {
	m.step_no = nil
	m.addstep_no = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *ScenarioCaseMutation) SetDatasetID(i int64) {
	m.dataset_id = &i
	m.adddataset_id = nil
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *ScenarioCaseMutation) DatasetID() (r int64, exists bool) {
	v := m.dataset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldDatasetID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// AddDatasetID adds i to the "dataset_id" field.
func (m *ScenarioCaseMutation) AddDatasetID(i int64) {
	if m.adddataset_id != nil {
		*m.adddataset_id += i
	} else {
		m.adddataset_id = &i
	}
}

// AddedDatasetID returns the value that was added to the "dataset_id" field in this mutation.
func (m *ScenarioCaseMutation) AddedDatasetID() (r int64, exists bool) {
	v := m.adddataset_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDatasetID clears the value of the "dataset_id" field.
func (m *ScenarioCaseMutation) ClearDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	m.clearedFields[scenariocase.FieldDatasetID] = struct{}{}
}

// DatasetIDCleared returns if the "dataset_id" field was cleared in this mutation.
func (m *ScenarioCaseMutation) DatasetIDCleared() bool {
	_, ok := m.clearedFields[scenariocase.FieldDatasetID]
	return ok
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *ScenarioCaseMutation) ResetDatasetID() {
	m.dataset_id = nil
	m.adddataset_id = nil
	delete(m.clearedFields, scenariocase.FieldDatasetID)
}

// SetDatasetRunMode sets the "dataset_run_mode" field.
func (m *ScenarioCaseMutation) SetDatasetRunMode(srm scenariocase.DatasetRunMode) {
	m.dataset_run_mode = &srm
}

// DatasetRunMode returns the value of the "dataset_run_mode" field in the mutation.
func (m *ScenarioCaseMutation) DatasetRunMode() (r scenariocase.DatasetRunMode, exists bool) {
	v := m.dataset_run_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetRunMode returns the old "dataset_run_mode" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldDatasetRunMode(ctx context.Context) (v scenariocase.DatasetRunMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetRunMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetRunMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetRunMode: %w", err)
	}
	return oldValue.DatasetRunMode, nil
}

// ResetDatasetRunMode resets all changes to the "dataset_run_mode" field.
func (m *ScenarioCaseMutation) ResetDatasetRunMode() {
	m.dataset_run_mode = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *ScenarioCaseMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *ScenarioCaseMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *ScenarioCaseMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetStopOnFail sets the "stop_on_fail" field.
func (m *ScenarioCaseMutation) SetStopOnFail(b bool) {
	m.stop_on_fail = &b
}

// StopOnFail returns the value of the "stop_on_fail" field in the mutation.
func (m *ScenarioCaseMutation) StopOnFail() (r bool, exists bool) {
	v := m.stop_on_fail
	if v == nil {
		return
	}
	return *v, true
}

// OldStopOnFail returns the old "stop_on_fail" field's value of the ScenarioCase entity.
// If the ScenarioCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioCaseMutation) OldStopOnFail(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopOnFail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopOnFail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopOnFail: %w", err)
	}
	return oldValue.StopOnFail, nil
}

// ResetStopOnFail resets all changes to the "stop_on_fail" field.
func (m *ScenarioCaseMutation) ResetStopOnFail() {
	m.stop_on_fail = nil
}

// Where appends a list predicates to the ScenarioCaseMutation builder.
func (m *ScenarioCaseMutation) Where(ps ...predicate.ScenarioCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScenarioCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScenarioCase).
func (m *ScenarioCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioCaseMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.create_time != nil {
		fields = append(fields, scenariocase.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, scenariocase.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, scenariocase.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, scenariocase.FieldStatus)
	}
	if m.scenario_id != nil {
		fields = append(fields, scenariocase.FieldScenarioID)
	}
	if m.request_id != nil {
		fields = append(fields, scenariocase.FieldRequestID)
	}
	if m.step_no != nil {
		fields = append(fields, scenariocase.FieldStepNo)
	}
	if m.dataset_id != nil {
		fields = append(fields, scenariocase.FieldDatasetID)
	}
	if m.dataset_run_mode != nil {
		fields = append(fields, scenariocase.FieldDatasetRunMode)
	}
	if m.is_enabled != nil {
		fields = append(fields, scenariocase.FieldIsEnabled)
	}
	if m.stop_on_fail != nil {
		fields = append(fields, scenariocase.FieldStopOnFail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenariocase.FieldCreateTime:
		return m.CreateTime()
	case scenariocase.FieldUpdateTime:
		return m.UpdateTime()
	case scenariocase.FieldIsDeleted:
		return m.IsDeleted()
	case scenariocase.FieldStatus:
		return m.Status()
	case scenariocase.FieldScenarioID:
		return m.ScenarioID()
	case scenariocase.FieldRequestID:
		return m.RequestID()
	case scenariocase.FieldStepNo:
		return m.StepNo()
	case scenariocase.FieldDatasetID:
		return m.DatasetID()
	case scenariocase.FieldDatasetRunMode:
		return m.DatasetRunMode()
	case scenariocase.FieldIsEnabled:
		return m.IsEnabled()
	case scenariocase.FieldStopOnFail:
		return m.StopOnFail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenariocase.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case scenariocase.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case scenariocase.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case scenariocase.FieldStatus:
		return m.OldStatus(ctx)
	case scenariocase.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case scenariocase.FieldRequestID:
		return m.OldRequestID(ctx)
	case scenariocase.FieldStepNo:
		return m.OldStepNo(ctx)
	case scenariocase.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case scenariocase.FieldDatasetRunMode:
		return m.OldDatasetRunMode(ctx)
	case scenariocase.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case scenariocase.FieldStopOnFail:
		return m.OldStopOnFail(ctx)
	}
	return nil, fmt.Errorf("unknown ScenarioCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenariocase.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case scenariocase.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case scenariocase.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case scenariocase.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scenariocase.FieldScenarioID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case scenariocase.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case scenariocase.FieldStepNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNo(v)
		return nil
	case scenariocase.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case scenariocase.FieldDatasetRunMode:
		v, ok := value.(scenariocase.DatasetRunMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetRunMode(v)
		return nil
	case scenariocase.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case scenariocase.FieldStopOnFail:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopOnFail(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioCaseMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, scenariocase.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, scenariocase.FieldStatus)
	}
	if m.addscenario_id != nil {
		fields = append(fields, scenariocase.FieldScenarioID)
	}
	if m.addrequest_id != nil {
		fields = append(fields, scenariocase.FieldRequestID)
	}
	if m.addstep_no != nil {
		fields = append(fields, scenariocase.FieldStepNo)
	}
	if m.adddataset_id != nil {
		fields = append(fields, scenariocase.FieldDatasetID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioCaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scenariocase.FieldIsDeleted:
		return m.AddedIsDeleted()
	case scenariocase.FieldStatus:
		return m.AddedStatus()
	case scenariocase.FieldScenarioID:
		return m.AddedScenarioID()
	case scenariocase.FieldRequestID:
		return m.AddedRequestID()
	case scenariocase.FieldStepNo:
		return m.AddedStepNo()
	case scenariocase.FieldDatasetID:
		return m.AddedDatasetID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scenariocase.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case scenariocase.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case scenariocase.FieldScenarioID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioID(v)
		return nil
	case scenariocase.FieldRequestID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestID(v)
		return nil
	case scenariocase.FieldStepNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNo(v)
		return nil
	case scenariocase.FieldDatasetID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDatasetID(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scenariocase.FieldDatasetID) {
		fields = append(fields, scenariocase.FieldDatasetID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioCaseMutation) ClearField(name string) error {
	switch name {
	case scenariocase.FieldDatasetID:
		m.ClearDatasetID()
		return nil
	}
	return fmt.Errorf("unknown ScenarioCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioCaseMutation) ResetField(name string) error {
	switch name {
	case scenariocase.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case scenariocase.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case scenariocase.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case scenariocase.FieldStatus:
		m.ResetStatus()
		return nil
	case scenariocase.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case scenariocase.FieldRequestID:
		m.ResetRequestID()
		return nil
	case scenariocase.FieldStepNo:
		m.ResetStepNo()
		return nil
	case scenariocase.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case scenariocase.FieldDatasetRunMode:
		m.ResetDatasetRunMode()
		return nil
	case scenariocase.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case scenariocase.FieldStopOnFail:
		m.ResetStopOnFail()
		return nil
	}
	return fmt.Errorf("unknown ScenarioCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioCaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioCaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioCaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioCaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScenarioCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioCaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScenarioCase edge %s", name)
}

// ScenarioRunMutation represents an operation that mutates the ScenarioRun nodes in the graph.
type ScenarioRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int64
	create_time             *time.Time
	update_time             *time.Time
	is_deleted              *int64
	addis_deleted           *int64
	status                  *int
	addstatus               *int
	scenario_id             *int64
	addscenario_id          *int64
	env_id                  *int64
	addenv_id               *int64
	run_status              *scenariorun.RunStatus
	trigger_type            *scenariorun.TriggerType
	cancel_requested        *bool
	started_at              *time.Time
	finished_at             *time.Time
	total_request_runs      *int
	addtotal_request_runs   *int
	success_request_runs    *int
	addsuccess_request_runs *int
	failed_request_runs     *int
	addfailed_request_runs  *int
	is_success              *bool
	error_message           *string
	runtime_variables       *map[string]interface{}
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ScenarioRun, error)
	predicates              []predicate.ScenarioRun
}

var _ ent.Mutation = (*ScenarioRunMutation)(nil)

// scenariorunOption allows management of the mutation configuration using functional options.
type scenariorunOption func(*ScenarioRunMutation)

// newScenarioRunMutation creates new mutation for the ScenarioRun entity.
func newScenarioRunMutation(c config, op Op, opts ...scenariorunOption) *ScenarioRunMutation {
	m := &ScenarioRunMutation{
		config:        c,
		op:            op,
		typ:           TypeScenarioRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioRunID sets the ID field of the mutation.
func withScenarioRunID(id int64) scenariorunOption {
	return func(m *ScenarioRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ScenarioRun
		)
		m.oldValue = func(ctx context.Context) (*ScenarioRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScenarioRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenarioRun sets the old ScenarioRun of the mutation.
func withScenarioRun(node *ScenarioRun) scenariorunOption {
	return func(m *ScenarioRunMutation) {
		m.oldValue = func(context.Context) (*ScenarioRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScenarioRun entities.
func (m *ScenarioRunMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioRunMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioRunMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScenarioRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *ScenarioRunMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *ScenarioRunMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *ScenarioRunMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *ScenarioRunMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *ScenarioRunMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *ScenarioRunMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ScenarioRunMutation) SetIsDeleted(i int64) {
	m.is_deleted = &i
	m.addis_deleted = nil
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ScenarioRunMutation) IsDeleted() (r int64, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldIsDeleted(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// AddIsDeleted adds i to the "is_deleted" field.
func (m *ScenarioRunMutation) AddIsDeleted(i int64) {
	if m.addis_deleted != nil {
		*m.addis_deleted += i
	} else {
		m.addis_deleted = &i
	}
}

// AddedIsDeleted returns the value that was added to the "is_deleted" field in this mutation.
func (m *ScenarioRunMutation) AddedIsDeleted() (r int64, exists bool) {
	v := m.addis_deleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ScenarioRunMutation) ResetIsDeleted() {
	m.is_deleted = nil
	m.addis_deleted = nil
}

// SetStatus sets the "status" field.
func (m *ScenarioRunMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *ScenarioRunMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *ScenarioRunMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *ScenarioRunMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *ScenarioRunMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetScenarioID sets the "scenario_id" field.
func (m *ScenarioRunMutation) SetScenarioID(i int64) {
	m.scenario_id = &i
	m.addscenario_id = nil
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *ScenarioRunMutation) ScenarioID() (r int64, exists bool) {
	v := m.scenario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldScenarioID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// AddScenarioID adds i to the "scenario_id" field.
func (m *ScenarioRunMutation) AddScenarioID(i int64) {
	if m.addscenario_id != nil {
		*m.addscenario_id += i
	} else {
		m.addscenario_id = &i
	}
}

// AddedScenarioID returns the value that was added to the "scenario_id" field in this mutation.
func (m *ScenarioRunMutation) AddedScenarioID() (r int64, exists bool) {
	v := m.addscenario_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *ScenarioRunMutation) ResetScenarioID() {
	m.scenario_id = nil
	m.addscenario_id = nil
}

// SetEnvID sets the "env_id" field.
func (m *ScenarioRunMutation) SetEnvID(i int64) {
	m.env_id = &i
	m.addenv_id = nil
}

// EnvID returns the value of the "env_id" field in the mutation.
func (m *ScenarioRunMutation) EnvID() (r int64, exists bool) {
	v := m.env_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvID returns the old "env_id" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldEnvID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvID: %w", err)
	}
	return oldValue.EnvID, nil
}

// AddEnvID adds i to the "env_id" field.
func (m *ScenarioRunMutation) AddEnvID(i int64) {
	if m.addenv_id != nil {
		*m.addenv_id += i
	} else {
		m.addenv_id = &i
	}
}

// AddedEnvID returns the value that was added to the "env_id" field in this mutation.
func (m *ScenarioRunMutation) AddedEnvID() (r int64, exists bool) {
	v := m.addenv_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnvID clears the value of the "env_id" field.
func (m *ScenarioRunMutation) ClearEnvID() {
	m.env_id = nil
	m.addenv_id = nil
	m.clearedFields[scenariorun.FieldEnvID] = struct{}{}
}

// EnvIDCleared returns if the "env_id" field was cleared in this mutation.
func (m *ScenarioRunMutation) EnvIDCleared() bool {
	_, ok := m.clearedFields[scenariorun.FieldEnvID]
	return ok
}

// ResetEnvID resets all changes to the "env_id" field.
func (m *ScenarioRunMutation) ResetEnvID() {
	m.env_id = nil
	m.addenv_id = nil
	delete(m.clearedFields, scenariorun.FieldEnvID)
}

// SetRunStatus sets the "run_status" field.
func (m *ScenarioRunMutation) SetRunStatus(ss scenariorun.RunStatus) {
	m.run_status = &ss
}

// RunStatus returns the value of the "run_status" field in the mutation.
func (m *ScenarioRunMutation) RunStatus() (r scenariorun.RunStatus, exists bool) {
	v := m.run_status
	if v == nil {
		return
	}
	return *v, true
}

// OldRunStatus returns the old "run_status" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldRunStatus(ctx context.Context) (v scenariorun.RunStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunStatus: %w", err)
	}
	return oldValue.RunStatus, nil
}

// ResetRunStatus resets all changes to the "run_status" field.
func (m *ScenarioRunMutation) ResetRunStatus() {
	m.run_status = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *ScenarioRunMutation) SetTriggerType(st scenariorun.TriggerType) {
	m.trigger_type = &st
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *ScenarioRunMutation) TriggerType() (r scenariorun.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldTriggerType(ctx context.Context) (v scenariorun.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *ScenarioRunMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *ScenarioRunMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *ScenarioRunMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *ScenarioRunMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ScenarioRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScenarioRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ScenarioRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[scenariorun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ScenarioRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[scenariorun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScenarioRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, scenariorun.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ScenarioRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ScenarioRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ScenarioRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[scenariorun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ScenarioRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[scenariorun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ScenarioRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, scenariorun.FieldFinishedAt)
}

// SetTotalRequestRuns sets the "total_request_runs" field.
func (m *ScenarioRunMutation) SetTotalRequestRuns(i int) {
	m.total_request_runs = &i
	m.addtotal_request_runs = nil
}

// TotalRequestRuns returns the value of the "total_request_runs" field in the mutation.
func (m *ScenarioRunMutation) TotalRequestRuns() (r int, exists bool) {
	v := m.total_request_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRequestRuns returns the old "total_request_runs" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldTotalRequestRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRequestRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRequestRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRequestRuns: %w", err)
	}
	return oldValue.TotalRequestRuns, nil
}

// AddTotalRequestRuns adds i to the "total_request_runs" field.
func (m *ScenarioRunMutation) AddTotalRequestRuns(i int) {
	if m.addtotal_request_runs != nil {
		*m.addtotal_request_runs += i
	} else {
		m.addtotal_request_runs = &i
	}
}

// AddedTotalRequestRuns returns the value that was added to the "total_request_runs" field in this mutation.
func (m *ScenarioRunMutation) AddedTotalRequestRuns() (r int, exists bool) {
	v := m.addtotal_request_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRequestRuns resets all changes to the "total_request_runs" field.
func (m *ScenarioRunMutation) ResetTotalRequestRuns() {
	m.total_request_runs = nil
	m.addtotal_request_runs = nil
}

// SetSuccessRequestRuns sets the "success_request_runs" field.
func (m *ScenarioRunMutation) SetSuccessRequestRuns(i int) {
	m.success_request_runs = &i
	m.addsuccess_request_runs = nil
}

// SuccessRequestRuns returns the value of the "success_request_runs" field in the mutation.
func (m *ScenarioRunMutation) SuccessRequestRuns() (r int, exists bool) {
	v := m.success_request_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessRequestRuns returns the old "success_request_runs" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldSuccessRequestRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessRequestRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessRequestRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessRequestRuns: %w", err)
	}
	return oldValue.SuccessRequestRuns, nil
}

// AddSuccessRequestRuns adds i to the "success_request_runs" field.
func (m *ScenarioRunMutation) AddSuccessRequestRuns(i int) {
	if m.addsuccess_request_runs != nil {
		*m.addsuccess_request_runs += i
	} else {
		m.addsuccess_request_runs = &i
	}
}

// AddedSuccessRequestRuns returns the value that was added to the "success_request_runs" field in this mutation.
func (m *ScenarioRunMutation) AddedSuccessRequestRuns() (r int, exists bool) {
	v := m.addsuccess_request_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessRequestRuns resets all changes to the "success_request_runs" field.
func (m *ScenarioRunMutation) ResetSuccessRequestRuns() {
	m.success_request_runs = nil
	m.addsuccess_request_runs = nil
}

// SetFailedRequestRuns sets the "failed_request_runs" field.
func (m *ScenarioRunMutation) SetFailedRequestRuns(i int) {
	m.failed_request_runs = &i
	m.addfailed_request_runs = nil
}

// FailedRequestRuns returns the value of the "failed_request_runs" field in the mutation.
func (m *ScenarioRunMutation) FailedRequestRuns() (r int, exists bool) {
	v := m.failed_request_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedRequestRuns returns the old "failed_request_runs" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldFailedRequestRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedRequestRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedRequestRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedRequestRuns: %w", err)
	}
	return oldValue.FailedRequestRuns, nil
}

// AddFailedRequestRuns adds i to the "failed_request_runs" field.
func (m *ScenarioRunMutation) AddFailedRequestRuns(i int) {
	if m.addfailed_request_runs != nil {
		*m.addfailed_request_runs += i
	} else {
		m.addfailed_request_runs = &i
	}
}

// AddedFailedRequestRuns returns the value that was added to the "failed_request_runs" field in this mutation.
func (m *ScenarioRunMutation) AddedFailedRequestRuns() (r int, exists bool) {
	v := m.addfailed_request_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedRequestRuns resets all changes to the "failed_request_runs" field.
func (m *ScenarioRunMutation) ResetFailedRequestRuns() {
	m.failed_request_runs = nil
	m.addfailed_request_runs = nil
}

// SetIsSuccess sets the "is_success" field.
func (m *ScenarioRunMutation) SetIsSuccess(b bool) {
	m.is_success = &b
}

// IsSuccess returns the value of the "is_success" field in the mutation.
func (m *ScenarioRunMutation) IsSuccess() (r bool, exists bool) {
	v := m.is_success
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSuccess returns the old "is_success" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldIsSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSuccess: %w", err)
	}
	return oldValue.IsSuccess, nil
}

// ResetIsSuccess resets all changes to the "is_success" field.
func (m *ScenarioRunMutation) ResetIsSuccess() {
	m.is_success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ScenarioRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScenarioRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScenarioRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scenariorun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScenarioRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scenariorun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScenarioRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scenariorun.FieldErrorMessage)
}

// SetRuntimeVariables sets the "runtime_variables" field.
func (m *ScenarioRunMutation) SetRuntimeVariables(value map[string]interface{}) {
	m.runtime_variables = &value
}

// RuntimeVariables returns the value of the "runtime_variables" field in the mutation.
func (m *ScenarioRunMutation) RuntimeVariables() (r map[string]interface{}, exists bool) {
	v := m.runtime_variables
	if v == nil {
		return
	}
	return *v, true
}

// OldRuntimeVariables returns the old "runtime_variables" field's value of the ScenarioRun entity.
// If the ScenarioRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioRunMutation) OldRuntimeVariables(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuntimeVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuntimeVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuntimeVariables: %w", err)
	}
	return oldValue.RuntimeVariables, nil
}

// ResetRuntimeVariables resets all changes to the "runtime_variables" field.
func (m *ScenarioRunMutation) ResetRuntimeVariables() {
	m.runtime_variables = nil
}

// Where appends a list predicates to the ScenarioRunMutation builder.
func (m *ScenarioRunMutation) Where(ps ...predicate.ScenarioRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScenarioRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScenarioRun).
func (m *ScenarioRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioRunMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.create_time != nil {
		fields = append(fields, scenariorun.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, scenariorun.FieldUpdateTime)
	}
	if m.is_deleted != nil {
		fields = append(fields, scenariorun.FieldIsDeleted)
	}
	if m.status != nil {
		fields = append(fields, scenariorun.FieldStatus)
	}
	if m.scenario_id != nil {
		fields = append(fields, scenariorun.FieldScenarioID)
	}
	if m.env_id != nil {
		fields = append(fields, scenariorun.FieldEnvID)
	}
	if m.run_status != nil {
		fields = append(fields, scenariorun.FieldRunStatus)
	}
	if m.trigger_type != nil {
		fields = append(fields, scenariorun.FieldTriggerType)
	}
	if m.cancel_requested != nil {
		fields = append(fields, scenariorun.FieldCancelRequested)
	}
	if m.started_at != nil {
		fields = append(fields, scenariorun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, scenariorun.FieldFinishedAt)
	}
	if m.total_request_runs != nil {
		fields = append(fields, scenariorun.FieldTotalRequestRuns)
	}
	if m.success_request_runs != nil {
		fields = append(fields, scenariorun.FieldSuccessRequestRuns)
	}
	if m.failed_request_runs != nil {
		fields = append(fields, scenariorun.FieldFailedRequestRuns)
	}
	if m.is_success != nil {
		fields = append(fields, scenariorun.FieldIsSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, scenariorun.FieldErrorMessage)
	}
	if m.runtime_variables != nil {
		fields = append(fields, scenariorun.FieldRuntimeVariables)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenariorun.FieldCreateTime:
		return m.CreateTime()
	case scenariorun.FieldUpdateTime:
		return m.UpdateTime()
	case scenariorun.FieldIsDeleted:
		return m.IsDeleted()
	case scenariorun.FieldStatus:
		return m.Status()
	case scenariorun.FieldScenarioID:
		return m.ScenarioID()
	case scenariorun.FieldEnvID:
		return m.EnvID()
	case scenariorun.FieldRunStatus:
		return m.RunStatus()
	case scenariorun.FieldTriggerType:
		return m.TriggerType()
	case scenariorun.FieldCancelRequested:
		return m.CancelRequested()
	case scenariorun.FieldStartedAt:
		return m.StartedAt()
	case scenariorun.FieldFinishedAt:
		return m.FinishedAt()
	case scenariorun.FieldTotalRequestRuns:
		return m.TotalRequestRuns()
	case scenariorun.FieldSuccessRequestRuns:
		return m.SuccessRequestRuns()
	case scenariorun.FieldFailedRequestRuns:
		return m.FailedRequestRuns()
	case scenariorun.FieldIsSuccess:
		return m.IsSuccess()
	case scenariorun.FieldErrorMessage:
		return m.ErrorMessage()
	case scenariorun.FieldRuntimeVariables:
		return m.RuntimeVariables()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenariorun.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case scenariorun.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case scenariorun.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case scenariorun.FieldStatus:
		return m.OldStatus(ctx)
	case scenariorun.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case scenariorun.FieldEnvID:
		return m.OldEnvID(ctx)
	case scenariorun.FieldRunStatus:
		return m.OldRunStatus(ctx)
	case scenariorun.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case scenariorun.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case scenariorun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scenariorun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case scenariorun.FieldTotalRequestRuns:
		return m.OldTotalRequestRuns(ctx)
	case scenariorun.FieldSuccessRequestRuns:
		return m.OldSuccessRequestRuns(ctx)
	case scenariorun.FieldFailedRequestRuns:
		return m.OldFailedRequestRuns(ctx)
	case scenariorun.FieldIsSuccess:
		return m.OldIsSuccess(ctx)
	case scenariorun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scenariorun.FieldRuntimeVariables:
		return m.OldRuntimeVariables(ctx)
	}
	return nil, fmt.Errorf("unknown ScenarioRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenariorun.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case scenariorun.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case scenariorun.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case scenariorun.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scenariorun.FieldScenarioID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case scenariorun.FieldEnvID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvID(v)
		return nil
	case scenariorun.FieldRunStatus:
		v, ok := value.(scenariorun.RunStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunStatus(v)
		return nil
	case scenariorun.FieldTriggerType:
		v, ok := value.(scenariorun.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case scenariorun.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case scenariorun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scenariorun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case scenariorun.FieldTotalRequestRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRequestRuns(v)
		return nil
	case scenariorun.FieldSuccessRequestRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessRequestRuns(v)
		return nil
	case scenariorun.FieldFailedRequestRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedRequestRuns(v)
		return nil
	case scenariorun.FieldIsSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSuccess(v)
		return nil
	case scenariorun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scenariorun.FieldRuntimeVariables:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuntimeVariables(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioRunMutation) AddedFields() []string {
	var fields []string
	if m.addis_deleted != nil {
		fields = append(fields, scenariorun.FieldIsDeleted)
	}
	if m.addstatus != nil {
		fields = append(fields, scenariorun.FieldStatus)
	}
	if m.addscenario_id != nil {
		fields = append(fields, scenariorun.FieldScenarioID)
	}
	if m.addenv_id != nil {
		fields = append(fields, scenariorun.FieldEnvID)
	}
	if m.addtotal_request_runs != nil {
		fields = append(fields, scenariorun.FieldTotalRequestRuns)
	}
	if m.addsuccess_request_runs != nil {
		fields = append(fields, scenariorun.FieldSuccessRequestRuns)
	}
	if m.addfailed_request_runs != nil {
		fields = append(fields, scenariorun.FieldFailedRequestRuns)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scenariorun.FieldIsDeleted:
		return m.AddedIsDeleted()
	case scenariorun.FieldStatus:
		return m.AddedStatus()
	case scenariorun.FieldScenarioID:
		return m.AddedScenarioID()
	case scenariorun.FieldEnvID:
		return m.AddedEnvID()
	case scenariorun.FieldTotalRequestRuns:
		return m.AddedTotalRequestRuns()
	case scenariorun.FieldSuccessRequestRuns:
		return m.AddedSuccessRequestRuns()
	case scenariorun.FieldFailedRequestRuns:
		return m.AddedFailedRequestRuns()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scenariorun.FieldIsDeleted:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIsDeleted(v)
		return nil
	case scenariorun.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case scenariorun.FieldScenarioID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioID(v)
		return nil
	case scenariorun.FieldEnvID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnvID(v)
		return nil
	case scenariorun.FieldTotalRequestRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRequestRuns(v)
		return nil
	case scenariorun.FieldSuccessRequestRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessRequestRuns(v)
		return nil
	case scenariorun.FieldFailedRequestRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedRequestRuns(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scenariorun.FieldEnvID) {
		fields = append(fields, scenariorun.FieldEnvID)
	}
	if m.FieldCleared(scenariorun.FieldStartedAt) {
		fields = append(fields, scenariorun.FieldStartedAt)
	}
	if m.FieldCleared(scenariorun.FieldFinishedAt) {
		fields = append(fields, scenariorun.FieldFinishedAt)
	}
	if m.FieldCleared(scenariorun.FieldErrorMessage) {
		fields = append(fields, scenariorun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioRunMutation) ClearField(name string) error {
	switch name {
	case scenariorun.FieldEnvID:
		m.ClearEnvID()
		return nil
	case scenariorun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case scenariorun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case scenariorun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScenarioRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioRunMutation) ResetField(name string) error {
	switch name {
	case scenariorun.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case scenariorun.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case scenariorun.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case scenariorun.FieldStatus:
		m.ResetStatus()
		return nil
	case scenariorun.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case scenariorun.FieldEnvID:
		m.ResetEnvID()
		return nil
	case scenariorun.FieldRunStatus:
		m.ResetRunStatus()
		return nil
	case scenariorun.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case scenariorun.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case scenariorun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scenariorun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case scenariorun.FieldTotalRequestRuns:
		m.ResetTotalRequestRuns()
		return nil
	case scenariorun.FieldSuccessRequestRuns:
		m.ResetSuccessRequestRuns()
		return nil
	case scenariorun.FieldFailedRequestRuns:
		m.ResetFailedRequestRuns()
		return nil
	case scenariorun.FieldIsSuccess:
		m.ResetIsSuccess()
		return nil
	case scenariorun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scenariorun.FieldRuntimeVariables:
		m.ResetRuntimeVariables()
		return nil
	}
	return fmt.Errorf("unknown ScenarioRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScenarioRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScenarioRun edge %s", name)
}
