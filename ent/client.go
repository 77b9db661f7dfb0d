// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ExileLine/exile-ai-test-platform-server/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/dataset"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/environment"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenario"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApiRequest is the client for interacting with the ApiRequest builders.
	ApiRequest *ApiRequestClient
	// AssertRule is the client for interacting with the AssertRule builders.
	AssertRule *AssertRuleClient
	// Dataset is the client for interacting with the Dataset builders.
	Dataset *DatasetClient
	// Environment is the client for interacting with the Environment builders.
	Environment *EnvironmentClient
	// ExtractRule is the client for interacting with the ExtractRule builders.
	ExtractRule *ExtractRuleClient
	// RequestRun is the client for interacting with the RequestRun builders.
	RequestRun *RequestRunClient
	// RunVariable is the client for interacting with the RunVariable builders.
	RunVariable *RunVariableClient
	// Scenario is the client for interacting with the Scenario builders.
	Scenario *ScenarioClient
	// ScenarioCase is the client for interacting with the ScenarioCase builders.
	ScenarioCase *ScenarioCaseClient
	// ScenarioRun is the client for interacting with the ScenarioRun builders.
	ScenarioRun *ScenarioRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApiRequest = NewApiRequestClient(c.config)
	c.AssertRule = NewAssertRuleClient(c.config)
	c.Dataset = NewDatasetClient(c.config)
	c.Environment = NewEnvironmentClient(c.config)
	c.ExtractRule = NewExtractRuleClient(c.config)
	c.RequestRun = NewRequestRunClient(c.config)
	c.RunVariable = NewRunVariableClient(c.config)
	c.Scenario = NewScenarioClient(c.config)
	c.ScenarioCase = NewScenarioCaseClient(c.config)
	c.ScenarioRun = NewScenarioRunClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		ApiRequest:   NewApiRequestClient(cfg),
		AssertRule:   NewAssertRuleClient(cfg),
		Dataset:      NewDatasetClient(cfg),
		Environment:  NewEnvironmentClient(cfg),
		ExtractRule:  NewExtractRuleClient(cfg),
		RequestRun:   NewRequestRunClient(cfg),
		RunVariable:  NewRunVariableClient(cfg),
		Scenario:     NewScenarioClient(cfg),
		ScenarioCase: NewScenarioCaseClient(cfg),
		ScenarioRun:  NewScenarioRunClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		ApiRequest:   NewApiRequestClient(cfg),
		AssertRule:   NewAssertRuleClient(cfg),
		Dataset:      NewDatasetClient(cfg),
		Environment:  NewEnvironmentClient(cfg),
		ExtractRule:  NewExtractRuleClient(cfg),
		RequestRun:   NewRequestRunClient(cfg),
		RunVariable:  NewRunVariableClient(cfg),
		Scenario:     NewScenarioClient(cfg),
		ScenarioCase: NewScenarioCaseClient(cfg),
		ScenarioRun:  NewScenarioRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApiRequest.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ApiRequest, c.AssertRule, c.Dataset, c.Environment, c.ExtractRule,
		c.RequestRun, c.RunVariable, c.Scenario, c.ScenarioCase, c.ScenarioRun,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ApiRequest, c.AssertRule, c.Dataset, c.Environment, c.ExtractRule,
		c.RequestRun, c.RunVariable, c.Scenario, c.ScenarioCase, c.ScenarioRun,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApiRequestMutation:
		return c.ApiRequest.mutate(ctx, m)
	case *AssertRuleMutation:
		return c.AssertRule.mutate(ctx, m)
	case *DatasetMutation:
		return c.Dataset.mutate(ctx, m)
	case *EnvironmentMutation:
		return c.Environment.mutate(ctx, m)
	case *ExtractRuleMutation:
		return c.ExtractRule.mutate(ctx, m)
	case *RequestRunMutation:
		return c.RequestRun.mutate(ctx, m)
	case *RunVariableMutation:
		return c.RunVariable.mutate(ctx, m)
	case *ScenarioMutation:
		return c.Scenario.mutate(ctx, m)
	case *ScenarioCaseMutation:
		return c.ScenarioCase.mutate(ctx, m)
	case *ScenarioRunMutation:
		return c.ScenarioRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApiRequestClient is a client for the ApiRequest schema.
type ApiRequestClient struct {
	config
}

// NewApiRequestClient returns a client for the ApiRequest from the given config.
func NewApiRequestClient(c config) *ApiRequestClient {
	return &ApiRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apirequest.Hooks(f(g(h())))`.
func (c *ApiRequestClient) Use(hooks ...Hook) {
	c.hooks.ApiRequest = append(c.hooks.ApiRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apirequest.Intercept(f(g(h())))`.
func (c *ApiRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApiRequest = append(c.inters.ApiRequest, interceptors...)
}

// Create returns a builder for creating a ApiRequest entity.
func (c *ApiRequestClient) Create() *ApiRequestCreate {
	mutation := newApiRequestMutation(c.config, OpCreate)
	return &ApiRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApiRequest entities.
func (c *ApiRequestClient) CreateBulk(builders ...*ApiRequestCreate) *ApiRequestCreateBulk {
	return &ApiRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApiRequestClient) MapCreateBulk(slice any, setFunc func(*ApiRequestCreate, int)) *ApiRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApiRequestCreateBulk{err: fmt.Errorf("calling to ApiRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApiRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApiRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApiRequest.
func (c *ApiRequestClient) Update() *ApiRequestUpdate {
	mutation := newApiRequestMutation(c.config, OpUpdate)
	return &ApiRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApiRequestClient) UpdateOne(_m *ApiRequest) *ApiRequestUpdateOne {
	mutation := newApiRequestMutation(c.config, OpUpdateOne, withApiRequest(_m))
	return &ApiRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApiRequestClient) UpdateOneID(id int64) *ApiRequestUpdateOne {
	mutation := newApiRequestMutation(c.config, OpUpdateOne, withApiRequestID(id))
	return &ApiRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApiRequest.
func (c *ApiRequestClient) Delete() *ApiRequestDelete {
	mutation := newApiRequestMutation(c.config, OpDelete)
	return &ApiRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApiRequestClient) DeleteOne(_m *ApiRequest) *ApiRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApiRequestClient) DeleteOneID(id int64) *ApiRequestDeleteOne {
	builder := c.Delete().Where(apirequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApiRequestDeleteOne{builder}
}

// Query returns a query builder for ApiRequest.
func (c *ApiRequestClient) Query() *ApiRequestQuery {
	return &ApiRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApiRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ApiRequest entity by its id.
func (c *ApiRequestClient) Get(ctx context.Context, id int64) (*ApiRequest, error) {
	return c.Query().Where(apirequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApiRequestClient) GetX(ctx context.Context, id int64) *ApiRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApiRequestClient) Hooks() []Hook {
	return c.hooks.ApiRequest
}

// Interceptors returns the client interceptors.
func (c *ApiRequestClient) Interceptors() []Interceptor {
	return c.inters.ApiRequest
}

func (c *ApiRequestClient) mutate(ctx context.Context, m *ApiRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApiRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApiRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApiRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApiRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApiRequest mutation op: %q", m.Op())
	}
}

// AssertRuleClient is a client for the AssertRule schema.
type AssertRuleClient struct {
	config
}

// NewAssertRuleClient returns a client for the AssertRule from the given config.
func NewAssertRuleClient(c config) *AssertRuleClient {
	return &AssertRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assertrule.Hooks(f(g(h())))`.
func (c *AssertRuleClient) Use(hooks ...Hook) {
	c.hooks.AssertRule = append(c.hooks.AssertRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assertrule.Intercept(f(g(h())))`.
func (c *AssertRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssertRule = append(c.inters.AssertRule, interceptors...)
}

// Create returns a builder for creating a AssertRule entity.
func (c *AssertRuleClient) Create() *AssertRuleCreate {
	mutation := newAssertRuleMutation(c.config, OpCreate)
	return &AssertRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssertRule entities.
func (c *AssertRuleClient) CreateBulk(builders ...*AssertRuleCreate) *AssertRuleCreateBulk {
	return &AssertRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssertRuleClient) MapCreateBulk(slice any, setFunc func(*AssertRuleCreate, int)) *AssertRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssertRuleCreateBulk{err: fmt.Errorf("calling to AssertRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssertRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssertRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssertRule.
func (c *AssertRuleClient) Update() *AssertRuleUpdate {
	mutation := newAssertRuleMutation(c.config, OpUpdate)
	return &AssertRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssertRuleClient) UpdateOne(_m *AssertRule) *AssertRuleUpdateOne {
	mutation := newAssertRuleMutation(c.config, OpUpdateOne, withAssertRule(_m))
	return &AssertRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssertRuleClient) UpdateOneID(id int64) *AssertRuleUpdateOne {
	mutation := newAssertRuleMutation(c.config, OpUpdateOne, withAssertRuleID(id))
	return &AssertRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssertRule.
func (c *AssertRuleClient) Delete() *AssertRuleDelete {
	mutation := newAssertRuleMutation(c.config, OpDelete)
	return &AssertRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssertRuleClient) DeleteOne(_m *AssertRule) *AssertRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssertRuleClient) DeleteOneID(id int64) *AssertRuleDeleteOne {
	builder := c.Delete().Where(assertrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssertRuleDeleteOne{builder}
}

// Query returns a query builder for AssertRule.
func (c *AssertRuleClient) Query() *AssertRuleQuery {
	return &AssertRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssertRule},
		inters: c.Interceptors(),
	}
}

// Get returns a AssertRule entity by its id.
func (c *AssertRuleClient) Get(ctx context.Context, id int64) (*AssertRule, error) {
	return c.Query().Where(assertrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssertRuleClient) GetX(ctx context.Context, id int64) *AssertRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssertRuleClient) Hooks() []Hook {
	return c.hooks.AssertRule
}

// Interceptors returns the client interceptors.
func (c *AssertRuleClient) Interceptors() []Interceptor {
	return c.inters.AssertRule
}

func (c *AssertRuleClient) mutate(ctx context.Context, m *AssertRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssertRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssertRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssertRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssertRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssertRule mutation op: %q", m.Op())
	}
}

// DatasetClient is a client for the Dataset schema.
type DatasetClient struct {
	config
}

// NewDatasetClient returns a client for the Dataset from the given config.
func NewDatasetClient(c config) *DatasetClient {
	return &DatasetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dataset.Hooks(f(g(h())))`.
func (c *DatasetClient) Use(hooks ...Hook) {
	c.hooks.Dataset = append(c.hooks.Dataset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dataset.Intercept(f(g(h())))`.
func (c *DatasetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Dataset = append(c.inters.Dataset, interceptors...)
}

// Create returns a builder for creating a Dataset entity.
func (c *DatasetClient) Create() *DatasetCreate {
	mutation := newDatasetMutation(c.config, OpCreate)
	return &DatasetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Dataset entities.
func (c *DatasetClient) CreateBulk(builders ...*DatasetCreate) *DatasetCreateBulk {
	return &DatasetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DatasetClient) MapCreateBulk(slice any, setFunc func(*DatasetCreate, int)) *DatasetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DatasetCreateBulk{err: fmt.Errorf("calling to DatasetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DatasetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DatasetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Dataset.
func (c *DatasetClient) Update() *DatasetUpdate {
	mutation := newDatasetMutation(c.config, OpUpdate)
	return &DatasetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DatasetClient) UpdateOne(_m *Dataset) *DatasetUpdateOne {
	mutation := newDatasetMutation(c.config, OpUpdateOne, withDataset(_m))
	return &DatasetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DatasetClient) UpdateOneID(id int64) *DatasetUpdateOne {
	mutation := newDatasetMutation(c.config, OpUpdateOne, withDatasetID(id))
	return &DatasetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Dataset.
func (c *DatasetClient) Delete() *DatasetDelete {
	mutation := newDatasetMutation(c.config, OpDelete)
	return &DatasetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DatasetClient) DeleteOne(_m *Dataset) *DatasetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DatasetClient) DeleteOneID(id int64) *DatasetDeleteOne {
	builder := c.Delete().Where(dataset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DatasetDeleteOne{builder}
}

// Query returns a query builder for Dataset.
func (c *DatasetClient) Query() *DatasetQuery {
	return &DatasetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataset},
		inters: c.Interceptors(),
	}
}

// Get returns a Dataset entity by its id.
func (c *DatasetClient) Get(ctx context.Context, id int64) (*Dataset, error) {
	return c.Query().Where(dataset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DatasetClient) GetX(ctx context.Context, id int64) *Dataset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DatasetClient) Hooks() []Hook {
	return c.hooks.Dataset
}

// Interceptors returns the client interceptors.
func (c *DatasetClient) Interceptors() []Interceptor {
	return c.inters.Dataset
}

func (c *DatasetClient) mutate(ctx context.Context, m *DatasetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DatasetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DatasetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DatasetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DatasetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Dataset mutation op: %q", m.Op())
	}
}

// EnvironmentClient is a client for the Environment schema.
type EnvironmentClient struct {
	config
}

// NewEnvironmentClient returns a client for the Environment from the given config.
func NewEnvironmentClient(c config) *EnvironmentClient {
	return &EnvironmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `environment.Hooks(f(g(h())))`.
func (c *EnvironmentClient) Use(hooks ...Hook) {
	c.hooks.Environment = append(c.hooks.Environment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `environment.Intercept(f(g(h())))`.
func (c *EnvironmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Environment = append(c.inters.Environment, interceptors...)
}

// Create returns a builder for creating a Environment entity.
func (c *EnvironmentClient) Create() *EnvironmentCreate {
	mutation := newEnvironmentMutation(c.config, OpCreate)
	return &EnvironmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Environment entities.
func (c *EnvironmentClient) CreateBulk(builders ...*EnvironmentCreate) *EnvironmentCreateBulk {
	return &EnvironmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnvironmentClient) MapCreateBulk(slice any, setFunc func(*EnvironmentCreate, int)) *EnvironmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnvironmentCreateBulk{err: fmt.Errorf("calling to EnvironmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnvironmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnvironmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Environment.
func (c *EnvironmentClient) Update() *EnvironmentUpdate {
	mutation := newEnvironmentMutation(c.config, OpUpdate)
	return &EnvironmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnvironmentClient) UpdateOne(_m *Environment) *EnvironmentUpdateOne {
	mutation := newEnvironmentMutation(c.config, OpUpdateOne, withEnvironment(_m))
	return &EnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnvironmentClient) UpdateOneID(id int64) *EnvironmentUpdateOne {
	mutation := newEnvironmentMutation(c.config, OpUpdateOne, withEnvironmentID(id))
	return &EnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Environment.
func (c *EnvironmentClient) Delete() *EnvironmentDelete {
	mutation := newEnvironmentMutation(c.config, OpDelete)
	return &EnvironmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnvironmentClient) DeleteOne(_m *Environment) *EnvironmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnvironmentClient) DeleteOneID(id int64) *EnvironmentDeleteOne {
	builder := c.Delete().Where(environment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnvironmentDeleteOne{builder}
}

// Query returns a query builder for Environment.
func (c *EnvironmentClient) Query() *EnvironmentQuery {
	return &EnvironmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnvironment},
		inters: c.Interceptors(),
	}
}

// Get returns a Environment entity by its id.
func (c *EnvironmentClient) Get(ctx context.Context, id int64) (*Environment, error) {
	return c.Query().Where(environment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnvironmentClient) GetX(ctx context.Context, id int64) *Environment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EnvironmentClient) Hooks() []Hook {
	return c.hooks.Environment
}

// Interceptors returns the client interceptors.
func (c *EnvironmentClient) Interceptors() []Interceptor {
	return c.inters.Environment
}

func (c *EnvironmentClient) mutate(ctx context.Context, m *EnvironmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnvironmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnvironmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnvironmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnvironmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Environment mutation op: %q", m.Op())
	}
}

// ExtractRuleClient is a client for the ExtractRule schema.
type ExtractRuleClient struct {
	config
}

// NewExtractRuleClient returns a client for the ExtractRule from the given config.
func NewExtractRuleClient(c config) *ExtractRuleClient {
	return &ExtractRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractrule.Hooks(f(g(h())))`.
func (c *ExtractRuleClient) Use(hooks ...Hook) {
	c.hooks.ExtractRule = append(c.hooks.ExtractRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractrule.Intercept(f(g(h())))`.
func (c *ExtractRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractRule = append(c.inters.ExtractRule, interceptors...)
}

// Create returns a builder for creating a ExtractRule entity.
func (c *ExtractRuleClient) Create() *ExtractRuleCreate {
	mutation := newExtractRuleMutation(c.config, OpCreate)
	return &ExtractRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractRule entities.
func (c *ExtractRuleClient) CreateBulk(builders ...*ExtractRuleCreate) *ExtractRuleCreateBulk {
	return &ExtractRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractRuleClient) MapCreateBulk(slice any, setFunc func(*ExtractRuleCreate, int)) *ExtractRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractRuleCreateBulk{err: fmt.Errorf("calling to ExtractRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractRule.
func (c *ExtractRuleClient) Update() *ExtractRuleUpdate {
	mutation := newExtractRuleMutation(c.config, OpUpdate)
	return &ExtractRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractRuleClient) UpdateOne(_m *ExtractRule) *ExtractRuleUpdateOne {
	mutation := newExtractRuleMutation(c.config, OpUpdateOne, withExtractRule(_m))
	return &ExtractRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractRuleClient) UpdateOneID(id int64) *ExtractRuleUpdateOne {
	mutation := newExtractRuleMutation(c.config, OpUpdateOne, withExtractRuleID(id))
	return &ExtractRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractRule.
func (c *ExtractRuleClient) Delete() *ExtractRuleDelete {
	mutation := newExtractRuleMutation(c.config, OpDelete)
	return &ExtractRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractRuleClient) DeleteOne(_m *ExtractRule) *ExtractRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractRuleClient) DeleteOneID(id int64) *ExtractRuleDeleteOne {
	builder := c.Delete().Where(extractrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractRuleDeleteOne{builder}
}

// Query returns a query builder for ExtractRule.
func (c *ExtractRuleClient) Query() *ExtractRuleQuery {
	return &ExtractRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractRule},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractRule entity by its id.
func (c *ExtractRuleClient) Get(ctx context.Context, id int64) (*ExtractRule, error) {
	return c.Query().Where(extractrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractRuleClient) GetX(ctx context.Context, id int64) *ExtractRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractRuleClient) Hooks() []Hook {
	return c.hooks.ExtractRule
}

// Interceptors returns the client interceptors.
func (c *ExtractRuleClient) Interceptors() []Interceptor {
	return c.inters.ExtractRule
}

func (c *ExtractRuleClient) mutate(ctx context.Context, m *ExtractRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractRule mutation op: %q", m.Op())
	}
}

// RequestRunClient is a client for the RequestRun schema.
type RequestRunClient struct {
	config
}

// NewRequestRunClient returns a client for the RequestRun from the given config.
func NewRequestRunClient(c config) *RequestRunClient {
	return &RequestRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requestrun.Hooks(f(g(h())))`.
func (c *RequestRunClient) Use(hooks ...Hook) {
	c.hooks.RequestRun = append(c.hooks.RequestRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requestrun.Intercept(f(g(h())))`.
func (c *RequestRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.RequestRun = append(c.inters.RequestRun, interceptors...)
}

// Create returns a builder for creating a RequestRun entity.
func (c *RequestRunClient) Create() *RequestRunCreate {
	mutation := newRequestRunMutation(c.config, OpCreate)
	return &RequestRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RequestRun entities.
func (c *RequestRunClient) CreateBulk(builders ...*RequestRunCreate) *RequestRunCreateBulk {
	return &RequestRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestRunClient) MapCreateBulk(slice any, setFunc func(*RequestRunCreate, int)) *RequestRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestRunCreateBulk{err: fmt.Errorf("calling to RequestRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RequestRun.
func (c *RequestRunClient) Update() *RequestRunUpdate {
	mutation := newRequestRunMutation(c.config, OpUpdate)
	return &RequestRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestRunClient) UpdateOne(_m *RequestRun) *RequestRunUpdateOne {
	mutation := newRequestRunMutation(c.config, OpUpdateOne, withRequestRun(_m))
	return &RequestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestRunClient) UpdateOneID(id int64) *RequestRunUpdateOne {
	mutation := newRequestRunMutation(c.config, OpUpdateOne, withRequestRunID(id))
	return &RequestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RequestRun.
func (c *RequestRunClient) Delete() *RequestRunDelete {
	mutation := newRequestRunMutation(c.config, OpDelete)
	return &RequestRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestRunClient) DeleteOne(_m *RequestRun) *RequestRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestRunClient) DeleteOneID(id int64) *RequestRunDeleteOne {
	builder := c.Delete().Where(requestrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestRunDeleteOne{builder}
}

// Query returns a query builder for RequestRun.
func (c *RequestRunClient) Query() *RequestRunQuery {
	return &RequestRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequestRun},
		inters: c.Interceptors(),
	}
}

// Get returns a RequestRun entity by its id.
func (c *RequestRunClient) Get(ctx context.Context, id int64) (*RequestRun, error) {
	return c.Query().Where(requestrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestRunClient) GetX(ctx context.Context, id int64) *RequestRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RequestRunClient) Hooks() []Hook {
	return c.hooks.RequestRun
}

// Interceptors returns the client interceptors.
func (c *RequestRunClient) Interceptors() []Interceptor {
	return c.inters.RequestRun
}

func (c *RequestRunClient) mutate(ctx context.Context, m *RequestRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RequestRun mutation op: %q", m.Op())
	}
}

// RunVariableClient is a client for the RunVariable schema.
type RunVariableClient struct {
	config
}

// NewRunVariableClient returns a client for the RunVariable from the given config.
func NewRunVariableClient(c config) *RunVariableClient {
	return &RunVariableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runvariable.Hooks(f(g(h())))`.
func (c *RunVariableClient) Use(hooks ...Hook) {
	c.hooks.RunVariable = append(c.hooks.RunVariable, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runvariable.Intercept(f(g(h())))`.
func (c *RunVariableClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunVariable = append(c.inters.RunVariable, interceptors...)
}

// Create returns a builder for creating a RunVariable entity.
func (c *RunVariableClient) Create() *RunVariableCreate {
	mutation := newRunVariableMutation(c.config, OpCreate)
	return &RunVariableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunVariable entities.
func (c *RunVariableClient) CreateBulk(builders ...*RunVariableCreate) *RunVariableCreateBulk {
	return &RunVariableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunVariableClient) MapCreateBulk(slice any, setFunc func(*RunVariableCreate, int)) *RunVariableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunVariableCreateBulk{err: fmt.Errorf("calling to RunVariableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunVariableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunVariableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunVariable.
func (c *RunVariableClient) Update() *RunVariableUpdate {
	mutation := newRunVariableMutation(c.config, OpUpdate)
	return &RunVariableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunVariableClient) UpdateOne(_m *RunVariable) *RunVariableUpdateOne {
	mutation := newRunVariableMutation(c.config, OpUpdateOne, withRunVariable(_m))
	return &RunVariableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunVariableClient) UpdateOneID(id int64) *RunVariableUpdateOne {
	mutation := newRunVariableMutation(c.config, OpUpdateOne, withRunVariableID(id))
	return &RunVariableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunVariable.
func (c *RunVariableClient) Delete() *RunVariableDelete {
	mutation := newRunVariableMutation(c.config, OpDelete)
	return &RunVariableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunVariableClient) DeleteOne(_m *RunVariable) *RunVariableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunVariableClient) DeleteOneID(id int64) *RunVariableDeleteOne {
	builder := c.Delete().Where(runvariable.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunVariableDeleteOne{builder}
}

// Query returns a query builder for RunVariable.
func (c *RunVariableClient) Query() *RunVariableQuery {
	return &RunVariableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunVariable},
		inters: c.Interceptors(),
	}
}

// Get returns a RunVariable entity by its id.
func (c *RunVariableClient) Get(ctx context.Context, id int64) (*RunVariable, error) {
	return c.Query().Where(runvariable.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunVariableClient) GetX(ctx context.Context, id int64) *RunVariable {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunVariableClient) Hooks() []Hook {
	return c.hooks.RunVariable
}

// Interceptors returns the client interceptors.
func (c *RunVariableClient) Interceptors() []Interceptor {
	return c.inters.RunVariable
}

func (c *RunVariableClient) mutate(ctx context.Context, m *RunVariableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunVariableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunVariableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunVariableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunVariableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunVariable mutation op: %q", m.Op())
	}
}

// ScenarioClient is a client for the Scenario schema.
type ScenarioClient struct {
	config
}

// NewScenarioClient returns a client for the Scenario from the given config.
func NewScenarioClient(c config) *ScenarioClient {
	return &ScenarioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scenario.Hooks(f(g(h())))`.
func (c *ScenarioClient) Use(hooks ...Hook) {
	c.hooks.Scenario = append(c.hooks.Scenario, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scenario.Intercept(f(g(h())))`.
func (c *ScenarioClient) Intercept(interceptors ...Interceptor) {
	c.inters.Scenario = append(c.inters.Scenario, interceptors...)
}

// Create returns a builder for creating a Scenario entity.
func (c *ScenarioClient) Create() *ScenarioCreate {
	mutation := newScenarioMutation(c.config, OpCreate)
	return &ScenarioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Scenario entities.
func (c *ScenarioClient) CreateBulk(builders ...*ScenarioCreate) *ScenarioCreateBulk {
	return &ScenarioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScenarioClient) MapCreateBulk(slice any, setFunc func(*ScenarioCreate, int)) *ScenarioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScenarioCreateBulk{err: fmt.Errorf("calling to ScenarioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScenarioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScenarioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Scenario.
func (c *ScenarioClient) Update() *ScenarioUpdate {
	mutation := newScenarioMutation(c.config, OpUpdate)
	return &ScenarioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScenarioClient) UpdateOne(_m *Scenario) *ScenarioUpdateOne {
	mutation := newScenarioMutation(c.config, OpUpdateOne, withScenario(_m))
	return &ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScenarioClient) UpdateOneID(id int64) *ScenarioUpdateOne {
	mutation := newScenarioMutation(c.config, OpUpdateOne, withScenarioID(id))
	return &ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Scenario.
func (c *ScenarioClient) Delete() *ScenarioDelete {
	mutation := newScenarioMutation(c.config, OpDelete)
	return &ScenarioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScenarioClient) DeleteOne(_m *Scenario) *ScenarioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScenarioClient) DeleteOneID(id int64) *ScenarioDeleteOne {
	builder := c.Delete().Where(scenario.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScenarioDeleteOne{builder}
}

// Query returns a query builder for Scenario.
func (c *ScenarioClient) Query() *ScenarioQuery {
	return &ScenarioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScenario},
		inters: c.Interceptors(),
	}
}

// Get returns a Scenario entity by its id.
func (c *ScenarioClient) Get(ctx context.Context, id int64) (*Scenario, error) {
	return c.Query().Where(scenario.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScenarioClient) GetX(ctx context.Context, id int64) *Scenario {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScenarioClient) Hooks() []Hook {
	return c.hooks.Scenario
}

// Interceptors returns the client interceptors.
func (c *ScenarioClient) Interceptors() []Interceptor {
	return c.inters.Scenario
}

func (c *ScenarioClient) mutate(ctx context.Context, m *ScenarioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScenarioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScenarioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScenarioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Scenario mutation op: %q", m.Op())
	}
}

// ScenarioCaseClient is a client for the ScenarioCase schema.
type ScenarioCaseClient struct {
	config
}

// NewScenarioCaseClient returns a client for the ScenarioCase from the given config.
func NewScenarioCaseClient(c config) *ScenarioCaseClient {
	return &ScenarioCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scenariocase.Hooks(f(g(h())))`.
func (c *ScenarioCaseClient) Use(hooks ...Hook) {
	c.hooks.ScenarioCase = append(c.hooks.ScenarioCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scenariocase.Intercept(f(g(h())))`.
func (c *ScenarioCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScenarioCase = append(c.inters.ScenarioCase, interceptors...)
}

// Create returns a builder for creating a ScenarioCase entity.
func (c *ScenarioCaseClient) Create() *ScenarioCaseCreate {
	mutation := newScenarioCaseMutation(c.config, OpCreate)
	return &ScenarioCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScenarioCase entities.
func (c *ScenarioCaseClient) CreateBulk(builders ...*ScenarioCaseCreate) *ScenarioCaseCreateBulk {
	return &ScenarioCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScenarioCaseClient) MapCreateBulk(slice any, setFunc func(*ScenarioCaseCreate, int)) *ScenarioCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScenarioCaseCreateBulk{err: fmt.Errorf("calling to ScenarioCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScenarioCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScenarioCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScenarioCase.
func (c *ScenarioCaseClient) Update() *ScenarioCaseUpdate {
	mutation := newScenarioCaseMutation(c.config, OpUpdate)
	return &ScenarioCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScenarioCaseClient) UpdateOne(_m *ScenarioCase) *ScenarioCaseUpdateOne {
	mutation := newScenarioCaseMutation(c.config, OpUpdateOne, withScenarioCase(_m))
	return &ScenarioCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScenarioCaseClient) UpdateOneID(id int64) *ScenarioCaseUpdateOne {
	mutation := newScenarioCaseMutation(c.config, OpUpdateOne, withScenarioCaseID(id))
	return &ScenarioCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScenarioCase.
func (c *ScenarioCaseClient) Delete() *ScenarioCaseDelete {
	mutation := newScenarioCaseMutation(c.config, OpDelete)
	return &ScenarioCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScenarioCaseClient) DeleteOne(_m *ScenarioCase) *ScenarioCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScenarioCaseClient) DeleteOneID(id int64) *ScenarioCaseDeleteOne {
	builder := c.Delete().Where(scenariocase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScenarioCaseDeleteOne{builder}
}

// Query returns a query builder for ScenarioCase.
func (c *ScenarioCaseClient) Query() *ScenarioCaseQuery {
	return &ScenarioCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScenarioCase},
		inters: c.Interceptors(),
	}
}

// Get returns a ScenarioCase entity by its id.
func (c *ScenarioCaseClient) Get(ctx context.Context, id int64) (*ScenarioCase, error) {
	return c.Query().Where(scenariocase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScenarioCaseClient) GetX(ctx context.Context, id int64) *ScenarioCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScenarioCaseClient) Hooks() []Hook {
	return c.hooks.ScenarioCase
}

// Interceptors returns the client interceptors.
func (c *ScenarioCaseClient) Interceptors() []Interceptor {
	return c.inters.ScenarioCase
}

func (c *ScenarioCaseClient) mutate(ctx context.Context, m *ScenarioCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScenarioCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScenarioCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScenarioCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScenarioCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScenarioCase mutation op: %q", m.Op())
	}
}

// ScenarioRunClient is a client for the ScenarioRun schema.
type ScenarioRunClient struct {
	config
}

// NewScenarioRunClient returns a client for the ScenarioRun from the given config.
func NewScenarioRunClient(c config) *ScenarioRunClient {
	return &ScenarioRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scenariorun.Hooks(f(g(h())))`.
func (c *ScenarioRunClient) Use(hooks ...Hook) {
	c.hooks.ScenarioRun = append(c.hooks.ScenarioRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scenariorun.Intercept(f(g(h())))`.
func (c *ScenarioRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScenarioRun = append(c.inters.ScenarioRun, interceptors...)
}

// Create returns a builder for creating a ScenarioRun entity.
func (c *ScenarioRunClient) Create() *ScenarioRunCreate {
	mutation := newScenarioRunMutation(c.config, OpCreate)
	return &ScenarioRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScenarioRun entities.
func (c *ScenarioRunClient) CreateBulk(builders ...*ScenarioRunCreate) *ScenarioRunCreateBulk {
	return &ScenarioRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScenarioRunClient) MapCreateBulk(slice any, setFunc func(*ScenarioRunCreate, int)) *ScenarioRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScenarioRunCreateBulk{err: fmt.Errorf("calling to ScenarioRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScenarioRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScenarioRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScenarioRun.
func (c *ScenarioRunClient) Update() *ScenarioRunUpdate {
	mutation := newScenarioRunMutation(c.config, OpUpdate)
	return &ScenarioRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScenarioRunClient) UpdateOne(_m *ScenarioRun) *ScenarioRunUpdateOne {
	mutation := newScenarioRunMutation(c.config, OpUpdateOne, withScenarioRun(_m))
	return &ScenarioRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScenarioRunClient) UpdateOneID(id int64) *ScenarioRunUpdateOne {
	mutation := newScenarioRunMutation(c.config, OpUpdateOne, withScenarioRunID(id))
	return &ScenarioRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScenarioRun.
func (c *ScenarioRunClient) Delete() *ScenarioRunDelete {
	mutation := newScenarioRunMutation(c.config, OpDelete)
	return &ScenarioRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScenarioRunClient) DeleteOne(_m *ScenarioRun) *ScenarioRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScenarioRunClient) DeleteOneID(id int64) *ScenarioRunDeleteOne {
	builder := c.Delete().Where(scenariorun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScenarioRunDeleteOne{builder}
}

// Query returns a query builder for ScenarioRun.
func (c *ScenarioRunClient) Query() *ScenarioRunQuery {
	return &ScenarioRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScenarioRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ScenarioRun entity by its id.
func (c *ScenarioRunClient) Get(ctx context.Context, id int64) (*ScenarioRun, error) {
	return c.Query().Where(scenariorun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScenarioRunClient) GetX(ctx context.Context, id int64) *ScenarioRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScenarioRunClient) Hooks() []Hook {
	return c.hooks.ScenarioRun
}

// Interceptors returns the client interceptors.
func (c *ScenarioRunClient) Interceptors() []Interceptor {
	return c.inters.ScenarioRun
}

func (c *ScenarioRunClient) mutate(ctx context.Context, m *ScenarioRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScenarioRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScenarioRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScenarioRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScenarioRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScenarioRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApiRequest, AssertRule, Dataset, Environment, ExtractRule, RequestRun,
		RunVariable, Scenario, ScenarioCase, ScenarioRun []ent.Hook
	}
	inters struct {
		ApiRequest, AssertRule, Dataset, Environment, ExtractRule, RequestRun,
		RunVariable, Scenario, ScenarioCase, ScenarioRun []ent.Interceptor
	}
)
