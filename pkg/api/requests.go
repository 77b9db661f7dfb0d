package api

import "encoding/json"

// CaseRunRequest is the body of POST /api/case/run.
type CaseRunRequest struct {
	RequestID int64          `json:"request_id"`
	DatasetID *int64         `json:"dataset_id,omitempty"`
	EnvID     *int64         `json:"env_id,omitempty"`
	Variables map[string]any `json:"variables,omitempty"`
}

// SubmitRunRequest is the body of POST /api/scenario/run.
type SubmitRunRequest struct {
	ScenarioID       int64          `json:"scenario_id"`
	EnvID            *int64         `json:"env_id,omitempty"`
	TriggerType      string         `json:"trigger_type,omitempty"`
	InitialVariables map[string]any `json:"initial_variables,omitempty"`
}

// CancelRunRequest is the body of POST /api/scenario/run/cancel.
type CancelRunRequest struct {
	ScenarioRunID int64 `json:"scenario_run_id"`
}

// DeleteRequest carries the id for body-addressed DELETE endpoints.
type DeleteRequest struct {
	ID int64 `json:"id"`
}

// EnvironmentRequest is the body of POST and PUT /api/environment.
// ID is required for PUT, ignored for POST.
type EnvironmentRequest struct {
	ID        int64          `json:"id,omitempty"`
	Name      string         `json:"name"`
	Variables map[string]any `json:"variables,omitempty"`
	IsDefault bool           `json:"is_default,omitempty"`
}

// CaseRequest is the body of POST and PUT /api/case.
type CaseRequest struct {
	ID              int64          `json:"id,omitempty"`
	EnvID           *int64         `json:"env_id,omitempty"`
	Name            string         `json:"name"`
	Method          string         `json:"method,omitempty"`
	URL             string         `json:"url"`
	Remark          *string        `json:"remark,omitempty"`
	BaseQueryParams map[string]any `json:"base_query_params,omitempty"`
	BaseHeaders     map[string]any `json:"base_headers,omitempty"`
	BaseCookies     map[string]any `json:"base_cookies,omitempty"`
	BodyType        string         `json:"body_type,omitempty"`
	BaseBodyData    map[string]any `json:"base_body_data,omitempty"`
	BaseBodyRaw     *string        `json:"base_body_raw,omitempty"`
	TimeoutMs       *int           `json:"timeout_ms,omitempty"`
	FollowRedirects *bool          `json:"follow_redirects,omitempty"`
	VerifySSL       *bool          `json:"verify_ssl,omitempty"`
	ProxyURL        *string        `json:"proxy_url,omitempty"`
	Sort            *int           `json:"sort,omitempty"`
	DatasetRunMode  string         `json:"dataset_run_mode,omitempty"`
}

// DatasetRequest is the body of POST and PUT /api/case/dataset.
type DatasetRequest struct {
	ID          int64          `json:"id,omitempty"`
	RequestID   int64          `json:"request_id"`
	Name        string         `json:"name"`
	Remark      *string        `json:"remark,omitempty"`
	Variables   map[string]any `json:"variables,omitempty"`
	QueryParams map[string]any `json:"query_params,omitempty"`
	Headers     map[string]any `json:"headers,omitempty"`
	Cookies     map[string]any `json:"cookies,omitempty"`
	BodyType    *string        `json:"body_type,omitempty"`
	BodyData    map[string]any `json:"body_data,omitempty"`
	BodyRaw     *string        `json:"body_raw,omitempty"`
	IsEnabled   *bool          `json:"is_enabled,omitempty"`
	Sort        *int           `json:"sort,omitempty"`
}

// DatasetDefaultRequest is the body of PUT /api/case/dataset/default.
type DatasetDefaultRequest struct {
	ID int64 `json:"id"`
}

// DatasetEnabledRequest is the body of PUT /api/case/dataset/enabled.
type DatasetEnabledRequest struct {
	ID        int64 `json:"id"`
	IsEnabled bool  `json:"is_enabled"`
}

// ExtractRuleRequest is the body of POST and PUT /api/case/extract.
type ExtractRuleRequest struct {
	ID           int64           `json:"id,omitempty"`
	RequestID    int64           `json:"request_id"`
	DatasetID    *int64          `json:"dataset_id,omitempty"`
	VarName      string          `json:"var_name"`
	SourceType   string          `json:"source_type"`
	SourceExpr   string          `json:"source_expr,omitempty"`
	DefaultValue json.RawMessage `json:"default_value,omitempty"`
	Required     *bool           `json:"required,omitempty"`
	Scope        string          `json:"scope,omitempty"`
	IsSecret     *bool           `json:"is_secret,omitempty"`
	IsEnabled    *bool           `json:"is_enabled,omitempty"`
	Sort         *int            `json:"sort,omitempty"`
}

// AssertRuleRequest is the body of POST and PUT /api/case/assert.
type AssertRuleRequest struct {
	ID            int64           `json:"id,omitempty"`
	RequestID     int64           `json:"request_id"`
	DatasetID     *int64          `json:"dataset_id,omitempty"`
	AssertType    string          `json:"assert_type"`
	SourceExpr    string          `json:"source_expr,omitempty"`
	Comparator    string          `json:"comparator,omitempty"`
	ExpectedValue json.RawMessage `json:"expected_value,omitempty"`
	Message       *string         `json:"message,omitempty"`
	IsEnabled     *bool           `json:"is_enabled,omitempty"`
	Sort          *int            `json:"sort,omitempty"`
}

// ScenarioRequest is the body of POST and PUT /api/scenario.
type ScenarioRequest struct {
	ID          int64   `json:"id,omitempty"`
	EnvID       *int64  `json:"env_id,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	RunMode     string  `json:"run_mode,omitempty"`
	StopOnFail  *bool   `json:"stop_on_fail,omitempty"`
	Sort        *int    `json:"sort,omitempty"`
}

// StepRequest is the body of POST and PUT /api/scenario/case.
type StepRequest struct {
	ID             int64  `json:"id,omitempty"`
	ScenarioID     int64  `json:"scenario_id,omitempty"`
	RequestID      int64  `json:"request_id,omitempty"`
	StepNo         int    `json:"step_no,omitempty"`
	DatasetID      *int64 `json:"dataset_id,omitempty"`
	DatasetRunMode string `json:"dataset_run_mode,omitempty"`
	IsEnabled      *bool  `json:"is_enabled,omitempty"`
	StopOnFail     *bool  `json:"stop_on_fail,omitempty"`
}

// StepReorderRequest is the body of PUT /api/scenario/case/reorder.
type StepReorderRequest struct {
	ID     int64 `json:"id"`
	StepNo int   `json:"step_no"`
}

// StepDatasetStrategyRequest is the body of PUT /api/scenario/case/dataset-strategy.
type StepDatasetStrategyRequest struct {
	ID             int64  `json:"id"`
	DatasetRunMode string `json:"dataset_run_mode"`
	DatasetID      *int64 `json:"dataset_id,omitempty"`
}
