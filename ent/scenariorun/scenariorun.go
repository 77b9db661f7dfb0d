// Code generated by ent, DO NOT EDIT.

package scenariorun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scenariorun type in the database.
	Label = "scenario_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldScenarioID holds the string denoting the scenario_id field in the database.
	FieldScenarioID = "scenario_id"
	// FieldEnvID holds the string denoting the env_id field in the database.
	FieldEnvID = "env_id"
	// FieldRunStatus holds the string denoting the run_status field in the database.
	FieldRunStatus = "run_status"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldTotalRequestRuns holds the string denoting the total_request_runs field in the database.
	FieldTotalRequestRuns = "total_request_runs"
	// FieldSuccessRequestRuns holds the string denoting the success_request_runs field in the database.
	FieldSuccessRequestRuns = "success_request_runs"
	// FieldFailedRequestRuns holds the string denoting the failed_request_runs field in the database.
	FieldFailedRequestRuns = "failed_request_runs"
	// FieldIsSuccess holds the string denoting the is_success field in the database.
	FieldIsSuccess = "is_success"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRuntimeVariables holds the string denoting the runtime_variables field in the database.
	FieldRuntimeVariables = "runtime_variables"
	// Table holds the table name of the scenariorun in the database.
	Table = "exile_test_scenario_runs"
)

// Columns holds all SQL columns for scenariorun fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldIsDeleted,
	FieldStatus,
	FieldScenarioID,
	FieldEnvID,
	FieldRunStatus,
	FieldTriggerType,
	FieldCancelRequested,
	FieldStartedAt,
	FieldFinishedAt,
	FieldTotalRequestRuns,
	FieldSuccessRequestRuns,
	FieldFailedRequestRuns,
	FieldIsSuccess,
	FieldErrorMessage,
	FieldRuntimeVariables,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted int64
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus int
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultTotalRequestRuns holds the default value on creation for the "total_request_runs" field.
	DefaultTotalRequestRuns int
	// DefaultSuccessRequestRuns holds the default value on creation for the "success_request_runs" field.
	DefaultSuccessRequestRuns int
	// DefaultFailedRequestRuns holds the default value on creation for the "failed_request_runs" field.
	DefaultFailedRequestRuns int
	// DefaultIsSuccess holds the default value on creation for the "is_success" field.
	DefaultIsSuccess bool
	// DefaultRuntimeVariables holds the default value on creation for the "runtime_variables" field.
	DefaultRuntimeVariables map[string]interface{}
)

// RunStatus defines the type for the "run_status" enum field.
type RunStatus string

// RunStatusQueued is the default value of the RunStatus enum.
const DefaultRunStatus = RunStatusQueued

// RunStatus values.
const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusSuccess  RunStatus = "success"
	RunStatusFailed   RunStatus = "failed"
	RunStatusCanceled RunStatus = "canceled"
)

func (rs RunStatus) String() string {
	return string(rs)
}

// RunStatusValidator is a validator for the "run_status" field enum values. It is called by the builders before save.
func RunStatusValidator(rs RunStatus) error {
	switch rs {
	case RunStatusQueued, RunStatusRunning, RunStatusSuccess, RunStatusFailed, RunStatusCanceled:
		return nil
	default:
		return fmt.Errorf("scenariorun: invalid enum value for run_status field: %q", rs)
	}
}

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerTypeManual is the default value of the TriggerType enum.
const DefaultTriggerType = TriggerTypeManual

// TriggerType values.
const (
	TriggerTypeManual   TriggerType = "manual"
	TriggerTypeSchedule TriggerType = "schedule"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeManual, TriggerTypeSchedule:
		return nil
	default:
		return fmt.Errorf("scenariorun: invalid enum value for trigger_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the ScenarioRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScenarioID orders the results by the scenario_id field.
func ByScenarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioID, opts...).ToFunc()
}

// ByEnvID orders the results by the env_id field.
func ByEnvID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnvID, opts...).ToFunc()
}

// ByRunStatus orders the results by the run_status field.
func ByRunStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunStatus, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByTotalRequestRuns orders the results by the total_request_runs field.
func ByTotalRequestRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRequestRuns, opts...).ToFunc()
}

// BySuccessRequestRuns orders the results by the success_request_runs field.
func BySuccessRequestRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessRequestRuns, opts...).ToFunc()
}

// ByFailedRequestRuns orders the results by the failed_request_runs field.
func ByFailedRequestRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedRequestRuns, opts...).ToFunc()
}

// ByIsSuccess orders the results by the is_success field.
func ByIsSuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSuccess, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
