// Code generated by ent, DO NOT EDIT.

package requestrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the requestrun type in the database.
	Label = "request_run"
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
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldScenarioRunID holds the string denoting the scenario_run_id field in the database.
	FieldScenarioRunID = "scenario_run_id"
	// FieldScenarioCaseID holds the string denoting the scenario_case_id field in the database.
	FieldScenarioCaseID = "scenario_case_id"
	// FieldDatasetID holds the string denoting the dataset_id field in the database.
	FieldDatasetID = "dataset_id"
	// FieldDatasetSnapshot holds the string denoting the dataset_snapshot field in the database.
	FieldDatasetSnapshot = "dataset_snapshot"
	// FieldRequestSnapshot holds the string denoting the request_snapshot field in the database.
	FieldRequestSnapshot = "request_snapshot"
	// FieldIsSuccess holds the string denoting the is_success field in the database.
	FieldIsSuccess = "is_success"
	// FieldResponseStatusCode holds the string denoting the response_status_code field in the database.
	FieldResponseStatusCode = "response_status_code"
	// FieldResponseHeaders holds the string denoting the response_headers field in the database.
	FieldResponseHeaders = "response_headers"
	// FieldResponseBody holds the string denoting the response_body field in the database.
	FieldResponseBody = "response_body"
	// FieldResponseTimeMs holds the string denoting the response_time_ms field in the database.
	FieldResponseTimeMs = "response_time_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldAssertionResults holds the string denoting the assertion_results field in the database.
	FieldAssertionResults = "assertion_results"
	// Table holds the table name of the requestrun in the database.
	Table = "exile_api_request_runs"
)

// Columns holds all SQL columns for requestrun fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldIsDeleted,
	FieldStatus,
	FieldRequestID,
	FieldScenarioRunID,
	FieldScenarioCaseID,
	FieldDatasetID,
	FieldDatasetSnapshot,
	FieldRequestSnapshot,
	FieldIsSuccess,
	FieldResponseStatusCode,
	FieldResponseHeaders,
	FieldResponseBody,
	FieldResponseTimeMs,
	FieldErrorMessage,
	FieldAssertionResults,
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
	// DefaultRequestSnapshot holds the default value on creation for the "request_snapshot" field.
	DefaultRequestSnapshot map[string]interface{}
	// DefaultIsSuccess holds the default value on creation for the "is_success" field.
	DefaultIsSuccess bool
	// DefaultResponseTimeMs holds the default value on creation for the "response_time_ms" field.
	DefaultResponseTimeMs int64
)

// OrderOption defines the ordering options for the RequestRun queries.
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

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByScenarioRunID orders the results by the scenario_run_id field.
func ByScenarioRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioRunID, opts...).ToFunc()
}

// ByScenarioCaseID orders the results by the scenario_case_id field.
func ByScenarioCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioCaseID, opts...).ToFunc()
}

// ByDatasetID orders the results by the dataset_id field.
func ByDatasetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetID, opts...).ToFunc()
}

// ByIsSuccess orders the results by the is_success field.
func ByIsSuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSuccess, opts...).ToFunc()
}

// ByResponseStatusCode orders the results by the response_status_code field.
func ByResponseStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseStatusCode, opts...).ToFunc()
}

// ByResponseBody orders the results by the response_body field.
func ByResponseBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseBody, opts...).ToFunc()
}

// ByResponseTimeMs orders the results by the response_time_ms field.
func ByResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
