// Code generated by ent, DO NOT EDIT.

package scenariocase

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scenariocase type in the database.
	Label = "scenario_case"
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
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldStepNo holds the string denoting the step_no field in the database.
	FieldStepNo = "step_no"
	// FieldDatasetID holds the string denoting the dataset_id field in the database.
	FieldDatasetID = "dataset_id"
	// FieldDatasetRunMode holds the string denoting the dataset_run_mode field in the database.
	FieldDatasetRunMode = "dataset_run_mode"
	// FieldIsEnabled holds the string denoting the is_enabled field in the database.
	FieldIsEnabled = "is_enabled"
	// FieldStopOnFail holds the string denoting the stop_on_fail field in the database.
	FieldStopOnFail = "stop_on_fail"
	// Table holds the table name of the scenariocase in the database.
	Table = "exile_test_scenario_cases"
)

// Columns holds all SQL columns for scenariocase fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldIsDeleted,
	FieldStatus,
	FieldScenarioID,
	FieldRequestID,
	FieldStepNo,
	FieldDatasetID,
	FieldDatasetRunMode,
	FieldIsEnabled,
	FieldStopOnFail,
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
	// DefaultStepNo holds the default value on creation for the "step_no" field.
	DefaultStepNo int
	// DefaultIsEnabled holds the default value on creation for the "is_enabled" field.
	DefaultIsEnabled bool
	// DefaultStopOnFail holds the default value on creation for the "stop_on_fail" field.
	DefaultStopOnFail bool
)

// DatasetRunMode defines the type for the "dataset_run_mode" enum field.
type DatasetRunMode string

// DatasetRunModeRequestDefault is the default value of the DatasetRunMode enum.
const DefaultDatasetRunMode = DatasetRunModeRequestDefault

// DatasetRunMode values.
const (
	DatasetRunModeRequestDefault DatasetRunMode = "request_default"
	DatasetRunModeSingle         DatasetRunMode = "single"
	DatasetRunModeAll            DatasetRunMode = "all"
)

func (drm DatasetRunMode) String() string {
	return string(drm)
}

// DatasetRunModeValidator is a validator for the "dataset_run_mode" field enum values. It is called by the builders before save.
func DatasetRunModeValidator(drm DatasetRunMode) error {
	switch drm {
	case DatasetRunModeRequestDefault, DatasetRunModeSingle, DatasetRunModeAll:
		return nil
	default:
		return fmt.Errorf("scenariocase: invalid enum value for dataset_run_mode field: %q", drm)
	}
}

// OrderOption defines the ordering options for the ScenarioCase queries.
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

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByStepNo orders the results by the step_no field.
func ByStepNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepNo, opts...).ToFunc()
}

// ByDatasetID orders the results by the dataset_id field.
func ByDatasetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetID, opts...).ToFunc()
}

// ByDatasetRunMode orders the results by the dataset_run_mode field.
func ByDatasetRunMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetRunMode, opts...).ToFunc()
}

// ByIsEnabled orders the results by the is_enabled field.
func ByIsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEnabled, opts...).ToFunc()
}

// ByStopOnFail orders the results by the stop_on_fail field.
func ByStopOnFail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStopOnFail, opts...).ToFunc()
}
