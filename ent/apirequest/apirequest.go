// Code generated by ent, DO NOT EDIT.

package apirequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the apirequest type in the database.
	Label = "api_request"
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
	// FieldEnvID holds the string denoting the env_id field in the database.
	FieldEnvID = "env_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldRemark holds the string denoting the remark field in the database.
	FieldRemark = "remark"
	// FieldBaseQueryParams holds the string denoting the base_query_params field in the database.
	FieldBaseQueryParams = "base_query_params"
	// FieldBaseHeaders holds the string denoting the base_headers field in the database.
	FieldBaseHeaders = "base_headers"
	// FieldBaseCookies holds the string denoting the base_cookies field in the database.
	FieldBaseCookies = "base_cookies"
	// FieldBodyType holds the string denoting the body_type field in the database.
	FieldBodyType = "body_type"
	// FieldBaseBodyData holds the string denoting the base_body_data field in the database.
	FieldBaseBodyData = "base_body_data"
	// FieldBaseBodyRaw holds the string denoting the base_body_raw field in the database.
	FieldBaseBodyRaw = "base_body_raw"
	// FieldTimeoutMs holds the string denoting the timeout_ms field in the database.
	FieldTimeoutMs = "timeout_ms"
	// FieldFollowRedirects holds the string denoting the follow_redirects field in the database.
	FieldFollowRedirects = "follow_redirects"
	// FieldVerifySsl holds the string denoting the verify_ssl field in the database.
	FieldVerifySsl = "verify_ssl"
	// FieldProxyURL holds the string denoting the proxy_url field in the database.
	FieldProxyURL = "proxy_url"
	// FieldSort holds the string denoting the sort field in the database.
	FieldSort = "sort"
	// FieldExecuteCount holds the string denoting the execute_count field in the database.
	FieldExecuteCount = "execute_count"
	// FieldDatasetRunMode holds the string denoting the dataset_run_mode field in the database.
	FieldDatasetRunMode = "dataset_run_mode"
	// FieldDefaultDatasetID holds the string denoting the default_dataset_id field in the database.
	FieldDefaultDatasetID = "default_dataset_id"
	// Table holds the table name of the apirequest in the database.
	Table = "exile_api_requests"
)

// Columns holds all SQL columns for apirequest fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldIsDeleted,
	FieldStatus,
	FieldEnvID,
	FieldName,
	FieldMethod,
	FieldURL,
	FieldRemark,
	FieldBaseQueryParams,
	FieldBaseHeaders,
	FieldBaseCookies,
	FieldBodyType,
	FieldBaseBodyData,
	FieldBaseBodyRaw,
	FieldTimeoutMs,
	FieldFollowRedirects,
	FieldVerifySsl,
	FieldProxyURL,
	FieldSort,
	FieldExecuteCount,
	FieldDatasetRunMode,
	FieldDefaultDatasetID,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultMethod holds the default value on creation for the "method" field.
	DefaultMethod string
	// MethodValidator is a validator for the "method" field. It is called by the builders before save.
	MethodValidator func(string) error
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// RemarkValidator is a validator for the "remark" field. It is called by the builders before save.
	RemarkValidator func(string) error
	// DefaultBaseQueryParams holds the default value on creation for the "base_query_params" field.
	DefaultBaseQueryParams map[string]interface{}
	// DefaultBaseHeaders holds the default value on creation for the "base_headers" field.
	DefaultBaseHeaders map[string]interface{}
	// DefaultBaseCookies holds the default value on creation for the "base_cookies" field.
	DefaultBaseCookies map[string]interface{}
	// DefaultBodyType holds the default value on creation for the "body_type" field.
	DefaultBodyType string
	// BodyTypeValidator is a validator for the "body_type" field. It is called by the builders before save.
	BodyTypeValidator func(string) error
	// DefaultBaseBodyData holds the default value on creation for the "base_body_data" field.
	DefaultBaseBodyData map[string]interface{}
	// DefaultTimeoutMs holds the default value on creation for the "timeout_ms" field.
	DefaultTimeoutMs int
	// DefaultFollowRedirects holds the default value on creation for the "follow_redirects" field.
	DefaultFollowRedirects bool
	// DefaultVerifySsl holds the default value on creation for the "verify_ssl" field.
	DefaultVerifySsl bool
	// ProxyURLValidator is a validator for the "proxy_url" field. It is called by the builders before save.
	ProxyURLValidator func(string) error
	// DefaultSort holds the default value on creation for the "sort" field.
	DefaultSort int
	// DefaultExecuteCount holds the default value on creation for the "execute_count" field.
	DefaultExecuteCount int
)

// DatasetRunMode defines the type for the "dataset_run_mode" enum field.
type DatasetRunMode string

// DatasetRunModeAll is the default value of the DatasetRunMode enum.
const DefaultDatasetRunMode = DatasetRunModeAll

// DatasetRunMode values.
const (
	DatasetRunModeSingle DatasetRunMode = "single"
	DatasetRunModeAll    DatasetRunMode = "all"
)

func (drm DatasetRunMode) String() string {
	return string(drm)
}

// DatasetRunModeValidator is a validator for the "dataset_run_mode" field enum values. It is called by the builders before save.
func DatasetRunModeValidator(drm DatasetRunMode) error {
	switch drm {
	case DatasetRunModeSingle, DatasetRunModeAll:
		return nil
	default:
		return fmt.Errorf("apirequest: invalid enum value for dataset_run_mode field: %q", drm)
	}
}

// OrderOption defines the ordering options for the ApiRequest queries.
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

// ByEnvID orders the results by the env_id field.
func ByEnvID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnvID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByRemark orders the results by the remark field.
func ByRemark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemark, opts...).ToFunc()
}

// ByBodyType orders the results by the body_type field.
func ByBodyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyType, opts...).ToFunc()
}

// ByBaseBodyRaw orders the results by the base_body_raw field.
func ByBaseBodyRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseBodyRaw, opts...).ToFunc()
}

// ByTimeoutMs orders the results by the timeout_ms field.
func ByTimeoutMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutMs, opts...).ToFunc()
}

// ByFollowRedirects orders the results by the follow_redirects field.
func ByFollowRedirects(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowRedirects, opts...).ToFunc()
}

// ByVerifySsl orders the results by the verify_ssl field.
func ByVerifySsl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifySsl, opts...).ToFunc()
}

// ByProxyURL orders the results by the proxy_url field.
func ByProxyURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProxyURL, opts...).ToFunc()
}

// BySort orders the results by the sort field.
func BySort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSort, opts...).ToFunc()
}

// ByExecuteCount orders the results by the execute_count field.
func ByExecuteCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecuteCount, opts...).ToFunc()
}

// ByDatasetRunMode orders the results by the dataset_run_mode field.
func ByDatasetRunMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetRunMode, opts...).ToFunc()
}

// ByDefaultDatasetID orders the results by the default_dataset_id field.
func ByDefaultDatasetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultDatasetID, opts...).ToFunc()
}
