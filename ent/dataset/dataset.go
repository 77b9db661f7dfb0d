// Code generated by ent, DO NOT EDIT.

package dataset

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dataset type in the database.
	Label = "dataset"
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
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRemark holds the string denoting the remark field in the database.
	FieldRemark = "remark"
	// FieldVariables holds the string denoting the variables field in the database.
	FieldVariables = "variables"
	// FieldQueryParams holds the string denoting the query_params field in the database.
	FieldQueryParams = "query_params"
	// FieldHeaders holds the string denoting the headers field in the database.
	FieldHeaders = "headers"
	// FieldCookies holds the string denoting the cookies field in the database.
	FieldCookies = "cookies"
	// FieldBodyType holds the string denoting the body_type field in the database.
	FieldBodyType = "body_type"
	// FieldBodyData holds the string denoting the body_data field in the database.
	FieldBodyData = "body_data"
	// FieldBodyRaw holds the string denoting the body_raw field in the database.
	FieldBodyRaw = "body_raw"
	// FieldIsDefault holds the string denoting the is_default field in the database.
	FieldIsDefault = "is_default"
	// FieldIsEnabled holds the string denoting the is_enabled field in the database.
	FieldIsEnabled = "is_enabled"
	// FieldSort holds the string denoting the sort field in the database.
	FieldSort = "sort"
	// Table holds the table name of the dataset in the database.
	Table = "exile_api_request_datasets"
)

// Columns holds all SQL columns for dataset fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldIsDeleted,
	FieldStatus,
	FieldRequestID,
	FieldName,
	FieldRemark,
	FieldVariables,
	FieldQueryParams,
	FieldHeaders,
	FieldCookies,
	FieldBodyType,
	FieldBodyData,
	FieldBodyRaw,
	FieldIsDefault,
	FieldIsEnabled,
	FieldSort,
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
	// RemarkValidator is a validator for the "remark" field. It is called by the builders before save.
	RemarkValidator func(string) error
	// DefaultVariables holds the default value on creation for the "variables" field.
	DefaultVariables map[string]interface{}
	// DefaultQueryParams holds the default value on creation for the "query_params" field.
	DefaultQueryParams map[string]interface{}
	// DefaultHeaders holds the default value on creation for the "headers" field.
	DefaultHeaders map[string]interface{}
	// DefaultCookies holds the default value on creation for the "cookies" field.
	DefaultCookies map[string]interface{}
	// BodyTypeValidator is a validator for the "body_type" field. It is called by the builders before save.
	BodyTypeValidator func(string) error
	// DefaultBodyData holds the default value on creation for the "body_data" field.
	DefaultBodyData map[string]interface{}
	// DefaultIsDefault holds the default value on creation for the "is_default" field.
	DefaultIsDefault bool
	// DefaultIsEnabled holds the default value on creation for the "is_enabled" field.
	DefaultIsEnabled bool
	// DefaultSort holds the default value on creation for the "sort" field.
	DefaultSort int
)

// OrderOption defines the ordering options for the Dataset queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRemark orders the results by the remark field.
func ByRemark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemark, opts...).ToFunc()
}

// ByBodyType orders the results by the body_type field.
func ByBodyType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyType, opts...).ToFunc()
}

// ByBodyRaw orders the results by the body_raw field.
func ByBodyRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyRaw, opts...).ToFunc()
}

// ByIsDefault orders the results by the is_default field.
func ByIsDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDefault, opts...).ToFunc()
}

// ByIsEnabled orders the results by the is_enabled field.
func ByIsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEnabled, opts...).ToFunc()
}

// BySort orders the results by the sort field.
func BySort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSort, opts...).ToFunc()
}
