// Code generated by ent, DO NOT EDIT.

package extractrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extractrule type in the database.
	Label = "extract_rule"
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
	// FieldDatasetID holds the string denoting the dataset_id field in the database.
	FieldDatasetID = "dataset_id"
	// FieldVarName holds the string denoting the var_name field in the database.
	FieldVarName = "var_name"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldSourceExpr holds the string denoting the source_expr field in the database.
	FieldSourceExpr = "source_expr"
	// FieldDefaultValue holds the string denoting the default_value field in the database.
	FieldDefaultValue = "default_value"
	// FieldRequired holds the string denoting the required field in the database.
	FieldRequired = "required"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldIsSecret holds the string denoting the is_secret field in the database.
	FieldIsSecret = "is_secret"
	// FieldIsEnabled holds the string denoting the is_enabled field in the database.
	FieldIsEnabled = "is_enabled"
	// FieldSort holds the string denoting the sort field in the database.
	FieldSort = "sort"
	// Table holds the table name of the extractrule in the database.
	Table = "exile_api_extract_rules"
)

// Columns holds all SQL columns for extractrule fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldIsDeleted,
	FieldStatus,
	FieldRequestID,
	FieldDatasetID,
	FieldVarName,
	FieldSourceType,
	FieldSourceExpr,
	FieldDefaultValue,
	FieldRequired,
	FieldScope,
	FieldIsSecret,
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
	// VarNameValidator is a validator for the "var_name" field. It is called by the builders before save.
	VarNameValidator func(string) error
	// SourceExprValidator is a validator for the "source_expr" field. It is called by the builders before save.
	SourceExprValidator func(string) error
	// DefaultRequired holds the default value on creation for the "required" field.
	DefaultRequired bool
	// DefaultIsSecret holds the default value on creation for the "is_secret" field.
	DefaultIsSecret bool
	// DefaultIsEnabled holds the default value on creation for the "is_enabled" field.
	DefaultIsEnabled bool
	// DefaultSort holds the default value on creation for the "sort" field.
	DefaultSort int
)

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceType values.
const (
	SourceTypeResponseHeader    SourceType = "response_header"
	SourceTypeResponseJSON      SourceType = "response_json"
	SourceTypeResponseCookie    SourceType = "response_cookie"
	SourceTypeResponseTextRegex SourceType = "response_text_regex"
	SourceTypeResponseStatus    SourceType = "response_status"
	SourceTypeSession           SourceType = "session"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeResponseHeader, SourceTypeResponseJSON, SourceTypeResponseCookie, SourceTypeResponseTextRegex, SourceTypeResponseStatus, SourceTypeSession:
		return nil
	default:
		return fmt.Errorf("extractrule: invalid enum value for source_type field: %q", st)
	}
}

// Scope defines the type for the "scope" enum field.
type Scope string

// ScopeScenario is the default value of the Scope enum.
const DefaultScope = ScopeScenario

// Scope values.
const (
	ScopeStep     Scope = "step"
	ScopeScenario Scope = "scenario"
	ScopeGlobal   Scope = "global"
)

func (s Scope) String() string {
	return string(s)
}

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s Scope) error {
	switch s {
	case ScopeStep, ScopeScenario, ScopeGlobal:
		return nil
	default:
		return fmt.Errorf("extractrule: invalid enum value for scope field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExtractRule queries.
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

// ByDatasetID orders the results by the dataset_id field.
func ByDatasetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetID, opts...).ToFunc()
}

// ByVarName orders the results by the var_name field.
func ByVarName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVarName, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// BySourceExpr orders the results by the source_expr field.
func BySourceExpr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceExpr, opts...).ToFunc()
}

// ByRequired orders the results by the required field.
func ByRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequired, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByIsSecret orders the results by the is_secret field.
func ByIsSecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSecret, opts...).ToFunc()
}

// ByIsEnabled orders the results by the is_enabled field.
func ByIsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEnabled, opts...).ToFunc()
}

// BySort orders the results by the sort field.
func BySort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSort, opts...).ToFunc()
}
