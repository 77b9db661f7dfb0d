// Code generated by ent, DO NOT EDIT.

package assertrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assertrule type in the database.
	Label = "assert_rule"
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
	// FieldAssertType holds the string denoting the assert_type field in the database.
	FieldAssertType = "assert_type"
	// FieldSourceExpr holds the string denoting the source_expr field in the database.
	FieldSourceExpr = "source_expr"
	// FieldComparator holds the string denoting the comparator field in the database.
	FieldComparator = "comparator"
	// FieldExpectedValue holds the string denoting the expected_value field in the database.
	FieldExpectedValue = "expected_value"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldIsEnabled holds the string denoting the is_enabled field in the database.
	FieldIsEnabled = "is_enabled"
	// FieldSort holds the string denoting the sort field in the database.
	FieldSort = "sort"
	// Table holds the table name of the assertrule in the database.
	Table = "exile_api_assert_rules"
)

// Columns holds all SQL columns for assertrule fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldIsDeleted,
	FieldStatus,
	FieldRequestID,
	FieldDatasetID,
	FieldAssertType,
	FieldSourceExpr,
	FieldComparator,
	FieldExpectedValue,
	FieldMessage,
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
	// SourceExprValidator is a validator for the "source_expr" field. It is called by the builders before save.
	SourceExprValidator func(string) error
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// DefaultIsEnabled holds the default value on creation for the "is_enabled" field.
	DefaultIsEnabled bool
	// DefaultSort holds the default value on creation for the "sort" field.
	DefaultSort int
)

// AssertType defines the type for the "assert_type" enum field.
type AssertType string

// AssertType values.
const (
	AssertTypeStatusCode   AssertType = "status_code"
	AssertTypeJSONPath     AssertType = "json_path"
	AssertTypeTextContains AssertType = "text_contains"
)

func (at AssertType) String() string {
	return string(at)
}

// AssertTypeValidator is a validator for the "assert_type" field enum values. It is called by the builders before save.
func AssertTypeValidator(at AssertType) error {
	switch at {
	case AssertTypeStatusCode, AssertTypeJSONPath, AssertTypeTextContains:
		return nil
	default:
		return fmt.Errorf("assertrule: invalid enum value for assert_type field: %q", at)
	}
}

// Comparator defines the type for the "comparator" enum field.
type Comparator string

// ComparatorEq is the default value of the Comparator enum.
const DefaultComparator = ComparatorEq

// Comparator values.
const (
	ComparatorEq          Comparator = "eq"
	ComparatorNe          Comparator = "ne"
	ComparatorContains    Comparator = "contains"
	ComparatorNotContains Comparator = "not_contains"
)

func (c Comparator) String() string {
	return string(c)
}

// ComparatorValidator is a validator for the "comparator" field enum values. It is called by the builders before save.
func ComparatorValidator(c Comparator) error {
	switch c {
	case ComparatorEq, ComparatorNe, ComparatorContains, ComparatorNotContains:
		return nil
	default:
		return fmt.Errorf("assertrule: invalid enum value for comparator field: %q", c)
	}
}

// OrderOption defines the ordering options for the AssertRule queries.
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

// ByAssertType orders the results by the assert_type field.
func ByAssertType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssertType, opts...).ToFunc()
}

// BySourceExpr orders the results by the source_expr field.
func BySourceExpr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceExpr, opts...).ToFunc()
}

// ByComparator orders the results by the comparator field.
func ByComparator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComparator, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByIsEnabled orders the results by the is_enabled field.
func ByIsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEnabled, opts...).ToFunc()
}

// BySort orders the results by the sort field.
func BySort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSort, opts...).ToFunc()
}
