// Code generated by ent, DO NOT EDIT.

package assertrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldUpdateTime, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldIsDeleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldStatus, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldRequestID, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldDatasetID, v))
}

// SourceExpr applies equality check predicate on the "source_expr" field. It's identical to SourceExprEQ.
func SourceExpr(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldSourceExpr, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldMessage, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldIsEnabled, v))
}

// Sort applies equality check predicate on the "sort" field. It's identical to SortEQ.
func Sort(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldSort, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldUpdateTime, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldIsDeleted, v))
}

// IsDeletedIn applies the In predicate on the "is_deleted" field.
func IsDeletedIn(vs ...int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldIsDeleted, vs...))
}

// IsDeletedNotIn applies the NotIn predicate on the "is_deleted" field.
func IsDeletedNotIn(vs ...int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldIsDeleted, vs...))
}

// IsDeletedGT applies the GT predicate on the "is_deleted" field.
func IsDeletedGT(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldIsDeleted, v))
}

// IsDeletedGTE applies the GTE predicate on the "is_deleted" field.
func IsDeletedGTE(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldIsDeleted, v))
}

// IsDeletedLT applies the LT predicate on the "is_deleted" field.
func IsDeletedLT(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldIsDeleted, v))
}

// IsDeletedLTE applies the LTE predicate on the "is_deleted" field.
func IsDeletedLTE(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldIsDeleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldStatus, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldRequestID, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v int64) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDIsNil applies the IsNil predicate on the "dataset_id" field.
func DatasetIDIsNil() predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIsNull(FieldDatasetID))
}

// DatasetIDNotNil applies the NotNil predicate on the "dataset_id" field.
func DatasetIDNotNil() predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotNull(FieldDatasetID))
}

// AssertTypeEQ applies the EQ predicate on the "assert_type" field.
func AssertTypeEQ(v AssertType) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldAssertType, v))
}

// AssertTypeNEQ applies the NEQ predicate on the "assert_type" field.
func AssertTypeNEQ(v AssertType) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldAssertType, v))
}

// AssertTypeIn applies the In predicate on the "assert_type" field.
func AssertTypeIn(vs ...AssertType) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldAssertType, vs...))
}

// AssertTypeNotIn applies the NotIn predicate on the "assert_type" field.
func AssertTypeNotIn(vs ...AssertType) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldAssertType, vs...))
}

// SourceExprEQ applies the EQ predicate on the "source_expr" field.
func SourceExprEQ(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldSourceExpr, v))
}

// SourceExprNEQ applies the NEQ predicate on the "source_expr" field.
func SourceExprNEQ(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldSourceExpr, v))
}

// SourceExprIn applies the In predicate on the "source_expr" field.
func SourceExprIn(vs ...string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldSourceExpr, vs...))
}

// SourceExprNotIn applies the NotIn predicate on the "source_expr" field.
func SourceExprNotIn(vs ...string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldSourceExpr, vs...))
}

// SourceExprGT applies the GT predicate on the "source_expr" field.
func SourceExprGT(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldSourceExpr, v))
}

// SourceExprGTE applies the GTE predicate on the "source_expr" field.
func SourceExprGTE(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldSourceExpr, v))
}

// SourceExprLT applies the LT predicate on the "source_expr" field.
func SourceExprLT(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldSourceExpr, v))
}

// SourceExprLTE applies the LTE predicate on the "source_expr" field.
func SourceExprLTE(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldSourceExpr, v))
}

// SourceExprContains applies the Contains predicate on the "source_expr" field.
func SourceExprContains(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldContains(FieldSourceExpr, v))
}

// SourceExprHasPrefix applies the HasPrefix predicate on the "source_expr" field.
func SourceExprHasPrefix(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldHasPrefix(FieldSourceExpr, v))
}

// SourceExprHasSuffix applies the HasSuffix predicate on the "source_expr" field.
func SourceExprHasSuffix(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldHasSuffix(FieldSourceExpr, v))
}

// SourceExprIsNil applies the IsNil predicate on the "source_expr" field.
func SourceExprIsNil() predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIsNull(FieldSourceExpr))
}

// SourceExprNotNil applies the NotNil predicate on the "source_expr" field.
func SourceExprNotNil() predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotNull(FieldSourceExpr))
}

// SourceExprEqualFold applies the EqualFold predicate on the "source_expr" field.
func SourceExprEqualFold(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEqualFold(FieldSourceExpr, v))
}

// SourceExprContainsFold applies the ContainsFold predicate on the "source_expr" field.
func SourceExprContainsFold(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldContainsFold(FieldSourceExpr, v))
}

// ComparatorEQ applies the EQ predicate on the "comparator" field.
func ComparatorEQ(v Comparator) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldComparator, v))
}

// ComparatorNEQ applies the NEQ predicate on the "comparator" field.
func ComparatorNEQ(v Comparator) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldComparator, v))
}

// ComparatorIn applies the In predicate on the "comparator" field.
func ComparatorIn(vs ...Comparator) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldComparator, vs...))
}

// ComparatorNotIn applies the NotIn predicate on the "comparator" field.
func ComparatorNotIn(vs ...Comparator) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldComparator, vs...))
}

// ExpectedValueIsNil applies the IsNil predicate on the "expected_value" field.
func ExpectedValueIsNil() predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIsNull(FieldExpectedValue))
}

// ExpectedValueNotNil applies the NotNil predicate on the "expected_value" field.
func ExpectedValueNotNil() predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotNull(FieldExpectedValue))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldContainsFold(FieldMessage, v))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldIsEnabled, v))
}

// SortEQ applies the EQ predicate on the "sort" field.
func SortEQ(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldEQ(FieldSort, v))
}

// SortNEQ applies the NEQ predicate on the "sort" field.
func SortNEQ(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNEQ(FieldSort, v))
}

// SortIn applies the In predicate on the "sort" field.
func SortIn(vs ...int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldIn(FieldSort, vs...))
}

// SortNotIn applies the NotIn predicate on the "sort" field.
func SortNotIn(vs ...int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldNotIn(FieldSort, vs...))
}

// SortGT applies the GT predicate on the "sort" field.
func SortGT(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGT(FieldSort, v))
}

// SortGTE applies the GTE predicate on the "sort" field.
func SortGTE(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldGTE(FieldSort, v))
}

// SortLT applies the LT predicate on the "sort" field.
func SortLT(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLT(FieldSort, v))
}

// SortLTE applies the LTE predicate on the "sort" field.
func SortLTE(v int) predicate.AssertRule {
	return predicate.AssertRule(sql.FieldLTE(FieldSort, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssertRule) predicate.AssertRule {
	return predicate.AssertRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssertRule) predicate.AssertRule {
	return predicate.AssertRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssertRule) predicate.AssertRule {
	return predicate.AssertRule(sql.NotPredicates(p))
}
