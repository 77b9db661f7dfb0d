// Code generated by ent, DO NOT EDIT.

package extractrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldUpdateTime, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldIsDeleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldStatus, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldRequestID, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldDatasetID, v))
}

// VarName applies equality check predicate on the "var_name" field. It's identical to VarNameEQ.
func VarName(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldVarName, v))
}

// SourceExpr applies equality check predicate on the "source_expr" field. It's identical to SourceExprEQ.
func SourceExpr(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldSourceExpr, v))
}

// Required applies equality check predicate on the "required" field. It's identical to RequiredEQ.
func Required(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldRequired, v))
}

// IsSecret applies equality check predicate on the "is_secret" field. It's identical to IsSecretEQ.
func IsSecret(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldIsSecret, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldIsEnabled, v))
}

// Sort applies equality check predicate on the "sort" field. It's identical to SortEQ.
func Sort(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldSort, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldUpdateTime, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldIsDeleted, v))
}

// IsDeletedIn applies the In predicate on the "is_deleted" field.
func IsDeletedIn(vs ...int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldIsDeleted, vs...))
}

// IsDeletedNotIn applies the NotIn predicate on the "is_deleted" field.
func IsDeletedNotIn(vs ...int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldIsDeleted, vs...))
}

// IsDeletedGT applies the GT predicate on the "is_deleted" field.
func IsDeletedGT(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldIsDeleted, v))
}

// IsDeletedGTE applies the GTE predicate on the "is_deleted" field.
func IsDeletedGTE(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldIsDeleted, v))
}

// IsDeletedLT applies the LT predicate on the "is_deleted" field.
func IsDeletedLT(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldIsDeleted, v))
}

// IsDeletedLTE applies the LTE predicate on the "is_deleted" field.
func IsDeletedLTE(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldIsDeleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldStatus, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldRequestID, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v int64) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDIsNil applies the IsNil predicate on the "dataset_id" field.
func DatasetIDIsNil() predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIsNull(FieldDatasetID))
}

// DatasetIDNotNil applies the NotNil predicate on the "dataset_id" field.
func DatasetIDNotNil() predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotNull(FieldDatasetID))
}

// VarNameEQ applies the EQ predicate on the "var_name" field.
func VarNameEQ(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldVarName, v))
}

// VarNameNEQ applies the NEQ predicate on the "var_name" field.
func VarNameNEQ(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldVarName, v))
}

// VarNameIn applies the In predicate on the "var_name" field.
func VarNameIn(vs ...string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldVarName, vs...))
}

// VarNameNotIn applies the NotIn predicate on the "var_name" field.
func VarNameNotIn(vs ...string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldVarName, vs...))
}

// VarNameGT applies the GT predicate on the "var_name" field.
func VarNameGT(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldVarName, v))
}

// VarNameGTE applies the GTE predicate on the "var_name" field.
func VarNameGTE(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldVarName, v))
}

// VarNameLT applies the LT predicate on the "var_name" field.
func VarNameLT(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldVarName, v))
}

// VarNameLTE applies the LTE predicate on the "var_name" field.
func VarNameLTE(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldVarName, v))
}

// VarNameContains applies the Contains predicate on the "var_name" field.
func VarNameContains(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldContains(FieldVarName, v))
}

// VarNameHasPrefix applies the HasPrefix predicate on the "var_name" field.
func VarNameHasPrefix(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldHasPrefix(FieldVarName, v))
}

// VarNameHasSuffix applies the HasSuffix predicate on the "var_name" field.
func VarNameHasSuffix(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldHasSuffix(FieldVarName, v))
}

// VarNameEqualFold applies the EqualFold predicate on the "var_name" field.
func VarNameEqualFold(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEqualFold(FieldVarName, v))
}

// VarNameContainsFold applies the ContainsFold predicate on the "var_name" field.
func VarNameContainsFold(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldContainsFold(FieldVarName, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceExprEQ applies the EQ predicate on the "source_expr" field.
func SourceExprEQ(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldSourceExpr, v))
}

// SourceExprNEQ applies the NEQ predicate on the "source_expr" field.
func SourceExprNEQ(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldSourceExpr, v))
}

// SourceExprIn applies the In predicate on the "source_expr" field.
func SourceExprIn(vs ...string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldSourceExpr, vs...))
}

// SourceExprNotIn applies the NotIn predicate on the "source_expr" field.
func SourceExprNotIn(vs ...string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldSourceExpr, vs...))
}

// SourceExprGT applies the GT predicate on the "source_expr" field.
func SourceExprGT(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldSourceExpr, v))
}

// SourceExprGTE applies the GTE predicate on the "source_expr" field.
func SourceExprGTE(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldSourceExpr, v))
}

// SourceExprLT applies the LT predicate on the "source_expr" field.
func SourceExprLT(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldSourceExpr, v))
}

// SourceExprLTE applies the LTE predicate on the "source_expr" field.
func SourceExprLTE(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldSourceExpr, v))
}

// SourceExprContains applies the Contains predicate on the "source_expr" field.
func SourceExprContains(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldContains(FieldSourceExpr, v))
}

// SourceExprHasPrefix applies the HasPrefix predicate on the "source_expr" field.
func SourceExprHasPrefix(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldHasPrefix(FieldSourceExpr, v))
}

// SourceExprHasSuffix applies the HasSuffix predicate on the "source_expr" field.
func SourceExprHasSuffix(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldHasSuffix(FieldSourceExpr, v))
}

// SourceExprIsNil applies the IsNil predicate on the "source_expr" field.
func SourceExprIsNil() predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIsNull(FieldSourceExpr))
}

// SourceExprNotNil applies the NotNil predicate on the "source_expr" field.
func SourceExprNotNil() predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotNull(FieldSourceExpr))
}

// SourceExprEqualFold applies the EqualFold predicate on the "source_expr" field.
func SourceExprEqualFold(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEqualFold(FieldSourceExpr, v))
}

// SourceExprContainsFold applies the ContainsFold predicate on the "source_expr" field.
func SourceExprContainsFold(v string) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldContainsFold(FieldSourceExpr, v))
}

// DefaultValueIsNil applies the IsNil predicate on the "default_value" field.
func DefaultValueIsNil() predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIsNull(FieldDefaultValue))
}

// DefaultValueNotNil applies the NotNil predicate on the "default_value" field.
func DefaultValueNotNil() predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotNull(FieldDefaultValue))
}

// RequiredEQ applies the EQ predicate on the "required" field.
func RequiredEQ(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldRequired, v))
}

// RequiredNEQ applies the NEQ predicate on the "required" field.
func RequiredNEQ(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldRequired, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldScope, vs...))
}

// IsSecretEQ applies the EQ predicate on the "is_secret" field.
func IsSecretEQ(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldIsSecret, v))
}

// IsSecretNEQ applies the NEQ predicate on the "is_secret" field.
func IsSecretNEQ(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldIsSecret, v))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldIsEnabled, v))
}

// SortEQ applies the EQ predicate on the "sort" field.
func SortEQ(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldEQ(FieldSort, v))
}

// SortNEQ applies the NEQ predicate on the "sort" field.
func SortNEQ(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNEQ(FieldSort, v))
}

// SortIn applies the In predicate on the "sort" field.
func SortIn(vs ...int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldIn(FieldSort, vs...))
}

// SortNotIn applies the NotIn predicate on the "sort" field.
func SortNotIn(vs ...int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldNotIn(FieldSort, vs...))
}

// SortGT applies the GT predicate on the "sort" field.
func SortGT(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGT(FieldSort, v))
}

// SortGTE applies the GTE predicate on the "sort" field.
func SortGTE(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldGTE(FieldSort, v))
}

// SortLT applies the LT predicate on the "sort" field.
func SortLT(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLT(FieldSort, v))
}

// SortLTE applies the LTE predicate on the "sort" field.
func SortLTE(v int) predicate.ExtractRule {
	return predicate.ExtractRule(sql.FieldLTE(FieldSort, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractRule) predicate.ExtractRule {
	return predicate.ExtractRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractRule) predicate.ExtractRule {
	return predicate.ExtractRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractRule) predicate.ExtractRule {
	return predicate.ExtractRule(sql.NotPredicates(p))
}
