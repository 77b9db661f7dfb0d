// Code generated by ent, DO NOT EDIT.

package runvariable

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldUpdateTime, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldIsDeleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldStatus, v))
}

// ScenarioRunID applies equality check predicate on the "scenario_run_id" field. It's identical to ScenarioRunIDEQ.
func ScenarioRunID(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldScenarioRunID, v))
}

// RequestRunID applies equality check predicate on the "request_run_id" field. It's identical to RequestRunIDEQ.
func RequestRunID(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldRequestRunID, v))
}

// ScenarioCaseID applies equality check predicate on the "scenario_case_id" field. It's identical to ScenarioCaseIDEQ.
func ScenarioCaseID(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldScenarioCaseID, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldRequestID, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldDatasetID, v))
}

// VarName applies equality check predicate on the "var_name" field. It's identical to VarNameEQ.
func VarName(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldVarName, v))
}

// ValueType applies equality check predicate on the "value_type" field. It's identical to ValueTypeEQ.
func ValueType(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldValueType, v))
}

// SourceExpr applies equality check predicate on the "source_expr" field. It's identical to SourceExprEQ.
func SourceExpr(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldSourceExpr, v))
}

// IsSecret applies equality check predicate on the "is_secret" field. It's identical to IsSecretEQ.
func IsSecret(v bool) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldIsSecret, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldUpdateTime, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldIsDeleted, v))
}

// IsDeletedIn applies the In predicate on the "is_deleted" field.
func IsDeletedIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldIsDeleted, vs...))
}

// IsDeletedNotIn applies the NotIn predicate on the "is_deleted" field.
func IsDeletedNotIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldIsDeleted, vs...))
}

// IsDeletedGT applies the GT predicate on the "is_deleted" field.
func IsDeletedGT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldIsDeleted, v))
}

// IsDeletedGTE applies the GTE predicate on the "is_deleted" field.
func IsDeletedGTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldIsDeleted, v))
}

// IsDeletedLT applies the LT predicate on the "is_deleted" field.
func IsDeletedLT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldIsDeleted, v))
}

// IsDeletedLTE applies the LTE predicate on the "is_deleted" field.
func IsDeletedLTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldIsDeleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldStatus, v))
}

// ScenarioRunIDEQ applies the EQ predicate on the "scenario_run_id" field.
func ScenarioRunIDEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldScenarioRunID, v))
}

// ScenarioRunIDNEQ applies the NEQ predicate on the "scenario_run_id" field.
func ScenarioRunIDNEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldScenarioRunID, v))
}

// ScenarioRunIDIn applies the In predicate on the "scenario_run_id" field.
func ScenarioRunIDIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldScenarioRunID, vs...))
}

// ScenarioRunIDNotIn applies the NotIn predicate on the "scenario_run_id" field.
func ScenarioRunIDNotIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldScenarioRunID, vs...))
}

// ScenarioRunIDGT applies the GT predicate on the "scenario_run_id" field.
func ScenarioRunIDGT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldScenarioRunID, v))
}

// ScenarioRunIDGTE applies the GTE predicate on the "scenario_run_id" field.
func ScenarioRunIDGTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldScenarioRunID, v))
}

// ScenarioRunIDLT applies the LT predicate on the "scenario_run_id" field.
func ScenarioRunIDLT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldScenarioRunID, v))
}

// ScenarioRunIDLTE applies the LTE predicate on the "scenario_run_id" field.
func ScenarioRunIDLTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldScenarioRunID, v))
}

// ScenarioRunIDIsNil applies the IsNil predicate on the "scenario_run_id" field.
func ScenarioRunIDIsNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIsNull(FieldScenarioRunID))
}

// ScenarioRunIDNotNil applies the NotNil predicate on the "scenario_run_id" field.
func ScenarioRunIDNotNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotNull(FieldScenarioRunID))
}

// RequestRunIDEQ applies the EQ predicate on the "request_run_id" field.
func RequestRunIDEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldRequestRunID, v))
}

// RequestRunIDNEQ applies the NEQ predicate on the "request_run_id" field.
func RequestRunIDNEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldRequestRunID, v))
}

// RequestRunIDIn applies the In predicate on the "request_run_id" field.
func RequestRunIDIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldRequestRunID, vs...))
}

// RequestRunIDNotIn applies the NotIn predicate on the "request_run_id" field.
func RequestRunIDNotIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldRequestRunID, vs...))
}

// RequestRunIDGT applies the GT predicate on the "request_run_id" field.
func RequestRunIDGT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldRequestRunID, v))
}

// RequestRunIDGTE applies the GTE predicate on the "request_run_id" field.
func RequestRunIDGTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldRequestRunID, v))
}

// RequestRunIDLT applies the LT predicate on the "request_run_id" field.
func RequestRunIDLT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldRequestRunID, v))
}

// RequestRunIDLTE applies the LTE predicate on the "request_run_id" field.
func RequestRunIDLTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldRequestRunID, v))
}

// ScenarioCaseIDEQ applies the EQ predicate on the "scenario_case_id" field.
func ScenarioCaseIDEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldScenarioCaseID, v))
}

// ScenarioCaseIDNEQ applies the NEQ predicate on the "scenario_case_id" field.
func ScenarioCaseIDNEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldScenarioCaseID, v))
}

// ScenarioCaseIDIn applies the In predicate on the "scenario_case_id" field.
func ScenarioCaseIDIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldScenarioCaseID, vs...))
}

// ScenarioCaseIDNotIn applies the NotIn predicate on the "scenario_case_id" field.
func ScenarioCaseIDNotIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldScenarioCaseID, vs...))
}

// ScenarioCaseIDGT applies the GT predicate on the "scenario_case_id" field.
func ScenarioCaseIDGT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldScenarioCaseID, v))
}

// ScenarioCaseIDGTE applies the GTE predicate on the "scenario_case_id" field.
func ScenarioCaseIDGTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldScenarioCaseID, v))
}

// ScenarioCaseIDLT applies the LT predicate on the "scenario_case_id" field.
func ScenarioCaseIDLT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldScenarioCaseID, v))
}

// ScenarioCaseIDLTE applies the LTE predicate on the "scenario_case_id" field.
func ScenarioCaseIDLTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldScenarioCaseID, v))
}

// ScenarioCaseIDIsNil applies the IsNil predicate on the "scenario_case_id" field.
func ScenarioCaseIDIsNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIsNull(FieldScenarioCaseID))
}

// ScenarioCaseIDNotNil applies the NotNil predicate on the "scenario_case_id" field.
func ScenarioCaseIDNotNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotNull(FieldScenarioCaseID))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldRequestID, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v int64) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDIsNil applies the IsNil predicate on the "dataset_id" field.
func DatasetIDIsNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIsNull(FieldDatasetID))
}

// DatasetIDNotNil applies the NotNil predicate on the "dataset_id" field.
func DatasetIDNotNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotNull(FieldDatasetID))
}

// VarNameEQ applies the EQ predicate on the "var_name" field.
func VarNameEQ(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldVarName, v))
}

// VarNameNEQ applies the NEQ predicate on the "var_name" field.
func VarNameNEQ(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldVarName, v))
}

// VarNameIn applies the In predicate on the "var_name" field.
func VarNameIn(vs ...string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldVarName, vs...))
}

// VarNameNotIn applies the NotIn predicate on the "var_name" field.
func VarNameNotIn(vs ...string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldVarName, vs...))
}

// VarNameGT applies the GT predicate on the "var_name" field.
func VarNameGT(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldVarName, v))
}

// VarNameGTE applies the GTE predicate on the "var_name" field.
func VarNameGTE(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldVarName, v))
}

// VarNameLT applies the LT predicate on the "var_name" field.
func VarNameLT(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldVarName, v))
}

// VarNameLTE applies the LTE predicate on the "var_name" field.
func VarNameLTE(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldVarName, v))
}

// VarNameContains applies the Contains predicate on the "var_name" field.
func VarNameContains(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldContains(FieldVarName, v))
}

// VarNameHasPrefix applies the HasPrefix predicate on the "var_name" field.
func VarNameHasPrefix(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldHasPrefix(FieldVarName, v))
}

// VarNameHasSuffix applies the HasSuffix predicate on the "var_name" field.
func VarNameHasSuffix(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldHasSuffix(FieldVarName, v))
}

// VarNameEqualFold applies the EqualFold predicate on the "var_name" field.
func VarNameEqualFold(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEqualFold(FieldVarName, v))
}

// VarNameContainsFold applies the ContainsFold predicate on the "var_name" field.
func VarNameContainsFold(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldContainsFold(FieldVarName, v))
}

// VarValueIsNil applies the IsNil predicate on the "var_value" field.
func VarValueIsNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIsNull(FieldVarValue))
}

// VarValueNotNil applies the NotNil predicate on the "var_value" field.
func VarValueNotNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotNull(FieldVarValue))
}

// ValueTypeEQ applies the EQ predicate on the "value_type" field.
func ValueTypeEQ(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldValueType, v))
}

// ValueTypeNEQ applies the NEQ predicate on the "value_type" field.
func ValueTypeNEQ(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldValueType, v))
}

// ValueTypeIn applies the In predicate on the "value_type" field.
func ValueTypeIn(vs ...string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldValueType, vs...))
}

// ValueTypeNotIn applies the NotIn predicate on the "value_type" field.
func ValueTypeNotIn(vs ...string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldValueType, vs...))
}

// ValueTypeGT applies the GT predicate on the "value_type" field.
func ValueTypeGT(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldValueType, v))
}

// ValueTypeGTE applies the GTE predicate on the "value_type" field.
func ValueTypeGTE(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldValueType, v))
}

// ValueTypeLT applies the LT predicate on the "value_type" field.
func ValueTypeLT(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldValueType, v))
}

// ValueTypeLTE applies the LTE predicate on the "value_type" field.
func ValueTypeLTE(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldValueType, v))
}

// ValueTypeContains applies the Contains predicate on the "value_type" field.
func ValueTypeContains(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldContains(FieldValueType, v))
}

// ValueTypeHasPrefix applies the HasPrefix predicate on the "value_type" field.
func ValueTypeHasPrefix(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldHasPrefix(FieldValueType, v))
}

// ValueTypeHasSuffix applies the HasSuffix predicate on the "value_type" field.
func ValueTypeHasSuffix(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldHasSuffix(FieldValueType, v))
}

// ValueTypeEqualFold applies the EqualFold predicate on the "value_type" field.
func ValueTypeEqualFold(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEqualFold(FieldValueType, v))
}

// ValueTypeContainsFold applies the ContainsFold predicate on the "value_type" field.
func ValueTypeContainsFold(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldContainsFold(FieldValueType, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceExprEQ applies the EQ predicate on the "source_expr" field.
func SourceExprEQ(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldSourceExpr, v))
}

// SourceExprNEQ applies the NEQ predicate on the "source_expr" field.
func SourceExprNEQ(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldSourceExpr, v))
}

// SourceExprIn applies the In predicate on the "source_expr" field.
func SourceExprIn(vs ...string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldSourceExpr, vs...))
}

// SourceExprNotIn applies the NotIn predicate on the "source_expr" field.
func SourceExprNotIn(vs ...string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldSourceExpr, vs...))
}

// SourceExprGT applies the GT predicate on the "source_expr" field.
func SourceExprGT(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGT(FieldSourceExpr, v))
}

// SourceExprGTE applies the GTE predicate on the "source_expr" field.
func SourceExprGTE(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldGTE(FieldSourceExpr, v))
}

// SourceExprLT applies the LT predicate on the "source_expr" field.
func SourceExprLT(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLT(FieldSourceExpr, v))
}

// SourceExprLTE applies the LTE predicate on the "source_expr" field.
func SourceExprLTE(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldLTE(FieldSourceExpr, v))
}

// SourceExprContains applies the Contains predicate on the "source_expr" field.
func SourceExprContains(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldContains(FieldSourceExpr, v))
}

// SourceExprHasPrefix applies the HasPrefix predicate on the "source_expr" field.
func SourceExprHasPrefix(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldHasPrefix(FieldSourceExpr, v))
}

// SourceExprHasSuffix applies the HasSuffix predicate on the "source_expr" field.
func SourceExprHasSuffix(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldHasSuffix(FieldSourceExpr, v))
}

// SourceExprIsNil applies the IsNil predicate on the "source_expr" field.
func SourceExprIsNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIsNull(FieldSourceExpr))
}

// SourceExprNotNil applies the NotNil predicate on the "source_expr" field.
func SourceExprNotNil() predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotNull(FieldSourceExpr))
}

// SourceExprEqualFold applies the EqualFold predicate on the "source_expr" field.
func SourceExprEqualFold(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEqualFold(FieldSourceExpr, v))
}

// SourceExprContainsFold applies the ContainsFold predicate on the "source_expr" field.
func SourceExprContainsFold(v string) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldContainsFold(FieldSourceExpr, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNotIn(FieldScope, vs...))
}

// IsSecretEQ applies the EQ predicate on the "is_secret" field.
func IsSecretEQ(v bool) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldEQ(FieldIsSecret, v))
}

// IsSecretNEQ applies the NEQ predicate on the "is_secret" field.
func IsSecretNEQ(v bool) predicate.RunVariable {
	return predicate.RunVariable(sql.FieldNEQ(FieldIsSecret, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunVariable) predicate.RunVariable {
	return predicate.RunVariable(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunVariable) predicate.RunVariable {
	return predicate.RunVariable(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunVariable) predicate.RunVariable {
	return predicate.RunVariable(sql.NotPredicates(p))
}
