// Code generated by ent, DO NOT EDIT.

package scenariocase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldUpdateTime, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldIsDeleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldStatus, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldScenarioID, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldRequestID, v))
}

// StepNo applies equality check predicate on the "step_no" field. It's identical to StepNoEQ.
func StepNo(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldStepNo, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldDatasetID, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldIsEnabled, v))
}

// StopOnFail applies equality check predicate on the "stop_on_fail" field. It's identical to StopOnFailEQ.
func StopOnFail(v bool) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldStopOnFail, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldUpdateTime, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldIsDeleted, v))
}

// IsDeletedIn applies the In predicate on the "is_deleted" field.
func IsDeletedIn(vs ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldIsDeleted, vs...))
}

// IsDeletedNotIn applies the NotIn predicate on the "is_deleted" field.
func IsDeletedNotIn(vs ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldIsDeleted, vs...))
}

// IsDeletedGT applies the GT predicate on the "is_deleted" field.
func IsDeletedGT(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldIsDeleted, v))
}

// IsDeletedGTE applies the GTE predicate on the "is_deleted" field.
func IsDeletedGTE(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldIsDeleted, v))
}

// IsDeletedLT applies the LT predicate on the "is_deleted" field.
func IsDeletedLT(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldIsDeleted, v))
}

// IsDeletedLTE applies the LTE predicate on the "is_deleted" field.
func IsDeletedLTE(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldIsDeleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldStatus, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldScenarioID, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldRequestID, v))
}

// StepNoEQ applies the EQ predicate on the "step_no" field.
func StepNoEQ(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldStepNo, v))
}

// StepNoNEQ applies the NEQ predicate on the "step_no" field.
func StepNoNEQ(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldStepNo, v))
}

// StepNoIn applies the In predicate on the "step_no" field.
func StepNoIn(vs ...int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldStepNo, vs...))
}

// StepNoNotIn applies the NotIn predicate on the "step_no" field.
func StepNoNotIn(vs ...int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldStepNo, vs...))
}

// StepNoGT applies the GT predicate on the "step_no" field.
func StepNoGT(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldStepNo, v))
}

// StepNoGTE applies the GTE predicate on the "step_no" field.
func StepNoGTE(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldStepNo, v))
}

// StepNoLT applies the LT predicate on the "step_no" field.
func StepNoLT(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldStepNo, v))
}

// StepNoLTE applies the LTE predicate on the "step_no" field.
func StepNoLTE(v int) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldStepNo, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v int64) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDIsNil applies the IsNil predicate on the "dataset_id" field.
func DatasetIDIsNil() predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIsNull(FieldDatasetID))
}

// DatasetIDNotNil applies the NotNil predicate on the "dataset_id" field.
func DatasetIDNotNil() predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotNull(FieldDatasetID))
}

// DatasetRunModeEQ applies the EQ predicate on the "dataset_run_mode" field.
func DatasetRunModeEQ(v DatasetRunMode) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldDatasetRunMode, v))
}

// DatasetRunModeNEQ applies the NEQ predicate on the "dataset_run_mode" field.
func DatasetRunModeNEQ(v DatasetRunMode) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldDatasetRunMode, v))
}

// DatasetRunModeIn applies the In predicate on the "dataset_run_mode" field.
func DatasetRunModeIn(vs ...DatasetRunMode) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldIn(FieldDatasetRunMode, vs...))
}

// DatasetRunModeNotIn applies the NotIn predicate on the "dataset_run_mode" field.
func DatasetRunModeNotIn(vs ...DatasetRunMode) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNotIn(FieldDatasetRunMode, vs...))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldIsEnabled, v))
}

// StopOnFailEQ applies the EQ predicate on the "stop_on_fail" field.
func StopOnFailEQ(v bool) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldEQ(FieldStopOnFail, v))
}

// StopOnFailNEQ applies the NEQ predicate on the "stop_on_fail" field.
func StopOnFailNEQ(v bool) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.FieldNEQ(FieldStopOnFail, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScenarioCase) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScenarioCase) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScenarioCase) predicate.ScenarioCase {
	return predicate.ScenarioCase(sql.NotPredicates(p))
}
