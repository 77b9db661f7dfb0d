// Code generated by ent, DO NOT EDIT.

package requestrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldUpdateTime, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldIsDeleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldStatus, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldRequestID, v))
}

// ScenarioRunID applies equality check predicate on the "scenario_run_id" field. It's identical to ScenarioRunIDEQ.
func ScenarioRunID(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldScenarioRunID, v))
}

// ScenarioCaseID applies equality check predicate on the "scenario_case_id" field. It's identical to ScenarioCaseIDEQ.
func ScenarioCaseID(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldScenarioCaseID, v))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldDatasetID, v))
}

// IsSuccess applies equality check predicate on the "is_success" field. It's identical to IsSuccessEQ.
func IsSuccess(v bool) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldIsSuccess, v))
}

// ResponseStatusCode applies equality check predicate on the "response_status_code" field. It's identical to ResponseStatusCodeEQ.
func ResponseStatusCode(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldResponseStatusCode, v))
}

// ResponseBody applies equality check predicate on the "response_body" field. It's identical to ResponseBodyEQ.
func ResponseBody(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldResponseBody, v))
}

// ResponseTimeMs applies equality check predicate on the "response_time_ms" field. It's identical to ResponseTimeMsEQ.
func ResponseTimeMs(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldUpdateTime, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldIsDeleted, v))
}

// IsDeletedIn applies the In predicate on the "is_deleted" field.
func IsDeletedIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldIsDeleted, vs...))
}

// IsDeletedNotIn applies the NotIn predicate on the "is_deleted" field.
func IsDeletedNotIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldIsDeleted, vs...))
}

// IsDeletedGT applies the GT predicate on the "is_deleted" field.
func IsDeletedGT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldIsDeleted, v))
}

// IsDeletedGTE applies the GTE predicate on the "is_deleted" field.
func IsDeletedGTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldIsDeleted, v))
}

// IsDeletedLT applies the LT predicate on the "is_deleted" field.
func IsDeletedLT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldIsDeleted, v))
}

// IsDeletedLTE applies the LTE predicate on the "is_deleted" field.
func IsDeletedLTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldIsDeleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldStatus, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldRequestID, v))
}

// ScenarioRunIDEQ applies the EQ predicate on the "scenario_run_id" field.
func ScenarioRunIDEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldScenarioRunID, v))
}

// ScenarioRunIDNEQ applies the NEQ predicate on the "scenario_run_id" field.
func ScenarioRunIDNEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldScenarioRunID, v))
}

// ScenarioRunIDIn applies the In predicate on the "scenario_run_id" field.
func ScenarioRunIDIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldScenarioRunID, vs...))
}

// ScenarioRunIDNotIn applies the NotIn predicate on the "scenario_run_id" field.
func ScenarioRunIDNotIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldScenarioRunID, vs...))
}

// ScenarioRunIDGT applies the GT predicate on the "scenario_run_id" field.
func ScenarioRunIDGT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldScenarioRunID, v))
}

// ScenarioRunIDGTE applies the GTE predicate on the "scenario_run_id" field.
func ScenarioRunIDGTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldScenarioRunID, v))
}

// ScenarioRunIDLT applies the LT predicate on the "scenario_run_id" field.
func ScenarioRunIDLT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldScenarioRunID, v))
}

// ScenarioRunIDLTE applies the LTE predicate on the "scenario_run_id" field.
func ScenarioRunIDLTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldScenarioRunID, v))
}

// ScenarioRunIDIsNil applies the IsNil predicate on the "scenario_run_id" field.
func ScenarioRunIDIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldScenarioRunID))
}

// ScenarioRunIDNotNil applies the NotNil predicate on the "scenario_run_id" field.
func ScenarioRunIDNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldScenarioRunID))
}

// ScenarioCaseIDEQ applies the EQ predicate on the "scenario_case_id" field.
func ScenarioCaseIDEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldScenarioCaseID, v))
}

// ScenarioCaseIDNEQ applies the NEQ predicate on the "scenario_case_id" field.
func ScenarioCaseIDNEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldScenarioCaseID, v))
}

// ScenarioCaseIDIn applies the In predicate on the "scenario_case_id" field.
func ScenarioCaseIDIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldScenarioCaseID, vs...))
}

// ScenarioCaseIDNotIn applies the NotIn predicate on the "scenario_case_id" field.
func ScenarioCaseIDNotIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldScenarioCaseID, vs...))
}

// ScenarioCaseIDGT applies the GT predicate on the "scenario_case_id" field.
func ScenarioCaseIDGT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldScenarioCaseID, v))
}

// ScenarioCaseIDGTE applies the GTE predicate on the "scenario_case_id" field.
func ScenarioCaseIDGTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldScenarioCaseID, v))
}

// ScenarioCaseIDLT applies the LT predicate on the "scenario_case_id" field.
func ScenarioCaseIDLT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldScenarioCaseID, v))
}

// ScenarioCaseIDLTE applies the LTE predicate on the "scenario_case_id" field.
func ScenarioCaseIDLTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldScenarioCaseID, v))
}

// ScenarioCaseIDIsNil applies the IsNil predicate on the "scenario_case_id" field.
func ScenarioCaseIDIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldScenarioCaseID))
}

// ScenarioCaseIDNotNil applies the NotNil predicate on the "scenario_case_id" field.
func ScenarioCaseIDNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldScenarioCaseID))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDIsNil applies the IsNil predicate on the "dataset_id" field.
func DatasetIDIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldDatasetID))
}

// DatasetIDNotNil applies the NotNil predicate on the "dataset_id" field.
func DatasetIDNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldDatasetID))
}

// DatasetSnapshotIsNil applies the IsNil predicate on the "dataset_snapshot" field.
func DatasetSnapshotIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldDatasetSnapshot))
}

// DatasetSnapshotNotNil applies the NotNil predicate on the "dataset_snapshot" field.
func DatasetSnapshotNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldDatasetSnapshot))
}

// IsSuccessEQ applies the EQ predicate on the "is_success" field.
func IsSuccessEQ(v bool) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldIsSuccess, v))
}

// IsSuccessNEQ applies the NEQ predicate on the "is_success" field.
func IsSuccessNEQ(v bool) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldIsSuccess, v))
}

// ResponseStatusCodeEQ applies the EQ predicate on the "response_status_code" field.
func ResponseStatusCodeEQ(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldResponseStatusCode, v))
}

// ResponseStatusCodeNEQ applies the NEQ predicate on the "response_status_code" field.
func ResponseStatusCodeNEQ(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldResponseStatusCode, v))
}

// ResponseStatusCodeIn applies the In predicate on the "response_status_code" field.
func ResponseStatusCodeIn(vs ...int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldResponseStatusCode, vs...))
}

// ResponseStatusCodeNotIn applies the NotIn predicate on the "response_status_code" field.
func ResponseStatusCodeNotIn(vs ...int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldResponseStatusCode, vs...))
}

// ResponseStatusCodeGT applies the GT predicate on the "response_status_code" field.
func ResponseStatusCodeGT(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldResponseStatusCode, v))
}

// ResponseStatusCodeGTE applies the GTE predicate on the "response_status_code" field.
func ResponseStatusCodeGTE(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldResponseStatusCode, v))
}

// ResponseStatusCodeLT applies the LT predicate on the "response_status_code" field.
func ResponseStatusCodeLT(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldResponseStatusCode, v))
}

// ResponseStatusCodeLTE applies the LTE predicate on the "response_status_code" field.
func ResponseStatusCodeLTE(v int) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldResponseStatusCode, v))
}

// ResponseStatusCodeIsNil applies the IsNil predicate on the "response_status_code" field.
func ResponseStatusCodeIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldResponseStatusCode))
}

// ResponseStatusCodeNotNil applies the NotNil predicate on the "response_status_code" field.
func ResponseStatusCodeNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldResponseStatusCode))
}

// ResponseHeadersIsNil applies the IsNil predicate on the "response_headers" field.
func ResponseHeadersIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldResponseHeaders))
}

// ResponseHeadersNotNil applies the NotNil predicate on the "response_headers" field.
func ResponseHeadersNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldResponseHeaders))
}

// ResponseBodyEQ applies the EQ predicate on the "response_body" field.
func ResponseBodyEQ(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldResponseBody, v))
}

// ResponseBodyNEQ applies the NEQ predicate on the "response_body" field.
func ResponseBodyNEQ(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldResponseBody, v))
}

// ResponseBodyIn applies the In predicate on the "response_body" field.
func ResponseBodyIn(vs ...string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldResponseBody, vs...))
}

// ResponseBodyNotIn applies the NotIn predicate on the "response_body" field.
func ResponseBodyNotIn(vs ...string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldResponseBody, vs...))
}

// ResponseBodyGT applies the GT predicate on the "response_body" field.
func ResponseBodyGT(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldResponseBody, v))
}

// ResponseBodyGTE applies the GTE predicate on the "response_body" field.
func ResponseBodyGTE(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldResponseBody, v))
}

// ResponseBodyLT applies the LT predicate on the "response_body" field.
func ResponseBodyLT(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldResponseBody, v))
}

// ResponseBodyLTE applies the LTE predicate on the "response_body" field.
func ResponseBodyLTE(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldResponseBody, v))
}

// ResponseBodyContains applies the Contains predicate on the "response_body" field.
func ResponseBodyContains(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldContains(FieldResponseBody, v))
}

// ResponseBodyHasPrefix applies the HasPrefix predicate on the "response_body" field.
func ResponseBodyHasPrefix(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldHasPrefix(FieldResponseBody, v))
}

// ResponseBodyHasSuffix applies the HasSuffix predicate on the "response_body" field.
func ResponseBodyHasSuffix(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldHasSuffix(FieldResponseBody, v))
}

// ResponseBodyIsNil applies the IsNil predicate on the "response_body" field.
func ResponseBodyIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldResponseBody))
}

// ResponseBodyNotNil applies the NotNil predicate on the "response_body" field.
func ResponseBodyNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldResponseBody))
}

// ResponseBodyEqualFold applies the EqualFold predicate on the "response_body" field.
func ResponseBodyEqualFold(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEqualFold(FieldResponseBody, v))
}

// ResponseBodyContainsFold applies the ContainsFold predicate on the "response_body" field.
func ResponseBodyContainsFold(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldContainsFold(FieldResponseBody, v))
}

// ResponseTimeMsEQ applies the EQ predicate on the "response_time_ms" field.
func ResponseTimeMsEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsNEQ applies the NEQ predicate on the "response_time_ms" field.
func ResponseTimeMsNEQ(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldResponseTimeMs, v))
}

// ResponseTimeMsIn applies the In predicate on the "response_time_ms" field.
func ResponseTimeMsIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsNotIn applies the NotIn predicate on the "response_time_ms" field.
func ResponseTimeMsNotIn(vs ...int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldResponseTimeMs, vs...))
}

// ResponseTimeMsGT applies the GT predicate on the "response_time_ms" field.
func ResponseTimeMsGT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldResponseTimeMs, v))
}

// ResponseTimeMsGTE applies the GTE predicate on the "response_time_ms" field.
func ResponseTimeMsGTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldResponseTimeMs, v))
}

// ResponseTimeMsLT applies the LT predicate on the "response_time_ms" field.
func ResponseTimeMsLT(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldResponseTimeMs, v))
}

// ResponseTimeMsLTE applies the LTE predicate on the "response_time_ms" field.
func ResponseTimeMsLTE(v int64) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldResponseTimeMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.RequestRun {
	return predicate.RequestRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AssertionResultsIsNil applies the IsNil predicate on the "assertion_results" field.
func AssertionResultsIsNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldIsNull(FieldAssertionResults))
}

// AssertionResultsNotNil applies the NotNil predicate on the "assertion_results" field.
func AssertionResultsNotNil() predicate.RequestRun {
	return predicate.RequestRun(sql.FieldNotNull(FieldAssertionResults))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RequestRun) predicate.RequestRun {
	return predicate.RequestRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RequestRun) predicate.RequestRun {
	return predicate.RequestRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RequestRun) predicate.RequestRun {
	return predicate.RequestRun(sql.NotPredicates(p))
}
