// Code generated by ent, DO NOT EDIT.

package scenariorun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldUpdateTime, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldIsDeleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldStatus, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldScenarioID, v))
}

// EnvID applies equality check predicate on the "env_id" field. It's identical to EnvIDEQ.
func EnvID(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldEnvID, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldCancelRequested, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldFinishedAt, v))
}

// TotalRequestRuns applies equality check predicate on the "total_request_runs" field. It's identical to TotalRequestRunsEQ.
func TotalRequestRuns(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldTotalRequestRuns, v))
}

// SuccessRequestRuns applies equality check predicate on the "success_request_runs" field. It's identical to SuccessRequestRunsEQ.
func SuccessRequestRuns(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldSuccessRequestRuns, v))
}

// FailedRequestRuns applies equality check predicate on the "failed_request_runs" field. It's identical to FailedRequestRunsEQ.
func FailedRequestRuns(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldFailedRequestRuns, v))
}

// IsSuccess applies equality check predicate on the "is_success" field. It's identical to IsSuccessEQ.
func IsSuccess(v bool) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldIsSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldUpdateTime, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldIsDeleted, v))
}

// IsDeletedIn applies the In predicate on the "is_deleted" field.
func IsDeletedIn(vs ...int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldIsDeleted, vs...))
}

// IsDeletedNotIn applies the NotIn predicate on the "is_deleted" field.
func IsDeletedNotIn(vs ...int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldIsDeleted, vs...))
}

// IsDeletedGT applies the GT predicate on the "is_deleted" field.
func IsDeletedGT(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldIsDeleted, v))
}

// IsDeletedGTE applies the GTE predicate on the "is_deleted" field.
func IsDeletedGTE(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldIsDeleted, v))
}

// IsDeletedLT applies the LT predicate on the "is_deleted" field.
func IsDeletedLT(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldIsDeleted, v))
}

// IsDeletedLTE applies the LTE predicate on the "is_deleted" field.
func IsDeletedLTE(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldIsDeleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldStatus, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldScenarioID, v))
}

// EnvIDEQ applies the EQ predicate on the "env_id" field.
func EnvIDEQ(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldEnvID, v))
}

// EnvIDNEQ applies the NEQ predicate on the "env_id" field.
func EnvIDNEQ(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldEnvID, v))
}

// EnvIDIn applies the In predicate on the "env_id" field.
func EnvIDIn(vs ...int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldEnvID, vs...))
}

// EnvIDNotIn applies the NotIn predicate on the "env_id" field.
func EnvIDNotIn(vs ...int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldEnvID, vs...))
}

// EnvIDGT applies the GT predicate on the "env_id" field.
func EnvIDGT(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldEnvID, v))
}

// EnvIDGTE applies the GTE predicate on the "env_id" field.
func EnvIDGTE(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldEnvID, v))
}

// EnvIDLT applies the LT predicate on the "env_id" field.
func EnvIDLT(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldEnvID, v))
}

// EnvIDLTE applies the LTE predicate on the "env_id" field.
func EnvIDLTE(v int64) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldEnvID, v))
}

// EnvIDIsNil applies the IsNil predicate on the "env_id" field.
func EnvIDIsNil() predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIsNull(FieldEnvID))
}

// EnvIDNotNil applies the NotNil predicate on the "env_id" field.
func EnvIDNotNil() predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotNull(FieldEnvID))
}

// RunStatusEQ applies the EQ predicate on the "run_status" field.
func RunStatusEQ(v RunStatus) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldRunStatus, v))
}

// RunStatusNEQ applies the NEQ predicate on the "run_status" field.
func RunStatusNEQ(v RunStatus) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldRunStatus, v))
}

// RunStatusIn applies the In predicate on the "run_status" field.
func RunStatusIn(vs ...RunStatus) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldRunStatus, vs...))
}

// RunStatusNotIn applies the NotIn predicate on the "run_status" field.
func RunStatusNotIn(vs ...RunStatus) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldRunStatus, vs...))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldTriggerType, vs...))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldCancelRequested, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotNull(FieldFinishedAt))
}

// TotalRequestRunsEQ applies the EQ predicate on the "total_request_runs" field.
func TotalRequestRunsEQ(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldTotalRequestRuns, v))
}

// TotalRequestRunsNEQ applies the NEQ predicate on the "total_request_runs" field.
func TotalRequestRunsNEQ(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldTotalRequestRuns, v))
}

// TotalRequestRunsIn applies the In predicate on the "total_request_runs" field.
func TotalRequestRunsIn(vs ...int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldTotalRequestRuns, vs...))
}

// TotalRequestRunsNotIn applies the NotIn predicate on the "total_request_runs" field.
func TotalRequestRunsNotIn(vs ...int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldTotalRequestRuns, vs...))
}

// TotalRequestRunsGT applies the GT predicate on the "total_request_runs" field.
func TotalRequestRunsGT(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldTotalRequestRuns, v))
}

// TotalRequestRunsGTE applies the GTE predicate on the "total_request_runs" field.
func TotalRequestRunsGTE(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldTotalRequestRuns, v))
}

// TotalRequestRunsLT applies the LT predicate on the "total_request_runs" field.
func TotalRequestRunsLT(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldTotalRequestRuns, v))
}

// TotalRequestRunsLTE applies the LTE predicate on the "total_request_runs" field.
func TotalRequestRunsLTE(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldTotalRequestRuns, v))
}

// SuccessRequestRunsEQ applies the EQ predicate on the "success_request_runs" field.
func SuccessRequestRunsEQ(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldSuccessRequestRuns, v))
}

// SuccessRequestRunsNEQ applies the NEQ predicate on the "success_request_runs" field.
func SuccessRequestRunsNEQ(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldSuccessRequestRuns, v))
}

// SuccessRequestRunsIn applies the In predicate on the "success_request_runs" field.
func SuccessRequestRunsIn(vs ...int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldSuccessRequestRuns, vs...))
}

// SuccessRequestRunsNotIn applies the NotIn predicate on the "success_request_runs" field.
func SuccessRequestRunsNotIn(vs ...int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldSuccessRequestRuns, vs...))
}

// SuccessRequestRunsGT applies the GT predicate on the "success_request_runs" field.
func SuccessRequestRunsGT(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldSuccessRequestRuns, v))
}

// SuccessRequestRunsGTE applies the GTE predicate on the "success_request_runs" field.
func SuccessRequestRunsGTE(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldSuccessRequestRuns, v))
}

// SuccessRequestRunsLT applies the LT predicate on the "success_request_runs" field.
func SuccessRequestRunsLT(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldSuccessRequestRuns, v))
}

// SuccessRequestRunsLTE applies the LTE predicate on the "success_request_runs" field.
func SuccessRequestRunsLTE(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldSuccessRequestRuns, v))
}

// FailedRequestRunsEQ applies the EQ predicate on the "failed_request_runs" field.
func FailedRequestRunsEQ(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldFailedRequestRuns, v))
}

// FailedRequestRunsNEQ applies the NEQ predicate on the "failed_request_runs" field.
func FailedRequestRunsNEQ(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldFailedRequestRuns, v))
}

// FailedRequestRunsIn applies the In predicate on the "failed_request_runs" field.
func FailedRequestRunsIn(vs ...int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldFailedRequestRuns, vs...))
}

// FailedRequestRunsNotIn applies the NotIn predicate on the "failed_request_runs" field.
func FailedRequestRunsNotIn(vs ...int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldFailedRequestRuns, vs...))
}

// FailedRequestRunsGT applies the GT predicate on the "failed_request_runs" field.
func FailedRequestRunsGT(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldFailedRequestRuns, v))
}

// FailedRequestRunsGTE applies the GTE predicate on the "failed_request_runs" field.
func FailedRequestRunsGTE(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldFailedRequestRuns, v))
}

// FailedRequestRunsLT applies the LT predicate on the "failed_request_runs" field.
func FailedRequestRunsLT(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldFailedRequestRuns, v))
}

// FailedRequestRunsLTE applies the LTE predicate on the "failed_request_runs" field.
func FailedRequestRunsLTE(v int) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldFailedRequestRuns, v))
}

// IsSuccessEQ applies the EQ predicate on the "is_success" field.
func IsSuccessEQ(v bool) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldIsSuccess, v))
}

// IsSuccessNEQ applies the NEQ predicate on the "is_success" field.
func IsSuccessNEQ(v bool) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldIsSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScenarioRun) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScenarioRun) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScenarioRun) predicate.ScenarioRun {
	return predicate.ScenarioRun(sql.NotPredicates(p))
}
