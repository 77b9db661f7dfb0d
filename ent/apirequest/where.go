// Code generated by ent, DO NOT EDIT.

package apirequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldUpdateTime, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldIsDeleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldStatus, v))
}

// EnvID applies equality check predicate on the "env_id" field. It's identical to EnvIDEQ.
func EnvID(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldEnvID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldName, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldMethod, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldURL, v))
}

// Remark applies equality check predicate on the "remark" field. It's identical to RemarkEQ.
func Remark(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldRemark, v))
}

// BodyType applies equality check predicate on the "body_type" field. It's identical to BodyTypeEQ.
func BodyType(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldBodyType, v))
}

// BaseBodyRaw applies equality check predicate on the "base_body_raw" field. It's identical to BaseBodyRawEQ.
func BaseBodyRaw(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldBaseBodyRaw, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldTimeoutMs, v))
}

// FollowRedirects applies equality check predicate on the "follow_redirects" field. It's identical to FollowRedirectsEQ.
func FollowRedirects(v bool) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldFollowRedirects, v))
}

// VerifySsl applies equality check predicate on the "verify_ssl" field. It's identical to VerifySslEQ.
func VerifySsl(v bool) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldVerifySsl, v))
}

// ProxyURL applies equality check predicate on the "proxy_url" field. It's identical to ProxyURLEQ.
func ProxyURL(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldProxyURL, v))
}

// Sort applies equality check predicate on the "sort" field. It's identical to SortEQ.
func Sort(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldSort, v))
}

// ExecuteCount applies equality check predicate on the "execute_count" field. It's identical to ExecuteCountEQ.
func ExecuteCount(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldExecuteCount, v))
}

// DefaultDatasetID applies equality check predicate on the "default_dataset_id" field. It's identical to DefaultDatasetIDEQ.
func DefaultDatasetID(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldDefaultDatasetID, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldUpdateTime, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldIsDeleted, v))
}

// IsDeletedIn applies the In predicate on the "is_deleted" field.
func IsDeletedIn(vs ...int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldIsDeleted, vs...))
}

// IsDeletedNotIn applies the NotIn predicate on the "is_deleted" field.
func IsDeletedNotIn(vs ...int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldIsDeleted, vs...))
}

// IsDeletedGT applies the GT predicate on the "is_deleted" field.
func IsDeletedGT(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldIsDeleted, v))
}

// IsDeletedGTE applies the GTE predicate on the "is_deleted" field.
func IsDeletedGTE(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldIsDeleted, v))
}

// IsDeletedLT applies the LT predicate on the "is_deleted" field.
func IsDeletedLT(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldIsDeleted, v))
}

// IsDeletedLTE applies the LTE predicate on the "is_deleted" field.
func IsDeletedLTE(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldIsDeleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldStatus, v))
}

// EnvIDEQ applies the EQ predicate on the "env_id" field.
func EnvIDEQ(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldEnvID, v))
}

// EnvIDNEQ applies the NEQ predicate on the "env_id" field.
func EnvIDNEQ(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldEnvID, v))
}

// EnvIDIn applies the In predicate on the "env_id" field.
func EnvIDIn(vs ...int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldEnvID, vs...))
}

// EnvIDNotIn applies the NotIn predicate on the "env_id" field.
func EnvIDNotIn(vs ...int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldEnvID, vs...))
}

// EnvIDGT applies the GT predicate on the "env_id" field.
func EnvIDGT(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldEnvID, v))
}

// EnvIDGTE applies the GTE predicate on the "env_id" field.
func EnvIDGTE(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldEnvID, v))
}

// EnvIDLT applies the LT predicate on the "env_id" field.
func EnvIDLT(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldEnvID, v))
}

// EnvIDLTE applies the LTE predicate on the "env_id" field.
func EnvIDLTE(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldEnvID, v))
}

// EnvIDIsNil applies the IsNil predicate on the "env_id" field.
func EnvIDIsNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIsNull(FieldEnvID))
}

// EnvIDNotNil applies the NotNil predicate on the "env_id" field.
func EnvIDNotNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotNull(FieldEnvID))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContainsFold(FieldName, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContainsFold(FieldMethod, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContainsFold(FieldURL, v))
}

// RemarkEQ applies the EQ predicate on the "remark" field.
func RemarkEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldRemark, v))
}

// RemarkNEQ applies the NEQ predicate on the "remark" field.
func RemarkNEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldRemark, v))
}

// RemarkIn applies the In predicate on the "remark" field.
func RemarkIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldRemark, vs...))
}

// RemarkNotIn applies the NotIn predicate on the "remark" field.
func RemarkNotIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldRemark, vs...))
}

// RemarkGT applies the GT predicate on the "remark" field.
func RemarkGT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldRemark, v))
}

// RemarkGTE applies the GTE predicate on the "remark" field.
func RemarkGTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldRemark, v))
}

// RemarkLT applies the LT predicate on the "remark" field.
func RemarkLT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldRemark, v))
}

// RemarkLTE applies the LTE predicate on the "remark" field.
func RemarkLTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldRemark, v))
}

// RemarkContains applies the Contains predicate on the "remark" field.
func RemarkContains(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContains(FieldRemark, v))
}

// RemarkHasPrefix applies the HasPrefix predicate on the "remark" field.
func RemarkHasPrefix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasPrefix(FieldRemark, v))
}

// RemarkHasSuffix applies the HasSuffix predicate on the "remark" field.
func RemarkHasSuffix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasSuffix(FieldRemark, v))
}

// RemarkIsNil applies the IsNil predicate on the "remark" field.
func RemarkIsNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIsNull(FieldRemark))
}

// RemarkNotNil applies the NotNil predicate on the "remark" field.
func RemarkNotNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotNull(FieldRemark))
}

// RemarkEqualFold applies the EqualFold predicate on the "remark" field.
func RemarkEqualFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEqualFold(FieldRemark, v))
}

// RemarkContainsFold applies the ContainsFold predicate on the "remark" field.
func RemarkContainsFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContainsFold(FieldRemark, v))
}

// BodyTypeEQ applies the EQ predicate on the "body_type" field.
func BodyTypeEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldBodyType, v))
}

// BodyTypeNEQ applies the NEQ predicate on the "body_type" field.
func BodyTypeNEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldBodyType, v))
}

// BodyTypeIn applies the In predicate on the "body_type" field.
func BodyTypeIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldBodyType, vs...))
}

// BodyTypeNotIn applies the NotIn predicate on the "body_type" field.
func BodyTypeNotIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldBodyType, vs...))
}

// BodyTypeGT applies the GT predicate on the "body_type" field.
func BodyTypeGT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldBodyType, v))
}

// BodyTypeGTE applies the GTE predicate on the "body_type" field.
func BodyTypeGTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldBodyType, v))
}

// BodyTypeLT applies the LT predicate on the "body_type" field.
func BodyTypeLT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldBodyType, v))
}

// BodyTypeLTE applies the LTE predicate on the "body_type" field.
func BodyTypeLTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldBodyType, v))
}

// BodyTypeContains applies the Contains predicate on the "body_type" field.
func BodyTypeContains(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContains(FieldBodyType, v))
}

// BodyTypeHasPrefix applies the HasPrefix predicate on the "body_type" field.
func BodyTypeHasPrefix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasPrefix(FieldBodyType, v))
}

// BodyTypeHasSuffix applies the HasSuffix predicate on the "body_type" field.
func BodyTypeHasSuffix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasSuffix(FieldBodyType, v))
}

// BodyTypeEqualFold applies the EqualFold predicate on the "body_type" field.
func BodyTypeEqualFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEqualFold(FieldBodyType, v))
}

// BodyTypeContainsFold applies the ContainsFold predicate on the "body_type" field.
func BodyTypeContainsFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContainsFold(FieldBodyType, v))
}

// BaseBodyRawEQ applies the EQ predicate on the "base_body_raw" field.
func BaseBodyRawEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldBaseBodyRaw, v))
}

// BaseBodyRawNEQ applies the NEQ predicate on the "base_body_raw" field.
func BaseBodyRawNEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldBaseBodyRaw, v))
}

// BaseBodyRawIn applies the In predicate on the "base_body_raw" field.
func BaseBodyRawIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldBaseBodyRaw, vs...))
}

// BaseBodyRawNotIn applies the NotIn predicate on the "base_body_raw" field.
func BaseBodyRawNotIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldBaseBodyRaw, vs...))
}

// BaseBodyRawGT applies the GT predicate on the "base_body_raw" field.
func BaseBodyRawGT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldBaseBodyRaw, v))
}

// BaseBodyRawGTE applies the GTE predicate on the "base_body_raw" field.
func BaseBodyRawGTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldBaseBodyRaw, v))
}

// BaseBodyRawLT applies the LT predicate on the "base_body_raw" field.
func BaseBodyRawLT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldBaseBodyRaw, v))
}

// BaseBodyRawLTE applies the LTE predicate on the "base_body_raw" field.
func BaseBodyRawLTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldBaseBodyRaw, v))
}

// BaseBodyRawContains applies the Contains predicate on the "base_body_raw" field.
func BaseBodyRawContains(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContains(FieldBaseBodyRaw, v))
}

// BaseBodyRawHasPrefix applies the HasPrefix predicate on the "base_body_raw" field.
func BaseBodyRawHasPrefix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasPrefix(FieldBaseBodyRaw, v))
}

// BaseBodyRawHasSuffix applies the HasSuffix predicate on the "base_body_raw" field.
func BaseBodyRawHasSuffix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasSuffix(FieldBaseBodyRaw, v))
}

// BaseBodyRawIsNil applies the IsNil predicate on the "base_body_raw" field.
func BaseBodyRawIsNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIsNull(FieldBaseBodyRaw))
}

// BaseBodyRawNotNil applies the NotNil predicate on the "base_body_raw" field.
func BaseBodyRawNotNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotNull(FieldBaseBodyRaw))
}

// BaseBodyRawEqualFold applies the EqualFold predicate on the "base_body_raw" field.
func BaseBodyRawEqualFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEqualFold(FieldBaseBodyRaw, v))
}

// BaseBodyRawContainsFold applies the ContainsFold predicate on the "base_body_raw" field.
func BaseBodyRawContainsFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContainsFold(FieldBaseBodyRaw, v))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldTimeoutMs, v))
}

// FollowRedirectsEQ applies the EQ predicate on the "follow_redirects" field.
func FollowRedirectsEQ(v bool) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldFollowRedirects, v))
}

// FollowRedirectsNEQ applies the NEQ predicate on the "follow_redirects" field.
func FollowRedirectsNEQ(v bool) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldFollowRedirects, v))
}

// VerifySslEQ applies the EQ predicate on the "verify_ssl" field.
func VerifySslEQ(v bool) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldVerifySsl, v))
}

// VerifySslNEQ applies the NEQ predicate on the "verify_ssl" field.
func VerifySslNEQ(v bool) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldVerifySsl, v))
}

// ProxyURLEQ applies the EQ predicate on the "proxy_url" field.
func ProxyURLEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldProxyURL, v))
}

// ProxyURLNEQ applies the NEQ predicate on the "proxy_url" field.
func ProxyURLNEQ(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldProxyURL, v))
}

// ProxyURLIn applies the In predicate on the "proxy_url" field.
func ProxyURLIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldProxyURL, vs...))
}

// ProxyURLNotIn applies the NotIn predicate on the "proxy_url" field.
func ProxyURLNotIn(vs ...string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldProxyURL, vs...))
}

// ProxyURLGT applies the GT predicate on the "proxy_url" field.
func ProxyURLGT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldProxyURL, v))
}

// ProxyURLGTE applies the GTE predicate on the "proxy_url" field.
func ProxyURLGTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldProxyURL, v))
}

// ProxyURLLT applies the LT predicate on the "proxy_url" field.
func ProxyURLLT(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldProxyURL, v))
}

// ProxyURLLTE applies the LTE predicate on the "proxy_url" field.
func ProxyURLLTE(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldProxyURL, v))
}

// ProxyURLContains applies the Contains predicate on the "proxy_url" field.
func ProxyURLContains(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContains(FieldProxyURL, v))
}

// ProxyURLHasPrefix applies the HasPrefix predicate on the "proxy_url" field.
func ProxyURLHasPrefix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasPrefix(FieldProxyURL, v))
}

// ProxyURLHasSuffix applies the HasSuffix predicate on the "proxy_url" field.
func ProxyURLHasSuffix(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldHasSuffix(FieldProxyURL, v))
}

// ProxyURLIsNil applies the IsNil predicate on the "proxy_url" field.
func ProxyURLIsNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIsNull(FieldProxyURL))
}

// ProxyURLNotNil applies the NotNil predicate on the "proxy_url" field.
func ProxyURLNotNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotNull(FieldProxyURL))
}

// ProxyURLEqualFold applies the EqualFold predicate on the "proxy_url" field.
func ProxyURLEqualFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEqualFold(FieldProxyURL, v))
}

// ProxyURLContainsFold applies the ContainsFold predicate on the "proxy_url" field.
func ProxyURLContainsFold(v string) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldContainsFold(FieldProxyURL, v))
}

// SortEQ applies the EQ predicate on the "sort" field.
func SortEQ(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldSort, v))
}

// SortNEQ applies the NEQ predicate on the "sort" field.
func SortNEQ(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldSort, v))
}

// SortIn applies the In predicate on the "sort" field.
func SortIn(vs ...int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldSort, vs...))
}

// SortNotIn applies the NotIn predicate on the "sort" field.
func SortNotIn(vs ...int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldSort, vs...))
}

// SortGT applies the GT predicate on the "sort" field.
func SortGT(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldSort, v))
}

// SortGTE applies the GTE predicate on the "sort" field.
func SortGTE(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldSort, v))
}

// SortLT applies the LT predicate on the "sort" field.
func SortLT(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldSort, v))
}

// SortLTE applies the LTE predicate on the "sort" field.
func SortLTE(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldSort, v))
}

// ExecuteCountEQ applies the EQ predicate on the "execute_count" field.
func ExecuteCountEQ(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldExecuteCount, v))
}

// ExecuteCountNEQ applies the NEQ predicate on the "execute_count" field.
func ExecuteCountNEQ(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldExecuteCount, v))
}

// ExecuteCountIn applies the In predicate on the "execute_count" field.
func ExecuteCountIn(vs ...int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldExecuteCount, vs...))
}

// ExecuteCountNotIn applies the NotIn predicate on the "execute_count" field.
func ExecuteCountNotIn(vs ...int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldExecuteCount, vs...))
}

// ExecuteCountGT applies the GT predicate on the "execute_count" field.
func ExecuteCountGT(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldExecuteCount, v))
}

// ExecuteCountGTE applies the GTE predicate on the "execute_count" field.
func ExecuteCountGTE(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldExecuteCount, v))
}

// ExecuteCountLT applies the LT predicate on the "execute_count" field.
func ExecuteCountLT(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldExecuteCount, v))
}

// ExecuteCountLTE applies the LTE predicate on the "execute_count" field.
func ExecuteCountLTE(v int) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldExecuteCount, v))
}

// DatasetRunModeEQ applies the EQ predicate on the "dataset_run_mode" field.
func DatasetRunModeEQ(v DatasetRunMode) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldDatasetRunMode, v))
}

// DatasetRunModeNEQ applies the NEQ predicate on the "dataset_run_mode" field.
func DatasetRunModeNEQ(v DatasetRunMode) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldDatasetRunMode, v))
}

// DatasetRunModeIn applies the In predicate on the "dataset_run_mode" field.
func DatasetRunModeIn(vs ...DatasetRunMode) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldDatasetRunMode, vs...))
}

// DatasetRunModeNotIn applies the NotIn predicate on the "dataset_run_mode" field.
func DatasetRunModeNotIn(vs ...DatasetRunMode) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldDatasetRunMode, vs...))
}

// DefaultDatasetIDEQ applies the EQ predicate on the "default_dataset_id" field.
func DefaultDatasetIDEQ(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldEQ(FieldDefaultDatasetID, v))
}

// DefaultDatasetIDNEQ applies the NEQ predicate on the "default_dataset_id" field.
func DefaultDatasetIDNEQ(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNEQ(FieldDefaultDatasetID, v))
}

// DefaultDatasetIDIn applies the In predicate on the "default_dataset_id" field.
func DefaultDatasetIDIn(vs ...int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIn(FieldDefaultDatasetID, vs...))
}

// DefaultDatasetIDNotIn applies the NotIn predicate on the "default_dataset_id" field.
func DefaultDatasetIDNotIn(vs ...int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotIn(FieldDefaultDatasetID, vs...))
}

// DefaultDatasetIDGT applies the GT predicate on the "default_dataset_id" field.
func DefaultDatasetIDGT(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGT(FieldDefaultDatasetID, v))
}

// DefaultDatasetIDGTE applies the GTE predicate on the "default_dataset_id" field.
func DefaultDatasetIDGTE(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldGTE(FieldDefaultDatasetID, v))
}

// DefaultDatasetIDLT applies the LT predicate on the "default_dataset_id" field.
func DefaultDatasetIDLT(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLT(FieldDefaultDatasetID, v))
}

// DefaultDatasetIDLTE applies the LTE predicate on the "default_dataset_id" field.
func DefaultDatasetIDLTE(v int64) predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldLTE(FieldDefaultDatasetID, v))
}

// DefaultDatasetIDIsNil applies the IsNil predicate on the "default_dataset_id" field.
func DefaultDatasetIDIsNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldIsNull(FieldDefaultDatasetID))
}

// DefaultDatasetIDNotNil applies the NotNil predicate on the "default_dataset_id" field.
func DefaultDatasetIDNotNil() predicate.ApiRequest {
	return predicate.ApiRequest(sql.FieldNotNull(FieldDefaultDatasetID))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApiRequest) predicate.ApiRequest {
	return predicate.ApiRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApiRequest) predicate.ApiRequest {
	return predicate.ApiRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApiRequest) predicate.ApiRequest {
	return predicate.ApiRequest(sql.NotPredicates(p))
}
