// Code generated by ent, DO NOT EDIT.

package dataset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldUpdateTime, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldIsDeleted, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldStatus, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldRequestID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldName, v))
}

// Remark applies equality check predicate on the "remark" field. It's identical to RemarkEQ.
func Remark(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldRemark, v))
}

// BodyType applies equality check predicate on the "body_type" field. It's identical to BodyTypeEQ.
func BodyType(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldBodyType, v))
}

// BodyRaw applies equality check predicate on the "body_raw" field. It's identical to BodyRawEQ.
func BodyRaw(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldBodyRaw, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldIsDefault, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldIsEnabled, v))
}

// Sort applies equality check predicate on the "sort" field. It's identical to SortEQ.
func Sort(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldSort, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldUpdateTime, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldIsDeleted, v))
}

// IsDeletedIn applies the In predicate on the "is_deleted" field.
func IsDeletedIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldIsDeleted, vs...))
}

// IsDeletedNotIn applies the NotIn predicate on the "is_deleted" field.
func IsDeletedNotIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldIsDeleted, vs...))
}

// IsDeletedGT applies the GT predicate on the "is_deleted" field.
func IsDeletedGT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldIsDeleted, v))
}

// IsDeletedGTE applies the GTE predicate on the "is_deleted" field.
func IsDeletedGTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldIsDeleted, v))
}

// IsDeletedLT applies the LT predicate on the "is_deleted" field.
func IsDeletedLT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldIsDeleted, v))
}

// IsDeletedLTE applies the LTE predicate on the "is_deleted" field.
func IsDeletedLTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldIsDeleted, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldStatus, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v int64) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldRequestID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldName, v))
}

// RemarkEQ applies the EQ predicate on the "remark" field.
func RemarkEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldRemark, v))
}

// RemarkNEQ applies the NEQ predicate on the "remark" field.
func RemarkNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldRemark, v))
}

// RemarkIn applies the In predicate on the "remark" field.
func RemarkIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldRemark, vs...))
}

// RemarkNotIn applies the NotIn predicate on the "remark" field.
func RemarkNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldRemark, vs...))
}

// RemarkGT applies the GT predicate on the "remark" field.
func RemarkGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldRemark, v))
}

// RemarkGTE applies the GTE predicate on the "remark" field.
func RemarkGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldRemark, v))
}

// RemarkLT applies the LT predicate on the "remark" field.
func RemarkLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldRemark, v))
}

// RemarkLTE applies the LTE predicate on the "remark" field.
func RemarkLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldRemark, v))
}

// RemarkContains applies the Contains predicate on the "remark" field.
func RemarkContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldRemark, v))
}

// RemarkHasPrefix applies the HasPrefix predicate on the "remark" field.
func RemarkHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldRemark, v))
}

// RemarkHasSuffix applies the HasSuffix predicate on the "remark" field.
func RemarkHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldRemark, v))
}

// RemarkIsNil applies the IsNil predicate on the "remark" field.
func RemarkIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldRemark))
}

// RemarkNotNil applies the NotNil predicate on the "remark" field.
func RemarkNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldRemark))
}

// RemarkEqualFold applies the EqualFold predicate on the "remark" field.
func RemarkEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldRemark, v))
}

// RemarkContainsFold applies the ContainsFold predicate on the "remark" field.
func RemarkContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldRemark, v))
}

// BodyTypeEQ applies the EQ predicate on the "body_type" field.
func BodyTypeEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldBodyType, v))
}

// BodyTypeNEQ applies the NEQ predicate on the "body_type" field.
func BodyTypeNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldBodyType, v))
}

// BodyTypeIn applies the In predicate on the "body_type" field.
func BodyTypeIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldBodyType, vs...))
}

// BodyTypeNotIn applies the NotIn predicate on the "body_type" field.
func BodyTypeNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldBodyType, vs...))
}

// BodyTypeGT applies the GT predicate on the "body_type" field.
func BodyTypeGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldBodyType, v))
}

// BodyTypeGTE applies the GTE predicate on the "body_type" field.
func BodyTypeGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldBodyType, v))
}

// BodyTypeLT applies the LT predicate on the "body_type" field.
func BodyTypeLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldBodyType, v))
}

// BodyTypeLTE applies the LTE predicate on the "body_type" field.
func BodyTypeLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldBodyType, v))
}

// BodyTypeContains applies the Contains predicate on the "body_type" field.
func BodyTypeContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldBodyType, v))
}

// BodyTypeHasPrefix applies the HasPrefix predicate on the "body_type" field.
func BodyTypeHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldBodyType, v))
}

// BodyTypeHasSuffix applies the HasSuffix predicate on the "body_type" field.
func BodyTypeHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldBodyType, v))
}

// BodyTypeIsNil applies the IsNil predicate on the "body_type" field.
func BodyTypeIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldBodyType))
}

// BodyTypeNotNil applies the NotNil predicate on the "body_type" field.
func BodyTypeNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldBodyType))
}

// BodyTypeEqualFold applies the EqualFold predicate on the "body_type" field.
func BodyTypeEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldBodyType, v))
}

// BodyTypeContainsFold applies the ContainsFold predicate on the "body_type" field.
func BodyTypeContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldBodyType, v))
}

// BodyRawEQ applies the EQ predicate on the "body_raw" field.
func BodyRawEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldBodyRaw, v))
}

// BodyRawNEQ applies the NEQ predicate on the "body_raw" field.
func BodyRawNEQ(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldBodyRaw, v))
}

// BodyRawIn applies the In predicate on the "body_raw" field.
func BodyRawIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldBodyRaw, vs...))
}

// BodyRawNotIn applies the NotIn predicate on the "body_raw" field.
func BodyRawNotIn(vs ...string) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldBodyRaw, vs...))
}

// BodyRawGT applies the GT predicate on the "body_raw" field.
func BodyRawGT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldBodyRaw, v))
}

// BodyRawGTE applies the GTE predicate on the "body_raw" field.
func BodyRawGTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldBodyRaw, v))
}

// BodyRawLT applies the LT predicate on the "body_raw" field.
func BodyRawLT(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldBodyRaw, v))
}

// BodyRawLTE applies the LTE predicate on the "body_raw" field.
func BodyRawLTE(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldBodyRaw, v))
}

// BodyRawContains applies the Contains predicate on the "body_raw" field.
func BodyRawContains(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContains(FieldBodyRaw, v))
}

// BodyRawHasPrefix applies the HasPrefix predicate on the "body_raw" field.
func BodyRawHasPrefix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasPrefix(FieldBodyRaw, v))
}

// BodyRawHasSuffix applies the HasSuffix predicate on the "body_raw" field.
func BodyRawHasSuffix(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldHasSuffix(FieldBodyRaw, v))
}

// BodyRawIsNil applies the IsNil predicate on the "body_raw" field.
func BodyRawIsNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldIsNull(FieldBodyRaw))
}

// BodyRawNotNil applies the NotNil predicate on the "body_raw" field.
func BodyRawNotNil() predicate.Dataset {
	return predicate.Dataset(sql.FieldNotNull(FieldBodyRaw))
}

// BodyRawEqualFold applies the EqualFold predicate on the "body_raw" field.
func BodyRawEqualFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldEqualFold(FieldBodyRaw, v))
}

// BodyRawContainsFold applies the ContainsFold predicate on the "body_raw" field.
func BodyRawContainsFold(v string) predicate.Dataset {
	return predicate.Dataset(sql.FieldContainsFold(FieldBodyRaw, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldIsDefault, v))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldIsEnabled, v))
}

// SortEQ applies the EQ predicate on the "sort" field.
func SortEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldEQ(FieldSort, v))
}

// SortNEQ applies the NEQ predicate on the "sort" field.
func SortNEQ(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNEQ(FieldSort, v))
}

// SortIn applies the In predicate on the "sort" field.
func SortIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldIn(FieldSort, vs...))
}

// SortNotIn applies the NotIn predicate on the "sort" field.
func SortNotIn(vs ...int) predicate.Dataset {
	return predicate.Dataset(sql.FieldNotIn(FieldSort, vs...))
}

// SortGT applies the GT predicate on the "sort" field.
func SortGT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGT(FieldSort, v))
}

// SortGTE applies the GTE predicate on the "sort" field.
func SortGTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldGTE(FieldSort, v))
}

// SortLT applies the LT predicate on the "sort" field.
func SortLT(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLT(FieldSort, v))
}

// SortLTE applies the LTE predicate on the "sort" field.
func SortLTE(v int) predicate.Dataset {
	return predicate.Dataset(sql.FieldLTE(FieldSort, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Dataset) predicate.Dataset {
	return predicate.Dataset(sql.NotPredicates(p))
}
