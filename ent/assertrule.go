// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/assertrule"
)

// AssertRule is the model entity for the AssertRule schema.
type AssertRule struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 0 live; otherwise the actor id that deleted the row
	IsDeleted int64 `json:"is_deleted,omitempty"`
	// Status holds the value of the "status" field.
	Status int `json:"status,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID int64 `json:"request_id,omitempty"`
	// Null applies the rule to any dataset of the request
	DatasetID *int64 `json:"dataset_id,omitempty"`
	// AssertType holds the value of the "assert_type" field.
	AssertType assertrule.AssertType `json:"assert_type,omitempty"`
	// JSON path for json_path, ignored otherwise
	SourceExpr string `json:"source_expr,omitempty"`
	// Comparator holds the value of the "comparator" field.
	Comparator assertrule.Comparator `json:"comparator,omitempty"`
	// JSON-encoded expected operand
	ExpectedValue json.RawMessage `json:"expected_value,omitempty"`
	// Custom failure message shown in place of the generated detail
	Message *string `json:"message,omitempty"`
	// IsEnabled holds the value of the "is_enabled" field.
	IsEnabled bool `json:"is_enabled,omitempty"`
	// Sort holds the value of the "sort" field.
	Sort         int `json:"sort,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssertRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assertrule.FieldExpectedValue:
			values[i] = new([]byte)
		case assertrule.FieldIsEnabled:
			values[i] = new(sql.NullBool)
		case assertrule.FieldID, assertrule.FieldIsDeleted, assertrule.FieldStatus, assertrule.FieldRequestID, assertrule.FieldDatasetID, assertrule.FieldSort:
			values[i] = new(sql.NullInt64)
		case assertrule.FieldAssertType, assertrule.FieldSourceExpr, assertrule.FieldComparator, assertrule.FieldMessage:
			values[i] = new(sql.NullString)
		case assertrule.FieldCreateTime, assertrule.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssertRule fields.
func (_m *AssertRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assertrule.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case assertrule.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case assertrule.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case assertrule.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Int64
			}
		case assertrule.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case assertrule.FieldRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.Int64
			}
		case assertrule.FieldDatasetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = new(int64)
				*_m.DatasetID = value.Int64
			}
		case assertrule.FieldAssertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assert_type", values[i])
			} else if value.Valid {
				_m.AssertType = assertrule.AssertType(value.String)
			}
		case assertrule.FieldSourceExpr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_expr", values[i])
			} else if value.Valid {
				_m.SourceExpr = value.String
			}
		case assertrule.FieldComparator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comparator", values[i])
			} else if value.Valid {
				_m.Comparator = assertrule.Comparator(value.String)
			}
		case assertrule.FieldExpectedValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expected_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpectedValue); err != nil {
					return fmt.Errorf("unmarshal field expected_value: %w", err)
				}
			}
		case assertrule.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = new(string)
				*_m.Message = value.String
			}
		case assertrule.FieldIsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_enabled", values[i])
			} else if value.Valid {
				_m.IsEnabled = value.Bool
			}
		case assertrule.FieldSort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort", values[i])
			} else if value.Valid {
				_m.Sort = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssertRule.
// This includes values selected through modifiers, order, etc.
func (_m *AssertRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssertRule.
// Note that you need to call AssertRule.Unwrap() before calling this method if this AssertRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssertRule) Update() *AssertRuleUpdateOne {
	return NewAssertRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssertRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssertRule) Unwrap() *AssertRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssertRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssertRule) String() string {
	var builder strings.Builder
	builder.WriteString("AssertRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeleted))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	if v := _m.DatasetID; v != nil {
		builder.WriteString("dataset_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("assert_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssertType))
	builder.WriteString(", ")
	builder.WriteString("source_expr=")
	builder.WriteString(_m.SourceExpr)
	builder.WriteString(", ")
	builder.WriteString("comparator=")
	builder.WriteString(fmt.Sprintf("%v", _m.Comparator))
	builder.WriteString(", ")
	builder.WriteString("expected_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedValue))
	builder.WriteString(", ")
	if v := _m.Message; v != nil {
		builder.WriteString("message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEnabled))
	builder.WriteString(", ")
	builder.WriteString("sort=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sort))
	builder.WriteByte(')')
	return builder.String()
}

// AssertRules is a parsable slice of AssertRule.
type AssertRules []*AssertRule
