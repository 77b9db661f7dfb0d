// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/extractrule"
)

// ExtractRule is the model entity for the ExtractRule schema.
type ExtractRule struct {
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
	// VarName holds the value of the "var_name" field.
	VarName string `json:"var_name,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType extractrule.SourceType `json:"source_type,omitempty"`
	// Path, header name, cookie name or regex depending on source_type
	SourceExpr string `json:"source_expr,omitempty"`
	// JSON-encoded fallback used when extraction misses
	DefaultValue json.RawMessage `json:"default_value,omitempty"`
	// Required holds the value of the "required" field.
	Required bool `json:"required,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope extractrule.Scope `json:"scope,omitempty"`
	// Redact the extracted value in logs
	IsSecret bool `json:"is_secret,omitempty"`
	// IsEnabled holds the value of the "is_enabled" field.
	IsEnabled bool `json:"is_enabled,omitempty"`
	// Sort holds the value of the "sort" field.
	Sort         int `json:"sort,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractrule.FieldDefaultValue:
			values[i] = new([]byte)
		case extractrule.FieldRequired, extractrule.FieldIsSecret, extractrule.FieldIsEnabled:
			values[i] = new(sql.NullBool)
		case extractrule.FieldID, extractrule.FieldIsDeleted, extractrule.FieldStatus, extractrule.FieldRequestID, extractrule.FieldDatasetID, extractrule.FieldSort:
			values[i] = new(sql.NullInt64)
		case extractrule.FieldVarName, extractrule.FieldSourceType, extractrule.FieldSourceExpr, extractrule.FieldScope:
			values[i] = new(sql.NullString)
		case extractrule.FieldCreateTime, extractrule.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractRule fields.
func (_m *ExtractRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractrule.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case extractrule.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case extractrule.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case extractrule.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Int64
			}
		case extractrule.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case extractrule.FieldRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.Int64
			}
		case extractrule.FieldDatasetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = new(int64)
				*_m.DatasetID = value.Int64
			}
		case extractrule.FieldVarName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field var_name", values[i])
			} else if value.Valid {
				_m.VarName = value.String
			}
		case extractrule.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = extractrule.SourceType(value.String)
			}
		case extractrule.FieldSourceExpr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_expr", values[i])
			} else if value.Valid {
				_m.SourceExpr = value.String
			}
		case extractrule.FieldDefaultValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field default_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DefaultValue); err != nil {
					return fmt.Errorf("unmarshal field default_value: %w", err)
				}
			}
		case extractrule.FieldRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value.Valid {
				_m.Required = value.Bool
			}
		case extractrule.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = extractrule.Scope(value.String)
			}
		case extractrule.FieldIsSecret:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_secret", values[i])
			} else if value.Valid {
				_m.IsSecret = value.Bool
			}
		case extractrule.FieldIsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_enabled", values[i])
			} else if value.Valid {
				_m.IsEnabled = value.Bool
			}
		case extractrule.FieldSort:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractRule.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractRule.
// Note that you need to call ExtractRule.Unwrap() before calling this method if this ExtractRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractRule) Update() *ExtractRuleUpdateOne {
	return NewExtractRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractRule) Unwrap() *ExtractRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractRule) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractRule(")
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
	builder.WriteString("var_name=")
	builder.WriteString(_m.VarName)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("source_expr=")
	builder.WriteString(_m.SourceExpr)
	builder.WriteString(", ")
	builder.WriteString("default_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultValue))
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("is_secret=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSecret))
	builder.WriteString(", ")
	builder.WriteString("is_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEnabled))
	builder.WriteString(", ")
	builder.WriteString("sort=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sort))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractRules is a parsable slice of ExtractRule.
type ExtractRules []*ExtractRule
