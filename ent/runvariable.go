// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/runvariable"
)

// RunVariable is the model entity for the RunVariable schema.
type RunVariable struct {
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
	// ScenarioRunID holds the value of the "scenario_run_id" field.
	ScenarioRunID *int64 `json:"scenario_run_id,omitempty"`
	// RequestRunID holds the value of the "request_run_id" field.
	RequestRunID int64 `json:"request_run_id,omitempty"`
	// ScenarioCaseID holds the value of the "scenario_case_id" field.
	ScenarioCaseID *int64 `json:"scenario_case_id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID int64 `json:"request_id,omitempty"`
	// DatasetID holds the value of the "dataset_id" field.
	DatasetID *int64 `json:"dataset_id,omitempty"`
	// VarName holds the value of the "var_name" field.
	VarName string `json:"var_name,omitempty"`
	// JSON-encoded captured value
	VarValue json.RawMessage `json:"var_value,omitempty"`
	// null/bool/number/string/list/map
	ValueType string `json:"value_type,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType runvariable.SourceType `json:"source_type,omitempty"`
	// SourceExpr holds the value of the "source_expr" field.
	SourceExpr string `json:"source_expr,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope runvariable.Scope `json:"scope,omitempty"`
	// IsSecret holds the value of the "is_secret" field.
	IsSecret     bool `json:"is_secret,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunVariable) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runvariable.FieldVarValue:
			values[i] = new([]byte)
		case runvariable.FieldIsSecret:
			values[i] = new(sql.NullBool)
		case runvariable.FieldID, runvariable.FieldIsDeleted, runvariable.FieldStatus, runvariable.FieldScenarioRunID, runvariable.FieldRequestRunID, runvariable.FieldScenarioCaseID, runvariable.FieldRequestID, runvariable.FieldDatasetID:
			values[i] = new(sql.NullInt64)
		case runvariable.FieldVarName, runvariable.FieldValueType, runvariable.FieldSourceType, runvariable.FieldSourceExpr, runvariable.FieldScope:
			values[i] = new(sql.NullString)
		case runvariable.FieldCreateTime, runvariable.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunVariable fields.
func (_m *RunVariable) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runvariable.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case runvariable.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case runvariable.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case runvariable.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Int64
			}
		case runvariable.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case runvariable.FieldScenarioRunID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_run_id", values[i])
			} else if value.Valid {
				_m.ScenarioRunID = new(int64)
				*_m.ScenarioRunID = value.Int64
			}
		case runvariable.FieldRequestRunID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_run_id", values[i])
			} else if value.Valid {
				_m.RequestRunID = value.Int64
			}
		case runvariable.FieldScenarioCaseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_case_id", values[i])
			} else if value.Valid {
				_m.ScenarioCaseID = new(int64)
				*_m.ScenarioCaseID = value.Int64
			}
		case runvariable.FieldRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.Int64
			}
		case runvariable.FieldDatasetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = new(int64)
				*_m.DatasetID = value.Int64
			}
		case runvariable.FieldVarName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field var_name", values[i])
			} else if value.Valid {
				_m.VarName = value.String
			}
		case runvariable.FieldVarValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field var_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VarValue); err != nil {
					return fmt.Errorf("unmarshal field var_value: %w", err)
				}
			}
		case runvariable.FieldValueType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_type", values[i])
			} else if value.Valid {
				_m.ValueType = value.String
			}
		case runvariable.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = runvariable.SourceType(value.String)
			}
		case runvariable.FieldSourceExpr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_expr", values[i])
			} else if value.Valid {
				_m.SourceExpr = value.String
			}
		case runvariable.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = runvariable.Scope(value.String)
			}
		case runvariable.FieldIsSecret:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_secret", values[i])
			} else if value.Valid {
				_m.IsSecret = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunVariable.
// This includes values selected through modifiers, order, etc.
func (_m *RunVariable) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RunVariable.
// Note that you need to call RunVariable.Unwrap() before calling this method if this RunVariable
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunVariable) Update() *RunVariableUpdateOne {
	return NewRunVariableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunVariable entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunVariable) Unwrap() *RunVariable {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunVariable is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunVariable) String() string {
	var builder strings.Builder
	builder.WriteString("RunVariable(")
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
	if v := _m.ScenarioRunID; v != nil {
		builder.WriteString("scenario_run_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("request_run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestRunID))
	builder.WriteString(", ")
	if v := _m.ScenarioCaseID; v != nil {
		builder.WriteString("scenario_case_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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
	builder.WriteString("var_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.VarValue))
	builder.WriteString(", ")
	builder.WriteString("value_type=")
	builder.WriteString(_m.ValueType)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("source_expr=")
	builder.WriteString(_m.SourceExpr)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("is_secret=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSecret))
	builder.WriteByte(')')
	return builder.String()
}

// RunVariables is a parsable slice of RunVariable.
type RunVariables []*RunVariable
