// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariocase"
)

// ScenarioCase is the model entity for the ScenarioCase schema.
type ScenarioCase struct {
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
	// ScenarioID holds the value of the "scenario_id" field.
	ScenarioID int64 `json:"scenario_id,omitempty"`
	// RequestID holds the value of the "request_id" field.
	RequestID int64 `json:"request_id,omitempty"`
	// 1-based; live steps form a contiguous 1..N after normalization
	StepNo int `json:"step_no,omitempty"`
	// Required when dataset_run_mode is single
	DatasetID *int64 `json:"dataset_id,omitempty"`
	// DatasetRunMode holds the value of the "dataset_run_mode" field.
	DatasetRunMode scenariocase.DatasetRunMode `json:"dataset_run_mode,omitempty"`
	// IsEnabled holds the value of the "is_enabled" field.
	IsEnabled bool `json:"is_enabled,omitempty"`
	// StopOnFail holds the value of the "stop_on_fail" field.
	StopOnFail   bool `json:"stop_on_fail,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScenarioCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scenariocase.FieldIsEnabled, scenariocase.FieldStopOnFail:
			values[i] = new(sql.NullBool)
		case scenariocase.FieldID, scenariocase.FieldIsDeleted, scenariocase.FieldStatus, scenariocase.FieldScenarioID, scenariocase.FieldRequestID, scenariocase.FieldStepNo, scenariocase.FieldDatasetID:
			values[i] = new(sql.NullInt64)
		case scenariocase.FieldDatasetRunMode:
			values[i] = new(sql.NullString)
		case scenariocase.FieldCreateTime, scenariocase.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScenarioCase fields.
func (_m *ScenarioCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scenariocase.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case scenariocase.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case scenariocase.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case scenariocase.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Int64
			}
		case scenariocase.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case scenariocase.FieldScenarioID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = value.Int64
			}
		case scenariocase.FieldRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.Int64
			}
		case scenariocase.FieldStepNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_no", values[i])
			} else if value.Valid {
				_m.StepNo = int(value.Int64)
			}
		case scenariocase.FieldDatasetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = new(int64)
				*_m.DatasetID = value.Int64
			}
		case scenariocase.FieldDatasetRunMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_run_mode", values[i])
			} else if value.Valid {
				_m.DatasetRunMode = scenariocase.DatasetRunMode(value.String)
			}
		case scenariocase.FieldIsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_enabled", values[i])
			} else if value.Valid {
				_m.IsEnabled = value.Bool
			}
		case scenariocase.FieldStopOnFail:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field stop_on_fail", values[i])
			} else if value.Valid {
				_m.StopOnFail = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScenarioCase.
// This includes values selected through modifiers, order, etc.
func (_m *ScenarioCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScenarioCase.
// Note that you need to call ScenarioCase.Unwrap() before calling this method if this ScenarioCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScenarioCase) Update() *ScenarioCaseUpdateOne {
	return NewScenarioCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScenarioCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScenarioCase) Unwrap() *ScenarioCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScenarioCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScenarioCase) String() string {
	var builder strings.Builder
	builder.WriteString("ScenarioCase(")
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
	builder.WriteString("scenario_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScenarioID))
	builder.WriteString(", ")
	builder.WriteString("request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestID))
	builder.WriteString(", ")
	builder.WriteString("step_no=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNo))
	builder.WriteString(", ")
	if v := _m.DatasetID; v != nil {
		builder.WriteString("dataset_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("dataset_run_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetRunMode))
	builder.WriteString(", ")
	builder.WriteString("is_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEnabled))
	builder.WriteString(", ")
	builder.WriteString("stop_on_fail=")
	builder.WriteString(fmt.Sprintf("%v", _m.StopOnFail))
	builder.WriteByte(')')
	return builder.String()
}

// ScenarioCases is a parsable slice of ScenarioCase.
type ScenarioCases []*ScenarioCase
