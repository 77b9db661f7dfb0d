// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/scenariorun"
)

// ScenarioRun is the model entity for the ScenarioRun schema.
type ScenarioRun struct {
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
	// Environment override chosen at submit time
	EnvID *int64 `json:"env_id,omitempty"`
	// RunStatus holds the value of the "run_status" field.
	RunStatus scenariorun.RunStatus `json:"run_status,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType scenariorun.TriggerType `json:"trigger_type,omitempty"`
	// CancelRequested holds the value of the "cancel_requested" field.
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// TotalRequestRuns holds the value of the "total_request_runs" field.
	TotalRequestRuns int `json:"total_request_runs,omitempty"`
	// SuccessRequestRuns holds the value of the "success_request_runs" field.
	SuccessRequestRuns int `json:"success_request_runs,omitempty"`
	// FailedRequestRuns holds the value of the "failed_request_runs" field.
	FailedRequestRuns int `json:"failed_request_runs,omitempty"`
	// IsSuccess holds the value of the "is_success" field.
	IsSuccess bool `json:"is_success,omitempty"`
	// Stop message or cancel reason for a failed or canceled run
	ErrorMessage *string `json:"error_message,omitempty"`
	// Initial variables at submit, terminal snapshot at finalize
	RuntimeVariables map[string]interface{} `json:"runtime_variables,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScenarioRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scenariorun.FieldRuntimeVariables:
			values[i] = new([]byte)
		case scenariorun.FieldCancelRequested, scenariorun.FieldIsSuccess:
			values[i] = new(sql.NullBool)
		case scenariorun.FieldID, scenariorun.FieldIsDeleted, scenariorun.FieldStatus, scenariorun.FieldScenarioID, scenariorun.FieldEnvID, scenariorun.FieldTotalRequestRuns, scenariorun.FieldSuccessRequestRuns, scenariorun.FieldFailedRequestRuns:
			values[i] = new(sql.NullInt64)
		case scenariorun.FieldRunStatus, scenariorun.FieldTriggerType, scenariorun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case scenariorun.FieldCreateTime, scenariorun.FieldUpdateTime, scenariorun.FieldStartedAt, scenariorun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScenarioRun fields.
func (_m *ScenarioRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scenariorun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case scenariorun.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case scenariorun.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case scenariorun.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Int64
			}
		case scenariorun.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case scenariorun.FieldScenarioID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = value.Int64
			}
		case scenariorun.FieldEnvID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field env_id", values[i])
			} else if value.Valid {
				_m.EnvID = new(int64)
				*_m.EnvID = value.Int64
			}
		case scenariorun.FieldRunStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_status", values[i])
			} else if value.Valid {
				_m.RunStatus = scenariorun.RunStatus(value.String)
			}
		case scenariorun.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = scenariorun.TriggerType(value.String)
			}
		case scenariorun.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case scenariorun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case scenariorun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case scenariorun.FieldTotalRequestRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_request_runs", values[i])
			} else if value.Valid {
				_m.TotalRequestRuns = int(value.Int64)
			}
		case scenariorun.FieldSuccessRequestRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_request_runs", values[i])
			} else if value.Valid {
				_m.SuccessRequestRuns = int(value.Int64)
			}
		case scenariorun.FieldFailedRequestRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_request_runs", values[i])
			} else if value.Valid {
				_m.FailedRequestRuns = int(value.Int64)
			}
		case scenariorun.FieldIsSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_success", values[i])
			} else if value.Valid {
				_m.IsSuccess = value.Bool
			}
		case scenariorun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case scenariorun.FieldRuntimeVariables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field runtime_variables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RuntimeVariables); err != nil {
					return fmt.Errorf("unmarshal field runtime_variables: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScenarioRun.
// This includes values selected through modifiers, order, etc.
func (_m *ScenarioRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScenarioRun.
// Note that you need to call ScenarioRun.Unwrap() before calling this method if this ScenarioRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScenarioRun) Update() *ScenarioRunUpdateOne {
	return NewScenarioRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScenarioRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScenarioRun) Unwrap() *ScenarioRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScenarioRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScenarioRun) String() string {
	var builder strings.Builder
	builder.WriteString("ScenarioRun(")
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
	if v := _m.EnvID; v != nil {
		builder.WriteString("env_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("run_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunStatus))
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_request_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRequestRuns))
	builder.WriteString(", ")
	builder.WriteString("success_request_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessRequestRuns))
	builder.WriteString(", ")
	builder.WriteString("failed_request_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedRequestRuns))
	builder.WriteString(", ")
	builder.WriteString("is_success=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSuccess))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("runtime_variables=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuntimeVariables))
	builder.WriteByte(')')
	return builder.String()
}

// ScenarioRuns is a parsable slice of ScenarioRun.
type ScenarioRuns []*ScenarioRun
