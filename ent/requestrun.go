// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/requestrun"
)

// RequestRun is the model entity for the RequestRun schema.
type RequestRun struct {
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
	// Null for direct single-case runs
	ScenarioRunID *int64 `json:"scenario_run_id,omitempty"`
	// ScenarioCaseID holds the value of the "scenario_case_id" field.
	ScenarioCaseID *int64 `json:"scenario_case_id,omitempty"`
	// DatasetID holds the value of the "dataset_id" field.
	DatasetID *int64 `json:"dataset_id,omitempty"`
	// DatasetSnapshot holds the value of the "dataset_snapshot" field.
	DatasetSnapshot map[string]interface{} `json:"dataset_snapshot,omitempty"`
	// RequestSnapshot holds the value of the "request_snapshot" field.
	RequestSnapshot map[string]interface{} `json:"request_snapshot,omitempty"`
	// Transport ok, 2xx status and all assertions passed
	IsSuccess bool `json:"is_success,omitempty"`
	// ResponseStatusCode holds the value of the "response_status_code" field.
	ResponseStatusCode *int `json:"response_status_code,omitempty"`
	// ResponseHeaders holds the value of the "response_headers" field.
	ResponseHeaders map[string][]string `json:"response_headers,omitempty"`
	// Truncated to 200000 bytes on a rune boundary
	ResponseBody *string `json:"response_body,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs int64 `json:"response_time_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// AssertionResults holds the value of the "assertion_results" field.
	AssertionResults []map[string]interface{} `json:"assertion_results,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RequestRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case requestrun.FieldDatasetSnapshot, requestrun.FieldRequestSnapshot, requestrun.FieldResponseHeaders, requestrun.FieldAssertionResults:
			values[i] = new([]byte)
		case requestrun.FieldIsSuccess:
			values[i] = new(sql.NullBool)
		case requestrun.FieldID, requestrun.FieldIsDeleted, requestrun.FieldStatus, requestrun.FieldRequestID, requestrun.FieldScenarioRunID, requestrun.FieldScenarioCaseID, requestrun.FieldDatasetID, requestrun.FieldResponseStatusCode, requestrun.FieldResponseTimeMs:
			values[i] = new(sql.NullInt64)
		case requestrun.FieldResponseBody, requestrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case requestrun.FieldCreateTime, requestrun.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RequestRun fields.
func (_m *RequestRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case requestrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case requestrun.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case requestrun.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case requestrun.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Int64
			}
		case requestrun.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case requestrun.FieldRequestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = value.Int64
			}
		case requestrun.FieldScenarioRunID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_run_id", values[i])
			} else if value.Valid {
				_m.ScenarioRunID = new(int64)
				*_m.ScenarioRunID = value.Int64
			}
		case requestrun.FieldScenarioCaseID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_case_id", values[i])
			} else if value.Valid {
				_m.ScenarioCaseID = new(int64)
				*_m.ScenarioCaseID = value.Int64
			}
		case requestrun.FieldDatasetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = new(int64)
				*_m.DatasetID = value.Int64
			}
		case requestrun.FieldDatasetSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DatasetSnapshot); err != nil {
					return fmt.Errorf("unmarshal field dataset_snapshot: %w", err)
				}
			}
		case requestrun.FieldRequestSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestSnapshot); err != nil {
					return fmt.Errorf("unmarshal field request_snapshot: %w", err)
				}
			}
		case requestrun.FieldIsSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_success", values[i])
			} else if value.Valid {
				_m.IsSuccess = value.Bool
			}
		case requestrun.FieldResponseStatusCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_status_code", values[i])
			} else if value.Valid {
				_m.ResponseStatusCode = new(int)
				*_m.ResponseStatusCode = int(value.Int64)
			}
		case requestrun.FieldResponseHeaders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_headers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseHeaders); err != nil {
					return fmt.Errorf("unmarshal field response_headers: %w", err)
				}
			}
		case requestrun.FieldResponseBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_body", values[i])
			} else if value.Valid {
				_m.ResponseBody = new(string)
				*_m.ResponseBody = value.String
			}
		case requestrun.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = value.Int64
			}
		case requestrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case requestrun.FieldAssertionResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assertion_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssertionResults); err != nil {
					return fmt.Errorf("unmarshal field assertion_results: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RequestRun.
// This includes values selected through modifiers, order, etc.
func (_m *RequestRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RequestRun.
// Note that you need to call RequestRun.Unwrap() before calling this method if this RequestRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RequestRun) Update() *RequestRunUpdateOne {
	return NewRequestRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RequestRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RequestRun) Unwrap() *RequestRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RequestRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RequestRun) String() string {
	var builder strings.Builder
	builder.WriteString("RequestRun(")
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
	if v := _m.ScenarioRunID; v != nil {
		builder.WriteString("scenario_run_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScenarioCaseID; v != nil {
		builder.WriteString("scenario_case_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DatasetID; v != nil {
		builder.WriteString("dataset_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("dataset_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetSnapshot))
	builder.WriteString(", ")
	builder.WriteString("request_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestSnapshot))
	builder.WriteString(", ")
	builder.WriteString("is_success=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSuccess))
	builder.WriteString(", ")
	if v := _m.ResponseStatusCode; v != nil {
		builder.WriteString("response_status_code=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("response_headers=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseHeaders))
	builder.WriteString(", ")
	if v := _m.ResponseBody; v != nil {
		builder.WriteString("response_body=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeMs))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("assertion_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssertionResults))
	builder.WriteByte(')')
	return builder.String()
}

// RequestRuns is a parsable slice of RequestRun.
type RequestRuns []*RequestRun
