// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ExileLine/exile-ai-test-platform-server/ent/apirequest"
)

// ApiRequest is the model entity for the ApiRequest schema.
type ApiRequest struct {
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
	// Default environment
	EnvID *int64 `json:"env_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// May contain {{var}} placeholders
	URL string `json:"url,omitempty"`
	// Remark holds the value of the "remark" field.
	Remark *string `json:"remark,omitempty"`
	// BaseQueryParams holds the value of the "base_query_params" field.
	BaseQueryParams map[string]interface{} `json:"base_query_params,omitempty"`
	// BaseHeaders holds the value of the "base_headers" field.
	BaseHeaders map[string]interface{} `json:"base_headers,omitempty"`
	// BaseCookies holds the value of the "base_cookies" field.
	BaseCookies map[string]interface{} `json:"base_cookies,omitempty"`
	// none/json/form-urlencoded/form-data/raw/binary
	BodyType string `json:"body_type,omitempty"`
	// BaseBodyData holds the value of the "base_body_data" field.
	BaseBodyData map[string]interface{} `json:"base_body_data,omitempty"`
	// BaseBodyRaw holds the value of the "base_body_raw" field.
	BaseBodyRaw *string `json:"base_body_raw,omitempty"`
	// TimeoutMs holds the value of the "timeout_ms" field.
	TimeoutMs int `json:"timeout_ms,omitempty"`
	// FollowRedirects holds the value of the "follow_redirects" field.
	FollowRedirects bool `json:"follow_redirects,omitempty"`
	// VerifySsl holds the value of the "verify_ssl" field.
	VerifySsl bool `json:"verify_ssl,omitempty"`
	// ProxyURL holds the value of the "proxy_url" field.
	ProxyURL *string `json:"proxy_url,omitempty"`
	// Sort holds the value of the "sort" field.
	Sort int `json:"sort,omitempty"`
	// ExecuteCount holds the value of the "execute_count" field.
	ExecuteCount int `json:"execute_count,omitempty"`
	// Dataset policy for direct case runs
	DatasetRunMode apirequest.DatasetRunMode `json:"dataset_run_mode,omitempty"`
	// DefaultDatasetID holds the value of the "default_dataset_id" field.
	DefaultDatasetID *int64 `json:"default_dataset_id,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApiRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case apirequest.FieldBaseQueryParams, apirequest.FieldBaseHeaders, apirequest.FieldBaseCookies, apirequest.FieldBaseBodyData:
			values[i] = new([]byte)
		case apirequest.FieldFollowRedirects, apirequest.FieldVerifySsl:
			values[i] = new(sql.NullBool)
		case apirequest.FieldID, apirequest.FieldIsDeleted, apirequest.FieldStatus, apirequest.FieldEnvID, apirequest.FieldTimeoutMs, apirequest.FieldSort, apirequest.FieldExecuteCount, apirequest.FieldDefaultDatasetID:
			values[i] = new(sql.NullInt64)
		case apirequest.FieldName, apirequest.FieldMethod, apirequest.FieldURL, apirequest.FieldRemark, apirequest.FieldBodyType, apirequest.FieldBaseBodyRaw, apirequest.FieldProxyURL, apirequest.FieldDatasetRunMode:
			values[i] = new(sql.NullString)
		case apirequest.FieldCreateTime, apirequest.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApiRequest fields.
func (_m *ApiRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case apirequest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case apirequest.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case apirequest.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case apirequest.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Int64
			}
		case apirequest.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case apirequest.FieldEnvID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field env_id", values[i])
			} else if value.Valid {
				_m.EnvID = new(int64)
				*_m.EnvID = value.Int64
			}
		case apirequest.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case apirequest.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		case apirequest.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case apirequest.FieldRemark:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remark", values[i])
			} else if value.Valid {
				_m.Remark = new(string)
				*_m.Remark = value.String
			}
		case apirequest.FieldBaseQueryParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field base_query_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BaseQueryParams); err != nil {
					return fmt.Errorf("unmarshal field base_query_params: %w", err)
				}
			}
		case apirequest.FieldBaseHeaders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field base_headers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BaseHeaders); err != nil {
					return fmt.Errorf("unmarshal field base_headers: %w", err)
				}
			}
		case apirequest.FieldBaseCookies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field base_cookies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BaseCookies); err != nil {
					return fmt.Errorf("unmarshal field base_cookies: %w", err)
				}
			}
		case apirequest.FieldBodyType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_type", values[i])
			} else if value.Valid {
				_m.BodyType = value.String
			}
		case apirequest.FieldBaseBodyData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field base_body_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BaseBodyData); err != nil {
					return fmt.Errorf("unmarshal field base_body_data: %w", err)
				}
			}
		case apirequest.FieldBaseBodyRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_body_raw", values[i])
			} else if value.Valid {
				_m.BaseBodyRaw = new(string)
				*_m.BaseBodyRaw = value.String
			}
		case apirequest.FieldTimeoutMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_ms", values[i])
			} else if value.Valid {
				_m.TimeoutMs = int(value.Int64)
			}
		case apirequest.FieldFollowRedirects:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field follow_redirects", values[i])
			} else if value.Valid {
				_m.FollowRedirects = value.Bool
			}
		case apirequest.FieldVerifySsl:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verify_ssl", values[i])
			} else if value.Valid {
				_m.VerifySsl = value.Bool
			}
		case apirequest.FieldProxyURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proxy_url", values[i])
			} else if value.Valid {
				_m.ProxyURL = new(string)
				*_m.ProxyURL = value.String
			}
		case apirequest.FieldSort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort", values[i])
			} else if value.Valid {
				_m.Sort = int(value.Int64)
			}
		case apirequest.FieldExecuteCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execute_count", values[i])
			} else if value.Valid {
				_m.ExecuteCount = int(value.Int64)
			}
		case apirequest.FieldDatasetRunMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_run_mode", values[i])
			} else if value.Valid {
				_m.DatasetRunMode = apirequest.DatasetRunMode(value.String)
			}
		case apirequest.FieldDefaultDatasetID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_dataset_id", values[i])
			} else if value.Valid {
				_m.DefaultDatasetID = new(int64)
				*_m.DefaultDatasetID = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApiRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ApiRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApiRequest.
// Note that you need to call ApiRequest.Unwrap() before calling this method if this ApiRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApiRequest) Update() *ApiRequestUpdateOne {
	return NewApiRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApiRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApiRequest) Unwrap() *ApiRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApiRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApiRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ApiRequest(")
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
	if v := _m.EnvID; v != nil {
		builder.WriteString("env_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	if v := _m.Remark; v != nil {
		builder.WriteString("remark=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("base_query_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseQueryParams))
	builder.WriteString(", ")
	builder.WriteString("base_headers=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseHeaders))
	builder.WriteString(", ")
	builder.WriteString("base_cookies=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseCookies))
	builder.WriteString(", ")
	builder.WriteString("body_type=")
	builder.WriteString(_m.BodyType)
	builder.WriteString(", ")
	builder.WriteString("base_body_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaseBodyData))
	builder.WriteString(", ")
	if v := _m.BaseBodyRaw; v != nil {
		builder.WriteString("base_body_raw=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timeout_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutMs))
	builder.WriteString(", ")
	builder.WriteString("follow_redirects=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowRedirects))
	builder.WriteString(", ")
	builder.WriteString("verify_ssl=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerifySsl))
	builder.WriteString(", ")
	if v := _m.ProxyURL; v != nil {
		builder.WriteString("proxy_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sort=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sort))
	builder.WriteString(", ")
	builder.WriteString("execute_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecuteCount))
	builder.WriteString(", ")
	builder.WriteString("dataset_run_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetRunMode))
	builder.WriteString(", ")
	if v := _m.DefaultDatasetID; v != nil {
		builder.WriteString("default_dataset_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ApiRequests is a parsable slice of ApiRequest.
type ApiRequests []*ApiRequest
