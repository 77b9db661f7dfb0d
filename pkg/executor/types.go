// Package executor materializes and issues a single HTTP request: it merges
// the template, dataset and variable layers, renders placeholders, performs
// the call and captures the outcome as an immutable result.
package executor

import "strings"

// Template carries the stored request recipe, already loaded from the
// database and stripped of persistence concerns.
type Template struct {
	ID              int64
	EnvID           *int64
	Name            string
	Method          string
	URL             string
	QueryParams     map[string]any
	Headers         map[string]any
	Cookies         map[string]any
	BodyType        string
	BodyData        map[string]any
	BodyRaw         *string
	TimeoutMs       int
	FollowRedirects bool
	VerifySSL       bool
	ProxyURL        *string
}

// Dataset is the overlay applied on top of a Template. A nil *Dataset means
// the template executes with its base fields only.
type Dataset struct {
	ID          int64
	Name        string
	Variables   map[string]any
	QueryParams map[string]any
	Headers     map[string]any
	Cookies     map[string]any
	BodyType    *string
	BodyData    map[string]any
	BodyRaw     *string
}

// Environment contributes the outermost variable layer.
type Environment struct {
	ID        int64
	Name      string
	Variables map[string]any
}

// Result is the captured outcome of one execution. StatusCode is nil and
// ErrorMessage is set only on transport failure; a non-2xx response is a
// failure with ErrorMessage left nil.
type Result struct {
	DatasetSnapshot map[string]any
	RequestSnapshot map[string]any
	StatusCode      *int
	Headers         map[string][]string
	Body            string
	BodyTruncated   bool
	ElapsedMs       int64
	IsSuccess       bool
	ErrorMessage    *string
}

// Header returns the first value of a response header, matched
// case-insensitively, and whether it was present.
func (r *Result) Header(name string) (string, bool) {
	for k, values := range r.Headers {
		if len(values) > 0 && strings.EqualFold(k, name) {
			return values[0], true
		}
	}
	return "", false
}

// HeaderValues returns every value of a response header, matched
// case-insensitively.
func (r *Result) HeaderValues(name string) []string {
	for k, values := range r.Headers {
		if strings.EqualFold(k, name) {
			return values
		}
	}
	return nil
}
