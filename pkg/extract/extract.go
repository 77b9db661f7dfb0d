// Package extract applies ordered variable-extraction rules over one
// request execution result, producing records the orchestrator promotes
// into the runtime variable mapping.
package extract

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/vars"
)

// Extraction source types.
const (
	SourceHeader    = "response_header"
	SourceJSON      = "response_json"
	SourceCookie    = "response_cookie"
	SourceTextRegex = "response_text_regex"
	SourceStatus    = "response_status"
	SourceSession   = "session"
)

// Variable scopes. Step-scoped values are recorded but never promoted into
// the run-wide mapping.
const (
	ScopeStep     = "step"
	ScopeScenario = "scenario"
	ScopeGlobal   = "global"
)

// Rule is one enabled extraction rule, ordered by (sort, id) by the caller.
type Rule struct {
	ID           int64
	VarName      string
	SourceType   string
	SourceExpr   string
	DefaultValue json.RawMessage
	Required     bool
	Scope        string
	IsSecret     bool
}

// Record is the captured value of one rule.
type Record struct {
	VarName    string
	Value      any
	ValueType  string
	SourceType string
	SourceExpr string
	Scope      string
	IsSecret   bool
}

// Promotable reports whether the record's value enters the run-wide
// runtime mapping.
func (r Record) Promotable() bool {
	return r.Scope == ScopeScenario || r.Scope == ScopeGlobal
}

// RequiredError reports a required rule that found no value and carries
// no default.
type RequiredError struct {
	VarName    string
	SourceType string
	SourceExpr string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("变量提取失败: %s (%s:%s)", e.VarName, e.SourceType, e.SourceExpr)
}

// Apply evaluates the rules in order against the execution result and the
// current runtime variables. A required rule that misses aborts with a
// *RequiredError; records already produced are discarded by the caller.
func Apply(rules []Rule, result *executor.Result, runtime map[string]any) ([]Record, error) {
	records := make([]Record, 0, len(rules))
	doc := newJSONDoc(result.Body)

	for _, rule := range rules {
		value, found := evaluate(rule, result, runtime, doc)
		if !found && rule.DefaultValue != nil {
			var fallback any
			if err := json.Unmarshal(rule.DefaultValue, &fallback); err == nil {
				value, found = fallback, true
			}
		}
		if !found {
			if rule.Required {
				return nil, &RequiredError{
					VarName:    rule.VarName,
					SourceType: rule.SourceType,
					SourceExpr: rule.SourceExpr,
				}
			}
			continue
		}

		scope := rule.Scope
		if scope == "" {
			scope = ScopeScenario
		}
		records = append(records, Record{
			VarName:    rule.VarName,
			Value:      vars.DeepCopy(value),
			ValueType:  vars.TypeName(value),
			SourceType: rule.SourceType,
			SourceExpr: rule.SourceExpr,
			Scope:      scope,
			IsSecret:   rule.IsSecret,
		})
	}
	return records, nil
}

func evaluate(rule Rule, result *executor.Result, runtime map[string]any, doc *jsonDoc) (any, bool) {
	switch rule.SourceType {
	case SourceHeader:
		return lookupHeader(result, rule.SourceExpr)
	case SourceJSON:
		body, ok := doc.get()
		if !ok {
			return nil, false
		}
		return LookupJSONPath(body, rule.SourceExpr)
	case SourceCookie:
		return lookupCookie(result, rule.SourceExpr)
	case SourceTextRegex:
		return lookupRegex(result.Body, rule.SourceExpr)
	case SourceStatus:
		if result.StatusCode == nil {
			return nil, false
		}
		return float64(*result.StatusCode), true
	case SourceSession:
		name := rule.SourceExpr
		if name == "" {
			name = rule.VarName
		}
		v, ok := runtime[name]
		return v, ok
	default:
		return nil, false
	}
}

func lookupHeader(result *executor.Result, name string) (any, bool) {
	v, ok := result.Header(name)
	if !ok {
		return nil, false
	}
	return v, true
}

// lookupCookie scans every Set-Cookie value for the named cookie.
func lookupCookie(result *executor.Result, name string) (any, bool) {
	for _, raw := range result.HeaderValues("Set-Cookie") {
		header := http.Header{"Set-Cookie": {raw}}
		resp := http.Response{Header: header}
		for _, c := range resp.Cookies() {
			if c.Name == name {
				return c.Value, true
			}
		}
	}
	return nil, false
}

// lookupRegex returns capture group 1 when present, the whole match
// otherwise. An invalid pattern yields not-found.
func lookupRegex(body, pattern string) (any, bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, false
	}
	m := re.FindStringSubmatch(body)
	if m == nil {
		return nil, false
	}
	if len(m) > 1 {
		return m[1], true
	}
	return m[0], true
}

// jsonDoc lazily parses the response body once across rules.
type jsonDoc struct {
	raw    string
	parsed bool
	value  any
	ok     bool
}

func newJSONDoc(body string) *jsonDoc {
	return &jsonDoc{raw: body}
}

func (d *jsonDoc) get() (any, bool) {
	if !d.parsed {
		d.parsed = true
		trimmed := strings.TrimSpace(d.raw)
		if trimmed != "" {
			d.ok = json.Unmarshal([]byte(trimmed), &d.value) == nil
		}
	}
	return d.value, d.ok
}
