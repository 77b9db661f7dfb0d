// Package assertion evaluates ordered assertion rules against a request
// execution result.
package assertion

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/extract"
	"github.com/ExileLine/exile-ai-test-platform-server/pkg/vars"
)

// Assertion types.
const (
	TypeStatusCode   = "status_code"
	TypeJSONPath     = "json_path"
	TypeTextContains = "text_contains"
)

// Comparators.
const (
	CompareEq          = "eq"
	CompareNe          = "ne"
	CompareContains    = "contains"
	CompareNotContains = "not_contains"
)

// Rule is one enabled assertion, ordered by (sort, id) by the caller.
type Rule struct {
	ID         int64
	AssertType string
	SourceExpr string
	Comparator string
	Expected   json.RawMessage
	Message    *string
}

// Record is the outcome of one rule. Detail is empty on success and a
// human-readable failure description otherwise.
type Record struct {
	AssertType string `json:"assert_type"`
	SourceExpr string `json:"source_expr"`
	Comparator string `json:"comparator"`
	Actual     any    `json:"actual"`
	Expected   any    `json:"expected"`
	Passed     bool   `json:"passed"`
	Detail     string `json:"detail"`
	Message    string `json:"message"`
}

// FailureText returns the text the orchestrator appends to the request
// run's error message: the custom message when set, the detail otherwise.
func (r Record) FailureText() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Detail
}

// Evaluate applies the rules in order and reports overall pass together
// with one record per rule.
func Evaluate(rules []Rule, result *executor.Result) (bool, []Record) {
	records := make([]Record, 0, len(rules))
	overall := true

	for _, rule := range rules {
		actual := actualValue(rule, result)
		var expected any
		if rule.Expected != nil {
			// A malformed expected value leaves nil, which fails loudly
			// in the comparison below rather than silently passing.
			_ = json.Unmarshal(rule.Expected, &expected)
		}

		passed := compare(rule.Comparator, actual, expected)
		record := Record{
			AssertType: rule.AssertType,
			SourceExpr: rule.SourceExpr,
			Comparator: rule.Comparator,
			Actual:     actual,
			Expected:   expected,
			Passed:     passed,
		}
		if !passed {
			record.Detail = fmt.Sprintf("断言失败: actual=%v expected=%v", vars.ToString(actual), vars.ToString(expected))
			if rule.Message != nil {
				record.Message = *rule.Message
			}
			overall = false
		}
		records = append(records, record)
	}
	return overall, records
}

func actualValue(rule Rule, result *executor.Result) any {
	switch rule.AssertType {
	case TypeStatusCode:
		if result.StatusCode == nil {
			return nil
		}
		return float64(*result.StatusCode)
	case TypeJSONPath:
		var doc any
		if err := json.Unmarshal([]byte(result.Body), &doc); err != nil {
			return nil
		}
		v, found := extract.LookupJSONPath(doc, rule.SourceExpr)
		if !found {
			return nil
		}
		return v
	case TypeTextContains:
		return result.Body
	default:
		return nil
	}
}

func compare(comparator string, actual, expected any) bool {
	switch comparator {
	case CompareEq, "":
		return looseEqual(actual, expected)
	case CompareNe:
		return !looseEqual(actual, expected)
	case CompareContains:
		return contains(actual, expected)
	case CompareNotContains:
		return !contains(actual, expected)
	default:
		return false
	}
}

// looseEqual is deep equality with numeric coercion: a numeric string and
// a number compare equal when they parse to the same value.
func looseEqual(a, b any) bool {
	if af, aok := asNumber(a); aok {
		if bf, bok := asNumber(b); bok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// contains tests substring on strings and membership on sequences.
func contains(actual, expected any) bool {
	switch t := actual.(type) {
	case string:
		return strings.Contains(t, vars.ToString(expected))
	case []any:
		for _, item := range t {
			if looseEqual(item, expected) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
