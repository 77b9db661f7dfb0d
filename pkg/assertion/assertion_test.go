package assertion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
)

func resultWith(status int, body string) *executor.Result {
	return &executor.Result{
		StatusCode: &status,
		Body:       body,
		IsSuccess:  status >= 200 && status < 300,
	}
}

func TestEvaluateStatusCode(t *testing.T) {
	result := resultWith(201, `{}`)

	tests := []struct {
		name     string
		expected string
		pass     bool
	}{
		{name: "number match", expected: `201`, pass: true},
		{name: "numeric string coerces", expected: `"201"`, pass: true},
		{name: "mismatch", expected: `200`, pass: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := []Rule{{AssertType: TypeStatusCode, Comparator: CompareEq, Expected: json.RawMessage(tt.expected)}}
			pass, records := Evaluate(rules, result)
			assert.Equal(t, tt.pass, pass)
			require.Len(t, records, 1)
			assert.Equal(t, tt.pass, records[0].Passed)
		})
	}
}

func TestEvaluateJSONPath(t *testing.T) {
	result := resultWith(200, `{"data":{"id":42,"tags":["a","b"],"name":"exile"}}`)

	tests := []struct {
		name       string
		expr       string
		comparator string
		expected   string
		pass       bool
	}{
		{name: "eq number", expr: "$.data.id", comparator: CompareEq, expected: `42`, pass: true},
		{name: "eq numeric string", expr: "$.data.id", comparator: CompareEq, expected: `"42"`, pass: true},
		{name: "ne", expr: "$.data.name", comparator: CompareNe, expected: `"other"`, pass: true},
		{name: "list membership", expr: "$.data.tags", comparator: CompareContains, expected: `"a"`, pass: true},
		{name: "list not contains", expr: "$.data.tags", comparator: CompareNotContains, expected: `"z"`, pass: true},
		{name: "substring", expr: "$.data.name", comparator: CompareContains, expected: `"xil"`, pass: true},
		{name: "missing path eq null", expr: "$.data.nope", comparator: CompareEq, expected: `null`, pass: true},
		{name: "missing path eq value", expr: "$.data.nope", comparator: CompareEq, expected: `"x"`, pass: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := []Rule{{
				AssertType: TypeJSONPath,
				SourceExpr: tt.expr,
				Comparator: tt.comparator,
				Expected:   json.RawMessage(tt.expected),
			}}
			pass, _ := Evaluate(rules, result)
			assert.Equal(t, tt.pass, pass)
		})
	}
}

func TestEvaluateTextContains(t *testing.T) {
	result := resultWith(200, `order created: id=ab12`)

	pass, records := Evaluate([]Rule{
		{AssertType: TypeTextContains, Comparator: CompareContains, Expected: json.RawMessage(`"id=ab12"`)},
		{AssertType: TypeTextContains, Comparator: CompareNotContains, Expected: json.RawMessage(`"error"`)},
	}, result)

	assert.True(t, pass)
	require.Len(t, records, 2)
	assert.Empty(t, records[0].Detail)
}

func TestEvaluateFailureDetail(t *testing.T) {
	result := resultWith(500, `{}`)

	pass, records := Evaluate([]Rule{
		{AssertType: TypeStatusCode, Comparator: CompareEq, Expected: json.RawMessage(`200`)},
	}, result)

	assert.False(t, pass)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Detail, "断言失败")
	assert.Contains(t, records[0].Detail, "actual=500")
	assert.Contains(t, records[0].Detail, "expected=200")
	assert.Equal(t, records[0].Detail, records[0].FailureText())
}

func TestEvaluateCustomMessageWinsOnFailure(t *testing.T) {
	msg := "登录接口状态码错误"
	result := resultWith(500, `{}`)

	_, records := Evaluate([]Rule{
		{AssertType: TypeStatusCode, Comparator: CompareEq, Expected: json.RawMessage(`200`), Message: &msg},
	}, result)

	require.Len(t, records, 1)
	assert.Equal(t, msg, records[0].FailureText())
}

func TestEvaluateOverallIsConjunction(t *testing.T) {
	result := resultWith(200, `{"ok":true}`)

	pass, records := Evaluate([]Rule{
		{AssertType: TypeStatusCode, Comparator: CompareEq, Expected: json.RawMessage(`200`)},
		{AssertType: TypeJSONPath, SourceExpr: "$.ok", Comparator: CompareEq, Expected: json.RawMessage(`false`)},
	}, result)

	assert.False(t, pass)
	require.Len(t, records, 2)
	assert.True(t, records[0].Passed)
	assert.False(t, records[1].Passed)
}

func TestEvaluateTransportFailureStatusIsNil(t *testing.T) {
	result := &executor.Result{Body: ""}

	pass, records := Evaluate([]Rule{
		{AssertType: TypeStatusCode, Comparator: CompareEq, Expected: json.RawMessage(`200`)},
	}, result)

	assert.False(t, pass)
	assert.Nil(t, records[0].Actual)
}
