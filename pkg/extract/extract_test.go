package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/executor"
)

func successResult(body string, headers map[string][]string) *executor.Result {
	status := 200
	return &executor.Result{
		StatusCode: &status,
		Headers:    headers,
		Body:       body,
		IsSuccess:  true,
	}
}

func TestLookupJSONPath(t *testing.T) {
	var doc any
	require.NoError(t, json.Unmarshal([]byte(`{
		"token": "tk",
		"data": {"items": [{"id": 7}, {"id": 8}], "empty": []},
		"list": [[1, 2], [3]]
	}`), &doc))

	tests := []struct {
		name     string
		path     string
		expected any
		found    bool
	}{
		{name: "top level", path: "$.token", expected: "tk", found: true},
		{name: "no dollar prefix", path: "token", expected: "tk", found: true},
		{name: "nested with index", path: "$.data.items[1].id", expected: float64(8), found: true},
		{name: "chained indexes", path: "list[0][1]", expected: float64(2), found: true},
		{name: "bare dollar returns root", path: "$", expected: doc, found: true},
		{name: "missing key", path: "$.nope", found: false},
		{name: "index out of range", path: "$.data.empty[0]", found: false},
		{name: "index into map", path: "$.data[0]", found: false},
		{name: "non-numeric bracket", path: "$.data.items[x]", found: false},
		{name: "key on scalar", path: "$.token.deeper", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, found := LookupJSONPath(doc, tt.path)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}

func TestApplySourceTypes(t *testing.T) {
	result := successResult(`{"token":"tk","n":5}`, map[string][]string{
		"X-Request-Id": {"rid-1"},
		"Set-Cookie":   {"session_id=s1; Path=/; HttpOnly", "other=o2"},
	})
	runtime := map[string]any{"prior": "p0"}

	rules := []Rule{
		{VarName: "token", SourceType: SourceJSON, SourceExpr: "$.token", Scope: ScopeScenario},
		{VarName: "rid", SourceType: SourceHeader, SourceExpr: "x-request-id", Scope: ScopeScenario},
		{VarName: "session_id", SourceType: SourceCookie, SourceExpr: "session_id", Scope: ScopeScenario},
		{VarName: "digit", SourceType: SourceTextRegex, SourceExpr: `"n":(\d+)`, Scope: ScopeStep},
		{VarName: "code", SourceType: SourceStatus, Scope: ScopeScenario},
		{VarName: "prior_copy", SourceType: SourceSession, SourceExpr: "prior", Scope: ScopeScenario},
	}

	records, err := Apply(rules, result, runtime)
	require.NoError(t, err)
	require.Len(t, records, 6)

	byName := map[string]Record{}
	for _, r := range records {
		byName[r.VarName] = r
	}

	assert.Equal(t, "tk", byName["token"].Value)
	assert.Equal(t, "string", byName["token"].ValueType)
	assert.Equal(t, "rid-1", byName["rid"].Value)
	assert.Equal(t, "s1", byName["session_id"].Value)
	assert.Equal(t, "5", byName["digit"].Value)
	assert.Equal(t, float64(200), byName["code"].Value)
	assert.Equal(t, "number", byName["code"].ValueType)
	assert.Equal(t, "p0", byName["prior_copy"].Value)

	assert.True(t, byName["token"].Promotable())
	assert.False(t, byName["digit"].Promotable())
}

func TestApplyDefaultValue(t *testing.T) {
	result := successResult(`{}`, nil)

	rules := []Rule{
		{VarName: "missing", SourceType: SourceJSON, SourceExpr: "$.absent", DefaultValue: json.RawMessage(`"fallback"`), Scope: ScopeScenario},
	}

	records, err := Apply(rules, result, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fallback", records[0].Value)
}

func TestApplyRequiredMissing(t *testing.T) {
	result := successResult(`{"ok":true}`, nil)

	rules := []Rule{
		{VarName: "token", SourceType: SourceJSON, SourceExpr: "$.token", Required: true, Scope: ScopeScenario},
	}

	_, err := Apply(rules, result, nil)
	require.Error(t, err)

	var reqErr *RequiredError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "token", reqErr.VarName)
	assert.Contains(t, err.Error(), "变量提取失败")
	assert.Contains(t, err.Error(), "response_json:$.token")
}

func TestApplyOptionalMissingIsSkipped(t *testing.T) {
	result := successResult(`{"ok":true}`, nil)

	rules := []Rule{
		{VarName: "absent", SourceType: SourceJSON, SourceExpr: "$.nope", Scope: ScopeScenario},
		{VarName: "ok", SourceType: SourceJSON, SourceExpr: "$.ok", Scope: ScopeScenario},
	}

	records, err := Apply(rules, result, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ok", records[0].VarName)
	assert.Equal(t, true, records[0].Value)
}

func TestApplyNonJSONBody(t *testing.T) {
	result := successResult(`plain text, not json`, nil)

	rules := []Rule{
		{VarName: "v", SourceType: SourceJSON, SourceExpr: "$.k", Scope: ScopeScenario},
		{VarName: "word", SourceType: SourceTextRegex, SourceExpr: `plain (\w+)`, Scope: ScopeScenario},
	}

	records, err := Apply(rules, result, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "text", records[0].Value)
}

func TestApplyRegexWithoutGroupReturnsWholeMatch(t *testing.T) {
	result := successResult(`order id ab12cd`, nil)

	rules := []Rule{
		{VarName: "id", SourceType: SourceTextRegex, SourceExpr: `[a-z]{2}\d{2}[a-z]{2}`, Scope: ScopeScenario},
	}

	records, err := Apply(rules, result, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ab12cd", records[0].Value)
}

func TestApplySessionFallsBackToVarName(t *testing.T) {
	result := successResult(``, nil)
	runtime := map[string]any{"token": "tk"}

	rules := []Rule{
		{VarName: "token", SourceType: SourceSession, Scope: ScopeScenario},
	}

	records, err := Apply(rules, result, runtime)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "tk", records[0].Value)
}
