package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/extract"
)

func TestValue(t *testing.T) {
	assert.Equal(t, Mask, Value(true, "tk-secret"))
	assert.Equal(t, "plain", Value(false, "plain"))
}

func TestRecords(t *testing.T) {
	records := []extract.Record{
		{VarName: "token", Value: "tk-secret", ValueType: "string", SourceType: extract.SourceJSON, Scope: extract.ScopeScenario, IsSecret: true},
		{VarName: "uid", Value: float64(7), ValueType: "number", SourceType: extract.SourceJSON, Scope: extract.ScopeScenario},
	}

	out := Records(records)
	require.Len(t, out, 2)
	assert.Equal(t, Mask, out[0]["var_value"])
	assert.Equal(t, float64(7), out[1]["var_value"])
}

func TestHeaders(t *testing.T) {
	out := Headers(map[string]any{
		"Authorization": "Bearer tk",
		"X-Api-Key":     "k1",
		"Accept":        "application/json",
	})

	assert.Equal(t, Mask, out["Authorization"])
	assert.Equal(t, Mask, out["X-Api-Key"])
	assert.Equal(t, "application/json", out["Accept"])
}
