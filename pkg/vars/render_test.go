package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	variables := map[string]any{
		"uid":   "u1",
		"count": float64(3),
		"flag":  true,
		"obj":   map[string]any{"a": float64(1)},
		"items": []any{"x", "y"},
	}

	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{
			name:     "solo placeholder keeps type",
			input:    "{{count}}",
			expected: float64(3),
		},
		{
			name:     "solo placeholder with inner whitespace",
			input:    "{{ flag }}",
			expected: true,
		},
		{
			name:     "solo placeholder with surrounding whitespace keeps type",
			input:    "  {{obj}}  ",
			expected: map[string]any{"a": float64(1)},
		},
		{
			name:     "embedded placeholder coerces to text",
			input:    "user={{uid}}&n={{count}}",
			expected: "user=u1&n=3",
		},
		{
			name:     "unknown name left verbatim",
			input:    "hello {{nope}}",
			expected: "hello {{nope}}",
		},
		{
			name:     "solo unknown name left verbatim",
			input:    "{{nope}}",
			expected: "{{nope}}",
		},
		{
			name:     "invalid name is not a placeholder",
			input:    "{{1bad}}",
			expected: "{{1bad}}",
		},
		{
			name:     "list coerces to json",
			input:    "items: {{items}}",
			expected: `items: ["x","y"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderString(tt.input, variables))
		})
	}
}

func TestRenderStringSoloCopyIsolation(t *testing.T) {
	variables := map[string]any{"obj": map[string]any{"a": "x"}}

	out, ok := RenderString("{{obj}}", variables).(map[string]any)
	require.True(t, ok)

	out["a"] = "mutated"
	assert.Equal(t, "x", variables["obj"].(map[string]any)["a"])
}

func TestRenderNestedStructure(t *testing.T) {
	variables := map[string]any{"token": "tk", "uid": float64(7)}

	input := map[string]any{
		"url": "http://h/order?u={{uid}}",
		"headers": map[string]any{
			"Authorization": "Bearer {{token}}",
		},
		"ids":   []any{"{{uid}}", "static"},
		"depth": float64(2),
	}

	out, ok := Render(input, variables).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "http://h/order?u=7", out["url"])
	assert.Equal(t, "Bearer tk", out["headers"].(map[string]any)["Authorization"])
	assert.Equal(t, []any{float64(7), "static"}, out["ids"])
	assert.Equal(t, float64(2), out["depth"])
}

func TestRenderNoTokensIsDeepCopy(t *testing.T) {
	input := map[string]any{
		"plain":  "no tokens here",
		"nested": map[string]any{"k": []any{float64(1), float64(2)}},
	}

	out, ok := Render(input, map[string]any{"unused": "v"}).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, input, out)

	out["nested"].(map[string]any)["k"].([]any)[0] = "mutated"
	assert.Equal(t, float64(1), input["nested"].(map[string]any)["k"].([]any)[0])
}

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "string", input: "s", expected: "s"},
		{name: "bool", input: true, expected: "true"},
		{name: "integral float", input: float64(42), expected: "42"},
		{name: "fractional float", input: 3.5, expected: "3.5"},
		{name: "int", input: 7, expected: "7"},
		{name: "map", input: map[string]any{"a": float64(1)}, expected: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToString(tt.input))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "null", TypeName(nil))
	assert.Equal(t, "bool", TypeName(false))
	assert.Equal(t, "number", TypeName(float64(1)))
	assert.Equal(t, "string", TypeName("s"))
	assert.Equal(t, "list", TypeName([]any{}))
	assert.Equal(t, "map", TypeName(map[string]any{}))
}
