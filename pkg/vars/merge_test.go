package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     map[string]any
		override map[string]any
		expected map[string]any
	}{
		{
			name:     "override wins on scalar",
			base:     map[string]any{"a": "base"},
			override: map[string]any{"a": "override"},
			expected: map[string]any{"a": "override"},
		},
		{
			name:     "disjoint keys union",
			base:     map[string]any{"a": "x"},
			override: map[string]any{"b": "y"},
			expected: map[string]any{"a": "x", "b": "y"},
		},
		{
			name: "nested maps merge recursively",
			base: map[string]any{
				"h": map[string]any{"keep": "1", "swap": "old"},
			},
			override: map[string]any{
				"h": map[string]any{"swap": "new", "add": "2"},
			},
			expected: map[string]any{
				"h": map[string]any{"keep": "1", "swap": "new", "add": "2"},
			},
		},
		{
			name:     "lists replaced not concatenated",
			base:     map[string]any{"l": []any{"a", "b"}},
			override: map[string]any{"l": []any{"c"}},
			expected: map[string]any{"l": []any{"c"}},
		},
		{
			name:     "map replaces scalar",
			base:     map[string]any{"v": "scalar"},
			override: map[string]any{"v": map[string]any{"k": "1"}},
			expected: map[string]any{"v": map[string]any{"k": "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.base, tt.override))
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"h": map[string]any{"a": "1"}}
	override := map[string]any{"h": map[string]any{"b": "2"}}

	out := Merge(base, override)
	out["h"].(map[string]any)["a"] = "mutated"

	assert.Equal(t, "1", base["h"].(map[string]any)["a"])
	assert.NotContains(t, base["h"].(map[string]any), "b")
	assert.NotContains(t, override["h"].(map[string]any), "a")
}

func TestMergeAllRightBiased(t *testing.T) {
	env := map[string]any{"host": "env", "token": "env"}
	dataset := map[string]any{"token": "ds", "uid": "ds"}
	runtime := map[string]any{"uid": "rt"}

	out := MergeAll(env, dataset, runtime)

	assert.Equal(t, map[string]any{"host": "env", "token": "ds", "uid": "rt"}, out)
}
