// Package vars implements the variable layer of the execution engine:
// template rendering, deep merging and value coercion shared by the
// executor, extractor and orchestrator.
package vars

import (
	"regexp"
	"strings"
)

var (
	placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)
	soloRe        = regexp.MustCompile(`^\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}$`)
)

// Render substitutes {{name}} placeholders in value from variables.
// Strings, maps and slices are walked recursively; other values pass
// through unchanged. Unknown names stay verbatim, rendering never fails.
func Render(value any, variables map[string]any) any {
	switch v := value.(type) {
	case string:
		return RenderString(v, variables)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Render(item, variables)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Render(item, variables)
		}
		return out
	default:
		return DeepCopy(value)
	}
}

// RenderString substitutes placeholders in a single string. A string whose
// whole trimmed content is one bound {{name}} keeps the value's original
// type, deep-copied. Otherwise each bound occurrence is replaced by the
// value's textual form and unbound names are left as written.
func RenderString(s string, variables map[string]any) any {
	if m := soloRe.FindStringSubmatch(strings.TrimSpace(s)); m != nil {
		if v, ok := variables[m[1]]; ok {
			return DeepCopy(v)
		}
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(token string) string {
		name := placeholderRe.FindStringSubmatch(token)[1]
		v, ok := variables[name]
		if !ok {
			return token
		}
		return ToString(v)
	})
}

// RenderMap renders every value of a string-keyed map. A nil input yields
// an empty map so callers can use the result without nil checks.
func RenderMap(m map[string]any, variables map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Render(v, variables)
	}
	return out
}
