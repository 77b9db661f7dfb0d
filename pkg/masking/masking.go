// Package masking redacts secret-flagged values in log output. Stored
// values are never altered; only what gets logged is masked.
package masking

import (
	"strings"

	"github.com/ExileLine/exile-ai-test-platform-server/pkg/extract"
)

// Mask replaces secret values in logs.
const Mask = "******"

// Header names whose values are always masked in logged snapshots.
var sensitiveHeaders = []string{"authorization", "cookie", "x-api-key"}

// Value returns the loggable form of a variable value.
func Value(isSecret bool, v any) any {
	if isSecret {
		return Mask
	}
	return v
}

// Records returns a log-safe view of extraction records: secret values are
// masked, everything else passes through.
func Records(records []extract.Record) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, map[string]any{
			"var_name":    r.VarName,
			"var_value":   Value(r.IsSecret, r.Value),
			"value_type":  r.ValueType,
			"source_type": r.SourceType,
			"scope":       r.Scope,
		})
	}
	return out
}

// Headers returns a log-safe copy of a rendered header mapping with
// credential-bearing headers masked.
func Headers(headers map[string]any) map[string]any {
	out := make(map[string]any, len(headers))
	for k, v := range headers {
		if isSensitiveHeader(k) {
			out[k] = Mask
			continue
		}
		out[k] = v
	}
	return out
}

func isSensitiveHeader(name string) bool {
	lower := strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if lower == h {
			return true
		}
	}
	return false
}
