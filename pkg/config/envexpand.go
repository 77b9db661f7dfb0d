package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables into YAML config content using
// Go template syntax ({{.VAR_NAME}}).
//
// Plain $-style expansion is deliberately not used: the platform's config and
// seed data are full of literal dollar signs that must survive loading, such
// as JSONPath expressions ($.data.token), assertion regexes (^ok$), and
// passwords. Only the {{.NAME}} form is touched.
//
// A variable that is not set expands to the empty string; Validate is
// responsible for rejecting required fields left empty. Malformed template
// syntax returns the input unchanged so the YAML parser reports the problem
// on the raw content.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
