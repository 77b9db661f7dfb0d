package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "redis addr from environment",
			input: "redis:\n  addr: {{.REDIS_ADDR}}",
			env:   map[string]string{"REDIS_ADDR": "redis.internal:6379"},
			want:  "redis:\n  addr: redis.internal:6379",
		},
		{
			name: "queue section with mixed variables",
			input: "queue:\n" +
				"  worker_count: {{.WORKER_COUNT}}\n" +
				"  max_concurrent_runs: {{.MAX_RUNS}}",
			env: map[string]string{
				"WORKER_COUNT": "8",
				"MAX_RUNS":     "32",
			},
			want: "queue:\n  worker_count: 8\n  max_concurrent_runs: 32",
		},
		{
			name:  "missing variable expands to empty",
			input: "redis:\n  password: {{.REDIS_PASSWORD}}",
			env:   map[string]string{},
			want:  "redis:\n  password: ",
		},
		{
			name:  "jsonpath expression is left alone",
			input: `extract: "$.data.token"`,
			env:   map[string]string{},
			want:  `extract: "$.data.token"`,
		},
		{
			name:  "assertion regex with anchors is left alone",
			input: `rule: "^ok$"`,
			env:   map[string]string{},
			want:  `rule: "^ok$"`,
		},
		{
			name:  "shell-style ${VAR} is not expanded",
			input: "template: ${RUN_ID}",
			env:   map[string]string{"RUN_ID": "42"},
			want:  "template: ${RUN_ID}",
		},
		{
			name:  "dollar sign in expanded password survives",
			input: "redis:\n  password: {{.REDIS_PASSWORD}}",
			env:   map[string]string{"REDIS_PASSWORD": "p@ss$word"},
			want:  "redis:\n  password: p@ss$word",
		},
		{
			name:  "content without templates passes through",
			input: "retention:\n  run_retention_days: 30",
			env:   map[string]string{"UNUSED": "value"},
			want:  "retention:\n  run_retention_days: 30",
		},
		{
			name:  "empty value variable",
			input: "redis:\n  db: {{.REDIS_DB}}",
			env:   map[string]string{"REDIS_DB": ""},
			want:  "redis:\n  db: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

// Malformed template syntax must come back unchanged so yaml.Unmarshal sees
// the raw content and produces the real error, and no environment value may
// leak into the output.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	inputs := map[string]string{
		"unclosed template":        "queue_key: {{.QUEUE_KEY",
		"opening braces only":      "queue_key: {{",
		"missing one closing":      "queue_key: {{.QUEUE_KEY}",
		"empty template":           "queue_key: {{}}",
		"unclosed inside document": "redis:\n  addr: localhost\n  queue_key: {{.QUEUE_KEY\n  db: 0",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Setenv("QUEUE_KEY", "should-not-appear")

			got := ExpandEnv([]byte(input))
			assert.Equal(t, input, string(got))
			assert.NotContains(t, string(got), "should-not-appear")
		})
	}
}

func TestExpandEnvFeedsYAMLParser(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PROCESSING_KEY", "exile:run:processing")

	input := `
redis:
  addr: {{.REDIS_ADDR}}
  processing_key: {{.PROCESSING_KEY}}
queue:
  worker_count: 4
`

	var parsed struct {
		Redis RedisConfig `yaml:"redis"`
		Queue QueueConfig `yaml:"queue"`
	}
	assert.NoError(t, yaml.Unmarshal(ExpandEnv([]byte(input)), &parsed))
	assert.Equal(t, "localhost:6379", parsed.Redis.Addr)
	assert.Equal(t, "exile:run:processing", parsed.Redis.ProcessingKey)
	assert.Equal(t, 4, parsed.Queue.WorkerCount)
}
