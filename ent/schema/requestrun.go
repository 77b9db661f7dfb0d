package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestRun holds the schema definition for one executed HTTP call: the
// fully rendered request snapshot and the captured response.
type RequestRun struct {
	ent.Schema
}

// Mixin of the RequestRun.
func (RequestRun) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the RequestRun.
func (RequestRun) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("request_id"),
		field.Int64("scenario_run_id").
			Optional().
			Nillable().
			Comment("Null for direct single-case runs"),
		field.Int64("scenario_case_id").
			Optional().
			Nillable(),
		field.Int64("dataset_id").
			Optional().
			Nillable(),

		// Snapshots of the dataset overlay and the request exactly as sent.
		field.JSON("dataset_snapshot", map[string]any{}).
			Optional(),
		field.JSON("request_snapshot", map[string]any{}).
			Default(map[string]any{}),

		field.Bool("is_success").
			Default(false).
			Comment("Transport ok, 2xx status and all assertions passed"),
		field.Int("response_status_code").
			Optional().
			Nillable(),
		field.JSON("response_headers", map[string][]string{}).
			Optional(),
		field.Text("response_body").
			Optional().
			Nillable().
			Comment("Truncated to 200000 bytes on a rune boundary"),
		field.Int64("response_time_ms").
			Default(0),
		field.Text("error_message").
			Optional().
			Nillable(),

		field.JSON("assertion_results", []map[string]any{}).
			Optional(),
	}
}

// Indexes of the RequestRun.
func (RequestRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("scenario_run_id"),
	}
}

// Annotations of the RequestRun.
func (RequestRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_api_request_runs"},
	}
}
