package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunVariable holds the schema definition for one variable captured during a
// run, recorded for audit and report display.
type RunVariable struct {
	ent.Schema
}

// Mixin of the RunVariable.
func (RunVariable) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the RunVariable.
func (RunVariable) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("scenario_run_id").
			Optional().
			Nillable(),
		field.Int64("request_run_id"),
		field.Int64("scenario_case_id").
			Optional().
			Nillable(),
		field.Int64("request_id"),
		field.Int64("dataset_id").
			Optional().
			Nillable(),
		field.String("var_name").
			MaxLen(128),
		field.JSON("var_value", json.RawMessage{}).
			Optional().
			Comment("JSON-encoded captured value"),
		field.String("value_type").
			MaxLen(32).
			Default("null").
			Comment("null/bool/number/string/list/map"),
		field.Enum("source_type").
			Values("response_header", "response_json", "response_cookie", "response_text_regex", "response_status", "session"),
		field.String("source_expr").
			Optional().
			MaxLen(1024),
		field.Enum("scope").
			Values("step", "scenario", "global").
			Default("scenario"),
		field.Bool("is_secret").
			Default(false),
	}
}

// Indexes of the RunVariable.
func (RunVariable) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scenario_run_id"),
		index.Fields("request_run_id"),
	}
}

// Annotations of the RunVariable.
func (RunVariable) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_api_run_variables"},
	}
}
