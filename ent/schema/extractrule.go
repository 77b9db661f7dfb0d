package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractRule holds the schema definition for a variable extraction rule
// applied to a response after a request executes.
type ExtractRule struct {
	ent.Schema
}

// Mixin of the ExtractRule.
func (ExtractRule) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the ExtractRule.
func (ExtractRule) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("request_id"),
		field.Int64("dataset_id").
			Optional().
			Nillable().
			Comment("Null applies the rule to any dataset of the request"),
		field.String("var_name").
			MaxLen(128),
		field.Enum("source_type").
			Values("response_header", "response_json", "response_cookie", "response_text_regex", "response_status", "session"),
		field.String("source_expr").
			Optional().
			MaxLen(1024).
			Comment("Path, header name, cookie name or regex depending on source_type"),
		field.JSON("default_value", json.RawMessage{}).
			Optional().
			Comment("JSON-encoded fallback used when extraction misses"),
		field.Bool("required").
			Default(false),
		field.Enum("scope").
			Values("step", "scenario", "global").
			Default("scenario"),
		field.Bool("is_secret").
			Default(false).
			Comment("Redact the extracted value in logs"),
		field.Bool("is_enabled").
			Default(true),
		field.Int("sort").
			Default(0),
	}
}

// Indexes of the ExtractRule.
func (ExtractRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("request_id", "is_enabled"),
	}
}

// Annotations of the ExtractRule.
func (ExtractRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_api_extract_rules"},
	}
}
