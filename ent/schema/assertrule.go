package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssertRule holds the schema definition for an assertion evaluated against
// a response after a request executes.
type AssertRule struct {
	ent.Schema
}

// Mixin of the AssertRule.
func (AssertRule) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the AssertRule.
func (AssertRule) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("request_id"),
		field.Int64("dataset_id").
			Optional().
			Nillable().
			Comment("Null applies the rule to any dataset of the request"),
		field.Enum("assert_type").
			Values("status_code", "json_path", "text_contains"),
		field.String("source_expr").
			Optional().
			MaxLen(1024).
			Comment("JSON path for json_path, ignored otherwise"),
		field.Enum("comparator").
			Values("eq", "ne", "contains", "not_contains").
			Default("eq"),
		field.JSON("expected_value", json.RawMessage{}).
			Optional().
			Comment("JSON-encoded expected operand"),
		field.String("message").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Custom failure message shown in place of the generated detail"),
		field.Bool("is_enabled").
			Default(true),
		field.Int("sort").
			Default(0),
	}
}

// Indexes of the AssertRule.
func (AssertRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("request_id", "is_enabled"),
	}
}

// Annotations of the AssertRule.
func (AssertRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_api_assert_rules"},
	}
}
