package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Dataset holds the schema definition for a named overlay of variables and
// request-field overrides belonging to one ApiRequest.
type Dataset struct {
	ent.Schema
}

// Mixin of the Dataset.
func (Dataset) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the Dataset.
func (Dataset) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("request_id"),
		field.String("name").
			MaxLen(128),
		field.String("remark").
			Optional().
			Nillable().
			MaxLen(255),
		field.JSON("variables", map[string]any{}).
			Default(map[string]any{}).
			Comment("Overlay variables, merged over the environment layer"),
		field.JSON("query_params", map[string]any{}).
			Default(map[string]any{}),
		field.JSON("headers", map[string]any{}).
			Default(map[string]any{}),
		field.JSON("cookies", map[string]any{}).
			Default(map[string]any{}),
		field.String("body_type").
			Optional().
			Nillable().
			MaxLen(32).
			Comment("Overrides the request body_type when set"),
		field.JSON("body_data", map[string]any{}).
			Default(map[string]any{}),
		field.Text("body_raw").
			Optional().
			Nillable(),
		field.Bool("is_default").
			Default(false).
			Comment("At most one default dataset per request"),
		field.Bool("is_enabled").
			Default(true),
		field.Int("sort").
			Default(0),
	}
}

// Indexes of the Dataset.
func (Dataset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
		index.Fields("request_id", "is_enabled"),
	}
}

// Annotations of the Dataset.
func (Dataset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_api_request_datasets"},
	}
}
