package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApiRequest holds the schema definition for a test case: the stored recipe
// for one HTTP call, independent of concrete values.
type ApiRequest struct {
	ent.Schema
}

// Mixin of the ApiRequest.
func (ApiRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the ApiRequest.
func (ApiRequest) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("env_id").
			Optional().
			Nillable().
			Comment("Default environment"),
		field.String("name").
			MaxLen(128),
		field.String("method").
			MaxLen(16).
			Default("GET"),
		field.String("url").
			MaxLen(2048).
			Comment("May contain {{var}} placeholders"),
		field.String("remark").
			Optional().
			Nillable().
			MaxLen(255),

		// Base layers merged with the dataset overlays at execution time.
		field.JSON("base_query_params", map[string]any{}).
			Default(map[string]any{}),
		field.JSON("base_headers", map[string]any{}).
			Default(map[string]any{}),
		field.JSON("base_cookies", map[string]any{}).
			Default(map[string]any{}),

		field.String("body_type").
			MaxLen(32).
			Default("none").
			Comment("none/json/form-urlencoded/form-data/raw/binary"),
		field.JSON("base_body_data", map[string]any{}).
			Default(map[string]any{}),
		field.Text("base_body_raw").
			Optional().
			Nillable(),

		field.Int("timeout_ms").
			Default(30000),
		field.Bool("follow_redirects").
			Default(true),
		field.Bool("verify_ssl").
			Default(true),
		field.String("proxy_url").
			Optional().
			Nillable().
			MaxLen(1024),
		field.Int("sort").
			Default(0),
		field.Int("execute_count").
			Default(0),
		field.Enum("dataset_run_mode").
			Values("single", "all").
			Default("all").
			Comment("Dataset policy for direct case runs"),
		field.Int64("default_dataset_id").
			Optional().
			Nillable(),
	}
}

// Indexes of the ApiRequest.
func (ApiRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("env_id"),
		index.Fields("is_deleted"),
	}
}

// Annotations of the ApiRequest.
func (ApiRequest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_api_requests"},
	}
}
