package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Environment holds the schema definition for a named set of variables
// available to every request executed against it.
type Environment struct {
	ent.Schema
}

// Mixin of the Environment.
func (Environment) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the Environment.
func (Environment) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(128),
		field.JSON("variables", map[string]any{}).
			Default(map[string]any{}).
			Comment("Variable mapping available for template substitution"),
		field.Bool("is_default").
			Default(false),
	}
}

// Annotations of the Environment.
func (Environment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_api_environments"},
	}
}
