package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Scenario holds the schema definition for an ordered collection of steps.
type Scenario struct {
	ent.Schema
}

// Mixin of the Scenario.
func (Scenario) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the Scenario.
func (Scenario) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("env_id").
			Optional().
			Nillable(),
		field.String("name").
			MaxLen(128),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("run_mode").
			Values("sequence", "parallel").
			Default("sequence").
			Comment("Stored attribute; execution is always sequential"),
		field.Bool("stop_on_fail").
			Default(true),
		field.Int("sort").
			Default(0),
	}
}

// Annotations of the Scenario.
func (Scenario) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_test_scenarios"},
	}
}
