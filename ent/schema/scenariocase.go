package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScenarioCase holds the schema definition for one step of a scenario:
// a position binding an ApiRequest and a dataset policy.
type ScenarioCase struct {
	ent.Schema
}

// Mixin of the ScenarioCase.
func (ScenarioCase) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the ScenarioCase.
func (ScenarioCase) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("scenario_id"),
		field.Int64("request_id"),
		field.Int("step_no").
			Default(1).
			Comment("1-based; live steps form a contiguous 1..N after normalization"),
		field.Int64("dataset_id").
			Optional().
			Nillable().
			Comment("Required when dataset_run_mode is single"),
		field.Enum("dataset_run_mode").
			Values("request_default", "single", "all").
			Default("request_default"),
		field.Bool("is_enabled").
			Default(true),
		field.Bool("stop_on_fail").
			Default(true),
	}
}

// Indexes of the ScenarioCase.
func (ScenarioCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scenario_id"),
		index.Fields("scenario_id", "step_no"),
	}
}

// Annotations of the ScenarioCase.
func (ScenarioCase) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_test_scenario_cases"},
	}
}
