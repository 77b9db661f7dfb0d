package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScenarioRun holds the schema definition for one execution of a scenario:
// the queue claim target, the cancel flag, and the terminal counters.
type ScenarioRun struct {
	ent.Schema
}

// Mixin of the ScenarioRun.
func (ScenarioRun) Mixin() []ent.Mixin {
	return []ent.Mixin{BaseMixin{}}
}

// Fields of the ScenarioRun.
func (ScenarioRun) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("scenario_id"),
		field.Int64("env_id").
			Optional().
			Nillable().
			Comment("Environment override chosen at submit time"),
		field.Enum("run_status").
			Values("queued", "running", "success", "failed", "canceled").
			Default("queued"),
		field.Enum("trigger_type").
			Values("manual", "schedule").
			Default("manual"),
		field.Bool("cancel_requested").
			Default(false),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),

		// Counters maintained by the orchestrator across all request runs.
		field.Int("total_request_runs").
			Default(0),
		field.Int("success_request_runs").
			Default(0),
		field.Int("failed_request_runs").
			Default(0),

		field.Bool("is_success").
			Default(false),
		field.Text("error_message").
			Optional().
			Nillable().
			Comment("Stop message or cancel reason for a failed or canceled run"),
		field.JSON("runtime_variables", map[string]any{}).
			Default(map[string]any{}).
			Comment("Initial variables at submit, terminal snapshot at finalize"),
	}
}

// Indexes of the ScenarioRun.
func (ScenarioRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scenario_id"),
		index.Fields("run_status"),
		index.Fields("run_status", "create_time"),
	}
}

// Annotations of the ScenarioRun.
func (ScenarioRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "exile_test_scenario_runs"},
	}
}
