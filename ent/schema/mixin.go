package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// BaseMixin carries the columns shared by every table: a bigserial id,
// create/update timestamps, the soft-delete marker, and a generic status.
// is_deleted holds 0 for live rows; tombstoned rows store the id of the
// admin that deleted them.
type BaseMixin struct {
	mixin.Schema
}

// Fields of the BaseMixin.
func (BaseMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id"),
		field.Time("create_time").
			Default(time.Now).
			Immutable(),
		field.Time("update_time").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Int64("is_deleted").
			Default(0).
			Comment("0 live; otherwise the actor id that deleted the row"),
		field.Int("status").
			Default(1),
	}
}
