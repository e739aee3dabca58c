package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord holds a learner's mastery score for a single knowledge node.
// Absence of a record reads as score 0. Records are mutated only by the
// mastery tracker and never deleted.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("node_id").
			NotEmpty(),
		field.Float("score").
			Default(0).
			Comment("Mastery score in [0,1]"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "node_id").Unique(),
		index.Fields("user_id"),
	}
}
