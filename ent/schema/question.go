package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is an authored practice question linked to one or more knowledge
// nodes. The canonical answer is what the diagnosis judge grades against.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("text").
			NotEmpty(),
		field.String("answer").
			NotEmpty().
			Comment("Canonical answer"),
		field.Float("difficulty").
			Default(0.5),
		field.JSON("node_ids", []string{}).
			Comment("Linked knowledge node ids"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
