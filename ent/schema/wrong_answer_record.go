package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WrongAnswerRecord tracks repeat misses of a question by a learner.
// Created on the first incorrect answer, incremented on repeats, never
// auto-deleted. Status is only upgraded by the external correction workflow.
type WrongAnswerRecord struct {
	ent.Schema
}

func (WrongAnswerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.Int("repeat_count").
			Default(1),
		field.Time("last_wrong_at").
			Default(time.Now),
		field.Enum("status").
			Values("unmastered", "mastered", "needs_review").
			Default("unmastered"),
	}
}

func (WrongAnswerRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").Unique(),
		index.Fields("user_id", "status"),
	}
}
