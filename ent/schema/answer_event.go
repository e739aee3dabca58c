package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent is the append-only record of a graded answer submission.
// It is the source of truth that mastery records and the wrong-answer
// ledger are derived from.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("raw_answer").
			Comment("The learner's answer as submitted (possibly OCR'd)"),
		field.Bool("correct"),
		field.JSON("dimension_scores", map[string]float64{}).
			Optional().
			Comment("Per-dimension diagnostic scores from the judge"),
		field.Int("time_spent_ms").
			Default(0),
		field.Float("confidence").
			Default(0),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("user_id", "question_id"),
	}
}
