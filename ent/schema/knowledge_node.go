package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeNode is a node in the curriculum knowledge graph. Ordinary nodes
// carry learnable content; module nodes are containers that gate progression.
// Nodes are created by curriculum authoring and are immutable at
// recommendation time.
type KnowledgeNode struct {
	ent.Schema
}

func (KnowledgeNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("node_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Authoring-assigned identifier"),
		field.String("name").
			NotEmpty(),
		field.Float("difficulty").
			Default(0.5).
			Comment("Scalar difficulty in [0,1]"),
		field.Int("level").
			Default(0).
			Comment("Curriculum level"),
		field.String("summary").
			Optional().
			Comment("Free-text learning summary shown in concept-review steps"),
		field.Enum("kind").
			Values("node", "module"),
		field.Int("position").
			Default(0).
			Comment("Curriculum order for modules, in-module order for nodes"),
	}
}

func (KnowledgeNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id"),
		index.Fields("kind"),
	}
}
