package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeEdge is a typed, directed edge between knowledge nodes.
// "contains" edges run module -> node; "prerequisite" edges run node -> node
// and mean the target requires the source. Prerequisite cycles are tolerated
// at the storage layer; discovery handles them with a fallback tier.
type KnowledgeEdge struct {
	ent.Schema
}

func (KnowledgeEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_id").
			NotEmpty(),
		field.String("target_id").
			NotEmpty(),
		field.Enum("relation").
			Values("contains", "prerequisite"),
	}
}

func (KnowledgeEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id", "target_id", "relation").Unique(),
		index.Fields("target_id"),
		index.Fields("relation"),
	}
}
