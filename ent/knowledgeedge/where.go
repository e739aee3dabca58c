// Code generated by ent, DO NOT EDIT.

package knowledgeedge

import (
	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldLTE(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEQ(FieldSourceID, v))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEQ(FieldTargetID, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldContainsFold(FieldSourceID, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldContainsFold(FieldTargetID, v))
}

// RelationEQ applies the EQ predicate on the "relation" field.
func RelationEQ(v Relation) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldEQ(FieldRelation, v))
}

// RelationNEQ applies the NEQ predicate on the "relation" field.
func RelationNEQ(v Relation) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldNEQ(FieldRelation, v))
}

// RelationIn applies the In predicate on the "relation" field.
func RelationIn(vs ...Relation) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldIn(FieldRelation, vs...))
}

// RelationNotIn applies the NotIn predicate on the "relation" field.
func RelationNotIn(vs ...Relation) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.FieldNotIn(FieldRelation, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeEdge) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeEdge) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeEdge) predicate.KnowledgeEdge {
	return predicate.KnowledgeEdge(sql.NotPredicates(p))
}
