// Code generated by ent, DO NOT EDIT.

package knowledgeedge

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the knowledgeedge type in the database.
	Label = "knowledge_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldTargetID holds the string denoting the target_id field in the database.
	FieldTargetID = "target_id"
	// FieldRelation holds the string denoting the relation field in the database.
	FieldRelation = "relation"
	// Table holds the table name of the knowledgeedge in the database.
	Table = "knowledge_edges"
)

// Columns holds all SQL columns for knowledgeedge fields.
var Columns = []string{
	FieldID,
	FieldSourceID,
	FieldTargetID,
	FieldRelation,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceIDValidator is a validator for the "source_id" field. It is called by the builders before save.
	SourceIDValidator func(string) error
	// TargetIDValidator is a validator for the "target_id" field. It is called by the builders before save.
	TargetIDValidator func(string) error
)

// Relation defines the type for the "relation" enum field.
type Relation string

// Relation values.
const (
	RelationContains     Relation = "contains"
	RelationPrerequisite Relation = "prerequisite"
)

func (r Relation) String() string {
	return string(r)
}

// RelationValidator is a validator for the "relation" field enum values. It is called by the builders before save.
func RelationValidator(r Relation) error {
	switch r {
	case RelationContains, RelationPrerequisite:
		return nil
	default:
		return fmt.Errorf("knowledgeedge: invalid enum value for relation field: %q", r)
	}
}

// OrderOption defines the ordering options for the KnowledgeEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByTargetID orders the results by the target_id field.
func ByTargetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetID, opts...).ToFunc()
}

// ByRelation orders the results by the relation field.
func ByRelation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelation, opts...).ToFunc()
}
