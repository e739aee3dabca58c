// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/knowledgeedge"
)

// KnowledgeEdge is the model entity for the KnowledgeEdge schema.
type KnowledgeEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// TargetID holds the value of the "target_id" field.
	TargetID string `json:"target_id,omitempty"`
	// Relation holds the value of the "relation" field.
	Relation     knowledgeedge.Relation `json:"relation,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgeedge.FieldID:
			values[i] = new(sql.NullInt64)
		case knowledgeedge.FieldSourceID, knowledgeedge.FieldTargetID, knowledgeedge.FieldRelation:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeEdge fields.
func (_m *KnowledgeEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgeedge.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case knowledgeedge.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case knowledgeedge.FieldTargetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_id", values[i])
			} else if value.Valid {
				_m.TargetID = value.String
			}
		case knowledgeedge.FieldRelation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation", values[i])
			} else if value.Valid {
				_m.Relation = knowledgeedge.Relation(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeEdge.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this KnowledgeEdge.
// Note that you need to call KnowledgeEdge.Unwrap() before calling this method if this KnowledgeEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeEdge) Update() *KnowledgeEdgeUpdateOne {
	return NewKnowledgeEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeEdge) Unwrap() *KnowledgeEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeEdge) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("target_id=")
	builder.WriteString(_m.TargetID)
	builder.WriteString(", ")
	builder.WriteString("relation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relation))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeEdges is a parsable slice of KnowledgeEdge.
type KnowledgeEdges []*KnowledgeEdge
