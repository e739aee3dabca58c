// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// KnowledgeEdge is the predicate function for knowledgeedge builders.
type KnowledgeEdge func(*sql.Selector)

// KnowledgeNode is the predicate function for knowledgenode builders.
type KnowledgeNode func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// WrongAnswerRecord is the predicate function for wronganswerrecord builders.
type WrongAnswerRecord func(*sql.Selector)
