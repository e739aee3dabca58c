// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "raw_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "dimension_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "time_spent_ms", Type: field.TypeInt, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_user_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4], AnswerEventsColumns[5]},
			},
		},
	}
	// KnowledgeEdgesColumns holds the columns for the "knowledge_edges" table.
	KnowledgeEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_id", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "relation", Type: field.TypeEnum, Enums: []string{"contains", "prerequisite"}},
	}
	// KnowledgeEdgesTable holds the schema information for the "knowledge_edges" table.
	KnowledgeEdgesTable = &schema.Table{
		Name:       "knowledge_edges",
		Columns:    KnowledgeEdgesColumns,
		PrimaryKey: []*schema.Column{KnowledgeEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeedge_source_id_target_id_relation",
				Unique:  true,
				Columns: []*schema.Column{KnowledgeEdgesColumns[1], KnowledgeEdgesColumns[2], KnowledgeEdgesColumns[3]},
			},
			{
				Name:    "knowledgeedge_target_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeEdgesColumns[2]},
			},
			{
				Name:    "knowledgeedge_relation",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeEdgesColumns[3]},
			},
		},
	}
	// KnowledgeNodesColumns holds the columns for the "knowledge_nodes" table.
	KnowledgeNodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "node_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0.5},
		{Name: "level", Type: field.TypeInt, Default: 0},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"node", "module"}},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// KnowledgeNodesTable holds the schema information for the "knowledge_nodes" table.
	KnowledgeNodesTable = &schema.Table{
		Name:       "knowledge_nodes",
		Columns:    KnowledgeNodesColumns,
		PrimaryKey: []*schema.Column{KnowledgeNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgenode_node_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeNodesColumns[1]},
			},
			{
				Name:    "knowledgenode_kind",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeNodesColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_user_id_node_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0.5},
		{Name: "node_ids", Type: field.TypeJSON},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
		},
	}
	// WrongAnswerRecordsColumns holds the columns for the "wrong_answer_records" table.
	WrongAnswerRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "repeat_count", Type: field.TypeInt, Default: 1},
		{Name: "last_wrong_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"unmastered", "mastered", "needs_review"}, Default: "unmastered"},
	}
	// WrongAnswerRecordsTable holds the schema information for the "wrong_answer_records" table.
	WrongAnswerRecordsTable = &schema.Table{
		Name:       "wrong_answer_records",
		Columns:    WrongAnswerRecordsColumns,
		PrimaryKey: []*schema.Column{WrongAnswerRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wronganswerrecord_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{WrongAnswerRecordsColumns[1], WrongAnswerRecordsColumns[2]},
			},
			{
				Name:    "wronganswerrecord_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{WrongAnswerRecordsColumns[1], WrongAnswerRecordsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		KnowledgeEdgesTable,
		KnowledgeNodesTable,
		LlmRequestEventsTable,
		MasteryRecordsTable,
		QuestionsTable,
		WrongAnswerRecordsTable,
	}
)

func init() {
}
