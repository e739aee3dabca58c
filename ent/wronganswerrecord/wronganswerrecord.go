// Code generated by ent, DO NOT EDIT.

package wronganswerrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the wronganswerrecord type in the database.
	Label = "wrong_answer_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldRepeatCount holds the string denoting the repeat_count field in the database.
	FieldRepeatCount = "repeat_count"
	// FieldLastWrongAt holds the string denoting the last_wrong_at field in the database.
	FieldLastWrongAt = "last_wrong_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the wronganswerrecord in the database.
	Table = "wrong_answer_records"
)

// Columns holds all SQL columns for wronganswerrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuestionID,
	FieldRepeatCount,
	FieldLastWrongAt,
	FieldStatus,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultRepeatCount holds the default value on creation for the "repeat_count" field.
	DefaultRepeatCount int
	// DefaultLastWrongAt holds the default value on creation for the "last_wrong_at" field.
	DefaultLastWrongAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusUnmastered is the default value of the Status enum.
const DefaultStatus = StatusUnmastered

// Status values.
const (
	StatusUnmastered  Status = "unmastered"
	StatusMastered    Status = "mastered"
	StatusNeedsReview Status = "needs_review"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusUnmastered, StatusMastered, StatusNeedsReview:
		return nil
	default:
		return fmt.Errorf("wronganswerrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WrongAnswerRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByRepeatCount orders the results by the repeat_count field.
func ByRepeatCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepeatCount, opts...).ToFunc()
}

// ByLastWrongAt orders the results by the last_wrong_at field.
func ByLastWrongAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastWrongAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
