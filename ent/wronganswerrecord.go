// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/wronganswerrecord"
)

// WrongAnswerRecord is the model entity for the WrongAnswerRecord schema.
type WrongAnswerRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// RepeatCount holds the value of the "repeat_count" field.
	RepeatCount int `json:"repeat_count,omitempty"`
	// LastWrongAt holds the value of the "last_wrong_at" field.
	LastWrongAt time.Time `json:"last_wrong_at,omitempty"`
	// Status holds the value of the "status" field.
	Status       wronganswerrecord.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WrongAnswerRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wronganswerrecord.FieldID, wronganswerrecord.FieldRepeatCount:
			values[i] = new(sql.NullInt64)
		case wronganswerrecord.FieldUserID, wronganswerrecord.FieldQuestionID, wronganswerrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case wronganswerrecord.FieldLastWrongAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WrongAnswerRecord fields.
func (_m *WrongAnswerRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wronganswerrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case wronganswerrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case wronganswerrecord.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case wronganswerrecord.FieldRepeatCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repeat_count", values[i])
			} else if value.Valid {
				_m.RepeatCount = int(value.Int64)
			}
		case wronganswerrecord.FieldLastWrongAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_wrong_at", values[i])
			} else if value.Valid {
				_m.LastWrongAt = value.Time
			}
		case wronganswerrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = wronganswerrecord.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WrongAnswerRecord.
// This includes values selected through modifiers, order, etc.
func (_m *WrongAnswerRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WrongAnswerRecord.
// Note that you need to call WrongAnswerRecord.Unwrap() before calling this method if this WrongAnswerRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WrongAnswerRecord) Update() *WrongAnswerRecordUpdateOne {
	return NewWrongAnswerRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WrongAnswerRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WrongAnswerRecord) Unwrap() *WrongAnswerRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WrongAnswerRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WrongAnswerRecord) String() string {
	var builder strings.Builder
	builder.WriteString("WrongAnswerRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("repeat_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepeatCount))
	builder.WriteString(", ")
	builder.WriteString("last_wrong_at=")
	builder.WriteString(_m.LastWrongAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// WrongAnswerRecords is a parsable slice of WrongAnswerRecord.
type WrongAnswerRecords []*WrongAnswerRecord
