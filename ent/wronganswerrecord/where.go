// Code generated by ent, DO NOT EDIT.

package wronganswerrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldQuestionID, v))
}

// RepeatCount applies equality check predicate on the "repeat_count" field. It's identical to RepeatCountEQ.
func RepeatCount(v int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldRepeatCount, v))
}

// LastWrongAt applies equality check predicate on the "last_wrong_at" field. It's identical to LastWrongAtEQ.
func LastWrongAt(v time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldLastWrongAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldContainsFold(FieldQuestionID, v))
}

// RepeatCountEQ applies the EQ predicate on the "repeat_count" field.
func RepeatCountEQ(v int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldRepeatCount, v))
}

// RepeatCountNEQ applies the NEQ predicate on the "repeat_count" field.
func RepeatCountNEQ(v int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNEQ(FieldRepeatCount, v))
}

// RepeatCountIn applies the In predicate on the "repeat_count" field.
func RepeatCountIn(vs ...int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldIn(FieldRepeatCount, vs...))
}

// RepeatCountNotIn applies the NotIn predicate on the "repeat_count" field.
func RepeatCountNotIn(vs ...int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNotIn(FieldRepeatCount, vs...))
}

// RepeatCountGT applies the GT predicate on the "repeat_count" field.
func RepeatCountGT(v int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGT(FieldRepeatCount, v))
}

// RepeatCountGTE applies the GTE predicate on the "repeat_count" field.
func RepeatCountGTE(v int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGTE(FieldRepeatCount, v))
}

// RepeatCountLT applies the LT predicate on the "repeat_count" field.
func RepeatCountLT(v int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLT(FieldRepeatCount, v))
}

// RepeatCountLTE applies the LTE predicate on the "repeat_count" field.
func RepeatCountLTE(v int) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLTE(FieldRepeatCount, v))
}

// LastWrongAtEQ applies the EQ predicate on the "last_wrong_at" field.
func LastWrongAtEQ(v time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldLastWrongAt, v))
}

// LastWrongAtNEQ applies the NEQ predicate on the "last_wrong_at" field.
func LastWrongAtNEQ(v time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNEQ(FieldLastWrongAt, v))
}

// LastWrongAtIn applies the In predicate on the "last_wrong_at" field.
func LastWrongAtIn(vs ...time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldIn(FieldLastWrongAt, vs...))
}

// LastWrongAtNotIn applies the NotIn predicate on the "last_wrong_at" field.
func LastWrongAtNotIn(vs ...time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNotIn(FieldLastWrongAt, vs...))
}

// LastWrongAtGT applies the GT predicate on the "last_wrong_at" field.
func LastWrongAtGT(v time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGT(FieldLastWrongAt, v))
}

// LastWrongAtGTE applies the GTE predicate on the "last_wrong_at" field.
func LastWrongAtGTE(v time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldGTE(FieldLastWrongAt, v))
}

// LastWrongAtLT applies the LT predicate on the "last_wrong_at" field.
func LastWrongAtLT(v time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLT(FieldLastWrongAt, v))
}

// LastWrongAtLTE applies the LTE predicate on the "last_wrong_at" field.
func LastWrongAtLTE(v time.Time) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldLTE(FieldLastWrongAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WrongAnswerRecord) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WrongAnswerRecord) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WrongAnswerRecord) predicate.WrongAnswerRecord {
	return predicate.WrongAnswerRecord(sql.NotPredicates(p))
}
