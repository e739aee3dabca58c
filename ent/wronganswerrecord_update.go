// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/predicate"
	"github.com/tutorloop/tutorloop/ent/wronganswerrecord"
)

// WrongAnswerRecordUpdate is the builder for updating WrongAnswerRecord entities.
type WrongAnswerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *WrongAnswerRecordMutation
}

// Where appends a list predicates to the WrongAnswerRecordUpdate builder.
func (_u *WrongAnswerRecordUpdate) Where(ps ...predicate.WrongAnswerRecord) *WrongAnswerRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WrongAnswerRecordUpdate) SetUserID(v string) *WrongAnswerRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdate) SetNillableUserID(v *string) *WrongAnswerRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *WrongAnswerRecordUpdate) SetQuestionID(v string) *WrongAnswerRecordUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdate) SetNillableQuestionID(v *string) *WrongAnswerRecordUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetRepeatCount sets the "repeat_count" field.
func (_u *WrongAnswerRecordUpdate) SetRepeatCount(v int) *WrongAnswerRecordUpdate {
	_u.mutation.ResetRepeatCount()
	_u.mutation.SetRepeatCount(v)
	return _u
}

// SetNillableRepeatCount sets the "repeat_count" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdate) SetNillableRepeatCount(v *int) *WrongAnswerRecordUpdate {
	if v != nil {
		_u.SetRepeatCount(*v)
	}
	return _u
}

// AddRepeatCount adds value to the "repeat_count" field.
func (_u *WrongAnswerRecordUpdate) AddRepeatCount(v int) *WrongAnswerRecordUpdate {
	_u.mutation.AddRepeatCount(v)
	return _u
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (_u *WrongAnswerRecordUpdate) SetLastWrongAt(v time.Time) *WrongAnswerRecordUpdate {
	_u.mutation.SetLastWrongAt(v)
	return _u
}

// SetNillableLastWrongAt sets the "last_wrong_at" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdate) SetNillableLastWrongAt(v *time.Time) *WrongAnswerRecordUpdate {
	if v != nil {
		_u.SetLastWrongAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WrongAnswerRecordUpdate) SetStatus(v wronganswerrecord.Status) *WrongAnswerRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdate) SetNillableStatus(v *wronganswerrecord.Status) *WrongAnswerRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the WrongAnswerRecordMutation object of the builder.
func (_u *WrongAnswerRecordUpdate) Mutation() *WrongAnswerRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WrongAnswerRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WrongAnswerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WrongAnswerRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WrongAnswerRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WrongAnswerRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := wronganswerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := wronganswerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := wronganswerrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WrongAnswerRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wronganswerrecord.Table, wronganswerrecord.Columns, sqlgraph.NewFieldSpec(wronganswerrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(wronganswerrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(wronganswerrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepeatCount(); ok {
		_spec.SetField(wronganswerrecord.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepeatCount(); ok {
		_spec.AddField(wronganswerrecord.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastWrongAt(); ok {
		_spec.SetField(wronganswerrecord.FieldLastWrongAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(wronganswerrecord.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wronganswerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WrongAnswerRecordUpdateOne is the builder for updating a single WrongAnswerRecord entity.
type WrongAnswerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WrongAnswerRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *WrongAnswerRecordUpdateOne) SetUserID(v string) *WrongAnswerRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdateOne) SetNillableUserID(v *string) *WrongAnswerRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *WrongAnswerRecordUpdateOne) SetQuestionID(v string) *WrongAnswerRecordUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdateOne) SetNillableQuestionID(v *string) *WrongAnswerRecordUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetRepeatCount sets the "repeat_count" field.
func (_u *WrongAnswerRecordUpdateOne) SetRepeatCount(v int) *WrongAnswerRecordUpdateOne {
	_u.mutation.ResetRepeatCount()
	_u.mutation.SetRepeatCount(v)
	return _u
}

// SetNillableRepeatCount sets the "repeat_count" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdateOne) SetNillableRepeatCount(v *int) *WrongAnswerRecordUpdateOne {
	if v != nil {
		_u.SetRepeatCount(*v)
	}
	return _u
}

// AddRepeatCount adds value to the "repeat_count" field.
func (_u *WrongAnswerRecordUpdateOne) AddRepeatCount(v int) *WrongAnswerRecordUpdateOne {
	_u.mutation.AddRepeatCount(v)
	return _u
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (_u *WrongAnswerRecordUpdateOne) SetLastWrongAt(v time.Time) *WrongAnswerRecordUpdateOne {
	_u.mutation.SetLastWrongAt(v)
	return _u
}

// SetNillableLastWrongAt sets the "last_wrong_at" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdateOne) SetNillableLastWrongAt(v *time.Time) *WrongAnswerRecordUpdateOne {
	if v != nil {
		_u.SetLastWrongAt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WrongAnswerRecordUpdateOne) SetStatus(v wronganswerrecord.Status) *WrongAnswerRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WrongAnswerRecordUpdateOne) SetNillableStatus(v *wronganswerrecord.Status) *WrongAnswerRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the WrongAnswerRecordMutation object of the builder.
func (_u *WrongAnswerRecordUpdateOne) Mutation() *WrongAnswerRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the WrongAnswerRecordUpdate builder.
func (_u *WrongAnswerRecordUpdateOne) Where(ps ...predicate.WrongAnswerRecord) *WrongAnswerRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WrongAnswerRecordUpdateOne) Select(field string, fields ...string) *WrongAnswerRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WrongAnswerRecord entity.
func (_u *WrongAnswerRecordUpdateOne) Save(ctx context.Context) (*WrongAnswerRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WrongAnswerRecordUpdateOne) SaveX(ctx context.Context) *WrongAnswerRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WrongAnswerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WrongAnswerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WrongAnswerRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := wronganswerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := wronganswerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := wronganswerrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WrongAnswerRecordUpdateOne) sqlSave(ctx context.Context) (_node *WrongAnswerRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wronganswerrecord.Table, wronganswerrecord.Columns, sqlgraph.NewFieldSpec(wronganswerrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WrongAnswerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wronganswerrecord.FieldID)
		for _, f := range fields {
			if !wronganswerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wronganswerrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(wronganswerrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(wronganswerrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepeatCount(); ok {
		_spec.SetField(wronganswerrecord.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepeatCount(); ok {
		_spec.AddField(wronganswerrecord.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastWrongAt(); ok {
		_spec.SetField(wronganswerrecord.FieldLastWrongAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(wronganswerrecord.FieldStatus, field.TypeEnum, value)
	}
	_node = &WrongAnswerRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wronganswerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
