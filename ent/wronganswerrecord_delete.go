// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/predicate"
	"github.com/tutorloop/tutorloop/ent/wronganswerrecord"
)

// WrongAnswerRecordDelete is the builder for deleting a WrongAnswerRecord entity.
type WrongAnswerRecordDelete struct {
	config
	hooks    []Hook
	mutation *WrongAnswerRecordMutation
}

// Where appends a list predicates to the WrongAnswerRecordDelete builder.
func (_d *WrongAnswerRecordDelete) Where(ps ...predicate.WrongAnswerRecord) *WrongAnswerRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WrongAnswerRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WrongAnswerRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WrongAnswerRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(wronganswerrecord.Table, sqlgraph.NewFieldSpec(wronganswerrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WrongAnswerRecordDeleteOne is the builder for deleting a single WrongAnswerRecord entity.
type WrongAnswerRecordDeleteOne struct {
	_d *WrongAnswerRecordDelete
}

// Where appends a list predicates to the WrongAnswerRecordDelete builder.
func (_d *WrongAnswerRecordDeleteOne) Where(ps ...predicate.WrongAnswerRecord) *WrongAnswerRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WrongAnswerRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{wronganswerrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WrongAnswerRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
