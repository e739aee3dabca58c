// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/wronganswerrecord"
)

// WrongAnswerRecordCreate is the builder for creating a WrongAnswerRecord entity.
type WrongAnswerRecordCreate struct {
	config
	mutation *WrongAnswerRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *WrongAnswerRecordCreate) SetUserID(v string) *WrongAnswerRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *WrongAnswerRecordCreate) SetQuestionID(v string) *WrongAnswerRecordCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetRepeatCount sets the "repeat_count" field.
func (_c *WrongAnswerRecordCreate) SetRepeatCount(v int) *WrongAnswerRecordCreate {
	_c.mutation.SetRepeatCount(v)
	return _c
}

// SetNillableRepeatCount sets the "repeat_count" field if the given value is not nil.
func (_c *WrongAnswerRecordCreate) SetNillableRepeatCount(v *int) *WrongAnswerRecordCreate {
	if v != nil {
		_c.SetRepeatCount(*v)
	}
	return _c
}

// SetLastWrongAt sets the "last_wrong_at" field.
func (_c *WrongAnswerRecordCreate) SetLastWrongAt(v time.Time) *WrongAnswerRecordCreate {
	_c.mutation.SetLastWrongAt(v)
	return _c
}

// SetNillableLastWrongAt sets the "last_wrong_at" field if the given value is not nil.
func (_c *WrongAnswerRecordCreate) SetNillableLastWrongAt(v *time.Time) *WrongAnswerRecordCreate {
	if v != nil {
		_c.SetLastWrongAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WrongAnswerRecordCreate) SetStatus(v wronganswerrecord.Status) *WrongAnswerRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WrongAnswerRecordCreate) SetNillableStatus(v *wronganswerrecord.Status) *WrongAnswerRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// Mutation returns the WrongAnswerRecordMutation object of the builder.
func (_c *WrongAnswerRecordCreate) Mutation() *WrongAnswerRecordMutation {
	return _c.mutation
}

// Save creates the WrongAnswerRecord in the database.
func (_c *WrongAnswerRecordCreate) Save(ctx context.Context) (*WrongAnswerRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WrongAnswerRecordCreate) SaveX(ctx context.Context) *WrongAnswerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WrongAnswerRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WrongAnswerRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WrongAnswerRecordCreate) defaults() {
	if _, ok := _c.mutation.RepeatCount(); !ok {
		v := wronganswerrecord.DefaultRepeatCount
		_c.mutation.SetRepeatCount(v)
	}
	if _, ok := _c.mutation.LastWrongAt(); !ok {
		v := wronganswerrecord.DefaultLastWrongAt()
		_c.mutation.SetLastWrongAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := wronganswerrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WrongAnswerRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WrongAnswerRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := wronganswerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "WrongAnswerRecord.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := wronganswerrecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RepeatCount(); !ok {
		return &ValidationError{Name: "repeat_count", err: errors.New(`ent: missing required field "WrongAnswerRecord.repeat_count"`)}
	}
	if _, ok := _c.mutation.LastWrongAt(); !ok {
		return &ValidationError{Name: "last_wrong_at", err: errors.New(`ent: missing required field "WrongAnswerRecord.last_wrong_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WrongAnswerRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := wronganswerrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WrongAnswerRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_c *WrongAnswerRecordCreate) sqlSave(ctx context.Context) (*WrongAnswerRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WrongAnswerRecordCreate) createSpec() (*WrongAnswerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &WrongAnswerRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wronganswerrecord.Table, sqlgraph.NewFieldSpec(wronganswerrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(wronganswerrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(wronganswerrecord.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.RepeatCount(); ok {
		_spec.SetField(wronganswerrecord.FieldRepeatCount, field.TypeInt, value)
		_node.RepeatCount = value
	}
	if value, ok := _c.mutation.LastWrongAt(); ok {
		_spec.SetField(wronganswerrecord.FieldLastWrongAt, field.TypeTime, value)
		_node.LastWrongAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(wronganswerrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// WrongAnswerRecordCreateBulk is the builder for creating many WrongAnswerRecord entities in bulk.
type WrongAnswerRecordCreateBulk struct {
	config
	err      error
	builders []*WrongAnswerRecordCreate
}

// Save creates the WrongAnswerRecord entities in the database.
func (_c *WrongAnswerRecordCreateBulk) Save(ctx context.Context) ([]*WrongAnswerRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WrongAnswerRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WrongAnswerRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WrongAnswerRecordCreateBulk) SaveX(ctx context.Context) []*WrongAnswerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WrongAnswerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WrongAnswerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
