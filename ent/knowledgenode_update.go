// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/knowledgenode"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// KnowledgeNodeUpdate is the builder for updating KnowledgeNode entities.
type KnowledgeNodeUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeNodeMutation
}

// Where appends a list predicates to the KnowledgeNodeUpdate builder.
func (_u *KnowledgeNodeUpdate) Where(ps ...predicate.KnowledgeNode) *KnowledgeNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *KnowledgeNodeUpdate) SetName(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableName(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *KnowledgeNodeUpdate) SetDifficulty(v float64) *KnowledgeNodeUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableDifficulty(v *float64) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *KnowledgeNodeUpdate) AddDifficulty(v float64) *KnowledgeNodeUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *KnowledgeNodeUpdate) SetLevel(v int) *KnowledgeNodeUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableLevel(v *int) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *KnowledgeNodeUpdate) AddLevel(v int) *KnowledgeNodeUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *KnowledgeNodeUpdate) SetSummary(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableSummary(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *KnowledgeNodeUpdate) ClearSummary() *KnowledgeNodeUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetKind sets the "kind" field.
func (_u *KnowledgeNodeUpdate) SetKind(v knowledgenode.Kind) *KnowledgeNodeUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableKind(v *knowledgenode.Kind) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *KnowledgeNodeUpdate) SetPosition(v int) *KnowledgeNodeUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillablePosition(v *int) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *KnowledgeNodeUpdate) AddPosition(v int) *KnowledgeNodeUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_u *KnowledgeNodeUpdate) Mutation() *KnowledgeNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeNodeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := knowledgenode.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := knowledgenode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgenode.Table, knowledgenode.Columns, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(knowledgenode.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(knowledgenode.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(knowledgenode.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(knowledgenode.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(knowledgenode.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(knowledgenode.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(knowledgenode.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(knowledgenode.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(knowledgenode.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(knowledgenode.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgenode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeNodeUpdateOne is the builder for updating a single KnowledgeNode entity.
type KnowledgeNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeNodeMutation
}

// SetName sets the "name" field.
func (_u *KnowledgeNodeUpdateOne) SetName(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableName(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *KnowledgeNodeUpdateOne) SetDifficulty(v float64) *KnowledgeNodeUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableDifficulty(v *float64) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *KnowledgeNodeUpdateOne) AddDifficulty(v float64) *KnowledgeNodeUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *KnowledgeNodeUpdateOne) SetLevel(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableLevel(v *int) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *KnowledgeNodeUpdateOne) AddLevel(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *KnowledgeNodeUpdateOne) SetSummary(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableSummary(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *KnowledgeNodeUpdateOne) ClearSummary() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetKind sets the "kind" field.
func (_u *KnowledgeNodeUpdateOne) SetKind(v knowledgenode.Kind) *KnowledgeNodeUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableKind(v *knowledgenode.Kind) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *KnowledgeNodeUpdateOne) SetPosition(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillablePosition(v *int) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *KnowledgeNodeUpdateOne) AddPosition(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_u *KnowledgeNodeUpdateOne) Mutation() *KnowledgeNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeNodeUpdate builder.
func (_u *KnowledgeNodeUpdateOne) Where(ps ...predicate.KnowledgeNode) *KnowledgeNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeNodeUpdateOne) Select(field string, fields ...string) *KnowledgeNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeNode entity.
func (_u *KnowledgeNodeUpdateOne) Save(ctx context.Context) (*KnowledgeNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeNodeUpdateOne) SaveX(ctx context.Context) *KnowledgeNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeNodeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := knowledgenode.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := knowledgenode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeNodeUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgenode.Table, knowledgenode.Columns, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgenode.FieldID)
		for _, f := range fields {
			if !knowledgenode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgenode.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(knowledgenode.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(knowledgenode.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(knowledgenode.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(knowledgenode.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(knowledgenode.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(knowledgenode.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(knowledgenode.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(knowledgenode.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(knowledgenode.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(knowledgenode.FieldPosition, field.TypeInt, value)
	}
	_node = &KnowledgeNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgenode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
