// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/knowledgeedge"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// KnowledgeEdgeUpdate is the builder for updating KnowledgeEdge entities.
type KnowledgeEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeEdgeMutation
}

// Where appends a list predicates to the KnowledgeEdgeUpdate builder.
func (_u *KnowledgeEdgeUpdate) Where(ps ...predicate.KnowledgeEdge) *KnowledgeEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *KnowledgeEdgeUpdate) SetSourceID(v string) *KnowledgeEdgeUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *KnowledgeEdgeUpdate) SetNillableSourceID(v *string) *KnowledgeEdgeUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *KnowledgeEdgeUpdate) SetTargetID(v string) *KnowledgeEdgeUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *KnowledgeEdgeUpdate) SetNillableTargetID(v *string) *KnowledgeEdgeUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetRelation sets the "relation" field.
func (_u *KnowledgeEdgeUpdate) SetRelation(v knowledgeedge.Relation) *KnowledgeEdgeUpdate {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *KnowledgeEdgeUpdate) SetNillableRelation(v *knowledgeedge.Relation) *KnowledgeEdgeUpdate {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// Mutation returns the KnowledgeEdgeMutation object of the builder.
func (_u *KnowledgeEdgeUpdate) Mutation() *KnowledgeEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeEdgeUpdate) check() error {
	if v, ok := _u.mutation.SourceID(); ok {
		if err := knowledgeedge.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.source_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetID(); ok {
		if err := knowledgeedge.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.target_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Relation(); ok {
		if err := knowledgeedge.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.relation": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeedge.Table, knowledgeedge.Columns, sqlgraph.NewFieldSpec(knowledgeedge.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(knowledgeedge.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(knowledgeedge.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(knowledgeedge.FieldRelation, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeEdgeUpdateOne is the builder for updating a single KnowledgeEdge entity.
type KnowledgeEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeEdgeMutation
}

// SetSourceID sets the "source_id" field.
func (_u *KnowledgeEdgeUpdateOne) SetSourceID(v string) *KnowledgeEdgeUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *KnowledgeEdgeUpdateOne) SetNillableSourceID(v *string) *KnowledgeEdgeUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *KnowledgeEdgeUpdateOne) SetTargetID(v string) *KnowledgeEdgeUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *KnowledgeEdgeUpdateOne) SetNillableTargetID(v *string) *KnowledgeEdgeUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetRelation sets the "relation" field.
func (_u *KnowledgeEdgeUpdateOne) SetRelation(v knowledgeedge.Relation) *KnowledgeEdgeUpdateOne {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *KnowledgeEdgeUpdateOne) SetNillableRelation(v *knowledgeedge.Relation) *KnowledgeEdgeUpdateOne {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// Mutation returns the KnowledgeEdgeMutation object of the builder.
func (_u *KnowledgeEdgeUpdateOne) Mutation() *KnowledgeEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeEdgeUpdate builder.
func (_u *KnowledgeEdgeUpdateOne) Where(ps ...predicate.KnowledgeEdge) *KnowledgeEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeEdgeUpdateOne) Select(field string, fields ...string) *KnowledgeEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeEdge entity.
func (_u *KnowledgeEdgeUpdateOne) Save(ctx context.Context) (*KnowledgeEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeEdgeUpdateOne) SaveX(ctx context.Context) *KnowledgeEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeEdgeUpdateOne) check() error {
	if v, ok := _u.mutation.SourceID(); ok {
		if err := knowledgeedge.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.source_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetID(); ok {
		if err := knowledgeedge.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.target_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Relation(); ok {
		if err := knowledgeedge.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.relation": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeEdgeUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeEdge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgeedge.Table, knowledgeedge.Columns, sqlgraph.NewFieldSpec(knowledgeedge.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeedge.FieldID)
		for _, f := range fields {
			if !knowledgeedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeedge.FieldID {
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
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(knowledgeedge.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(knowledgeedge.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(knowledgeedge.FieldRelation, field.TypeEnum, value)
	}
	_node = &KnowledgeEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
