// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/knowledgeedge"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// KnowledgeEdgeDelete is the builder for deleting a KnowledgeEdge entity.
type KnowledgeEdgeDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeEdgeMutation
}

// Where appends a list predicates to the KnowledgeEdgeDelete builder.
func (_d *KnowledgeEdgeDelete) Where(ps ...predicate.KnowledgeEdge) *KnowledgeEdgeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeEdgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeEdgeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeEdgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgeedge.Table, sqlgraph.NewFieldSpec(knowledgeedge.FieldID, field.TypeInt))
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

// KnowledgeEdgeDeleteOne is the builder for deleting a single KnowledgeEdge entity.
type KnowledgeEdgeDeleteOne struct {
	_d *KnowledgeEdgeDelete
}

// Where appends a list predicates to the KnowledgeEdgeDelete builder.
func (_d *KnowledgeEdgeDeleteOne) Where(ps ...predicate.KnowledgeEdge) *KnowledgeEdgeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeEdgeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgeedge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeEdgeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
