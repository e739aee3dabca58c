// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/knowledgeedge"
)

// KnowledgeEdgeCreate is the builder for creating a KnowledgeEdge entity.
type KnowledgeEdgeCreate struct {
	config
	mutation *KnowledgeEdgeMutation
	hooks    []Hook
}

// SetSourceID sets the "source_id" field.
func (_c *KnowledgeEdgeCreate) SetSourceID(v string) *KnowledgeEdgeCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *KnowledgeEdgeCreate) SetTargetID(v string) *KnowledgeEdgeCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetRelation sets the "relation" field.
func (_c *KnowledgeEdgeCreate) SetRelation(v knowledgeedge.Relation) *KnowledgeEdgeCreate {
	_c.mutation.SetRelation(v)
	return _c
}

// Mutation returns the KnowledgeEdgeMutation object of the builder.
func (_c *KnowledgeEdgeCreate) Mutation() *KnowledgeEdgeMutation {
	return _c.mutation
}

// Save creates the KnowledgeEdge in the database.
func (_c *KnowledgeEdgeCreate) Save(ctx context.Context) (*KnowledgeEdge, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeEdgeCreate) SaveX(ctx context.Context) *KnowledgeEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeEdgeCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "KnowledgeEdge.source_id"`)}
	}
	if v, ok := _c.mutation.SourceID(); ok {
		if err := knowledgeedge.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.source_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "KnowledgeEdge.target_id"`)}
	}
	if v, ok := _c.mutation.TargetID(); ok {
		if err := knowledgeedge.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.target_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Relation(); !ok {
		return &ValidationError{Name: "relation", err: errors.New(`ent: missing required field "KnowledgeEdge.relation"`)}
	}
	if v, ok := _c.mutation.Relation(); ok {
		if err := knowledgeedge.RelationValidator(v); err != nil {
			return &ValidationError{Name: "relation", err: fmt.Errorf(`ent: validator failed for field "KnowledgeEdge.relation": %w`, err)}
		}
	}
	return nil
}

func (_c *KnowledgeEdgeCreate) sqlSave(ctx context.Context) (*KnowledgeEdge, error) {
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

func (_c *KnowledgeEdgeCreate) createSpec() (*KnowledgeEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgeedge.Table, sqlgraph.NewFieldSpec(knowledgeedge.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(knowledgeedge.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(knowledgeedge.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Relation(); ok {
		_spec.SetField(knowledgeedge.FieldRelation, field.TypeEnum, value)
		_node.Relation = value
	}
	return _node, _spec
}

// KnowledgeEdgeCreateBulk is the builder for creating many KnowledgeEdge entities in bulk.
type KnowledgeEdgeCreateBulk struct {
	config
	err      error
	builders []*KnowledgeEdgeCreate
}

// Save creates the KnowledgeEdge entities in the database.
func (_c *KnowledgeEdgeCreateBulk) Save(ctx context.Context) ([]*KnowledgeEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeEdgeMutation)
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
func (_c *KnowledgeEdgeCreateBulk) SaveX(ctx context.Context) []*KnowledgeEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
