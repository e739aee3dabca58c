// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/knowledgenode"
)

// KnowledgeNodeCreate is the builder for creating a KnowledgeNode entity.
type KnowledgeNodeCreate struct {
	config
	mutation *KnowledgeNodeMutation
	hooks    []Hook
}

// SetNodeID sets the "node_id" field.
func (_c *KnowledgeNodeCreate) SetNodeID(v string) *KnowledgeNodeCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *KnowledgeNodeCreate) SetName(v string) *KnowledgeNodeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *KnowledgeNodeCreate) SetDifficulty(v float64) *KnowledgeNodeCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableDifficulty(v *float64) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *KnowledgeNodeCreate) SetLevel(v int) *KnowledgeNodeCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableLevel(v *int) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *KnowledgeNodeCreate) SetSummary(v string) *KnowledgeNodeCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableSummary(v *string) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *KnowledgeNodeCreate) SetKind(v knowledgenode.Kind) *KnowledgeNodeCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *KnowledgeNodeCreate) SetPosition(v int) *KnowledgeNodeCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillablePosition(v *int) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_c *KnowledgeNodeCreate) Mutation() *KnowledgeNodeMutation {
	return _c.mutation
}

// Save creates the KnowledgeNode in the database.
func (_c *KnowledgeNodeCreate) Save(ctx context.Context) (*KnowledgeNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeNodeCreate) SaveX(ctx context.Context) *KnowledgeNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeNodeCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := knowledgenode.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := knowledgenode.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := knowledgenode.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeNodeCreate) check() error {
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "KnowledgeNode.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := knowledgenode.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "KnowledgeNode.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := knowledgenode.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "KnowledgeNode.difficulty"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "KnowledgeNode.level"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "KnowledgeNode.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := knowledgenode.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "KnowledgeNode.position"`)}
	}
	return nil
}

func (_c *KnowledgeNodeCreate) sqlSave(ctx context.Context) (*KnowledgeNode, error) {
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

func (_c *KnowledgeNodeCreate) createSpec() (*KnowledgeNode, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgenode.Table, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(knowledgenode.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(knowledgenode.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(knowledgenode.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(knowledgenode.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(knowledgenode.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(knowledgenode.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(knowledgenode.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	return _node, _spec
}

// KnowledgeNodeCreateBulk is the builder for creating many KnowledgeNode entities in bulk.
type KnowledgeNodeCreateBulk struct {
	config
	err      error
	builders []*KnowledgeNodeCreate
}

// Save creates the KnowledgeNode entities in the database.
func (_c *KnowledgeNodeCreateBulk) Save(ctx context.Context) ([]*KnowledgeNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeNodeMutation)
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
func (_c *KnowledgeNodeCreateBulk) SaveX(ctx context.Context) []*KnowledgeNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
