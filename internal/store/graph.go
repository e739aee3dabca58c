package store

import (
	"context"
	"fmt"

	"github.com/tutorloop/tutorloop/ent"
	"github.com/tutorloop/tutorloop/ent/knowledgeedge"
	"github.com/tutorloop/tutorloop/ent/knowledgenode"
)

type graphRepo struct {
	client *ent.Client
}

func (r *graphRepo) Nodes(ctx context.Context) ([]NodeRow, error) {
	rows, err := r.client.KnowledgeNode.Query().
		Order(ent.Asc(knowledgenode.FieldPosition), ent.Asc(knowledgenode.FieldNodeID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query knowledge nodes: %w", err)
	}

	out := make([]NodeRow, len(rows))
	for i, n := range rows {
		out[i] = NodeRow{
			NodeID:     n.NodeID,
			Name:       n.Name,
			Difficulty: n.Difficulty,
			Level:      n.Level,
			Summary:    n.Summary,
			Kind:       string(n.Kind),
			Position:   n.Position,
		}
	}
	return out, nil
}

func (r *graphRepo) Edges(ctx context.Context) ([]EdgeRow, error) {
	rows, err := r.client.KnowledgeEdge.Query().
		Order(ent.Asc(knowledgeedge.FieldSourceID), ent.Asc(knowledgeedge.FieldTargetID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query knowledge edges: %w", err)
	}

	out := make([]EdgeRow, len(rows))
	for i, e := range rows {
		out[i] = EdgeRow{
			SourceID: e.SourceID,
			TargetID: e.TargetID,
			Relation: string(e.Relation),
		}
	}
	return out, nil
}

func (r *graphRepo) SaveNode(ctx context.Context, row NodeRow) error {
	existing, err := r.client.KnowledgeNode.Query().
		Where(knowledgenode.NodeID(row.NodeID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup node %q: %w", row.NodeID, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetName(row.Name).
			SetDifficulty(row.Difficulty).
			SetLevel(row.Level).
			SetSummary(row.Summary).
			SetKind(knowledgenode.Kind(row.Kind)).
			SetPosition(row.Position).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update node %q: %w", row.NodeID, err)
		}
		return nil
	}

	_, err = r.client.KnowledgeNode.Create().
		SetNodeID(row.NodeID).
		SetName(row.Name).
		SetDifficulty(row.Difficulty).
		SetLevel(row.Level).
		SetSummary(row.Summary).
		SetKind(knowledgenode.Kind(row.Kind)).
		SetPosition(row.Position).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create node %q: %w", row.NodeID, err)
	}
	return nil
}

func (r *graphRepo) SaveEdge(ctx context.Context, row EdgeRow) error {
	exists, err := r.client.KnowledgeEdge.Query().
		Where(
			knowledgeedge.SourceID(row.SourceID),
			knowledgeedge.TargetID(row.TargetID),
			knowledgeedge.RelationEQ(knowledgeedge.Relation(row.Relation)),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("lookup edge %s->%s: %w", row.SourceID, row.TargetID, err)
	}
	if exists {
		return nil
	}

	_, err = r.client.KnowledgeEdge.Create().
		SetSourceID(row.SourceID).
		SetTargetID(row.TargetID).
		SetRelation(knowledgeedge.Relation(row.Relation)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create edge %s->%s: %w", row.SourceID, row.TargetID, err)
	}
	return nil
}
