package store

import (
	"context"
	"fmt"

	"github.com/tutorloop/tutorloop/ent"
	"github.com/tutorloop/tutorloop/ent/masteryrecord"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Score(ctx context.Context, userID, nodeID string) (float64, bool, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.NodeID(nodeID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup mastery %s/%s: %w", userID, nodeID, err)
	}
	return rec.Score, true, nil
}

func (r *masteryRepo) Upsert(ctx context.Context, userID, nodeID string, score float64) error {
	existing, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.NodeID(nodeID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup mastery %s/%s: %w", userID, nodeID, err)
	}

	if existing != nil {
		_, err = existing.Update().SetScore(score).Save(ctx)
		if err != nil {
			return fmt.Errorf("update mastery %s/%s: %w", userID, nodeID, err)
		}
		return nil
	}

	_, err = r.client.MasteryRecord.Create().
		SetUserID(userID).
		SetNodeID(nodeID).
		SetScore(score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create mastery %s/%s: %w", userID, nodeID, err)
	}
	return nil
}

func (r *masteryRepo) ForUser(ctx context.Context, userID string) (map[string]float64, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery for %s: %w", userID, err)
	}

	out := make(map[string]float64, len(rows))
	for _, rec := range rows {
		out[rec.NodeID] = rec.Score
	}
	return out, nil
}
