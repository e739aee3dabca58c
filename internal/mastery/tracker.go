package mastery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tutorloop/tutorloop/internal/store"
)

// Threshold is the mastery score at or above which a node counts as
// mastered for sequencing and discovery.
const Threshold = 0.8

// firstExposureBase is the assumed score before the first recorded outcome.
// A learner who has never seen a node reads as 0, but their first answer is
// graded from a neutral starting point.
const firstExposureBase = 0.5

// Tracker maintains per-user, per-node mastery scores from answer outcomes.
// Updates are additive deltas, so concurrent writers may under- or
// over-count; that approximation is accepted for formative assessment.
type Tracker struct {
	repo store.MasteryRepo
	log  *slog.Logger
}

// NewTracker creates a mastery tracker. A nil logger falls back to
// slog.Default().
func NewTracker(repo store.MasteryRepo, log *slog.Logger) *Tracker {
	if log == nil {
		log = slog.Default()
	}
	return &Tracker{repo: repo, log: log}
}

// Delta returns the score adjustment for one answer outcome.
// Correct answers reward harder items more (0.05..0.15); incorrect answers
// punish easier items more (-0.12..-0.02).
func Delta(difficulty float64, wasCorrect bool) float64 {
	difficulty = clamp(difficulty, 0, 1)
	if wasCorrect {
		return 0.05 + difficulty*0.10
	}
	return -(0.02 + (1-difficulty)*0.10)
}

// ApplyOutcome applies one answer outcome to the user's score for a node
// and returns the new score. It is not idempotent: callers must invoke it
// exactly once per answer event.
func (t *Tracker) ApplyOutcome(ctx context.Context, userID, nodeID string, difficulty float64, wasCorrect bool) (float64, error) {
	score, exists, err := t.repo.Score(ctx, userID, nodeID)
	if err != nil {
		return 0, fmt.Errorf("read mastery %s/%s: %w", userID, nodeID, err)
	}
	if !exists {
		score = firstExposureBase
	}

	next := clamp(score+Delta(difficulty, wasCorrect), 0, 1)

	if err := t.repo.Upsert(ctx, userID, nodeID, next); err != nil {
		return 0, fmt.Errorf("write mastery %s/%s: %w", userID, nodeID, err)
	}

	t.log.Debug("mastery updated",
		"user_id", userID,
		"node_id", nodeID,
		"correct", wasCorrect,
		"score", next,
	)
	return next, nil
}

// Score returns the user's score for a node; a missing record reads as 0.
func (t *Tracker) Score(ctx context.Context, userID, nodeID string) (float64, error) {
	score, _, err := t.repo.Score(ctx, userID, nodeID)
	if err != nil {
		return 0, fmt.Errorf("read mastery %s/%s: %w", userID, nodeID, err)
	}
	return score, nil
}

// IsMastered reports whether the user's score for a node meets Threshold.
func (t *Tracker) IsMastered(ctx context.Context, userID, nodeID string) (bool, error) {
	score, err := t.Score(ctx, userID, nodeID)
	if err != nil {
		return false, err
	}
	return score >= Threshold, nil
}

// Scores returns all of the user's recorded scores keyed by node id.
func (t *Tracker) Scores(ctx context.Context, userID string) (map[string]float64, error) {
	return t.repo.ForUser(ctx, userID)
}

// MasteredSet returns the set of node ids the user has mastered.
func (t *Tracker) MasteredSet(ctx context.Context, userID string) (map[string]bool, error) {
	scores, err := t.repo.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read mastery set for %s: %w", userID, err)
	}
	set := make(map[string]bool)
	for id, s := range scores {
		if s >= Threshold {
			set[id] = true
		}
	}
	return set, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
