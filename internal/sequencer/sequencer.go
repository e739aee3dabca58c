// Package sequencer decides which curriculum module a learner is currently
// working through. The curriculum is a fixed, linear module order; the
// current module is always the first whose contained nodes are not all
// mastered. Nothing is cached: completion is recomputed from mastery scores
// on every call, so a score that later drops below threshold resurfaces its
// module as current.
package sequencer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/mastery"
)

// Sequencer evaluates module completion over the knowledge graph and a
// user's mastery scores.
type Sequencer struct {
	graph   *knowledge.Graph
	tracker *mastery.Tracker
	log     *slog.Logger
}

// New creates a sequencer. A nil logger falls back to slog.Default().
func New(graph *knowledge.Graph, tracker *mastery.Tracker, log *slog.Logger) *Sequencer {
	if log == nil {
		log = slog.Default()
	}
	return &Sequencer{graph: graph, tracker: tracker, log: log}
}

// CurrentModule returns the first module in curriculum order the user has
// not completed. A nil result means every module is complete and the
// curriculum is finished. That is a terminal state, not an error.
func (s *Sequencer) CurrentModule(ctx context.Context, userID string) (*knowledge.Node, error) {
	scores, err := s.tracker.Scores(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load mastery scores: %w", err)
	}

	for _, mod := range s.graph.Modules() {
		if !s.completed(mod.ID, scores) {
			s.log.Debug("current module resolved", "user_id", userID, "module_id", mod.ID)
			return &mod, nil
		}
	}

	s.log.Debug("curriculum finished", "user_id", userID)
	return nil, nil
}

// IsCompleted reports whether every node the module contains is mastered
// for the user. A module with no contained nodes is vacuously complete.
func (s *Sequencer) IsCompleted(ctx context.Context, userID, moduleID string) (bool, error) {
	if _, err := s.graph.Node(moduleID); err != nil {
		return false, err
	}
	scores, err := s.tracker.Scores(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load mastery scores: %w", err)
	}
	return s.completed(moduleID, scores), nil
}

func (s *Sequencer) completed(moduleID string, scores map[string]float64) bool {
	for _, n := range s.graph.ModuleNodes(moduleID) {
		if scores[n.ID] < mastery.Threshold {
			return false
		}
	}
	return true
}
