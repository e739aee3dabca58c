// Package discovery finds the learnable nodes of a module for a user given
// partial prerequisite satisfaction. Preference order: one-hop candidates
// (all prerequisites mastered), two-hop candidates (one missing link that is
// itself one-hop), then a fallback pick that tolerates prerequisite cycles.
package discovery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/mastery"
)

// Discoverer enumerates next-node candidates.
type Discoverer struct {
	graph   *knowledge.Graph
	tracker *mastery.Tracker
	log     *slog.Logger
}

// New creates a discoverer. A nil logger falls back to slog.Default().
func New(graph *knowledge.Graph, tracker *mastery.Tracker, log *slog.Logger) *Discoverer {
	if log == nil {
		log = slog.Default()
	}
	return &Discoverer{graph: graph, tracker: tracker, log: log}
}

// Discover returns all candidates for the user within the module, in a
// stable order: one-hop candidates first, then two-hop, each in module
// order, or a single fallback candidate when neither tier is reachable.
// An empty result means there is nothing left to learn in the module; the
// caller turns that into a "module complete" outcome.
func (d *Discoverer) Discover(ctx context.Context, userID string, module knowledge.Node) ([]Candidate, error) {
	nodes := d.graph.ModuleNodes(module.ID)
	if len(nodes) == 0 {
		return nil, nil
	}

	mastered, err := d.tracker.MasteredSet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load mastered set: %w", err)
	}

	var unmastered []knowledge.Node
	for _, n := range nodes {
		if !mastered[n.ID] {
			unmastered = append(unmastered, n)
		}
	}
	if len(unmastered) == 0 {
		return nil, nil
	}

	// Tier 1: every prerequisite (from the global edge table) is mastered.
	var candidates []Candidate
	oneHop := make(map[string]bool)
	for _, n := range unmastered {
		if d.graph.IsSatisfied(n.ID, mastered) {
			oneHop[n.ID] = true
			candidates = append(candidates, Candidate{
				Node:      n,
				Tier:      TierOneHop,
				HopWeight: WeightOneHop,
			})
		}
	}

	// Tier 2: exactly one prerequisite missing, and that prerequisite is a
	// one-hop candidate found above. A node missing two links, or missing
	// one link that is itself blocked, stays out.
	for _, n := range unmastered {
		if oneHop[n.ID] {
			continue
		}
		missing := d.graph.MissingPrerequisites(n.ID, mastered)
		if len(missing) == 1 && oneHop[missing[0]] {
			candidates = append(candidates, Candidate{
				Node:      n,
				Tier:      TierTwoHop,
				HopWeight: WeightTwoHop,
			})
		}
	}

	if len(candidates) > 0 {
		d.log.Debug("candidates discovered",
			"user_id", userID,
			"module_id", module.ID,
			"count", len(candidates),
		)
		return candidates, nil
	}

	// Fallback: nothing is reachable even though unmastered nodes remain,
	// which happens when the module's remaining nodes sit on a prerequisite
	// cycle or depend on blocked outside nodes. Offer the first unmastered
	// node in module order and mark the dependency as unresolved.
	first := unmastered[0]
	d.log.Warn("no reachable candidates, using fallback",
		"user_id", userID,
		"module_id", module.ID,
		"node_id", first.ID,
	)
	return []Candidate{{
		Node:       first,
		Tier:       TierFallback,
		HopWeight:  WeightFallback,
		Unresolved: true,
	}}, nil
}
