package knowledge

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/tutorloop/tutorloop/internal/store"
)

// Graph is a read-only view over the knowledge graph with precomputed
// indexes. It is built once per request (or per process for the CLI) from
// the store and never mutated afterwards.
type Graph struct {
	nodes       []Node
	byID        map[string]*Node
	modules     []Node              // kind=module, curriculum order
	moduleNodes map[string][]Node   // module id -> contained nodes, position order
	prereqs     map[string][]string // node id -> direct prerequisite ids (global edge table)
	dependents  map[string][]string // node id -> nodes that require it
}

// New builds a Graph from nodes and edges.
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes:       nodes,
		byID:        make(map[string]*Node, len(nodes)),
		moduleNodes: make(map[string][]Node),
		prereqs:     make(map[string][]string),
		dependents:  make(map[string][]string),
	}

	for i := range g.nodes {
		g.byID[g.nodes[i].ID] = &g.nodes[i]
	}

	for _, e := range edges {
		switch e.Relation {
		case RelationContains:
			if n, ok := g.byID[e.Target]; ok {
				g.moduleNodes[e.Source] = append(g.moduleNodes[e.Source], *n)
			}
		case RelationPrerequisite:
			g.prereqs[e.Target] = append(g.prereqs[e.Target], e.Source)
			g.dependents[e.Source] = append(g.dependents[e.Source], e.Target)
		}
	}

	// Contained nodes in authored in-module order.
	for id := range g.moduleNodes {
		ns := g.moduleNodes[id]
		sort.Slice(ns, func(i, j int) bool {
			if ns[i].Position != ns[j].Position {
				return ns[i].Position < ns[j].Position
			}
			return ns[i].ID < ns[j].ID
		})
		g.moduleNodes[id] = ns
	}

	// Deterministic prerequisite iteration.
	for id := range g.prereqs {
		sort.Strings(g.prereqs[id])
	}
	for id := range g.dependents {
		sort.Strings(g.dependents[id])
	}

	// Modules in curriculum order.
	for i := range g.nodes {
		if g.nodes[i].Kind == KindModule {
			g.modules = append(g.modules, g.nodes[i])
		}
	}
	sort.Slice(g.modules, func(i, j int) bool {
		if g.modules[i].Position != g.modules[j].Position {
			return g.modules[i].Position < g.modules[j].Position
		}
		return g.modules[i].ID < g.modules[j].ID
	})

	return g
}

// Load reads the full graph from the store and builds the in-memory view.
func Load(ctx context.Context, repo store.GraphRepo) (*Graph, error) {
	nodeRows, err := repo.Nodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load nodes: %w", err)
	}
	edgeRows, err := repo.Edges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}

	nodes := make([]Node, len(nodeRows))
	for i, r := range nodeRows {
		nodes[i] = Node{
			ID:         r.NodeID,
			Name:       r.Name,
			Difficulty: r.Difficulty,
			Level:      r.Level,
			Summary:    r.Summary,
			Kind:       Kind(r.Kind),
			Position:   r.Position,
		}
	}
	edges := make([]Edge, len(edgeRows))
	for i, r := range edgeRows {
		edges[i] = Edge{
			Source:   r.SourceID,
			Target:   r.TargetID,
			Relation: Relation(r.Relation),
		}
	}

	return New(nodes, edges), nil
}

// Node returns a node by ID, or an error if not found.
func (g *Graph) Node(id string) (Node, error) {
	n, ok := g.byID[id]
	if !ok {
		return Node{}, fmt.Errorf("knowledge node not found: %q", id)
	}
	return *n, nil
}

// Modules returns all module nodes in curriculum order.
func (g *Graph) Modules() []Node {
	return slices.Clone(g.modules)
}

// ModuleNodes returns the nodes a module contains, in authored order.
func (g *Graph) ModuleNodes(moduleID string) []Node {
	return slices.Clone(g.moduleNodes[moduleID])
}

// Prerequisites returns the direct prerequisite ids for a node, drawn from
// the global edge table (not filtered to any module).
func (g *Graph) Prerequisites(nodeID string) []string {
	return slices.Clone(g.prereqs[nodeID])
}

// Dependents returns the ids of nodes that directly require the given node.
func (g *Graph) Dependents(nodeID string) []string {
	return slices.Clone(g.dependents[nodeID])
}

// IsSatisfied reports whether every prerequisite of nodeID is in the
// mastered set. A node with no prerequisites is trivially satisfied.
func (g *Graph) IsSatisfied(nodeID string, mastered map[string]bool) bool {
	for _, p := range g.prereqs[nodeID] {
		if !mastered[p] {
			return false
		}
	}
	return true
}

// MissingPrerequisites returns the prerequisites of nodeID not in the
// mastered set.
func (g *Graph) MissingPrerequisites(nodeID string, mastered map[string]bool) []string {
	var missing []string
	for _, p := range g.prereqs[nodeID] {
		if !mastered[p] {
			missing = append(missing, p)
		}
	}
	return missing
}
