package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks the graph for structural problems that curriculum
// authoring should fix: dangling edge endpoints, contains edges that don't
// run module -> node, and modules containing other modules.
//
// Prerequisite cycles are deliberately not an error here. The discovery
// algorithm tolerates them with a fallback tier; CyclicNodes exists so the
// seed command can warn about them.
func Validate(nodes []Node, edges []Edge) error {
	byID := make(map[string]Kind, len(nodes))
	for _, n := range nodes {
		if _, dup := byID[n.ID]; dup {
			return fmt.Errorf("duplicate node id: %q", n.ID)
		}
		byID[n.ID] = n.Kind
	}

	var problems []string
	for _, e := range edges {
		srcKind, srcOK := byID[e.Source]
		tgtKind, tgtOK := byID[e.Target]
		if !srcOK {
			problems = append(problems, fmt.Sprintf("edge %s->%s: unknown source", e.Source, e.Target))
			continue
		}
		if !tgtOK {
			problems = append(problems, fmt.Sprintf("edge %s->%s: unknown target", e.Source, e.Target))
			continue
		}

		switch e.Relation {
		case RelationContains:
			if srcKind != KindModule {
				problems = append(problems, fmt.Sprintf("contains edge %s->%s: source is not a module", e.Source, e.Target))
			}
			if tgtKind != KindNode {
				problems = append(problems, fmt.Sprintf("contains edge %s->%s: target is not an ordinary node", e.Source, e.Target))
			}
		case RelationPrerequisite:
			if srcKind == KindModule || tgtKind == KindModule {
				problems = append(problems, fmt.Sprintf("prerequisite edge %s->%s: modules cannot be prerequisites", e.Source, e.Target))
			}
		default:
			problems = append(problems, fmt.Sprintf("edge %s->%s: unknown relation %q", e.Source, e.Target, e.Relation))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid knowledge graph:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// CyclicNodes returns the ids of nodes that participate in at least one
// prerequisite cycle, found as the leftover of a Kahn-style peel.
func (g *Graph) CyclicNodes() []string {
	inDegree := make(map[string]int, len(g.nodes))
	for i := range g.nodes {
		if g.nodes[i].Kind != KindNode {
			continue
		}
		inDegree[g.nodes[i].ID] = len(g.prereqs[g.nodes[i].ID])
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	removed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		removed++
		for _, dep := range g.dependents[id] {
			if _, tracked := inDegree[dep]; !tracked {
				continue
			}
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if removed == len(inDegree) {
		return nil
	}

	var cyclic []string
	for id, deg := range inDegree {
		if deg > 0 {
			cyclic = append(cyclic, id)
		}
	}
	sort.Strings(cyclic)
	return cyclic
}
