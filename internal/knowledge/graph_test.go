package knowledge

import (
	"testing"
)

func testGraph() *Graph {
	nodes := []Node{
		{ID: "m1", Name: "Fractions", Kind: KindModule, Position: 0},
		{ID: "m2", Name: "Decimals", Kind: KindModule, Position: 1},
		{ID: "a", Name: "Halves", Kind: KindNode, Position: 0},
		{ID: "b", Name: "Quarters", Kind: KindNode, Position: 1},
		{ID: "c", Name: "Tenths", Kind: KindNode, Position: 0},
	}
	edges := []Edge{
		{Source: "m1", Target: "a", Relation: RelationContains},
		{Source: "m1", Target: "b", Relation: RelationContains},
		{Source: "m2", Target: "c", Relation: RelationContains},
		{Source: "a", Target: "b", Relation: RelationPrerequisite},
		{Source: "b", Target: "c", Relation: RelationPrerequisite},
	}
	return New(nodes, edges)
}

func TestModulesInCurriculumOrder(t *testing.T) {
	g := testGraph()
	mods := g.Modules()
	if len(mods) != 2 {
		t.Fatalf("got %d modules, want 2", len(mods))
	}
	if mods[0].ID != "m1" || mods[1].ID != "m2" {
		t.Errorf("module order = [%s %s], want [m1 m2]", mods[0].ID, mods[1].ID)
	}
}

func TestModuleNodesOrdered(t *testing.T) {
	g := testGraph()
	ns := g.ModuleNodes("m1")
	if len(ns) != 2 {
		t.Fatalf("got %d nodes in m1, want 2", len(ns))
	}
	if ns[0].ID != "a" || ns[1].ID != "b" {
		t.Errorf("m1 nodes = [%s %s], want [a b]", ns[0].ID, ns[1].ID)
	}

	if got := g.ModuleNodes("empty-module"); len(got) != 0 {
		t.Errorf("unknown module nodes = %v, want empty", got)
	}
}

func TestPrerequisitesGlobal(t *testing.T) {
	g := testGraph()

	// c lives in m2 but its prerequisite b is in m1. The predecessor list
	// comes from the global edge table, unfiltered by module.
	got := g.Prerequisites("c")
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("prereqs(c) = %v, want [b]", got)
	}

	if got := g.Prerequisites("a"); len(got) != 0 {
		t.Errorf("prereqs(a) = %v, want empty", got)
	}
}

func TestIsSatisfied(t *testing.T) {
	g := testGraph()

	tests := []struct {
		node     string
		mastered map[string]bool
		want     bool
	}{
		{"a", nil, true}, // no prerequisites
		{"b", nil, false},
		{"b", map[string]bool{"a": true}, true},
		{"c", map[string]bool{"a": true}, false},
		{"c", map[string]bool{"a": true, "b": true}, true},
	}
	for _, tt := range tests {
		if got := g.IsSatisfied(tt.node, tt.mastered); got != tt.want {
			t.Errorf("IsSatisfied(%s, %v) = %v, want %v", tt.node, tt.mastered, got, tt.want)
		}
	}
}

func TestMissingPrerequisites(t *testing.T) {
	g := testGraph()
	got := g.MissingPrerequisites("c", map[string]bool{})
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("missing(c) = %v, want [b]", got)
	}
}

func TestNodeLookup(t *testing.T) {
	g := testGraph()
	n, err := g.Node("a")
	if err != nil {
		t.Fatalf("node(a): %v", err)
	}
	if n.Name != "Halves" {
		t.Errorf("name = %q, want Halves", n.Name)
	}
	if _, err := g.Node("nope"); err == nil {
		t.Error("expected error for unknown node")
	}
}

func TestValidateRejectsBadEdges(t *testing.T) {
	nodes := []Node{
		{ID: "m1", Kind: KindModule},
		{ID: "a", Kind: KindNode},
	}

	tests := []struct {
		name  string
		edges []Edge
	}{
		{"unknown source", []Edge{{Source: "ghost", Target: "a", Relation: RelationPrerequisite}}},
		{"unknown target", []Edge{{Source: "a", Target: "ghost", Relation: RelationPrerequisite}}},
		{"contains from node", []Edge{{Source: "a", Target: "a", Relation: RelationContains}}},
		{"module as prerequisite", []Edge{{Source: "m1", Target: "a", Relation: RelationPrerequisite}}},
	}
	for _, tt := range tests {
		if err := Validate(nodes, tt.edges); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}

	ok := []Edge{{Source: "m1", Target: "a", Relation: RelationContains}}
	if err := Validate(nodes, ok); err != nil {
		t.Errorf("valid graph rejected: %v", err)
	}
}

func TestCyclicNodesTolerated(t *testing.T) {
	nodes := []Node{
		{ID: "m1", Kind: KindModule},
		{ID: "x", Kind: KindNode},
		{ID: "y", Kind: KindNode},
		{ID: "z", Kind: KindNode},
	}
	edges := []Edge{
		{Source: "m1", Target: "x", Relation: RelationContains},
		{Source: "m1", Target: "y", Relation: RelationContains},
		{Source: "m1", Target: "z", Relation: RelationContains},
		{Source: "x", Target: "y", Relation: RelationPrerequisite},
		{Source: "y", Target: "x", Relation: RelationPrerequisite},
	}

	// Cycles pass validation; they are only reported.
	if err := Validate(nodes, edges); err != nil {
		t.Fatalf("cycle should not fail validation: %v", err)
	}

	g := New(nodes, edges)
	cyclic := g.CyclicNodes()
	if len(cyclic) != 2 {
		t.Fatalf("cyclic = %v, want [x y]", cyclic)
	}
	if cyclic[0] != "x" || cyclic[1] != "y" {
		t.Errorf("cyclic = %v, want [x y]", cyclic)
	}
}
