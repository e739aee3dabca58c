package discovery

import (
	"context"
	"testing"

	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/mastery"
)

// fakeMasteryRepo implements store.MasteryRepo in memory.
type fakeMasteryRepo struct {
	scores map[string]float64 // node -> score, single test user
}

func (f *fakeMasteryRepo) Score(_ context.Context, _, nodeID string) (float64, bool, error) {
	s, ok := f.scores[nodeID]
	return s, ok, nil
}

func (f *fakeMasteryRepo) Upsert(_ context.Context, _, nodeID string, score float64) error {
	f.scores[nodeID] = score
	return nil
}

func (f *fakeMasteryRepo) ForUser(_ context.Context, _ string) (map[string]float64, error) {
	out := make(map[string]float64, len(f.scores))
	for k, v := range f.scores {
		out[k] = v
	}
	return out, nil
}

func discoverer(g *knowledge.Graph, scores map[string]float64) *Discoverer {
	if scores == nil {
		scores = make(map[string]float64)
	}
	return New(g, mastery.NewTracker(&fakeMasteryRepo{scores: scores}, nil), nil)
}

// chainGraph: module m1 contains a -> b -> c (prerequisite chain).
func chainGraph() *knowledge.Graph {
	nodes := []knowledge.Node{
		{ID: "m1", Kind: knowledge.KindModule, Position: 0},
		{ID: "a", Kind: knowledge.KindNode, Position: 0},
		{ID: "b", Kind: knowledge.KindNode, Position: 1},
		{ID: "c", Kind: knowledge.KindNode, Position: 2},
	}
	edges := []knowledge.Edge{
		{Source: "m1", Target: "a", Relation: knowledge.RelationContains},
		{Source: "m1", Target: "b", Relation: knowledge.RelationContains},
		{Source: "m1", Target: "c", Relation: knowledge.RelationContains},
		{Source: "a", Target: "b", Relation: knowledge.RelationPrerequisite},
		{Source: "b", Target: "c", Relation: knowledge.RelationPrerequisite},
	}
	return knowledge.New(nodes, edges)
}

func mustModule(t *testing.T, g *knowledge.Graph, id string) knowledge.Node {
	t.Helper()
	m, err := g.Node(id)
	if err != nil {
		t.Fatalf("module %s: %v", id, err)
	}
	return m
}

func byID(cands []Candidate) map[string]Candidate {
	out := make(map[string]Candidate, len(cands))
	for _, c := range cands {
		out[c.Node.ID] = c
	}
	return out
}

func TestFreshUserOneAndTwoHop(t *testing.T) {
	g := chainGraph()
	d := discoverer(g, nil)

	cands, err := d.Discover(context.Background(), "u1", mustModule(t, g, "m1"))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	// a has no prereqs: one-hop. b misses exactly a, and a is one-hop:
	// two-hop. c misses b which is not one-hop: excluded.
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(cands), cands)
	}
	m := byID(cands)

	a, ok := m["a"]
	if !ok || a.Tier != TierOneHop || a.HopWeight != WeightOneHop {
		t.Errorf("a = %+v, want one-hop with weight 0.8", a)
	}
	b, ok := m["b"]
	if !ok || b.Tier != TierTwoHop || b.HopWeight != WeightTwoHop {
		t.Errorf("b = %+v, want two-hop with weight 0.5", b)
	}
	if _, ok := m["c"]; ok {
		t.Error("c must not be a candidate: its missing prerequisite is not one-hop")
	}
}

func TestMasteringGatewayPromotesTwoHop(t *testing.T) {
	g := chainGraph()
	d := discoverer(g, map[string]float64{"a": 0.9})

	cands, err := d.Discover(context.Background(), "u1", mustModule(t, g, "m1"))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	m := byID(cands)

	b, ok := m["b"]
	if !ok || b.Tier != TierOneHop || b.HopWeight != WeightOneHop {
		t.Errorf("b = %+v, want promoted to one-hop after a is mastered", b)
	}
	c, ok := m["c"]
	if !ok || c.Tier != TierTwoHop {
		t.Errorf("c = %+v, want two-hop now that b is one-hop", c)
	}
	if _, ok := m["a"]; ok {
		t.Error("mastered node a must not be a candidate")
	}
}

func TestStableOrderOneHopBeforeTwoHop(t *testing.T) {
	g := chainGraph()
	d := discoverer(g, nil)

	cands, _ := d.Discover(context.Background(), "u1", mustModule(t, g, "m1"))
	if cands[0].Tier != TierOneHop {
		t.Errorf("first candidate tier = %s, want one-hop first", cands[0].Tier)
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].Tier < cands[i-1].Tier {
			t.Errorf("candidates out of tier order at %d: %+v", i, cands)
		}
	}
}

func TestTwoMissingPrerequisitesExcluded(t *testing.T) {
	nodes := []knowledge.Node{
		{ID: "m1", Kind: knowledge.KindModule},
		{ID: "a", Kind: knowledge.KindNode, Position: 0},
		{ID: "b", Kind: knowledge.KindNode, Position: 1},
		{ID: "c", Kind: knowledge.KindNode, Position: 2},
	}
	edges := []knowledge.Edge{
		{Source: "m1", Target: "a", Relation: knowledge.RelationContains},
		{Source: "m1", Target: "b", Relation: knowledge.RelationContains},
		{Source: "m1", Target: "c", Relation: knowledge.RelationContains},
		{Source: "a", Target: "c", Relation: knowledge.RelationPrerequisite},
		{Source: "b", Target: "c", Relation: knowledge.RelationPrerequisite},
	}
	g := knowledge.New(nodes, edges)
	d := discoverer(g, nil)

	cands, _ := d.Discover(context.Background(), "u1", mustModule(t, g, "m1"))
	m := byID(cands)
	if _, ok := m["c"]; ok {
		t.Error("c misses two prerequisites and must not be a two-hop candidate")
	}
	if m["a"].Tier != TierOneHop || m["b"].Tier != TierOneHop {
		t.Errorf("a and b should both be one-hop: %+v", cands)
	}
}

func TestPrerequisiteCycleFallsBack(t *testing.T) {
	nodes := []knowledge.Node{
		{ID: "m1", Kind: knowledge.KindModule},
		{ID: "x", Kind: knowledge.KindNode, Position: 0},
		{ID: "y", Kind: knowledge.KindNode, Position: 1},
	}
	edges := []knowledge.Edge{
		{Source: "m1", Target: "x", Relation: knowledge.RelationContains},
		{Source: "m1", Target: "y", Relation: knowledge.RelationContains},
		{Source: "x", Target: "y", Relation: knowledge.RelationPrerequisite},
		{Source: "y", Target: "x", Relation: knowledge.RelationPrerequisite},
	}
	g := knowledge.New(nodes, edges)
	d := discoverer(g, nil)

	cands, err := d.Discover(context.Background(), "u1", mustModule(t, g, "m1"))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want exactly 1 fallback", len(cands))
	}
	fb := cands[0]
	if fb.Node.ID != "x" {
		t.Errorf("fallback = %s, want first unmastered node x", fb.Node.ID)
	}
	if fb.Tier != TierFallback || fb.HopWeight != WeightFallback || !fb.Unresolved {
		t.Errorf("fallback = %+v, want fallback tier, weight 0.3, unresolved", fb)
	}
}

func TestEmptyModuleReturnsNothing(t *testing.T) {
	nodes := []knowledge.Node{{ID: "m1", Kind: knowledge.KindModule}}
	g := knowledge.New(nodes, nil)
	d := discoverer(g, nil)

	cands, err := d.Discover(context.Background(), "u1", mustModule(t, g, "m1"))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if cands != nil {
		t.Errorf("cands = %+v, want nil for empty module", cands)
	}
}

func TestAllMasteredReturnsNothing(t *testing.T) {
	g := chainGraph()
	d := discoverer(g, map[string]float64{"a": 1, "b": 0.9, "c": 0.8})

	cands, err := d.Discover(context.Background(), "u1", mustModule(t, g, "m1"))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(cands) != 0 {
		t.Errorf("cands = %+v, want empty when module is fully mastered", cands)
	}
}

func TestOutsideModulePrerequisiteCounts(t *testing.T) {
	// b lives in m2 but requires a from m1. The prerequisite check uses the
	// global edge table, so b is blocked until a is mastered.
	nodes := []knowledge.Node{
		{ID: "m1", Kind: knowledge.KindModule, Position: 0},
		{ID: "m2", Kind: knowledge.KindModule, Position: 1},
		{ID: "a", Kind: knowledge.KindNode},
		{ID: "b", Kind: knowledge.KindNode},
	}
	edges := []knowledge.Edge{
		{Source: "m1", Target: "a", Relation: knowledge.RelationContains},
		{Source: "m2", Target: "b", Relation: knowledge.RelationContains},
		{Source: "a", Target: "b", Relation: knowledge.RelationPrerequisite},
	}
	g := knowledge.New(nodes, edges)

	d := discoverer(g, nil)
	cands, _ := d.Discover(context.Background(), "u1", mustModule(t, g, "m2"))
	if len(cands) != 1 || cands[0].Tier != TierFallback {
		t.Errorf("cands = %+v, want single fallback: a is outside m2 so b has no one-hop gateway in scope", cands)
	}

	d = discoverer(g, map[string]float64{"a": 0.95})
	cands, _ = d.Discover(context.Background(), "u1", mustModule(t, g, "m2"))
	if len(cands) != 1 || cands[0].Tier != TierOneHop {
		t.Errorf("cands = %+v, want b as one-hop once a is mastered", cands)
	}
}
