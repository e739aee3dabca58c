package mission

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/tutorloop/tutorloop/internal/discovery"
	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/mastery"
	"github.com/tutorloop/tutorloop/internal/scoring"
	"github.com/tutorloop/tutorloop/internal/sequencer"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/wrongbook"
)

type fakeMasteryRepo struct {
	scores map[string]float64
}

func (f *fakeMasteryRepo) Score(_ context.Context, userID, nodeID string) (float64, bool, error) {
	s, ok := f.scores[userID+"|"+nodeID]
	return s, ok, nil
}

func (f *fakeMasteryRepo) Upsert(_ context.Context, userID, nodeID string, score float64) error {
	f.scores[userID+"|"+nodeID] = score
	return nil
}

func (f *fakeMasteryRepo) ForUser(_ context.Context, userID string) (map[string]float64, error) {
	out := make(map[string]float64)
	prefix := userID + "|"
	for k, v := range f.scores {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out[k[len(prefix):]] = v
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	rows []store.QuestionRow
}

func (f *fakeQuestionRepo) Get(_ context.Context, id string) (*store.QuestionRow, error) {
	for _, q := range f.rows {
		if q.QuestionID == id {
			return &q, nil
		}
	}
	return nil, fmt.Errorf("question %q: %w", id, store.ErrNotFound)
}

func (f *fakeQuestionRepo) ByNode(_ context.Context, nodeID string) ([]store.QuestionRow, error) {
	var out []store.QuestionRow
	for _, q := range f.rows {
		for _, n := range q.NodeIDs {
			if n == nodeID {
				out = append(out, q)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Save(_ context.Context, _ store.QuestionRow) error {
	return nil
}

type fakeWrongAnswerRepo struct {
	rows []store.WrongAnswerRow
}

func (f *fakeWrongAnswerRepo) Get(_ context.Context, _, _ string) (*store.WrongAnswerRow, error) {
	return nil, nil
}

func (f *fakeWrongAnswerRepo) RecordMiss(_ context.Context, _, _ string, _ time.Time) error {
	return nil
}

func (f *fakeWrongAnswerRepo) SetStatus(_ context.Context, _, _, _ string) error {
	return nil
}

func (f *fakeWrongAnswerRepo) Unresolved(_ context.Context, _ string) ([]store.WrongAnswerRow, error) {
	return f.rows, nil
}

type fixture struct {
	packager *Packager
	mastery  *fakeMasteryRepo
	wrong    *fakeWrongAnswerRepo
}

// newFixture wires the pipeline over a one-module curriculum:
// arithmetic contains fractions (with summary) and decimals, decimals
// requires fractions.
func newFixture(t *testing.T, provider llm.Provider) *fixture {
	t.Helper()

	graph := knowledge.New(
		[]knowledge.Node{
			{ID: "arith", Name: "arithmetic", Kind: knowledge.KindModule, Position: 0},
			{ID: "frac", Name: "fractions", Difficulty: 0.4, Summary: "A fraction names part of a whole.", Kind: knowledge.KindNode, Position: 0},
			{ID: "dec", Name: "decimals", Difficulty: 0.6, Kind: knowledge.KindNode, Position: 1},
		},
		[]knowledge.Edge{
			{Source: "arith", Target: "frac", Relation: knowledge.RelationContains},
			{Source: "arith", Target: "dec", Relation: knowledge.RelationContains},
			{Source: "frac", Target: "dec", Relation: knowledge.RelationPrerequisite},
		},
	)

	mrepo := &fakeMasteryRepo{scores: make(map[string]float64)}
	tracker := mastery.NewTracker(mrepo, nil)

	questions := &fakeQuestionRepo{rows: []store.QuestionRow{
		{QuestionID: "q-frac-hard", Text: "Simplify 18/24.", Difficulty: 0.7, NodeIDs: []string{"frac"}},
		{QuestionID: "q-frac-easy", Text: "What is 1/2 of 4?", Difficulty: 0.2, NodeIDs: []string{"frac"}},
		{QuestionID: "q-frac-mid", Text: "Which is larger, 2/3 or 3/5?", Difficulty: 0.5, NodeIDs: []string{"frac"}},
		{QuestionID: "q-dec-1", Text: "Write 3/10 as a decimal.", Difficulty: 0.3, NodeIDs: []string{"dec"}},
	}}

	wrepo := &fakeWrongAnswerRepo{}

	return &fixture{
		packager: New(
			sequencer.New(graph, tracker, nil),
			discovery.New(graph, tracker, nil),
			scoring.New(provider, nil, tracker, graph, nil),
			graph,
			questions,
			wrongbook.NewLedger(wrepo, nil),
			nil,
		),
		mastery: mrepo,
		wrong:   wrepo,
	}
}

func judgeScores(t *testing.T, scores map[string]float64) llm.MockResponse {
	t.Helper()
	type entry struct {
		NodeName         string  `json:"node_name"`
		SuitabilityScore float64 `json:"suitability_score"`
	}
	var entries []entry
	for name, s := range scores {
		entries = append(entries, entry{NodeName: name, SuitabilityScore: s})
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal judge scores: %v", err)
	}
	return llm.MockResponse{Content: raw}
}

func TestNewKnowledgeMission(t *testing.T) {
	provider := llm.NewMockProvider(judgeScores(t, map[string]float64{"fractions": 0.9}))
	fx := newFixture(t, provider)

	m, err := fx.packager.NewKnowledge(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Kind != KindNewKnowledge {
		t.Fatalf("expected new-knowledge mission, got %s", m.Kind)
	}
	if m.Target == nil || m.Target.ID != "frac" {
		t.Fatalf("expected fractions target, got %+v", m.Target)
	}
	if m.ID == "" {
		t.Error("expected a mission id")
	}

	// Concept review leads because fractions has a summary, then practice
	// in ascending difficulty.
	if m.Steps[0].Kind != StepConceptReview {
		t.Fatalf("expected concept review first, got %s", m.Steps[0].Kind)
	}
	wantOrder := []string{"q-frac-easy", "q-frac-mid", "q-frac-hard"}
	practice := m.Steps[1:]
	if len(practice) != len(wantOrder) {
		t.Fatalf("expected %d practice steps, got %d", len(wantOrder), len(practice))
	}
	for i, id := range wantOrder {
		if practice[i].QuestionID != id {
			t.Errorf("step %d: expected %s, got %s", i, id, practice[i].QuestionID)
		}
		if practice[i].Kind != StepPractice {
			t.Errorf("step %d: expected practice kind", i)
		}
	}
}

func TestNewKnowledgeCurriculumComplete(t *testing.T) {
	fx := newFixture(t, llm.NewMockProvider())
	for _, node := range []string{"frac", "dec"} {
		fx.mastery.scores["u1|"+node] = 0.95
	}

	m, err := fx.packager.NewKnowledge(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindComplete {
		t.Fatalf("expected complete mission, got %s", m.Kind)
	}
	if m.Target != nil || len(m.Steps) != 0 {
		t.Error("complete mission should have no target and no steps")
	}
}

func TestNewKnowledgeJudgeDownStillRecommends(t *testing.T) {
	// Empty mock queue means every judge call fails; scoring falls back
	// to tier defaults and the pipeline still produces a mission.
	fx := newFixture(t, llm.NewMockProvider())

	m, err := fx.packager.NewKnowledge(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindNewKnowledge {
		t.Fatalf("expected new-knowledge mission, got %s", m.Kind)
	}
	if m.Target.ID != "frac" {
		t.Fatalf("expected one-hop fractions to win on defaults, got %s", m.Target.ID)
	}
}

func TestWeakPointMission(t *testing.T) {
	fx := newFixture(t, llm.NewMockProvider())

	m, err := fx.packager.WeakPoint(context.Background(), "u1", "frac", Band{Min: 0.0, Max: 0.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Kind != KindWeakPoint {
		t.Fatalf("expected weak-point mission, got %s", m.Kind)
	}
	if m.Target.ID != "frac" {
		t.Fatalf("expected fractions target, got %s", m.Target.ID)
	}

	// Band excludes q-frac-hard (0.7); in-band questions come ascending,
	// then the out-of-band question arrives as a fresh step.
	ids := make([]string, len(m.Steps))
	for i, s := range m.Steps {
		ids[i] = s.QuestionID
	}
	want := []string{"q-frac-easy", "q-frac-mid", "q-frac-hard"}
	if len(ids) != len(want) {
		t.Fatalf("expected steps %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected steps %v, got %v", want, ids)
		}
	}
}

func TestWeakPointPrependsWrongReview(t *testing.T) {
	fx := newFixture(t, llm.NewMockProvider())
	fx.wrong.rows = []store.WrongAnswerRow{
		{UserID: "u1", QuestionID: "q-dec-1", RepeatCount: 2, Status: "unmastered"},
	}

	m, err := fx.packager.WeakPoint(context.Background(), "u1", "frac", Band{Min: 0.0, Max: 0.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Steps[0].Kind != StepWrongReview {
		t.Fatalf("expected wrong-review first, got %s", m.Steps[0].Kind)
	}
	if m.Steps[0].QuestionID != "q-dec-1" {
		t.Fatalf("expected review of q-dec-1, got %s", m.Steps[0].QuestionID)
	}
}

func TestWeakPointSkipsReviewOfDeletedQuestion(t *testing.T) {
	fx := newFixture(t, llm.NewMockProvider())
	fx.wrong.rows = []store.WrongAnswerRow{
		{UserID: "u1", QuestionID: "q-gone", RepeatCount: 1, Status: "unmastered"},
	}

	m, err := fx.packager.WeakPoint(context.Background(), "u1", "frac", Band{Min: 0.0, Max: 0.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The ledger entry references a question the bank no longer has; the
	// review step is dropped and practice steps still come through.
	if len(m.Steps) == 0 {
		t.Fatal("expected practice steps despite the stale ledger entry")
	}
	for _, s := range m.Steps {
		if s.Kind == StepWrongReview {
			t.Fatalf("unexpected review step for deleted question: %+v", s)
		}
	}
}

func TestWeakPointNoQuestionsInBand(t *testing.T) {
	fx := newFixture(t, llm.NewMockProvider())

	// Decimals has one question at 0.3; an impossible band plus a cap of
	// fresh steps still finds it as fresh practice, so target a node with
	// no questions at all via an empty ledger and tight band on dec.
	m, err := fx.packager.WeakPoint(context.Background(), "u1", "dec", Band{Min: 0.9, Max: 1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fresh steps outside the band still rescue the mission.
	if m.Kind != KindWeakPoint {
		t.Fatalf("expected weak-point mission with fresh steps, got %s", m.Kind)
	}
	if m.Steps[0].QuestionID != "q-dec-1" {
		t.Fatalf("expected q-dec-1 fresh step, got %s", m.Steps[0].QuestionID)
	}
}

func TestWeakPointNoContentAtAll(t *testing.T) {
	fx := newFixture(t, llm.NewMockProvider())

	_, err := fx.packager.WeakPoint(context.Background(), "u1", "missing", Band{Min: 0, Max: 1})
	if err == nil {
		t.Fatal("expected error for unknown node")
	}
}

func TestWeakPointEmptyMission(t *testing.T) {
	provider := llm.NewMockProvider()
	graph := knowledge.New(
		[]knowledge.Node{
			{ID: "geo", Name: "geometry", Kind: knowledge.KindModule},
			{ID: "angles", Name: "angles", Difficulty: 0.5, Kind: knowledge.KindNode},
		},
		[]knowledge.Edge{
			{Source: "geo", Target: "angles", Relation: knowledge.RelationContains},
		},
	)
	mrepo := &fakeMasteryRepo{scores: make(map[string]float64)}
	tracker := mastery.NewTracker(mrepo, nil)

	p := New(
		sequencer.New(graph, tracker, nil),
		discovery.New(graph, tracker, nil),
		scoring.New(provider, nil, tracker, graph, nil),
		graph,
		&fakeQuestionRepo{},
		wrongbook.NewLedger(&fakeWrongAnswerRepo{}, nil),
		nil,
	)

	m, err := p.WeakPoint(context.Background(), "u1", "angles", Band{Min: 0, Max: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != KindEmpty {
		t.Fatalf("expected empty mission, got %s", m.Kind)
	}
	if m.Rationale == "" {
		t.Error("empty mission should explain itself")
	}
}
