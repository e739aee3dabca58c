package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tutorloop/tutorloop/internal/discovery"
	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/mastery"
	"github.com/tutorloop/tutorloop/internal/predictor"
)

func cand(id, name string, tier discovery.Tier) discovery.Candidate {
	return discovery.Candidate{
		Node:      knowledge.Node{ID: id, Name: name, Difficulty: 0.5},
		Tier:      tier,
		HopWeight: tier.Weight(),
	}
}

func judgeResponse(t *testing.T, entries []suitabilityEntry) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal judge response: %v", err)
	}
	return llm.MockResponse{Content: raw}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSelectPrefersHighestComposite(t *testing.T) {
	mock := llm.NewMockProvider(judgeResponse(t, []suitabilityEntry{
		{NodeName: "addition", SuitabilityScore: 0.9},
		{NodeName: "subtraction", SuitabilityScore: 0.2},
	}))
	s := New(mock, nil, nil, nil, nil)

	cands := []discovery.Candidate{
		cand("add", "addition", discovery.TierOneHop),
		cand("sub", "subtraction", discovery.TierOneHop),
	}

	best, err := s.Select(context.Background(), "u1", "arithmetic", cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best == nil || best.Candidate.Node.ID != "add" {
		t.Fatalf("expected addition to win, got %+v", best)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected a single batch judge call, got %d", mock.CallCount())
	}
}

func TestSelectEmptyCandidates(t *testing.T) {
	s := New(llm.NewMockProvider(), nil, nil, nil, nil)
	best, err := s.Select(context.Background(), "u1", "arithmetic", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best != nil {
		t.Fatalf("expected nil selection, got %+v", best)
	}
}

func TestJudgeFailureUsesTierDefaults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := New(mock, nil, nil, nil, nil)

	cands := []discovery.Candidate{
		cand("add", "addition", discovery.TierOneHop),
		cand("alg", "algebra", discovery.TierFallback),
	}

	scored, err := s.Rank(context.Background(), "u1", "arithmetic", cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(scored[0].Suitability, defaultSuitability) {
		t.Fatalf("expected one-hop default %.2f, got %f", defaultSuitability, scored[0].Suitability)
	}
	if !approx(scored[1].Suitability, defaultFallbackSuitability) {
		t.Fatalf("expected fallback default %.2f, got %f", defaultFallbackSuitability, scored[1].Suitability)
	}
}

func TestJudgeOmittedCandidateGetsDefault(t *testing.T) {
	mock := llm.NewMockProvider(judgeResponse(t, []suitabilityEntry{
		{NodeName: "addition", SuitabilityScore: 0.9},
	}))
	s := New(mock, nil, nil, nil, nil)

	cands := []discovery.Candidate{
		cand("add", "addition", discovery.TierOneHop),
		cand("sub", "subtraction", discovery.TierOneHop),
	}

	scored, err := s.Rank(context.Background(), "u1", "arithmetic", cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(scored[1].Suitability, defaultSuitability) {
		t.Fatalf("expected omitted candidate to keep default, got %f", scored[1].Suitability)
	}
}

func TestJudgeUnknownNameIgnored(t *testing.T) {
	mock := llm.NewMockProvider(judgeResponse(t, []suitabilityEntry{
		{NodeName: "addition", SuitabilityScore: 0.9},
		{NodeName: "made-up-node", SuitabilityScore: 1.0},
	}))
	s := New(mock, nil, nil, nil, nil)

	cands := []discovery.Candidate{cand("add", "addition", discovery.TierOneHop)}

	scored, err := s.Rank(context.Background(), "u1", "arithmetic", cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scored) != 1 {
		t.Fatalf("expected 1 scored candidate, got %d", len(scored))
	}
	if !approx(scored[0].Suitability, 0.9) {
		t.Fatalf("expected 0.9, got %f", scored[0].Suitability)
	}
}

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

func TestJudgeRequestCarriesMasteredNames(t *testing.T) {
	graph := knowledge.New(
		[]knowledge.Node{
			{ID: "add", Name: "addition"},
			{ID: "sub", Name: "subtraction"},
			{ID: "mul", Name: "multiplication"},
		},
		nil,
	)
	tracker := mastery.NewTracker(&fakeMasteryRepo{scores: map[string]float64{
		"u1|add": 0.9,
		"u1|sub": 0.85,
		"u1|mul": 0.4,
	}}, nil)

	mock := llm.NewMockProvider(judgeResponse(t, []suitabilityEntry{
		{NodeName: "multiplication", SuitabilityScore: 0.8},
	}))
	s := New(mock, nil, tracker, graph, nil)

	_, err := s.Rank(context.Background(), "u1", "arithmetic",
		[]discovery.Candidate{cand("mul", "multiplication", discovery.TierOneHop)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Already mastered: addition, subtraction") {
		t.Errorf("judge request missing mastered names:\n%s", msg)
	}
	if strings.Contains(msg, "Already mastered: addition, multiplication") {
		t.Errorf("unmastered node leaked into mastered list:\n%s", msg)
	}
}

func TestDuplicateDisplayNamesAllScored(t *testing.T) {
	mock := llm.NewMockProvider(judgeResponse(t, []suitabilityEntry{
		{NodeName: "ratios", SuitabilityScore: 0.9},
	}))
	s := New(mock, nil, nil, nil, nil)

	cands := []discovery.Candidate{
		cand("ratio-a", "ratios", discovery.TierOneHop),
		cand("ratio-b", "ratios", discovery.TierTwoHop),
	}

	scored, err := s.Rank(context.Background(), "u1", "arithmetic", cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, sc := range scored {
		if !approx(sc.Suitability, 0.9) {
			t.Errorf("candidate %d: suitability = %f, want judged 0.9", i, sc.Suitability)
		}
	}
}

func TestPredictorSignalFusedIntoComposite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]float64{"probability": 0.6})
	}))
	defer srv.Close()

	mock := llm.NewMockProvider(judgeResponse(t, []suitabilityEntry{
		{NodeName: "addition", SuitabilityScore: 0.9},
	}))
	s := New(mock, predictor.New(srv.URL), nil, nil, nil)

	scored, err := s.Rank(context.Background(), "u1", "arithmetic",
		[]discovery.Candidate{cand("add", "addition", discovery.TierOneHop)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 0.33*0.6 + 0.33*discovery.WeightOneHop + 0.33*0.9
	if !approx(scored[0].Composite, want) {
		t.Fatalf("expected composite %f, got %f", want, scored[0].Composite)
	}
}

func TestAllPredictorFailuresStillSelect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	mock := llm.NewMockProvider(judgeResponse(t, []suitabilityEntry{
		{NodeName: "addition", SuitabilityScore: 0.8},
		{NodeName: "subtraction", SuitabilityScore: 0.4},
	}))
	s := New(mock, predictor.New(srv.URL), nil, nil, nil)

	cands := []discovery.Candidate{
		cand("add", "addition", discovery.TierOneHop),
		cand("sub", "subtraction", discovery.TierOneHop),
	}

	best, err := s.Select(context.Background(), "u1", "arithmetic", cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best == nil {
		t.Fatal("expected a selection despite predictor outage")
	}
	if best.Candidate.Node.ID != "add" {
		t.Fatalf("expected addition, got %s", best.Candidate.Node.ID)
	}
	if best.PredictorScore != 0 {
		t.Fatalf("expected predictor score 0 on failure, got %f", best.PredictorScore)
	}
}

func TestTieBreakFirstEncountered(t *testing.T) {
	mock := llm.NewMockProvider(judgeResponse(t, []suitabilityEntry{
		{NodeName: "addition", SuitabilityScore: 0.5},
		{NodeName: "subtraction", SuitabilityScore: 0.5},
	}))
	s := New(mock, nil, nil, nil, nil)

	cands := []discovery.Candidate{
		cand("add", "addition", discovery.TierOneHop),
		cand("sub", "subtraction", discovery.TierOneHop),
	}

	best, err := s.Select(context.Background(), "u1", "arithmetic", cands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best.Candidate.Node.ID != "add" {
		t.Fatalf("expected first candidate to win tie, got %s", best.Candidate.Node.ID)
	}
}
