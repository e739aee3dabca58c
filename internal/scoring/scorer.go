// Package scoring ranks discovered candidates by fusing three signals: the
// external predictor's mastery probability, the hop-distance weight, and a
// batch suitability judgment from the LLM. The composite score picks the
// single recommended node.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tutorloop/tutorloop/internal/discovery"
	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/mastery"
	"github.com/tutorloop/tutorloop/internal/predictor"
)

// Signal weights for the composite score. Equal by design of the fusion.
const (
	weightPredictor   = 0.33
	weightHop         = 0.33
	weightSuitability = 0.33
)

// Suitability defaults used when the judge call fails or omits a candidate.
const (
	defaultSuitability         = 0.5
	defaultFallbackSuitability = 0.3
)

const (
	judgeMaxTokens   = 1024
	judgeTemperature = 0.2
)

// Scored is a candidate with its component and composite scores.
type Scored struct {
	Candidate discovery.Candidate

	// PredictorScore is the external model's mastery probability, 0 when
	// the predictor is unconfigured or failed for this candidate.
	PredictorScore float64

	// Suitability is the LLM judge's fit score, or a tier default when
	// the judge failed.
	Suitability float64

	// Composite is the weighted fusion of all three signals.
	Composite float64
}

// Scorer ranks candidates and selects the best one.
type Scorer struct {
	provider  llm.Provider
	predictor *predictor.Client
	tracker   *mastery.Tracker
	graph     *knowledge.Graph
	log       *slog.Logger
}

// New creates a Scorer. The tracker and graph supply the judge request's
// mastered-knowledge context; a nil predictor client disables the
// predictor signal; a nil logger falls back to slog.Default().
func New(provider llm.Provider, pred *predictor.Client, tracker *mastery.Tracker,
	graph *knowledge.Graph, log *slog.Logger) *Scorer {
	if log == nil {
		log = slog.Default()
	}
	return &Scorer{provider: provider, predictor: pred, tracker: tracker, graph: graph, log: log}
}

// Rank scores every candidate and returns them in input order. The input
// order is discovery's stable tier-then-module order, which doubles as the
// tie-break order in Select.
func (s *Scorer) Rank(ctx context.Context, userID, moduleName string, cands []discovery.Candidate) ([]Scored, error) {
	if len(cands) == 0 {
		return nil, nil
	}

	suitability := s.judgeSuitability(ctx, userID, moduleName, cands)

	scored := make([]Scored, len(cands))
	for i, c := range cands {
		prob := s.predictorScore(ctx, userID, c)
		suit := suitability[c.Node.ID]

		scored[i] = Scored{
			Candidate:      c,
			PredictorScore: prob,
			Suitability:    suit,
			Composite:      weightPredictor*prob + weightHop*c.HopWeight + weightSuitability*suit,
		}
	}

	return scored, nil
}

// Select returns the highest-scoring candidate, or nil when there are no
// candidates. Ties go to the first-encountered candidate, so discovery's
// stable ordering decides.
func (s *Scorer) Select(ctx context.Context, userID, moduleName string, cands []discovery.Candidate) (*Scored, error) {
	scored, err := s.Rank(ctx, userID, moduleName, cands)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return nil, nil
	}

	best := 0
	for i := 1; i < len(scored); i++ {
		if scored[i].Composite > scored[best].Composite {
			best = i
		}
	}
	return &scored[best], nil
}

// predictorScore queries the external predictor for one candidate. Any
// failure degrades to 0 so the candidate stays in the running.
func (s *Scorer) predictorScore(ctx context.Context, userID string, c discovery.Candidate) float64 {
	if s.predictor == nil {
		return 0
	}

	prob, err := s.predictor.Probability(ctx, userID, c.Node.ID)
	if err != nil {
		s.log.Warn("predictor unavailable for candidate",
			"node", c.Node.ID, "error", err)
		return 0
	}
	return prob
}

// suitabilityEntry is one element of the judge's response array.
type suitabilityEntry struct {
	NodeName         string  `json:"node_name"`
	SuitabilityScore float64 `json:"suitability_score"`
}

// judgeSuitability makes one batch LLM call for all candidates and returns
// a node-id-to-score map. On any failure every candidate gets its tier
// default, so a judge outage never blocks a recommendation.
func (s *Scorer) judgeSuitability(ctx context.Context, userID, moduleName string, cands []discovery.Candidate) map[string]float64 {
	scores := make(map[string]float64, len(cands))
	idsByName := make(map[string][]string, len(cands))
	for _, c := range cands {
		scores[c.Node.ID] = tierDefault(c.Tier)
		idsByName[c.Node.Name] = append(idsByName[c.Node.Name], c.Node.ID)
	}

	entries, err := s.callJudge(ctx, userID, moduleName, cands)
	if err != nil {
		s.log.Warn("suitability judge failed, using tier defaults", "error", err)
		return scores
	}

	// The judge answers by display name. When two candidates share a name
	// the judged score applies to both; unknown names are ignored.
	for _, e := range entries {
		for _, id := range idsByName[e.NodeName] {
			scores[id] = clamp01(e.SuitabilityScore)
		}
	}
	return scores
}

// masteredNames resolves the user's mastered node ids to display names for
// the judge request. Failures degrade to an empty list since the judge
// call itself is already best-effort.
func (s *Scorer) masteredNames(ctx context.Context, userID string) []string {
	if s.tracker == nil || s.graph == nil {
		return nil
	}

	set, err := s.tracker.MasteredSet(ctx, userID)
	if err != nil {
		s.log.Warn("failed to load mastered set for judge", "error", err)
		return nil
	}

	names := make([]string, 0, len(set))
	for id := range set {
		node, err := s.graph.Node(id)
		if err != nil {
			continue
		}
		names = append(names, node.Name)
	}
	sort.Strings(names)
	return names
}

func (s *Scorer) callJudge(ctx context.Context, userID, moduleName string, cands []discovery.Candidate) ([]suitabilityEntry, error) {
	ctx = llm.WithPurpose(ctx, "suitability-judge")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(moduleName, s.masteredNames(ctx, userID), cands)},
		},
		Schema:      SuitabilitySchema,
		MaxTokens:   judgeMaxTokens,
		Temperature: judgeTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("suitability judgment failed: %w", err)
	}

	var entries []suitabilityEntry
	if err := json.Unmarshal(resp.Content, &entries); err != nil {
		return nil, fmt.Errorf("parse suitability response: %w", err)
	}
	return entries, nil
}

func tierDefault(t discovery.Tier) float64 {
	if t == discovery.TierFallback {
		return defaultFallbackSuitability
	}
	return defaultSuitability
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
