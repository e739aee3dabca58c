package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/mastery"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/wrongbook"
)

type fakeQuestionRepo struct {
	questions map[string]store.QuestionRow
}

func (f *fakeQuestionRepo) Get(_ context.Context, id string) (*store.QuestionRow, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, fmt.Errorf("question %q: %w", id, store.ErrNotFound)
	}
	return &q, nil
}

func (f *fakeQuestionRepo) ByNode(_ context.Context, _ string) ([]store.QuestionRow, error) {
	return nil, nil
}

func (f *fakeQuestionRepo) Save(_ context.Context, _ store.QuestionRow) error {
	return nil
}

type fakeMasteryRepo struct {
	scores map[string]float64
}

func (f *fakeMasteryRepo) Score(_ context.Context, userID, nodeID string) (float64, bool, error) {
	s, ok := f.scores[userID+"|"+nodeID]
	return s, ok, nil
}

func (f *fakeMasteryRepo) Upsert(_ context.Context, userID, nodeID string, score float64) error {
	if f.scores == nil {
		f.scores = make(map[string]float64)
	}
	f.scores[userID+"|"+nodeID] = score
	return nil
}

func (f *fakeMasteryRepo) ForUser(_ context.Context, userID string) (map[string]float64, error) {
	out := make(map[string]float64)
	for k, v := range f.scores {
		if len(k) > len(userID) && k[:len(userID)+1] == userID+"|" {
			out[k[len(userID)+1:]] = v
		}
	}
	return out, nil
}

type fakeWrongAnswerRepo struct {
	misses []string
}

func (f *fakeWrongAnswerRepo) Get(_ context.Context, _, _ string) (*store.WrongAnswerRow, error) {
	return nil, nil
}

func (f *fakeWrongAnswerRepo) RecordMiss(_ context.Context, _, questionID string, _ time.Time) error {
	f.misses = append(f.misses, questionID)
	return nil
}

func (f *fakeWrongAnswerRepo) SetStatus(_ context.Context, _, _, _ string) error {
	return nil
}

func (f *fakeWrongAnswerRepo) Unresolved(_ context.Context, _ string) ([]store.WrongAnswerRow, error) {
	return nil, nil
}

type fakeEventRepo struct {
	answers []store.AnswerEventData
	fail    bool
}

func (f *fakeEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	if f.fail {
		return fmt.Errorf("event store down")
	}
	f.answers = append(f.answers, data)
	return nil
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) AnswersForUser(_ context.Context, _ string, _ store.QueryOpts) ([]store.AnswerEventRow, error) {
	return nil, nil
}

func (f *fakeEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRow, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

type fixture struct {
	engine  *Engine
	mastery *fakeMasteryRepo
	wrong   *fakeWrongAnswerRepo
	events  *fakeEventRepo
}

func newFixture(t *testing.T, provider llm.Provider) *fixture {
	t.Helper()

	graph := knowledge.New(
		[]knowledge.Node{
			{ID: "arith", Name: "arithmetic", Kind: knowledge.KindModule},
			{ID: "frac", Name: "fractions", Difficulty: 0.4, Kind: knowledge.KindNode},
			{ID: "dec", Name: "decimals", Difficulty: 0.6, Kind: knowledge.KindNode},
		},
		[]knowledge.Edge{
			{Source: "arith", Target: "frac", Relation: knowledge.RelationContains},
			{Source: "arith", Target: "dec", Relation: knowledge.RelationContains},
		},
	)

	questions := &fakeQuestionRepo{questions: map[string]store.QuestionRow{
		"q1": {
			QuestionID: "q1",
			Text:       "What is 1/2 as a decimal?",
			Answer:     "0.5",
			Difficulty: 0.4,
			NodeIDs:    []string{"frac", "dec"},
		},
	}}

	mrepo := &fakeMasteryRepo{scores: make(map[string]float64)}
	wrepo := &fakeWrongAnswerRepo{}
	events := &fakeEventRepo{}

	return &fixture{
		engine: New(provider, questions, graph,
			mastery.NewTracker(mrepo, nil),
			wrongbook.NewLedger(wrepo, nil),
			events, nil),
		mastery: mrepo,
		wrong:   wrepo,
		events:  events,
	}
}

func judgeReply(text string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(text)}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	provider := llm.NewMockProvider(judgeReply(
		`yes##Correct, 1/2 equals 0.5.##[{"dimension":"knowledge","score":0.9},{"dimension":"calculation","score":0.8}]`,
	))
	fx := newFixture(t, provider)

	res, err := fx.engine.Submit(context.Background(), Submission{
		UserID: "u1", QuestionID: "q1", RawAnswer: "0.5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Correct {
		t.Error("expected correct verdict")
	}
	if res.Rationale != "Correct, 1/2 equals 0.5." {
		t.Errorf("unexpected rationale: %s", res.Rationale)
	}
	if res.DimensionScores["knowledge"] != 0.9 {
		t.Errorf("unexpected knowledge score: %f", res.DimensionScores["knowledge"])
	}
	if res.EventID == "" {
		t.Error("expected an event id")
	}

	if len(fx.events.answers) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(fx.events.answers))
	}
	if !fx.events.answers[0].Correct {
		t.Error("event should record correct answer")
	}

	// Both linked nodes get a first-exposure boost.
	for _, node := range []string{"frac", "dec"} {
		if _, ok := fx.mastery.scores["u1|"+node]; !ok {
			t.Errorf("expected mastery write for node %s", node)
		}
	}

	if len(fx.wrong.misses) != 0 {
		t.Errorf("correct answer should not touch the wrong-answer ledger")
	}
}

func TestSubmitWrongAnswer(t *testing.T) {
	provider := llm.NewMockProvider(judgeReply(
		`no##Not quite, 1/2 is 0.5 not 0.2.##[{"dimension":"knowledge","score":0.3}]`,
	))
	fx := newFixture(t, provider)

	res, err := fx.engine.Submit(context.Background(), Submission{
		UserID: "u1", QuestionID: "q1", RawAnswer: "0.2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Correct {
		t.Error("expected incorrect verdict")
	}
	if len(fx.wrong.misses) != 1 || fx.wrong.misses[0] != "q1" {
		t.Errorf("expected a ledger miss for q1, got %v", fx.wrong.misses)
	}

	// Mastery decreases are still applied for wrong answers.
	if score := fx.mastery.scores["u1|frac"]; score >= 0.5 {
		t.Errorf("expected score below first-exposure base, got %f", score)
	}
}

func TestSubmitMalformedJudgeResponse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing scores segment", `yes##Looks right.`},
		{"bad scores json", `yes##Looks right.##not json`},
		{"empty rationale", `yes####[]`},
		{"too many segments", `yes##a##b##[]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newFixture(t, llm.NewMockProvider(judgeReply(tc.raw)))

			_, err := fx.engine.Submit(context.Background(), Submission{
				UserID: "u1", QuestionID: "q1", RawAnswer: "0.5",
			})
			if err == nil {
				t.Fatal("expected hard error for malformed response")
			}
			if len(fx.events.answers) != 0 {
				t.Error("malformed response must not append events")
			}
			if len(fx.mastery.scores) != 0 {
				t.Error("malformed response must not update mastery")
			}
		})
	}
}

func TestSubmitUnknownQuestion(t *testing.T) {
	fx := newFixture(t, llm.NewMockProvider())

	_, err := fx.engine.Submit(context.Background(), Submission{
		UserID: "u1", QuestionID: "missing", RawAnswer: "42",
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want wrapped store.ErrNotFound", err)
	}
	if len(fx.events.answers) != 0 {
		t.Error("unknown question must not append events")
	}
	if len(fx.mastery.scores) != 0 {
		t.Error("unknown question must not update mastery")
	}
}

func TestJudgeRequestCarriesTimeBudget(t *testing.T) {
	provider := llm.NewMockProvider(judgeReply(
		`yes##Correct.##[{"dimension":"knowledge","score":0.9}]`,
	))
	fx := newFixture(t, provider)

	_, err := fx.engine.Submit(context.Background(), Submission{
		UserID: "u1", QuestionID: "q1", RawAnswer: "0.5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("expected 1 judge call, got %d", len(provider.Calls))
	}
	msg := provider.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Time budget: 300 seconds") {
		t.Errorf("judge request missing time budget:\n%s", msg)
	}
	if !strings.Contains(msg, "knowledge, logic, calculation, behavior") {
		t.Errorf("judge request missing grading dimensions:\n%s", msg)
	}
}

func TestSubmitEventAppendFailureAborts(t *testing.T) {
	provider := llm.NewMockProvider(judgeReply(
		`yes##Correct.##[{"dimension":"knowledge","score":0.9}]`,
	))
	fx := newFixture(t, provider)
	fx.events.fail = true

	_, err := fx.engine.Submit(context.Background(), Submission{
		UserID: "u1", QuestionID: "q1", RawAnswer: "0.5",
	})
	if err == nil {
		t.Fatal("expected error when event append fails")
	}
	if len(fx.mastery.scores) != 0 {
		t.Error("mastery must not update when the event append fails")
	}
}

func TestSubmitRequiresUserID(t *testing.T) {
	fx := newFixture(t, llm.NewMockProvider())

	_, err := fx.engine.Submit(context.Background(), Submission{
		QuestionID: "q1", RawAnswer: "0.5",
	})
	if err == nil {
		t.Fatal("expected error for missing user id")
	}
}

func TestParseJudgmentVerdicts(t *testing.T) {
	cases := []struct {
		verdict string
		correct bool
	}{
		{"yes", true},
		{"Yes", true},
		{"YES", true},
		{"no", false},
		{"maybe", false},
		{"partially", false},
	}

	for _, tc := range cases {
		raw := tc.verdict + `##Because.##[{"dimension":"knowledge","score":0.5}]`
		correct, _, _, err := parseJudgment(raw)
		if err != nil {
			t.Fatalf("verdict %q: unexpected error: %v", tc.verdict, err)
		}
		if correct != tc.correct {
			t.Errorf("verdict %q: expected correct=%t", tc.verdict, tc.correct)
		}
	}
}

func TestParseJudgmentScores(t *testing.T) {
	raw := `no##Weak on both.##[{"dimension":"knowledge","score":0.2},{"dimension":"calculation","score":0.1}]`
	_, _, scores, err := parseJudgment(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 dimensions, got %d", len(scores))
	}
	if scores["calculation"] != 0.1 {
		t.Errorf("unexpected calculation score: %f", scores["calculation"])
	}
}
