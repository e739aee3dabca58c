// Package diagnosis grades answer submissions. The LLM judge decides
// correctness and scores ability dimensions; the engine then records the
// outcome in the event log, updates mastery on every linked node, and files
// wrong answers in the ledger.
package diagnosis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tutorloop/tutorloop/internal/knowledge"
	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/mastery"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/wrongbook"
)

const (
	judgeMaxTokens   = 512
	judgeTemperature = 0.0
)

// Submission is one answer to grade.
type Submission struct {
	UserID     string
	QuestionID string
	RawAnswer  string

	// TimeSpentMs is how long the learner took, 0 when unknown.
	TimeSpentMs int

	// Confidence is the learner's self-reported confidence in [0, 1],
	// 0 when not collected.
	Confidence float64
}

// Result is the graded outcome of a submission.
type Result struct {
	EventID         string
	Correct         bool
	Rationale       string
	DimensionScores map[string]float64

	// NodeIDs are the knowledge nodes whose mastery was updated.
	NodeIDs []string
}

// Engine grades submissions and applies their consequences.
type Engine struct {
	provider  llm.Provider
	questions store.QuestionRepo
	graph     *knowledge.Graph
	tracker   *mastery.Tracker
	ledger    *wrongbook.Ledger
	events    store.EventRepo
	log       *slog.Logger
}

// New creates an Engine. A nil logger falls back to slog.Default().
func New(provider llm.Provider, questions store.QuestionRepo, graph *knowledge.Graph,
	tracker *mastery.Tracker, ledger *wrongbook.Ledger, events store.EventRepo, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		provider:  provider,
		questions: questions,
		graph:     graph,
		tracker:   tracker,
		ledger:    ledger,
		events:    events,
		log:       log,
	}
}

// Submit grades one answer. A malformed judge response is a hard error and
// nothing is recorded. Once the answer event is appended, mastery and
// ledger updates are best-effort: failures there are logged but the graded
// result is still returned.
func (e *Engine) Submit(ctx context.Context, sub Submission) (*Result, error) {
	if sub.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	q, err := e.questions.Get(ctx, sub.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("look up question %q: %w", sub.QuestionID, err)
	}

	correct, rationale, scores, err := e.judge(ctx, q, sub.RawAnswer)
	if err != nil {
		return nil, err
	}

	result := &Result{
		EventID:         uuid.NewString(),
		Correct:         correct,
		Rationale:       rationale,
		DimensionScores: scores,
		NodeIDs:         q.NodeIDs,
	}

	// The event log is the source of truth for history, so an append
	// failure aborts the submission.
	err = e.events.AppendAnswer(ctx, store.AnswerEventData{
		EventID:         result.EventID,
		UserID:          sub.UserID,
		QuestionID:      sub.QuestionID,
		RawAnswer:       sub.RawAnswer,
		Correct:         correct,
		DimensionScores: scores,
		TimeSpentMs:     sub.TimeSpentMs,
		Confidence:      sub.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("record answer event: %w", err)
	}

	e.applyMastery(ctx, sub.UserID, q, correct)

	if !correct {
		if err := e.ledger.RecordMiss(ctx, sub.UserID, sub.QuestionID); err != nil {
			e.log.Warn("failed to record wrong answer",
				"question", sub.QuestionID, "error", err)
		}
	}

	return result, nil
}

// judge asks the LLM to grade the answer and parses its delimited verdict.
func (e *Engine) judge(ctx context.Context, q *store.QuestionRow, rawAnswer string) (bool, string, map[string]float64, error) {
	ctx = llm.WithPurpose(ctx, "answer-diagnosis")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(q, rawAnswer)},
		},
		MaxTokens:   judgeMaxTokens,
		Temperature: judgeTemperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return false, "", nil, fmt.Errorf("diagnosis judgment failed: %w", err)
	}

	correct, rationale, scores, err := parseJudgment(string(resp.Content))
	if err != nil {
		return false, "", nil, fmt.Errorf("malformed diagnosis response: %w", err)
	}
	return correct, rationale, scores, nil
}

// applyMastery updates every node the question is linked to. Unknown node
// ids and write failures are logged and skipped, keeping the submission
// result intact.
func (e *Engine) applyMastery(ctx context.Context, userID string, q *store.QuestionRow, correct bool) {
	for _, nodeID := range q.NodeIDs {
		node, err := e.graph.Node(nodeID)
		if err != nil {
			e.log.Warn("question links to unknown node",
				"question", q.QuestionID, "node", nodeID)
			continue
		}

		if _, err := e.tracker.ApplyOutcome(ctx, userID, nodeID, node.Difficulty, correct); err != nil {
			e.log.Warn("failed to update mastery",
				"node", nodeID, "error", err)
		}
	}
}
