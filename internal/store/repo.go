package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a lookup for a row that does not exist. Repos wrap
// it with the entity kind and id; match with errors.Is.
var ErrNotFound = errors.New("not found")

// NodeRow is a knowledge node as stored.
type NodeRow struct {
	NodeID     string
	Name       string
	Difficulty float64
	Level      int
	Summary    string
	Kind       string // "node" or "module"
	Position   int
}

// EdgeRow is a typed knowledge edge as stored.
type EdgeRow struct {
	SourceID string
	TargetID string
	Relation string // "contains" or "prerequisite"
}

// GraphRepo provides read and seed access to the knowledge graph.
// The graph is authored up front and read-only at recommendation time.
type GraphRepo interface {
	Nodes(ctx context.Context) ([]NodeRow, error)
	Edges(ctx context.Context) ([]EdgeRow, error)
	SaveNode(ctx context.Context, row NodeRow) error
	SaveEdge(ctx context.Context, row EdgeRow) error
}

// QuestionRow is an authored practice question as stored.
type QuestionRow struct {
	QuestionID string
	Text       string
	Answer     string
	Difficulty float64
	NodeIDs    []string
}

// QuestionRepo provides access to authored questions.
type QuestionRepo interface {
	// Get returns the question, or an error wrapping ErrNotFound when no
	// question has that id.
	Get(ctx context.Context, questionID string) (*QuestionRow, error)
	ByNode(ctx context.Context, nodeID string) ([]QuestionRow, error)
	Save(ctx context.Context, row QuestionRow) error
}

// MasteryRepo provides access to per-user, per-node mastery scores.
// A missing record reads as score 0.
type MasteryRepo interface {
	// Score returns the stored score and whether a record exists.
	Score(ctx context.Context, userID, nodeID string) (float64, bool, error)

	// Upsert writes the score, creating the record on first exposure.
	Upsert(ctx context.Context, userID, nodeID string, score float64) error

	// ForUser returns all of a user's mastery scores keyed by node id.
	ForUser(ctx context.Context, userID string) (map[string]float64, error)
}

// WrongAnswerRow is a wrong-answer ledger entry as stored.
type WrongAnswerRow struct {
	UserID      string
	QuestionID  string
	RepeatCount int
	LastWrongAt time.Time
	Status      string // "unmastered", "mastered", "needs_review"
}

// WrongAnswerRepo provides access to the wrong-answer ledger.
type WrongAnswerRepo interface {
	Get(ctx context.Context, userID, questionID string) (*WrongAnswerRow, error)

	// RecordMiss creates the record with count 1 or increments an existing one.
	RecordMiss(ctx context.Context, userID, questionID string, at time.Time) error

	// SetStatus updates the coarse status. Used only by the external
	// correction workflow, never by the ledger itself.
	SetStatus(ctx context.Context, userID, questionID, status string) error

	// Unresolved returns the user's non-mastered entries, most recent miss first.
	Unresolved(ctx context.Context, userID string) ([]WrongAnswerRow, error)
}

// AnswerEventData captures a graded answer submission for the append-only log.
type AnswerEventData struct {
	EventID         string
	UserID          string
	QuestionID      string
	RawAnswer       string
	Correct         bool
	DimensionScores map[string]float64
	TimeSpentMs     int
	Confidence      float64
}

// LLMRequestEventData captures a single LLM provider call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AnswerEventRow is a stored answer event, read back for reporting.
type AnswerEventRow struct {
	Sequence        int64
	Timestamp       time.Time
	EventID         string
	UserID          string
	QuestionID      string
	Correct         bool
	DimensionScores map[string]float64
}

// LLMRequestEventRow is a stored LLM request event, read back for auditing.
type LLMRequestEventRow struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStat aggregates token usage for one purpose or model.
type LLMUsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QueryOpts bounds event queries.
type QueryOpts struct {
	Limit int
}

// EventRepo provides append access to domain events plus the read paths
// the reporting commands use. Every event gets a globally ordered sequence
// number regardless of type.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AnswersForUser returns the user's answer events, newest first.
	AnswersForUser(ctx context.Context, userID string, opts QueryOpts) ([]AnswerEventRow, error)

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRow, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error)
}
