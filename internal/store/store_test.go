package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGraphRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.GraphRepo()
	ctx := context.Background()

	nodes := []NodeRow{
		{NodeID: "m1", Name: "Fractions", Kind: "module", Position: 0},
		{NodeID: "a", Name: "Halves", Difficulty: 0.2, Level: 1, Kind: "node", Position: 0, Summary: "What a half is"},
		{NodeID: "b", Name: "Quarters", Difficulty: 0.4, Level: 1, Kind: "node", Position: 1},
	}
	for _, n := range nodes {
		if err := repo.SaveNode(ctx, n); err != nil {
			t.Fatalf("save node %s: %v", n.NodeID, err)
		}
	}

	edges := []EdgeRow{
		{SourceID: "m1", TargetID: "a", Relation: "contains"},
		{SourceID: "m1", TargetID: "b", Relation: "contains"},
		{SourceID: "a", TargetID: "b", Relation: "prerequisite"},
	}
	for _, e := range edges {
		if err := repo.SaveEdge(ctx, e); err != nil {
			t.Fatalf("save edge: %v", err)
		}
	}

	gotNodes, err := repo.Nodes(ctx)
	if err != nil {
		t.Fatalf("nodes: %v", err)
	}
	if len(gotNodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(gotNodes))
	}

	gotEdges, err := repo.Edges(ctx)
	if err != nil {
		t.Fatalf("edges: %v", err)
	}
	if len(gotEdges) != 3 {
		t.Fatalf("got %d edges, want 3", len(gotEdges))
	}

	// Saving the same edge again must not duplicate it.
	if err := repo.SaveEdge(ctx, edges[0]); err != nil {
		t.Fatalf("re-save edge: %v", err)
	}
	gotEdges, _ = repo.Edges(ctx)
	if len(gotEdges) != 3 {
		t.Errorf("after re-save got %d edges, want 3", len(gotEdges))
	}
}

func TestMasteryRepoAbsentReadsZero(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	score, ok, err := repo.Score(ctx, "u1", "never-seen")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if ok {
		t.Error("expected no record")
	}
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
}

func TestMasteryRepoUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, "u1", "a", 0.55); err != nil {
		t.Fatalf("upsert create: %v", err)
	}
	if err := repo.Upsert(ctx, "u1", "a", 0.7); err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	score, ok, err := repo.Score(ctx, "u1", "a")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !ok || score != 0.7 {
		t.Errorf("score = %v, ok = %v, want 0.7, true", score, ok)
	}

	all, err := repo.ForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("for user: %v", err)
	}
	if len(all) != 1 || all["a"] != 0.7 {
		t.Errorf("ForUser = %v, want map[a:0.7]", all)
	}
}

func TestWrongAnswerRepoMissLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.WrongAnswerRepo()
	ctx := context.Background()

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := repo.RecordMiss(ctx, "u1", "q1", first); err != nil {
		t.Fatalf("first miss: %v", err)
	}

	row, err := repo.Get(ctx, "u1", "q1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil {
		t.Fatal("expected record after first miss")
	}
	if row.RepeatCount != 1 || row.Status != "unmastered" {
		t.Errorf("row = %+v, want count 1, status unmastered", row)
	}

	second := first.Add(time.Hour)
	if err := repo.RecordMiss(ctx, "u1", "q1", second); err != nil {
		t.Fatalf("second miss: %v", err)
	}
	row, _ = repo.Get(ctx, "u1", "q1")
	if row.RepeatCount != 2 {
		t.Errorf("repeat count = %d, want 2", row.RepeatCount)
	}
	if !row.LastWrongAt.Equal(second) {
		t.Errorf("last wrong at = %v, want %v", row.LastWrongAt, second)
	}

	// External correction workflow upgrades status.
	if err := repo.SetStatus(ctx, "u1", "q1", "mastered"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	unresolved, err := repo.Unresolved(ctx, "u1")
	if err != nil {
		t.Fatalf("unresolved: %v", err)
	}
	if len(unresolved) != 0 {
		t.Errorf("unresolved = %d entries, want 0 after upgrade", len(unresolved))
	}
}

func TestWrongAnswerRepoUnresolvedOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.WrongAnswerRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.RecordMiss(ctx, "u1", "old", base)
	repo.RecordMiss(ctx, "u1", "recent", base.Add(2*time.Hour))

	rows, err := repo.Unresolved(ctx, "u1")
	if err != nil {
		t.Fatalf("unresolved: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].QuestionID != "recent" {
		t.Errorf("first unresolved = %s, want recent (most recent miss first)", rows[0].QuestionID)
	}
}

func TestEventRepoSequencesMonotonic(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAnswer(ctx, AnswerEventData{
			EventID:    "e" + string(rune('0'+i)),
			UserID:     "u1",
			QuestionID: "q1",
			RawAnswer:  "42",
			Correct:    i%2 == 0,
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "suitability-judge", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	var count int
	if err := s.DB().QueryRow(`SELECT next_val FROM global_sequence WHERE id = 1`).Scan(&count); err != nil {
		t.Fatalf("read sequence: %v", err)
	}
	if count != 5 {
		t.Errorf("next sequence = %d, want 5 after 4 events", count)
	}
}

func TestQuestionRepoByNode(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	rows := []QuestionRow{
		{QuestionID: "q1", Text: "1/2 + 1/2 = ?", Answer: "1", Difficulty: 0.2, NodeIDs: []string{"a"}},
		{QuestionID: "q2", Text: "1/4 + 1/4 = ?", Answer: "1/2", Difficulty: 0.4, NodeIDs: []string{"a", "b"}},
		{QuestionID: "q3", Text: "3/4 - 1/4 = ?", Answer: "1/2", Difficulty: 0.5, NodeIDs: []string{"b"}},
	}
	for _, q := range rows {
		if err := repo.Save(ctx, q); err != nil {
			t.Fatalf("save %s: %v", q.QuestionID, err)
		}
	}

	got, err := repo.ByNode(ctx, "a")
	if err != nil {
		t.Fatalf("by node: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d questions for node a, want 2", len(got))
	}

	q, err := repo.Get(ctx, "q3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q == nil || q.Answer != "1/2" {
		t.Errorf("q3 = %+v, want answer 1/2", q)
	}

	missing, err := repo.Get(ctx, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing: err = %v, want ErrNotFound", err)
	}
	if missing != nil {
		t.Error("expected nil row for missing question")
	}
}

func TestEventRepoQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{EventID: "e1", UserID: "u1", QuestionID: "q1", RawAnswer: "1", Correct: true},
		{EventID: "e2", UserID: "u1", QuestionID: "q2", RawAnswer: "2", Correct: false},
		{EventID: "e3", UserID: "u2", QuestionID: "q1", RawAnswer: "3", Correct: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %s: %v", a.EventID, err)
		}
	}

	llmEvents := []LLMRequestEventData{
		{Provider: "mock", Model: "m-a", Purpose: "suitability-judge", InputTokens: 100, OutputTokens: 50, LatencyMs: 10, Success: true},
		{Provider: "mock", Model: "m-a", Purpose: "suitability-judge", InputTokens: 200, OutputTokens: 80, LatencyMs: 30, Success: true},
		{Provider: "mock", Model: "m-b", Purpose: "answer-diagnosis", InputTokens: 50, OutputTokens: 20, LatencyMs: 20, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range llmEvents {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append llm %d: %v", i, err)
		}
	}

	got, err := repo.AnswersForUser(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("answers for user: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d answers for u1, want 2", len(got))
	}
	// Newest first.
	if got[0].EventID != "e2" || got[1].EventID != "e1" {
		t.Errorf("unexpected order: %s, %s", got[0].EventID, got[1].EventID)
	}

	limited, err := repo.AnswersForUser(ctx, "u1", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("limited answers: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d answers with limit 1", len(limited))
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d llm events, want 2", len(events))
	}
	if events[0].Purpose != "answer-diagnosis" {
		t.Errorf("expected newest event first, got purpose %s", events[0].Purpose)
	}
	if events[0].ErrorMessage != "boom" {
		t.Errorf("expected error message preserved, got %q", events[0].ErrorMessage)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose groups, want 2", len(byPurpose))
	}
	// Sorted by purpose name: answer-diagnosis, suitability-judge.
	judge := byPurpose[1]
	if judge.Purpose != "suitability-judge" || judge.Calls != 2 {
		t.Errorf("unexpected judge stats: %+v", judge)
	}
	if judge.InputTokens != 300 || judge.OutputTokens != 130 {
		t.Errorf("unexpected judge token totals: %+v", judge)
	}
	if judge.AvgLatencyMs != 20 {
		t.Errorf("expected avg latency 20, got %d", judge.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "m-a" || byModel[0].Calls != 2 {
		t.Errorf("unexpected model stats: %+v", byModel)
	}
}
