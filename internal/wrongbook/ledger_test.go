package wrongbook

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/tutorloop/tutorloop/internal/store"
)

// fakeWrongAnswerRepo implements store.WrongAnswerRepo in memory.
type fakeWrongAnswerRepo struct {
	rows map[string]*store.WrongAnswerRow // key: user|question
}

func newFakeRepo() *fakeWrongAnswerRepo {
	return &fakeWrongAnswerRepo{rows: make(map[string]*store.WrongAnswerRow)}
}

func (f *fakeWrongAnswerRepo) Get(_ context.Context, userID, questionID string) (*store.WrongAnswerRow, error) {
	if r, ok := f.rows[userID+"|"+questionID]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeWrongAnswerRepo) RecordMiss(_ context.Context, userID, questionID string, at time.Time) error {
	key := userID + "|" + questionID
	if r, ok := f.rows[key]; ok {
		r.RepeatCount++
		r.LastWrongAt = at
		return nil
	}
	f.rows[key] = &store.WrongAnswerRow{
		UserID:      userID,
		QuestionID:  questionID,
		RepeatCount: 1,
		LastWrongAt: at,
		Status:      StatusUnmastered,
	}
	return nil
}

func (f *fakeWrongAnswerRepo) SetStatus(_ context.Context, userID, questionID, status string) error {
	if r, ok := f.rows[userID+"|"+questionID]; ok {
		r.Status = status
	}
	return nil
}

func (f *fakeWrongAnswerRepo) Unresolved(_ context.Context, userID string) ([]store.WrongAnswerRow, error) {
	var out []store.WrongAnswerRow
	for _, r := range f.rows {
		if r.UserID == userID && r.Status != StatusMastered {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastWrongAt.After(out[j].LastWrongAt)
	})
	return out, nil
}

func TestRecordMissCreatesThenIncrements(t *testing.T) {
	repo := newFakeRepo()
	l := NewLedger(repo, nil)
	ctx := context.Background()

	if err := l.RecordMiss(ctx, "u1", "q1"); err != nil {
		t.Fatalf("first miss: %v", err)
	}
	e, err := l.Entry(ctx, "u1", "q1")
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	if e == nil || e.RepeatCount != 1 || e.Status != StatusUnmastered {
		t.Fatalf("entry = %+v, want count 1, unmastered", e)
	}

	if err := l.RecordMiss(ctx, "u1", "q1"); err != nil {
		t.Fatalf("second miss: %v", err)
	}
	e, _ = l.Entry(ctx, "u1", "q1")
	if e.RepeatCount != 2 {
		t.Errorf("count = %d, want 2", e.RepeatCount)
	}
	if e.Status != StatusUnmastered {
		t.Errorf("status = %s; repeat misses must not change status", e.Status)
	}
}

func TestResolveValidatesStatus(t *testing.T) {
	repo := newFakeRepo()
	l := NewLedger(repo, nil)
	ctx := context.Background()
	l.RecordMiss(ctx, "u1", "q1")

	if err := l.Resolve(ctx, "u1", "q1", "promoted"); err == nil {
		t.Error("expected error for unknown status")
	}
	if err := l.Resolve(ctx, "u1", "q1", StatusMastered); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	e, _ := l.Entry(ctx, "u1", "q1")
	if e.Status != StatusMastered {
		t.Errorf("status = %s, want mastered", e.Status)
	}
}

func TestLatestUnresolved(t *testing.T) {
	repo := newFakeRepo()
	l := NewLedger(repo, nil)
	ctx := context.Background()

	got, err := l.LatestUnresolved(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for clean ledger")
	}

	base := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }
	l.RecordMiss(ctx, "u1", "old")
	l.now = func() time.Time { return base.Add(time.Hour) }
	l.RecordMiss(ctx, "u1", "fresh")

	got, err = l.LatestUnresolved(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || got.QuestionID != "fresh" {
		t.Errorf("latest = %+v, want question fresh", got)
	}

	// Resolved entries drop out.
	l.Resolve(ctx, "u1", "fresh", StatusMastered)
	got, _ = l.LatestUnresolved(ctx, "u1")
	if got == nil || got.QuestionID != "old" {
		t.Errorf("latest after resolve = %+v, want question old", got)
	}
}
