// Package wrongbook keeps the per-user ledger of repeatedly missed
// questions. The ledger only ever creates and increments entries; status
// upgrades come from the external correction workflow through Resolve.
package wrongbook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tutorloop/tutorloop/internal/store"
)

// Coarse mastery statuses of a ledger entry.
const (
	StatusUnmastered  = "unmastered"
	StatusMastered    = "mastered"
	StatusNeedsReview = "needs_review"
)

// Entry is a wrong-answer ledger entry.
type Entry struct {
	UserID      string
	QuestionID  string
	RepeatCount int
	LastWrongAt time.Time
	Status      string
}

// Ledger tracks repeat misses per (user, question).
type Ledger struct {
	repo store.WrongAnswerRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewLedger creates a ledger. A nil logger falls back to slog.Default().
func NewLedger(repo store.WrongAnswerRepo, log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	return &Ledger{repo: repo, log: log, now: time.Now}
}

// RecordMiss registers an incorrect answer: first miss creates the entry
// with count 1 and status unmastered, repeats increment the count and
// refresh the last-wrong timestamp. Status is never changed here.
func (l *Ledger) RecordMiss(ctx context.Context, userID, questionID string) error {
	if err := l.repo.RecordMiss(ctx, userID, questionID, l.now().UTC()); err != nil {
		return fmt.Errorf("record miss %s/%s: %w", userID, questionID, err)
	}
	l.log.Debug("wrong answer recorded", "user_id", userID, "question_id", questionID)
	return nil
}

// Resolve sets an entry's status on behalf of the external correction
// workflow.
func (l *Ledger) Resolve(ctx context.Context, userID, questionID, status string) error {
	switch status {
	case StatusUnmastered, StatusMastered, StatusNeedsReview:
	default:
		return fmt.Errorf("unknown wrong-answer status: %q", status)
	}
	return l.repo.SetStatus(ctx, userID, questionID, status)
}

// Entry returns the ledger entry for (user, question), or nil if the user
// has never missed that question.
func (l *Ledger) Entry(ctx context.Context, userID, questionID string) (*Entry, error) {
	row, err := l.repo.Get(ctx, userID, questionID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	e := fromRow(*row)
	return &e, nil
}

// Unresolved returns the user's entries that have not been upgraded to
// mastered, most recent miss first.
func (l *Ledger) Unresolved(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := l.repo.Unresolved(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(rows))
	for i, r := range rows {
		out[i] = fromRow(r)
	}
	return out, nil
}

// LatestUnresolved returns the user's most recently missed unresolved
// question, or nil if the ledger is clean.
func (l *Ledger) LatestUnresolved(ctx context.Context, userID string) (*Entry, error) {
	rows, err := l.Unresolved(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func fromRow(r store.WrongAnswerRow) Entry {
	return Entry{
		UserID:      r.UserID,
		QuestionID:  r.QuestionID,
		RepeatCount: r.RepeatCount,
		LastWrongAt: r.LastWrongAt,
		Status:      r.Status,
	}
}
