package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tutorloop/tutorloop/ent"
	"github.com/tutorloop/tutorloop/ent/wronganswerrecord"
)

type wrongAnswerRepo struct {
	client *ent.Client
}

func (r *wrongAnswerRepo) Get(ctx context.Context, userID, questionID string) (*WrongAnswerRow, error) {
	rec, err := r.client.WrongAnswerRecord.Query().
		Where(
			wronganswerrecord.UserID(userID),
			wronganswerrecord.QuestionID(questionID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup wrong answer %s/%s: %w", userID, questionID, err)
	}
	row := toWrongAnswerRow(rec)
	return &row, nil
}

func (r *wrongAnswerRepo) RecordMiss(ctx context.Context, userID, questionID string, at time.Time) error {
	existing, err := r.client.WrongAnswerRecord.Query().
		Where(
			wronganswerrecord.UserID(userID),
			wronganswerrecord.QuestionID(questionID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup wrong answer %s/%s: %w", userID, questionID, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetRepeatCount(existing.RepeatCount + 1).
			SetLastWrongAt(at).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("increment wrong answer %s/%s: %w", userID, questionID, err)
		}
		return nil
	}

	_, err = r.client.WrongAnswerRecord.Create().
		SetUserID(userID).
		SetQuestionID(questionID).
		SetRepeatCount(1).
		SetLastWrongAt(at).
		SetStatus(wronganswerrecord.StatusUnmastered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create wrong answer %s/%s: %w", userID, questionID, err)
	}
	return nil
}

func (r *wrongAnswerRepo) SetStatus(ctx context.Context, userID, questionID, status string) error {
	n, err := r.client.WrongAnswerRecord.Update().
		Where(
			wronganswerrecord.UserID(userID),
			wronganswerrecord.QuestionID(questionID),
		).
		SetStatus(wronganswerrecord.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set wrong answer status %s/%s: %w", userID, questionID, err)
	}
	if n == 0 {
		return fmt.Errorf("wrong answer record not found: %s/%s", userID, questionID)
	}
	return nil
}

func (r *wrongAnswerRepo) Unresolved(ctx context.Context, userID string) ([]WrongAnswerRow, error) {
	rows, err := r.client.WrongAnswerRecord.Query().
		Where(
			wronganswerrecord.UserID(userID),
			wronganswerrecord.StatusNEQ(wronganswerrecord.StatusMastered),
		).
		Order(ent.Desc(wronganswerrecord.FieldLastWrongAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unresolved wrong answers for %s: %w", userID, err)
	}

	out := make([]WrongAnswerRow, len(rows))
	for i, rec := range rows {
		out[i] = toWrongAnswerRow(rec)
	}
	return out, nil
}

func toWrongAnswerRow(rec *ent.WrongAnswerRecord) WrongAnswerRow {
	return WrongAnswerRow{
		UserID:      rec.UserID,
		QuestionID:  rec.QuestionID,
		RepeatCount: rec.RepeatCount,
		LastWrongAt: rec.LastWrongAt,
		Status:      string(rec.Status),
	}
}
