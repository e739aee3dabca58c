package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/tutorloop/tutorloop/ent"
	"github.com/tutorloop/tutorloop/ent/question"
)

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Get(ctx context.Context, questionID string) (*QuestionRow, error) {
	q, err := r.client.Question.Query().
		Where(question.QuestionID(questionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("question %q: %w", questionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup question %q: %w", questionID, err)
	}
	row := toQuestionRow(q)
	return &row, nil
}

// ByNode returns all questions linked to the given knowledge node.
// The node id list is a JSON column, so filtering happens in Go; question
// banks are small enough that a full scan is fine.
func (r *questionRepo) ByNode(ctx context.Context, nodeID string) ([]QuestionRow, error) {
	all, err := r.client.Question.Query().
		Order(ent.Asc(question.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	var out []QuestionRow
	for _, q := range all {
		if slices.Contains(q.NodeIds, nodeID) {
			out = append(out, toQuestionRow(q))
		}
	}
	return out, nil
}

func (r *questionRepo) Save(ctx context.Context, row QuestionRow) error {
	existing, err := r.client.Question.Query().
		Where(question.QuestionID(row.QuestionID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup question %q: %w", row.QuestionID, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetText(row.Text).
			SetAnswer(row.Answer).
			SetDifficulty(row.Difficulty).
			SetNodeIds(row.NodeIDs).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update question %q: %w", row.QuestionID, err)
		}
		return nil
	}

	_, err = r.client.Question.Create().
		SetQuestionID(row.QuestionID).
		SetText(row.Text).
		SetAnswer(row.Answer).
		SetDifficulty(row.Difficulty).
		SetNodeIds(row.NodeIDs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create question %q: %w", row.QuestionID, err)
	}
	return nil
}

func toQuestionRow(q *ent.Question) QuestionRow {
	return QuestionRow{
		QuestionID: q.QuestionID,
		Text:       q.Text,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		NodeIDs:    q.NodeIds,
	}
}
