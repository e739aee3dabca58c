package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/tutorloop/tutorloop/ent"
	"github.com/tutorloop/tutorloop/ent/answerevent"
	"github.com/tutorloop/tutorloop/ent/llmrequestevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetEventID(data.EventID).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetRawAnswer(data.RawAnswer).
		SetCorrect(data.Correct).
		SetTimeSpentMs(data.TimeSpentMs).
		SetConfidence(data.Confidence)

	if data.DimensionScores != nil {
		builder = builder.SetDimensionScores(data.DimensionScores)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswersForUser(ctx context.Context, userID string, opts QueryOpts) ([]AnswerEventRow, error) {
	q := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID)).
		Order(ent.Desc(answerevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	out := make([]AnswerEventRow, len(rows))
	for i, row := range rows {
		out[i] = AnswerEventRow{
			Sequence:        row.Sequence,
			Timestamp:       row.Timestamp,
			EventID:         row.EventID,
			UserID:          row.UserID,
			QuestionID:      row.QuestionID,
			Correct:         row.Correct,
			DimensionScores: row.DimensionScores,
		}
	}
	return out, nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRow, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMRequestEventRow, len(rows))
	for i, row := range rows {
		out[i] = llmEventRow(row)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	return r.llmUsage(ctx, func(row *ent.LLMRequestEvent) string { return row.Purpose }, true)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error) {
	return r.llmUsage(ctx, func(row *ent.LLMRequestEvent) string { return row.Model }, false)
}

// llmUsage aggregates token usage grouped by the given key. The event
// volume is per-user CLI scale, so the rollup happens in Go rather than
// pushing GROUP BY through the query builder.
func (r *eventRepo) llmUsage(ctx context.Context, key func(*ent.LLMRequestEvent) string, byPurpose bool) ([]LLMUsageStat, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	type agg struct {
		stat    LLMUsageStat
		latency int64
	}
	groups := make(map[string]*agg)
	for _, row := range rows {
		k := key(row)
		g, ok := groups[k]
		if !ok {
			g = &agg{}
			if byPurpose {
				g.stat.Purpose = k
			} else {
				g.stat.Model = k
			}
			groups[k] = g
		}
		g.stat.Calls++
		g.stat.InputTokens += row.InputTokens
		g.stat.OutputTokens += row.OutputTokens
		g.latency += row.LatencyMs
	}

	out := make([]LLMUsageStat, 0, len(groups))
	for _, g := range groups {
		if g.stat.Calls > 0 {
			g.stat.AvgLatencyMs = g.latency / int64(g.stat.Calls)
		}
		out = append(out, g.stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if byPurpose {
			return out[i].Purpose < out[j].Purpose
		}
		return out[i].Model < out[j].Model
	})
	return out, nil
}

func llmEventRow(row *ent.LLMRequestEvent) LLMRequestEventRow {
	return LLMRequestEventRow{
		ID:           row.ID,
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
	}
}
