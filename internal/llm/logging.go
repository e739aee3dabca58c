package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/tutorloop/tutorloop/internal/store"
)

// AuditProvider is a decorator that records every LLM call as an
// LLMRequestEvent in the store.
type AuditProvider struct {
	inner Provider
	repo  store.EventRepo
	log   *slog.Logger
}

// WithAudit wraps a Provider with request auditing. A nil logger falls
// back to slog.Default().
func WithAudit(p Provider, repo store.EventRepo, log *slog.Logger) Provider {
	if log == nil {
		log = slog.Default()
	}
	return &AuditProvider{inner: p, repo: repo, log: log}
}

func (a *AuditProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := a.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  a.inner.ModelID(),
		Model:     a.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Record the event but never fail the request over bookkeeping.
	if a.repo != nil {
		if logErr := a.repo.AppendLLMRequest(ctx, data); logErr != nil {
			a.log.Warn("failed to record llm request event", "error", logErr)
		}
	}

	return resp, err
}

func (a *AuditProvider) ModelID() string {
	return a.inner.ModelID()
}
