package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tutorloop/tutorloop/internal/store"
)

// NewProvider builds the configured provider wrapped with audit and retry
// middleware. Pass a nil eventRepo to skip request auditing.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s provider: %w", cfg.Provider, err)
	}

	audited := WithAudit(base, eventRepo, log)
	return WithRetry(audited, cfg.Retry), nil
}
