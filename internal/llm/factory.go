package llm

import (
	"context"
	"fmt"

	"github.com/edututor/edututor/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and request-logging middleware.
func NewProvider(ctx context.Context, cfg Config, logRepo store.LLMLogRepo) (Provider, error) {
	var base Provider
	var err error

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
		return NewScriptedProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller, retry, logging, base.
	logged := WithLogging(base, logRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}
