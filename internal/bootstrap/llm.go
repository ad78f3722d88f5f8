package bootstrap

import (
	"context"
	"fmt"

	"github.com/realty-decks/deck-backend/config"
	"github.com/realty-decks/deck-backend/internal/llm"
)

// NewLLMProvider returns the configured provider, or nil when its API key is
// missing. A nil provider makes chat answer "not configured".
func NewLLMProvider(ctx context.Context, cfg config.LLMConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "")
	case "anthropic", "":
		if cfg.AnthropicAPIKey == "" {
			return nil, nil
		}
		return llm.NewAnthropicClient(cfg.AnthropicURL, cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
