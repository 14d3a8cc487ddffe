// Package llm abstracts the chat-completion providers behind one interface.
package llm

import (
	"context"
	"fmt"

	"github.com/soranjiro/AxI-itinerary/internal/config"
)

// Client sends a prompt pair to a chat-completion provider.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// New builds the client selected by cfg.Provider.
func New(cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("Gemini API key not configured")
		}
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.Model)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not configured")
		}
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
