package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hairash/ai-helper/internal/config"
)

// CompletionRequest is one prompt sent to an upstream completion provider.
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// CompletionProvider returns the generated text for a prompt or fails.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Name() string
}

// NewCompletionProvider builds the provider selected by cfg.LLMProvider.
func NewCompletionProvider(ctx context.Context, cfg *config.Config) (CompletionProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "", "mistral":
		return NewMistralProvider(cfg.MistralAPIKey, cfg.MistralURL, cfg.MistralModel, cfg.UpstreamTimeout), nil
	case "gemini":
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
