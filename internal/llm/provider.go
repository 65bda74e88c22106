// Package llm provides a pluggable interface for text-generation providers.
package llm

import (
	"context"
	"fmt"

	"github.com/truthscan/truthscan/internal/config"
)

// CompletionOptions contains options for completion requests.
type CompletionOptions struct {
	MaxOutputTokens int
	Temperature     float64
	Model           string
}

// Provider defines the interface for text-generation providers.
type Provider interface {
	// Complete generates a completion for the given prompt.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)

	// Name returns the provider name.
	Name() string
}

// NewProvider creates a new provider based on configuration.
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "gemini":
		return NewGeminiProvider(cfg)
	case "ollama":
		return NewOllamaProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
