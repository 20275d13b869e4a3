// Package llm wraps the language-model completion services used for region
// classification and schedule selection.
package llm

import (
	"context"
	"fmt"
	"time"
)

// Client sends one prompt and returns the model's free-text reply.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Config selects and parameterizes a provider.
type Config struct {
	Provider    string // azure, openai or ollama
	APIKey      string
	BaseURL     string
	APIVersion  string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// New builds the client for cfg.Provider.
func New(cfg Config) (Client, error) {
	switch cfg.Provider {
	case "", "azure":
		if cfg.APIKey == "" || cfg.BaseURL == "" {
			return nil, fmt.Errorf("azure provider needs OPENAI_API_KEY and OPENAI_API_BASE")
		}
		return NewOpenAIClient(cfg, true), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider needs OPENAI_API_KEY")
		}
		return NewOpenAIClient(cfg, false), nil
	case "ollama":
		return NewOllamaClient(cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
