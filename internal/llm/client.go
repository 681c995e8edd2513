package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/nestegg/internal/common"
)

// Client sends one prompt to a model and returns its text reply.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Config selects and tunes the model provider.
type Config struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	MaxRetries  int           `mapstructure:"max_retries"`
	RateLimit   int           `mapstructure:"rate_limit"`
}

// DefaultConfig returns the Anthropic defaults.
func DefaultConfig() Config {
	return Config{
		Provider:    "anthropic",
		CacheTTL:    time.Hour,
		RetryDelay:  time.Second,
		Temperature: 0.3,
		MaxTokens:   1024,
		MaxRetries:  3,
		RateLimit:   30,
	}
}

// NewClient creates a model client for cfg.Provider.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "anthropic", "":
		return newAnthropicClient(cfg)
	case "gemini":
		return newGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", common.ErrInvalidConfig, cfg.Provider)
	}
}
