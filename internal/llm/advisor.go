package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/service"
)

const systemPrompt = "You are a pragmatic personal finance coach for Australian households. " +
	"You only answer with a JSON array, without markdown code fences."

// Advisor implements service.Advisor on top of a model Client.
type Advisor struct {
	client    Client
	cache     *suggestionCache
	limiter   *rateLimiter
	logger    *slog.Logger
	retryOpts service.RetryOptions
}

// NewAdvisor wraps client with caching, rate limiting and retries.
func NewAdvisor(client Client, cfg Config, logger *slog.Logger) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := common.DefaultRetryOptions()
	if cfg.MaxRetries > 0 {
		retryOpts.MaxAttempts = cfg.MaxRetries
	}
	if cfg.RetryDelay > 0 {
		retryOpts.InitialDelay = cfg.RetryDelay
	}

	return &Advisor{
		client:    client,
		cache:     newSuggestionCache(cfg.CacheTTL),
		limiter:   newRateLimiter(cfg.RateLimit),
		logger:    logger.With("component", "advisor"),
		retryOpts: retryOpts,
	}
}

// Close stops background cache maintenance.
func (a *Advisor) Close() {
	a.cache.Close()
}

// Suggest implements service.Advisor.
func (a *Advisor) Suggest(ctx context.Context, items []service.SpendItem) ([]service.Suggestion, error) {
	if len(items) == 0 {
		return nil, nil
	}

	prompt := buildPrompt(items)
	key := cacheKey(prompt)
	if cached, ok := a.cache.get(key); ok {
		a.logger.Debug("Using cached suggestions", "items", len(items))
		return cached, nil
	}

	if err := a.limiter.wait(ctx); err != nil {
		return nil, err
	}

	var suggestions []service.Suggestion
	err := common.WithRetry(ctx, func() error {
		raw, err := a.client.Complete(ctx, systemPrompt, prompt)
		if err != nil {
			return err
		}
		parsed, err := parseSuggestions(raw)
		if err != nil {
			a.logger.Warn("Model returned unparsable suggestions", "error", err)
			return err
		}
		suggestions = parsed
		return nil
	}, a.retryOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}

	if len(suggestions) == 0 {
		return nil, common.ErrNoSuggestions
	}

	a.cache.set(key, suggestions)
	a.logger.Info("Received suggestions", "items", len(items), "suggestions", len(suggestions))
	return suggestions, nil
}

// buildPrompt lists spend items largest first so identical profiles produce identical prompts.
func buildPrompt(items []service.SpendItem) string {
	sorted := make([]service.SpendItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Amount.Cmp(sorted[j].Amount); c != 0 {
			return c > 0
		}
		return sorted[i].Category < sorted[j].Category
	})

	var b strings.Builder
	b.WriteString("Here is my average monthly spending by category in AUD:\n")
	for _, item := range sorted {
		fmt.Fprintf(&b, "- %s: %s\n", item.Category, item.Amount.StringFixed(2))
	}
	b.WriteString("\nSuggest up to 5 concrete ways to save money or earn extra income. ")
	b.WriteString("Respond with a JSON array of objects with the fields ")
	b.WriteString(`"title", "description", "category", "potentialSavings" (monthly AUD, number) `)
	b.WriteString(`and "estimatedIncome" (monthly AUD, number). Omit fields that do not apply.`)
	return b.String()
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

// SpendItems turns an analysis's category averages into advisor input.
func SpendItems(analysis *model.BankStatementAnalysis) []service.SpendItem {
	if analysis == nil {
		return nil
	}
	items := make([]service.SpendItem, 0, len(analysis.ExpenseByCategory))
	for _, c := range analysis.ExpenseByCategory {
		if c.AverageMonthlySpend.IsZero() {
			continue
		}
		items = append(items, service.SpendItem{
			Category: string(c.Category),
			Amount:   c.AverageMonthlySpend,
		})
	}
	return items
}

var _ service.Advisor = (*Advisor)(nil)
