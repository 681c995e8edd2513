package config

import (
	"fmt"
	"os"

	"github.com/Veraticus/nestegg/internal/analysis"
	"github.com/Veraticus/nestegg/internal/classification"
	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/llm"
	"github.com/Veraticus/nestegg/internal/plaid"
	"github.com/Veraticus/nestegg/internal/sheets"
	"github.com/Veraticus/nestegg/internal/statement"
	"github.com/spf13/viper"
)

// DefaultDatabasePath is where analyses are stored when database.path is unset.
const DefaultDatabasePath = "~/.local/share/nestegg/nestegg.db"

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	defaults := analysis.DefaultConfig()
	v.SetDefault("analysis.date_order", string(defaults.DateOrder))
	v.SetDefault("analysis.recurring_min_transactions", defaults.RecurringMinTransactions)
	v.SetDefault("analysis.recurring_min_months", defaults.RecurringMinMonths)
	v.SetDefault("analysis.leakage_top_n", defaults.LeakageTopN)

	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("tui.theme", "default")

	sheetDefaults := sheets.DefaultConfig()
	v.SetDefault("sheets.spreadsheet_name", sheetDefaults.SpreadsheetName)
	v.SetDefault("sheets.time_zone", sheetDefaults.TimeZone)
	v.SetDefault("sheets.batch_size", sheetDefaults.BatchSize)
	v.SetDefault("sheets.retry_attempts", sheetDefaults.RetryAttempts)
	v.SetDefault("sheets.retry_delay", sheetDefaults.RetryDelay)
	v.SetDefault("sheets.enable_formatting", sheetDefaults.EnableFormatting)

	llmDefaults := llm.DefaultConfig()
	v.SetDefault("llm.provider", llmDefaults.Provider)
	v.SetDefault("llm.cache_ttl", llmDefaults.CacheTTL)
	v.SetDefault("llm.retry_delay", llmDefaults.RetryDelay)
	v.SetDefault("llm.temperature", llmDefaults.Temperature)
	v.SetDefault("llm.max_tokens", llmDefaults.MaxTokens)
	v.SetDefault("llm.max_retries", llmDefaults.MaxRetries)
	v.SetDefault("llm.rate_limit", llmDefaults.RateLimit)

	v.SetDefault("plaid.environment", "sandbox")
}

// LoadAnalyzerConfig reads the analysis.* thresholds.
func LoadAnalyzerConfig(v *viper.Viper) (analysis.Config, error) {
	order, err := statement.ParseDateOrder(v.GetString("analysis.date_order"))
	if err != nil {
		return analysis.Config{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	cfg := analysis.Config{
		DateOrder:                order,
		RecurringMinTransactions: v.GetInt("analysis.recurring_min_transactions"),
		RecurringMinMonths:       v.GetInt("analysis.recurring_min_months"),
		LeakageTopN:              v.GetInt("analysis.leakage_top_n"),
	}
	if err := cfg.Validate(); err != nil {
		return analysis.Config{}, err
	}
	return cfg, nil
}

// LoadClassifier builds the merchant classifier, with any classification.rules ahead of the built-in ones.
func LoadClassifier(v *viper.Viper) (*classification.Classifier, error) {
	var rules []classification.Rule
	if err := v.UnmarshalKey("classification.rules", &rules); err != nil {
		return nil, fmt.Errorf("%w: classification.rules: %w", common.ErrInvalidConfig, err)
	}
	return classification.NewClassifier(rules)
}

// DatabasePath returns the expanded SQLite database path.
func DatabasePath(v *viper.Viper) string {
	return ExpandPath(v.GetString("database.path"))
}

// LoadSheetsConfig reads sheets.*, falling back to GOOGLE_SHEETS_* environment variables.
func LoadSheetsConfig(v *viper.Viper) (sheets.Config, error) {
	cfg := sheets.DefaultConfig()
	if err := v.UnmarshalKey("sheets", &cfg); err != nil {
		return sheets.Config{}, fmt.Errorf("%w: sheets: %w", common.ErrInvalidConfig, err)
	}

	fallback(&cfg.ServiceAccountPath, "GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH")
	fallback(&cfg.ClientID, "GOOGLE_SHEETS_CLIENT_ID")
	fallback(&cfg.ClientSecret, "GOOGLE_SHEETS_CLIENT_SECRET")
	fallback(&cfg.RefreshToken, "GOOGLE_SHEETS_REFRESH_TOKEN")
	fallback(&cfg.SpreadsheetID, "GOOGLE_SHEETS_SPREADSHEET_ID")

	cfg.ServiceAccountPath = ExpandPath(cfg.ServiceAccountPath)
	cfg.TokenFile = ExpandPath(cfg.TokenFile)

	if err := cfg.Validate(); err != nil {
		return sheets.Config{}, err
	}
	return cfg, nil
}

// LoadPlaidConfig reads plaid.*, falling back to PLAID_* environment variables.
func LoadPlaidConfig(v *viper.Viper) (plaid.Config, error) {
	cfg := plaid.Config{Environment: v.GetString("plaid.environment")}
	if err := v.UnmarshalKey("plaid", &cfg); err != nil {
		return plaid.Config{}, fmt.Errorf("%w: plaid: %w", common.ErrInvalidConfig, err)
	}

	fallback(&cfg.ClientID, "PLAID_CLIENT_ID")
	fallback(&cfg.Secret, "PLAID_SECRET")
	fallback(&cfg.AccessToken, "PLAID_ACCESS_TOKEN")

	if err := cfg.Validate(); err != nil {
		return plaid.Config{}, err
	}
	return cfg, nil
}

// LoadLLMConfig reads llm.*, falling back to the provider's usual API key variable.
func LoadLLMConfig(v *viper.Viper) (llm.Config, error) {
	cfg := llm.DefaultConfig()
	if err := v.UnmarshalKey("llm", &cfg); err != nil {
		return llm.Config{}, fmt.Errorf("%w: llm: %w", common.ErrInvalidConfig, err)
	}

	switch cfg.Provider {
	case "gemini":
		fallback(&cfg.APIKey, "GEMINI_API_KEY")
	default:
		fallback(&cfg.APIKey, "ANTHROPIC_API_KEY")
	}

	if cfg.APIKey == "" {
		return llm.Config{}, fmt.Errorf("%w: llm.api_key is required for provider %q", common.ErrMissingConfig, cfg.Provider)
	}
	return cfg, nil
}

func fallback(dst *string, env string) {
	if *dst == "" {
		*dst = os.Getenv(env)
	}
}
