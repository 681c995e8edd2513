// Package sheets exports a finished analysis to a Google Sheets spreadsheet.
package sheets

import (
	"fmt"
	"time"

	"github.com/Veraticus/nestegg/internal/common"
)

// Config holds the configuration for the Google Sheets writer.
type Config struct {
	ClientID           string        `mapstructure:"client_id"`
	ClientSecret       string        `mapstructure:"client_secret"`
	RefreshToken       string        `mapstructure:"refresh_token"`
	TokenFile          string        `mapstructure:"token_file"`
	ServiceAccountPath string        `mapstructure:"service_account_path"`
	SpreadsheetID      string        `mapstructure:"spreadsheet_id"`
	SpreadsheetName    string        `mapstructure:"spreadsheet_name"`
	TimeZone           string        `mapstructure:"time_zone"`
	BatchSize          int           `mapstructure:"batch_size"`
	RetryAttempts      int           `mapstructure:"retry_attempts"`
	RetryDelay         time.Duration `mapstructure:"retry_delay"`
	EnableFormatting   bool          `mapstructure:"enable_formatting"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SpreadsheetName:  "Nestegg Analysis",
		TimeZone:         "Australia/Sydney",
		EnableFormatting: true,
		BatchSize:        1000,
		RetryAttempts:    3,
		RetryDelay:       time.Second,
	}
}

// hasOAuth reports whether a complete set of OAuth2 client credentials is present.
// The refresh token may instead live in TokenFile.
func (c *Config) hasOAuth() bool {
	return c.ClientID != "" && c.ClientSecret != "" && (c.RefreshToken != "" || c.TokenFile != "")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	hasOAuth := c.hasOAuth()
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("%w: no Google Sheets authentication method configured", common.ErrMissingConfig)
	}
	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("%w: multiple authentication methods configured; use either OAuth2 or service account",
			common.ErrInvalidConfig)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive", common.ErrInvalidConfig)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: retry attempts cannot be negative", common.ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}
