// Package plaid pulls bank transactions from the Plaid API as an alternative to statement files.
package plaid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/service"
	"github.com/plaid/plaid-go/v20/plaid"
)

const (
	dateLayout = "2006-01-02"
	// Plaid's max page size.
	pageSize = int32(500)
)

// Config holds Plaid API configuration.
type Config struct {
	ClientID    string `mapstructure:"client_id"`
	Secret      string `mapstructure:"secret"`
	Environment string `mapstructure:"environment"` // sandbox or production
	AccessToken string `mapstructure:"access_token"`
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	switch {
	case c.ClientID == "":
		return fmt.Errorf("%w: plaid client ID is required", common.ErrMissingConfig)
	case c.Secret == "":
		return fmt.Errorf("%w: plaid secret is required", common.ErrMissingConfig)
	case c.AccessToken == "":
		return fmt.Errorf("%w: plaid access token is required", common.ErrMissingConfig)
	case c.Environment == "":
		return fmt.Errorf("%w: plaid environment is required", common.ErrMissingConfig)
	}

	if _, ok := environments[c.Environment]; !ok {
		return fmt.Errorf("%w: plaid environment must be sandbox or production, got %q",
			common.ErrInvalidConfig, c.Environment)
	}
	return nil
}

var environments = map[string]plaid.Environment{
	"sandbox":    plaid.Sandbox,
	"production": plaid.Production,
}

// Client implements service.TransactionFetcher against one linked Item.
type Client struct {
	client      *plaid.APIClient
	logger      *slog.Logger
	retryOpts   service.RetryOptions
	accessToken string
}

// NewClient creates a new Plaid client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.Secret)
	configuration.UseEnvironment(environments[cfg.Environment])

	return &Client{
		client:      plaid.NewAPIClient(configuration),
		accessToken: cfg.AccessToken,
		logger:      slog.Default().With("component", "plaid"),
		retryOpts: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 1 * time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
	}, nil
}

// GetTransactions fetches every transaction posted between startDate and endDate inclusive.
// Amounts come back in statement convention: negative is money out.
func (c *Client) GetTransactions(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error) {
	if ctx == nil {
		return nil, errors.New("context cannot be nil")
	}
	if startDate.After(endDate) {
		return nil, errors.New("start date must be before end date")
	}

	c.logger.Info("Fetching transactions from Plaid",
		"start_date", startDate.Format(dateLayout),
		"end_date", endDate.Format(dateLayout))

	var all []plaid.Transaction
	offset := int32(0)

	for {
		var page []plaid.Transaction

		err := common.WithRetry(ctx, func() error {
			request := plaid.NewTransactionsGetRequest(
				c.accessToken,
				startDate.Format(dateLayout),
				endDate.Format(dateLayout),
			)
			request.SetOptions(plaid.TransactionsGetRequestOptions{
				Count:  plaid.PtrInt32(pageSize),
				Offset: plaid.PtrInt32(offset),
			})

			resp, _, err := c.client.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*request).Execute()
			if err != nil {
				return c.classifyError(err)
			}

			page = resp.GetTransactions()
			c.logger.Debug("Fetched transaction batch",
				"count", len(page),
				"offset", offset,
				"total", resp.GetTotalTransactions())
			return nil
		}, c.retryOpts)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < int(pageSize) {
			break
		}
		offset += pageSize
	}

	transactions := make([]model.Transaction, 0, len(all))
	for _, pt := range all {
		tx, ok := mapPlaidTransaction(pt)
		if !ok {
			c.logger.Warn("Skipping Plaid transaction with unreadable date",
				"transaction_id", pt.GetTransactionId(),
				"date", pt.GetDate())
			continue
		}
		transactions = append(transactions, tx)
	}

	c.logger.Info("Fetched all transactions", "count", len(transactions))
	return transactions, nil
}

// classifyError marks rate limits as retryable and everything else as final.
func (c *Client) classifyError(err error) error {
	plaidErr := extractPlaidError(err)
	if plaidErr == nil {
		return fmt.Errorf("%w: %w", common.ErrPlaidConnection, err)
	}
	if plaidErr.ErrorCode == "RATE_LIMIT_EXCEEDED" {
		c.logger.Warn("Rate limit hit, will retry", "error", plaidErr.ErrorMessage)
		return &common.RetryableError{
			Err:       fmt.Errorf("%w: %s", common.ErrPlaidRateLimit, plaidErr.ErrorMessage),
			Retryable: true,
		}
	}
	return &common.RetryableError{
		Err:       fmt.Errorf("plaid API error: %s - %s", plaidErr.ErrorCode, plaidErr.ErrorMessage),
		Retryable: false,
	}
}

// extractPlaidError attempts to extract a Plaid error from a generic error.
func extractPlaidError(err error) *plaid.PlaidError {
	plaidErr, convErr := plaid.ToPlaidError(err)
	if convErr != nil {
		return nil
	}
	return &plaidErr
}

var _ service.TransactionFetcher = (*Client)(nil)
