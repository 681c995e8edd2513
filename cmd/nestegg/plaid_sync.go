package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/nestegg/internal/analysis"
	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/config"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/plaid"
	"github.com/Veraticus/nestegg/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func plaidSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plaid-sync",
		Short: "Analyze transactions pulled from a Plaid connection",
		Long: `Fetch recent transactions from a connected Plaid item and analyze them as if
they had been exported as a statement.

Requires plaid.client_id, plaid.secret and plaid.access_token (or the
PLAID_CLIENT_ID, PLAID_SECRET and PLAID_ACCESS_TOKEN environment variables).`,
		Args: cobra.NoArgs,
		RunE: runPlaidSync,
	}

	cmd.Flags().IntP("days", "d", 90, "number of days of history to fetch")
	cmd.Flags().String("employer", "", "employer name; matching income is treated as salary")
	cmd.Flags().String("employment-type", "", "employment type, e.g. full-time")
	cmd.Flags().StringP("output", "o", outputSummary, "output format (summary, json)")
	cmd.Flags().Bool("save", false, "store the analysis for later show, view and export")

	return cmd
}

func runPlaidSync(cmd *cobra.Command, _ []string) error {
	days, _ := cmd.Flags().GetInt("days")
	employer, _ := cmd.Flags().GetString("employer")
	employmentType, _ := cmd.Flags().GetString("employment-type")
	format, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")

	if err := validateOutput(format); err != nil {
		return err
	}

	cfg, err := config.LoadPlaidConfig(viper.GetViper())
	if err != nil {
		return err
	}

	client, err := plaid.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create Plaid client: %w", err)
	}

	analyzer, err := newAnalyzer(viper.GetViper())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := syncTransactions(ctx, client, analyzer, days, time.Now(), analysis.Hints{
		Employer:       employer,
		EmploymentType: employmentType,
	})
	if err != nil {
		return common.NewUserError("could not sync transactions from Plaid", err)
	}

	if save {
		id, err := saveAnalysis(ctx, currentUser(), result)
		if err != nil {
			return err
		}
		slog.Info("Saved analysis", "id", id, "user", currentUser())
	}

	return emitAnalysis(ctx, cmd.OutOrStdout(), nil, result, format, "")
}

// syncTransactions fetches the last days of transactions ending at now and analyzes them.
func syncTransactions(ctx context.Context, fetcher service.TransactionFetcher, analyzer *analysis.Analyzer, days int, now time.Time, hints analysis.Hints) (*model.BankStatementAnalysis, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1", common.ErrInvalidConfig)
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -days)

	slog.Info("Fetching Plaid transactions",
		"start", start.Format(time.DateOnly),
		"end", end.Format(time.DateOnly))

	txns, err := fetcher.GetTransactions(ctx, start, end)
	if err != nil {
		return nil, err
	}

	slog.Info("Fetched Plaid transactions", "count", len(txns))
	return analyzer.AnalyzeTransactions(txns, hints), nil
}
