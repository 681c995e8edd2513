package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/nestegg/internal/cli"
	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/config"
	"github.com/Veraticus/nestegg/internal/llm"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask an LLM for savings ideas based on the latest stored analysis",
		Args:  cobra.NoArgs,
		RunE:  runSuggest,
	}

	cmd.Flags().String("model", "", "model name (overrides llm.model)")

	return cmd
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadLLMConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if name, _ := cmd.Flags().GetString("model"); name != "" {
		cfg.Model = name
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	a, err := loadLatest(ctx, store, currentUser())
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	advisor := llm.NewAdvisor(client, cfg, slog.Default())
	defer advisor.Close()

	suggestions, err := suggest(ctx, advisor, a)
	if err != nil {
		return common.NewUserError("could not get suggestions", err)
	}

	return printSuggestions(cmd.OutOrStdout(), suggestions)
}

// suggest asks advisor about the analysis' category spend. An analysis with
// no spend yields no suggestions rather than an error.
func suggest(ctx context.Context, advisor service.Advisor, a *model.BankStatementAnalysis) ([]service.Suggestion, error) {
	items := llm.SpendItems(a)
	if len(items) == 0 {
		return nil, nil
	}

	suggestions, err := advisor.Suggest(ctx, items)
	if errors.Is(err, common.ErrNoSuggestions) {
		return nil, nil
	}
	return suggestions, err
}

func printSuggestions(w io.Writer, suggestions []service.Suggestion) error {
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(w, cli.FormatInfo("No suggestions for this analysis"))
		return err
	}

	var b strings.Builder
	for i, s := range suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cli.FormatTitle(s.Title))
		b.WriteString("\n")
		if s.Category != "" {
			fmt.Fprintf(&b, "  Category: %s\n", s.Category)
		}
		if s.Description != "" {
			fmt.Fprintf(&b, "  %s\n", s.Description)
		}
		if s.PotentialSavings != nil {
			fmt.Fprintf(&b, "  Potential savings: %s/mo\n", cli.FormatMoney(*s.PotentialSavings))
		}
		if s.EstimatedIncome != nil {
			fmt.Fprintf(&b, "  Estimated income: %s/mo\n", cli.FormatMoney(*s.EstimatedIncome))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
