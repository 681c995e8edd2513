package main

import (
	"github.com/Veraticus/nestegg/internal/analysis"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/statement"
	"github.com/Veraticus/nestegg/internal/tui"
	"github.com/Veraticus/nestegg/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [FILE...]",
		Short: "Browse an analysis interactively",
		Long: `Browse an analysis in the terminal. With files, they are analyzed first;
without, the latest stored analysis for the user is shown.`,
		RunE: runView,
	}

	cmd.Flags().String("employer", "", "employer name; matching income is treated as salary")
	cmd.Flags().String("employment-type", "", "employment type, e.g. full-time")
	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")

	_ = viper.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var result *model.BankStatementAnalysis
	if len(args) > 0 {
		employer, _ := cmd.Flags().GetString("employer")
		employmentType, _ := cmd.Flags().GetString("employment-type")

		analyzer, err := newAnalyzer(viper.GetViper())
		if err != nil {
			return err
		}

		remote, closeRemote, err := openRemote(ctx, args...)
		if err != nil {
			return err
		}
		defer closeRemote()

		fetcher := statement.RoutingFetcher{Local: statement.LocalFetcher{}}
		if remote != nil {
			fetcher.Remote = remote
		}

		result, err = analyzeStatements(ctx, analyzer, fetcher, args, analysis.Hints{
			Employer:       employer,
			EmploymentType: employmentType,
		}, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	} else {
		store, err := initStorage(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if result, err = loadLatest(ctx, store, currentUser()); err != nil {
			return err
		}
	}

	cfg := tui.DefaultConfig()
	cfg.Theme = themes.ByName(viper.GetString("tui.theme"))
	return tui.Run(ctx, result, cfg)
}
