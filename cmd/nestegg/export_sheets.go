package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/nestegg/internal/cli"
	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/config"
	"github.com/Veraticus/nestegg/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-sheets",
		Short: "Export the latest stored analysis to Google Sheets",
		Long: `Export the latest stored analysis to a Google Sheets spreadsheet with
Summary, Monthly, Categories, Recurring and Income tabs.

Authentication uses a service account (sheets.service_account_path) or OAuth2
client credentials (sheets.client_id and sheets.client_secret). Without a
refresh token the OAuth2 flow opens a browser once and caches the token.`,
		Args: cobra.NoArgs,
		RunE: runExportSheets,
	}

	cmd.Flags().String("spreadsheet-id", "", "update this spreadsheet instead of creating one")

	return cmd
}

func runExportSheets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadSheetsConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if id, _ := cmd.Flags().GetString("spreadsheet-id"); id != "" {
		cfg.SpreadsheetID = id
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

	writer, err := sheets.NewWriter(ctx, cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create sheets writer: %w", err)
	}

	id, err := writer.Write(ctx, a)
	if err != nil {
		return common.NewUserError("could not export to Google Sheets", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
		"Exported to https://docs.google.com/spreadsheets/d/"+id))
	return err
}
