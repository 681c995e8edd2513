package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/nestegg/internal/cli"
	"github.com/Veraticus/nestegg/internal/service"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the latest stored analysis",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	cmd.Flags().StringP("output", "o", outputSummary, "output format (summary, json)")
	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	format, _ := cmd.Flags().GetString("output")
	if err := validateOutput(format); err != nil {
		return err
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

	return emitAnalysis(ctx, cmd.OutOrStdout(), nil, a, format, "")
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List stored analyses, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	user := currentUser()
	records, err := store.ListAnalyses(ctx, user)
	if err != nil {
		return err
	}

	return printHistory(cmd.OutOrStdout(), user, records)
}

func printHistory(w io.Writer, user string, records []service.AnalysisRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf("No stored analyses for %s", user)))
		return err
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle(fmt.Sprintf("Analyses for %s", user)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%-36s  %-16s  %-20s  %6s  %12s\n", "ID", "Created", "Period", "Months", "Spend/mo")
	for _, r := range records {
		fmt.Fprintf(&b, "%-36s  %-16s  %-20s  %6d  %12s\n",
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.StartMonth+" to "+r.EndMonth,
			r.Months,
			cli.FormatMoney(r.MonthlyAverageSpend))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored analysis for the user",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	user := currentUser()
	n, err := store.DeleteAnalyses(ctx, user)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted %d analyses for %s", n, user)))
	return err
}
