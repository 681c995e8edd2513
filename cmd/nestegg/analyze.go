package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/nestegg/internal/analysis"
	"github.com/Veraticus/nestegg/internal/cli"
	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/statement"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	outputJSON    = "json"
	outputSummary = "summary"
)

// uploader stores rendered reports in object storage.
type uploader interface {
	Upload(ctx context.Context, uri string, data []byte, contentType string) error
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyze bank statement exports",
		Long: `Analyze one or more bank statement exports and report spending, recurring
charges, income and savings.

Files may be CSV, OFX or QFX, local paths or gs://bucket/object URIs. All files
are combined into a single analysis in the order given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().String("employer", "", "employer name; matching income is treated as salary")
	cmd.Flags().String("employment-type", "", "employment type, e.g. full-time")
	cmd.Flags().StringP("output", "o", outputSummary, "output format (summary, json)")
	cmd.Flags().String("out", "", "write the report to a file or gs:// URI instead of stdout")
	cmd.Flags().Bool("save", false, "store the analysis for later show, view and export")
	cmd.Flags().String("date-order", "", "ambiguous date order (day-first, month-first)")

	_ = viper.BindPFlag("analysis.date_order", cmd.Flags().Lookup("date-order"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	employer, _ := cmd.Flags().GetString("employer")
	employmentType, _ := cmd.Flags().GetString("employment-type")
	format, _ := cmd.Flags().GetString("output")
	out, _ := cmd.Flags().GetString("out")
	save, _ := cmd.Flags().GetBool("save")

	if err := validateOutput(format); err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Analysis")
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	analyzer, err := newAnalyzer(viper.GetViper())
	if err != nil {
		return err
	}

	remote, closeRemote, err := openRemote(ctx, append([]string{out}, args...)...)
	if err != nil {
		return err
	}
	defer closeRemote()

	fetcher := statement.RoutingFetcher{Local: statement.LocalFetcher{}}
	var up uploader
	if remote != nil {
		fetcher.Remote = remote
		up = remote
	}

	result, err := analyzeStatements(ctx, analyzer, fetcher, args, analysis.Hints{
		Employer:       employer,
		EmploymentType: employmentType,
	}, cmd.ErrOrStderr())
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		return common.NewUserError("could not analyze statements", err)
	}

	if save {
		id, err := saveAnalysis(ctx, currentUser(), result)
		if err != nil {
			return err
		}
		slog.Info("Saved analysis", "id", id, "user", currentUser())
	}

	return emitAnalysis(ctx, cmd.OutOrStdout(), up, result, format, out)
}

// analyzeStatements loads names in order and analyzes them as one batch.
// A progress bar is drawn on progress for batches of more than one file.
func analyzeStatements(ctx context.Context, analyzer *analysis.Analyzer, fetcher statement.Fetcher, names []string, hints analysis.Hints, progress io.Writer) (*model.BankStatementAnalysis, error) {
	var opts []statement.LoaderOption
	if progress != nil && len(names) > 1 {
		bar := cli.NewProgress(progress, len(names), "Reading statements")
		defer bar.Finish()
		opts = append(opts, statement.WithProgress(bar.Step))
	}

	files, err := statement.NewLoader(fetcher, opts...).Load(ctx, names)
	if err != nil {
		return nil, err
	}

	return analyzer.AnalyzeFiles(ctx, files, hints)
}

func saveAnalysis(ctx context.Context, user string, a *model.BankStatementAnalysis) (string, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = store.Close() }()

	return store.SaveAnalysis(ctx, user, a)
}

func validateOutput(format string) error {
	switch format {
	case outputJSON, outputSummary:
		return nil
	default:
		return fmt.Errorf("%w: unknown output format %q (want %s or %s)", common.ErrInvalidConfig, format, outputSummary, outputJSON)
	}
}

// renderAnalysis returns the report bytes and their content type.
func renderAnalysis(a *model.BankStatementAnalysis, format string) ([]byte, string, error) {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode analysis: %w", err)
		}
		return append(data, '\n'), "application/json", nil
	case outputSummary:
		return []byte(analysis.NewCLIFormatter().FormatSummary(a) + "\n"), "text/plain; charset=utf-8", nil
	default:
		return nil, "", validateOutput(format)
	}
}

// emitAnalysis writes the report to w, a local file or a gs:// object.
func emitAnalysis(ctx context.Context, w io.Writer, up uploader, a *model.BankStatementAnalysis, format, out string) error {
	data, contentType, err := renderAnalysis(a, format)
	if err != nil {
		return err
	}

	switch {
	case out == "":
		_, err = w.Write(data)
		return err
	case strings.HasPrefix(out, "gs://"):
		if up == nil {
			return fmt.Errorf("%w: no object storage configured for %s", common.ErrMissingConfig, out)
		}
		if err := up.Upload(ctx, out, data, contentType); err != nil {
			return err
		}
	default:
		if err := os.WriteFile(out, data, 0o600); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	_, err = fmt.Fprintln(w, cli.FormatSuccess("Report written to "+out))
	return err
}
