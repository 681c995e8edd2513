package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Writer exports analyses to Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: srv,
		logger:  logger.With("component", "sheets"),
	}, nil
}

// Write replaces the contents of every report tab with the analysis and
// returns the spreadsheet ID.
func (w *Writer) Write(ctx context.Context, analysis *model.BankStatementAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("%w: analysis is nil", common.ErrInvalidConfig)
	}

	tabs := BuildReport(analysis)
	w.logger.Info("Starting sheets export",
		"period_start", analysis.StartDate,
		"period_end", analysis.EndDate,
		"tabs", len(tabs))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx, tabs)
	if err != nil {
		return "", fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	sheetIDs, err := w.ensureTabs(ctx, spreadsheetID, tabs)
	if err != nil {
		return "", fmt.Errorf("failed to prepare tabs: %w", err)
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	rows := 0
	for _, tab := range tabs {
		err := common.WithRetry(ctx, func() error {
			if clearErr := w.clearTab(ctx, spreadsheetID, tab.Title); clearErr != nil {
				return clearErr
			}
			return w.writeTab(ctx, spreadsheetID, tab)
		}, retryOpts)
		if err != nil {
			return "", fmt.Errorf("failed to write %s tab: %w", tab.Title, err)
		}
		rows += len(tab.Rows)
	}

	if w.config.EnableFormatting {
		err := common.WithRetry(ctx, func() error {
			return w.applyFormatting(ctx, spreadsheetID, tabs, sheetIDs)
		}, retryOpts)
		if err != nil {
			// The data is already written
			w.logger.Warn("Failed to apply formatting", "error", err)
		}
	}

	w.logger.Info("Sheets export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", rows)

	return spreadsheetID, nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}
		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthCfg := OAuth2Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			TokenFile:    config.TokenFile,
		}

		token := &oauth2.Token{RefreshToken: config.RefreshToken, TokenType: "Bearer"}
		if config.RefreshToken == "" {
			saved, err := GetOrCreateToken(ctx, oauthCfg)
			if err != nil {
				return nil, err
			}
			token = saved
		}
		tokenSource = oauthCfg.oauth2Config().TokenSource(ctx, token)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return srv, nil
}

// getOrCreateSpreadsheet gets the configured spreadsheet or creates a new one with every tab.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context, tabs []Tab) (string, error) {
	if w.config.SpreadsheetID != "" {
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
	}
	for _, tab := range tabs {
		spreadsheet.Sheets = append(spreadsheet.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{Title: tab.Title},
		})
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("Created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	return created.SpreadsheetId, nil
}

// ensureTabs adds any missing report tabs and returns every tab's sheet ID by title.
func (w *Writer) ensureTabs(ctx context.Context, spreadsheetID string, tabs []Tab) (map[string]int64, error) {
	existing, err := w.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to access spreadsheet %s: %w", spreadsheetID, err)
	}

	ids := make(map[string]int64, len(existing.Sheets))
	for _, s := range existing.Sheets {
		ids[s.Properties.Title] = s.Properties.SheetId
	}

	var requests []*sheets.Request
	for _, title := range missingTabs(ids, tabs) {
		requests = append(requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		})
	}
	if len(requests) == 0 {
		return ids, nil
	}

	resp, err := w.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to add tabs: %w", err)
	}
	for _, reply := range resp.Replies {
		if reply.AddSheet != nil {
			props := reply.AddSheet.Properties
			ids[props.Title] = props.SheetId
		}
	}
	return ids, nil
}

func missingTabs(existing map[string]int64, tabs []Tab) []string {
	var missing []string
	for _, tab := range tabs {
		if _, ok := existing[tab.Title]; !ok {
			missing = append(missing, tab.Title)
		}
	}
	return missing
}

func (w *Writer) clearTab(ctx context.Context, spreadsheetID, title string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "'"+title+"'", &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}

// writeTab writes a tab's rows in batches to stay under API payload limits.
func (w *Writer) writeTab(ctx context.Context, spreadsheetID string, tab Tab) error {
	for _, b := range batches(len(tab.Rows), w.config.BatchSize) {
		valueRange := &sheets.ValueRange{Values: tab.Rows[b.start:b.end]}

		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, rangeFor(tab.Title, b.start+1), valueRange).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", b.start+1, err)
		}

		w.logger.Debug("Wrote batch", "tab", tab.Title, "start_row", b.start+1, "rows", b.end-b.start)
	}
	return nil
}

type batch struct {
	start int
	end   int
}

func batches(total, size int) []batch {
	if size <= 0 {
		size = total
	}
	var out []batch
	for i := 0; i < total; i += size {
		out = append(out, batch{start: i, end: min(i+size, total)})
	}
	return out
}

// applyFormatting bolds and freezes each header row, formats money columns and resizes columns.
func (w *Writer) applyFormatting(ctx context.Context, spreadsheetID string, tabs []Tab, sheetIDs map[string]int64) error {
	var requests []*sheets.Request
	for _, tab := range tabs {
		id, ok := sheetIDs[tab.Title]
		if !ok {
			continue
		}
		requests = append(requests, formatRequests(id, tab)...)
	}
	if len(requests) == 0 {
		return nil
	}

	_, err := w.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}

func formatRequests(sheetID int64, tab Tab) []*sheets.Request {
	width := int64(0)
	for _, row := range tab.Rows {
		width = max(width, int64(len(row)))
	}

	requests := []*sheets.Request{
		{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    0,
					EndRowIndex:      1,
					StartColumnIndex: 0,
					EndColumnIndex:   width,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{Bold: true},
					},
				},
				Fields: "userEnteredFormat.textFormat",
			},
		},
		{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId:        sheetID,
					GridProperties: &sheets.GridProperties{FrozenRowCount: 1},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		},
	}

	for _, col := range tab.MoneyColumns {
		requests = append(requests, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    1,
					EndRowIndex:      int64(len(tab.Rows)),
					StartColumnIndex: int64(col),
					EndColumnIndex:   int64(col) + 1,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						NumberFormat: &sheets.NumberFormat{
							Type:    "CURRENCY",
							Pattern: "$#,##0.00",
						},
					},
				},
				Fields: "userEnteredFormat.numberFormat",
			},
		})
	}

	return append(requests, &sheets.Request{
		AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
			Dimensions: &sheets.DimensionRange{
				SheetId:    sheetID,
				Dimension:  "COLUMNS",
				StartIndex: 0,
				EndIndex:   width,
			},
		},
	})
}
