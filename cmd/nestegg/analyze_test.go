package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/nestegg/internal/analysis"
	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/config"
	"github.com/Veraticus/nestegg/internal/statement"
	"github.com/Veraticus/nestegg/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnalyzer(t *testing.T) *analysis.Analyzer {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	a, err := newAnalyzer(v)
	require.NoError(t, err)
	return a
}

func writeStatements(t *testing.T) []string {
	t.Helper()
	march := testutil.NewStatement("Date", "Description", "Amount").
		Row("05/03/2025", "NETFLIX.COM", "-15.99").
		Row("14/03/2025", "PAYROLL WIDGETCO", "3200.00").
		Row("20/03/2025", "AGL ENERGY", "-180.00").
		Write(t, "march.csv")
	april := testutil.NewStatement("Transaction Date", "Narration", "Debit", "Credit").
		WithBOM().
		WithCRLF().
		Row("05/04/2025", "NETFLIX.COM", "15.99", "").
		Row("14/04/2025", "PAYROLL WIDGETCO", "", "3200.00").
		Row("18/04/2025", "AGL ENERGY", "180.00", "").
		Write(t, "april.csv")
	return []string{march, april}
}

func TestAnalyzeStatements(t *testing.T) {
	ctx := context.Background()
	names := writeStatements(t)

	var progress bytes.Buffer
	got, err := analyzeStatements(ctx, testAnalyzer(t), statement.RoutingFetcher{}, names, analysis.Hints{}, &progress)
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-03", "2025-04"}, got.MonthsCovered)
	assert.Equal(t, 6, got.TotalTransactions)
	assert.NotEmpty(t, progress.String(), "a multi-file batch draws progress")

	var merchants []string
	for _, r := range got.RecurringExpenses {
		merchants = append(merchants, r.Name)
	}
	assert.Contains(t, merchants, "NETFLIXCOM")
}

func TestAnalyzeStatements_Errors(t *testing.T) {
	ctx := context.Background()
	noAmount := testutil.NewStatement("Date", "Description").
		Row("01/03/2025", "COFFEE").
		Write(t, "broken.csv")

	tests := []struct {
		check func(t *testing.T, err error)
		name  string
		names []string
	}{
		{
			name:  "no files",
			names: nil,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.ErrorIs(t, err, common.ErrNoSources)
			},
		},
		{
			name:  "missing file",
			names: []string{filepath.Join(t.TempDir(), "absent.csv")},
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
		{
			name:  "missing amount columns",
			names: []string{noAmount},
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.ErrorIs(t, err, common.ErrMissingColumn)
				assert.Contains(t, err.Error(), noAmount)
			},
		},
		{
			name:  "remote without storage",
			names: []string{"gs://bucket/march.csv"},
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.ErrorIs(t, err, common.ErrMissingConfig)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzeStatements(ctx, testAnalyzer(t), statement.RoutingFetcher{}, tt.names, analysis.Hints{}, nil)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

type fakeUploader struct {
	err         error
	uri         string
	contentType string
	data        []byte
}

func (f *fakeUploader) Upload(_ context.Context, uri string, data []byte, contentType string) error {
	f.uri = uri
	f.data = data
	f.contentType = contentType
	return f.err
}

func TestEmitAnalysis(t *testing.T) {
	ctx := context.Background()
	result, err := analyzeStatements(ctx, testAnalyzer(t), statement.RoutingFetcher{}, writeStatements(t), analysis.Hints{}, nil)
	require.NoError(t, err)

	t.Run("json to file is byte identical across runs", func(t *testing.T) {
		dir := t.TempDir()
		first := filepath.Join(dir, "first.json")
		second := filepath.Join(dir, "second.json")

		var out bytes.Buffer
		require.NoError(t, emitAnalysis(ctx, &out, nil, result, outputJSON, first))
		require.NoError(t, emitAnalysis(ctx, &out, nil, result, outputJSON, second))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Contains(t, string(a), `"monthsCovered": [`)
		assert.Contains(t, out.String(), first)
	})

	t.Run("summary to writer", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, emitAnalysis(ctx, &out, nil, result, outputSummary, ""))
		assert.Contains(t, out.String(), "2025-03")
	})

	t.Run("json to object storage", func(t *testing.T) {
		up := &fakeUploader{}
		var out bytes.Buffer
		require.NoError(t, emitAnalysis(ctx, &out, up, result, outputJSON, "gs://reports/latest.json"))
		assert.Equal(t, "gs://reports/latest.json", up.uri)
		assert.Equal(t, "application/json", up.contentType)
		assert.Contains(t, string(up.data), `"totalTransactions": 6`)
	})

	t.Run("upload failure", func(t *testing.T) {
		up := &fakeUploader{err: errors.New("denied")}
		err := emitAnalysis(ctx, &bytes.Buffer{}, up, result, outputJSON, "gs://reports/latest.json")
		assert.EqualError(t, err, "denied")
	})

	t.Run("object storage not configured", func(t *testing.T) {
		err := emitAnalysis(ctx, &bytes.Buffer{}, nil, result, outputJSON, "gs://reports/latest.json")
		assert.ErrorIs(t, err, common.ErrMissingConfig)
	})

	t.Run("unknown format", func(t *testing.T) {
		err := emitAnalysis(ctx, &bytes.Buffer{}, nil, result, "xml", "")
		assert.ErrorIs(t, err, common.ErrInvalidConfig)
	})
}

func TestRenderAnalysis_EmptyAnalysis(t *testing.T) {
	result := testAnalyzer(t).AnalyzeTransactions(nil, analysis.Hints{})

	data, contentType, err := renderAnalysis(result, outputJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Contains(t, string(data), `"monthsCovered": []`)
	assert.Contains(t, string(data), `"monthlyAverageSpend": 0`)
}

func TestHasRemote(t *testing.T) {
	assert.False(t, hasRemote())
	assert.False(t, hasRemote("", "march.csv"))
	assert.True(t, hasRemote("march.csv", "gs://bucket/april.csv"))
}

func TestLoadLatest_NoAnalysis(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestDB(t).Storage

	_, err := loadLatest(ctx, store, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.UserMessage, "alice")
}

func TestStoredAnalysisLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	store := db.Storage

	result, err := analyzeStatements(ctx, testAnalyzer(t), statement.RoutingFetcher{}, writeStatements(t), analysis.Hints{}, nil)
	require.NoError(t, err)

	id := db.SeedAnalysis("alice", result)

	latest, err := loadLatest(ctx, store, "alice")
	require.NoError(t, err)
	assert.Equal(t, result.MonthsCovered, latest.MonthsCovered)
	assert.True(t, result.MonthlyAverageSpend.Equal(latest.MonthlyAverageSpend))

	records, err := store.ListAnalyses(ctx, "alice")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printHistory(&out, "alice", records))
	assert.Contains(t, out.String(), id)
	assert.Contains(t, out.String(), "2025-03 to 2025-04")

	n, err := store.DeleteAnalyses(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out.Reset()
	require.NoError(t, printHistory(&out, "alice", nil))
	assert.Contains(t, out.String(), "No stored analyses for alice")
}

func TestCurrentUser(t *testing.T) {
	t.Cleanup(func() { viper.Set("user", nil) })

	viper.Set("user", "  ")
	assert.Equal(t, "default", currentUser())

	viper.Set("user", "bob")
	assert.Equal(t, "bob", currentUser())
}
