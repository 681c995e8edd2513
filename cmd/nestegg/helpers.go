package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/nestegg/internal/analysis"
	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/config"
	"github.com/Veraticus/nestegg/internal/gcs"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/storage"
	"github.com/spf13/viper"
)

// initStorage opens the analysis database and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	return openStorage(ctx, config.DatabasePath(viper.GetViper()))
}

func openStorage(ctx context.Context, path string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newAnalyzer builds an analyzer from the analysis.* and classification.* settings.
func newAnalyzer(v *viper.Viper) (*analysis.Analyzer, error) {
	cfg, err := config.LoadAnalyzerConfig(v)
	if err != nil {
		return nil, err
	}

	classifier, err := config.LoadClassifier(v)
	if err != nil {
		return nil, err
	}

	return analysis.NewAnalyzer(cfg, analysis.Deps{
		Classifier: classifier,
		Logger:     slog.Default(),
	})
}

// currentUser returns the --user flag, NESTEGG_USER or the configured user.
func currentUser() string {
	if user := strings.TrimSpace(viper.GetString("user")); user != "" {
		return user
	}
	return "default"
}

// loadLatest returns the user's most recent stored analysis.
func loadLatest(ctx context.Context, store *storage.SQLiteStorage, user string) (*model.BankStatementAnalysis, error) {
	a, err := store.GetAnalysis(ctx, user)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, common.NewUserError(
			fmt.Sprintf("no analysis stored for %q; run `nestegg analyze --save` first", user),
			common.ErrNotFound)
	}
	return a, nil
}

func hasRemote(names ...string) bool {
	for _, name := range names {
		if strings.HasPrefix(name, "gs://") {
			return true
		}
	}
	return false
}

// openRemote creates a Cloud Storage client only when one of names needs it.
func openRemote(ctx context.Context, names ...string) (*gcs.Client, func(), error) {
	if !hasRemote(names...) {
		return nil, func() {}, nil
	}

	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	return client, func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close storage client", "error", err)
		}
	}, nil
}
