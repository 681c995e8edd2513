// Package testutil provides shared fixtures for tests that need a migrated
// analysis database or statement files on disk.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/storage"
)

// TestDB is a migrated SQLite database living in the test's temp directory.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a migrated database that is closed when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	id := db.SeedAnalysis("alice", analysis)
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "nestegg.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return &TestDB{Storage: store, t: t}
}

// SeedAnalysis stores a for user and returns its id, failing the test on error.
func (db *TestDB) SeedAnalysis(user string, a *model.BankStatementAnalysis) string {
	db.t.Helper()

	id, err := db.Storage.SaveAnalysis(context.Background(), user, a)
	if err != nil {
		db.t.Fatalf("failed to seed analysis for %q: %v", user, err)
	}
	return id
}
