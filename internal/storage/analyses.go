package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaveAnalysis stores an analysis for a user and returns its generated ID.
func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, userID string, analysis *model.BankStatementAnalysis) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(userID, "userID"); err != nil {
		return "", err
	}
	if err := validateAnalysis(analysis); err != nil {
		return "", err
	}

	payload, err := json.Marshal(analysis)
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, user_id, created_at, months, start_month, end_month, monthly_average_spend, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		userID,
		time.Now().UTC(),
		len(analysis.MonthsCovered),
		analysis.StartDate,
		analysis.EndDate,
		analysis.MonthlyAverageSpend.String(),
		string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save analysis: %w", err)
	}

	return id, nil
}

// GetAnalysis returns the most recent analysis for a user, or nil if there is none.
func (s *SQLiteStorage) GetAnalysis(ctx context.Context, userID string) (*model.BankStatementAnalysis, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM analyses
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // No stored analysis is a valid result
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	return decodeAnalysis(payload)
}

// GetAnalysisByID returns one stored analysis. It wraps common.ErrNotFound
// when the ID is unknown.
func (s *SQLiteStorage) GetAnalysisByID(ctx context.Context, id string) (*model.BankStatementAnalysis, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM analyses WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis %s: %w", id, ErrAnalysisNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}

	return decodeAnalysis(payload)
}

// ListAnalyses returns a user's stored analyses, newest first, without payloads.
func (s *SQLiteStorage) ListAnalyses(ctx context.Context, userID string) ([]service.AnalysisRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, created_at, months, start_month, end_month, monthly_average_spend
		FROM analyses
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []service.AnalysisRecord{}
	for rows.Next() {
		var (
			r     service.AnalysisRecord
			spend string
		)
		if err := rows.Scan(&r.ID, &r.UserID, &r.CreatedAt, &r.Months, &r.StartMonth, &r.EndMonth, &spend); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if r.MonthlyAverageSpend, err = decimal.NewFromString(spend); err != nil {
			return nil, fmt.Errorf("corrupt monthly spend for analysis %s: %w", r.ID, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}

	return records, nil
}

// DeleteAnalyses removes every stored analysis for a user and returns how many were removed.
func (s *SQLiteStorage) DeleteAnalyses(ctx context.Context, userID string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete analyses: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted analyses: %w", err)
	}
	return int(n), nil
}

func decodeAnalysis(payload string) (*model.BankStatementAnalysis, error) {
	var a model.BankStatementAnalysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return &a, nil
}

var _ service.AnalysisStore = (*SQLiteStorage)(nil)
