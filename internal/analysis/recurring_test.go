package analysis

import (
	"testing"

	"github.com/Veraticus/nestegg/internal/classification"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRecurring_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name     string
		txns     []model.Transaction
		expected int
	}{
		{
			name: "two charges in two months",
			txns: []model.Transaction{
				txn("2025-01-05", "SPOTIFY", "-12.99"),
				txn("2025-02-05", "SPOTIFY", "-12.99"),
			},
			expected: 1,
		},
		{
			name: "three charges in one month",
			txns: []model.Transaction{
				txn("2025-01-05", "SPOTIFY", "-12.99"),
				txn("2025-01-12", "SPOTIFY", "-12.99"),
				txn("2025-01-19", "SPOTIFY", "-12.99"),
			},
			expected: 0,
		},
		{
			name: "one charge",
			txns: []model.Transaction{
				txn("2025-01-05", "SPOTIFY", "-12.99"),
			},
			expected: 0,
		},
		{
			name: "different whole dollar amounts",
			txns: []model.Transaction{
				txn("2025-01-05", "SPOTIFY", "-12.99"),
				txn("2025-02-05", "SPOTIFY", "-14.99"),
			},
			expected: 0,
		},
		{
			name: "same rounded amount",
			txns: []model.Transaction{
				txn("2025-01-05", "SPOTIFY", "-12.70"),
				txn("2025-02-05", "SPOTIFY", "-13.20"),
			},
			expected: 1,
		},
		{
			name: "inflows are ignored",
			txns: []model.Transaction{
				txn("2025-01-05", "SPOTIFY REFUND", "12.99"),
				txn("2025-02-05", "SPOTIFY REFUND", "12.99"),
			},
			expected: 0,
		},
		{
			name: "internal transfers are ignored",
			txns: []model.Transaction{
				txn("2025-01-05", "TRANSFER TO SAVER", "-500"),
				txn("2025-02-05", "TRANSFER TO SAVER", "-500"),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectRecurring(derive(tt.txns...), classification.Default(), 2, 2)
			assert.Len(t, got, tt.expected)
		})
	}
}

func TestDetectRecurring_Fields(t *testing.T) {
	got := DetectRecurring(derive(
		txn("2025-01-04", "AGL Energy", "-120.00"),
		txn("2025-02-06", "AGL Energy", "-120.50"),
		txn("2025-03-05", "AGL Energy", "-119.80"),
		txn("2025-01-07", "Netflix", "-15.99"),
		txn("2025-02-07", "Netflix", "-15.99"),
	), classification.Default(), 2, 2)

	require.Len(t, got, 2)

	agl := got[0]
	assert.Equal(t, "AGL ENERGY", agl.Name)
	assert.Equal(t, "120", agl.RoundedAmount.String())
	assert.Equal(t, "120.1", agl.AverageAmount.String())
	assert.Equal(t, agl.AverageAmount, agl.EstimatedMonthlyCost)
	assert.Equal(t, "5", agl.AverageDay.String())
	assert.Equal(t, 3, agl.TransactionCount)
	assert.Equal(t, 3, agl.MonthCount)
	assert.Equal(t, model.CategoryUtilities, agl.Category)
	assert.Equal(t, model.MacroEssential, agl.MacroCategory)

	assert.Equal(t, "NETFLIX", got[1].Name)
	assert.Equal(t, "15.99", got[1].EstimatedMonthlyCost.String())
}

func TestDetectRecurring_ConfigurableThresholds(t *testing.T) {
	txns := derive(
		txn("2025-01-05", "GYM", "-20"),
		txn("2025-01-19", "GYM", "-20"),
	)

	assert.Empty(t, DetectRecurring(txns, classification.Default(), 2, 2))
	assert.Len(t, DetectRecurring(txns, classification.Default(), 2, 1), 1)
}

func TestDetectRecurring_DeterministicTies(t *testing.T) {
	txns := derive(
		txn("2025-01-05", "ZIP", "-10"),
		txn("2025-02-05", "ZIP", "-10"),
		txn("2025-01-05", "ALPHA", "-10"),
		txn("2025-02-05", "ALPHA", "-10"),
	)

	got := DetectRecurring(txns, classification.Default(), 2, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "ALPHA", got[0].Name)
	assert.Equal(t, "ZIP", got[1].Name)
}
