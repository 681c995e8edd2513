package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "-25.50", expected: "-25.5"},
		{raw: "$1,234.56", expected: "1234.56"},
		{raw: "+$20", expected: "20"},
		{raw: "($15.00)", expected: "-15"},
		{raw: "(-15.00)", expected: "-15"},
		{raw: "AUD 9.99", expected: "9.99"},
		{raw: "", expected: "0"},
		{raw: "n/a", expected: "0"},
		{raw: "1.2.3", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanAmount(tt.raw).String())
		})
	}
}

func TestApplyIndicator(t *testing.T) {
	amount := decimal.RequireFromString("42.10")

	assert.Equal(t, "-42.1", applyIndicator(amount, "DR").String())
	assert.Equal(t, "42.1", applyIndicator(amount.Neg(), "cr").String())
	assert.Equal(t, "42.1", applyIndicator(amount, "CR/DR").String())
	assert.Equal(t, "-42.1", applyIndicator(amount.Neg(), "").String())
}
