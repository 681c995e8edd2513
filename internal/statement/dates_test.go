package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		order    DateOrder
		expected time.Time
		ok       bool
	}{
		{name: "first above twelve is the day", raw: "13/01/2025", order: DayFirst, expected: date(2025, 1, 13), ok: true},
		{name: "ambiguous defaults to day first", raw: "03/04/2025", order: DayFirst, expected: date(2025, 4, 3), ok: true},
		{name: "ambiguous month first", raw: "03/04/2025", order: MonthFirst, expected: date(2025, 3, 4), ok: true},
		{name: "first above twelve ignores month first", raw: "13/01/2025", order: MonthFirst, expected: date(2025, 1, 13), ok: true},
		{name: "second above twelve is the day", raw: "01/13/2025", order: DayFirst, expected: date(2025, 1, 13), ok: true},
		{name: "dashes", raw: "5-6-2024", order: DayFirst, expected: date(2024, 6, 5), ok: true},
		{name: "two digit year", raw: "31/12/24", order: DayFirst, expected: date(2024, 12, 31), ok: true},
		{name: "time suffix", raw: "02/03/2025 14:05", order: DayFirst, expected: date(2025, 3, 2), ok: true},
		{name: "surrounding whitespace", raw: "  02/03/2025 ", order: DayFirst, expected: date(2025, 3, 2), ok: true},
		{name: "iso fallback", raw: "2025-03-14", order: DayFirst, expected: date(2025, 3, 14), ok: true},
		{name: "month name fallback", raw: "14 Mar 2025", order: DayFirst, expected: date(2025, 3, 14), ok: true},
		{name: "compact fallback", raw: "20250314", order: DayFirst, expected: date(2025, 3, 14), ok: true},
		{name: "impossible calendar date", raw: "31/02/2025", order: DayFirst},
		{name: "both components above twelve", raw: "13/13/2025", order: DayFirst},
		{name: "footer text", raw: "Closing balance", order: DayFirst},
		{name: "empty", raw: "", order: DayFirst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw, tt.order)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseDateOrder(t *testing.T) {
	order, err := ParseDateOrder("")
	require.NoError(t, err)
	assert.Equal(t, DayFirst, order)

	order, err = ParseDateOrder(" Month-First ")
	require.NoError(t, err)
	assert.Equal(t, MonthFirst, order)

	_, err = ParseDateOrder("year-first")
	assert.Error(t, err)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
