package statement

import (
	"testing"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecords(t *testing.T) {
	rows := [][]string{
		{" Date ", "", "Amount", "Amount"},
		{"01/03/2025", "COLES", "-12.50", "x"},
		{"02/03/2025"},
		{"03/03/2025", "AGL", "-80", "y", "ignored"},
	}

	header, records := BuildRecords(rows)

	assert.Equal(t, []string{"Date", "column_2", "Amount", "Amount.1"}, header)
	require.Len(t, records, 3)

	assert.Equal(t, model.Record{"Date": "01/03/2025", "column_2": "COLES", "Amount": "-12.50", "Amount.1": "x"}, records[0])
	assert.Equal(t, model.Record{"Date": "02/03/2025", "column_2": "", "Amount": "", "Amount.1": ""}, records[1])
	assert.Len(t, records[2], 4)
}

func TestBuildRecords_Empty(t *testing.T) {
	header, records := BuildRecords(nil)
	assert.Nil(t, header)
	assert.Nil(t, records)

	header, records = BuildRecords([][]string{{"Date", "Amount"}})
	assert.Equal(t, []string{"Date", "Amount"}, header)
	assert.Empty(t, records)
}

func TestRecordLookup(t *testing.T) {
	r := model.Record{"Narration": "UBER", "Date": ""}

	v, ok := r.Lookup("Description", "Narration")
	assert.True(t, ok)
	assert.Equal(t, "UBER", v)

	v, ok = r.Lookup("Date")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = r.Lookup("Memo")
	assert.False(t, ok)
}
