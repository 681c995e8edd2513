package statement

import (
	"testing"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardize_DebitCreditSign(t *testing.T) {
	mapping := ColumnMapping{Date: "Date", Description: "Description", Debit: "Debit", Credit: "Credit", Mode: AmountDebitCredit}
	records := []model.Record{
		{"Date": "01/03/2025", "Description": "COLES", "Debit": "50.00", "Credit": ""},
		{"Date": "02/03/2025", "Description": "REFUND", "Debit": "", "Credit": "50.00"},
		{"Date": "03/03/2025", "Description": "SIGNED DEBIT", "Debit": "-50.00", "Credit": ""},
	}

	txns, dropped := Standardize("cba.csv", records, mapping, DayFirst)

	require.Len(t, txns, 3)
	assert.Zero(t, dropped)
	assert.Equal(t, "-50", txns[0].Amount.String())
	assert.Equal(t, "50", txns[1].Amount.String())
	assert.Equal(t, "-50", txns[2].Amount.String(), "debit magnitude is always subtracted")
	assert.Equal(t, "cba.csv", txns[0].Source)
}

func TestStandardize_Indicator(t *testing.T) {
	mapping := ColumnMapping{Date: "Date", Description: "Details", Amount: "Amount", Indicator: "DR/CR", Mode: AmountSigned}
	records := []model.Record{
		{"Date": "01/03/2025", "Details": "OPTUS", "Amount": "89.00", "DR/CR": "DR"},
		{"Date": "02/03/2025", "Details": "PAYROLL", "Amount": "2500.00", "DR/CR": "CR"},
		{"Date": "03/03/2025", "Details": "ADJUSTMENT", "Amount": "-4.00", "DR/CR": ""},
	}

	txns, _ := Standardize("anz.csv", records, mapping, DayFirst)

	require.Len(t, txns, 3)
	assert.Equal(t, "-89", txns[0].Amount.String())
	assert.Equal(t, "2500", txns[1].Amount.String())
	assert.Equal(t, "-4", txns[2].Amount.String())
}

func TestStandardize_DropsUnparsableDates(t *testing.T) {
	mapping := ColumnMapping{Date: "Date", Description: "Description", Amount: "Amount", Mode: AmountSigned}
	records := []model.Record{
		{"Date": "01/03/2025", "Description": "  NETFLIX  ", "Amount": "-15.99"},
		{"Date": "", "Description": "Opening balance", "Amount": "1000"},
		{"Date": "Total", "Description": "", "Amount": "-15.99"},
		{"Date": "04/03/2025", "Description": "MYSTERY", "Amount": "abc"},
	}

	txns, dropped := Standardize("westpac.csv", records, mapping, DayFirst)

	require.Len(t, txns, 2)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, "NETFLIX", txns[0].Description)
	assert.Equal(t, date(2025, 3, 1), txns[0].Date)
	assert.True(t, txns[1].Amount.IsZero(), "unparsable amounts become zero")
}
