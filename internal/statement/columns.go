package statement

import (
	"strings"

	"github.com/Veraticus/nestegg/internal/common"
)

// AmountMode says how a file represents the signed amount.
type AmountMode int

// Amount representations, in detection priority order.
const (
	// AmountSigned is a single amount column, optionally with a DR/CR indicator column.
	AmountSigned AmountMode = iota
	// AmountDebitCredit is a pair of debit (withdrawal) and credit (deposit) columns.
	AmountDebitCredit
)

var (
	descriptionKeywords = []string{"description", "details", "narration", "memo", "payee", "merchant", "reference"}
	indicatorKeywords   = []string{"dr/cr", "debit/credit", "credit/debit", "dc flag", "cr/dr"}
	debitKeywords       = []string{"debit", "withdrawal"}
	creditKeywords      = []string{"credit", "deposit"}
)

// ColumnMapping names the columns of one file that feed a Transaction.
type ColumnMapping struct {
	Date        string
	Description string
	Amount      string
	Indicator   string
	Debit       string
	Credit      string
	Mode        AmountMode
}

// InferColumns detects the date, description and amount columns of a file.
//
// Matching is a case-insensitive substring test over columns in header order.
// Without an amount column the last debit-like and last credit-like columns
// win, and a header naming both feeds both sides. A file without a date column, or without any amount, debit or credit column,
// yields a *common.MissingColumnError naming source.
func InferColumns(source string, columns []string) (ColumnMapping, error) {
	var m ColumnMapping

	m.Date = firstContaining(columns, "date")
	if m.Date == "" {
		return m, &common.MissingColumnError{Source: source, Kind: common.ColumnDate, Columns: columns}
	}

	for _, kw := range descriptionKeywords {
		if m.Description = firstContaining(columns, kw); m.Description != "" {
			break
		}
	}
	if m.Description == "" {
		for _, c := range columns {
			if c != m.Date {
				m.Description = c
				break
			}
		}
	}

	m.Indicator = firstContaining(columns, indicatorKeywords...)

	if m.Amount = firstContaining(columns, "amount"); m.Amount != "" {
		m.Mode = AmountSigned
		return m, nil
	}

	m.Mode = AmountDebitCredit
	for _, c := range columns {
		if c == m.Indicator {
			continue
		}
		lc := strings.ToLower(c)
		if containsAny(lc, debitKeywords) {
			m.Debit = c
		}
		if containsAny(lc, creditKeywords) {
			m.Credit = c
		}
	}
	if m.Debit == "" && m.Credit == "" {
		return m, &common.MissingColumnError{Source: source, Kind: common.ColumnAmount, Columns: columns}
	}

	return m, nil
}

// firstContaining returns the first column whose lowercased name contains any keyword.
func firstContaining(columns []string, keywords ...string) string {
	for _, c := range columns {
		if containsAny(strings.ToLower(c), keywords) {
			return c
		}
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
