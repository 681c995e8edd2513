package statement

import (
	"strings"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

// Standardize converts records into transactions using mapping.
// Rows without a parsable date are dropped; the second result counts them.
func Standardize(source string, records []model.Record, mapping ColumnMapping, order DateOrder) ([]model.Transaction, int) {
	txns := make([]model.Transaction, 0, len(records))
	dropped := 0

	for _, r := range records {
		date, ok := ParseDate(r[mapping.Date], order)
		if !ok {
			dropped++
			continue
		}

		description, _ := r.Lookup(mapping.Description)
		txns = append(txns, model.Transaction{
			Date:        date,
			Description: strings.TrimSpace(description),
			Amount:      recordAmount(r, mapping),
			Source:      source,
		})
	}

	return txns, dropped
}

func recordAmount(r model.Record, m ColumnMapping) decimal.Decimal {
	if m.Mode == AmountSigned {
		amount := CleanAmount(r[m.Amount])
		if m.Indicator != "" {
			amount = applyIndicator(amount, r[m.Indicator])
		}
		return amount
	}

	debit, credit := decimal.Zero, decimal.Zero
	if m.Debit != "" {
		debit = CleanAmount(r[m.Debit]).Abs()
	}
	if m.Credit != "" {
		credit = CleanAmount(r[m.Credit])
	}
	return credit.Sub(debit)
}
