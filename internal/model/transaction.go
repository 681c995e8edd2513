package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one data row of a statement file keyed by that file's own header.
// Column names are data, not schema: every bank names them differently.
type Record map[string]string

// Lookup returns the value of the first key present in the record.
func (r Record) Lookup(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	return "", false
}

// Transaction is a statement row normalized to date, description and signed amount.
// Positive amounts are inflows (credits), negative amounts are outflows (debits).
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source,omitempty"`
}

// DerivedTransaction is a Transaction enriched with the fields every aggregation keys on.
type DerivedTransaction struct {
	Transaction
	MonthKey      string          `json:"monthKey"`
	MerchantNorm  string          `json:"merchantNorm"`
	Category      Category        `json:"category"`
	MacroCategory MacroCategory   `json:"macroCategory"`
	AbsAmount     decimal.Decimal `json:"absAmount"`
	Day           int             `json:"day"`
	IsInflow      bool            `json:"isInflow"`
	IsOutflow     bool            `json:"isOutflow"`
	IsInternal    bool            `json:"isInternal"`
}
