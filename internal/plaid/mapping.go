package plaid

import (
	"strings"
	"time"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/plaid/plaid-go/v20/plaid"
	"github.com/shopspring/decimal"
)

// Source is stamped on every transaction pulled from Plaid.
const Source = "plaid"

// mapPlaidTransaction converts a Plaid transaction to a standardized one.
// Plaid reports money out as positive, so the sign is flipped.
func mapPlaidTransaction(pt plaid.Transaction) (model.Transaction, bool) {
	date, err := time.Parse(dateLayout, pt.GetDate())
	if err != nil {
		return model.Transaction{}, false
	}

	description := pt.GetMerchantName()
	if description == "" {
		description = pt.GetName()
	}

	return model.Transaction{
		Date:        date,
		Description: cleanMerchantName(description),
		Amount:      decimal.NewFromFloat(pt.GetAmount()).Neg().Round(2),
		Source:      Source,
	}, true
}

// cleanMerchantName collapses whitespace and drops a trailing transaction reference.
func cleanMerchantName(name string) string {
	parts := strings.Fields(name)
	if len(parts) > 1 {
		last := parts[len(parts)-1]
		// Long digit runs at the end are references, not store numbers
		if len(last) > 5 && isAllDigits(last) {
			parts = parts[:len(parts)-1]
		}
	}
	return strings.Join(parts, " ")
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
