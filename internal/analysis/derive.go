package analysis

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Veraticus/nestegg/internal/classification"
	"github.com/Veraticus/nestegg/internal/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const unknownMerchant = "UNKNOWN"

var (
	merchantPunctuation = regexp.MustCompile(`[^A-Z0-9 ]+`)
	merchantSpaces      = regexp.MustCompile(`\s+`)
)

// NormalizeMerchant uppercases a description, folds accented letters to their
// base letter, strips everything but letters, digits and spaces, and collapses
// runs of whitespace. It never returns "".
func NormalizeMerchant(description string) string {
	s := merchantPunctuation.ReplaceAllString(strings.ToUpper(foldAccents(description)), "")
	s = strings.TrimSpace(merchantSpaces.ReplaceAllString(s, " "))
	if s == "" {
		return unknownMerchant
	}
	return s
}

func foldAccents(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		return s
	}
	return folded
}

// IsInternalTransfer reports whether a normalized merchant moves money between
// the account holder's own accounts.
func IsInternalTransfer(merchant string) bool {
	return strings.Contains(merchant, "TRANSFER")
}

// Derive enriches transactions with month, direction, merchant and category fields.
// The input slice is not modified.
func Derive(txns []model.Transaction, classifier *classification.Classifier) []model.DerivedTransaction {
	derived := make([]model.DerivedTransaction, 0, len(txns))

	for _, tx := range txns {
		merchant := NormalizeMerchant(tx.Description)
		category := classifier.Categorize(merchant)

		derived = append(derived, model.DerivedTransaction{
			Transaction:   tx,
			MonthKey:      tx.Date.Format("2006-01"),
			MerchantNorm:  merchant,
			Category:      category,
			MacroCategory: classification.MacroFor(category),
			AbsAmount:     tx.Amount.Abs(),
			Day:           tx.Date.Day(),
			IsInflow:      tx.Amount.IsPositive(),
			IsOutflow:     tx.Amount.IsNegative(),
			IsInternal:    IsInternalTransfer(merchant),
		})
	}

	return derived
}
