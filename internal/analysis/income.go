package analysis

import (
	"sort"

	"github.com/Veraticus/nestegg/internal/classification"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

type incomeTotals struct {
	total    decimal.Decimal
	months   monthSet
	category model.Category
	count    int
}

// SummarizeIncome groups non-internal inflows by payer, largest total first.
// employerKeyword marks the matching payer as salary.
func SummarizeIncome(txns []model.DerivedTransaction, employerKeyword string) []model.IncomeSource {
	totals := make(map[string]*incomeTotals)
	for _, tx := range txns {
		if !tx.IsInflow || tx.IsInternal {
			continue
		}
		t, ok := totals[tx.MerchantNorm]
		if !ok {
			t = &incomeTotals{months: monthSet{}, category: tx.Category}
			totals[tx.MerchantNorm] = t
		}
		t.total = t.total.Add(tx.AbsAmount)
		t.months.add(tx.MonthKey)
		t.count++
	}

	sources := make([]model.IncomeSource, 0, len(totals))
	for name, t := range totals {
		avg := average(t.total, t.count)

		sourceType := string(t.category)
		if t.category == model.CategoryUnknown {
			sourceType = string(model.CategoryIncome)
		}

		sources = append(sources, model.IncomeSource{
			Name: name,
			Type: sourceType,
			IncomeType: classification.IncomeTypeFor(classification.IncomeStats{
				Total:        t.total,
				Average:      avg,
				Name:         name,
				Months:       len(t.months),
				Transactions: t.count,
			}, employerKeyword),
			TotalAmount:          t.total,
			AverageAmount:        avg,
			AverageMonthlyAmount: average(t.total, len(t.months)),
			TransactionCount:     t.count,
			MonthCount:           len(t.months),
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		if c := sources[i].TotalAmount.Cmp(sources[j].TotalAmount); c != 0 {
			return c > 0
		}
		return sources[i].Name < sources[j].Name
	})
	return sources
}
