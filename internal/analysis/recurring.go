package analysis

import (
	"sort"

	"github.com/Veraticus/nestegg/internal/classification"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

type recurringKey struct {
	merchant string
	rounded  string
}

type recurringBucket struct {
	rounded  decimal.Decimal
	total    decimal.Decimal
	months   monthSet
	merchant string
	daySum   int
	count    int
}

// DetectRecurring buckets outflows by merchant and whole-dollar amount and keeps
// the buckets seen at least minTransactions times across at least minMonths months.
// The result is sorted by estimated monthly cost, highest first.
func DetectRecurring(txns []model.DerivedTransaction, classifier *classification.Classifier, minTransactions, minMonths int) []model.RecurringExpense {
	buckets := make(map[recurringKey]*recurringBucket)

	for _, tx := range txns {
		if !spendable(tx.IsOutflow, tx.IsInternal) {
			continue
		}

		rounded := tx.AbsAmount.RoundBank(0)
		key := recurringKey{merchant: tx.MerchantNorm, rounded: rounded.String()}
		b, ok := buckets[key]
		if !ok {
			b = &recurringBucket{merchant: tx.MerchantNorm, rounded: rounded, months: monthSet{}}
			buckets[key] = b
		}
		b.total = b.total.Add(tx.AbsAmount)
		b.daySum += tx.Day
		b.count++
		b.months.add(tx.MonthKey)
	}

	recurring := make([]model.RecurringExpense, 0, len(buckets))
	for _, b := range buckets {
		if b.count < minTransactions || len(b.months) < minMonths {
			continue
		}

		avg := average(b.total, b.count)
		category := classifier.Categorize(b.merchant)
		recurring = append(recurring, model.RecurringExpense{
			Name:                 b.merchant,
			Category:             category,
			MacroCategory:        classification.MacroFor(category),
			RoundedAmount:        b.rounded,
			AverageAmount:        avg,
			AverageDay:           average(decimal.NewFromInt(int64(b.daySum)), b.count),
			EstimatedMonthlyCost: avg,
			TransactionCount:     b.count,
			MonthCount:           len(b.months),
		})
	}

	sortRecurring(recurring)
	return recurring
}

func sortRecurring(r []model.RecurringExpense) {
	sort.Slice(r, func(i, j int) bool {
		if c := r[i].EstimatedMonthlyCost.Cmp(r[j].EstimatedMonthlyCost); c != 0 {
			return c > 0
		}
		if r[i].Name != r[j].Name {
			return r[i].Name < r[j].Name
		}
		return r[i].RoundedAmount.LessThan(r[j].RoundedAmount)
	})
}
