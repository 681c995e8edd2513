package analysis

import (
	"github.com/shopspring/decimal"
)

// monthSet counts distinct month keys.
type monthSet map[string]struct{}

func (m monthSet) add(month string) {
	m[month] = struct{}{}
}

// average divides total by n. A zero n returns total.
func average(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return total
	}
	return total.Div(decimal.NewFromInt(int64(n)))
}

// spendable reports whether a transaction counts toward expense aggregations.
func spendable(isOutflow, isInternal bool) bool {
	return isOutflow && !isInternal
}
