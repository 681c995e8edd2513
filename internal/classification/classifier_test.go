package classification

import (
	"errors"
	"testing"

	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize_DefaultRules(t *testing.T) {
	c := Default()

	tests := []struct {
		merchant string
		expected model.Category
	}{
		{merchant: "RAY WHITE REALESTATE", expected: model.CategoryRent},
		{merchant: "QLD TRANSPORT DEPT", expected: model.CategoryRego},
		{merchant: "NSW REGO RENEWAL", expected: model.CategoryRego},
		{merchant: "REGOS BAR", expected: model.CategoryUnknown},
		{merchant: "AAMI CAR", expected: model.CategoryInsurance},
		{merchant: "AGL SALES", expected: model.CategoryUtilities},
		{merchant: "TELSTRA PREPAID", expected: model.CategoryPhoneInternet},
		{merchant: "UBER TRIP", expected: model.CategoryTransport},
		{merchant: "WOOLWORTHS 1234", expected: model.CategoryGroceries},
		{merchant: "MCDONALDS CBD", expected: model.CategoryEatingOut},
		{merchant: "NETFLIX", expected: model.CategorySubscriptions},
		{merchant: "WESTFIELD CHERMSIDE", expected: model.CategoryParking},
		{merchant: "JB HIFI", expected: model.CategoryUnknown},
		{merchant: "UNKNOWN", expected: model.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.merchant, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Categorize(tt.merchant))
		})
	}
}

func TestCategorize_FirstMatchWins(t *testing.T) {
	c := Default()

	// Matches both Insurance (NRMA) and Parking; Insurance comes first.
	assert.Equal(t, model.CategoryInsurance, c.Categorize("NRMA PARKING"))
	// Matches both Utilities (GAS) and Groceries (COLES); Utilities comes first.
	assert.Equal(t, model.CategoryUtilities, c.Categorize("COLES EXPRESS GAS"))
}

func TestNewClassifier_CustomRules(t *testing.T) {
	c, err := NewClassifier([]Rule{
		{Category: model.CategoryEntertainment, Pattern: `^hoyts\b`},
		{Category: model.CategoryShopping, Keywords: []string{"kmart"}},
		{Category: model.CategoryEatingOut, Keywords: []string{"NETFLIX AND CHILL"}},
	})
	require.NoError(t, err)

	assert.Equal(t, model.CategoryEntertainment, c.Categorize("HOYTS CINEMAS"))
	assert.Equal(t, model.CategoryShopping, c.Categorize("KMART 1042"))
	assert.Equal(t, model.CategoryEatingOut, c.Categorize("NETFLIX AND CHILL CAFE"))
	assert.Equal(t, model.CategorySubscriptions, c.Categorize("NETFLIX"), "defaults still apply")
}

func TestNewClassifier_InvalidRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{name: "bad regex", rule: Rule{Category: model.CategoryShopping, Pattern: `[unclosed`}},
		{name: "no category", rule: Rule{Keywords: []string{"KMART"}}},
		{name: "no matcher", rule: Rule{Category: model.CategoryShopping}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier([]Rule{tt.rule})
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidConfig))
		})
	}
}

func TestMacroFor(t *testing.T) {
	tests := []struct {
		category model.Category
		expected model.MacroCategory
	}{
		{category: model.CategoryRent, expected: model.MacroEssential},
		{category: model.CategoryPhoneInternet, expected: model.MacroEssential},
		{category: model.CategoryGroceries, expected: model.MacroEssential},
		{category: model.CategorySubscriptions, expected: model.MacroLifestyle},
		{category: model.CategoryParking, expected: model.MacroLifestyle},
		{category: model.CategoryUnknown, expected: model.MacroLifestyle},
		{category: model.CategorySalary, expected: model.MacroIncome},
		{category: model.CategorySideGig, expected: model.MacroIncome},
		{category: model.Category("Pets"), expected: model.MacroLifestyle},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.expected, MacroFor(tt.category))
		})
	}
}

func TestIncomeTypeFor(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name     string
		employer string
		stats    IncomeStats
		expected model.IncomeType
	}{
		{
			name:     "employer keyword",
			employer: " acme ",
			stats:    IncomeStats{Name: "ACME PTY LTD PAY", Months: 1, Transactions: 1, Total: d("500"), Average: d("500")},
			expected: model.IncomeSalary,
		},
		{
			name:     "payroll over threshold",
			stats:    IncomeStats{Name: "PAYROLL WIDGETCO", Months: 2, Transactions: 2, Total: d("3000"), Average: d("1500")},
			expected: model.IncomeSalary,
		},
		{
			name:     "payroll in one month",
			stats:    IncomeStats{Name: "PAYROLL WIDGETCO", Months: 1, Transactions: 2, Total: d("6000"), Average: d("3000")},
			expected: model.IncomeOther,
		},
		{
			name:     "payroll under total",
			stats:    IncomeStats{Name: "DIRECT CREDIT 1234", Months: 2, Transactions: 2, Total: d("1800"), Average: d("900")},
			expected: model.IncomeSideGig,
		},
		{
			name:     "small transfers in",
			stats:    IncomeStats{Name: "AIRTASKER", Months: 3, Transactions: 5, Total: d("600"), Average: d("120")},
			expected: model.IncomeSideGig,
		},
		{
			name:     "large one-off",
			stats:    IncomeStats{Name: "ATO REFUND", Months: 1, Transactions: 1, Total: d("2400"), Average: d("2400")},
			expected: model.IncomeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IncomeTypeFor(tt.stats, tt.employer))
		})
	}
}
