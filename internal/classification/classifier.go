// Package classification assigns categories to normalized merchant names.
package classification

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

// Rule maps merchants to a category. A rule matches when the merchant contains
// any keyword or, if Pattern is set, matches the case-insensitive regex.
type Rule struct {
	Category model.Category `mapstructure:"category" yaml:"category"`
	Pattern  string         `mapstructure:"pattern" yaml:"pattern"`
	Keywords []string       `mapstructure:"keywords" yaml:"keywords"`
}

type compiledRule struct {
	regex *regexp.Regexp
	Rule
}

func (r compiledRule) matches(merchant string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(merchant, strings.ToUpper(kw)) {
			return true
		}
	}
	return r.regex != nil && r.regex.MatchString(merchant)
}

// Classifier evaluates rules top to bottom; the first match wins.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	rules []compiledRule
}

// NewClassifier builds a classifier that tries custom rules, in order, before
// the default rules.
func NewClassifier(custom []Rule) (*Classifier, error) {
	all := make([]Rule, 0, len(custom)+10)
	all = append(all, custom...)
	all = append(all, DefaultRules()...)

	compiled := make([]compiledRule, 0, len(all))
	for i, r := range all {
		if r.Category == "" {
			return nil, fmt.Errorf("%w: rule %d has no category", common.ErrInvalidConfig, i+1)
		}
		if r.Pattern == "" && len(r.Keywords) == 0 {
			return nil, fmt.Errorf("%w: rule for %q has neither pattern nor keywords", common.ErrInvalidConfig, r.Category)
		}

		cr := compiledRule{Rule: r}
		if r.Pattern != "" {
			expr := r.Pattern
			if !strings.HasPrefix(expr, "(?i)") {
				expr = "(?i)" + expr
			}
			regex, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to compile pattern for %q: %w", common.ErrInvalidConfig, r.Category, err)
			}
			cr.regex = regex
		}
		compiled = append(compiled, cr)
	}

	return &Classifier{rules: compiled}, nil
}

// Default returns a classifier with only the built-in rules.
func Default() *Classifier {
	c, err := NewClassifier(nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Categorize returns the category of a normalized merchant name, or Unknown.
func (c *Classifier) Categorize(merchant string) model.Category {
	for _, r := range c.rules {
		if r.matches(merchant) {
			return r.Category
		}
	}
	return model.CategoryUnknown
}

// Salary thresholds for income streams without an employer match.
var (
	salaryKeywords    = []string{"DIRECT CREDIT", "PAYROLL", "SALARY"}
	salaryMinTotal    = decimal.NewFromInt(3000)
	sideGigMaxAverage = decimal.NewFromInt(1000)
)

// IncomeStats summarizes one income source for IncomeTypeFor.
type IncomeStats struct {
	Total        decimal.Decimal
	Average      decimal.Decimal
	Name         string
	Months       int
	Transactions int
}

// IncomeTypeFor labels an income source. A source whose name contains the
// employer keyword is always Salary; payroll-looking credits are Salary once
// they reach 3000 across at least two transactions in two months; small
// average amounts are side income.
func IncomeTypeFor(s IncomeStats, employerKeyword string) model.IncomeType {
	employer := strings.ToUpper(strings.TrimSpace(employerKeyword))
	if employer != "" && strings.Contains(s.Name, employer) {
		return model.IncomeSalary
	}

	for _, kw := range salaryKeywords {
		if strings.Contains(s.Name, kw) &&
			s.Months >= 2 && s.Transactions >= 2 &&
			s.Total.GreaterThanOrEqual(salaryMinTotal) {
			return model.IncomeSalary
		}
	}

	if s.Transactions >= 1 && s.Average.LessThan(sideGigMaxAverage) {
		return model.IncomeSideGig
	}
	return model.IncomeOther
}
