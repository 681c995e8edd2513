package model

// Category is the fine-grained spend classification of a merchant.
type Category string

// Categories produced by the default rule table.
const (
	CategoryRent          Category = "Rent"
	CategoryRego          Category = "Rego"
	CategoryInsurance     Category = "Insurance"
	CategoryUtilities     Category = "Utilities"
	CategoryPhoneInternet Category = "Phone & Internet"
	CategoryTransport     Category = "Transport"
	CategoryGroceries     Category = "Groceries"
	CategoryEatingOut     Category = "Eating Out"
	CategorySubscriptions Category = "Subscriptions"
	CategoryParking       Category = "Parking"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryIncome        Category = "Income"
	CategorySalary        Category = "Salary"
	CategorySideGig       Category = "Side gig / Misc"
	CategoryUnknown       Category = "Unknown"
)

// MacroCategory is the coarse budget bucket a category rolls up to.
type MacroCategory string

// Macro categories.
const (
	MacroEssential MacroCategory = "Essential"
	MacroLifestyle MacroCategory = "Lifestyle"
	MacroIncome    MacroCategory = "Income"
)

// IncomeType labels an income source.
type IncomeType string

// Income types.
const (
	IncomeSalary  IncomeType = "Salary"
	IncomeSideGig IncomeType = "Side gig / Misc"
	IncomeOther   IncomeType = "Other income"
)
