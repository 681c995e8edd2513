package classification

import "github.com/Veraticus/nestegg/internal/model"

// DefaultRules returns the built-in merchant rules in evaluation order.
// Keywords are matched against the normalized (uppercase) merchant name.
func DefaultRules() []Rule {
	return []Rule{
		{Category: model.CategoryRent, Keywords: []string{"RENT", "REALESTATE", "REALTY"}},
		// Leading space keeps "REGO" from matching inside longer words.
		{Category: model.CategoryRego, Keywords: []string{"REGISTRATION", " REGO", "TRANSPORT DEPT"}},
		{Category: model.CategoryInsurance, Keywords: []string{"INSURANCE", "NRMA", "AAMI", "ALLIANZ"}},
		{Category: model.CategoryUtilities, Keywords: []string{"ENERGY", "POWER", "AGL", "ELECTRICITY", "WATER", "GAS"}},
		{Category: model.CategoryPhoneInternet, Keywords: []string{"OPTUS", "TELSTRA", "VODAFONE", "AMAYSIM"}},
		{Category: model.CategoryTransport, Keywords: []string{"UBER", "TRANSLINK", "GO CARD"}},
		{Category: model.CategoryGroceries, Keywords: []string{"COLES", "WOOLWORTHS", "ALDI", "IGA", "GROCER"}},
		{Category: model.CategoryEatingOut, Keywords: []string{"MCDONALDS", "SUSHI", "CAFE", "BUTCHER"}},
		{Category: model.CategorySubscriptions, Keywords: []string{"NETFLIX", "SPOTIFY", "APPLECOMBILL", "CHATGPT", "AMZNPRIME"}},
		{Category: model.CategoryParking, Keywords: []string{"PARKING", "WESTFIELD", "SHOPPING"}},
	}
}

var macroCategories = map[model.Category]model.MacroCategory{
	model.CategoryRent:          model.MacroEssential,
	model.CategoryRego:          model.MacroEssential,
	model.CategoryInsurance:     model.MacroEssential,
	model.CategoryUtilities:     model.MacroEssential,
	model.CategoryGroceries:     model.MacroEssential,
	model.CategoryTransport:     model.MacroEssential,
	model.CategoryPhoneInternet: model.MacroEssential,

	model.CategorySubscriptions: model.MacroLifestyle,
	model.CategoryEatingOut:     model.MacroLifestyle,
	model.CategoryParking:       model.MacroLifestyle,
	model.CategoryShopping:      model.MacroLifestyle,
	model.CategoryEntertainment: model.MacroLifestyle,
	model.CategoryUnknown:       model.MacroLifestyle,

	model.CategoryIncome:  model.MacroIncome,
	model.CategorySalary:  model.MacroIncome,
	model.CategorySideGig: model.MacroIncome,
}

// MacroFor maps a category to its macro-category. Unlisted categories,
// including user-defined ones, are Lifestyle.
func MacroFor(category model.Category) model.MacroCategory {
	if macro, ok := macroCategories[category]; ok {
		return macro
	}
	return model.MacroLifestyle
}
