package analysis

import (
	"time"

	"github.com/Veraticus/nestegg/internal/classification"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

// txn builds a transaction dated YYYY-MM-DD.
func txn(date, description, amount string) model.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		Date:        d,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
	}
}

func derive(txns ...model.Transaction) []model.DerivedTransaction {
	return Derive(txns, classification.Default())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
