package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table.
// Rows recorded before USD valuation existed carry NULL amount_usd.
type Transaction struct {
	TransactionID    string              `db:"transaction_id"`
	HouseholdID      string              `db:"household_id"`
	UserID           string              `db:"user_id"`
	Type             string              `db:"type"`
	Amount           decimal.Decimal     `db:"amount"`
	CurrencyCode     string              `db:"currency_code"`
	AmountUSD        decimal.NullDecimal `db:"amount_usd"`
	ExchangeRate     decimal.NullDecimal `db:"exchange_rate"`
	ExchangeRateType *string             `db:"exchange_rate_type"`
	Description      string              `db:"description"`
	Category         string              `db:"category"`
	Date             time.Time           `db:"date"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

// TransactionTotal is one row of the per type and currency aggregate.
type TransactionTotal struct {
	Type         string          `db:"type"`
	CurrencyCode string          `db:"currency_code"`
	Amount       decimal.Decimal `db:"amount"`
	AmountUSD    decimal.Decimal `db:"amount_usd"`
	MissingUSD   decimal.Decimal `db:"missing_usd"`
	Count        int             `db:"count"`
}
