package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a stored quote of a household.
type ExchangeRate struct {
	ExchangeRateID   string          `db:"exchange_rate_id"`
	HouseholdID      string          `db:"household_id"`
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	Rate             decimal.Decimal `db:"rate"`
	RateType         string          `db:"rate_type"`
	ValidFrom        time.Time       `db:"valid_from"`
	IsActive         bool            `db:"is_active"`
	Notes            *string         `db:"notes"`
	AuditFields
}
