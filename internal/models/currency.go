package models

// Currency represents a row of the currencies reference table.
type Currency struct {
	CurrencyCode string `db:"currency_code"` // Primary Key (e.g., "USD")
	Name         string `db:"name"`
	Symbol       string `db:"symbol"`
	Precision    int    `db:"precision"`
	IsActive     bool   `db:"is_active"`
}

// HouseholdCurrency represents a currency enabled for a household.
type HouseholdCurrency struct {
	HouseholdCurrencyID string `db:"household_currency_id"`
	HouseholdID         string `db:"household_id"`
	CurrencyCode        string `db:"currency_code"`
	IsPrimary           bool   `db:"is_primary"`
	DisplayOrder        int    `db:"display_order"`
}
