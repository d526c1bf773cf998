package domain

// USD is the reference currency every transaction is also valued in.
const USD = "USD"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`         // e.g., "US Dollar"
	Symbol       string `json:"symbol"`       // e.g., "US$"
	Precision    int    `json:"precision"`    // Decimal places used when displaying amounts
	IsActive     bool   `json:"isActive"`
}

// HouseholdCurrency marks a currency as enabled for a household.
// At most one row per household has IsPrimary set.
type HouseholdCurrency struct {
	HouseholdCurrencyID string    `json:"householdCurrencyID"`
	HouseholdID         string    `json:"householdID"`
	CurrencyCode        string    `json:"currencyCode"`
	IsPrimary           bool      `json:"isPrimary"`
	DisplayOrder        int       `json:"displayOrder"`
	Currency            *Currency `json:"currency,omitempty"`
}
