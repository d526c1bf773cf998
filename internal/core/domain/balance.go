package domain

import "github.com/shopspring/decimal"

// BalanceCard holds the totals of one transaction type.
type BalanceCard struct {
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"` // in the household primary currency
	AmountUSD    decimal.Decimal `json:"amountUSD"`
	Formatted    string          `json:"formatted"`
	FormattedUSD string          `json:"formattedUSD"`
}

// BalanceSummary aggregates every transaction of a household.
type BalanceSummary struct {
	HouseholdID     string          `json:"householdID"`
	PrimaryCurrency string          `json:"primaryCurrency"`
	Cards           []BalanceCard   `json:"cards"`
	Net             decimal.Decimal `json:"net"` // income minus the other types
	FormattedNet    string          `json:"formattedNet"`
}
