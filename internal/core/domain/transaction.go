package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a household transaction.
type TransactionType string

const (
	TransactionIncome     TransactionType = "income"
	TransactionExpense    TransactionType = "expense"
	TransactionInvestment TransactionType = "investment"
	TransactionSaving     TransactionType = "saving"
)

// TransactionTypes lists the types in the order balances are reported.
var TransactionTypes = []TransactionType{TransactionIncome, TransactionExpense, TransactionInvestment, TransactionSaving}

// Categories are the fixed categories a transaction of each type may use.
var Categories = map[TransactionType][]string{
	TransactionIncome:     {"trabajo", "freelance", "negocio", "otros"},
	TransactionExpense:    {"alimentacion", "transporte", "entretenimiento", "servicios", "salud", "otros"},
	TransactionInvestment: {"acciones", "criptomonedas", "fondos", "inmuebles", "otros"},
	TransactionSaving:     {"emergencia", "vacaciones", "jubilacion", "objetivos", "otros"},
}

func (t TransactionType) IsValid() bool {
	return slices.Contains(TransactionTypes, t)
}

// AllowsCategory reports whether category belongs to the type's category list.
func (t TransactionType) AllowsCategory(category string) bool {
	return slices.Contains(Categories[t], category)
}

// Transaction is an income, expense, investment or saving entry of a household.
// Amount is expressed in CurrencyCode. AmountUSD and ExchangeRate are captured
// when the transaction is recorded and never re-derived afterwards.
type Transaction struct {
	TransactionID    string          `json:"transactionID"`
	HouseholdID      string          `json:"householdID"`
	UserID           string          `json:"userID"`
	Type             TransactionType `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	AmountUSD        decimal.Decimal `json:"amountUSD"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`     // CurrencyCode -> USD rate used
	ExchangeRateType RateType        `json:"exchangeRateType"` // rate type that rate came from
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Date             time.Time       `json:"date"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// TransactionTotal is the sum of a household's transactions of one type in one currency.
type TransactionTotal struct {
	Type         TransactionType
	CurrencyCode string
	Amount       decimal.Decimal
	AmountUSD    decimal.Decimal // sum of the stored USD values
	MissingUSD   decimal.Decimal // sum of Amount over rows stored without a USD value
	Count        int
}
