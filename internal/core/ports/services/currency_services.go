package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/ledger"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves all active currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListHouseholdCurrencies retrieves the currencies enabled for a household in display order.
	ListHouseholdCurrencies(ctx context.Context, householdID, requestingUserID string) ([]domain.HouseholdCurrency, error)
}

// CurrencyWriterSvc defines write operations for household currencies
type CurrencyWriterSvc interface {
	// AddHouseholdCurrency enables an active currency for a household.
	AddHouseholdCurrency(ctx context.Context, householdID string, req dto.AddHouseholdCurrencyRequest, requestingUserID string) (*domain.HouseholdCurrency, error)

	// SetPrimaryCurrency makes code the household's only primary currency. Owner only.
	SetPrimaryCurrency(ctx context.Context, householdID, code, requestingUserID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// Conversion is the answer to a conversion request.
type Conversion struct {
	Amount    decimal.Decimal
	From      string
	To        string
	Quote     ledger.Quote
	Converted decimal.Decimal
	Formatted string
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// ListExchangeRates returns the household's active rates, newest first.
	ListExchangeRates(ctx context.Context, householdID, requestingUserID string) ([]domain.ExchangeRate, error)

	// ConvertAmount converts amount between two currencies with the latest matching rate.
	ConvertAmount(ctx context.Context, householdID string, amount decimal.Decimal, from, to string, rateType domain.RateType, requestingUserID string) (*Conversion, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate validates and appends a new rate to the household's history.
	CreateExchangeRate(ctx context.Context, householdID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
