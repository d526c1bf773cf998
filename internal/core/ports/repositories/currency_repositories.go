package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// ListActiveCurrencies returns active currencies ordered by code.
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)
	// FindCurrencyByCode returns apperrors.ErrNotFound for unknown codes.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	// ListHouseholdCurrencies returns the household's currencies ordered by display order.
	ListHouseholdCurrencies(ctx context.Context, householdID string) ([]domain.HouseholdCurrency, error)
}

// CurrencyWriter defines write operations for household currencies
type CurrencyWriter interface {
	// AddHouseholdCurrency enables a currency for a household. A primary row
	// demotes any existing primary in the same transaction.
	AddHouseholdCurrency(ctx context.Context, hc domain.HouseholdCurrency) error
	// SetPrimaryCurrency flags code as the only primary currency of the household.
	SetPrimaryCurrency(ctx context.Context, householdID, code string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
