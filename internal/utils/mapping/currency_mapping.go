package mapping

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Name:         d.Name,
		Symbol:       d.Symbol,
		Precision:    d.Precision,
		IsActive:     d.IsActive,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Name:         m.Name,
		Symbol:       m.Symbol,
		Precision:    m.Precision,
		IsActive:     m.IsActive,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

func ToModelHouseholdCurrency(d domain.HouseholdCurrency) models.HouseholdCurrency {
	return models.HouseholdCurrency{
		HouseholdCurrencyID: d.HouseholdCurrencyID,
		HouseholdID:         d.HouseholdID,
		CurrencyCode:        d.CurrencyCode,
		IsPrimary:           d.IsPrimary,
		DisplayOrder:        d.DisplayOrder,
	}
}

// ToDomainHouseholdCurrency leaves Currency unset; callers that join the
// reference row attach it themselves.
func ToDomainHouseholdCurrency(m models.HouseholdCurrency) domain.HouseholdCurrency {
	return domain.HouseholdCurrency{
		HouseholdCurrencyID: m.HouseholdCurrencyID,
		HouseholdID:         m.HouseholdID,
		CurrencyCode:        m.CurrencyCode,
		IsPrimary:           m.IsPrimary,
		DisplayOrder:        m.DisplayOrder,
	}
}
