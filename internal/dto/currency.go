package dto

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Precision    int    `json:"precision"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Name:         curr.Name,
		Symbol:       curr.Symbol,
		Precision:    curr.Precision,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses
}

// AddHouseholdCurrencyRequest enables a currency for a household.
type AddHouseholdCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
	IsPrimary    bool   `json:"isPrimary"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

// HouseholdCurrencyResponse defines the data returned for a household currency.
type HouseholdCurrencyResponse struct {
	HouseholdCurrencyID string            `json:"householdCurrencyID"`
	CurrencyCode        string            `json:"currencyCode"`
	IsPrimary           bool              `json:"isPrimary"`
	DisplayOrder        int               `json:"displayOrder"`
	Currency            *CurrencyResponse `json:"currency,omitempty"`
}

func ToHouseholdCurrencyResponse(hc *domain.HouseholdCurrency) HouseholdCurrencyResponse {
	resp := HouseholdCurrencyResponse{
		HouseholdCurrencyID: hc.HouseholdCurrencyID,
		CurrencyCode:        hc.CurrencyCode,
		IsPrimary:           hc.IsPrimary,
		DisplayOrder:        hc.DisplayOrder,
	}
	if hc.Currency != nil {
		c := ToCurrencyResponse(hc.Currency)
		resp.Currency = &c
	}
	return resp
}

func ToListHouseholdCurrencyResponse(hcs []domain.HouseholdCurrency) []HouseholdCurrencyResponse {
	responses := make([]HouseholdCurrencyResponse, len(hcs))
	for i := range hcs {
		responses[i] = ToHouseholdCurrencyResponse(&hcs[i])
	}
	return responses
}
