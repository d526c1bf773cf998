package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3,uppercase"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3,uppercase"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	RateType         domain.RateType `json:"rateType" binding:"omitempty,ratetype"` // defaults to manual
	Notes            *string         `json:"notes,omitempty" binding:"omitempty,max=500"`
	ValidFrom        *time.Time      `json:"validFrom,omitempty"` // defaults to now
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	RateType         domain.RateType `json:"rateType"`
	ValidFrom        time.Time       `json:"validFrom"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		RateType:         rate.RateType,
		ValidFrom:        rate.ValidFrom,
		Notes:            rate.Notes,
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
	}
}

// ListExchangeRatesResponse wraps the household's active rates, newest first.
type ListExchangeRatesResponse struct {
	ExchangeRates []ExchangeRateResponse `json:"exchangeRates"`
}

func ToListExchangeRatesResponse(rates []domain.ExchangeRate) ListExchangeRatesResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return ListExchangeRatesResponse{ExchangeRates: responses}
}

// ConvertParams are the query parameters of the conversion endpoint.
type ConvertParams struct {
	Amount   string          `form:"amount" binding:"required"`
	From     string          `form:"from" binding:"required,len=3,uppercase"`
	To       string          `form:"to" binding:"required,len=3,uppercase"`
	RateType domain.RateType `form:"rateType" binding:"omitempty,ratetype"`
}

// ConvertResponse reports a conversion and where its rate came from.
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	RateType  domain.RateType `json:"rateType"`
	Rate      decimal.Decimal `json:"rate"`
	Source    string          `json:"source"` // identity, direct, inverse or fallback
	Converted decimal.Decimal `json:"converted"`
	Formatted string          `json:"formatted"`
}
