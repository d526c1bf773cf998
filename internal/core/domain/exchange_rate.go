package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateType tags the market an exchange rate was quoted on.
type RateType string

const (
	RateTypeOficial RateType = "oficial"
	RateTypeBlue    RateType = "blue"
	RateTypeMEP     RateType = "mep"
	RateTypeCCL     RateType = "ccl"
	RateTypeCripto  RateType = "cripto"
	RateTypeManual  RateType = "manual"
)

// DefaultRateType is used whenever a caller does not name a rate type.
const DefaultRateType = RateTypeManual

// RateTypes lists every known rate type in display order.
var RateTypes = []RateType{RateTypeOficial, RateTypeBlue, RateTypeMEP, RateTypeCCL, RateTypeCripto, RateTypeManual}

func (t RateType) IsValid() bool {
	for _, known := range RateTypes {
		if t == known {
			return true
		}
	}
	return false
}

// OrDefault returns the manual rate type when t is empty.
func (t RateType) OrDefault() RateType {
	if t == "" {
		return DefaultRateType
	}
	return t
}

// ExchangeRate is a directed quote: one unit of FromCurrencyCode buys Rate units of ToCurrencyCode.
// The reverse direction is never stored; it is derived by inversion on lookup.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	HouseholdID      string          `json:"householdID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	RateType         RateType        `json:"rateType"`
	ValidFrom        time.Time       `json:"validFrom"`
	IsActive         bool            `json:"isActive"`
	Notes            *string         `json:"notes,omitempty"`
	AuditFields
}
