package dto

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceCardResponse holds the totals of one transaction type.
type BalanceCardResponse struct {
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	AmountUSD    decimal.Decimal `json:"amountUSD"`
	Formatted    string          `json:"formatted"`
	FormattedUSD string          `json:"formattedUSD"`
}

// BalanceResponse is the household balance report.
type BalanceResponse struct {
	PrimaryCurrency string                `json:"primaryCurrency"`
	Cards           []BalanceCardResponse `json:"cards"`
	Net             decimal.Decimal       `json:"net"`
	FormattedNet    string                `json:"formattedNet"`
}

func ToBalanceResponse(s *domain.BalanceSummary) BalanceResponse {
	cards := make([]BalanceCardResponse, len(s.Cards))
	for i, c := range s.Cards {
		cards[i] = BalanceCardResponse{
			Type:         string(c.Type),
			Amount:       c.Amount,
			AmountUSD:    c.AmountUSD,
			Formatted:    c.Formatted,
			FormattedUSD: c.FormattedUSD,
		}
	}
	return BalanceResponse{
		PrimaryCurrency: s.PrimaryCurrency,
		Cards:           cards,
		Net:             s.Net,
		FormattedNet:    s.FormattedNet,
	}
}
