package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Type             domain.TransactionType `json:"type" binding:"required,txtype"`
	Amount           decimal.Decimal        `json:"amount" binding:"required"`
	CurrencyCode     string                 `json:"currencyCode" binding:"omitempty,len=3,uppercase"` // defaults to the primary currency
	ExchangeRateType domain.RateType        `json:"exchangeRateType" binding:"omitempty,ratetype"`
	Description      string                 `json:"description" binding:"required,max=255"`
	Category         string                 `json:"category" binding:"required"`
	Date             time.Time              `json:"date" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID    string                 `json:"transactionID"`
	UserID           string                 `json:"userID"`
	Type             domain.TransactionType `json:"type"`
	Amount           decimal.Decimal        `json:"amount"`
	CurrencyCode     string                 `json:"currencyCode"`
	AmountUSD        decimal.Decimal        `json:"amountUSD"`
	ExchangeRate     decimal.Decimal        `json:"exchangeRate"`
	ExchangeRateType domain.RateType        `json:"exchangeRateType"`
	Description      string                 `json:"description"`
	Category         string                 `json:"category"`
	Date             time.Time              `json:"date"`
	CreatedAt        time.Time              `json:"createdAt"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		UserID:           t.UserID,
		Type:             t.Type,
		Amount:           t.Amount,
		CurrencyCode:     t.CurrencyCode,
		AmountUSD:        t.AmountUSD,
		ExchangeRate:     t.ExchangeRate,
		ExchangeRateType: t.ExchangeRateType,
		Description:      t.Description,
		Category:         t.Category,
		Date:             t.Date,
		CreatedAt:        t.CreatedAt,
	}
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=50" binding:"gte=1,lte=200"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}
