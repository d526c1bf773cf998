package mapping

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// A zero exchange rate is stored as NULL together with amount_usd.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		HouseholdID:   d.HouseholdID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		Description:   d.Description,
		Category:      d.Category,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if !d.ExchangeRate.IsZero() {
		m.AmountUSD = decimal.NewNullDecimal(d.AmountUSD)
		m.ExchangeRate = decimal.NewNullDecimal(d.ExchangeRate)
	}
	if d.ExchangeRateType != "" {
		rt := string(d.ExchangeRateType)
		m.ExchangeRateType = &rt
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// NULL USD columns come back as zero.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		HouseholdID:   m.HouseholdID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		Description:   m.Description,
		Category:      m.Category,
		Date:          m.Date,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.AmountUSD.Valid {
		d.AmountUSD = m.AmountUSD.Decimal
	}
	if m.ExchangeRate.Valid {
		d.ExchangeRate = m.ExchangeRate.Decimal
	}
	if m.ExchangeRateType != nil {
		d.ExchangeRateType = domain.RateType(*m.ExchangeRateType)
	}
	return d
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

func ToDomainTransactionTotal(m models.TransactionTotal) domain.TransactionTotal {
	return domain.TransactionTotal{
		Type:         domain.TransactionType(m.Type),
		CurrencyCode: m.CurrencyCode,
		Amount:       m.Amount,
		AmountUSD:    m.AmountUSD,
		MissingUSD:   m.MissingUSD,
		Count:        m.Count,
	}
}
