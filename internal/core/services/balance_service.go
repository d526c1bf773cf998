package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type balanceService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
	ledgers LedgerProvider
}

// NewBalanceService creates the service behind the household balance cards.
func NewBalanceService(txnRepo portsrepo.TransactionReader, authorizer portssvc.HouseholdAuthorizerSvc, ledgers LedgerProvider) portssvc.BalanceSvc {
	return &balanceService{
		BaseService: BaseService{HouseholdAuthorizer: authorizer},
		txnRepo:     txnRepo,
		ledgers:     ledgers,
	}
}

// GetBalanceSummary totals each transaction type in the primary currency, using
// manual rates, and in USD, preferring the USD value stored with each transaction.
func (s *balanceService) GetBalanceSummary(ctx context.Context, householdID, requestingUserID string) (*domain.BalanceSummary, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, householdID, domain.RoleMember); err != nil {
		return nil, err
	}

	l, err := s.ledgers.Get(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load household ledger", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	totals, err := s.txnRepo.SumTransactions(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum transactions", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	primary := l.PrimaryCurrency()
	amounts := make(map[domain.TransactionType]decimal.Decimal, len(domain.TransactionTypes))
	usd := make(map[domain.TransactionType]decimal.Decimal, len(domain.TransactionTypes))
	for _, t := range totals {
		amounts[t.Type] = amounts[t.Type].Add(l.Convert(t.Amount, t.CurrencyCode, primary, domain.RateTypeManual))
		usd[t.Type] = usd[t.Type].
			Add(t.AmountUSD).
			Add(l.Convert(t.MissingUSD, t.CurrencyCode, domain.USD, domain.RateTypeManual))
	}

	summary := &domain.BalanceSummary{
		HouseholdID:     householdID,
		PrimaryCurrency: primary,
		Cards:           make([]domain.BalanceCard, 0, len(domain.TransactionTypes)),
	}
	net := decimal.Zero
	for _, txType := range domain.TransactionTypes {
		card := domain.BalanceCard{
			Type:      txType,
			Amount:    amounts[txType],
			AmountUSD: usd[txType],
		}
		card.Formatted = l.Format(card.Amount, primary)
		card.FormattedUSD = l.Format(card.AmountUSD, domain.USD)
		summary.Cards = append(summary.Cards, card)

		if txType == domain.TransactionIncome {
			net = net.Add(card.Amount)
		} else {
			net = net.Sub(card.Amount)
		}
	}
	summary.Net = net
	summary.FormattedNet = l.Format(net, primary)

	return summary, nil
}
