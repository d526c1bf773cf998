package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// TransactionReaderSvc defines read operations for household transactions
type TransactionReaderSvc interface {
	// ListTransactions returns one page of transactions, newest first, and the token of the next page.
	ListTransactions(ctx context.Context, householdID string, params dto.ListTransactionsParams, requestingUserID string) ([]domain.Transaction, string, error)
}

// TransactionWriterSvc defines write operations for household transactions
type TransactionWriterSvc interface {
	// CreateTransaction records a transaction and its USD value at the transaction date.
	CreateTransaction(ctx context.Context, householdID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction of the household.
	DeleteTransaction(ctx context.Context, householdID, transactionID, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// BalanceSvc builds the balance report of a household.
type BalanceSvc interface {
	GetBalanceSummary(ctx context.Context, householdID, requestingUserID string) (*domain.BalanceSummary, error)
}
