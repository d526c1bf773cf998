package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/utils/pagination"
)

// TransactionReader defines read operations for household transactions
type TransactionReader interface {
	// ListTransactions returns up to limit transactions ordered by date then
	// created_at, newest first, starting after cursor when it is non-nil.
	ListTransactions(ctx context.Context, householdID string, limit int, cursor *pagination.Cursor) ([]domain.Transaction, error)
	FindTransactionByID(ctx context.Context, householdID, transactionID string) (*domain.Transaction, error)
	// SumTransactions groups the household's transactions by type and currency.
	SumTransactions(ctx context.Context, householdID string) ([]domain.TransactionTotal, error)
}

// TransactionWriter defines write operations for household transactions
type TransactionWriter interface {
	InsertTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction deletes by id within the household, additionally scoped to
	// userID when it is non-nil, and returns the number of rows removed.
	DeleteTransaction(ctx context.Context, householdID, transactionID string, userID *string) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
