package pgsql

import (
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		HouseholdRepo:    newPgxHouseholdRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
