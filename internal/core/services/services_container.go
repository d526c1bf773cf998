package services

import (
	"github.com/SscSPs/household_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// All services share one ledger registry so a rate added through one is seen by the others.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	ledgers := ledger.NewRegistry(cfg.LedgerCacheSize, cfg.LedgerCacheTTL, repos.CurrencyRepo, repos.ExchangeRateRepo,
		ledger.WithFallbackCurrency(cfg.DefaultPrimaryCurrency),
		ledger.WithLocale(cfg.DisplayLocale),
	)

	container := &portssvc.ServiceContainer{}

	// the household service is the authorizer every other household-scoped service uses
	container.Household = NewHouseholdService(repos.HouseholdRepo, repos.UserRepo, repos.CurrencyRepo, cfg.DefaultPrimaryCurrency)
	authorizer := container.Household.(portssvc.HouseholdAuthorizerSvc)

	container.Currency = NewCurrencyService(repos.CurrencyRepo, authorizer, ledgers)
	container.ExchangeRate = NewExchangeRateService(repos.CurrencyRepo, authorizer, ledgers)
	container.Transaction = NewTransactionService(repos.TransactionRepo, authorizer, ledgers, WithStrictConversion(cfg.StrictConversion))
	container.Balance = NewBalanceService(repos.TransactionRepo, authorizer, ledgers)
	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.GoogleSignIn = NewGoogleSignInService(cfg)

	return container
}
