package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/ledger"
	"github.com/SscSPs/household_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListHouseholdCurrencies(ctx context.Context, householdID string) ([]domain.HouseholdCurrency, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HouseholdCurrency), args.Error(1)
}

func (m *MockCurrencyRepository) AddHouseholdCurrency(ctx context.Context, hc domain.HouseholdCurrency) error {
	args := m.Called(ctx, hc)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetPrimaryCurrency(ctx context.Context, householdID, code string) error {
	args := m.Called(ctx, householdID, code)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) ListActiveRates(ctx context.Context, householdID string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) InsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock HouseholdRepository ---
type MockHouseholdRepository struct {
	mock.Mock
}

func (m *MockHouseholdRepository) FindHouseholdByID(ctx context.Context, householdID string) (*domain.Household, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Household), args.Error(1)
}

func (m *MockHouseholdRepository) ListHouseholdsByUserID(ctx context.Context, userID string) ([]domain.Household, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Household), args.Error(1)
}

func (m *MockHouseholdRepository) FindMembership(ctx context.Context, householdID, userID string) (*domain.HouseholdMember, error) {
	args := m.Called(ctx, householdID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HouseholdMember), args.Error(1)
}

func (m *MockHouseholdRepository) ListMembers(ctx context.Context, householdID string) ([]domain.HouseholdMember, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HouseholdMember), args.Error(1)
}

func (m *MockHouseholdRepository) CreateHouseholdWithOwner(ctx context.Context, household domain.Household, owner domain.HouseholdMember, currencies []domain.HouseholdCurrency) error {
	args := m.Called(ctx, household, owner, currencies)
	return args.Error(0)
}

func (m *MockHouseholdRepository) AddMember(ctx context.Context, member domain.HouseholdMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockHouseholdRepository) RemoveMember(ctx context.Context, householdID, userID string) error {
	args := m.Called(ctx, householdID, userID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, householdID string, limit int, cursor *pagination.Cursor) ([]domain.Transaction, error) {
	args := m.Called(ctx, householdID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, householdID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, householdID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumTransactions(ctx context.Context, householdID string) ([]domain.TransactionTotal, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionTotal), args.Error(1)
}

func (m *MockTransactionRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, householdID, transactionID string, userID *string) (int64, error) {
	args := m.Called(ctx, householdID, transactionID, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock HouseholdAuthorizer ---
type MockHouseholdAuthorizer struct {
	mock.Mock
}

func (m *MockHouseholdAuthorizer) AuthorizeUserAction(ctx context.Context, userID, householdID string, requiredRole domain.HouseholdRole) error {
	args := m.Called(ctx, userID, householdID, requiredRole)
	return args.Error(0)
}

// --- Fixtures ---

var testCurrencies = []domain.Currency{
	{CurrencyCode: "ARS", Name: "Peso argentino", Symbol: "$", Precision: 2, IsActive: true},
	{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", Precision: 2, IsActive: true},
	{CurrencyCode: "USD", Name: "Dólar estadounidense", Symbol: "US$", Precision: 2, IsActive: true},
}

func currencyByCode(code string) *domain.Currency {
	for i := range testCurrencies {
		if testCurrencies[i].CurrencyCode == code {
			c := testCurrencies[i]
			return &c
		}
	}
	return nil
}

func primaryARS(householdID string) []domain.HouseholdCurrency {
	return []domain.HouseholdCurrency{
		{HouseholdCurrencyID: "hc-ars", HouseholdID: householdID, CurrencyCode: "ARS", IsPrimary: true, DisplayOrder: 1},
		{HouseholdCurrencyID: "hc-usd", HouseholdID: householdID, CurrencyCode: "USD", DisplayOrder: 2},
	}
}

func testRate(id, from, to, rate string, rateType domain.RateType, validFrom time.Time) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   id,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		RateType:         rateType,
		ValidFrom:        validFrom,
		IsActive:         true,
	}
}

// stubLedgerData lets a real ledger.Registry load from the mocks as often as it needs.
func stubLedgerData(currencyRepo *MockCurrencyRepository, rateRepo *MockExchangeRateRepository, householdID string, hcs []domain.HouseholdCurrency, rates []domain.ExchangeRate) {
	currencyRepo.On("ListActiveCurrencies", mock.Anything).Return(testCurrencies, nil).Maybe()
	currencyRepo.On("ListHouseholdCurrencies", mock.Anything, householdID).Return(hcs, nil).Maybe()
	rateRepo.On("ListActiveRates", mock.Anything, householdID).Return(rates, nil).Maybe()
}

func newRegistry(currencyRepo *MockCurrencyRepository, rateRepo *MockExchangeRateRepository) *ledger.Registry {
	return ledger.NewRegistry(8, 0, currencyRepo, rateRepo, ledger.WithLocale("en-US"))
}
