package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock HouseholdService ---
type MockHouseholdService struct {
	mock.Mock
}

func (m *MockHouseholdService) ListUserHouseholds(ctx context.Context, userID string) ([]domain.Household, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Household), args.Error(1)
}
func (m *MockHouseholdService) ListMembers(ctx context.Context, householdID, requestingUserID string) ([]domain.HouseholdMember, error) {
	args := m.Called(ctx, householdID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HouseholdMember), args.Error(1)
}
func (m *MockHouseholdService) CreateHousehold(ctx context.Context, req dto.CreateHouseholdRequest, creatorUserID string) (*domain.Household, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Household), args.Error(1)
}
func (m *MockHouseholdService) InviteMember(ctx context.Context, householdID, email, invitingUserID string) (*domain.HouseholdMember, error) {
	args := m.Called(ctx, householdID, email, invitingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HouseholdMember), args.Error(1)
}
func (m *MockHouseholdService) LeaveHousehold(ctx context.Context, householdID, userID string) error {
	return m.Called(ctx, householdID, userID).Error(0)
}
func (m *MockHouseholdService) AuthorizeUserAction(ctx context.Context, userID, householdID string, requiredRole domain.HouseholdRole) error {
	return m.Called(ctx, userID, householdID, requiredRole).Error(0)
}

var _ portssvc.HouseholdSvcFacade = (*MockHouseholdService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListHouseholdCurrencies(ctx context.Context, householdID, requestingUserID string) ([]domain.HouseholdCurrency, error) {
	args := m.Called(ctx, householdID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HouseholdCurrency), args.Error(1)
}
func (m *MockCurrencyService) AddHouseholdCurrency(ctx context.Context, householdID string, req dto.AddHouseholdCurrencyRequest, requestingUserID string) (*domain.HouseholdCurrency, error) {
	args := m.Called(ctx, householdID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HouseholdCurrency), args.Error(1)
}
func (m *MockCurrencyService) SetPrimaryCurrency(ctx context.Context, householdID, code, requestingUserID string) error {
	return m.Called(ctx, householdID, code, requestingUserID).Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, householdID, requestingUserID string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, householdID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) ConvertAmount(ctx context.Context, householdID string, amount decimal.Decimal, from, to string, rateType domain.RateType, requestingUserID string) (*portssvc.Conversion, error) {
	args := m.Called(ctx, householdID, amount, from, to, rateType, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.Conversion), args.Error(1)
}
func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, householdID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, householdID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, householdID string, params dto.ListTransactionsParams, requestingUserID string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, householdID, params, requestingUserID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, householdID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, householdID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, householdID, transactionID, userID string) error {
	return m.Called(ctx, householdID, transactionID, userID).Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalanceSummary(ctx context.Context, householdID, requestingUserID string) (*domain.BalanceSummary, error) {
	args := m.Called(ctx, householdID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSummary), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleSignInService ---
type MockGoogleSignInService struct {
	mock.Mock
}

func (m *MockGoogleSignInService) LoginURL(ctx context.Context) (string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockGoogleSignInService) Identify(ctx context.Context, code string) (*domain.ExternalIdentity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExternalIdentity), args.Error(1)
}

var _ portssvc.GoogleSignInSvcFacade = (*MockGoogleSignInService)(nil)
