package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/handlers"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testUserID      = "user-1"
	testHouseholdID = "hh-1"
)

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config

	households   *MockHouseholdService
	currencies   *MockCurrencyService
	rates        *MockExchangeRateService
	transactions *MockTransactionService
	balances     *MockBalanceService
	users        *MockUserService
	tokens       *MockTokenService
	google       *MockGoogleSignInService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		IsProduction:   true,
		JWTSecret:      "test-secret-key-that-is-long-enough",
		JWTIssuer:      "household-ledger-test",
		LoginRateLimit: "3-M",
	}

	suite.households = new(MockHouseholdService)
	suite.currencies = new(MockCurrencyService)
	suite.rates = new(MockExchangeRateService)
	suite.transactions = new(MockTransactionService)
	suite.balances = new(MockBalanceService)
	suite.users = new(MockUserService)
	suite.tokens = new(MockTokenService)
	suite.google = new(MockGoogleSignInService)

	suite.router = gin.New()
	err := handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Household:    suite.households,
		Currency:     suite.currencies,
		ExchangeRate: suite.rates,
		Transaction:  suite.transactions,
		Balance:      suite.balances,
		User:         suite.users,
		TokenService: suite.tokens,
		GoogleSignIn: suite.google,
	})
	suite.Require().NoError(err)
}

func (suite *HandlersTestSuite) TearDownTest() {
	for _, m := range []interface{ AssertExpectations(mock.TestingT) bool }{
		suite.households, suite.currencies, suite.rates, suite.transactions,
		suite.balances, suite.users, suite.tokens, suite.google,
	} {
		m.AssertExpectations(suite.T())
	}
}

func (suite *HandlersTestSuite) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, _, err := utils.GenerateJWT(testUserID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
		suite.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decodeError(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/households", nil, false)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestLogin_InvalidCredentials() {
	suite.users.On("AuthenticateUser", mock.Anything, "ana@example.com", "wrong-pass").
		Return(nil, apperrors.NewUnauthorizedError("invalid credentials")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "ana@example.com", Password: "wrong-pass"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid email or password", suite.decodeError(w))
}

func (suite *HandlersTestSuite) TestLogin_ReturnsToken() {
	user := &domain.User{UserID: testUserID, Email: "ana@example.com", Name: "Ana", AuthProvider: domain.ProviderLocal}
	expiresAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.users.On("AuthenticateUser", mock.Anything, "ana@example.com", "correct-horse").Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "ana@example.com", Password: "correct-horse"}, false)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.True(resp.ExpiresAt.Equal(expiresAt))
	suite.Equal(testUserID, resp.User.UserID)
}

func (suite *HandlersTestSuite) TestLogin_RateLimited() {
	suite.users.On("AuthenticateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewUnauthorizedError("invalid credentials")).Times(3)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "ana@example.com", Password: "nope"}, false)
		codes = append(codes, w.Code)
	}
	suite.Equal([]int{401, 401, 401, http.StatusTooManyRequests}, codes)
}

func (suite *HandlersTestSuite) TestRegister_DuplicateEmail() {
	suite.users.On("CreateUser", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, apperrors.NewConflictError("email already registered")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register",
		dto.RegisterRequest{Email: "ana@example.com", Name: "Ana", Password: "long-enough-password"}, false)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("email already registered", suite.decodeError(w))
}

func (suite *HandlersTestSuite) TestGoogleLoginURL() {
	suite.google.On("LoginURL", mock.Anything).
		Return("https://accounts.google.com/o/oauth2/auth?state=state-123", "state-123", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/google/login", nil, false)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.GoogleLoginURLResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("state-123", resp.State)
	suite.Contains(resp.URL, "state=state-123")
}

func (suite *HandlersTestSuite) TestGoogleExchangeCode_CreatesUser() {
	identity := &domain.ExternalIdentity{
		Provider: domain.ProviderGoogle, ProviderUserID: "google-sub",
		Email: "ana@example.com", Name: "Ana", EmailVerified: true,
	}
	user := &domain.User{UserID: testUserID, Email: "ana@example.com", AuthProvider: domain.ProviderGoogle}

	suite.google.On("Identify", mock.Anything, "auth-code").Return(identity, nil).Once()
	suite.users.On("FindOrCreateOAuthUser", mock.Anything, *identity).Return(user, nil).Once()
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("app-token", time.Now().Add(time.Hour), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", map[string]string{"code": "auth-code"}, false)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("app-token", resp.Token)
}

func (suite *HandlersTestSuite) TestGoogleExchangeCode_InvalidGrant() {
	suite.google.On("Identify", mock.Anything, "stale").
		Return(nil, apperrors.NewBadRequestError("Invalid or expired authorization code")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", map[string]string{"code": "stale"}, false)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetMe() {
	suite.users.On("GetUserByID", mock.Anything, testUserID).
		Return(&domain.User{UserID: testUserID, Email: "ana@example.com", Name: "Ana"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ana@example.com", resp.Email)
}

func (suite *HandlersTestSuite) TestCreateHousehold() {
	req := dto.CreateHouseholdRequest{Name: "Casa"}
	suite.households.On("CreateHousehold", mock.Anything, req, testUserID).
		Return(&domain.Household{HouseholdID: testHouseholdID, Name: "Casa", Role: domain.RoleOwner}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/households", req, true)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.HouseholdResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(testHouseholdID, resp.HouseholdID)
}

func (suite *HandlersTestSuite) TestCreateHousehold_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/households", map[string]string{}, true)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.households.AssertNotCalled(suite.T(), "CreateHousehold", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestLeaveHousehold_OwnerWithMembers() {
	suite.households.On("LeaveHousehold", mock.Anything, testHouseholdID, testUserID).
		Return(apperrors.NewValidationError("the owner cannot leave while other members remain")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/households/hh-1/members/me", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestInviteMember_Forbidden() {
	suite.households.On("InviteMember", mock.Anything, testHouseholdID, "bob@example.com", testUserID).
		Return(nil, apperrors.NewForbiddenError("owner role required")).Once()

	w := suite.do(http.MethodPost, "/api/v1/households/hh-1/members", dto.InviteMemberRequest{Email: "bob@example.com"}, true)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestSetPrimaryCurrency_UppercasesCode() {
	suite.currencies.On("SetPrimaryCurrency", mock.Anything, testHouseholdID, "USD", testUserID).Return(nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/households/hh-1/currencies/usd/primary", nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestListHouseholdCurrencies_NotMember() {
	suite.currencies.On("ListHouseholdCurrencies", mock.Anything, testHouseholdID, testUserID).
		Return(nil, apperrors.NewNotFoundError("household not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/households/hh-1/currencies", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCreateExchangeRate() {
	suite.rates.On("CreateExchangeRate", mock.Anything, testHouseholdID,
		mock.MatchedBy(func(r dto.CreateExchangeRateRequest) bool {
			return r.FromCurrencyCode == "USD" && r.ToCurrencyCode == "ARS" &&
				r.Rate.Equal(decimal.NewFromInt(1000)) && r.RateType == domain.RateTypeBlue
		}), testUserID,
	).Return(&domain.ExchangeRate{
		ExchangeRateID: "r1", FromCurrencyCode: "USD", ToCurrencyCode: "ARS",
		Rate: decimal.NewFromInt(1000), RateType: domain.RateTypeBlue,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/households/hh-1/exchange-rates",
		map[string]any{"fromCurrencyCode": "USD", "toCurrencyCode": "ARS", "rate": "1000", "rateType": "blue"}, true)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("r1", resp.ExchangeRateID)
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_UnknownRateType() {
	w := suite.do(http.MethodPost, "/api/v1/households/hh-1/exchange-rates",
		map[string]any{"fromCurrencyCode": "USD", "toCurrencyCode": "ARS", "rate": "1000", "rateType": "parallel"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.rates.AssertNotCalled(suite.T(), "CreateExchangeRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_ServiceValidation() {
	suite.rates.On("CreateExchangeRate", mock.Anything, testHouseholdID, mock.Anything, testUserID).
		Return(nil, apperrors.NewValidationError("exchange rate must be positive")).Once()

	w := suite.do(http.MethodPost, "/api/v1/households/hh-1/exchange-rates",
		map[string]any{"fromCurrencyCode": "USD", "toCurrencyCode": "ARS", "rate": "-1"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w), "must be positive")
}

func (suite *HandlersTestSuite) TestConvert_Fallback() {
	suite.rates.On("ConvertAmount", mock.Anything, testHouseholdID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(10)) }),
		"EUR", "ARS", domain.RateType(""), testUserID,
	).Return(&portssvc.Conversion{
		Amount: decimal.NewFromInt(10), From: "EUR", To: "ARS",
		Quote:     ledger.Quote{Rate: decimal.NewFromInt(1), RateType: domain.RateTypeManual, Source: ledger.SourceFallback},
		Converted: decimal.NewFromInt(10), Formatted: "$10.00",
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/households/hh-1/exchange-rates/convert?amount=10&from=EUR&to=ARS", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("fallback", resp.Source)
	suite.Equal("$10.00", resp.Formatted)
	suite.True(resp.Rate.Equal(decimal.NewFromInt(1)))
}

func (suite *HandlersTestSuite) TestConvert_BadAmount() {
	w := suite.do(http.MethodGet, "/api/v1/households/hh-1/exchange-rates/convert?amount=ten&from=EUR&to=ARS", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListTransactions_PassesPaging() {
	date := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	suite.transactions.On("ListTransactions", mock.Anything, testHouseholdID,
		dto.ListTransactionsParams{Limit: 50, NextToken: "abc"}, testUserID,
	).Return([]domain.Transaction{
		{TransactionID: "t1", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(500), CurrencyCode: "ARS", Date: date},
	}, "next-page", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/households/hh-1/transactions?nextToken=abc", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Equal("next-page", resp.NextToken)
}

func (suite *HandlersTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/households/hh-1/transactions?limit=500", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateTransaction_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/households/hh-1/transactions", map[string]any{
		"type": "transfer", "amount": "100", "description": "x", "category": "otros", "date": "2025-03-05T00:00:00Z",
	}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.transactions.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateTransaction_StrictModeWithoutRate() {
	suite.transactions.On("CreateTransaction", mock.Anything, testHouseholdID,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.Type == domain.TransactionExpense && r.CurrencyCode == "EUR"
		}), testUserID,
	).Return(nil, apperrors.ErrRateNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/households/hh-1/transactions", map[string]any{
		"type": "expense", "amount": "100", "currencyCode": "EUR", "description": "cena",
		"category": "alimentacion", "date": "2025-03-05T00:00:00Z",
	}, true)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteTransaction() {
	suite.transactions.On("DeleteTransaction", mock.Anything, testHouseholdID, "t1", testUserID).Return(nil).Once()
	suite.transactions.On("DeleteTransaction", mock.Anything, testHouseholdID, "missing", testUserID).
		Return(apperrors.NewNotFoundError("transaction not found")).Once()
	suite.transactions.On("DeleteTransaction", mock.Anything, testHouseholdID, "theirs", testUserID).
		Return(apperrors.NewForbiddenError("transaction theirs cannot be deleted by this user")).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/households/hh-1/transactions/t1", nil, true).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/households/hh-1/transactions/missing", nil, true).Code)
	suite.Equal(http.StatusForbidden, suite.do(http.MethodDelete, "/api/v1/households/hh-1/transactions/theirs", nil, true).Code)
}

func (suite *HandlersTestSuite) TestBalances() {
	suite.balances.On("GetBalanceSummary", mock.Anything, testHouseholdID, testUserID).Return(&domain.BalanceSummary{
		HouseholdID:     testHouseholdID,
		PrimaryCurrency: "ARS",
		Cards: []domain.BalanceCard{
			{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(1000), AmountUSD: decimal.NewFromInt(1), Formatted: "$1,000.00", FormattedUSD: "US$1.00"},
		},
		Net:          decimal.NewFromInt(1000),
		FormattedNet: "$1,000.00",
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/households/hh-1/balances", nil, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ARS", resp.PrimaryCurrency)
	suite.Require().Len(resp.Cards, 1)
	suite.Equal("income", resp.Cards[0].Type)
	suite.Equal("$1,000.00", resp.FormattedNet)
}

func (suite *HandlersTestSuite) TestInternalErrorsAreNotLeaked() {
	suite.balances.On("GetBalanceSummary", mock.Anything, testHouseholdID, testUserID).
		Return(nil, apperrors.NewAppError(500, "pq: connection refused", nil)).Once()

	w := suite.do(http.MethodGet, "/api/v1/households/hh-1/balances", nil, true)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.False(strings.Contains(w.Body.String(), "connection refused"))
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
