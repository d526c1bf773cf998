package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionPageSize = 50
	usdPrecision               = 2
	maxAmountScale             = 4 // amount column is NUMERIC(20,4)
)

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	ledgers LedgerProvider
	strict  bool
	now     func() time.Time
}

// TransactionServiceOption configures the transaction service.
type TransactionServiceOption func(*transactionService)

// WithStrictConversion makes CreateTransaction fail with apperrors.ErrRateNotFound
// instead of valuing a transaction one to one when no USD rate exists.
func WithStrictConversion(strict bool) TransactionServiceOption {
	return func(s *transactionService) {
		s.strict = strict
	}
}

// WithTransactionClock overrides the clock used for created/updated timestamps.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, authorizer portssvc.HouseholdAuthorizerSvc, ledgers LedgerProvider, opts ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	s := &transactionService{
		BaseService: BaseService{HouseholdAuthorizer: authorizer},
		txnRepo:     txnRepo,
		ledgers:     ledgers,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a transaction valued in USD with the rate valid at its date.
func (s *transactionService) CreateTransaction(ctx context.Context, householdID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := validateTransactionRequest(req); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, userID, householdID, domain.RoleMember); err != nil {
		return nil, err
	}

	l, err := s.ledgers.Get(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load household ledger", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = l.PrimaryCurrency()
	}
	if _, ok := l.CurrencyInfo(currencyCode); !ok {
		return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, currencyCode)
	}

	rateType := req.ExchangeRateType.OrDefault()
	quote := s.usdQuote(l, currencyCode, rateType, req.Date)
	if !quote.Found() {
		if s.strict {
			return nil, fmt.Errorf("%w: %s/%s (%s)", apperrors.ErrRateNotFound, currencyCode, domain.USD, rateType)
		}
		s.GetLogger(ctx).Warn("No USD rate for transaction currency, valued one to one",
			slog.String("household_id", householdID),
			slog.String("currency_code", currencyCode),
			slog.String("rate_type", string(rateType)))
	}

	now := s.now()
	txn := domain.Transaction{
		TransactionID:    uuid.NewString(),
		HouseholdID:      householdID,
		UserID:           userID,
		Type:             req.Type,
		Amount:           req.Amount,
		CurrencyCode:     currencyCode,
		AmountUSD:        req.Amount.Mul(quote.Rate).Round(usdPrecision),
		ExchangeRate:     quote.Rate,
		ExchangeRateType: rateType,
		Description:      strings.TrimSpace(req.Description),
		Category:         req.Category,
		Date:             req.Date,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.txnRepo.InsertTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("household_id", householdID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("rate_source", string(quote.Source)))
	return &txn, nil
}

// usdQuote prefers the newest rate valid by the end of the transaction day and
// falls back to the latest rate overall, so back-dated entries still get a rate.
func (s *transactionService) usdQuote(l *ledger.Ledger, currencyCode string, rateType domain.RateType, date time.Time) ledger.Quote {
	quote := l.RateAsOf(currencyCode, domain.USD, rateType, endOfDay(date))
	if quote.Found() {
		return quote
	}
	return l.Resolve(currencyCode, domain.USD, rateType)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func validateTransactionRequest(req dto.CreateTransactionRequest) error {
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, req.Type)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.Amount.Equal(req.Amount.Round(maxAmountScale)) {
		return fmt.Errorf("%w: amount supports at most %d decimal places", apperrors.ErrValidation, maxAmountScale)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if !req.Type.AllowsCategory(req.Category) {
		return fmt.Errorf("%w: category '%s' is not valid for %s", apperrors.ErrValidation, req.Category, req.Type)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if req.ExchangeRateType != "" && !req.ExchangeRateType.IsValid() {
		return fmt.Errorf("%w: unknown rate type '%s'", apperrors.ErrValidation, req.ExchangeRateType)
	}
	return nil
}

// ListTransactions returns one page of the household's transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, householdID string, params dto.ListTransactionsParams, requestingUserID string) ([]domain.Transaction, string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, householdID, domain.RoleMember); err != nil {
		return nil, "", err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var cursor *pagination.Cursor
	if params.NextToken != "" {
		c, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		cursor = c
	}

	// one extra row tells whether another page exists
	txns, err := s.txnRepo.ListTransactions(ctx, householdID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("household_id", householdID))
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}

	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeCursor(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.TransactionID})
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}

// DeleteTransaction deletes a household transaction. When the household-scoped
// delete removes nothing it is retried once scoped to the acting user. A row
// that exists but survives both attempts belongs to someone else.
func (s *transactionService) DeleteTransaction(ctx context.Context, householdID, transactionID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, householdID, domain.RoleMember); err != nil {
		return err
	}

	if _, err := s.txnRepo.FindTransactionByID(ctx, householdID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up transaction", slog.String("transaction_id", transactionID))
			return fmt.Errorf("failed to look up transaction: %w", err)
		}
		return err
	}

	deleted, err := s.txnRepo.DeleteTransaction(ctx, householdID, transactionID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if deleted == 0 {
		s.LogDebug(ctx, "Household scoped delete removed nothing, retrying scoped to user",
			slog.String("transaction_id", transactionID), slog.String("user_id", userID))
		deleted, err = s.txnRepo.DeleteTransaction(ctx, householdID, transactionID, &userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
	}
	if deleted == 0 {
		s.LogWarn(ctx, "Transaction exists but could not be deleted by user",
			slog.String("transaction_id", transactionID), slog.String("user_id", userID))
		return fmt.Errorf("%w: transaction %s cannot be deleted by this user", apperrors.ErrForbidden, transactionID)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("household_id", householdID), slog.String("transaction_id", transactionID))
	return nil
}
