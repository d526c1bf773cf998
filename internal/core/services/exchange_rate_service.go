package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// exchangeRateService validates rates before they reach a household ledger.
type exchangeRateService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	ledgers      LedgerProvider
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(currencyRepo portsrepo.CurrencyReader, authorizer portssvc.HouseholdAuthorizerSvc, ledgers LedgerProvider) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		BaseService:  BaseService{HouseholdAuthorizer: authorizer},
		currencyRepo: currencyRepo,
		ledgers:      ledgers,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate handles the creation of a new exchange rate.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, householdID string, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	rateType := req.RateType.OrDefault()
	if !rateType.IsValid() {
		return nil, fmt.Errorf("%w: unknown rate type '%s'", apperrors.ErrValidation, req.RateType)
	}

	if err := s.AuthorizeUser(ctx, creatorUserID, householdID, domain.RoleMember); err != nil {
		return nil, err
	}

	if _, err := requireActiveCurrency(ctx, s.currencyRepo, req.FromCurrencyCode); err != nil {
		return nil, fmt.Errorf("invalid 'from' currency: %w", err)
	}
	if _, err := requireActiveCurrency(ctx, s.currencyRepo, req.ToCurrencyCode); err != nil {
		return nil, fmt.Errorf("invalid 'to' currency: %w", err)
	}

	l, err := s.ledgers.Get(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load household ledger", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	in := ledger.NewRate{
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Rate:             req.Rate,
		RateType:         rateType,
		Notes:            req.Notes,
		CreatedBy:        creatorUserID,
	}
	if req.ValidFrom != nil {
		in.ValidFrom = req.ValidFrom.UTC()
	}

	rate, err := l.AddRate(ctx, in)
	if err != nil {
		if rate != nil {
			// stored, but the snapshot is stale; the next Get reloads it
			s.LogError(ctx, err, "Exchange rate saved but ledger reload failed", slog.String("household_id", householdID))
			s.ledgers.Invalidate(householdID)
			return rate, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: an identical %s rate for %s/%s already exists", apperrors.ErrDuplicate, rateType, req.FromCurrencyCode, req.ToCurrencyCode)
		}
		s.LogError(ctx, err, "Failed to create exchange rate", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate created",
		slog.String("household_id", householdID),
		slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("pair", rate.FromCurrencyCode+"/"+rate.ToCurrencyCode),
		slog.String("rate_type", string(rate.RateType)),
		slog.Time("valid_from", rate.ValidFrom.In(time.UTC)))
	return rate, nil
}

// ListExchangeRates returns the active rates of the household, newest first.
func (s *exchangeRateService) ListExchangeRates(ctx context.Context, householdID, requestingUserID string) ([]domain.ExchangeRate, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, householdID, domain.RoleMember); err != nil {
		return nil, err
	}
	l, err := s.ledgers.Get(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load household ledger", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	rates := l.Rates()
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// ConvertAmount converts with the latest matching rate. Pairs with no rate in
// either direction convert one to one; Quote.Source reports that.
func (s *exchangeRateService) ConvertAmount(ctx context.Context, householdID string, amount decimal.Decimal, from, to string, rateType domain.RateType, requestingUserID string) (*portssvc.Conversion, error) {
	rateType = rateType.OrDefault()
	if !rateType.IsValid() {
		return nil, fmt.Errorf("%w: unknown rate type '%s'", apperrors.ErrValidation, rateType)
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, householdID, domain.RoleMember); err != nil {
		return nil, err
	}
	l, err := s.ledgers.Get(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load household ledger", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	quote := l.Resolve(from, to, rateType)
	converted := l.Convert(amount, from, to, rateType)
	if !quote.Found() {
		s.LogDebug(ctx, "No exchange rate for pair, converted one to one",
			slog.String("household_id", householdID),
			slog.String("from", from), slog.String("to", to),
			slog.String("rate_type", string(rateType)))
	}

	return &portssvc.Conversion{
		Amount:    amount,
		From:      from,
		To:        to,
		Quote:     quote,
		Converted: converted,
		Formatted: l.Format(converted, to),
	}, nil
}
