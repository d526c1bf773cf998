package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/google/uuid"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	ledgers      LedgerProvider
}

// NewCurrencyService creates the currency service. Household currency changes
// invalidate the household's cached ledger.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, authorizer portssvc.HouseholdAuthorizerSvc, ledgers LedgerProvider) portssvc.CurrencySvcFacade {
	return &currencyService{
		BaseService:  BaseService{HouseholdAuthorizer: authorizer},
		currencyRepo: currencyRepo,
		ledgers:      ledgers,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) ListHouseholdCurrencies(ctx context.Context, householdID, requestingUserID string) ([]domain.HouseholdCurrency, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, householdID, domain.RoleMember); err != nil {
		return nil, err
	}
	hcs, err := s.currencyRepo.ListHouseholdCurrencies(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list household currencies", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to list household currencies: %w", err)
	}
	if hcs == nil {
		return []domain.HouseholdCurrency{}, nil
	}
	return hcs, nil
}

// AddHouseholdCurrency enables an active currency for the household.
func (s *currencyService) AddHouseholdCurrency(ctx context.Context, householdID string, req dto.AddHouseholdCurrencyRequest, requestingUserID string) (*domain.HouseholdCurrency, error) {
	requiredRole := domain.RoleMember
	if req.IsPrimary {
		requiredRole = domain.RoleOwner
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, householdID, requiredRole); err != nil {
		return nil, err
	}

	currency, err := requireActiveCurrency(ctx, s.currencyRepo, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	hc := domain.HouseholdCurrency{
		HouseholdCurrencyID: uuid.NewString(),
		HouseholdID:         householdID,
		CurrencyCode:        currency.CurrencyCode,
		IsPrimary:           req.IsPrimary,
		DisplayOrder:        req.DisplayOrder,
		Currency:            currency,
	}
	if err := s.currencyRepo.AddHouseholdCurrency(ctx, hc); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: currency %s is already enabled for the household", apperrors.ErrDuplicate, hc.CurrencyCode)
		}
		s.LogError(ctx, err, "Failed to add household currency", slog.String("household_id", householdID), slog.String("currency_code", hc.CurrencyCode))
		return nil, fmt.Errorf("failed to add household currency: %w", err)
	}
	s.ledgers.Invalidate(householdID)

	s.LogInfo(ctx, "Household currency added",
		slog.String("household_id", householdID),
		slog.String("currency_code", hc.CurrencyCode),
		slog.Bool("is_primary", hc.IsPrimary))
	return &hc, nil
}

// SetPrimaryCurrency makes code the household's only primary currency.
func (s *currencyService) SetPrimaryCurrency(ctx context.Context, householdID, code, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, householdID, domain.RoleOwner); err != nil {
		return err
	}

	if err := s.currencyRepo.SetPrimaryCurrency(ctx, householdID, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: currency %s is not enabled for the household", apperrors.ErrNotFound, code)
		}
		s.LogError(ctx, err, "Failed to set primary currency", slog.String("household_id", householdID), slog.String("currency_code", code))
		return fmt.Errorf("failed to set primary currency: %w", err)
	}
	s.ledgers.Invalidate(householdID)

	s.LogInfo(ctx, "Primary currency changed", slog.String("household_id", householdID), slog.String("currency_code", code))
	return nil
}

// requireActiveCurrency maps unknown or inactive codes to validation errors.
func requireActiveCurrency(ctx context.Context, repo portsrepo.CurrencyReader, code string) (*domain.Currency, error) {
	currency, err := repo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", code, err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: currency '%s' is not active", apperrors.ErrValidation, code)
	}
	return currency, nil
}
