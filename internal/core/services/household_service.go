package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/google/uuid"
)

// defaultHouseholdCurrencies are enabled on every new household, in display order.
var defaultHouseholdCurrencies = []string{"ARS", domain.USD}

// householdService handles business logic related to households and memberships.
type householdService struct {
	BaseService
	householdRepo  portsrepo.HouseholdRepositoryFacade
	userRepo       portsrepo.UserReader
	currencyRepo   portsrepo.CurrencyReader
	defaultPrimary string
}

// NewHouseholdService creates a new household service. defaultPrimary is the primary
// currency of households created without one.
func NewHouseholdService(hr portsrepo.HouseholdRepositoryFacade, ur portsrepo.UserReader, cr portsrepo.CurrencyReader, defaultPrimary string) portssvc.HouseholdSvcFacade {
	if defaultPrimary == "" {
		defaultPrimary = defaultHouseholdCurrencies[0]
	}
	s := &householdService{
		householdRepo:  hr,
		userRepo:       ur,
		currencyRepo:   cr,
		defaultPrimary: defaultPrimary,
	}
	s.HouseholdAuthorizer = s
	return s
}

var _ portssvc.HouseholdSvcFacade = (*householdService)(nil)

// CreateHousehold creates a household, makes the creator its owner and enables its currencies.
func (s *householdService) CreateHousehold(ctx context.Context, req dto.CreateHouseholdRequest, creatorUserID string) (*domain.Household, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: household name is required", apperrors.ErrValidation)
	}

	primary := req.PrimaryCurrency
	if primary == "" {
		primary = s.defaultPrimary
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, primary)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code %s not found", apperrors.ErrValidation, primary)
		}
		s.LogError(ctx, err, "Failed to check currency code existence", slog.String("currency_code", primary))
		return nil, fmt.Errorf("failed to validate currency code: %w", err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: currency %s is not active", apperrors.ErrValidation, primary)
	}

	now := time.Now()
	household := domain.Household{
		HouseholdID: uuid.NewString(),
		Name:        name,
		Role:        domain.RoleOwner,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	owner := domain.HouseholdMember{
		HouseholdID: household.HouseholdID,
		UserID:      creatorUserID,
		Role:        domain.RoleOwner,
		JoinedAt:    now,
	}

	codes := defaultHouseholdCurrencies
	if !slices.Contains(codes, primary) {
		codes = append(append([]string(nil), codes...), primary)
	}
	currencies := make([]domain.HouseholdCurrency, 0, len(codes))
	for i, code := range codes {
		currencies = append(currencies, domain.HouseholdCurrency{
			HouseholdCurrencyID: uuid.NewString(),
			HouseholdID:         household.HouseholdID,
			CurrencyCode:        code,
			IsPrimary:           code == primary,
			DisplayOrder:        i + 1,
		})
	}

	if err := s.householdRepo.CreateHouseholdWithOwner(ctx, household, owner, currencies); err != nil {
		s.LogError(ctx, err, "Failed to save household in repository", slog.String("household_name", name))
		return nil, fmt.Errorf("failed to create household: %w", err)
	}

	s.LogInfo(ctx, "Household created successfully",
		slog.String("household_id", household.HouseholdID),
		slog.String("creator_user_id", creatorUserID),
		slog.String("primary_currency", primary))
	return &household, nil
}

// ListUserHouseholds retrieves the list of households a given user belongs to.
func (s *householdService) ListUserHouseholds(ctx context.Context, userID string) ([]domain.Household, error) {
	households, err := s.householdRepo.ListHouseholdsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list households for user from repository", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list households for user %s: %w", userID, err)
	}
	if households == nil {
		return []domain.Household{}, nil
	}
	s.LogDebug(ctx, "Households listed successfully for user", slog.String("user_id", userID), slog.Int("count", len(households)))
	return households, nil
}

// ListMembers retrieves the members of a household the requesting user belongs to.
func (s *householdService) ListMembers(ctx context.Context, householdID, requestingUserID string) ([]domain.HouseholdMember, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, householdID, domain.RoleMember); err != nil {
		return nil, err
	}
	members, err := s.householdRepo.ListMembers(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list household members", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to list members of household %s: %w", householdID, err)
	}
	if members == nil {
		return []domain.HouseholdMember{}, nil
	}
	return members, nil
}

// InviteMember adds the registered user with the given email as a member of the household.
func (s *householdService) InviteMember(ctx context.Context, householdID, email, invitingUserID string) (*domain.HouseholdMember, error) {
	if err := s.AuthorizeUserAction(ctx, invitingUserID, householdID, domain.RoleOwner); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no user registered with email %s", apperrors.ErrNotFound, email)
		}
		s.LogError(ctx, err, "Failed to look up invited user", slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	member := domain.HouseholdMember{
		HouseholdID: householdID,
		UserID:      user.UserID,
		UserName:    user.Name,
		Role:        domain.RoleMember,
		JoinedAt:    time.Now(),
	}
	if err := s.householdRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: user is already a member of the household", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to add member to household", slog.String("household_id", householdID), slog.String("target_user_id", user.UserID))
		return nil, fmt.Errorf("failed to add member to household %s: %w", householdID, err)
	}

	s.LogInfo(ctx, "Member added to household",
		slog.String("household_id", householdID),
		slog.String("target_user_id", user.UserID),
		slog.String("added_by_user_id", invitingUserID))
	return &member, nil
}

// LeaveHousehold removes the user's own membership. An owner cannot leave while
// other members remain.
func (s *householdService) LeaveHousehold(ctx context.Context, householdID, userID string) error {
	membership, err := s.membership(ctx, householdID, userID)
	if err != nil {
		return err
	}

	if membership.Role == domain.RoleOwner {
		members, err := s.householdRepo.ListMembers(ctx, householdID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list household members", slog.String("household_id", householdID))
			return fmt.Errorf("failed to list members of household %s: %w", householdID, err)
		}
		if len(members) > 1 {
			return fmt.Errorf("%w: the owner cannot leave a household that still has members", apperrors.ErrValidation)
		}
	}

	if err := s.householdRepo.RemoveMember(ctx, householdID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to remove household member", slog.String("household_id", householdID), slog.String("user_id", userID))
		return fmt.Errorf("failed to leave household %s: %w", householdID, err)
	}

	s.LogInfo(ctx, "User left household", slog.String("household_id", householdID), slog.String("user_id", userID))
	return nil
}

// AuthorizeUserAction checks if a user holds requiredRole (or a stronger one) in a household.
// Non-members get apperrors.ErrNotFound so household existence is not revealed.
func (s *householdService) AuthorizeUserAction(ctx context.Context, userID, householdID string, requiredRole domain.HouseholdRole) error {
	membership, err := s.membership(ctx, householdID, userID)
	if err != nil {
		return err
	}
	if membership.Role.Satisfies(requiredRole) {
		return nil
	}

	s.GetLogger(ctx).Warn("Authorization failed: User lacks required role",
		slog.String("user_id", userID),
		slog.String("household_id", householdID),
		slog.String("user_role", string(membership.Role)),
		slog.String("required_role", string(requiredRole)))
	return fmt.Errorf("%w: %s role required", apperrors.ErrForbidden, requiredRole)
}

func (s *householdService) membership(ctx context.Context, householdID, userID string) (*domain.HouseholdMember, error) {
	membership, err := s.householdRepo.FindMembership(ctx, householdID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Authorization failed: user is not a household member",
				slog.String("user_id", userID),
				slog.String("household_id", householdID))
			return nil, fmt.Errorf("%w: household %s", apperrors.ErrNotFound, householdID)
		}
		s.LogError(ctx, err, "Failed to check household membership", slog.String("user_id", userID), slog.String("household_id", householdID))
		return nil, fmt.Errorf("failed to check authorization: %w", err)
	}
	return membership, nil
}
