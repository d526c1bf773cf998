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
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser registers a local account. Emails are unique regardless of provider.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.NewAuditFields(userID, now),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", userID))
	return &user, nil
}

// AuthenticateUser returns apperrors.ErrUnauthorized for any credential mismatch.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if user.AuthProvider != domain.ProviderLocal || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.GetLogger(ctx).Warn("Invalid login attempt", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// FindOrCreateOAuthUser resolves a provider identity to a user. An existing account
// with the same email is reused only when the provider vouches for that email.
func (s *userService) FindOrCreateOAuthUser(ctx context.Context, identity domain.ExternalIdentity) (*domain.User, error) {
	provider := slog.String("provider", string(identity.Provider))

	user, err := s.userRepo.FindUserByProviderDetails(ctx, identity.Provider, identity.ProviderUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider", provider)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	email := normalizeEmail(identity.Email)
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil && identity.EmailVerified:
		s.LogInfo(ctx, "Provider sign-in matched existing account", slog.String("user_id", existing.UserID), provider)
		return existing, nil
	case err == nil:
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name = email
	}
	userID := uuid.NewString()
	newUser := domain.User{
		UserID:         userID,
		Email:          email,
		Name:           name,
		AuthProvider:   identity.Provider,
		ProviderUserID: identity.ProviderUserID,
		EmailVerified:  identity.EmailVerified,
		AuditFields:    domain.NewAuditFields(userID, time.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save OAuth user", provider)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created from OAuth sign-in", slog.String("user_id", userID), provider)
	return &newUser, nil
}
