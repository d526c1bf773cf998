package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// UserReader looks users up. Misses return apperrors.ErrNotFound.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail matches case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser inserts a user. A taken email returns apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
