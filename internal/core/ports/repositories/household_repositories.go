package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// HouseholdReader defines read operations for households and their members
type HouseholdReader interface {
	FindHouseholdByID(ctx context.Context, householdID string) (*domain.Household, error)
	// ListHouseholdsByUserID returns the user's households with Role set, ordered by name.
	ListHouseholdsByUserID(ctx context.Context, userID string) ([]domain.Household, error)
	// FindMembership returns apperrors.ErrNotFound when the user is not a member.
	FindMembership(ctx context.Context, householdID, userID string) (*domain.HouseholdMember, error)
	ListMembers(ctx context.Context, householdID string) ([]domain.HouseholdMember, error)
}

// HouseholdWriter defines write operations for households and their members
type HouseholdWriter interface {
	// CreateHouseholdWithOwner stores the household, its owner membership and its
	// initial currencies atomically.
	CreateHouseholdWithOwner(ctx context.Context, household domain.Household, owner domain.HouseholdMember, currencies []domain.HouseholdCurrency) error
	// AddMember returns apperrors.ErrDuplicate when the user is already a member.
	AddMember(ctx context.Context, member domain.HouseholdMember) error
	// RemoveMember returns apperrors.ErrNotFound when no membership was deleted.
	RemoveMember(ctx context.Context, householdID, userID string) error
}

// HouseholdRepositoryFacade combines all household-related repository interfaces
type HouseholdRepositoryFacade interface {
	HouseholdReader
	HouseholdWriter
}

// HouseholdRepositoryWithTx extends HouseholdRepositoryFacade with transaction capabilities
type HouseholdRepositoryWithTx interface {
	HouseholdRepositoryFacade
	TransactionManager
}
