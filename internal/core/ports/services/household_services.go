package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// HouseholdReaderSvc defines read operations for household data
type HouseholdReaderSvc interface {
	// ListUserHouseholds retrieves the households a user belongs to, with the user's role.
	ListUserHouseholds(ctx context.Context, userID string) ([]domain.Household, error)

	// ListMembers retrieves the members of a household. Requires membership.
	ListMembers(ctx context.Context, householdID, requestingUserID string) ([]domain.HouseholdMember, error)
}

// HouseholdWriterSvc defines write operations for household data
type HouseholdWriterSvc interface {
	// CreateHousehold creates a household owned by the creator with ARS and USD enabled.
	CreateHousehold(ctx context.Context, req dto.CreateHouseholdRequest, creatorUserID string) (*domain.Household, error)

	// InviteMember adds a registered user, found by email, as a member. Owner only.
	InviteMember(ctx context.Context, householdID, email, invitingUserID string) (*domain.HouseholdMember, error)

	// LeaveHousehold removes the user's own membership.
	LeaveHousehold(ctx context.Context, householdID, userID string) error
}

// HouseholdAuthorizerSvc defines operations for household authorization
type HouseholdAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a household.
	AuthorizeUserAction(ctx context.Context, userID, householdID string, requiredRole domain.HouseholdRole) error
}

// HouseholdSvcFacade combines all household-related service interfaces
type HouseholdSvcFacade interface {
	HouseholdReaderSvc
	HouseholdWriterSvc
	HouseholdAuthorizerSvc
}
