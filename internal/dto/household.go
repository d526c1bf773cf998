package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// CreateHouseholdRequest defines the data needed to create a household.
type CreateHouseholdRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	PrimaryCurrency string `json:"primaryCurrency" binding:"omitempty,len=3,uppercase"`
}

// InviteMemberRequest adds a registered user to a household by email.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HouseholdResponse defines the data returned for a household.
type HouseholdResponse struct {
	HouseholdID string    `json:"householdID"`
	Name        string    `json:"name"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

func ToHouseholdResponse(h *domain.Household) HouseholdResponse {
	return HouseholdResponse{
		HouseholdID: h.HouseholdID,
		Name:        h.Name,
		Role:        string(h.Role),
		CreatedAt:   h.CreatedAt,
		CreatedBy:   h.CreatedBy,
	}
}

// ListHouseholdsResponse wraps the households of the calling user.
type ListHouseholdsResponse struct {
	Households []HouseholdResponse `json:"households"`
}

func ToListHouseholdsResponse(households []domain.Household) ListHouseholdsResponse {
	responses := make([]HouseholdResponse, len(households))
	for i := range households {
		responses[i] = ToHouseholdResponse(&households[i])
	}
	return ListHouseholdsResponse{Households: responses}
}

// HouseholdMemberResponse defines the data returned for a household member.
type HouseholdMemberResponse struct {
	UserID   string    `json:"userID"`
	UserName string    `json:"userName,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

func ToHouseholdMemberResponse(m *domain.HouseholdMember) HouseholdMemberResponse {
	return HouseholdMemberResponse{
		UserID:   m.UserID,
		UserName: m.UserName,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

func ToListHouseholdMembersResponse(members []domain.HouseholdMember) []HouseholdMemberResponse {
	responses := make([]HouseholdMemberResponse, len(members))
	for i := range members {
		responses[i] = ToHouseholdMemberResponse(&members[i])
	}
	return responses
}
