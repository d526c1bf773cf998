package domain

import "time"

// Household is a shared group of users collaborating on one finance ledger.
type Household struct {
	HouseholdID string        `json:"householdID"`
	Name        string        `json:"name"`
	Role        HouseholdRole `json:"role,omitempty"` // role of the requesting user, set on listings
	AuditFields
}

// HouseholdRole defines the possible roles a user can have within a household.
type HouseholdRole string

const (
	RoleOwner  HouseholdRole = "owner"
	RoleMember HouseholdRole = "member"
)

// Satisfies reports whether a member holding r may perform an action requiring required.
func (r HouseholdRole) Satisfies(required HouseholdRole) bool {
	if required == RoleOwner {
		return r == RoleOwner
	}
	return r == RoleOwner || r == RoleMember
}

// HouseholdMember represents the membership of a User in a Household.
type HouseholdMember struct {
	HouseholdID string        `json:"householdID"`
	UserID      string        `json:"userID"`
	UserName    string        `json:"userName,omitempty"`
	Role        HouseholdRole `json:"role"`
	JoinedAt    time.Time     `json:"joinedAt"`
}
