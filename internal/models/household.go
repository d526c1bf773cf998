package models

import "time"

// Household represents a row of the households table.
type Household struct {
	HouseholdID string `db:"household_id"`
	Name        string `db:"name"`
	AuditFields
}

// HouseholdMember represents a membership row, joined with the user's name on reads.
type HouseholdMember struct {
	HouseholdID string    `db:"household_id"`
	UserID      string    `db:"user_id"`
	UserName    string    `db:"user_name"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
}
