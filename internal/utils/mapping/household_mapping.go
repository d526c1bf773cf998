package mapping

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
)

// ToModelHousehold converts a domain Household to a model Household
func ToModelHousehold(d domain.Household) models.Household {
	return models.Household{
		HouseholdID: d.HouseholdID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHousehold converts a model Household to a domain Household
func ToDomainHousehold(m models.Household) domain.Household {
	return domain.Household{
		HouseholdID: m.HouseholdID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelHouseholdMember(d domain.HouseholdMember) models.HouseholdMember {
	return models.HouseholdMember{
		HouseholdID: d.HouseholdID,
		UserID:      d.UserID,
		UserName:    d.UserName,
		Role:        string(d.Role),
		JoinedAt:    d.JoinedAt,
	}
}

func ToDomainHouseholdMember(m models.HouseholdMember) domain.HouseholdMember {
	return domain.HouseholdMember{
		HouseholdID: m.HouseholdID,
		UserID:      m.UserID,
		UserName:    m.UserName,
		Role:        domain.HouseholdRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}
