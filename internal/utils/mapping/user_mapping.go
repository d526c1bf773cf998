package mapping

import (
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
)

// ToModelUser converts a domain User to a model User.
// Empty password hashes and provider ids are stored as NULL.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:        d.UserID,
		Email:         d.Email,
		Name:          d.Name,
		AuthProvider:  string(d.AuthProvider),
		EmailVerified: d.EmailVerified,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.PasswordHash != "" {
		m.PasswordHash = &d.PasswordHash
	}
	if d.ProviderUserID != "" {
		m.ProviderUserID = &d.ProviderUserID
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:        m.UserID,
		Email:         m.Email,
		Name:          m.Name,
		AuthProvider:  domain.AuthProvider(m.AuthProvider),
		EmailVerified: m.EmailVerified,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.PasswordHash != nil {
		d.PasswordHash = *m.PasswordHash
	}
	if m.ProviderUserID != nil {
		d.ProviderUserID = *m.ProviderUserID
	}
	return d
}
