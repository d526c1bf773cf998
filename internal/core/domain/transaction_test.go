package domain_test

import (
	"testing"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionType_IsValid(t *testing.T) {
	for _, tt := range domain.TransactionTypes {
		assert.True(t, tt.IsValid(), string(tt))
	}
	assert.False(t, domain.TransactionType("transfer").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
}

func TestTransactionType_AllowsCategory(t *testing.T) {
	tests := []struct {
		name     string
		txType   domain.TransactionType
		category string
		want     bool
	}{
		{"income work", domain.TransactionIncome, "trabajo", true},
		{"expense health", domain.TransactionExpense, "salud", true},
		{"investment crypto", domain.TransactionInvestment, "criptomonedas", true},
		{"saving retirement", domain.TransactionSaving, "jubilacion", true},
		{"other is shared", domain.TransactionSaving, "otros", true},
		{"expense category on income", domain.TransactionIncome, "alimentacion", false},
		{"unknown type", domain.TransactionType("transfer"), "otros", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txType.AllowsCategory(tt.category))
		})
	}
}

func TestRateType(t *testing.T) {
	assert.True(t, domain.RateTypeBlue.IsValid())
	assert.False(t, domain.RateType("parallel").IsValid())
	assert.Equal(t, domain.RateTypeManual, domain.RateType("").OrDefault())
	assert.Equal(t, domain.RateTypeMEP, domain.RateTypeMEP.OrDefault())
}

func TestHouseholdRole_Satisfies(t *testing.T) {
	assert.True(t, domain.RoleOwner.Satisfies(domain.RoleOwner))
	assert.True(t, domain.RoleOwner.Satisfies(domain.RoleMember))
	assert.True(t, domain.RoleMember.Satisfies(domain.RoleMember))
	assert.False(t, domain.RoleMember.Satisfies(domain.RoleOwner))
	assert.False(t, domain.HouseholdRole("").Satisfies(domain.RoleMember))
}
