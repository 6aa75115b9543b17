package mapping

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/models"
)

// ToModelTreasuryAccount converts a domain treasury account to its row model.
func ToModelTreasuryAccount(d domain.TreasuryAccount) models.TreasuryAccount {
	return models.TreasuryAccount{
		AccountID:      d.AccountID,
		Code:           d.Code,
		Title:          d.Title,
		Kind:           models.TreasuryKind(d.Kind),
		InitialBalance: d.InitialBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTreasuryAccount converts a row model to a domain treasury account.
func ToDomainTreasuryAccount(m models.TreasuryAccount) domain.TreasuryAccount {
	return domain.TreasuryAccount{
		AccountID:      m.AccountID,
		Code:           m.Code,
		Title:          m.Title,
		Kind:           domain.TreasuryKind(m.Kind),
		InitialBalance: m.InitialBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCategoryAccount converts a domain category account to its row model.
func ToModelCategoryAccount(d domain.CategoryAccount) models.CategoryAccount {
	m := models.CategoryAccount{
		AccountID:   d.AccountID,
		Code:        d.Code,
		Name:        d.Name,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.Classification != nil {
		classification := string(*d.Classification)
		m.Classification = &classification
	}
	return m
}

// ToDomainCategoryAccount converts a row model to a domain category account.
func ToDomainCategoryAccount(m models.CategoryAccount) domain.CategoryAccount {
	d := domain.CategoryAccount{
		AccountID:   m.AccountID,
		Code:        m.Code,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.Classification != nil {
		classification := domain.Classification(*m.Classification)
		d.Classification = &classification
	}
	return d
}
