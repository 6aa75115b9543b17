package dto

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTreasuryAccountRequest defines the expected JSON body for creating a
// bank or cash account.
type CreateTreasuryAccountRequest struct {
	Code           string          `json:"code" binding:"omitempty,max=20"`
	Title          string          `json:"title" binding:"required,max=100"`
	Kind           string          `json:"kind" binding:"required,oneof=BANK CASH"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// CreateCategoryAccountRequest defines the expected JSON body for creating
// an income or expense head.
type CreateCategoryAccountRequest struct {
	Code           string  `json:"code" binding:"omitempty,max=20"`
	Name           string  `json:"name" binding:"required,max=100"`
	Classification *string `json:"classification" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// CreateProjectRequest defines the expected JSON body for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// TreasuryAccountResponse is the API representation of a treasury account.
type TreasuryAccountResponse struct {
	AccountID      string          `json:"accountID"`
	Code           string          `json:"code,omitempty"`
	Title          string          `json:"title"`
	Kind           string          `json:"kind"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	IsActive       bool            `json:"isActive"`
}

// CategoryAccountResponse is the API representation of a category account.
type CategoryAccountResponse struct {
	AccountID      string  `json:"accountID"`
	Code           string  `json:"code,omitempty"`
	Name           string  `json:"name"`
	Classification *string `json:"classification,omitempty"`
	IsActive       bool    `json:"isActive"`
}

// ProjectResponse is the API representation of a project.
type ProjectResponse struct {
	ProjectID   string `json:"projectID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// ToTreasuryAccountResponse converts a domain treasury account to its DTO.
func ToTreasuryAccountResponse(a domain.TreasuryAccount) TreasuryAccountResponse {
	return TreasuryAccountResponse{
		AccountID:      a.AccountID,
		Code:           a.Code,
		Title:          a.Title,
		Kind:           string(a.Kind),
		InitialBalance: a.InitialBalance,
		IsActive:       a.IsActive,
	}
}

// ToCategoryAccountResponse converts a domain category account to its DTO.
func ToCategoryAccountResponse(a domain.CategoryAccount) CategoryAccountResponse {
	resp := CategoryAccountResponse{
		AccountID: a.AccountID,
		Code:      a.Code,
		Name:      a.Name,
		IsActive:  a.IsActive,
	}
	if a.Classification != nil {
		classification := string(*a.Classification)
		resp.Classification = &classification
	}
	return resp
}

// ToProjectResponse converts a domain project to its DTO.
func ToProjectResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ProjectID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
	}
}
