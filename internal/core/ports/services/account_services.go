package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// AccountService covers administrative setup and read access for the
// account registry and the project reference lookup.
type AccountService interface {
	CreateTreasuryAccount(ctx context.Context, req dto.CreateTreasuryAccountRequest, userID string) (*domain.TreasuryAccount, error)
	CreateCategoryAccount(ctx context.Context, req dto.CreateCategoryAccountRequest, userID string) (*domain.CategoryAccount, error)

	GetTreasuryAccountByID(ctx context.Context, accountID string) (*domain.TreasuryAccount, error)
	GetCategoryAccountByID(ctx context.Context, accountID string) (*domain.CategoryAccount, error)

	ListTreasuryAccounts(ctx context.Context, activeOnly bool) ([]domain.TreasuryAccount, error)
	ListCategoryAccounts(ctx context.Context, activeOnly bool) ([]domain.CategoryAccount, error)

	DeactivateTreasuryAccount(ctx context.Context, accountID string, userID string) error
	DeactivateCategoryAccount(ctx context.Context, accountID string, userID string) error

	CreateProject(ctx context.Context, req dto.CreateProjectRequest, userID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error)
}
