package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountService interface over the account
// registry and project lookup.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	projectRepo portsrepo.ProjectRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, projectRepo portsrepo.ProjectRepository) portssvc.AccountService {
	return &accountService{
		accountRepo: accountRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.AccountService = (*accountService)(nil)

func (s *accountService) CreateTreasuryAccount(ctx context.Context, req dto.CreateTreasuryAccountRequest, userID string) (*domain.TreasuryAccount, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("treasury account title is required")
	}

	now := time.Now()
	account := domain.TreasuryAccount{
		AccountID:      uuid.NewString(),
		Code:           strings.TrimSpace(req.Code),
		Title:          strings.TrimSpace(req.Title),
		Kind:           domain.TreasuryKind(req.Kind),
		InitialBalance: req.InitialBalance,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveTreasuryAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save treasury account", slog.String("title", account.Title))
		return nil, err
	}

	s.LogInfo(ctx, "Treasury account created", slog.String("account_id", account.AccountID), slog.String("kind", req.Kind))
	return &account, nil
}

func (s *accountService) CreateCategoryAccount(ctx context.Context, req dto.CreateCategoryAccountRequest, userID string) (*domain.CategoryAccount, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("category account name is required")
	}

	now := time.Now()
	account := domain.CategoryAccount{
		AccountID: uuid.NewString(),
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.Classification != nil {
		classification := domain.Classification(*req.Classification)
		account.Classification = &classification
	}

	if err := s.accountRepo.SaveCategoryAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save category account", slog.String("name", account.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Category account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetTreasuryAccountByID(ctx context.Context, accountID string) (*domain.TreasuryAccount, error) {
	return s.accountRepo.FindTreasuryAccountByID(ctx, accountID)
}

func (s *accountService) GetCategoryAccountByID(ctx context.Context, accountID string) (*domain.CategoryAccount, error) {
	return s.accountRepo.FindCategoryAccountByID(ctx, accountID)
}

func (s *accountService) ListTreasuryAccounts(ctx context.Context, activeOnly bool) ([]domain.TreasuryAccount, error) {
	return s.accountRepo.ListTreasuryAccounts(ctx, activeOnly)
}

func (s *accountService) ListCategoryAccounts(ctx context.Context, activeOnly bool) ([]domain.CategoryAccount, error) {
	return s.accountRepo.ListCategoryAccounts(ctx, activeOnly)
}

func (s *accountService) DeactivateTreasuryAccount(ctx context.Context, accountID string, userID string) error {
	if err := s.accountRepo.DeactivateTreasuryAccount(ctx, accountID, userID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate treasury account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Treasury account deactivated", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) DeactivateCategoryAccount(ctx context.Context, accountID string, userID string) error {
	if err := s.accountRepo.DeactivateCategoryAccount(ctx, accountID, userID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate category account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Category account deactivated", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, userID string) (*domain.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("project name is required")
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("name", project.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *accountService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *accountService) ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	return s.projectRepo.ListProjects(ctx, activeOnly)
}
