package repositories

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// AccountRepository is the read/write interface over the account registry.
// Reads return apperrors.ErrNotFound when an id is absent; a voucher that
// references a missing account is a data-integrity fault the caller must
// report rather than ignore.
type AccountRepository interface {
	SaveTreasuryAccount(ctx context.Context, account domain.TreasuryAccount) error
	SaveCategoryAccount(ctx context.Context, account domain.CategoryAccount) error

	FindTreasuryAccountByID(ctx context.Context, accountID string) (*domain.TreasuryAccount, error)
	FindCategoryAccountByID(ctx context.Context, accountID string) (*domain.CategoryAccount, error)

	ListTreasuryAccounts(ctx context.Context, activeOnly bool) ([]domain.TreasuryAccount, error)
	ListCategoryAccounts(ctx context.Context, activeOnly bool) ([]domain.CategoryAccount, error)

	DeactivateTreasuryAccount(ctx context.Context, accountID string, userID string) error
	DeactivateCategoryAccount(ctx context.Context, accountID string, userID string) error
}
