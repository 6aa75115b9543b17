package pgsql

import (
	"context"
	"errors"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/bizbooks/bizbooks_backend/internal/models"
	"github.com/bizbooks/bizbooks_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository stores treasury and category accounts in PostgreSQL.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for the account registry.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) SaveTreasuryAccount(ctx context.Context, account domain.TreasuryAccount) error {
	model := mapping.ToModelTreasuryAccount(account)
	query := `
		INSERT INTO treasury_accounts (
			account_id, code, title, kind, initial_balance, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.AccountID,
		model.Code,
		model.Title,
		model.Kind,
		model.InitialBalance,
		model.IsActive,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "treasury account "+model.AccountID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert treasury account "+model.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) SaveCategoryAccount(ctx context.Context, account domain.CategoryAccount) error {
	model := mapping.ToModelCategoryAccount(account)
	query := `
		INSERT INTO category_accounts (
			account_id, code, name, classification, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.AccountID,
		model.Code,
		model.Name,
		model.Classification,
		model.IsActive,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "category account "+model.AccountID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert category account "+model.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindTreasuryAccountByID(ctx context.Context, accountID string) (*domain.TreasuryAccount, error) {
	query := `
		SELECT account_id, code, title, kind, initial_balance, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM treasury_accounts
		WHERE account_id = $1;
	`
	var model models.TreasuryAccount
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&model.AccountID,
		&model.Code,
		&model.Title,
		&model.Kind,
		&model.InitialBalance,
		&model.IsActive,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find treasury account by ID "+accountID, err)
	}
	account := mapping.ToDomainTreasuryAccount(model)
	return &account, nil
}

func (r *PgxAccountRepository) FindCategoryAccountByID(ctx context.Context, accountID string) (*domain.CategoryAccount, error) {
	query := `
		SELECT account_id, code, name, classification, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM category_accounts
		WHERE account_id = $1;
	`
	var model models.CategoryAccount
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&model.AccountID,
		&model.Code,
		&model.Name,
		&model.Classification,
		&model.IsActive,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category account by ID "+accountID, err)
	}
	account := mapping.ToDomainCategoryAccount(model)
	return &account, nil
}

func (r *PgxAccountRepository) ListTreasuryAccounts(ctx context.Context, activeOnly bool) ([]domain.TreasuryAccount, error) {
	query := `
		SELECT account_id, code, title, kind, initial_balance, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM treasury_accounts
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY title ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list treasury accounts", err)
	}
	defer rows.Close()

	accounts := make([]domain.TreasuryAccount, 0)
	for rows.Next() {
		var model models.TreasuryAccount
		if err := rows.Scan(
			&model.AccountID,
			&model.Code,
			&model.Title,
			&model.Kind,
			&model.InitialBalance,
			&model.IsActive,
			&model.CreatedAt,
			&model.CreatedBy,
			&model.LastUpdatedAt,
			&model.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan treasury account row", err)
		}
		accounts = append(accounts, mapping.ToDomainTreasuryAccount(model))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating treasury account rows", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ListCategoryAccounts(ctx context.Context, activeOnly bool) ([]domain.CategoryAccount, error) {
	query := `
		SELECT account_id, code, name, classification, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM category_accounts
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list category accounts", err)
	}
	defer rows.Close()

	accounts := make([]domain.CategoryAccount, 0)
	for rows.Next() {
		var model models.CategoryAccount
		if err := rows.Scan(
			&model.AccountID,
			&model.Code,
			&model.Name,
			&model.Classification,
			&model.IsActive,
			&model.CreatedAt,
			&model.CreatedBy,
			&model.LastUpdatedAt,
			&model.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category account row", err)
		}
		accounts = append(accounts, mapping.ToDomainCategoryAccount(model))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category account rows", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) DeactivateTreasuryAccount(ctx context.Context, accountID string, userID string) error {
	query := `
		UPDATE treasury_accounts
		SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate treasury account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) DeactivateCategoryAccount(ctx context.Context, accountID string, userID string) error {
	query := `
		UPDATE category_accounts
		SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate category account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
