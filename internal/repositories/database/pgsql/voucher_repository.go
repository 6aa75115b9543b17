package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	"github.com/bizbooks/bizbooks_backend/internal/models"
	"github.com/bizbooks/bizbooks_backend/internal/utils/mapping"
	"github.com/bizbooks/bizbooks_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// voucherNoPrefixes maps voucher types to their numbering series prefix.
var voucherNoPrefixes = map[models.VoucherType]string{
	models.VoucherCredit:  "CV",
	models.VoucherDebit:   "DV",
	models.VoucherJournal: "JV",
	models.VoucherContra:  "CN",
}

const voucherColumns = `
	voucher_id, voucher_no, sequence_no, voucher_type, voucher_date, amount,
	narration, confirmed, project_id, bill_no, cheque_no, cheque_date,
	cheque_status, category_account_id, treasury_account_id,
	debit_treasury_id, credit_treasury_id,
	journal_debit_account_id, journal_debit_amount,
	journal_credit_account_id, journal_credit_amount,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxVoucherRepository stores vouchers in PostgreSQL.
type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

// SaveVoucher inserts the voucher and assigns its number inside one database
// transaction. The per-(type, year) counter row is upserted with an atomic
// increment, so two concurrent saves of the same series get distinct numbers.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) (*domain.Voucher, error) {
	model := mapping.ToModelVoucher(voucher)

	prefix, ok := voucherNoPrefixes[model.Type]
	if !ok {
		return nil, apperrors.NewValidationError("unknown voucher type " + string(model.Type))
	}
	year := model.Date.Year()

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	seqQuery := `
		INSERT INTO voucher_sequences (voucher_type, year, last_seq)
		VALUES ($1, $2, 1)
		ON CONFLICT (voucher_type, year)
		DO UPDATE SET last_seq = voucher_sequences.last_seq + 1
		RETURNING last_seq;
	`
	var seq int64
	if err := tx.QueryRow(ctx, seqQuery, model.Type, year).Scan(&seq); err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate voucher number", err)
	}
	model.VoucherNo = fmt.Sprintf("%s-%d-%04d", prefix, year, seq)

	insertQuery := `
		INSERT INTO vouchers (
			voucher_id, voucher_no, voucher_type, voucher_date, amount,
			narration, confirmed, project_id, bill_no, cheque_no, cheque_date,
			cheque_status, category_account_id, treasury_account_id,
			debit_treasury_id, credit_treasury_id,
			journal_debit_account_id, journal_debit_amount,
			journal_credit_account_id, journal_credit_amount,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING sequence_no;
	`
	err = tx.QueryRow(ctx, insertQuery,
		model.VoucherID,
		model.VoucherNo,
		model.Type,
		model.Date,
		model.Amount,
		model.Narration,
		model.Confirmed,
		model.ProjectID,
		model.BillNo,
		model.ChequeNo,
		model.ChequeDate,
		model.ChequeStatus,
		model.CategoryAccountID,
		model.TreasuryAccountID,
		model.DebitTreasuryID,
		model.CreditTreasuryID,
		model.JournalDebitAccountID,
		model.JournalDebitAmount,
		model.JournalCreditAccountID,
		model.JournalCreditAmount,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	).Scan(&model.SequenceNo)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert voucher "+model.VoucherID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainVoucher(model)
	return &saved, nil
}

func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT` + voucherColumns + `
		FROM vouchers
		WHERE voucher_id = $1;
	`
	model, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+voucherID, err)
	}
	voucher := mapping.ToDomainVoucher(*model)
	return &voucher, nil
}

// buildVoucherWhere translates a VoucherFilter into SQL conditions. The
// account condition matches any leg the account can appear on for its kind.
func buildVoucherWhere(filter portsrepo.VoucherFilter) (string, []any) {
	conditions := make([]string, 0, 5)
	args := make([]any, 0, 5)

	nextArg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.AccountID != nil {
		placeholder := nextArg(*filter.AccountID)
		treasuryCond := fmt.Sprintf("treasury_account_id = %[1]s OR debit_treasury_id = %[1]s OR credit_treasury_id = %[1]s", placeholder)
		categoryCond := fmt.Sprintf("category_account_id = %[1]s OR journal_debit_account_id = %[1]s OR journal_credit_account_id = %[1]s", placeholder)
		switch {
		case filter.AccountKind != nil && *filter.AccountKind == domain.KindTreasury:
			conditions = append(conditions, "("+treasuryCond+")")
		case filter.AccountKind != nil && *filter.AccountKind == domain.KindCategory:
			conditions = append(conditions, "("+categoryCond+")")
		default:
			conditions = append(conditions, "("+treasuryCond+" OR "+categoryCond+")")
		}
	}
	if filter.ProjectID != nil {
		conditions = append(conditions, "project_id = "+nextArg(*filter.ProjectID))
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		conditions = append(conditions, "voucher_type = ANY("+nextArg(types)+")")
	}
	if filter.FromDate != nil {
		conditions = append(conditions, "voucher_date >= "+nextArg(*filter.FromDate))
	}
	if filter.ToDate != nil {
		conditions = append(conditions, "voucher_date <= "+nextArg(*filter.ToDate))
	}
	if filter.ConfirmedOnly {
		conditions = append(conditions, "confirmed = TRUE")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, filter portsrepo.VoucherFilter) ([]domain.Voucher, error) {
	where, args := buildVoucherWhere(filter)
	query := `SELECT` + voucherColumns + `
		FROM vouchers` + where + `
		ORDER BY voucher_date ASC, sequence_no ASC;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list vouchers", err)
	}
	defer rows.Close()

	return collectVouchers(rows)
}

// ListVouchersPaginated uses keyset pagination on (voucher_date, sequence_no)
// so pages stay stable while new vouchers are created.
func (r *PgxVoucherRepository) ListVouchersPaginated(ctx context.Context, filter portsrepo.VoucherFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	where, args := buildVoucherWhere(filter)

	if nextToken != nil && *nextToken != "" {
		afterDate, afterSeq, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		cursor := fmt.Sprintf("(voucher_date, sequence_no) > ($%d, $%d)", len(args)+1, len(args)+2)
		args = append(args, afterDate, afterSeq)
		if where == "" {
			where = " WHERE " + cursor
		} else {
			where += " AND " + cursor
		}
	}

	args = append(args, limit+1)
	query := `SELECT` + voucherColumns + `
		FROM vouchers` + where + `
		ORDER BY voucher_date ASC, sequence_no ASC
		LIMIT $` + fmt.Sprint(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list vouchers page", err)
	}
	defer rows.Close()

	vouchers, err := collectVouchers(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(vouchers) > limit {
		vouchers = vouchers[:limit]
		last := vouchers[len(vouchers)-1]
		encoded := pagination.EncodeToken(last.Date, last.SequenceNo)
		token = &encoded
	}
	return vouchers, token, nil
}

func (r *PgxVoucherRepository) ConfirmVoucher(ctx context.Context, voucherID string, userID string, at time.Time) error {
	query := `
		UPDATE vouchers
		SET confirmed = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE voucher_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, voucherID, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to confirm voucher "+voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVoucherRepository) UpdateChequeStatus(ctx context.Context, voucherID string, status domain.ChequeStatus, userID string, at time.Time) error {
	query := `
		UPDATE vouchers
		SET cheque_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1 AND cheque_no IS NOT NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, voucherID, string(status), at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update cheque status for voucher "+voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	query := `DELETE FROM vouchers WHERE voucher_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, voucherID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete voucher "+voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanVoucher(row pgx.Row) (*models.Voucher, error) {
	var model models.Voucher
	err := row.Scan(
		&model.VoucherID,
		&model.VoucherNo,
		&model.SequenceNo,
		&model.Type,
		&model.Date,
		&model.Amount,
		&model.Narration,
		&model.Confirmed,
		&model.ProjectID,
		&model.BillNo,
		&model.ChequeNo,
		&model.ChequeDate,
		&model.ChequeStatus,
		&model.CategoryAccountID,
		&model.TreasuryAccountID,
		&model.DebitTreasuryID,
		&model.CreditTreasuryID,
		&model.JournalDebitAccountID,
		&model.JournalDebitAmount,
		&model.JournalCreditAccountID,
		&model.JournalCreditAmount,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func collectVouchers(rows pgx.Rows) ([]domain.Voucher, error) {
	vouchers := make([]domain.Voucher, 0)
	for rows.Next() {
		model, err := scanVoucher(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher row", err)
		}
		vouchers = append(vouchers, mapping.ToDomainVoucher(*model))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher rows", err)
	}
	return vouchers, nil
}
