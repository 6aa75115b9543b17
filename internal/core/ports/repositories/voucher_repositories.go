package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// VoucherFilter narrows a voucher listing. All fields are optional except
// ConfirmedOnly; a nil bound leaves that side of the window open.
type VoucherFilter struct {
	AccountID     *string
	AccountKind   *domain.AccountKind
	ProjectID     *string
	Types         []domain.VoucherType
	FromDate      *time.Time // Inclusive
	ToDate        *time.Time // Inclusive
	ConfirmedOnly bool
}

// VoucherRepository is the interface over the voucher store.
//
// Ordering contract: ListVouchers returns rows sorted by (date ascending,
// creation sequence ascending). Running balance computation depends on this
// exact order.
type VoucherRepository interface {
	// SaveVoucher inserts the voucher and assigns VoucherNo and SequenceNo.
	// The per-(type, year) number is allocated atomically with the insert so
	// concurrent creations can never produce duplicates.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) (*domain.Voucher, error)

	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	ListVouchers(ctx context.Context, filter VoucherFilter) ([]domain.Voucher, error)

	// ListVouchersPaginated serves the API listing; it follows the same
	// ordering contract and uses an opaque continuation token.
	ListVouchersPaginated(ctx context.Context, filter VoucherFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error)

	ConfirmVoucher(ctx context.Context, voucherID string, userID string, at time.Time) error

	UpdateChequeStatus(ctx context.Context, voucherID string, status domain.ChequeStatus, userID string, at time.Time) error

	DeleteVoucher(ctx context.Context, voucherID string) error
}
