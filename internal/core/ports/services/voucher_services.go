package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// VoucherService manages voucher creation and lifecycle. Confirmed vouchers
// are immutable; there is deliberately no update operation.
type VoucherService interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, req dto.ListVouchersRequest) ([]domain.Voucher, *string, error)
	ConfirmVoucher(ctx context.Context, voucherID string, userID string) error
	// UpdateChequeStatus records a cheque clearing or bouncing. Settlement
	// state is bank-side metadata, so it stays mutable after confirmation
	// while the financial fields do not.
	UpdateChequeStatus(ctx context.Context, voucherID string, status domain.ChequeStatus, userID string) error
	// DeleteVoucher removes a voucher. Confirmed vouchers are only removed
	// when force is set (administrative hard-delete).
	DeleteVoucher(ctx context.Context, voucherID string, force bool) error
}
