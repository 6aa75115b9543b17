package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/google/uuid"
)

const defaultVoucherPageSize = 50

// voucherService implements VoucherService: per-type validation at creation,
// confirm/delete lifecycle, and filtered listing.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepository
	accountRepo portsrepo.AccountRepository
	projectRepo portsrepo.ProjectRepository
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepository, accountRepo portsrepo.AccountRepository, projectRepo portsrepo.ProjectRepository) portssvc.VoucherService {
	return &voucherService{
		voucherRepo: voucherRepo,
		accountRepo: accountRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.VoucherService = (*voucherService)(nil)

func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	voucherDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid voucher date, expected YYYY-MM-DD")
	}

	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("voucher amount must not be negative")
	}

	now := time.Now()
	voucher := domain.Voucher{
		VoucherID: uuid.NewString(),
		Type:      domain.VoucherType(req.Type),
		Date:      voucherDate,
		Amount:    req.Amount,
		Narration: req.Narration,
		Confirmed: false,
		ProjectID: req.ProjectID,
		BillNo:    req.BillNo,
		ChequeNo:  req.ChequeNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if req.ChequeDate != nil {
		chequeDate, err := time.Parse("2006-01-02", *req.ChequeDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid cheque date, expected YYYY-MM-DD")
		}
		voucher.ChequeDate = &chequeDate
	}
	if req.ChequeNo != nil {
		status := domain.ChequePending
		voucher.ChequeStatus = &status
	}

	if err := s.applyTypedLegs(ctx, &voucher, req); err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindProjectByID(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	saved, err := s.voucherRepo.SaveVoucher(ctx, voucher)
	if err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("type", req.Type))
		return nil, err
	}

	s.LogInfo(ctx, "Voucher created",
		slog.String("voucher_id", saved.VoucherID),
		slog.String("voucher_no", saved.VoucherNo),
		slog.String("type", string(saved.Type)))
	return saved, nil
}

// applyTypedLegs validates and sets the account references a voucher of the
// given type must carry.
func (s *voucherService) applyTypedLegs(ctx context.Context, voucher *domain.Voucher, req dto.CreateVoucherRequest) error {
	switch voucher.Type {
	case domain.VoucherCredit, domain.VoucherDebit:
		if req.CategoryAccountID == nil || req.TreasuryAccountID == nil {
			return apperrors.NewValidationError("credit and debit vouchers require a category account and a treasury account")
		}
		if _, err := s.accountRepo.FindCategoryAccountByID(ctx, *req.CategoryAccountID); err != nil {
			return err
		}
		if _, err := s.accountRepo.FindTreasuryAccountByID(ctx, *req.TreasuryAccountID); err != nil {
			return err
		}
		voucher.CategoryAccountID = req.CategoryAccountID
		voucher.TreasuryAccountID = req.TreasuryAccountID

	case domain.VoucherContra:
		if req.DebitTreasuryID == nil || req.CreditTreasuryID == nil {
			return apperrors.NewValidationError("contra vouchers require a debit treasury and a credit treasury account")
		}
		if *req.DebitTreasuryID == *req.CreditTreasuryID {
			return apperrors.NewValidationError("contra voucher treasury accounts must differ")
		}
		if _, err := s.accountRepo.FindTreasuryAccountByID(ctx, *req.DebitTreasuryID); err != nil {
			return err
		}
		if _, err := s.accountRepo.FindTreasuryAccountByID(ctx, *req.CreditTreasuryID); err != nil {
			return err
		}
		voucher.DebitTreasuryID = req.DebitTreasuryID
		voucher.CreditTreasuryID = req.CreditTreasuryID

	case domain.VoucherJournal:
		if req.JournalDebitAccountID == nil || req.JournalCreditAccountID == nil {
			return apperrors.NewValidationError("journal vouchers require debit and credit category accounts")
		}
		if req.JournalDebitAmount.IsNegative() || req.JournalCreditAmount.IsNegative() {
			return apperrors.NewValidationError("journal leg amounts must not be negative")
		}
		if !req.JournalDebitAmount.Equal(req.JournalCreditAmount) {
			return apperrors.NewValidationError("journal debit and credit amounts must be equal")
		}
		if _, err := s.accountRepo.FindCategoryAccountByID(ctx, *req.JournalDebitAccountID); err != nil {
			return err
		}
		if _, err := s.accountRepo.FindCategoryAccountByID(ctx, *req.JournalCreditAccountID); err != nil {
			return err
		}
		voucher.JournalDebitAccountID = req.JournalDebitAccountID
		voucher.JournalDebitAmount = req.JournalDebitAmount
		voucher.JournalCreditAccountID = req.JournalCreditAccountID
		voucher.JournalCreditAmount = req.JournalCreditAmount

	default:
		return apperrors.NewValidationError("unknown voucher type")
	}

	return nil
}

func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

func (s *voucherService) ListVouchers(ctx context.Context, req dto.ListVouchersRequest) ([]domain.Voucher, *string, error) {
	filter := portsrepo.VoucherFilter{
		AccountID:     req.AccountID,
		ProjectID:     req.ProjectID,
		ConfirmedOnly: req.ConfirmedOnly,
	}
	if req.AccountKind != nil {
		kind := domain.AccountKind(*req.AccountKind)
		filter.AccountKind = &kind
	}
	for _, t := range req.Types {
		filter.Types = append(filter.Types, domain.VoucherType(t))
	}
	if req.FromDate != nil {
		from, err := time.Parse("2006-01-02", *req.FromDate)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid fromDate, expected YYYY-MM-DD")
		}
		filter.FromDate = &from
	}
	if req.ToDate != nil {
		to, err := time.Parse("2006-01-02", *req.ToDate)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid toDate, expected YYYY-MM-DD")
		}
		filter.ToDate = &to
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultVoucherPageSize
	}

	return s.voucherRepo.ListVouchersPaginated(ctx, filter, limit, req.NextToken)
}

func (s *voucherService) ConfirmVoucher(ctx context.Context, voucherID string, userID string) error {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return err
	}
	if voucher.Confirmed {
		// Confirming twice is a no-op.
		return nil
	}
	if err := s.voucherRepo.ConfirmVoucher(ctx, voucherID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to confirm voucher", slog.String("voucher_id", voucherID))
		return err
	}
	s.LogInfo(ctx, "Voucher confirmed", slog.String("voucher_id", voucherID), slog.String("voucher_no", voucher.VoucherNo))
	return nil
}

// UpdateChequeStatus moves a cheque through its settlement lifecycle. The
// voucher itself stays immutable once confirmed; cheque status is bank-side
// metadata and may change at any time.
func (s *voucherService) UpdateChequeStatus(ctx context.Context, voucherID string, status domain.ChequeStatus, userID string) error {
	switch status {
	case domain.ChequePending, domain.ChequeCleared, domain.ChequeBounced:
	default:
		return apperrors.NewValidationError("unknown cheque status " + string(status))
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return err
	}
	if voucher.ChequeNo == nil {
		return apperrors.NewValidationError("voucher has no cheque attached")
	}

	if err := s.voucherRepo.UpdateChequeStatus(ctx, voucherID, status, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update cheque status", slog.String("voucher_id", voucherID))
		return err
	}
	s.LogInfo(ctx, "Cheque status updated",
		slog.String("voucher_id", voucherID),
		slog.String("cheque_no", *voucher.ChequeNo),
		slog.String("status", string(status)))
	return nil
}

func (s *voucherService) DeleteVoucher(ctx context.Context, voucherID string, force bool) error {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return err
	}
	if voucher.Confirmed && !force {
		return apperrors.NewValidationError("confirmed vouchers are immutable; post a reversing voucher or use force")
	}
	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		s.LogError(ctx, err, "Failed to delete voucher", slog.String("voucher_id", voucherID))
		return err
	}
	s.LogWarn(ctx, "Voucher deleted",
		slog.String("voucher_id", voucherID),
		slog.String("voucher_no", voucher.VoucherNo),
		slog.Bool("was_confirmed", voucher.Confirmed))
	return nil
}
