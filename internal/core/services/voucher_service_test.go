package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VoucherServiceTestSuite struct {
	suite.Suite
	voucherRepo *MockVoucherRepository
	accountRepo *MockAccountRepository
	projectRepo *MockProjectRepository
	service     portssvc.VoucherService
	ctx         context.Context
}

func (s *VoucherServiceTestSuite) SetupTest() {
	s.voucherRepo = new(MockVoucherRepository)
	s.accountRepo = new(MockAccountRepository)
	s.projectRepo = new(MockProjectRepository)
	s.service = services.NewVoucherService(s.voucherRepo, s.accountRepo, s.projectRepo)
	s.ctx = context.Background()
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}

func (s *VoucherServiceTestSuite) mockAccountLookups() {
	s.accountRepo.On("FindCategoryAccountByID", mock.Anything, mock.Anything).
		Return(&domain.CategoryAccount{AccountID: "cat-1", Name: "Sales"}, nil)
	s.accountRepo.On("FindTreasuryAccountByID", mock.Anything, mock.Anything).
		Return(&domain.TreasuryAccount{AccountID: "tre-1", Title: "Cash in Hand"}, nil)
}

func creditRequest() dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		Type:              string(domain.VoucherCredit),
		Date:              "2026-03-01",
		Amount:            decimal.NewFromInt(500),
		Narration:         "Counter sales",
		CategoryAccountID: ptr("cat-1"),
		TreasuryAccountID: ptr("tre-1"),
	}
}

func (s *VoucherServiceTestSuite) TestCreateCreditVoucher() {
	s.mockAccountLookups()
	s.voucherRepo.On("SaveVoucher", mock.Anything, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.Type == domain.VoucherCredit &&
			!v.Confirmed &&
			v.Amount.Equal(decimal.NewFromInt(500)) &&
			v.CategoryAccountID != nil && *v.CategoryAccountID == "cat-1" &&
			v.TreasuryAccountID != nil && *v.TreasuryAccountID == "tre-1" &&
			v.CreatedBy == "user-1"
	})).Return(&domain.Voucher{
		VoucherID: "v-1",
		VoucherNo: "CV-2026-0001",
		Type:      domain.VoucherCredit,
	}, nil)

	saved, err := s.service.CreateVoucher(s.ctx, creditRequest(), "user-1")

	s.Require().NoError(err)
	s.Equal("CV-2026-0001", saved.VoucherNo)
	s.voucherRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestCreateVoucherRejectsBadDate() {
	req := creditRequest()
	req.Date = "01-03-2026"

	_, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.voucherRepo.AssertNotCalled(s.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestCreateVoucherRejectsNegativeAmount() {
	req := creditRequest()
	req.Amount = decimal.NewFromInt(-5)

	_, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *VoucherServiceTestSuite) TestCreateCreditVoucherRequiresBothLegs() {
	req := creditRequest()
	req.TreasuryAccountID = nil

	_, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *VoucherServiceTestSuite) TestCreateVoucherUnknownAccount() {
	s.accountRepo.On("FindCategoryAccountByID", mock.Anything, "cat-1").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.CreateVoucher(s.ctx, creditRequest(), "user-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *VoucherServiceTestSuite) TestCreateContraVoucherSameAccountRejected() {
	req := dto.CreateVoucherRequest{
		Type:             string(domain.VoucherContra),
		Date:             "2026-03-01",
		Amount:           decimal.NewFromInt(1000),
		DebitTreasuryID:  ptr("tre-1"),
		CreditTreasuryID: ptr("tre-1"),
	}

	_, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *VoucherServiceTestSuite) TestCreateContraVoucher() {
	s.accountRepo.On("FindTreasuryAccountByID", mock.Anything, "bank-1").
		Return(&domain.TreasuryAccount{AccountID: "bank-1"}, nil)
	s.accountRepo.On("FindTreasuryAccountByID", mock.Anything, "cash-1").
		Return(&domain.TreasuryAccount{AccountID: "cash-1"}, nil)
	s.voucherRepo.On("SaveVoucher", mock.Anything, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.Type == domain.VoucherContra &&
			v.DebitTreasuryID != nil && *v.DebitTreasuryID == "bank-1" &&
			v.CreditTreasuryID != nil && *v.CreditTreasuryID == "cash-1"
	})).Return(&domain.Voucher{VoucherID: "v-2", VoucherNo: "CN-2026-0001"}, nil)

	req := dto.CreateVoucherRequest{
		Type:             string(domain.VoucherContra),
		Date:             "2026-03-01",
		Amount:           decimal.NewFromInt(1000),
		DebitTreasuryID:  ptr("bank-1"),
		CreditTreasuryID: ptr("cash-1"),
	}

	saved, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.Require().NoError(err)
	s.Equal("CN-2026-0001", saved.VoucherNo)
}

func (s *VoucherServiceTestSuite) TestCreateJournalVoucherUnequalLegs() {
	req := dto.CreateVoucherRequest{
		Type:                   string(domain.VoucherJournal),
		Date:                   "2026-04-10",
		JournalDebitAccountID:  ptr("office-1"),
		JournalDebitAmount:     decimal.NewFromInt(300),
		JournalCreditAccountID: ptr("payable-1"),
		JournalCreditAmount:    decimal.NewFromInt(299),
	}

	_, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *VoucherServiceTestSuite) TestCreateJournalVoucher() {
	s.accountRepo.On("FindCategoryAccountByID", mock.Anything, mock.Anything).
		Return(&domain.CategoryAccount{AccountID: "office-1"}, nil)
	s.voucherRepo.On("SaveVoucher", mock.Anything, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.Type == domain.VoucherJournal &&
			v.JournalDebitAmount.Equal(decimal.NewFromInt(300)) &&
			v.JournalCreditAmount.Equal(decimal.NewFromInt(300))
	})).Return(&domain.Voucher{VoucherID: "v-3", VoucherNo: "JV-2026-0001"}, nil)

	req := dto.CreateVoucherRequest{
		Type:                   string(domain.VoucherJournal),
		Date:                   "2026-04-10",
		JournalDebitAccountID:  ptr("office-1"),
		JournalDebitAmount:     decimal.NewFromInt(300),
		JournalCreditAccountID: ptr("payable-1"),
		JournalCreditAmount:    decimal.NewFromInt(300),
	}

	saved, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.Require().NoError(err)
	s.Equal("JV-2026-0001", saved.VoucherNo)
}

func (s *VoucherServiceTestSuite) TestCreateVoucherWithChequeStartsPending() {
	s.mockAccountLookups()
	s.voucherRepo.On("SaveVoucher", mock.Anything, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.ChequeStatus != nil && *v.ChequeStatus == domain.ChequePending &&
			v.ChequeDate != nil && v.ChequeDate.Equal(time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.Voucher{VoucherID: "v-4", VoucherNo: "DV-2026-0001"}, nil)

	req := dto.CreateVoucherRequest{
		Type:              string(domain.VoucherDebit),
		Date:              "2026-03-01",
		Amount:            decimal.NewFromInt(400),
		CategoryAccountID: ptr("cat-1"),
		TreasuryAccountID: ptr("tre-1"),
		ChequeNo:          ptr("000123"),
		ChequeDate:        ptr("2026-03-05"),
	}

	_, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.Require().NoError(err)
	s.voucherRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestCreateVoucherUnknownProject() {
	s.mockAccountLookups()
	s.projectRepo.On("FindProjectByID", mock.Anything, "p-404").Return(nil, apperrors.ErrNotFound)

	req := creditRequest()
	req.ProjectID = ptr("p-404")

	_, err := s.service.CreateVoucher(s.ctx, req, "user-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.voucherRepo.AssertNotCalled(s.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestConfirmVoucher() {
	s.voucherRepo.On("FindVoucherByID", mock.Anything, "v-1").
		Return(&domain.Voucher{VoucherID: "v-1", Confirmed: false}, nil)
	s.voucherRepo.On("ConfirmVoucher", mock.Anything, "v-1", "user-1", mock.Anything).Return(nil)

	err := s.service.ConfirmVoucher(s.ctx, "v-1", "user-1")

	s.Require().NoError(err)
	s.voucherRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestConfirmVoucherTwiceIsNoOp() {
	s.voucherRepo.On("FindVoucherByID", mock.Anything, "v-1").
		Return(&domain.Voucher{VoucherID: "v-1", Confirmed: true}, nil)

	err := s.service.ConfirmVoucher(s.ctx, "v-1", "user-1")

	s.Require().NoError(err)
	s.voucherRepo.AssertNotCalled(s.T(), "ConfirmVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestUpdateChequeStatusCleared() {
	voucher := &domain.Voucher{VoucherID: "v-1", Confirmed: true, ChequeNo: ptr("000123")}
	s.voucherRepo.On("FindVoucherByID", mock.Anything, "v-1").Return(voucher, nil)
	s.voucherRepo.On("UpdateChequeStatus", mock.Anything, "v-1", domain.ChequeCleared, "user-1", mock.Anything).Return(nil)

	err := s.service.UpdateChequeStatus(s.ctx, "v-1", domain.ChequeCleared, "user-1")

	s.Require().NoError(err)
	s.voucherRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestUpdateChequeStatusWithoutCheque() {
	voucher := &domain.Voucher{VoucherID: "v-1", Confirmed: true}
	s.voucherRepo.On("FindVoucherByID", mock.Anything, "v-1").Return(voucher, nil)

	err := s.service.UpdateChequeStatus(s.ctx, "v-1", domain.ChequeBounced, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.voucherRepo.AssertNotCalled(s.T(), "UpdateChequeStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestUpdateChequeStatusUnknownStatus() {
	err := s.service.UpdateChequeStatus(s.ctx, "v-1", domain.ChequeStatus("TORN"), "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.voucherRepo.AssertNotCalled(s.T(), "FindVoucherByID", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestUpdateChequeStatusVoucherNotFound() {
	s.voucherRepo.On("FindVoucherByID", mock.Anything, "v-404").Return(nil, apperrors.ErrNotFound)

	err := s.service.UpdateChequeStatus(s.ctx, "v-404", domain.ChequeCleared, "user-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *VoucherServiceTestSuite) TestDeleteConfirmedVoucherRequiresForce() {
	s.voucherRepo.On("FindVoucherByID", mock.Anything, "v-1").
		Return(&domain.Voucher{VoucherID: "v-1", Confirmed: true}, nil)

	err := s.service.DeleteVoucher(s.ctx, "v-1", false)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.voucherRepo.AssertNotCalled(s.T(), "DeleteVoucher", mock.Anything, mock.Anything)
}

func (s *VoucherServiceTestSuite) TestDeleteConfirmedVoucherWithForce() {
	s.voucherRepo.On("FindVoucherByID", mock.Anything, "v-1").
		Return(&domain.Voucher{VoucherID: "v-1", Confirmed: true}, nil)
	s.voucherRepo.On("DeleteVoucher", mock.Anything, "v-1").Return(nil)

	err := s.service.DeleteVoucher(s.ctx, "v-1", true)

	s.Require().NoError(err)
	s.voucherRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestDeleteDraftVoucher() {
	s.voucherRepo.On("FindVoucherByID", mock.Anything, "v-1").
		Return(&domain.Voucher{VoucherID: "v-1", Confirmed: false}, nil)
	s.voucherRepo.On("DeleteVoucher", mock.Anything, "v-1").Return(nil)

	err := s.service.DeleteVoucher(s.ctx, "v-1", false)

	s.Require().NoError(err)
}

func (s *VoucherServiceTestSuite) TestListVouchersDefaultsPageSize() {
	s.voucherRepo.On("ListVouchersPaginated", mock.Anything, mock.Anything, 50, (*string)(nil)).
		Return([]domain.Voucher{}, nil, nil)

	_, _, err := s.service.ListVouchers(s.ctx, dto.ListVouchersRequest{})

	s.Require().NoError(err)
	s.voucherRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestListVouchersFiltersByType() {
	s.voucherRepo.On("ListVouchersPaginated", mock.Anything, mock.MatchedBy(func(f portsrepo.VoucherFilter) bool {
		return len(f.Types) == 2 &&
			f.Types[0] == domain.VoucherCredit &&
			f.Types[1] == domain.VoucherContra
	}), 50, (*string)(nil)).Return([]domain.Voucher{}, nil, nil)

	_, _, err := s.service.ListVouchers(s.ctx, dto.ListVouchersRequest{
		Types: []string{"CREDIT", "CONTRA"},
	})

	s.Require().NoError(err)
	s.voucherRepo.AssertExpectations(s.T())
}

func (s *VoucherServiceTestSuite) TestListVouchersRejectsBadFromDate() {
	_, _, err := s.service.ListVouchers(s.ctx, dto.ListVouchersRequest{FromDate: ptr("March 1")})

	s.ErrorIs(err, apperrors.ErrValidation)
}
