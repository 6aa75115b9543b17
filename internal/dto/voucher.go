package dto

import (
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the expected JSON body for creating a
// voucher. The reference fields required depend on Type; the voucher
// service enforces the per-type invariants beyond what binding tags can
// express.
type CreateVoucherRequest struct {
	Type      string          `json:"type" binding:"required,oneof=CREDIT DEBIT JOURNAL CONTRA"`
	Date      string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount    decimal.Decimal `json:"amount"`
	Narration string          `json:"narration" binding:"omitempty,max=500"`

	ProjectID *string `json:"projectID" binding:"omitempty,uuid"`
	BillNo    *string `json:"billNo" binding:"omitempty,max=50"`

	ChequeNo   *string `json:"chequeNo" binding:"omitempty,max=50"`
	ChequeDate *string `json:"chequeDate" binding:"omitempty,datetime=2006-01-02"`

	CategoryAccountID *string `json:"categoryAccountID" binding:"omitempty,uuid"`
	TreasuryAccountID *string `json:"treasuryAccountID" binding:"omitempty,uuid"`

	DebitTreasuryID  *string `json:"debitTreasuryID" binding:"omitempty,uuid"`
	CreditTreasuryID *string `json:"creditTreasuryID" binding:"omitempty,uuid"`

	JournalDebitAccountID  *string         `json:"journalDebitAccountID" binding:"omitempty,uuid"`
	JournalDebitAmount     decimal.Decimal `json:"journalDebitAmount"`
	JournalCreditAccountID *string         `json:"journalCreditAccountID" binding:"omitempty,uuid"`
	JournalCreditAmount    decimal.Decimal `json:"journalCreditAmount"`
}

// UpdateChequeStatusRequest defines the expected JSON body for recording a
// cheque clearing or bouncing.
type UpdateChequeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CLEARED BOUNCED"`
}

// ListVouchersRequest carries the query filters for the voucher listing.
type ListVouchersRequest struct {
	AccountID     *string  `form:"accountID" binding:"omitempty,uuid"`
	AccountKind   *string  `form:"accountKind" binding:"omitempty,oneof=TREASURY CATEGORY"`
	Types         []string `form:"type" binding:"omitempty,dive,oneof=CREDIT DEBIT JOURNAL CONTRA"`
	ProjectID     *string  `form:"projectID" binding:"omitempty,uuid"`
	FromDate      *string  `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate        *string  `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	ConfirmedOnly bool     `form:"confirmedOnly"`
	Limit         int      `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken     *string  `form:"nextToken"`
}

// VoucherResponse is the API representation of a voucher.
type VoucherResponse struct {
	VoucherID string          `json:"voucherID"`
	VoucherNo string          `json:"voucherNo"`
	Type      string          `json:"type"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Narration string          `json:"narration,omitempty"`
	Confirmed bool            `json:"confirmed"`

	ProjectID *string `json:"projectID,omitempty"`
	BillNo    *string `json:"billNo,omitempty"`

	ChequeNo     *string `json:"chequeNo,omitempty"`
	ChequeDate   *string `json:"chequeDate,omitempty"`
	ChequeStatus *string `json:"chequeStatus,omitempty"`

	CategoryAccountID *string `json:"categoryAccountID,omitempty"`
	TreasuryAccountID *string `json:"treasuryAccountID,omitempty"`
	DebitTreasuryID   *string `json:"debitTreasuryID,omitempty"`
	CreditTreasuryID  *string `json:"creditTreasuryID,omitempty"`

	JournalDebitAccountID  *string          `json:"journalDebitAccountID,omitempty"`
	JournalDebitAmount     *decimal.Decimal `json:"journalDebitAmount,omitempty"`
	JournalCreditAccountID *string          `json:"journalCreditAccountID,omitempty"`
	JournalCreditAmount    *decimal.Decimal `json:"journalCreditAmount,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ListVouchersResponse wraps a page of vouchers with the continuation token.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToVoucherResponse converts a domain voucher to its DTO.
func ToVoucherResponse(v domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:         v.VoucherID,
		VoucherNo:         v.VoucherNo,
		Type:              string(v.Type),
		Date:              v.Date.Format("2006-01-02"),
		Amount:            v.Amount,
		Narration:         v.Narration,
		Confirmed:         v.Confirmed,
		ProjectID:         v.ProjectID,
		BillNo:            v.BillNo,
		ChequeNo:          v.ChequeNo,
		CategoryAccountID: v.CategoryAccountID,
		TreasuryAccountID: v.TreasuryAccountID,
		DebitTreasuryID:   v.DebitTreasuryID,
		CreditTreasuryID:  v.CreditTreasuryID,
		CreatedAt:         v.CreatedAt,
	}
	if v.ChequeDate != nil {
		chequeDate := v.ChequeDate.Format("2006-01-02")
		resp.ChequeDate = &chequeDate
	}
	if v.ChequeStatus != nil {
		status := string(*v.ChequeStatus)
		resp.ChequeStatus = &status
	}
	if v.Type == domain.VoucherJournal {
		drAmount := v.JournalDebitAmount
		crAmount := v.JournalCreditAmount
		resp.JournalDebitAccountID = v.JournalDebitAccountID
		resp.JournalDebitAmount = &drAmount
		resp.JournalCreditAccountID = v.JournalCreditAccountID
		resp.JournalCreditAmount = &crAmount
	}
	return resp
}

// ToListVouchersResponse converts a page of domain vouchers to its DTO.
func ToListVouchersResponse(vouchers []domain.Voucher, nextToken *string) ListVouchersResponse {
	resp := ListVouchersResponse{
		Vouchers:  make([]VoucherResponse, len(vouchers)),
		NextToken: nextToken,
	}
	for i, v := range vouchers {
		resp.Vouchers[i] = ToVoucherResponse(v)
	}
	return resp
}
