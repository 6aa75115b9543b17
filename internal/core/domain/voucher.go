package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType identifies the four kinds of recorded financial events.
type VoucherType string

const (
	VoucherCredit  VoucherType = "CREDIT"  // Money received into a treasury account against a category head
	VoucherDebit   VoucherType = "DEBIT"   // Money paid out of a treasury account against a category head
	VoucherJournal VoucherType = "JOURNAL" // Category-to-category adjustment, two legs
	VoucherContra  VoucherType = "CONTRA"  // Treasury-to-treasury transfer
)

// ChequeStatus tracks the lifecycle of a cheque attached to a voucher.
type ChequeStatus string

const (
	ChequePending ChequeStatus = "PENDING"
	ChequeCleared ChequeStatus = "CLEARED"
	ChequeBounced ChequeStatus = "BOUNCED"
)

// Voucher is a single financial event. Which reference fields are set depends
// on Type:
//   - Credit/Debit: CategoryAccountID + TreasuryAccountID, Amount.
//   - Contra: DebitTreasuryID (source) + CreditTreasuryID (destination), Amount.
//   - Journal: JournalDebitAccountID/Amount + JournalCreditAccountID/Amount.
//
// Once Confirmed, a voucher is immutable; corrections are posted as new
// reversing vouchers.
type Voucher struct {
	VoucherID  string          `json:"voucherID"`  // Primary Key (UUID)
	VoucherNo  string          `json:"voucherNo"`  // Human-readable, e.g. CV-2026-0042
	SequenceNo int64           `json:"sequenceNo"` // Global creation sequence; report ordering depends on it
	Type       VoucherType     `json:"type"`
	Date       time.Time       `json:"date"`   // Calendar date; time component does not affect bucketing
	Amount     decimal.Decimal `json:"amount"` // Non-negative; zero contributes nothing to balances
	Narration  string          `json:"narration"`
	Confirmed  bool            `json:"confirmed"` // Only confirmed vouchers participate in reports

	ProjectID *string `json:"projectID,omitempty"`
	BillNo    *string `json:"billNo,omitempty"`

	ChequeNo     *string       `json:"chequeNo,omitempty"`
	ChequeDate   *time.Time    `json:"chequeDate,omitempty"`
	ChequeStatus *ChequeStatus `json:"chequeStatus,omitempty"`

	// Credit/Debit legs
	CategoryAccountID *string `json:"categoryAccountID,omitempty"`
	TreasuryAccountID *string `json:"treasuryAccountID,omitempty"`

	// Contra legs
	DebitTreasuryID  *string `json:"debitTreasuryID,omitempty"`  // Money leaves this account
	CreditTreasuryID *string `json:"creditTreasuryID,omitempty"` // Money arrives into this account

	// Journal legs. The computation path tolerates unequal historical legs,
	// creation-time validation rejects them.
	JournalDebitAccountID  *string         `json:"journalDebitAccountID,omitempty"`
	JournalDebitAmount     decimal.Decimal `json:"journalDebitAmount"`
	JournalCreditAccountID *string         `json:"journalCreditAccountID,omitempty"`
	JournalCreditAmount    decimal.Decimal `json:"journalCreditAmount"`

	AuditFields
}
