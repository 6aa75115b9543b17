package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType mirrors the domain voucher types at the storage layer.
type VoucherType string

const (
	VoucherCredit  VoucherType = "CREDIT"
	VoucherDebit   VoucherType = "DEBIT"
	VoucherJournal VoucherType = "JOURNAL"
	VoucherContra  VoucherType = "CONTRA"
)

// Voucher is the vouchers row. Reference columns are nullable; which ones
// are populated depends on voucher_type.
type Voucher struct {
	VoucherID  string          `db:"voucher_id"`
	VoucherNo  string          `db:"voucher_no"`
	SequenceNo int64           `db:"sequence_no"`
	Type       VoucherType     `db:"voucher_type"`
	Date       time.Time       `db:"voucher_date"`
	Amount     decimal.Decimal `db:"amount"`
	Narration  string          `db:"narration"`
	Confirmed  bool            `db:"confirmed"`

	ProjectID *string `db:"project_id"`
	BillNo    *string `db:"bill_no"`

	ChequeNo     *string    `db:"cheque_no"`
	ChequeDate   *time.Time `db:"cheque_date"`
	ChequeStatus *string    `db:"cheque_status"`

	CategoryAccountID *string `db:"category_account_id"`
	TreasuryAccountID *string `db:"treasury_account_id"`

	DebitTreasuryID  *string `db:"debit_treasury_id"`
	CreditTreasuryID *string `db:"credit_treasury_id"`

	JournalDebitAccountID  *string         `db:"journal_debit_account_id"`
	JournalDebitAmount     decimal.Decimal `db:"journal_debit_amount"`
	JournalCreditAccountID *string         `db:"journal_credit_account_id"`
	JournalCreditAmount    decimal.Decimal `db:"journal_credit_amount"`

	AuditFields
}
