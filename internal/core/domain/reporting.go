package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one line of a ledger, cash book, or bank book. Debit and
// Credit hold the unsigned magnitude of the movement split by the account's
// sign convention; RunningBalance is the cumulative total after the entry.
type LedgerEntry struct {
	Date           time.Time       `json:"date"`
	VoucherID      string          `json:"voucherID"`
	VoucherNo      string          `json:"voucherNo"`
	Type           VoucherType     `json:"type"`
	Particulars    string          `json:"particulars"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerReport is the full ledger of a single category account over a window.
type LedgerReport struct {
	AccountID      string          `json:"accountID"`
	AccountName    string          `json:"accountName"`
	FromDate       time.Time       `json:"fromDate"`
	ToDate         time.Time       `json:"toDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Entries        []LedgerEntry   `json:"entries"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
}

// TrialBalanceRow places one account's net movement in the column matching
// its natural balance.
type TrialBalanceRow struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Kind      AccountKind     `json:"kind"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// TrialBalanceReport always carries Difference and IsBalanced so callers can
// flag inconsistent data without losing the report itself.
type TrialBalanceReport struct {
	FromDate    time.Time         `json:"fromDate"`
	ToDate      time.Time         `json:"toDate"`
	ProjectID   *string           `json:"projectID,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Difference  decimal.Decimal   `json:"difference"`
	IsBalanced  bool              `json:"isBalanced"`
}

// BalanceSheetLine is one account (or synthetic figure) within a section.
type BalanceSheetLine struct {
	AccountID string          `json:"accountID,omitempty"` // Empty for synthetic lines
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	IsPlug    bool            `json:"isPlug,omitempty"`
}

// BalanceSheetReport is the classified statement of position as of a date.
// PrePlugDifference is the discrepancy before the balancing figure was
// injected; zero means the statement balanced on its own.
type BalanceSheetReport struct {
	AsOnDate             time.Time          `json:"asOnDate"`
	CurrentAssets        []BalanceSheetLine `json:"currentAssets"`
	FixedAssets          []BalanceSheetLine `json:"fixedAssets"`
	CurrentLiabilities   []BalanceSheetLine `json:"currentLiabilities"`
	LongTermLiabilities  []BalanceSheetLine `json:"longTermLiabilities"`
	Equity               []BalanceSheetLine `json:"equity"`
	TotalAssets          decimal.Decimal    `json:"totalAssets"`
	TotalLiabilities     decimal.Decimal    `json:"totalLiabilities"`
	TotalEquity          decimal.Decimal    `json:"totalEquity"`
	CurrentYearProfit    decimal.Decimal    `json:"currentYearProfit"`
	PrePlugDifference    decimal.Decimal    `json:"prePlugDifference"`
	IsBalanced           bool               `json:"isBalanced"`
}

// ProfitLossLine is one account's contribution to a profit & loss group.
type ProfitLossLine struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProfitLossGroup is a named sub-category with its subtotal.
type ProfitLossGroup struct {
	Label string           `json:"label"`
	Lines []ProfitLossLine `json:"lines"`
	Total decimal.Decimal  `json:"total"`
}

// ProfitLossReport is the income statement for a window, optionally filtered
// by project.
type ProfitLossReport struct {
	FromDate      time.Time         `json:"fromDate"`
	ToDate        time.Time         `json:"toDate"`
	ProjectID     *string           `json:"projectID,omitempty"`
	Income        []ProfitLossGroup `json:"income"`
	Expenses      []ProfitLossGroup `json:"expenses"`
	TotalIncome   decimal.Decimal   `json:"totalIncome"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	NetProfit     decimal.Decimal   `json:"netProfit"`
	ProfitMargin  decimal.Decimal   `json:"profitMargin"` // Percentage; zero when income is zero
}

// TreasuryBook is the ledger of one treasury account inside a cash or bank
// book.
type TreasuryBook struct {
	AccountID      string          `json:"accountID"`
	Title          string          `json:"title"`
	Kind           TreasuryKind    `json:"kind"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Entries        []LedgerEntry   `json:"entries"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
}

// CashBookReport groups the books of every cash-matching treasury account.
type CashBookReport struct {
	FromDate     time.Time       `json:"fromDate"`
	ToDate       time.Time       `json:"toDate"`
	ProjectID    *string         `json:"projectID,omitempty"`
	Books        []TreasuryBook  `json:"books"`
	TotalOpening decimal.Decimal `json:"totalOpening"`
	TotalClosing decimal.Decimal `json:"totalClosing"`
}

// OutstandingCheque is a cheque that has not yet cleared: either dated in the
// future or still marked pending.
type OutstandingCheque struct {
	VoucherID   string          `json:"voucherID"`
	VoucherNo   string          `json:"voucherNo"`
	ChequeNo    string          `json:"chequeNo"`
	ChequeDate  time.Time       `json:"chequeDate"`
	Status      ChequeStatus    `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Particulars string          `json:"particulars"`
}

// BankBookReport is the bank variant of the cash book, with the outstanding
// cheque list surfaced alongside.
type BankBookReport struct {
	FromDate           time.Time           `json:"fromDate"`
	ToDate             time.Time           `json:"toDate"`
	ProjectID          *string             `json:"projectID,omitempty"`
	Books              []TreasuryBook      `json:"books"`
	TotalOpening       decimal.Decimal     `json:"totalOpening"`
	TotalClosing       decimal.Decimal     `json:"totalClosing"`
	OutstandingCheques []OutstandingCheque `json:"outstandingCheques"`
}
