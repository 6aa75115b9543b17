package dto

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// LedgerEntryResponse is one line of a ledger or book in the API payload.
type LedgerEntryResponse struct {
	Date           string          `json:"date"`
	VoucherNo      string          `json:"voucherNo"`
	Type           string          `json:"type"`
	Particulars    string          `json:"particulars"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerResponse is the ledger report payload.
type LedgerResponse struct {
	AccountID      string                `json:"accountID"`
	AccountName    string                `json:"accountName"`
	FromDate       string                `json:"fromDate"`
	ToDate         string                `json:"toDate"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	Entries        []LedgerEntryResponse `json:"entries"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
}

// TrialBalanceResponse is the trial balance payload. Difference and
// IsBalanced are always present for caller-side validation display.
type TrialBalanceResponse struct {
	FromDate  string  `json:"fromDate"`
	ToDate    string  `json:"toDate"`
	ProjectID *string `json:"projectID,omitempty"`
	Rows      []struct {
		AccountID string          `json:"accountID"`
		Code      string          `json:"code,omitempty"`
		Name      string          `json:"name"`
		Kind      string          `json:"kind"`
		Debit     decimal.Decimal `json:"debit"`
		Credit    decimal.Decimal `json:"credit"`
	} `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Difference decimal.Decimal `json:"difference"`
	IsBalanced bool            `json:"isBalanced"`
}

// BalanceSheetLineResponse is one classified line of the balance sheet.
type BalanceSheetLineResponse struct {
	AccountID string          `json:"accountID,omitempty"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	IsPlug    bool            `json:"isPlug,omitempty"`
}

// BalanceSheetResponse is the balance sheet payload. PrePlugDifference lets
// callers distinguish balanced-by-construction from balanced-by-data.
type BalanceSheetResponse struct {
	AsOnDate            string                     `json:"asOnDate"`
	CurrentAssets       []BalanceSheetLineResponse `json:"currentAssets"`
	FixedAssets         []BalanceSheetLineResponse `json:"fixedAssets"`
	CurrentLiabilities  []BalanceSheetLineResponse `json:"currentLiabilities"`
	LongTermLiabilities []BalanceSheetLineResponse `json:"longTermLiabilities"`
	Equity              []BalanceSheetLineResponse `json:"equity"`
	Summary             struct {
		TotalAssets       decimal.Decimal `json:"totalAssets"`
		TotalLiabilities  decimal.Decimal `json:"totalLiabilities"`
		TotalEquity       decimal.Decimal `json:"totalEquity"`
		CurrentYearProfit decimal.Decimal `json:"currentYearProfit"`
	} `json:"summary"`
	PrePlugDifference decimal.Decimal `json:"prePlugDifference"`
	IsBalanced        bool            `json:"isBalanced"`
}

// ProfitLossGroupResponse is a named sub-category of the income statement.
type ProfitLossGroupResponse struct {
	Label string `json:"label"`
	Lines []struct {
		AccountID string          `json:"accountID"`
		Name      string          `json:"name"`
		Amount    decimal.Decimal `json:"amount"`
	} `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// ProfitLossResponse is the profit & loss payload.
type ProfitLossResponse struct {
	FromDate  string                    `json:"fromDate"`
	ToDate    string                    `json:"toDate"`
	ProjectID *string                   `json:"projectID,omitempty"`
	Income    []ProfitLossGroupResponse `json:"income"`
	Expenses  []ProfitLossGroupResponse `json:"expenses"`
	Summary   struct {
		TotalIncome   decimal.Decimal `json:"totalIncome"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetProfit     decimal.Decimal `json:"netProfit"`
		ProfitMargin  decimal.Decimal `json:"profitMargin"`
	} `json:"summary"`
}

// TreasuryBookResponse is the ledger of one treasury account in a book.
type TreasuryBookResponse struct {
	AccountID      string                `json:"accountID"`
	Title          string                `json:"title"`
	Kind           string                `json:"kind"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	Entries        []LedgerEntryResponse `json:"entries"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
}

// CashBookResponse is the cash book payload.
type CashBookResponse struct {
	FromDate     string                 `json:"fromDate"`
	ToDate       string                 `json:"toDate"`
	ProjectID    *string                `json:"projectID,omitempty"`
	Books        []TreasuryBookResponse `json:"books"`
	TotalOpening decimal.Decimal        `json:"totalOpening"`
	TotalClosing decimal.Decimal        `json:"totalClosing"`
}

// OutstandingChequeResponse is one uncleared cheque on the bank book.
type OutstandingChequeResponse struct {
	VoucherNo   string          `json:"voucherNo"`
	ChequeNo    string          `json:"chequeNo"`
	ChequeDate  string          `json:"chequeDate"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Particulars string          `json:"particulars"`
}

// BankBookResponse is the bank book payload.
type BankBookResponse struct {
	FromDate           string                      `json:"fromDate"`
	ToDate             string                      `json:"toDate"`
	ProjectID          *string                     `json:"projectID,omitempty"`
	Books              []TreasuryBookResponse      `json:"books"`
	TotalOpening       decimal.Decimal             `json:"totalOpening"`
	TotalClosing       decimal.Decimal             `json:"totalClosing"`
	OutstandingCheques []OutstandingChequeResponse `json:"outstandingCheques"`
}

func toLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LedgerEntryResponse{
			Date:           e.Date.Format(dateLayout),
			VoucherNo:      e.VoucherNo,
			Type:           string(e.Type),
			Particulars:    e.Particulars,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: e.RunningBalance,
		}
	}
	return out
}

// ToLedgerResponse converts a domain ledger report to its DTO.
func ToLedgerResponse(r *domain.LedgerReport) LedgerResponse {
	return LedgerResponse{
		AccountID:      r.AccountID,
		AccountName:    r.AccountName,
		FromDate:       r.FromDate.Format(dateLayout),
		ToDate:         r.ToDate.Format(dateLayout),
		OpeningBalance: r.OpeningBalance,
		Entries:        toLedgerEntryResponses(r.Entries),
		ClosingBalance: r.ClosingBalance,
		TotalDebit:     r.TotalDebit,
		TotalCredit:    r.TotalCredit,
	}
}

// ToTrialBalanceResponse converts a domain trial balance report to its DTO.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		FromDate:   r.FromDate.Format(dateLayout),
		ToDate:     r.ToDate.Format(dateLayout),
		ProjectID:  r.ProjectID,
		Difference: r.Difference,
		IsBalanced: r.IsBalanced,
	}
	resp.Rows = make([]struct {
		AccountID string          `json:"accountID"`
		Code      string          `json:"code,omitempty"`
		Name      string          `json:"name"`
		Kind      string          `json:"kind"`
		Debit     decimal.Decimal `json:"debit"`
		Credit    decimal.Decimal `json:"credit"`
	}, len(r.Rows))
	for i, row := range r.Rows {
		resp.Rows[i].AccountID = row.AccountID
		resp.Rows[i].Code = row.Code
		resp.Rows[i].Name = row.Name
		resp.Rows[i].Kind = string(row.Kind)
		resp.Rows[i].Debit = row.Debit
		resp.Rows[i].Credit = row.Credit
	}
	resp.Totals.Debit = r.TotalDebit
	resp.Totals.Credit = r.TotalCredit
	return resp
}

func toBalanceSheetLineResponses(lines []domain.BalanceSheetLine) []BalanceSheetLineResponse {
	out := make([]BalanceSheetLineResponse, len(lines))
	for i, l := range lines {
		out[i] = BalanceSheetLineResponse{
			AccountID: l.AccountID,
			Name:      l.Name,
			Amount:    l.Amount,
			IsPlug:    l.IsPlug,
		}
	}
	return out
}

// ToBalanceSheetResponse converts a domain balance sheet report to its DTO.
func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		AsOnDate:            r.AsOnDate.Format(dateLayout),
		CurrentAssets:       toBalanceSheetLineResponses(r.CurrentAssets),
		FixedAssets:         toBalanceSheetLineResponses(r.FixedAssets),
		CurrentLiabilities:  toBalanceSheetLineResponses(r.CurrentLiabilities),
		LongTermLiabilities: toBalanceSheetLineResponses(r.LongTermLiabilities),
		Equity:              toBalanceSheetLineResponses(r.Equity),
		PrePlugDifference:   r.PrePlugDifference,
		IsBalanced:          r.IsBalanced,
	}
	resp.Summary.TotalAssets = r.TotalAssets
	resp.Summary.TotalLiabilities = r.TotalLiabilities
	resp.Summary.TotalEquity = r.TotalEquity
	resp.Summary.CurrentYearProfit = r.CurrentYearProfit
	return resp
}

func toProfitLossGroupResponses(groups []domain.ProfitLossGroup) []ProfitLossGroupResponse {
	out := make([]ProfitLossGroupResponse, len(groups))
	for i, g := range groups {
		resp := ProfitLossGroupResponse{Label: g.Label, Total: g.Total}
		resp.Lines = make([]struct {
			AccountID string          `json:"accountID"`
			Name      string          `json:"name"`
			Amount    decimal.Decimal `json:"amount"`
		}, len(g.Lines))
		for j, l := range g.Lines {
			resp.Lines[j].AccountID = l.AccountID
			resp.Lines[j].Name = l.Name
			resp.Lines[j].Amount = l.Amount
		}
		out[i] = resp
	}
	return out
}

// ToProfitLossResponse converts a domain profit & loss report to its DTO.
func ToProfitLossResponse(r *domain.ProfitLossReport) ProfitLossResponse {
	resp := ProfitLossResponse{
		FromDate:  r.FromDate.Format(dateLayout),
		ToDate:    r.ToDate.Format(dateLayout),
		ProjectID: r.ProjectID,
		Income:    toProfitLossGroupResponses(r.Income),
		Expenses:  toProfitLossGroupResponses(r.Expenses),
	}
	resp.Summary.TotalIncome = r.TotalIncome
	resp.Summary.TotalExpenses = r.TotalExpenses
	resp.Summary.NetProfit = r.NetProfit
	resp.Summary.ProfitMargin = r.ProfitMargin
	return resp
}

func toTreasuryBookResponses(books []domain.TreasuryBook) []TreasuryBookResponse {
	out := make([]TreasuryBookResponse, len(books))
	for i, b := range books {
		out[i] = TreasuryBookResponse{
			AccountID:      b.AccountID,
			Title:          b.Title,
			Kind:           string(b.Kind),
			OpeningBalance: b.OpeningBalance,
			Entries:        toLedgerEntryResponses(b.Entries),
			ClosingBalance: b.ClosingBalance,
			TotalDebit:     b.TotalDebit,
			TotalCredit:    b.TotalCredit,
		}
	}
	return out
}

// ToCashBookResponse converts a domain cash book report to its DTO.
func ToCashBookResponse(r *domain.CashBookReport) CashBookResponse {
	return CashBookResponse{
		FromDate:     r.FromDate.Format(dateLayout),
		ToDate:       r.ToDate.Format(dateLayout),
		ProjectID:    r.ProjectID,
		Books:        toTreasuryBookResponses(r.Books),
		TotalOpening: r.TotalOpening,
		TotalClosing: r.TotalClosing,
	}
}

// ToBankBookResponse converts a domain bank book report to its DTO.
func ToBankBookResponse(r *domain.BankBookReport) BankBookResponse {
	cheques := make([]OutstandingChequeResponse, len(r.OutstandingCheques))
	for i, c := range r.OutstandingCheques {
		cheques[i] = OutstandingChequeResponse{
			VoucherNo:   c.VoucherNo,
			ChequeNo:    c.ChequeNo,
			ChequeDate:  c.ChequeDate.Format(dateLayout),
			Status:      string(c.Status),
			Amount:      c.Amount,
			Particulars: c.Particulars,
		}
	}
	return BankBookResponse{
		FromDate:           r.FromDate.Format(dateLayout),
		ToDate:             r.ToDate.Format(dateLayout),
		ProjectID:          r.ProjectID,
		Books:              toTreasuryBookResponses(r.Books),
		TotalOpening:       r.TotalOpening,
		TotalClosing:       r.TotalClosing,
		OutstandingCheques: cheques,
	}
}
