package services

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// ReportingService is the transport-agnostic contract of the report engine.
// Every operation is a pure read over a snapshot of the voucher store and
// account registry; calls may run fully in parallel.
type ReportingService interface {
	// Ledger renders a single category account over a window. Both bounds
	// are optional and default to the current financial year to date.
	Ledger(ctx context.Context, categoryAccountID string, from, to *time.Time) (*domain.LedgerReport, error)

	// TrialBalance lists every account with nonzero net movement in the
	// window. The window is required.
	TrialBalance(ctx context.Context, projectID *string, from, to time.Time) (*domain.TrialBalanceReport, error)

	// BalanceSheet classifies every account balance as of a date and
	// reconciles the statement, injecting a balancing figure if needed.
	BalanceSheet(ctx context.Context, asOn time.Time) (*domain.BalanceSheetReport, error)

	// ProfitAndLoss groups income and expense movement over a required
	// window, optionally restricted to one project.
	ProfitAndLoss(ctx context.Context, projectID *string, from, to time.Time) (*domain.ProfitLossReport, error)

	// CashBook renders the books of cash-titled treasury accounts.
	CashBook(ctx context.Context, projectID *string, from, to *time.Time) (*domain.CashBookReport, error)

	// BankBook renders the books of bank-titled treasury accounts plus the
	// outstanding cheque list.
	BankBook(ctx context.Context, projectID *string, from, to *time.Time) (*domain.BankBookReport, error)
}
