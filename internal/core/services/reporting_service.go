package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
	"github.com/bizbooks/bizbooks_backend/internal/utils/classify"
	"github.com/shopspring/decimal"
)

// balanceTolerance is the reconciliation tolerance shared by the trial
// balance check and the balance sheet plug.
var balanceTolerance = decimal.New(1, -2) // 0.01

// currentYearProfitLabel names the equity line that folds the income
// statement result into the balance sheet.
const currentYearProfitLabel = "Current Year Profit/Loss"

var voucherTypeLabels = map[domain.VoucherType]string{
	domain.VoucherCredit:  "Credit Voucher",
	domain.VoucherDebit:   "Debit Voucher",
	domain.VoucherJournal: "Journal Voucher",
	domain.VoucherContra:  "Contra Voucher",
}

// reportingService implements the ReportingService interface. All report
// generators are read-only and share one classifier instance, so bucket
// assignments can never diverge between reports.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	voucherRepo portsrepo.VoucherRepository
	projectRepo portsrepo.ProjectRepository
	classifier  *classify.Classifier
	fyStart     time.Month
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithFinancialYearStart sets the month used as the start of the default
// current-year-to-date report window.
func WithFinancialYearStart(month time.Month) ReportingServiceOption {
	return func(s *reportingService) {
		s.fyStart = month
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	accountRepo portsrepo.AccountRepository,
	voucherRepo portsrepo.VoucherRepository,
	projectRepo portsrepo.ProjectRepository,
	classifier *classify.Classifier,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
		projectRepo: projectRepo,
		classifier:  classifier,
		fyStart:     time.January,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// dateOnly truncates to a calendar date; the time component never affects
// bucketing.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveWindow fills missing bounds with the documented default window:
// start of the current financial year through today.
func (s *reportingService) resolveWindow(from, to *time.Time) (time.Time, time.Time, error) {
	today := dateOnly(time.Now())

	resolvedTo := today
	if to != nil {
		resolvedTo = dateOnly(*to)
	}

	var resolvedFrom time.Time
	if from != nil {
		resolvedFrom = dateOnly(*from)
	} else {
		year := resolvedTo.Year()
		if resolvedTo.Month() < s.fyStart {
			year--
		}
		resolvedFrom = time.Date(year, s.fyStart, 1, 0, 0, 0, 0, time.UTC)
	}

	if resolvedFrom.After(resolvedTo) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("fromDate must not be after toDate")
	}
	return resolvedFrom, resolvedTo, nil
}

// registry bundles the lookup maps used to resolve voucher references while
// rendering report lines.
type registry struct {
	treasury map[string]domain.TreasuryAccount
	category map[string]domain.CategoryAccount
	projects map[string]domain.Project
}

func (s *reportingService) loadRegistry(ctx context.Context) (*registry, error) {
	treasuryAccounts, err := s.accountRepo.ListTreasuryAccounts(ctx, false)
	if err != nil {
		return nil, err
	}
	categoryAccounts, err := s.accountRepo.ListCategoryAccounts(ctx, false)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListProjects(ctx, false)
	if err != nil {
		return nil, err
	}

	reg := &registry{
		treasury: make(map[string]domain.TreasuryAccount, len(treasuryAccounts)),
		category: make(map[string]domain.CategoryAccount, len(categoryAccounts)),
		projects: make(map[string]domain.Project, len(projects)),
	}
	for _, a := range treasuryAccounts {
		reg.treasury[a.AccountID] = a
	}
	for _, a := range categoryAccounts {
		reg.category[a.AccountID] = a
	}
	for _, p := range projects {
		reg.projects[p.ProjectID] = p
	}
	return reg, nil
}

// treasuryName resolves a treasury account title, reporting registry gaps
// instead of silently ignoring them.
func (s *reportingService) treasuryName(ctx context.Context, reg *registry, accountID string, voucherID string) string {
	if acc, ok := reg.treasury[accountID]; ok {
		return acc.Title
	}
	s.LogWarn(ctx, "Voucher references unknown treasury account",
		slog.String("voucher_id", voucherID), slog.String("account_id", accountID))
	return "(unknown account)"
}

func (s *reportingService) categoryName(ctx context.Context, reg *registry, accountID string, voucherID string) string {
	if acc, ok := reg.category[accountID]; ok {
		return acc.Name
	}
	s.LogWarn(ctx, "Voucher references unknown category account",
		slog.String("voucher_id", voucherID), slog.String("account_id", accountID))
	return "(unknown account)"
}

// particulars synthesizes the descriptive column of a ledger line from the
// voucher's project, counter-account(s), bill number, and narration, falling
// back to the voucher type name when all are absent.
func (s *reportingService) particulars(ctx context.Context, v domain.Voucher, ref accounting.AccountRef, reg *registry) string {
	parts := make([]string, 0, 4)

	if v.ProjectID != nil {
		if project, ok := reg.projects[*v.ProjectID]; ok {
			parts = append(parts, project.Name)
		} else {
			s.LogWarn(ctx, "Voucher references unknown project",
				slog.String("voucher_id", v.VoucherID), slog.String("project_id", *v.ProjectID))
		}
	}

	switch v.Type {
	case domain.VoucherCredit, domain.VoucherDebit:
		if ref.Kind == domain.KindCategory {
			if v.TreasuryAccountID != nil {
				parts = append(parts, s.treasuryName(ctx, reg, *v.TreasuryAccountID, v.VoucherID))
			}
		} else if v.CategoryAccountID != nil {
			parts = append(parts, s.categoryName(ctx, reg, *v.CategoryAccountID, v.VoucherID))
		}
	case domain.VoucherContra:
		// The counter account is the other treasury leg.
		if v.DebitTreasuryID != nil && *v.DebitTreasuryID != ref.AccountID {
			parts = append(parts, s.treasuryName(ctx, reg, *v.DebitTreasuryID, v.VoucherID))
		} else if v.CreditTreasuryID != nil && *v.CreditTreasuryID != ref.AccountID {
			parts = append(parts, s.treasuryName(ctx, reg, *v.CreditTreasuryID, v.VoucherID))
		}
	case domain.VoucherJournal:
		if v.JournalDebitAccountID != nil && *v.JournalDebitAccountID != ref.AccountID {
			parts = append(parts, s.categoryName(ctx, reg, *v.JournalDebitAccountID, v.VoucherID))
		}
		if v.JournalCreditAccountID != nil && *v.JournalCreditAccountID != ref.AccountID {
			parts = append(parts, s.categoryName(ctx, reg, *v.JournalCreditAccountID, v.VoucherID))
		}
	}

	if v.BillNo != nil && *v.BillNo != "" {
		parts = append(parts, "Bill #"+*v.BillNo)
	}
	if strings.TrimSpace(v.Narration) != "" {
		parts = append(parts, v.Narration)
	}

	if len(parts) == 0 {
		return voucherTypeLabels[v.Type]
	}
	return strings.Join(parts, " - ")
}

// openingBalance sums confirmed movement strictly before the window start.
func (s *reportingService) openingBalance(ctx context.Context, ref accounting.AccountRef, initial decimal.Decimal, from time.Time, projectID *string) (decimal.Decimal, error) {
	dayBefore := from.AddDate(0, 0, -1)
	filter := portsrepo.VoucherFilter{
		AccountID:     &ref.AccountID,
		AccountKind:   &ref.Kind,
		ProjectID:     projectID,
		ToDate:        &dayBefore,
		ConfirmedOnly: true,
	}
	vouchers, err := s.voucherRepo.ListVouchers(ctx, filter)
	if err != nil {
		return decimal.Zero, err
	}
	return initial.Add(accounting.SumSigned(vouchers, ref)), nil
}

func toLedgerEntries(ctx context.Context, s *reportingService, lines []accounting.BalanceLine, ref accounting.AccountRef, reg *registry) ([]domain.LedgerEntry, decimal.Decimal, decimal.Decimal) {
	entries := make([]domain.LedgerEntry, len(lines))
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		entries[i] = domain.LedgerEntry{
			Date:           line.Voucher.Date,
			VoucherID:      line.Voucher.VoucherID,
			VoucherNo:      line.Voucher.VoucherNo,
			Type:           line.Voucher.Type,
			Particulars:    s.particulars(ctx, line.Voucher, ref, reg),
			Debit:          line.Debit,
			Credit:         line.Credit,
			RunningBalance: line.RunningBalance,
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return entries, totalDebit, totalCredit
}

// Ledger renders the statement of a single category account over a window.
func (s *reportingService) Ledger(ctx context.Context, categoryAccountID string, from, to *time.Time) (*domain.LedgerReport, error) {
	if categoryAccountID == "" {
		return nil, apperrors.NewValidationError("categoryAccountID is required")
	}

	account, err := s.accountRepo.FindCategoryAccountByID(ctx, categoryAccountID)
	if err != nil {
		return nil, err
	}

	fromDate, toDate, err := s.resolveWindow(from, to)
	if err != nil {
		return nil, err
	}

	reg, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	ref := accounting.CategoryRef(categoryAccountID)
	opening, err := s.openingBalance(ctx, ref, decimal.Zero, fromDate, nil)
	if err != nil {
		return nil, err
	}

	windowVouchers, err := s.voucherRepo.ListVouchers(ctx, portsrepo.VoucherFilter{
		AccountID:     &categoryAccountID,
		AccountKind:   &ref.Kind,
		FromDate:      &fromDate,
		ToDate:        &toDate,
		ConfirmedOnly: true,
	})
	if err != nil {
		return nil, err
	}

	lines, closing := accounting.RunningBalances(opening, windowVouchers, ref)
	entries, totalDebit, totalCredit := toLedgerEntries(ctx, s, lines, ref, reg)

	report := &domain.LedgerReport{
		AccountID:      account.AccountID,
		AccountName:    account.Name,
		FromDate:       fromDate,
		ToDate:         toDate,
		OpeningBalance: opening,
		Entries:        entries,
		ClosingBalance: closing,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
	}

	s.LogInfo(ctx, "Ledger report generated",
		slog.String("account_id", categoryAccountID),
		slog.Int("entry_count", len(entries)))
	return report, nil
}

// TrialBalance lists the net movement of every account inside the window.
func (s *reportingService) TrialBalance(ctx context.Context, projectID *string, from, to time.Time) (*domain.TrialBalanceReport, error) {
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.NewValidationError("fromDate and toDate are required")
	}
	fromDate, toDate := dateOnly(from), dateOnly(to)
	if fromDate.After(toDate) {
		return nil, apperrors.NewValidationError("fromDate must not be after toDate")
	}
	if projectID != nil {
		if _, err := s.projectRepo.FindProjectByID(ctx, *projectID); err != nil {
			return nil, err
		}
	}

	reg, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	vouchers, err := s.voucherRepo.ListVouchers(ctx, portsrepo.VoucherFilter{
		ProjectID:     projectID,
		FromDate:      &fromDate,
		ToDate:        &toDate,
		ConfirmedOnly: true,
	})
	if err != nil {
		return nil, err
	}

	movements := make(map[accounting.AccountRef]decimal.Decimal)
	for _, v := range vouchers {
		for _, effect := range accounting.VoucherEffects(v) {
			movements[effect.Ref] = movements[effect.Ref].Add(effect.Amount)
		}
	}

	rows := make([]domain.TrialBalanceRow, 0, len(movements))
	for ref, net := range movements {
		if net.IsZero() {
			continue
		}
		debit, credit := accounting.SplitColumns(ref.Kind, net)
		row := domain.TrialBalanceRow{AccountID: ref.AccountID, Kind: ref.Kind, Debit: debit, Credit: credit}
		switch ref.Kind {
		case domain.KindTreasury:
			acc, ok := reg.treasury[ref.AccountID]
			if !ok {
				s.LogWarn(ctx, "Skipping movement on unknown treasury account", slog.String("account_id", ref.AccountID))
				continue
			}
			row.Code, row.Name = acc.Code, acc.Title
		case domain.KindCategory:
			acc, ok := reg.category[ref.AccountID]
			if !ok {
				s.LogWarn(ctx, "Skipping movement on unknown category account", slog.String("account_id", ref.AccountID))
				continue
			}
			row.Code, row.Name = acc.Code, acc.Name
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Kind != rows[j].Kind {
			return rows[i].Kind == domain.KindTreasury
		}
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].AccountID < rows[j].AccountID
	})

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	difference := totalDebit.Sub(totalCredit)
	isBalanced := difference.Abs().LessThan(balanceTolerance)

	if !isBalanced {
		s.LogWarn(ctx, "Trial balance totals do not reconcile",
			slog.String("difference", difference.String()))
	}

	report := &domain.TrialBalanceReport{
		FromDate:    fromDate,
		ToDate:      toDate,
		ProjectID:   projectID,
		Rows:        rows,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  difference,
		IsBalanced:  isBalanced,
	}

	s.LogInfo(ctx, "Trial balance report generated", slog.Int("row_count", len(rows)))
	return report, nil
}

// BalanceSheet classifies every nonzero account balance as of a date and
// reconciles the statement.
func (s *reportingService) BalanceSheet(ctx context.Context, asOn time.Time) (*domain.BalanceSheetReport, error) {
	if asOn.IsZero() {
		return nil, apperrors.NewValidationError("asOnDate is required")
	}
	asOnDate := dateOnly(asOn)

	reg, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	vouchers, err := s.voucherRepo.ListVouchers(ctx, portsrepo.VoucherFilter{
		ToDate:        &asOnDate,
		ConfirmedOnly: true,
	})
	if err != nil {
		return nil, err
	}

	movements := make(map[accounting.AccountRef]decimal.Decimal)
	for _, v := range vouchers {
		for _, effect := range accounting.VoucherEffects(v) {
			movements[effect.Ref] = movements[effect.Ref].Add(effect.Amount)
		}
	}

	report := &domain.BalanceSheetReport{AsOnDate: asOnDate}
	currentYearProfit := decimal.Zero

	for ref := range movements {
		switch ref.Kind {
		case domain.KindTreasury:
			if _, ok := reg.treasury[ref.AccountID]; !ok {
				s.LogWarn(ctx, "Skipping movement on unknown treasury account", slog.String("account_id", ref.AccountID))
			}
		case domain.KindCategory:
			if _, ok := reg.category[ref.AccountID]; !ok {
				s.LogWarn(ctx, "Skipping movement on unknown category account", slog.String("account_id", ref.AccountID))
			}
		}
	}

	// Treasury balances are cash and bank money: always current assets.
	for _, acc := range reg.treasury {
		balance := acc.InitialBalance.Add(movements[accounting.TreasuryRef(acc.AccountID)])
		if balance.IsZero() {
			continue
		}
		report.CurrentAssets = append(report.CurrentAssets, domain.BalanceSheetLine{
			AccountID: acc.AccountID, Name: acc.Title, Amount: balance,
		})
	}

	for _, acc := range reg.category {
		balance := movements[accounting.CategoryRef(acc.AccountID)]
		if balance.IsZero() {
			continue
		}
		section := s.classifier.SectionFor(acc, balance)
		line := domain.BalanceSheetLine{AccountID: acc.AccountID, Name: acc.Name}
		switch section {
		case classify.SectionCurrentAsset:
			line.Amount = balance.Neg()
			report.CurrentAssets = append(report.CurrentAssets, line)
		case classify.SectionFixedAsset:
			line.Amount = balance.Neg()
			report.FixedAssets = append(report.FixedAssets, line)
		case classify.SectionCurrentLiability:
			line.Amount = balance
			report.CurrentLiabilities = append(report.CurrentLiabilities, line)
		case classify.SectionLongTermLiability:
			line.Amount = balance
			report.LongTermLiabilities = append(report.LongTermLiabilities, line)
		case classify.SectionEquity:
			line.Amount = balance
			report.Equity = append(report.Equity, line)
		case classify.SectionProfitLoss:
			currentYearProfit = currentYearProfit.Add(balance)
		}
	}

	sortBalanceSheetLines(report.CurrentAssets)
	sortBalanceSheetLines(report.FixedAssets)
	sortBalanceSheetLines(report.CurrentLiabilities)
	sortBalanceSheetLines(report.LongTermLiabilities)
	sortBalanceSheetLines(report.Equity)

	if !currentYearProfit.IsZero() {
		report.Equity = append(report.Equity, domain.BalanceSheetLine{
			Name:   currentYearProfitLabel,
			Amount: currentYearProfit,
		})
	}
	report.CurrentYearProfit = currentYearProfit

	report.TotalAssets = sumLines(report.CurrentAssets).Add(sumLines(report.FixedAssets))
	report.TotalLiabilities = sumLines(report.CurrentLiabilities).Add(sumLines(report.LongTermLiabilities))
	report.TotalEquity = sumLines(report.Equity)

	s.reconcile(ctx, report)

	s.LogInfo(ctx, "Balance sheet report generated",
		slog.String("as_on", asOnDate.Format("2006-01-02")),
		slog.String("pre_plug_difference", report.PrePlugDifference.String()))
	return report, nil
}

// reconcile injects a balancing equity figure when the statement is out of
// tolerance. The pre-plug discrepancy stays on the payload so callers can
// tell balanced-by-construction from balanced-by-data.
func (s *reportingService) reconcile(ctx context.Context, report *domain.BalanceSheetReport) {
	difference := report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity))
	report.PrePlugDifference = difference

	if difference.Abs().GreaterThan(balanceTolerance) {
		name := "Balancing Figure (Retained Earnings)"
		if difference.IsNegative() {
			name = "Balancing Figure (Accumulated Loss)"
		}
		report.Equity = append(report.Equity, domain.BalanceSheetLine{
			Name:   name,
			Amount: difference,
			IsPlug: true,
		})
		report.TotalEquity = report.TotalEquity.Add(difference)
		s.LogWarn(ctx, "Balance sheet required a balancing figure",
			slog.String("difference", difference.String()))
	}

	report.IsBalanced = report.TotalAssets.Sub(report.TotalLiabilities.Add(report.TotalEquity)).Abs().LessThanOrEqual(balanceTolerance)
}

func sortBalanceSheetLines(lines []domain.BalanceSheetLine) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].AccountID < lines[j].AccountID
	})
}

func sumLines(lines []domain.BalanceSheetLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Amount)
	}
	return sum
}

// ProfitAndLoss groups income and expense movement over a window into named
// sub-categories.
func (s *reportingService) ProfitAndLoss(ctx context.Context, projectID *string, from, to time.Time) (*domain.ProfitLossReport, error) {
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.NewValidationError("fromDate and toDate are required")
	}
	fromDate, toDate := dateOnly(from), dateOnly(to)
	if fromDate.After(toDate) {
		return nil, apperrors.NewValidationError("fromDate must not be after toDate")
	}
	if projectID != nil {
		if _, err := s.projectRepo.FindProjectByID(ctx, *projectID); err != nil {
			return nil, err
		}
	}

	reg, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	vouchers, err := s.voucherRepo.ListVouchers(ctx, portsrepo.VoucherFilter{
		ProjectID:     projectID,
		FromDate:      &fromDate,
		ToDate:        &toDate,
		ConfirmedOnly: true,
	})
	if err != nil {
		return nil, err
	}

	movements := make(map[accounting.AccountRef]decimal.Decimal)
	for _, v := range vouchers {
		for _, effect := range accounting.VoucherEffects(v) {
			if effect.Ref.Kind == domain.KindCategory {
				movements[effect.Ref] = movements[effect.Ref].Add(effect.Amount)
			}
		}
	}

	incomeLines := make(map[string][]domain.ProfitLossLine)
	expenseLines := make(map[string][]domain.ProfitLossLine)
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for ref, net := range movements {
		if net.IsZero() {
			continue
		}
		acc, ok := reg.category[ref.AccountID]
		if !ok {
			s.LogWarn(ctx, "Skipping movement on unknown category account", slog.String("account_id", ref.AccountID))
			continue
		}

		isIncome := net.IsPositive()
		if acc.Classification != nil {
			isIncome = *acc.Classification == domain.ClassificationIncome
		}

		if isIncome {
			label := s.classifier.IncomeGroup(acc.Name)
			incomeLines[label] = append(incomeLines[label], domain.ProfitLossLine{
				AccountID: acc.AccountID, Name: acc.Name, Amount: net,
			})
			totalIncome = totalIncome.Add(net)
		} else {
			amount := net.Neg() // Expenses are reported as positive costs.
			label := s.classifier.ExpenseGroup(acc.Name)
			expenseLines[label] = append(expenseLines[label], domain.ProfitLossLine{
				AccountID: acc.AccountID, Name: acc.Name, Amount: amount,
			})
			totalExpenses = totalExpenses.Add(amount)
		}
	}

	netProfit := totalIncome.Sub(totalExpenses)
	profitMargin := decimal.Zero
	if !totalIncome.IsZero() {
		profitMargin = netProfit.Div(totalIncome).Mul(decimal.NewFromInt(100))
	}

	report := &domain.ProfitLossReport{
		FromDate:      fromDate,
		ToDate:        toDate,
		ProjectID:     projectID,
		Income:        buildGroups(incomeLines, s.classifier.IncomeGroupRules, classify.OtherIncomeLabel),
		Expenses:      buildGroups(expenseLines, s.classifier.ExpenseGroupRules, classify.OperatingExpenseLabel),
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		ProfitMargin:  profitMargin,
	}

	s.LogInfo(ctx, "Profit and loss report generated",
		slog.Int("income_groups", len(report.Income)),
		slog.Int("expense_groups", len(report.Expenses)))
	return report, nil
}

// buildGroups orders sub-categories by rule order with the fallback group
// last, lines sorted by name for deterministic output.
func buildGroups(byLabel map[string][]domain.ProfitLossLine, rules classify.RuleSet, fallbackLabel string) []domain.ProfitLossGroup {
	labels := make([]string, 0, len(byLabel))
	seen := make(map[string]bool)
	for _, rule := range rules {
		if rule.Label != "" && !seen[rule.Label] && len(byLabel[rule.Label]) > 0 {
			labels = append(labels, rule.Label)
			seen[rule.Label] = true
		}
	}
	if len(byLabel[fallbackLabel]) > 0 && !seen[fallbackLabel] {
		labels = append(labels, fallbackLabel)
	}

	groups := make([]domain.ProfitLossGroup, 0, len(labels))
	for _, label := range labels {
		lines := byLabel[label]
		sort.Slice(lines, func(i, j int) bool {
			if lines[i].Name != lines[j].Name {
				return lines[i].Name < lines[j].Name
			}
			return lines[i].AccountID < lines[j].AccountID
		})
		total := decimal.Zero
		for _, line := range lines {
			total = total.Add(line.Amount)
		}
		groups = append(groups, domain.ProfitLossGroup{Label: label, Lines: lines, Total: total})
	}
	return groups
}

// treasuryBooks renders the book of every treasury account whose title the
// matcher accepts.
func (s *reportingService) treasuryBooks(ctx context.Context, reg *registry, projectID *string, fromDate, toDate time.Time, match func(string) bool) ([]domain.TreasuryBook, []domain.Voucher, error) {
	accounts := make([]domain.TreasuryAccount, 0, len(reg.treasury))
	for _, acc := range reg.treasury {
		if match(acc.Title) {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Title != accounts[j].Title {
			return accounts[i].Title < accounts[j].Title
		}
		return accounts[i].AccountID < accounts[j].AccountID
	})

	books := make([]domain.TreasuryBook, 0, len(accounts))
	allWindowVouchers := make([]domain.Voucher, 0)

	for _, acc := range accounts {
		ref := accounting.TreasuryRef(acc.AccountID)
		opening, err := s.openingBalance(ctx, ref, acc.InitialBalance, fromDate, projectID)
		if err != nil {
			return nil, nil, err
		}

		windowVouchers, err := s.voucherRepo.ListVouchers(ctx, portsrepo.VoucherFilter{
			AccountID:     &acc.AccountID,
			AccountKind:   &ref.Kind,
			ProjectID:     projectID,
			FromDate:      &fromDate,
			ToDate:        &toDate,
			ConfirmedOnly: true,
		})
		if err != nil {
			return nil, nil, err
		}

		lines, closing := accounting.RunningBalances(opening, windowVouchers, ref)
		if !acc.IsActive && opening.IsZero() && len(lines) == 0 {
			continue
		}

		entries, totalDebit, totalCredit := toLedgerEntries(ctx, s, lines, ref, reg)
		books = append(books, domain.TreasuryBook{
			AccountID:      acc.AccountID,
			Title:          acc.Title,
			Kind:           acc.Kind,
			OpeningBalance: opening,
			Entries:        entries,
			ClosingBalance: closing,
			TotalDebit:     totalDebit,
			TotalCredit:    totalCredit,
		})
		allWindowVouchers = append(allWindowVouchers, windowVouchers...)
	}

	return books, allWindowVouchers, nil
}

// CashBook renders the books of every cash-titled treasury account.
func (s *reportingService) CashBook(ctx context.Context, projectID *string, from, to *time.Time) (*domain.CashBookReport, error) {
	fromDate, toDate, err := s.resolveWindow(from, to)
	if err != nil {
		return nil, err
	}
	if projectID != nil {
		if _, err := s.projectRepo.FindProjectByID(ctx, *projectID); err != nil {
			return nil, err
		}
	}

	reg, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	books, _, err := s.treasuryBooks(ctx, reg, projectID, fromDate, toDate, s.classifier.IsCash)
	if err != nil {
		return nil, err
	}

	report := &domain.CashBookReport{
		FromDate:  fromDate,
		ToDate:    toDate,
		ProjectID: projectID,
		Books:     books,
	}
	for _, book := range books {
		report.TotalOpening = report.TotalOpening.Add(book.OpeningBalance)
		report.TotalClosing = report.TotalClosing.Add(book.ClosingBalance)
	}

	s.LogInfo(ctx, "Cash book report generated", slog.Int("book_count", len(books)))
	return report, nil
}

// BankBook renders the books of every bank-titled treasury account and the
// outstanding cheques drawn on them.
func (s *reportingService) BankBook(ctx context.Context, projectID *string, from, to *time.Time) (*domain.BankBookReport, error) {
	fromDate, toDate, err := s.resolveWindow(from, to)
	if err != nil {
		return nil, err
	}
	if projectID != nil {
		if _, err := s.projectRepo.FindProjectByID(ctx, *projectID); err != nil {
			return nil, err
		}
	}

	reg, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	books, windowVouchers, err := s.treasuryBooks(ctx, reg, projectID, fromDate, toDate, s.classifier.IsBank)
	if err != nil {
		return nil, err
	}

	report := &domain.BankBookReport{
		FromDate:           fromDate,
		ToDate:             toDate,
		ProjectID:          projectID,
		Books:              books,
		OutstandingCheques: s.outstandingCheques(ctx, windowVouchers, reg),
	}
	for _, book := range books {
		report.TotalOpening = report.TotalOpening.Add(book.OpeningBalance)
		report.TotalClosing = report.TotalClosing.Add(book.ClosingBalance)
	}

	s.LogInfo(ctx, "Bank book report generated",
		slog.Int("book_count", len(books)),
		slog.Int("outstanding_cheques", len(report.OutstandingCheques)))
	return report, nil
}

// outstandingCheques collects cheques dated in the future or still pending.
func (s *reportingService) outstandingCheques(ctx context.Context, vouchers []domain.Voucher, reg *registry) []domain.OutstandingCheque {
	today := dateOnly(time.Now())
	seen := make(map[string]bool)
	cheques := make([]domain.OutstandingCheque, 0)

	for _, v := range vouchers {
		if v.ChequeNo == nil || seen[v.VoucherID] {
			continue
		}
		pending := v.ChequeStatus != nil && *v.ChequeStatus == domain.ChequePending
		future := v.ChequeDate != nil && v.ChequeDate.After(today)
		if !pending && !future {
			continue
		}
		seen[v.VoucherID] = true

		cheque := domain.OutstandingCheque{
			VoucherID: v.VoucherID,
			VoucherNo: v.VoucherNo,
			ChequeNo:  *v.ChequeNo,
			Amount:    v.Amount,
			Status:    domain.ChequePending,
		}
		if v.ChequeStatus != nil {
			cheque.Status = *v.ChequeStatus
		}
		if v.ChequeDate != nil {
			cheque.ChequeDate = *v.ChequeDate
		}
		if v.TreasuryAccountID != nil {
			ref := accounting.TreasuryRef(*v.TreasuryAccountID)
			cheque.Particulars = s.particulars(ctx, v, ref, reg)
		}
		cheques = append(cheques, cheque)
	}

	sort.Slice(cheques, func(i, j int) bool {
		if !cheques[i].ChequeDate.Equal(cheques[j].ChequeDate) {
			return cheques[i].ChequeDate.Before(cheques[j].ChequeDate)
		}
		return cheques[i].VoucherNo < cheques[j].VoucherNo
	})
	return cheques
}
