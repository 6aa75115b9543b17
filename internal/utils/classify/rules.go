// Package classify holds the single shared rule table that buckets loosely
// typed account names into statement sections. Every report generator is
// handed the same Classifier instance, so a name can never land in different
// buckets across reports.
package classify

import (
	"strings"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Section is a balance sheet bucket.
type Section string

const (
	SectionCurrentAsset      Section = "CURRENT_ASSET"
	SectionFixedAsset        Section = "FIXED_ASSET"
	SectionCurrentLiability  Section = "CURRENT_LIABILITY"
	SectionLongTermLiability Section = "LONG_TERM_LIABILITY"
	SectionEquity            Section = "EQUITY"
	// SectionProfitLoss marks accounts that belong to the income statement
	// and are folded into equity as the current year result.
	SectionProfitLoss Section = "PROFIT_LOSS"
)

// Rule matches an account name when every AllOf keyword and at least one
// AnyOf keyword occurs in it (case-insensitive substring match). An empty
// AllOf or AnyOf list is treated as satisfied. Rules are evaluated in order;
// the first match wins.
type Rule struct {
	AllOf   []string
	AnyOf   []string
	Section Section // Set for balance sheet rules
	Label   string  // Set for profit & loss grouping rules
}

// Matches reports whether the rule applies to the given account name.
func (r Rule) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range r.AllOf {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	if len(r.AnyOf) == 0 {
		return true
	}
	for _, kw := range r.AnyOf {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// RuleSet is an ordered list of rules.
type RuleSet []Rule

// Match returns the first matching rule.
func (rs RuleSet) Match(name string) (Rule, bool) {
	for _, r := range rs {
		if r.Matches(name) {
			return r, true
		}
	}
	return Rule{}, false
}

// Classifier bundles the rule tables used across the report generators.
type Classifier struct {
	BalanceSheetRules RuleSet
	IncomeGroupRules  RuleSet
	ExpenseGroupRules RuleSet
	CashNameRules     RuleSet
	BankNameRules     RuleSet
}

// Fallback labels for accounts no grouping rule matches.
const (
	OtherIncomeLabel      = "Other Income"
	OperatingExpenseLabel = "Operating Expenses"
)

// Default returns the standard classifier. The keyword lists are data, not
// code: extending a bucket means appending a rule here, never touching a
// report generator.
func Default() *Classifier {
	return &Classifier{
		BalanceSheetRules: RuleSet{
			{AnyOf: []string{"land", "building", "machinery", "equipment", "vehicle", "furniture"}, Section: SectionFixedAsset},
			{AnyOf: []string{"receivable", "advance to"}, Section: SectionCurrentAsset},
			{AnyOf: []string{"payable", "advance from"}, Section: SectionCurrentLiability},
			{AllOf: []string{"loan"}, AnyOf: []string{"long", "term"}, Section: SectionLongTermLiability},
			{AnyOf: []string{"capital", "equity", "reserve"}, Section: SectionEquity},
		},
		IncomeGroupRules: RuleSet{
			{AnyOf: []string{"sale", "revenue"}, Label: "Sales Income"},
			{AnyOf: []string{"service", "consult"}, Label: "Service Income"},
			{AnyOf: []string{"interest", "dividend"}, Label: "Investment Income"},
			{AnyOf: []string{"commission"}, Label: "Commission Income"},
		},
		ExpenseGroupRules: RuleSet{
			{AnyOf: []string{"salar", "wage", "payroll", "staff"}, Label: "Staff Costs"},
			{AnyOf: []string{"rent", "utility", "utilities", "electricity", "internet"}, Label: "Office & Utilities"},
			{AnyOf: []string{"travel", "fuel", "transport", "conveyance"}, Label: "Travel & Transport"},
			{AnyOf: []string{"marketing", "advertis", "promotion"}, Label: "Marketing"},
			{AnyOf: []string{"depreciation"}, Label: "Depreciation"},
		},
		CashNameRules: RuleSet{
			{AnyOf: []string{"cash"}},
		},
		BankNameRules: RuleSet{
			{AnyOf: []string{"bank"}},
		},
	}
}

// SectionFor buckets a category account for the balance sheet. Name rules
// are tried first; accounts tagged Income or Expense then fall through to
// the income statement fold; anything left is placed by balance sign, where
// a debit-natured balance (negative in the credit-normal representation)
// defaults to fixed assets and a credit-natured balance to equity.
func (c *Classifier) SectionFor(acc domain.CategoryAccount, balance decimal.Decimal) Section {
	if rule, ok := c.BalanceSheetRules.Match(acc.Name); ok {
		return rule.Section
	}
	if acc.Classification != nil {
		return SectionProfitLoss
	}
	if balance.IsNegative() {
		return SectionFixedAsset
	}
	return SectionEquity
}

// IncomeGroup names the profit & loss sub-category for an income account.
func (c *Classifier) IncomeGroup(name string) string {
	if rule, ok := c.IncomeGroupRules.Match(name); ok {
		return rule.Label
	}
	return OtherIncomeLabel
}

// ExpenseGroup names the profit & loss sub-category for an expense account.
func (c *Classifier) ExpenseGroup(name string) string {
	if rule, ok := c.ExpenseGroupRules.Match(name); ok {
		return rule.Label
	}
	return OperatingExpenseLabel
}

// IsCash reports whether a treasury account title belongs in the cash book.
func (c *Classifier) IsCash(title string) bool {
	_, ok := c.CashNameRules.Match(title)
	return ok
}

// IsBank reports whether a treasury account title belongs in the bank book.
func (c *Classifier) IsBank(title string) bool {
	_, ok := c.BankNameRules.Match(title)
	return ok
}
