package classify_test

import (
	"testing"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/utils/classify"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func classificationPtr(c domain.Classification) *domain.Classification { return &c }

func TestSectionForNameRules(t *testing.T) {
	c := classify.Default()

	tests := []struct {
		name    string
		balance decimal.Decimal
		want    classify.Section
	}{
		{"Office Building", decimal.NewFromInt(-5000), classify.SectionFixedAsset},
		{"Delivery Vehicle Fund", decimal.NewFromInt(-1200), classify.SectionFixedAsset},
		{"Accounts Receivable", decimal.NewFromInt(-300), classify.SectionCurrentAsset},
		{"Advance to Suppliers", decimal.NewFromInt(-150), classify.SectionCurrentAsset},
		{"Accounts Payable", decimal.NewFromInt(400), classify.SectionCurrentLiability},
		{"Advance from Customers", decimal.NewFromInt(250), classify.SectionCurrentLiability},
		{"Long Term Loan", decimal.NewFromInt(10000), classify.SectionLongTermLiability},
		{"Owner Capital", decimal.NewFromInt(8000), classify.SectionEquity},
		{"General Reserve", decimal.NewFromInt(500), classify.SectionEquity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			acc := domain.CategoryAccount{AccountID: "a1", Name: tc.name}
			assert.Equal(t, tc.want, c.SectionFor(acc, tc.balance))
		})
	}
}

func TestSectionForLoanNeedsLongTermKeyword(t *testing.T) {
	c := classify.Default()

	// A plain loan account without long/term keywords falls through the loan
	// rule; with a credit-natured balance it defaults to equity.
	acc := domain.CategoryAccount{AccountID: "a1", Name: "Staff Loan"}
	assert.Equal(t, classify.SectionEquity, c.SectionFor(acc, decimal.NewFromInt(100)))
}

func TestSectionForClassifiedAccountsGoToProfitLoss(t *testing.T) {
	c := classify.Default()

	income := domain.CategoryAccount{
		AccountID:      "a1",
		Name:           "Consulting Fees",
		Classification: classificationPtr(domain.ClassificationIncome),
	}
	expense := domain.CategoryAccount{
		AccountID:      "a2",
		Name:           "Tea and Snacks",
		Classification: classificationPtr(domain.ClassificationExpense),
	}

	assert.Equal(t, classify.SectionProfitLoss, c.SectionFor(income, decimal.NewFromInt(900)))
	assert.Equal(t, classify.SectionProfitLoss, c.SectionFor(expense, decimal.NewFromInt(-200)))
}

func TestSectionForNameRuleBeatsClassification(t *testing.T) {
	c := classify.Default()

	// "Receivable" in the name wins even when the account carries an income tag.
	acc := domain.CategoryAccount{
		AccountID:      "a1",
		Name:           "Interest Receivable",
		Classification: classificationPtr(domain.ClassificationIncome),
	}
	assert.Equal(t, classify.SectionCurrentAsset, c.SectionFor(acc, decimal.NewFromInt(-100)))
}

func TestSectionForSignFallback(t *testing.T) {
	c := classify.Default()
	acc := domain.CategoryAccount{AccountID: "a1", Name: "Misc Holding"}

	assert.Equal(t, classify.SectionFixedAsset, c.SectionFor(acc, decimal.NewFromInt(-10)))
	assert.Equal(t, classify.SectionEquity, c.SectionFor(acc, decimal.NewFromInt(10)))
}

func TestMatchIsCaseInsensitiveSubstring(t *testing.T) {
	c := classify.Default()

	assert.Equal(t, "Sales Income", c.IncomeGroup("WHOLESALE REVENUE"))
	assert.Equal(t, "Staff Costs", c.ExpenseGroup("Driver Salaries"))
	assert.Equal(t, "Other Income", c.IncomeGroup("Scrap Disposal"))
	assert.Equal(t, "Operating Expenses", c.ExpenseGroup("Bank Charges"))
}

func TestFirstMatchingRuleWins(t *testing.T) {
	c := classify.Default()

	// "Sales Commission" matches the sales rule before the commission rule.
	assert.Equal(t, "Sales Income", c.IncomeGroup("Sales Commission"))
}

func TestCashAndBankTitleMatching(t *testing.T) {
	c := classify.Default()

	assert.True(t, c.IsCash("Petty Cash"))
	assert.True(t, c.IsCash("CASH IN HAND"))
	assert.False(t, c.IsCash("HBL Current Account"))

	assert.True(t, c.IsBank("HBL Bank Main"))
	assert.False(t, c.IsBank("Petty Cash"))
}
