package accounting_test

import (
	"testing"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func creditVoucher(treasuryID, categoryID string, amount int64, day time.Time) domain.Voucher {
	return domain.Voucher{
		VoucherID:         "cv-" + day.Format("20060102"),
		Type:              domain.VoucherCredit,
		Date:              day,
		Amount:            decimal.NewFromInt(amount),
		TreasuryAccountID: strPtr(treasuryID),
		CategoryAccountID: strPtr(categoryID),
	}
}

func debitVoucher(treasuryID, categoryID string, amount int64, day time.Time) domain.Voucher {
	return domain.Voucher{
		VoucherID:         "dv-" + day.Format("20060102"),
		Type:              domain.VoucherDebit,
		Date:              day,
		Amount:            decimal.NewFromInt(amount),
		TreasuryAccountID: strPtr(treasuryID),
		CategoryAccountID: strPtr(categoryID),
	}
}

func TestRunningBalancesTreasurySequence(t *testing.T) {
	cash := accounting.TreasuryRef("cash-1")
	vouchers := []domain.Voucher{
		creditVoucher("cash-1", "sales-1", 500, date(2026, time.March, 1)),
		debitVoucher("cash-1", "rent-1", 200, date(2026, time.March, 2)),
	}

	lines, closing := accounting.RunningBalances(decimal.NewFromInt(1000), vouchers, cash)

	require.Len(t, lines, 2)
	assert.True(t, lines[0].RunningBalance.Equal(decimal.NewFromInt(1500)), "got %s", lines[0].RunningBalance)
	assert.True(t, lines[1].RunningBalance.Equal(decimal.NewFromInt(1300)), "got %s", lines[1].RunningBalance)
	assert.True(t, closing.Equal(decimal.NewFromInt(1300)), "got %s", closing)

	// Money in lands in the debit column for a treasury account.
	assert.True(t, lines[0].Debit.Equal(decimal.NewFromInt(500)))
	assert.True(t, lines[0].Credit.IsZero())
	assert.True(t, lines[1].Credit.Equal(decimal.NewFromInt(200)))
	assert.True(t, lines[1].Debit.IsZero())
}

func TestJournalVoucherMovesBetweenCategoryAccounts(t *testing.T) {
	journal := domain.Voucher{
		VoucherID:              "jv-1",
		Type:                   domain.VoucherJournal,
		Date:                   date(2026, time.April, 10),
		JournalDebitAccountID:  strPtr("office-supplies"),
		JournalDebitAmount:     decimal.NewFromInt(300),
		JournalCreditAccountID: strPtr("accrued-payables"),
		JournalCreditAmount:    decimal.NewFromInt(300),
	}

	debitSide := accounting.SignedAmount(journal, accounting.CategoryRef("office-supplies"))
	creditSide := accounting.SignedAmount(journal, accounting.CategoryRef("accrued-payables"))

	assert.True(t, debitSide.Equal(decimal.NewFromInt(-300)), "debit leg should decrease, got %s", debitSide)
	assert.True(t, creditSide.Equal(decimal.NewFromInt(300)), "credit leg should increase, got %s", creditSide)

	// A journal voucher never touches treasury balances.
	assert.Empty(t, filterTreasury(accounting.VoucherEffects(journal)))
}

func TestContraVoucherTransfersBetweenTreasuries(t *testing.T) {
	contra := domain.Voucher{
		VoucherID:        "cn-1",
		Type:             domain.VoucherContra,
		Date:             date(2026, time.May, 5),
		Amount:           decimal.NewFromInt(1000),
		DebitTreasuryID:  strPtr("bank-1"),
		CreditTreasuryID: strPtr("cash-1"),
	}

	bank := accounting.SignedAmount(contra, accounting.TreasuryRef("bank-1"))
	cash := accounting.SignedAmount(contra, accounting.TreasuryRef("cash-1"))

	assert.True(t, bank.Equal(decimal.NewFromInt(-1000)), "source side should decrease, got %s", bank)
	assert.True(t, cash.Equal(decimal.NewFromInt(1000)), "destination side should increase, got %s", cash)

	// Net effect across all treasuries is zero.
	assert.True(t, bank.Add(cash).IsZero())
}

func TestClosingEqualsOpeningPlusMovements(t *testing.T) {
	sales := accounting.CategoryRef("sales-1")
	vouchers := []domain.Voucher{
		creditVoucher("cash-1", "sales-1", 500, date(2026, time.March, 1)),
		debitVoucher("cash-1", "sales-1", 120, date(2026, time.March, 3)),
		creditVoucher("bank-1", "sales-1", 75, date(2026, time.March, 7)),
	}
	opening := decimal.NewFromInt(250)

	_, closing := accounting.RunningBalances(opening, vouchers, sales)

	expected := opening.Add(accounting.SumSigned(vouchers, sales))
	assert.True(t, closing.Equal(expected), "closing %s != opening+sum %s", closing, expected)
}

func TestWindowSplitComposes(t *testing.T) {
	// Closing balance of [d1..d2] used as opening of [d3..d4] must equal
	// the closing of the combined window.
	cash := accounting.TreasuryRef("cash-1")
	first := []domain.Voucher{
		creditVoucher("cash-1", "sales-1", 500, date(2026, time.March, 1)),
		debitVoucher("cash-1", "rent-1", 200, date(2026, time.March, 2)),
	}
	second := []domain.Voucher{
		creditVoucher("cash-1", "sales-1", 90, date(2026, time.March, 3)),
	}

	opening := decimal.NewFromInt(1000)
	_, mid := accounting.RunningBalances(opening, first, cash)
	_, split := accounting.RunningBalances(mid, second, cash)
	_, whole := accounting.RunningBalances(opening, append(append([]domain.Voucher{}, first...), second...), cash)

	assert.True(t, split.Equal(whole), "split %s != whole %s", split, whole)
}

func TestZeroAmountVoucherStillEmitsLine(t *testing.T) {
	cash := accounting.TreasuryRef("cash-1")
	vouchers := []domain.Voucher{
		creditVoucher("cash-1", "sales-1", 0, date(2026, time.June, 1)),
	}

	lines, closing := accounting.RunningBalances(decimal.NewFromInt(10), vouchers, cash)

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Debit.IsZero())
	assert.True(t, lines[0].Credit.IsZero())
	assert.True(t, lines[0].RunningBalance.Equal(decimal.NewFromInt(10)))
	assert.True(t, closing.Equal(decimal.NewFromInt(10)))
}

func TestVouchersNotTouchingAccountAreSkipped(t *testing.T) {
	other := accounting.TreasuryRef("bank-9")
	vouchers := []domain.Voucher{
		creditVoucher("cash-1", "sales-1", 500, date(2026, time.March, 1)),
	}

	lines, closing := accounting.RunningBalances(decimal.Zero, vouchers, other)

	assert.Empty(t, lines)
	assert.True(t, closing.IsZero())
}

func TestSplitColumnsByKind(t *testing.T) {
	amount := decimal.NewFromInt(40)

	// Treasury accounts are debit-normal.
	debit, credit := accounting.SplitColumns(domain.KindTreasury, amount)
	assert.True(t, debit.Equal(amount))
	assert.True(t, credit.IsZero())

	debit, credit = accounting.SplitColumns(domain.KindTreasury, amount.Neg())
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(amount))

	// Category accounts are credit-normal.
	debit, credit = accounting.SplitColumns(domain.KindCategory, amount)
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(amount))

	debit, credit = accounting.SplitColumns(domain.KindCategory, amount.Neg())
	assert.True(t, debit.Equal(amount))
	assert.True(t, credit.IsZero())
}

func TestJournalWithBothLegsOnSameAccountNets(t *testing.T) {
	journal := domain.Voucher{
		VoucherID:              "jv-2",
		Type:                   domain.VoucherJournal,
		Date:                   date(2026, time.July, 1),
		JournalDebitAccountID:  strPtr("misc-1"),
		JournalDebitAmount:     decimal.NewFromInt(100),
		JournalCreditAccountID: strPtr("misc-1"),
		JournalCreditAmount:    decimal.NewFromInt(100),
	}

	net := accounting.SignedAmount(journal, accounting.CategoryRef("misc-1"))
	assert.True(t, net.IsZero())
}

func filterTreasury(effects []accounting.Effect) []accounting.Effect {
	out := make([]accounting.Effect, 0)
	for _, e := range effects {
		if e.Ref.Kind == domain.KindTreasury {
			out = append(out, e)
		}
	}
	return out
}
