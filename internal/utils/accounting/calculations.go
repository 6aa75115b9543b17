// Package accounting implements the pure balance calculator: the sign
// convention table, per-account voucher effects, and running balance
// sequences. Both services and tests use it so the accounting logic exists
// in exactly one place.
package accounting

import (
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRef identifies an account together with its representation, since
// treasury and category accounts carry different sign conventions.
type AccountRef struct {
	Kind      domain.AccountKind
	AccountID string
}

// TreasuryRef builds an AccountRef for a treasury account.
func TreasuryRef(accountID string) AccountRef {
	return AccountRef{Kind: domain.KindTreasury, AccountID: accountID}
}

// CategoryRef builds an AccountRef for a category account.
func CategoryRef(accountID string) AccountRef {
	return AccountRef{Kind: domain.KindCategory, AccountID: accountID}
}

// Effect is the signed contribution of one voucher leg to one account.
type Effect struct {
	Ref    AccountRef
	Amount decimal.Decimal
}

// VoucherEffects expands a voucher into its signed per-account effects.
//
// Sign convention:
//   - Treasury: Credit voucher +, Debit voucher -, Contra + on the
//     receiving (credit) side and - on the paying (debit) side.
//   - Category: Credit voucher +, Debit voucher -, Journal + on the credit
//     leg and - on the debit leg. Category balances are credit-normal.
//
// Journal legs are emitted independently; unequal historical legs are
// computed as stored rather than rejected.
func VoucherEffects(v domain.Voucher) []Effect {
	effects := make([]Effect, 0, 2)

	switch v.Type {
	case domain.VoucherCredit:
		if v.TreasuryAccountID != nil {
			effects = append(effects, Effect{TreasuryRef(*v.TreasuryAccountID), v.Amount})
		}
		if v.CategoryAccountID != nil {
			effects = append(effects, Effect{CategoryRef(*v.CategoryAccountID), v.Amount})
		}
	case domain.VoucherDebit:
		if v.TreasuryAccountID != nil {
			effects = append(effects, Effect{TreasuryRef(*v.TreasuryAccountID), v.Amount.Neg()})
		}
		if v.CategoryAccountID != nil {
			effects = append(effects, Effect{CategoryRef(*v.CategoryAccountID), v.Amount.Neg()})
		}
	case domain.VoucherContra:
		if v.CreditTreasuryID != nil {
			effects = append(effects, Effect{TreasuryRef(*v.CreditTreasuryID), v.Amount})
		}
		if v.DebitTreasuryID != nil {
			effects = append(effects, Effect{TreasuryRef(*v.DebitTreasuryID), v.Amount.Neg()})
		}
	case domain.VoucherJournal:
		if v.JournalCreditAccountID != nil {
			effects = append(effects, Effect{CategoryRef(*v.JournalCreditAccountID), v.JournalCreditAmount})
		}
		if v.JournalDebitAccountID != nil {
			effects = append(effects, Effect{CategoryRef(*v.JournalDebitAccountID), v.JournalDebitAmount.Neg()})
		}
	}

	return effects
}

// SignedAmount returns the net signed effect of a voucher on one account.
// A journal voucher with both legs on the same account nets the two legs.
func SignedAmount(v domain.Voucher, ref AccountRef) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range VoucherEffects(v) {
		if e.Ref == ref {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// SumSigned totals the signed effects of the given vouchers on one account.
// Callers use it to derive opening balances from pre-window vouchers.
func SumSigned(vouchers []domain.Voucher, ref AccountRef) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range vouchers {
		sum = sum.Add(SignedAmount(v, ref))
	}
	return sum
}

// BalanceLine is one step of a running balance sequence. Debit and Credit
// are the unsigned magnitudes of the movement split by the account's sign
// convention.
type BalanceLine struct {
	Voucher        domain.Voucher
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	RunningBalance decimal.Decimal
}

// SplitColumns places a signed movement into debit/credit columns for the
// given account representation. Treasury accounts are debit-normal: a
// positive movement (money in) lands in the debit column. Category accounts
// are credit-normal: a positive movement lands in the credit column.
func SplitColumns(kind domain.AccountKind, signed decimal.Decimal) (debit, credit decimal.Decimal) {
	switch {
	case signed.IsZero():
		return decimal.Zero, decimal.Zero
	case kind == domain.KindTreasury:
		if signed.IsPositive() {
			return signed, decimal.Zero
		}
		return decimal.Zero, signed.Neg()
	default: // KindCategory
		if signed.IsPositive() {
			return decimal.Zero, signed
		}
		return signed.Neg(), decimal.Zero
	}
}

// RunningBalances walks the window vouchers in store order, accumulating
// each voucher's signed effect onto a running total seeded with the opening
// balance. Vouchers that do not touch the account are skipped. The returned
// closing balance equals opening plus the sum of all in-window movements,
// exactly and without intermediate rounding.
func RunningBalances(opening decimal.Decimal, vouchers []domain.Voucher, ref AccountRef) ([]BalanceLine, decimal.Decimal) {
	lines := make([]BalanceLine, 0, len(vouchers))
	running := opening

	for _, v := range vouchers {
		signed := SignedAmount(v, ref)
		if signed.IsZero() && !touches(v, ref) {
			continue
		}
		running = running.Add(signed)
		debit, credit := SplitColumns(ref.Kind, signed)
		lines = append(lines, BalanceLine{
			Voucher:        v,
			Debit:          debit,
			Credit:         credit,
			RunningBalance: running,
		})
	}

	return lines, running
}

// touches reports whether the voucher references the account at all, so
// zero-amount vouchers still show up as ledger lines.
func touches(v domain.Voucher, ref AccountRef) bool {
	for _, e := range VoucherEffects(v) {
		if e.Ref == ref {
			return true
		}
	}
	return false
}
