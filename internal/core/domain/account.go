package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes the two account representations in the ledger.
type AccountKind string

const (
	KindTreasury AccountKind = "TREASURY"
	KindCategory AccountKind = "CATEGORY"
)

// TreasuryKind identifies the physical nature of a treasury account.
type TreasuryKind string

const (
	TreasuryBank TreasuryKind = "BANK"
	TreasuryCash TreasuryKind = "CASH"
)

// Classification is the coarse tag on a category account. It is optional;
// accounts without one are bucketed by the classifier's name rules alone.
type Classification string

const (
	ClassificationIncome  Classification = "INCOME"
	ClassificationExpense Classification = "EXPENSE"
)

// TreasuryAccount is a bank or cash ledger. Its balance is debit-normal and
// starts from a stored initial balance.
type TreasuryAccount struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	Code           string          `json:"code"`      // Short human-readable code, optional
	Title          string          `json:"title"`
	Kind           TreasuryKind    `json:"kind"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	IsActive       bool            `json:"isActive"` // Soft delete flag
	AuditFields
}

// CategoryAccount is an income or expense head. It carries no stored balance;
// its balance is always derived from vouchers and is credit-normal.
type CategoryAccount struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	Code           string          `json:"code"`      // Short human-readable code, optional
	Name           string          `json:"name"`
	Classification *Classification `json:"classification,omitempty"` // Nullable
	IsActive       bool            `json:"isActive"`
	AuditFields
}
