package models

import (
	"github.com/shopspring/decimal"
)

// TreasuryKind identifies the physical nature of a treasury account.
type TreasuryKind string

const (
	TreasuryBank TreasuryKind = "BANK"
	TreasuryCash TreasuryKind = "CASH"
)

// TreasuryAccount is the treasury_accounts row.
type TreasuryAccount struct {
	AccountID      string          `db:"account_id"`
	Code           string          `db:"code"`
	Title          string          `db:"title"`
	Kind           TreasuryKind    `db:"kind"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// CategoryAccount is the category_accounts row. Classification is nullable.
type CategoryAccount struct {
	AccountID      string  `db:"account_id"`
	Code           string  `db:"code"`
	Name           string  `db:"name"`
	Classification *string `db:"classification"`
	IsActive       bool    `db:"is_active"`
	AuditFields
}
