package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosureStatus mirrors domain.ClosureStatus for storage.
type ClosureStatus string

// CashClosure is the persistence shape of a sealed closure. Totals and the
// cash breakdown are denormalized at seal time; the owned payment id list
// lives in the closure_payments table.
type CashClosure struct {
	ClosureID   string        `db:"closure_id"`
	CollectorID string        `db:"collector_id"`
	ClosureDate time.Time     `db:"closure_date"`
	Status      ClosureStatus `db:"status"`

	TotalCash     decimal.Decimal `db:"total_cash"`
	TotalCard     decimal.Decimal `db:"total_card"`
	TotalTransfer decimal.Decimal `db:"total_transfer"`
	TotalOther    decimal.Decimal `db:"total_other"`
	GrandTotal    decimal.Decimal `db:"grand_total"`

	CashBreakdown     map[string]int64 `db:"cash_breakdown"` // stored as jsonb
	CashExpectedTotal decimal.Decimal  `db:"cash_expected_total"`
	CashCountedTotal  decimal.Decimal  `db:"cash_counted_total"`
	CashDifference    decimal.Decimal  `db:"cash_difference"`

	Notes string `db:"notes"`
	AuditFields
}
