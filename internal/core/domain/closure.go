package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ClosureStatus indicates the state of a cash closure. Closed is terminal.
type ClosureStatus string

const (
	ClosureOpen   ClosureStatus = "OPEN"
	ClosureClosed ClosureStatus = "CLOSED"
)

// CashClosure is a sealed reconciliation batch over a set of payments taken by
// one collector. All totals are denormalized at seal time so historical
// closures stay immutable even if the payment model evolves.
type CashClosure struct {
	ClosureID   string        `json:"closureID"`
	CollectorID string        `json:"collectorID"`
	ClosureDate time.Time     `json:"closureDate"` // calendar date the batch covers, not creation time
	Status      ClosureStatus `json:"status"`
	PaymentIDs  []string      `json:"paymentIDs"`

	TotalCash     decimal.Decimal `json:"totalCash"`
	TotalCard     decimal.Decimal `json:"totalCard"`
	TotalTransfer decimal.Decimal `json:"totalTransfer"`
	TotalOther    decimal.Decimal `json:"totalOther"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`

	CashBreakdown     DenominationCount `json:"cashBreakdown"`
	CashExpectedTotal decimal.Decimal   `json:"cashExpectedTotal"` // recomputed from payments, never client input
	CashCountedTotal  decimal.Decimal   `json:"cashCountedTotal"`  // derived from CashBreakdown
	CashDifference    decimal.Decimal   `json:"cashDifference"`    // counted - expected; positive = surplus

	Notes string `json:"notes"`
	AuditFields
}

// Validate checks the internal consistency of a sealed closure.
func (c *CashClosure) Validate() error {
	if c.CollectorID == "" {
		return fmt.Errorf("collector ID is required")
	}
	if len(c.PaymentIDs) == 0 {
		return fmt.Errorf("closure must include at least one payment")
	}
	methodSum := c.TotalCash.Add(c.TotalCard).Add(c.TotalTransfer).Add(c.TotalOther)
	if !methodSum.Equal(c.GrandTotal) {
		return fmt.Errorf("per-method totals %s do not add up to grand total %s", methodSum, c.GrandTotal)
	}
	if !c.CashDifference.Equal(c.CashCountedTotal.Sub(c.CashExpectedTotal)) {
		return fmt.Errorf("cash difference is not counted minus expected")
	}
	return nil
}
