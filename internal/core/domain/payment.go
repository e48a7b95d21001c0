package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod indicates how a collected payment was tendered.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodCard     PaymentMethod = "CARD"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodCheck    PaymentMethod = "CHECK"
	MethodOther    PaymentMethod = "OTHER"
)

// IsValid reports whether m is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodCheck, MethodOther:
		return true
	}
	return false
}

// Payment is a single collection event taken by a field collector against a bill.
// A payment belongs to at most one cash closure, ever: ClosureID is set exactly
// once when the closure is sealed and never reassigned. A payment with a non-nil
// ClosureID is immutable.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	BillID      string          `json:"billID"`
	CollectorID string          `json:"collectorID"`
	Amount      decimal.Decimal `json:"amount"` // positive, minor-unit precision
	Method      PaymentMethod   `json:"method"`
	Details     string          `json:"details"` // free text (card voucher no., transfer ref, ...)
	Notes       string          `json:"notes"`
	PaymentDate time.Time       `json:"paymentDate"`
	ClosureID   *string         `json:"closureID"` // nil until claimed by a closure
	AuditFields
}

// IsClosed reports whether the payment has been claimed by a closure.
func (p *Payment) IsClosed() bool {
	return p.ClosureID != nil
}

// Validate checks the payment's own invariants.
func (p *Payment) Validate() error {
	if p.BillID == "" {
		return fmt.Errorf("bill ID is required")
	}
	if p.CollectorID == "" {
		return fmt.Errorf("collector ID is required")
	}
	if !p.Method.IsValid() {
		return fmt.Errorf("unknown payment method %q", p.Method)
	}
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("payment amount must be positive")
	}
	return nil
}
