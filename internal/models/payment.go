package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod mirrors domain.PaymentMethod for storage.
type PaymentMethod string

// Payment is the persistence shape of a collected payment.
// ClosureID is a nullable foreign key, set exactly once when a closure claims
// the payment.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	BillID      string          `db:"bill_id"`
	CollectorID string          `db:"collector_id"`
	Amount      decimal.Decimal `db:"amount"`
	Method      PaymentMethod   `db:"method"`
	Details     string          `db:"details"`
	Notes       string          `db:"notes"`
	PaymentDate time.Time       `db:"payment_date"`
	ClosureID   *string         `db:"closure_id"`
	AuditFields
}
