package domain

import "github.com/shopspring/decimal"

// BillStatus mirrors the lifecycle owned by the external bill ledger.
type BillStatus string

const (
	BillPending   BillStatus = "PENDING"
	BillPartial   BillStatus = "PARTIAL"
	BillPaid      BillStatus = "PAID"
	BillCancelled BillStatus = "CANCELLED"
)

// Bill is a read model of the external bill ledger's bill. This service never
// mutates a bill directly; it only posts payments against one, and the ledger
// owns the resulting balance/status transition.
type Bill struct {
	BillID   string          `json:"billID"`
	ClientID string          `json:"clientID"`
	Status   BillStatus      `json:"status"`
	Total    decimal.Decimal `json:"total"`
	Paid     decimal.Decimal `json:"paid"`
	Balance  decimal.Decimal `json:"balance"` // >= 0
}

// IsPayable reports whether a payment can still be taken against the bill.
func (b *Bill) IsPayable() bool {
	return (b.Status == BillPending || b.Status == BillPartial) && b.Balance.GreaterThan(decimal.Zero)
}
