package dto

import (
	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillResponse is the outward shape of a bill read from the external ledger.
type BillResponse struct {
	BillID   string            `json:"billID"`
	ClientID string            `json:"clientID"`
	Status   domain.BillStatus `json:"status"`
	Total    decimal.Decimal   `json:"total"`
	Paid     decimal.Decimal   `json:"paid"`
	Balance  decimal.Decimal   `json:"balance"`
}

// ListBillsResponse wraps a sequence of bills.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:   b.BillID,
		ClientID: b.ClientID,
		Status:   b.Status,
		Total:    b.Total,
		Paid:     b.Paid,
		Balance:  b.Balance,
	}
}

// ToListBillsResponse converts a slice of domain.Bill to the list DTO.
func ToListBillsResponse(bills []domain.Bill) ListBillsResponse {
	responses := make([]BillResponse, len(bills))
	for i, b := range bills {
		responses[i] = ToBillResponse(&b)
	}
	return ListBillsResponse{Bills: responses}
}
