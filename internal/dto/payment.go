package dto

import (
	"time"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record a collected payment.
// Amount is optional: when omitted it defaults to the bill's outstanding
// balance as reported by the bill ledger.
type RecordPaymentRequest struct {
	BillID      string               `json:"billID" binding:"required"`
	Amount      *decimal.Decimal     `json:"amount"`
	Method      domain.PaymentMethod `json:"method" binding:"required"`
	Details     string               `json:"details"`
	Notes       string               `json:"notes"`
	PaymentDate *time.Time           `json:"paymentDate"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string               `json:"paymentID"`
	BillID      string               `json:"billID"`
	CollectorID string               `json:"collectorID"`
	Amount      decimal.Decimal      `json:"amount"`
	Method      domain.PaymentMethod `json:"method"`
	Details     string               `json:"details,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	PaymentDate time.Time            `json:"paymentDate"`
	ClosureID   *string              `json:"closureID,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ListPaymentsResponse wraps a sequence of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		BillID:      p.BillID,
		CollectorID: p.CollectorID,
		Amount:      p.Amount,
		Method:      p.Method,
		Details:     p.Details,
		Notes:       p.Notes,
		PaymentDate: p.PaymentDate,
		ClosureID:   p.ClosureID,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListPaymentsResponse converts a slice of domain.Payment to the list DTO.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: responses}
}
