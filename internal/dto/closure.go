package dto

import (
	"time"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosureDateFormat is the wire format for closure calendar dates.
const ClosureDateFormat = "2006-01-02"

// CreateClosureRequest defines the data needed to seal a cash closure.
// CashExpectedTotal is accepted for compatibility with older console builds
// but is always recomputed server-side from the included payments.
type CreateClosureRequest struct {
	ClosureDate       string                   `json:"closureDate" binding:"required"`
	PaymentIDs        []string                 `json:"paymentIDs" binding:"required,min=1"`
	CashBreakdown     domain.DenominationCount `json:"cashBreakdown"`
	Notes             string                   `json:"notes"`
	CashExpectedTotal *decimal.Decimal         `json:"cashExpectedTotal"`
}

// ClosureResponse defines the data returned for a sealed cash closure.
type ClosureResponse struct {
	ClosureID   string               `json:"closureID"`
	CollectorID string               `json:"collectorID"`
	ClosureDate string               `json:"closureDate"`
	Status      domain.ClosureStatus `json:"status"`
	PaymentIDs  []string             `json:"paymentIDs"`

	TotalCash     decimal.Decimal `json:"totalCash"`
	TotalCard     decimal.Decimal `json:"totalCard"`
	TotalTransfer decimal.Decimal `json:"totalTransfer"`
	TotalOther    decimal.Decimal `json:"totalOther"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`

	CashBreakdown     domain.DenominationCount `json:"cashBreakdown"`
	CashExpectedTotal decimal.Decimal          `json:"cashExpectedTotal"`
	CashCountedTotal  decimal.Decimal          `json:"cashCountedTotal"`
	CashDifference    decimal.Decimal          `json:"cashDifference"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ListClosuresResponse wraps a page of closures plus the pagination token.
type ListClosuresResponse struct {
	Closures  []ClosureResponse `json:"closures"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToClosureResponse converts a domain.CashClosure to ClosureResponse DTO.
func ToClosureResponse(c *domain.CashClosure) ClosureResponse {
	return ClosureResponse{
		ClosureID:         c.ClosureID,
		CollectorID:       c.CollectorID,
		ClosureDate:       c.ClosureDate.Format(ClosureDateFormat),
		Status:            c.Status,
		PaymentIDs:        c.PaymentIDs,
		TotalCash:         c.TotalCash,
		TotalCard:         c.TotalCard,
		TotalTransfer:     c.TotalTransfer,
		TotalOther:        c.TotalOther,
		GrandTotal:        c.GrandTotal,
		CashBreakdown:     c.CashBreakdown,
		CashExpectedTotal: c.CashExpectedTotal,
		CashCountedTotal:  c.CashCountedTotal,
		CashDifference:    c.CashDifference,
		Notes:             c.Notes,
		CreatedAt:         c.CreatedAt,
		CreatedBy:         c.CreatedBy,
	}
}

// ToListClosuresResponse converts a page of closures to the list DTO.
func ToListClosuresResponse(closures []domain.CashClosure, nextToken string) ListClosuresResponse {
	responses := make([]ClosureResponse, len(closures))
	for i, c := range closures {
		responses[i] = ToClosureResponse(&c)
	}
	return ListClosuresResponse{Closures: responses, NextToken: nextToken}
}
