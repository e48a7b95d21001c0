package mapping

import (
	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/cargoplus/collections_backend/internal/models"
)

// ToModelCashClosure converts a domain closure to its persistence shape.
// The payment id list is persisted separately in closure_payments.
func ToModelCashClosure(d domain.CashClosure) models.CashClosure {
	return models.CashClosure{
		ClosureID:         d.ClosureID,
		CollectorID:       d.CollectorID,
		ClosureDate:       d.ClosureDate,
		Status:            models.ClosureStatus(d.Status),
		TotalCash:         d.TotalCash,
		TotalCard:         d.TotalCard,
		TotalTransfer:     d.TotalTransfer,
		TotalOther:        d.TotalOther,
		GrandTotal:        d.GrandTotal,
		CashBreakdown:     d.CashBreakdown,
		CashExpectedTotal: d.CashExpectedTotal,
		CashCountedTotal:  d.CashCountedTotal,
		CashDifference:    d.CashDifference,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashClosure converts a persisted closure back to the domain shape.
func ToDomainCashClosure(m models.CashClosure, paymentIDs []string) domain.CashClosure {
	return domain.CashClosure{
		ClosureID:         m.ClosureID,
		CollectorID:       m.CollectorID,
		ClosureDate:       m.ClosureDate,
		Status:            domain.ClosureStatus(m.Status),
		PaymentIDs:        paymentIDs,
		TotalCash:         m.TotalCash,
		TotalCard:         m.TotalCard,
		TotalTransfer:     m.TotalTransfer,
		TotalOther:        m.TotalOther,
		GrandTotal:        m.GrandTotal,
		CashBreakdown:     m.CashBreakdown,
		CashExpectedTotal: m.CashExpectedTotal,
		CashCountedTotal:  m.CashCountedTotal,
		CashDifference:    m.CashDifference,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
