package mapping

import (
	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/cargoplus/collections_backend/internal/models"
)

// ToModelPayment converts a domain payment to its persistence shape.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		BillID:      d.BillID,
		CollectorID: d.CollectorID,
		Amount:      d.Amount,
		Method:      models.PaymentMethod(d.Method),
		Details:     d.Details,
		Notes:       d.Notes,
		PaymentDate: d.PaymentDate,
		ClosureID:   d.ClosureID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a persisted payment back to the domain shape.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		BillID:      m.BillID,
		CollectorID: m.CollectorID,
		Amount:      m.Amount,
		Method:      domain.PaymentMethod(m.Method),
		Details:     m.Details,
		Notes:       m.Notes,
		PaymentDate: m.PaymentDate,
		ClosureID:   m.ClosureID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
