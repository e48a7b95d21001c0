package services

import (
	"context"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/cargoplus/collections_backend/internal/dto"
)

// PaymentRecorderSvc defines the write side of the payment store.
type PaymentRecorderSvc interface {
	// RecordPayment checks the sequencing guard, posts the payment to the
	// external bill ledger and appends a local payment record with a null
	// closure reference. Refuses with a ClosurePendingError while the guard
	// is locked.
	RecordPayment(ctx context.Context, collectorID string, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, error)
}

// PaymentReaderSvc defines the read side of the payment store.
type PaymentReaderSvc interface {
	// ListUnclosedPayments returns the collector's payments that are
	// available for a new closure, ordered by payment date then id.
	ListUnclosedPayments(ctx context.Context, collectorID string) ([]domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentRecorderSvc
	PaymentReaderSvc
}
