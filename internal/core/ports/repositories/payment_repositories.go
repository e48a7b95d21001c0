package repositories

import (
	"context"
	"time"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindUnclosedPaymentsByCollector retrieves every payment for the collector
	// whose closure reference is null AND whose id is absent from every
	// closure's payment list. Both conditions are checked on every call; the
	// result is never cached across closure creation.
	FindUnclosedPaymentsByCollector(ctx context.Context, collectorID string) ([]domain.Payment, error)

	// ListPaymentDatesByCollector returns the distinct calendar dates (UTC,
	// truncated to midnight) on which the collector has at least one payment.
	ListPaymentDatesByCollector(ctx context.Context, collectorID string) ([]time.Time, error)

	// ListPaymentsByClosure retrieves the payments claimed by a closure.
	ListPaymentsByClosure(ctx context.Context, closureID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment with a null closure reference.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentTransactionSupport defines operations used while sealing a closure
type PaymentTransactionSupport interface {
	// ClaimPaymentInTx sets the payment's closure reference to closureID only
	// if it is currently null, within the given transaction. Returns
	// apperrors.ErrPaymentAlreadyClosed when the conditional update touches no
	// row because the reference is already set, and apperrors.ErrNotFound when
	// the payment does not exist.
	ClaimPaymentInTx(ctx context.Context, tx pgx.Tx, paymentID string, closureID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	PaymentTransactionSupport
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
