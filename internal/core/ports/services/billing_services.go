package services

import (
	"context"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillLedgerSvcFacade is the port to the external bill ledger collaborator.
// The ledger owns bill balances and status transitions; this service only
// reads bills and posts payments against them. Transport failures surface as
// apperrors.ErrUpstreamUnavailable so callers can distinguish "ledger down"
// from "bill rejected".
type BillLedgerSvcFacade interface {
	// GetBill fetches a single bill by id.
	GetBill(ctx context.Context, billID string) (*domain.Bill, error)

	// ListOutstandingBills lists the collector's bills with status
	// PENDING/PARTIAL and a positive balance.
	ListOutstandingBills(ctx context.Context, collectorID string) ([]domain.Bill, error)

	// PostPayment posts a payment against a bill and returns the bill with
	// its updated balance and status.
	PostPayment(ctx context.Context, billID string, amount decimal.Decimal, method domain.PaymentMethod, details string) (*domain.Bill, error)
}
