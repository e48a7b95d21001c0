package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cargoplus/collections_backend/internal/apperrors"
	"github.com/cargoplus/collections_backend/internal/cache"
	"github.com/cargoplus/collections_backend/internal/core/domain"
	portsrepo "github.com/cargoplus/collections_backend/internal/core/ports/repositories"
	portssvc "github.com/cargoplus/collections_backend/internal/core/ports/services"
	"github.com/cargoplus/collections_backend/internal/dto"
	"github.com/cargoplus/collections_backend/internal/middleware"
)

// paymentService records collection events against outstanding bills and
// exposes the unclosed set that feeds cash closures.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryWithTx
	billLedger  portssvc.BillLedgerSvcFacade
	guardSvc    portssvc.GuardSvcFacade
	statusCache cache.GuardStatusCache
	now         func() time.Time
}

// PaymentServiceOption configures optional payment service dependencies.
type PaymentServiceOption func(*paymentService)

// WithPaymentGuardCache attaches the guard cache so writes can invalidate it.
func WithPaymentGuardCache(c cache.GuardStatusCache) PaymentServiceOption {
	return func(s *paymentService) {
		s.statusCache = c
	}
}

// WithPaymentClock overrides the clock, used by tests.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.now = now
	}
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryWithTx, billLedger portssvc.BillLedgerSvcFacade, guardSvc portssvc.GuardSvcFacade, opts ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	s := &paymentService{
		paymentRepo: paymentRepo,
		billLedger:  billLedger,
		guardSvc:    guardSvc,
		statusCache: cache.NoopGuardStatusCache{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment records one collected payment. The sequencing guard is
// consulted first and re-checked immediately before the local write; the
// payment is posted to the external bill ledger in between, which updates the
// bill's balance and status. The local record starts with a null closure
// reference.
func (s *paymentService) RecordPayment(ctx context.Context, collectorID string, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if collectorID == "" {
		return nil, fmt.Errorf("%w: collector ID is required", apperrors.ErrValidation)
	}
	if !req.Method.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Method)
	}
	if req.Amount != nil && req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	if err := s.checkGuard(ctx, collectorID); err != nil {
		return nil, err
	}

	bill, err := s.billLedger.GetBill(ctx, req.BillID)
	if err != nil {
		logger.Warn("Failed to fetch bill from ledger", slog.String("bill_id", req.BillID), slog.String("error", err.Error()))
		return nil, err
	}
	if !bill.IsPayable() {
		return nil, fmt.Errorf("%w: bill %s has no outstanding balance", apperrors.ErrValidation, bill.BillID)
	}

	// Default the amount to the outstanding balance when the collector
	// doesn't key one in.
	amount := bill.Balance
	if req.Amount != nil {
		amount = *req.Amount
	}

	now := s.now().UTC()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		BillID:      bill.BillID,
		CollectorID: collectorID,
		Amount:      amount,
		Method:      req.Method,
		Details:     req.Details,
		Notes:       req.Notes,
		PaymentDate: paymentDate,
		ClosureID:   nil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := payment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Re-check just before committing. Only this collector's own closures can
	// change the guard's answer, so a re-check is enough; no lock spans the
	// two steps.
	if err := s.checkGuard(ctx, collectorID); err != nil {
		return nil, err
	}

	// Post to the ledger first: the ledger owns the balance transition and a
	// local record without a ledger posting would overstate collections.
	updatedBill, err := s.billLedger.PostPayment(ctx, bill.BillID, payment.Amount, payment.Method, payment.Details)
	if err != nil {
		logger.Error("Failed to post payment to bill ledger", slog.String("bill_id", bill.BillID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		// The ledger posting stands; surface loudly so the discrepancy is
		// reconciled rather than silently retried into a double posting.
		logger.Error("Ledger accepted payment but local save failed",
			slog.String("bill_id", bill.BillID),
			slog.String("payment_id", payment.PaymentID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("payment posted to ledger but not recorded locally: %w", err)
	}

	if err := s.statusCache.Invalidate(ctx, collectorID); err != nil {
		logger.Warn("Failed to invalidate guard cache", slog.String("collector_id", collectorID), slog.String("error", err.Error()))
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("bill_id", bill.BillID),
		slog.String("collector_id", collectorID),
		slog.String("amount", payment.Amount.String()),
		slog.String("bill_status", string(updatedBill.Status)))

	return &payment, nil
}

// ListUnclosedPayments returns the collector's payments available for a new
// closure. The set is recomputed on every call (see the repository contract).
func (s *paymentService) ListUnclosedPayments(ctx context.Context, collectorID string) ([]domain.Payment, error) {
	if collectorID == "" {
		return nil, fmt.Errorf("%w: collector ID is required", apperrors.ErrValidation)
	}
	return s.paymentRepo.FindUnclosedPaymentsByCollector(ctx, collectorID)
}

func (s *paymentService) checkGuard(ctx context.Context, collectorID string) error {
	status, err := s.guardSvc.CheckGuard(ctx, collectorID)
	if err != nil {
		return fmt.Errorf("failed to evaluate sequencing guard: %w", err)
	}
	if !status.Allow {
		if status.RequiredClosureDate == nil {
			return apperrors.ErrClosurePending
		}
		return apperrors.NewClosurePendingError(*status.RequiredClosureDate)
	}
	return nil
}
