package services

import (
	"context"
	"errors"
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
	"github.com/cargoplus/collections_backend/internal/utils/cashcount"
)

const (
	defaultClosurePageSize = 20
	maxClosurePageSize     = 100
)

// closureService seals subsets of unclosed payments into immutable cash
// closures with per-method totals and a denomination-level reconciliation.
type closureService struct {
	closureRepo portsrepo.ClosureRepositoryWithTx
	paymentRepo portsrepo.PaymentRepositoryWithTx
	statusCache cache.GuardStatusCache
	denoms      domain.DenominationSet
	exponent    int32
	now         func() time.Time
}

// ClosureServiceOption configures optional closure service dependencies.
type ClosureServiceOption func(*closureService)

// WithClosureGuardCache attaches the guard cache so seals can invalidate it.
func WithClosureGuardCache(c cache.GuardStatusCache) ClosureServiceOption {
	return func(s *closureService) {
		s.statusCache = c
	}
}

// WithClosureClock overrides the clock, used by tests.
func WithClosureClock(now func() time.Time) ClosureServiceOption {
	return func(s *closureService) {
		s.now = now
	}
}

// NewClosureService creates a new ClosureService over the configured
// denomination set.
func NewClosureService(closureRepo portsrepo.ClosureRepositoryWithTx, paymentRepo portsrepo.PaymentRepositoryWithTx, denoms domain.DenominationSet, exponent int32, opts ...ClosureServiceOption) portssvc.ClosureSvcFacade {
	s := &closureService{
		closureRepo: closureRepo,
		paymentRepo: paymentRepo,
		statusCache: cache.NoopGuardStatusCache{},
		denoms:      denoms,
		exponent:    exponent,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ClosureSvcFacade = (*closureService)(nil)

// CreateClosure seals a cash closure over the requested payments.
//
// The operation is all-or-nothing: every requested id must resolve against
// the collector's current unclosed set or the whole request fails. Totals and
// the expected cash amount are recomputed here from the resolved payments;
// client-supplied figures are ignored. The closure row, its payment id list
// and the per-payment claims are written in one database transaction, and
// each claim is a conditional update that only succeeds while the payment is
// still unclaimed, so two racing closures can never share a payment.
func (s *closureService) CreateClosure(ctx context.Context, collectorID string, req dto.CreateClosureRequest, creatorUserID string) (*domain.CashClosure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if collectorID == "" {
		return nil, fmt.Errorf("%w: collector ID is required", apperrors.ErrValidation)
	}
	closureDate, err := time.ParseInLocation(dto.ClosureDateFormat, req.ClosureDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: closure date must be formatted as %s", apperrors.ErrValidation, dto.ClosureDateFormat)
	}

	paymentIDs := uniqueStrings(req.PaymentIDs)
	if len(paymentIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one payment is required", apperrors.ErrValidation)
	}

	// Resolve the selection against the freshly recomputed unclosed set.
	payments, err := s.resolvePayments(ctx, collectorID, paymentIDs)
	if err != nil {
		return nil, err
	}

	totals := sumByMethod(payments)
	cashExpected := totals.cash

	cashCounted, err := cashcount.Total(s.denoms, req.CashBreakdown, s.exponent)
	if err != nil {
		return nil, err
	}

	// A cash-bearing closure cannot be sealed without a count. A non-zero
	// discrepancy, on the other hand, is recorded for audit, never blocked:
	// physical counts legitimately differ from expectations.
	if cashExpected.GreaterThan(decimal.Zero) && req.CashBreakdown.IsZero() {
		return nil, fmt.Errorf("%w: expected %s in cash", apperrors.ErrMissingCashCount, cashExpected)
	}

	breakdown := req.CashBreakdown
	if breakdown == nil {
		breakdown = domain.DenominationCount{}
	}

	now := s.now().UTC()
	closure := domain.CashClosure{
		ClosureID:         uuid.NewString(),
		CollectorID:       collectorID,
		ClosureDate:       closureDate,
		Status:            domain.ClosureClosed,
		PaymentIDs:        paymentIDs,
		TotalCash:         totals.cash,
		TotalCard:         totals.card,
		TotalTransfer:     totals.transfer,
		TotalOther:        totals.other,
		GrandTotal:        totals.grand(),
		CashBreakdown:     breakdown,
		CashExpectedTotal: cashExpected,
		CashCountedTotal:  cashCounted,
		CashDifference:    cashCounted.Sub(cashExpected),
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := closure.Validate(); err != nil {
		return nil, fmt.Errorf("internal error building closure: %w", err)
	}

	if err := s.seal(ctx, closure); err != nil {
		return nil, err
	}

	if err := s.statusCache.Invalidate(ctx, collectorID); err != nil {
		logger.Warn("Failed to invalidate guard cache", slog.String("collector_id", collectorID), slog.String("error", err.Error()))
	}

	logger.Info("Cash closure sealed",
		slog.String("closure_id", closure.ClosureID),
		slog.String("collector_id", collectorID),
		slog.String("closure_date", req.ClosureDate),
		slog.Int("payments", len(paymentIDs)),
		slog.String("grand_total", closure.GrandTotal.String()),
		slog.String("cash_difference", closure.CashDifference.String()))

	return &closure, nil
}

// resolvePayments maps the requested ids to payments in the collector's
// unclosed set. Any id outside that set fails the whole request: claimed
// payments surface as ErrPaymentAlreadyClosed, everything else (nonexistent
// or another collector's) as ErrNotFound.
func (s *closureService) resolvePayments(ctx context.Context, collectorID string, paymentIDs []string) ([]domain.Payment, error) {
	unclosed, err := s.paymentRepo.FindUnclosedPaymentsByCollector(ctx, collectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unclosed payments: %w", err)
	}
	byID := make(map[string]domain.Payment, len(unclosed))
	for _, p := range unclosed {
		byID[p.PaymentID] = p
	}

	payments := make([]domain.Payment, 0, len(paymentIDs))
	for _, id := range paymentIDs {
		p, ok := byID[id]
		if ok {
			payments = append(payments, p)
			continue
		}

		existing, err := s.paymentRepo.FindPaymentByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, id)
			}
			return nil, fmt.Errorf("failed to resolve payment %s: %w", id, err)
		}
		if existing.CollectorID != collectorID {
			// Don't leak other collectors' payment ids.
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrPaymentAlreadyClosed, id)
	}
	return payments, nil
}

// seal writes the closure and claims its payments atomically. A failed claim
// rolls back everything: no payment may reference a closure that does not
// exist, and no closure may exist with fewer claims than its declared set.
func (s *closureService) seal(ctx context.Context, closure domain.CashClosure) error {
	tx, err := s.closureRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.closureRepo.Rollback(ctx, tx) // no-op once committed

	if err := s.closureRepo.SaveClosureInTx(ctx, tx, closure); err != nil {
		return fmt.Errorf("failed to save closure: %w", err)
	}
	for _, paymentID := range closure.PaymentIDs {
		if err := s.paymentRepo.ClaimPaymentInTx(ctx, tx, paymentID, closure.ClosureID); err != nil {
			if errors.Is(err, apperrors.ErrPaymentAlreadyClosed) {
				// Lost the race against a concurrent closure for this payment.
				return fmt.Errorf("%w: payment %s", apperrors.ErrPaymentAlreadyClosed, paymentID)
			}
			return fmt.Errorf("failed to claim payment %s: %w", paymentID, err)
		}
	}

	return s.closureRepo.Commit(ctx, tx)
}

// GetClosureByID retrieves one of the collector's sealed closures.
func (s *closureService) GetClosureByID(ctx context.Context, collectorID string, closureID string) (*domain.CashClosure, error) {
	closure, err := s.closureRepo.FindClosureByID(ctx, closureID)
	if err != nil {
		return nil, err
	}
	if closure.CollectorID != collectorID {
		return nil, fmt.Errorf("%w: closure %s", apperrors.ErrNotFound, closureID)
	}
	return closure, nil
}

// ListClosures retrieves the collector's closures, most recent first.
func (s *closureService) ListClosures(ctx context.Context, collectorID string, limit int, nextToken string) ([]domain.CashClosure, string, error) {
	if collectorID == "" {
		return nil, "", fmt.Errorf("%w: collector ID is required", apperrors.ErrValidation)
	}
	if limit <= 0 {
		limit = defaultClosurePageSize
	}
	if limit > maxClosurePageSize {
		limit = maxClosurePageSize
	}
	return s.closureRepo.ListClosuresByCollector(ctx, collectorID, limit, nextToken)
}

// methodTotals accumulates per-method sums for a closure. CHECK tenders fold
// into the "other" bucket alongside OTHER.
type methodTotals struct {
	cash     decimal.Decimal
	card     decimal.Decimal
	transfer decimal.Decimal
	other    decimal.Decimal
}

func (t methodTotals) grand() decimal.Decimal {
	return t.cash.Add(t.card).Add(t.transfer).Add(t.other)
}

func sumByMethod(payments []domain.Payment) methodTotals {
	totals := methodTotals{
		cash:     decimal.Zero,
		card:     decimal.Zero,
		transfer: decimal.Zero,
		other:    decimal.Zero,
	}
	for _, p := range payments {
		switch p.Method {
		case domain.MethodCash:
			totals.cash = totals.cash.Add(p.Amount)
		case domain.MethodCard:
			totals.card = totals.card.Add(p.Amount)
		case domain.MethodTransfer:
			totals.transfer = totals.transfer.Add(p.Amount)
		default:
			totals.other = totals.other.Add(p.Amount)
		}
	}
	return totals
}

// uniqueStrings returns the input with duplicates removed, preserving order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
