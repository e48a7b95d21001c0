package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/cargoplus/collections_backend/internal/cache"
	"github.com/cargoplus/collections_backend/internal/core/domain"
	portsrepo "github.com/cargoplus/collections_backend/internal/core/ports/repositories"
	portssvc "github.com/cargoplus/collections_backend/internal/core/ports/services"
	"github.com/cargoplus/collections_backend/internal/middleware"
)

// guardCacheTTL bounds how stale a cached guard answer may be. The cache is
// also invalidated on every payment/closure write, so the TTL only covers
// the day rollover at midnight.
const guardCacheTTL = 30 * time.Second

// guardService evaluates the payment-sequencing guard: a collector must seal
// a closure for every past day that has payments before recording new ones.
type guardService struct {
	paymentRepo portsrepo.PaymentReader
	closureRepo portsrepo.ClosureReader
	statusCache cache.GuardStatusCache
	now         func() time.Time
}

// GuardServiceOption configures optional guard service dependencies.
type GuardServiceOption func(*guardService)

// WithGuardCache attaches a read-through cache for guard answers.
func WithGuardCache(c cache.GuardStatusCache) GuardServiceOption {
	return func(s *guardService) {
		s.statusCache = c
	}
}

// WithGuardClock overrides the clock, used by tests to pin "today".
func WithGuardClock(now func() time.Time) GuardServiceOption {
	return func(s *guardService) {
		s.now = now
	}
}

// NewGuardService creates a new sequencing guard service.
func NewGuardService(paymentRepo portsrepo.PaymentReader, closureRepo portsrepo.ClosureReader, opts ...GuardServiceOption) portssvc.GuardSvcFacade {
	s := &guardService{
		paymentRepo: paymentRepo,
		closureRepo: closureRepo,
		statusCache: cache.NoopGuardStatusCache{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.GuardSvcFacade = (*guardService)(nil)

// CheckGuard returns ALLOW, or LOCKED with the earliest calendar date that has
// payments but no closed closure, when that date lies strictly before today.
// Same-day payments never lock: that closure is not due until the day ends.
func (s *guardService) CheckGuard(ctx context.Context, collectorID string) (*domain.GuardStatus, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cached, ok, err := s.statusCache.Get(ctx, collectorID); err != nil {
		// A broken cache must never block the guard; recompute instead.
		logger.Warn("Guard cache read failed, recomputing", slog.String("collector_id", collectorID), slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	status, err := s.compute(ctx, collectorID)
	if err != nil {
		return nil, err
	}

	if err := s.statusCache.Set(ctx, collectorID, status, guardCacheTTL); err != nil {
		logger.Warn("Guard cache write failed", slog.String("collector_id", collectorID), slog.String("error", err.Error()))
	}
	return status, nil
}

func (s *guardService) compute(ctx context.Context, collectorID string) (*domain.GuardStatus, error) {
	paymentDates, err := s.paymentRepo.ListPaymentDatesByCollector(ctx, collectorID)
	if err != nil {
		return nil, err
	}
	closedDates, err := s.closureRepo.ListClosedDatesByCollector(ctx, collectorID)
	if err != nil {
		return nil, err
	}

	closed := make(map[time.Time]struct{}, len(closedDates))
	for _, d := range closedDates {
		closed[truncateToDay(d)] = struct{}{}
	}

	outstanding := make([]time.Time, 0, len(paymentDates))
	for _, d := range paymentDates {
		day := truncateToDay(d)
		if _, ok := closed[day]; !ok {
			outstanding = append(outstanding, day)
		}
	}
	sort.Slice(outstanding, func(i, j int) bool { return outstanding[i].Before(outstanding[j]) })

	today := truncateToDay(s.now())
	if len(outstanding) > 0 && outstanding[0].Before(today) {
		required := outstanding[0]
		return &domain.GuardStatus{Allow: false, RequiredClosureDate: &required}, nil
	}
	return &domain.GuardStatus{Allow: true}, nil
}

// truncateToDay normalizes a timestamp to its UTC calendar date.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
