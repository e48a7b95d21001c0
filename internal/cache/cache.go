package cache

import (
	"context"
	"time"

	"github.com/cargoplus/collections_backend/internal/core/domain"
)

// GuardStatusCache is an optional read-through cache for sequencing guard
// answers. It is purely an optimization: the guard recomputes from closure
// history whenever the cache misses, errors or is disabled, so cache loss can
// never change a guard decision. Writers must Invalidate the collector's key
// after recording a payment or sealing a closure.
type GuardStatusCache interface {
	Get(ctx context.Context, collectorID string) (*domain.GuardStatus, bool, error)
	Set(ctx context.Context, collectorID string, status *domain.GuardStatus, ttl time.Duration) error
	Invalidate(ctx context.Context, collectorID string) error
}

// NoopGuardStatusCache disables caching; every guard check recomputes.
type NoopGuardStatusCache struct{}

func (NoopGuardStatusCache) Get(_ context.Context, _ string) (*domain.GuardStatus, bool, error) {
	return nil, false, nil
}

func (NoopGuardStatusCache) Set(_ context.Context, _ string, _ *domain.GuardStatus, _ time.Duration) error {
	return nil
}

func (NoopGuardStatusCache) Invalidate(_ context.Context, _ string) error {
	return nil
}
