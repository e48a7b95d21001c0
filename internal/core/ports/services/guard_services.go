package services

import (
	"context"

	"github.com/cargoplus/collections_backend/internal/core/domain"
)

// GuardSvcFacade evaluates the payment-sequencing guard for a collector.
// The status is derived from closure history on every call; it only gates
// payment recording, never closure creation, so a locked collector can always
// unlock themselves by sealing the missing closure.
type GuardSvcFacade interface {
	CheckGuard(ctx context.Context, collectorID string) (*domain.GuardStatus, error)
}
