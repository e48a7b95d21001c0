package services

import (
	"context"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/cargoplus/collections_backend/internal/dto"
)

// ClosureCreatorSvc defines the sealing side of the cash closure engine.
type ClosureCreatorSvc interface {
	// CreateClosure resolves the requested payment ids against the
	// collector's unclosed set, recomputes all totals server-side, validates
	// the cash count and seals the closure atomically. All-or-nothing: any
	// unresolvable payment id fails the whole operation.
	CreateClosure(ctx context.Context, collectorID string, req dto.CreateClosureRequest, creatorUserID string) (*domain.CashClosure, error)
}

// ClosureReaderSvc defines read operations over sealed closures.
type ClosureReaderSvc interface {
	// GetClosureByID retrieves one of the collector's closures for audit or
	// printing by an external document renderer.
	GetClosureByID(ctx context.Context, collectorID string, closureID string) (*domain.CashClosure, error)

	// ListClosures retrieves the collector's closures, most recent first,
	// with token-based pagination.
	ListClosures(ctx context.Context, collectorID string, limit int, nextToken string) ([]domain.CashClosure, string, error)
}

// ClosureSvcFacade combines all closure-related service interfaces
type ClosureSvcFacade interface {
	ClosureCreatorSvc
	ClosureReaderSvc
}
