package repositories

import (
	"context"
	"time"

	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ClosureReader defines read operations for cash closure data
type ClosureReader interface {
	// FindClosureByID retrieves a closure with its payment id list.
	FindClosureByID(ctx context.Context, closureID string) (*domain.CashClosure, error)

	// ListClosuresByCollector retrieves closures for a collector, most recent
	// first, using token-based pagination. Returns the page and the token for
	// the next page ("" when exhausted).
	ListClosuresByCollector(ctx context.Context, collectorID string, limit int, nextToken string) ([]domain.CashClosure, string, error)

	// ListClosedDatesByCollector returns the distinct closure dates (UTC,
	// truncated to midnight) of the collector's CLOSED closures.
	ListClosedDatesByCollector(ctx context.Context, collectorID string) ([]time.Time, error)
}

// ClosureWriter defines write operations for cash closure data
type ClosureWriter interface {
	// SaveClosureInTx inserts the closure record and its owned payment id list
	// within the given transaction. Claiming the payments themselves is the
	// payment repository's job; the service composes both under one tx.
	SaveClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.CashClosure) error
}

// ClosureRepositoryFacade combines all closure-related repository interfaces
type ClosureRepositoryFacade interface {
	ClosureReader
	ClosureWriter
}

// ClosureRepositoryWithTx extends ClosureRepositoryFacade with transaction capabilities
type ClosureRepositoryWithTx interface {
	ClosureRepositoryFacade
	TransactionManager
}
