package pgsql

import (
	portsrepo "github.com/cargoplus/collections_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PaymentRepo: newPgxPaymentRepository(dbPool),
		ClosureRepo: newPgxClosureRepository(dbPool),
	}
}
