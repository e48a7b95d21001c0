package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cargoplus/collections_backend/internal/apperrors"
	"github.com/cargoplus/collections_backend/internal/core/domain"
	portsrepo "github.com/cargoplus/collections_backend/internal/core/ports/repositories"
	"github.com/cargoplus/collections_backend/internal/models"
	"github.com/cargoplus/collections_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `payment_id, bill_id, collector_id, amount, method, details, notes, payment_date, closure_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

// SavePayment inserts a new payment with a null closure reference.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	modelPayment := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.BillID,
		modelPayment.CollectorID,
		modelPayment.Amount,
		modelPayment.Method,
		modelPayment.Details,
		modelPayment.Notes,
		modelPayment.PaymentDate,
		modelPayment.ClosureID,
		modelPayment.CreatedAt,
		modelPayment.CreatedBy,
		modelPayment.LastUpdatedAt,
		modelPayment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, modelPayment.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", modelPayment.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a specific payment by its unique identifier.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	row := r.Pool.QueryRow(ctx, query, paymentID)
	modelPayment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	domainPayment := mapping.ToDomainPayment(*modelPayment)
	return &domainPayment, nil
}

// FindUnclosedPaymentsByCollector returns the collector's payments available
// for a new closure. A payment qualifies only when its own closure reference
// is null AND its id appears in no closure's payment list — the second check
// guards against historical rows whose back-reference was never set. The set
// is recomputed on every call, never cached.
func (r *PgxPaymentRepository) FindUnclosedPaymentsByCollector(ctx context.Context, collectorID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.collector_id = $1
		  AND p.closure_id IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM closure_payments cp WHERE cp.payment_id = p.payment_id
		  )
		ORDER BY p.payment_date ASC, p.payment_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, collectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unclosed payments for collector %s: %w", collectorID, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

// ListPaymentDatesByCollector returns the distinct calendar dates on which the
// collector has at least one payment.
func (r *PgxPaymentRepository) ListPaymentDatesByCollector(ctx context.Context, collectorID string) ([]time.Time, error) {
	query := `
		SELECT DISTINCT (payment_date AT TIME ZONE 'UTC')::date
		FROM payments
		WHERE collector_id = $1
		ORDER BY 1 ASC;
	`
	rows, err := r.Pool.Query(ctx, query, collectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment dates for collector %s: %w", collectorID, err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan payment date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment dates: %w", err)
	}
	return dates, nil
}

// ListPaymentsByClosure retrieves the payments claimed by a closure.
func (r *PgxPaymentRepository) ListPaymentsByClosure(ctx context.Context, closureID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE closure_id = $1
		ORDER BY payment_date ASC, payment_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, closureID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for closure %s: %w", closureID, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

// ClaimPaymentInTx sets the payment's closure reference within the given
// transaction, conditional on the reference still being null. A claim that
// touches no row means the payment is either gone or already claimed; the
// distinction is resolved with a follow-up existence check so the caller gets
// the right error kind.
func (r *PgxPaymentRepository) ClaimPaymentInTx(ctx context.Context, tx pgx.Tx, paymentID string, closureID string) error {
	query := `
		UPDATE payments
		SET closure_id = $1, last_updated_at = now(), last_updated_by = $3
		WHERE payment_id = $2 AND closure_id IS NULL;
	`
	// last_updated_by: closures are the only writer of closure_id, so record
	// the closure id itself as the actor.
	tag, err := tx.Exec(ctx, query, closureID, paymentID, closureID)
	if err != nil {
		return fmt.Errorf("failed to claim payment %s for closure %s: %w", paymentID, closureID, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE payment_id = $1);`, paymentID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check payment %s existence: %w", paymentID, err)
	}
	if !exists {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}
	return fmt.Errorf("%w: payment %s", apperrors.ErrPaymentAlreadyClosed, paymentID)
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.BillID,
		&m.CollectorID,
		&m.Amount,
		&m.Method,
		&m.Details,
		&m.Notes,
		&m.PaymentDate,
		&m.ClosureID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainPayment(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
