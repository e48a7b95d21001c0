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
	"github.com/cargoplus/collections_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const closureColumns = `closure_id, collector_id, closure_date, status, total_cash, total_card, total_transfer, total_other, grand_total, cash_breakdown, cash_expected_total, cash_counted_total, cash_difference, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxClosureRepository struct {
	BaseRepository
}

// newPgxClosureRepository creates a new repository for cash closure data.
func newPgxClosureRepository(pool *pgxpool.Pool) portsrepo.ClosureRepositoryWithTx {
	return &PgxClosureRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClosureRepository implements portsrepo.ClosureRepositoryWithTx
var _ portsrepo.ClosureRepositoryWithTx = (*PgxClosureRepository)(nil)

// SaveClosureInTx inserts the closure row and its owned payment id list
// within the given transaction.
func (r *PgxClosureRepository) SaveClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.CashClosure) error {
	modelClosure := mapping.ToModelCashClosure(closure)

	closureQuery := `
		INSERT INTO cash_closures (` + closureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := tx.Exec(ctx, closureQuery,
		modelClosure.ClosureID,
		modelClosure.CollectorID,
		modelClosure.ClosureDate,
		modelClosure.Status,
		modelClosure.TotalCash,
		modelClosure.TotalCard,
		modelClosure.TotalTransfer,
		modelClosure.TotalOther,
		modelClosure.GrandTotal,
		modelClosure.CashBreakdown,
		modelClosure.CashExpectedTotal,
		modelClosure.CashCountedTotal,
		modelClosure.CashDifference,
		modelClosure.Notes,
		modelClosure.CreatedAt,
		modelClosure.CreatedBy,
		modelClosure.LastUpdatedAt,
		modelClosure.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: closure with ID %s already exists", apperrors.ErrDuplicate, modelClosure.ClosureID)
		}
		return fmt.Errorf("failed to insert closure %s: %w", modelClosure.ClosureID, err)
	}

	batch := &pgx.Batch{}
	linkQuery := `INSERT INTO closure_payments (closure_id, payment_id) VALUES ($1, $2);`
	for _, paymentID := range closure.PaymentIDs {
		batch.Queue(linkQuery, closure.ClosureID, paymentID)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range closure.PaymentIDs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert closure payment link for closure %s: %w", closure.ClosureID, err)
		}
	}

	return nil
}

// FindClosureByID retrieves a closure with its payment id list.
func (r *PgxClosureRepository) FindClosureByID(ctx context.Context, closureID string) (*domain.CashClosure, error) {
	query := `SELECT ` + closureColumns + ` FROM cash_closures WHERE closure_id = $1;`

	row := r.Pool.QueryRow(ctx, query, closureID)
	modelClosure, err := scanClosure(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: closure %s", apperrors.ErrNotFound, closureID)
		}
		return nil, fmt.Errorf("failed to find closure %s: %w", closureID, err)
	}

	paymentIDs, err := r.findPaymentIDs(ctx, []string{closureID})
	if err != nil {
		return nil, err
	}

	domainClosure := mapping.ToDomainCashClosure(*modelClosure, paymentIDs[closureID])
	return &domainClosure, nil
}

// ListClosuresByCollector retrieves closures for a collector, most recent
// first, using keyset pagination on (created_at, closure_id).
func (r *PgxClosureRepository) ListClosuresByCollector(ctx context.Context, collectorID string, limit int, nextToken string) ([]domain.CashClosure, string, error) {
	args := []any{collectorID, limit + 1}
	query := `
		SELECT ` + closureColumns + `
		FROM cash_closures
		WHERE collector_id = $1
	`
	if nextToken != "" {
		createdAt, closureID, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (created_at, closure_id) < ($3, $4)`
		args = append(args, createdAt, closureID)
	}
	query += ` ORDER BY created_at DESC, closure_id DESC LIMIT $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query closures for collector %s: %w", collectorID, err)
	}
	defer rows.Close()

	var modelClosures []models.CashClosure
	for rows.Next() {
		m, err := scanClosure(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan closure row: %w", err)
		}
		modelClosures = append(modelClosures, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating closure rows: %w", err)
	}

	var newNextToken string
	if len(modelClosures) > limit {
		modelClosures = modelClosures[:limit]
		last := modelClosures[len(modelClosures)-1]
		newNextToken = pagination.EncodeToken(last.CreatedAt, last.ClosureID)
	}

	closureIDs := make([]string, len(modelClosures))
	for i, m := range modelClosures {
		closureIDs[i] = m.ClosureID
	}
	paymentIDs, err := r.findPaymentIDs(ctx, closureIDs)
	if err != nil {
		return nil, "", err
	}

	closures := make([]domain.CashClosure, len(modelClosures))
	for i, m := range modelClosures {
		closures[i] = mapping.ToDomainCashClosure(m, paymentIDs[m.ClosureID])
	}
	return closures, newNextToken, nil
}

// ListClosedDatesByCollector returns the distinct closure dates of the
// collector's CLOSED closures.
func (r *PgxClosureRepository) ListClosedDatesByCollector(ctx context.Context, collectorID string) ([]time.Time, error) {
	query := `
		SELECT DISTINCT closure_date
		FROM cash_closures
		WHERE collector_id = $1 AND status = $2
		ORDER BY closure_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, collectorID, models.ClosureStatus(domain.ClosureClosed))
	if err != nil {
		return nil, fmt.Errorf("failed to query closure dates for collector %s: %w", collectorID, err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan closure date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating closure dates: %w", err)
	}
	return dates, nil
}

// findPaymentIDs loads the owned payment id lists for the given closures.
func (r *PgxClosureRepository) findPaymentIDs(ctx context.Context, closureIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(closureIDs))
	if len(closureIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT closure_id, payment_id
		FROM closure_payments
		WHERE closure_id = ANY($1)
		ORDER BY payment_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, closureIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query closure payment links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var closureID, paymentID string
		if err := rows.Scan(&closureID, &paymentID); err != nil {
			return nil, fmt.Errorf("failed to scan closure payment link: %w", err)
		}
		result[closureID] = append(result[closureID], paymentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating closure payment links: %w", err)
	}
	return result, nil
}

func scanClosure(row pgx.Row) (*models.CashClosure, error) {
	var m models.CashClosure
	err := row.Scan(
		&m.ClosureID,
		&m.CollectorID,
		&m.ClosureDate,
		&m.Status,
		&m.TotalCash,
		&m.TotalCard,
		&m.TotalTransfer,
		&m.TotalOther,
		&m.GrandTotal,
		&m.CashBreakdown,
		&m.CashExpectedTotal,
		&m.CashCountedTotal,
		&m.CashDifference,
		&m.Notes,
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
