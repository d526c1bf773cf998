package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/SscSPs/household_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository stores household transactions.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, household_id, user_id, type, amount, currency_code, amount_usd,
	exchange_rate, exchange_rate_type, description, category, date, created_at, updated_at
`

func (r *PgxTransactionRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		m.TransactionID, m.HouseholdID, m.UserID, m.Type, m.Amount, m.CurrencyCode, m.AmountUSD,
		m.ExchangeRate, m.ExchangeRateType, m.Description, m.Category, m.Date, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "insert transaction")
	}
	return nil
}

// ListTransactions pages with a keyset on (date, created_at, transaction_id), newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, householdID string, limit int, cursor *pagination.Cursor) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE household_id = $1`
	args := []any{householdID}

	if cursor != nil {
		query += ` AND (date, created_at, transaction_id) < ($2, $3, $4)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC, transaction_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, householdID, transactionID string) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE household_id = $1 AND transaction_id = $2;`,
		householdID, transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// SumTransactions aggregates per type and currency. Rows stored without a USD
// value are summed separately in missing_usd so callers can value them.
func (r *PgxTransactionRepository) SumTransactions(ctx context.Context, householdID string) ([]domain.TransactionTotal, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT
			type,
			currency_code,
			COALESCE(SUM(amount), 0) AS amount,
			COALESCE(SUM(amount_usd), 0) AS amount_usd,
			COALESCE(SUM(amount) FILTER (WHERE amount_usd IS NULL), 0) AS missing_usd,
			COUNT(*)::int AS count
		FROM transactions
		WHERE household_id = $1
		GROUP BY type, currency_code
		ORDER BY type, currency_code;`, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TransactionTotal])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction totals: %w", err)
	}
	totals := make([]domain.TransactionTotal, len(ms))
	for i, m := range ms {
		totals[i] = mapping.ToDomainTransactionTotal(m)
	}
	return totals, nil
}

// DeleteTransaction removes the transaction, restricted to userID's rows when userID is set.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, householdID, transactionID string, userID *string) (int64, error) {
	query := `DELETE FROM transactions WHERE household_id = $1 AND transaction_id = $2`
	args := []any{householdID, transactionID}
	if userID != nil {
		query += ` AND user_id = $3`
		args = append(args, *userID)
	}

	tag, err := r.Pool.Exec(ctx, query+";", args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transaction: %w", err)
	}
	return tag.RowsAffected(), nil
}
