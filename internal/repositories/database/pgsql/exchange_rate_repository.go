package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryWithTx using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

// ListActiveRates retrieves the household's active rates, newest first.
func (r *PgxExchangeRateRepository) ListActiveRates(ctx context.Context, householdID string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT
			exchange_rate_id, household_id, from_currency_code, to_currency_code, rate, rate_type,
			valid_from, is_active, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE household_id = $1 AND is_active
		ORDER BY valid_from DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	modelRates, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// InsertRate appends a rate. Rates are never updated in place; an identical
// quote (same pair, type and valid_from) violates the unique constraint.
func (r *PgxExchangeRateRepository) InsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (
			exchange_rate_id, household_id, from_currency_code, to_currency_code, rate, rate_type,
			valid_from, is_active, notes, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.ExchangeRateID, m.HouseholdID, m.FromCurrencyCode, m.ToCurrencyCode, m.Rate, m.RateType,
		m.ValidFrom, m.IsActive, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "insert exchange rate")
	}
	return nil
}
