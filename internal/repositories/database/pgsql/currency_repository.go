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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

const currencyColumns = `currency_code, name, symbol, precision, is_active`

// ListActiveCurrencies retrieves all active currencies ordered by code.
func (r *PgxCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE is_active ORDER BY currency_code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	modelCurrencies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code, active or not.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`

	rows, err := r.Pool.Query(ctx, query, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency %s: %w", currencyCode, err)
	}
	modelCurr, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyCode + " not found")
		}
		return nil, fmt.Errorf("failed to find currency %s: %w", currencyCode, err)
	}
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListHouseholdCurrencies returns the household's currencies with their reference row attached.
func (r *PgxCurrencyRepository) ListHouseholdCurrencies(ctx context.Context, householdID string) ([]domain.HouseholdCurrency, error) {
	query := `
		SELECT hc.household_currency_id, hc.household_id, hc.currency_code, hc.is_primary, hc.display_order,
			c.name, c.symbol, c.precision, c.is_active
		FROM household_currencies hc
		JOIN currencies c ON c.currency_code = hc.currency_code
		WHERE hc.household_id = $1
		ORDER BY hc.display_order, hc.currency_code;
	`
	rows, err := r.Pool.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to query household currencies: %w", err)
	}
	defer rows.Close()

	result := []domain.HouseholdCurrency{}
	for rows.Next() {
		var hc models.HouseholdCurrency
		var c models.Currency
		if err := rows.Scan(
			&hc.HouseholdCurrencyID, &hc.HouseholdID, &hc.CurrencyCode, &hc.IsPrimary, &hc.DisplayOrder,
			&c.Name, &c.Symbol, &c.Precision, &c.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan household currency: %w", err)
		}
		c.CurrencyCode = hc.CurrencyCode
		domainCurr := mapping.ToDomainCurrency(c)
		d := mapping.ToDomainHouseholdCurrency(hc)
		d.Currency = &domainCurr
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating household currencies: %w", err)
	}
	return result, nil
}

// AddHouseholdCurrency enables a currency for the household. A primary row
// first demotes the current primary so the partial unique index holds.
func (r *PgxCurrencyRepository) AddHouseholdCurrency(ctx context.Context, hc domain.HouseholdCurrency) error {
	m := mapping.ToModelHouseholdCurrency(hc)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if m.IsPrimary {
			if _, err := tx.Exec(ctx,
				`UPDATE household_currencies SET is_primary = FALSE WHERE household_id = $1 AND is_primary;`,
				m.HouseholdID,
			); err != nil {
				return fmt.Errorf("failed to demote primary currency: %w", err)
			}
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO household_currencies (household_currency_id, household_id, currency_code, is_primary, display_order)
			VALUES ($1, $2, $3, $4, $5);`,
			m.HouseholdCurrencyID, m.HouseholdID, m.CurrencyCode, m.IsPrimary, m.DisplayOrder,
		)
		if err != nil {
			return mapWriteError(err, "add household currency "+m.CurrencyCode)
		}
		return nil
	})
}

// SetPrimaryCurrency moves the primary flag to code. The currency must already
// be enabled for the household.
func (r *PgxCurrencyRepository) SetPrimaryCurrency(ctx context.Context, householdID, code string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE household_currencies SET is_primary = FALSE WHERE household_id = $1 AND is_primary;`,
			householdID,
		); err != nil {
			return fmt.Errorf("failed to demote primary currency: %w", err)
		}
		tag, err := tx.Exec(ctx,
			`UPDATE household_currencies SET is_primary = TRUE WHERE household_id = $1 AND currency_code = $2;`,
			householdID, code,
		)
		if err != nil {
			return fmt.Errorf("failed to set primary currency: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("currency " + code + " is not enabled for this household")
		}
		return nil
	})
}
