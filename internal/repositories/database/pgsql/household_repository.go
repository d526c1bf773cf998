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

// PgxHouseholdRepository stores households, their members and their initial currencies.
type PgxHouseholdRepository struct {
	BaseRepository
}

func newPgxHouseholdRepository(pool *pgxpool.Pool) portsrepo.HouseholdRepositoryWithTx {
	return &PgxHouseholdRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.HouseholdRepositoryWithTx = (*PgxHouseholdRepository)(nil)

const memberSelect = `
	SELECT m.household_id, m.user_id, u.name AS user_name, m.role, m.joined_at
	FROM household_members m
	JOIN users u ON u.user_id = m.user_id
`

func (r *PgxHouseholdRepository) CreateHouseholdWithOwner(ctx context.Context, household domain.Household, owner domain.HouseholdMember, currencies []domain.HouseholdCurrency) error {
	h := mapping.ToModelHousehold(household)
	m := mapping.ToModelHouseholdMember(owner)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO households (household_id, name, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			h.HouseholdID, h.Name, h.CreatedAt, h.CreatedBy, h.LastUpdatedAt, h.LastUpdatedBy,
		); err != nil {
			return mapWriteError(err, "insert household")
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO household_members (household_id, user_id, role, joined_at)
			VALUES ($1, $2, $3, $4);`,
			m.HouseholdID, m.UserID, m.Role, m.JoinedAt,
		); err != nil {
			return mapWriteError(err, "insert household owner")
		}

		batch := &pgx.Batch{}
		for _, hc := range currencies {
			mc := mapping.ToModelHouseholdCurrency(hc)
			batch.Queue(`
				INSERT INTO household_currencies (household_currency_id, household_id, currency_code, is_primary, display_order)
				VALUES ($1, $2, $3, $4, $5);`,
				mc.HouseholdCurrencyID, mc.HouseholdID, mc.CurrencyCode, mc.IsPrimary, mc.DisplayOrder,
			)
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapWriteError(err, "insert household currencies")
		}
		return nil
	})
}

func (r *PgxHouseholdRepository) FindHouseholdByID(ctx context.Context, householdID string) (*domain.Household, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT household_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM households WHERE household_id = $1;`, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to query household: %w", err)
	}
	h, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Household])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("household " + householdID + " not found")
		}
		return nil, fmt.Errorf("failed to find household: %w", err)
	}
	d := mapping.ToDomainHousehold(h)
	return &d, nil
}

// ListHouseholdsByUserID returns the households the user belongs to, with the user's role.
func (r *PgxHouseholdRepository) ListHouseholdsByUserID(ctx context.Context, userID string) ([]domain.Household, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT h.household_id, h.name, h.created_at, h.created_by, h.last_updated_at, h.last_updated_by, m.role
		FROM households h
		JOIN household_members m ON m.household_id = h.household_id
		WHERE m.user_id = $1
		ORDER BY h.name, h.household_id;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query households: %w", err)
	}
	defer rows.Close()

	households := []domain.Household{}
	for rows.Next() {
		var h models.Household
		var role string
		if err := rows.Scan(&h.HouseholdID, &h.Name, &h.CreatedAt, &h.CreatedBy, &h.LastUpdatedAt, &h.LastUpdatedBy, &role); err != nil {
			return nil, fmt.Errorf("failed to scan household: %w", err)
		}
		d := mapping.ToDomainHousehold(h)
		d.Role = domain.HouseholdRole(role)
		households = append(households, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating households: %w", err)
	}
	return households, nil
}

func (r *PgxHouseholdRepository) FindMembership(ctx context.Context, householdID, userID string) (*domain.HouseholdMember, error) {
	rows, err := r.Pool.Query(ctx, memberSelect+` WHERE m.household_id = $1 AND m.user_id = $2;`, householdID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query membership: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.HouseholdMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user is not a member of household " + householdID)
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	d := mapping.ToDomainHouseholdMember(m)
	return &d, nil
}

// ListMembers returns the household's members, earliest joined first.
func (r *PgxHouseholdRepository) ListMembers(ctx context.Context, householdID string) ([]domain.HouseholdMember, error) {
	rows, err := r.Pool.Query(ctx, memberSelect+` WHERE m.household_id = $1 ORDER BY m.joined_at, m.user_id;`, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.HouseholdMember])
	if err != nil {
		return nil, fmt.Errorf("failed to scan members: %w", err)
	}
	members := make([]domain.HouseholdMember, len(ms))
	for i, m := range ms {
		members[i] = mapping.ToDomainHouseholdMember(m)
	}
	return members, nil
}

func (r *PgxHouseholdRepository) AddMember(ctx context.Context, member domain.HouseholdMember) error {
	m := mapping.ToModelHouseholdMember(member)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO household_members (household_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4);`,
		m.HouseholdID, m.UserID, m.Role, m.JoinedAt,
	)
	if err != nil {
		return mapWriteError(err, "add household member")
	}
	return nil
}

func (r *PgxHouseholdRepository) RemoveMember(ctx context.Context, householdID, userID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM household_members WHERE household_id = $1 AND user_id = $2;`,
		householdID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove household member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user is not a member of household " + householdID)
	}
	return nil
}
