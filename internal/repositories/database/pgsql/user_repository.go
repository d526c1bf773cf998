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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelect = `
	SELECT user_id, email, name, password_hash, auth_provider, provider_user_id, email_verified,
		created_at, created_by, last_updated_at, last_updated_by
	FROM users
`

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (
            user_id, email, name, password_hash, auth_provider, provider_user_id, email_verified,
            created_at, created_by, last_updated_at, last_updated_by
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID, m.Email, m.Name, m.PasswordHash, m.AuthProvider, m.ProviderUserID, m.EmailVerified,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "save user "+m.Email)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, userSelect+` WHERE user_id = $1;`, "user "+userID, userID)
}

// FindUserByEmail matches case-insensitively.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, userSelect+` WHERE lower(email) = lower($1);`, "user with email "+email, email)
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, userSelect+` WHERE auth_provider = $1 AND provider_user_id = $2;`,
		"user for "+string(provider)+" account", string(provider), providerUserID)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query, what string, args ...any) (*domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(what + " not found")
		}
		return nil, fmt.Errorf("failed to find %s: %w", what, err)
	}
	d := mapping.ToDomainUser(m)
	return &d, nil
}
