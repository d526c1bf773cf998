package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories whose writes span several
// statements. Callers pair every Begin with a deferred Rollback and a final Commit.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback ignores transactions that were already committed.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
