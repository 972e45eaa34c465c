package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/fyf-cart/internal/db"
)

// inTx runs fn inside a new transaction. When the repository was built on a
// caller-owned transaction (pool is nil) fn runs on it directly and the
// caller stays responsible for commit and rollback.
func (r *cartRepository) inTx(ctx context.Context, fn func(q *db.Queries) error) (txErr error) {
	if r.pool == nil {
		return fn(r.q)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	if err := fn(r.q.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}
