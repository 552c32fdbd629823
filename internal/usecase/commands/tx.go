package commands

import (
	"context"

	"rentigo/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// txRunner runs fn inside a single database transaction. Usecases hold one
// instead of a pool so the transactional paths stay testable.
type txRunner func(ctx context.Context, fn func(tx db.DBTX) error) error

func poolTxRunner(pool *pgxpool.Pool) txRunner {
	return func(ctx context.Context, fn func(tx db.DBTX) error) error {
		_, err := db.RunInTx(ctx, pool, func(tx db.DBTX) (struct{}, error) {
			return struct{}{}, fn(tx)
		})
		return err
	}
}

// poolRetryTxRunner reruns the whole transaction on serialization and
// deadlock failures, up to maxRetries times.
func poolRetryTxRunner(pool *pgxpool.Pool, maxRetries int) txRunner {
	return func(ctx context.Context, fn func(tx db.DBTX) error) error {
		_, err := db.RunInTxWithRetry(ctx, pool, maxRetries, func(tx db.DBTX) (struct{}, error) {
			return struct{}{}, fn(tx)
		})
		return err
	}
}
