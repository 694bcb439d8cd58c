package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// withTx inicia una transacción (o savepoint si q ya es una tx), ejecuta fn y hace Commit o Rollback.
func withTx(ctx context.Context, q Querier, fn func(tx pgx.Tx) error) error {
	tx, err := q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
