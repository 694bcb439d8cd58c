package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/g-inventory/internal/domain"
)

// Querier lo implementan *pgxpool.Pool y pgx.Tx; los repos sirven con pool o dentro de una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505" || strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// writeError traduce errores de escritura a errores de dominio.
func writeError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// queryOne devuelve (nil, nil) si no hay fila.
func queryOne[T any](ctx context.Context, q Querier, scan func(pgx.Row) (*T, error), op, sql string, args ...any) (*T, error) {
	e, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

func queryAll[T any](ctx context.Context, q Querier, scan func(pgx.Row) (*T, error), op, sql string, args ...any) ([]*T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (*T, error) { return scan(r) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// execOne ejecuta una escritura que debe afectar exactamente una fila; si no afecta ninguna devuelve ErrNotFound.
func execOne(ctx context.Context, q Querier, op, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return writeError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
