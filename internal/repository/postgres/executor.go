package postgres

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx,
// чтобы репозитории работали и внутри транзакции, и без нее
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if t.Valid {
		return &t.Time
	}
	return nil
}
