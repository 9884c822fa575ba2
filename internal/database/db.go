// Package database defines the storage abstraction the scorers, finders and
// seeders depend on. Repositories take this interface rather than a concrete
// pool, so tests substitute in-memory fakes.
package database

import (
	"context"
	"database/sql"
)

// DB is the querying surface of a Postgres pool. Exec reports the number of
// rows affected; SQLDB exposes the database/sql view needed by the migration
// runner.
type DB interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Begin(ctx context.Context) (Tx, error)

	Ping(ctx context.Context) error
	Close() error
	SQLDB() *sql.DB
}

// Tx mirrors the DB querying surface inside a transaction.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
