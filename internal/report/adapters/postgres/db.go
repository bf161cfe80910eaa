package postgres

import "context"

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DB is the query-only surface the report reader needs. The report side
// never writes.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}
