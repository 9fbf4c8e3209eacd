package database

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=queryer.go -destination=mocks/queryer.go -package=mocks -exclude_interfaces=Queryer

// Queryer é satisfeito tanto por *sql.DB quanto por *sql.Tx
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}
