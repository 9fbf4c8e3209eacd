package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-commission-api/internal/config"
	_ "modernc.org/sqlite"
)

type Conn interface {
	Queryer
	Transactor
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	conn, err := Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// Open abre a conexão sem testar, escolhendo o driver sql pelo nome configurado
func Open(driver, dsn string) (*Connection, error) {
	driver = strings.ToLower(driver)

	var sqlDriver string
	switch driver {
	case config.DriverPostgres:
		sqlDriver = "postgres"
	case config.DriverSQLite:
		sqlDriver = "sqlite"
	default:
		return nil, fmt.Errorf("driver de banco de dados não suportado: %s", driver)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, err
	}

	// sqlite não suporta escritas concorrentes e cada conexão :memory: é um banco novo
	if driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	return &Connection{DB: db, driver: driver}, nil
}

func (c *Connection) Driver() string {
	return c.driver
}

// Placeholder retorna o formato de parâmetros do squirrel para o driver
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == config.DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("erro ao desfazer transação: %v (erro original: %w)", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
