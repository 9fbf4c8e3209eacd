// Package migrations aplica o schema embutido com goose
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/internal/config"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

func dialect(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("driver sem suporte a migrações: %s", driver)
	}
}

func prepare(driver string) error {
	d, err := dialect(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(files)
	goose.SetLogger(logrus.StandardLogger())

	return goose.SetDialect(d)
}

// Up aplica todas as migrações pendentes
func Up(db *sql.DB, driver string) error {
	if err := prepare(driver); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	return nil
}

// Down desfaz a última migração aplicada
func Down(db *sql.DB, driver string) error {
	if err := prepare(driver); err != nil {
		return err
	}

	if err := goose.Down(db, dir); err != nil {
		return fmt.Errorf("erro ao desfazer migração: %w", err)
	}

	return nil
}

// Status registra no log o estado de cada migração
func Status(db *sql.DB, driver string) error {
	if err := prepare(driver); err != nil {
		return err
	}

	return goose.Status(db, dir)
}
