// Package databasetest abre bancos sqlite em memória já migrados para os testes
package databasetest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/migrations"
	"github.com/vfg2006/sales-commission-api/internal/config"
)

func NewSQLite(t *testing.T) *database.Connection {
	t.Helper()

	conn, err := database.Open(config.DriverSQLite, ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
	})

	require.NoError(t, migrations.Up(conn.DB, config.DriverSQLite))

	return conn
}
