package database_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/infrastructure/database"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/databasetest"
)

func TestOpen_DriverNaoSuportado(t *testing.T) {
	conn, err := database.Open("mysql", "root@/db")
	assert.Error(t, err)
	assert.Nil(t, conn)
}

func TestPlaceholder(t *testing.T) {
	pg, err := database.Open("postgres", "postgres://u:p@localhost:5432/db?sslmode=disable")
	require.NoError(t, err)
	defer pg.Close()

	query, _, err := squirrel.Select("id").From("sales").Where(squirrel.Eq{"id": "x"}).PlaceholderFormat(pg.Placeholder()).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM sales WHERE id = $1", query)

	lite := databasetest.NewSQLite(t)
	query, _, err = squirrel.Select("id").From("sales").Where(squirrel.Eq{"id": "x"}).PlaceholderFormat(lite.Placeholder()).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM sales WHERE id = ?", query)
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()
	conn := databasetest.NewSQLite(t)

	insert := func(tx *sql.Tx, id string) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO profiles (id, full_name, active) VALUES (?, ?, ?)", id, "Vendedor "+id, true)
		return err
	}

	count := func() int {
		var n int
		require.NoError(t, conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles").Scan(&n))
		return n
	}

	t.Run("Commit quando a função não retorna erro", func(t *testing.T) {
		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			return insert(tx, "p1")
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count())
	})

	t.Run("Rollback quando a função retorna erro", func(t *testing.T) {
		errFalha := errors.New("falha")
		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if err := insert(tx, "p2"); err != nil {
				return err
			}
			return errFalha
		})
		assert.ErrorIs(t, err, errFalha)
		assert.Equal(t, 1, count())
	})
}
